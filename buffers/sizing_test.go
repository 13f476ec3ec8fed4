package buffers

import "testing"

func TestGrownCapacity(t *testing.T) {
	cases := []struct {
		count, minimum, want int
	}{
		{0, 0, 1},    // growth from empty always yields at least one slot
		{0, 1, 1},
		{0, 5, 5},    // explicit minimum wins over doubling
		{1, 2, 2},
		{2, 3, 4},
		{7, 8, 14},
		{100, 101, 200},
		{3, 10, 10},
	}
	for _, tc := range cases {
		if got := grownCapacity(tc.count, tc.minimum); got != tc.want {
			t.Errorf("grownCapacity(%d, %d) = %d, want %d", tc.count, tc.minimum, got, tc.want)
		}
	}
}

func TestGrownCapacityCoversMinimum(t *testing.T) {
	for count := 0; count < 50; count++ {
		got := grownCapacity(count, count+1)
		if got < count+1 {
			t.Fatalf("grownCapacity(%d, %d) = %d, below the minimum", count, count+1, got)
		}
		if count > 0 && got < 2*count {
			t.Fatalf("grownCapacity(%d, %d) = %d, below doubling", count, count+1, got)
		}
	}
}
