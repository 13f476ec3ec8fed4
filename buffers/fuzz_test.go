package buffers_test

import (
	"testing"

	"github.com/hasbyte1/go-cow-buffers/buffers"
)

// FuzzBufferModel drives a Buffer and its clone through an arbitrary
// operation sequence and checks both against plain-slice models: whatever
// the interleaving, the two handles must behave like fully independent
// arrays.
//
// Run with: go test -fuzz=FuzzBufferModel ./buffers/
func FuzzBufferModel(f *testing.F) {
	f.Add([]byte{})
	f.Add([]byte{0, 0, 0, 0})
	f.Add([]byte{0, 1, 2, 3, 0, 1, 2, 3})
	f.Add([]byte{2, 0, 0, 1, 9, 3, 0, 2, 200, 0})

	f.Fuzz(func(t *testing.T, ops []byte) {
		a := buffers.NewBuffer[int](0)
		b := a.Clone()
		var modelA, modelB []int

		for i := 0; i < len(ops); i++ {
			op := ops[i]
			buf, model := &a, &modelA
			if op&1 == 1 {
				buf, model = &b, &modelB
			}
			switch (op >> 1) % 4 {
			case 0: // append
				idx := buf.Append(i)
				*model = append(*model, i)
				if idx != len(*model)-1 {
					t.Fatalf("op %d: append index %d, model %d", i, idx, len(*model)-1)
				}
			case 1: // set, when non-empty
				if n := len(*model); n > 0 {
					at := int(op) % n
					buf.Set(at, i)
					(*model)[at] = i
				}
			case 2: // re-clone one side from the other
				buf.Release()
				if op&1 == 1 {
					b = a.Clone()
					modelB = append([]int(nil), modelA...)
				} else {
					a = b.Clone()
					modelA = append([]int(nil), modelB...)
				}
			case 3: // read back
				if n := len(*model); n > 0 {
					at := int(op) % n
					if got := buf.At(at); got != (*model)[at] {
						t.Fatalf("op %d: At(%d) = %d, model %d", i, at, got, (*model)[at])
					}
				}
			}
		}

		assertSlice(t, a.All(), modelA)
		assertSlice(t, b.All(), modelB)
		if a.Count() > a.Capacity() || b.Count() > b.Capacity() {
			t.Fatal("count exceeded capacity")
		}
	})
}

// FuzzErasedRoundTrip checks that erasing and casting back preserves
// contents for arbitrary appended values, and that a mismatched cast never
// succeeds once the buffer is non-empty.
func FuzzErasedRoundTrip(f *testing.F) {
	f.Add([]byte{})
	f.Add([]byte{1, 2, 3})
	f.Add([]byte{255, 0, 128})

	f.Fuzz(func(t *testing.T, elems []byte) {
		var ab buffers.AnyBuffer
		for _, e := range elems {
			buffers.AppendTo(&ab, e)
		}

		back, ok := buffers.Cast[byte](ab)
		if !ok {
			t.Fatal("cast to the appended type must succeed")
		}
		assertSlice(t, back.All(), elems)

		_, ok = buffers.Cast[string](ab)
		if wantOK := len(elems) == 0; ok != wantOK {
			t.Fatalf("cross-type cast with %d elements: ok=%v want %v", len(elems), ok, wantOK)
		}
	})
}
