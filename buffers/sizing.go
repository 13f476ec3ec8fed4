package buffers

// grownCapacity returns the slot count for storage grown from count live
// elements, at least minimum. Doubling the live count keeps append amortized
// O(1): across N appends the total element transfer cost is O(N).
//
// Callers guarantee count >= 0 and minimum >= 0.
func grownCapacity(count, minimum int) int {
	grown := 2 * count
	if grown < count+1 {
		grown = count + 1
	}
	if grown < minimum {
		grown = minimum
	}
	return grown
}
