// Package typeid provides lightweight runtime type tokens used to tag and
// check the element type of type-erased storage.
//
// A [Token] identifies one concrete Go type within a single process run:
//
//	ti := typeid.For[int]()
//	ts := typeid.For[string]()
//	ti == typeid.For[int]() // → true
//	ti == ts                // → false
//
// Tokens are comparable values and can be used directly as map keys:
//
//	columns := map[typeid.Token]int{
//	    typeid.For[int]():    0,
//	    typeid.For[string](): 1,
//	}
//
// # Ordering
//
// [Compare] defines a total order over tokens that is consistent within a
// process run but otherwise arbitrary. It exists so token sets can be sorted
// and deduplicated; it carries no meaning and must never be persisted or
// compared across runs.
package typeid
