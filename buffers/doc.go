// Package buffers provides value-semantic, copy-on-write growable arrays,
// with and without static knowledge of the element type.
//
// # Typed buffers
//
// The central type is [Buffer][T], a handle to reference-counted backing
// storage. Cloning a buffer is O(1) and shares the storage; the first
// mutation through either handle copies the elements first, so the handles
// never observe each other's writes:
//
//	a := buffers.BufferOf(1, 2, 3)
//	b := a.Clone()      // shares storage with a
//	b.Append(4)         // b copies, then appends
//	a.Count()           // → 3, unchanged
//	b.Count()           // → 4
//
// A handle that is no longer needed may call [Buffer.Release]; this is
// optional (the garbage collector reclaims storage regardless) but keeps
// reference counts exact, letting surviving handles mutate in place instead
// of copying.
//
// Note that plain assignment of a Buffer value copies the handle without
// adjusting the reference count; the result is an alias of the original, not
// a logical copy. Use Clone for the logical copy.
//
// # Type-erased buffers
//
// [AnyBuffer] wraps the same storage behind [AnyStorage], an interface that
// does not name the element type. Code can hold and append to buffers whose
// element type is known only at runtime, then recover typed access with a
// checked downcast:
//
//	ab := buffers.Erase(buffers.BufferOf("x", "y"))
//	ab.ElementType()                  // → typeid.For[string]()
//	s, ok := buffers.Cast[string](ab) // ok, zero-copy
//	_, ok = buffers.Cast[int](ab)     // !ok: wrong element type
//
// Go methods cannot introduce new type parameters, so the operations that
// need the element type — [Cast], [MustCast], [AppendTo], [Elems],
// [MutableElems], [StorageElems] — are package-level functions.
//
// # Empty storage
//
// Zero-capacity storage is a shared singleton: creating or cloning empty
// buffers never allocates, and a capacity-0 erased storage is usable for
// every element type ([AnyStorage.IsUsableFor] returns true regardless of
// the type that created it). The first append specializes it into real
// storage for the appended type.
//
// # Errors
//
// Expected outcomes — a failed [Cast], an absent [Buffer.Get] — are
// (value, bool) returns. Contract violations — out-of-range indexes, erased
// access with the wrong element type — panic with values wrapping the
// package sentinel errors; see [ErrIndexOutOfRange] and [ErrTypeMismatch].
//
// # Concurrency
//
// Reference counts are atomic, so buffer handles may be handed between
// goroutines. The copy-on-write discipline itself is not synchronized:
// mutating handles that share storage from multiple goroutines concurrently
// is undefined behavior. This matches the single-threaded design of the
// storage layer and is a documented constraint, not an oversight.
package buffers
