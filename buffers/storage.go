package buffers

import (
	"fmt"
	"reflect"
	"sync"
	"sync/atomic"
)

// Storage is the reference-counted backing block for [Buffer]: a contiguous
// run of element slots of which the first Count are live. Storage is shared
// by reference — several buffers may point at the same block — and the
// reference count is what the copy-on-write machinery inspects to decide
// whether in-place mutation is safe.
//
// Most code should use [Buffer] instead and let it manage sharing; Storage
// is exported for callers that build their own ownership discipline on top.
type Storage[T any] struct {
	refs atomic.Int64

	// elems holds the live elements; len is the count, cap the capacity.
	// Slots beyond len stay zero so releasing live elements is the only
	// cleanup ever needed.
	elems []T

	// singleton marks the shared per-type empty instance. It has capacity 0,
	// is never mutated, and ignores reference counting.
	singleton bool
}

// emptyStorages caches the per-type empty singleton, keyed by element type.
// Returning one shared instance keeps empty construction and empty clones
// allocation-free.
var emptyStorages sync.Map // reflect.Type → *Storage[T] (as any)

func emptyStorage[T any]() *Storage[T] {
	rt := reflect.TypeFor[T]()
	if v, ok := emptyStorages.Load(rt); ok {
		return v.(*Storage[T])
	}
	v, _ := emptyStorages.LoadOrStore(rt, &Storage[T]{singleton: true})
	return v.(*Storage[T])
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// NewStorage allocates storage with at least minimumCapacity element slots
// and no live elements. A zero minimum returns the shared empty singleton
// without allocating; its capacity stays 0 forever. A negative minimum
// panics wrapping [ErrNegativeCapacity].
func NewStorage[T any](minimumCapacity int) *Storage[T] {
	if minimumCapacity < 0 {
		panic(fmt.Errorf("%w: %d", ErrNegativeCapacity, minimumCapacity))
	}
	if minimumCapacity == 0 {
		return emptyStorage[T]()
	}
	s := &Storage[T]{elems: make([]T, 0, minimumCapacity)}
	s.refs.Store(1)
	return s
}

// NewStorageFrom allocates storage holding a copy of src, with capacity at
// least len(src). An empty source yields the shared empty singleton.
func NewStorageFrom[T any](src []T) *Storage[T] {
	if len(src) == 0 {
		return emptyStorage[T]()
	}
	s := &Storage[T]{elems: make([]T, 0, len(src))}
	s.refs.Store(1)
	s.elems = append(s.elems, src...)
	return s
}

// StorageOf allocates storage holding the given elements.
func StorageOf[T any](elems ...T) *Storage[T] {
	return NewStorageFrom(elems)
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// Count returns the number of live elements.
func (s *Storage[T]) Count() int { return len(s.elems) }

// Capacity returns the number of element slots.
func (s *Storage[T]) Capacity() int { return cap(s.elems) }

// IsEmpty reports whether the storage holds no live elements.
func (s *Storage[T]) IsEmpty() bool { return len(s.elems) == 0 }

// Get returns the element at index together with a presence flag.
// Returns the zero value and false when index is out of range.
func (s *Storage[T]) Get(index int) (T, bool) {
	var zero T
	if index < 0 || index >= len(s.elems) {
		return zero, false
	}
	return s.elems[index], true
}

// At returns the element at index. An index outside [0, Count()-1] is a
// contract violation and panics wrapping [ErrIndexOutOfRange]; use
// [Storage.Get] for the recoverable variant.
func (s *Storage[T]) At(index int) T {
	s.boundsCheck(index)
	return s.elems[index]
}

// SetAt replaces the element at index. The bounds contract matches
// [Storage.At]. SetAt does not consult the reference count; callers that
// share storage must go through [Buffer.Set] for copy-on-write semantics.
func (s *Storage[T]) SetAt(index int, x T) {
	s.boundsCheck(index)
	s.elems[index] = x
}

// All returns a copy of the live elements.
func (s *Storage[T]) All() []T {
	out := make([]T, len(s.elems))
	copy(out, s.elems)
	return out
}

func (s *Storage[T]) boundsCheck(index int) {
	if index < 0 || index >= len(s.elems) {
		panic(fmt.Errorf("%w: index %d with count %d", ErrIndexOutOfRange, index, len(s.elems)))
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Append & growth
// ─────────────────────────────────────────────────────────────────────────────

// Append initializes the next free slot with x when capacity allows,
// returning the new element's index and true. When the storage is full it
// returns (0, false) and leaves the storage untouched; growth is the
// caller's decision. The empty singleton is always full.
func (s *Storage[T]) Append(x T) (int, bool) {
	if len(s.elems) == cap(s.elems) {
		return 0, false
	}
	s.elems = append(s.elems, x)
	return len(s.elems) - 1, true
}

// GrowAppended returns new storage holding the receiver's elements plus x,
// with capacity at least max(Count()+1, 2*Count()) so that repeated appends
// stay amortized O(1).
//
// moveExisting selects the transfer: true destructively moves the elements,
// leaving the receiver with count 0 (only valid when the receiver is
// uniquely referenced — the caller has checked); false copies, leaving the
// receiver untouched for its other holders.
func (s *Storage[T]) GrowAppended(x T, moveExisting bool) *Storage[T] {
	dst := &Storage[T]{elems: make([]T, 0, grownCapacity(len(s.elems), len(s.elems)+1))}
	dst.refs.Store(1)
	dst.elems = append(dst.elems, s.elems...)
	if moveExisting && !s.singleton {
		clear(s.elems)
		s.elems = s.elems[:0]
	}
	dst.elems = append(dst.elems, x)
	return dst
}

// Clone returns storage of the same capacity holding a copy of the live
// elements. Cloning the empty singleton returns it unchanged: it is
// immutable, so sharing it is always safe.
func (s *Storage[T]) Clone() *Storage[T] {
	if cap(s.elems) == 0 {
		return s
	}
	dst := &Storage[T]{elems: make([]T, 0, cap(s.elems))}
	dst.refs.Store(1)
	dst.elems = append(dst.elems, s.elems...)
	return dst
}

// ─────────────────────────────────────────────────────────────────────────────
// Reference counting
// ─────────────────────────────────────────────────────────────────────────────

// retain records one more holder. The singleton is immortal and uncounted.
func (s *Storage[T]) retain() {
	if s.singleton {
		return
	}
	s.refs.Add(1)
}

// release drops one holder. The last release zeroes the live elements so
// anything they reference becomes collectable.
func (s *Storage[T]) release() {
	if s.singleton {
		return
	}
	if s.refs.Add(-1) == 0 {
		clear(s.elems)
		s.elems = s.elems[:0]
	}
}

// isUnique reports whether exactly one holder references the storage, which
// is what licenses in-place mutation. The singleton always reports false:
// it is shared by construction.
func (s *Storage[T]) isUnique() bool {
	if s.singleton {
		return false
	}
	return s.refs.Load() == 1
}
