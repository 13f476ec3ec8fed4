package buffers

import (
	"fmt"

	"github.com/hasbyte1/go-cow-buffers/typeid"
)

// AnyStorage is the type-erased view of [Storage]: element count, capacity,
// and the element type are available without naming the element type at
// compile time. Every *Storage[T] is an AnyStorage.
//
// The interface is closed — only this package implements it — so a checked
// type assertion back to *Storage[T] is always the complete case analysis.
type AnyStorage interface {
	// Count returns the number of live elements.
	Count() int
	// Capacity returns the number of element slots.
	Capacity() int
	// IsEmpty reports whether the storage holds no live elements.
	IsEmpty() bool

	// ElementType identifies the element type the storage was built for.
	// For capacity-0 storage the reported type is incidental — any empty
	// storage serves any element type — so callers deciding compatibility
	// must use IsUsableFor, never ElementType alone.
	ElementType() typeid.Token

	// IsUsableFor reports whether the storage can hold elements of the
	// given type: the types match, or the storage is empty with capacity 0.
	IsUsableFor(tok typeid.Token) bool

	// CloneAny returns storage of the same capacity and element type
	// holding a copy of the live elements; the erased analogue of
	// [Storage.Clone].
	CloneAny() AnyStorage

	// AppendAny and GrowAppendedAny mirror Append and GrowAppended, taking
	// the element as any. A value whose dynamic type is not the element
	// type is a contract violation and panics wrapping ErrTypeMismatch.
	AppendAny(x any) (int, bool)
	GrowAppendedAny(x any, moveExisting bool) AnyStorage

	retainAny()
	releaseAny()
	isUniqueAny() bool
}

// EmptyAnyStorage returns the universal empty storage: capacity 0, usable
// for every element type. Its ElementType is a sentinel that callers must
// not interpret.
func EmptyAnyStorage() AnyStorage {
	return emptyStorage[struct{}]()
}

// StorageElems returns the live element slice of s, which must be a
// *Storage[T]. This is the trusted fast path for callers that have already
// established the element type; anything else is a contract violation and
// panics wrapping [ErrTypeMismatch]. The slice aliases the storage: it is
// valid until the storage grows, and writing through it bypasses
// copy-on-write.
func StorageElems[T any](s AnyStorage) []T {
	c, ok := s.(*Storage[T])
	if !ok {
		panic(fmt.Errorf("%w: storage holds %s, not %s",
			ErrTypeMismatch, s.ElementType(), typeid.For[T]()))
	}
	return c.elems
}

// ─────────────────────────────────────────────────────────────────────────────
// *Storage[T] as AnyStorage
// ─────────────────────────────────────────────────────────────────────────────

// ElementType identifies T.
func (s *Storage[T]) ElementType() typeid.Token { return typeid.For[T]() }

// IsUsableFor reports whether the storage can hold elements of the given
// type. Capacity-0 storage is usable for every type: it holds no slots, so
// no per-type behavior is ever exercised.
func (s *Storage[T]) IsUsableFor(tok typeid.Token) bool {
	return tok == typeid.For[T]() || cap(s.elems) == 0
}

// CloneAny implements [AnyStorage].
func (s *Storage[T]) CloneAny() AnyStorage { return s.Clone() }

func (s *Storage[T]) AppendAny(x any) (int, bool) {
	return s.Append(s.assertElem(x))
}

func (s *Storage[T]) GrowAppendedAny(x any, moveExisting bool) AnyStorage {
	return s.GrowAppended(s.assertElem(x), moveExisting)
}

func (s *Storage[T]) assertElem(x any) T {
	v, ok := x.(T)
	if !ok {
		panic(fmt.Errorf("%w: appending %T to storage of %s",
			ErrTypeMismatch, x, typeid.For[T]()))
	}
	return v
}

func (s *Storage[T]) retainAny()        { s.retain() }
func (s *Storage[T]) releaseAny()       { s.release() }
func (s *Storage[T]) isUniqueAny() bool { return s.isUnique() }
