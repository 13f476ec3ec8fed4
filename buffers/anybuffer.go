package buffers

import (
	"fmt"

	"github.com/hasbyte1/go-cow-buffers/typeid"
)

// AnyBuffer is the value-semantic handle to type-erased storage. It follows
// the same copy-on-write discipline as [Buffer] — [AnyBuffer.Clone] shares
// storage, the first mutation through a sharing handle copies — while the
// element type is known only at runtime.
//
// Operations that need the element type are package-level functions: [Cast]
// and [MustCast] recover a typed [Buffer], [AppendTo] appends, [Elems] and
// [MutableElems] expose the elements as a slice.
//
// The zero AnyBuffer is an empty buffer usable for every element type; the
// first append specializes it.
type AnyBuffer struct {
	storage AnyStorage
}

// Erase wraps a typed buffer into type-erased form. Zero-copy: the erased
// handle shares b's storage, holding its own interest in it.
func Erase[T any](b Buffer[T]) AnyBuffer {
	s := b.storageOrEmpty()
	s.retain()
	return AnyBuffer{storage: s}
}

func (ab AnyBuffer) storageOrEmpty() AnyStorage {
	if ab.storage == nil {
		return EmptyAnyStorage()
	}
	return ab.storage
}

// ─────────────────────────────────────────────────────────────────────────────
// Lifecycle
// ─────────────────────────────────────────────────────────────────────────────

// Clone returns the logical copy of the buffer: a new handle sharing the
// receiver's storage. O(1); the next mutation through either handle pays
// for the element copy instead.
func (ab AnyBuffer) Clone() AnyBuffer {
	s := ab.storageOrEmpty()
	s.retainAny()
	return AnyBuffer{storage: s}
}

// Release ends this handle's interest in its storage and resets the handle
// to the empty state; see [Buffer.Release].
func (ab *AnyBuffer) Release() {
	if ab.storage != nil {
		ab.storage.releaseAny()
		ab.storage = nil
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// Count returns the number of elements.
func (ab AnyBuffer) Count() int { return ab.storageOrEmpty().Count() }

// Capacity returns the number of element slots in the backing storage.
func (ab AnyBuffer) Capacity() int { return ab.storageOrEmpty().Capacity() }

// IsEmpty reports whether the buffer holds no elements.
func (ab AnyBuffer) IsEmpty() bool { return ab.storageOrEmpty().IsEmpty() }

// ElementType identifies the element type of the backing storage. For an
// empty buffer the reported type is incidental; use [AnyBuffer.IsUsableFor]
// to decide compatibility.
func (ab AnyBuffer) ElementType() typeid.Token { return ab.storageOrEmpty().ElementType() }

// IsUsableFor reports whether the buffer can hold elements of the given
// type: the types match, or the buffer is empty with capacity 0.
func (ab AnyBuffer) IsUsableFor(tok typeid.Token) bool {
	return ab.storageOrEmpty().IsUsableFor(tok)
}

// ─────────────────────────────────────────────────────────────────────────────
// Typed access (package-level: methods cannot add type parameters)
// ─────────────────────────────────────────────────────────────────────────────

// Cast attempts to recover typed access to the erased buffer.
//
// It succeeds zero-copy — the returned buffer shares ab's storage, holding
// its own interest — when the element type is T. It also succeeds when ab is
// empty with capacity 0: empty storage serves every element type, so the
// result adopts T's shared empty storage. Any other element type returns
// (zero, false); a failed cast is an ordinary outcome, not an error.
func Cast[T any](ab AnyBuffer) (Buffer[T], bool) {
	s := ab.storage
	if s == nil || s.Capacity() == 0 {
		return Buffer[T]{storage: emptyStorage[T]()}, true
	}
	c, ok := s.(*Storage[T])
	if !ok {
		return Buffer[T]{}, false
	}
	c.retain()
	return Buffer[T]{storage: c}, true
}

// MustCast is [Cast] that treats failure as a contract violation, panicking
// wrapping [ErrTypeMismatch].
func MustCast[T any](ab AnyBuffer) Buffer[T] {
	b, ok := Cast[T](ab)
	if !ok {
		panic(fmt.Errorf("%w: buffer holds %s, not %s",
			ErrTypeMismatch, ab.ElementType(), typeid.For[T]()))
	}
	return b
}

// AppendTo adds x to the end of the erased buffer and returns its index,
// following the same uniqueness-before-capacity copy-on-write protocol as
// [Buffer.Append]. An empty buffer — whatever type created it — specializes
// into real storage for T on the first append. A buffer holding a different
// element type is a contract violation and panics wrapping
// [ErrTypeMismatch]; check [AnyBuffer.IsUsableFor] first when in doubt.
func AppendTo[T any](ab *AnyBuffer, x T) int {
	s := ab.storageOrEmpty()
	if !s.IsUsableFor(typeid.For[T]()) {
		panic(fmt.Errorf("%w: appending %s to buffer of %s",
			ErrTypeMismatch, typeid.For[T](), s.ElementType()))
	}
	// Capacity-0 storage created for another type cannot take elements of
	// T; swap in T's empty storage so growth specializes correctly.
	if s.Capacity() == 0 {
		if _, ok := s.(*Storage[T]); !ok {
			s.releaseAny()
			s = AnyStorage(emptyStorage[T]())
		}
	}
	unique := s.isUniqueAny()
	if unique {
		if i, ok := s.AppendAny(x); ok {
			ab.storage = s
			return i
		}
	}
	grown := s.GrowAppendedAny(x, unique)
	s.releaseAny()
	ab.storage = grown
	return grown.Count() - 1
}

// Elems returns the elements of the erased buffer as a []T. The element
// type must be T; anything else is a contract violation and panics wrapping
// [ErrTypeMismatch], except that an empty buffer yields nil for every T.
// The slice aliases the storage: treat it as read-only and invalidated by
// the next mutation.
func Elems[T any](ab AnyBuffer) []T {
	s := ab.storage
	if s == nil || s.Capacity() == 0 {
		return nil
	}
	return StorageElems[T](s)
}

// MutableElems returns the elements as a writable []T, passing the
// copy-on-write gate first: shared storage is copied before the slice is
// yielded, so writes through it stay invisible to other handles. The type
// contract matches [Elems]. The slice is invalidated by the next mutation
// of the buffer.
func MutableElems[T any](ab *AnyBuffer) []T {
	s := ab.storage
	if s == nil || s.Capacity() == 0 {
		return nil
	}
	c, ok := s.(*Storage[T])
	if !ok {
		panic(fmt.Errorf("%w: storage holds %s, not %s",
			ErrTypeMismatch, s.ElementType(), typeid.For[T]()))
	}
	if !c.isUnique() {
		cloned := c.Clone()
		c.release()
		ab.storage = cloned
		c = cloned
	}
	return c.elems
}
