package buffers

import "iter"

// Buffer is a value-semantic handle to reference-counted [Storage]. Handles
// produced by [Buffer.Clone] share storage until one of them mutates; the
// mutating handle copies the elements first, so clones never observe each
// other's writes.
//
// The zero Buffer is an empty buffer ready for use.
type Buffer[T any] struct {
	storage *Storage[T]
}

// NewBuffer returns a buffer backed by storage with at least minimumCapacity
// slots. A zero minimum allocates nothing. A negative minimum panics
// wrapping [ErrNegativeCapacity].
func NewBuffer[T any](minimumCapacity int) Buffer[T] {
	return Buffer[T]{storage: NewStorage[T](minimumCapacity)}
}

// NewBufferFrom returns a buffer holding a copy of src.
func NewBufferFrom[T any](src []T) Buffer[T] {
	return Buffer[T]{storage: NewStorageFrom(src)}
}

// BufferOf returns a buffer holding the given elements.
func BufferOf[T any](elems ...T) Buffer[T] {
	return Buffer[T]{storage: NewStorageFrom(elems)}
}

// storageOrEmpty resolves the zero Buffer to the shared empty storage
// without binding the handle to it.
func (b Buffer[T]) storageOrEmpty() *Storage[T] {
	if b.storage == nil {
		return emptyStorage[T]()
	}
	return b.storage
}

// ensureStorage binds the zero Buffer to the shared empty storage so
// mutators have a block to grow from.
func (b *Buffer[T]) ensureStorage() *Storage[T] {
	if b.storage == nil {
		b.storage = emptyStorage[T]()
	}
	return b.storage
}

// ─────────────────────────────────────────────────────────────────────────────
// Lifecycle
// ─────────────────────────────────────────────────────────────────────────────

// Clone returns the logical copy of the buffer: a new handle sharing the
// receiver's storage. O(1), no element copying; the next mutation through
// either handle pays for the copy instead.
func (b Buffer[T]) Clone() Buffer[T] {
	s := b.storageOrEmpty()
	s.retain()
	return Buffer[T]{storage: s}
}

// Release ends this handle's interest in its storage and resets the handle
// to the empty state. When the last interested handle releases, the live
// elements are cleared so anything they reference becomes collectable.
//
// Release is optional — the garbage collector reclaims unreferenced storage
// either way — but releasing dropped clones keeps the reference count exact,
// which lets surviving handles mutate in place rather than copy. Releasing
// an already-released or zero buffer is a no-op.
func (b *Buffer[T]) Release() {
	if b.storage != nil {
		b.storage.release()
		b.storage = nil
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// Count returns the number of elements.
func (b Buffer[T]) Count() int { return b.storageOrEmpty().Count() }

// Capacity returns the number of element slots in the backing storage.
func (b Buffer[T]) Capacity() int { return b.storageOrEmpty().Capacity() }

// IsEmpty reports whether the buffer holds no elements.
func (b Buffer[T]) IsEmpty() bool { return b.storageOrEmpty().IsEmpty() }

// Get returns the element at index together with a presence flag.
// Returns the zero value and false when index is out of range.
func (b Buffer[T]) Get(index int) (T, bool) { return b.storageOrEmpty().Get(index) }

// At returns the element at index. An index outside [0, Count()-1] is a
// contract violation and panics wrapping [ErrIndexOutOfRange]; use
// [Buffer.Get] for the recoverable variant.
func (b Buffer[T]) At(index int) T { return b.storageOrEmpty().At(index) }

// All returns a copy of the elements.
func (b Buffer[T]) All() []T { return b.storageOrEmpty().All() }

// Values returns an iterator over the elements in index order. The iterator
// covers the elements present when Values was called: appends after that
// point are never yielded, and mutations through other handles are never
// observed. An in-place Set through the same unique handle may be.
func (b Buffer[T]) Values() iter.Seq[T] {
	elems := b.storageOrEmpty().elems
	return func(yield func(T) bool) {
		for _, v := range elems {
			if !yield(v) {
				return
			}
		}
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Mutators
// ─────────────────────────────────────────────────────────────────────────────

// Append adds x to the end of the buffer and returns its index.
//
// The copy-on-write protocol checks uniqueness before capacity: only a
// uniquely-held storage with a free slot is appended in place. Otherwise new
// storage is grown — moving the elements when the old storage was unique,
// copying when it was shared so the other holders keep their view.
func (b *Buffer[T]) Append(x T) int {
	s := b.ensureStorage()
	unique := s.isUnique()
	if unique {
		if i, ok := s.Append(x); ok {
			return i
		}
	}
	grown := s.GrowAppended(x, unique)
	s.release()
	b.storage = grown
	return grown.Count() - 1
}

// Set replaces the element at index. The bounds contract matches
// [Buffer.At]. Set is a mutation, so shared storage is copied first; other
// handles never observe the write.
func (b *Buffer[T]) Set(index int, x T) {
	s := b.ensureStorage()
	s.boundsCheck(index)
	if !s.isUnique() {
		cloned := s.Clone()
		s.release()
		b.storage = cloned
		s = cloned
	}
	s.SetAt(index, x)
}
