package mempool

import (
	"math"
	"unsafe"
)

// New returns a pointer to a zeroed T stored inside the arena, aligned
// to T's natural alignment. The pointer is valid until the next Reset
// or Destroy.
func New[T any](a *BumpArena) (*T, error) {
	var zero T
	b, err := a.Alloc(int(unsafe.Sizeof(zero)), int(unsafe.Alignof(zero)))
	if err != nil {
		return nil, err
	}
	clear(b)
	return (*T)(unsafe.Pointer(&b[0])), nil
}

// NewUninitialized returns a *T located in the arena without zeroing.
// Faster than New, but the contents are whatever the region last held.
func NewUninitialized[T any](a *BumpArena) (*T, error) {
	var zero T
	b, err := a.Alloc(int(unsafe.Sizeof(zero)), int(unsafe.Alignof(zero)))
	if err != nil {
		return nil, err
	}
	return (*T)(unsafe.Pointer(&b[0])), nil
}

// NewSlice allocates a slice of n elements of T inside the arena.
// Elements are not initialized. Returns a nil slice if n <= 0.
func NewSlice[T any](a *BumpArena, n int) ([]T, error) {
	if n <= 0 {
		return nil, nil
	}
	var zero T
	total, err := sliceBytes(int(unsafe.Sizeof(zero)), n)
	if err != nil {
		return nil, err
	}
	b, err := a.Alloc(total, int(unsafe.Alignof(zero)))
	if err != nil {
		return nil, err
	}
	return unsafe.Slice((*T)(unsafe.Pointer(&b[0])), n), nil
}

// NewSliceZeroed allocates a slice of n elements of T with zeroed
// memory. Slower than NewSlice.
func NewSliceZeroed[T any](a *BumpArena, n int) ([]T, error) {
	if n <= 0 {
		return nil, nil
	}
	var zero T
	total, err := sliceBytes(int(unsafe.Sizeof(zero)), n)
	if err != nil {
		return nil, err
	}
	b, err := a.Alloc(total, int(unsafe.Alignof(zero)))
	if err != nil {
		return nil, err
	}
	clear(b)
	return unsafe.Slice((*T)(unsafe.Pointer(&b[0])), n), nil
}

// sliceBytes computes elem*n, rejecting products that overflow int.
func sliceBytes(elem, n int) (int, error) {
	if elem > 0 && n > math.MaxInt/elem {
		return 0, fmtConfigErr("%d elements of %d bytes overflow the address space", n, elem)
	}
	return elem * n, nil
}
