package mempool

import "fmt"

// BackingStore owns one contiguous block of raw memory with a fixed
// capacity. Pools and arenas are layered on top of it; the store itself
// hands out nothing and tracks nothing beyond the buffer.
//
// A store is created once, never resized, and destroyed exactly once.
// Any operation after Destroy panics, mirroring raw heap semantics.
type BackingStore struct {
	buf     []byte
	release func([]byte) error
}

// NewStore allocates a heap-backed store of capacity bytes.
func NewStore(capacity int) (*BackingStore, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: capacity %d must be positive", ErrInvalidConfig, capacity)
	}
	return &BackingStore{buf: make([]byte, capacity)}, nil
}

// NewPageStore allocates a store backed by an anonymous private mapping
// obtained directly from the OS. The buffer is page-aligned and its pages
// are returned to the OS on Destroy rather than waiting for the garbage
// collector. Falls back to a heap allocation on platforms without mmap.
// Fails with ErrAllocFailed if the mapping cannot be created.
func NewPageStore(capacity int) (*BackingStore, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: capacity %d must be positive", ErrInvalidConfig, capacity)
	}
	buf, release, err := mapAnon(capacity)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAllocFailed, err)
	}
	return &BackingStore{buf: buf, release: release}, nil
}

// Size returns the fixed capacity in bytes.
func (s *BackingStore) Size() int {
	s.panicIfDestroyed()
	return len(s.buf)
}

// Bytes returns the full backing buffer. Writes through the returned
// slice are visible to every pool or arena layered over the store.
func (s *BackingStore) Bytes() []byte {
	s.panicIfDestroyed()
	return s.buf
}

// Destroy releases the backing memory. It must be called exactly once;
// calling it again, or calling any other method afterwards, panics.
// Every handle issued by a pool or arena over this store is invalid
// after Destroy.
func (s *BackingStore) Destroy() error {
	s.panicIfDestroyed()
	var err error
	if s.release != nil {
		err = s.release(s.buf)
	}
	s.buf = nil
	s.release = nil
	return err
}

func (s *BackingStore) panicIfDestroyed() {
	if s.buf == nil {
		panic("mempool: use after Destroy()")
	}
}
