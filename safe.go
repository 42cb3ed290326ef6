package mempool

import "sync"

// SafePool is a mutex-protected wrapper around FixedBlockPool. The base
// pool performs no internal locking; SafePool is the one-lock-per-
// instance synchronization the concurrency contract calls for.
type SafePool struct {
	mu sync.Mutex
	p  *FixedBlockPool
}

// NewSafePool creates a thread-safe fixed-block pool.
func NewSafePool(blockSize, blockCount int, opts ...Option) (*SafePool, error) {
	p, err := NewPool(blockSize, blockCount, opts...)
	if err != nil {
		return nil, err
	}
	return &SafePool{p: p}, nil
}

// Alloc thread-safely pops a block from the free list.
func (s *SafePool) Alloc() (Block, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.p.Alloc()
}

// Free thread-safely pushes b back onto the free list. The caller
// contract of FixedBlockPool.Free still applies.
func (s *SafePool) Free(b Block) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.p.Free(b)
}

// BlockSize returns the size of each block in bytes.
func (s *SafePool) BlockSize() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.p.BlockSize()
}

// BlockCount returns the total number of blocks.
func (s *SafePool) BlockCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.p.BlockCount()
}

// FreeBlocks thread-safely returns the current free-list length.
func (s *SafePool) FreeBlocks() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.p.FreeBlocks()
}

// Metrics thread-safely returns a snapshot of pool statistics.
func (s *SafePool) Metrics() PoolMetrics {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.p.Metrics()
}

// Destroy thread-safely releases the pool's backing store.
func (s *SafePool) Destroy() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.p.Destroy()
}

// SafeArena is a mutex-protected wrapper around BumpArena.
type SafeArena struct {
	mu sync.Mutex
	a  *BumpArena
}

// NewSafeArena creates a thread-safe bump arena of capacity bytes.
func NewSafeArena(capacity int, opts ...Option) (*SafeArena, error) {
	a, err := NewArena(capacity, opts...)
	if err != nil {
		return nil, err
	}
	return &SafeArena{a: a}, nil
}

// Alloc thread-safely bumps the cursor by an aligned request.
func (s *SafeArena) Alloc(size, align int) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Alloc(size, align)
}

// AllocBytes thread-safely allocates n bytes with pointer-size alignment.
func (s *SafeArena) AllocBytes(n int) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.AllocBytes(n)
}

// Reset thread-safely moves the cursor back to zero. Slices handed out
// before the Reset become invalid; callers must coordinate that
// themselves, the mutex only serializes the cursor update.
func (s *SafeArena) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.Reset()
}

// Offset thread-safely returns the current cursor position.
func (s *SafeArena) Offset() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Offset()
}

// Capacity thread-safely returns the region length in bytes.
func (s *SafeArena) Capacity() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Capacity()
}

// Metrics thread-safely returns a snapshot of arena statistics.
func (s *SafeArena) Metrics() ArenaMetrics {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Metrics()
}

// Destroy thread-safely releases the arena's backing store.
func (s *SafeArena) Destroy() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Destroy()
}

// SafeNew thread-safely returns a pointer to a zeroed T inside the arena.
func SafeNew[T any](s *SafeArena) (*T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return New[T](s.a)
}

// SafeNewSlice thread-safely allocates a slice of n elements of T.
func SafeNewSlice[T any](s *SafeArena, n int) ([]T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return NewSlice[T](s.a, n)
}
