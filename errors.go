package mempool

import (
	"errors"
	"fmt"
)

var (
	// ErrPoolExhausted is returned by Alloc when the free list is empty.
	// This is a normal, recoverable condition: free a block or create a
	// larger pool.
	ErrPoolExhausted = errors.New("mempool: pool exhausted")

	// ErrArenaExhausted is returned by Alloc when the aligned request does
	// not fit in the remaining region. The cursor is left unchanged, so the
	// caller may retry with a smaller size or Reset the arena.
	ErrArenaExhausted = errors.New("mempool: arena exhausted")

	// ErrInvalidConfig indicates a bad constructor or allocation argument:
	// non-positive capacity or size, block size below MinBlockSize, a
	// non-power-of-two alignment, or an out-of-bounds sub-region.
	ErrInvalidConfig = errors.New("mempool: invalid configuration")

	// ErrAllocFailed indicates the system could not provide backing memory.
	ErrAllocFailed = errors.New("mempool: backing allocation failed")

	// ErrDoubleFree is returned by CheckedPool.Free for a block that is not
	// currently allocated.
	ErrDoubleFree = errors.New("mempool: double free")

	// ErrForeignBlock is returned by CheckedPool.Free for a handle that did
	// not come from the pool.
	ErrForeignBlock = errors.New("mempool: block does not belong to pool")
)

// fmtConfigErr wraps ErrInvalidConfig with argument detail.
func fmtConfigErr(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...)
}
