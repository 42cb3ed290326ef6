package mempool

import (
	"fmt"
	"log/slog"

	"github.com/RoaringBitmap/roaring/v2"
)

// CheckedPool wraps a FixedBlockPool with debug-mode misuse detection.
// It records the index of every live block in a bitmap, turning double
// frees and foreign handles into errors instead of silent free-list
// corruption. Alloc and Free stay O(1) amortized, but with bitmap
// overhead; use the plain FixedBlockPool on hot paths once calling code
// is trusted.
//
// A handle whose index happens to be valid for this pool but that came
// from a different pool of the same shape cannot be told apart from a
// legitimate block; the bitmap tracks indexes, not provenance.
type CheckedPool struct {
	p      *FixedBlockPool
	live   *roaring.Bitmap
	logger *slog.Logger
}

// NewCheckedPool creates a pool with double-free detection enabled.
func NewCheckedPool(blockSize, blockCount int, opts ...Option) (*CheckedPool, error) {
	o := applyOptions(opts)
	p, err := NewPool(blockSize, blockCount, opts...)
	if err != nil {
		return nil, err
	}
	return &CheckedPool{p: p, live: roaring.New(), logger: o.logger}, nil
}

// Alloc pops a block and marks its index live.
func (c *CheckedPool) Alloc() (Block, error) {
	b, err := c.p.Alloc()
	if err != nil {
		return Block{}, err
	}
	c.live.Add(uint32(b.index))
	return b, nil
}

// Free validates b before returning it to the free list. Freeing a
// block that is not currently live yields ErrDoubleFree; a handle that
// could not have come from this pool yields ErrForeignBlock.
func (c *CheckedPool) Free(b Block) error {
	if b.buf == nil || b.index < 0 || b.index >= c.p.blockCount {
		c.logger.Warn("free of foreign block", slog.Int("index", b.index))
		return fmt.Errorf("%w: index %d", ErrForeignBlock, b.index)
	}
	if !c.live.Contains(uint32(b.index)) {
		c.logger.Warn("double free", slog.Int("index", b.index))
		return fmt.Errorf("%w: block %d", ErrDoubleFree, b.index)
	}
	c.live.Remove(uint32(b.index))
	c.p.Free(b)
	return nil
}

// LiveBlocks returns the number of blocks currently allocated.
func (c *CheckedPool) LiveBlocks() int {
	return int(c.live.GetCardinality())
}

// BlockSize returns the size of each block in bytes.
func (c *CheckedPool) BlockSize() int { return c.p.BlockSize() }

// BlockCount returns the total number of blocks.
func (c *CheckedPool) BlockCount() int { return c.p.BlockCount() }

// FreeBlocks returns the current free-list length.
func (c *CheckedPool) FreeBlocks() int { return c.p.FreeBlocks() }

// Metrics returns a snapshot of the underlying pool statistics.
func (c *CheckedPool) Metrics() PoolMetrics { return c.p.Metrics() }

// Destroy releases the backing store. Blocks still live are logged and
// become dangling, same as the unchecked pool.
func (c *CheckedPool) Destroy() error {
	if n := c.live.GetCardinality(); n > 0 {
		c.logger.Warn("destroying pool with live blocks", slog.Uint64("live", n))
	}
	c.live.Clear()
	return c.p.Destroy()
}
