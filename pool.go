package mempool

import (
	"encoding/binary"
	"log/slog"
	"math"
)

// MinBlockSize is the smallest allowed block size. A free block's first
// eight bytes hold the index of the next free block, so blocks must be
// at least that large.
const MinBlockSize = 8

// sentinel terminates the free list.
const sentinel = ^uint64(0)

// FixedBlockPool partitions a BackingStore into equal-size blocks and
// manages them with a singly linked free list threaded through the free
// blocks' own bytes. Alloc and Free are O(1); construction is
// O(blockCount) to thread the initial list.
//
// Freed blocks are reused in LIFO order: the most recently freed block
// is the next one allocated.
//
// Not goroutine-safe. Use SafePool for concurrent access.
type FixedBlockPool struct {
	store      *BackingStore
	blockSize  int
	blockCount int
	head       uint64 // index of the first free block, sentinel if none
	freeBlocks int
	logger     *slog.Logger
}

// NewPool creates a pool of blockCount blocks of blockSize bytes each,
// backed by a store of exactly blockSize*blockCount bytes.
// blockSize must be at least MinBlockSize and blockCount positive.
func NewPool(blockSize, blockCount int, opts ...Option) (*FixedBlockPool, error) {
	if blockSize < MinBlockSize {
		return nil, fmtConfigErr("block size %d below minimum %d", blockSize, MinBlockSize)
	}
	if blockCount <= 0 {
		return nil, fmtConfigErr("block count %d must be positive", blockCount)
	}
	if blockSize > math.MaxInt/blockCount {
		return nil, fmtConfigErr("%d blocks of %d bytes overflow the address space",
			blockCount, blockSize)
	}
	o := applyOptions(opts)
	store, err := o.newStore(blockSize * blockCount)
	if err != nil {
		return nil, err
	}

	p := &FixedBlockPool{
		store:      store,
		blockSize:  blockSize,
		blockCount: blockCount,
		head:       0,
		freeBlocks: blockCount,
		logger:     o.logger,
	}

	// Thread the free list: block i links to block i+1, the last block
	// links to the sentinel.
	buf := store.Bytes()
	for i := 0; i < blockCount; i++ {
		next := sentinel
		if i+1 < blockCount {
			next = uint64(i + 1)
		}
		binary.LittleEndian.PutUint64(buf[i*blockSize:], next)
	}

	p.logger.Debug("pool created",
		slog.Int("block_size", blockSize),
		slog.Int("block_count", blockCount),
		slog.Bool("page_backed", o.pageBacked))
	return p, nil
}

// Block is a handle to one allocated pool block. The caller owns all
// BlockSize bytes of Bytes() until the block is freed. A zero Block is
// not a valid handle.
type Block struct {
	buf   []byte
	index int
}

// Bytes returns the block's memory, exactly BlockSize bytes. The
// contents are whatever the block last held; they are not zeroed.
func (b Block) Bytes() []byte { return b.buf }

// Index returns the block's position within the pool, in [0, BlockCount).
func (b Block) Index() int { return b.index }

// Alloc pops the head of the free list. Fails with ErrPoolExhausted
// when no blocks are free; this is an expected condition, not a bug.
func (p *FixedBlockPool) Alloc() (Block, error) {
	storeBuf := p.store.Bytes()
	if p.head == sentinel {
		return Block{}, ErrPoolExhausted
	}
	i := int(p.head)
	off := i * p.blockSize
	buf := storeBuf[off : off+p.blockSize : off+p.blockSize]
	p.head = binary.LittleEndian.Uint64(buf)
	p.freeBlocks--
	return Block{buf: buf, index: i}, nil
}

// Free pushes b back onto the free list.
//
// Caller contract: b must have come from a prior Alloc on this pool and
// must not already be free. Double frees and foreign handles corrupt
// the free list; the pool performs no runtime detection to keep Free
// O(1) with zero overhead. CheckedPool adds that detection.
func (p *FixedBlockPool) Free(b Block) {
	binary.LittleEndian.PutUint64(b.buf, p.head)
	p.head = uint64(b.index)
	p.freeBlocks++
}

// BlockSize returns the size of each block in bytes.
func (p *FixedBlockPool) BlockSize() int {
	p.panicIfDestroyed()
	return p.blockSize
}

// BlockCount returns the total number of blocks.
func (p *FixedBlockPool) BlockCount() int {
	p.panicIfDestroyed()
	return p.blockCount
}

// FreeBlocks returns the number of blocks currently on the free list.
func (p *FixedBlockPool) FreeBlocks() int {
	p.panicIfDestroyed()
	return p.freeBlocks
}

// Destroy releases the pool's backing store. Outstanding blocks become
// dangling; the caller is responsible for having freed them. Any pool
// operation afterwards panics.
func (p *FixedBlockPool) Destroy() error {
	p.logger.Debug("pool destroyed",
		slog.Int("blocks_outstanding", p.blockCount-p.freeBlocks))
	p.freeBlocks = 0
	return p.store.Destroy()
}

func (p *FixedBlockPool) panicIfDestroyed() {
	p.store.panicIfDestroyed()
}
