package mempool

// PoolMetrics contains statistical information about a FixedBlockPool.
type PoolMetrics struct {
	BlockSize   int     // Size of each block in bytes
	BlockCount  int     // Total number of blocks
	FreeBlocks  int     // Blocks currently on the free list
	InUseBlocks int     // Blocks currently handed out
	Utilization float64 // Ratio of in-use to total blocks (0.0-1.0)
}

// Metrics returns a snapshot of pool statistics.
func (p *FixedBlockPool) Metrics() PoolMetrics {
	p.panicIfDestroyed()
	inUse := p.blockCount - p.freeBlocks
	return PoolMetrics{
		BlockSize:   p.blockSize,
		BlockCount:  p.blockCount,
		FreeBlocks:  p.freeBlocks,
		InUseBlocks: inUse,
		Utilization: float64(inUse) / float64(p.blockCount),
	}
}

// ArenaMetrics contains statistical information about a BumpArena.
type ArenaMetrics struct {
	Capacity    int     // Region length in bytes
	SizeInUse   int     // Current cursor position
	Peak        int     // High-water mark of the cursor, survives Reset
	Utilization float64 // Ratio of cursor to capacity (0.0-1.0)
}

// Metrics returns a snapshot of arena statistics.
func (a *BumpArena) Metrics() ArenaMetrics {
	a.panicIfDestroyed()
	return ArenaMetrics{
		Capacity:    a.length,
		SizeInUse:   a.offset,
		Peak:        a.peak,
		Utilization: float64(a.offset) / float64(a.length),
	}
}
