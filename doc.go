// Package mempool implements two small composable allocators over a
// single contiguous backing buffer: a fixed-block pool and a bump arena.
//
// # Overview
//
// Both allocators borrow their memory from a BackingStore, a fixed-size
// contiguous buffer obtained once and released once. On top of it:
//
//   - FixedBlockPool partitions the store into N equal-size blocks and
//     threads a free list through the blocks' own bytes. Alloc and Free
//     are O(1); freed blocks are reused in LIFO order.
//   - BumpArena hands out successive aligned byte ranges from a cursor.
//     Alloc and Reset are O(1); there is no individual free.
//
// This is useful for:
//
//   - Request-scoped allocation with batch cleanup (arena per request)
//   - Object pools with many same-size short-lived buffers
//   - Reducing garbage collection pressure
//   - Predictable allocation cost in hot paths
//
// # Basic Usage
//
//	pool, err := mempool.NewPool(64, 1024)
//	if err != nil { ... }
//	defer pool.Destroy()
//
//	blk, err := pool.Alloc()
//	if errors.Is(err, mempool.ErrPoolExhausted) { ... }
//	copy(blk.Bytes(), payload)
//	pool.Free(blk)
//
//	arena, err := mempool.NewArena(1 << 20)
//	if err != nil { ... }
//	defer arena.Destroy()
//
//	buf, err := arena.Alloc(128, 16)
//	hdr, err := mempool.New[Header](arena)
//	arena.Reset() // O(1), invalidates buf and hdr
//
// # Backing Memory
//
// NewStore allocates from the Go heap. NewPageStore obtains an
// anonymous private mapping from the OS instead; pass WithPageBacked()
// to a pool or arena constructor to use it. Page-backed stores are
// page-aligned and return their pages to the OS on Destroy.
//
// An arena can also be a non-owning view over part of an existing
// store (NewArenaOver), letting several arenas share one buffer. The
// store's owner must outlive every view.
//
// # Error Model
//
// ErrPoolExhausted and ErrArenaExhausted are expected, recoverable
// conditions. ErrInvalidConfig and ErrAllocFailed surface once at
// construction (or on a malformed Alloc argument) and never
// mid-lifetime. Contract violations with no recoverable meaning (use
// after Destroy) panic.
//
// Double free and use-after-free on the plain FixedBlockPool are
// deliberately undetected to keep Free at zero overhead. CheckedPool
// is the opt-in debug variant that reports ErrDoubleFree and
// ErrForeignBlock instead.
//
// # Thread Safety
//
// FixedBlockPool and BumpArena perform no internal locking; concurrent
// use of one instance is a data race. SafePool and SafeArena wrap them
// with one mutex per instance. Sharding (one pool or arena per
// goroutine) avoids the lock entirely.
//
// # Important Notes
//
//   - Memory handed out is valid only until Free, Reset, or Destroy
//   - Pool blocks and arena slices are not zeroed; New and
//     NewSliceZeroed are the zeroing variants
//   - Do not store Go pointers inside arena memory: the backing buffer
//     is untyped bytes and the garbage collector will not trace them
//   - Capacities are fixed at creation; neither component grows
package mempool
