package mempool

import (
	"io"
	"log/slog"
	"unsafe"
)

// BumpArena allocates successive byte ranges from a monotonically
// advancing cursor over a fixed region. Allocation and Reset are both
// O(1); there is no individual free. Typical usage: one arena per
// request or phase, Reset between phases.
//
// Not goroutine-safe. Use SafeArena for concurrent access.
type BumpArena struct {
	store  *BackingStore
	base   int
	length int
	offset int
	peak   int
	owned  bool
	logger *slog.Logger
}

// NewArena creates an arena over a freshly allocated store of capacity
// bytes. The arena owns the store and releases it on Destroy.
func NewArena(capacity int, opts ...Option) (*BumpArena, error) {
	o := applyOptions(opts)
	store, err := o.newStore(capacity)
	if err != nil {
		return nil, err
	}
	o.logger.Debug("arena created",
		slog.Int("capacity", capacity),
		slog.Bool("page_backed", o.pageBacked))
	return &BumpArena{
		store:  store,
		length: capacity,
		owned:  true,
		logger: o.logger,
	}, nil
}

// NewArenaOver creates a non-owning arena view over length bytes of an
// existing store starting at base. The caller retains ownership of the
// store and must not destroy it while the view is in use. Destroy on
// the view detaches it without releasing the store.
func NewArenaOver(store *BackingStore, base, length int) (*BumpArena, error) {
	if base < 0 || length <= 0 || base+length > store.Size() {
		return nil, fmtConfigErr("sub-region [%d, %d) exceeds store of %d bytes",
			base, base+length, store.Size())
	}
	return &BumpArena{
		store:  store,
		base:   base,
		length: length,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}, nil
}

// Alloc returns a slice of exactly size bytes whose start is aligned to
// align bytes relative to the region base. align must be a power of
// two. Fails with ErrArenaExhausted when the aligned request does not
// fit; the cursor is left unchanged so the caller can retry smaller or
// Reset. The returned memory is not zeroed.
//
// Alignment is relative to the start of the region. Page-backed stores
// start on a page boundary, so alignment there is also absolute.
func (a *BumpArena) Alloc(size, align int) ([]byte, error) {
	a.panicIfDestroyed()
	if size <= 0 {
		return nil, fmtConfigErr("size %d must be positive", size)
	}
	if align <= 0 || align&(align-1) != 0 {
		return nil, fmtConfigErr("alignment %d must be a power of two", align)
	}

	// Subtraction-form bounds checks: offset, pad, and size are all
	// non-negative and offset <= length, so nothing here can overflow
	// even for requests near MaxInt.
	pad := -a.offset & (align - 1)
	if pad > a.length-a.offset || size > a.length-a.offset-pad {
		return nil, ErrArenaExhausted
	}
	off := a.offset + pad
	a.offset = off + size
	if a.offset > a.peak {
		a.peak = a.offset
	}

	start := a.base + off
	return a.store.Bytes()[start : start+size : start+size], nil
}

// AllocBytes allocates n bytes with pointer-size alignment.
func (a *BumpArena) AllocBytes(n int) ([]byte, error) {
	return a.Alloc(n, int(unsafe.Sizeof(uintptr(0))))
}

// Reset moves the cursor back to zero, an O(1) operation. Every slice
// returned by Alloc since the last creation or Reset is semantically
// invalid afterwards: the memory will be handed out again. This is a
// caller contract, not runtime-enforced; no handle tracking is kept.
func (a *BumpArena) Reset() {
	a.panicIfDestroyed()
	a.offset = 0
}

// Offset returns the current cursor position within the region.
func (a *BumpArena) Offset() int {
	a.panicIfDestroyed()
	return a.offset
}

// Capacity returns the region length in bytes.
func (a *BumpArena) Capacity() int {
	a.panicIfDestroyed()
	return a.length
}

// Peak returns the high-water mark of the cursor across the arena's
// lifetime. Reset does not clear it.
func (a *BumpArena) Peak() int {
	a.panicIfDestroyed()
	return a.peak
}

// Remaining returns the bytes left before exhaustion, ignoring
// alignment padding a future request may need.
func (a *BumpArena) Remaining() int {
	a.panicIfDestroyed()
	return a.length - a.offset
}

// Destroy releases the backing store if the arena owns it; for a view
// it only detaches. Any arena operation afterwards panics.
func (a *BumpArena) Destroy() error {
	a.panicIfDestroyed()
	a.logger.Debug("arena destroyed", slog.Int("peak", a.peak))
	var err error
	if a.owned {
		err = a.store.Destroy()
	}
	a.store = nil
	return err
}

func (a *BumpArena) panicIfDestroyed() {
	if a.store == nil {
		panic("mempool: use after Destroy()")
	}
}
