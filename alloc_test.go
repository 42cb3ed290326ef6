package mempool

import (
	"math"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type header struct {
	id    int64
	flags int32
	kind  int16
	tag   int8
}

func TestNew(t *testing.T) {
	a, err := NewArena(1024)
	require.NoError(t, err)
	defer a.Destroy()

	h, err := New[header](a)
	require.NoError(t, err)
	assert.Equal(t, header{}, *h, "New must zero the allocation")

	h.id = 42
	h.flags = 7
	assert.Equal(t, int64(42), h.id)
}

func TestNewUninitializedIsWritable(t *testing.T) {
	a, err := NewArena(1024)
	require.NoError(t, err)
	defer a.Destroy()

	p, err := NewUninitialized[int64](a)
	require.NoError(t, err)
	*p = 123
	assert.Equal(t, int64(123), *p)
}

func TestNewNaturalAlignment(t *testing.T) {
	a, err := NewArena(1024)
	require.NoError(t, err)
	defer a.Destroy()

	// Skew the cursor so the next allocation needs padding.
	_, err = a.Alloc(1, 1)
	require.NoError(t, err)

	p, err := New[int64](a)
	require.NoError(t, err)
	addr := uintptr(unsafe.Pointer(p))
	assert.Zero(t, addr%unsafe.Alignof(int64(0)))
}

func TestNewSlice(t *testing.T) {
	a, err := NewArena(4096)
	require.NoError(t, err)
	defer a.Destroy()

	s, err := NewSlice[int32](a, 10)
	require.NoError(t, err)
	require.Len(t, s, 10)
	assert.Equal(t, 10, cap(s))

	for i := range s {
		s[i] = int32(i * 2)
	}
	for i := range s {
		assert.Equal(t, int32(i*2), s[i])
	}

	empty, err := NewSlice[int32](a, 0)
	require.NoError(t, err)
	assert.Nil(t, empty)

	negative, err := NewSlice[int32](a, -1)
	require.NoError(t, err)
	assert.Nil(t, negative)
}

func TestNewSliceZeroed(t *testing.T) {
	a, err := NewArena(4096)
	require.NoError(t, err)
	defer a.Destroy()

	// Dirty the region first so zeroing is observable.
	buf, err := a.Alloc(64, 1)
	require.NoError(t, err)
	for i := range buf {
		buf[i] = 0xff
	}
	a.Reset()

	s, err := NewSliceZeroed[int64](a, 8)
	require.NoError(t, err)
	for i, v := range s {
		assert.Zerof(t, v, "element %d not zeroed", i)
	}
}

func TestNewSliceOverflowingCount(t *testing.T) {
	a, err := NewArena(64)
	require.NoError(t, err)
	defer a.Destroy()

	// elem*n would wrap; must be rejected up front, not mis-sized.
	_, err = NewSlice[int64](a, math.MaxInt/4)
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = NewSliceZeroed[int64](a, math.MaxInt/4)
	assert.ErrorIs(t, err, ErrInvalidConfig)

	s, err := NewSlice[int64](a, 4)
	require.NoError(t, err)
	assert.Len(t, s, 4, "arena still usable after rejected request")
}

func TestNewPropagatesExhaustion(t *testing.T) {
	a, err := NewArena(16)
	require.NoError(t, err)
	defer a.Destroy()

	_, err = NewSlice[int64](a, 100)
	assert.ErrorIs(t, err, ErrArenaExhausted)

	_, err = New[header](a)
	assert.NoError(t, err, "small allocation still fits after failed large one")
}
