package fib

import (
	"fmt"
	"net/netip"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/erigontech/fib/netaddr"
)

func newTestTable(t *testing.T) *Table[int] {
	t.Helper()
	tbl := New[int](NewConfig(), netaddr.TypeIPv4)
	t.Cleanup(tbl.Free)
	return tbl
}

func ipv4Slash32(i uint32) netaddr.IPPrefix {
	return netaddr.NewIPPrefix(netip.AddrFrom4([4]byte{
		byte(i >> 24), byte(i >> 16), byte(i >> 8), byte(i),
	}), 32)
}

// Seed scenario 1: simple insert/find.
func TestSimpleInsertFind(t *testing.T) {
	tbl := newTestTable(t)

	p, err := netaddr.ParseIPPrefix("121.155.218.0/24")
	require.NoError(t, err)

	got, created := tbl.Get(p, nil)
	require.True(t, created)

	found, ok := tbl.Find(p)
	require.True(t, ok)
	require.Same(t, got, found)
	require.EqualValues(t, 1, tbl.Entries())
}

// Seed scenario 2: 10 000 sequential IPv4 /32s.
func TestTenThousandSequentialInsertFindDelete(t *testing.T) {
	tbl := newTestTable(t)
	const n = 10000

	entries := make([]*Entry[int], n)
	for i := uint32(0); i < n; i++ {
		p := ipv4Slash32(i)
		e, created := tbl.Get(p, func(e *Entry[int]) { *e.Value() = int(i) })
		require.True(t, created)
		entries[i] = e
	}
	require.EqualValues(t, n, tbl.Entries())

	for i := uint32(0); i < n; i++ {
		p := ipv4Slash32(i)
		found, ok := tbl.Find(p)
		require.True(t, ok)
		require.Equal(t, i, uint32(*found.Value()))
	}

	for i := uint32(0); i < n; i++ {
		require.True(t, tbl.Delete(entries[i]))
	}
	require.EqualValues(t, 0, tbl.Entries())
}

func TestGetIsIdempotent(t *testing.T) {
	tbl := newTestTable(t)
	p, err := netaddr.ParseIPPrefix("10.0.0.0/8")
	require.NoError(t, err)

	first, created := tbl.Get(p, nil)
	require.True(t, created)
	second, created := tbl.Get(p, nil)
	require.False(t, created)
	require.Same(t, first, second)
	require.EqualValues(t, 1, tbl.Entries())
}

func TestDeleteOfAlreadyDeletedReturnsFalse(t *testing.T) {
	tbl := newTestTable(t)
	p, err := netaddr.ParseIPPrefix("10.0.0.0/8")
	require.NoError(t, err)
	e, _ := tbl.Get(p, nil)

	require.True(t, tbl.Delete(e))
	require.False(t, tbl.Delete(e))
}

func TestDeleteThenFindMisses(t *testing.T) {
	tbl := newTestTable(t)
	p, err := netaddr.ParseIPPrefix("10.0.0.0/8")
	require.NoError(t, err)
	e, _ := tbl.Get(p, nil)
	require.True(t, tbl.Delete(e))

	_, ok := tbl.Find(p)
	require.False(t, ok)
}

func TestRouteLongestPrefixMatch(t *testing.T) {
	tbl := newTestTable(t)

	wide, err := netaddr.ParseIPPrefix("10.0.0.0/8")
	require.NoError(t, err)
	narrow, err := netaddr.ParseIPPrefix("10.1.2.0/24")
	require.NoError(t, err)
	_, _ = tbl.Get(wide, func(e *Entry[int]) { *e.Value() = 8 })
	_, _ = tbl.Get(narrow, func(e *Entry[int]) { *e.Value() = 24 })

	dest, err := netaddr.ParseIPPrefix("10.1.2.77/32")
	require.NoError(t, err)
	hit, ok := tbl.Route(netaddr.Router(dest))
	require.True(t, ok)
	require.Equal(t, 24, *hit.Value())
}

func TestRouteFallsBackToLessSpecific(t *testing.T) {
	tbl := newTestTable(t)
	wide, err := netaddr.ParseIPPrefix("10.0.0.0/8")
	require.NoError(t, err)
	_, _ = tbl.Get(wide, func(e *Entry[int]) { *e.Value() = 8 })

	dest, err := netaddr.ParseIPPrefix("10.99.99.99/32")
	require.NoError(t, err)
	hit, ok := tbl.Route(netaddr.Router(dest))
	require.True(t, ok)
	require.Equal(t, 8, *hit.Value())
}

func TestRouteMissesWithNoCoveringPrefix(t *testing.T) {
	tbl := newTestTable(t)
	dest, err := netaddr.ParseIPPrefix("192.168.1.1/32")
	require.NoError(t, err)
	_, ok := tbl.Route(netaddr.Router(dest))
	require.False(t, ok)
}

func TestAddrTypeMismatchIsFatal(t *testing.T) {
	tbl := newTestTable(t)
	v6, err := netaddr.ParseIPPrefix("2001:db8::/32")
	require.NoError(t, err)

	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(error)
		require.True(t, ok)
		require.ErrorIs(t, err, ErrAddrTypeMismatch)
	}()
	tbl.Get(v6, nil)
}

func TestNilTableIsFatal(t *testing.T) {
	var tbl *Table[int]

	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(error)
		require.True(t, ok)
		require.ErrorIs(t, err, ErrNilTable)
	}()
	p, err := netaddr.ParseIPPrefix("10.0.0.0/8")
	require.NoError(t, err)
	tbl.Find(p)
}

func TestGrowthAcrossManyInsertsPreservesLookups(t *testing.T) {
	tbl := New[string](Config{HashOrder: 2, MaxThreads: MaxThreads, ReclaimInterval: defaultReclaimInterval}, netaddr.TypeIPv4)
	t.Cleanup(tbl.Free)

	const n = 5000
	for i := uint32(0); i < n; i++ {
		p := ipv4Slash32(i)
		_, created := tbl.Get(p, func(e *Entry[string]) { *e.Value() = fmt.Sprintf("v%d", i) })
		require.True(t, created)
	}
	require.EqualValues(t, n, tbl.Entries())
	for i := uint32(0); i < n; i++ {
		p := ipv4Slash32(i)
		e, ok := tbl.Find(p)
		require.True(t, ok)
		require.Equal(t, fmt.Sprintf("v%d", i), *e.Value())
	}

	// entries_max must track the *current* size (spec.md §4.3): for 5000
	// entries the array should have grown just enough to keep entries_max
	// a small multiple of entries, not all the way to HashHiMax.
	order := tbl.currentBuckets().order
	require.LessOrEqual(t, order, uint32(14), "grew far more than needed for %d entries", n)
	require.LessOrEqual(t, tbl.entriesMax.Load(), int64(4*n))
}

// TestGrowRecomputesThresholdsFromCurrentSize is a focused regression test
// for the entries_max/entries_min pinning bug: after a grow, entries_max
// must scale with the new bucket array size, not stay fixed at the
// initial size's threshold.
func TestGrowRecomputesThresholdsFromCurrentSize(t *testing.T) {
	tbl := New[int](Config{HashOrder: 2, MaxThreads: MaxThreads, ReclaimInterval: defaultReclaimInterval}, netaddr.TypeIPv4)
	t.Cleanup(tbl.Free)

	initialMax := tbl.entriesMax.Load()
	require.EqualValues(t, 8, initialMax) // size 4 -> entries_max = 4*2

	tbl.grow()

	newSize := int64(tbl.currentBuckets().size)
	require.Greater(t, newSize, int64(4))
	require.Equal(t, newSize*2, tbl.entriesMax.Load())
	require.NotEqual(t, initialMax, tbl.entriesMax.Load())
}
