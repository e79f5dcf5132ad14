package fib

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/erigontech/fib/netaddr"
)

func TestReserveRowIsExclusive(t *testing.T) {
	tbl := newTestTable(t)

	r1 := tbl.reserveRow()
	r2 := tbl.reserveRow()
	require.NotEqual(t, r1.idx, r2.idx)
	r1.release()
	r2.release()
}

func TestReserveRowBlocksAtCapacityThenUnblocks(t *testing.T) {
	cfg := NewConfig()
	cfg.MaxThreads = 2
	tbl := New[int](cfg, netaddr.TypeIPv4)
	t.Cleanup(tbl.Free)

	r1 := tbl.reserveRow()
	r2 := tbl.reserveRow()

	got := make(chan row[int], 1)
	go func() {
		got <- tbl.reserveRow()
	}()

	select {
	case <-got:
		t.Fatal("reserveRow should not succeed while all rows are held")
	case <-time.After(50 * time.Millisecond):
	}

	r1.release()
	select {
	case r3 := <-got:
		r3.release()
	case <-time.After(time.Second):
		t.Fatal("reserveRow did not unblock after a row was released")
	}
	r2.release()
}

func TestIsHazardReflectsHeldSlots(t *testing.T) {
	tbl := newTestTable(t)
	p, err := netaddr.ParseIPPrefix("10.1.0.0/16")
	require.NoError(t, err)
	e, _ := tbl.Get(p, nil)

	require.False(t, tbl.isHazard(e))

	r := tbl.reserveRow()
	r.hold(0, e)
	require.True(t, tbl.isHazard(e))
	r.release()
	require.False(t, tbl.isHazard(e))
}

// TestDeleteDefersPhysicalFreeUntilHazardClears exercises spec.md §8
// invariant 4/5 directly: a node on the deferred-free list stays reachable
// (its hazard slot still holds it) until the reclaimer's drain pass
// observes zero hazards and zero link count.
func TestDeleteDefersPhysicalFreeUntilHazardClears(t *testing.T) {
	tbl := newTestTable(t)
	p, err := netaddr.ParseIPPrefix("10.2.0.0/16")
	require.NoError(t, err)
	e, _ := tbl.Get(p, nil)

	r := tbl.reserveRow()
	r.hold(0, e)

	require.True(t, tbl.Delete(e))
	require.EqualValues(t, 1, tbl.deferred.depth.Load())

	freed := tbl.drainDeferred(false)
	require.Equal(t, 0, freed, "hazarded node must not be freed yet")
	require.EqualValues(t, 1, tbl.deferred.depth.Load())

	r.release()
	freed = tbl.drainDeferred(false)
	require.Equal(t, 1, freed, "node must be freed once its hazard clears")
	require.EqualValues(t, 0, tbl.deferred.depth.Load())
}

func TestDeferredFreeListPushAndDrainAll(t *testing.T) {
	var q deferredFreeList[int]
	a := newPayload[int](1, testPrefix(t))
	b := newPayload[int](2, testPrefix(t))
	q.push(a)
	q.push(b)
	require.EqualValues(t, 2, q.depth.Load())

	n := q.drainAll()
	count := 0
	for cur := n; cur != nil; cur = cur.next {
		count++
	}
	require.Equal(t, 2, count)
	require.Nil(t, q.drainAll())
}

func TestBackgroundReclaimerEventuallyFreesUnhazardedDeletes(t *testing.T) {
	cfg := NewConfig()
	cfg.ReclaimInterval = 10 * time.Millisecond
	tbl := New[int](cfg, netaddr.TypeIPv4)
	defer tbl.Free()

	p, err := netaddr.ParseIPPrefix("10.3.0.0/16")
	require.NoError(t, err)
	e, _ := tbl.Get(p, nil)
	require.True(t, tbl.Delete(e))

	deadline := time.Now().Add(2 * time.Second)
	for tbl.deferred.depth.Load() != 0 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	require.EqualValues(t, 0, tbl.deferred.depth.Load())
}
