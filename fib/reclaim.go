// Copyright 2024 The Erigon Authors
// This file is part of Erigon.
//
// Erigon is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Erigon is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with Erigon. If not, see <http://www.gnu.org/licenses/>.

package fib

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/cenkalti/backoff/v4"
	"golang.org/x/sync/errgroup"
)

// softLinkRow is one row of the reservation array (spec.md §4.4): two
// soft-link (hazard pointer) slots, enough for curr/succ in any mutator,
// or one slot for an iterator's curr plus a spare.
type softLinkRow[V any] struct {
	slots [2]atomic.Pointer[Entry[V]]
}

func (r *softLinkRow[V]) set(slot int, e *Entry[V]) {
	r.slots[slot].Store(e)
}

func (r *softLinkRow[V]) clear(slot int) {
	r.slots[slot].Store(nil)
}

func (r *softLinkRow[V]) get(slot int) *Entry[V] {
	return r.slots[slot].Load()
}

// row is a reserved handle into the table's reservation array: the
// capability to hold hazards and to release them exactly once.
type row[V any] struct {
	t   *Table[V]
	idx int
}

// reserveRow claims a reservation-array slot (spec.md §4.4 "Row
// reservation"). It spins over the MaxThreads-wide array, CAS-claiming a
// false -> true slot; callers beyond MaxThreads concurrent holders see
// reduced throughput rather than an error, per spec.md §7.
func (t *Table[V]) reserveRow() row[V] {
	for {
		for i := 0; i < t.cfg.MaxThreads; i++ {
			if t.reserved[i].CompareAndSwap(false, true) {
				t.metrics.reservedRows.Inc()
				return row[V]{t: t, idx: i}
			}
		}
		// All rows taken; yield and retry. spec.md §5: "Exceeding the cap
		// blocks new entrants until a row is released" — no error, just
		// a spin.
		runtimeGosched()
	}
}

func (r row[V]) release() {
	r.t.rows[r.idx].clear(0)
	r.t.rows[r.idx].clear(1)
	r.t.reserved[r.idx].Store(false)
	r.t.metrics.reservedRows.Dec()
}

func (r row[V]) hold(slot int, e *Entry[V]) {
	r.t.rows[r.idx].set(slot, e)
}

func (r row[V]) held(slot int) *Entry[V] {
	return r.t.rows[r.idx].get(slot)
}

// isHazard reports whether e is currently held by any reservation row's
// soft-link slot, across the whole table. This is the predicate the
// reclaimer must satisfy before it may free a node.
func (t *Table[V]) isHazard(e *Entry[V]) bool {
	for i := 0; i < t.cfg.MaxThreads; i++ {
		if !t.reserved[i].Load() {
			continue
		}
		row := &t.rows[i]
		if row.get(0) == e || row.get(1) == e {
			return true
		}
	}
	return false
}

// deferredNode is one link of the deferred-free list: an unlinked,
// marked node awaiting hazard-clearance.
type deferredNode[V any] struct {
	entry *Entry[V]
	next  *deferredNode[V]
}

// deferredFreeList is a lock-free MPSC stack: fib_delete (many producers)
// pushes, the single background reclaimer drains. spec.md §4.4 describes a
// doubly-linked FIFO walked tail-to-head; a LIFO stack is used here
// instead, because nothing in the design depends on *order* of
// reclamation — only that every entry is eventually observed with zero
// hazards and zero link count before being freed. See DESIGN.md.
type deferredFreeList[V any] struct {
	head  atomic.Pointer[deferredNode[V]]
	depth atomic.Int64
}

func (q *deferredFreeList[V]) push(e *Entry[V]) {
	n := &deferredNode[V]{entry: e}
	for {
		cur := q.head.Load()
		n.next = cur
		if q.head.CompareAndSwap(cur, n) {
			q.depth.Add(1)
			return
		}
	}
}

// drainAll atomically detaches and returns the entire current list.
func (q *deferredFreeList[V]) drainAll() *deferredNode[V] {
	return q.head.Swap(nil)
}

// pushBack re-enqueues nodes that survived a drain pass (still hazarded).
// drainAll never subtracted them from depth, so depth is left unchanged.
func (q *deferredFreeList[V]) pushBack(n *deferredNode[V]) {
	if n == nil {
		return
	}
	tail := n
	for tail.next != nil {
		tail = tail.next
	}
	for {
		cur := q.head.Load()
		tail.next = cur
		if q.head.CompareAndSwap(cur, n) {
			return
		}
	}
}

// startReclaimer launches the per-table background reclaimer (spec.md
// §4.4). It is one goroutine per table — never a process-wide singleton,
// per spec.md §9 "Replacing module-level globals" — supervised with
// errgroup so Free's shutdown can wait for the final drain to finish
// before returning.
func (t *Table[V]) startReclaimer() {
	ctx, cancel := context.WithCancel(context.Background())
	t.reclaimCancel = cancel
	g, ctx := errgroup.WithContext(ctx)
	t.reclaimGroup = g
	g.Go(func() error {
		t.reclaimLoop(ctx)
		return nil
	})
}

// reclaimLoop drains the deferred-free list on a timer. A cycle that frees
// nothing backs off (bounded, jittered) before the next attempt instead of
// hammering a quiet queue every fixed interval; a cycle that frees
// something resets straight back to the configured interval. This keeps
// spec.md's "fixed interval, tunable" behaviour for the common case while
// using the backoff package already in the dependency graph instead of a
// bare time.Sleep loop.
func (t *Table[V]) reclaimLoop(ctx context.Context) {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = t.cfg.ReclaimInterval
	b.MaxInterval = t.cfg.ReclaimInterval * 4
	b.MaxElapsedTime = 0 // never gives up

	timer := time.NewTimer(t.cfg.ReclaimInterval)
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			t.drainDeferred(true)
			return
		case <-timer.C:
		}
		if t.stop.Load() {
			t.drainDeferred(true)
			return
		}
		freed := t.drainDeferred(false)
		if freed > 0 {
			b.Reset()
			timer.Reset(t.cfg.ReclaimInterval)
		} else {
			timer.Reset(b.NextBackOff())
		}
	}
}

// drainDeferred walks the deferred-free list once, freeing every entry
// whose link count is zero and which no soft-link slot hazards, and
// re-enqueueing the rest (spec.md §4.4 steps a-c). When final is true
// (table teardown) it keeps looping until the list is empty, since Free
// must not return with state still referenced by nothing useful.
func (t *Table[V]) drainDeferred(final bool) int {
	freed := 0
	for {
		n := t.deferred.drainAll()
		if n == nil {
			return freed
		}
		var survivors *deferredNode[V]
		for n != nil {
			nxt := n.next
			if n.entry.loadLinkCount() == 0 && !t.isHazard(n.entry) {
				// Physically free: drop every reference so the garbage
				// collector can reclaim it. There is nothing further to
				// unlink here — fib_delete already did the structural
				// CAS; this step only clears the hazard-visibility
				// bookkeeping spec.md's allocator-backed version would
				// use an explicit free() call for. The freed node's own
				// link still counted as a reference on its successor;
				// release that reference here.
				if succ := n.entry.next(); succ != nil {
					succ.addLinkCount(-1)
				}
				n.entry = nil
				freed++
				t.metrics.reclaimTotal.Inc()
				t.deferred.depth.Add(-1)
			} else {
				n.next = survivors
				survivors = n
			}
			n = nxt
		}
		t.deferred.pushBack(survivors)
		t.metrics.deferredFreeDepth.Set(float64(t.deferred.depth.Load()))
		if !final || survivors == nil {
			return freed
		}
		// Final drain: give outstanding hazards a moment to clear rather
		// than spinning hot against readers that are mid-walk.
		runtimeGosched()
	}
}

// stopReclaimer signals teardown and waits for the reclaimer to finish its
// final drain (fib_free, spec.md §4.4 "Table teardown").
func (t *Table[V]) stopReclaimer() {
	t.stop.Store(true)
	if t.reclaimCancel != nil {
		t.reclaimCancel()
	}
	if t.reclaimGroup != nil {
		_ = t.reclaimGroup.Wait()
	}
}
