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
	"github.com/erigontech/fib/internal/xmath"
	"github.com/erigontech/fib/netaddr"
)

// retarget adjusts the link-count hint (spec.md §3 invariant 5) when a
// predecessor's forward reference moves from oldTo to newTo: oldTo loses
// one inbound reference, newTo gains one. Both sides are optional (nil for
// "no node").
func retarget[V any](oldTo, newTo *Entry[V]) {
	if oldTo != nil {
		oldTo.addLinkCount(-1)
	}
	if newTo != nil {
		newTo.addLinkCount(1)
	}
}

// ensureBucket returns the sentinel for bucket b, creating it (and, by
// recursion, any ancestor sentinel it needs) on first touch. Bucket 0's
// sentinel always exists — it is the list head, created by New — so the
// recursion bottoms out there.
func (t *Table[V]) ensureBucket(b uint32) *Entry[V] {
	if b == 0 {
		return t.head
	}
	if s := t.currentBuckets().sentinel(b); s != nil {
		return s
	}
	parent := xmath.ParentBucket(b)
	t.ensureBucket(parent)
	return t.insertSentinel(b)
}

// insertSentinel runs the "Insert (sentinel)" skeleton of spec.md §4.2: the
// same locate-and-CAS loop as a payload insert, but keyed on
// bitreverse32(b) and anchored off the parent bucket's sentinel rather
// than off bucket 0.
func (t *Table[V]) insertSentinel(b uint32) *Entry[V] {
	key := bucketSentinelKey(b)
	var fresh *Entry[V]

	for {
		if s := t.currentBuckets().sentinel(b); s != nil {
			return s
		}
		parentSentinel := t.ensureBucket(xmath.ParentBucket(b))

		r := t.reserveRow()
		curr := parentSentinel
		r.hold(0, curr)
		next := curr.next()
		for next != nil && next.key < key {
			curr = next
			r.hold(0, curr)
			next = curr.next()
		}
		r.hold(1, next)

		// next.key == key here can only be this bucket's own sentinel:
		// bitreverse32 is a bijection, so a payload's key collides with
		// bucket b's sentinel key only if that payload's raw hash equals
		// b exactly — the same 1-in-2^32 odds as any other specific hash
		// value, independent of table size.
		if next != nil && next.key == key && next.isSentinel {
			// Created concurrently by another inserter of a payload that
			// touched this bucket first; publish it if it raced ahead of
			// the bucket-array write and adopt it as ours.
			r.release()
			t.currentBuckets().buckets[b].CompareAndSwap(nil, next)
			return next
		}

		if fresh == nil {
			fresh = newSentinel[V](key)
		}
		fresh.link.Store(&linkState[V]{next: next})
		if curr.casNext(next, fresh) {
			// next keeps its one inbound reference, now held by fresh.
			retarget[V](nil, fresh)
			t.currentBuckets().buckets[b].Store(fresh)
			r.release()
			return fresh
		}
		r.release()
	}
}

// insertPayload runs spec.md §4.2's "Insert (payload)" algorithm verbatim:
// grow-if-full, locate the bucket, scan to the insertion point, dedupe
// against any live or dying same-key payload, and CAS the new node in.
func (t *Table[V]) insertPayload(prefix netaddr.Prefix, onCreate InitFunc[V]) (*Entry[V], bool) {
	hash := prefix.Hash()
	key := xmath.ReverseBits32(hash)

	var fresh *Entry[V] // allocated once, reused across retries

	for {
		if t.entries.Load() >= t.entriesMax.Load() {
			t.grow()
		}

		ba := t.currentBuckets()
		b := ba.bucketIndex(hash)
		sentinel := ba.sentinel(b)
		if sentinel == nil {
			sentinel = t.ensureBucket(b)
		}

		r := t.reserveRow()
		curr := sentinel
		r.hold(0, curr)
		next := curr.next()
		for next != nil && next.key < key {
			curr = next
			r.hold(0, curr)
			next = curr.next()
		}
		r.hold(1, next)

		if !curr.isSentinel && curr.key == key && curr.prefix.Equal(prefix) {
			// curr's own predecessor vanished past us (spec.md §4.2 step 5).
			r.release()
			continue
		}

		// Advance past every node at the same key, sentinel or payload, so
		// a fresh insert always lands after a same-key sentinel (spec.md
		// §3 invariant 1: sentinel precedes payload at equal K). Only
		// non-sentinel nodes are candidates for the duplicate check.
		restart := false
		for next != nil && next.key == key {
			if !next.isSentinel && next.prefix.Equal(prefix) {
				if next.markedDeleted() {
					restart = true
				} else {
					r.release()
					return next, false
				}
				break
			}
			curr = next
			r.hold(0, curr)
			next = curr.next()
			r.hold(1, next)
		}
		if restart {
			r.release()
			continue
		}

		if fresh == nil {
			fresh = newPayload[V](key, prefix)
		}
		fresh.link.Store(&linkState[V]{next: next})
		if curr.casNext(next, fresh) {
			// next keeps its one inbound reference, now held by fresh.
			retarget[V](nil, fresh)
			t.entries.Add(1)
			t.metrics.entries.Set(float64(t.entries.Load()))
			if onCreate != nil {
				onCreate(fresh)
			}
			r.release()
			return fresh, true
		}
		r.release()
	}
}

// find runs spec.md §4.2's "Lookup (fib_find)".
func (t *Table[V]) find(prefix netaddr.Prefix) (*Entry[V], bool) {
	hash := prefix.Hash()
	key := xmath.ReverseBits32(hash)

	r := t.reserveRow()
	defer r.release()

	for {
		ba := t.currentBuckets()
		b := ba.bucketIndex(hash)
		sentinel := ba.sentinel(b)
		if sentinel == nil {
			sentinel = t.ensureBucket(b)
		}

		curr := sentinel
		r.hold(0, curr)
		restarted := false
		for {
			next := curr.next()
			if next == nil || next.key > key {
				return nil, false
			}
			r.hold(1, next)
			if next.key == key && !next.isSentinel && next.prefix.Equal(prefix) {
				if next.markedDeleted() {
					restarted = true
					break
				}
				return next, true
			}
			curr = next
			r.hold(0, curr)
		}
		if !restarted {
			return nil, false
		}
		// loop: re-read current bucket array and retry from its sentinel.
	}
}

// route runs spec.md §4.2's "Longest-prefix match (fib_route)": fib_find
// at decreasing specificity until a hit, or until bits reach 0.
func (t *Table[V]) route(p netaddr.Router) (*Entry[V], bool) {
	cur := p
	for {
		if e, ok := t.find(cur); ok {
			return e, true
		}
		shortened, more := cur.Shorten()
		if !more {
			return nil, false
		}
		t.metrics.routeStepsTotal.Inc()
		cur = shortened
	}
}

// delete runs spec.md §4.2's "Delete". e must be a payload entry
// previously returned by Find/Get/Route.
func (t *Table[V]) delete(e *Entry[V]) bool {
	if e.isSentinel {
		fatalf("fib: delete called on a sentinel entry")
	}
	if !e.markForDeletion() {
		return false // already marked: no-op, not an error (spec.md §7).
	}

	key := e.key
	hash := xmath.ReverseBits32(key) // bitreverse32 is its own inverse.

	r := t.reserveRow()
	defer r.release()

	for {
		ba := t.currentBuckets()
		b := ba.bucketIndex(hash)
		sentinel := ba.sentinel(b)
		if sentinel == nil {
			sentinel = t.ensureBucket(b)
		}

		curr := sentinel
		r.hold(0, curr)
		for {
			next := curr.next()
			if next == e {
				break
			}
			if next == nil || next.key > key {
				fatalf("fib: delete invariant violated: no predecessor links to marked node (key=%d)", key)
			}
			curr = next
			r.hold(0, curr)
		}
		r.hold(1, e)

		newSucc := e.next()
		if curr.casUnlink(e, newSucc) {
			retarget[V](e, newSucc)
			t.entries.Add(-1)
			t.metrics.entries.Set(float64(t.entries.Load()))
			t.deferred.push(e)
			t.metrics.deferredFreeDepth.Set(float64(t.deferred.depth.Load()))
			return true
		}
		// curr.next changed under us; rescan for the (possibly new)
		// predecessor from the bucket sentinel.
	}
}
