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
	"sync/atomic"

	"github.com/erigontech/fib/internal/xmath"
)

// bucketArray is C3: a power-of-two array of pointers into the split-
// ordered list, one per bucket, plus the size/mask/order that describe it.
// Bundling these into a single immutable struct and swapping the whole
// thing atomically (rather than four separate atomic fields, as spec.md's
// C original effectively has) is this port's answer to the open fence-
// discipline question in spec.md §9.4 / SPEC_FULL.md's Open Question
// Decisions #4: a reader can never observe a mask that doesn't match the
// buckets slice it came from, because they are only ever published
// together.
type bucketArray[V any] struct {
	buckets []*atomic.Pointer[Entry[V]]
	size    uint32
	mask    uint32
	order   uint32
}

func newBucketArray[V any](order uint32) *bucketArray[V] {
	size := uint32(1) << order
	ba := &bucketArray[V]{
		buckets: make([]*atomic.Pointer[Entry[V]], size),
		size:    size,
		mask:    size - 1,
		order:   order,
	}
	for i := range ba.buckets {
		ba.buckets[i] = &atomic.Pointer[Entry[V]]{}
	}
	return ba
}

func (ba *bucketArray[V]) bucketIndex(hash uint32) uint32 {
	return hash & ba.mask
}

func (ba *bucketArray[V]) sentinel(b uint32) *Entry[V] {
	return ba.buckets[b].Load()
}

// grow doubles the bucket array. Guarded by t.resizing so only one grower
// proceeds at a time (spec.md §4.3); concurrent contenders see the flag
// already set and skip straight back to their own operation, retrying it
// against whichever array is current at that point.
func (t *Table[V]) grow() {
	if !t.resizing.CompareAndSwap(false, true) {
		return
	}
	defer t.resizing.Store(false)

	old := t.buckets.Load()
	if old.order >= HashHiMax {
		return
	}
	next := newBucketArray[V](old.order + 1)
	// Old sentinels already sit at the new array's split points under the
	// bit-reversed order (spec.md §4.2 "Stable split-points"); copying the
	// pointers across is all a grow needs to do structurally. New buckets
	// between them are populated lazily by the next touch.
	for i := uint32(0); i < old.size; i++ {
		next.buckets[i].Store(old.buckets[i].Load())
	}
	t.buckets.Store(next)
	// entries_max/entries_min are a function of the *current* size
	// (spec.md §4.3); recompute them here or the grow threshold stays
	// pinned at the initial size and every insert past it triggers another
	// grow, regardless of how few entries are actually live.
	t.entriesMax.Store(int64(next.size) * 2)
	t.entriesMin.Store(int64(float64(next.size) * t.cfg.EntriesMinRatio))
	t.metrics.hashOrder.Set(float64(next.order))
	t.metrics.rehashTotal.Inc()
	t.log.Debug("fib: grew bucket array", "old_order", old.order, "new_order", next.order)
}

// currentBuckets returns the table's current bucket array. Always re-read
// through this accessor inside retry loops rather than caching the result
// across iterations, so a concurrent grow is picked up immediately.
func (t *Table[V]) currentBuckets() *bucketArray[V] {
	return t.buckets.Load()
}

func bucketSentinelKey(b uint32) uint32 {
	return xmath.ReverseBits32(b)
}
