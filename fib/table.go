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

// Package fib implements a concurrent, prefix-indexed Forwarding
// Information Base: a split-ordered lock-free hash table (Shalev & Shavit)
// with a hazard-pointer-style reclamation fabric, backing a routing daemon
// where many worker goroutines read, write and walk the same table without
// coarse locking.
//
// fib is generic over the payload type V and over the address type, which
// is an external contract (package netaddr) rather than a concrete CIDR
// implementation: the enclosing daemon's own address family types, the
// pool allocator, the worker pool, and the wider routing protocol machinery
// are all out of scope here, exactly as spec.md §1 draws the boundary.
package fib

import (
	"runtime"
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"github.com/erigontech/fib/internal/xlog"
	"github.com/erigontech/fib/netaddr"
)

func runtimeGosched() { runtime.Gosched() }

// InitFunc is called exactly once, on the freshly inserted entry, the
// first time Get creates a new entry for a prefix.
type InitFunc[V any] func(*Entry[V])

// Option configures a Table at construction time.
type Option[V any] func(*Table[V])

// WithLogger overrides the table's logger (default: xlog.Nop()).
func WithLogger[V any](l *xlog.Logger) Option[V] {
	return func(t *Table[V]) { t.log = l }
}

// WithMetrics registers the table's prometheus metrics under reg, labelled
// with name. Without this option metrics are still tracked internally but
// never exposed to a collector.
func WithMetrics[V any](reg prometheus.Registerer, name string) Option[V] {
	return func(t *Table[V]) { t.metrics = newTableMetrics(reg, name) }
}

// Table is the FIB: C1-C5 of spec.md §2, assembled. The zero value is not
// usable; construct with New.
type Table[V any] struct {
	cfg      Config
	log      *xlog.Logger
	metrics  *tableMetrics
	addrType netaddr.Type

	head *Entry[V] // bucket-0 sentinel; the list head, created here at New.

	buckets atomic.Pointer[bucketArray[V]]

	entries    atomic.Int64
	entriesMax atomic.Int64
	entriesMin atomic.Int64 // inert — see Config.EntriesMinRatio.

	resizing atomic.Bool

	reserved [MaxThreads]atomic.Bool
	rows     [MaxThreads]softLinkRow[V]

	deferred deferredFreeList[V]

	stop          atomic.Bool
	reclaimCancel func()
	reclaimGroup  *errgroup.Group
}

// New establishes a table for addresses of the given type and starts its
// background reclaimer (spec.md §6 "init"). The caller is responsible for
// calling Free when done.
func New[V any](cfg Config, addrType netaddr.Type, opts ...Option[V]) *Table[V] {
	cfg = cfg.withDefaults()
	t := &Table[V]{
		cfg:      cfg,
		addrType: addrType,
		log:      xlog.Nop(),
	}
	for _, opt := range opts {
		opt(t)
	}
	if t.metrics == nil {
		t.metrics = newTableMetrics(nil, "fib")
	}

	ba := newBucketArray[V](cfg.HashOrder)
	t.head = newSentinel[V](bucketSentinelKey(0))
	ba.buckets[0].Store(t.head)
	t.buckets.Store(ba)
	t.entriesMax.Store(int64(ba.size) * 2)
	t.entriesMin.Store(int64(float64(ba.size) * cfg.EntriesMinRatio))

	t.startReclaimer()
	t.log.Info("fib: table initialised", "hash_order", cfg.HashOrder, "addr_type", addrType.String())
	return t
}

// checkAddrType enforces spec.md §7's "Address-type mismatch: fatal
// precondition check at API entry" (and a nil table, the same class of API
// misuse as the invariant violations on that line).
func (t *Table[V]) checkAddrType(p netaddr.Prefix) {
	if t == nil {
		fatalf("%w", ErrNilTable)
	}
	if p.TypeTag() != t.addrType {
		fatalf("%w: table is %s, prefix is %s", ErrAddrTypeMismatch, t.addrType, p.TypeTag())
	}
}

// Find performs an exact-match lookup (spec.md §4.2 "Lookup").
func (t *Table[V]) Find(p netaddr.Prefix) (*Entry[V], bool) {
	t.checkAddrType(p)
	return t.find(p)
}

// Get finds or inserts p, calling init on a freshly created entry.
// created reports whether this call performed the insert.
func (t *Table[V]) Get(p netaddr.Prefix, init InitFunc[V]) (entry *Entry[V], created bool) {
	t.checkAddrType(p)
	if e, ok := t.find(p); ok {
		return e, false
	}
	return t.insertPayload(p, init)
}

// Route performs longest-prefix-match lookup (spec.md §4.2 "fib_route").
func (t *Table[V]) Route(p netaddr.Router) (*Entry[V], bool) {
	t.checkAddrType(p)
	return t.route(p)
}

// Delete logically removes e, returning true iff this call performed the
// removal (spec.md §4.2 "Delete", §7).
func (t *Table[V]) Delete(e *Entry[V]) bool {
	return t.delete(e)
}

// Entries returns the current live (non-sentinel, non-marked) entry count.
func (t *Table[V]) Entries() int64 {
	return t.entries.Load()
}

// Free signals teardown: the reclaimer drains the deferred-free list and
// stops (spec.md §4.4 "Table teardown", §6 "free").
func (t *Table[V]) Free() {
	t.stopReclaimer()
	t.log.Info("fib: table freed")
}
