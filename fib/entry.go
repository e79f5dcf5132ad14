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

	"github.com/erigontech/fib/netaddr"
)

// linkState is the joint (next, delete-mark) word from spec.md §4.1,
// unpacked into a plain struct and swapped as a unit via an
// atomic.Pointer instead of stealing the low bit of a raw pointer. This is
// the "tagged-pointer abstraction" spec.md §9 asks for, built from ordinary
// Go atomics: once published, a linkState value is never mutated, so CASing
// the pointer to it is equivalent to a CAS on a packed (ptr|mark) word, and
// keeps this package free of unsafe.Pointer bit tricks.
type linkState[V any] struct {
	next   *Entry[V]
	marked bool
}

// Entry is one node of the split-ordered list: either a bucket sentinel
// (no payload) or a payload entry carrying a prefix and a user value.
// Entry is the type returned to callers by Find/Get/Route; sentinels are
// purely internal and never escape the package.
type Entry[V any] struct {
	link linkState_ptr[V]

	// linkCount tracks the forward references to this node: the one held
	// by whichever list node's link currently points here, plus one for
	// each unlinked node awaiting reclamation whose link still points
	// here. Soft-link hazards are not counted; the reclaimer scans them
	// separately. It is the "possibly freeable" hint the reclaimer uses
	// before it trusts the hazard scan.
	linkCount atomic.Int32

	// key is K(x): bitreverse32(prefix hash) for payload entries, or
	// bitreverse32(bucket index) for sentinels. Immutable after creation.
	key uint32

	// isSentinel is immutable after creation: a node's role never
	// changes, so this needs no atomics.
	isSentinel bool

	// prefix is nil for sentinels.
	prefix netaddr.Prefix

	value V
}

// linkState_ptr is an atomic.Pointer[linkState[V]] given its own name so
// the zero value (a nil pointer, meaning "not yet linked") reads clearly at
// call sites that construct a detached Entry before its first CAS-publish.
type linkState_ptr[V any] = atomic.Pointer[linkState[V]]

func newSentinel[V any](key uint32) *Entry[V] {
	e := &Entry[V]{key: key, isSentinel: true}
	e.link.Store(&linkState[V]{})
	return e
}

func newPayload[V any](key uint32, prefix netaddr.Prefix) *Entry[V] {
	e := &Entry[V]{key: key, prefix: prefix.Copy()}
	e.link.Store(&linkState[V]{})
	return e
}

// loadLink is the "read next pointer" primitive of spec.md §4.1.
func (e *Entry[V]) loadLink() *linkState[V] {
	return e.link.Load()
}

// next returns the successor, ignoring mark state.
func (e *Entry[V]) next() *Entry[V] {
	return e.loadLink().next
}

// markedDeleted reports whether this node is logically deleted.
func (e *Entry[V]) markedDeleted() bool {
	return e.loadLink().marked
}

// markForDeletion is the linearisation point of a logical delete
// (spec.md §4.1, §5): it is the CAS equivalent of "fetch-or 1 on next".
// It returns true iff this call performed the mark (i.e. the node was not
// already marked). No transition ever clears the mark once set.
func (e *Entry[V]) markForDeletion() bool {
	for {
		cur := e.loadLink()
		if cur.marked {
			return false
		}
		next := &linkState[V]{next: cur.next, marked: true}
		if e.link.CompareAndSwap(cur, next) {
			return true
		}
	}
}

// casNext is the "CAS next pointer" primitive: it only ever succeeds
// against an unmarked expected state, which is exactly what gives the
// Harris–Michael discipline its correctness (spec.md §4.2 step 7,
// §4.4): once expectedSucc is marked, no predecessor CAS with that
// expected value can still observe it as the *current* linkState, because
// markForDeletion already swapped the pointer away from it.
func (e *Entry[V]) casNext(expectedSucc, newSucc *Entry[V]) bool {
	cur := e.loadLink()
	if cur.marked || cur.next != expectedSucc {
		return false
	}
	next := &linkState[V]{next: newSucc, marked: false}
	return e.link.CompareAndSwap(cur, next)
}

// casUnlink replaces a predecessor's link to a just-marked successor with
// a link to that successor's own (live) next node, preserving no mark on
// the new edge (spec.md §4.2 "Delete", step 4). Like casNext it refuses
// once the predecessor is itself marked, so a marked node's link never
// changes again.
func (e *Entry[V]) casUnlink(expectedSucc, newSucc *Entry[V]) bool {
	cur := e.loadLink()
	if cur.marked || cur.next != expectedSucc {
		return false
	}
	next := &linkState[V]{next: newSucc, marked: false}
	return e.link.CompareAndSwap(cur, next)
}

func (e *Entry[V]) addLinkCount(delta int32) {
	e.linkCount.Add(delta)
}

func (e *Entry[V]) loadLinkCount() int32 {
	return e.linkCount.Load()
}

// Value returns a pointer to the entry's user payload, addressable for
// in-place mutation the way an init_fn mutates a freshly inserted entry.
func (e *Entry[V]) Value() *V {
	return &e.value
}

// Prefix returns the network prefix this entry was inserted under. The
// zero value is returned for a sentinel, which callers never see.
func (e *Entry[V]) Prefix() netaddr.Prefix {
	return e.prefix
}
