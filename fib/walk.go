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

// Walk is the scoped, non-suspending enumeration style of spec.md §4.5: it
// reserves a row for its own duration, walks the whole list from the
// bucket-0 sentinel, and yields each live payload entry to fn. Returning
// false from fn stops the walk early. Walk does not permit the calling
// goroutine to mutate the table while inside fn — use an Iterator for
// that. Nestable: a Walk started from inside fn's body reserves its own
// row and does not interfere with the outer walk's.
func (t *Table[V]) Walk(fn func(*Entry[V]) bool) {
	r := t.reserveRow()
	defer r.release()

	curr := t.head
	r.hold(0, curr)
	for {
		next := curr.next()
		if next == nil {
			return
		}
		r.hold(1, next)
		if !next.isSentinel && !next.markedDeleted() {
			if !fn(next) {
				return
			}
		}
		curr = next
		r.hold(0, curr)
	}
}

// Iterator is the suspendable enumeration style of spec.md §4.5. Unlike
// Walk, an Iterator holds its row reserved across calls to Next, so the
// caller may freely mutate the table between calls: the soft-link hazard
// on curr guarantees the node Next last returned will not be physically
// freed even if it is concurrently deleted, only marked.
//
// Go's iteration model is pull-based (the caller drives Next), so the
// "Put" (suspend without consuming) and "Put-next" (suspend having
// consumed one item) operations of spec.md §4.5 collapse into the single
// Next method here: not calling Next again *is* the suspension, and the
// row stays reserved for exactly as long as the caller holds the Iterator
// without calling Unlink/End.
type Iterator[V any] struct {
	t    *Table[V]
	r    row[V]
	curr *Entry[V]
	done bool
}

// NewIterator creates and initialises an iterator, reserving a row and
// seeding curr at the list head (spec.md §4.5 "Caller creates an iterator,
// initialises it").
func (t *Table[V]) NewIterator() *Iterator[V] {
	it := &Iterator[V]{t: t, curr: t.head}
	it.r = t.reserveRow()
	it.r.hold(0, it.curr)
	return it
}

// Next advances to, and returns, the next live payload entry. Sentinels
// and marked entries are skipped transparently. ok is false once the list
// is exhausted, at which point the row has already been released.
func (it *Iterator[V]) Next() (entry *Entry[V], ok bool) {
	if it.done {
		return nil, false
	}
	for {
		next := it.curr.next()
		if next == nil {
			it.done = true
			it.r.release()
			return nil, false
		}
		it.r.hold(1, next)
		it.curr = next
		it.r.hold(0, it.curr)
		if !next.isSentinel && !next.markedDeleted() {
			return next, true
		}
	}
}

// Unlink releases the iterator's row immediately, making it defunct.
func (it *Iterator[V]) Unlink() {
	if !it.done {
		it.done = true
		it.r.release()
	}
}

// End releases the row and marks the iterator terminal (spec.md §4.5
// "Put-end"). Equivalent to Unlink; kept as a distinct name to mirror the
// two spec.md operations at the call site.
func (it *Iterator[V]) End() {
	it.Unlink()
}

// Copy duplicates this iterator's curr snapshot into a new iterator
// holding its own, independently reserved row (spec.md §4.5 "Copy").
func (it *Iterator[V]) Copy() *Iterator[V] {
	other := &Iterator[V]{t: it.t, curr: it.curr, done: it.done}
	if !it.done {
		other.r = it.t.reserveRow()
		other.r.hold(0, other.curr)
	}
	return other
}
