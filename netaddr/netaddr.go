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

//go:generate mockgen -destination=mocks/mock_netaddr.go -package=mocks github.com/erigontech/fib/netaddr Prefix,Router

// Package netaddr defines the external address-type contract that the fib
// package is written against (see fib's module docs, §6 "Required external
// contracts"), plus one concrete implementation over net/netip so the table
// is directly usable without a routing daemon supplying its own CIDR types.
//
// The fib package never imports a concrete address family; it only ever
// talks to the Prefix interface below. A routing daemon with its own
// IPv4/IPv6/VPN/ROA/FLOW/MPLS address representations plugs those in by
// satisfying Prefix (and Router, for longest-prefix match) directly.
package netaddr

// Type tags the address family/variant of a Prefix, mirroring the net_addr
// type tag referenced in the fib contract. Consumers outside this package
// may define their own Type values for variants this package doesn't model
// (VPN, ROA, FLOW, MPLS, ...); fib only ever compares tags for equality.
type Type uint8

const (
	TypeUnknown Type = iota
	TypeIPv4
	TypeIPv6
)

func (t Type) String() string {
	switch t {
	case TypeIPv4:
		return "ipv4"
	case TypeIPv6:
		return "ipv6"
	default:
		return "unknown"
	}
}

// Prefix is the address-type contract the FIB is built on. A 32-bit hash
// that is invariant under the table's rehash is the load-bearing property:
// the hash must be a function of the prefix bytes and length alone, never
// of the table's current bucket count.
type Prefix interface {
	// Hash returns the 32-bit hash used both as the split-order sort key
	// and, masked, as the bucket index. Must be stable across calls for
	// equal prefixes and independent of table size.
	Hash() uint32

	// Equal reports whether two prefixes denote the same network (same
	// type tag, same length, same masked bits).
	Equal(other Prefix) bool

	// Copy returns an independent copy, safe to store inside a new node.
	Copy() Prefix

	// ByteLen is the length, in bytes, of the address payload (4 for IPv4,
	// 16 for IPv6, ...).
	ByteLen() int

	// TypeTag identifies the address family/variant.
	TypeTag() Type

	// Bits is the prefix length in bits (the CIDR "/n").
	Bits() int

	// String renders the prefix in its conventional textual form, for logs
	// and test failure messages.
	String() string
}

// Router is satisfied by prefix types that support longest-prefix-match
// shortening: fib.Route repeatedly asks for one bit less of specificity
// until it gets a hit or runs out of bits. This is the "pxlen-decrement +
// low-bit-clear primitive" spec.md §6 requires of IPv4/IPv6 types.
type Router interface {
	Prefix

	// Shorten returns a copy of the prefix with Bits()-1 significant bits,
	// with any bit beyond the new length cleared, and true. If Bits() is
	// already 0, it returns the zero value and false. The return type is
	// Router (not Prefix) so fib.Route can keep shortening the result
	// without a type assertion at every step.
	Shorten() (Router, bool)
}
