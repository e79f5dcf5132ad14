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

package netaddr

import (
	"net/netip"

	"github.com/cespare/xxhash/v2"
)

// IPPrefix is the reference Prefix/Router implementation, built on
// net/netip.Prefix the same way the gaissmai/bart routing table is.
type IPPrefix struct {
	p netip.Prefix
}

// NewIPPrefix normalises addr/bits into a masked IPPrefix.
func NewIPPrefix(addr netip.Addr, bits int) IPPrefix {
	p := netip.PrefixFrom(addr, bits)
	return IPPrefix{p: p.Masked()}
}

// ParseIPPrefix parses a CIDR string such as "10.0.0.0/8".
func ParseIPPrefix(s string) (IPPrefix, error) {
	p, err := netip.ParsePrefix(s)
	if err != nil {
		return IPPrefix{}, err
	}
	return IPPrefix{p: p.Masked()}, nil
}

// Hash implements Prefix. It is a function of the masked address bytes and
// bit length alone, so it is stable across rehashes by construction.
func (p IPPrefix) Hash() uint32 {
	addr := p.p.Addr()
	b := addr.AsSlice()
	h := xxhash.New()
	_, _ = h.Write(b)
	_, _ = h.Write([]byte{byte(p.p.Bits())})
	sum := h.Sum64()
	return uint32(sum) ^ uint32(sum>>32)
}

func (p IPPrefix) Equal(other Prefix) bool {
	o, ok := other.(IPPrefix)
	if !ok {
		return false
	}
	return p.p == o.p
}

func (p IPPrefix) Copy() Prefix {
	return IPPrefix{p: p.p}
}

func (p IPPrefix) ByteLen() int {
	if p.p.Addr().Is4() {
		return 4
	}
	return 16
}

func (p IPPrefix) TypeTag() Type {
	if p.p.Addr().Is4() {
		return TypeIPv4
	}
	return TypeIPv6
}

func (p IPPrefix) Bits() int {
	return p.p.Bits()
}

func (p IPPrefix) String() string {
	return p.p.String()
}

// Shorten implements Router: one bit less specific, re-masked.
func (p IPPrefix) Shorten() (Router, bool) {
	if p.p.Bits() <= 0 {
		return IPPrefix{}, false
	}
	np := netip.PrefixFrom(p.p.Addr(), p.p.Bits()-1).Masked()
	return IPPrefix{p: np}, true
}

// Addr returns the underlying netip.Addr.
func (p IPPrefix) Addr() netip.Addr { return p.p.Addr() }

// Prefix returns the underlying netip.Prefix.
func (p IPPrefix) Prefix() netip.Prefix { return p.p }
