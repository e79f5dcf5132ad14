package fib

import (
	"net/netip"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/erigontech/fib/netaddr"
)

// Law: find(get(t, a)) = get(t, a) after get returned.
func TestLawFindAfterGetReturnsTheSameEntry(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		tbl := New[int](NewConfig(), netaddr.TypeIPv4)
		defer tbl.Free()

		i := rapid.Uint32Range(0, 1<<20).Draw(rt, "addr")
		p := ipv4Slash32(i)

		inserted, _ := tbl.Get(p, nil)
		found, ok := tbl.Find(p)
		require.True(rt, ok)
		require.Same(rt, inserted, found)
	})
}

// Law: delete(t, get(t, a)) returns true exactly once for each inserted
// prefix.
func TestLawDeleteSucceedsExactlyOnce(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		tbl := New[int](NewConfig(), netaddr.TypeIPv4)
		defer tbl.Free()

		i := rapid.Uint32Range(0, 1<<20).Draw(rt, "addr")
		p := ipv4Slash32(i)
		e, _ := tbl.Get(p, nil)

		require.True(rt, tbl.Delete(e))
		require.False(rt, tbl.Delete(e))
	})
}

// Law: after any sequence of inserts and deletes quiesces, iteration
// yields exactly the set of still-inserted prefixes, each once.
func TestLawIterationReflectsLiveSetAfterRandomOps(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		tbl := New[int](NewConfig(), netaddr.TypeIPv4)
		defer tbl.Free()

		const universe = 64
		live := map[uint32]*Entry[int]{}

		ops := rapid.SliceOfN(rapid.IntRange(0, 1), 1, 200).Draw(rt, "ops")
		addrs := rapid.SliceOfN(rapid.Uint32Range(0, universe-1), len(ops), len(ops)).Draw(rt, "addrs")

		for idx, op := range ops {
			addr := addrs[idx]
			p := ipv4Slash32(addr)
			if op == 0 {
				e, created := tbl.Get(p, nil)
				if created {
					live[addr] = e
				}
			} else if e, ok := live[addr]; ok {
				tbl.Delete(e)
				delete(live, addr)
			}
		}

		want := map[uint32]struct{}{}
		for addr := range live {
			want[addr] = struct{}{}
		}

		got := map[uint32]struct{}{}
		tbl.Walk(func(e *Entry[int]) bool {
			addr := e.Prefix().(netaddr.IPPrefix).Addr()
			a4 := addr.As4()
			v := uint32(a4[0])<<24 | uint32(a4[1])<<16 | uint32(a4[2])<<8 | uint32(a4[3])
			got[v] = struct{}{}
			return true
		})

		require.Equal(rt, want, got)
	})
}

func TestIPPrefixHashInvariantUnderRapidRoundTrip(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		a := rapid.Uint32().Draw(rt, "addr")
		bits := rapid.IntRange(0, 32).Draw(rt, "bits")
		addr := netip.AddrFrom4([4]byte{byte(a >> 24), byte(a >> 16), byte(a >> 8), byte(a)})

		p1 := netaddr.NewIPPrefix(addr, bits)
		p2 := netaddr.NewIPPrefix(addr, bits)
		require.Equal(rt, p1.Hash(), p2.Hash())
		require.True(rt, p1.Equal(p2))
	})
}
