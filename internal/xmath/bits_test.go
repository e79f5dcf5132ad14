package xmath

import "testing"

func TestReverseBits32IsSelfInverse(t *testing.T) {
	vals := []uint32{0, 1, 2, 0xdeadbeef, MaxUint32, 0x80000000, 0x1}
	for _, v := range vals {
		if got := ReverseBits32(ReverseBits32(v)); got != v {
			t.Fatalf("ReverseBits32(ReverseBits32(%#x)) = %#x, want %#x", v, got, v)
		}
	}
}

func TestReverseBits32PreservesOrderOfSplitPoints(t *testing.T) {
	// Appending a bit to a bucket index (b -> b | (1<<order)) must become
	// prepending a bit to the reversed key, i.e. the reversed key of a
	// higher-order split sits strictly between the reversed key of b and
	// the next bucket's reversed key in bit-reversed order.
	b := uint32(3) // 0b011
	child := b | (1 << 2) // 0b111 at order 3
	if ReverseBits32(child) < ReverseBits32(b) {
		t.Fatalf("split point ordering violated: reverse(%d)=%#x < reverse(%d)=%#x",
			child, ReverseBits32(child), b, ReverseBits32(b))
	}
}

func TestIsPowerOfTwo(t *testing.T) {
	cases := map[uint32]bool{
		0: false, 1: true, 2: true, 3: false, 4: true, 1024: true, 1023: false,
	}
	for n, want := range cases {
		if got := IsPowerOfTwo(n); got != want {
			t.Fatalf("IsPowerOfTwo(%d) = %v, want %v", n, got, want)
		}
	}
}

func TestNextPowerOfTwo(t *testing.T) {
	cases := map[uint32]uint32{
		0: 1, 1: 1, 2: 2, 3: 4, 4: 4, 5: 8, 1023: 1024, 1024: 1024,
	}
	for n, want := range cases {
		if got := NextPowerOfTwo(n); got != want {
			t.Fatalf("NextPowerOfTwo(%d) = %d, want %d", n, got, want)
		}
	}
}

func TestParentBucket(t *testing.T) {
	cases := map[uint32]uint32{
		0: 0, 1: 0, 2: 0, 3: 1, 4: 0, 5: 1, 6: 2, 7: 3,
	}
	for b, want := range cases {
		if got := ParentBucket(b); got != want {
			t.Fatalf("ParentBucket(%d) = %d, want %d", b, got, want)
		}
	}
}
