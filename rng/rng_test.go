package rng_test

import (
	"errors"
	"testing"

	"github.com/mazegrid/mazegrid/rng"
)

// TestIntN_Range verifies bounds and the ErrInvalidRange contract.
func TestIntN_Range(t *testing.T) {
	src := rng.New(7)
	for i := 0; i < 1000; i++ {
		v, err := src.IntN(3, 9)
		if err != nil {
			t.Fatalf("IntN(3,9) error: %v", err)
		}
		if v < 3 || v >= 9 {
			t.Fatalf("IntN(3,9) = %d; want in [3,9)", v)
		}
	}

	cases := []struct{ lo, hi int }{{5, 5}, {6, 5}, {0, 0}, {0, -1}}
	for _, tc := range cases {
		if _, err := src.IntN(tc.lo, tc.hi); !errors.Is(err, rng.ErrInvalidRange) {
			t.Errorf("IntN(%d,%d) error = %v; want ErrInvalidRange", tc.lo, tc.hi, err)
		}
	}
}

// TestDeterminism verifies that equal seeds replay the exact same stream.
func TestDeterminism(t *testing.T) {
	a := rng.New(42)
	b := rng.New(42)
	for i := 0; i < 200; i++ {
		av, _ := a.IntN(0, 1<<20)
		bv, _ := b.IntN(0, 1<<20)
		if av != bv {
			t.Fatalf("draw %d diverged: %d vs %d", i, av, bv)
		}
	}
	if a.Float64() != b.Float64() {
		t.Error("Float64 diverged for equal seeds")
	}
}

// TestSeed_Reset verifies Seed rewinds the stream deterministically.
func TestSeed_Reset(t *testing.T) {
	src := rng.New(99)
	first, _ := src.IntN(0, 1000)
	_, _ = src.IntN(0, 1000)
	src.Seed(99)
	again, _ := src.IntN(0, 1000)
	if first != again {
		t.Errorf("after reseed first draw = %d; want %d", again, first)
	}
}

// TestZeroSeedPolicy verifies seed==0 maps onto the stable default stream.
func TestZeroSeedPolicy(t *testing.T) {
	z := rng.New(0)
	d := rng.New(1)
	zv, _ := z.IntN(0, 1<<30)
	dv, _ := d.IntN(0, 1<<30)
	if zv != dv {
		t.Errorf("zero seed should alias the default seed stream: %d vs %d", zv, dv)
	}
}

// TestPerm verifies Perm yields a valid permutation and is seed-stable.
func TestPerm(t *testing.T) {
	p := rng.New(5).Perm(50)
	if len(p) != 50 {
		t.Fatalf("Perm(50) length = %d", len(p))
	}
	seen := make([]bool, 50)
	for _, v := range p {
		if v < 0 || v >= 50 || seen[v] {
			t.Fatalf("Perm(50) is not a permutation: %v", p)
		}
		seen[v] = true
	}
	q := rng.New(5).Perm(50)
	for i := range p {
		if p[i] != q[i] {
			t.Fatal("Perm not reproducible for equal seeds")
		}
	}
}

// TestDerive verifies substreams are deterministic per (parent, stream) and
// leave the parent stream untouched.
func TestDerive(t *testing.T) {
	parent := rng.New(42)
	c1 := parent.Derive(3)
	c2 := parent.Derive(3)
	v1, _ := c1.IntN(0, 1<<30)
	v2, _ := c2.IntN(0, 1<<30)
	if v1 != v2 {
		t.Error("Derive(3) not reproducible for equal parent seeds")
	}

	other := parent.Derive(4)
	v3, _ := other.IntN(0, 1<<30)
	if v1 == v3 {
		t.Error("distinct streams produced identical first draws (suspicious mix)")
	}

	// Parent state must be unaffected by derivation.
	fresh := rng.New(42)
	pv, _ := parent.IntN(0, 1<<30)
	fv, _ := fresh.IntN(0, 1<<30)
	if pv != fv {
		t.Error("Derive advanced the parent stream")
	}
}
