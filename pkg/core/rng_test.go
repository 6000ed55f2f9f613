package core

import "testing"

func TestRNGDeterministic(t *testing.T) {
	a := NewRNG(5)
	b := NewRNG(5)
	for i := 0; i < 64; i++ {
		if a.Uint8n(10) != b.Uint8n(10) {
			t.Fatalf("draw %d diverged for equal seeds", i)
		}
	}
}

func TestRNGEdgeCases(t *testing.T) {
	r := NewRNG(1)
	if r.Uint8n(0) != 0 {
		t.Fatal("Uint8n(0) should return 0")
	}
	for i := 0; i < 32; i++ {
		if r.Chance(0) {
			t.Fatal("Chance(0) should never fire")
		}
		if !r.Chance(1) {
			t.Fatal("Chance(1) should always fire")
		}
	}
}
