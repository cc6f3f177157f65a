package theme

import (
	"math/rand"
	"testing"
)

func TestLoadRegistry(t *testing.T) {
	r, err := LoadRegistry()
	if err != nil {
		t.Fatalf("LoadRegistry: %v", err)
	}

	if r.Count() != 4 {
		t.Errorf("Count() = %d, want 4", r.Count())
	}

	for _, id := range []string{"slate", "moss", "ink", "paper"} {
		if _, ok := r.Lookup(id); !ok {
			t.Errorf("theme %q not found", id)
		}
	}

	if _, ok := r.Lookup("nope"); ok {
		t.Error("Lookup of unknown ID reported success")
	}
}

func TestSolvedColorDerived(t *testing.T) {
	r, err := LoadRegistry()
	if err != nil {
		t.Fatalf("LoadRegistry: %v", err)
	}

	for _, id := range []string{"slate", "moss", "ink", "paper"} {
		th, _ := r.Lookup(id)
		if th.Solved == th.Conduit {
			t.Errorf("theme %q: solved color equals conduit color", id)
		}
	}
}

func TestPickRandomDeterministic(t *testing.T) {
	r, err := LoadRegistry()
	if err != nil {
		t.Fatalf("LoadRegistry: %v", err)
	}

	rng1 := rand.New(rand.NewSource(12345))
	rng2 := rand.New(rand.NewSource(12345))

	for i := 0; i < 20; i++ {
		t1 := r.PickRandom(rng1)
		t2 := r.PickRandom(rng2)
		if t1.ID != t2.ID {
			t.Errorf("pick %d mismatch: %s != %s", i, t1.ID, t2.ID)
		}
	}
}

func TestBuildRejectsBadColor(t *testing.T) {
	def := Def{
		ID:         "broken",
		Name:       "Broken",
		Background: "#GGGGGG",
		Conduit:    "#FFFFFF",
		Open:       "#FFFFFF",
		Cursor:     "#FFFFFF",
	}
	if _, err := def.build(); err == nil {
		t.Error("build accepted an invalid hex color")
	}
}
