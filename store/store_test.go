package store

import (
	"testing"

	"github.com/lesfleursdelanuitdev/famtree/layout"
	"github.com/lesfleursdelanuitdev/famtree/types"
)

func seedGraph() *types.PersonGraph {
	g := types.NewPersonGraph()
	a := types.NewPerson("A")
	a.SetGender(types.GenderMale)
	b := types.NewPerson("B")
	b.SetGender(types.GenderFemale)
	c := types.NewPerson("C")
	c.Rels.Father, c.Rels.Mother = "A", "B"
	a.Rels.AddSpouse("B")
	b.Rels.AddSpouse("A")
	a.Rels.AddChild("C")
	b.Rels.AddChild("C")
	g.Put(a)
	g.Put(b)
	g.Put(c)
	return g
}

func TestStore_UpdateMainId_PushesHistory(t *testing.T) {
	s, err := New(seedGraph(), layout.DefaultConfig(), "C")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.UpdateMainId("A"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.MainID() != "A" {
		t.Fatalf("expected main id A, got %s", s.MainID())
	}
	if len(s.history) != 1 || s.history[0] != "C" {
		t.Fatalf("expected history [C], got %v", s.history)
	}
}

func TestStore_FocusRecoversAfterDelete(t *testing.T) {
	g := seedGraph()
	s, err := New(g, layout.DefaultConfig(), "C")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.UpdateMainId("A"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := s.Mutate(func(g *types.PersonGraph) error {
		g.Delete("A")
		return nil
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if s.MainID() == "A" {
		t.Fatalf("expected focus to recover off the deleted person")
	}
}

func TestStore_OnUpdateCalledOnConstruction(t *testing.T) {
	var got *layout.Result
	s, err := New(seedGraph(), layout.DefaultConfig(), "C", WithOnUpdate(func(res *layout.Result) {
		got = res
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil {
		t.Fatalf("expected onUpdate to be invoked during construction")
	}
	if s.GetTree() != got {
		t.Fatalf("expected GetTree to return the same result passed to onUpdate")
	}
}
