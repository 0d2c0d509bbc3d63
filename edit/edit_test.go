package edit

import (
	"testing"

	"github.com/lesfleursdelanuitdev/famtree/types"
)

func newTestPerson(id string, gender types.Gender) *types.Person {
	p := types.NewPerson(id)
	p.SetGender(gender)
	return p
}

func seedLine() (*types.PersonGraph, *types.Person, *types.Person, *types.Person) {
	g := types.NewPersonGraph()
	a := newTestPerson("A", types.GenderMale)
	b := newTestPerson("B", types.GenderFemale)
	c := newTestPerson("C", types.GenderMale)
	c.Rels.Father = "A"
	c.Rels.Mother = "B"
	a.Rels.AddSpouse("B")
	b.Rels.AddSpouse("A")
	a.Rels.AddChild("C")
	b.Rels.AddChild("C")
	g.Put(a)
	g.Put(b)
	g.Put(c)
	return g, a, b, c
}

func TestAddRelative_CreatesToAddPlaceholder(t *testing.T) {
	g, _, _, c := seedLine()

	placeholder, err := AddRelative(g, c.ID, types.RelTypeSpouse, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !placeholder.ToAdd {
		t.Fatalf("expected placeholder to be marked to_add")
	}
	if placeholder.NewRelData == nil || placeholder.NewRelData.RelType != types.RelTypeSpouse {
		t.Fatalf("expected placeholder to carry new-rel-data for spouse")
	}
	if !c.Rels.HasSpouse(placeholder.ID) {
		t.Fatalf("expected C to be wired to the placeholder spouse")
	}
}

func TestAddRelative_RejectsSecondFather(t *testing.T) {
	g, _, _, c := seedLine()
	if _, err := AddRelative(g, c.ID, types.RelTypeFather, ""); err == nil {
		t.Fatalf("expected error adding a second father")
	}
}

func TestLinkExistingRelative_ReplacesPlaceholderAndRejectsCycle(t *testing.T) {
	g, a, _, c := seedLine()

	placeholder, err := AddRelative(g, c.ID, types.RelTypeSpouse, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	d := newTestPerson("D", types.GenderFemale)
	g.Put(d)

	if err := LinkExistingRelative(g, c.ID, d.ID, types.RelTypeSpouse, ""); err != nil {
		t.Fatalf("unexpected error linking existing spouse: %v", err)
	}
	if g.Has(placeholder.ID) {
		t.Fatalf("expected in-flight placeholder to be removed once linked")
	}
	if !c.Rels.HasSpouse(d.ID) || !d.Rels.HasSpouse(c.ID) {
		t.Fatalf("expected reciprocal spouse link between C and D")
	}

	if err := LinkExistingRelative(g, a.ID, c.ID, types.RelTypeFather, ""); err == nil {
		t.Fatalf("expected cycle rejection linking a descendant as a parent")
	}
}

func TestGetLinkCandidates_ExcludesDescendantsForParentSlot(t *testing.T) {
	g, a, _, c := seedLine()
	candidates := GetLinkCandidates(g, a.ID, types.RelTypeFather)
	for _, cand := range candidates {
		if cand.ID == c.ID {
			t.Fatalf("expected C (a descendant of A) to be excluded as a father candidate")
		}
	}
}

func TestDeletePerson_FullyRemovesLeaf(t *testing.T) {
	g, _, _, c := seedLine()
	if err := DeletePerson(g, c.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.Has(c.ID) {
		t.Fatalf("expected C to be fully removed")
	}
}

func TestDeletePerson_DemotesArticulationPoint(t *testing.T) {
	// A - C - E, where C is the only link between A's side and E.
	g := types.NewPersonGraph()
	a := newTestPerson("A", types.GenderMale)
	c := newTestPerson("C", types.GenderMale)
	e := newTestPerson("E", types.GenderMale)
	c.Rels.Father = "A"
	a.Rels.AddChild("C")
	e.Rels.Father = "C"
	c.Rels.AddChild("E")
	g.Put(a)
	g.Put(c)
	g.Put(e)

	if err := DeletePerson(g, c.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !g.Has(c.ID) {
		t.Fatalf("expected C to survive as a demoted Unknown placeholder")
	}
	demoted := g.Get(c.ID)
	if !demoted.Unknown {
		t.Fatalf("expected C to be marked Unknown")
	}
	if !demoted.Rels.HasChild("E") || demoted.Rels.Father != "A" {
		t.Fatalf("expected C's relations to remain intact so A and E stay connected")
	}
}

func TestDeletePerson_LastPersonBecomesBlank(t *testing.T) {
	g := types.NewPersonGraph()
	a := newTestPerson("A", types.GenderMale)
	g.Put(a)

	if err := DeletePerson(g, a.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.Len() != 1 {
		t.Fatalf("expected the graph to retain exactly one blank person, got %d", g.Len())
	}
	if !g.Get(a.ID).Unknown {
		t.Fatalf("expected the sole remaining person to be marked Unknown")
	}
}

func TestToggleHideShow_RoundTrips(t *testing.T) {
	g, a, b, c := seedLine()

	if err := ToggleHideShow(g, c.ID); err != nil {
		t.Fatalf("unexpected error hiding: %v", err)
	}
	if a.Rels.HasChild(c.ID) || b.Rels.HasChild(c.ID) {
		t.Fatalf("expected C to be detached from both parents while hidden")
	}
	if c.HiddenRels == nil {
		t.Fatalf("expected C's relations to be stashed in HiddenRels")
	}

	if err := ToggleHideShow(g, c.ID); err != nil {
		t.Fatalf("unexpected error showing: %v", err)
	}
	if !a.Rels.HasChild(c.ID) || !b.Rels.HasChild(c.ID) {
		t.Fatalf("expected C to be reattached to both parents after showing")
	}
	if c.HiddenRels != nil {
		t.Fatalf("expected HiddenRels to be cleared after showing")
	}
}
