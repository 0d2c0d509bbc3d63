package augment

import (
	"testing"

	"github.com/lesfleursdelanuitdev/famtree/types"
)

func newTestPerson(id string, gender types.Gender) *types.Person {
	p := types.NewPerson(id)
	p.SetGender(gender)
	return p
}

// TestAugment_MissingMother mirrors spec scenario 2: a child with only a
// father gets a synthetic to_add mother inserted.
func TestAugment_MissingMother(t *testing.T) {
	g := types.NewPersonGraph()
	a := newTestPerson("A", types.GenderMale)
	c := newTestPerson("C", types.GenderFemale)
	c.Rels.Father = "A"
	a.Rels.AddChild("C")
	g.Put(a)
	g.Put(c)

	Augment(g)

	if c.Rels.Mother == "" {
		t.Fatalf("expected C to have a synthetic mother")
	}
	spouse := g.Get(c.Rels.Mother)
	if spouse == nil || !spouse.ToAdd {
		t.Fatalf("expected synthetic mother to be marked to_add")
	}
	if spouse.Gender() != types.GenderFemale {
		t.Fatalf("expected synthetic mother to be female, got %v", spouse.Gender())
	}
	if !a.Rels.HasSpouse(spouse.ID) || !spouse.Rels.HasSpouse("A") {
		t.Fatalf("expected reciprocal spouse link between A and synthetic mother")
	}
	if !spouse.Rels.HasChild("C") {
		t.Fatalf("expected synthetic mother to list C as a child")
	}
}

// TestAugment_Idempotent verifies running Augment twice yields the same
// graph as running it once (spec §8).
func TestAugment_Idempotent(t *testing.T) {
	g := types.NewPersonGraph()
	a := newTestPerson("A", types.GenderMale)
	c := newTestPerson("C", types.GenderFemale)
	c.Rels.Father = "A"
	a.Rels.AddChild("C")
	g.Put(a)
	g.Put(c)

	Augment(g)
	countAfterFirst := g.Len()
	Augment(g)
	countAfterSecond := g.Len()

	if countAfterFirst != countAfterSecond {
		t.Fatalf("augment is not idempotent: %d persons after first run, %d after second", countAfterFirst, countAfterSecond)
	}
}

// TestAugment_BothParentsPresent_NoOp verifies a fully-parented child is
// left untouched.
func TestAugment_BothParentsPresent_NoOp(t *testing.T) {
	g := types.NewPersonGraph()
	a := newTestPerson("A", types.GenderMale)
	b := newTestPerson("B", types.GenderFemale)
	c := newTestPerson("C", types.GenderMale)
	c.Rels.Father, c.Rels.Mother = "A", "B"
	a.Rels.AddSpouse("B")
	b.Rels.AddSpouse("A")
	a.Rels.AddChild("C")
	b.Rels.AddChild("C")
	g.Put(a)
	g.Put(b)
	g.Put(c)

	Augment(g)

	if g.Len() != 3 {
		t.Fatalf("expected no synthetic spouse to be added, got %d persons", g.Len())
	}
}
