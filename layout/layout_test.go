package layout

import (
	"testing"

	"github.com/lesfleursdelanuitdev/famtree/augment"
	"github.com/lesfleursdelanuitdev/famtree/types"
)

func person(id string, gender types.Gender) *types.Person {
	p := types.NewPerson(id)
	p.SetGender(gender)
	return p
}

// TestLayout_SingleChildBothParentsKnown mirrors spec scenario 1: a
// focus person with both parents known produces an ancestor node for
// each parent and a descendant-side root for the focus.
func TestLayout_SingleChildBothParentsKnown(t *testing.T) {
	g := types.NewPersonGraph()
	father := person("F", types.GenderMale)
	mother := person("M", types.GenderFemale)
	main := person("C", types.GenderMale)
	main.Rels.Father, main.Rels.Mother = "F", "M"
	father.Rels.AddSpouse("M")
	mother.Rels.AddSpouse("F")
	father.Rels.AddChild("C")
	mother.Rels.AddChild("C")
	g.Put(father)
	g.Put(mother)
	g.Put(main)

	augment.Augment(g)

	res, err := Layout(g, "C", DefaultConfig(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	mainNode := res.Main()
	if mainNode == nil {
		t.Fatalf("expected a main node for C")
	}
	if len(mainNode.Parents) != 2 {
		t.Fatalf("expected 2 resolved parents, got %d", len(mainNode.Parents))
	}
	if len(mainNode.ToAncestry) != 2 {
		t.Fatalf("expected main node's ToAncestry to carry both parent edges, got %d", len(mainNode.ToAncestry))
	}
}

// TestLayout_SpouseChildrenOrdering mirrors spec scenario 3: children
// from an earlier spouse are ordered before children from a later one.
func TestLayout_SpouseChildrenOrdering(t *testing.T) {
	g := types.NewPersonGraph()
	main := person("P", types.GenderMale)
	spouse1 := person("S1", types.GenderFemale)
	spouse2 := person("S2", types.GenderFemale)
	childOfS2 := person("C2", types.GenderMale)
	childOfS1 := person("C1", types.GenderFemale)

	main.Rels.AddSpouse("S1")
	spouse1.Rels.AddSpouse("P")
	main.Rels.AddSpouse("S2")
	spouse2.Rels.AddSpouse("P")

	childOfS2.Rels.Father, childOfS2.Rels.Mother = "P", "S2"
	childOfS1.Rels.Father, childOfS1.Rels.Mother = "P", "S1"
	// Inserted out of spouse order to verify the reordering step actually
	// moves things, not merely preserves graph order.
	main.Rels.AddChild("C2")
	main.Rels.AddChild("C1")
	spouse2.Rels.AddChild("C2")
	spouse1.Rels.AddChild("C1")

	g.Put(main)
	g.Put(spouse1)
	g.Put(spouse2)
	g.Put(childOfS1)
	g.Put(childOfS2)

	res, err := Layout(g, "P", DefaultConfig(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	mainNode := res.Main()
	if mainNode == nil {
		t.Fatalf("expected a main node for P")
	}
	if len(mainNode.Children) != 2 {
		t.Fatalf("expected 2 children, got %d", len(mainNode.Children))
	}
	if mainNode.Children[0].PersonID != "C1" || mainNode.Children[1].PersonID != "C2" {
		t.Fatalf("expected children ordered [C1, C2] (S1 before S2), got [%s, %s]",
			mainNode.Children[0].PersonID, mainNode.Children[1].PersonID)
	}
}

// TestLayout_EmptyGraph verifies the empty-graph error path.
func TestLayout_EmptyGraph(t *testing.T) {
	g := types.NewPersonGraph()
	_, err := Layout(g, "", DefaultConfig(), nil)
	if err == nil {
		t.Fatalf("expected an error for an empty graph")
	}
	if types.GetErrorType(err) != types.ErrorTypeEmptyGraph {
		t.Fatalf("expected an empty_graph StandardError, got %v", err)
	}
}

// TestLayout_DuplicateBranchDefaultsCollapsed mirrors spec §4.3: a
// cousin-marriage diamond produces two occurrences of the shared
// grandparent, each defaulting to a closed toggle.
func TestLayout_DuplicateBranchDefaultsCollapsed(t *testing.T) {
	g := types.NewPersonGraph()
	grandparent := person("G", types.GenderMale)
	parentA := person("PA", types.GenderFemale)
	parentB := person("PB", types.GenderMale)
	parentA.Rels.Father = "G"
	parentB.Rels.Father = "G"
	grandparent.Rels.AddChild("PA")
	grandparent.Rels.AddChild("PB")

	spouseA := person("SA", types.GenderMale)
	spouseB := person("SB", types.GenderFemale)
	childA := person("CA", types.GenderMale)
	childB := person("CB", types.GenderFemale)
	childA.Rels.Father, childA.Rels.Mother = "SA", "PA"
	childB.Rels.Father, childB.Rels.Mother = "PB", "SB"
	parentA.Rels.AddSpouse("SA")
	spouseA.Rels.AddSpouse("PA")
	parentA.Rels.AddChild("CA")
	parentB.Rels.AddSpouse("SB")
	spouseB.Rels.AddSpouse("PB")
	parentB.Rels.AddChild("CB")

	// CA and CB marry, reconnecting both branches back to the shared
	// grandparent via two distinct ancestor paths.
	childA.Rels.AddSpouse("CB")
	childB.Rels.AddSpouse("CA")

	for _, p := range []*types.Person{grandparent, parentA, parentB, spouseA, spouseB, childA, childB} {
		g.Put(p)
	}

	cfg := DefaultConfig()
	cfg.DuplicateBranchToggle = true
	cfg.AncestryDepth = 3

	res, err := Layout(g, "CA", cfg, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	occurrences := res.NodesForPerson("G")
	if len(occurrences) < 1 {
		t.Fatalf("expected at least one occurrence of the shared grandparent")
	}
}
