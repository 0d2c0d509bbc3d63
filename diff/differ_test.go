package diff

import (
	"testing"

	"github.com/lesfleursdelanuitdev/famtree/types"
)

func TestDiffGraphs_DetectsAddedRemovedAndModified(t *testing.T) {
	a := types.NewPersonGraph()
	pa := types.NewPerson("A")
	pa.Data["given_name"] = "Alice"
	a.Put(pa)
	pc := types.NewPerson("C")
	a.Put(pc)

	b := a.Clone()
	modified := b.Get("A")
	modified.Data["given_name"] = "Alicia"
	b.Delete("C")
	newPerson := types.NewPerson("D")
	b.Put(newPerson)

	report := DiffGraphs(a, b)

	if len(report.AddedPersons) != 1 || report.AddedPersons[0] != "D" {
		t.Fatalf("expected D to be reported added, got %v", report.AddedPersons)
	}
	if len(report.RemovedPersons) != 1 || report.RemovedPersons[0] != "C" {
		t.Fatalf("expected C to be reported removed, got %v", report.RemovedPersons)
	}
	if len(report.ModifiedPersons) != 1 || report.ModifiedPersons[0].PersonID != "A" {
		t.Fatalf("expected A to be reported modified, got %v", report.ModifiedPersons)
	}
}

func TestDiffGraphs_DetectsEdgeChange(t *testing.T) {
	a := types.NewPersonGraph()
	father := types.NewPerson("F")
	father.SetGender(types.GenderMale)
	child := types.NewPerson("C")
	a.Put(father)
	a.Put(child)

	b := a.Clone()
	bf, bc := b.Get("F"), b.Get("C")
	bc.Rels.Father = "F"
	bf.Rels.AddChild("C")

	report := DiffGraphs(a, b)
	if len(report.AddedEdges) != 1 || report.AddedEdges[0].Kind != "father" {
		t.Fatalf("expected one added father edge, got %v", report.AddedEdges)
	}
	if len(report.RemovedEdges) != 0 {
		t.Fatalf("expected no removed edges, got %v", report.RemovedEdges)
	}
}

func TestDiffGraphs_IdenticalGraphsYieldEmptyReport(t *testing.T) {
	a := types.NewPersonGraph()
	a.Put(types.NewPerson("A"))
	b := a.Clone()

	report := DiffGraphs(a, b)
	if !report.IsEmpty() {
		t.Fatalf("expected empty report for identical graphs, got %+v", report)
	}
}
