package exporter

import (
	"strings"
	"testing"

	"github.com/lesfleursdelanuitdev/famtree/layout"
	"github.com/lesfleursdelanuitdev/famtree/types"
)

func sampleResult() *layout.Result {
	g := types.NewPersonGraph()
	a := types.NewPerson("A")
	a.SetGender(types.GenderMale)
	b := types.NewPerson("B")
	b.SetGender(types.GenderFemale)
	c := types.NewPerson("C")
	c.Rels.Father, c.Rels.Mother = "A", "B"
	a.Rels.AddChild("C")
	b.Rels.AddChild("C")
	a.Rels.AddSpouse("B")
	b.Rels.AddSpouse("A")
	g.Put(a)
	g.Put(b)
	g.Put(c)

	res, err := layout.Layout(g, "C", layout.DefaultConfig(), nil)
	if err != nil {
		panic(err)
	}
	return res
}

func TestCSVExporter_ExportToString(t *testing.T) {
	res := sampleResult()
	out, err := NewCSVExporter().ExportToString(res)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "tid,person_id") {
		t.Fatalf("expected a CSV header, got: %s", out)
	}
	if !strings.Contains(out, "C") {
		t.Fatalf("expected focus person C in output, got: %s", out)
	}
}

func TestJSONExporter_ExportToString(t *testing.T) {
	res := sampleResult()
	out, err := NewJSONExporter().ExportToString(res)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, `"main_id"`) {
		t.Fatalf("expected main_id field in JSON, got: %s", out)
	}
}

func TestXMLExporter_ExportToString(t *testing.T) {
	res := sampleResult()
	out, err := NewXMLExporter().ExportToString(res)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "<layout") {
		t.Fatalf("expected a <layout> root element, got: %s", out)
	}
}
