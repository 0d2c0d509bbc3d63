package gedcomimport

import (
	"os"
	"path/filepath"
	"testing"
)

const minimalGedcom = `0 HEAD
1 SOUR famtree-test
1 GEDC
2 VERS 5.5.1
2 FORM LINEAGE-LINKED
1 CHAR UTF-8
0 @I1@ INDI
1 NAME John /Smith/
1 SEX M
0 @I2@ INDI
1 NAME Jane /Smith/
1 SEX F
0 @I3@ INDI
1 NAME Alice /Smith/
1 SEX F
0 @F1@ FAM
1 HUSB @I1@
1 WIFE @I2@
1 CHIL @I3@
0 TRLR
`

func writeFixture(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "family.ged")
	if err := os.WriteFile(path, []byte(minimalGedcom), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	return path
}

func TestLoadFile_MapsIndividualsAndFamily(t *testing.T) {
	path := writeFixture(t)

	g, report, err := LoadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Individuals != 3 {
		t.Fatalf("expected 3 individuals, got %d", report.Individuals)
	}
	if report.Families != 1 {
		t.Fatalf("expected 1 family, got %d", report.Families)
	}

	alice := g.Get("@I3@")
	if alice == nil {
		t.Fatalf("expected @I3@ to be present")
	}
	if alice.Rels.Father != "@I1@" || alice.Rels.Mother != "@I2@" {
		t.Fatalf("expected Alice's parents to be wired, got father=%q mother=%q",
			alice.Rels.Father, alice.Rels.Mother)
	}

	john := g.Get("@I1@")
	if john == nil || !john.Rels.HasChild("@I3@") {
		t.Fatalf("expected John to list Alice as a child")
	}
	if !john.Rels.HasSpouse("@I2@") {
		t.Fatalf("expected John and Jane to be wired as spouses")
	}
}
