package gedcomimport

import (
	"fmt"
	"os"

	cacackdecoder "github.com/cacack/gedcom-go/decoder"
	"github.com/elliotchance/gedcom/v39"

	"github.com/lesfleursdelanuitdev/famtree/types"
)

// Report summarizes what LoadFile found, including the cross-check
// against the second decoder.
type Report struct {
	Individuals int
	Families    int

	CacackIndividuals int
	CacackFamilies    int
	CountsAgree       bool

	Warnings []string
}

// LoadFile parses a .ged file into a fresh Person Graph. Person ids
// are the GEDCOM pointer strings (e.g. "@I1@") so relation wiring stays
// stable across reloads of the same file.
func LoadFile(path string) (*types.PersonGraph, *Report, error) {
	doc, err := gedcom.NewDocumentFromGEDCOMFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("gedcomimport: failed to parse %s: %w", path, err)
	}

	g := types.NewPersonGraph()
	for _, indi := range doc.Individuals() {
		g.Put(individualToPerson(indi))
	}
	for _, fam := range doc.Families() {
		wireFamily(g, fam)
	}

	report := &Report{
		Individuals: len(doc.Individuals()),
		Families:    len(doc.Families()),
	}
	for _, w := range doc.Warnings() {
		report.Warnings = append(report.Warnings, fmt.Sprint(w))
	}

	crossCheck(path, report)
	return g, report, nil
}

func individualToPerson(indi *gedcom.IndividualNode) *types.Person {
	p := types.NewPerson(indi.Pointer())

	switch indi.Sex() {
	case gedcom.SexMale:
		p.SetGender(types.GenderMale)
	case gedcom.SexFemale:
		p.SetGender(types.GenderFemale)
	}

	if names := indi.Names(); len(names) > 0 {
		name := names[0]
		if given := name.GivenName(); given != "" {
			p.Data["given_name"] = given
		}
		if surname := name.Surname(); surname != "" {
			p.Data["surname"] = surname
		}
	}

	if birth := indi.Births(); len(birth) > 0 {
		if date := birth[0].Dates(); len(date) > 0 {
			p.Data["birth_date"] = date[0].String()
		}
	}

	return p
}

// wireFamily sets each child's father/mother and appends the child to
// each known parent's children, and links husband/wife as spouses —
// the same HUSB/WIFE/CHIL cross-reference resolution the teacher's own
// family_validator.go checks for structural soundness, applied here to
// build the graph instead of validating one already built.
func wireFamily(g *types.PersonGraph, fam *gedcom.FamilyNode) {
	husband := fam.Husband()
	wife := fam.Wife()

	var husbandID, wifeID string
	if husband != nil {
		husbandID = husband.Pointer()
	}
	if wife != nil {
		wifeID = wife.Pointer()
	}

	if husbandID != "" && wifeID != "" {
		if h := g.Get(husbandID); h != nil {
			h.Rels.AddSpouse(wifeID)
		}
		if w := g.Get(wifeID); w != nil {
			w.Rels.AddSpouse(husbandID)
		}
	}

	for _, child := range fam.Children() {
		c := g.Get(child.Pointer())
		if c == nil {
			continue
		}
		if husbandID != "" {
			c.Rels.Father = husbandID
			if h := g.Get(husbandID); h != nil {
				h.Rels.AddChild(c.ID)
			}
		}
		if wifeID != "" {
			c.Rels.Mother = wifeID
			if w := g.Get(wifeID); w != nil {
				w.Rels.AddChild(c.ID)
			}
		}
	}
}

// crossCheck runs the file through cacack/gedcom-go's decoder as a
// second, independent parse, recording whether its individual/family
// counts agree with elliotchance's.
func crossCheck(path string, report *Report) {
	file, err := os.Open(path)
	if err != nil {
		return
	}
	defer file.Close()

	doc, err := cacackdecoder.Decode(file)
	if err != nil {
		report.Warnings = append(report.Warnings, "cacack/gedcom-go cross-check failed: "+err.Error())
		return
	}

	report.CacackIndividuals = len(doc.Individuals())
	report.CacackFamilies = len(doc.Families())
	report.CountsAgree = report.CacackIndividuals == report.Individuals && report.CacackFamilies == report.Families
	if !report.CountsAgree {
		report.Warnings = append(report.Warnings, fmt.Sprintf(
			"parser disagreement: elliotchance saw %d individuals/%d families, cacack saw %d/%d",
			report.Individuals, report.Families, report.CacackIndividuals, report.CacackFamilies))
	}
}
