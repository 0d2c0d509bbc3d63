package diff

import (
	"fmt"
	"sort"

	"github.com/lesfleursdelanuitdev/famtree/types"
)

// FieldChange is a single attribute that differs between the same
// person's two snapshots.
type FieldChange struct {
	Field    string
	OldValue interface{}
	NewValue interface{}
}

// PersonModification is a person present in both snapshots whose data
// or relations changed.
type PersonModification struct {
	PersonID      string
	DataChanges   []FieldChange
	RelationNotes []string
}

// EdgeChange names a relation edge that appeared or disappeared between
// two persons.
type EdgeChange struct {
	FromID, ToID string
	Kind         string // "father", "mother", "spouse"
}

// Report is DiffGraphs' result: everything that differs between two
// Person Graph snapshots.
type Report struct {
	AddedPersons    []string
	RemovedPersons  []string
	ModifiedPersons []PersonModification
	AddedEdges      []EdgeChange
	RemovedEdges    []EdgeChange
}

// IsEmpty reports whether the two snapshots were identical.
func (r Report) IsEmpty() bool {
	return len(r.AddedPersons) == 0 && len(r.RemovedPersons) == 0 &&
		len(r.ModifiedPersons) == 0 && len(r.AddedEdges) == 0 && len(r.RemovedEdges) == 0
}

// DiffGraphs compares two Person Graph snapshots (for instance, two
// entries from the Reactive Store's undo/redo history) and reports
// what changed, matching persons by id (spec-stable across Edit
// Operations). Grounded on the teacher's GedcomDiffer.Compare, adapted
// from its "xref"-matching record diff to a Person Graph's simpler
// id-addressed model.
func DiffGraphs(a, b *types.PersonGraph) Report {
	byIDa := indexByID(a)
	byIDb := indexByID(b)

	var report Report

	for id := range byIDa {
		if _, ok := byIDb[id]; !ok {
			report.RemovedPersons = append(report.RemovedPersons, id)
		}
	}
	for id := range byIDb {
		if _, ok := byIDa[id]; !ok {
			report.AddedPersons = append(report.AddedPersons, id)
		}
	}
	sort.Strings(report.RemovedPersons)
	sort.Strings(report.AddedPersons)

	for id, pa := range byIDa {
		pb, ok := byIDb[id]
		if !ok {
			continue
		}
		if mod := diffPerson(pa, pb); len(mod.DataChanges) > 0 || len(mod.RelationNotes) > 0 {
			report.ModifiedPersons = append(report.ModifiedPersons, mod)
		}
	}
	sort.Slice(report.ModifiedPersons, func(i, j int) bool {
		return report.ModifiedPersons[i].PersonID < report.ModifiedPersons[j].PersonID
	})

	report.AddedEdges, report.RemovedEdges = diffEdges(a, b)
	return report
}

func indexByID(g *types.PersonGraph) map[string]*types.Person {
	out := map[string]*types.Person{}
	for _, p := range g.All() {
		out[p.ID] = p
	}
	return out
}

func diffPerson(a, b *types.Person) PersonModification {
	mod := PersonModification{PersonID: a.ID}

	keys := map[string]bool{}
	for k := range a.Data {
		keys[k] = true
	}
	for k := range b.Data {
		keys[k] = true
	}
	fields := make([]string, 0, len(keys))
	for k := range keys {
		fields = append(fields, k)
	}
	sort.Strings(fields)

	for _, field := range fields {
		oldVal, oldOK := a.Data[field]
		newVal, newOK := b.Data[field]
		if oldOK != newOK || oldVal != newVal {
			mod.DataChanges = append(mod.DataChanges, FieldChange{Field: field, OldValue: oldVal, NewValue: newVal})
		}
	}

	if a.ToAdd != b.ToAdd {
		mod.RelationNotes = append(mod.RelationNotes, fmt.Sprintf("to_add changed from %v to %v", a.ToAdd, b.ToAdd))
	}
	if a.Unknown != b.Unknown {
		mod.RelationNotes = append(mod.RelationNotes, fmt.Sprintf("unknown changed from %v to %v", a.Unknown, b.Unknown))
	}

	return mod
}

// diffEdges reports father/mother and spouse edge additions and
// removals for every person present in both snapshots. A spouse pair
// is reported once, from its lower id when both persons are in the
// snapshot. Child edges are the mirror of father/mother edges and are
// not reported separately.
func diffEdges(a, b *types.PersonGraph) (added, removed []EdgeChange) {
	byIDa, byIDb := indexByID(a), indexByID(b)
	for id, pa := range byIDa {
		pb, ok := byIDb[id]
		if !ok {
			continue
		}
		if pa.Rels.Father != pb.Rels.Father {
			if pa.Rels.Father != "" {
				removed = append(removed, EdgeChange{FromID: pa.Rels.Father, ToID: id, Kind: "father"})
			}
			if pb.Rels.Father != "" {
				added = append(added, EdgeChange{FromID: pb.Rels.Father, ToID: id, Kind: "father"})
			}
		}
		if pa.Rels.Mother != pb.Rels.Mother {
			if pa.Rels.Mother != "" {
				removed = append(removed, EdgeChange{FromID: pa.Rels.Mother, ToID: id, Kind: "mother"})
			}
			if pb.Rels.Mother != "" {
				added = append(added, EdgeChange{FromID: pb.Rels.Mother, ToID: id, Kind: "mother"})
			}
		}
		for _, sid := range pb.Rels.Spouses {
			if !pa.Rels.HasSpouse(sid) && (id < sid || byIDb[sid] == nil) {
				added = append(added, EdgeChange{FromID: id, ToID: sid, Kind: "spouse"})
			}
		}
		for _, sid := range pa.Rels.Spouses {
			if !pb.Rels.HasSpouse(sid) && (id < sid || byIDa[sid] == nil) {
				removed = append(removed, EdgeChange{FromID: id, ToID: sid, Kind: "spouse"})
			}
		}
	}

	sortEdges(added)
	sortEdges(removed)
	return added, removed
}

func sortEdges(edges []EdgeChange) {
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].FromID != edges[j].FromID {
			return edges[i].FromID < edges[j].FromID
		}
		return edges[i].ToID < edges[j].ToID
	})
}
