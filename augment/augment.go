// Package augment implements the Synthetic Augmentor (spec §4.1): it
// extends a Person Graph with "to_add" placeholder spouses so that every
// child of every person has both a father slot and a mother slot filled,
// which lets the layout engine treat every child as having two parents
// without branching on nil.
package augment

import (
	"github.com/lesfleursdelanuitdev/famtree/types"

	"github.com/google/uuid"
)

// Augment extends g in place, adding a to_add spouse for every person who
// has at least one child missing its other parent. Running Augment twice
// on the same graph is a no-op the second time (spec §8, "Augmentor
// idempotence"): once a child's missing slot is back-filled with the
// synthetic spouse's id, that child no longer looks orphaned.
func Augment(g *types.PersonGraph) {
	for _, p := range g.All() {
		orphans := orphanChildrenOf(g, p)
		if len(orphans) == 0 {
			continue
		}

		spouseGender := opposingGender(p, orphans[0])
		q := existingToAddSpouse(g, p)
		if q == nil {
			q = newPlaceholderSpouse(spouseGender)
			g.Put(q)
			p.Rels.AddSpouse(q.ID)
			q.Rels.AddSpouse(p.ID)
		}

		for _, child := range orphans {
			q.Rels.AddChild(child.ID)
			if child.Rels.Father == "" {
				child.Rels.Father = q.ID
			}
			if child.Rels.Mother == "" {
				child.Rels.Mother = q.ID
			}
		}
	}
}

// orphanChildrenOf returns p's children whose other parent slot is empty.
func orphanChildrenOf(g *types.PersonGraph, p *types.Person) []*types.Person {
	var orphans []*types.Person
	for _, childID := range p.Rels.Children {
		child := g.Get(childID)
		if child == nil {
			continue
		}
		switch {
		case child.Rels.Father == p.ID && child.Rels.Mother == "":
			orphans = append(orphans, child)
		case child.Rels.Mother == p.ID && child.Rels.Father == "":
			orphans = append(orphans, child)
		}
	}
	return orphans
}

// opposingGender derives the gender the synthetic spouse of p must carry
// from the parent role p plays for an orphaned child: if p is the
// child's father the placeholder is female, and vice versa.
func opposingGender(p, orphanChild *types.Person) types.Gender {
	if orphanChild.Rels.Father == p.ID {
		return types.GenderFemale
	}
	return types.GenderMale
}

// existingToAddSpouse returns p's current to_add spouse, if any.
func existingToAddSpouse(g *types.PersonGraph, p *types.Person) *types.Person {
	for _, sid := range p.Rels.Spouses {
		if sp := g.Get(sid); sp != nil && sp.ToAdd {
			return sp
		}
	}
	return nil
}

// newPlaceholderSpouse creates a to_add person: an id, to_add=true, a
// gender, and no other attributes.
func newPlaceholderSpouse(gender types.Gender) *types.Person {
	p := types.NewPerson(uuid.NewString())
	p.ToAdd = true
	p.SetGender(gender)
	return p
}
