package edit

import "github.com/lesfleursdelanuitdev/famtree/types"

// DeletePerson removes id from the graph, or demotes it to a blank
// Unknown placeholder if removing it outright would disconnect its
// relatives from each other (spec §4.6 "delete, articulation-point
// check"). Any to_add placeholder still attached to id is cascade
// deleted rather than left dangling, and every `__ref__`-mangled
// attribute other persons hold about id is stripped.
func DeletePerson(g *types.PersonGraph, id string) error {
	p := g.Get(id)
	if p == nil {
		return types.NewErrorForPerson(types.ErrorTypeReference, types.SeverityError,
			"person does not exist", "edit.DeletePerson", id)
	}

	if g.Len() == 1 {
		blankPerson(p)
		return nil
	}

	if !ConnectedWithoutPerson(g, id) {
		demoteToUnknown(g, p)
		return nil
	}

	cascadeDeleteToAddNeighbors(g, p)
	unlinkEverywhere(g, id)
	stripRefAttributes(g, id)
	g.Delete(id)
	return nil
}

// blankPerson resets p to an empty, relation-less person in place,
// used when deleting the graph's last remaining person: the Person
// Graph invariant that a layout always has a resolvable focus means
// the graph may never become fully empty.
func blankPerson(p *types.Person) {
	p.Data = map[string]interface{}{}
	p.Rels = types.Rels{}
	p.HiddenRels = nil
	p.ToAdd = false
	p.Unknown = true
	p.NewRelData = nil
}

// demoteToUnknown clears id's own attributes except gender and marks it
// Unknown but keeps every relation slot intact, preserving connectivity
// between her relatives at the cost of her own data.
func demoteToUnknown(g *types.PersonGraph, p *types.Person) {
	stripRefAttributes(g, p.ID)
	gender := p.Gender()
	p.Data = map[string]interface{}{}
	p.SetGender(gender)
	p.Unknown = true
	p.ToAdd = false
	p.NewRelData = nil
}

// cascadeDeleteToAddNeighbors deletes every to_add placeholder attached
// to p: once p is gone, a placeholder that only existed to complete an
// in-flight AddRelative on p has nothing left to attach to.
func cascadeDeleteToAddNeighbors(g *types.PersonGraph, p *types.Person) {
	for _, nid := range p.Rels.AllIDs() {
		n := g.Get(nid)
		if n != nil && n.ToAdd {
			unlinkEverywhere(g, nid)
			g.Delete(nid)
		}
	}
}

// unlinkEverywhere removes id from every other person's relation slots.
func unlinkEverywhere(g *types.PersonGraph, id string) {
	for _, other := range g.All() {
		if other.ID == id {
			continue
		}
		if other.Rels.Father == id {
			other.Rels.Father = ""
		}
		if other.Rels.Mother == id {
			other.Rels.Mother = ""
		}
		other.Rels.RemoveSpouse(id)
		other.Rels.RemoveChild(id)
	}
}

// stripRefAttributes deletes every relation-scoped attribute other
// persons hold about id.
func stripRefAttributes(g *types.PersonGraph, id string) {
	for _, other := range g.All() {
		for key := range other.Data {
			if _, otherID, ok := types.ResolveRefField(key); ok && otherID == id {
				delete(other.Data, key)
			}
		}
	}
}
