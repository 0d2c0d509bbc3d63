package validator

import "github.com/lesfleursdelanuitdev/famtree/types"

// ValidateGraph checks g against every Person Graph invariant from
// spec §3 and returns one *types.StandardError per violation found, in
// a stable order (by person insertion order, then by check, with all
// self-loop errors after the per-person ones). An empty
// result means g is safe to hand to the Layout Engine or an Edit
// Operation. Grounded on the teacher's family/cross-reference
// validators' "walk every record, accumulate one error per violation
// found" shape.
func ValidateGraph(g *types.PersonGraph) []*types.StandardError {
	var errs []*types.StandardError
	for _, p := range g.All() {
		errs = append(errs, validateReciprocity(g, p)...)
		errs = append(errs, validateGenderConsistency(g, p)...)
		errs = append(errs, validateNoDanglingIDs(g, p)...)
	}
	errs = append(errs, validateNoSelfLoops(g)...)
	return errs
}

func validateReciprocity(g *types.PersonGraph, p *types.Person) []*types.StandardError {
	var errs []*types.StandardError
	if p.Rels.Father != "" {
		if father := g.Get(p.Rels.Father); father == nil || !father.Rels.HasChild(p.ID) {
			errs = append(errs, types.NewErrorForPerson(types.ErrorTypeInvariant, types.SeverityError,
				"father does not list this person as a child", "validator.ValidateGraph", p.ID))
		}
	}
	if p.Rels.Mother != "" {
		if mother := g.Get(p.Rels.Mother); mother == nil || !mother.Rels.HasChild(p.ID) {
			errs = append(errs, types.NewErrorForPerson(types.ErrorTypeInvariant, types.SeverityError,
				"mother does not list this person as a child", "validator.ValidateGraph", p.ID))
		}
	}
	for _, sid := range p.Rels.Spouses {
		if spouse := g.Get(sid); spouse == nil || !spouse.Rels.HasSpouse(p.ID) {
			errs = append(errs, types.NewErrorForPerson(types.ErrorTypeInvariant, types.SeverityError,
				"spouse relation is not reciprocated", "validator.ValidateGraph", p.ID))
		}
	}
	for _, cid := range p.Rels.Children {
		child := g.Get(cid)
		if child == nil || (child.Rels.Father != p.ID && child.Rels.Mother != p.ID) {
			errs = append(errs, types.NewErrorForPerson(types.ErrorTypeInvariant, types.SeverityError,
				"child does not list this person as a parent", "validator.ValidateGraph", p.ID))
		}
	}
	return errs
}

func validateGenderConsistency(g *types.PersonGraph, p *types.Person) []*types.StandardError {
	var errs []*types.StandardError
	for _, cid := range p.Rels.Children {
		child := g.Get(cid)
		if child == nil {
			continue
		}
		if child.Rels.Father == p.ID && p.Gender() != types.GenderMale {
			errs = append(errs, types.NewErrorForPerson(types.ErrorTypeInvariant, types.SeverityError,
				"person referenced as father does not have gender M", "validator.ValidateGraph", p.ID))
		}
		if child.Rels.Mother == p.ID && p.Gender() != types.GenderFemale {
			errs = append(errs, types.NewErrorForPerson(types.ErrorTypeInvariant, types.SeverityError,
				"person referenced as mother does not have gender F", "validator.ValidateGraph", p.ID))
		}
	}
	return errs
}

func validateNoDanglingIDs(g *types.PersonGraph, p *types.Person) []*types.StandardError {
	var errs []*types.StandardError
	for _, id := range p.Rels.AllIDs() {
		if !g.Has(id) {
			errs = append(errs, types.NewErrorForPerson(types.ErrorTypeReference, types.SeverityError,
				"relation slot references an id not present in the graph: "+id, "validator.ValidateGraph", p.ID))
		}
	}
	return errs
}

func validateNoSelfLoops(g *types.PersonGraph) []*types.StandardError {
	var errs []*types.StandardError
	for _, p := range g.All() {
		if g.IsAncestorOf(p.ID, p) {
			errs = append(errs, types.NewErrorForPerson(types.ErrorTypeInvariant, types.SeverityError,
				"person is her own ancestor", "validator.ValidateGraph", p.ID))
		}
	}
	return errs
}
