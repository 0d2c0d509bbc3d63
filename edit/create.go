package edit

import (
	"github.com/google/uuid"

	"github.com/lesfleursdelanuitdev/famtree/types"
)

// CreatePerson inserts a fresh, relation-less person and returns it.
func CreatePerson(g *types.PersonGraph) *types.Person {
	p := types.NewPerson(uuid.NewString())
	g.Put(p)
	return p
}

// CreatePersonWithGenderFromRelation inserts a fresh person whose
// gender is implied by relType (spec §4.6): a father or son is male, a
// mother or daughter is female, a spouse is left unset.
func CreatePersonWithGenderFromRelation(g *types.PersonGraph, relType types.RelType) *types.Person {
	p := CreatePerson(g)
	switch relType {
	case types.RelTypeFather, types.RelTypeSon:
		p.SetGender(types.GenderMale)
	case types.RelTypeMother, types.RelTypeDaughter:
		p.SetGender(types.GenderFemale)
	}
	return p
}

// AddRelative begins adding a new relative of relType to subject: it
// creates a to_add placeholder tagged with `_new_rel_data` so the
// Layout Engine renders it as an in-flight slot, and wires it into
// subject's relations in both directions (spec §4.6 "add relative,
// two-step flow"). On error the placeholder is removed again.
// For a spouse relation, otherParentID is ignored; for a child
// relation it names the other parent the child should also attach to,
// if already known.
func AddRelative(g *types.PersonGraph, subjectID string, relType types.RelType, otherParentID string) (*types.Person, error) {
	subject := g.Get(subjectID)
	if subject == nil {
		return nil, types.NewErrorForPerson(types.ErrorTypeReference, types.SeverityError,
			"subject does not exist", "edit.AddRelative", subjectID)
	}

	placeholder := CreatePersonWithGenderFromRelation(g, relType)
	placeholder.ToAdd = true
	placeholder.NewRelData = &types.NewRelData{RelType: relType, OtherParentID: otherParentID}

	switch relType {
	case types.RelTypeFather:
		if occupant := g.Get(subject.Rels.Father); occupant != nil && !occupant.ToAdd {
			g.Delete(placeholder.ID)
			return nil, types.NewErrorForPerson(types.ErrorTypeInvariant, types.SeverityError,
				"subject already has a father", "edit.AddRelative", subjectID)
		}
		replaceToAddParent(g, subject, types.RelTypeFather)
		subject.Rels.Father = placeholder.ID
		placeholder.Rels.AddChild(subject.ID)
		wireSpouseOfNewParent(g, placeholder, subject.Rels.Mother)
	case types.RelTypeMother:
		if occupant := g.Get(subject.Rels.Mother); occupant != nil && !occupant.ToAdd {
			g.Delete(placeholder.ID)
			return nil, types.NewErrorForPerson(types.ErrorTypeInvariant, types.SeverityError,
				"subject already has a mother", "edit.AddRelative", subjectID)
		}
		replaceToAddParent(g, subject, types.RelTypeMother)
		subject.Rels.Mother = placeholder.ID
		placeholder.Rels.AddChild(subject.ID)
		wireSpouseOfNewParent(g, placeholder, subject.Rels.Father)
	case types.RelTypeSon, types.RelTypeDaughter:
		subject.Rels.AddChild(placeholder.ID)
		assignParentSlot(subject, placeholder)
		if otherParentID != "" {
			if other := g.Get(otherParentID); other != nil {
				other.Rels.AddChild(placeholder.ID)
				assignParentSlot(other, placeholder)
			}
		}
	case types.RelTypeSpouse:
		subject.Rels.AddSpouse(placeholder.ID)
		placeholder.Rels.AddSpouse(subjectID)
	}
	return placeholder, nil
}

// replaceToAddParent clears subject's father/mother slot, deleting the
// to_add placeholder that occupied it (spec §4.6 "parent" case) once no
// other child still depends on it, and unlinking it from its own
// spouses first. A real (non-placeholder) occupant is left untouched;
// AddRelative already rejected that case before calling this.
func replaceToAddParent(g *types.PersonGraph, subject *types.Person, relType types.RelType) {
	var slot *string
	if relType == types.RelTypeFather {
		slot = &subject.Rels.Father
	} else {
		slot = &subject.Rels.Mother
	}
	existingID := *slot
	*slot = ""
	if existingID == "" {
		return
	}
	existing := g.Get(existingID)
	if existing == nil || !existing.ToAdd {
		return
	}
	existing.Rels.RemoveChild(subject.ID)
	if len(existing.Rels.Children) > 0 {
		return
	}
	for _, spouseID := range existing.Rels.Spouses {
		if spouse := g.Get(spouseID); spouse != nil {
			spouse.Rels.RemoveSpouse(existingID)
		}
	}
	g.Delete(existingID)
}

// wireSpouseOfNewParent links newParent and subject's other existing
// parent (otherParentID, may be empty) as spouses of each other (spec
// §4.6 "wire the other-gender existing parent as the new parent's
// spouse").
func wireSpouseOfNewParent(g *types.PersonGraph, newParent *types.Person, otherParentID string) {
	if otherParentID == "" {
		return
	}
	other := g.Get(otherParentID)
	if other == nil {
		return
	}
	newParent.Rels.AddSpouse(otherParentID)
	other.Rels.AddSpouse(newParent.ID)
}

// assignParentSlot fills child's father or mother slot with parent's
// id, choosing the slot from parent's own gender; if parent's gender
// is unset, the father slot is used as a default. Only that one slot is
// written.
func assignParentSlot(parent, child *types.Person) {
	if parent.Gender() == types.GenderFemale {
		child.Rels.Mother = parent.ID
		return
	}
	child.Rels.Father = parent.ID
}

// MoveToAddToAdded commits a to_add placeholder as a fully real person:
// clears ToAdd and NewRelData, leaving its relations (already wired by
// LinkExistingRelative or the reciprocal-wiring helpers above) intact.
func MoveToAddToAdded(g *types.PersonGraph, id string) error {
	p := g.Get(id)
	if p == nil {
		return types.NewErrorForPerson(types.ErrorTypeReference, types.SeverityError,
			"person does not exist", "edit.MoveToAddToAdded", id)
	}
	p.ToAdd = false
	p.NewRelData = nil
	return nil
}
