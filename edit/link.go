package edit

import "github.com/lesfleursdelanuitdev/famtree/types"

// GetLinkCandidates returns persons subject could plausibly link to as
// relType without violating a Person Graph invariant (spec §4.6): it
// excludes subject itself, every to_add placeholder, subject's existing
// spouses (when relType is spouse), and whichever of subject's
// ancestors/descendants would create a cycle for the given relation.
func GetLinkCandidates(g *types.PersonGraph, subjectID string, relType types.RelType) []*types.Person {
	subject := g.Get(subjectID)
	if subject == nil {
		return nil
	}

	ancestors := g.AncestorSet(subject)
	descendants := g.DescendantSet(subject)

	var out []*types.Person
	for _, p := range g.All() {
		if p.ID == subjectID || p.ToAdd {
			continue
		}
		switch relType {
		case types.RelTypeFather, types.RelTypeMother:
			// A parent candidate must not already be subject's descendant.
			if descendants[p.ID] {
				continue
			}
		case types.RelTypeSon, types.RelTypeDaughter:
			if ancestors[p.ID] {
				continue
			}
		case types.RelTypeSpouse:
			if subject.Rels.HasSpouse(p.ID) {
				continue
			}
		}
		out = append(out, p)
	}
	return out
}

// LinkExistingRelative commits subject's relType relation to an
// already-existing candidate, replacing any in-flight to_add
// placeholder occupying that slot (spec §4.6 "link to existing").
func LinkExistingRelative(g *types.PersonGraph, subjectID, candidateID string, relType types.RelType, otherParentID string) error {
	subject := g.Get(subjectID)
	if subject == nil {
		return types.NewErrorForPerson(types.ErrorTypeReference, types.SeverityError,
			"subject does not exist", "edit.LinkExistingRelative", subjectID)
	}
	candidate := g.Get(candidateID)
	if candidate == nil {
		return types.NewErrorForPerson(types.ErrorTypeReference, types.SeverityError,
			"candidate does not exist", "edit.LinkExistingRelative", candidateID)
	}
	if subjectID == candidateID {
		return types.NewErrorForPerson(types.ErrorTypeInvariant, types.SeverityError,
			"cannot link a person to themself", "edit.LinkExistingRelative", subjectID)
	}

	switch relType {
	case types.RelTypeFather, types.RelTypeMother:
		if g.IsAncestorOf(subjectID, candidate) {
			return types.NewErrorForPerson(types.ErrorTypeInvariant, types.SeverityError,
				"candidate is a descendant of subject", "edit.LinkExistingRelative", subjectID)
		}
		slotID := subject.Rels.Father
		if relType == types.RelTypeMother {
			slotID = subject.Rels.Mother
		}
		if occupant := g.Get(slotID); occupant != nil && !occupant.ToAdd && slotID != candidateID {
			return types.NewErrorForPerson(types.ErrorTypeInvariant, types.SeverityError,
				"subject's parent slot is already taken", "edit.LinkExistingRelative", subjectID)
		}
		removeInFlightPlaceholder(g, subject, relType)
		var otherParentID string
		if relType == types.RelTypeFather {
			otherParentID = subject.Rels.Mother
			subject.Rels.Father = candidateID
		} else {
			otherParentID = subject.Rels.Father
			subject.Rels.Mother = candidateID
		}
		candidate.Rels.AddChild(subjectID)
		if candidate.Gender() == types.GenderUnknown {
			if relType == types.RelTypeFather {
				candidate.SetGender(types.GenderMale)
			} else {
				candidate.SetGender(types.GenderFemale)
			}
		}
		wireSpouseOfNewParent(g, candidate, otherParentID)

	case types.RelTypeSon, types.RelTypeDaughter:
		if g.IsAncestorOf(candidateID, subject) {
			return types.NewErrorForPerson(types.ErrorTypeInvariant, types.SeverityError,
				"candidate is an ancestor of subject", "edit.LinkExistingRelative", subjectID)
		}
		removeInFlightPlaceholder(g, subject, relType)
		subject.Rels.AddChild(candidateID)
		assignParentSlot(subject, candidate)
		if candidate.Gender() == types.GenderUnknown {
			if relType == types.RelTypeSon {
				candidate.SetGender(types.GenderMale)
			} else {
				candidate.SetGender(types.GenderFemale)
			}
		}
		if otherParentID != "" {
			if other := g.Get(otherParentID); other != nil {
				other.Rels.AddChild(candidateID)
				assignParentSlot(other, candidate)
				subject.Rels.AddSpouse(otherParentID)
				other.Rels.AddSpouse(subjectID)
			}
		}

	case types.RelTypeSpouse:
		if subject.Rels.HasSpouse(candidateID) {
			return types.NewErrorForPerson(types.ErrorTypeInvariant, types.SeverityError,
				"subject and candidate are already spouses", "edit.LinkExistingRelative", subjectID)
		}
		removeInFlightPlaceholder(g, subject, relType)
		subject.Rels.AddSpouse(candidateID)
		candidate.Rels.AddSpouse(subjectID)

	default:
		return types.NewErrorWithContext(types.ErrorTypeInvariant, types.SeverityError,
			"unknown relation type", "edit.LinkExistingRelative")
	}

	return nil
}

// removeInFlightPlaceholder deletes the to_add placeholder, if any,
// that subject created for relType via AddRelative, detaching it from
// whichever slot it was occupying first.
func removeInFlightPlaceholder(g *types.PersonGraph, subject *types.Person, relType types.RelType) {
	var placeholderID string
	switch relType {
	case types.RelTypeFather:
		placeholderID = subject.Rels.Father
	case types.RelTypeMother:
		placeholderID = subject.Rels.Mother
	case types.RelTypeSon, types.RelTypeDaughter:
		for _, cid := range subject.Rels.Children {
			if c := g.Get(cid); c != nil && c.ToAdd && c.NewRelData != nil && c.NewRelData.RelType == relType {
				placeholderID = cid
				break
			}
		}
	case types.RelTypeSpouse:
		for _, sid := range subject.Rels.Spouses {
			if s := g.Get(sid); s != nil && s.ToAdd && s.NewRelData != nil && s.NewRelData.RelType == relType {
				placeholderID = sid
				break
			}
		}
	}

	placeholder := g.Get(placeholderID)
	if placeholder == nil || !placeholder.ToAdd {
		return
	}

	switch relType {
	case types.RelTypeFather:
		subject.Rels.Father = ""
	case types.RelTypeMother:
		subject.Rels.Mother = ""
	case types.RelTypeSon, types.RelTypeDaughter:
		subject.Rels.RemoveChild(placeholderID)
		if other := g.Get(placeholder.NewRelData.OtherParentID); other != nil {
			other.Rels.RemoveChild(placeholderID)
		}
	case types.RelTypeSpouse:
		subject.Rels.RemoveSpouse(placeholderID)
		placeholder.Rels.RemoveSpouse(subject.ID)
	}
	unlinkEverywhere(g, placeholderID)
	g.Delete(placeholderID)
}
