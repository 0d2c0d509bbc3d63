package layout

import "github.com/lesfleursdelanuitdev/famtree/types"

// separation returns the minimum horizontal gap required between two
// adjacent nodes, as an absolute distance that is a multiple of
// cfg.NodeSeparation (spec §4.2 step 7). The
// ancestor tree only ever uses the base unit; the cousin, half-sibling
// and spouse-room bonuses apply to the descendant tree only.
func separation(a, b *hNode, g *types.PersonGraph, cfg *Config) float64 {
	sep := cfg.NodeSeparation
	if a == nil || b == nil || a.isAncestry {
		return sep
	}
	pa, pb := a.person, b.person

	switch parentRelation(pa, pb) {
	case relDifferentParents:
		sep += 0.25 * cfg.NodeSeparation
	case relOneSharedParent:
		sep += 0.125 * cfg.NodeSeparation
	}

	sep += 0.5 * float64(spouseCount(pa)+spouseCount(pb)) * cfg.NodeSeparation
	return sep
}

type parentRelationKind int

const (
	relSameParents parentRelationKind = iota
	relOneSharedParent
	relDifferentParents
)

// parentRelation classifies how two persons' parent pairs overlap.
func parentRelation(a, b *types.Person) parentRelationKind {
	if a == nil || b == nil {
		return relDifferentParents
	}
	aParents := map[string]bool{}
	if a.Rels.Father != "" {
		aParents[a.Rels.Father] = true
	}
	if a.Rels.Mother != "" {
		aParents[a.Rels.Mother] = true
	}
	shared := 0
	total := 0
	for _, id := range []string{b.Rels.Father, b.Rels.Mother} {
		if id == "" {
			continue
		}
		total++
		if aParents[id] {
			shared++
		}
	}
	switch {
	case len(aParents) > 0 && total > 0 && shared == len(aParents) && shared == total:
		return relSameParents
	case shared > 0:
		return relOneSharedParent
	default:
		return relDifferentParents
	}
}
