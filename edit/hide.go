package edit

import "github.com/lesfleursdelanuitdev/famtree/types"

// ToggleHideShow hides or reveals the branch rooted at id (spec §3's
// `_rels` reserved field): hiding detaches id from every relative
// bidirectionally and stashes id's own relations in HiddenRels; showing
// restores them and re-attaches each relative symmetrically. Calling it
// twice is idempotent with the original graph shape.
func ToggleHideShow(g *types.PersonGraph, id string) error {
	p := g.Get(id)
	if p == nil {
		return types.NewErrorForPerson(types.ErrorTypeReference, types.SeverityError,
			"person does not exist", "edit.ToggleHideShow", id)
	}

	if p.HiddenRels == nil {
		hide(g, p)
		return nil
	}
	show(g, p)
	return nil
}

func hide(g *types.PersonGraph, p *types.Person) {
	for _, nid := range p.Rels.AllIDs() {
		n := g.Get(nid)
		if n == nil {
			continue
		}
		if n.Rels.Father == p.ID {
			n.Rels.Father = ""
		}
		if n.Rels.Mother == p.ID {
			n.Rels.Mother = ""
		}
		n.Rels.RemoveSpouse(p.ID)
		n.Rels.RemoveChild(p.ID)
	}
	p.HiddenRels = p.Rels.Clone()
	p.Rels = types.Rels{}
}

func show(g *types.PersonGraph, p *types.Person) {
	restored := *p.HiddenRels
	p.Rels = restored
	p.HiddenRels = nil

	if restored.Father != "" {
		if father := g.Get(restored.Father); father != nil {
			father.Rels.AddChild(p.ID)
		}
	}
	if restored.Mother != "" {
		if mother := g.Get(restored.Mother); mother != nil {
			mother.Rels.AddChild(p.ID)
		}
	}
	for _, sid := range restored.Spouses {
		if spouse := g.Get(sid); spouse != nil {
			spouse.Rels.AddSpouse(p.ID)
		}
	}
	for _, cid := range restored.Children {
		child := g.Get(cid)
		if child == nil {
			continue
		}
		assignParentSlot(p, child)
	}
}
