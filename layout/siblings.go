package layout

import "github.com/lesfleursdelanuitdev/famtree/types"

// buildSiblingNodes returns leaf hNodes for the focus's own siblings,
// spliced alongside the focus at depth 0 of the descendant tree when
// cfg.ShowSiblingsOfMain is set (spec §4.2 step 13). Siblings are not
// expanded further: they exist only to show the focus's immediate
// sibling context, not as additional hierarchy roots.
func buildSiblingNodes(g *types.PersonGraph, focus *types.Person, descendantParent *hNode) []*hNode {
	siblings := g.Siblings(focus)
	out := make([]*hNode, 0, len(siblings))
	for _, s := range siblings {
		out = append(out, &hNode{
			person:     s,
			treeParent: descendantParent,
			isAncestry: false,
			isSibling:  true,
		})
	}
	return out
}
