package layout

import (
	"sort"

	"github.com/lesfleursdelanuitdev/famtree/types"
)

// hNode is the internal, mutable tree node used while building and
// positioning a hierarchy (ancestor or descendant), before it is
// flattened into the public Node list (spec §4.2 steps 3-11).
type hNode struct {
	person     *types.Person
	treeParent *hNode
	children   []*hNode
	isAncestry bool
	depth      int // positive distance from the hierarchy root

	// coParentID names the spouse of treeParent.person that produced
	// this child, populated only on the descendant side; used as the
	// "spouse" half of the duplicate-branch toggle context (§4.3).
	coParentID string

	x      float64
	depthY float64

	// duplicate-branch resolution state (§4.3), populated by
	// resolveDuplicates. toggleValue's sign encodes open/closed; its
	// magnitude is a recency timestamp.
	toggleID          string
	toggleKey         string
	toggleValue       int64
	duplicateCount    int
	collapsedChildren []*hNode

	// isPrivate is set by applyPrivacy (spec §4.4) from a recursive
	// parent/spouse closure over the Person Graph, independent of this
	// node's position in either hierarchy.
	isPrivate bool

	// isSibling marks a focus-sibling leaf spliced in by
	// buildSiblingNodes (spec §4.2 step 13); such nodes are not part of
	// either natural hierarchy traversal.
	isSibling bool
}

// buildDescendantHierarchy builds the tree rooted at focus whose
// child-getter is focus's own children (spec §4.2 step 3).
func buildDescendantHierarchy(g *types.PersonGraph, focus *types.Person, cfg *Config) *hNode {
	root := &hNode{person: focus, isAncestry: false}
	var build func(node *hNode, depth int)
	build = func(node *hNode, depth int) {
		node.depth = depth
		kids := descendantChildren(g, node.person, cfg)
		for _, kc := range kids {
			child := &hNode{person: kc.person, treeParent: node, isAncestry: false, coParentID: kc.coParentID}
			node.children = append(node.children, child)
			build(child, depth+1)
		}
	}
	build(root, 0)
	return root
}

type descChild struct {
	person     *types.Person
	coParentID string
}

// descendantChildren resolves p's children, ordered per spec §4.2 step 3:
// apply sortChildrenFunction, move in-flight `_new_rel_data` children to
// the end, then reorder by the order of p's spouses (children of
// earlier-listed spouses first; mirrored for a female parent).
func descendantChildren(g *types.PersonGraph, p *types.Person, cfg *Config) []descChild {
	children := g.Children(p)

	if cfg.SortChildrenFunction != nil {
		sort.SliceStable(children, func(i, j int) bool {
			return cfg.SortChildrenFunction(children[i], children[j])
		})
	}

	// Move in-flight new-relation children to the end, preserving order.
	sort.SliceStable(children, func(i, j int) bool {
		iNew := children[i].NewRelData != nil
		jNew := children[j].NewRelData != nil
		return !iNew && jNew
	})

	spouseIndex := func(child *types.Person) int {
		otherParentID := child.Rels.Mother
		if child.Rels.Father != p.ID {
			otherParentID = child.Rels.Father
		}
		for idx, sid := range p.Rels.Spouses {
			if sid == otherParentID {
				return idx
			}
		}
		return len(p.Rels.Spouses)
	}

	mirror := p.Gender() == types.GenderFemale
	sort.SliceStable(children, func(i, j int) bool {
		si, sj := spouseIndex(children[i]), spouseIndex(children[j])
		if mirror {
			return si > sj
		}
		return si < sj
	})

	out := make([]descChild, 0, len(children))
	for _, c := range children {
		coParent := ""
		if c.Rels.Father == p.ID {
			coParent = c.Rels.Mother
		} else if c.Rels.Mother == p.ID {
			coParent = c.Rels.Father
		}
		out = append(out, descChild{person: c, coParentID: coParent})
	}
	return out
}

// buildAncestorHierarchy builds the tree rooted at focus whose
// child-getter returns [father, mother] (spec §4.2 step 4).
func buildAncestorHierarchy(g *types.PersonGraph, focus *types.Person) *hNode {
	root := &hNode{person: focus, isAncestry: true}
	var build func(node *hNode, depth int)
	build = func(node *hNode, depth int) {
		node.depth = depth
		for _, parent := range g.Parents(node.person) {
			child := &hNode{person: parent, treeParent: node, isAncestry: true}
			node.children = append(node.children, child)
			build(child, depth+1)
		}
	}
	build(root, 0)
	return root
}

// trimDepth removes every node deeper than maxDepth (0 = unlimited).
func trimDepth(root *hNode, maxDepth int) {
	if maxDepth <= 0 {
		return
	}
	var walk func(n *hNode)
	walk = func(n *hNode) {
		if n.depth >= maxDepth {
			n.children = nil
			return
		}
		for _, c := range n.children {
			walk(c)
		}
	}
	walk(root)
}

// countNodes returns the total number of hNodes in the subtree.
func countNodes(root *hNode) int {
	n := 1
	for _, c := range root.children {
		n += countNodes(c)
	}
	return n
}

// spouseCount returns how many resolved spouses this person has, used by
// the separation function's spouse-room bonus.
func spouseCount(p *types.Person) int {
	if p == nil {
		return 0
	}
	return len(p.Rels.Spouses)
}
