package layout

import (
	"github.com/lesfleursdelanuitdev/famtree/types"
)

// Layout runs the full pipeline described by spec §4.2: resolve the
// focus person, build and trim the ancestor/descendant hierarchies,
// resolve duplicate branches, position everything with a tidy-tree
// layout, then flatten to a renderer-facing Result.
func Layout(g *types.PersonGraph, mainID string, cfg *Config, overrides map[string]int64) (*Result, error) {
	if g.Len() == 0 {
		return nil, types.NewErrorWithContext(types.ErrorTypeEmptyGraph, types.SeverityError,
			"cannot lay out an empty person graph", "layout.Layout")
	}
	if cfg == nil {
		cfg = DefaultConfig()
	}

	focus := g.Get(mainID)
	if focus == nil {
		focus = g.First()
	}

	working := *cfg
	if cfg.IsHorizontal {
		working.NodeSeparation, working.LevelSeparation = cfg.LevelSeparation, cfg.NodeSeparation
	}

	descRoot := buildDescendantHierarchy(g, focus, &working)
	ancRoot := buildAncestorHierarchy(g, focus)

	if cfg.ModifyTreeHierarchy != nil {
		cfg.ModifyTreeHierarchy(ancRoot)
		cfg.ModifyTreeHierarchy(descRoot)
	}

	if cfg.OneLevelRels {
		trimDepth(ancRoot, 1)
		trimDepth(descRoot, 1)
	} else {
		trimDepth(ancRoot, cfg.AncestryDepth)
		trimDepth(descRoot, cfg.ProgenyDepth)
	}

	if cfg.DuplicateBranchToggle {
		resolveDuplicates(ancRoot, cfg.OnToggleOneCloseOthers, cfg.ToggleClock, overrides)
		resolveDuplicates(descRoot, cfg.OnToggleOneCloseOthers, cfg.ToggleClock, overrides)
	}

	applyPrivacy(ancRoot, g, cfg)
	applyPrivacy(descRoot, g, cfg)

	descLayoutRoot := descRoot
	if cfg.ShowSiblingsOfMain {
		descLayoutRoot = withSiblingContainer(g, focus, descRoot)
	}

	tidyLayout(ancRoot, g, &working)
	tidyLayout(descLayoutRoot, g, &working)

	// Align the ancestor tree's root x with the descendant tree's focus x
	// so both hierarchies share a single vertical axis through the focus.
	if shift := descRoot.x - ancRoot.x; shift != 0 {
		shiftSubtreeX(ancRoot, shift)
	}

	assignY(ancRoot, working.LevelSeparation, true)
	assignY(descRoot, working.LevelSeparation, false)
	if descLayoutRoot != descRoot {
		assignY(descLayoutRoot, working.LevelSeparation, false)
	}

	builder := &resultBuilder{
		graph:    g,
		cfg:      cfg,
		byTid:    map[string]*Node{},
		byPerson: map[string]*Node{},
	}
	// The ancestor tree's root is the focus itself, already emitted by
	// the descendant flatten below; skip it to avoid a duplicate Node.
	builder.flattenNode(ancRoot, true, true)
	builder.flatten(descRoot, false)
	if cfg.ShowSiblingsOfMain {
		for _, s := range descLayoutRoot.children {
			if s.isSibling {
				builder.flatten(s, false)
			}
		}
	}

	builder.linkRelations()
	builder.attachSpouses(&working)
	builder.computeEdges()
	builder.computeAncestryEdges(focus.ID)
	builder.computeParentSideAttach()
	builder.computeAllRelsDisplayed()

	res := &Result{
		Nodes:        builder.nodes,
		MainID:       focus.ID,
		IsHorizontal: cfg.IsHorizontal,
	}
	if cfg.IsHorizontal {
		for _, n := range res.Nodes {
			n.X, n.Y = n.Y, n.X
		}
	}
	res.Dim = computeDim(res.Nodes)
	return res, nil
}

// withSiblingContainer splices the focus's siblings alongside descRoot
// at depth 0 by wrapping them in an unexported container node that is
// never itself emitted (spec §4.2 step 13).
func withSiblingContainer(g *types.PersonGraph, focus *types.Person, descRoot *hNode) *hNode {
	siblings := buildSiblingNodes(g, focus, nil)
	if len(siblings) == 0 {
		return descRoot
	}
	container := &hNode{isAncestry: false}

	ordered := orderedSiblingIDs(g, focus)
	idx := map[string]*hNode{focus.ID: descRoot}
	for _, s := range siblings {
		idx[s.person.ID] = s
	}
	for _, id := range ordered {
		if n, ok := idx[id]; ok {
			n.treeParent = container
			container.children = append(container.children, n)
		}
	}
	if len(container.children) == 0 {
		return descRoot
	}
	return container
}

// orderedSiblingIDs returns focus plus its siblings in their shared
// parent's recorded birth order, falling back to graph order if focus
// has no resolvable parent.
func orderedSiblingIDs(g *types.PersonGraph, focus *types.Person) []string {
	parent := g.Father(focus)
	if parent == nil {
		parent = g.Mother(focus)
	}
	if parent == nil {
		ids := []string{focus.ID}
		for _, s := range g.Siblings(focus) {
			ids = append(ids, s.ID)
		}
		return ids
	}
	return parent.Rels.Children
}

// assignY sets every node's Y from its depth, negative and increasing
// upward for the ancestor tree, positive and increasing downward for
// the descendant tree.
func assignY(root *hNode, levelSeparation float64, isAncestry bool) {
	var walk func(n *hNode)
	walk = func(n *hNode) {
		if isAncestry {
			n.depthY = -float64(n.depth) * levelSeparation
		} else {
			n.depthY = float64(n.depth) * levelSeparation
		}
		for _, c := range n.children {
			walk(c)
		}
	}
	walk(root)
}

// computeDim derives the layout's bounding box and a centering offset.
func computeDim(nodes []*Node) Dim {
	if len(nodes) == 0 {
		return Dim{}
	}
	minX, maxX := nodes[0].X, nodes[0].X
	minY, maxY := nodes[0].Y, nodes[0].Y
	for _, n := range nodes {
		if n.X < minX {
			minX = n.X
		}
		if n.X > maxX {
			maxX = n.X
		}
		if n.Y < minY {
			minY = n.Y
		}
		if n.Y > maxY {
			maxY = n.Y
		}
	}
	return Dim{
		Width:  maxX - minX,
		Height: maxY - minY,
		XOff:   -minX,
		YOff:   -minY,
	}
}
