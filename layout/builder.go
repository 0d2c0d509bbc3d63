package layout

import (
	"strconv"

	"github.com/lesfleursdelanuitdev/famtree/types"
)

// resultBuilder flattens a positioned hNode tree into the public Node
// list and wires the cross-references (parents/children/spouses/edges)
// a renderer needs (spec §4.2 steps 14-18).
type resultBuilder struct {
	graph *types.PersonGraph
	cfg   *Config

	nodes []*Node

	byTid      map[string]*Node
	byPerson   map[string]*Node
	occurrence map[string]int
}

func (b *resultBuilder) uniqueTid(personID string) string {
	if b.occurrence == nil {
		b.occurrence = map[string]int{}
	}
	n := b.occurrence[personID]
	b.occurrence[personID] = n + 1
	if n == 0 {
		return personID
	}
	return personID + "#" + strconv.Itoa(n)
}

// flatten walks n and every descendant, emitting a Node per hNode. skip
// suppresses emission of n itself, used so the ancestor tree's root
// (the focus, already emitted by the descendant tree) isn't duplicated.
func (b *resultBuilder) flatten(n *hNode, isAncestry bool) {
	b.flattenNode(n, isAncestry, false)
}

func (b *resultBuilder) flattenNode(n *hNode, isAncestry bool, skip bool) {
	if !skip && n.person != nil {
		tid := b.uniqueTid(n.person.ID)
		node := &Node{
			Tid:              tid,
			PersonID:         n.person.ID,
			X:                n.x,
			Y:                n.depthY,
			EnterX:           n.x,
			EnterY:           n.depthY,
			Depth:            n.depth,
			IsAncestry:       isAncestry,
			Sibling:          n.isSibling,
			Added:            n.person.ToAdd,
			Duplicate:        n.duplicateCount,
			ToggleID:         n.toggleID,
			ToggleValue:      n.toggleValue,
			ToggleKey:        n.toggleKey,
			IsPrivate:        n.isPrivate,
			AllRelsDisplayed: true,
			father:           b.graph.Father(n.person),
			mother:           b.graph.Mother(n.person),
		}
		b.nodes = append(b.nodes, node)
		b.byTid[tid] = node
		if b.byPerson[n.person.ID] == nil {
			b.byPerson[n.person.ID] = node
		}
	}
	for _, c := range n.children {
		b.flattenNode(c, isAncestry, false)
	}
}

// linkRelations wires each node's Parents/Children pointers to whichever
// Node instance first represented that relative. Children are listed in
// layout emission order, so they follow the hierarchy's spouse grouping.
func (b *resultBuilder) linkRelations() {
	for _, node := range b.nodes {
		p := b.graph.Get(node.PersonID)
		if p == nil {
			continue
		}
		if father := b.byPerson[p.Rels.Father]; father != nil {
			node.Parents = append(node.Parents, father)
		}
		if mother := b.byPerson[p.Rels.Mother]; mother != nil {
			node.Parents = append(node.Parents, mother)
		}
		for _, c := range b.nodes {
			if c == b.byPerson[c.PersonID] && p.Rels.HasChild(c.PersonID) {
				node.Children = append(node.Children, c)
			}
		}
	}
}

// attachSpouses adds a companion Node beside each emitted node for every
// resolved spouse not already present elsewhere in the layout (spec
// §4.2 step 10); synthetic to_add spouses are created fresh here.
func (b *resultBuilder) attachSpouses(cfg *Config) {
	base := append([]*Node{}, b.nodes...)
	for _, node := range base {
		p := b.graph.Get(node.PersonID)
		if p == nil {
			continue
		}
		for i, sid := range p.Rels.Spouses {
			if existing := b.byPerson[sid]; existing != nil {
				node.Spouses = append(node.Spouses, existing)
				continue
			}
			sp := b.graph.Get(sid)
			if sp == nil {
				continue
			}
			tid := b.uniqueTid(sp.ID)
			spouseNode := &Node{
				Tid:        tid,
				PersonID:   sp.ID,
				X:          node.X + float64(i+1)*cfg.NodeSeparation,
				Y:          node.Y,
				EnterX:     node.X,
				EnterY:     node.Y,
				Depth:      node.Depth,
				IsAncestry: node.IsAncestry,
				Added:      sp.ToAdd,
				SpouseOf:   node.PersonID,
			}
			if sp.ToAdd {
				spouseNode.FromSpouse = node
			}
			b.nodes = append(b.nodes, spouseNode)
			b.byTid[tid] = spouseNode
			b.byPerson[sp.ID] = spouseNode
			node.Spouses = append(node.Spouses, spouseNode)
			spouseNode.Spouses = append(spouseNode.Spouses, node)
		}
	}
}

// computeEdges sets every node's To to its Children and its From to its
// Parents, the focus node included; computeAncestryEdges additionally
// copies the focus node's parents into its ToAncestry (spec §4.2
// step 17).
func (b *resultBuilder) computeEdges() {
	for _, node := range b.nodes {
		node.To = node.Children
		node.From = node.Parents
	}
}

// computeAncestryEdges moves the focus node's own parent edges into
// ToAncestry, distinct from every other node's To/From pair, since the
// focus is the single seam between the ancestor and descendant
// hierarchies (spec §4.2 step 17).
func (b *resultBuilder) computeAncestryEdges(mainID string) {
	for _, node := range b.nodes {
		if node.PersonID == mainID && node.Depth == 0 && !node.IsAncestry {
			node.ToAncestry = node.Parents
			return
		}
	}
}

// computeParentSideAttach sets each node's PSX/PSY to the midpoint of
// its resolved parents, used by renderers to draw the child's edge.
func (b *resultBuilder) computeParentSideAttach() {
	for _, node := range b.nodes {
		switch len(node.Parents) {
		case 0:
			continue
		case 1:
			node.PSX, node.PSY = node.Parents[0].X, node.Parents[0].Y
		default:
			node.PSX = (node.Parents[0].X + node.Parents[1].X) / 2
			node.PSY = (node.Parents[0].Y + node.Parents[1].Y) / 2
		}
	}
}

// computeAllRelsDisplayed flags whether every relative the underlying
// person actually has was represented in this layout, or whether some
// were pruned by depth limits or duplicate collapsing.
func (b *resultBuilder) computeAllRelsDisplayed() {
	for _, node := range b.nodes {
		p := b.graph.Get(node.PersonID)
		if p == nil {
			continue
		}
		wantParents := 0
		if p.Rels.Father != "" {
			wantParents++
		}
		if p.Rels.Mother != "" {
			wantParents++
		}
		node.AllRelsDisplayed = len(node.Parents) == wantParents &&
			len(node.Children) == len(p.Rels.Children) &&
			len(node.Spouses) == len(p.Rels.Spouses)
	}
}
