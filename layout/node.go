// Package layout implements the Layout Engine (spec §4.2): it takes an
// augmented Person Graph and a focus person and produces a positioned,
// tree-shaped geometry — ancestors up, descendants down, spouses beside,
// siblings interleaved, and duplicate sub-branches collapsed behind a
// toggle — for a renderer to draw.
package layout

import "github.com/lesfleursdelanuitdev/famtree/types"

// Node is one visible appearance of a person in the computed layout
// (spec §3, "Layout-node"). A person with duplicate appearances gets one
// Node per appearance, each with a distinct Tid.
type Node struct {
	Tid      string
	PersonID string

	X, Y   float64
	EnterX float64 // `_x`: animation enter/exit coordinate
	EnterY float64 // `_y`

	Depth int

	IsAncestry bool
	Sibling    bool
	Added      bool // synthetic spouse placeholder
	SpouseOf   string

	Parents  []*Node
	Children []*Node
	Spouses  []*Node

	From []*Node
	To   []*Node
	// ToAncestry holds the focus node's edges toward its own parents,
	// kept distinct from To per spec §4.2 step 17.
	ToAncestry []*Node
	// FromSpouse names the spouse a synthetic placeholder is attached to.
	FromSpouse *Node

	// PSX, PSY is the parent-side attach point: the midpoint between a
	// child's two resolved parents, used to draw the child's edge.
	PSX, PSY float64

	Duplicate int // appearance count, >1 only on duplicate members

	// Toggle state for duplicate-branch resolution (spec §4.3).
	ToggleID    string
	ToggleValue int64
	ToggleKey   string

	AllRelsDisplayed bool
	IsPrivate        bool

	// internal bookkeeping populated during the pipeline; not part of
	// the public contract but convenient for renderer-adjacent helpers.
	father *types.Person
	mother *types.Person
}

// Dim is the layout's overall extent plus centering offsets (spec §3).
type Dim struct {
	Width, Height float64
	XOff, YOff    float64
}

// Result is the Layout Engine's output contract (spec §4.2).
type Result struct {
	Nodes        []*Node
	Dim          Dim
	MainID       string
	IsHorizontal bool
}

// NodeByTid returns the node with the given tid, or nil.
func (r *Result) NodeByTid(tid string) *Node {
	for _, n := range r.Nodes {
		if n.Tid == tid {
			return n
		}
	}
	return nil
}

// NodesForPerson returns every appearance of personID in the layout.
func (r *Result) NodesForPerson(personID string) []*Node {
	var out []*Node
	for _, n := range r.Nodes {
		if n.PersonID == personID {
			out = append(out, n)
		}
	}
	return out
}

// Main returns the focused node (depth 0), or nil.
func (r *Result) Main() *Node {
	for _, n := range r.Nodes {
		if n.PersonID == r.MainID && n.Depth == 0 {
			return n
		}
	}
	return nil
}
