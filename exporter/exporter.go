package exporter

import (
	"os"

	"github.com/lesfleursdelanuitdev/famtree/layout"
)

// Exporter is the interface every format in this package implements.
// Grounded on the teacher's own Exporter interface in exporter.go,
// retargeted from *types.GedcomTree to *layout.Result.
type Exporter interface {
	ExportToFile(res *layout.Result, filePath string) error
	ExportToString(res *layout.Result) (string, error)
}

// NodeExport is one layout.Node flattened for serialization: relations
// are referenced by Tid, not by pointer, so the output is a plain tree
// of scalars instead of a cyclic object graph.
type NodeExport struct {
	Tid      string `json:"tid" xml:"tid,attr"`
	PersonID string `json:"person_id" xml:"person_id,attr"`

	X float64 `json:"x" xml:"x"`
	Y float64 `json:"y" xml:"y"`

	Depth int `json:"depth" xml:"depth"`

	IsAncestry bool   `json:"is_ancestry" xml:"is_ancestry"`
	Sibling    bool   `json:"sibling" xml:"sibling"`
	Added      bool   `json:"added" xml:"added"`
	SpouseOf   string `json:"spouse_of,omitempty" xml:"spouse_of,omitempty"`

	ParentTids []string `json:"parents,omitempty" xml:"parents>tid,omitempty"`
	ChildTids  []string `json:"children,omitempty" xml:"children>tid,omitempty"`
	SpouseTids []string `json:"spouses,omitempty" xml:"spouses>tid,omitempty"`

	AllRelsDisplayed bool `json:"all_rels_displayed" xml:"all_rels_displayed"`
	IsPrivate        bool `json:"is_private" xml:"is_private"`
}

// ResultExport is a layout.Result flattened for serialization.
type ResultExport struct {
	MainID       string  `json:"main_id" xml:"main_id,attr"`
	IsHorizontal bool    `json:"is_horizontal" xml:"is_horizontal,attr"`
	Width        float64 `json:"width" xml:"width"`
	Height       float64 `json:"height" xml:"height"`

	Nodes []NodeExport `json:"nodes" xml:"node"`
}

// toExport flattens a layout.Result into its serializable shape.
func toExport(res *layout.Result) ResultExport {
	out := ResultExport{
		MainID:       res.MainID,
		IsHorizontal: res.IsHorizontal,
		Width:        res.Dim.Width,
		Height:       res.Dim.Height,
		Nodes:        make([]NodeExport, 0, len(res.Nodes)),
	}
	for _, n := range res.Nodes {
		out.Nodes = append(out.Nodes, NodeExport{
			Tid:              n.Tid,
			PersonID:         n.PersonID,
			X:                n.X,
			Y:                n.Y,
			Depth:            n.Depth,
			IsAncestry:       n.IsAncestry,
			Sibling:          n.Sibling,
			Added:            n.Added,
			SpouseOf:         n.SpouseOf,
			ParentTids:       tids(n.Parents),
			ChildTids:        tids(n.Children),
			SpouseTids:       tids(n.Spouses),
			AllRelsDisplayed: n.AllRelsDisplayed,
			IsPrivate:        n.IsPrivate,
		})
	}
	return out
}

func tids(nodes []*layout.Node) []string {
	if len(nodes) == 0 {
		return nil
	}
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.Tid
	}
	return out
}

func writeToFile(filePath, content string) error {
	return os.WriteFile(filePath, []byte(content), 0o644)
}
