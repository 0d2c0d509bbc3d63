package exporter

import (
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"github.com/lesfleursdelanuitdev/famtree/layout"
)

// CSVExporter exports a layout.Result as one row per node. Grounded on
// the teacher's CSVExporter in csv.go, retargeted from individual
// records to layout nodes.
type CSVExporter struct{}

// NewCSVExporter creates a new CSVExporter.
func NewCSVExporter() *CSVExporter {
	return &CSVExporter{}
}

var csvHeader = []string{
	"tid", "person_id", "x", "y", "depth", "is_ancestry", "sibling",
	"added", "spouse_of", "parents", "children", "spouses",
	"all_rels_displayed", "is_private",
}

// ExportToFile exports res to a CSV file at filePath.
func (ce *CSVExporter) ExportToFile(res *layout.Result, filePath string) error {
	s, err := ce.ExportToString(res)
	if err != nil {
		return err
	}
	return writeToFile(filePath, s)
}

// ExportToString exports res as a CSV string.
func (ce *CSVExporter) ExportToString(res *layout.Result) (string, error) {
	var sb strings.Builder
	w := csv.NewWriter(&sb)

	if err := w.Write(csvHeader); err != nil {
		return "", fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, n := range toExport(res).Nodes {
		if err := w.Write(nodeToCSVRow(n)); err != nil {
			return "", fmt.Errorf("failed to write CSV row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("failed to flush CSV writer: %w", err)
	}
	return sb.String(), nil
}

func nodeToCSVRow(n NodeExport) []string {
	return []string{
		n.Tid,
		n.PersonID,
		strconv.FormatFloat(n.X, 'f', -1, 64),
		strconv.FormatFloat(n.Y, 'f', -1, 64),
		strconv.Itoa(n.Depth),
		strconv.FormatBool(n.IsAncestry),
		strconv.FormatBool(n.Sibling),
		strconv.FormatBool(n.Added),
		n.SpouseOf,
		strings.Join(n.ParentTids, ";"),
		strings.Join(n.ChildTids, ";"),
		strings.Join(n.SpouseTids, ";"),
		strconv.FormatBool(n.AllRelsDisplayed),
		strconv.FormatBool(n.IsPrivate),
	}
}
