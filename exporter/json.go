package exporter

import (
	"encoding/json"
	"fmt"

	"github.com/lesfleursdelanuitdev/famtree/layout"
)

// JSONExporter exports a layout.Result as indented JSON. Grounded on
// the teacher's JsonExporter in json.go, retargeted from a GedcomTree
// structure to ResultExport.
type JSONExporter struct{}

// NewJSONExporter creates a new JSONExporter.
func NewJSONExporter() *JSONExporter {
	return &JSONExporter{}
}

// ExportToFile exports res to a JSON file at filePath.
func (je *JSONExporter) ExportToFile(res *layout.Result, filePath string) error {
	s, err := je.ExportToString(res)
	if err != nil {
		return err
	}
	return writeToFile(filePath, s)
}

// ExportToString exports res as a JSON string.
func (je *JSONExporter) ExportToString(res *layout.Result) (string, error) {
	data, err := json.MarshalIndent(toExport(res), "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return string(data), nil
}
