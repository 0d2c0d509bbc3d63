package exporter

import (
	"encoding/xml"
	"fmt"

	"github.com/lesfleursdelanuitdev/famtree/layout"
)

// XMLExporter exports a layout.Result as XML. Grounded on the
// teacher's XMLExporter in xml.go, retargeted from a GedcomTree
// structure to ResultExport.
type XMLExporter struct{}

// NewXMLExporter creates a new XMLExporter.
func NewXMLExporter() *XMLExporter {
	return &XMLExporter{}
}

// ExportToFile exports res to an XML file at filePath.
func (xe *XMLExporter) ExportToFile(res *layout.Result, filePath string) error {
	s, err := xe.ExportToString(res)
	if err != nil {
		return err
	}
	return writeToFile(filePath, s)
}

// ExportToString exports res as an XML string.
func (xe *XMLExporter) ExportToString(res *layout.Result) (string, error) {
	data, err := xml.MarshalIndent(struct {
		XMLName xml.Name `xml:"layout"`
		ResultExport
	}{ResultExport: toExport(res)}, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal XML: %w", err)
	}
	return xml.Header + string(data), nil
}
