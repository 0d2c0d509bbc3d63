package commands

import (
	"fmt"
	"os"

	"github.com/lesfleursdelanuitdev/famtree/cmd/famtree/internal"
	"github.com/lesfleursdelanuitdev/famtree/exporter"
	"github.com/lesfleursdelanuitdev/famtree/gedcomimport"
	"github.com/lesfleursdelanuitdev/famtree/layout"
	"github.com/spf13/cobra"
)

var layoutCmd = &cobra.Command{
	Use:   "layout [input.ged] [main-id]",
	Short: "Compute a tree layout rooted at a person",
	Long:  "Load a GEDCOM file, run the Layout Engine around main-id, and optionally export the result",
	Args:  cobra.ExactArgs(2),
	RunE:  runLayout,
}

func init() {
	layoutCmd.Flags().StringP("output", "o", "", "Output file")
	layoutCmd.Flags().StringP("format", "f", "json", "Output format: csv, json, or xml")
	layoutCmd.Flags().String("layout-config", "", "Path to a layout.Config JSON file")
	layoutCmd.Flags().Bool("horizontal", false, "Lay the tree out horizontally")
}

func runLayout(cmd *cobra.Command, args []string) error {
	inputFile := args[0]
	mainID := args[1]
	outputFile, _ := cmd.Flags().GetString("output")
	format, _ := cmd.Flags().GetString("format")
	layoutConfigPath, _ := cmd.Flags().GetString("layout-config")
	horizontal, _ := cmd.Flags().GetBool("horizontal")

	if _, err := os.Stat(inputFile); os.IsNotExist(err) {
		internal.PrintError("✗ File not found: %s\n", inputFile)
		return fmt.Errorf("file not found: %s", inputFile)
	}

	cfg, err := layout.LoadConfig(layoutConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load layout config: %w", err)
	}
	cfg.IsHorizontal = horizontal

	internal.PrintInfo("ℹ Loading GEDCOM file: %s\n", inputFile)
	g, report, err := gedcomimport.LoadFile(inputFile)
	if err != nil {
		internal.PrintError("✗ Load failed: %v\n", err)
		return err
	}
	internal.PrintInfo("  Individuals: %d, Families: %d\n", report.Individuals, report.Families)

	internal.PrintInfo("ℹ Computing layout around %s...\n", mainID)
	res, stdErr := layout.Layout(g, mainID, cfg, nil)
	if stdErr != nil {
		internal.PrintError("✗ Layout failed: %v\n", stdErr)
		return stdErr
	}
	internal.PrintSuccess("✓ Layout computed: %d nodes, %.0fx%.0f\n", len(res.Nodes), res.Dim.Width, res.Dim.Height)

	if outputFile == "" {
		return nil
	}

	exp, err := exporterFor(format)
	if err != nil {
		return err
	}
	if err := exp.ExportToFile(res, outputFile); err != nil {
		internal.PrintError("✗ Export failed: %v\n", err)
		return err
	}
	internal.PrintSuccess("✓ Exported to: %s\n", outputFile)
	return nil
}

func exporterFor(format string) (exporter.Exporter, error) {
	switch format {
	case "csv":
		return exporter.NewCSVExporter(), nil
	case "json":
		return exporter.NewJSONExporter(), nil
	case "xml":
		return exporter.NewXMLExporter(), nil
	default:
		return nil, fmt.Errorf("unsupported export format: %s (must be csv, json, or xml)", format)
	}
}

// GetLayoutCommand returns the layout command.
func GetLayoutCommand() *cobra.Command {
	return layoutCmd
}
