package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/lesfleursdelanuitdev/famtree/cmd/famtree/internal"
	"github.com/lesfleursdelanuitdev/famtree/diff"
	"github.com/lesfleursdelanuitdev/famtree/gedcomimport"
	"github.com/spf13/cobra"
)

var diffCmd = &cobra.Command{
	Use:   "diff [file1.ged] [file2.ged]",
	Short: "Compare two GEDCOM files at the Person Graph level",
	Args:  cobra.ExactArgs(2),
	RunE:  runDiff,
}

func init() {
	diffCmd.Flags().StringP("output", "o", "", "Output file (default: stdout)")
	diffCmd.Flags().String("format", "text", "Output format: text or json")
}

func runDiff(cmd *cobra.Command, args []string) error {
	file1, file2 := args[0], args[1]
	outputFile, _ := cmd.Flags().GetString("output")
	format, _ := cmd.Flags().GetString("format")

	if format != "text" && format != "json" {
		return fmt.Errorf("invalid format: %s (must be text or json)", format)
	}
	for _, f := range []string{file1, file2} {
		if _, err := os.Stat(f); os.IsNotExist(err) {
			internal.PrintError("✗ File not found: %s\n", f)
			return fmt.Errorf("file not found: %s", f)
		}
	}

	internal.PrintInfo("ℹ Loading: %s\n", file1)
	g1, _, err := gedcomimport.LoadFile(file1)
	if err != nil {
		internal.PrintError("✗ Failed to load %s: %v\n", file1, err)
		return err
	}
	internal.PrintInfo("ℹ Loading: %s\n", file2)
	g2, _, err := gedcomimport.LoadFile(file2)
	if err != nil {
		internal.PrintError("✗ Failed to load %s: %v\n", file2, err)
		return err
	}

	internal.PrintInfo("ℹ Comparing graphs...\n")
	report := diff.DiffGraphs(g1, g2)

	var output string
	if format == "json" {
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to generate JSON report: %w", err)
		}
		output = string(data)
	} else {
		output = formatDiffReport(report)
	}

	if outputFile != "" {
		if err := os.WriteFile(outputFile, []byte(output), 0o644); err != nil {
			internal.PrintError("✗ Failed to write output file: %v\n", err)
			return err
		}
		internal.PrintSuccess("✓ Diff report written to: %s\n", outputFile)
		return nil
	}
	fmt.Print(output)
	return nil
}

func formatDiffReport(r diff.Report) string {
	if r.IsEmpty() {
		return "No differences found.\n"
	}
	out := "Person Graph diff\n==================\n\n"
	out += fmt.Sprintf("Added persons:   %v\n", r.AddedPersons)
	out += fmt.Sprintf("Removed persons: %v\n", r.RemovedPersons)
	out += fmt.Sprintf("Modified persons: %d\n", len(r.ModifiedPersons))
	for _, m := range r.ModifiedPersons {
		out += fmt.Sprintf("  %s:\n", m.PersonID)
		for _, fc := range m.DataChanges {
			out += fmt.Sprintf("    %s: %v -> %v\n", fc.Field, fc.OldValue, fc.NewValue)
		}
		for _, note := range m.RelationNotes {
			out += fmt.Sprintf("    %s\n", note)
		}
	}
	out += fmt.Sprintf("Added edges:   %d\n", len(r.AddedEdges))
	for _, e := range r.AddedEdges {
		out += fmt.Sprintf("  + %s --%s--> %s\n", e.FromID, e.Kind, e.ToID)
	}
	out += fmt.Sprintf("Removed edges: %d\n", len(r.RemovedEdges))
	for _, e := range r.RemovedEdges {
		out += fmt.Sprintf("  - %s --%s--> %s\n", e.FromID, e.Kind, e.ToID)
	}
	return out
}

// GetDiffCommand returns the diff command.
func GetDiffCommand() *cobra.Command {
	return diffCmd
}
