package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/lesfleursdelanuitdev/famtree/cmd/famtree/internal"
	"github.com/lesfleursdelanuitdev/famtree/duplicate"
	"github.com/lesfleursdelanuitdev/famtree/gedcomimport"
	"github.com/spf13/cobra"
)

var qualityCmd = &cobra.Command{
	Use:   "quality [input.ged]",
	Short: "Suggest probable duplicate persons",
	Long:  "Load a GEDCOM file and run the duplicate detector over its Person Graph",
	Args:  cobra.ExactArgs(1),
	RunE:  runQuality,
}

func init() {
	qualityCmd.Flags().Float64("min-score", 0, "Minimum score to report (0 uses the detector default)")
	qualityCmd.Flags().StringP("output", "o", "", "Output file (default: stdout)")
	qualityCmd.Flags().String("format", "text", "Output format: text or json")
}

func runQuality(cmd *cobra.Command, args []string) error {
	inputFile := args[0]
	minScore, _ := cmd.Flags().GetFloat64("min-score")
	outputFile, _ := cmd.Flags().GetString("output")
	format, _ := cmd.Flags().GetString("format")

	if format != "text" && format != "json" {
		return fmt.Errorf("invalid format: %s (must be text or json)", format)
	}
	if _, err := os.Stat(inputFile); os.IsNotExist(err) {
		internal.PrintError("✗ File not found: %s\n", inputFile)
		return fmt.Errorf("file not found: %s", inputFile)
	}

	internal.PrintInfo("ℹ Analyzing: %s\n", inputFile)
	g, report, err := gedcomimport.LoadFile(inputFile)
	if err != nil {
		internal.PrintError("✗ Load failed: %v\n", err)
		return err
	}
	internal.PrintInfo("  Individuals: %d\n", report.Individuals)

	cfg := duplicate.DefaultConfig()
	if minScore > 0 {
		cfg.MinScore = minScore
	}

	internal.PrintInfo("ℹ Scanning for duplicate candidates...\n")
	suggestions := duplicate.SuggestMerges(g, cfg)

	var output string
	if format == "json" {
		data, err := json.MarshalIndent(suggestions, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to generate JSON report: %w", err)
		}
		output = string(data)
	} else {
		output = formatQualityReport(suggestions)
	}

	if outputFile != "" {
		if err := os.WriteFile(outputFile, []byte(output), 0o644); err != nil {
			internal.PrintError("✗ Failed to write output file: %v\n", err)
			return err
		}
		internal.PrintSuccess("✓ Quality report written to: %s\n", outputFile)
		return nil
	}

	fmt.Print(output)
	return nil
}

func formatQualityReport(suggestions []duplicate.MergeSuggestion) string {
	if len(suggestions) == 0 {
		return "No probable duplicates found.\n"
	}
	out := fmt.Sprintf("Found %d probable duplicate pair(s):\n\n", len(suggestions))
	for _, s := range suggestions {
		out += fmt.Sprintf("  %s <-> %s  score=%.2f confidence=%s\n", s.PersonAID, s.PersonBID, s.Score, s.Confidence)
	}
	return out
}

// GetQualityCommand returns the quality command.
func GetQualityCommand() *cobra.Command {
	return qualityCmd
}
