package commands

import (
	"fmt"
	"os"

	"github.com/lesfleursdelanuitdev/famtree/cmd/famtree/internal"
	"github.com/lesfleursdelanuitdev/famtree/gedcomimport"
	"github.com/lesfleursdelanuitdev/famtree/validator"
	"github.com/spf13/cobra"
)

var loadCmd = &cobra.Command{
	Use:   "load [input.ged]",
	Short: "Load a GEDCOM file into a Person Graph",
	Long:  "Parse a .ged file, report individual/family counts, and validate the resulting Person Graph",
	Args:  cobra.ExactArgs(1),
	RunE:  runLoad,
}

func init() {
	loadCmd.Flags().Bool("strict", false, "Fail if ValidateGraph reports any invariant violation")
	loadCmd.Flags().Bool("skip-validate", false, "Skip the post-load invariant check")
}

func runLoad(cmd *cobra.Command, args []string) error {
	inputFile := args[0]
	strict, _ := cmd.Flags().GetBool("strict")
	skipValidate, _ := cmd.Flags().GetBool("skip-validate")

	if _, err := os.Stat(inputFile); os.IsNotExist(err) {
		internal.PrintError("✗ File not found: %s\n", inputFile)
		return fmt.Errorf("file not found: %s", inputFile)
	}

	internal.PrintInfo("ℹ Loading GEDCOM file: %s\n", inputFile)

	g, report, err := gedcomimport.LoadFile(inputFile)
	if err != nil {
		internal.PrintError("✗ Load failed: %v\n", err)
		return err
	}

	internal.PrintSuccess("✓ Loaded successfully\n")
	internal.PrintInfo("  Individuals: %d\n", report.Individuals)
	internal.PrintInfo("  Families:    %d\n", report.Families)
	if !report.CountsAgree && report.CacackIndividuals+report.CacackFamilies > 0 {
		internal.PrintWarning("⚠ Parser cross-check disagreement: cacack saw %d individuals / %d families\n",
			report.CacackIndividuals, report.CacackFamilies)
	}
	for _, w := range report.Warnings {
		internal.PrintWarning("⚠ %s\n", w)
	}

	if skipValidate {
		return nil
	}

	errs := validator.ValidateGraph(g)
	if len(errs) == 0 {
		internal.PrintSuccess("✓ No invariant violations found\n")
		return nil
	}

	internal.PrintWarning("⚠ Found %d invariant violations\n", len(errs))
	for _, e := range errs {
		internal.PrintError("  ✗ [%s] %s (person %s)\n", e.Type, e.Message, e.PersonID)
	}
	if strict {
		return fmt.Errorf("validation failed with %d invariant violations", len(errs))
	}
	return nil
}

// GetLoadCommand returns the load command.
func GetLoadCommand() *cobra.Command {
	return loadCmd
}
