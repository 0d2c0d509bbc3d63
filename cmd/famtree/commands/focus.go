package commands

import (
	"fmt"
	"os"

	"github.com/lesfleursdelanuitdev/famtree/cmd/famtree/internal"
	"github.com/lesfleursdelanuitdev/famtree/gedcomimport"
	"github.com/lesfleursdelanuitdev/famtree/layout"
	"github.com/lesfleursdelanuitdev/famtree/store"
	"github.com/spf13/cobra"
)

var focusCmd = &cobra.Command{
	Use:   "focus [input.ged] [new-main-id]",
	Short: "Recompute the layout with a new focus person",
	Long:  "Load a GEDCOM file into a Reactive Store, then re-run UpdateMainId to shift focus",
	Args:  cobra.ExactArgs(2),
	RunE:  runFocus,
}

func runFocus(cmd *cobra.Command, args []string) error {
	inputFile := args[0]
	newMainID := args[1]

	if _, err := os.Stat(inputFile); os.IsNotExist(err) {
		internal.PrintError("✗ File not found: %s\n", inputFile)
		return fmt.Errorf("file not found: %s", inputFile)
	}

	g, _, err := gedcomimport.LoadFile(inputFile)
	if err != nil {
		internal.PrintError("✗ Load failed: %v\n", err)
		return err
	}
	if g.Len() == 0 {
		return fmt.Errorf("loaded graph is empty")
	}

	s, stdErr := store.New(g, layout.DefaultConfig(), g.First().ID)
	if stdErr != nil {
		internal.PrintError("✗ Store init failed: %v\n", stdErr)
		return stdErr
	}

	internal.PrintInfo("ℹ Shifting focus to %s...\n", newMainID)
	if stdErr := s.UpdateMainId(newMainID); stdErr != nil {
		internal.PrintError("✗ Focus change failed: %v\n", stdErr)
		return stdErr
	}

	res := s.GetTree()
	internal.PrintSuccess("✓ New focus: %s (%d nodes)\n", s.MainID(), len(res.Nodes))
	return nil
}

// GetFocusCommand returns the focus command.
func GetFocusCommand() *cobra.Command {
	return focusCmd
}
