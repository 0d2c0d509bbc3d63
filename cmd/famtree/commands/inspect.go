package commands

import (
	"fmt"
	"os"

	"github.com/lesfleursdelanuitdev/famtree/cmd/famtree/internal"
	"github.com/lesfleursdelanuitdev/famtree/gedcomimport"
	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [input.ged] [person-id]",
	Short: "Print a single person's attributes and relations",
	Args:  cobra.ExactArgs(2),
	RunE:  runInspect,
}

func runInspect(cmd *cobra.Command, args []string) error {
	inputFile := args[0]
	personID := args[1]

	if _, err := os.Stat(inputFile); os.IsNotExist(err) {
		internal.PrintError("✗ File not found: %s\n", inputFile)
		return fmt.Errorf("file not found: %s", inputFile)
	}

	g, _, err := gedcomimport.LoadFile(inputFile)
	if err != nil {
		internal.PrintError("✗ Load failed: %v\n", err)
		return err
	}

	p := g.Get(personID)
	if p == nil {
		internal.PrintError("✗ Person not found: %s\n", personID)
		return fmt.Errorf("person not found: %s", personID)
	}

	printPerson(p)
	return nil
}

// GetInspectCommand returns the inspect command.
func GetInspectCommand() *cobra.Command {
	return inspectCmd
}
