package commands

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	prompt "github.com/c-bata/go-prompt"
	"github.com/lesfleursdelanuitdev/famtree/cmd/famtree/internal"
	"github.com/lesfleursdelanuitdev/famtree/edit"
	"github.com/lesfleursdelanuitdev/famtree/gedcomimport"
	"github.com/lesfleursdelanuitdev/famtree/layout"
	"github.com/lesfleursdelanuitdev/famtree/store"
	"github.com/lesfleursdelanuitdev/famtree/types"
	"github.com/spf13/cobra"
)

var browseCmd = &cobra.Command{
	Use:   "browse [input.ged]",
	Short: "Interactively browse and edit a Person Graph",
	Long:  "Load a GEDCOM file into a Reactive Store, then accept query and edit commands one line at a time",
	Args:  cobra.ExactArgs(1),
	RunE:  runBrowse,
}

var browseStore *store.Store

func runBrowse(cmd *cobra.Command, args []string) error {
	inputFile := args[0]

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
	if g.Len() == 0 {
		return fmt.Errorf("loaded graph is empty")
	}
	internal.PrintSuccess("✓ Loaded successfully\n")
	internal.PrintInfo("  Individuals: %d, Families: %d\n", report.Individuals, report.Families)

	s, stdErr := store.New(g, layout.DefaultConfig(), g.First().ID)
	if stdErr != nil {
		internal.PrintError("✗ Store init failed: %v\n", stdErr)
		return stdErr
	}
	browseStore = s

	internal.PrintSuccess("\n✓ Browse mode ready (focus: %s)\n", s.MainID())
	internal.PrintInfo("  Type 'help' for available commands\n")
	internal.PrintInfo("  Type 'exit' or 'quit' to exit\n\n")

	startREPL()
	return nil
}

func startREPL() {
	fileInfo, err := os.Stdin.Stat()
	if err != nil || (fileInfo.Mode()&os.ModeCharDevice) == 0 {
		startSimpleREPL()
		return
	}

	p := prompt.New(
		browseExecutor,
		browseCompleter,
		prompt.OptionPrefix("famtree> "),
		prompt.OptionTitle("famtree browse"),
		prompt.OptionPrefixTextColor(prompt.Cyan),
	)
	p.Run()
}

func startSimpleREPL() {
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("famtree> ")
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		if line == "" {
			continue
		}
		browseExecutor(line)
	}
}

func browseExecutor(in string) {
	in = strings.TrimSpace(in)
	if in == "" {
		return
	}
	parts := strings.Fields(in)
	command, args := parts[0], parts[1:]

	switch command {
	case "exit", "quit", "q":
		internal.PrintInfo("Goodbye!\n")
		os.Exit(0)
	case "help", "h":
		printBrowseHelp()
	case "individual", "indi", "i":
		requireArgs(args, 1, "individual <id>", func() { showBrowseIndividual(args[0]) })
	case "focus":
		requireArgs(args, 1, "focus <id>", func() { focusOn(args[0]) })
	case "add":
		requireArgs(args, 2, "add <id> <father|mother|son|daughter|spouse>", func() { addRelative(args[0], args[1]) })
	case "link":
		requireArgs(args, 3, "link <id> <candidate-id> <father|mother|son|daughter|spouse>", func() { linkRelative(args[0], args[1], args[2]) })
	case "delete", "del":
		requireArgs(args, 1, "delete <id>", func() { deletePerson(args[0]) })
	case "hide":
		requireArgs(args, 1, "hide <id>", func() { toggleHide(args[0]) })
	case "undo":
		runUndo()
	case "redo":
		runRedo()
	default:
		internal.PrintError("Unknown command: %s\n", command)
		internal.PrintInfo("Type 'help' for available commands\n")
	}
}

func requireArgs(args []string, n int, usage string, fn func()) {
	if len(args) < n {
		internal.PrintError("Usage: %s\n", usage)
		return
	}
	fn()
}

func browseCompleter(d prompt.Document) []prompt.Suggest {
	s := []prompt.Suggest{
		{Text: "help", Description: "Show help"},
		{Text: "exit", Description: "Exit browse mode"},
		{Text: "individual", Description: "Show a person's attributes and relations"},
		{Text: "focus", Description: "Move focus to a person"},
		{Text: "add", Description: "Add a new relative as a to_add placeholder"},
		{Text: "link", Description: "Link an existing person as a relative"},
		{Text: "delete", Description: "Delete a person"},
		{Text: "hide", Description: "Toggle hide/show on a person's branch"},
		{Text: "undo", Description: "Undo the last mutation"},
		{Text: "redo", Description: "Redo the last undone mutation"},
	}
	return prompt.FilterHasPrefix(s, d.GetWordBeforeCursor(), true)
}

func printBrowseHelp() {
	internal.PrintInfo("\nAvailable Commands:\n\n")
	internal.PrintInfo("  help, h                                  Show this help\n")
	internal.PrintInfo("  exit, quit, q                             Exit browse mode\n")
	internal.PrintInfo("  individual, indi, i <id>                  Show a person\n")
	internal.PrintInfo("  focus <id>                                Move focus to a person\n")
	internal.PrintInfo("  add <id> <relation>                       Add relative (father/mother/son/daughter/spouse)\n")
	internal.PrintInfo("  link <id> <candidate-id> <relation>       Link an existing person as a relative\n")
	internal.PrintInfo("  delete, del <id>                          Delete a person\n")
	internal.PrintInfo("  hide <id>                                 Toggle hide/show on a branch\n")
	internal.PrintInfo("  undo / redo                               Undo or redo the last mutation\n\n")
}

func showBrowseIndividual(id string) {
	p := browseStore.Graph().Get(id)
	if p == nil {
		internal.PrintError("Person not found: %s\n", id)
		return
	}
	printPerson(p)
}

func focusOn(id string) {
	if err := browseStore.UpdateMainId(id); err != nil {
		internal.PrintError("Error: %v\n", err)
		return
	}
	internal.PrintSuccess("Focus is now: %s\n", browseStore.MainID())
}

func addRelative(subjectID, relArg string) {
	relType, ok := parseRelType(relArg)
	if !ok {
		internal.PrintError("Unknown relation: %s\n", relArg)
		return
	}
	var created *types.Person
	err := browseStore.Mutate(func(g *types.PersonGraph) error {
		p, stdErr := edit.AddRelative(g, subjectID, relType, "")
		if stdErr != nil {
			return stdErr
		}
		created = p
		return nil
	})
	if err != nil {
		internal.PrintError("Error: %v\n", err)
		return
	}
	internal.PrintSuccess("Added placeholder %s as %s of %s\n", created.ID, relArg, subjectID)
}

func linkRelative(subjectID, candidateID, relArg string) {
	relType, ok := parseRelType(relArg)
	if !ok {
		internal.PrintError("Unknown relation: %s\n", relArg)
		return
	}
	err := browseStore.Mutate(func(g *types.PersonGraph) error {
		return edit.LinkExistingRelative(g, subjectID, candidateID, relType, "")
	})
	if err != nil {
		internal.PrintError("Error: %v\n", err)
		return
	}
	internal.PrintSuccess("Linked %s as %s of %s\n", candidateID, relArg, subjectID)
}

func deletePerson(id string) {
	err := browseStore.Mutate(func(g *types.PersonGraph) error {
		return edit.DeletePerson(g, id)
	})
	if err != nil {
		internal.PrintError("Error: %v\n", err)
		return
	}
	internal.PrintSuccess("Deleted %s (focus: %s)\n", id, browseStore.MainID())
}

func toggleHide(id string) {
	err := browseStore.Mutate(func(g *types.PersonGraph) error {
		return edit.ToggleHideShow(g, id)
	})
	if err != nil {
		internal.PrintError("Error: %v\n", err)
		return
	}
	internal.PrintSuccess("Toggled hide/show on %s\n", id)
}

func runUndo() {
	if err := browseStore.Undo(); err != nil {
		internal.PrintError("Error: %v\n", err)
		return
	}
	internal.PrintSuccess("Undone (focus: %s)\n", browseStore.MainID())
}

func runRedo() {
	if err := browseStore.Redo(); err != nil {
		internal.PrintError("Error: %v\n", err)
		return
	}
	internal.PrintSuccess("Redone (focus: %s)\n", browseStore.MainID())
}

func parseRelType(s string) (types.RelType, bool) {
	switch strings.ToLower(s) {
	case "father":
		return types.RelTypeFather, true
	case "mother":
		return types.RelTypeMother, true
	case "son":
		return types.RelTypeSon, true
	case "daughter":
		return types.RelTypeDaughter, true
	case "spouse":
		return types.RelTypeSpouse, true
	default:
		return "", false
	}
}

// GetBrowseCommand returns the browse command.
func GetBrowseCommand() *cobra.Command {
	return browseCmd
}
