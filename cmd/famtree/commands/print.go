package commands

import (
	"sort"

	"github.com/lesfleursdelanuitdev/famtree/cmd/famtree/internal"
	"github.com/lesfleursdelanuitdev/famtree/types"
)

// printPerson renders a person's attributes and relation slots, the
// single-person view shared by the inspect command and browse's
// "individual" REPL verb.
func printPerson(p *types.Person) {
	internal.PrintInfo("\nPerson: %s\n", p.ID)
	internal.PrintInfo("  Gender:  %s\n", p.Gender())
	if p.Unknown {
		internal.PrintInfo("  (unknown placeholder)\n")
	}
	if p.ToAdd {
		internal.PrintInfo("  (to_add placeholder)\n")
	}

	keys := make([]string, 0, len(p.Data))
	for k := range p.Data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	if len(keys) > 0 {
		internal.PrintInfo("  Data:\n")
		for _, k := range keys {
			internal.PrintInfo("    %s: %v\n", k, p.Data[k])
		}
	}

	internal.PrintInfo("  Father:   %s\n", orNone(p.Rels.Father))
	internal.PrintInfo("  Mother:   %s\n", orNone(p.Rels.Mother))
	internal.PrintInfo("  Spouses:  %v\n", p.Rels.Spouses)
	internal.PrintInfo("  Children: %v\n", p.Rels.Children)
	internal.PrintInfo("\n")
}

func orNone(id string) string {
	if id == "" {
		return "(none)"
	}
	return id
}
