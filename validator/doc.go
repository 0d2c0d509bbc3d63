// Package validator provides an optional pre-flight check over a Person
// Graph (spec §3's invariants): before handing a graph of unknown
// provenance — for instance one just loaded from a GEDCOM file via
// gedcomimport — to the Layout Engine or an Edit Operation, ValidateGraph
// reports every invariant violation as a *types.StandardError instead of
// letting it surface later as a layout crash or a rejected mutation.
//
// # Checks
//
// ValidateGraph walks every person in the graph checking:
//
//   - Reciprocity: father/mother/spouse/child relation slots have a
//     mirror on the referenced person.
//   - Gender consistency: a person referenced as father is male, as
//     mother is female.
//   - No dangling ids: every id in a relation slot resolves.
//   - No self-loop ancestry: no person is her own ancestor.
//
// # Usage
//
//	errs := validator.ValidateGraph(g)
//	for _, e := range errs {
//		fmt.Println(e)
//	}
package validator
