// Package edit implements the Edit Operations (spec §4.6): the only
// sanctioned way to mutate a Person Graph. Every operation either
// leaves the graph in a state satisfying its invariants (reciprocal
// relations, consistent gender at parent slots, no dangling ids, no
// self-loops, a single resolvable focus) or returns a
// *types.StandardError and changes nothing.
package edit
