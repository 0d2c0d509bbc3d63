// Package types provides the core data structures shared across the
// family-tree layout core: Person, Rels, and PersonGraph (spec §3).
//
// A Person carries an opaque id, a free-form attribute map (with the
// reserved "gender" key and "<field>__ref__<otherID>" relation-scoped
// keys), and a Rels value naming its father, mother, spouses, and
// children by id. PersonGraph owns a set of persons and enforces no
// invariants itself — invariant maintenance is the job of the edit
// package's Edit Operations, which are the only sanctioned way to
// mutate a graph owned by a store.
package types
