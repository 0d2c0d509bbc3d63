// Package diff compares two Person Graph snapshots and reports added,
// removed, and modified persons plus relation-edge changes between
// them. It exists to make the Reactive Store's Badger-backed undo/redo
// history inspectable: a wrapper application can diff the graph at any
// two points the Store has snapshotted and show the user what an Edit
// Operation (or a batch of them) actually changed, rather than just
// offering a blind Undo/Redo.
//
// Matching is by person id, since the Person Graph's ids are stable
// across Edit Operations (never reassigned); this mirrors the
// teacher's own "xref" matching strategy, which is the fast path for
// two versions of the same file rather than two independently-authored
// files.
package diff
