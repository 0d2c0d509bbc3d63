// Package exporter serializes a computed layout.Result to CSV, JSON, or
// XML for a renderer that isn't the in-memory Go process holding the
// Store — an offline graphing tool, a static export, a debugging dump.
// It is a pure read path: nothing here mutates a Person Graph or a
// layout.Result.
//
// Every format is built from the same flattened NodeExport rows, which
// reference other nodes by Tid instead of by pointer (layout.Node's
// Parents/Children/Spouses slices are cyclic and would marshal
// infinitely if encoded directly).
package exporter
