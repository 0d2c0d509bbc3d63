// Package store implements the Reactive Store (spec §4.5): the single
// mutable owner of a Person Graph, the focus person, and the last
// computed layout, which recomputes and notifies a subscriber whenever
// either changes.
package store

import (
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/lesfleursdelanuitdev/famtree/layout"
	"github.com/lesfleursdelanuitdev/famtree/types"
)

const maxFocusHistory = 10

// UpdateFunc is invoked after every successful recompute. res is nil
// when the graph became empty.
type UpdateFunc func(res *layout.Result)

// Store owns the Person Graph and drives the Layout Engine off it.
type Store struct {
	mu sync.RWMutex

	graph  *types.PersonGraph
	cfg    *layout.Config
	mainID string

	// history holds previously-focused ids, oldest first, deduplicated,
	// bounded to maxFocusHistory (spec §4.5 "focus history").
	history []string

	lastResult      *layout.Result
	toggleOverrides map[string]int64

	cache *lru.Cache[string, *layout.Result]

	snapshots *SnapshotStack
	onUpdate  UpdateFunc
}

// Option configures a Store at construction.
type Option func(*Store)

// WithOnUpdate registers the subscriber invoked after each recompute.
func WithOnUpdate(fn UpdateFunc) Option {
	return func(s *Store) { s.onUpdate = fn }
}

// WithSnapshots attaches an undo/redo stack.
func WithSnapshots(stack *SnapshotStack) Option {
	return func(s *Store) { s.snapshots = stack }
}

// New creates a Store around an already-augmented graph and runs the
// first layout immediately.
func New(g *types.PersonGraph, cfg *layout.Config, mainID string, opts ...Option) (*Store, error) {
	if cfg == nil {
		cfg = layout.DefaultConfig()
	}
	cache, err := lru.New[string, *layout.Result](maxFocusHistory)
	if err != nil {
		return nil, types.WrapError(types.ErrorTypeInternal, types.SeverityFatal, err, "store.New")
	}
	s := &Store{
		graph:           g,
		cfg:             cfg,
		mainID:          mainID,
		toggleOverrides: map[string]int64{},
		cache:           cache,
	}
	for _, opt := range opts {
		opt(s)
	}
	if err := s.updateTree(); err != nil && types.GetErrorType(err) != types.ErrorTypeEmptyGraph {
		return nil, err
	}
	return s, nil
}

// Graph returns the owned Person Graph. Callers must route mutations
// through Mutate so the store recomputes layout afterward.
func (s *Store) Graph() *types.PersonGraph {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.graph
}

// MainID returns the current focus person's id.
func (s *Store) MainID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mainID
}

// Config returns the store's layout configuration.
func (s *Store) Config() *layout.Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg
}

// Mutate runs fn with exclusive access to the graph, snapshotting
// beforehand (if an undo stack is attached) and recomputing layout
// afterward. If fn returns an error, no snapshot is taken and the
// layout is not recomputed.
func (s *Store) Mutate(fn func(g *types.PersonGraph) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	var before *types.PersonGraph
	if s.snapshots != nil {
		before = s.graph.Clone()
	}
	if err := fn(s.graph); err != nil {
		return err
	}
	if before != nil {
		if err := s.snapshots.Push(before); err != nil {
			return err
		}
	}
	return s.updateTree()
}

// UpdateMainId moves focus to id, pushing the previous focus onto the
// bounded, deduplicated history (spec §4.5).
func (s *Store) UpdateMainId(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.mainID != "" && s.mainID != id {
		s.pushHistory(s.mainID)
	}
	s.mainID = id
	return s.updateTree()
}

func (s *Store) pushHistory(id string) {
	for i, h := range s.history {
		if h == id {
			s.history = append(s.history[:i], s.history[i+1:]...)
			break
		}
	}
	s.history = append(s.history, id)
	if len(s.history) > maxFocusHistory {
		s.history = s.history[len(s.history)-maxFocusHistory:]
	}
}

// getLastAvailableMainDatum walks history from most to least recent
// looking for an id still present in the graph, falling back to the
// graph's first person (spec §4.5 "focus recovery").
func (s *Store) getLastAvailableMainDatum() *types.Person {
	for i := len(s.history) - 1; i >= 0; i-- {
		if p := s.graph.Get(s.history[i]); p != nil {
			return p
		}
	}
	return s.graph.First()
}

// updateTree reruns the Layout Engine and notifies the subscriber. The
// caller must hold s.mu. If the current focus no longer resolves (the
// person behind it was deleted), it recovers via the focus history
// before asking the Layout Engine to run (spec §4.5 "focus recovery");
// Layout's own "else the first person" fallback is reserved for the
// case where no main id was ever set.
func (s *Store) updateTree() error {
	if s.mainID != "" && s.graph.Get(s.mainID) == nil {
		if recovered := s.getLastAvailableMainDatum(); recovered != nil {
			s.mainID = recovered.ID
		}
	}

	res, err := layout.Layout(s.graph, s.mainID, s.cfg, s.toggleOverrides)
	if err != nil {
		if types.GetErrorType(err) == types.ErrorTypeEmptyGraph {
			s.lastResult = nil
			if s.onUpdate != nil {
				s.onUpdate(nil)
			}
		}
		return err
	}
	s.mainID = res.MainID
	s.lastResult = res
	s.cache.Add(s.mainID, res)
	if s.onUpdate != nil {
		s.onUpdate(res)
	}
	return nil
}

// SetToggle records a duplicate-branch toggle decision so it survives
// the next recompute (spec §4.3), then recomputes immediately.
func (s *Store) SetToggle(groupID, toggleKey string, value int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.toggleOverrides[groupID+"|"+toggleKey] = value
	return s.updateTree()
}

// GetDatum returns the layout node for tid, or nil.
func (s *Store) GetDatum(tid string) *layout.Node {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.lastResult == nil {
		return nil
	}
	return s.lastResult.NodeByTid(tid)
}

// GetTreeDatum returns the underlying person for id, or nil.
func (s *Store) GetTreeDatum(id string) *types.Person {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.graph.Get(id)
}

// GetMainDatum returns the focused layout node, or nil.
func (s *Store) GetMainDatum() *layout.Node {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.lastResult == nil {
		return nil
	}
	return s.lastResult.Main()
}

// GetTreeMainDatum returns the underlying focus person, or nil.
func (s *Store) GetTreeMainDatum() *types.Person {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.graph.Get(s.mainID)
}

// GetData returns every person currently in the graph.
func (s *Store) GetData() []*types.Person {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.graph.All()
}

// GetTree returns the last computed layout, or nil if the graph is
// currently empty.
func (s *Store) GetTree() *layout.Result {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastResult
}

// Undo reverts the graph to the previous snapshot and recomputes.
func (s *Store) Undo() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.snapshots == nil {
		return types.NewErrorWithContext(types.ErrorTypeInternal, types.SeverityWarning,
			"no snapshot stack attached", "store.Undo")
	}
	g, err := s.snapshots.Undo(s.graph)
	if err != nil {
		return err
	}
	s.graph = g
	return s.updateTree()
}

// Redo reapplies a snapshot previously undone.
func (s *Store) Redo() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.snapshots == nil {
		return types.NewErrorWithContext(types.ErrorTypeInternal, types.SeverityWarning,
			"no snapshot stack attached", "store.Redo")
	}
	g, err := s.snapshots.Redo(s.graph)
	if err != nil {
		return err
	}
	s.graph = g
	return s.updateTree()
}
