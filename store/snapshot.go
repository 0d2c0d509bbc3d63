package store

import (
	"encoding/json"
	"strconv"

	badger "github.com/dgraph-io/badger/v4"

	"github.com/lesfleursdelanuitdev/famtree/types"
)

// SnapshotStack persists undo/redo graph snapshots in an embedded
// Badger database, so a long edit session's history doesn't have to be
// held entirely in memory (spec §4.5 "undo/redo"). The undo/redo
// sequence counters live in memory only: a stack reopened on an existing
// directory starts with no undo or redo history.
type SnapshotStack struct {
	db       *badger.DB
	seq      int
	redoSeq  int
	maxDepth int
}

// OpenSnapshotStack opens (or creates) a Badger database at dir for
// undo/redo storage. Pass "" for an in-memory store (used by tests and
// single-shot CLI invocations).
func OpenSnapshotStack(dir string, maxDepth int) (*SnapshotStack, error) {
	opts := badger.DefaultOptions(dir)
	if dir == "" {
		opts = opts.WithInMemory(true)
	}
	opts = opts.WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, types.WrapError(types.ErrorTypeInternal, types.SeverityFatal, err, "store.OpenSnapshotStack")
	}
	if maxDepth <= 0 {
		maxDepth = 50
	}
	return &SnapshotStack{db: db, maxDepth: maxDepth}, nil
}

// Close releases the underlying Badger database.
func (s *SnapshotStack) Close() error {
	return s.db.Close()
}

// Push records the current graph as the undo point before a mutation,
// discarding any redo history (spec §4.5: a fresh edit after an undo
// clears the redo stack).
func (s *SnapshotStack) Push(g *types.PersonGraph) error {
	data, err := encodeGraph(g)
	if err != nil {
		return err
	}
	s.seq++
	key := undoKey(s.seq)
	if err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, data)
	}); err != nil {
		return types.WrapError(types.ErrorTypeInternal, types.SeverityError, err, "store.SnapshotStack.Push")
	}
	s.clearRedo()
	if s.seq > s.maxDepth {
		s.evictOldest()
	}
	return nil
}

// Undo returns the graph as it was before the most recent Push,
// stashing the current graph as the redo point a following Redo
// restores.
func (s *SnapshotStack) Undo(current *types.PersonGraph) (*types.PersonGraph, error) {
	if s.seq == 0 {
		return nil, types.NewErrorWithContext(types.ErrorTypeInternal, types.SeverityWarning,
			"nothing to undo", "store.SnapshotStack.Undo")
	}
	data, err := s.get(undoKey(s.seq))
	if err != nil {
		return nil, err
	}
	// Stash the pre-undo state as a redo point.
	redoData, err := encodeGraph(current)
	if err != nil {
		return nil, err
	}
	s.redoSeq++
	if err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(redoKey(s.redoSeq), redoData)
	}); err != nil {
		return nil, types.WrapError(types.ErrorTypeInternal, types.SeverityError, err, "store.SnapshotStack.Undo")
	}
	s.seq--
	return decodeGraph(data)
}

// Redo reapplies the most recently undone snapshot.
func (s *SnapshotStack) Redo(current *types.PersonGraph) (*types.PersonGraph, error) {
	if s.redoSeq == 0 {
		return nil, types.NewErrorWithContext(types.ErrorTypeInternal, types.SeverityWarning,
			"nothing to redo", "store.SnapshotStack.Redo")
	}
	data, err := s.get(redoKey(s.redoSeq))
	if err != nil {
		return nil, err
	}
	s.seq++
	undoData, err := encodeGraph(current)
	if err != nil {
		return nil, err
	}
	if err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(undoKey(s.seq), undoData)
	}); err != nil {
		return nil, types.WrapError(types.ErrorTypeInternal, types.SeverityError, err, "store.SnapshotStack.Redo")
	}
	s.redoSeq--
	return decodeGraph(data)
}

func (s *SnapshotStack) get(key []byte) ([]byte, error) {
	var out []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			out = append([]byte{}, val...)
			return nil
		})
	})
	if err != nil {
		return nil, types.WrapError(types.ErrorTypeInternal, types.SeverityError, err, "store.SnapshotStack.get")
	}
	return out, nil
}

func (s *SnapshotStack) clearRedo() {
	_ = s.db.Update(func(txn *badger.Txn) error {
		for i := 1; i <= s.redoSeq; i++ {
			_ = txn.Delete(redoKey(i))
		}
		return nil
	})
	s.redoSeq = 0
}

func (s *SnapshotStack) evictOldest() {
	oldest := s.seq - s.maxDepth
	_ = s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(undoKey(oldest))
	})
}

func undoKey(n int) []byte { return []byte("undo:" + strconv.Itoa(n)) }
func redoKey(n int) []byte { return []byte("redo:" + strconv.Itoa(n)) }

func encodeGraph(g *types.PersonGraph) ([]byte, error) {
	persons := g.All()
	data, err := json.Marshal(persons)
	if err != nil {
		return nil, types.WrapError(types.ErrorTypeInternal, types.SeverityError, err, "store.encodeGraph")
	}
	return data, nil
}

func decodeGraph(data []byte) (*types.PersonGraph, error) {
	var persons []*types.Person
	if err := json.Unmarshal(data, &persons); err != nil {
		return nil, types.WrapError(types.ErrorTypeInternal, types.SeverityError, err, "store.decodeGraph")
	}
	g := types.NewPersonGraph()
	for _, p := range persons {
		g.Put(p)
	}
	return g, nil
}
