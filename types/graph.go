package types

import (
	"strings"
	"sync"
)

// PersonGraph is the authoritative collection of persons and their
// relations, mutated only through Edit Operations (package edit). It is
// the "Person Graph" of spec §3/§4.1.
//
// All methods are thread-safe; callers outside the owning Store must
// not mutate a *Person obtained from it in place (spec §5, "shared
// resource policy") — copy it first.
type PersonGraph struct {
	mu sync.RWMutex

	persons map[string]*Person
	// order preserves insertion order so "the graph's first person"
	// (used by delete-safety checks and empty-graph recovery) is
	// well-defined even though persons is a map.
	order []string
}

// NewPersonGraph creates an empty graph.
func NewPersonGraph() *PersonGraph {
	return &PersonGraph{persons: make(map[string]*Person)}
}

// Put inserts or replaces a person. Replacing an existing id does not
// change its position in insertion order.
func (g *PersonGraph) Put(p *Person) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, exists := g.persons[p.ID]; !exists {
		g.order = append(g.order, p.ID)
	}
	g.persons[p.ID] = p
}

// Get returns the person with the given id, or nil.
func (g *PersonGraph) Get(id string) *Person {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.persons[id]
}

// Has reports whether id resolves to a person in the graph.
func (g *PersonGraph) Has(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.persons[id]
	return ok
}

// Delete removes a person outright (no reciprocity cleanup; that is the
// Edit Operations' job).
func (g *PersonGraph) Delete(id string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.persons, id)
	g.order = removeString(g.order, id)
}

// Len returns the number of persons in the graph.
func (g *PersonGraph) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.persons)
}

// All returns every person in stable insertion order.
func (g *PersonGraph) All() []*Person {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]*Person, 0, len(g.order))
	for _, id := range g.order {
		if p, ok := g.persons[id]; ok {
			out = append(out, p)
		}
	}
	return out
}

// First returns the first person by insertion order still present, or
// nil if the graph is empty.
func (g *PersonGraph) First() *Person {
	g.mu.RLock()
	defer g.mu.RUnlock()
	for _, id := range g.order {
		if p, ok := g.persons[id]; ok {
			return p
		}
	}
	return nil
}

// Clone returns a deep copy of the graph, used by the Reactive Store to
// snapshot state for undo/redo.
func (g *PersonGraph) Clone() *PersonGraph {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := NewPersonGraph()
	out.order = append(out.order, g.order...)
	for id, p := range g.persons {
		out.persons[id] = p.Clone()
	}
	return out
}

// Father returns the father of p, or nil if unset or dangling.
func (g *PersonGraph) Father(p *Person) *Person {
	if p == nil || p.Rels.Father == "" {
		return nil
	}
	return g.Get(p.Rels.Father)
}

// Mother returns the mother of p, or nil if unset or dangling.
func (g *PersonGraph) Mother(p *Person) *Person {
	if p == nil || p.Rels.Mother == "" {
		return nil
	}
	return g.Get(p.Rels.Mother)
}

// Parents returns the non-nil parents of p, father first.
func (g *PersonGraph) Parents(p *Person) []*Person {
	out := make([]*Person, 0, 2)
	if f := g.Father(p); f != nil {
		out = append(out, f)
	}
	if m := g.Mother(p); m != nil {
		out = append(out, m)
	}
	return out
}

// Spouses returns the resolved spouses of p, in relation order.
func (g *PersonGraph) Spouses(p *Person) []*Person {
	if p == nil {
		return nil
	}
	out := make([]*Person, 0, len(p.Rels.Spouses))
	for _, id := range p.Rels.Spouses {
		if s := g.Get(id); s != nil {
			out = append(out, s)
		}
	}
	return out
}

// Children returns the resolved children of p, in relation order.
func (g *PersonGraph) Children(p *Person) []*Person {
	if p == nil {
		return nil
	}
	out := make([]*Person, 0, len(p.Rels.Children))
	for _, id := range p.Rels.Children {
		if c := g.Get(id); c != nil {
			out = append(out, c)
		}
	}
	return out
}

// Siblings returns every person sharing at least one parent with p,
// excluding p itself.
func (g *PersonGraph) Siblings(p *Person) []*Person {
	if p == nil {
		return nil
	}
	seen := map[string]bool{p.ID: true}
	out := make([]*Person, 0)
	addFrom := func(parent *Person) {
		if parent == nil {
			return
		}
		for _, childID := range parent.Rels.Children {
			if seen[childID] {
				continue
			}
			if sib := g.Get(childID); sib != nil {
				seen[childID] = true
				out = append(out, sib)
			}
		}
	}
	addFrom(g.Father(p))
	addFrom(g.Mother(p))
	return out
}

// IsAncestorOf reports whether candidate is an ancestor of p (walking
// father/mother), used to guard against self-loops (spec §3 invariant).
func (g *PersonGraph) IsAncestorOf(candidateID string, p *Person) bool {
	visited := map[string]bool{}
	var walk func(cur *Person) bool
	walk = func(cur *Person) bool {
		if cur == nil {
			return false
		}
		if visited[cur.ID] {
			return false
		}
		visited[cur.ID] = true
		for _, parent := range g.Parents(cur) {
			if parent.ID == candidateID {
				return true
			}
			if walk(parent) {
				return true
			}
		}
		return false
	}
	return walk(p)
}

// AncestorSet returns the ids of every ancestor of p (not including p).
func (g *PersonGraph) AncestorSet(p *Person) map[string]bool {
	out := map[string]bool{}
	var walk func(cur *Person)
	walk = func(cur *Person) {
		if cur == nil {
			return
		}
		for _, parent := range g.Parents(cur) {
			if !out[parent.ID] {
				out[parent.ID] = true
				walk(parent)
			}
		}
	}
	walk(p)
	return out
}

// DescendantSet returns the ids of every descendant of p (not including p).
func (g *PersonGraph) DescendantSet(p *Person) map[string]bool {
	out := map[string]bool{}
	var walk func(cur *Person)
	walk = func(cur *Person) {
		if cur == nil {
			return
		}
		for _, child := range g.Children(cur) {
			if !out[child.ID] {
				out[child.ID] = true
				walk(child)
			}
		}
	}
	walk(p)
	return out
}

// ResolveRefField reports whether key is a relation-scoped attribute key
// of the form "<field>__ref__<otherID>", returning the field name and
// the other person's id.
func ResolveRefField(key string) (field, otherID string, ok bool) {
	idx := strings.Index(key, "__ref__")
	if idx < 0 {
		return "", "", false
	}
	return key[:idx], key[idx+len("__ref__"):], true
}
