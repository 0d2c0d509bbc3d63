package edit

import "github.com/lesfleursdelanuitdev/famtree/types"

// ConnectedWithoutPerson reports whether the graph stays a single
// connected component once excludeID and its edges are removed,
// treating every relation slot as an undirected edge. DeletePerson
// uses this as its articulation-point check (spec §4.6 "delete-safety").
func ConnectedWithoutPerson(g *types.PersonGraph, excludeID string) bool {
	all := g.All()
	remaining := make([]string, 0, len(all))
	for _, p := range all {
		if p.ID != excludeID {
			remaining = append(remaining, p.ID)
		}
	}
	if len(remaining) <= 1 {
		return true
	}

	adj := map[string][]string{}
	for _, p := range all {
		if p.ID == excludeID {
			continue
		}
		for _, rid := range p.Rels.AllIDs() {
			if rid == "" || rid == excludeID || !g.Has(rid) {
				continue
			}
			adj[p.ID] = append(adj[p.ID], rid)
		}
	}

	visited := map[string]bool{remaining[0]: true}
	queue := []string{remaining[0]}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, n := range adj[cur] {
			if !visited[n] {
				visited[n] = true
				queue = append(queue, n)
			}
		}
	}
	return len(visited) == len(remaining)
}

// ConnectedToFirstPerson reports whether id is reachable from the
// graph's first person by any relation edge.
func ConnectedToFirstPerson(g *types.PersonGraph, id string) bool {
	first := g.First()
	if first == nil {
		return false
	}
	if first.ID == id {
		return true
	}
	visited := map[string]bool{first.ID: true}
	queue := []string{first.ID}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		p := g.Get(cur)
		if p == nil {
			continue
		}
		for _, rid := range p.Rels.AllIDs() {
			if rid == "" || visited[rid] {
				continue
			}
			if rid == id {
				return true
			}
			visited[rid] = true
			queue = append(queue, rid)
		}
	}
	return false
}
