package layout

import "github.com/lesfleursdelanuitdev/famtree/types"

// applyPrivacy marks every node in the hierarchy private per spec §4.4:
// a person is private if she, or any of her parents, or any of her
// spouses, recursively, satisfies cfg.PrivateCardsConfig.Condition. The
// recursion runs over the Person Graph itself rather than the hNode
// tree shape, so a person gets the same answer whether she appears on
// the ancestor side (whose tree-children are more distant ancestors) or
// the descendant side (whose tree-children are real children) — a
// plain top-down or bottom-up walk of either tree alone only covers the
// parent half of the predicate, never the spouse half.
func applyPrivacy(root *hNode, g *types.PersonGraph, cfg *Config) {
	if cfg.PrivateCardsConfig == nil || cfg.PrivateCardsConfig.Condition == nil {
		return
	}
	memo := map[string]bool{}
	var walk func(n *hNode)
	walk = func(n *hNode) {
		n.isPrivate = personIsPrivate(g, n.person, cfg.PrivateCardsConfig.Condition, memo, map[string]bool{})
		for _, c := range n.children {
			walk(c)
		}
	}
	walk(root)
}

// personIsPrivate reports whether p, or any of her parents or spouses
// (recursively), matches condition. memo caches a person's final
// answer across the whole applyPrivacy walk; visiting guards the
// in-progress recursion against spouse loops and ancestry cycles.
func personIsPrivate(g *types.PersonGraph, p *types.Person, condition func(*types.Person) bool, memo, visiting map[string]bool) bool {
	if p == nil {
		return false
	}
	if v, ok := memo[p.ID]; ok {
		return v
	}
	if visiting[p.ID] {
		return false
	}
	visiting[p.ID] = true
	defer delete(visiting, p.ID)

	result := condition(p)
	if !result {
		for _, parent := range g.Parents(p) {
			if personIsPrivate(g, parent, condition, memo, visiting) {
				result = true
				break
			}
		}
	}
	if !result {
		for _, spouse := range g.Spouses(p) {
			if personIsPrivate(g, spouse, condition, memo, visiting) {
				result = true
				break
			}
		}
	}
	memo[p.ID] = result
	return result
}
