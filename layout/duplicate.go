package layout

import "sort"

// resolveDuplicates finds person-appearances that recur across a built
// hierarchy (the diamond pattern produced by a cousin marriage or a
// remarriage reconnecting two branches) and assigns each occurrence a
// shared toggle group plus a per-occurrence open/closed state (spec
// §4.3). overrides carries toggle values a Store has persisted from a
// prior user interaction, keyed by "groupID|toggleKey".
func resolveDuplicates(root *hNode, onToggleOneCloseOthers bool, clock func() int64, overrides map[string]int64) {
	groups := map[string][]*hNode{}
	var walk func(n *hNode)
	walk = func(n *hNode) {
		if len(n.children) > 0 {
			groups[n.person.ID] = append(groups[n.person.ID], n)
		}
		for _, c := range n.children {
			walk(c)
		}
	}
	walk(root)

	for personID, members := range groups {
		if len(members) < 2 {
			continue
		}
		groupID := "dup:" + personID

		for _, m := range members {
			key := "main"
			if m.treeParent != nil {
				key = m.treeParent.person.ID
				if !m.isAncestry {
					key = "parent=" + m.treeParent.person.ID + ";spouse=" + m.coParentID
				}
			}
			m.toggleID = groupID
			m.toggleKey = key
			m.duplicateCount = len(members)

			if v, ok := overrides[groupID+"|"+key]; ok {
				m.toggleValue = v
			} else {
				m.toggleValue = -clock()
			}
		}

		if onToggleOneCloseOthers {
			enforceOneOpen(members, clock)
		}

		for _, m := range members {
			if m.toggleValue < 0 {
				m.collapsedChildren = m.children
				m.children = nil
			}
		}
	}
}

// enforceOneOpen ensures exactly one member of a duplicate group is
// expanded: if every member defaulted closed, the first is forced open;
// if more than one is open, only the most-recently-opened one stays open.
func enforceOneOpen(members []*hNode, clock func() int64) {
	openIdx := -1
	var openVal int64
	for i, m := range members {
		if m.toggleValue > 0 && m.toggleValue > openVal {
			openVal = m.toggleValue
			openIdx = i
		}
	}
	if openIdx == -1 {
		members[0].toggleValue = clock()
		return
	}
	for i, m := range members {
		if i != openIdx && m.toggleValue > 0 {
			m.toggleValue = -m.toggleValue
		}
	}
}

// sortedGroupIDs is a small helper kept for deterministic test/debug
// iteration over duplicate groups.
func sortedGroupIDs(root *hNode) []string {
	seen := map[string]bool{}
	var walk func(n *hNode)
	walk = func(n *hNode) {
		if n.toggleID != "" {
			seen[n.toggleID] = true
		}
		for _, c := range n.children {
			walk(c)
		}
	}
	walk(root)
	out := make([]string, 0, len(seen))
	for k := range seen {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
