package layout

import "github.com/lesfleursdelanuitdev/famtree/types"

// contourEntry is one sample of a subtree's horizontal silhouette: the
// x coordinate of whichever node bounds the subtree at a given depth.
type contourEntry struct {
	x    float64
	node *hNode
}

// tidyLayout assigns an x coordinate to every node in the subtree rooted
// at root, using a Reingold-Tilford-style contour merge (spec §4.2 step
// 7): children are laid out recursively first, then placed left to
// right such that no two subtrees' contours violate separation() at any
// shared depth, and a parent is centered over its first and last child.
func tidyLayout(root *hNode, g *types.PersonGraph, cfg *Config) {
	layoutSubtree(root, g, cfg)
}

func layoutSubtree(node *hNode, g *types.PersonGraph, cfg *Config) (left, right []contourEntry) {
	if len(node.children) == 0 {
		node.x = 0
		e := contourEntry{x: 0, node: node}
		return []contourEntry{e}, []contourEntry{e}
	}

	childContours := make([][2][]contourEntry, len(node.children))
	for i, c := range node.children {
		l, r := layoutSubtree(c, g, cfg)
		childContours[i] = [2][]contourEntry{l, r}
	}

	mergedRight := append([]contourEntry{}, childContours[0][1]...)
	for i := 1; i < len(node.children); i++ {
		leftI := childContours[i][0]

		shift := 0.0
		for d := 0; d < len(mergedRight) && d < len(leftI); d++ {
			sep := separation(mergedRight[d].node, leftI[d].node, g, cfg)
			needed := mergedRight[d].x + sep - leftI[d].x
			if needed > shift {
				shift = needed
			}
		}

		shiftSubtreeX(node.children[i], shift)

		for d, entry := range childContours[i][1] {
			v := contourEntry{x: entry.x + shift, node: entry.node}
			if d < len(mergedRight) {
				if v.x > mergedRight[d].x {
					mergedRight[d] = v
				}
			} else {
				mergedRight = append(mergedRight, v)
			}
		}
	}

	first, last := node.children[0], node.children[len(node.children)-1]
	node.x = (first.x + last.x) / 2

	left = append([]contourEntry{{x: node.x, node: node}}, childContours[0][0]...)
	right = append([]contourEntry{{x: node.x, node: node}}, mergedRight...)
	return left, right
}

// shiftSubtreeX translates node and every descendant by delta.
func shiftSubtreeX(node *hNode, delta float64) {
	node.x += delta
	for _, c := range node.children {
		shiftSubtreeX(c, delta)
	}
}
