// Spatial ordering of scraped text nodes

package chatgpt

import "sort"

// ScreenTextNode is one visible static-text element: its content and its
// vertical screen coordinate. A scrape batch carries nodes in whatever order
// the accessibility traversal happened to visit them.
type ScreenTextNode struct {
	Text string
	Y    float64
}

// OrderNodes returns the nodes sorted top-to-bottom by Y coordinate.
//
// The accessibility traversal order has no guaranteed relationship to visual
// or chronological order; vertical position is the only reliable proxy for
// "earlier in the conversation". The sort is stable so nodes sharing a Y
// coordinate keep their discovery order, and the input slice is not mutated.
func OrderNodes(nodes []ScreenTextNode) []ScreenTextNode {
	ordered := make([]ScreenTextNode, len(nodes))
	copy(ordered, nodes)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Y < ordered[j].Y
	})
	return ordered
}
