package searcher

import "amazons/game"

// node is one position in the search tree. It owns its board snapshot
// and its children outright; the tree is strict (no back pointers), so
// traversal always runs root to leaf.
//
// A node starts as a leaf and is expanded at most once. Children keep
// their expansion order forever, which makes every tie-break and every
// aggregate sum deterministic.
type node struct {
	board    game.Board
	move     game.Move // move that produced this position; the root holds a self-move
	value    float64   // sum of signed static values over this subtree
	static   float64   // this position's own signed static value
	visits   int
	children []*node
}

func (n *node) leaf() bool {
	return len(n.children) == 0
}

// average is the exploitation-only score used for the final decision.
func (n *node) average() float64 {
	return n.value / float64(n.visits)
}

// aggregate recomputes an interior node's value and visit count from
// its children.
func (n *node) aggregate() {
	value := n.static
	visits := 1
	for _, child := range n.children {
		value += child.value
		visits += child.visits
	}
	n.value = value
	n.visits = visits
}
