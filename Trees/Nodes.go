package Trees

// A node in the LinkedBST. Children are owned by their parent only.
type node[T any] struct {
	v    T
	l, r *node[T]
}

// liftMaxLeft replaces the value of top with the maximum value in its left
// subtree and unlinks the node that held it. That node is the rightmost one,
// so only its left child needs to be kept.
// top.l mustn't be nil.
// Time: O(D); Space: O(1)
func liftMaxLeft[T any](top *node[T]) {
	parent, cur := top, top.l
	for cur.r != nil {
		parent, cur = cur, cur.r
	}
	top.v = cur.v
	if parent == top {
		top.l = cur.l
	} else {
		parent.r = cur.l
	}
}

// depthNode is a node paired with its depth, used by the explicit stacks of
// traversals that need the level.
type depthNode[T any] struct {
	n *node[T]
	d int
}

// span is a pending piece of work when building a tree from a sorted slice:
// vs[lo:hi] is to become the subtree stored at *slot.
type span[T any] struct {
	lo, hi int
	slot   **node[T]
}

// bounded is a node together with the closed range its value must lie in,
// used when verifying the ordering. nil means unbounded.
type bounded[T any] struct {
	n      *node[T]
	lo, hi *T
}
