package Trees

import "math/bits"

// Rebalance [OrderedTree.Rebalance]
// The old nodes are all dropped and a new tree of height ceil(log2(n+1))-1 is
// built from the sorted values. Non-recursive.
// Time: O(n); Space: O(n)
func (u *LinkedBST[T]) Rebalance() {
	u.root = build(u.InOrder())
}

// build a tree of minimal height from vs, which must be sorted. The middle
// element vs[len(vs)/2] of every piece becomes the root of its subtree. Pieces
// of at most 3 elements get their remaining elements attached directly as
// the left child, then the right child.
func build[T any](vs []T) (root *node[T]) {
	if len(vs) == 0 {
		return
	}
	st := make([]span[T], 0, bits.Len(uint(len(vs)))+1)
	for st = append(st, span[T]{0, len(vs), &root}); len(st) > 0; {
		top := st[len(st)-1]
		st = st[:len(st)-1]
		mid := top.lo + (top.hi-top.lo)>>1
		n := &node[T]{v: vs[mid]}
		*top.slot = n
		switch top.hi - top.lo {
		case 1:
		case 2:
			n.l = &node[T]{v: vs[top.lo]}
		case 3:
			n.l, n.r = &node[T]{v: vs[top.lo]}, &node[T]{v: vs[top.hi-1]}
		default:
			st = append(st, span[T]{top.lo, mid, &n.l}, span[T]{mid + 1, top.hi, &n.r})
		}
	}
	return
}
