package Trees

import (
	"cmp"
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/emirpasic/gods/utils"
)

var _ OrderedTree[int] = (*LinkedBST[int])(nil)

// LinkedBST is a binary search tree made of linked nodes without parent
// pointers. For every node, values in the left subtree compare less than the
// node's value and values in the right subtree compare greater or equal, so
// equal values are all kept and a later one lands to the right of an earlier one.
// The tree never balances itself; call Rebalance for that. D below is the
// height of the tree, which can be as large as Size()-1.
// LinkedBST isn't safe for concurrent use.
type LinkedBST[T any] struct {
	root    *node[T]
	sz      int
	compare func(a, b T) int
}

// New returns an empty tree ordered by cmp.Compare.
func New[T cmp.Ordered]() *LinkedBST[T] {
	return &LinkedBST[T]{compare: cmp.Compare[T]}
}

// NewFunc returns an empty tree ordered by compare, which must define a total
// order: negative when a<b, 0 when a==b and positive when a>b.
func NewFunc[T any](compare func(a, b T) int) *LinkedBST[T] {
	return &LinkedBST[T]{compare: compare}
}

// NewWith returns an empty tree ordered by a gods comparator, such as
// utils.StringComparator. c is only ever called with values of type T.
func NewWith[T any](c utils.Comparator) *LinkedBST[T] {
	return NewFunc(func(a, b T) int {
		return c(a, b)
	})
}

// From returns a tree with items added in the given order.
func From[T cmp.Ordered](items ...T) *LinkedBST[T] {
	u := New[T]()
	for _, v := range items {
		u.Add(v)
	}
	return u
}

// Size returns the number of values in the tree.
// Time: O(1); Space: O(1)
func (u *LinkedBST[T]) Size() int {
	return u.sz
}

func (u *LinkedBST[T]) Empty() bool {
	return u.sz == 0
}

// Add [OrderedTree.Add]
// Time: O(D); Space: O(1)
func (u *LinkedBST[T]) Add(v T) {
	slot := &u.root
	for *slot != nil {
		if u.compare(v, (*slot).v) < 0 {
			slot = &(*slot).l
		} else {
			slot = &(*slot).r
		}
	}
	*slot = &node[T]{v: v}
	u.sz++
}

// find the first node on the search path whose value equals v.
func (u *LinkedBST[T]) find(v T) *node[T] {
	for cur := u.root; cur != nil; {
		if c := u.compare(v, cur.v); c < 0 {
			cur = cur.l
		} else if c > 0 {
			cur = cur.r
		} else {
			return cur
		}
	}
	return nil
}

// Find [OrderedTree.Find]
// Time: O(D); Space: O(1)
func (u *LinkedBST[T]) Find(v T) (T, bool) {
	if n := u.find(v); n != nil {
		return n.v, true
	}
	return *new(T), false
}

// Contains [OrderedTree.Contains]
// Time: O(D); Space: O(1)
func (u *LinkedBST[T]) Contains(v T) bool {
	return u.find(v) != nil
}

// Replace [OrderedTree.Replace]
// The value is overwritten in place without moving the node, so an nv that
// doesn't order like v corrupts the tree (see Corrupt).
// Time: O(D); Space: O(1)
func (u *LinkedBST[T]) Replace(v, nv T) (T, bool) {
	if n := u.find(v); n != nil {
		old := n.v
		n.v = nv
		return old, true
	}
	return *new(T), false
}

// Remove [OrderedTree.Remove]
// Removing from an empty tree does nothing and returns (zero value, nil).
// A node with two children keeps its place and takes over the greatest value
// of its left subtree, whose node is unlinked instead.
// Time: O(D); Space: O(1)
func (u *LinkedBST[T]) Remove(v T) (T, error) {
	if u.root == nil {
		return *new(T), nil
	}
	if !u.Contains(v) {
		return *new(T), &NotFoundError[T]{v}
	}
	// preRoot stands above the root so that removing the root is like removing any left child.
	preRoot := node[T]{l: u.root}
	parent, left, cur := &preRoot, true, u.root
	for c := u.compare(v, cur.v); c != 0; c = u.compare(v, cur.v) {
		parent = cur
		if left = c < 0; left {
			cur = cur.l
		} else {
			cur = cur.r
		}
	}
	removed := cur.v
	if cur.l != nil && cur.r != nil {
		liftMaxLeft(cur)
	} else {
		child := cur.r
		if cur.l != nil {
			child = cur.l
		}
		if left {
			parent.l = child
		} else {
			parent.r = child
		}
	}
	if u.sz--; u.sz == 0 {
		u.root = nil
	} else {
		u.root = preRoot.l
	}
	return removed, nil
}

// Clear [OrderedTree.Clear]
// Time: O(1)
func (u *LinkedBST[T]) Clear() {
	u.root, u.sz = nil, 0
}

// Minimum value of the tree.
// Time: O(D); Space: O(1)
func (u *LinkedBST[T]) Minimum() (T, bool) {
	cur := u.root
	if cur == nil {
		return *new(T), false
	}
	for cur.l != nil {
		cur = cur.l
	}
	return cur.v, true
}

// Maximum value of the tree.
// Time: O(D); Space: O(1)
func (u *LinkedBST[T]) Maximum() (T, bool) {
	cur := u.root
	if cur == nil {
		return *new(T), false
	}
	for cur.r != nil {
		cur = cur.r
	}
	return cur.v, true
}

// Height [OrderedTree.Height]
// Counts the levels of a level-order sweep.
// Time: O(n); Space: O(width)
func (u *LinkedBST[T]) Height() int {
	return levels(u.root) - 1
}

// IsBalanced [OrderedTree.IsBalanced]
// This is a loose bound rather than the AVL condition; an empty tree isn't balanced.
// Time: O(n)
func (u *LinkedBST[T]) IsBalanced() bool {
	n := 0
	u.scan(func(T) {
		n++
	})
	return float64(u.Height()) < 2*math.Log2(float64(n+1))-1
}

// RangeFind [OrderedTree.RangeFind]
// Every node is visited, the tree order isn't used to prune.
// Time: O(n+m*log(m)) where m is the length of the result.
func (u *LinkedBST[T]) RangeFind(low, high T) []T {
	var s []T
	u.scan(func(v T) {
		if u.compare(low, v) <= 0 && u.compare(v, high) <= 0 {
			s = append(s, v)
		}
	})
	slices.SortFunc(s, u.compare)
	return s
}

// Successor [OrderedTree.Successor]
// Found by scanning all values.
// Time: O(n)
func (u *LinkedBST[T]) Successor(v T) (s T, found bool) {
	u.scan(func(c T) {
		if u.compare(c, v) > 0 && (!found || u.compare(c, s) < 0) {
			s, found = c, true
		}
	})
	return
}

// Predecessor [OrderedTree.Predecessor]
// Found by scanning all values.
// Time: O(n)
func (u *LinkedBST[T]) Predecessor(v T) (p T, found bool) {
	u.scan(func(c T) {
		if u.compare(c, v) < 0 && (!found || u.compare(c, p) > 0) {
			p, found = c, true
		}
	})
	return
}

// String renders the tree rotated 90 degrees counterclockwise: one value per
// line, right subtree above its parent, indented by "| " for each level.
func (u *LinkedBST[T]) String() string {
	var b strings.Builder
	var st []depthNode[T]
	pushRight := func(n *node[T], d int) {
		for ; n != nil; n, d = n.r, d+1 {
			st = append(st, depthNode[T]{n, d})
		}
	}
	for pushRight(u.root, 0); len(st) > 0; {
		top := st[len(st)-1]
		st = st[:len(st)-1]
		b.WriteString(strings.Repeat("| ", top.d))
		fmt.Fprintln(&b, top.n.v)
		pushRight(top.n.l, top.d+1)
	}
	return b.String()
}

// Corrupt reports whether some value is out of order, which can only happen
// after a misused Replace, or the size doesn't match the nodes. Equal values on
// both sides of a node aren't a violation: removing a node with two children
// can leave a copy of the lifted value in its left subtree.
// Time: O(n)
func (u *LinkedBST[T]) Corrupt() bool {
	count := 0
	st := []bounded[T]{{n: u.root}}
	for len(st) > 0 {
		top := st[len(st)-1]
		st = st[:len(st)-1]
		if top.n == nil {
			continue
		}
		count++
		if (top.lo != nil && u.compare(top.n.v, *top.lo) < 0) || (top.hi != nil && u.compare(top.n.v, *top.hi) > 0) {
			return true
		}
		st = append(st, bounded[T]{top.n.l, top.lo, &top.n.v}, bounded[T]{top.n.r, &top.n.v, top.hi})
	}
	return count != u.sz
}
