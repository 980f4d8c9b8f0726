package Trees

import (
	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/yurevych2/binary-search-tree/Queues"
)

// PreOrder [OrderedTree.PreOrder]
// Every call starts a new traversal from the root. Nodes waiting to be visited
// are kept on an explicit stack, the right child pushed before the left one.
// Time: f(): O(1) at each call to the returned function. Space: O(D)
func (u *LinkedBST[T]) PreOrder() func() (T, bool) {
	st := arraystack.New()
	if u.root != nil {
		st.Push(u.root)
	}
	return func() (v T, has bool) {
		top, ok := st.Pop()
		if !ok {
			return
		}
		cur := top.(*node[T])
		if cur.r != nil {
			st.Push(cur.r)
		}
		if cur.l != nil {
			st.Push(cur.l)
		}
		return cur.v, true
	}
}

// scan feeds f every value in preorder.
func (u *LinkedBST[T]) scan(f func(T)) {
	for next := u.PreOrder(); ; {
		v, ok := next()
		if !ok {
			return
		}
		f(v)
	}
}

// Ascend calls f on the values in ascending order until f returns false.
// Time: O(n); Space: O(D)
func (u *LinkedBST[T]) Ascend(f func(T) bool) {
	var st []*node[T]
	for cur := u.root; cur != nil; cur = cur.l {
		st = append(st, cur)
	}
	for len(st) > 0 {
		cur := st[len(st)-1]
		st = st[:len(st)-1]
		if !f(cur.v) {
			return
		}
		for cur = cur.r; cur != nil; cur = cur.l {
			st = append(st, cur)
		}
	}
}

// InOrder [OrderedTree.InOrder]
// Time: O(n); Space: O(n)
func (u *LinkedBST[T]) InOrder() []T {
	s := make([]T, 0, u.sz)
	u.Ascend(func(v T) bool {
		s = append(s, v)
		return true
	})
	return s
}

// LevelOrder returns a closure like PreOrder that gives the values level by
// level from the root, left to right within a level.
// Time: f(): O(1) at each call to the returned function. Space: O(width)
func (u *LinkedBST[T]) LevelOrder() func() (T, bool) {
	q := Queues.MakeArrayQueue[*node[T]](0)
	if u.root != nil {
		q.Push(u.root)
	}
	return func() (v T, has bool) {
		cur, err := q.Pop()
		if err != nil {
			return
		}
		if cur.l != nil {
			q.Push(cur.l)
		}
		if cur.r != nil {
			q.Push(cur.r)
		}
		return cur.v, true
	}
}

// levels counts the levels of the subtree rooted at n, 0 if n is nil.
func levels[T any](n *node[T]) (d int) {
	if n == nil {
		return
	}
	q := Queues.MakeArrayQueue[*node[T]](16)
	for q.Push(n); !q.Empty(); d++ {
		for w := q.Size(); w > 0; w-- {
			cur, _ := q.Pop()
			if cur.l != nil {
				q.Push(cur.l)
			}
			if cur.r != nil {
				q.Push(cur.r)
			}
		}
	}
	return
}
