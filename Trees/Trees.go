package Trees

// OrderedTree is a container that keeps its values ordered by a total order
// and is backed by a binary search tree.
// Receivers that have a bool as a second return value use it to tell whether
// the first return value is defined; when it's false the first value is the
// zero value of T and shouldn't be used.
// Methods implemented recursively should be noted, otherwise they are
// implemented iteratively.
type OrderedTree[T any] interface {
	//Add v to the tree. Equal values are all kept.
	Add(v T)
	//Remove one value equal to v, returning the removed value.
	//Fails with *NotFoundError when v isn't in a non-empty tree.
	Remove(v T) (T, error)
	//Find the stored value equal to v.
	Find(v T) (T, bool)
	//Contains a value equal to v.
	Contains(v T) bool
	//Replace the stored value equal to v with nv, returning the old one.
	//The caller must make sure nv orders like v does relative to the other values.
	Replace(v, nv T) (T, bool)
	//Clear removes everything.
	Clear()
	//Size of the tree.
	Size() int
	//Height is the number of edges on the longest root to leaf path, -1 if empty.
	Height() int
	//IsBalanced reports whether the height is within 2*log2(n+1)-1.
	IsBalanced() bool
	//RangeFind all values x with low<=x<=high, in ascending order.
	RangeFind(low, high T) []T
	//Rebalance rebuilds the tree to the minimal height.
	Rebalance()
	//Successor returns the smallest value greater than v.
	Successor(v T) (T, bool)
	//Predecessor returns the greatest value less than v.
	Predecessor(v T) (T, bool)
	//PreOrder returns a closure f acting like an iterator over the values
	//in preorder. val, valid=f(); val is meaningful only if valid is true.
	//valid can't turn true after it first became false. The tree mustn't
	//be modified while f is in use.
	PreOrder() func() (T, bool)
	//InOrder returns all values in ascending order.
	InOrder() []T
}
