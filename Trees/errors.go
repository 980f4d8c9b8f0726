package Trees

import "fmt"

// NotFoundError is returned by Remove when the item isn't in the tree. The tree
// is left untouched in that case.
type NotFoundError[T any] struct {
	Item T
}

func (e *NotFoundError[T]) Error() string {
	return fmt.Sprintf("Trees: item %v not in tree", e.Item)
}
