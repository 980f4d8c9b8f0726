package Queues

var _ Queue[int] = (*ArrayQueue[int])(nil)

// ArrayQueue is a Queue backed by a circular slice that grows when full.
// The zero value is an empty queue ready to use.
type ArrayQueue[T any] struct {
	head, sz int
	content  []T
}

func MakeArrayQueue[T any](initCap int) *ArrayQueue[T] {
	return &ArrayQueue[T]{content: make([]T, initCap)}
}

func (u *ArrayQueue[T]) Empty() bool {
	return u.sz == 0
}

func (u *ArrayQueue[T]) Size() int {
	return u.sz
}

// resize moves the content to a new slice of length newLen, head ends up at 0.
// newLen>=u.sz.
func (u *ArrayQueue[T]) resize(newLen int) {
	nc := make([]T, newLen)
	if n := copy(nc, u.content[u.head:min(u.head+u.sz, len(u.content))]); n < u.sz {
		copy(nc[n:], u.content[:u.sz-n])
	}
	u.content, u.head = nc, 0
}

// Clear the queue, keeping its capacity. Elements are zeroed so they can be collected.
func (u *ArrayQueue[T]) Clear() {
	clear(u.content)
	u.head, u.sz = 0, 0
}

// Push item to the tail.
// Time: amortized O(1)
func (u *ArrayQueue[T]) Push(item T) {
	if u.sz == len(u.content) {
		u.resize(max(u.sz*3/2, u.sz+4))
	}
	u.content[(u.head+u.sz)%len(u.content)] = item
	u.sz++
}

// Pop the item at the head.
// Time: O(1)
func (u *ArrayQueue[T]) Pop() (T, error) {
	if u.Empty() {
		return *new(T), &EmptyQueueError{}
	}
	t := u.content[u.head]
	u.content[u.head] = *new(T)
	u.head = (u.head + 1) % len(u.content)
	u.sz--
	return t, nil
}

func (u *ArrayQueue[T]) Peek() (T, bool) {
	if u.Empty() {
		return *new(T), false
	}
	return u.content[u.head], true
}
