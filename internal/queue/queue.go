// Package queue implements the FIFO queue used to linearize a tree into
// level-order. The queue holds borrowed references to tree nodes; it never
// owns them. Its internal wrapper items are created on Enqueue and discarded
// on Dequeue, so they never outlive a single traversal pass.
package queue

import (
	"errors"

	"github.com/holonoms/levelwalk/internal/tree"
)

// ErrEmptyQueue is returned by Dequeue when the queue holds no elements.
var ErrEmptyQueue = errors.New("dequeue from empty queue")

type item struct {
	node *tree.Node
	next *item
}

// Queue is a singly linked FIFO with O(1) enqueue at the tail and O(1)
// dequeue at the head. The zero value is not usable; call New.
type Queue struct {
	head *item
	tail *item
	size int
}

// New creates an empty queue.
func New() *Queue {
	return &Queue{}
}

// Enqueue appends n at the tail. An empty queue makes the new item both head
// and tail.
func (q *Queue) Enqueue(n *tree.Node) {
	it := &item{node: n}
	if q.tail == nil {
		q.head = it
		q.tail = it
	} else {
		q.tail.next = it
		q.tail = it
	}
	q.size++
}

// Dequeue removes the head and returns its tree node. Dequeuing the last
// element resets both head and tail; dequeuing an empty queue returns
// ErrEmptyQueue.
func (q *Queue) Dequeue() (*tree.Node, error) {
	if q.head == nil {
		return nil, ErrEmptyQueue
	}
	it := q.head
	if q.head == q.tail {
		q.head = nil
		q.tail = nil
	} else {
		q.head = it.next
	}
	it.next = nil
	q.size--
	return it.node, nil
}

// Len returns the number of elements currently queued.
func (q *Queue) Len() int {
	return q.size
}

// Empty reports whether the queue holds no elements.
func (q *Queue) Empty() bool {
	return q.head == nil
}
