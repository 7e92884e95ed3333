// Package levelorder turns a tree into its breadth-first listing: every node
// at depth d precedes every node at depth d+1, with sibling order preserved
// within a depth.
package levelorder

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/holonoms/levelwalk/internal/queue"
	"github.com/holonoms/levelwalk/internal/tree"
)

// Linearize returns a queue holding every node reachable from root in
// level-order. It runs the classic two-queue BFS: the work queue holds nodes
// discovered but not yet visited, in visiting order; each visited node goes
// to the output queue and its children (in child order) to the work queue.
// Each node has exactly one parent, so it enters the work queue exactly once
// and the loop terminates on a finite tree.
func Linearize(root *tree.Node) *queue.Queue {
	out := queue.New()
	if root == nil {
		return out
	}

	work := queue.New()
	current := root
	for current != nil {
		out.Enqueue(current)
		for child := current.Children.First; child != nil; child = child.NextSibling {
			work.Enqueue(child)
		}
		next, err := work.Dequeue()
		if err != nil {
			// Work queue drained: every discovered node has been visited.
			break
		}
		current = next
	}

	return out
}

// Print drains q in FIFO order and writes one "level:ordinal:path" line per
// node to w. The ordinal is the node's 1-based rank within its level; levels
// arrive in non-decreasing order from Linearize, so the ordinal simply resets
// whenever the level changes. Returns the number of lines written.
func Print(q *queue.Queue, w io.Writer) (int, error) {
	bw := bufio.NewWriter(w)
	ordinal := 0
	prevLevel := 0
	lines := 0

	for {
		node, err := q.Dequeue()
		if err != nil {
			if errors.Is(err, queue.ErrEmptyQueue) {
				break
			}
			return lines, err
		}

		if node.Level != prevLevel {
			ordinal = 0
		}
		ordinal++

		if _, err := fmt.Fprintf(bw, "%d:%d:%s\n", node.Level, ordinal, node.Path); err != nil {
			return lines, err
		}
		prevLevel = node.Level
		lines++
	}

	if err := bw.Flush(); err != nil {
		return lines, err
	}
	return lines, nil
}
