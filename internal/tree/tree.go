// Package tree defines the in-memory tree that mirrors a scanned directory
// hierarchy. Each node records the absolute path of one filesystem entry and
// its depth; a node's children form an ordered, append-only list linked
// through the children's NextSibling pointers, preserving the order entries
// were read from the underlying directory.
package tree

// ChildList is the ordered collection of a node's direct children. First and
// Last are either both set or both nil; the children in between are reached by
// following NextSibling from First.
type ChildList struct {
	First *Node
	Last  *Node
}

// Node is a single entry in the tree. The root has Level 1 and no sibling;
// every other node is owned by exactly one parent through that parent's
// child list, and its Level is the parent's Level plus one.
type Node struct {
	Path        string
	Level       int
	NextSibling *Node
	Children    ChildList
}

// New creates a node with an empty child list and no sibling.
func New(path string, level int) *Node {
	return &Node{Path: path, Level: level}
}

// AppendChild appends child to n's child list in O(1), linking it as the
// next sibling of the previous last child. Callers construct each child
// fresh exactly once, so no duplicate checking is done here.
func (n *Node) AppendChild(child *Node) {
	if n.Children.First == nil {
		n.Children.First = child
		n.Children.Last = child
		return
	}
	n.Children.Last.NextSibling = child
	n.Children.Last = child
}

// Count returns the number of nodes in the subtree rooted at n, including n
// itself. A nil node counts as zero.
func (n *Node) Count() int {
	if n == nil {
		return 0
	}
	count := 1
	for child := n.Children.First; child != nil; child = child.NextSibling {
		count += child.Count()
	}
	return count
}

// Release unlinks the entire structure reachable from n: first the child
// subtree, then the sibling chain, then n's own references. After a call on
// the tree's root no node can reach any other, so the whole graph is
// collectable even while a caller still holds individual node pointers.
// Safe to call on a nil node, and calling it twice is a no-op the second
// time.
func (n *Node) Release() {
	if n == nil {
		return
	}
	n.Children.First.Release()
	n.NextSibling.Release()
	n.Children = ChildList{}
	n.NextSibling = nil
	n.Path = ""
}
