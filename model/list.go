package model

import "fmt"

// NodeList is the live, ordered content of a list containment field.
// Nodes added to a list are moved out of their previous owner.
type NodeList struct {
	owner *Node
	field *FieldDescriptor
	items []*Node
}

// Owner returns the node holding the list.
func (l *NodeList) Owner() *Node { return l.owner }

// Field returns the containment field the list belongs to.
func (l *NodeList) Field() *FieldDescriptor { return l.field }

// Len returns the number of nodes in the list.
func (l *NodeList) Len() int { return len(l.items) }

// At returns the node at position i.
func (l *NodeList) At(i int) *Node { return l.items[i] }

// All returns a copy of the list content.
func (l *NodeList) All() []*Node { return append([]*Node(nil), l.items...) }

// Index returns the position of c, or -1.
func (l *NodeList) Index(c *Node) int {
	for i, it := range l.items {
		if it == c {
			return i
		}
	}
	return -1
}

// Append adds nodes to the end of the list.
func (l *NodeList) Append(cs ...*Node) {
	for _, c := range cs {
		l.Insert(len(l.items), c)
	}
}

// Insert places c at position i. A node already in the list is moved.
func (l *NodeList) Insert(i int, c *Node) {
	if c == nil {
		panic(fmt.Sprintf("%s.%s: nil node", l.owner.t.Name, l.field.Name))
	}
	l.owner.adopt(l.field, c)
	if i > len(l.items) {
		i = len(l.items)
	}
	if i < 0 {
		i = 0
	}
	l.items = append(l.items, nil)
	copy(l.items[i+1:], l.items[i:])
	l.items[i] = c
	c.parent, c.field = l.owner, l.field.ID
}

// Remove removes c from the list and reports whether it was present.
func (l *NodeList) Remove(c *Node) bool {
	i := l.Index(c)
	if i < 0 {
		return false
	}
	l.RemoveAt(i)
	return true
}

// RemoveAt removes and returns the node at position i.
func (l *NodeList) RemoveAt(i int) *Node {
	c := l.items[i]
	l.items = append(l.items[:i], l.items[i+1:]...)
	c.parent, c.field = nil, -1
	return c
}

// Clear detaches every node from the list.
func (l *NodeList) Clear() {
	for _, c := range l.items {
		c.parent, c.field = nil, -1
	}
	l.items = nil
}

// List is a typed view of a NodeList.
type List[T any] struct {
	nodes  *NodeList
	wrap   func(*Node) T
	unwrap func(T) *Node
}

// NewList returns a typed view of l.
func NewList[T any](l *NodeList, wrap func(*Node) T, unwrap func(T) *Node) List[T] {
	return List[T]{nodes: l, wrap: wrap, unwrap: unwrap}
}

// Nodes returns the underlying NodeList.
func (l List[T]) Nodes() *NodeList { return l.nodes }

// Len returns the number of elements.
func (l List[T]) Len() int { return l.nodes.Len() }

// At returns the element at position i.
func (l List[T]) At(i int) T { return l.wrap(l.nodes.At(i)) }

// All returns a copy of the elements.
func (l List[T]) All() []T {
	out := make([]T, 0, l.nodes.Len())
	for _, n := range l.nodes.items {
		out = append(out, l.wrap(n))
	}
	return out
}

// Append adds elements to the end of the list.
func (l List[T]) Append(vs ...T) {
	for _, v := range vs {
		l.nodes.Append(l.unwrap(v))
	}
}

// Insert places v at position i.
func (l List[T]) Insert(i int, v T) { l.nodes.Insert(i, l.unwrap(v)) }

// Remove removes v and reports whether it was present.
func (l List[T]) Remove(v T) bool { return l.nodes.Remove(l.unwrap(v)) }

// RemoveAt removes and returns the element at position i.
func (l List[T]) RemoveAt(i int) T { return l.wrap(l.nodes.RemoveAt(i)) }

// Clear empties the list.
func (l List[T]) Clear() { l.nodes.Clear() }
