package model

import (
	"encoding/xml"
	"fmt"
	"math"
	"strings"
)

type slot struct {
	v   any
	set bool
}

// Node is one element of a document tree. Field values are held in
// slots indexed by field ID. Nodes are not safe for concurrent
// mutation.
//
// Accessors panic when given a field ID the node's type does not
// declare or a value of the wrong type: those are programming errors
// which the typed wrappers rule out.
type Node struct {
	reg    *Registry
	t      *TypeDescriptor
	slots  []slot
	parent *Node
	field  int
}

func newNode(r *Registry, t *TypeDescriptor) *Node {
	n := &Node{reg: r, t: t, slots: make([]slot, len(t.Fields)), field: -1}
	for i := range t.Fields {
		f := &t.Fields[i]
		switch {
		case f.Kind == ContainmentList:
			n.slots[i].v = &NodeList{owner: n, field: f}
		case f.Kind == ContainmentSingle, f.IsMany():
		default:
			n.slots[i].v = f.Default
		}
	}
	return n
}

// Registry returns the registry the node was created from.
func (n *Node) Registry() *Registry { return n.reg }

// Type returns the node's type descriptor.
func (n *Node) Type() *TypeDescriptor { return n.t }

// Kind returns the node's kind.
func (n *Node) Kind() Kind { return n.t.Kind }

// Parent returns the owning node, or nil for a detached node.
func (n *Node) Parent() *Node { return n.parent }

// ContainingField returns the parent's field holding n, or nil.
func (n *Node) ContainingField() *FieldDescriptor {
	if n.parent == nil {
		return nil
	}
	return &n.parent.t.Fields[n.field]
}

// ElementName returns the XML element name of n: the name of its
// containing field, or the document element name of a root node.
func (n *Node) ElementName() xml.Name {
	if f := n.ContainingField(); f != nil {
		return xml.Name{Space: f.Namespace, Local: f.Name}
	}
	if name, ok := n.reg.RootName(n.t.Kind); ok {
		return name
	}
	return xml.Name{Space: n.t.Namespace, Local: n.t.Name}
}

// Field returns the descriptor of field id.
func (n *Node) Field(id int) *FieldDescriptor {
	if id < 0 || id >= len(n.t.Fields) {
		panic(fmt.Sprintf("%s has no field %d", n.t.Name, id))
	}
	return &n.t.Fields[id]
}

func (n *Node) want(id int, kinds ...FieldKind) *FieldDescriptor {
	f := n.Field(id)
	for _, k := range kinds {
		if f.Kind == k {
			return f
		}
	}
	panic(fmt.Sprintf("%s.%s is a %s field", n.t.Name, f.Name, f.Kind))
}

// Get returns the value of field id: the scalar value, a Literal for
// enumerations, a copy of the values of multi-valued scalars, the
// child *Node (or nil) for single containments and the live *NodeList
// for list containments.
func (n *Node) Get(id int) any {
	f := n.Field(id)
	switch f.Kind {
	case Enum:
		lit, _ := f.Enum.GetByOrdinal(n.slots[id].v.(int))
		return lit
	case ContainmentSingle:
		if c := n.Child(id); c != nil {
			return c
		}
		return nil
	case ContainmentList:
		return n.slots[id].v
	}
	if f.IsMany() {
		return n.Values(id)
	}
	return n.slots[id].v
}

// Set assigns field id and marks it set. Integer fields accept any Go
// integer type whose value fits in an int64; enumerations accept an
// ordinal (int) or a Literal. Multi-valued scalars accept a slice of
// the field's value type. Single containments accept a *Node, a typed
// wrapper with a Node method, or nil to detach the child.
func (n *Node) Set(id int, v any) {
	f := n.Field(id)
	switch f.Kind {
	case ContainmentSingle:
		n.SetChild(id, childNode(f, v))
		return
	case ContainmentList:
		panic(fmt.Sprintf("%s.%s is a list; use List", n.t.Name, f.Name))
	case Enum:
		ord := enumOrdinal(f, v)
		n.slots[id] = slot{v: ord, set: true}
		return
	}
	if f.IsMany() {
		n.SetValues(id, toValues(f, v)...)
		return
	}
	n.slots[id] = slot{v: scalarValue(f, v), set: true}
}

// IsSet reports whether field id holds an explicitly assigned value.
// Multi-valued and containment fields are set when non-empty.
func (n *Node) IsSet(id int) bool {
	f := n.Field(id)
	switch {
	case f.Kind == ContainmentSingle:
		return n.slots[id].v != nil
	case f.Kind == ContainmentList:
		return n.slots[id].v.(*NodeList).Len() > 0
	case f.IsMany():
		vs, _ := n.slots[id].v.([]any)
		return len(vs) > 0
	}
	return n.slots[id].set
}

// Unset restores field id to its default and clears the set flag.
// Containments are emptied and their children detached.
func (n *Node) Unset(id int) {
	f := n.Field(id)
	switch {
	case f.Kind == ContainmentSingle:
		n.SetChild(id, nil)
	case f.Kind == ContainmentList:
		n.slots[id].v.(*NodeList).Clear()
	case f.IsMany():
		n.slots[id] = slot{}
	default:
		n.slots[id] = slot{v: f.Default}
	}
}

// String returns the value of a string or token field.
func (n *Node) String(id int) string {
	s, _ := n.scalar(id).(string)
	return s
}

// Bool returns the value of a boolean field.
func (n *Node) Bool(id int) bool {
	b, _ := n.scalar(id).(bool)
	return b
}

// Int returns the value of an integer field.
func (n *Node) Int(id int) int64 {
	i, _ := n.scalar(id).(int64)
	return i
}

// Enum returns the ordinal of an enumeration field.
func (n *Node) Enum(id int) int {
	n.want(id, Enum)
	return n.slots[id].v.(int)
}

func (n *Node) scalar(id int) any {
	if f := n.want(id, Scalar); f.IsMany() {
		panic(fmt.Sprintf("%s.%s is multi-valued", n.t.Name, f.Name))
	}
	return n.slots[id].v
}

// Values returns a copy of the values of a multi-valued scalar field.
func (n *Node) Values(id int) []any {
	n.want(id, Scalar)
	vs, _ := n.slots[id].v.([]any)
	return append([]any(nil), vs...)
}

// Strings returns the values of a multi-valued string field.
func (n *Node) Strings(id int) []string {
	var out []string
	for _, v := range n.Values(id) {
		out = append(out, v.(string))
	}
	return out
}

// Ints returns the values of a multi-valued integer field.
func (n *Node) Ints(id int) []int64 {
	var out []int64
	for _, v := range n.Values(id) {
		out = append(out, v.(int64))
	}
	return out
}

// SetValues replaces the values of a multi-valued scalar field.
func (n *Node) SetValues(id int, vs ...any) {
	f := n.want(id, Scalar)
	if !f.IsMany() {
		panic(fmt.Sprintf("%s.%s is single-valued", n.t.Name, f.Name))
	}
	var out []any
	for _, v := range vs {
		out = append(out, scalarValue(f, v))
	}
	n.slots[id] = slot{v: out, set: len(out) > 0}
}

// AddValue appends to a multi-valued scalar field.
func (n *Node) AddValue(id int, v any) {
	n.SetValues(id, append(n.Values(id), v)...)
}

// Child returns the child held by a single containment field, or nil.
func (n *Node) Child(id int) *Node {
	n.want(id, ContainmentSingle)
	c, _ := n.slots[id].v.(*Node)
	return c
}

// SetChild replaces the child of a single containment field. The
// previous child is detached; c is moved out of any other owner.
// Passing nil clears the field.
func (n *Node) SetChild(id int, c *Node) {
	f := n.want(id, ContainmentSingle)
	old := n.Child(id)
	if old == c {
		return
	}
	if c != nil {
		n.adopt(f, c)
	}
	if old != nil {
		old.parent, old.field = nil, -1
	}
	if c == nil {
		n.slots[id] = slot{}
		return
	}
	n.slots[id] = slot{v: c, set: true}
	c.parent, c.field = n, id
}

// List returns the live list of a list containment field.
func (n *Node) List(id int) *NodeList {
	n.want(id, ContainmentList)
	return n.slots[id].v.(*NodeList)
}

// adopt checks c may be placed in field f of n and detaches it from
// its current owner.
func (n *Node) adopt(f *FieldDescriptor, c *Node) {
	if !c.t.IsA(f.Elem) {
		panic(fmt.Sprintf("%s.%s cannot contain %s", n.t.Name, f.Name, c.t.Name))
	}
	for it := n; it != nil; it = it.parent {
		if it == c {
			panic(fmt.Sprintf("%s.%s: containment cycle", n.t.Name, f.Name))
		}
	}
	c.Detach()
}

// Detach removes n from its owner. It is a no-op for a root node.
func (n *Node) Detach() {
	p := n.parent
	if p == nil {
		return
	}
	switch f := &p.t.Fields[n.field]; f.Kind {
	case ContainmentSingle:
		p.SetChild(f.ID, nil)
	case ContainmentList:
		p.List(f.ID).Remove(n)
	}
}

// Root returns the top of n's tree.
func (n *Node) Root() *Node {
	for n.parent != nil {
		n = n.parent
	}
	return n
}

// Children returns the contained nodes in field order.
func (n *Node) Children() []*Node {
	var out []*Node
	for i := range n.t.Fields {
		switch n.t.Fields[i].Kind {
		case ContainmentSingle:
			if c := n.Child(i); c != nil {
				out = append(out, c)
			}
		case ContainmentList:
			out = append(out, n.List(i).items...)
		}
	}
	return out
}

// Walk calls fn for n and its descendants, depth first in field
// order. A non-nil error from fn stops the walk.
func (n *Node) Walk(fn func(*Node) error) error {
	if err := fn(n); err != nil {
		return err
	}
	for _, c := range n.Children() {
		if err := c.Walk(fn); err != nil {
			return err
		}
	}
	return nil
}

// Path returns the location of n in its tree, for example
// /operatorModel/cppOperatorModel/context/metrics/metric[2].
func (n *Node) Path() string {
	var steps []string
	for it := n; it != nil; it = it.parent {
		f := it.ContainingField()
		switch {
		case f == nil:
			name := it.t.Name
			if rn, ok := it.reg.RootName(it.t.Kind); ok {
				name = rn.Local
			}
			steps = append(steps, name)
		case f.Kind == ContainmentList:
			steps = append(steps, fmt.Sprintf("%s[%d]", f.Name, it.parent.List(f.ID).Index(it)+1))
		default:
			steps = append(steps, f.Name)
		}
	}
	var sb strings.Builder
	for i := len(steps) - 1; i >= 0; i-- {
		sb.WriteByte('/')
		sb.WriteString(steps[i])
	}
	return sb.String()
}

func enumOrdinal(f *FieldDescriptor, v any) int {
	var ord int
	switch v := v.(type) {
	case Literal:
		ord = v.Ordinal
	case int:
		ord = v
	case interface{ Ordinal() int }:
		ord = v.Ordinal()
	default:
		panic(fmt.Sprintf("field %s: %T is not a %s value", f.Name, v, f.Enum.name))
	}
	if _, ok := f.Enum.GetByOrdinal(ord); !ok {
		panic(fmt.Sprintf("field %s: ordinal %d out of range for %s", f.Name, ord, f.Enum.name))
	}
	return ord
}

func scalarValue(f *FieldDescriptor, v any) any {
	if f.Data.IsInteger() {
		switch i := v.(type) {
		case int:
			return int64(i)
		case int8:
			return int64(i)
		case int16:
			return int64(i)
		case int32:
			return int64(i)
		case int64:
			return i
		case uint8:
			return int64(i)
		case uint16:
			return int64(i)
		case uint32:
			return int64(i)
		case uint:
			return unsignedValue(f, uint64(i))
		case uint64:
			return unsignedValue(f, i)
		}
	} else if checkValue(f.Data, v) {
		return v
	}
	panic(fmt.Sprintf("field %s: %T is not a %s value", f.Name, v, f.Data))
}

func unsignedValue(f *FieldDescriptor, u uint64) int64 {
	if u > math.MaxInt64 {
		panic(fmt.Sprintf("field %s: %d overflows %s", f.Name, u, f.Data))
	}
	return int64(u)
}

func childNode(f *FieldDescriptor, v any) *Node {
	switch c := v.(type) {
	case nil:
		return nil
	case *Node:
		return c
	case interface{ Node() *Node }:
		return c.Node()
	}
	panic(fmt.Sprintf("field %s: %T is not a node value", f.Name, v))
}

func toValues(f *FieldDescriptor, v any) []any {
	switch vs := v.(type) {
	case []any:
		return vs
	case []string:
		out := make([]any, len(vs))
		for i, s := range vs {
			out[i] = s
		}
		return out
	case []int64:
		out := make([]any, len(vs))
		for i, s := range vs {
			out[i] = s
		}
		return out
	case []bool:
		out := make([]any, len(vs))
		for i, s := range vs {
			out[i] = s
		}
		return out
	}
	panic(fmt.Sprintf("field %s: %T is not a list of %s", f.Name, v, f.Data))
}
