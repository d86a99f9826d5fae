package model

import (
	"encoding/xml"
	"fmt"
)

// Builder assembles a Registry. Type kinds must be declared in order,
// starting at 0. Build panics on an inconsistent table, since tables
// are static program data.
type Builder struct {
	name  string
	types []*TypeDescriptor
	enums []*EnumType
	roots []root
}

type root struct {
	name xml.Name
	kind Kind
}

// NewBuilder returns an empty Builder for a registry called name.
func NewBuilder(name string) *Builder { return &Builder{name: name} }

// Enum registers enumerations.
func (b *Builder) Enum(enums ...*EnumType) *Builder {
	b.enums = append(b.enums, enums...)
	return b
}

// Type declares a node type. Element fields without a namespace take
// the type's namespace.
func (b *Builder) Type(kind Kind, name, namespace string, fields ...FieldDescriptor) *Builder {
	b.add(&TypeDescriptor{Kind: kind, Name: name, Namespace: namespace}, fields)
	return b
}

// Extend declares a node type deriving from super. The inherited
// fields come first, so fields must be numbered from len(super.Fields).
func (b *Builder) Extend(kind Kind, name string, super Kind, fields ...FieldDescriptor) *Builder {
	st := b.get(super)
	t := &TypeDescriptor{Kind: kind, Name: name, Namespace: st.Namespace, Super: st}
	b.add(t, append(append([]FieldDescriptor(nil), st.Fields...), fields...))
	return b
}

// Choice declares that exactly one of the named fields of kind must
// be present.
func (b *Builder) Choice(kind Kind, fieldIDs ...int) *Builder {
	t := b.get(kind)
	t.Choices = append(t.Choices, fieldIDs)
	return b
}

// Root declares a document element for kind.
func (b *Builder) Root(local, namespace string, kind Kind) *Builder {
	b.get(kind)
	b.roots = append(b.roots, root{name: xml.Name{Space: namespace, Local: local}, kind: kind})
	return b
}

func (b *Builder) get(k Kind) *TypeDescriptor {
	if k < 0 || int(k) >= len(b.types) {
		panic(fmt.Sprintf("registry %s: kind %d is not declared", b.name, int(k)))
	}
	return b.types[k]
}

func (b *Builder) add(t *TypeDescriptor, fields []FieldDescriptor) {
	if int(t.Kind) != len(b.types) {
		panic(fmt.Sprintf("registry %s: type %s declared as kind %d, want %d", b.name, t.Name, int(t.Kind), len(b.types)))
	}
	t.Fields = fields
	t.byName = make(map[string]int, len(fields))
	for i := range t.Fields {
		f := &t.Fields[i]
		if f.Form == Element && f.Namespace == "" {
			f.Namespace = t.Namespace
		}
		t.byName[f.Name] = i
	}
	b.types = append(b.types, t)
}

// Build checks the declared tables and returns the Registry.
func (b *Builder) Build() *Registry {
	r := &Registry{
		name:   b.name,
		types:  b.types,
		byName: make(map[string]*TypeDescriptor, len(b.types)),
		enums:  b.enums,
		roots:  make(map[xml.Name]Kind, len(b.roots)),
		rootOf: make(map[Kind]xml.Name, len(b.roots)),
	}
	enums := map[*EnumType]bool{}
	for _, e := range b.enums {
		enums[e] = true
	}
	for _, t := range b.types {
		if _, dup := r.byName[t.Name]; dup {
			panic(fmt.Sprintf("registry %s: duplicate type %s", b.name, t.Name))
		}
		r.byName[t.Name] = t
		if len(t.byName) != len(t.Fields) {
			panic(fmt.Sprintf("registry %s: type %s has duplicate field names", b.name, t.Name))
		}
		text := 0
		for i := range t.Fields {
			f := &t.Fields[i]
			if err := b.checkField(f, i, enums); err != nil {
				panic(fmt.Sprintf("registry %s: type %s: %v", b.name, t.Name, err))
			}
			if f.Form == Text {
				text++
			}
		}
		if text > 1 {
			panic(fmt.Sprintf("registry %s: type %s has %d content fields", b.name, t.Name, text))
		}
		for _, group := range t.Choices {
			for _, id := range group {
				if id < 0 || id >= len(t.Fields) {
					panic(fmt.Sprintf("registry %s: type %s: choice names unknown field %d", b.name, t.Name, id))
				}
			}
		}
	}
	for _, rt := range b.roots {
		r.roots[rt.name] = rt.kind
		r.rootOf[rt.kind] = rt.name
	}
	return r
}

func (b *Builder) checkField(f *FieldDescriptor, pos int, enums map[*EnumType]bool) error {
	if f.ID != pos {
		return fmt.Errorf("field %s has id %d at position %d", f.Name, f.ID, pos)
	}
	if f.Upper != Unbounded && f.Upper < f.Lower {
		return fmt.Errorf("field %s has upper bound below lower bound", f.Name)
	}
	switch f.Kind {
	case Scalar:
		if f.IsMany() {
			if f.Unsettable || f.Form != Element {
				return fmt.Errorf("multi-valued field %s must be a plain element", f.Name)
			}
			return nil
		}
		if f.Default == nil {
			f.Default = zero(f.Data)
		}
		if !checkValue(f.Data, f.Default) {
			return fmt.Errorf("field %s default %v is not a %s", f.Name, f.Default, f.Data)
		}
	case Enum:
		if f.Enum == nil || !enums[f.Enum] {
			return fmt.Errorf("field %s uses an unregistered enumeration", f.Name)
		}
		if f.Default == nil {
			f.Default = 0
		}
		ord, ok := f.Default.(int)
		if _, valid := f.Enum.GetByOrdinal(ord); !ok || !valid {
			return fmt.Errorf("field %s default %v is not a %s ordinal", f.Name, f.Default, f.Enum.name)
		}
	case ContainmentSingle, ContainmentList:
		if f.Elem < 0 || int(f.Elem) >= len(b.types) {
			return fmt.Errorf("field %s contains undeclared kind %d", f.Name, int(f.Elem))
		}
		if f.Unsettable || f.Form != Element {
			return fmt.Errorf("containment %s must be a plain element", f.Name)
		}
	default:
		return fmt.Errorf("field %s has invalid kind %v", f.Name, f.Kind)
	}
	return nil
}

func zero(d DataType) any {
	switch {
	case d == Boolean:
		return false
	case d.IsInteger():
		return int64(0)
	}
	return ""
}

func checkValue(d DataType, v any) bool {
	switch v.(type) {
	case string:
		return d == String || d == Token
	case bool:
		return d == Boolean
	case int64:
		return d.IsInteger()
	}
	return false
}
