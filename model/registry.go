package model

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"encoding/xml"
	"fmt"

	"github.com/gowebpki/jcs"
	"github.com/pkg/errors"
)

// Registry is a read-only table of node type and enumeration
// descriptors. Registries are built with a Builder and never change
// afterwards, so they may be shared between goroutines.
type Registry struct {
	name   string
	types  []*TypeDescriptor
	byName map[string]*TypeDescriptor
	enums  []*EnumType
	roots  map[xml.Name]Kind
	rootOf map[Kind]xml.Name
}

// Name returns the registry's name.
func (r *Registry) Name() string { return r.name }

// Describe returns the descriptor of kind k. It panics if k was not
// registered.
func (r *Registry) Describe(k Kind) *TypeDescriptor {
	if k < 0 || int(k) >= len(r.types) {
		panic(fmt.Sprintf("registry %s: unknown kind %d", r.name, int(k)))
	}
	return r.types[k]
}

// Lookup returns the descriptor of the named type.
func (r *Registry) Lookup(name string) (*TypeDescriptor, bool) {
	t, ok := r.byName[name]
	return t, ok
}

// Types returns all type descriptors in kind order.
func (r *Registry) Types() []*TypeDescriptor { return append([]*TypeDescriptor(nil), r.types...) }

// Enums returns all enumerations in registration order.
func (r *Registry) Enums() []*EnumType { return append([]*EnumType(nil), r.enums...) }

// Enum returns the named enumeration.
func (r *Registry) Enum(name string) (*EnumType, bool) {
	for _, e := range r.enums {
		if e.name == name {
			return e, true
		}
	}
	return nil, false
}

// Root returns the kind of the document root element name.
func (r *Registry) Root(name xml.Name) (Kind, bool) {
	k, ok := r.roots[name]
	return k, ok
}

// RootName returns the document element name for kind k, if k is a
// document root type.
func (r *Registry) RootName(k Kind) (xml.Name, bool) {
	n, ok := r.rootOf[k]
	return n, ok
}

// Roots returns the document root element names.
func (r *Registry) Roots() []xml.Name {
	names := make([]xml.Name, 0, len(r.roots))
	for _, t := range r.types {
		if n, ok := r.rootOf[t.Kind]; ok {
			names = append(names, n)
		}
	}
	return names
}

// New returns an empty node of kind k: scalar fields hold their
// defaults and are unset, containments are empty.
func (r *Registry) New(k Kind) *Node { return newNode(r, r.Describe(k)) }

type fieldTable struct {
	Name       string    `json:"name"`
	Kind       FieldKind `json:"kind"`
	Data       *DataType `json:"data,omitempty"`
	Enum       string    `json:"enum,omitempty"`
	Elem       string    `json:"elem,omitempty"`
	Namespace  string    `json:"namespace,omitempty"`
	Lower      int       `json:"lower"`
	Upper      int       `json:"upper"`
	Unsettable bool      `json:"unsettable,omitempty"`
	Default    any       `json:"default,omitempty"`
	Form       Form      `json:"form"`
}

type typeTable struct {
	Name      string       `json:"name"`
	Namespace string       `json:"namespace"`
	Super     string       `json:"super,omitempty"`
	Fields    []fieldTable `json:"fields"`
	Choices   [][]int      `json:"choices,omitempty"`
}

type enumTable struct {
	Name     string    `json:"name"`
	Literals []Literal `json:"literals"`
}

type registryTable struct {
	Name  string      `json:"name"`
	Types []typeTable `json:"types"`
	Enums []enumTable `json:"enums"`
}

func (r *Registry) table() *registryTable {
	t := &registryTable{Name: r.name}
	for _, td := range r.types {
		tt := typeTable{Name: td.Name, Namespace: td.Namespace, Choices: td.Choices}
		if td.Super != nil {
			tt.Super = td.Super.Name
		}
		for i := range td.Fields {
			f := &td.Fields[i]
			ft := fieldTable{
				Name:       f.Name,
				Kind:       f.Kind,
				Namespace:  f.Namespace,
				Lower:      f.Lower,
				Upper:      f.Upper,
				Unsettable: f.Unsettable,
				Form:       f.Form,
			}
			switch f.Kind {
			case Scalar:
				data := f.Data
				ft.Data = &data
				if f.Unsettable {
					ft.Default = f.Default
				}
			case Enum:
				ft.Enum = f.Enum.name
				if lit, ok := f.Enum.GetByOrdinal(f.Default.(int)); ok && f.Unsettable {
					ft.Default = lit.Value
				}
			default:
				ft.Elem = r.types[f.Elem].Name
			}
			tt.Fields = append(tt.Fields, ft)
		}
		t.Types = append(t.Types, tt)
	}
	for _, e := range r.enums {
		t.Enums = append(t.Enums, enumTable{Name: e.name, Literals: e.literals})
	}
	return t
}

// MarshalJSON encodes the descriptor table.
func (r *Registry) MarshalJSON() ([]byte, error) { return json.Marshal(r.table()) }

// Fingerprint returns the hex SHA-256 digest of the canonical (RFC 8785)
// JSON encoding of the descriptor table. Two registries with the same
// types, fields, field order and enumerations have the same fingerprint.
func (r *Registry) Fingerprint() (string, error) {
	data, err := json.Marshal(r.table())
	if err != nil {
		return "", errors.WithStack(err)
	}
	data, err = jcs.Transform(data)
	if err != nil {
		return "", errors.Wrap(err, "canonicalize registry")
	}
	h := sha256.Sum256(data)
	return hex.EncodeToString(h[:]), nil
}
