package model

import (
	"bytes"
	"errors"
	"fmt"
)

// Kind identifies a node type within a Registry.
type Kind int

// DataType is the value type of a scalar field.
type DataType int

const (
	// String is an xs:string value
	String DataType = iota
	// Token is an xs:token value (whitespace collapsed)
	Token
	// Boolean is an xs:boolean value
	Boolean
	// Int is an xs:int value
	Int
	// Integer is an xs:integer value
	Integer
	// NonNegativeInteger is an xs:nonNegativeInteger value
	NonNegativeInteger
)

var dataTypeNames = []string{"string", "token", "boolean", "int", "integer", "nonNegativeInteger"}

func (d DataType) String() string {
	if d >= 0 && int(d) < len(dataTypeNames) {
		return dataTypeNames[d]
	}
	return fmt.Sprintf("DataType(%d)", int(d))
}

func (d DataType) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

func (d *DataType) UnmarshalText(b []byte) error {
	b = bytes.TrimSpace(b)
	for i, n := range dataTypeNames {
		if n == string(b) {
			*d = DataType(i)
			return nil
		}
	}
	return errors.New("unknown value")
}

// IsInteger reports whether values of d are held as int64.
func (d DataType) IsInteger() bool { return d == Int || d == Integer || d == NonNegativeInteger }

// FieldKind is the declared kind of a field.
type FieldKind int

const (
	// Scalar fields hold one or more simple values
	Scalar FieldKind = iota
	// Enum fields hold an enumeration ordinal
	Enum
	// ContainmentSingle fields own at most one child node
	ContainmentSingle
	// ContainmentList fields own an ordered list of child nodes
	ContainmentList
)

var fieldKindNames = []string{"scalar", "enum", "containment-single", "containment-list"}

func (k FieldKind) String() string {
	if k >= 0 && int(k) < len(fieldKindNames) {
		return fieldKindNames[k]
	}
	return fmt.Sprintf("FieldKind(%d)", int(k))
}

func (k FieldKind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

func (k *FieldKind) UnmarshalText(b []byte) error {
	b = bytes.TrimSpace(b)
	for i, n := range fieldKindNames {
		if n == string(b) {
			*k = FieldKind(i)
			return nil
		}
	}
	return errors.New("unknown value")
}

// Form is how a field appears in an XML document.
type Form int

const (
	// Element fields are child elements
	Element Form = iota
	// Attribute fields are unqualified XML attributes
	Attribute
	// Text is the simple content of the element itself
	Text
)

var formNames = []string{"element", "attribute", "text"}

func (f Form) String() string {
	if f >= 0 && int(f) < len(formNames) {
		return formNames[f]
	}
	return fmt.Sprintf("Form(%d)", int(f))
}

func (f Form) MarshalText() ([]byte, error) { return []byte(f.String()), nil }

func (f *Form) UnmarshalText(b []byte) error {
	b = bytes.TrimSpace(b)
	for i, n := range formNames {
		if n == string(b) {
			*f = Form(i)
			return nil
		}
	}
	return errors.New("unknown value")
}

// Unbounded is the upper bound of fields without a maximum occurrence.
const Unbounded = -1

// FieldDescriptor describes one field of a node type. Its ID is the
// field's position within TypeDescriptor.Fields.
type FieldDescriptor struct {
	ID         int
	Name       string
	Kind       FieldKind
	Data       DataType
	Enum       *EnumType
	Elem       Kind
	Namespace  string
	Lower      int
	Upper      int
	Unsettable bool
	Default    any
	Form       Form
}

// Value declares an optional single-valued scalar field.
func Value(id int, name string, data DataType) FieldDescriptor {
	return FieldDescriptor{ID: id, Name: name, Kind: Scalar, Data: data, Upper: 1}
}

// Values declares a multi-valued scalar field (0..*).
func Values(id int, name string, data DataType) FieldDescriptor {
	return FieldDescriptor{ID: id, Name: name, Kind: Scalar, Data: data, Upper: Unbounded}
}

// EnumValue declares an optional enumeration field.
func EnumValue(id int, name string, e *EnumType) FieldDescriptor {
	return FieldDescriptor{ID: id, Name: name, Kind: Enum, Enum: e, Upper: 1}
}

// Child declares an optional single containment field.
func Child(id int, name string, elem Kind) FieldDescriptor {
	return FieldDescriptor{ID: id, Name: name, Kind: ContainmentSingle, Elem: elem, Upper: 1}
}

// Children declares a list containment field (0..*).
func Children(id int, name string, elem Kind) FieldDescriptor {
	return FieldDescriptor{ID: id, Name: name, Kind: ContainmentList, Elem: elem, Upper: Unbounded}
}

// Min sets the minimum occurrence.
func (f FieldDescriptor) Min(n int) FieldDescriptor { f.Lower = n; return f }

// Max sets the maximum occurrence.
func (f FieldDescriptor) Max(n int) FieldDescriptor { f.Upper = n; return f }

// Required is shorthand for Min(1).
func (f FieldDescriptor) Required() FieldDescriptor { return f.Min(1) }

// UnsettableWith marks the field as distinguishing "omitted" from "present
// with the default value" and sets the value restored by Node.Unset.
// For Enum fields def is the default ordinal.
func (f FieldDescriptor) UnsettableWith(def any) FieldDescriptor {
	f.Unsettable = true
	f.Default = def
	return f
}

// Attr marks the field as an XML attribute.
func (f FieldDescriptor) Attr() FieldDescriptor { f.Form = Attribute; return f }

// Content marks the field as the element's simple content.
func (f FieldDescriptor) Content() FieldDescriptor { f.Form = Text; return f }

// In overrides the namespace of an element field.
func (f FieldDescriptor) In(namespace string) FieldDescriptor { f.Namespace = namespace; return f }

// IsRequired reports whether at least one occurrence is required.
func (f *FieldDescriptor) IsRequired() bool { return f.Lower > 0 }

// IsMany reports whether the field may hold more than one value.
func (f *FieldDescriptor) IsMany() bool { return f.Upper == Unbounded || f.Upper > 1 }

// IsContainment reports whether the field owns child nodes.
func (f *FieldDescriptor) IsContainment() bool {
	return f.Kind == ContainmentSingle || f.Kind == ContainmentList
}

func (f *FieldDescriptor) String() string {
	upper := "*"
	if f.Upper != Unbounded {
		upper = fmt.Sprint(f.Upper)
	}
	return fmt.Sprintf("%s %s %d..%s", f.Name, f.Kind, f.Lower, upper)
}

// TypeDescriptor describes a node type. Inherited fields precede
// the type's own fields.
type TypeDescriptor struct {
	Kind      Kind
	Name      string
	Namespace string
	Super     *TypeDescriptor
	Fields    []FieldDescriptor
	// Choices lists groups of field IDs of which exactly one must be present.
	Choices [][]int

	byName map[string]int
}

// Field looks up a field by name.
func (t *TypeDescriptor) Field(name string) (*FieldDescriptor, bool) {
	if i, ok := t.byName[name]; ok {
		return &t.Fields[i], true
	}
	return nil, false
}

// IsA reports whether t is kind k or derives from it.
func (t *TypeDescriptor) IsA(k Kind) bool {
	for it := t; it != nil; it = it.Super {
		if it.Kind == k {
			return true
		}
	}
	return false
}

// TextField returns the simple content field, if the type has one.
func (t *TypeDescriptor) TextField() (*FieldDescriptor, bool) {
	for i := range t.Fields {
		if t.Fields[i].Form == Text {
			return &t.Fields[i], true
		}
	}
	return nil, false
}

func (t *TypeDescriptor) String() string { return t.Name }
