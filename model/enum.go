package model

import (
	"fmt"
)

// Literal is one member of an EnumType.
type Literal struct {
	Ordinal int    `json:"ordinal"`
	Name    string `json:"name"`
	Value   string `json:"literal"`
}

func (l Literal) String() string { return l.Value }

// Literals returns literals whose names equal their wire values, with
// ordinals assigned in argument order.
func Literals(values ...string) []Literal {
	lits := make([]Literal, len(values))
	for i, v := range values {
		lits[i] = Literal{Ordinal: i, Name: v, Value: v}
	}
	return lits
}

// EnumType is a closed set of literals. Ordinals are contiguous from 0.
type EnumType struct {
	name     string
	literals []Literal
	byValue  map[string]int
	byName   map[string]int
}

// NewEnumType returns an enumeration of the given literals. It panics
// if an ordinal does not match the literal's position or if a name or
// wire value is repeated.
func NewEnumType(name string, literals ...Literal) *EnumType {
	e := &EnumType{
		name:     name,
		literals: append([]Literal(nil), literals...),
		byValue:  make(map[string]int, len(literals)),
		byName:   make(map[string]int, len(literals)),
	}
	for i, l := range e.literals {
		if l.Ordinal != i {
			panic(fmt.Sprintf("enum %s: literal %q has ordinal %d at position %d", name, l.Value, l.Ordinal, i))
		}
		if _, dup := e.byValue[l.Value]; dup {
			panic(fmt.Sprintf("enum %s: duplicate literal %q", name, l.Value))
		}
		if _, dup := e.byName[l.Name]; dup {
			panic(fmt.Sprintf("enum %s: duplicate name %q", name, l.Name))
		}
		e.byValue[l.Value] = i
		e.byName[l.Name] = i
	}
	return e
}

// Name returns the enumeration's type name.
func (e *EnumType) Name() string { return e.name }

// Len returns the number of literals.
func (e *EnumType) Len() int { return len(e.literals) }

// Literals returns a copy of the literals in ordinal order.
func (e *EnumType) Literals() []Literal { return append([]Literal(nil), e.literals...) }

// Get looks up a literal by its exact wire value.
func (e *EnumType) Get(value string) (Literal, bool) {
	if i, ok := e.byValue[value]; ok {
		return e.literals[i], true
	}
	return Literal{}, false
}

// GetByName looks up a literal by its display name.
func (e *EnumType) GetByName(name string) (Literal, bool) {
	if i, ok := e.byName[name]; ok {
		return e.literals[i], true
	}
	return Literal{}, false
}

// GetByOrdinal looks up a literal by ordinal.
func (e *EnumType) GetByOrdinal(ordinal int) (Literal, bool) {
	if ordinal < 0 || ordinal >= len(e.literals) {
		return Literal{}, false
	}
	return e.literals[ordinal], true
}

func (e *EnumType) String() string { return e.name }
