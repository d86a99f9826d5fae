package operator

import (
	"bytes"
	"fmt"

	"github.com/andaru/splmodel/model"
	"github.com/pkg/errors"
)

func literal[E ~int](t *model.EnumType, v E) string {
	if lit, ok := t.GetByOrdinal(int(v)); ok {
		return lit.Value
	}
	return fmt.Sprintf("%s(%d)", t.Name(), int(v))
}

func displayName[E ~int](t *model.EnumType, v E) string {
	if lit, ok := t.GetByOrdinal(int(v)); ok {
		return lit.Name
	}
	return fmt.Sprintf("%s(%d)", t.Name(), int(v))
}

func marshalText[E ~int](t *model.EnumType, v E) ([]byte, error) {
	lit, ok := t.GetByOrdinal(int(v))
	if !ok {
		return nil, errors.Errorf("%s: invalid ordinal %d", t.Name(), int(v))
	}
	return []byte(lit.Value), nil
}

func unmarshalText[E ~int](t *model.EnumType, v *E, b []byte) error {
	lit, ok := t.Get(string(bytes.TrimSpace(b)))
	if !ok {
		return errors.Errorf("%s: unknown value %q", t.Name(), b)
	}
	*v = E(lit.Ordinal)
	return nil
}

func byLiteral[E ~int](t *model.EnumType, s string) (E, bool) {
	lit, ok := t.Get(s)
	return E(lit.Ordinal), ok
}

func byName[E ~int](t *model.EnumType, s string) (E, bool) {
	lit, ok := t.GetByName(s)
	return E(lit.Ordinal), ok
}

func byOrdinal[E ~int](t *model.EnumType, i int) (E, bool) {
	lit, ok := t.GetByOrdinal(i)
	return E(lit.Ordinal), ok
}

// ExpressionMode restricts the expressions accepted by a parameter or
// an output attribute assignment.
type ExpressionMode int

const (
	ExpressionModeAttribute ExpressionMode = iota
	ExpressionModeAttributeFree
	ExpressionModeConstant
	ExpressionModeCustomLiteral
	ExpressionModeExpression
	ExpressionModeNonexistent
)

// ExpressionModeEnum describes ExpressionMode.
var ExpressionModeEnum = model.NewEnumType("ExpressionModeType", model.Literals(
	"Attribute", "AttributeFree", "Constant", "CustomLiteral", "Expression", "Nonexistent")...)

func (m ExpressionMode) String() string { return literal(ExpressionModeEnum, m) }

// Name returns the name of the literal.
func (m ExpressionMode) Name() string { return displayName(ExpressionModeEnum, m) }

// Ordinal returns the position of the literal in its enumeration.
func (m ExpressionMode) Ordinal() int                  { return int(m) }
func (m ExpressionMode) MarshalText() ([]byte, error)  { return marshalText(ExpressionModeEnum, m) }
func (m *ExpressionMode) UnmarshalText(b []byte) error { return unmarshalText(ExpressionModeEnum, m, b) }

// ExpressionModeByLiteral returns the ExpressionMode with document literal
// s; ok is false if there is none.
func ExpressionModeByLiteral(s string) (ExpressionMode, bool) {
	return byLiteral[ExpressionMode](ExpressionModeEnum, s)
}

// ExpressionModeByName returns the ExpressionMode with literal name s; ok
// is false if there is none.
func ExpressionModeByName(s string) (ExpressionMode, bool) {
	return byName[ExpressionMode](ExpressionModeEnum, s)
}

// ExpressionModeByOrdinal returns the ExpressionMode with ordinal i; ok is
// false if there is none.
func ExpressionModeByOrdinal(i int) (ExpressionMode, bool) {
	return byOrdinal[ExpressionMode](ExpressionModeEnum, i)
}

// IncrementalCompilationStrategy selects how the compiler decides to
// regenerate operator code.
type IncrementalCompilationStrategy int

const (
	IncrementalCompilationStrategySourceDependent IncrementalCompilationStrategy = iota
	IncrementalCompilationStrategyResultDependent
)

// IncrementalCompilationStrategyEnum describes IncrementalCompilationStrategy.
var IncrementalCompilationStrategyEnum = model.NewEnumType("IncrementalCompilationStrategyType",
	model.Literals("SourceDependent", "ResultDependent")...)

func (s IncrementalCompilationStrategy) String() string {
	return literal(IncrementalCompilationStrategyEnum, s)
}

// Name returns the name of the literal.
func (s IncrementalCompilationStrategy) Name() string {
	return displayName(IncrementalCompilationStrategyEnum, s)
}

// Ordinal returns the position of the literal in its enumeration.
func (s IncrementalCompilationStrategy) Ordinal() int { return int(s) }
func (s IncrementalCompilationStrategy) MarshalText() ([]byte, error) {
	return marshalText(IncrementalCompilationStrategyEnum, s)
}
func (s *IncrementalCompilationStrategy) UnmarshalText(b []byte) error {
	return unmarshalText(IncrementalCompilationStrategyEnum, s, b)
}

// IncrementalCompilationStrategyByLiteral returns the
// IncrementalCompilationStrategy with document literal s; ok is false if
// there is none.
func IncrementalCompilationStrategyByLiteral(s string) (IncrementalCompilationStrategy, bool) {
	return byLiteral[IncrementalCompilationStrategy](IncrementalCompilationStrategyEnum, s)
}

// IncrementalCompilationStrategyByName returns the
// IncrementalCompilationStrategy with literal name s; ok is false if there
// is none.
func IncrementalCompilationStrategyByName(s string) (IncrementalCompilationStrategy, bool) {
	return byName[IncrementalCompilationStrategy](IncrementalCompilationStrategyEnum, s)
}

// IncrementalCompilationStrategyByOrdinal returns the
// IncrementalCompilationStrategy with ordinal i; ok is false if there is
// none.
func IncrementalCompilationStrategyByOrdinal(i int) (IncrementalCompilationStrategy, bool) {
	return byOrdinal[IncrementalCompilationStrategy](IncrementalCompilationStrategyEnum, i)
}

// JavaOpExpressionMode is the expression mode of a Java operator parameter.
type JavaOpExpressionMode int

const (
	JavaOpExpressionModeAttribute JavaOpExpressionMode = iota
	JavaOpExpressionModeAttributeFree
	JavaOpExpressionModeCustomLiteral
)

// JavaOpExpressionModeEnum describes JavaOpExpressionMode.
var JavaOpExpressionModeEnum = model.NewEnumType("JavaOpExpressionModeType",
	model.Literals("Attribute", "AttributeFree", "CustomLiteral")...)

func (m JavaOpExpressionMode) String() string { return literal(JavaOpExpressionModeEnum, m) }

// Name returns the name of the literal.
func (m JavaOpExpressionMode) Name() string { return displayName(JavaOpExpressionModeEnum, m) }

// Ordinal returns the position of the literal in its enumeration.
func (m JavaOpExpressionMode) Ordinal() int { return int(m) }
func (m JavaOpExpressionMode) MarshalText() ([]byte, error) {
	return marshalText(JavaOpExpressionModeEnum, m)
}
func (m *JavaOpExpressionMode) UnmarshalText(b []byte) error {
	return unmarshalText(JavaOpExpressionModeEnum, m, b)
}

// JavaOpExpressionModeByLiteral returns the JavaOpExpressionMode with
// document literal s; ok is false if there is none.
func JavaOpExpressionModeByLiteral(s string) (JavaOpExpressionMode, bool) {
	return byLiteral[JavaOpExpressionMode](JavaOpExpressionModeEnum, s)
}

// JavaOpExpressionModeByName returns the JavaOpExpressionMode with literal
// name s; ok is false if there is none.
func JavaOpExpressionModeByName(s string) (JavaOpExpressionMode, bool) {
	return byName[JavaOpExpressionMode](JavaOpExpressionModeEnum, s)
}

// JavaOpExpressionModeByOrdinal returns the JavaOpExpressionMode with
// ordinal i; ok is false if there is none.
func JavaOpExpressionModeByOrdinal(i int) (JavaOpExpressionMode, bool) {
	return byOrdinal[JavaOpExpressionMode](JavaOpExpressionModeEnum, i)
}

// MetricKind is the kind of an operator metric.
type MetricKind int

const (
	MetricKindGauge MetricKind = iota
	MetricKindCounter
	MetricKindTime
)

// MetricKindEnum describes MetricKind.
var MetricKindEnum = model.NewEnumType("MetricKindType", model.Literals("Gauge", "Counter", "Time")...)

func (k MetricKind) String() string { return literal(MetricKindEnum, k) }

// Name returns the name of the literal.
func (k MetricKind) Name() string { return displayName(MetricKindEnum, k) }

// Ordinal returns the position of the literal in its enumeration.
func (k MetricKind) Ordinal() int                  { return int(k) }
func (k MetricKind) MarshalText() ([]byte, error)  { return marshalText(MetricKindEnum, k) }
func (k *MetricKind) UnmarshalText(b []byte) error { return unmarshalText(MetricKindEnum, k, b) }

// MetricKindByLiteral returns the MetricKind with document literal s; ok
// is false if there is none.
func MetricKindByLiteral(s string) (MetricKind, bool) { return byLiteral[MetricKind](MetricKindEnum, s) }

// MetricKindByName returns the MetricKind with literal name s; ok is false
// if there is none.
func MetricKindByName(s string) (MetricKind, bool) { return byName[MetricKind](MetricKindEnum, s) }

// MetricKindByOrdinal returns the MetricKind with ordinal i; ok is false
// if there is none.
func MetricKindByOrdinal(i int) (MetricKind, bool) { return byOrdinal[MetricKind](MetricKindEnum, i) }

// SingleThreadedContext states when an operator provides a
// single-threaded context to downstream operators.
type SingleThreadedContext int

const (
	SingleThreadedContextNever SingleThreadedContext = iota
	SingleThreadedContextAlways
	SingleThreadedContextWindowBound
	SingleThreadedContextWindowTriggerBound
	SingleThreadedContextWindowEvictionBound
	SingleThreadedContextWindowPartitionEvictionBound
)

// SingleThreadedContextEnum describes SingleThreadedContext.
var SingleThreadedContextEnum = model.NewEnumType("SingleThreadedContextType", model.Literals(
	"Never", "Always", "WindowBound", "WindowTriggerBound", "WindowEvictionBound",
	"WindowPartitionEvictionBound")...)

func (c SingleThreadedContext) String() string { return literal(SingleThreadedContextEnum, c) }

// Name returns the name of the literal.
func (c SingleThreadedContext) Name() string { return displayName(SingleThreadedContextEnum, c) }

// Ordinal returns the position of the literal in its enumeration.
func (c SingleThreadedContext) Ordinal() int { return int(c) }
func (c SingleThreadedContext) MarshalText() ([]byte, error) {
	return marshalText(SingleThreadedContextEnum, c)
}
func (c *SingleThreadedContext) UnmarshalText(b []byte) error {
	return unmarshalText(SingleThreadedContextEnum, c, b)
}

// SingleThreadedContextByLiteral returns the SingleThreadedContext with
// document literal s; ok is false if there is none.
func SingleThreadedContextByLiteral(s string) (SingleThreadedContext, bool) {
	return byLiteral[SingleThreadedContext](SingleThreadedContextEnum, s)
}

// SingleThreadedContextByName returns the SingleThreadedContext with
// literal name s; ok is false if there is none.
func SingleThreadedContextByName(s string) (SingleThreadedContext, bool) {
	return byName[SingleThreadedContext](SingleThreadedContextEnum, s)
}

// SingleThreadedContextByOrdinal returns the SingleThreadedContext with
// ordinal i; ok is false if there is none.
func SingleThreadedContextByOrdinal(i int) (SingleThreadedContext, bool) {
	return byOrdinal[SingleThreadedContext](SingleThreadedContextEnum, i)
}

// WindowExpressionMode restricts window size and trigger expressions.
type WindowExpressionMode int

const (
	WindowExpressionModeConstant WindowExpressionMode = iota
	WindowExpressionModeAttributeFree
)

// WindowExpressionModeEnum describes WindowExpressionMode.
var WindowExpressionModeEnum = model.NewEnumType("WindowExpressionModeType",
	model.Literals("Constant", "AttributeFree")...)

func (m WindowExpressionMode) String() string { return literal(WindowExpressionModeEnum, m) }

// Name returns the name of the literal.
func (m WindowExpressionMode) Name() string { return displayName(WindowExpressionModeEnum, m) }

// Ordinal returns the position of the literal in its enumeration.
func (m WindowExpressionMode) Ordinal() int { return int(m) }
func (m WindowExpressionMode) MarshalText() ([]byte, error) {
	return marshalText(WindowExpressionModeEnum, m)
}
func (m *WindowExpressionMode) UnmarshalText(b []byte) error {
	return unmarshalText(WindowExpressionModeEnum, m, b)
}

// WindowExpressionModeByLiteral returns the WindowExpressionMode with
// document literal s; ok is false if there is none.
func WindowExpressionModeByLiteral(s string) (WindowExpressionMode, bool) {
	return byLiteral[WindowExpressionMode](WindowExpressionModeEnum, s)
}

// WindowExpressionModeByName returns the WindowExpressionMode with literal
// name s; ok is false if there is none.
func WindowExpressionModeByName(s string) (WindowExpressionMode, bool) {
	return byName[WindowExpressionMode](WindowExpressionModeEnum, s)
}

// WindowExpressionModeByOrdinal returns the WindowExpressionMode with
// ordinal i; ok is false if there is none.
func WindowExpressionModeByOrdinal(i int) (WindowExpressionMode, bool) {
	return byOrdinal[WindowExpressionMode](WindowExpressionModeEnum, i)
}

// WindowingMode states whether an input port accepts a window clause.
type WindowingMode int

const (
	WindowingModeNonWindowed WindowingMode = iota
	WindowingModeWindowed
	WindowingModeOptionallyWindowed
)

// WindowingModeEnum describes WindowingMode.
var WindowingModeEnum = model.NewEnumType("WindowingModeType",
	model.Literals("NonWindowed", "Windowed", "OptionallyWindowed")...)

func (m WindowingMode) String() string { return literal(WindowingModeEnum, m) }

// Name returns the name of the literal.
func (m WindowingMode) Name() string { return displayName(WindowingModeEnum, m) }

// Ordinal returns the position of the literal in its enumeration.
func (m WindowingMode) Ordinal() int                  { return int(m) }
func (m WindowingMode) MarshalText() ([]byte, error)  { return marshalText(WindowingModeEnum, m) }
func (m *WindowingMode) UnmarshalText(b []byte) error { return unmarshalText(WindowingModeEnum, m, b) }

// WindowingModeByLiteral returns the WindowingMode with document literal
// s; ok is false if there is none.
func WindowingModeByLiteral(s string) (WindowingMode, bool) {
	return byLiteral[WindowingMode](WindowingModeEnum, s)
}

// WindowingModeByName returns the WindowingMode with literal name s; ok is
// false if there is none.
func WindowingModeByName(s string) (WindowingMode, bool) {
	return byName[WindowingMode](WindowingModeEnum, s)
}

// WindowingModeByOrdinal returns the WindowingMode with ordinal i; ok is
// false if there is none.
func WindowingModeByOrdinal(i int) (WindowingMode, bool) {
	return byOrdinal[WindowingMode](WindowingModeEnum, i)
}

// WindowPunctuationInputMode states how an input port treats window
// punctuation.
type WindowPunctuationInputMode int

const (
	WindowPunctuationInputModeExpecting WindowPunctuationInputMode = iota
	WindowPunctuationInputModeOblivious
	WindowPunctuationInputModeWindowBound
)

// WindowPunctuationInputModeEnum describes WindowPunctuationInputMode.
var WindowPunctuationInputModeEnum = model.NewEnumType("WindowPunctuationInputModeType",
	model.Literals("Expecting", "Oblivious", "WindowBound")...)

func (m WindowPunctuationInputMode) String() string {
	return literal(WindowPunctuationInputModeEnum, m)
}

// Name returns the name of the literal.
func (m WindowPunctuationInputMode) Name() string {
	return displayName(WindowPunctuationInputModeEnum, m)
}

// Ordinal returns the position of the literal in its enumeration.
func (m WindowPunctuationInputMode) Ordinal() int { return int(m) }
func (m WindowPunctuationInputMode) MarshalText() ([]byte, error) {
	return marshalText(WindowPunctuationInputModeEnum, m)
}
func (m *WindowPunctuationInputMode) UnmarshalText(b []byte) error {
	return unmarshalText(WindowPunctuationInputModeEnum, m, b)
}

// WindowPunctuationInputModeByLiteral returns the
// WindowPunctuationInputMode with document literal s; ok is false if there
// is none.
func WindowPunctuationInputModeByLiteral(s string) (WindowPunctuationInputMode, bool) {
	return byLiteral[WindowPunctuationInputMode](WindowPunctuationInputModeEnum, s)
}

// WindowPunctuationInputModeByName returns the WindowPunctuationInputMode
// with literal name s; ok is false if there is none.
func WindowPunctuationInputModeByName(s string) (WindowPunctuationInputMode, bool) {
	return byName[WindowPunctuationInputMode](WindowPunctuationInputModeEnum, s)
}

// WindowPunctuationInputModeByOrdinal returns the
// WindowPunctuationInputMode with ordinal i; ok is false if there is none.
func WindowPunctuationInputModeByOrdinal(i int) (WindowPunctuationInputMode, bool) {
	return byOrdinal[WindowPunctuationInputMode](WindowPunctuationInputModeEnum, i)
}

// WindowPunctuationOutputMode states how an output port produces
// window punctuation.
type WindowPunctuationOutputMode int

const (
	WindowPunctuationOutputModeGenerating WindowPunctuationOutputMode = iota
	WindowPunctuationOutputModeFree
	WindowPunctuationOutputModePreserving
)

// WindowPunctuationOutputModeEnum describes WindowPunctuationOutputMode.
var WindowPunctuationOutputModeEnum = model.NewEnumType("WindowPunctuationOutputModeType",
	model.Literals("Generating", "Free", "Preserving")...)

func (m WindowPunctuationOutputMode) String() string {
	return literal(WindowPunctuationOutputModeEnum, m)
}

// Name returns the name of the literal.
func (m WindowPunctuationOutputMode) Name() string {
	return displayName(WindowPunctuationOutputModeEnum, m)
}

// Ordinal returns the position of the literal in its enumeration.
func (m WindowPunctuationOutputMode) Ordinal() int { return int(m) }
func (m WindowPunctuationOutputMode) MarshalText() ([]byte, error) {
	return marshalText(WindowPunctuationOutputModeEnum, m)
}
func (m *WindowPunctuationOutputMode) UnmarshalText(b []byte) error {
	return unmarshalText(WindowPunctuationOutputModeEnum, m, b)
}

// WindowPunctuationOutputModeByLiteral returns the
// WindowPunctuationOutputMode with document literal s; ok is false if
// there is none.
func WindowPunctuationOutputModeByLiteral(s string) (WindowPunctuationOutputMode, bool) {
	return byLiteral[WindowPunctuationOutputMode](WindowPunctuationOutputModeEnum, s)
}

// WindowPunctuationOutputModeByName returns the
// WindowPunctuationOutputMode with literal name s; ok is false if there is
// none.
func WindowPunctuationOutputModeByName(s string) (WindowPunctuationOutputMode, bool) {
	return byName[WindowPunctuationOutputMode](WindowPunctuationOutputModeEnum, s)
}

// WindowPunctuationOutputModeByOrdinal returns the
// WindowPunctuationOutputMode with ordinal i; ok is false if there is
// none.
func WindowPunctuationOutputModeByOrdinal(i int) (WindowPunctuationOutputMode, bool) {
	return byOrdinal[WindowPunctuationOutputMode](WindowPunctuationOutputModeEnum, i)
}

// Enums lists every enumeration of the operator model.
var Enums = []*model.EnumType{
	ExpressionModeEnum,
	IncrementalCompilationStrategyEnum,
	JavaOpExpressionModeEnum,
	MetricKindEnum,
	SingleThreadedContextEnum,
	WindowExpressionModeEnum,
	WindowingModeEnum,
	WindowPunctuationInputModeEnum,
	WindowPunctuationOutputModeEnum,
}
