package operator

import "github.com/andaru/splmodel/model"

// InputPorts lists the input port sets of a C++ operator. Port sets
// are numbered in order; the open set, if any, covers every port after
// the last fixed set.
type InputPorts model.Node

// Node returns the input ports as a generic node.
func (p *InputPorts) Node() *model.Node { return (*model.Node)(p) }

// InputPortSets returns the input port sets as a live list.
func (p *InputPorts) InputPortSets() model.List[*InputPortSet] {
	return model.NewList(p.Node().List(inputPortsSet), asInputPortSet, (*InputPortSet).Node)
}

// InputPortOpenSet returns the input port open set child, or nil when
// absent; SetInputPortOpenSet replaces it.
func (p *InputPorts) InputPortOpenSet() *InputPortOpenSet {
	return (*InputPortOpenSet)(p.Node().Child(inputPortsOpenSet))
}
func (p *InputPorts) SetInputPortOpenSet(v *InputPortOpenSet) {
	p.Node().SetChild(inputPortsOpenSet, v.Node())
}

// InputPortOpenSet describes input ports of unbounded number.
type InputPortOpenSet model.Node

// Node returns the input port open set as a generic node.
func (s *InputPortOpenSet) Node() *model.Node { return (*model.Node)(s) }

// Description returns the description child, or nil when absent;
// SetDescription replaces it.
func (s *InputPortOpenSet) Description() *Description {
	return (*Description)(s.Node().Child(inputPortDescription))
}
func (s *InputPortOpenSet) SetDescription(v *Description) {
	s.Node().SetChild(inputPortDescription, v.Node())
}

// WindowingDescription returns the windowing description child, or nil
// when absent; SetWindowingDescription replaces it.
func (s *InputPortOpenSet) WindowingDescription() *Description {
	return (*Description)(s.Node().Child(inputPortWindowingDescription))
}
func (s *InputPortOpenSet) SetWindowingDescription(v *Description) {
	s.Node().SetChild(inputPortWindowingDescription, v.Node())
}

// TupleMutationAllowed reports the tuple mutation allowed flag, or its
// default while unset.
func (s *InputPortOpenSet) TupleMutationAllowed() bool {
	return s.Node().Bool(inputPortTupleMutationAllowed)
}
func (s *InputPortOpenSet) SetTupleMutationAllowed(v bool) {
	s.Node().Set(inputPortTupleMutationAllowed, v)
}
func (s *InputPortOpenSet) IsSetTupleMutationAllowed() bool {
	return s.Node().IsSet(inputPortTupleMutationAllowed)
}
func (s *InputPortOpenSet) UnsetTupleMutationAllowed() {
	s.Node().Unset(inputPortTupleMutationAllowed)
}

// WindowingMode returns the windowing mode, or its default while unset.
func (s *InputPortOpenSet) WindowingMode() WindowingMode {
	return WindowingMode(s.Node().Enum(inputPortWindowingMode))
}
func (s *InputPortOpenSet) SetWindowingMode(v WindowingMode) { s.Node().Set(inputPortWindowingMode, v) }
func (s *InputPortOpenSet) IsSetWindowingMode() bool         { return s.Node().IsSet(inputPortWindowingMode) }
func (s *InputPortOpenSet) UnsetWindowingMode()              { s.Node().Unset(inputPortWindowingMode) }

// WindowPunctuationInputMode returns the window punctuation input mode, or
// its default while unset.
func (s *InputPortOpenSet) WindowPunctuationInputMode() WindowPunctuationInputMode {
	return WindowPunctuationInputMode(s.Node().Enum(inputPortWindowPunctuationInputMode))
}
func (s *InputPortOpenSet) SetWindowPunctuationInputMode(v WindowPunctuationInputMode) {
	s.Node().Set(inputPortWindowPunctuationInputMode, v)
}
func (s *InputPortOpenSet) IsSetWindowPunctuationInputMode() bool {
	return s.Node().IsSet(inputPortWindowPunctuationInputMode)
}
func (s *InputPortOpenSet) UnsetWindowPunctuationInputMode() {
	s.Node().Unset(inputPortWindowPunctuationInputMode)
}

// ControlPort reports the control port flag, or its default while unset.
func (s *InputPortOpenSet) ControlPort() bool      { return s.Node().Bool(inputPortControlPort) }
func (s *InputPortOpenSet) SetControlPort(v bool)  { s.Node().Set(inputPortControlPort, v) }
func (s *InputPortOpenSet) IsSetControlPort() bool { return s.Node().IsSet(inputPortControlPort) }
func (s *InputPortOpenSet) UnsetControlPort()      { s.Node().Unset(inputPortControlPort) }

// WindowExpressionMode returns the window expression mode, or its default
// while unset.
func (s *InputPortOpenSet) WindowExpressionMode() WindowExpressionMode {
	return WindowExpressionMode(s.Node().Enum(inputPortWindowExpressionMode))
}
func (s *InputPortOpenSet) SetWindowExpressionMode(v WindowExpressionMode) {
	s.Node().Set(inputPortWindowExpressionMode, v)
}
func (s *InputPortOpenSet) IsSetWindowExpressionMode() bool {
	return s.Node().IsSet(inputPortWindowExpressionMode)
}
func (s *InputPortOpenSet) UnsetWindowExpressionMode() {
	s.Node().Unset(inputPortWindowExpressionMode)
}

// RewriteAllowedForWindowExpression reports the rewrite allowed for window
// expression flag, or its default while unset.
func (s *InputPortOpenSet) RewriteAllowedForWindowExpression() bool {
	return s.Node().Bool(inputPortRewriteAllowedForWindowExpression)
}
func (s *InputPortOpenSet) SetRewriteAllowedForWindowExpression(v bool) {
	s.Node().Set(inputPortRewriteAllowedForWindowExpression, v)
}
func (s *InputPortOpenSet) IsSetRewriteAllowedForWindowExpression() bool {
	return s.Node().IsSet(inputPortRewriteAllowedForWindowExpression)
}
func (s *InputPortOpenSet) UnsetRewriteAllowedForWindowExpression() {
	s.Node().Unset(inputPortRewriteAllowedForWindowExpression)
}

// InputPortSet describes a fixed number of input ports. It carries
// every InputPortOpenSet field; use OpenSet to reach them.
type InputPortSet model.Node

func asInputPortSet(n *model.Node) *InputPortSet { return (*InputPortSet)(n) }

// Node returns the input port set as a generic node.
func (s *InputPortSet) Node() *model.Node { return (*model.Node)(s) }

// OpenSet returns the port set viewed as its base type.
func (s *InputPortSet) OpenSet() *InputPortOpenSet { return (*InputPortOpenSet)(s) }

// Cardinality is the number of ports in the set.
func (s *InputPortSet) Cardinality() int64     { return s.Node().Int(inputPortCardinality) }
func (s *InputPortSet) SetCardinality(v int64) { s.Node().Set(inputPortCardinality, v) }

// Optional reports the optional flag, or its default while unset.
func (s *InputPortSet) Optional() bool      { return s.Node().Bool(inputPortOptional) }
func (s *InputPortSet) SetOptional(v bool)  { s.Node().Set(inputPortOptional, v) }
func (s *InputPortSet) IsSetOptional() bool { return s.Node().IsSet(inputPortOptional) }
func (s *InputPortSet) UnsetOptional()      { s.Node().Unset(inputPortOptional) }

// OutputPorts lists the output port sets of a C++ operator.
type OutputPorts model.Node

// Node returns the output ports as a generic node.
func (p *OutputPorts) Node() *model.Node { return (*model.Node)(p) }

// OutputPortSets returns the output port sets as a live list.
func (p *OutputPorts) OutputPortSets() model.List[*OutputPortSet] {
	return model.NewList(p.Node().List(outputPortsSet), asOutputPortSet, (*OutputPortSet).Node)
}

// OutputPortOpenSet returns the output port open set child, or nil when
// absent; SetOutputPortOpenSet replaces it.
func (p *OutputPorts) OutputPortOpenSet() *OutputPortOpenSet {
	return (*OutputPortOpenSet)(p.Node().Child(outputPortsOpenSet))
}
func (p *OutputPorts) SetOutputPortOpenSet(v *OutputPortOpenSet) {
	p.Node().SetChild(outputPortsOpenSet, v.Node())
}

// OutputPortOpenSet describes output ports of unbounded number.
type OutputPortOpenSet model.Node

// Node returns the output port open set as a generic node.
func (s *OutputPortOpenSet) Node() *model.Node { return (*model.Node)(s) }

// Description returns the description child, or nil when absent;
// SetDescription replaces it.
func (s *OutputPortOpenSet) Description() *Description {
	return (*Description)(s.Node().Child(outputPortDescription))
}
func (s *OutputPortOpenSet) SetDescription(v *Description) {
	s.Node().SetChild(outputPortDescription, v.Node())
}

// ExpressionMode returns the expression mode, or its default while unset.
func (s *OutputPortOpenSet) ExpressionMode() ExpressionMode {
	return ExpressionMode(s.Node().Enum(outputPortExpressionMode))
}
func (s *OutputPortOpenSet) SetExpressionMode(v ExpressionMode) {
	s.Node().Set(outputPortExpressionMode, v)
}
func (s *OutputPortOpenSet) IsSetExpressionMode() bool {
	return s.Node().IsSet(outputPortExpressionMode)
}
func (s *OutputPortOpenSet) UnsetExpressionMode() { s.Node().Unset(outputPortExpressionMode) }

// AutoAssignment reports the auto assignment flag, or its default while unset.
func (s *OutputPortOpenSet) AutoAssignment() bool { return s.Node().Bool(outputPortAutoAssignment) }
func (s *OutputPortOpenSet) SetAutoAssignment(v bool) {
	s.Node().Set(outputPortAutoAssignment, v)
}
func (s *OutputPortOpenSet) IsSetAutoAssignment() bool {
	return s.Node().IsSet(outputPortAutoAssignment)
}
func (s *OutputPortOpenSet) UnsetAutoAssignment() { s.Node().Unset(outputPortAutoAssignment) }

// CompleteAssignment reports the complete assignment flag, or its default
// while unset.
func (s *OutputPortOpenSet) CompleteAssignment() bool {
	return s.Node().Bool(outputPortCompleteAssignment)
}
func (s *OutputPortOpenSet) SetCompleteAssignment(v bool) {
	s.Node().Set(outputPortCompleteAssignment, v)
}
func (s *OutputPortOpenSet) IsSetCompleteAssignment() bool {
	return s.Node().IsSet(outputPortCompleteAssignment)
}
func (s *OutputPortOpenSet) UnsetCompleteAssignment() {
	s.Node().Unset(outputPortCompleteAssignment)
}

// RewriteAllowed reports the rewrite allowed flag, or its default while unset.
func (s *OutputPortOpenSet) RewriteAllowed() bool { return s.Node().Bool(outputPortRewriteAllowed) }
func (s *OutputPortOpenSet) SetRewriteAllowed(v bool) {
	s.Node().Set(outputPortRewriteAllowed, v)
}
func (s *OutputPortOpenSet) IsSetRewriteAllowed() bool {
	return s.Node().IsSet(outputPortRewriteAllowed)
}
func (s *OutputPortOpenSet) UnsetRewriteAllowed() { s.Node().Unset(outputPortRewriteAllowed) }

// OutputFunctions returns the output functions child, or nil when absent;
// SetOutputFunctions replaces it.
func (s *OutputPortOpenSet) OutputFunctions() *OutputFunctions {
	return (*OutputFunctions)(s.Node().Child(outputPortOutputFunctions))
}
func (s *OutputPortOpenSet) SetOutputFunctions(v *OutputFunctions) {
	s.Node().SetChild(outputPortOutputFunctions, v.Node())
}

// WindowPunctuationOutputMode returns the window punctuation output mode,
// or its default while unset.
func (s *OutputPortOpenSet) WindowPunctuationOutputMode() WindowPunctuationOutputMode {
	return WindowPunctuationOutputMode(s.Node().Enum(outputPortWindowPunctuationOutputMode))
}
func (s *OutputPortOpenSet) SetWindowPunctuationOutputMode(v WindowPunctuationOutputMode) {
	s.Node().Set(outputPortWindowPunctuationOutputMode, v)
}
func (s *OutputPortOpenSet) IsSetWindowPunctuationOutputMode() bool {
	return s.Node().IsSet(outputPortWindowPunctuationOutputMode)
}
func (s *OutputPortOpenSet) UnsetWindowPunctuationOutputMode() {
	s.Node().Unset(outputPortWindowPunctuationOutputMode)
}

// WindowPunctuationInputPort is the input port whose punctuation is
// preserved, when WindowPunctuationOutputMode is Preserving.
func (s *OutputPortOpenSet) WindowPunctuationInputPort() int64 {
	return s.Node().Int(outputPortWindowPunctuationInputPort)
}
func (s *OutputPortOpenSet) SetWindowPunctuationInputPort(v int64) {
	s.Node().Set(outputPortWindowPunctuationInputPort, v)
}
func (s *OutputPortOpenSet) IsSetWindowPunctuationInputPort() bool {
	return s.Node().IsSet(outputPortWindowPunctuationInputPort)
}

// FinalPunctuationPortScope returns the final punctuation port scope
// child, or nil when absent; SetFinalPunctuationPortScope replaces it.
func (s *OutputPortOpenSet) FinalPunctuationPortScope() *OptionalPortScope {
	return (*OptionalPortScope)(s.Node().Child(outputPortFinalPunctuationPortScope))
}
func (s *OutputPortOpenSet) SetFinalPunctuationPortScope(v *OptionalPortScope) {
	s.Node().SetChild(outputPortFinalPunctuationPortScope, v.Node())
}

// TupleMutationAllowed reports the tuple mutation allowed flag, or its
// default while unset.
func (s *OutputPortOpenSet) TupleMutationAllowed() bool {
	return s.Node().Bool(outputPortTupleMutationAllowed)
}
func (s *OutputPortOpenSet) SetTupleMutationAllowed(v bool) {
	s.Node().Set(outputPortTupleMutationAllowed, v)
}
func (s *OutputPortOpenSet) IsSetTupleMutationAllowed() bool {
	return s.Node().IsSet(outputPortTupleMutationAllowed)
}
func (s *OutputPortOpenSet) UnsetTupleMutationAllowed() {
	s.Node().Unset(outputPortTupleMutationAllowed)
}

// OutputAssignmentPortScope returns the output assignment port scope
// child, or nil when absent; SetOutputAssignmentPortScope replaces it.
func (s *OutputPortOpenSet) OutputAssignmentPortScope() *PortScope {
	return (*PortScope)(s.Node().Child(outputPortOutputAssignmentPortScope))
}
func (s *OutputPortOpenSet) SetOutputAssignmentPortScope(v *PortScope) {
	s.Node().SetChild(outputPortOutputAssignmentPortScope, v.Node())
}

// AllowNestedCustomOutputFunctions reports the allow nested custom output
// functions flag, or its default while unset.
func (s *OutputPortOpenSet) AllowNestedCustomOutputFunctions() bool {
	return s.Node().Bool(outputPortAllowNestedCustomOutputFunctions)
}
func (s *OutputPortOpenSet) SetAllowNestedCustomOutputFunctions(v bool) {
	s.Node().Set(outputPortAllowNestedCustomOutputFunctions, v)
}
func (s *OutputPortOpenSet) IsSetAllowNestedCustomOutputFunctions() bool {
	return s.Node().IsSet(outputPortAllowNestedCustomOutputFunctions)
}
func (s *OutputPortOpenSet) UnsetAllowNestedCustomOutputFunctions() {
	s.Node().Unset(outputPortAllowNestedCustomOutputFunctions)
}

// OutputPortSet describes a fixed number of output ports.
type OutputPortSet model.Node

func asOutputPortSet(n *model.Node) *OutputPortSet { return (*OutputPortSet)(n) }

// Node returns the output port set as a generic node.
func (s *OutputPortSet) Node() *model.Node { return (*model.Node)(s) }

// OpenSet returns the port set viewed as its base type.
func (s *OutputPortSet) OpenSet() *OutputPortOpenSet { return (*OutputPortOpenSet)(s) }

// Cardinality returns the output port set cardinality.
func (s *OutputPortSet) Cardinality() int64     { return s.Node().Int(outputPortCardinality) }
func (s *OutputPortSet) SetCardinality(v int64) { s.Node().Set(outputPortCardinality, v) }

// Optional reports the optional flag, or its default while unset.
func (s *OutputPortSet) Optional() bool      { return s.Node().Bool(outputPortOptional) }
func (s *OutputPortSet) SetOptional(v bool)  { s.Node().Set(outputPortOptional, v) }
func (s *OutputPortSet) IsSetOptional() bool { return s.Node().IsSet(outputPortOptional) }
func (s *OutputPortSet) UnsetOptional()      { s.Node().Unset(outputPortOptional) }

// OutputFunctions names the output function type of a port and its
// default function.
type OutputFunctions model.Node

// Node returns the output functions as a generic node.
func (f *OutputFunctions) Node() *model.Node { return (*model.Node)(f) }

// Default returns the output functions default.
func (f *OutputFunctions) Default() string     { return f.Node().String(outputFunctionsDefault) }
func (f *OutputFunctions) SetDefault(v string) { f.Node().Set(outputFunctionsDefault, v) }

// Type returns the output functions type.
func (f *OutputFunctions) Type() string     { return f.Node().String(outputFunctionsType) }
func (f *OutputFunctions) SetType(v string) { f.Node().Set(outputFunctionsType, v) }
