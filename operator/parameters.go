package operator

import "github.com/andaru/splmodel/model"

// Parameters lists the parameters a C++ operator accepts.
type Parameters model.Node

// Node returns the parameters as a generic node.
func (p *Parameters) Node() *model.Node { return (*model.Node)(p) }

// Description returns the description child, or nil when absent;
// SetDescription replaces it.
func (p *Parameters) Description() *Description {
	return (*Description)(p.Node().Child(parametersDescription))
}
func (p *Parameters) SetDescription(v *Description) {
	p.Node().SetChild(parametersDescription, v.Node())
}

// AllowAny reports whether parameters beyond those listed are accepted.
func (p *Parameters) AllowAny() bool      { return p.Node().Bool(parametersAllowAny) }
func (p *Parameters) SetAllowAny(v bool)  { p.Node().Set(parametersAllowAny, v) }
func (p *Parameters) IsSetAllowAny() bool { return p.Node().IsSet(parametersAllowAny) }
func (p *Parameters) UnsetAllowAny()      { p.Node().Unset(parametersAllowAny) }

// Parameters returns the parameters as a live list.
func (p *Parameters) Parameters() model.List[*Parameter] {
	return model.NewList(p.Node().List(parametersParameter), asParameter, (*Parameter).Node)
}

// Parameter describes one operator parameter.
type Parameter model.Node

func asParameter(n *model.Node) *Parameter { return (*Parameter)(n) }

// Node returns the parameter as a generic node.
func (p *Parameter) Node() *model.Node { return (*model.Node)(p) }

// Name returns the parameter name.
func (p *Parameter) Name() string     { return p.Node().String(parameterName) }
func (p *Parameter) SetName(v string) { p.Node().Set(parameterName, v) }

// Description returns the description child, or nil when absent;
// SetDescription replaces it.
func (p *Parameter) Description() *Description {
	return (*Description)(p.Node().Child(parameterDescription))
}
func (p *Parameter) SetDescription(v *Description) {
	p.Node().SetChild(parameterDescription, v.Node())
}

// Optional reports the optional flag, or its default while unset.
func (p *Parameter) Optional() bool      { return p.Node().Bool(parameterOptional) }
func (p *Parameter) SetOptional(v bool)  { p.Node().Set(parameterOptional, v) }
func (p *Parameter) IsSetOptional() bool { return p.Node().IsSet(parameterOptional) }
func (p *Parameter) UnsetOptional()      { p.Node().Unset(parameterOptional) }

// RewriteAllowed reports the rewrite allowed flag, or its default while unset.
func (p *Parameter) RewriteAllowed() bool      { return p.Node().Bool(parameterRewriteAllowed) }
func (p *Parameter) SetRewriteAllowed(v bool)  { p.Node().Set(parameterRewriteAllowed, v) }
func (p *Parameter) IsSetRewriteAllowed() bool { return p.Node().IsSet(parameterRewriteAllowed) }
func (p *Parameter) UnsetRewriteAllowed()      { p.Node().Unset(parameterRewriteAllowed) }

// ExpressionMode returns the expression mode, or its default while unset.
func (p *Parameter) ExpressionMode() ExpressionMode {
	return ExpressionMode(p.Node().Enum(parameterExpressionMode))
}
func (p *Parameter) SetExpressionMode(v ExpressionMode) { p.Node().Set(parameterExpressionMode, v) }
func (p *Parameter) IsSetExpressionMode() bool          { return p.Node().IsSet(parameterExpressionMode) }
func (p *Parameter) UnsetExpressionMode()               { p.Node().Unset(parameterExpressionMode) }

// Type is the SPL type of the parameter values, if restricted.
func (p *Parameter) Type() string     { return p.Node().String(parameterType) }
func (p *Parameter) SetType(v string) { p.Node().Set(parameterType, v) }

// Cardinality is the number of values accepted; -1 means any number.
// It is meaningful only when IsSetCardinality is true.
func (p *Parameter) Cardinality() int64     { return p.Node().Int(parameterCardinality) }
func (p *Parameter) SetCardinality(v int64) { p.Node().Set(parameterCardinality, v) }
func (p *Parameter) IsSetCardinality() bool { return p.Node().IsSet(parameterCardinality) }

// PortScope returns the port scope child, or nil when absent; SetPortScope
// replaces it.
func (p *Parameter) PortScope() *PortScope { return (*PortScope)(p.Node().Child(parameterPortScope)) }
func (p *Parameter) SetPortScope(v *PortScope) {
	p.Node().SetChild(parameterPortScope, v.Node())
}

// CustomOutputFunction returns the parameter custom output function.
func (p *Parameter) CustomOutputFunction() string {
	return p.Node().String(parameterCustomOutputFunction)
}
func (p *Parameter) SetCustomOutputFunction(v string) {
	p.Node().Set(parameterCustomOutputFunction, v)
}

// PortScope lists input port indexes; at least one is required.
type PortScope model.Node

// Node returns the port scope as a generic node.
func (s *PortScope) Node() *model.Node { return (*model.Node)(s) }

// Ports returns the ports in document order.
func (s *PortScope) Ports() []int64      { return s.Node().Ints(portScopePort) }
func (s *PortScope) SetPorts(v ...int64) { s.Node().Set(portScopePort, v) }
func (s *PortScope) AddPort(v int64)     { s.Node().AddValue(portScopePort, v) }

// OptionalPortScope lists input port indexes; it may be empty.
type OptionalPortScope model.Node

// Node returns the optional port scope as a generic node.
func (s *OptionalPortScope) Node() *model.Node { return (*model.Node)(s) }

// Ports returns the ports in document order.
func (s *OptionalPortScope) Ports() []int64      { return s.Node().Ints(portScopePort) }
func (s *OptionalPortScope) SetPorts(v ...int64) { s.Node().Set(portScopePort, v) }
func (s *OptionalPortScope) AddPort(v int64)     { s.Node().AddValue(portScopePort, v) }
