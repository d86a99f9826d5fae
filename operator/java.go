package operator

import "github.com/andaru/splmodel/model"

// JavaOpModel describes a Java primitive operator.
type JavaOpModel model.Node

// Node returns the java op model as a generic node.
func (m *JavaOpModel) Node() *model.Node { return (*model.Node)(m) }

// Context returns the context child, or nil when absent; SetContext
// replaces it.
func (m *JavaOpModel) Context() *JavaOpContext {
	return (*JavaOpContext)(m.Node().Child(opModelContext))
}
func (m *JavaOpModel) SetContext(v *JavaOpContext) { m.Node().SetChild(opModelContext, v.Node()) }

// Parameters returns the parameters child, or nil when absent;
// SetParameters replaces it.
func (m *JavaOpModel) Parameters() *JavaOpParameters {
	return (*JavaOpParameters)(m.Node().Child(opModelParameters))
}
func (m *JavaOpModel) SetParameters(v *JavaOpParameters) {
	m.Node().SetChild(opModelParameters, v.Node())
}

// InputPorts returns the input ports child, or nil when absent;
// SetInputPorts replaces it.
func (m *JavaOpModel) InputPorts() *JavaOpInputPorts {
	return (*JavaOpInputPorts)(m.Node().Child(opModelInputPorts))
}
func (m *JavaOpModel) SetInputPorts(v *JavaOpInputPorts) {
	m.Node().SetChild(opModelInputPorts, v.Node())
}

// OutputPorts returns the output ports child, or nil when absent;
// SetOutputPorts replaces it.
func (m *JavaOpModel) OutputPorts() *JavaOpOutputPorts {
	return (*JavaOpOutputPorts)(m.Node().Child(opModelOutputPorts))
}
func (m *JavaOpModel) SetOutputPorts(v *JavaOpOutputPorts) {
	m.Node().SetChild(opModelOutputPorts, v.Node())
}

// JavaOpContext holds the operator-wide properties of a Java operator.
type JavaOpContext model.Node

// Node returns the java op context as a generic node.
func (c *JavaOpContext) Node() *model.Node { return (*model.Node)(c) }

// Description returns the description child, or nil when absent;
// SetDescription replaces it.
func (c *JavaOpContext) Description() *Description {
	return (*Description)(c.Node().Child(javaOpContextDescription))
}
func (c *JavaOpContext) SetDescription(v *Description) {
	c.Node().SetChild(javaOpContextDescription, v.Node())
}

// IconURIs returns the icon UR is as a live list.
func (c *JavaOpContext) IconURIs() model.List[*IconURI] {
	return model.NewList(c.Node().List(javaOpContextIconURI), asIconURI, (*IconURI).Node)
}

// Metrics returns the metrics child, or nil when absent; SetMetrics
// replaces it.
func (c *JavaOpContext) Metrics() *Metrics     { return (*Metrics)(c.Node().Child(javaOpContextMetrics)) }
func (c *JavaOpContext) SetMetrics(v *Metrics) { c.Node().SetChild(javaOpContextMetrics, v.Node()) }

// CustomLiterals returns the custom literals child, or nil when absent;
// SetCustomLiterals replaces it.
func (c *JavaOpContext) CustomLiterals() *Enumerations {
	return (*Enumerations)(c.Node().Child(javaOpContextCustomLiterals))
}
func (c *JavaOpContext) SetCustomLiterals(v *Enumerations) {
	c.Node().SetChild(javaOpContextCustomLiterals, v.Node())
}

// ExecutionSettings returns the execution settings child, or nil when
// absent; SetExecutionSettings replaces it.
func (c *JavaOpContext) ExecutionSettings() *JavaOpExecutionSettings {
	return (*JavaOpExecutionSettings)(c.Node().Child(javaOpContextExecutionSettings))
}
func (c *JavaOpContext) SetExecutionSettings(v *JavaOpExecutionSettings) {
	c.Node().SetChild(javaOpContextExecutionSettings, v.Node())
}

// LibraryDependencies returns the library dependencies child, or nil when
// absent; SetLibraryDependencies replaces it.
func (c *JavaOpContext) LibraryDependencies() *JavaOpLibraryDependencies {
	return (*JavaOpLibraryDependencies)(c.Node().Child(javaOpContextLibraryDependencies))
}
func (c *JavaOpContext) SetLibraryDependencies(v *JavaOpLibraryDependencies) {
	c.Node().SetChild(javaOpContextLibraryDependencies, v.Node())
}

// CodeTemplates returns the code templates child, or nil when absent;
// SetCodeTemplates replaces it.
func (c *JavaOpContext) CodeTemplates() *CodeTemplates {
	return (*CodeTemplates)(c.Node().Child(javaOpContextCodeTemplates))
}
func (c *JavaOpContext) SetCodeTemplates(v *CodeTemplates) {
	c.Node().SetChild(javaOpContextCodeTemplates, v.Node())
}

// JavaOpExecutionSettings names the operator class and JVM arguments.
type JavaOpExecutionSettings model.Node

// Node returns the java op execution settings as a generic node.
func (s *JavaOpExecutionSettings) Node() *model.Node { return (*model.Node)(s) }

// ClassName returns the java op execution settings class name.
func (s *JavaOpExecutionSettings) ClassName() string {
	return s.Node().String(javaOpExecutionSettingsClassName)
}
func (s *JavaOpExecutionSettings) SetClassName(v string) {
	s.Node().Set(javaOpExecutionSettingsClassName, v)
}

// VMArgs returns the VM args child, or nil when absent; SetVMArgs replaces it.
func (s *JavaOpExecutionSettings) VMArgs() *JavaOpVMArgs {
	return (*JavaOpVMArgs)(s.Node().Child(javaOpExecutionSettingsVMArgs))
}
func (s *JavaOpExecutionSettings) SetVMArgs(v *JavaOpVMArgs) {
	s.Node().SetChild(javaOpExecutionSettingsVMArgs, v.Node())
}

type JavaOpVMArgs model.Node

// Node returns the java op VM args as a generic node.
func (a *JavaOpVMArgs) Node() *model.Node { return (*model.Node)(a) }

// VMArgs returns the VM args in document order.
func (a *JavaOpVMArgs) VMArgs() []string      { return a.Node().Strings(javaOpVMArgsVMArg) }
func (a *JavaOpVMArgs) SetVMArgs(v ...string) { a.Node().Set(javaOpVMArgsVMArg, v) }
func (a *JavaOpVMArgs) AddVMArg(v string)     { a.Node().AddValue(javaOpVMArgsVMArg, v) }

// JavaOpLibraryDependencies lists the class path entries of a Java
// operator. At least one library is required.
type JavaOpLibraryDependencies model.Node

// Node returns the java op library dependencies as a generic node.
func (d *JavaOpLibraryDependencies) Node() *model.Node { return (*model.Node)(d) }

// Libraries returns the libraries as a live list.
func (d *JavaOpLibraryDependencies) Libraries() model.List[*JavaOpLibrary] {
	return model.NewList(d.Node().List(libraryDependenciesLibrary), asJavaOpLibrary, (*JavaOpLibrary).Node)
}

// JavaOpParameters lists the parameters of a Java operator.
type JavaOpParameters model.Node

// Node returns the java op parameters as a generic node.
func (p *JavaOpParameters) Node() *model.Node { return (*model.Node)(p) }

// Description returns the description child, or nil when absent;
// SetDescription replaces it.
func (p *JavaOpParameters) Description() *Description {
	return (*Description)(p.Node().Child(javaOpParametersDescription))
}
func (p *JavaOpParameters) SetDescription(v *Description) {
	p.Node().SetChild(javaOpParametersDescription, v.Node())
}

// Parameters returns the parameters as a live list.
func (p *JavaOpParameters) Parameters() model.List[*JavaOpParameter] {
	return model.NewList(p.Node().List(javaOpParametersParameter), asJavaOpParameter, (*JavaOpParameter).Node)
}

type JavaOpParameter model.Node

func asJavaOpParameter(n *model.Node) *JavaOpParameter { return (*JavaOpParameter)(n) }

// Node returns the java op parameter as a generic node.
func (p *JavaOpParameter) Node() *model.Node { return (*model.Node)(p) }

// Name returns the java op parameter name.
func (p *JavaOpParameter) Name() string     { return p.Node().String(javaOpParameterName) }
func (p *JavaOpParameter) SetName(v string) { p.Node().Set(javaOpParameterName, v) }

// Description returns the description child, or nil when absent;
// SetDescription replaces it.
func (p *JavaOpParameter) Description() *Description {
	return (*Description)(p.Node().Child(javaOpParameterDescription))
}
func (p *JavaOpParameter) SetDescription(v *Description) {
	p.Node().SetChild(javaOpParameterDescription, v.Node())
}

// Optional reports the optional flag, or its default while unset.
func (p *JavaOpParameter) Optional() bool      { return p.Node().Bool(javaOpParameterOptional) }
func (p *JavaOpParameter) SetOptional(v bool)  { p.Node().Set(javaOpParameterOptional, v) }
func (p *JavaOpParameter) IsSetOptional() bool { return p.Node().IsSet(javaOpParameterOptional) }
func (p *JavaOpParameter) UnsetOptional()      { p.Node().Unset(javaOpParameterOptional) }

// ExpressionMode returns the expression mode, or its default while unset.
func (p *JavaOpParameter) ExpressionMode() JavaOpExpressionMode {
	return JavaOpExpressionMode(p.Node().Enum(javaOpParameterExpressionMode))
}
func (p *JavaOpParameter) SetExpressionMode(v JavaOpExpressionMode) {
	p.Node().Set(javaOpParameterExpressionMode, v)
}
func (p *JavaOpParameter) IsSetExpressionMode() bool {
	return p.Node().IsSet(javaOpParameterExpressionMode)
}
func (p *JavaOpParameter) UnsetExpressionMode() { p.Node().Unset(javaOpParameterExpressionMode) }

// Type returns the java op parameter type.
func (p *JavaOpParameter) Type() string     { return p.Node().String(javaOpParameterType) }
func (p *JavaOpParameter) SetType(v string) { p.Node().Set(javaOpParameterType, v) }

// Cardinality returns the cardinality, or its default while unset.
func (p *JavaOpParameter) Cardinality() int64     { return p.Node().Int(javaOpParameterCardinality) }
func (p *JavaOpParameter) SetCardinality(v int64) { p.Node().Set(javaOpParameterCardinality, v) }
func (p *JavaOpParameter) IsSetCardinality() bool { return p.Node().IsSet(javaOpParameterCardinality) }

type JavaOpInputPorts model.Node

// Node returns the java op input ports as a generic node.
func (p *JavaOpInputPorts) Node() *model.Node { return (*model.Node)(p) }

// InputPortSets returns the input port sets as a live list.
func (p *JavaOpInputPorts) InputPortSets() model.List[*JavaOpInputPortSet] {
	return model.NewList(p.Node().List(inputPortsSet), asJavaOpInputPortSet, (*JavaOpInputPortSet).Node)
}

// InputPortOpenSet returns the input port open set child, or nil when
// absent; SetInputPortOpenSet replaces it.
func (p *JavaOpInputPorts) InputPortOpenSet() *JavaOpInputPortOpenSet {
	return (*JavaOpInputPortOpenSet)(p.Node().Child(inputPortsOpenSet))
}
func (p *JavaOpInputPorts) SetInputPortOpenSet(v *JavaOpInputPortOpenSet) {
	p.Node().SetChild(inputPortsOpenSet, v.Node())
}

type JavaOpInputPortOpenSet model.Node

// Node returns the java op input port open set as a generic node.
func (s *JavaOpInputPortOpenSet) Node() *model.Node { return (*model.Node)(s) }

// Description returns the description child, or nil when absent;
// SetDescription replaces it.
func (s *JavaOpInputPortOpenSet) Description() *Description {
	return (*Description)(s.Node().Child(javaOpInputPortDescription))
}
func (s *JavaOpInputPortOpenSet) SetDescription(v *Description) {
	s.Node().SetChild(javaOpInputPortDescription, v.Node())
}

// WindowingDescription returns the windowing description child, or nil
// when absent; SetWindowingDescription replaces it.
func (s *JavaOpInputPortOpenSet) WindowingDescription() *Description {
	return (*Description)(s.Node().Child(javaOpInputPortWindowingDescription))
}
func (s *JavaOpInputPortOpenSet) SetWindowingDescription(v *Description) {
	s.Node().SetChild(javaOpInputPortWindowingDescription, v.Node())
}

// WindowingMode returns the windowing mode, or its default while unset.
func (s *JavaOpInputPortOpenSet) WindowingMode() WindowingMode {
	return WindowingMode(s.Node().Enum(javaOpInputPortWindowingMode))
}
func (s *JavaOpInputPortOpenSet) SetWindowingMode(v WindowingMode) {
	s.Node().Set(javaOpInputPortWindowingMode, v)
}
func (s *JavaOpInputPortOpenSet) IsSetWindowingMode() bool {
	return s.Node().IsSet(javaOpInputPortWindowingMode)
}
func (s *JavaOpInputPortOpenSet) UnsetWindowingMode() { s.Node().Unset(javaOpInputPortWindowingMode) }

// WindowPunctuationInputMode returns the window punctuation input mode, or
// its default while unset.
func (s *JavaOpInputPortOpenSet) WindowPunctuationInputMode() WindowPunctuationInputMode {
	return WindowPunctuationInputMode(s.Node().Enum(javaOpInputPortWindowPunctuationInputMode))
}
func (s *JavaOpInputPortOpenSet) SetWindowPunctuationInputMode(v WindowPunctuationInputMode) {
	s.Node().Set(javaOpInputPortWindowPunctuationInputMode, v)
}
func (s *JavaOpInputPortOpenSet) IsSetWindowPunctuationInputMode() bool {
	return s.Node().IsSet(javaOpInputPortWindowPunctuationInputMode)
}
func (s *JavaOpInputPortOpenSet) UnsetWindowPunctuationInputMode() {
	s.Node().Unset(javaOpInputPortWindowPunctuationInputMode)
}

// ControlPort reports the control port flag, or its default while unset.
func (s *JavaOpInputPortOpenSet) ControlPort() bool { return s.Node().Bool(javaOpInputPortControlPort) }
func (s *JavaOpInputPortOpenSet) SetControlPort(v bool) {
	s.Node().Set(javaOpInputPortControlPort, v)
}
func (s *JavaOpInputPortOpenSet) IsSetControlPort() bool {
	return s.Node().IsSet(javaOpInputPortControlPort)
}
func (s *JavaOpInputPortOpenSet) UnsetControlPort() { s.Node().Unset(javaOpInputPortControlPort) }

type JavaOpInputPortSet model.Node

func asJavaOpInputPortSet(n *model.Node) *JavaOpInputPortSet { return (*JavaOpInputPortSet)(n) }

// Node returns the java op input port set as a generic node.
func (s *JavaOpInputPortSet) Node() *model.Node { return (*model.Node)(s) }

// OpenSet returns the port set viewed as its base type.
func (s *JavaOpInputPortSet) OpenSet() *JavaOpInputPortOpenSet { return (*JavaOpInputPortOpenSet)(s) }

// Cardinality returns the java op input port set cardinality.
func (s *JavaOpInputPortSet) Cardinality() int64     { return s.Node().Int(javaOpInputPortCardinality) }
func (s *JavaOpInputPortSet) SetCardinality(v int64) { s.Node().Set(javaOpInputPortCardinality, v) }

// Optional reports the optional flag, or its default while unset.
func (s *JavaOpInputPortSet) Optional() bool      { return s.Node().Bool(javaOpInputPortOptional) }
func (s *JavaOpInputPortSet) SetOptional(v bool)  { s.Node().Set(javaOpInputPortOptional, v) }
func (s *JavaOpInputPortSet) IsSetOptional() bool { return s.Node().IsSet(javaOpInputPortOptional) }
func (s *JavaOpInputPortSet) UnsetOptional()      { s.Node().Unset(javaOpInputPortOptional) }

type JavaOpOutputPorts model.Node

// Node returns the java op output ports as a generic node.
func (p *JavaOpOutputPorts) Node() *model.Node { return (*model.Node)(p) }

// OutputPortSets returns the output port sets as a live list.
func (p *JavaOpOutputPorts) OutputPortSets() model.List[*JavaOpOutputPortSet] {
	return model.NewList(p.Node().List(outputPortsSet), asJavaOpOutputPortSet, (*JavaOpOutputPortSet).Node)
}

// OutputPortOpenSet returns the output port open set child, or nil when
// absent; SetOutputPortOpenSet replaces it.
func (p *JavaOpOutputPorts) OutputPortOpenSet() *JavaOpOutputPortOpenSet {
	return (*JavaOpOutputPortOpenSet)(p.Node().Child(outputPortsOpenSet))
}
func (p *JavaOpOutputPorts) SetOutputPortOpenSet(v *JavaOpOutputPortOpenSet) {
	p.Node().SetChild(outputPortsOpenSet, v.Node())
}

type JavaOpOutputPortOpenSet model.Node

// Node returns the java op output port open set as a generic node.
func (s *JavaOpOutputPortOpenSet) Node() *model.Node { return (*model.Node)(s) }

// Description returns the description child, or nil when absent;
// SetDescription replaces it.
func (s *JavaOpOutputPortOpenSet) Description() *Description {
	return (*Description)(s.Node().Child(javaOpOutputPortDescription))
}
func (s *JavaOpOutputPortOpenSet) SetDescription(v *Description) {
	s.Node().SetChild(javaOpOutputPortDescription, v.Node())
}

// WindowPunctuationOutputMode returns the window punctuation output mode,
// or its default while unset.
func (s *JavaOpOutputPortOpenSet) WindowPunctuationOutputMode() WindowPunctuationOutputMode {
	return WindowPunctuationOutputMode(s.Node().Enum(javaOpOutputPortWindowPunctuationOutputMode))
}
func (s *JavaOpOutputPortOpenSet) SetWindowPunctuationOutputMode(v WindowPunctuationOutputMode) {
	s.Node().Set(javaOpOutputPortWindowPunctuationOutputMode, v)
}
func (s *JavaOpOutputPortOpenSet) IsSetWindowPunctuationOutputMode() bool {
	return s.Node().IsSet(javaOpOutputPortWindowPunctuationOutputMode)
}
func (s *JavaOpOutputPortOpenSet) UnsetWindowPunctuationOutputMode() {
	s.Node().Unset(javaOpOutputPortWindowPunctuationOutputMode)
}

// WindowPunctuationInputPort returns the window punctuation input port, or
// its default while unset.
func (s *JavaOpOutputPortOpenSet) WindowPunctuationInputPort() int64 {
	return s.Node().Int(javaOpOutputPortWindowPunctuationInputPort)
}
func (s *JavaOpOutputPortOpenSet) SetWindowPunctuationInputPort(v int64) {
	s.Node().Set(javaOpOutputPortWindowPunctuationInputPort, v)
}
func (s *JavaOpOutputPortOpenSet) IsSetWindowPunctuationInputPort() bool {
	return s.Node().IsSet(javaOpOutputPortWindowPunctuationInputPort)
}

// FinalPunctuationPortScope returns the final punctuation port scope
// child, or nil when absent; SetFinalPunctuationPortScope replaces it.
func (s *JavaOpOutputPortOpenSet) FinalPunctuationPortScope() *OptionalPortScope {
	return (*OptionalPortScope)(s.Node().Child(javaOpOutputPortFinalPunctuationPortScope))
}
func (s *JavaOpOutputPortOpenSet) SetFinalPunctuationPortScope(v *OptionalPortScope) {
	s.Node().SetChild(javaOpOutputPortFinalPunctuationPortScope, v.Node())
}

type JavaOpOutputPortSet model.Node

func asJavaOpOutputPortSet(n *model.Node) *JavaOpOutputPortSet { return (*JavaOpOutputPortSet)(n) }

// Node returns the java op output port set as a generic node.
func (s *JavaOpOutputPortSet) Node() *model.Node { return (*model.Node)(s) }

// OpenSet returns the port set viewed as its base type.
func (s *JavaOpOutputPortSet) OpenSet() *JavaOpOutputPortOpenSet { return (*JavaOpOutputPortOpenSet)(s) }

// Cardinality returns the java op output port set cardinality.
func (s *JavaOpOutputPortSet) Cardinality() int64     { return s.Node().Int(javaOpOutputPortCardinality) }
func (s *JavaOpOutputPortSet) SetCardinality(v int64) { s.Node().Set(javaOpOutputPortCardinality, v) }

// Optional reports the optional flag, or its default while unset.
func (s *JavaOpOutputPortSet) Optional() bool      { return s.Node().Bool(javaOpOutputPortOptional) }
func (s *JavaOpOutputPortSet) SetOptional(v bool)  { s.Node().Set(javaOpOutputPortOptional, v) }
func (s *JavaOpOutputPortSet) IsSetOptional() bool { return s.Node().IsSet(javaOpOutputPortOptional) }
func (s *JavaOpOutputPortSet) UnsetOptional()      { s.Node().Unset(javaOpOutputPortOptional) }
