package operator

import (
	"github.com/andaru/splmodel/model"
)

// OperatorModel is the document element. It holds exactly one of a
// C++ or a Java operator model.
type OperatorModel model.Node

// Node returns the operator model as a generic node.
func (m *OperatorModel) Node() *model.Node { return (*model.Node)(m) }

// AsOperatorModel returns n as an OperatorModel if it is one.
func AsOperatorModel(n *model.Node) (*OperatorModel, bool) {
	if n == nil || !n.Type().IsA(KindOperatorModel) {
		return nil, false
	}
	return (*OperatorModel)(n), true
}

// CppOperatorModel returns the cpp operator model child, or nil when absent.
func (m *OperatorModel) CppOperatorModel() *OpModel {
	return (*OpModel)(m.Node().Child(operatorModelCpp))
}

// SetCppOperatorModel sets the cpp operator model.
func (m *OperatorModel) SetCppOperatorModel(v *OpModel) {
	m.Node().SetChild(operatorModelCpp, v.Node())
}

// JavaOperatorModel returns the java operator model child, or nil when absent.
func (m *OperatorModel) JavaOperatorModel() *JavaOpModel {
	return (*JavaOpModel)(m.Node().Child(operatorModelJava))
}

// SetJavaOperatorModel sets the java operator model.
func (m *OperatorModel) SetJavaOperatorModel(v *JavaOpModel) {
	m.Node().SetChild(operatorModelJava, v.Node())
}

// OpModel describes a C++ primitive operator.
type OpModel model.Node

// Node returns the op model as a generic node.
func (m *OpModel) Node() *model.Node { return (*model.Node)(m) }

// Context returns the context child, or nil when absent; SetContext
// replaces it.
func (m *OpModel) Context() *Context     { return (*Context)(m.Node().Child(opModelContext)) }
func (m *OpModel) SetContext(v *Context) { m.Node().SetChild(opModelContext, v.Node()) }

// Parameters returns the parameters child, or nil when absent;
// SetParameters replaces it.
func (m *OpModel) Parameters() *Parameters     { return (*Parameters)(m.Node().Child(opModelParameters)) }
func (m *OpModel) SetParameters(v *Parameters) { m.Node().SetChild(opModelParameters, v.Node()) }

// InputPorts returns the input ports child, or nil when absent;
// SetInputPorts replaces it.
func (m *OpModel) InputPorts() *InputPorts     { return (*InputPorts)(m.Node().Child(opModelInputPorts)) }
func (m *OpModel) SetInputPorts(v *InputPorts) { m.Node().SetChild(opModelInputPorts, v.Node()) }

// OutputPorts returns the output ports child, or nil when absent;
// SetOutputPorts replaces it.
func (m *OpModel) OutputPorts() *OutputPorts { return (*OutputPorts)(m.Node().Child(opModelOutputPorts)) }
func (m *OpModel) SetOutputPorts(v *OutputPorts) {
	m.Node().SetChild(opModelOutputPorts, v.Node())
}

// Context holds the operator-wide properties of a C++ operator.
type Context model.Node

// Node returns the context as a generic node.
func (c *Context) Node() *model.Node { return (*model.Node)(c) }

// Description returns the description child, or nil when absent;
// SetDescription replaces it.
func (c *Context) Description() *Description { return (*Description)(c.Node().Child(contextDescription)) }
func (c *Context) SetDescription(v *Description) {
	c.Node().SetChild(contextDescription, v.Node())
}

// IconURIs returns the icon UR is as a live list.
func (c *Context) IconURIs() model.List[*IconURI] {
	return model.NewList(c.Node().List(contextIconURI), asIconURI, (*IconURI).Node)
}

// Metrics returns the metrics child, or nil when absent; SetMetrics
// replaces it.
func (c *Context) Metrics() *Metrics     { return (*Metrics)(c.Node().Child(contextMetrics)) }
func (c *Context) SetMetrics(v *Metrics) { c.Node().SetChild(contextMetrics, v.Node()) }

// CustomLiterals returns the custom literals child, or nil when absent;
// SetCustomLiterals replaces it.
func (c *Context) CustomLiterals() *Enumerations {
	return (*Enumerations)(c.Node().Child(contextCustomLiterals))
}
func (c *Context) SetCustomLiterals(v *Enumerations) {
	c.Node().SetChild(contextCustomLiterals, v.Node())
}

// CustomOutputFunctions returns the custom output functions child, or nil
// when absent; SetCustomOutputFunctions replaces it.
func (c *Context) CustomOutputFunctions() *CustomOutputFunctions {
	return (*CustomOutputFunctions)(c.Node().Child(contextCustomOutputFunctions))
}
func (c *Context) SetCustomOutputFunctions(v *CustomOutputFunctions) {
	c.Node().SetChild(contextCustomOutputFunctions, v.Node())
}

// LibraryDependencies returns the library dependencies child, or nil when
// absent; SetLibraryDependencies replaces it.
func (c *Context) LibraryDependencies() *LibraryDependencies {
	return (*LibraryDependencies)(c.Node().Child(contextLibraryDependencies))
}
func (c *Context) SetLibraryDependencies(v *LibraryDependencies) {
	c.Node().SetChild(contextLibraryDependencies, v.Node())
}

// ProvidesSingleThreadedContext returns the provides single threaded
// context, or its default while unset.
func (c *Context) ProvidesSingleThreadedContext() SingleThreadedContext {
	return SingleThreadedContext(c.Node().Enum(contextProvidesSingleThreadedContext))
}
func (c *Context) SetProvidesSingleThreadedContext(v SingleThreadedContext) {
	c.Node().Set(contextProvidesSingleThreadedContext, v)
}
func (c *Context) IsSetProvidesSingleThreadedContext() bool {
	return c.Node().IsSet(contextProvidesSingleThreadedContext)
}
func (c *Context) UnsetProvidesSingleThreadedContext() {
	c.Node().Unset(contextProvidesSingleThreadedContext)
}

// IncrementalCompilationStrategy returns the incremental compilation
// strategy, or its default while unset.
func (c *Context) IncrementalCompilationStrategy() IncrementalCompilationStrategy {
	return IncrementalCompilationStrategy(c.Node().Enum(contextIncrementalCompilationStrategy))
}
func (c *Context) SetIncrementalCompilationStrategy(v IncrementalCompilationStrategy) {
	c.Node().Set(contextIncrementalCompilationStrategy, v)
}
func (c *Context) IsSetIncrementalCompilationStrategy() bool {
	return c.Node().IsSet(contextIncrementalCompilationStrategy)
}
func (c *Context) UnsetIncrementalCompilationStrategy() {
	c.Node().Unset(contextIncrementalCompilationStrategy)
}

// AllowCustomLogic reports the allow custom logic flag, or its default
// while unset.
func (c *Context) AllowCustomLogic() bool      { return c.Node().Bool(contextAllowCustomLogic) }
func (c *Context) SetAllowCustomLogic(v bool)  { c.Node().Set(contextAllowCustomLogic, v) }
func (c *Context) IsSetAllowCustomLogic() bool { return c.Node().IsSet(contextAllowCustomLogic) }
func (c *Context) UnsetAllowCustomLogic()      { c.Node().Unset(contextAllowCustomLogic) }

// CodeTemplates returns the code templates child, or nil when absent;
// SetCodeTemplates replaces it.
func (c *Context) CodeTemplates() *CodeTemplates {
	return (*CodeTemplates)(c.Node().Child(contextCodeTemplates))
}
func (c *Context) SetCodeTemplates(v *CodeTemplates) {
	c.Node().SetChild(contextCodeTemplates, v.Node())
}

// SplExpressionTree returns the spl expression tree child, or nil when
// absent; SetSplExpressionTree replaces it.
func (c *Context) SplExpressionTree() *SplExpressionTree {
	return (*SplExpressionTree)(c.Node().Child(contextSplExpressionTree))
}
func (c *Context) SetSplExpressionTree(v *SplExpressionTree) {
	c.Node().SetChild(contextSplExpressionTree, v.Node())
}

// Capabilities returns the capability strings in document order.
func (c *Context) Capabilities() []string      { return c.Node().Strings(contextCapability) }
func (c *Context) SetCapabilities(v ...string) { c.Node().Set(contextCapability, v) }
func (c *Context) AddCapability(v string)      { c.Node().AddValue(contextCapability, v) }

// VerificationModule returns the context verification module.
func (c *Context) VerificationModule() string     { return c.Node().String(contextVerificationModule) }
func (c *Context) SetVerificationModule(v string) { c.Node().Set(contextVerificationModule, v) }

// IconURI names an icon image of a given size.
type IconURI model.Node

func asIconURI(n *model.Node) *IconURI { return (*IconURI)(n) }

// Node returns the icon URI as a generic node.
func (u *IconURI) Node() *model.Node { return (*model.Node)(u) }

// Value returns the icon URI value.
func (u *IconURI) Value() string     { return u.Node().String(iconURIValue) }
func (u *IconURI) SetValue(v string) { u.Node().Set(iconURIValue, v) }

// Size returns the size, or its default while unset.
func (u *IconURI) Size() int       { return int(u.Node().Int(iconURISize)) }
func (u *IconURI) SetSize(v int)   { u.Node().Set(iconURISize, v) }
func (u *IconURI) IsSetSize() bool { return u.Node().IsSet(iconURISize) }
func (u *IconURI) UnsetSize()      { u.Node().Unset(iconURISize) }

// Metrics lists the custom metrics an operator maintains.
type Metrics model.Node

// Node returns the metrics as a generic node.
func (m *Metrics) Node() *model.Node { return (*model.Node)(m) }

// Description returns the description child, or nil when absent;
// SetDescription replaces it.
func (m *Metrics) Description() *Description {
	return (*Description)(m.Node().Child(metricsDescription))
}
func (m *Metrics) SetDescription(v *Description) { m.Node().SetChild(metricsDescription, v.Node()) }

// Metrics returns the metrics as a live list.
func (m *Metrics) Metrics() model.List[*Metric] {
	return model.NewList(m.Node().List(metricsMetric), asMetric, (*Metric).Node)
}

// Metric is one custom operator metric.
type Metric model.Node

func asMetric(n *model.Node) *Metric { return (*Metric)(n) }

// Node returns the metric as a generic node.
func (m *Metric) Node() *model.Node { return (*model.Node)(m) }

// Name returns the metric name.
func (m *Metric) Name() string     { return m.Node().String(metricName) }
func (m *Metric) SetName(v string) { m.Node().Set(metricName, v) }

// Description returns the description child, or nil when absent;
// SetDescription replaces it.
func (m *Metric) Description() *Description {
	return (*Description)(m.Node().Child(metricDescription))
}
func (m *Metric) SetDescription(v *Description) { m.Node().SetChild(metricDescription, v.Node()) }

// Kind returns the kind, or its default while unset.
func (m *Metric) Kind() MetricKind     { return MetricKind(m.Node().Enum(metricKind)) }
func (m *Metric) SetKind(v MetricKind) { m.Node().Set(metricKind, v) }
func (m *Metric) IsSetKind() bool      { return m.Node().IsSet(metricKind) }
func (m *Metric) UnsetKind()           { m.Node().Unset(metricKind) }

// Dynamic reports the dynamic flag, or its default while unset.
func (m *Metric) Dynamic() bool      { return m.Node().Bool(metricDynamic) }
func (m *Metric) SetDynamic(v bool)  { m.Node().Set(metricDynamic, v) }
func (m *Metric) IsSetDynamic() bool { return m.Node().IsSet(metricDynamic) }
func (m *Metric) UnsetDynamic()      { m.Node().Unset(metricDynamic) }

// Enumerations lists custom literal enumerations.
type Enumerations model.Node

// Node returns the enumerations as a generic node.
func (e *Enumerations) Node() *model.Node { return (*model.Node)(e) }

// Enumerations returns the enumerations as a live list.
func (e *Enumerations) Enumerations() model.List[*Enumeration] {
	return model.NewList(e.Node().List(enumerationsEnumeration), asEnumeration, (*Enumeration).Node)
}

// Enumeration is a named set of custom literal values.
type Enumeration model.Node

func asEnumeration(n *model.Node) *Enumeration { return (*Enumeration)(n) }

// Node returns the enumeration as a generic node.
func (e *Enumeration) Node() *model.Node { return (*model.Node)(e) }

// Name returns the enumeration name.
func (e *Enumeration) Name() string     { return e.Node().String(enumerationName) }
func (e *Enumeration) SetName(v string) { e.Node().Set(enumerationName, v) }

// Values returns the values in document order.
func (e *Enumeration) Values() []string      { return e.Node().Strings(enumerationValue) }
func (e *Enumeration) SetValues(v ...string) { e.Node().Set(enumerationValue, v) }
func (e *Enumeration) AddValue(v string)     { e.Node().AddValue(enumerationValue, v) }

// CustomOutputFunctions lists the sets of custom output functions.
type CustomOutputFunctions model.Node

// Node returns the custom output functions as a generic node.
func (c *CustomOutputFunctions) Node() *model.Node { return (*model.Node)(c) }

// CustomOutputFunctions returns the custom output functions as a live list.
func (c *CustomOutputFunctions) CustomOutputFunctions() model.List[*CustomOutputFunctionSet] {
	return model.NewList(c.Node().List(customOutputFunctionsSet), asCustomOutputFunctionSet,
		(*CustomOutputFunctionSet).Node)
}

// CustomOutputFunctionSet is a named group of output function prototypes.
type CustomOutputFunctionSet model.Node

func asCustomOutputFunctionSet(n *model.Node) *CustomOutputFunctionSet {
	return (*CustomOutputFunctionSet)(n)
}

// Node returns the custom output function set as a generic node.
func (s *CustomOutputFunctionSet) Node() *model.Node { return (*model.Node)(s) }

// Name returns the custom output function set name.
func (s *CustomOutputFunctionSet) Name() string     { return s.Node().String(customOutputFunctionSetName) }
func (s *CustomOutputFunctionSet) SetName(v string) { s.Node().Set(customOutputFunctionSetName, v) }

// Functions returns the functions as a live list.
func (s *CustomOutputFunctionSet) Functions() model.List[*CustomOutputFunction] {
	return model.NewList(s.Node().List(customOutputFunctionSetFunction), asCustomOutputFunction,
		(*CustomOutputFunction).Node)
}

// CustomOutputFunction is one output function prototype.
type CustomOutputFunction model.Node

func asCustomOutputFunction(n *model.Node) *CustomOutputFunction { return (*CustomOutputFunction)(n) }

// Node returns the custom output function as a generic node.
func (f *CustomOutputFunction) Node() *model.Node { return (*model.Node)(f) }

// Description returns the description child, or nil when absent;
// SetDescription replaces it.
func (f *CustomOutputFunction) Description() *Description {
	return (*Description)(f.Node().Child(customOutputFunctionDescription))
}
func (f *CustomOutputFunction) SetDescription(v *Description) {
	f.Node().SetChild(customOutputFunctionDescription, v.Node())
}

// Prototype returns the custom output function prototype.
func (f *CustomOutputFunction) Prototype() string     { return f.Node().String(customOutputFunctionPrototype) }
func (f *CustomOutputFunction) SetPrototype(v string) { f.Node().Set(customOutputFunctionPrototype, v) }

// PseudoFunction reports the pseudo function flag, or its default while unset.
func (f *CustomOutputFunction) PseudoFunction() bool {
	return f.Node().Bool(customOutputFunctionPseudoFunction)
}
func (f *CustomOutputFunction) SetPseudoFunction(v bool) {
	f.Node().Set(customOutputFunctionPseudoFunction, v)
}
func (f *CustomOutputFunction) IsSetPseudoFunction() bool {
	return f.Node().IsSet(customOutputFunctionPseudoFunction)
}
func (f *CustomOutputFunction) UnsetPseudoFunction() {
	f.Node().Unset(customOutputFunctionPseudoFunction)
}

// LibraryDependencies lists the libraries a C++ operator links against.
type LibraryDependencies model.Node

// Node returns the library dependencies as a generic node.
func (d *LibraryDependencies) Node() *model.Node { return (*model.Node)(d) }

// Libraries returns the libraries as a live list.
func (d *LibraryDependencies) Libraries() model.List[*Library] {
	return model.NewList(d.Node().List(libraryDependenciesLibrary), asLibrary, (*Library).Node)
}

// CodeTemplates lists operator invocation templates offered to IDEs.
type CodeTemplates model.Node

// Node returns the code templates as a generic node.
func (t *CodeTemplates) Node() *model.Node { return (*model.Node)(t) }

// CodeTemplates returns the code templates as a live list.
func (t *CodeTemplates) CodeTemplates() model.List[*CodeTemplate] {
	return model.NewList(t.Node().List(codeTemplatesCodeTemplate), asCodeTemplate, (*CodeTemplate).Node)
}

// CodeTemplate is a named operator invocation template.
type CodeTemplate model.Node

func asCodeTemplate(n *model.Node) *CodeTemplate { return (*CodeTemplate)(n) }

// Node returns the code template as a generic node.
func (t *CodeTemplate) Node() *model.Node { return (*model.Node)(t) }

// Description returns the description child, or nil when absent;
// SetDescription replaces it.
func (t *CodeTemplate) Description() *Description {
	return (*Description)(t.Node().Child(codeTemplateDescription))
}
func (t *CodeTemplate) SetDescription(v *Description) {
	t.Node().SetChild(codeTemplateDescription, v.Node())
}

// Template returns the code template template.
func (t *CodeTemplate) Template() string     { return t.Node().String(codeTemplateTemplate) }
func (t *CodeTemplate) SetTemplate(v string) { t.Node().Set(codeTemplateTemplate, v) }

// Name returns the code template name.
func (t *CodeTemplate) Name() string     { return t.Node().String(codeTemplateName) }
func (t *CodeTemplate) SetName(v string) { t.Node().Set(codeTemplateName, v) }

// SplExpressionTree selects which SPL expression trees the code
// generator receives.
type SplExpressionTree model.Node

// Node returns the spl expression tree as a generic node.
func (t *SplExpressionTree) Node() *model.Node { return (*model.Node)(t) }

// CppCode reports the cpp code flag, or its default while unset.
func (t *SplExpressionTree) CppCode() bool      { return t.Node().Bool(splExpressionTreeCppCode) }
func (t *SplExpressionTree) SetCppCode(v bool)  { t.Node().Set(splExpressionTreeCppCode, v) }
func (t *SplExpressionTree) IsSetCppCode() bool { return t.Node().IsSet(splExpressionTreeCppCode) }
func (t *SplExpressionTree) UnsetCppCode()      { t.Node().Unset(splExpressionTreeCppCode) }

// Output reports the output flag, or its default while unset.
func (t *SplExpressionTree) Output() bool      { return t.Node().Bool(splExpressionTreeOutput) }
func (t *SplExpressionTree) SetOutput(v bool)  { t.Node().Set(splExpressionTreeOutput, v) }
func (t *SplExpressionTree) IsSetOutput() bool { return t.Node().IsSet(splExpressionTreeOutput) }
func (t *SplExpressionTree) UnsetOutput()      { t.Node().Unset(splExpressionTreeOutput) }

// Param reports the param flag, or its default while unset.
func (t *SplExpressionTree) Param() bool      { return t.Node().Bool(splExpressionTreeParam) }
func (t *SplExpressionTree) SetParam(v bool)  { t.Node().Set(splExpressionTreeParam, v) }
func (t *SplExpressionTree) IsSetParam() bool { return t.Node().IsSet(splExpressionTreeParam) }
func (t *SplExpressionTree) UnsetParam()      { t.Node().Unset(splExpressionTreeParam) }
