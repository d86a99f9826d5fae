package operator

import "github.com/andaru/splmodel/model"

// Factory creates empty operator model nodes. Optional fields of a new
// node are unset and hold their defaults; required fields are empty
// and must be populated by the caller before the tree validates.
type Factory struct {
	reg *model.Registry
}

// NewFactory returns a Factory creating nodes described by reg, which
// must be an operator model registry.
func NewFactory(reg *model.Registry) *Factory { return &Factory{reg: reg} }

// DefaultFactory returns a Factory using the shared registry.
func DefaultFactory() *Factory { return NewFactory(Registry()) }

// Registry returns the factory's registry.
func (f *Factory) Registry() *model.Registry { return f.reg }

// Create returns an empty node of kind k.
func (f *Factory) Create(k model.Kind) *model.Node { return f.reg.New(k) }

// NewOperatorModel returns an empty operator model.
func (f *Factory) NewOperatorModel() *OperatorModel {
	return (*OperatorModel)(f.Create(KindOperatorModel))
}

// NewOpModel returns an empty op model.
func (f *Factory) NewOpModel() *OpModel { return (*OpModel)(f.Create(KindOpModel)) }

// NewContext returns an empty context.
func (f *Factory) NewContext() *Context { return (*Context)(f.Create(KindContext)) }

// NewIconURI returns an empty icon URI.
func (f *Factory) NewIconURI() *IconURI { return (*IconURI)(f.Create(KindIconURI)) }

// NewMetrics returns an empty metrics.
func (f *Factory) NewMetrics() *Metrics { return (*Metrics)(f.Create(KindMetrics)) }

// NewMetric returns an empty metric.
func (f *Factory) NewMetric() *Metric { return (*Metric)(f.Create(KindMetric)) }

// NewEnumerations returns an empty enumerations.
func (f *Factory) NewEnumerations() *Enumerations {
	return (*Enumerations)(f.Create(KindEnumerations))
}

// NewEnumeration returns an empty enumeration.
func (f *Factory) NewEnumeration() *Enumeration { return (*Enumeration)(f.Create(KindEnumeration)) }

// NewCustomOutputFunctions returns an empty custom output functions.
func (f *Factory) NewCustomOutputFunctions() *CustomOutputFunctions {
	return (*CustomOutputFunctions)(f.Create(KindCustomOutputFunctions))
}

// NewCustomOutputFunctionSet returns an empty custom output function set.
func (f *Factory) NewCustomOutputFunctionSet() *CustomOutputFunctionSet {
	return (*CustomOutputFunctionSet)(f.Create(KindCustomOutputFunctionSet))
}

// NewCustomOutputFunction returns an empty custom output function.
func (f *Factory) NewCustomOutputFunction() *CustomOutputFunction {
	return (*CustomOutputFunction)(f.Create(KindCustomOutputFunction))
}

// NewLibraryDependencies returns an empty library dependencies.
func (f *Factory) NewLibraryDependencies() *LibraryDependencies {
	return (*LibraryDependencies)(f.Create(KindLibraryDependencies))
}

// NewCodeTemplates returns an empty code templates.
func (f *Factory) NewCodeTemplates() *CodeTemplates {
	return (*CodeTemplates)(f.Create(KindCodeTemplates))
}

// NewCodeTemplate returns an empty code template.
func (f *Factory) NewCodeTemplate() *CodeTemplate { return (*CodeTemplate)(f.Create(KindCodeTemplate)) }

// NewSplExpressionTree returns an empty spl expression tree.
func (f *Factory) NewSplExpressionTree() *SplExpressionTree {
	return (*SplExpressionTree)(f.Create(KindSplExpressionTree))
}

// NewParameters returns an empty parameters.
func (f *Factory) NewParameters() *Parameters { return (*Parameters)(f.Create(KindParameters)) }

// NewParameter returns an empty parameter.
func (f *Factory) NewParameter() *Parameter { return (*Parameter)(f.Create(KindParameter)) }

// NewPortScope returns an empty port scope.
func (f *Factory) NewPortScope() *PortScope { return (*PortScope)(f.Create(KindPortScope)) }

// NewOptionalPortScope returns an empty optional port scope.
func (f *Factory) NewOptionalPortScope() *OptionalPortScope {
	return (*OptionalPortScope)(f.Create(KindOptionalPortScope))
}

// NewInputPorts returns an empty input ports.
func (f *Factory) NewInputPorts() *InputPorts { return (*InputPorts)(f.Create(KindInputPorts)) }

// NewInputPortOpenSet returns an empty input port open set.
func (f *Factory) NewInputPortOpenSet() *InputPortOpenSet {
	return (*InputPortOpenSet)(f.Create(KindInputPortOpenSet))
}

// NewInputPortSet returns an empty input port set.
func (f *Factory) NewInputPortSet() *InputPortSet { return (*InputPortSet)(f.Create(KindInputPortSet)) }

// NewOutputPorts returns an empty output ports.
func (f *Factory) NewOutputPorts() *OutputPorts { return (*OutputPorts)(f.Create(KindOutputPorts)) }

// NewOutputPortOpenSet returns an empty output port open set.
func (f *Factory) NewOutputPortOpenSet() *OutputPortOpenSet {
	return (*OutputPortOpenSet)(f.Create(KindOutputPortOpenSet))
}

// NewOutputPortSet returns an empty output port set.
func (f *Factory) NewOutputPortSet() *OutputPortSet {
	return (*OutputPortSet)(f.Create(KindOutputPortSet))
}

// NewOutputFunctions returns an empty output functions.
func (f *Factory) NewOutputFunctions() *OutputFunctions {
	return (*OutputFunctions)(f.Create(KindOutputFunctions))
}

// NewJavaOpModel returns an empty java op model.
func (f *Factory) NewJavaOpModel() *JavaOpModel { return (*JavaOpModel)(f.Create(KindJavaOpModel)) }

// NewJavaOpContext returns an empty java op context.
func (f *Factory) NewJavaOpContext() *JavaOpContext { return (*JavaOpContext)(f.Create(KindJavaOpContext)) }

// NewJavaOpExecutionSettings returns an empty java op execution settings.
func (f *Factory) NewJavaOpExecutionSettings() *JavaOpExecutionSettings {
	return (*JavaOpExecutionSettings)(f.Create(KindJavaOpExecutionSettings))
}

// NewJavaOpVMArgs returns an empty java op VM args.
func (f *Factory) NewJavaOpVMArgs() *JavaOpVMArgs { return (*JavaOpVMArgs)(f.Create(KindJavaOpVMArgs)) }

// NewJavaOpLibraryDependencies returns an empty java op library dependencies.
func (f *Factory) NewJavaOpLibraryDependencies() *JavaOpLibraryDependencies {
	return (*JavaOpLibraryDependencies)(f.Create(KindJavaOpLibraryDependencies))
}

// NewJavaOpParameters returns an empty java op parameters.
func (f *Factory) NewJavaOpParameters() *JavaOpParameters {
	return (*JavaOpParameters)(f.Create(KindJavaOpParameters))
}

// NewJavaOpParameter returns an empty java op parameter.
func (f *Factory) NewJavaOpParameter() *JavaOpParameter {
	return (*JavaOpParameter)(f.Create(KindJavaOpParameter))
}

// NewJavaOpInputPorts returns an empty java op input ports.
func (f *Factory) NewJavaOpInputPorts() *JavaOpInputPorts {
	return (*JavaOpInputPorts)(f.Create(KindJavaOpInputPorts))
}

// NewJavaOpInputPortOpenSet returns an empty java op input port open set.
func (f *Factory) NewJavaOpInputPortOpenSet() *JavaOpInputPortOpenSet {
	return (*JavaOpInputPortOpenSet)(f.Create(KindJavaOpInputPortOpenSet))
}

// NewJavaOpInputPortSet returns an empty java op input port set.
func (f *Factory) NewJavaOpInputPortSet() *JavaOpInputPortSet {
	return (*JavaOpInputPortSet)(f.Create(KindJavaOpInputPortSet))
}

// NewJavaOpOutputPorts returns an empty java op output ports.
func (f *Factory) NewJavaOpOutputPorts() *JavaOpOutputPorts {
	return (*JavaOpOutputPorts)(f.Create(KindJavaOpOutputPorts))
}

// NewJavaOpOutputPortOpenSet returns an empty java op output port open set.
func (f *Factory) NewJavaOpOutputPortOpenSet() *JavaOpOutputPortOpenSet {
	return (*JavaOpOutputPortOpenSet)(f.Create(KindJavaOpOutputPortOpenSet))
}

// NewJavaOpOutputPortSet returns an empty java op output port set.
func (f *Factory) NewJavaOpOutputPortSet() *JavaOpOutputPortSet {
	return (*JavaOpOutputPortSet)(f.Create(KindJavaOpOutputPortSet))
}

// NewDescription returns an empty description.
func (f *Factory) NewDescription() *Description { return (*Description)(f.Create(KindDescription)) }

// NewDescriptionText returns a description holding text.
func (f *Factory) NewDescriptionText(text string) *Description {
	d := f.NewDescription()
	d.SetValue(text)
	return d
}

// NewLibrary returns an empty library.
func (f *Factory) NewLibrary() *Library { return (*Library)(f.Create(KindLibrary)) }

// NewManagedLibrary returns an empty managed library.
func (f *Factory) NewManagedLibrary() *ManagedLibrary {
	return (*ManagedLibrary)(f.Create(KindManagedLibrary))
}

// NewJavaOpLibrary returns an empty java op library.
func (f *Factory) NewJavaOpLibrary() *JavaOpLibrary { return (*JavaOpLibrary)(f.Create(KindJavaOpLibrary)) }

// NewJavaOpManagedLibrary returns an empty java op managed library.
func (f *Factory) NewJavaOpManagedLibrary() *JavaOpManagedLibrary {
	return (*JavaOpManagedLibrary)(f.Create(KindJavaOpManagedLibrary))
}
