package operator

import (
	"sync"

	"github.com/andaru/splmodel/model"
)

const (
	// Namespace is the SPL operator model XML namespace
	Namespace = "http://www.ibm.com/xmlns/prod/streams/spl/operator"
	// CommonNamespace is the namespace of types shared with other SPL models
	CommonNamespace = "http://www.ibm.com/xmlns/prod/streams/spl/common"
	// RootElement is the local name of the document element
	RootElement = "operatorModel"
)

// Node kinds, in registry order.
const (
	KindOperatorModel model.Kind = iota
	KindOpModel
	KindContext
	KindIconURI
	KindMetrics
	KindMetric
	KindEnumerations
	KindEnumeration
	KindCustomOutputFunctions
	KindCustomOutputFunctionSet
	KindCustomOutputFunction
	KindLibraryDependencies
	KindCodeTemplates
	KindCodeTemplate
	KindSplExpressionTree
	KindParameters
	KindParameter
	KindPortScope
	KindOptionalPortScope
	KindInputPorts
	KindInputPortOpenSet
	KindInputPortSet
	KindOutputPorts
	KindOutputPortOpenSet
	KindOutputPortSet
	KindOutputFunctions
	KindJavaOpModel
	KindJavaOpContext
	KindJavaOpExecutionSettings
	KindJavaOpVMArgs
	KindJavaOpLibraryDependencies
	KindJavaOpParameters
	KindJavaOpParameter
	KindJavaOpInputPorts
	KindJavaOpInputPortOpenSet
	KindJavaOpInputPortSet
	KindJavaOpOutputPorts
	KindJavaOpOutputPortOpenSet
	KindJavaOpOutputPortSet
	KindDescription
	KindLibrary
	KindManagedLibrary
	KindJavaOpLibrary
	KindJavaOpManagedLibrary
)

// Field IDs per type. Derived types continue the numbering of their
// base type.
const (
	operatorModelCpp = iota
	operatorModelJava
)

const (
	opModelContext = iota
	opModelParameters
	opModelInputPorts
	opModelOutputPorts
)

const (
	contextDescription = iota
	contextIconURI
	contextMetrics
	contextCustomLiterals
	contextCustomOutputFunctions
	contextLibraryDependencies
	contextProvidesSingleThreadedContext
	contextIncrementalCompilationStrategy
	contextAllowCustomLogic
	contextCodeTemplates
	contextSplExpressionTree
	contextCapability
	contextVerificationModule
)

const (
	iconURIValue = iota
	iconURISize
)

const (
	metricsDescription = iota
	metricsMetric
)

const (
	metricName = iota
	metricDescription
	metricKind
	metricDynamic
)

const enumerationsEnumeration = 0

const (
	enumerationName = iota
	enumerationValue
)

const customOutputFunctionsSet = 0

const (
	customOutputFunctionSetName = iota
	customOutputFunctionSetFunction
)

const (
	customOutputFunctionDescription = iota
	customOutputFunctionPrototype
	customOutputFunctionPseudoFunction
)

const libraryDependenciesLibrary = 0

const codeTemplatesCodeTemplate = 0

const (
	codeTemplateDescription = iota
	codeTemplateTemplate
	codeTemplateName
)

const (
	splExpressionTreeCppCode = iota
	splExpressionTreeOutput
	splExpressionTreeParam
)

const (
	parametersDescription = iota
	parametersAllowAny
	parametersParameter
)

const (
	parameterName = iota
	parameterDescription
	parameterOptional
	parameterRewriteAllowed
	parameterExpressionMode
	parameterType
	parameterCardinality
	parameterPortScope
	parameterCustomOutputFunction
)

const portScopePort = 0

const (
	inputPortsSet = iota
	inputPortsOpenSet
)

const (
	inputPortDescription = iota
	inputPortWindowingDescription
	inputPortTupleMutationAllowed
	inputPortWindowingMode
	inputPortWindowPunctuationInputMode
	inputPortControlPort
	inputPortWindowExpressionMode
	inputPortRewriteAllowedForWindowExpression
	inputPortCardinality
	inputPortOptional
)

const (
	outputPortsSet = iota
	outputPortsOpenSet
)

const (
	outputPortDescription = iota
	outputPortExpressionMode
	outputPortAutoAssignment
	outputPortCompleteAssignment
	outputPortRewriteAllowed
	outputPortOutputFunctions
	outputPortWindowPunctuationOutputMode
	outputPortWindowPunctuationInputPort
	outputPortFinalPunctuationPortScope
	outputPortTupleMutationAllowed
	outputPortOutputAssignmentPortScope
	outputPortAllowNestedCustomOutputFunctions
	outputPortCardinality
	outputPortOptional
)

const (
	outputFunctionsDefault = iota
	outputFunctionsType
)

const (
	javaOpContextDescription = iota
	javaOpContextIconURI
	javaOpContextMetrics
	javaOpContextCustomLiterals
	javaOpContextExecutionSettings
	javaOpContextLibraryDependencies
	javaOpContextCodeTemplates
)

const (
	javaOpExecutionSettingsClassName = iota
	javaOpExecutionSettingsVMArgs
)

const javaOpVMArgsVMArg = 0

const (
	javaOpParametersDescription = iota
	javaOpParametersParameter
)

const (
	javaOpParameterName = iota
	javaOpParameterDescription
	javaOpParameterOptional
	javaOpParameterExpressionMode
	javaOpParameterType
	javaOpParameterCardinality
)

const (
	javaOpInputPortDescription = iota
	javaOpInputPortWindowingDescription
	javaOpInputPortWindowingMode
	javaOpInputPortWindowPunctuationInputMode
	javaOpInputPortControlPort
	javaOpInputPortCardinality
	javaOpInputPortOptional
)

const (
	javaOpOutputPortDescription = iota
	javaOpOutputPortWindowPunctuationOutputMode
	javaOpOutputPortWindowPunctuationInputPort
	javaOpOutputPortFinalPunctuationPortScope
	javaOpOutputPortCardinality
	javaOpOutputPortOptional
)

const (
	descriptionValue = iota
	descriptionDocHref
	descriptionSampleURI
)

const (
	libraryDescription = iota
	libraryManagedLibrary
)

const (
	managedLibraryLib = iota
	managedLibraryLibPath
	managedLibraryIncludePath
	managedLibraryCommand
)

const (
	javaOpManagedLibraryLibPath = iota
	javaOpManagedLibraryCommand
)

// Build returns a new registry of the operator model schema. Most
// callers want the shared registry returned by Init instead.
func Build() *model.Registry {
	never := int(SingleThreadedContextNever)
	return model.NewBuilder("operator").
		Enum(Enums...).
		Type(KindOperatorModel, "OperatorModelType", Namespace,
			model.Child(operatorModelCpp, "cppOperatorModel", KindOpModel),
			model.Child(operatorModelJava, "javaOperatorModel", KindJavaOpModel),
		).
		Choice(KindOperatorModel, operatorModelCpp, operatorModelJava).
		Type(KindOpModel, "OpModelType", Namespace,
			model.Child(opModelContext, "context", KindContext).Required(),
			model.Child(opModelParameters, "parameters", KindParameters).Required(),
			model.Child(opModelInputPorts, "inputPorts", KindInputPorts).Required(),
			model.Child(opModelOutputPorts, "outputPorts", KindOutputPorts).Required(),
		).
		Type(KindContext, "ContextType", Namespace,
			model.Child(contextDescription, "description", KindDescription),
			model.Children(contextIconURI, "iconUri", KindIconURI),
			model.Child(contextMetrics, "metrics", KindMetrics),
			model.Child(contextCustomLiterals, "customLiterals", KindEnumerations),
			model.Child(contextCustomOutputFunctions, "customOutputFunctions", KindCustomOutputFunctions),
			model.Child(contextLibraryDependencies, "libraryDependencies", KindLibraryDependencies),
			model.EnumValue(contextProvidesSingleThreadedContext, "providesSingleThreadedContext", SingleThreadedContextEnum).
				Required().UnsettableWith(never),
			model.EnumValue(contextIncrementalCompilationStrategy, "incrementalCompilationStrategy", IncrementalCompilationStrategyEnum).
				UnsettableWith(int(IncrementalCompilationStrategySourceDependent)),
			model.Value(contextAllowCustomLogic, "allowCustomLogic", model.Boolean).UnsettableWith(false),
			model.Child(contextCodeTemplates, "codeTemplates", KindCodeTemplates),
			model.Child(contextSplExpressionTree, "splExpressionTree", KindSplExpressionTree),
			model.Values(contextCapability, "capability", model.String),
			model.Value(contextVerificationModule, "verificationModule", model.Token).Attr(),
		).
		Type(KindIconURI, "IconUriType", Namespace,
			model.Value(iconURIValue, "value", model.String).Content(),
			model.Value(iconURISize, "size", model.Int).Required().UnsettableWith(int64(0)).Attr(),
		).
		Type(KindMetrics, "MetricsType", Namespace,
			model.Child(metricsDescription, "description", KindDescription),
			model.Children(metricsMetric, "metric", KindMetric),
		).
		Type(KindMetric, "MetricType", Namespace,
			model.Value(metricName, "name", model.String).Required(),
			model.Child(metricDescription, "description", KindDescription).Required(),
			model.EnumValue(metricKind, "kind", MetricKindEnum).Required().UnsettableWith(int(MetricKindGauge)),
			model.Value(metricDynamic, "dynamic", model.Boolean).UnsettableWith(false),
		).
		Type(KindEnumerations, "EnumerationsType", Namespace,
			model.Children(enumerationsEnumeration, "enumeration", KindEnumeration),
		).
		Type(KindEnumeration, "EnumerationType", Namespace,
			model.Value(enumerationName, "name", model.String).Required(),
			model.Values(enumerationValue, "value", model.String),
		).
		Type(KindCustomOutputFunctions, "CustomOutputFunctionsType", Namespace,
			model.Children(customOutputFunctionsSet, "customOutputFunction", KindCustomOutputFunctionSet),
		).
		Type(KindCustomOutputFunctionSet, "CustomOutputFunctionSetType", Namespace,
			model.Value(customOutputFunctionSetName, "name", model.String).Required(),
			model.Children(customOutputFunctionSetFunction, "function", KindCustomOutputFunction),
		).
		Type(KindCustomOutputFunction, "CustomOutputFunctionType", Namespace,
			model.Child(customOutputFunctionDescription, "description", KindDescription),
			model.Value(customOutputFunctionPrototype, "prototype", model.String).Required(),
			model.Value(customOutputFunctionPseudoFunction, "pseudoFunction", model.Boolean).UnsettableWith(false).Attr(),
		).
		Type(KindLibraryDependencies, "LibraryDependenciesType", Namespace,
			model.Children(libraryDependenciesLibrary, "library", KindLibrary),
		).
		Type(KindCodeTemplates, "CodeTemplatesType", Namespace,
			model.Children(codeTemplatesCodeTemplate, "codeTemplate", KindCodeTemplate),
		).
		Type(KindCodeTemplate, "CodeTemplateType", Namespace,
			model.Child(codeTemplateDescription, "description", KindDescription),
			model.Value(codeTemplateTemplate, "template", model.String).Required(),
			model.Value(codeTemplateName, "name", model.String).Required().Attr(),
		).
		Type(KindSplExpressionTree, "SplExpressionTreeType", Namespace,
			model.Value(splExpressionTreeCppCode, "cppCode", model.Boolean).UnsettableWith(false).Attr(),
			model.Value(splExpressionTreeOutput, "output", model.Boolean).UnsettableWith(false).Attr(),
			model.Value(splExpressionTreeParam, "param", model.Boolean).UnsettableWith(false).Attr(),
		).
		Type(KindParameters, "ParametersType", Namespace,
			model.Child(parametersDescription, "description", KindDescription),
			model.Value(parametersAllowAny, "allowAny", model.Boolean).Required().UnsettableWith(false),
			model.Children(parametersParameter, "parameter", KindParameter),
		).
		Type(KindParameter, "ParameterType", Namespace,
			model.Value(parameterName, "name", model.String).Required(),
			model.Child(parameterDescription, "description", KindDescription),
			model.Value(parameterOptional, "optional", model.Boolean).Required().UnsettableWith(false),
			model.Value(parameterRewriteAllowed, "rewriteAllowed", model.Boolean).Required().UnsettableWith(false),
			model.EnumValue(parameterExpressionMode, "expressionMode", ExpressionModeEnum).
				Required().UnsettableWith(int(ExpressionModeAttribute)),
			model.Value(parameterType, "type", model.String),
			model.Value(parameterCardinality, "cardinality", model.Integer),
			model.Child(parameterPortScope, "portScope", KindPortScope),
			model.Value(parameterCustomOutputFunction, "customOutputFunction", model.String),
		).
		Type(KindPortScope, "PortScopeType", Namespace,
			model.Values(portScopePort, "port", model.NonNegativeInteger).Min(1),
		).
		Type(KindOptionalPortScope, "OptionalPortScopeType", Namespace,
			model.Values(portScopePort, "port", model.NonNegativeInteger),
		).
		Type(KindInputPorts, "InputPortsType", Namespace,
			model.Children(inputPortsSet, "inputPortSet", KindInputPortSet),
			model.Child(inputPortsOpenSet, "inputPortOpenSet", KindInputPortOpenSet),
		).
		Type(KindInputPortOpenSet, "InputPortOpenSetType", Namespace,
			model.Child(inputPortDescription, "description", KindDescription),
			model.Child(inputPortWindowingDescription, "windowingDescription", KindDescription),
			model.Value(inputPortTupleMutationAllowed, "tupleMutationAllowed", model.Boolean).Required().UnsettableWith(false),
			model.EnumValue(inputPortWindowingMode, "windowingMode", WindowingModeEnum).
				Required().UnsettableWith(int(WindowingModeNonWindowed)),
			model.EnumValue(inputPortWindowPunctuationInputMode, "windowPunctuationInputMode", WindowPunctuationInputModeEnum).
				Required().UnsettableWith(int(WindowPunctuationInputModeExpecting)),
			model.Value(inputPortControlPort, "controlPort", model.Boolean).UnsettableWith(false),
			model.EnumValue(inputPortWindowExpressionMode, "windowExpressionMode", WindowExpressionModeEnum).
				UnsettableWith(int(WindowExpressionModeConstant)),
			model.Value(inputPortRewriteAllowedForWindowExpression, "rewriteAllowedForWindowExpression", model.Boolean).
				UnsettableWith(false),
		).
		Extend(KindInputPortSet, "InputPortSetType", KindInputPortOpenSet,
			model.Value(inputPortCardinality, "cardinality", model.NonNegativeInteger).Required(),
			model.Value(inputPortOptional, "optional", model.Boolean).Required().UnsettableWith(false),
		).
		Type(KindOutputPorts, "OutputPortsType", Namespace,
			model.Children(outputPortsSet, "outputPortSet", KindOutputPortSet),
			model.Child(outputPortsOpenSet, "outputPortOpenSet", KindOutputPortOpenSet),
		).
		Type(KindOutputPortOpenSet, "OutputPortOpenSetType", Namespace,
			model.Child(outputPortDescription, "description", KindDescription),
			model.EnumValue(outputPortExpressionMode, "expressionMode", ExpressionModeEnum).
				Required().UnsettableWith(int(ExpressionModeAttribute)),
			model.Value(outputPortAutoAssignment, "autoAssignment", model.Boolean).Required().UnsettableWith(false),
			model.Value(outputPortCompleteAssignment, "completeAssignment", model.Boolean).Required().UnsettableWith(false),
			model.Value(outputPortRewriteAllowed, "rewriteAllowed", model.Boolean).Required().UnsettableWith(false),
			model.Child(outputPortOutputFunctions, "outputFunctions", KindOutputFunctions),
			model.EnumValue(outputPortWindowPunctuationOutputMode, "windowPunctuationOutputMode", WindowPunctuationOutputModeEnum).
				Required().UnsettableWith(int(WindowPunctuationOutputModeGenerating)),
			model.Value(outputPortWindowPunctuationInputPort, "windowPunctuationInputPort", model.Integer),
			model.Child(outputPortFinalPunctuationPortScope, "finalPunctuationPortScope", KindOptionalPortScope),
			model.Value(outputPortTupleMutationAllowed, "tupleMutationAllowed", model.Boolean).Required().UnsettableWith(false),
			model.Child(outputPortOutputAssignmentPortScope, "outputAssignmentPortScope", KindPortScope),
			model.Value(outputPortAllowNestedCustomOutputFunctions, "allowNestedCustomOutputFunctions", model.Boolean).
				UnsettableWith(false),
		).
		Extend(KindOutputPortSet, "OutputPortSetType", KindOutputPortOpenSet,
			model.Value(outputPortCardinality, "cardinality", model.NonNegativeInteger).Required(),
			model.Value(outputPortOptional, "optional", model.Boolean).Required().UnsettableWith(false),
		).
		Type(KindOutputFunctions, "OutputFunctionsType", Namespace,
			model.Value(outputFunctionsDefault, "default", model.String).Required(),
			model.Value(outputFunctionsType, "type", model.String).Required(),
		).
		Type(KindJavaOpModel, "JavaOpModelType", Namespace,
			model.Child(opModelContext, "context", KindJavaOpContext).Required(),
			model.Child(opModelParameters, "parameters", KindJavaOpParameters).Required(),
			model.Child(opModelInputPorts, "inputPorts", KindJavaOpInputPorts).Required(),
			model.Child(opModelOutputPorts, "outputPorts", KindJavaOpOutputPorts).Required(),
		).
		Type(KindJavaOpContext, "JavaOpContextType", Namespace,
			model.Child(javaOpContextDescription, "description", KindDescription),
			model.Children(javaOpContextIconURI, "iconUri", KindIconURI),
			model.Child(javaOpContextMetrics, "metrics", KindMetrics),
			model.Child(javaOpContextCustomLiterals, "customLiterals", KindEnumerations),
			model.Child(javaOpContextExecutionSettings, "executionSettings", KindJavaOpExecutionSettings).Required(),
			model.Child(javaOpContextLibraryDependencies, "libraryDependencies", KindJavaOpLibraryDependencies),
			model.Child(javaOpContextCodeTemplates, "codeTemplates", KindCodeTemplates),
		).
		Type(KindJavaOpExecutionSettings, "JavaOpExecutionSettingsType", Namespace,
			model.Value(javaOpExecutionSettingsClassName, "className", model.Token).Required(),
			model.Child(javaOpExecutionSettingsVMArgs, "vmArgs", KindJavaOpVMArgs),
		).
		Type(KindJavaOpVMArgs, "JavaOpVMArgsType", Namespace,
			model.Values(javaOpVMArgsVMArg, "vmArg", model.String),
		).
		Type(KindJavaOpLibraryDependencies, "JavaOpLibraryDependenciesType", Namespace,
			model.Children(libraryDependenciesLibrary, "library", KindJavaOpLibrary).Min(1),
		).
		Type(KindJavaOpParameters, "JavaOpParametersType", Namespace,
			model.Child(javaOpParametersDescription, "description", KindDescription),
			model.Children(javaOpParametersParameter, "parameter", KindJavaOpParameter),
		).
		Type(KindJavaOpParameter, "JavaOpParameterType", Namespace,
			model.Value(javaOpParameterName, "name", model.String).Required(),
			model.Child(javaOpParameterDescription, "description", KindDescription),
			model.Value(javaOpParameterOptional, "optional", model.Boolean).Required().UnsettableWith(false),
			model.EnumValue(javaOpParameterExpressionMode, "expressionMode", JavaOpExpressionModeEnum).
				UnsettableWith(int(JavaOpExpressionModeAttribute)),
			model.Value(javaOpParameterType, "type", model.String),
			model.Value(javaOpParameterCardinality, "cardinality", model.Integer),
		).
		Type(KindJavaOpInputPorts, "JavaOpInputPortsType", Namespace,
			model.Children(inputPortsSet, "inputPortSet", KindJavaOpInputPortSet),
			model.Child(inputPortsOpenSet, "inputPortOpenSet", KindJavaOpInputPortOpenSet),
		).
		Type(KindJavaOpInputPortOpenSet, "JavaOpInputPortOpenSetType", Namespace,
			model.Child(javaOpInputPortDescription, "description", KindDescription),
			model.Child(javaOpInputPortWindowingDescription, "windowingDescription", KindDescription),
			model.EnumValue(javaOpInputPortWindowingMode, "windowingMode", WindowingModeEnum).
				Required().UnsettableWith(int(WindowingModeNonWindowed)),
			model.EnumValue(javaOpInputPortWindowPunctuationInputMode, "windowPunctuationInputMode", WindowPunctuationInputModeEnum).
				Required().UnsettableWith(int(WindowPunctuationInputModeExpecting)),
			model.Value(javaOpInputPortControlPort, "controlPort", model.Boolean).UnsettableWith(false),
		).
		Extend(KindJavaOpInputPortSet, "JavaOpInputPortSetType", KindJavaOpInputPortOpenSet,
			model.Value(javaOpInputPortCardinality, "cardinality", model.NonNegativeInteger).Required(),
			model.Value(javaOpInputPortOptional, "optional", model.Boolean).Required().UnsettableWith(false),
		).
		Type(KindJavaOpOutputPorts, "JavaOpOutputPortsType", Namespace,
			model.Children(outputPortsSet, "outputPortSet", KindJavaOpOutputPortSet),
			model.Child(outputPortsOpenSet, "outputPortOpenSet", KindJavaOpOutputPortOpenSet),
		).
		Type(KindJavaOpOutputPortOpenSet, "JavaOpOutputPortOpenSetType", Namespace,
			model.Child(javaOpOutputPortDescription, "description", KindDescription),
			model.EnumValue(javaOpOutputPortWindowPunctuationOutputMode, "windowPunctuationOutputMode", WindowPunctuationOutputModeEnum).
				Required().UnsettableWith(int(WindowPunctuationOutputModeGenerating)),
			model.Value(javaOpOutputPortWindowPunctuationInputPort, "windowPunctuationInputPort", model.Integer),
			model.Child(javaOpOutputPortFinalPunctuationPortScope, "finalPunctuationPortScope", KindOptionalPortScope),
		).
		Extend(KindJavaOpOutputPortSet, "JavaOpOutputPortSetType", KindJavaOpOutputPortOpenSet,
			model.Value(javaOpOutputPortCardinality, "cardinality", model.NonNegativeInteger).Required(),
			model.Value(javaOpOutputPortOptional, "optional", model.Boolean).Required().UnsettableWith(false),
		).
		Type(KindDescription, "DescriptionType", CommonNamespace,
			model.Value(descriptionValue, "value", model.String).Content(),
			model.Value(descriptionDocHref, "docHref", model.String).Attr(),
			model.Value(descriptionSampleURI, "sampleUri", model.String).Attr(),
		).
		Type(KindLibrary, "LibraryType", CommonNamespace,
			model.Child(libraryDescription, "description", KindDescription).Required(),
			model.Child(libraryManagedLibrary, "managedLibrary", KindManagedLibrary).Required(),
		).
		Type(KindManagedLibrary, "ManagedLibraryType", CommonNamespace,
			model.Values(managedLibraryLib, "lib", model.String),
			model.Values(managedLibraryLibPath, "libPath", model.String),
			model.Values(managedLibraryIncludePath, "includePath", model.String),
			model.Value(managedLibraryCommand, "command", model.String),
		).
		Type(KindJavaOpLibrary, "JavaOpLibraryType", CommonNamespace,
			model.Child(libraryDescription, "description", KindDescription).Required(),
			model.Child(libraryManagedLibrary, "managedLibrary", KindJavaOpManagedLibrary).Required(),
		).
		Type(KindJavaOpManagedLibrary, "JavaOpManagedLibraryType", CommonNamespace,
			model.Values(javaOpManagedLibraryLibPath, "libPath", model.String),
			model.Value(javaOpManagedLibraryCommand, "command", model.String),
		).
		Root(RootElement, Namespace, KindOperatorModel).
		Build()
}

var (
	initOnce sync.Once
	registry *model.Registry
)

// Init builds the shared operator model registry. It is safe to call
// more than once; call it during program start-up, before goroutines
// share trees, to keep initialization order explicit.
func Init() *model.Registry {
	initOnce.Do(func() { registry = Build() })
	return registry
}

// Registry returns the shared registry, initializing it on first use.
func Registry() *model.Registry { return Init() }
