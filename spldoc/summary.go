// Package spldoc builds reference documentation for operator models.
//
// Summarize flattens an operator model into a Summary holding display
// strings only, and Render writes a Summary as markdown.
package spldoc

import (
	"fmt"

	"github.com/andaru/splmodel/modelerr"
	"github.com/andaru/splmodel/operator"
	"github.com/pkg/errors"
)

// Summary is the documentation view of one operator model.
type Summary struct {
	Name        string `json:"name"`
	Language    string `json:"language"`
	Description string `json:"description,omitempty"`
	// ClassName is the implementing class of a Java operator
	ClassName    string   `json:"className,omitempty"`
	Capabilities []string `json:"capabilities,omitempty"`
	// Threading is the providesSingleThreadedContext literal of a C++
	// operator and ThreadingText its explanation.
	Threading     string `json:"threading,omitempty"`
	ThreadingText string `json:"threadingText,omitempty"`
	// WindowingMode is the most permissive windowing mode of any input port
	WindowingMode string      `json:"windowingMode"`
	AllowAny      bool        `json:"allowAnyParameters"`
	Parameters    []Parameter `json:"parameters,omitempty"`
	InputPorts    []PortSet   `json:"inputPorts,omitempty"`
	OutputPorts   []PortSet   `json:"outputPorts,omitempty"`
	Metrics       []Metric    `json:"metrics,omitempty"`
	Libraries     []Library   `json:"libraries,omitempty"`
}

// Property is a named display value.
type Property struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type Parameter struct {
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Properties  []Property `json:"properties"`
}

// PortSet describes a fixed or open set of ports. Range is the port
// numbers the set covers, such as "(0)", "(1...2)" or "(3...)".
type PortSet struct {
	Range       string     `json:"range"`
	Open        bool       `json:"open,omitempty"`
	Description string     `json:"description,omitempty"`
	Properties  []Property `json:"properties"`
}

type Metric struct {
	Name        string `json:"name"`
	Kind        string `json:"kind"`
	Dynamic     bool   `json:"dynamic,omitempty"`
	Description string `json:"description,omitempty"`
}

type Library struct {
	Description  string   `json:"description,omitempty"`
	Libs         []string `json:"libs,omitempty"`
	LibPaths     []string `json:"libPaths,omitempty"`
	IncludePaths []string `json:"includePaths,omitempty"`
	Command      string   `json:"command,omitempty"`
}

var threadingText = map[operator.SingleThreadedContext]string{
	operator.SingleThreadedContextNever:  "Operator never provides a single threaded execution context.",
	operator.SingleThreadedContextAlways: "Operator always provides a single threaded execution context.",
	operator.SingleThreadedContextWindowBound: "Operator provides a single threaded execution context only if " +
		"a time-based window eviction or time-based window trigger policies are not used.",
	operator.SingleThreadedContextWindowEvictionBound: "Operator provides a single threaded execution context only if " +
		"a time-based window eviction policy is not used.",
	operator.SingleThreadedContextWindowTriggerBound: "Operator provides a single threaded execution context only if " +
		"a time-based window trigger policy is not used.",
	operator.SingleThreadedContextWindowPartitionEvictionBound: "Operator uses a separate thread to evict tuples in window partition.",
}

// ThreadingText explains a providesSingleThreadedContext value.
func ThreadingText(c operator.SingleThreadedContext) string { return threadingText[c] }

// PortRange formats the port numbers start through end. An end of -1
// denotes an open range.
func PortRange(start, end int64) string {
	switch {
	case end == -1:
		return fmt.Sprintf("(%d...)", start)
	case start == end:
		return fmt.Sprintf("(%d)", start)
	}
	return fmt.Sprintf("(%d...%d)", start, end)
}

func maxWindowing(a, b operator.WindowingMode) operator.WindowingMode {
	rank := func(m operator.WindowingMode) int {
		switch m {
		case operator.WindowingModeWindowed:
			return 2
		case operator.WindowingModeOptionallyWindowed:
			return 1
		}
		return 0
	}
	if rank(b) > rank(a) {
		return b
	}
	return a
}

func yesNo(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

func cardinality(set bool, c int64) string {
	if !set || c == -1 {
		return ""
	}
	return fmt.Sprint(c)
}

func appendIf(props []Property, name, value string) []Property {
	if value == "" {
		return props
	}
	return append(props, Property{Name: name, Value: value})
}

// Summarize builds the documentation view of om, naming the operator
// name.
func Summarize(name string, om *operator.OperatorModel) (*Summary, error) {
	switch {
	case om.CppOperatorModel() != nil:
		return summarizeCpp(name, om.CppOperatorModel())
	case om.JavaOperatorModel() != nil:
		return summarizeJava(name, om.JavaOperatorModel())
	}
	return nil, errors.WithStack(modelerr.MissingElement("cppOperatorModel|javaOperatorModel",
		modelerr.WithNode(om.Node()), modelerr.WithMessage("operator model has no implementation")))
}

func missing(name string, parent interface{ Path() string }) error {
	return errors.WithStack(modelerr.MissingElement(name, modelerr.WithPath(parent.Path())))
}

func summarizeCpp(name string, m *operator.OpModel) (*Summary, error) {
	switch {
	case m.Context() == nil:
		return nil, missing("context", m.Node())
	case m.Parameters() == nil:
		return nil, missing("parameters", m.Node())
	case m.InputPorts() == nil:
		return nil, missing("inputPorts", m.Node())
	case m.OutputPorts() == nil:
		return nil, missing("outputPorts", m.Node())
	}
	ctx := m.Context()
	s := &Summary{
		Name:          name,
		Language:      "C++",
		Description:   ctx.Description().Text(),
		Capabilities:  ctx.Capabilities(),
		Threading:     ctx.ProvidesSingleThreadedContext().String(),
		ThreadingText: ThreadingText(ctx.ProvidesSingleThreadedContext()),
		AllowAny:      m.Parameters().AllowAny(),
	}
	if ctx.Metrics() != nil {
		s.Metrics = metrics(ctx.Metrics())
	}
	if deps := ctx.LibraryDependencies(); deps != nil {
		for _, l := range deps.Libraries().All() {
			lib := Library{Description: l.Description().Text()}
			if ml := l.ManagedLibrary(); ml != nil {
				lib.Libs, lib.LibPaths, lib.IncludePaths, lib.Command = ml.Libs(), ml.LibPaths(), ml.IncludePaths(), ml.Command()
			}
			s.Libraries = append(s.Libraries, lib)
		}
	}

	for _, p := range m.Parameters().Parameters().All() {
		var props []Property
		props = appendIf(props, "Type", p.Type())
		props = appendIf(props, "Cardinality", cardinality(p.IsSetCardinality(), p.Cardinality()))
		props = append(props,
			Property{"Optional", yesNo(p.Optional())},
			Property{"Expression mode", p.ExpressionMode().String()})
		s.Parameters = append(s.Parameters, Parameter{Name: p.Name(), Description: p.Description().Text(), Properties: props})
	}

	inputProps := func(p *operator.InputPortOpenSet) []Property {
		props := []Property{
			{"Windowing mode", p.WindowingMode().String()},
			{"Window punctuation input mode", p.WindowPunctuationInputMode().String()},
			{"Tuple mutation allowed", yesNo(p.TupleMutationAllowed())},
		}
		if p.IsSetControlPort() {
			props = append(props, Property{"Control port", yesNo(p.ControlPort())})
		}
		return props
	}
	var next int64
	windowing := operator.WindowingModeNonWindowed
	for _, ps := range m.InputPorts().InputPortSets().All() {
		open := ps.OpenSet()
		windowing = maxWindowing(windowing, open.WindowingMode())
		props := append(inputProps(open), Property{"Optional", yesNo(ps.Optional())})
		s.InputPorts = append(s.InputPorts, PortSet{
			Range:       PortRange(next, next+ps.Cardinality()-1),
			Description: open.Description().Text(),
			Properties:  props,
		})
		next += ps.Cardinality()
	}
	if open := m.InputPorts().InputPortOpenSet(); open != nil {
		windowing = maxWindowing(windowing, open.WindowingMode())
		s.InputPorts = append(s.InputPorts, PortSet{
			Range: PortRange(next, -1), Open: true, Description: open.Description().Text(), Properties: inputProps(open),
		})
	}
	s.WindowingMode = windowing.String()

	outputProps := func(p *operator.OutputPortOpenSet) []Property {
		return []Property{
			{"Expression mode", p.ExpressionMode().String()},
			{"Window punctuation output mode", p.WindowPunctuationOutputMode().String()},
			{"Auto assignment", yesNo(p.AutoAssignment())},
			{"Tuple mutation allowed", yesNo(p.TupleMutationAllowed())},
		}
	}
	next = 0
	for _, ps := range m.OutputPorts().OutputPortSets().All() {
		open := ps.OpenSet()
		props := append(outputProps(open), Property{"Optional", yesNo(ps.Optional())})
		s.OutputPorts = append(s.OutputPorts, PortSet{
			Range:       PortRange(next, next+ps.Cardinality()-1),
			Description: open.Description().Text(),
			Properties:  props,
		})
		next += ps.Cardinality()
	}
	if open := m.OutputPorts().OutputPortOpenSet(); open != nil {
		s.OutputPorts = append(s.OutputPorts, PortSet{
			Range: PortRange(next, -1), Open: true, Description: open.Description().Text(), Properties: outputProps(open),
		})
	}
	return s, nil
}

func summarizeJava(name string, m *operator.JavaOpModel) (*Summary, error) {
	switch {
	case m.Context() == nil:
		return nil, missing("context", m.Node())
	case m.Parameters() == nil:
		return nil, missing("parameters", m.Node())
	case m.InputPorts() == nil:
		return nil, missing("inputPorts", m.Node())
	case m.OutputPorts() == nil:
		return nil, missing("outputPorts", m.Node())
	}
	ctx := m.Context()
	s := &Summary{
		Name:        name,
		Language:    "Java",
		Description: ctx.Description().Text(),
	}
	if es := ctx.ExecutionSettings(); es != nil {
		s.ClassName = es.ClassName()
	}
	if ctx.Metrics() != nil {
		s.Metrics = metrics(ctx.Metrics())
	}
	if deps := ctx.LibraryDependencies(); deps != nil {
		for _, l := range deps.Libraries().All() {
			lib := Library{Description: l.Description().Text()}
			if ml := l.ManagedLibrary(); ml != nil {
				lib.LibPaths, lib.Command = ml.LibPaths(), ml.Command()
			}
			s.Libraries = append(s.Libraries, lib)
		}
	}

	for _, p := range m.Parameters().Parameters().All() {
		var props []Property
		props = appendIf(props, "Type", p.Type())
		props = appendIf(props, "Cardinality", cardinality(p.IsSetCardinality(), p.Cardinality()))
		props = append(props, Property{"Optional", yesNo(p.Optional())})
		if p.IsSetExpressionMode() {
			props = append(props, Property{"Expression mode", p.ExpressionMode().String()})
		}
		s.Parameters = append(s.Parameters, Parameter{Name: p.Name(), Description: p.Description().Text(), Properties: props})
	}

	inputProps := func(p *operator.JavaOpInputPortOpenSet) []Property {
		props := []Property{
			{"Windowing mode", p.WindowingMode().String()},
			{"Window punctuation input mode", p.WindowPunctuationInputMode().String()},
		}
		if p.IsSetControlPort() {
			props = append(props, Property{"Control port", yesNo(p.ControlPort())})
		}
		return props
	}
	var next int64
	windowing := operator.WindowingModeNonWindowed
	for _, ps := range m.InputPorts().InputPortSets().All() {
		open := ps.OpenSet()
		windowing = maxWindowing(windowing, open.WindowingMode())
		s.InputPorts = append(s.InputPorts, PortSet{
			Range:       PortRange(next, next+ps.Cardinality()-1),
			Description: open.Description().Text(),
			Properties:  append(inputProps(open), Property{"Optional", yesNo(ps.Optional())}),
		})
		next += ps.Cardinality()
	}
	if open := m.InputPorts().InputPortOpenSet(); open != nil {
		windowing = maxWindowing(windowing, open.WindowingMode())
		s.InputPorts = append(s.InputPorts, PortSet{
			Range: PortRange(next, -1), Open: true, Description: open.Description().Text(), Properties: inputProps(open),
		})
	}
	s.WindowingMode = windowing.String()

	next = 0
	for _, ps := range m.OutputPorts().OutputPortSets().All() {
		open := ps.OpenSet()
		s.OutputPorts = append(s.OutputPorts, PortSet{
			Range:       PortRange(next, next+ps.Cardinality()-1),
			Description: open.Description().Text(),
			Properties: []Property{
				{"Window punctuation output mode", open.WindowPunctuationOutputMode().String()},
				{"Optional", yesNo(ps.Optional())},
			},
		})
		next += ps.Cardinality()
	}
	if open := m.OutputPorts().OutputPortOpenSet(); open != nil {
		s.OutputPorts = append(s.OutputPorts, PortSet{
			Range:       PortRange(next, -1),
			Open:        true,
			Description: open.Description().Text(),
			Properties:  []Property{{"Window punctuation output mode", open.WindowPunctuationOutputMode().String()}},
		})
	}
	return s, nil
}

func metrics(ms *operator.Metrics) (out []Metric) {
	for _, m := range ms.Metrics().All() {
		out = append(out, Metric{
			Name:        m.Name(),
			Kind:        m.Kind().String(),
			Dynamic:     m.Dynamic(),
			Description: m.Description().Text(),
		})
	}
	return out
}
