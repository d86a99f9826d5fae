package spldoc

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/andaru/splmodel/codec"
	"github.com/andaru/splmodel/modelerr"
	"github.com/andaru/splmodel/operator"
	"github.com/stretchr/testify/assert"
)

const joinModel = `<operatorModel xmlns="http://www.ibm.com/xmlns/prod/streams/spl/operator" xmlns:cmn="http://www.ibm.com/xmlns/prod/streams/spl/common">
  <cppOperatorModel>
    <context>
      <description>
        Correlates tuples
        from two streams.
      </description>
      <metrics>
        <metric>
          <name>nTuplesPending</name>
          <description>Tuples waiting for a match.</description>
          <kind>Gauge</kind>
          <dynamic>true</dynamic>
        </metric>
      </metrics>
      <libraryDependencies>
        <library>
          <cmn:description>Join support</cmn:description>
          <cmn:managedLibrary>
            <cmn:lib>join</cmn:lib>
            <cmn:includePath>include</cmn:includePath>
          </cmn:managedLibrary>
        </library>
      </libraryDependencies>
      <providesSingleThreadedContext>WindowTriggerBound</providesSingleThreadedContext>
      <capability>partitionedState</capability>
    </context>
    <parameters>
      <allowAny>false</allowAny>
      <parameter>
        <name>match</name>
        <optional>false</optional>
        <rewriteAllowed>true</rewriteAllowed>
        <expressionMode>Expression</expressionMode>
        <type>boolean</type>
        <cardinality>1</cardinality>
      </parameter>
      <parameter>
        <name>equalityLHS</name>
        <optional>true</optional>
        <rewriteAllowed>true</rewriteAllowed>
        <expressionMode>Expression</expressionMode>
        <cardinality>-1</cardinality>
      </parameter>
    </parameters>
    <inputPorts>
      <inputPortSet>
        <description>Left stream.</description>
        <tupleMutationAllowed>false</tupleMutationAllowed>
        <windowingMode>Windowed</windowingMode>
        <windowPunctuationInputMode>Oblivious</windowPunctuationInputMode>
        <cardinality>1</cardinality>
        <optional>false</optional>
      </inputPortSet>
      <inputPortSet>
        <tupleMutationAllowed>false</tupleMutationAllowed>
        <windowingMode>OptionallyWindowed</windowingMode>
        <windowPunctuationInputMode>Oblivious</windowPunctuationInputMode>
        <cardinality>2</cardinality>
        <optional>true</optional>
      </inputPortSet>
      <inputPortOpenSet>
        <tupleMutationAllowed>false</tupleMutationAllowed>
        <windowingMode>NonWindowed</windowingMode>
        <windowPunctuationInputMode>Expecting</windowPunctuationInputMode>
        <controlPort>true</controlPort>
      </inputPortOpenSet>
    </inputPorts>
    <outputPorts>
      <outputPortSet>
        <expressionMode>Expression</expressionMode>
        <autoAssignment>true</autoAssignment>
        <completeAssignment>false</completeAssignment>
        <rewriteAllowed>true</rewriteAllowed>
        <windowPunctuationOutputMode>Generating</windowPunctuationOutputMode>
        <tupleMutationAllowed>true</tupleMutationAllowed>
        <cardinality>1</cardinality>
        <optional>false</optional>
      </outputPortSet>
    </outputPorts>
  </cppOperatorModel>
</operatorModel>`

const sinkModel = `<operatorModel xmlns="http://www.ibm.com/xmlns/prod/streams/spl/operator" xmlns:cmn="http://www.ibm.com/xmlns/prod/streams/spl/common">
  <javaOperatorModel>
    <context>
      <executionSettings>
        <className>com.example.Sink</className>
      </executionSettings>
    </context>
    <parameters>
      <parameter>
        <name>url</name>
        <optional>false</optional>
        <type>rstring</type>
      </parameter>
    </parameters>
    <inputPorts>
      <inputPortOpenSet>
        <windowingMode>NonWindowed</windowingMode>
        <windowPunctuationInputMode>Oblivious</windowPunctuationInputMode>
      </inputPortOpenSet>
    </inputPorts>
    <outputPorts/>
  </javaOperatorModel>
</operatorModel>`

func summarize(t *testing.T, name, src string) *Summary {
	t.Helper()
	doc, err := codec.NewDecoder(operator.Registry()).Decode(context.Background(), strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	om, _ := operator.AsOperatorModel(doc.Root)
	s, err := Summarize(name, om)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestPortRange(t *testing.T) {
	for _, tc := range []struct {
		start, end int64
		want       string
	}{
		{0, 0, "(0)"},
		{1, 2, "(1...2)"},
		{3, -1, "(3...)"},
		{0, -1, "(0...)"},
	} {
		assert.Equal(t, tc.want, PortRange(tc.start, tc.end))
	}
}

func TestThreadingText(t *testing.T) {
	for _, lit := range operator.SingleThreadedContextEnum.Literals() {
		c, _ := operator.SingleThreadedContextByOrdinal(lit.Ordinal)
		assert.NotEmpty(t, ThreadingText(c), lit.Value)
	}
	assert.Empty(t, ThreadingText(operator.SingleThreadedContext(99)))
}

func TestSummarizeCpp(t *testing.T) {
	check := assert.New(t)
	s := summarize(t, "Join", joinModel)

	check.Equal("C++", s.Language)
	check.Equal("WindowTriggerBound", s.Threading)
	check.Equal("Operator provides a single threaded execution context only if a time-based window trigger policy is not used.",
		s.ThreadingText)
	check.Equal("Windowed", s.WindowingMode)
	check.Equal([]string{"partitionedState"}, s.Capabilities)

	check.Equal([]Parameter{
		{Name: "match", Properties: []Property{
			{"Type", "boolean"}, {"Cardinality", "1"}, {"Optional", "false"}, {"Expression mode", "Expression"},
		}},
		{Name: "equalityLHS", Properties: []Property{{"Optional", "true"}, {"Expression mode", "Expression"}}},
	}, s.Parameters)

	var ranges []string
	for _, p := range s.InputPorts {
		ranges = append(ranges, p.Range)
	}
	check.Equal([]string{"(0)", "(1...2)", "(3...)"}, ranges)
	check.Equal("Left stream.", s.InputPorts[0].Description)
	check.True(s.InputPorts[2].Open)
	check.Contains(s.InputPorts[2].Properties, Property{"Control port", "true"})
	check.Contains(s.InputPorts[1].Properties, Property{"Optional", "true"})

	if check.Len(s.OutputPorts, 1) {
		check.Equal("(0)", s.OutputPorts[0].Range)
		check.Contains(s.OutputPorts[0].Properties, Property{"Window punctuation output mode", "Generating"})
	}
	check.Equal([]Metric{{Name: "nTuplesPending", Kind: "Gauge", Dynamic: true, Description: "Tuples waiting for a match."}},
		s.Metrics)
	check.Equal([]Library{{Description: "Join support", Libs: []string{"join"}, IncludePaths: []string{"include"}}},
		s.Libraries)
}

func TestSummarizeJava(t *testing.T) {
	check := assert.New(t)
	s := summarize(t, "Sink", sinkModel)

	check.Equal("Java", s.Language)
	check.Equal("com.example.Sink", s.ClassName)
	check.Empty(s.Threading)
	check.Equal("NonWindowed", s.WindowingMode)
	check.Equal([]Parameter{{Name: "url", Properties: []Property{{"Type", "rstring"}, {"Optional", "false"}}}}, s.Parameters)
	if check.Len(s.InputPorts, 1) {
		check.Equal("(0...)", s.InputPorts[0].Range)
	}
	check.Empty(s.OutputPorts)
}

func TestSummarizeEmpty(t *testing.T) {
	check := assert.New(t)
	f := operator.DefaultFactory()
	om := f.NewOperatorModel()

	_, err := Summarize("Empty", om)
	e, ok := modelerr.As(err)
	if check.True(ok) {
		check.Equal("missing-element", e.Tag)
	}

	om.SetCppOperatorModel(f.NewOpModel())
	_, err = Summarize("Empty", om)
	e, ok = modelerr.As(err)
	if check.True(ok) {
		check.Equal("/operatorModel/cppOperatorModel", e.Path)
		check.Equal("context", e.Info.BadElement)
	}
}

func TestRender(t *testing.T) {
	check := assert.New(t)
	var buf bytes.Buffer
	if !check.NoError(Render(&buf, summarize(t, "Join", joinModel))) {
		return
	}
	out := buf.String()
	for _, want := range []string{
		"# Join\n\nCorrelates tuples from two streams.\n",
		"- Implementation: C++\n",
		"- Threading: `WindowTriggerBound` - Operator provides a single threaded execution context only if",
		"- Windowing: Windowed\n",
		"- Capabilities: partitionedState\n",
		"### match\n\n- Type: boolean\n- Cardinality: 1\n- Optional: false\n- Expression mode: Expression\n",
		"### Ports (0)\n\nLeft stream.\n",
		"### Ports (1...2)\n",
		"### Ports (3...) (open)\n",
		"## Metrics\n",
		"### nTuplesPending (Gauge, dynamic)\n",
		"  - Libraries: join\n",
		"  - Include paths: include\n",
	} {
		check.Contains(out, want)
	}
	check.NotContains(out, "<no value>")
	check.NotContains(out, "\n\n\n")
	check.True(strings.HasSuffix(out, "  - Include paths: include\n"), "ends with a single newline")

	buf.Reset()
	if check.NoError(Render(&buf, summarize(t, "Sink", sinkModel))) {
		out = buf.String()
		check.Contains(out, "- Class: `com.example.Sink`\n")
		check.Contains(out, "## Output Ports\n\nNone.\n")
		check.NotContains(out, "Threading")
		check.NotContains(out, "## Metrics")
		check.NotContains(out, "\n\n\n")
	}
}
