package schema

import (
	"context"
	"strings"
	"testing"

	"github.com/andaru/splmodel/codec"
	"github.com/andaru/splmodel/model"
	"github.com/andaru/splmodel/modelerr"
	"github.com/andaru/splmodel/operator"
	"github.com/stretchr/testify/assert"
)

const beaconModel = `<operatorModel xmlns="http://www.ibm.com/xmlns/prod/streams/spl/operator" xmlns:cmn="http://www.ibm.com/xmlns/prod/streams/spl/common">
  <cppOperatorModel>
    <context>
      <iconUri size="16">beacon_16.gif</iconUri>
      <providesSingleThreadedContext>Always</providesSingleThreadedContext>
    </context>
    <parameters>
      <allowAny>false</allowAny>
      <parameter>
        <name>period</name>
        <optional>true</optional>
        <rewriteAllowed>true</rewriteAllowed>
        <expressionMode>AttributeFree</expressionMode>
        <type>float64</type>
        <cardinality>1</cardinality>
      </parameter>
      <parameter>
        <name>iterations</name>
        <optional>true</optional>
        <rewriteAllowed>true</rewriteAllowed>
        <expressionMode>AttributeFree</expressionMode>
        <cardinality>1</cardinality>
      </parameter>
    </parameters>
    <inputPorts/>
    <outputPorts>
      <outputPortSet>
        <expressionMode>Expression</expressionMode>
        <autoAssignment>true</autoAssignment>
        <completeAssignment>false</completeAssignment>
        <rewriteAllowed>true</rewriteAllowed>
        <windowPunctuationOutputMode>Free</windowPunctuationOutputMode>
        <tupleMutationAllowed>true</tupleMutationAllowed>
        <cardinality>1</cardinality>
        <optional>false</optional>
      </outputPortSet>
    </outputPorts>
  </cppOperatorModel>
</operatorModel>`

func beacon(t *testing.T) *operator.OperatorModel {
	t.Helper()
	doc, err := codec.NewDecoder(operator.Registry()).Decode(context.Background(), strings.NewReader(beaconModel))
	if err != nil {
		t.Fatal(err)
	}
	om, _ := operator.AsOperatorModel(doc.Root)
	return om
}

func setField(n *model.Node, name string, v any) {
	f, _ := n.Type().Field(name)
	n.Set(f.ID, v)
}

type problem struct {
	tag  string
	path string
	bad  string
}

func problems(l modelerr.List) (out []problem) {
	for _, err := range l {
		e, _ := modelerr.As(err)
		p := problem{tag: e.Tag, path: e.Path}
		if e.Info != nil {
			p.bad = e.Info.BadElement + e.Info.BadAttribute + e.Info.BadValue
		}
		out = append(out, p)
	}
	return out
}

func TestValidate(t *testing.T) {
	for _, tc := range []struct {
		name   string
		mutate func(om *operator.OperatorModel)
		rules  []Rule
		want   []problem
	}{
		{
			name:   "valid",
			mutate: func(*operator.OperatorModel) {},
		},
		{
			name: "no choice member",
			mutate: func(om *operator.OperatorModel) {
				om.SetCppOperatorModel(nil)
			},
			want: []problem{{"missing-element", "/operatorModel", "cppOperatorModel|javaOperatorModel"}},
		},
		{
			name: "two choice members",
			mutate: func(om *operator.OperatorModel) {
				f := operator.DefaultFactory()
				jm := f.NewJavaOpModel()
				om.SetJavaOperatorModel(jm)
			},
			want: []problem{
				{"bad-element", "/operatorModel", "javaOperatorModel"},
				{"missing-element", "/operatorModel/javaOperatorModel", "context"},
				{"missing-element", "/operatorModel/javaOperatorModel", "parameters"},
				{"missing-element", "/operatorModel/javaOperatorModel", "inputPorts"},
				{"missing-element", "/operatorModel/javaOperatorModel", "outputPorts"},
			},
		},
		{
			name: "unset required enum",
			mutate: func(om *operator.OperatorModel) {
				om.CppOperatorModel().Context().UnsetProvidesSingleThreadedContext()
			},
			want: []problem{{"missing-element", "/operatorModel/cppOperatorModel/context", "providesSingleThreadedContext"}},
		},
		{
			name: "unset required attribute",
			mutate: func(om *operator.OperatorModel) {
				om.CppOperatorModel().Context().IconURIs().At(0).UnsetSize()
			},
			want: []problem{{"missing-attribute", "/operatorModel/cppOperatorModel/context/iconUri[1]", "iconUrisize"}},
		},
		{
			name: "missing child",
			mutate: func(om *operator.OperatorModel) {
				om.CppOperatorModel().SetInputPorts(nil)
			},
			want: []problem{{"missing-element", "/operatorModel/cppOperatorModel", "inputPorts"}},
		},
		{
			name: "int out of range",
			mutate: func(om *operator.OperatorModel) {
				setField(om.CppOperatorModel().Context().IconURIs().At(0).Node(), "size", int64(1)<<40)
			},
			want: []problem{{"invalid-value", "/operatorModel/cppOperatorModel/context/iconUri[1]/size", "1099511627776"}},
		},
		{
			name: "negative cardinality",
			mutate: func(om *operator.OperatorModel) {
				setField(om.CppOperatorModel().OutputPorts().OutputPortSets().At(0).Node(), "cardinality", -1)
			},
			want: []problem{{"invalid-value", "/operatorModel/cppOperatorModel/outputPorts/outputPortSet[1]/cardinality", "-1"}},
		},
		{
			name: "empty port scope",
			mutate: func(om *operator.OperatorModel) {
				f := operator.DefaultFactory()
				om.CppOperatorModel().Parameters().Parameters().At(0).SetPortScope(f.NewPortScope())
			},
			want: []problem{{"missing-element", "/operatorModel/cppOperatorModel/parameters/parameter[1]/portScope", "port"}},
		},
		{
			name: "duplicate parameter",
			mutate: func(om *operator.OperatorModel) {
				om.CppOperatorModel().Parameters().Parameters().At(1).SetName("period")
			},
			rules: []Rule{Unique("parameter", "name")},
			want:  []problem{{"bad-element", "/operatorModel/cppOperatorModel/parameters/parameter[2]", "parameterperiod"}},
		},
		{
			name: "unique ignores other lists",
			mutate: func(om *operator.OperatorModel) {
				om.CppOperatorModel().Parameters().Parameters().At(1).SetName("period")
			},
			rules: []Rule{Unique("metric", "name")},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			check := assert.New(t)
			om := beacon(t)
			tc.mutate(om)
			got, err := New(WithRules(tc.rules...)).Validate(context.Background(), om.Node())
			check.NoError(err)
			check.Equal(tc.want, problems(got))
		})
	}
}

func TestValidateEmpty(t *testing.T) {
	check := assert.New(t)
	f := operator.DefaultFactory()
	ctx := f.NewContext()

	got, err := Validate(context.Background(), ctx.Node())
	check.NoError(err)
	check.Equal([]problem{{"missing-element", "/ContextType", "providesSingleThreadedContext"}}, problems(got))

	ctx.SetProvidesSingleThreadedContext(operator.SingleThreadedContextNever)
	got, err = Validate(context.Background(), ctx.Node())
	check.NoError(err)
	check.Empty(got)
}

func TestMaxErrors(t *testing.T) {
	check := assert.New(t)
	jm := operator.DefaultFactory().NewJavaOpModel()

	got, err := New(MaxErrors(2)).Validate(context.Background(), jm.Node())
	check.NoError(err)
	check.Len(got, 2)

	got, err = New().Validate(context.Background(), jm.Node())
	check.NoError(err)
	check.Len(got, 4)
}

func TestValidateCancelled(t *testing.T) {
	check := assert.New(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Validate(ctx, beacon(t).Node())
	check.ErrorIs(err, context.Canceled)
}
