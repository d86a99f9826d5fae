package codec

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/andaru/splmodel/model"
	"github.com/andaru/splmodel/modelerr"
	"github.com/andaru/splmodel/operator"
	"github.com/antchfx/xmlquery"
	"github.com/go-test/deep"
	"github.com/stretchr/testify/assert"
)

const filterModel = `<?xml version="1.0" encoding="UTF-8"?>
<operatorModel xmlns="http://www.ibm.com/xmlns/prod/streams/spl/operator" xmlns:cmn="http://www.ibm.com/xmlns/prod/streams/spl/common" xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance" xsi:schemaLocation="http://www.ibm.com/xmlns/prod/streams/spl/operator operatorModel.xsd">
  <cppOperatorModel>
    <context>
      <description docHref="doc/filter.html">
        Filters tuples.
      </description>
      <iconUri size="16">filter_16.gif</iconUri>
      <iconUri size="32">filter_32.gif</iconUri>
      <metrics>
        <metric>
          <name>nDropped</name>
          <description>Tuples dropped.</description>
          <kind>Counter</kind>
        </metric>
      </metrics>
      <libraryDependencies>
        <library>
          <cmn:description>Support library</cmn:description>
          <cmn:managedLibrary>
            <cmn:lib>filterSupport</cmn:lib>
            <cmn:libPath>../../impl/lib</cmn:libPath>
            <cmn:includePath>../../impl/include</cmn:includePath>
          </cmn:managedLibrary>
        </library>
      </libraryDependencies>
      <providesSingleThreadedContext>Always</providesSingleThreadedContext>
      <allowCustomLogic>true</allowCustomLogic>
      <capability>tupleMutation</capability>
    </context>
    <parameters>
      <allowAny>false</allowAny>
      <parameter>
        <name>filter</name>
        <description>Predicate.</description>
        <optional>true</optional>
        <rewriteAllowed>true</rewriteAllowed>
        <expressionMode>Expression</expressionMode>
        <type>boolean</type>
        <cardinality>1</cardinality>
      </parameter>
    </parameters>
    <inputPorts>
      <inputPortSet>
        <tupleMutationAllowed>false</tupleMutationAllowed>
        <windowingMode>NonWindowed</windowingMode>
        <windowPunctuationInputMode>Oblivious</windowPunctuationInputMode>
        <cardinality>1</cardinality>
        <optional>false</optional>
      </inputPortSet>
    </inputPorts>
    <outputPorts>
      <outputPortSet>
        <expressionMode>Nonexistent</expressionMode>
        <autoAssignment>false</autoAssignment>
        <completeAssignment>false</completeAssignment>
        <rewriteAllowed>false</rewriteAllowed>
        <windowPunctuationOutputMode>Preserving</windowPunctuationOutputMode>
        <tupleMutationAllowed>false</tupleMutationAllowed>
        <cardinality>1</cardinality>
        <optional>false</optional>
      </outputPortSet>
      <outputPortSet>
        <expressionMode>Nonexistent</expressionMode>
        <autoAssignment>false</autoAssignment>
        <completeAssignment>false</completeAssignment>
        <rewriteAllowed>false</rewriteAllowed>
        <windowPunctuationOutputMode>Generating</windowPunctuationOutputMode>
        <finalPunctuationPortScope>
          <port>0</port>
        </finalPunctuationPortScope>
        <tupleMutationAllowed>false</tupleMutationAllowed>
        <cardinality>1</cardinality>
        <optional>true</optional>
      </outputPortSet>
    </outputPorts>
  </cppOperatorModel>
</operatorModel>
`

func decode(t *testing.T, src string, opts ...DecodeOption) (*Document, error) {
	t.Helper()
	return NewDecoder(operator.Registry(), opts...).Decode(context.Background(), strings.NewReader(src))
}

func TestDecode(t *testing.T) {
	check := assert.New(t)
	doc, err := decode(t, filterModel)
	if !check.NoError(err) {
		return
	}
	check.Empty(doc.Warnings)
	check.Equal("http://www.ibm.com/xmlns/prod/streams/spl/operator operatorModel.xsd", doc.SchemaLocation)
	check.Equal(operator.CommonNamespace, doc.Prefixes.Namespace("cmn"))
	check.Equal(operator.Namespace, doc.Prefixes.Namespace(""))

	om, ok := operator.AsOperatorModel(doc.Root)
	if !check.True(ok) {
		return
	}
	check.Nil(om.JavaOperatorModel())
	ctx := om.CppOperatorModel().Context()
	check.Equal("Filters tuples.", ctx.Description().Text())
	check.Equal("doc/filter.html", ctx.Description().DocHref())
	check.Equal(2, ctx.IconURIs().Len())
	check.Equal(32, ctx.IconURIs().At(1).Size())
	check.Equal("filter_32.gif", ctx.IconURIs().At(1).Value())
	check.Equal(operator.SingleThreadedContextAlways, ctx.ProvidesSingleThreadedContext())
	check.False(ctx.IsSetIncrementalCompilationStrategy())
	check.True(ctx.AllowCustomLogic())
	check.Equal([]string{"tupleMutation"}, ctx.Capabilities())

	metric := ctx.Metrics().Metrics().At(0)
	check.Equal("nDropped", metric.Name())
	check.Equal(operator.MetricKindCounter, metric.Kind())
	check.False(metric.IsSetDynamic())

	lib := ctx.LibraryDependencies().Libraries().At(0)
	check.Equal("Support library", lib.Description().Text())
	check.Equal([]string{"filterSupport"}, lib.ManagedLibrary().Libs())
	check.Equal([]string{"../../impl/include"}, lib.ManagedLibrary().IncludePaths())

	params := om.CppOperatorModel().Parameters()
	check.True(params.IsSetAllowAny())
	p := params.Parameters().At(0)
	check.Equal(operator.ExpressionModeExpression, p.ExpressionMode())
	check.Equal(int64(1), p.Cardinality())

	in := om.CppOperatorModel().InputPorts().InputPortSets().At(0)
	check.Equal(operator.WindowPunctuationInputModeOblivious, in.OpenSet().WindowPunctuationInputMode())
	check.Equal(int64(1), in.Cardinality())

	outs := om.CppOperatorModel().OutputPorts().OutputPortSets()
	check.Equal(2, outs.Len())
	check.Equal(operator.WindowPunctuationOutputModePreserving, outs.At(0).OpenSet().WindowPunctuationOutputMode())
	check.Equal([]int64{0}, outs.At(1).OpenSet().FinalPunctuationPortScope().Ports())
	check.True(outs.At(1).Optional())
	check.Equal("/operatorModel/cppOperatorModel/outputPorts/outputPortSet[2]", outs.At(1).Node().Path())
}

func TestRoundTrip(t *testing.T) {
	check := assert.New(t)
	doc, err := decode(t, filterModel)
	if !check.NoError(err) {
		return
	}
	var buf bytes.Buffer
	if !check.NoError(NewEncoder(&buf).EncodeDocument(doc)) {
		return
	}
	out := buf.String()
	check.Contains(out, `xmlns:cmn="http://www.ibm.com/xmlns/prod/streams/spl/common"`)
	check.Contains(out, `<cmn:lib>filterSupport</cmn:lib>`)
	check.Contains(out, `<iconUri size="32">filter_32.gif</iconUri>`)
	check.Contains(out, `xsi:schemaLocation="http://www.ibm.com/xmlns/prod/streams/spl/operator operatorModel.xsd"`)

	again, err := decode(t, out)
	if !check.NoError(err) {
		return
	}
	if diff := deep.Equal(model.Export(doc.Root), model.Export(again.Root)); diff != nil {
		t.Error(diff)
	}

	// encoding is deterministic
	var buf2 bytes.Buffer
	check.NoError(NewEncoder(&buf2).EncodeDocument(again))
	check.Equal(out, buf2.String())
}

func TestEncode(t *testing.T) {
	check := assert.New(t)
	f := operator.DefaultFactory()
	ctx := f.NewJavaOpContext()
	ctx.SetDescription(f.NewDescriptionText("Sample"))
	es := f.NewJavaOpExecutionSettings()
	es.SetClassName("com.acme.Op")
	ctx.SetExecutionSettings(es)
	ml := f.NewJavaOpManagedLibrary()
	ml.AddLibPath("opt/*.jar")
	lib := f.NewJavaOpLibrary()
	lib.SetDescription(f.NewDescriptionText("Runtime"))
	lib.SetManagedLibrary(ml)
	deps := f.NewJavaOpLibraryDependencies()
	deps.Libraries().Append(lib)
	ctx.SetLibraryDependencies(deps)
	jm := f.NewJavaOpModel()
	jm.SetContext(ctx)
	om := f.NewOperatorModel()
	om.SetJavaOperatorModel(jm)

	var buf bytes.Buffer
	err := NewEncoder(&buf,
		WithPrefix("cmn", operator.CommonNamespace),
		WithSchemaLocation("http://www.ibm.com/xmlns/prod/streams/spl/operator operatorModel.xsd"),
	).Encode(om.Node())
	check.NoError(err)
	check.Equal(`<?xml version="1.0" encoding="UTF-8"?>
<operatorModel xmlns="http://www.ibm.com/xmlns/prod/streams/spl/operator" xmlns:cmn="http://www.ibm.com/xmlns/prod/streams/spl/common" xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance" xsi:schemaLocation="http://www.ibm.com/xmlns/prod/streams/spl/operator operatorModel.xsd">
  <javaOperatorModel>
    <context>
      <description>Sample</description>
      <executionSettings>
        <className>com.acme.Op</className>
      </executionSettings>
      <libraryDependencies>
        <library>
          <cmn:description>Runtime</cmn:description>
          <cmn:managedLibrary>
            <cmn:libPath>opt/*.jar</cmn:libPath>
          </cmn:managedLibrary>
        </library>
      </libraryDependencies>
    </context>
  </javaOperatorModel>
</operatorModel>
`, buf.String())

	// without a configured prefix the common namespace gets a generated one
	buf.Reset()
	check.NoError(NewEncoder(&buf, WithHeader(false), WithIndent("")).Encode(om.Node()))
	check.Contains(buf.String(), `xmlns:ns1="http://www.ibm.com/xmlns/prod/streams/spl/common"`)
	check.Contains(buf.String(), `<ns1:description>Runtime</ns1:description>`)

	// non-root nodes need an explicit element name
	err = NewEncoder(&buf).Encode(ctx.Node())
	e, ok := modelerr.As(err)
	if check.True(ok) {
		check.Equal("bad-element", e.Tag)
	}
}

func inContext(body string) string {
	return fmt.Sprintf(`<operatorModel xmlns="%s" xmlns:cmn="%s"><cppOperatorModel><context>%s</context></cppOperatorModel></operatorModel>`,
		operator.Namespace, operator.CommonNamespace, body)
}

func TestDecodeErrors(t *testing.T) {
	for _, tc := range []struct {
		name    string
		src     string
		lenient bool
		tag     string
		path    string
		warning string
	}{
		{name: "not xml", src: "<operatorModel", tag: "malformed-document"},
		{name: "empty", src: "", tag: "malformed-document"},
		{name: "unknown root", src: `<toolkitModel xmlns="urn:x"/>`, tag: "malformed-document"},
		{name: "root namespace", src: `<operatorModel xmlns="urn:x"/>`, tag: "unknown-namespace"},
		{
			name: "unknown element",
			src:  inContext("<bogus/>"),
			tag:  "unknown-element",
			path: "/operatorModel/cppOperatorModel/context",
		},
		{
			name:    "unknown element lenient",
			src:     inContext("<bogus/><allowCustomLogic>true</allowCustomLogic>"),
			lenient: true,
			warning: "unknown-element",
		},
		{
			name: "unknown attribute",
			src:  inContext(`<iconUri size="16" color="red">x.gif</iconUri>`),
			tag:  "unknown-attribute",
			path: "/operatorModel/cppOperatorModel/context/iconUri[1]",
		},
		{
			name:    "unknown attribute lenient",
			src:     inContext(`<iconUri size="16" color="red">x.gif</iconUri>`),
			lenient: true,
			warning: "unknown-attribute",
		},
		{
			name: "wrong namespace",
			src:  inContext("<cmn:metrics/>"),
			tag:  "unknown-namespace",
			path: "/operatorModel/cppOperatorModel/context",
		},
		{
			name: "bad enum literal",
			src:  inContext("<providesSingleThreadedContext>Sometimes</providesSingleThreadedContext>"),
			tag:  "invalid-value",
			path: "/operatorModel/cppOperatorModel/context/providesSingleThreadedContext",
		},
		{
			name:    "bad enum literal lenient",
			src:     inContext("<providesSingleThreadedContext>always</providesSingleThreadedContext>"),
			lenient: true,
			tag:     "invalid-value",
		},
		{
			name: "bad boolean",
			src:  inContext("<allowCustomLogic>yes</allowCustomLogic>"),
			tag:  "invalid-value",
		},
		{
			name: "bad int",
			src:  inContext(`<iconUri size="big">x.gif</iconUri>`),
			tag:  "invalid-value",
		},
		{
			name: "duplicate element",
			src:  inContext("<allowCustomLogic>true</allowCustomLogic><allowCustomLogic>false</allowCustomLogic>"),
			tag:  "too-many-elements",
		},
		{
			name: "stray text",
			src:  inContext("hello"),
			tag:  "unknown-element",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			check := assert.New(t)
			doc, err := decode(t, tc.src, Strict(!tc.lenient))
			if tc.tag == "" {
				check.NoError(err)
			} else if check.Error(err) {
				first := err
				if l, ok := err.(modelerr.List); ok {
					first = l[0]
				}
				e, ok := modelerr.As(first)
				if check.True(ok, "%v", err) {
					check.Equal(tc.tag, e.Tag)
					check.Equal(modelerr.SeverityError, e.Severity)
					if tc.path != "" {
						check.Equal(tc.path, e.Path)
					}
				}
			}
			if tc.warning != "" && check.NotNil(doc) && check.Len(doc.Warnings, 1) {
				e, ok := modelerr.As(doc.Warnings[0])
				check.True(ok)
				check.Equal(tc.warning, e.Tag)
				check.Equal(modelerr.SeverityWarning, e.Severity)
			}
		})
	}
}

func TestDecodeCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewDecoder(operator.Registry()).Decode(ctx, strings.NewReader(filterModel))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestParseValue(t *testing.T) {
	reg := operator.Registry()
	field := func(k model.Kind, name string) *model.FieldDescriptor {
		f, ok := reg.Describe(k).Field(name)
		if !ok {
			t.Fatalf("no field %s", name)
		}
		return f
	}
	for _, tc := range []struct {
		f    *model.FieldDescriptor
		in   string
		want any
		bad  bool
	}{
		{f: field(operator.KindContext, "allowCustomLogic"), in: "1", want: true},
		{f: field(operator.KindContext, "allowCustomLogic"), in: " false ", want: false},
		{f: field(operator.KindContext, "allowCustomLogic"), in: "TRUE", bad: true},
		{f: field(operator.KindIconURI, "size"), in: "+16", want: int64(16)},
		{f: field(operator.KindIconURI, "size"), in: "4294967296", bad: true},
		{f: field(operator.KindParameter, "cardinality"), in: "-1", want: int64(-1)},
		{f: field(operator.KindInputPortSet, "cardinality"), in: "-1", bad: true},
		{f: field(operator.KindPortScope, "port"), in: "3", want: int64(3)},
		{f: field(operator.KindContext, "verificationModule"), in: "  spl.\n  checks ", want: "spl. checks"},
		{f: field(operator.KindMetric, "name"), in: " keep ", want: " keep "},
		{
			f:    field(operator.KindMetric, "kind"),
			in:   "Time",
			want: model.Literal{Ordinal: 2, Name: "Time", Value: "Time"},
		},
		{f: field(operator.KindMetric, "kind"), in: "time", bad: true},
	} {
		t.Run(tc.f.Name+"/"+tc.in, func(t *testing.T) {
			check := assert.New(t)
			got, err := ParseValue(tc.f, tc.in)
			if tc.bad {
				check.Error(err)
				return
			}
			check.NoError(err)
			check.Equal(tc.want, got)
		})
	}
	check := assert.New(t)
	check.Equal("true", FormatValue(true))
	check.Equal("-3", FormatValue(int64(-3)))
	check.Equal("Counter", FormatValue(model.Literal{Ordinal: 1, Name: "Counter", Value: "Counter"}))
}

func TestQuery(t *testing.T) {
	check := assert.New(t)
	v, err := Query(strings.NewReader(filterModel), "//metric/name")
	check.NoError(err)
	nodes, ok := v.([]*xmlquery.Node)
	if check.True(ok) && check.Len(nodes, 1) {
		check.Equal("nDropped", nodes[0].InnerText())
	}

	v, err = Query(strings.NewReader(filterModel), "count(//outputPortSet)")
	check.NoError(err)
	check.Equal(float64(2), v)

	_, err = Query(strings.NewReader(filterModel), "//[")
	check.Error(err)
	_, err = Query(strings.NewReader("<a"), "/a")
	check.Error(err)
}

func TestQueryNamespaces(t *testing.T) {
	for _, tc := range []struct {
		name string
		expr string
		opts []QueryOption
		want []string
	}{
		{name: "document prefix", expr: "//cmn:managedLibrary/cmn:lib", want: []string{"filterSupport"}},
		{name: "unprefixed name skips prefixed elements", expr: "//managedLibrary/lib"},
		{
			name: "caller prefix",
			expr: "//c:libPath",
			opts: []QueryOption{WithNamespace("c", "http://www.ibm.com/xmlns/prod/streams/spl/common")},
			want: []string{"../../impl/lib"},
		},
		{
			name: "default namespace bound to a prefix",
			expr: "//op:metric/op:name",
			opts: []QueryOption{WithNamespace("op", "http://www.ibm.com/xmlns/prod/streams/spl/operator")},
			want: []string{"nDropped"},
		},
		{
			name: "caller binding replaces document binding",
			expr: "//cmn:lib",
			opts: []QueryOption{WithNamespace("cmn", "urn:other")},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			check := assert.New(t)
			v, err := Query(strings.NewReader(filterModel), tc.expr, tc.opts...)
			if !check.NoError(err) {
				return
			}
			nodes, ok := v.([]*xmlquery.Node)
			check.True(ok)
			var got []string
			for _, n := range nodes {
				got = append(got, n.InnerText())
			}
			check.Equal(tc.want, got)
		})
	}
}
