package operator

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/andaru/splmodel/model"
	"github.com/stretchr/testify/assert"
)

func TestEnumLookups(t *testing.T) {
	for _, e := range Enums {
		t.Run(e.Name(), func(t *testing.T) {
			check := assert.New(t)
			for _, lit := range e.Literals() {
				got, ok := e.Get(lit.Value)
				check.True(ok)
				check.Equal(lit.Value, got.String())
				byOrd, ok := e.GetByOrdinal(got.Ordinal)
				check.True(ok)
				check.Equal(got, byOrd)
				byName, ok := e.GetByName(got.Name)
				check.True(ok)
				check.Equal(got, byName)
			}
			for _, bad := range []string{"", "never", "Bogus", " Always"} {
				_, ok := e.Get(bad)
				check.False(ok, bad)
				_, ok = e.GetByName(bad)
				check.False(ok, bad)
			}
			for _, ord := range []int{-1, e.Len(), 1000} {
				_, ok := e.GetByOrdinal(ord)
				check.False(ok, ord)
			}
		})
	}
}

func TestTypedEnums(t *testing.T) {
	for _, tc := range []struct {
		literal string
		lookup  func(string) (fmt.Stringer, bool)
		ordinal func(int) (fmt.Stringer, bool)
		want    int
	}{
		{
			literal: "WindowPartitionEvictionBound",
			lookup:  func(s string) (fmt.Stringer, bool) { return SingleThreadedContextByLiteral(s) },
			ordinal: func(i int) (fmt.Stringer, bool) { return SingleThreadedContextByOrdinal(i) },
			want:    5,
		},
		{
			literal: "OptionallyWindowed",
			lookup:  func(s string) (fmt.Stringer, bool) { return WindowingModeByLiteral(s) },
			ordinal: func(i int) (fmt.Stringer, bool) { return WindowingModeByOrdinal(i) },
			want:    2,
		},
		{
			literal: "Counter",
			lookup:  func(s string) (fmt.Stringer, bool) { return MetricKindByLiteral(s) },
			ordinal: func(i int) (fmt.Stringer, bool) { return MetricKindByOrdinal(i) },
			want:    1,
		},
		{
			literal: "CustomLiteral",
			lookup:  func(s string) (fmt.Stringer, bool) { return JavaOpExpressionModeByLiteral(s) },
			ordinal: func(i int) (fmt.Stringer, bool) { return JavaOpExpressionModeByOrdinal(i) },
			want:    2,
		},
		{
			literal: "Nonexistent",
			lookup:  func(s string) (fmt.Stringer, bool) { return ExpressionModeByLiteral(s) },
			ordinal: func(i int) (fmt.Stringer, bool) { return ExpressionModeByOrdinal(i) },
			want:    5,
		},
		{
			literal: "Preserving",
			lookup:  func(s string) (fmt.Stringer, bool) { return WindowPunctuationOutputModeByLiteral(s) },
			ordinal: func(i int) (fmt.Stringer, bool) { return WindowPunctuationOutputModeByOrdinal(i) },
			want:    2,
		},
	} {
		t.Run(tc.literal, func(t *testing.T) {
			check := assert.New(t)
			v, ok := tc.lookup(tc.literal)
			check.True(ok)
			check.Equal(tc.literal, v.String())
			check.Equal(tc.want, v.(interface{ Ordinal() int }).Ordinal())
			byOrd, ok := tc.ordinal(tc.want)
			check.True(ok)
			check.Equal(v, byOrd)
			_, ok = tc.ordinal(tc.want + 10)
			check.False(ok)
			_, ok = tc.lookup(tc.literal + "x")
			check.False(ok)
		})
	}

	check := assert.New(t)
	check.Equal("WindowingModeType(7)", WindowingMode(7).String())
	_, err := WindowingMode(7).MarshalText()
	check.Error(err)

	var m MetricKind
	check.NoError(m.UnmarshalText([]byte(" Time ")))
	check.Equal(MetricKindTime, m)
	check.Error(m.UnmarshalText([]byte("time")))

	b, err := json.Marshal(map[string]WindowPunctuationInputMode{"mode": WindowPunctuationInputModeOblivious})
	check.NoError(err)
	check.Equal(`{"mode":"Oblivious"}`, string(b))
}

func TestFactoryDefaults(t *testing.T) {
	check := assert.New(t)
	f := DefaultFactory()

	ctx := f.NewContext()
	check.False(ctx.IsSetProvidesSingleThreadedContext())
	check.Equal(SingleThreadedContextNever, ctx.ProvidesSingleThreadedContext())
	check.False(ctx.IsSetIncrementalCompilationStrategy())
	check.Equal(IncrementalCompilationStrategySourceDependent, ctx.IncrementalCompilationStrategy())
	check.False(ctx.AllowCustomLogic())
	check.Nil(ctx.Metrics())
	check.Nil(ctx.Description())
	check.Equal(0, ctx.IconURIs().Len())
	check.Empty(ctx.Capabilities())

	in := f.NewInputPortSet()
	check.Equal(WindowingModeNonWindowed, in.OpenSet().WindowingMode())
	check.Equal(WindowPunctuationInputModeExpecting, in.OpenSet().WindowPunctuationInputMode())
	check.Equal(WindowExpressionModeConstant, in.OpenSet().WindowExpressionMode())
	check.Equal(int64(0), in.Cardinality())

	out := f.NewOutputPortSet()
	check.Equal(ExpressionModeAttribute, out.OpenSet().ExpressionMode())
	check.Equal(WindowPunctuationOutputModeGenerating, out.OpenSet().WindowPunctuationOutputMode())

	metric := f.NewMetric()
	check.Equal("", metric.Name())
	check.Equal(MetricKindGauge, metric.Kind())
	check.False(metric.IsSetKind())

	p := f.NewJavaOpParameter()
	check.Equal(JavaOpExpressionModeAttribute, p.ExpressionMode())
	check.False(p.IsSetCardinality())

	for _, td := range f.Registry().Types() {
		n := f.Create(td.Kind)
		check.Same(td, n.Type())
		for i := range td.Fields {
			check.False(n.IsSet(i), "%s.%s", td.Name, td.Fields[i].Name)
		}
	}
}

type unsettableCase struct {
	name    string
	set     func()
	isSet   func() bool
	unset   func()
	isValue func() bool
	isDef   func() bool
}

func TestUnsettableFields(t *testing.T) {
	f := DefaultFactory()
	ctx := f.NewContext()
	ctx2 := f.NewContext()
	m := f.NewMetric()
	s := f.NewInputPortOpenSet()
	u := f.NewIconURI()

	for _, tc := range []unsettableCase{
		{
			name:    "providesSingleThreadedContext",
			set:     func() { ctx.SetProvidesSingleThreadedContext(SingleThreadedContextAlways) },
			isSet:   ctx.IsSetProvidesSingleThreadedContext,
			unset:   ctx.UnsetProvidesSingleThreadedContext,
			isValue: func() bool { return ctx.ProvidesSingleThreadedContext() == SingleThreadedContextAlways },
			isDef:   func() bool { return ctx.ProvidesSingleThreadedContext() == SingleThreadedContextNever },
		},
		{
			name:    "allowCustomLogic",
			set:     func() { ctx2.SetAllowCustomLogic(true) },
			isSet:   ctx2.IsSetAllowCustomLogic,
			unset:   ctx2.UnsetAllowCustomLogic,
			isValue: ctx2.AllowCustomLogic,
			isDef:   func() bool { return !ctx2.AllowCustomLogic() },
		},
		{
			name:    "kind",
			set:     func() { m.SetKind(MetricKindTime) },
			isSet:   m.IsSetKind,
			unset:   m.UnsetKind,
			isValue: func() bool { return m.Kind() == MetricKindTime },
			isDef:   func() bool { return m.Kind() == MetricKindGauge },
		},
		{
			name:    "windowingMode",
			set:     func() { s.SetWindowingMode(WindowingModeWindowed) },
			isSet:   s.IsSetWindowingMode,
			unset:   s.UnsetWindowingMode,
			isValue: func() bool { return s.WindowingMode() == WindowingModeWindowed },
			isDef:   func() bool { return s.WindowingMode() == WindowingModeNonWindowed },
		},
		{
			name:    "size",
			set:     func() { u.SetSize(32) },
			isSet:   u.IsSetSize,
			unset:   u.UnsetSize,
			isValue: func() bool { return u.Size() == 32 },
			isDef:   func() bool { return u.Size() == 0 },
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			check := assert.New(t)
			check.False(tc.isSet())
			check.True(tc.isDef())
			tc.set()
			check.True(tc.isSet())
			check.True(tc.isValue())
			tc.unset()
			check.False(tc.isSet())
			check.True(tc.isDef())
		})
	}
}

func TestSetToDefaultIsSet(t *testing.T) {
	check := assert.New(t)
	p := DefaultFactory().NewParameter()
	p.SetExpressionMode(ExpressionModeAttribute)
	check.True(p.IsSetExpressionMode())
	check.Equal(ExpressionModeAttribute, p.ExpressionMode())
}

func TestMetricList(t *testing.T) {
	check := assert.New(t)
	f := DefaultFactory()
	metrics := f.NewMetrics()
	list := metrics.Metrics()
	check.Equal(0, list.Len())

	var added []*Metric
	for _, name := range []string{"b", "a", "b"} {
		m := f.NewMetric()
		m.SetName(name)
		list.Append(m)
		added = append(added, m)
	}
	check.Equal(added, metrics.Metrics().All())

	check.True(list.Remove(added[2]))
	check.Equal([]*Metric{added[0], added[1]}, list.All())
	check.Equal("b", list.At(0).Name())
	check.Nil(added[2].Node().Parent())

	// the list is live: a fresh view sees the change
	check.Equal(2, metrics.Metrics().Len())
}

func TestContextRoundTrip(t *testing.T) {
	check := assert.New(t)
	f := DefaultFactory()

	ctx := f.NewContext()
	ctx.SetProvidesSingleThreadedContext(SingleThreadedContextAlways)
	ctx.SetAllowCustomLogic(true)
	metrics := f.NewMetrics()
	m := f.NewMetric()
	m.SetName("opsPerSecond")
	m.SetDescription(f.NewDescriptionText("Operations per second"))
	m.SetKind(MetricKindCounter)
	m.SetDynamic(false)
	metrics.Metrics().Append(m)
	ctx.SetMetrics(metrics)
	ctx.AddCapability("tupleMutation")

	check.Equal(SingleThreadedContextAlways, ctx.ProvidesSingleThreadedContext())
	check.True(ctx.IsSetProvidesSingleThreadedContext())
	check.True(ctx.AllowCustomLogic())
	check.Same(metrics, ctx.Metrics())
	check.Equal(1, ctx.Metrics().Metrics().Len())
	got := ctx.Metrics().Metrics().At(0)
	check.Equal("opsPerSecond", got.Name())
	check.Equal(MetricKindCounter, got.Kind())
	check.False(got.Dynamic())
	check.True(got.IsSetDynamic())
	check.Equal("Operations per second", got.Description().Text())
	check.Equal([]string{"tupleMutation"}, ctx.Capabilities())
	check.Equal("/ContextType/metrics/metric[1]", got.Node().Path())

	// replacing a single containment detaches the previous child
	ctx.SetMetrics(f.NewMetrics())
	check.Nil(metrics.Node().Parent())
}

func TestRegistryOrder(t *testing.T) {
	check := assert.New(t)
	reg := Registry()
	check.Same(reg, Init())

	ctx := reg.Describe(KindContext)
	var names []string
	for _, f := range ctx.Fields {
		names = append(names, f.Name)
	}
	check.Equal([]string{
		"description", "iconUri", "metrics", "customLiterals", "customOutputFunctions",
		"libraryDependencies", "providesSingleThreadedContext", "incrementalCompilationStrategy",
		"allowCustomLogic", "codeTemplates", "splExpressionTree", "capability", "verificationModule",
	}, names)

	for _, tc := range []struct {
		field string
		kind  model.FieldKind
		req   bool
	}{
		{"description", model.ContainmentSingle, false},
		{"iconUri", model.ContainmentList, false},
		{"providesSingleThreadedContext", model.Enum, true},
		{"allowCustomLogic", model.Scalar, false},
		{"capability", model.Scalar, false},
	} {
		f, ok := ctx.Field(tc.field)
		check.True(ok, tc.field)
		check.Equal(tc.kind, f.Kind, tc.field)
		check.Equal(tc.req, f.IsRequired(), tc.field)
	}

	set := reg.Describe(KindInputPortSet)
	check.Same(reg.Describe(KindInputPortOpenSet), set.Super)
	check.Equal("cardinality", set.Fields[inputPortCardinality].Name)
	check.Equal("optional", set.Fields[inputPortOptional].Name)

	lib := reg.Describe(KindLibrary)
	check.Equal(CommonNamespace, lib.Fields[libraryDescription].Namespace)
	deps := reg.Describe(KindLibraryDependencies)
	check.Equal(Namespace, deps.Fields[libraryDependenciesLibrary].Namespace)

	a, err := reg.Fingerprint()
	check.NoError(err)
	b, err := Build().Fingerprint()
	check.NoError(err)
	check.Equal(a, b)

	for _, td := range reg.Types() {
		again := Build().Describe(td.Kind)
		check.Equal(len(td.Fields), len(again.Fields), td.Name)
		for i := range td.Fields {
			check.Equal(td.Fields[i].Name, again.Fields[i].Name)
		}
	}
}

func TestOperatorModelChoice(t *testing.T) {
	check := assert.New(t)
	f := DefaultFactory()
	om := f.NewOperatorModel()
	check.Equal([][]int{{operatorModelCpp, operatorModelJava}}, om.Node().Type().Choices)
	om.SetJavaOperatorModel(f.NewJavaOpModel())
	check.NotNil(om.JavaOperatorModel())
	check.Nil(om.CppOperatorModel())

	got, ok := AsOperatorModel(om.Node())
	check.True(ok)
	check.Same(om, got)
	_, ok = AsOperatorModel(f.NewContext().Node())
	check.False(ok)
	check.Equal("/operatorModel/javaOperatorModel", om.JavaOperatorModel().Node().Path())
}
