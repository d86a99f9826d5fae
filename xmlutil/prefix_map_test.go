package xmlutil

import (
	"encoding/xml"
	"testing"

	"github.com/stretchr/testify/assert"
)

type strPair struct{ a, b string }

func TestPrefixMap(t *testing.T) {
	for _, tc := range []struct {
		attrs     []xml.Attr
		nsTest    []strPair
		pfxTest   []strPair
		sortAttrs []xml.Attr
	}{
		// test number #00: identity check (no tests to run and an empty sortAttrs is expected)
		{},

		// #01
		{
			attrs: []xml.Attr{
				{Name: XMLName("pfx-b", "xmlns"), Value: "val-b"},
				{Name: XMLName("pfx-a", "xmlns"), Value: "val-a"},
				{Name: XMLName("pfx-c", "xmlns"), Value: "val-c"},
			},
			nsTest: []strPair{
				{a: "pfx-a", b: "val-a"},
				{a: "pfx-b", b: "val-b"},
				{a: "pfx-c", b: "val-c"},
			},
			pfxTest: []strPair{
				{b: "pfx-a", a: "val-a"},
				{b: "pfx-b", a: "val-b"},
				{b: "pfx-c", a: "val-c"},
			},
			sortAttrs: []xml.Attr{
				{Name: XMLName("pfx-a", "xmlns"), Value: "val-a"},
				{Name: XMLName("pfx-b", "xmlns"), Value: "val-b"},
				{Name: XMLName("pfx-c", "xmlns"), Value: "val-c"},
			},
		},

		// #02: default namespace and raw-form declarations
		{
			attrs: []xml.Attr{
				{Name: XMLName("cmn:x"), Value: "ignored"},
				{Name: XMLName("xmlns:cmn"), Value: "urn:common"},
				{Name: XMLName("xmlns"), Value: "urn:op"},
				{Name: XMLName("schemaLocation", "xsi"), Value: "urn:op op.xsd"},
			},
			nsTest: []strPair{
				{a: "", b: "urn:op"},
				{a: "cmn", b: "urn:common"},
				{a: "xsi", b: ""},
			},
			pfxTest: []strPair{
				{a: "urn:op", b: ""},
				{a: "urn:common", b: "cmn"},
			},
			sortAttrs: []xml.Attr{
				{Name: XMLName("xmlns"), Value: "urn:op"},
				{Name: XMLName("cmn", "xmlns"), Value: "urn:common"},
			},
		},
	} {
		t.Run("", func(t *testing.T) {
			a := assert.New(t)
			pmap := NewPrefixMap(tc.attrs...)
			for _, tt := range tc.nsTest {
				a.Equal(tt.b, pmap.Namespace(tt.a))
			}
			for _, tt := range tc.pfxTest {
				var pfx string
				if pfxes := pmap.Prefix(tt.a); pfxes != nil {
					pfx = pfxes[0]
				}
				a.Equal(tt.b, pfx)
			}
			a.Equal(tc.sortAttrs, pmap.Attr())
		})
	}
}

func TestPrefixMapQualify(t *testing.T) {
	a := assert.New(t)
	pmap := PrefixMap{}
	a.Equal("", pmap.Set("", "urn:op"))
	a.Equal("cmn", pmap.Set("cmn", "urn:common"))
	// an already bound namespace keeps its prefix
	a.Equal("cmn", pmap.Set("other", "urn:common"))
	a.Len(pmap, 2)

	for _, tc := range []struct {
		name xml.Name
		want string
		ok   bool
	}{
		{name: XMLName("context", "urn:op"), want: "context", ok: true},
		{name: XMLName("description", "urn:common"), want: "cmn:description", ok: true},
		{name: XMLName("size"), want: "size", ok: true},
		{name: XMLName("thing", "urn:unknown"), want: "thing", ok: false},
	} {
		got, ok := pmap.Qualify(tc.name)
		a.Equal(tc.want, got, tc.name.Local)
		a.Equal(tc.ok, ok, tc.name.Local)
	}

	a.Equal([]xml.Attr{
		{Name: XMLName("xmlns"), Value: "urn:op"},
		{Name: XMLName("xmlns:cmn"), Value: "urn:common"},
	}, pmap.RawAttr())
}
