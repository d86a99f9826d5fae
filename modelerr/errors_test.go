package modelerr

import (
	"fmt"
	"testing"

	"encoding/json"
	"encoding/xml"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestError(t *testing.T) {
	for _, tc := range []struct {
		err *Error

		error string
		xml   string
		json  string
	}{
		{
			err:   MissingElement("context", WithPath("/operatorModel/cppOperatorModel")),
			error: "schema error tag:missing-element path:/operatorModel/cppOperatorModel bad-element:context",
			xml:   "<model-error><error-type>schema</error-type><error-tag>missing-element</error-tag><error-severity>error</error-severity><error-path>/operatorModel/cppOperatorModel</error-path><error-info><bad-element>context</bad-element></error-info></model-error>",
			json:  "{\"error-type\":\"schema\",\"error-tag\":\"missing-element\",\"error-severity\":\"error\",\"error-path\":\"/operatorModel/cppOperatorModel\",\"error-info\":{\"bad-element\":\"context\"}}",
		},

		{
			err:   InvalidValue(WithValue("often"), WithPath("/x"), WithMessage("not a boolean")),
			error: "value error tag:invalid-value path:/x bad-value:\"often\" not a boolean",
			xml:   "<model-error><error-type>value</error-type><error-tag>invalid-value</error-tag><error-severity>error</error-severity><error-path>/x</error-path><error-message>not a boolean</error-message><error-info><bad-value>often</bad-value></error-info></model-error>",
			json:  "{\"error-type\":\"value\",\"error-tag\":\"invalid-value\",\"error-severity\":\"error\",\"error-path\":\"/x\",\"error-message\":\"not a boolean\",\"error-info\":{\"bad-value\":\"often\"}}",
		},

		{
			err:   UnknownAttribute("color", "metric", WithSeverity(SeverityWarning)),
			error: "schema warning tag:unknown-attribute bad-attribute:color bad-element:metric",
			xml:   "<model-error><error-type>schema</error-type><error-tag>unknown-attribute</error-tag><error-severity>warning</error-severity><error-info><bad-attribute>color</bad-attribute><bad-element>metric</bad-element></error-info></model-error>",
			json:  "{\"error-type\":\"schema\",\"error-tag\":\"unknown-attribute\",\"error-severity\":\"warning\",\"error-info\":{\"bad-attribute\":\"color\",\"bad-element\":\"metric\"}}",
		},

		{
			err:   UnknownNamespace("context", "urn:x"),
			error: "schema error tag:unknown-namespace bad-element:context bad-namespace:urn:x",
			xml:   "<model-error><error-type>schema</error-type><error-tag>unknown-namespace</error-tag><error-severity>error</error-severity><error-info><bad-element>context</bad-element><bad-namespace>urn:x</bad-namespace></error-info></model-error>",
			json:  "{\"error-type\":\"schema\",\"error-tag\":\"unknown-namespace\",\"error-severity\":\"error\",\"error-info\":{\"bad-element\":\"context\",\"bad-namespace\":\"urn:x\"}}",
		},

		{
			err:   TooMany("optional"),
			error: "schema error tag:too-many-elements bad-element:optional",
			xml:   "<model-error><error-type>schema</error-type><error-tag>too-many-elements</error-tag><error-severity>error</error-severity><error-info><bad-element>optional</bad-element></error-info></model-error>",
			json:  "{\"error-type\":\"schema\",\"error-tag\":\"too-many-elements\",\"error-severity\":\"error\",\"error-info\":{\"bad-element\":\"optional\"}}",
		},

		{
			err:   MalformedDocument(WithType(TypeSchema), WithMessage("EOF")),
			error: "document error tag:malformed-document EOF",
			xml:   "<model-error><error-type>document</error-type><error-tag>malformed-document</error-tag><error-severity>error</error-severity><error-message>EOF</error-message></model-error>",
			json:  "{\"error-type\":\"document\",\"error-tag\":\"malformed-document\",\"error-severity\":\"error\",\"error-message\":\"EOF\"}",
		},
	} {
		t.Run(fmt.Sprintf("%v", tc.err), func(t *testing.T) {
			check := assert.New(t)
			bXML, _ := xml.Marshal(tc.err)
			bJSON, _ := json.Marshal(tc.err)
			check.Equal(tc.error, tc.err.Error())
			check.Equal(tc.json, string(bJSON))
			check.Equal(tc.xml, string(bXML))

			ev := Error{}
			if check.NoError(xml.Unmarshal(bXML, &ev)) {
				evXML, _ := xml.Marshal(ev)
				check.Equal(tc.xml, string(evXML))
			}
			ev = Error{}
			if check.NoError(json.Unmarshal(bJSON, &ev)) {
				evJSON, _ := json.Marshal(ev)
				check.Equal(tc.json, string(evJSON))
			}
		})
	}
}

func TestEnumText(t *testing.T) {
	check := assert.New(t)
	var typ Type
	check.NoError(typ.UnmarshalText([]byte(" document ")))
	check.Equal(TypeDocument, typ)
	check.Error(typ.UnmarshalText([]byte("rpc")))
	check.Equal("Type(9)", Type(9).String())

	var sev Severity
	check.NoError(sev.UnmarshalText([]byte("warning")))
	check.Equal(SeverityWarning, sev)
	check.Error(sev.UnmarshalText([]byte("fatal")))
}

func TestList(t *testing.T) {
	check := assert.New(t)
	var l List
	check.NoError(l.Err())

	warn := UnknownElement("extra", WithSeverity(SeverityWarning))
	l = append(l, warn, errors.WithStack(MissingElement("name")), errors.New("plain"))
	check.Error(l.Err())
	check.Equal("schema warning tag:unknown-element bad-element:extra\n"+
		"schema error tag:missing-element bad-element:name\n"+
		"plain", l.Error())
	check.Len(l.Errors(), 2)

	e, ok := As(l[1])
	check.True(ok)
	check.Equal("missing-element", e.Tag)
	_, ok = As(l[2])
	check.False(ok)
}
