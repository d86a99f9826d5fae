package modelerr

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"strings"
)

// Type identifies the layer an error was detected in
type Type int

const (
	// TypeSchema is a structural error: an element or attribute the
	// schema does not allow, or a missing one it requires
	TypeSchema Type = iota
	// TypeValue is a lexical error in an attribute or element value
	TypeValue
	// TypeDocument is an error in the XML document itself
	TypeDocument
)

func (t Type) String() string {
	switch t {
	case TypeSchema:
		return "schema"
	case TypeValue:
		return "value"
	case TypeDocument:
		return "document"
	default:
		return fmt.Sprintf("Type(%d)", int(t))
	}
}

func (t *Type) UnmarshalText(b []byte) error {
	b = bytes.TrimSpace(b)
	switch string(b) {
	case "schema":
		*t = TypeSchema
	case "value":
		*t = TypeValue
	case "document":
		*t = TypeDocument
	default:
		return errors.New("unknown value")
	}
	return nil
}

func (t Type) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

// Severity is the error severity
type Severity int

const (
	// SeverityError indicates "error" level
	SeverityError Severity = iota
	// SeverityWarning indicates "warning" level, reported for problems
	// skipped by lenient decoding
	SeverityWarning
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		return fmt.Sprintf("Severity(%d)", int(s))
	}
}

func (s Severity) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

func (s *Severity) UnmarshalText(b []byte) error {
	b = bytes.TrimSpace(b)
	switch string(b) {
	case "error":
		*s = SeverityError
	case "warning":
		*s = SeverityWarning
	default:
		return errors.New("unknown value")
	}
	return nil
}

// Error is a problem found decoding or validating a model document.
// Path is the location of the offending node, such as
// "/operatorModel/cppOperatorModel/context".
type Error struct {
	XMLName  xml.Name   `xml:"model-error" json:"-"`
	Type     Type       `xml:"error-type" json:"error-type"`
	Tag      string     `xml:"error-tag" json:"error-tag"`
	Severity Severity   `xml:"error-severity" json:"error-severity"`
	Path     string     `xml:"error-path,omitempty" json:"error-path,omitempty"`
	Message  string     `xml:"error-message,omitempty" json:"error-message,omitempty"`
	Info     *ErrorInfo `xml:"error-info,omitempty" json:"error-info,omitempty"`
}

// ErrorInfo names the offending item.
type ErrorInfo struct {
	BadAttribute string `xml:"bad-attribute,omitempty" json:"bad-attribute,omitempty"`
	BadElement   string `xml:"bad-element,omitempty" json:"bad-element,omitempty"`
	BadNamespace string `xml:"bad-namespace,omitempty" json:"bad-namespace,omitempty"`
	BadValue     string `xml:"bad-value,omitempty" json:"bad-value,omitempty"`
}

func (e Error) Error() string {
	s := fmt.Sprintf("%s %s tag:%s", e.Type, e.Severity, e.Tag)
	if e.Path != "" {
		s += " path:" + e.Path
	}
	if info := e.Info; info != nil {
		if info.BadAttribute != "" {
			s += " bad-attribute:" + info.BadAttribute
		}
		if info.BadElement != "" {
			s += " bad-element:" + info.BadElement
		}
		if info.BadNamespace != "" {
			s += " bad-namespace:" + info.BadNamespace
		}
		if info.BadValue != "" {
			s += fmt.Sprintf(" bad-value:%q", info.BadValue)
		}
	}
	if e.Message != "" {
		s += " " + e.Message
	}
	return s
}

func newError(tag string, info *ErrorInfo, opts []Option) *Error {
	e := &Error{Tag: tag, Info: info}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func MissingElement(elementName string, opts ...Option) *Error {
	return newError("missing-element", &ErrorInfo{BadElement: elementName}, opts)
}

func BadElement(elementName string, opts ...Option) *Error {
	return newError("bad-element", &ErrorInfo{BadElement: elementName}, opts)
}

func UnknownElement(elementName string, opts ...Option) *Error {
	return newError("unknown-element", &ErrorInfo{BadElement: elementName}, opts)
}

// TooMany reports more occurrences of an element than its maximum.
func TooMany(elementName string, opts ...Option) *Error {
	return newError("too-many-elements", &ErrorInfo{BadElement: elementName}, opts)
}

func UnknownNamespace(elementName, namespace string, opts ...Option) *Error {
	return newError("unknown-namespace", &ErrorInfo{BadElement: elementName, BadNamespace: namespace}, opts)
}

func MissingAttribute(attributeName, elementName string, opts ...Option) *Error {
	return newError("missing-attribute", &ErrorInfo{BadAttribute: attributeName, BadElement: elementName}, opts)
}

func BadAttribute(attributeName, elementName string, opts ...Option) *Error {
	return newError("bad-attribute", &ErrorInfo{BadAttribute: attributeName, BadElement: elementName}, opts)
}

func UnknownAttribute(attributeName, elementName string, opts ...Option) *Error {
	return newError("unknown-attribute", &ErrorInfo{BadAttribute: attributeName, BadElement: elementName}, opts)
}

// InvalidValue reports a value that does not parse as the field's type.
func InvalidValue(opts ...Option) *Error {
	e := newError("invalid-value", nil, opts)
	// error-type must be value for invalid-value
	e.Type = TypeValue
	return e
}

// MalformedDocument reports input that is not a well-formed document
// of a known root element.
func MalformedDocument(opts ...Option) *Error {
	e := newError("malformed-document", nil, opts)
	// error-type must be document for malformed-document
	e.Type = TypeDocument
	return e
}

// As returns the *Error in err's chain, if any.
func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// List collects the errors found in one pass over a document.
type List []error

func (l List) Error() string {
	msgs := make([]string, len(l))
	for i, err := range l {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "\n")
}

// Err returns l as an error, or nil when l is empty.
func (l List) Err() error {
	if len(l) == 0 {
		return nil
	}
	return l
}

// Errors returns the entries of l with error severity.
func (l List) Errors() (out List) {
	for _, err := range l {
		if e, ok := As(err); ok && e.Severity == SeverityWarning {
			continue
		}
		out = append(out, err)
	}
	return out
}
