package codec

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/andaru/splmodel/model"
	"github.com/andaru/splmodel/modelerr"
	"github.com/andaru/splmodel/xmlutil"
	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"
	"github.com/golang/glog"
	"github.com/pkg/errors"
)

// XSINamespace is the XML Schema instance namespace
const XSINamespace = "http://www.w3.org/2001/XMLSchema-instance"

var rootExpr = xpath.MustCompile("/*")

// Document is a decoded model document.
type Document struct {
	Root *model.Node
	// Prefixes holds the namespace declarations of the document element
	Prefixes xmlutil.PrefixMap
	// SchemaLocation is the xsi:schemaLocation attribute value, if any
	SchemaLocation string
	// Warnings lists the content skipped by a lenient decoder
	Warnings modelerr.List
}

// Decoder reads model documents.
type Decoder struct {
	reg    *model.Registry
	strict bool
}

// DecodeOption is a Decoder option function
type DecodeOption func(*Decoder)

// Strict sets whether unknown elements and attributes fail decoding.
// Decoders are strict by default.
func Strict(strict bool) DecodeOption { return func(d *Decoder) { d.strict = strict } }

// NewDecoder returns a Decoder for documents described by reg.
func NewDecoder(reg *model.Registry, opts ...DecodeOption) *Decoder {
	d := &Decoder{reg: reg, strict: true}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Decode reads one document from r. A document that parses but
// contains errors is returned along with a modelerr.List describing
// them.
func (d *Decoder) Decode(ctx context.Context, r io.Reader) (*Document, error) {
	top, err := xmlquery.Parse(r)
	if err != nil {
		return nil, errors.WithStack(modelerr.MalformedDocument(modelerr.WithMessage(err.Error())))
	}
	return d.DecodeNode(ctx, top)
}

// DecodeNode decodes the document element of a parsed xmlquery tree.
func (d *Decoder) DecodeNode(ctx context.Context, top *xmlquery.Node) (*Document, error) {
	x := xmlquery.QuerySelector(top, rootExpr)
	if x == nil {
		return nil, errors.WithStack(modelerr.MalformedDocument(modelerr.WithMessage("no document element")))
	}
	name := nodeName(x)
	kind, ok := d.reg.Root(name)
	if !ok {
		for _, rn := range d.reg.Roots() {
			if rn.Local == name.Local {
				return nil, errors.WithStack(modelerr.UnknownNamespace(name.Local, name.Space,
					modelerr.WithMessage(fmt.Sprintf("document element %s must be in namespace %q",
						xmlutil.ElemStr(name), rn.Space))))
			}
		}
		return nil, errors.WithStack(modelerr.MalformedDocument(modelerr.WithMessage(
			fmt.Sprintf("unexpected document element %s", xmlutil.ElemStr(name)))))
	}

	doc := &Document{Root: d.reg.New(kind), Prefixes: xmlutil.NewPrefixMap(xmlAttrs(x)...)}
	for _, a := range x.Attr {
		if isXSI(a) && a.Name.Local == "schemaLocation" {
			doc.SchemaLocation = a.Value
		}
	}
	s := &decodeState{ctx: ctx, strict: d.strict}
	if err := s.element(x, doc.Root); err != nil {
		return nil, err
	}
	doc.Warnings = s.warnings
	glog.V(1).Infof("decoded %s: %d errors, %d warnings", xmlutil.ElemStr(name), len(s.errs), len(s.warnings))
	return doc, s.errs.Err()
}

type decodeState struct {
	ctx    context.Context
	strict bool

	errs     modelerr.List
	warnings modelerr.List
}

// skip records content the decoder ignores: an error when strict,
// otherwise a warning.
func (s *decodeState) skip(e *modelerr.Error) {
	if s.strict {
		s.fail(e)
		return
	}
	e.Severity = modelerr.SeverityWarning
	glog.Warning(e)
	s.warnings = append(s.warnings, errors.WithStack(e))
}

func (s *decodeState) fail(e *modelerr.Error) { s.errs = append(s.errs, errors.WithStack(e)) }

func (s *decodeState) element(x *xmlquery.Node, n *model.Node) error {
	// check for context cancellation once per element
	if err := s.ctx.Err(); err != nil {
		return err
	}
	t := n.Type()
	for _, a := range x.Attr {
		if _, decl := xmlutil.DeclaredPrefix(a.Name); decl || isXSI(a) {
			continue
		}
		f, ok := t.Field(a.Name.Local)
		if !ok || f.Form != model.Attribute || a.Name.Space != "" {
			s.skip(modelerr.UnknownAttribute(a.Name.Local, x.Data, modelerr.WithPath(n.Path())))
			continue
		}
		s.value(n, f, a.Value)
	}

	var text strings.Builder
	for c := x.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case xmlquery.ElementNode:
			if err := s.child(c, n); err != nil {
				return err
			}
		case xmlquery.TextNode, xmlquery.CharDataNode:
			text.WriteString(c.Data)
		}
	}

	content := strings.TrimSpace(text.String())
	if f, ok := t.TextField(); ok {
		if content != "" {
			s.value(n, f, content)
		}
	} else if content != "" {
		s.skip(errUnexpectedCData(n, content))
	}
	return nil
}

func (s *decodeState) child(c *xmlquery.Node, n *model.Node) error {
	name := nodeName(c)
	f, ok := n.Type().Field(name.Local)
	if !ok || f.Form != model.Element {
		s.skip(errUnknownElement(n, name))
		return nil
	}
	if f.Namespace != name.Space {
		s.skip(modelerr.UnknownNamespace(name.Local, name.Space, modelerr.WithPath(n.Path()),
			modelerr.WithMessage(fmt.Sprintf("element %s found in element %s, want namespace %q",
				xmlutil.ElemStr(name), xmlutil.ElemStr(n.ElementName()), f.Namespace))))
		return nil
	}

	switch f.Kind {
	case model.ContainmentSingle:
		if n.Child(f.ID) != nil {
			s.fail(modelerr.TooMany(name.Local, modelerr.WithPath(n.Path())))
			return nil
		}
		child := n.Registry().New(f.Elem)
		n.SetChild(f.ID, child)
		return s.element(c, child)
	case model.ContainmentList:
		child := n.Registry().New(f.Elem)
		n.List(f.ID).Append(child)
		return s.element(c, child)
	}
	s.value(n, f, strings.TrimSpace(c.InnerText()))
	return nil
}

func (s *decodeState) value(n *model.Node, f *model.FieldDescriptor, lexical string) {
	v, err := ParseValue(f, lexical)
	if err != nil {
		s.fail(modelerr.InvalidValue(modelerr.WithPath(n.Path()+"/"+f.Name), modelerr.WithValue(lexical),
			modelerr.WithMessage(err.Error())))
		return
	}
	if f.IsMany() {
		n.AddValue(f.ID, v)
		return
	}
	if n.IsSet(f.ID) {
		s.fail(modelerr.TooMany(f.Name, modelerr.WithPath(n.Path())))
		return
	}
	n.Set(f.ID, v)
}

func nodeName(x *xmlquery.Node) xml.Name { return xml.Name{Space: x.NamespaceURI, Local: x.Data} }

func xmlAttrs(x *xmlquery.Node) []xml.Attr {
	attrs := make([]xml.Attr, 0, len(x.Attr))
	for _, a := range x.Attr {
		attrs = append(attrs, xml.Attr{Name: a.Name, Value: a.Value})
	}
	return attrs
}

func isXSI(a xmlquery.Attr) bool {
	return a.NamespaceURI == XSINamespace || a.Name.Space == XSINamespace || a.Name.Space == "xsi"
}

func errUnexpectedCData(n *model.Node, cdata string) *modelerr.Error {
	return modelerr.UnknownElement("CDATA", modelerr.WithPath(n.Path()), modelerr.WithMessage(fmt.Sprintf(
		"unexpected character data found in element %s: %q", xmlutil.ElemStr(n.ElementName()), cdata)))
}

func errUnknownElement(n *model.Node, name xml.Name) *modelerr.Error {
	return modelerr.UnknownElement(name.Local, modelerr.WithPath(n.Path()), modelerr.WithMessage(fmt.Sprintf(
		"unexpected element %s found in element %s", xmlutil.ElemStr(name), xmlutil.ElemStr(n.ElementName()))))
}
