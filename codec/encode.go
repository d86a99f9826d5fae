package codec

import (
	"encoding/xml"
	"fmt"
	"io"

	"github.com/andaru/splmodel/model"
	"github.com/andaru/splmodel/modelerr"
	"github.com/andaru/splmodel/xmlutil"
	"github.com/pkg/errors"
)

// Encoder writes model documents.
type Encoder struct {
	w              io.Writer
	prefixes       xmlutil.PrefixMap
	schemaLocation string
	indent         string
	header         bool
}

// EncodeOption is an Encoder option function
type EncodeOption func(*Encoder)

// WithPrefix binds prefix to namespace in the output.
func WithPrefix(prefix, namespace string) EncodeOption {
	return func(e *Encoder) { e.prefixes.Set(prefix, namespace) }
}

// WithPrefixes binds all prefixes of m in the output.
func WithPrefixes(m xmlutil.PrefixMap) EncodeOption {
	return func(e *Encoder) {
		for pfx, ns := range m {
			e.prefixes.Set(pfx, ns)
		}
	}
}

// WithSchemaLocation sets the xsi:schemaLocation of the document element.
func WithSchemaLocation(loc string) EncodeOption {
	return func(e *Encoder) { e.schemaLocation = loc }
}

// WithIndent sets the per-level indentation; "" writes one line.
func WithIndent(indent string) EncodeOption { return func(e *Encoder) { e.indent = indent } }

// WithHeader sets whether the XML declaration is written.
func WithHeader(header bool) EncodeOption { return func(e *Encoder) { e.header = header } }

// NewEncoder returns an Encoder writing to w.
func NewEncoder(w io.Writer, opts ...EncodeOption) *Encoder {
	e := &Encoder{w: w, prefixes: xmlutil.PrefixMap{}, indent: "  ", header: true}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// EncodeDocument writes doc, keeping its namespace prefixes and schema
// location unless the encoder was given its own.
func (e *Encoder) EncodeDocument(doc *Document) error {
	enc := *e
	enc.prefixes = xmlutil.PrefixMap{}
	for pfx, ns := range e.prefixes {
		enc.prefixes[pfx] = ns
	}
	for pfx, ns := range doc.Prefixes {
		if _, taken := enc.prefixes[pfx]; !taken {
			enc.prefixes.Set(pfx, ns)
		}
	}
	if enc.schemaLocation == "" {
		enc.schemaLocation = doc.SchemaLocation
	}
	return enc.Encode(doc.Root)
}

// Encode writes n, which must be of a document element type.
func (e *Encoder) Encode(n *model.Node) error {
	name, ok := n.Registry().RootName(n.Kind())
	if !ok {
		return errors.WithStack(modelerr.BadElement(n.Type().Name, modelerr.WithPath(n.Path()),
			modelerr.WithMessage("not a document element type")))
	}
	return e.EncodeElement(name, n)
}

// EncodeElement writes n as a document element named name.
func (e *Encoder) EncodeElement(name xml.Name, n *model.Node) error {
	pm := e.bindings(name.Space, n)
	if e.header {
		if _, err := io.WriteString(e.w, xml.Header); err != nil {
			return errors.WithStack(err)
		}
	}
	enc := xml.NewEncoder(e.w)
	enc.Indent("", e.indent)

	start := xml.StartElement{Name: qualify(pm, name), Attr: pm.RawAttr()}
	if e.schemaLocation != "" {
		start.Attr = append(start.Attr, xml.Attr{Name: xmlutil.XMLName("xsi:schemaLocation"), Value: e.schemaLocation})
	}
	if err := e.element(enc, pm, start, n); err != nil {
		return err
	}
	if err := enc.Flush(); err != nil {
		return errors.WithStack(err)
	}
	_, err := io.WriteString(e.w, "\n")
	return errors.WithStack(err)
}

// bindings returns the prefixes for a document rooted in namespace ns,
// binding every namespace used by the tree under n.
func (e *Encoder) bindings(ns string, n *model.Node) xmlutil.PrefixMap {
	pm := xmlutil.PrefixMap{}
	for pfx, uri := range e.prefixes {
		pm[pfx] = uri
	}
	bind := func(uri string) {
		if uri == "" || len(pm.Prefix(uri)) > 0 {
			return
		}
		if _, taken := pm[""]; !taken {
			pm[""] = uri
			return
		}
		for i := 1; ; i++ {
			pfx := fmt.Sprintf("ns%d", i)
			if _, taken := pm[pfx]; !taken {
				pm[pfx] = uri
				return
			}
		}
	}
	bind(ns)
	_ = n.Walk(func(c *model.Node) error {
		t := c.Type()
		for i := range t.Fields {
			if f := &t.Fields[i]; f.Form == model.Element && c.IsSet(i) {
				bind(f.Namespace)
			}
		}
		return nil
	})
	if e.schemaLocation != "" {
		pm.Set("xsi", XSINamespace)
	}
	return pm
}

func qualify(pm xmlutil.PrefixMap, name xml.Name) xml.Name {
	qname, _ := pm.Qualify(name)
	return xml.Name{Local: qname}
}

func (e *Encoder) element(enc *xml.Encoder, pm xmlutil.PrefixMap, start xml.StartElement, n *model.Node) error {
	t := n.Type()
	for i := range t.Fields {
		if f := &t.Fields[i]; f.Form == model.Attribute && n.IsSet(i) {
			start.Attr = append(start.Attr, xml.Attr{Name: xmlutil.XMLName(f.Name), Value: FormatValue(n.Get(i))})
		}
	}
	if err := enc.EncodeToken(start); err != nil {
		return errors.WithStack(err)
	}
	if f, ok := t.TextField(); ok && n.IsSet(f.ID) {
		if err := enc.EncodeToken(xml.CharData(FormatValue(n.Get(f.ID)))); err != nil {
			return errors.WithStack(err)
		}
	}
	for i := range t.Fields {
		f := &t.Fields[i]
		if f.Form != model.Element || !n.IsSet(i) {
			continue
		}
		child := xml.StartElement{Name: qualify(pm, xmlutil.XMLName(f.Name, f.Namespace))}
		var err error
		switch {
		case f.Kind == model.ContainmentSingle:
			err = e.element(enc, pm, child, n.Child(i))
		case f.Kind == model.ContainmentList:
			for _, c := range n.List(i).All() {
				if err = e.element(enc, pm, child, c); err != nil {
					break
				}
			}
		case f.IsMany():
			for _, v := range n.Values(i) {
				if err = simple(enc, child, FormatValue(v)); err != nil {
					break
				}
			}
		default:
			err = simple(enc, child, FormatValue(n.Get(i)))
		}
		if err != nil {
			return err
		}
	}
	return errors.WithStack(enc.EncodeToken(start.End()))
}

func simple(enc *xml.Encoder, start xml.StartElement, v string) error {
	if err := enc.EncodeToken(start); err != nil {
		return errors.WithStack(err)
	}
	if err := enc.EncodeToken(xml.CharData(v)); err != nil {
		return errors.WithStack(err)
	}
	return errors.WithStack(enc.EncodeToken(start.End()))
}
