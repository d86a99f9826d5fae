package codec

import (
	"io"

	"github.com/andaru/splmodel/modelerr"
	"github.com/andaru/splmodel/xmlutil"
	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"
	"github.com/pkg/errors"
)

// QueryOption adjusts the namespace bindings of a query.
type QueryOption func(xmlutil.PrefixMap)

// WithNamespace binds prefix to namespace in query expressions,
// replacing any binding of the same prefix declared by the document.
func WithNamespace(prefix, namespace string) QueryOption {
	return func(m xmlutil.PrefixMap) { m[prefix] = namespace }
}

// Query evaluates the XPath expression expr against the document read
// from r. Node-set results are returned as []*xmlquery.Node; other
// results as the float64, string or bool XPath produced.
//
// The prefixes declared on the document element are bound in expr, so
// a prefixed name matches elements of the bound namespace whichever
// prefix the document writes them with. Unprefixed names match only
// unprefixed elements, including those in a default namespace.
func Query(r io.Reader, expr string, opts ...QueryOption) (any, error) {
	top, err := xmlquery.Parse(r)
	if err != nil {
		return nil, errors.WithStack(modelerr.MalformedDocument(modelerr.WithMessage(err.Error())))
	}
	ns := documentPrefixes(top)
	for _, o := range opts {
		o(ns)
	}
	// the default namespace has no prefix to bind
	delete(ns, "")
	e, err := xpath.CompileWithNS(expr, ns)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid expression %q", expr)
	}
	return Evaluate(top, e), nil
}

func documentPrefixes(top *xmlquery.Node) xmlutil.PrefixMap {
	if x := xmlquery.QuerySelector(top, rootExpr); x != nil {
		return xmlutil.NewPrefixMap(xmlAttrs(x)...)
	}
	return xmlutil.PrefixMap{}
}

// Evaluate evaluates e against a parsed document.
func Evaluate(top *xmlquery.Node, e *xpath.Expr) any {
	v := e.Evaluate(xmlquery.CreateXPathNavigator(top))
	it, ok := v.(*xpath.NodeIterator)
	if !ok {
		return v
	}
	var nodes []*xmlquery.Node
	for it.MoveNext() {
		nodes = append(nodes, it.Current().(*xmlquery.NodeNavigator).Current())
	}
	return nodes
}
