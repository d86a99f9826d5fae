package schema

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/andaru/splmodel/model"
	"github.com/andaru/splmodel/modelerr"
	"github.com/andaru/splmodel/xmlutil"
	"github.com/golang/glog"
)

// Rule is an additional check run on every node of a tree.
type Rule func(n *model.Node) []*modelerr.Error

// Validator checks model trees.
type Validator struct {
	rules     []Rule
	maxErrors int
}

// Option is a Validator option function
type Option func(*Validator)

// WithRules adds rules run after the descriptor checks of each node.
func WithRules(rules ...Rule) Option {
	return func(v *Validator) { v.rules = append(v.rules, rules...) }
}

// MaxErrors stops validation once n problems have been found. Zero,
// the default, means no limit.
func MaxErrors(n int) Option { return func(v *Validator) { v.maxErrors = n } }

// New returns a new Validator.
func New(opts ...Option) *Validator {
	v := &Validator{}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Validate checks the tree rooted at n with a default Validator.
func Validate(ctx context.Context, n *model.Node) (modelerr.List, error) {
	return New().Validate(ctx, n)
}

type errLimit struct{}

func (errLimit) Error() string { return "error limit reached" }

// Validate checks the tree rooted at n and returns the problems found,
// in document order. The error is non-nil only when ctx is done before
// the walk completes.
func (v *Validator) Validate(ctx context.Context, n *model.Node) (modelerr.List, error) {
	var out modelerr.List
	add := func(e *modelerr.Error) error {
		out = append(out, e)
		if v.maxErrors > 0 && len(out) >= v.maxErrors {
			return errLimit{}
		}
		return nil
	}
	err := n.Walk(func(n *model.Node) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		for _, e := range v.node(n) {
			if err := add(e); err != nil {
				return err
			}
		}
		return nil
	})
	if _, limited := err.(errLimit); limited {
		err = nil
	}
	glog.V(1).Infof("validated %s: %d problems", n.Path(), len(out))
	return out, err
}

func (v *Validator) node(n *model.Node) (out []*modelerr.Error) {
	t := n.Type()
	inChoice := map[int]bool{}
	for _, group := range t.Choices {
		for _, id := range group {
			inChoice[id] = true
		}
		if e := choice(n, group); e != nil {
			out = append(out, e)
		}
	}
	for i := range t.Fields {
		f := &t.Fields[i]
		if inChoice[f.ID] {
			continue
		}
		out = append(out, occurrence(n, f)...)
	}
	for i := range t.Fields {
		if f := &t.Fields[i]; f.Kind == model.Scalar && f.Data.IsInteger() && n.IsSet(f.ID) {
			out = append(out, integerRange(n, f)...)
		}
	}
	for _, r := range v.rules {
		out = append(out, r(n)...)
	}
	return out
}

func count(n *model.Node, f *model.FieldDescriptor) int {
	switch {
	case f.Kind == model.ContainmentList:
		return n.List(f.ID).Len()
	case f.Kind == model.Scalar && f.IsMany():
		return len(n.Values(f.ID))
	case n.IsSet(f.ID):
		return 1
	}
	return 0
}

func occurrence(n *model.Node, f *model.FieldDescriptor) []*modelerr.Error {
	c := count(n, f)
	switch {
	case c < f.Lower && f.Form == model.Attribute:
		return []*modelerr.Error{modelerr.MissingAttribute(f.Name, n.ElementName().Local, modelerr.WithNode(n),
			modelerr.WithMessage(fmt.Sprintf("element %s requires attribute %q",
				xmlutil.ElemStr(n.ElementName()), f.Name)))}
	case c < f.Lower && f.Form == model.Text:
		return []*modelerr.Error{modelerr.MissingElement(n.ElementName().Local, modelerr.WithNode(n),
			modelerr.WithMessage(fmt.Sprintf("element %s requires content", xmlutil.ElemStr(n.ElementName()))))}
	case c < f.Lower && f.Lower == 1:
		return []*modelerr.Error{modelerr.MissingElement(f.Name, modelerr.WithNode(n),
			modelerr.WithMessage(fmt.Sprintf("element %s requires child %s",
				xmlutil.ElemStr(n.ElementName()), f.Name)))}
	case c < f.Lower:
		return []*modelerr.Error{modelerr.MissingElement(f.Name, modelerr.WithNode(n),
			modelerr.WithMessage(fmt.Sprintf("element %s requires at least %d %s elements, found %d",
				xmlutil.ElemStr(n.ElementName()), f.Lower, f.Name, c)))}
	case f.Upper != model.Unbounded && c > f.Upper:
		return []*modelerr.Error{modelerr.TooMany(f.Name, modelerr.WithNode(n),
			modelerr.WithMessage(fmt.Sprintf("element %s allows at most %d %s elements, found %d",
				xmlutil.ElemStr(n.ElementName()), f.Upper, f.Name, c)))}
	}
	return nil
}

func choice(n *model.Node, group []int) *modelerr.Error {
	var names, present []string
	for _, id := range group {
		f := n.Field(id)
		names = append(names, f.Name)
		if count(n, f) > 0 {
			present = append(present, f.Name)
		}
	}
	switch len(present) {
	case 1:
		return nil
	case 0:
		return modelerr.MissingElement(strings.Join(names, "|"), modelerr.WithNode(n),
			modelerr.WithMessage(fmt.Sprintf("element %s requires one of %s",
				xmlutil.ElemStr(n.ElementName()), strings.Join(names, ", "))))
	}
	return modelerr.BadElement(present[1], modelerr.WithNode(n),
		modelerr.WithMessage(fmt.Sprintf("element %s allows only one of %s, found %s",
			xmlutil.ElemStr(n.ElementName()), strings.Join(names, ", "), strings.Join(present, ", "))))
}

func integerRange(n *model.Node, f *model.FieldDescriptor) (out []*modelerr.Error) {
	var vs []int64
	if f.IsMany() {
		vs = n.Ints(f.ID)
	} else {
		vs = []int64{n.Int(f.ID)}
	}
	for _, i := range vs {
		var bad bool
		switch f.Data {
		case model.Int:
			bad = i < math.MinInt32 || i > math.MaxInt32
		case model.NonNegativeInteger:
			bad = i < 0
		}
		if bad {
			out = append(out, modelerr.InvalidValue(modelerr.WithPath(n.Path()+"/"+f.Name),
				modelerr.WithValue(fmt.Sprint(i)),
				modelerr.WithMessage(fmt.Sprintf("%d is not a valid %s", i, f.Data))))
		}
	}
	return out
}

// Unique returns a rule reporting entries of the list field named list
// that share the value of their key field. Nodes whose type lacks the
// list field are not checked.
func Unique(list, key string) Rule {
	return func(n *model.Node) (out []*modelerr.Error) {
		f, ok := n.Type().Field(list)
		if !ok || f.Kind != model.ContainmentList {
			return nil
		}
		seen := map[string]bool{}
		for _, c := range n.List(f.ID).All() {
			kf, ok := c.Type().Field(key)
			if !ok || kf.Kind != model.Scalar || kf.IsMany() || !c.IsSet(kf.ID) {
				continue
			}
			k := fmt.Sprint(c.Get(kf.ID))
			if seen[k] {
				out = append(out, modelerr.BadElement(list, modelerr.WithNode(c), modelerr.WithValue(k),
					modelerr.WithMessage(fmt.Sprintf("duplicate %s %s %q", list, key, k))))
			}
			seen[k] = true
		}
		return out
	}
}
