package modelerr

import "github.com/andaru/splmodel/model"

// Option is an Error option function
type Option func(*Error)

func WithMessage(msg string) Option  { return func(e *Error) { e.Message = msg } }
func WithType(t Type) Option         { return func(e *Error) { e.Type = t } }
func WithSeverity(s Severity) Option { return func(e *Error) { e.Severity = s } }
func WithPath(path string) Option    { return func(e *Error) { e.Path = path } }

// WithNode sets the error path to the location of n.
func WithNode(n *model.Node) Option { return WithPath(n.Path()) }

// WithValue records the offending lexical value.
func WithValue(v string) Option {
	return func(e *Error) {
		if e.Info == nil {
			e.Info = &ErrorInfo{}
		}
		e.Info.BadValue = v
	}
}
