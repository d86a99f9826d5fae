package codec

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/andaru/splmodel/model"
	"github.com/pkg/errors"
)

// ParseValue converts the lexical form s of field f to the value held
// by a model.Node: a model.Literal for enumerations, otherwise a
// string, bool or int64.
func ParseValue(f *model.FieldDescriptor, s string) (any, error) {
	if f.Kind == model.Enum {
		lit, ok := f.Enum.Get(strings.TrimSpace(s))
		if !ok {
			return nil, errors.Errorf("%q is not a %s literal", s, f.Enum.Name())
		}
		return lit, nil
	}
	switch f.Data {
	case model.String:
		return s, nil
	case model.Token:
		return strings.Join(strings.Fields(s), " "), nil
	case model.Boolean:
		switch strings.TrimSpace(s) {
		case "true", "1":
			return true, nil
		case "false", "0":
			return false, nil
		}
	case model.Int:
		if i, err := strconv.ParseInt(strings.TrimSpace(s), 10, 32); err == nil {
			return i, nil
		}
	case model.Integer:
		if i, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64); err == nil {
			return i, nil
		}
	case model.NonNegativeInteger:
		if i, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64); err == nil && i >= 0 {
			return i, nil
		}
	default:
		return nil, errors.Errorf("field %s: unsupported data type %s", f.Name, f.Data)
	}
	return nil, errors.Errorf("%q is not a valid %s", s, f.Data)
}

// FormatValue returns the lexical form of a field value.
func FormatValue(v any) string {
	switch v := v.(type) {
	case model.Literal:
		return v.Value
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int64:
		return strconv.FormatInt(v, 10)
	}
	return fmt.Sprint(v)
}
