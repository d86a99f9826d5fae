package app

import (
	"encoding/json"
	"io"

	"github.com/gowebpki/jcs"
	"github.com/pkg/errors"
	"sigs.k8s.io/yaml"
)

// Output formats accepted by -o. Text is the command's own layout.
const (
	OutputText = ""
	OutputYAML = "yaml"
	OutputJSON = "json"
	// OutputCanonical is RFC 8785 canonical JSON
	OutputCanonical = "jcs"
)

func checkOutput(format string, text bool) error {
	switch format {
	case OutputYAML, OutputJSON, OutputCanonical:
		return nil
	case OutputText:
		if text {
			return nil
		}
	}
	return errors.Errorf("unknown output format %q", format)
}

// write encodes v to w in a structured output format.
func write(w io.Writer, format string, v any) error {
	var data []byte
	var err error
	switch format {
	case OutputYAML:
		data, err = yaml.Marshal(v)
	case OutputJSON:
		data, err = json.MarshalIndent(v, "", "  ")
		data = append(data, '\n')
	case OutputCanonical:
		data, err = json.Marshal(v)
		if err == nil {
			data, err = jcs.Transform(data)
		}
		data = append(data, '\n')
	default:
		return errors.Errorf("unknown output format %q", format)
	}
	if err != nil {
		return errors.Wrapf(err, "encode %s", format)
	}
	_, err = w.Write(data)
	return err
}
