package spldoc

import (
	"io"
	"strings"
	"text/template"

	"github.com/pkg/errors"
)

var funcs = template.FuncMap{
	"join": strings.Join,
	// para collapses description text to a single markdown paragraph
	"para": func(s string) string { return strings.Join(strings.Fields(s), " ") },
}

var markdown = template.Must(template.New("operator").Funcs(funcs).Parse(`
{{- define "props"}}
{{- with .}}
{{range .}}
- {{.Name}}: {{.Value}}
{{- end}}
{{- end}}
{{- end}}
{{- define "ports"}}
{{- range .}}

### Ports {{.Range}}{{if .Open}} (open){{end}}
{{- with .Description}}

{{para .}}
{{- end}}
{{- template "props" .Properties}}
{{- else}}

None.
{{- end}}
{{- end}}
{{- /* blocks open with a blank line and leave the final newline to their caller */ -}}
# {{.Name}}
{{- with .Description}}

{{para .}}
{{- end}}

- Implementation: {{.Language}}
{{- with .ClassName}}
- Class: ` + "`{{.}}`" + `
{{- end}}
{{- with .Threading}}
- Threading: ` + "`{{.}}`" + ` - {{$.ThreadingText}}
{{- end}}
- Windowing: {{.WindowingMode}}
{{- with .Capabilities}}
- Capabilities: {{join . ", "}}
{{- end}}

## Parameters
{{- if .AllowAny}}

This operator accepts arbitrary parameters.
{{- end}}
{{- range .Parameters}}

### {{.Name}}
{{- with .Description}}

{{para .}}
{{- end}}
{{- template "props" .Properties}}
{{- else}}
{{- if not .AllowAny}}

This operator has no parameters.
{{- end}}
{{- end}}

## Input Ports
{{- template "ports" .InputPorts}}

## Output Ports
{{- template "ports" .OutputPorts}}
{{- with .Metrics}}

## Metrics
{{- range .}}

### {{.Name}} ({{.Kind}}{{if .Dynamic}}, dynamic{{end}})
{{- with .Description}}

{{para .}}
{{- end}}
{{- end}}
{{- end}}
{{- with .Libraries}}

## Libraries
{{range .}}
-{{with .Description}} {{para .}}{{end}}
{{- with .Libs}}
  - Libraries: {{join . ", "}}
{{- end}}
{{- with .LibPaths}}
  - Library paths: {{join . ", "}}
{{- end}}
{{- with .IncludePaths}}
  - Include paths: {{join . ", "}}
{{- end}}
{{- with .Command}}
  - Command: ` + "`{{.}}`" + `
{{- end}}
{{- end}}
{{- end}}
`))

// Render writes s to w as a markdown document.
func Render(w io.Writer, s *Summary) error {
	return errors.Wrapf(markdown.Execute(w, s), "render %s", s.Name)
}
