// File: templates.go
// Title: Code Generation Templates
// Description: Holds the text templates emitting the per-locale table
//              files, the accessor file, and the index file.
// Version: v0.1.0
// Created: 2026-03-07
// Modified: 2026-03-07
//
// Change History:
// - 2026-03-07 v0.1.0: Initial templates

package codegen

import (
	"strconv"
	"text/template"
)

// generatedHeader is the first line of every emitted file
const generatedHeader = "// Code generated by locgen. DO NOT EDIT."

var templateFuncs = template.FuncMap{
	"quote": strconv.Quote,
}

var localeTemplate = template.Must(template.New("locale").Funcs(templateFuncs).Parse(
	`{{.Header}}

package {{.Package}}

// Tag{{.Ident}} is the language tag of this locale.
const Tag{{.Ident}} = {{quote .Tag}}

var messages{{.Ident}} = map[string]string{
{{- range .Messages}}
	{{quote .Key}}: {{quote .Value}},
{{- end}}
}
`))

var indexTemplate = template.Must(template.New("index").Funcs(templateFuncs).Parse(
	`{{.Header}}

package {{.Package}}

// Locale identifies one generated message table.
type Locale string

const (
{{- range .Locales}}
	Locale{{.Ident}} Locale = {{quote .Tag}}
{{- end}}
)

// Locales lists every generated locale, source locale first.
var Locales = []Locale{
{{- range .Locales}}
	Locale{{.Ident}},
{{- end}}
}

var tables = map[Locale]map[string]string{
{{- range .Locales}}
	Locale{{.Ident}}: messages{{.Ident}},
{{- end}}
}

// Table returns the raw message table of one locale.
func Table(locale Locale) map[string]string {
	return tables[locale]
}

func lookup(locale Locale, key string) string {
	if table, ok := tables[locale]; ok {
		if value, ok := table[key]; ok {
			return value
		}
	}
	return tables[Locale{{.Source.Ident}}][key]
}
`))

var messagesTemplate = template.Must(template.New("messages").Funcs(templateFuncs).Parse(
	`{{.Header}}

package {{.Package}}
{{if .Imports}}
import (
{{- range .Imports}}
	{{quote .}}
{{- end}}
)
{{end}}
{{- range .Accessors}}
{{if .Params}}
// {{.Name}}Params holds the parameters of the {{quote .Key}} message.
type {{.Name}}Params struct {
{{- range .Params}}
	{{.Field}} {{.Type}}
{{- end}}
}

func {{.Name}}(locale Locale, p {{.Name}}Params) string {
	v := lookup(locale, {{quote .Key}})
{{- range .Params}}
	v = strings.ReplaceAll(v, {{quote .Token}}, {{.Expr}})
{{- end}}
	return v
}
{{else}}
func {{.Name}}(locale Locale) string {
	return lookup(locale, {{quote .Key}})
}
{{end}}
{{- end}}
`))
