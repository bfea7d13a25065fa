// File: generator.go
// Title: Go Source Generation Implementation
// Description: Implements emission of the generated locale package: one
//              table file per locale, the typed accessor file, and the
//              locale index. Output is deterministic and written
//              atomically.
// Version: v0.1.0
// Created: 2026-03-07
// Modified: 2026-03-07
//
// Change History:
// - 2026-03-07 v0.1.0: Initial implementation

package codegen

import (
	"bytes"
	"fmt"
	"path/filepath"
	"sort"
	"strconv"
	"text/template"

	"github.com/locgen/locgen/core/config"
	lgerror "github.com/locgen/locgen/core/error"
	"github.com/locgen/locgen/internal/meta"
	"github.com/locgen/locgen/utils/filex"
)

// Input carries everything one generation run needs. Tables maps each
// locale code to its merged key map; the source locale must be present.
type Input struct {
	OutputDir     string
	Package       string
	SourceLocale  string
	Interpolation config.Interpolation
	Tables        map[string]map[string]string
}

// FileResult reports one emitted file. Locale is empty for the accessor
// file. The index file produces no result of its own; an index failure
// surfaces on the accessor file's result.
type FileResult struct {
	Path   string
	Locale string
	Keys   int
	Err    error
}

type kv struct {
	Key   string
	Value string
}

type localeRef struct {
	Ident string
	Tag   string
}

type paramData struct {
	Field string
	Type  string
	Token string
	Expr  string
}

type accessorData struct {
	Name   string
	Key    string
	Params []paramData
}

// Generate emits the locale package into the output directory. Existing
// files are overwritten; the directory is created when absent. One result
// is returned per locale file (source first, the rest sorted) plus one for
// the accessor file.
func Generate(in Input) []FileResult {
	if err := filex.EnsureDir(in.OutputDir); err != nil {
		return []FileResult{{
			Path: in.OutputDir,
			Err: lgerror.Wrap(err, "failed to create output directory").
				WithCode(lgerror.CodeGenerateError).
				WithOperation("codegen.Generate").
				WithDetail("directory", in.OutputDir),
		}}
	}

	locales := orderedLocales(in)
	sourceKeys := sortedKeys(in.Tables[in.SourceLocale])
	idents := assignIdentifiers(sourceKeys, reservedNames(locales))

	var results []FileResult
	for _, ref := range locales {
		results = append(results, writeLocaleFile(in, ref))
	}

	// The index references every messages<Locale> var, so it is written
	// together with the accessors and shares their result
	messagesResult := writeMessagesFile(in, sourceKeys, idents)
	if messagesResult.Err == nil {
		if err := writeIndexFile(in, locales); err != nil {
			messagesResult.Err = err
		}
	}
	results = append(results, messagesResult)

	return results
}

// orderedLocales returns the locale references with the source locale
// first and the remainder sorted. Locale codes that collapse to the same
// identifier (en-US and en_US both yield EnUS) get numeric suffixes so the
// emitted constants stay distinct.
func orderedLocales(in Input) []localeRef {
	var rest []string
	for code := range in.Tables {
		if code != in.SourceLocale {
			rest = append(rest, code)
		}
	}
	sort.Strings(rest)

	claimed := make(map[string]int, len(rest)+1)
	assign := func(code string) localeRef {
		ident := localeIdent(code)
		claimed[ident]++
		if n := claimed[ident]; n > 1 {
			ident = ident + strconv.Itoa(n)
		}
		return localeRef{Ident: ident, Tag: code}
	}

	refs := []localeRef{assign(in.SourceLocale)}
	for _, code := range rest {
		refs = append(refs, assign(code))
	}
	return refs
}

// reservedNames lists every exported identifier the index file declares;
// key-derived accessor names must not shadow them
func reservedNames(locales []localeRef) []string {
	names := []string{"Locale", "Locales", "Table"}
	for _, ref := range locales {
		names = append(names, "Locale"+ref.Ident, "Tag"+ref.Ident)
	}
	return names
}

func sortedKeys(table map[string]string) []string {
	keys := make([]string, 0, len(table))
	for key := range table {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// writeLocaleFile emits <locale>.go with the tag constant and message table
func writeLocaleFile(in Input, ref localeRef) FileResult {
	table := in.Tables[ref.Tag]
	messages := make([]kv, 0, len(table))
	for _, key := range sortedKeys(table) {
		messages = append(messages, kv{Key: key, Value: table[key]})
	}

	path := filepath.Join(in.OutputDir, localeFileName(ref.Tag))
	result := FileResult{Path: path, Locale: ref.Tag, Keys: len(messages)}

	data := struct {
		Header   string
		Package  string
		Ident    string
		Tag      string
		Messages []kv
	}{generatedHeader, in.Package, ref.Ident, ref.Tag, messages}

	result.Err = render(localeTemplate, path, data)
	return result
}

// localeFileName returns the output filename for a locale table. A locale
// literally named "messages" or "index" must not overwrite the accessor or
// index file.
func localeFileName(tag string) string {
	name := tag + ".go"
	if name == "messages.go" || name == "index.go" {
		name = "locale_" + name
	}
	return name
}

// writeIndexFile emits index.go with the Locale type, constants, tables,
// and the lookup helper
func writeIndexFile(in Input, locales []localeRef) error {
	data := struct {
		Header  string
		Package string
		Locales []localeRef
		Source  localeRef
	}{generatedHeader, in.Package, locales, locales[0]}

	return render(indexTemplate, filepath.Join(in.OutputDir, "index.go"), data)
}

// writeMessagesFile emits messages.go with one typed accessor per source
// key
func writeMessagesFile(in Input, sourceKeys []string, idents map[string]string) FileResult {
	source := in.Tables[in.SourceLocale]

	var accessors []accessorData
	needStrings, needStrconv, needTime := false, false, false

	for _, key := range sourceKeys {
		accessor := accessorData{Name: idents[key], Key: key}

		for _, param := range meta.Extract(source[key], in.Interpolation) {
			field := exportName(param.Name)
			data := paramData{Field: field, Token: paramToken(param.Name, in.Interpolation)}

			switch param.Kind {
			case meta.KindNumber:
				data.Type = "int"
				data.Expr = fmt.Sprintf("strconv.Itoa(p.%s)", field)
				needStrconv = true
			case meta.KindDate:
				data.Type = "time.Time"
				data.Expr = fmt.Sprintf("p.%s.Format(%q)", field, "2006-01-02")
				needTime = true
			default:
				data.Type = "string"
				data.Expr = "p." + field
			}

			accessor.Params = append(accessor.Params, data)
		}

		if len(accessor.Params) > 0 {
			needStrings = true
		}
		accessors = append(accessors, accessor)
	}

	var imports []string
	if needStrconv {
		imports = append(imports, "strconv")
	}
	if needStrings {
		imports = append(imports, "strings")
	}
	if needTime {
		imports = append(imports, "time")
	}

	path := filepath.Join(in.OutputDir, "messages.go")
	result := FileResult{Path: path, Keys: len(sourceKeys)}

	data := struct {
		Header    string
		Package   string
		Imports   []string
		Accessors []accessorData
	}{generatedHeader, in.Package, imports, accessors}

	result.Err = render(messagesTemplate, path, data)
	return result
}

// paramToken returns the literal token an accessor substitutes in message
// values
func paramToken(name string, syntax config.Interpolation) string {
	if syntax == config.InterpolationDouble {
		return "{{" + name + "}}"
	}
	return "{" + name + "}"
}

// render executes a template and writes the output atomically so a reader
// never observes a partial file
func render(tmpl *template.Template, path string, data interface{}) error {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return lgerror.Wrap(err, "failed to render generated file").
			WithCode(lgerror.CodeGenerateError).
			WithOperation("codegen.render").
			WithDetail("path", path)
	}

	content := buf.Bytes()
	// Collapse the blank runs the template conditionals leave behind
	content = bytes.ReplaceAll(content, []byte("\n\n\n"), []byte("\n\n"))
	if !bytes.HasSuffix(content, []byte("\n")) {
		content = append(content, '\n')
	}

	if err := filex.WriteFileAtomic(path, content, 0644); err != nil {
		return lgerror.Wrap(err, "failed to write generated file").
			WithCode(lgerror.CodeWriteFailed).
			WithOperation("codegen.render").
			WithDetail("path", path)
	}
	return nil
}
