// Package templates renders generated pages from a page template: the
// embedded default, or an override supplied next to the output.
//
// Templates use text/template syntax over string variables, so values are
// substituted verbatim (`{{ .entries }}`, `{{ .title }}`). Referencing an
// unknown variable is an error.
package templates

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"text/template"

	ferrors "git.home.luguber.info/inful/hidldoc/internal/foundation/errors"
	"git.home.luguber.info/inful/hidldoc/internal/logfields"
	"github.com/spf13/afero"
)

var (
	// ErrTemplateParse indicates a page template is not valid text/template syntax.
	ErrTemplateParse = errors.New("page template parse failed")
	// ErrTemplateExecute indicates rendering failed, usually an unknown variable.
	ErrTemplateExecute = errors.New("page template execution failed")
)

//go:embed defaults/index.html.tmpl
var defaultIndexPage string

// Source reports where a page template came from.
type Source string

const (
	SourceEmbedded Source = "embedded"
	SourceFile     Source = "file"
)

// Page is a parsed page template.
type Page struct {
	name   string
	source Source
	path   string
	tpl    *template.Template
}

// DefaultIndexPage returns the embedded index page template.
func DefaultIndexPage() *Page {
	p, err := Parse("index", defaultIndexPage)
	if err != nil {
		// embedded template is part of the binary
		panic(fmt.Sprintf("embedded index template invalid: %v", err))
	}
	return p
}

// Parse parses raw as a page template.
func Parse(name, raw string) (*Page, error) {
	tpl, err := template.New(name).Option("missingkey=error").Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTemplateParse, err)
	}
	return &Page{name: name, source: SourceEmbedded, tpl: tpl}, nil
}

// LoadIndexPage locates the index page template. Search order (first hit wins):
//  1. override, when non-empty (a missing override is an error)
//  2. <outputRoot>/templates/index.html.tmpl
//  3. the embedded default
func LoadIndexPage(fs afero.Fs, outputRoot, override string) (*Page, error) {
	if override != "" {
		b, err := afero.ReadFile(fs, override)
		if err != nil {
			return nil, ferrors.ConfigError("read index template override").
				WithCause(err).
				WithContext("path", override).
				Build()
		}
		return parseFile(override, string(b))
	}
	local := filepath.Join(outputRoot, "templates", "index.html.tmpl")
	if b, err := afero.ReadFile(fs, local); err == nil && strings.TrimSpace(string(b)) != "" {
		return parseFile(local, string(b))
	}
	return DefaultIndexPage(), nil
}

func parseFile(path, raw string) (*Page, error) {
	p, err := Parse("index", raw)
	if err != nil {
		return nil, ferrors.BuildError("parse index template").
			WithCause(err).
			WithContext("path", path).
			Build()
	}
	p.source = SourceFile
	p.path = path
	slog.Debug("Loaded index template override", logfields.Path(path))
	return p, nil
}

// Source returns where the template was loaded from.
func (p *Page) Source() Source { return p.source }

// Path returns the override file path, empty for the embedded default.
func (p *Page) Path() string { return p.path }

// Render substitutes vars into the template.
func (p *Page) Render(vars map[string]string) (string, error) {
	var buf bytes.Buffer
	if err := p.tpl.Execute(&buf, vars); err != nil {
		return "", ferrors.BuildError("render " + p.name + " page").
			WithCause(fmt.Errorf("%w: %w", ErrTemplateExecute, err)).
			Build()
	}
	return buf.String(), nil
}
