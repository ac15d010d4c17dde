// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package view renders the catalog pages from templates embedded in the binary.
//
// # Layout
//
// Every page file defines a "content" block and is parsed together with
// layout.html into its own template set, so pages cannot clash on block
// names. A page is addressed by its file name without extension
// (e.g. "author_list").
package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path"
	"strings"
)

//go:embed templates/*.html
var templates embed.FS

const (
	layoutFile = "layout.html"
	rootBlock  = "layout"
)

// Renderer holds one parsed template set per page.
type Renderer struct {
	pages map[string]*template.Template
}

// New parses every embedded page.
func New() (*Renderer, error) {
	sub, err := fs.Sub(templates, "templates")
	if err != nil {
		return nil, fmt.Errorf("view: %w", err)
	}
	return NewFromFS(sub)
}

// NewFromFS parses layout.html and every other *.html page found in files.
func NewFromFS(files fs.FS) (*Renderer, error) {
	names, err := fs.Glob(files, "*.html")
	if err != nil {
		return nil, fmt.Errorf("view: list templates: %w", err)
	}

	renderer := &Renderer{pages: make(map[string]*template.Template, len(names))}
	for _, file := range names {
		if file == layoutFile {
			continue
		}

		page, err := template.New(file).Funcs(funcs).ParseFS(files, layoutFile, file)
		if err != nil {
			return nil, fmt.Errorf("view: parse %s: %w", file, err)
		}
		renderer.pages[strings.TrimSuffix(file, path.Ext(file))] = page
	}

	return renderer, nil
}

// Render executes the layout of page name with data.
func (renderer *Renderer) Render(writer io.Writer, name string, data any) error {
	page, ok := renderer.pages[name]
	if !ok {
		return fmt.Errorf("view: unknown page %q", name)
	}
	return page.ExecuteTemplate(writer, rootBlock, data)
}

// Has reports whether a page is registered.
func (renderer *Renderer) Has(name string) bool {
	_, ok := renderer.pages[name]
	return ok
}

var funcs = template.FuncMap{
	"plural": func(count int, singular, plural string) string {
		if count == 1 {
			return singular
		}
		return plural
	},
}
