package view

import (
	"fmt"
	"html/template"
	"io"
	"path/filepath"
)

// Renderer is what the handlers know about rendering. Tests swap in a fake
// to assert on the chosen template and its context instead of parsing HTML.
type Renderer interface {
	Render(w io.Writer, name string, data map[string]any) error
}

// PageRenderer holds one parsed template set per page, each page glued to
// the shared layout files.
type PageRenderer struct {
	templates map[string]*template.Template
}

// LoadTemplates builds a PageRenderer from a directory of page templates
// with the shared layouts under <dir>/layouts.
func LoadTemplates(dir string) (*PageRenderer, error) {
	layoutFiles, err := filepath.Glob(filepath.Join(dir, "layouts", "*.html"))
	if err != nil {
		return nil, fmt.Errorf("globbing layout templates: %w", err)
	}

	pageFiles, err := filepath.Glob(filepath.Join(dir, "*.html"))
	if err != nil {
		return nil, fmt.Errorf("globbing page templates: %w", err)
	}
	if len(pageFiles) == 0 {
		return nil, fmt.Errorf("no page templates found in %s", dir)
	}

	funcs := template.FuncMap{
		"deref": func(v *int64) int64 {
			if v == nil {
				return 0
			}
			return *v
		},
	}

	templates := make(map[string]*template.Template)
	for _, page := range pageFiles {
		files := append([]string{}, layoutFiles...)
		files = append(files, page)
		name := filepath.Base(page)
		t, err := template.New(name).Funcs(funcs).ParseFiles(files...)
		if err != nil {
			return nil, fmt.Errorf("parsing template %s: %w", page, err)
		}
		templates[name] = t
	}

	return &PageRenderer{templates: templates}, nil
}

func (pr *PageRenderer) Render(w io.Writer, name string, data map[string]any) error {
	t, ok := pr.templates[name]
	if !ok {
		return fmt.Errorf("template is missing: %s", name)
	}
	return t.ExecuteTemplate(w, name, data)
}
