package api

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"path"
	"strings"
)

//go:embed templates/*.html
var embeddedTemplates embed.FS

const templateDir = "templates"

// parsePageTemplates parses base.html, the page and the shared partials into
// one set per page, so pages can embed partials with {{template}}.
func parsePageTemplates(source fs.FS, funcMap template.FuncMap, pages []string, shared []string) (map[string]*template.Template, error) {
	templates := make(map[string]*template.Template, len(pages))
	for _, page := range pages {
		patterns := []string{path.Join(templateDir, "base.html"), path.Join(templateDir, page+".html")}
		for _, partial := range shared {
			patterns = append(patterns, path.Join(templateDir, partial))
		}
		parsed, err := template.New("base").Funcs(funcMap).ParseFS(source, patterns...)
		if err != nil {
			return nil, fmt.Errorf("parse page template %s: %w", page, err)
		}
		templates[page] = parsed
	}
	return templates, nil
}

func parsePartialTemplates(source fs.FS, funcMap template.FuncMap, partialFiles []string) (map[string]*template.Template, error) {
	partials := make(map[string]*template.Template, len(partialFiles))
	for _, partial := range partialFiles {
		name := strings.TrimSuffix(partial, ".html")
		patterns := []string{path.Join(templateDir, "base.html")}
		for _, file := range partialFiles {
			patterns = append(patterns, path.Join(templateDir, file))
		}
		parsed, err := template.New(name).Funcs(funcMap).ParseFS(source, patterns...)
		if err != nil {
			return nil, fmt.Errorf("parse partial %s: %w", partial, err)
		}
		partials[name] = parsed
	}
	return partials, nil
}
