package content

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
	"sync"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// Markdown renders record detail text. Raw HTML in the source is dropped
// by goldmark's default renderer, so the output is safe to embed.
type Markdown struct {
	engine goldmark.Markdown
	mu     sync.RWMutex
	cache  map[string]template.HTML
}

func NewMarkdown() *Markdown {
	return &Markdown{
		engine: goldmark.New(goldmark.WithExtensions(extension.GFM)),
		cache:  make(map[string]template.HTML),
	}
}

func (markdown *Markdown) Render(source string) (template.HTML, error) {
	source = strings.TrimSpace(source)
	if source == "" {
		return "", nil
	}

	markdown.mu.RLock()
	cached, ok := markdown.cache[source]
	markdown.mu.RUnlock()
	if ok {
		return cached, nil
	}

	var output bytes.Buffer
	if err := markdown.engine.Convert([]byte(source), &output); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	rendered := template.HTML(output.String())

	markdown.mu.Lock()
	markdown.cache[source] = rendered
	markdown.mu.Unlock()
	return rendered, nil
}
