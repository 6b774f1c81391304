package api

import (
	"html/template"

	"github.com/terraincognita07/peptica/internal/content"
)

func newTemplateFuncMap(markdown *content.Markdown) template.FuncMap {
	return template.FuncMap{
		"t":             templateTranslate,
		"tf":            templateTranslatef,
		"categoryLabel": templateCategoryLabel,
		"styleAttr":     templateStyleAttr,
		"labelAttr":     templateLabelAttr,
		"join":          templateJoin,
		"dict":          templateDict,
		"markdown":      markdown.Render,
	}
}
