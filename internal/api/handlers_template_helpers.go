package api

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/terraincognita07/peptica/internal/catalog"
)

func templateTranslate(messages map[string]string, key string) string {
	return translateMessage(messages, key)
}

// templateTranslatef formats a translated pattern such as "%d of %d shown".
func templateTranslatef(messages map[string]string, key string, args ...any) string {
	pattern := translateMessage(messages, key)
	if pattern == key {
		return key
	}
	return fmt.Sprintf(pattern, args...)
}

// templateCategoryLabel localizes the reserved "All" category. Authored
// category names are shown as written.
func templateCategoryLabel(messages map[string]string, category string) string {
	if category == catalog.AllCategories {
		return translateMessage(messages, "filter.all")
	}
	return category
}

func templateStyleAttr(style catalog.Style) template.CSS {
	return template.CSS(fmt.Sprintf("background-color: %s; border-color: %s;", style.Background, style.Border))
}

func templateLabelAttr(style catalog.Style) template.CSS {
	return template.CSS(fmt.Sprintf("color: %s;", style.LabelColor))
}

func templateJoin(values []string) string {
	return strings.Join(values, ", ")
}

func templateDict(values ...any) (map[string]any, error) {
	if len(values)%2 != 0 {
		return nil, fmt.Errorf("dict requires key-value pairs")
	}
	result := make(map[string]any, len(values)/2)
	for index := 0; index < len(values); index += 2 {
		key, ok := values[index].(string)
		if !ok {
			return nil, fmt.Errorf("dict key at index %d is not a string", index)
		}
		result[key] = values[index+1]
	}
	return result, nil
}
