// Package catalog implements the filterable, classified record tables that
// back every substance panel: validation, text and category filtering,
// category derivation and render-time grouping.
package catalog

import (
	"errors"
	"fmt"
	"strings"
)

// AllCategories is the synthesized category that disables category filtering.
const AllCategories = "All"

var (
	ErrMissingID             = errors.New("record id is required")
	ErrDuplicateID           = errors.New("duplicate record id")
	ErrMissingCategory       = errors.New("record category is required")
	ErrReservedCategory      = errors.New("record category is reserved")
	ErrInvalidClassification = errors.New("invalid record classification")
	ErrInvalidCategory       = errors.New("invalid category")
)

// Record is one static entry of a content table.
type Record[C Classification] struct {
	ID       string   `json:"id" yaml:"id"`
	Name     string   `json:"name" yaml:"name"`
	Aliases  []string `json:"aliases,omitempty" yaml:"aliases"`
	Category string   `json:"category" yaml:"category"`
	Class    C        `json:"classification" yaml:"classification"`
	Summary  string   `json:"summary" yaml:"summary"`
	Detail   string   `json:"detail,omitempty" yaml:"detail"`
	Steps    []string `json:"steps,omitempty" yaml:"steps"`
}

// Table is an immutable, validated, ordered list of records.
type Table[C Classification] struct {
	records    []Record[C]
	categories []string
	index      map[string]int
}

func NewTable[C Classification](records []Record[C]) (*Table[C], error) {
	index := make(map[string]int, len(records))
	frozen := make([]Record[C], 0, len(records))
	for position, record := range records {
		id := strings.TrimSpace(record.ID)
		if id == "" {
			return nil, fmt.Errorf("record #%d: %w", position+1, ErrMissingID)
		}
		if _, exists := index[id]; exists {
			return nil, fmt.Errorf("%w %q", ErrDuplicateID, id)
		}
		if strings.TrimSpace(record.Category) == "" {
			return nil, fmt.Errorf("record %q: %w", id, ErrMissingCategory)
		}
		if record.Category == AllCategories {
			return nil, fmt.Errorf("record %q: %w: %q", id, ErrReservedCategory, record.Category)
		}
		if !record.Class.Valid() {
			return nil, fmt.Errorf("record %q: %w: %q", id, ErrInvalidClassification, record.Class.String())
		}

		record.ID = id
		record.Aliases = append([]string(nil), record.Aliases...)
		record.Steps = append([]string(nil), record.Steps...)
		index[id] = position
		frozen = append(frozen, record)
	}

	return &Table[C]{
		records:    frozen,
		categories: DeriveCategories(frozen),
		index:      index,
	}, nil
}

func (table *Table[C]) Len() int {
	return len(table.records)
}

// Records returns the full table in source order.
func (table *Table[C]) Records() []Record[C] {
	result := make([]Record[C], len(table.records))
	copy(result, table.records)
	return result
}

// Categories returns "All" followed by each distinct category in
// first-occurrence order.
func (table *Table[C]) Categories() []string {
	result := make([]string, len(table.categories))
	copy(result, table.categories)
	return result
}

func (table *Table[C]) HasCategory(category string) bool {
	for _, candidate := range table.categories {
		if candidate == category {
			return true
		}
	}
	return false
}

func (table *Table[C]) Lookup(id string) (Record[C], bool) {
	position, ok := table.index[id]
	if !ok {
		return Record[C]{}, false
	}
	return table.records[position], true
}

// Visible returns the records that pass both the category and the query
// filter, in table order. A category absent from the table yields nothing.
func (table *Table[C]) Visible(query string, category string) []Record[C] {
	needle := strings.ToLower(query)
	result := make([]Record[C], 0, len(table.records))
	for _, record := range table.records {
		if category != AllCategories && record.Category != category {
			continue
		}
		if !matchesLowered(record, needle) {
			continue
		}
		result = append(result, record)
	}
	return result
}

// DeriveCategories lists the selectable categories for a set of records.
func DeriveCategories[C Classification](records []Record[C]) []string {
	categories := []string{AllCategories}
	seen := make(map[string]struct{}, len(records))
	for _, record := range records {
		if _, ok := seen[record.Category]; ok {
			continue
		}
		seen[record.Category] = struct{}{}
		categories = append(categories, record.Category)
	}
	return categories
}

// Matches reports whether query is a case-insensitive substring of the
// record's name, any alias, its summary or its category. The empty query
// matches everything.
func Matches[C Classification](record Record[C], query string) bool {
	return matchesLowered(record, strings.ToLower(query))
}

func matchesLowered[C Classification](record Record[C], needle string) bool {
	if needle == "" {
		return true
	}
	if ContainsFold(record.Name, needle) || ContainsFold(record.Summary, needle) || ContainsFold(record.Category, needle) {
		return true
	}
	for _, alias := range record.Aliases {
		if ContainsFold(alias, needle) {
			return true
		}
	}
	return false
}

// ContainsFold reports whether the already lowercased needle occurs in value
// once value is lowercased.
func ContainsFold(value string, loweredNeedle string) bool {
	return strings.Contains(strings.ToLower(value), loweredNeedle)
}
