package catalog

import "fmt"

// Filter holds the transient query and category selected for one table.
// It is owned by a single request and is not safe for concurrent use.
type Filter[C Classification] struct {
	table    *Table[C]
	query    string
	category string
}

func NewFilter[C Classification](table *Table[C]) *Filter[C] {
	return &Filter[C]{table: table, category: AllCategories}
}

func (filter *Filter[C]) SetQuery(text string) {
	filter.query = text
}

// SetCategory selects a category. Unknown categories are rejected and the
// previous selection is kept.
func (filter *Filter[C]) SetCategory(category string) error {
	if !filter.table.HasCategory(category) {
		return fmt.Errorf("%w %q", ErrInvalidCategory, category)
	}
	filter.category = category
	return nil
}

func (filter *Filter[C]) Query() string {
	return filter.query
}

func (filter *Filter[C]) Category() string {
	return filter.category
}

func (filter *Filter[C]) VisibleRecords() []Record[C] {
	return filter.table.Visible(filter.query, filter.category)
}
