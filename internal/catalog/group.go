package catalog

type CategoryGroup[C Classification] struct {
	Category string
	Records  []Record[C]
}

type ClassGroup[C Classification] struct {
	Class   C
	Style   Style
	Records []Record[C]
}

// GroupByCategory buckets records by category in first-occurrence order,
// keeping each bucket in input order.
func GroupByCategory[C Classification](records []Record[C]) []CategoryGroup[C] {
	groups := make([]CategoryGroup[C], 0)
	positions := make(map[string]int)
	for _, record := range records {
		position, ok := positions[record.Category]
		if !ok {
			position = len(groups)
			positions[record.Category] = position
			groups = append(groups, CategoryGroup[C]{Category: record.Category})
		}
		groups[position].Records = append(groups[position].Records, record)
	}
	return groups
}

// GroupByClass buckets records in the given tier order. Empty tiers are
// dropped; records whose tier is not listed are dropped too.
func GroupByClass[C Classification](records []Record[C], order []C) []ClassGroup[C] {
	groups := make([]ClassGroup[C], 0, len(order))
	for _, class := range order {
		group := ClassGroup[C]{Class: class}
		for _, record := range records {
			if record.Class == class {
				group.Records = append(group.Records, record)
			}
		}
		if len(group.Records) == 0 {
			continue
		}
		group.Style = class.Style()
		groups = append(groups, group)
	}
	return groups
}
