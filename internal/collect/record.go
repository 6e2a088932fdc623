// Package collect reads the source directories of a site (tabular data,
// raw templates, markdown posts) and turns their files into in-memory
// records for the builder to render.
package collect

import "slices"

// Record is a single logical item: a data row, a post, or a template.
// Fields are named by the source (a header row or a metadata object),
// so different sources may carry wholly different field sets. Values
// are strings except for derived fields such as the rendered HTML body
// ("data") or the parsed post date ("datetime").
type Record map[string]any

// Group is a set of records sharing one value of the "category" field.
type Group struct {
	Name    string
	Entries []Record
}

// ApplyHeadings zips a header row with data rows, producing one record
// per row with record[headings[i]] == row[i]. Rows longer than the
// heading list silently drop their trailing values; no type coercion
// is performed.
func ApplyHeadings(headings []string, rows [][]string) []Record {
	records := make([]Record, 0, len(rows))
	for _, row := range rows {
		record := make(Record, len(headings))
		for i, field := range row {
			if i >= len(headings) {
				break
			}
			record[headings[i]] = field
		}
		records = append(records, record)
	}
	return records
}

// GroupByCategory partitions records on their "category" field. Groups
// appear in first-occurrence order of the category values; entries
// within a group keep their source order.
func GroupByCategory(records []Record) []Group {
	var categories []string
	for _, record := range records {
		category, _ := record["category"].(string)
		if !slices.Contains(categories, category) {
			categories = append(categories, category)
		}
	}

	groups := make([]Group, 0, len(categories))
	for _, category := range categories {
		group := Group{Name: category}
		for _, record := range records {
			if value, _ := record["category"].(string); value == category {
				group.Entries = append(group.Entries, record)
			}
		}
		groups = append(groups, group)
	}
	return groups
}
