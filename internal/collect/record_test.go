package collect

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestApplyHeadings_ZipsHeadingsWithRowValues(t *testing.T) {
	headings := []string{"a", "b", "c"}
	rows := [][]string{{"1", "2", "3"}}

	records := ApplyHeadings(headings, rows)
	require.Len(t, records, 1)
	require.Equal(t, Record{"a": "1", "b": "2", "c": "3"}, records[0])
}

func TestApplyHeadings_OneRecordPerRow(t *testing.T) {
	headings := []string{"name", "category"}
	rows := [][]string{
		{"first", "x"},
		{"second", "y"},
		{"third", "x"},
	}

	records := ApplyHeadings(headings, rows)
	require.Len(t, records, 3)
	for i, row := range rows {
		require.Equal(t, row[0], records[i]["name"])
		require.Equal(t, row[1], records[i]["category"])
	}
}

func TestApplyHeadings_ExtraTrailingValuesAreDropped(t *testing.T) {
	records := ApplyHeadings([]string{"a", "b"}, [][]string{{"1", "2", "3", "4"}})
	require.Equal(t, Record{"a": "1", "b": "2"}, records[0])
}

func TestApplyHeadings_ShortRowLeavesFieldsUnset(t *testing.T) {
	records := ApplyHeadings([]string{"a", "b", "c"}, [][]string{{"1"}})
	require.Equal(t, Record{"a": "1"}, records[0])
}

func TestApplyHeadings_NoRows(t *testing.T) {
	records := ApplyHeadings([]string{"a"}, nil)
	require.Empty(t, records)
}

func TestGroupByCategory_FirstOccurrenceOrder(t *testing.T) {
	a := Record{"name": "A", "category": "x"}
	b := Record{"name": "B", "category": "y"}
	c := Record{"name": "C", "category": "x"}

	groups := GroupByCategory([]Record{a, b, c})
	require.Len(t, groups, 2)
	require.Equal(t, "x", groups[0].Name)
	require.Equal(t, []Record{a, c}, groups[0].Entries)
	require.Equal(t, "y", groups[1].Name)
	require.Equal(t, []Record{b}, groups[1].Entries)
}

func TestGroupByCategory_NoRecordsDroppedOrDuplicated(t *testing.T) {
	records := []Record{
		{"name": "1", "category": "a"},
		{"name": "2", "category": "b"},
		{"name": "3", "category": "c"},
		{"name": "4", "category": "b"},
		{"name": "5", "category": "a"},
	}

	groups := GroupByCategory(records)

	var flattened []Record
	for _, group := range groups {
		flattened = append(flattened, group.Entries...)
	}
	require.Len(t, flattened, len(records))
	require.ElementsMatch(t, records, flattened)
}

func TestGroupByCategory_Empty(t *testing.T) {
	require.Empty(t, GroupByCategory(nil))
}
