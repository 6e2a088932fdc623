package collect

import (
	"encoding/csv"
	"fmt"
	"os"
	"slices"

	"folio/internal/util"
)

type dataset struct {
	name    string
	records []Record
}

// DataCollector reads delimited data files. The first row of each file
// names the fields; the remaining rows become records in reverse order,
// so the row appended last is listed first.
type DataCollector struct {
	datasets []dataset
}

// CollectData parses every file in dir. The format selects the
// delimiter: "tsv" for tab-separated files, anything else is
// comma-separated. A file without a header row or with malformed
// quoting is fatal for the build.
func CollectData(dir, format string) (*DataCollector, error) {
	files, err := util.Files(dir)
	if err != nil {
		return nil, fmt.Errorf("could not list data directory %s: %w", dir, err)
	}

	collector := &DataCollector{}
	for _, file := range files {
		f, err := os.Open(file)
		if err != nil {
			return nil, fmt.Errorf("could not open data file %s: %w", file, err)
		}
		reader := csv.NewReader(f)
		if format == "tsv" {
			reader.Comma = '\t'
		}
		// Row widths vary between files and may even vary within one;
		// the normalizer deals with ragged rows.
		reader.FieldsPerRecord = -1
		rows, err := reader.ReadAll()
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("could not parse data file %s: %w", file, err)
		}
		if len(rows) == 0 {
			return nil, fmt.Errorf("data file %s has no header row", file)
		}

		headings := rows[0]
		body := rows[1:]
		slices.Reverse(body)
		collector.datasets = append(collector.datasets, dataset{
			name:    util.Filename(file),
			records: ApplyHeadings(headings, body),
		})
	}
	return collector, nil
}

// Dataset returns the records collected from the named source file.
// Unknown names yield an empty record list, not an error.
func (c *DataCollector) Dataset(name string) []Record {
	for _, d := range c.datasets {
		if d.name == name {
			return d.records
		}
	}
	return nil
}

// Datasets returns every dataset keyed by its source filename.
func (c *DataCollector) Datasets() map[string][]Record {
	all := make(map[string][]Record, len(c.datasets))
	for _, d := range c.datasets {
		all[d.name] = d.records
	}
	return all
}

// Categories groups the named dataset's records by their category
// field. Group names are surfaced verbatim on data index pages.
func (c *DataCollector) Categories(name string) []Group {
	return GroupByCategory(c.Dataset(name))
}
