package collect

import (
	"fmt"
	"os"

	"folio/internal/util"
)

type templateFile struct {
	name string
	body string
}

// TemplateCollector stores template sources verbatim; parsing happens
// at render time in the builder.
type TemplateCollector struct {
	templates []templateFile
}

// CollectTemplates reads every file in dir as raw text.
func CollectTemplates(dir string) (*TemplateCollector, error) {
	files, err := util.Files(dir)
	if err != nil {
		return nil, fmt.Errorf("could not list template directory %s: %w", dir, err)
	}

	collector := &TemplateCollector{}
	for _, file := range files {
		body, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("could not read template file %s: %w", file, err)
		}
		collector.templates = append(collector.templates, templateFile{
			name: util.Filename(file),
			body: string(body),
		})
	}
	return collector, nil
}

// Template returns the raw body of the named template. Unknown names
// yield an empty string, not an error.
func (c *TemplateCollector) Template(name string) string {
	for _, t := range c.templates {
		if t.name == name {
			return t.body
		}
	}
	return ""
}
