package collect

import (
	"encoding/json"
	"fmt"
	"html/template"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/ncruces/go-strftime"

	"folio/internal/util"
)

// PostCollector reads markdown posts that open with a JSON metadata
// object:
//
//	{"title": "Hello", "category": "life", "date": "010124"}
//	# A heading
//	Body text...
//
// Content is split at the first closing brace: the prefix plus that
// brace must be a JSON object, the remainder is the markdown body. A
// body containing "}" before the real metadata boundary will therefore
// be split incorrectly; posts rely on the metadata coming first.
type PostCollector struct {
	posts []Record
}

// CollectPosts parses every post in dir. Each record merges the
// metadata fields with a derived "filename" (source basename + .html),
// "data" (the rendered HTML body) and "datetime" (the "date" field
// parsed with the strftime pattern dateFormat). The returned collector
// holds the posts sorted by date, most recent first; a date that does
// not match the pattern is fatal.
func CollectPosts(dir, dateFormat string, renderer *Renderer) (*PostCollector, error) {
	files, err := util.Files(dir)
	if err != nil {
		return nil, fmt.Errorf("could not list posts directory %s: %w", dir, err)
	}

	collector := &PostCollector{}
	for _, file := range files {
		content, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("could not read post %s: %w", file, err)
		}

		meta, body, found := strings.Cut(string(content), "}")
		if !found {
			return nil, fmt.Errorf("post %s has no metadata block", file)
		}
		var fields map[string]any
		if err := json.Unmarshal([]byte(meta+"}"), &fields); err != nil {
			return nil, fmt.Errorf("could not parse metadata of post %s: %w", file, err)
		}

		rendered, err := renderer.Render(body)
		if err != nil {
			return nil, fmt.Errorf("could not render post %s: %w", file, err)
		}

		record := Record{
			"filename": util.Ext(util.Filename(file), "html"),
			"data":     template.HTML(rendered),
		}
		for key, value := range fields {
			record[key] = value
		}
		collector.posts = append(collector.posts, record)
	}

	sorted, err := sortByDate(collector.posts, dateFormat)
	if err != nil {
		return nil, err
	}
	collector.posts = sorted
	return collector, nil
}

// Posts returns every post, sorted by date descending.
func (c *PostCollector) Posts() []Record {
	return c.posts
}

// Post returns the post built from the named source file. Unknown
// names yield an empty record, not an error.
func (c *PostCollector) Post(name string) Record {
	target := util.Ext(name, "html")
	for _, post := range c.posts {
		if post["filename"] == target {
			return post
		}
	}
	return Record{}
}

// Categories groups posts by their category field. Post group names
// are capitalized for display, unlike data index group names.
func (c *PostCollector) Categories() []Group {
	groups := GroupByCategory(c.posts)
	for i := range groups {
		groups[i].Name = util.Capitalize(groups[i].Name)
	}
	return groups
}

// sortByDate attaches a parsed "datetime" to every post and orders the
// list most recent first. The sort is stable, so posts sharing a date
// keep their collection order.
func sortByDate(posts []Record, dateFormat string) ([]Record, error) {
	for _, post := range posts {
		date, _ := post["date"].(string)
		parsed, err := strftime.Parse(dateFormat, date)
		if err != nil {
			return nil, fmt.Errorf("could not parse date %q of post %v: %w", date, post["filename"], err)
		}
		post["datetime"] = parsed
	}

	sorted := make([]Record, len(posts))
	copy(sorted, posts)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i]["datetime"].(time.Time).After(sorted[j]["datetime"].(time.Time))
	})
	return sorted, nil
}
