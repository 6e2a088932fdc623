// internal/scaffold/scaffold.go
package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ncruces/go-strftime"

	"folio/internal/config"
)

// CreateNewSite lays out a fresh site skeleton in the named directory:
// the four source folders, a config file, the templates the builder
// expects, one sample dataset and one sample post.
func CreateNewSite(name string) error {
	fmt.Println("Scaffolding new site in:", name)
	mkdir := func(path string) error { return os.MkdirAll(filepath.Join(name, path), 0755) }
	writeFile := func(path, content string) error {
		return os.WriteFile(filepath.Join(name, path), []byte(content), 0644)
	}

	for _, dir := range []string{"data", "templates", "posts", "public"} {
		if err := mkdir(dir); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	files := map[string]string{
		"config.json":             configJSONContent,
		"data/projects.csv":       projectsCSVContent,
		"templates/home.html":     homeTemplateContent,
		"templates/dir.html":      dirTemplateContent,
		"templates/essay.html":    essayTemplateContent,
		"templates/projects.html": projectsTemplateContent,
		"posts/welcome.md":        welcomePostContent,
		"public/style.css":        styleCSSContent,
	}
	for path, content := range files {
		if err := writeFile(path, content); err != nil {
			return fmt.Errorf("failed to write file %s: %w", path, err)
		}
	}

	fmt.Println("Site scaffolded. You can now:")
	fmt.Println("  cd", name)
	fmt.Println("  folio")
	fmt.Println("  folio serve")
	return nil
}

// CreateNewPost writes a post skeleton into the configured posts
// directory, dated today in the configured date format.
func CreateNewPost(title, configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	slug := strings.ToLower(strings.ReplaceAll(title, " ", "-"))
	path := filepath.Join(cfg.PostsDir, slug+".md")
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("post %s already exists", path)
	}
	if err := os.MkdirAll(cfg.PostsDir, 0755); err != nil {
		return err
	}

	date := strftime.Format(cfg.DateFormat, time.Now())
	content := fmt.Sprintf("{\"title\": %q, \"category\": \"life\", \"date\": %q}\n\n# %s\n\nWrite here.\n", title, date, title)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return err
	}

	fmt.Println("Created:", path)
	return nil
}

// Default file contents for a scaffolded site.
const configJSONContent = `{
    "data_indexs": ["projects"],
    "verbose_mode": true
}
`

const projectsCSVContent = `name,category,link,description
folio,tools,https://example.com/folio,A small static site generator
garden,hardware,https://example.com/garden,An automated window planter
`

const homeTemplateContent = `<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <title>Home</title>
  <link rel="stylesheet" href="static/style.css">
</head>
<body>
  <h1>Hello</h1>
  <h2>Recent writing</h2>
  <ul>
  {{range .posts}}
    <li><a href="posts/{{.filename}}">{{.title}}</a></li>
  {{end}}
  </ul>
  <h2>Projects</h2>
  <ul>
  {{range index .data "projects"}}
    <li><a href="{{.link}}">{{.name}}</a> — {{abbrev .description 60}}</li>
  {{end}}
  </ul>
</body>
</html>
`

const dirTemplateContent = `<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <title>{{.name}}</title>
  <link rel="stylesheet" href="../static/style.css">
</head>
<body>
  <h1>{{.name}}</h1>
  {{range .data}}
    <h2>{{.Name}}</h2>
    <ul>
    {{range .Entries}}
      <li><a href="{{.filename}}">{{.title}}</a></li>
    {{end}}
    </ul>
  {{end}}
</body>
</html>
`

const essayTemplateContent = `<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <title>{{.post.title}}</title>
  <link rel="stylesheet" href="../static/style.css">
</head>
<body>
  <article>
  {{.post.data}}
  </article>
</body>
</html>
`

const projectsTemplateContent = `<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <title>{{.name}}</title>
  <link rel="stylesheet" href="static/style.css">
</head>
<body>
  <h1>{{.name}}</h1>
  {{range .data}}
    <h2>{{.Name}}</h2>
    <ul>
    {{range .Entries}}
      <li><a href="{{.link}}">{{.name}}</a> — {{.description}}</li>
    {{end}}
    </ul>
  {{end}}
</body>
</html>
`

const welcomePostContent = `{"title": "Welcome", "category": "life", "date": "010124"}

# Welcome

This post was created by the site scaffold. Links to [other posts](welcome.md)
are rewritten to their built pages.
`

const styleCSSContent = `body {
    max-width: 42em;
    margin: 2em auto;
    font-family: sans-serif;
    line-height: 1.5;
}
`
