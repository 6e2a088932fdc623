// internal/builder/builder.go
package builder

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"folio/internal/collect"
	"folio/internal/config"
	"folio/internal/util"
)

type Options struct {
	Unsafe  bool
	Verbose bool
}

// Builder owns the collectors and configuration for one build
// invocation. Nothing persists between invocations except the files
// written under the build directory.
type Builder struct {
	cfg  config.Config
	opts Options

	data      *collect.DataCollector
	templates *collect.TemplateCollector
	posts     *collect.PostCollector

	buildDir  string
	staticDir string
	postsDir  string
}

// New runs the collectors against the configured source directories.
// Any unreadable or malformed source file fails the whole invocation.
func New(cfg config.Config, opts Options) (*Builder, error) {
	data, err := collect.CollectData(cfg.DataDir, cfg.DataFormat)
	if err != nil {
		return nil, fmt.Errorf("data collection failed: %w", err)
	}
	templates, err := collect.CollectTemplates(cfg.TemplateDir)
	if err != nil {
		return nil, fmt.Errorf("template collection failed: %w", err)
	}
	posts, err := collect.CollectPosts(cfg.PostsDir, cfg.DateFormat, collect.NewRenderer(opts.Unsafe))
	if err != nil {
		return nil, fmt.Errorf("post collection failed: %w", err)
	}

	buildDir := "build"
	return &Builder{
		cfg:       cfg,
		opts:      opts,
		data:      data,
		templates: templates,
		posts:     posts,
		buildDir:  buildDir,
		staticDir: filepath.Join(buildDir, "static"),
		postsDir:  filepath.Join(buildDir, "posts"),
	}, nil
}

// Build renders the whole site: static assets, one page per configured
// data index, the post index, every post, and the home page. Pages are
// written as they render; a failure aborts and leaves whatever was
// already written on disk.
func (b *Builder) Build() (int, error) {
	if err := os.MkdirAll(b.buildDir, 0755); err != nil {
		return 0, err
	}

	if b.cfg.CreatePublicDir {
		if err := b.copyPublicFiles(); err != nil {
			return 0, err
		}
	}

	pages := 0
	steps := []func() (int, error){
		b.buildDataIndexes,
		b.buildPostIndex,
		b.buildPosts,
		b.buildHome,
	}
	for _, step := range steps {
		n, err := step()
		if err != nil {
			return pages, err
		}
		pages += n
	}
	return pages, nil
}

// copyPublicFiles copies the public assets verbatim into build/static.
func (b *Builder) copyPublicFiles() error {
	if err := os.MkdirAll(b.staticDir, 0755); err != nil {
		return err
	}
	files, err := util.Files(b.cfg.PublicDir)
	if err != nil {
		return fmt.Errorf("could not list public directory %s: %w", b.cfg.PublicDir, err)
	}
	for _, file := range files {
		if err := copyFile(file, filepath.Join(b.staticDir, filepath.Base(file))); err != nil {
			return fmt.Errorf("could not copy public file %s: %w", file, err)
		}
		b.info("Copied " + filepath.Base(file))
	}
	return nil
}

// buildDataIndexes renders one page per configured data index, using
// the template that shares the index's filename. Group names stay
// verbatim; the page name is capitalized.
func (b *Builder) buildDataIndexes() (int, error) {
	for _, name := range b.cfg.DataIndexes {
		rendered, err := Render(name, b.templates.Template(name), map[string]any{
			"name": util.Capitalize(name),
			"data": b.data.Categories(name),
		})
		if err != nil {
			return 0, fmt.Errorf("could not render data index %s: %w", name, err)
		}
		out := filepath.Join(b.buildDir, util.Ext(name, "html"))
		if err := os.WriteFile(out, []byte(rendered), 0644); err != nil {
			return 0, err
		}
		b.info("Wrote " + out)
	}
	return len(b.cfg.DataIndexes), nil
}

// buildPostIndex renders the combined post listing across all post
// categories with the "dir" template.
func (b *Builder) buildPostIndex() (int, error) {
	if err := os.MkdirAll(b.postsDir, 0755); err != nil {
		return 0, err
	}
	rendered, err := Render("dir", b.templates.Template("dir"), map[string]any{
		"name": "Writings",
		"data": b.posts.Categories(),
		"dir":  "posts",
	})
	if err != nil {
		return 0, fmt.Errorf("could not render post index: %w", err)
	}
	out := filepath.Join(b.postsDir, util.Ext("index", "html"))
	if err := os.WriteFile(out, []byte(rendered), 0644); err != nil {
		return 0, err
	}
	b.info("Wrote " + out)
	return 1, nil
}

// buildPosts renders every post with the "essay" template, one file
// per post named after its source file.
func (b *Builder) buildPosts() (int, error) {
	essay := b.templates.Template("essay")
	for _, post := range b.posts.Posts() {
		rendered, err := Render("essay", essay, map[string]any{
			"post": post,
		})
		if err != nil {
			return 0, fmt.Errorf("could not render post %v: %w", post["filename"], err)
		}
		filename, ok := post["filename"].(string)
		if !ok {
			return 0, fmt.Errorf("post has a non-string filename: %v", post["filename"])
		}
		out := filepath.Join(b.postsDir, filename)
		if err := os.WriteFile(out, []byte(rendered), 0644); err != nil {
			return 0, err
		}
		b.info("Wrote " + out)
	}
	return len(b.posts.Posts()), nil
}

// buildHome renders the site root page with every dataset keyed by its
// source filename plus the full date-sorted post list.
func (b *Builder) buildHome() (int, error) {
	name := util.Filename(b.cfg.HomeTemplate)
	rendered, err := Render(name, b.templates.Template(name), map[string]any{
		"data":  b.data.Datasets(),
		"posts": b.posts.Posts(),
	})
	if err != nil {
		return 0, fmt.Errorf("could not render home page: %w", err)
	}
	out := filepath.Join(b.buildDir, util.Ext("index", "html"))
	if err := os.WriteFile(out, []byte(rendered), 0644); err != nil {
		return 0, err
	}
	b.info("Wrote " + out)
	return 1, nil
}

func (b *Builder) info(message string) {
	if b.opts.Verbose || b.cfg.VerboseMode {
		fmt.Println(message)
	}
}

func copyFile(srcPath, destPath string) error {
	src, err := os.Open(srcPath)
	if err != nil {
		return err
	}
	defer src.Close()
	dst, err := os.Create(destPath)
	if err != nil {
		return err
	}
	defer dst.Close()
	_, err = io.Copy(dst, src)
	return err
}
