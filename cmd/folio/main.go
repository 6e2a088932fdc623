// cmd/folio/main.go
package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"folio/internal/builder"
	"folio/internal/config"
	"folio/internal/scaffold"
	"folio/internal/server"
)

type appFlags struct {
	port    int
	unsafe  bool
	verbose bool
}

func main() {
	flags := appFlags{}
	pflag.IntVar(&flags.port, "port", 1313, "Port for the local development server.")
	pflag.BoolVar(&flags.unsafe, "unsafe", false, "Disable HTML sanitization of rendered posts.")
	pflag.BoolVar(&flags.verbose, "verbose", false, "Print progress messages while building.")
	pflag.Usage = printHelp
	pflag.Parse()

	if err := run(flags, pflag.Args()); err != nil {
		fmt.Fprintf(os.Stderr, "❌ Operation failed: %v\n", err)
		os.Exit(1)
	}
}

func run(flags appFlags, args []string) error {
	opts := builder.Options{Unsafe: flags.unsafe, Verbose: flags.verbose}

	command := ""
	if len(args) > 0 {
		command = args[0]
	}

	switch command {
	case "serve":
		configPath := config.DefaultFilename
		if len(args) > 1 {
			configPath = args[1]
		}
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		watchPaths := []string{cfg.DataDir, cfg.TemplateDir, cfg.PostsDir, cfg.PublicDir, configPath}
		return server.Run(flags.port, "build", watchPaths, func() error {
			return buildSite(cfg, opts)
		})

	case "new":
		if len(args) < 3 {
			pflag.Usage()
			return nil
		}
		switch args[1] {
		case "site":
			return scaffold.CreateNewSite(args[2])
		case "post":
			return scaffold.CreateNewPost(args[2], config.DefaultFilename)
		}
		pflag.Usage()
		return nil

	default:
		// The default command is a build. The single optional argument
		// is the config file path.
		configPath := config.DefaultFilename
		if command != "" {
			configPath = command
		}
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		return buildSite(cfg, opts)
	}
}

func buildSite(cfg config.Config, opts builder.Options) error {
	fmt.Println("--- Building site ---")
	b, err := builder.New(cfg, opts)
	if err != nil {
		return err
	}
	pages, err := b.Build()
	if err != nil {
		return fmt.Errorf("site generation failed: %w", err)
	}
	fmt.Printf("✅ Success! Generated %d pages.\n", pages)
	return nil
}

func printHelp() {
	fmt.Println("folio - a small static site generator for portfolio sites")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  folio [flags] [config-file]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  [config-file]      Build the site (config defaults to config.json)")
	fmt.Println("  serve [config]     Run a local dev server with auto-rebuild")
	fmt.Println("  new site <name>    Create a new site scaffold")
	fmt.Println("  new post <title>   Create a new post skeleton")
	fmt.Println()
	fmt.Println("Flags:")
	pflag.PrintDefaults()
}
