package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/alecthomas/kong"

	"github.com/kailas-cloud/docnav/internal/usecase/page"
	"github.com/kailas-cloud/docnav/internal/usecase/router"
	"github.com/kailas-cloud/docnav/internal/version"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Extra excluded prefixes, as configured on the server. Set before calling Run().
	ExcludePrefixes []string
}

// NewMain returns a new instance of Main with the server's default exclusions.
func NewMain() *Main {
	return &Main{
		ExcludePrefixes: []string{"health", "metrics"},
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("docnavctl"),
		kong.Description("Inspect locale routing and catalog search of the documentation site"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Vars{"version": version.Version + " (" + version.Commit + ")"},
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'docnavctl --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Router: router.New(slices.Concat(m.ExcludePrefixes, cli.Exclude)...),
		Pages:  page.NewResolver(),
	}
	return kongCtx.Run(deps)
}
