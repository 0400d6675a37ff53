package main

import (
	"context"
	"io"

	"github.com/alecthomas/kong"

	"github.com/kailas-cloud/docnav/internal/usecase/page"
	"github.com/kailas-cloud/docnav/internal/usecase/router"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Router *router.Router
	Pages  *page.Resolver
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Version kong.VersionFlag `help:"Print version and exit"`
	Exclude []string         `short:"x" help:"Additional excluded path prefix (repeatable)"`

	Route   RouteCmd   `cmd:"" help:"Show how a request path is routed"`
	Switch  SwitchCmd  `cmd:"" help:"Rewrite a path into another locale"`
	Search  SearchCmd  `cmd:"" help:"Search the documentation catalog"`
	Catalog CatalogCmd `cmd:"" help:"List the documentation catalog of a locale"`
	Locales LocalesCmd `cmd:"" help:"List supported locales"`
}

// RouteCmd is the "route" subcommand.
type RouteCmd struct {
	Path string `arg:"" help:"Request path, optionally with ?query"`
}

// SwitchCmd is the "switch" subcommand.
type SwitchCmd struct {
	Path   string `arg:"" help:"Current locale-qualified path"`
	Locale string `arg:"" help:"Target locale code"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Query string `arg:"" help:"Search text"`
	Lang  string `short:"l" default:"pt" help:"Locale whose catalog is searched"`
}

// CatalogCmd is the "catalog" subcommand.
type CatalogCmd struct {
	Lang string `short:"l" default:"pt" help:"Locale whose catalog is listed"`
}

// LocalesCmd is the "locales" subcommand.
type LocalesCmd struct{}
