package main

import (
	"fmt"
	"strings"
)

// Run executes the route command.
func (c *RouteCmd) Run(deps *Dependencies) error {
	path, rawQuery, _ := strings.Cut(c.Path, "?")
	if path == "" || path[0] != '/' {
		path = "/" + path
	}

	if deps.Router.Excluded(path) {
		fmt.Fprintf(deps.Stdout, "excluded  %s\n", path)
		return nil
	}

	d := deps.Router.Route(path, rawQuery)
	if d.IsRedirect() {
		fmt.Fprintf(deps.Stdout, "redirect  %s -> %s\n", c.Path, d.Target())
		return nil
	}

	fmt.Fprintf(deps.Stdout, "pass      %s\n", path)
	if p, err := deps.Pages.Resolve(path); err == nil {
		fmt.Fprintf(deps.Stdout, "page      %s\n", p.Title)
	} else {
		fmt.Fprintln(deps.Stdout, "page      (not found)")
	}
	return nil
}
