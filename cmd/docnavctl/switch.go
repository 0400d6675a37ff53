package main

import (
	"fmt"

	"github.com/kailas-cloud/docnav/internal/domain"
	"github.com/kailas-cloud/docnav/internal/domain/locale"
	"github.com/kailas-cloud/docnav/internal/usecase/switcher"
)

// Run executes the switch command.
func (c *SwitchCmd) Run(deps *Dependencies) error {
	target, ok := locale.Parse(c.Locale)
	if !ok {
		fmt.Fprintf(deps.Stderr, "error: unknown locale %q (supported: %s)\n", c.Locale, supportedCodes())
		return fmt.Errorf("%w: %q", domain.ErrUnsupportedLocale, c.Locale)
	}

	switched := switcher.Switch(c.Path, target)
	fmt.Fprintln(deps.Stdout, switched)

	if _, err := deps.Pages.Resolve(switched); err != nil {
		fmt.Fprintf(deps.Stderr, "warning: %s does not resolve to a page\n", switched)
	}
	return nil
}
