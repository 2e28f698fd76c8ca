package commands

import (
	"context"
	"fmt"

	"git.home.luguber.info/inful/navinject/internal/foundation/errors"
	"git.home.luguber.info/inful/navinject/internal/inject"
)

// CheckCmd implements the 'check' command: a dry run that fails when any
// layout file still needs edits.
type CheckCmd struct {
	TargetFlags
}

// Run executes the check.
func (c *CheckCmd) Run(g *Global, root *CLI) error {
	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}

	in, _, err := newInjector(g, cfg, c.TargetFlags, true)
	if err != nil {
		return err
	}

	result, err := in.Run(context.Background())
	if err != nil {
		return err
	}
	if err := resultError(result, c.Strict); err != nil {
		return err
	}

	if result.HasChanges() {
		_, _ = fmt.Fprintf(g.stdout(), "\n%d layout file(s) need the navigation bar; run 'navinject run' to apply.\n",
			result.Count(inject.OutcomeUpdated))
		return errors.ExitCode(1)
	}
	return nil
}
