package main

import (
	"fmt"

	"github.com/gold9-app/autopress"
)

// Run executes the generate command.
func (c *GenerateCmd) Run(deps *Dependencies) error {
	html, err := deps.Generator.Generate(deps.Ctx, c.Topic)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", autopress.ErrorMessage(err))
		return err
	}

	if !c.Save {
		fmt.Fprintln(deps.Stdout, html)
		return nil
	}

	if err := deps.Drafts.SaveHTML(c.Topic, html); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", autopress.ErrorMessage(err))
		return err
	}
	fmt.Fprintf(deps.Stdout, "Saved draft %q. Add a featured image to the folder before publishing.\n", c.Topic)
	return nil
}
