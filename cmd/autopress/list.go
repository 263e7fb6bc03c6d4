package main

import (
	"fmt"
	"strings"

	"github.com/gold9-app/autopress"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	infos, err := deps.Drafts.List(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", autopress.ErrorMessage(err))
		return err
	}

	if len(infos) == 0 {
		fmt.Fprintf(deps.Stdout, "No draft folders found in %q.\n", deps.Config.DraftsDir)
		return nil
	}

	for _, info := range infos {
		if info.Valid {
			fmt.Fprintf(deps.Stdout, "ok    %s  (keyword: %s)\n", info.Name, info.FocusKeyword)
		} else {
			fmt.Fprintf(deps.Stdout, "skip  %s  (%s)\n", info.Name, strings.Join(info.Errors, ", "))
		}
	}

	return nil
}
