package main

import (
	"fmt"

	"github.com/gold9-app/autopress"
)

// Run executes the history command.
func (c *HistoryCmd) Run(deps *Dependencies) error {
	records, err := deps.History.FindRecords(deps.Ctx, autopress.RecordFilter{Limit: c.Limit})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", autopress.ErrorMessage(err))
		return err
	}

	if len(records) == 0 {
		fmt.Fprintln(deps.Stdout, "No publishes recorded yet.")
		return nil
	}

	for _, r := range records {
		fmt.Fprintf(deps.Stdout, "%s  post=%d  %s  %s\n",
			r.PublishedAt.Format("2006-01-02 15:04"), r.PostID, r.Title, r.URL)
	}

	return nil
}
