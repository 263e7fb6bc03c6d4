package main

import (
	"fmt"
	"strings"

	"github.com/gold9-app/autopress"
)

// Run executes the publish command. Folders are published one at a time; a
// failed folder does not stop the rest of a batch.
func (c *PublishCmd) Run(deps *Dependencies) error {
	names := c.Names
	if c.All {
		if len(names) > 0 {
			return autopress.Errorf(autopress.EINVALID, "pass folder names or --all, not both")
		}
		infos, err := deps.Drafts.List(deps.Ctx)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", autopress.ErrorMessage(err))
			return err
		}
		for _, info := range infos {
			if info.Valid {
				names = append(names, info.Name)
			} else {
				fmt.Fprintf(deps.Stdout, "skip  %s  (%s)\n", info.Name, strings.Join(info.Errors, ", "))
			}
		}
	}
	if len(names) == 0 {
		return autopress.Errorf(autopress.EINVALID, "nothing to publish: pass folder names or --all")
	}

	var failed []string
	for _, name := range names {
		if err := c.publishOne(deps, name); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s: %s\n", name, autopress.ErrorMessage(err))
			failed = append(failed, name)
		}
	}

	if len(failed) > 0 {
		return autopress.Errorf(autopress.EINTERNAL, "%d of %d folders failed: %s",
			len(failed), len(names), strings.Join(failed, ", "))
	}
	return nil
}

func (c *PublishCmd) publishOne(deps *Dependencies, name string) error {
	draft, err := deps.Drafts.Load(name)
	if err != nil {
		return err
	}

	if !c.Force && deps.History != nil {
		if record, err := deps.History.FindByContent(deps.Ctx, draft.HTML); err == nil {
			fmt.Fprintf(deps.Stdout, "skip  %s  (already published as post %d on %s, use --force to republish)\n",
				name, record.PostID, record.PublishedAt.Format("2006-01-02"))
			return nil
		}
	}

	receipt, err := deps.Publisher.Publish(deps.Ctx, &autopress.PublishRequest{
		Draft:  draft,
		Status: c.Status,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(deps.Stdout, "done  %s  post=%d url=%s\n", name, receipt.PostID, receipt.URL)
	for _, w := range receipt.Warnings {
		fmt.Fprintf(deps.Stdout, "      warning: %s\n", w)
	}
	return nil
}
