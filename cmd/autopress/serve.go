package main

import (
	"fmt"

	"github.com/gold9-app/autopress/goquery"
	"github.com/gold9-app/autopress/htmltomarkdown"
	aphttp "github.com/gold9-app/autopress/http"
)

// Run executes the serve command. The server blocks until interrupted.
func (c *ServeCmd) Run(deps *Dependencies) error {
	srv := aphttp.NewServer()
	srv.Drafts = deps.Drafts
	srv.Publisher = deps.Publisher
	srv.Inspector = goquery.NewInspector()
	srv.Converter = htmltomarkdown.NewConverter()
	srv.Generator = deps.Generator
	srv.History = deps.History
	srv.SiteName = deps.Config.SiteName
	srv.UIPassword = deps.Config.UIPassword
	srv.Logger = deps.Logger

	fmt.Fprintf(deps.Stdout, "Serving review UI on http://%s\n", c.Addr)
	if deps.Config.UIPassword != "" {
		fmt.Fprintln(deps.Stdout, "API requests require the X-App-Password header")
	}

	go func() {
		<-deps.Ctx.Done()
		_ = srv.Close()
	}()

	return srv.ListenAndServe(c.Addr)
}
