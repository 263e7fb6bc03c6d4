package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/gold9-app/autopress"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Config    *autopress.Config
	Logger    *slog.Logger
	Drafts    autopress.DraftStore
	Publisher autopress.Publisher
	History   autopress.HistoryService
	Generator autopress.Generator
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	List     ListCmd     `cmd:"" help:"List draft folders and their validation state"`
	Publish  PublishCmd  `cmd:"" help:"Publish one or more draft folders to WordPress"`
	Serve    ServeCmd    `cmd:"" help:"Run the local review web server"`
	Generate GenerateCmd `cmd:"" help:"Generate an article draft for a topic"`
	History  HistoryCmd  `cmd:"" help:"Show past publishes"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct{}

// PublishCmd is the "publish" subcommand.
type PublishCmd struct {
	Names  []string `arg:"" optional:"" help:"Draft folder names to publish"`
	All    bool     `short:"a" help:"Publish every valid draft folder"`
	Status string   `default:"publish" enum:"publish,draft" help:"WordPress post status"`
	Force  bool     `short:"f" help:"Publish even when the same content was published before"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr string `default:"localhost:8787" help:"Listen address"`
}

// GenerateCmd is the "generate" subcommand.
type GenerateCmd struct {
	Topic string `arg:"" help:"Article topic"`
	Save  bool   `short:"s" help:"Save the result as a draft folder"`
}

// HistoryCmd is the "history" subcommand.
type HistoryCmd struct {
	Limit int `default:"20" help:"Maximum records to show"`
}
