package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/gold9-app/autopress"
	"github.com/gold9-app/autopress/fs"
	"github.com/gold9-app/autopress/gemini"
	"github.com/gold9-app/autopress/publish"
	apslog "github.com/gold9-app/autopress/slog"
	"github.com/gold9-app/autopress/sqlite"
	"github.com/gold9-app/autopress/wordpress"
	"github.com/joho/godotenv"
	"google.golang.org/genai"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Configuration loaded from the environment. Set by Run().
	Config *autopress.Config

	// SQLite database backing the publish history.
	DB *sqlite.DB

	// Services for end-to-end testing.
	Drafts    autopress.DraftStore
	Publisher autopress.Publisher
	History   autopress.HistoryService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Local .env values supplement the environment but never override it.
	_ = godotenv.Load()

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("autopress"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'autopress --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	cfg, err := autopress.ConfigFromEnv()
	if err != nil {
		fmt.Fprintln(stderr, "Hint: Copy .env.example to .env and fill in your WordPress credentials")
		return err
	}
	m.Config = cfg
	deps.Config = cfg

	logger := slog.New(slog.NewTextHandler(stderr, nil))
	deps.Logger = logger

	m.DB = sqlite.NewDB(cfg.HistoryDB)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set HISTORY_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", cfg.HistoryDB, err)
	}
	defer m.Close()

	m.History = sqlite.NewHistoryService(m.DB)
	m.Drafts = fs.NewStore(cfg.DraftsDir)
	deps.History = m.History
	deps.Drafts = m.Drafts

	client := wordpress.NewClient(cfg.SiteURL, cfg.Username, cfg.AppPassword)
	m.Publisher = apslog.NewLoggingPublisher(&publish.Publisher{
		Tags:              client,
		Media:             client,
		Posts:             client,
		SEOMeta:           client,
		History:           m.History,
		Augmenter:         autopress.NewAugmenter(cfg),
		SiteName:          cfg.SiteName,
		DefaultAuthorID:   cfg.AuthorID,
		DefaultCategoryID: cfg.CategoryID,
	}, logger)
	deps.Publisher = m.Publisher

	if cmd == "generate" || cmd == "serve" {
		if cfg.GeminiAPIKey != "" {
			client, err := genai.NewClient(ctx, &genai.ClientConfig{
				APIKey:  cfg.GeminiAPIKey,
				Backend: genai.BackendGeminiAPI,
			})
			if err != nil {
				fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
				return fmt.Errorf("failed to connect to Gemini API: %w", err)
			}
			deps.Generator = apslog.NewLoggingGenerator(gemini.NewGenerator(client, ""), logger)
		} else if cmd == "generate" {
			fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
			return fmt.Errorf("GEMINI_API_KEY not set. Get a key at https://aistudio.google.com/apikey")
		}
	}

	return kongCtx.Run(deps)
}
