package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/profscrape"
	"github.com/fwojciec/profscrape/chromedp"
	profhttp "github.com/fwojciec/profscrape/http"
	"github.com/fwojciec/profscrape/pdf"
	"github.com/fwojciec/profscrape/resume"
	"github.com/fwojciec/profscrape/rod"
	"github.com/fwojciec/profscrape/scrape"
	profslog "github.com/fwojciec/profscrape/slog"
	"github.com/fwojciec/profscrape/sqlite"
	"github.com/joho/godotenv"
)

func main() {
	// A missing .env file is not an error.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database holding the sample profile catalogue.
	DB *sqlite.DB

	// Services for end-to-end testing. When set, Run uses them instead of
	// wiring browser-backed implementations.
	Scraper      profscrape.Scraper
	ResumeParser profscrape.ResumeParser
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
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
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("profscrape"),
		kong.Description("Extract structured profile data from profile pages and PDF resumes."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'profscrape --help' to see available commands")
	}

	if cmd := args[0]; cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	deps.Logger = newLogger(stderr, cli.Verbose)

	if cli.DB != "" {
		m.DBPath = cli.DB
	}

	command := kongCtx.Command()
	demo := command == "serve" && cli.Serve.Demo

	if demo || command == "demo seed" || command == "demo list" {
		m.DB = sqlite.NewDB(m.DBPath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set PROFSCRAPE_DB to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
		}
		defer m.Close()
		deps.Profiles = sqlite.NewProfileRepository(m.DB)
	}

	switch {
	case m.Scraper != nil:
		deps.Scraper = m.Scraper
	case demo:
		if err := seedIfEmpty(ctx, deps.Profiles); err != nil {
			return fmt.Errorf("failed to seed sample profiles: %w", err)
		}
		deps.Scraper = profslog.NewLoggingScraper(&scrape.DemoScraper{
			Profiles:  deps.Profiles,
			DefaultID: DefaultSampleID,
		}, deps.Logger)
	case command == "scrape <url>" || command == "serve":
		deps.Scraper = newScraper(cli.Browser, deps.Logger)
	}

	if command == "resume <file>" || command == "serve" {
		deps.Resumes = m.ResumeParser
		if deps.Resumes == nil {
			deps.Resumes = profslog.NewLoggingResumeParser(resume.NewParser(pdf.NewExtractor()), deps.Logger)
		}
	}

	return kongCtx.Run(deps)
}

// newLogger writes text logs to w. Debug output is enabled by --verbose.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// newScraper wires the browser driver selected by flags into the
// extraction pipeline.
func newScraper(flags BrowserFlags, logger *slog.Logger) profscrape.Scraper {
	pipeline := scrape.NewPipeline()
	pipeline.NavigationTimeout = flags.NavTimeout
	pipeline.FieldTimeout = flags.FieldTimeout
	pipeline.Logger = logger

	session := profslog.NewLoggingSession(newSession(flags, logger), logger)
	return profslog.NewLoggingScraper(scrape.NewScraper(session, pipeline), logger)
}

func newSession(flags BrowserFlags, logger *slog.Logger) profscrape.Session {
	switch flags.Driver {
	case DriverChromedp:
		return chromedp.NewSessionManager(
			chromedp.WithUserAgent(flags.UserAgent),
			chromedp.WithMaxSessions(flags.MaxSessions),
			chromedp.WithHeadless(!flags.Headful),
			chromedp.WithExecPath(flags.BrowserBin),
			chromedp.WithLogger(logger),
		)
	case DriverHTTP:
		return profhttp.NewSession(profhttp.NewFetcher(
			profhttp.WithTimeout(flags.NavTimeout),
			profhttp.WithUserAgent(flags.UserAgent),
		))
	default:
		return rod.NewSessionManager(
			rod.WithStealth(flags.Stealth),
			rod.WithUserAgent(flags.UserAgent),
			rod.WithMaxSessions(flags.MaxSessions),
			rod.WithHeadless(!flags.Headful),
			rod.WithBrowserBin(flags.BrowserBin),
			rod.WithLogger(logger),
		)
	}
}

func defaultDBPath() string {
	if path := os.Getenv("PROFSCRAPE_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "profscrape.db"
	}
	dir := filepath.Join(home, ".profscrape")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "profscrape.db")
}
