package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/profscrape"
	"github.com/fwojciec/profscrape/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Logger   *slog.Logger
	Profiles *sqlite.ProfileRepository
	Scraper  profscrape.Scraper
	Resumes  profscrape.ResumeParser
}

// Browser drivers selectable with --driver.
const (
	DriverRod      = "rod"
	DriverChromedp = "chromedp"
	DriverHTTP     = "http"
)

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool   `short:"v" help:"Enable debug logging"`
	DB      string `name:"db" env:"PROFSCRAPE_DB" help:"Path to the sample profile database"`

	Browser BrowserFlags `embed:"" group:"Browser"`

	Scrape ScrapeCmd `cmd:"" help:"Scrape a profile URL and print it as JSON"`
	Serve  ServeCmd  `cmd:"" help:"Run the HTTP API"`
	Resume ResumeCmd `cmd:"" help:"Parse a PDF resume and print it as JSON"`
	Demo   DemoCmd   `cmd:"" help:"Manage the sample profile catalogue"`
}

// BrowserFlags configure the browser session and extraction pipeline.
type BrowserFlags struct {
	Driver       string        `enum:"rod,chromedp,http" default:"rod" env:"PROFSCRAPE_DRIVER" help:"Page driver (rod, chromedp, http)"`
	NavTimeout   time.Duration `default:"30s" env:"PROFSCRAPE_NAV_TIMEOUT" help:"Navigation timeout"`
	FieldTimeout time.Duration `default:"5s" env:"PROFSCRAPE_FIELD_TIMEOUT" help:"Per-field extraction timeout"`
	UserAgent    string        `default:"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36" env:"PROFSCRAPE_USER_AGENT" help:"Browser user agent"`
	Stealth      bool          `env:"PROFSCRAPE_STEALTH" help:"Apply stealth evasions (rod only)"`
	Headful      bool          `help:"Show the browser window"`
	BrowserBin   string        `env:"PROFSCRAPE_BROWSER_BIN" help:"Path to the Chrome binary"`
	MaxSessions  int64         `default:"2" env:"PROFSCRAPE_MAX_SESSIONS" help:"Maximum concurrent browser sessions"`
}

// ScrapeCmd is the "scrape" subcommand.
type ScrapeCmd struct {
	URL string `arg:"" help:"Profile URL"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr          string        `default:":3000" env:"PORT" help:"Listen address"`
	Demo          bool          `help:"Serve sample profiles instead of scraping"`
	Rate          float64       `default:"1" env:"PROFSCRAPE_RATE" help:"Requests per second allowed per client (0 disables)"`
	Burst         int           `default:"5" env:"PROFSCRAPE_BURST" help:"Burst size for the per-client rate limit"`
	ScrapeTimeout time.Duration `default:"90s" help:"Timeout for one scrape request"`
	AllowOrigin   []string      `name:"allow-origin" help:"CORS allowed origin (repeatable, default any)"`
}

// ResumeCmd is the "resume" subcommand.
type ResumeCmd struct {
	File string `arg:"" type:"existingfile" help:"PDF file"`
}

// DemoCmd groups the sample catalogue subcommands.
type DemoCmd struct {
	Seed DemoSeedCmd `cmd:"" help:"Store the built-in sample profiles"`
	List DemoListCmd `cmd:"" help:"List stored sample profiles"`
}

// DemoSeedCmd is the "demo seed" subcommand.
type DemoSeedCmd struct{}

// DemoListCmd is the "demo list" subcommand.
type DemoListCmd struct {
	Limit  int `short:"n" default:"0" help:"Maximum number of profiles (0 for all)"`
	Offset int `default:"0" help:"Number of profiles to skip"`
}
