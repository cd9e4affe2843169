package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	profecho "github.com/fwojciec/profscrape/echo"
)

// shutdownTimeout bounds the wait for in-flight requests on exit.
const shutdownTimeout = 10 * time.Second

// Run executes the serve command. It blocks until the server fails or the
// context is canceled, then shuts the server down gracefully.
func (c *ServeCmd) Run(deps *Dependencies) error {
	opts := []profecho.ServerOption{
		profecho.WithLogger(deps.Logger),
		profecho.WithScrapeTimeout(c.ScrapeTimeout),
		profecho.WithRateLimit(c.Rate, c.Burst),
	}
	if len(c.AllowOrigin) > 0 {
		opts = append(opts, profecho.WithAllowOrigins(c.AllowOrigin...))
	}
	server := profecho.NewServer(deps.Scraper, deps.Resumes, opts...)

	addr := listenAddr(c.Addr)
	if c.Demo {
		fmt.Fprintf(deps.Stdout, "Serving sample profiles on %s\n", addr)
	} else {
		fmt.Fprintf(deps.Stdout, "Serving on %s\n", addr)
	}

	errc := make(chan error, 1)
	go func() { errc <- server.Start(addr) }()

	select {
	case err := <-errc:
		return err
	case <-deps.Ctx.Done():
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(deps.Ctx), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	return <-errc
}

// listenAddr accepts a bare port number as set in PORT.
func listenAddr(addr string) string {
	if addr != "" && !strings.Contains(addr, ":") {
		return ":" + addr
	}
	return addr
}
