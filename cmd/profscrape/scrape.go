package main

import (
	"encoding/json"
	"fmt"

	"github.com/fwojciec/profscrape"
)

// Run executes the scrape command.
func (c *ScrapeCmd) Run(deps *Dependencies) error {
	profile, err := deps.Scraper.Scrape(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "Error: %s\n", profscrape.ErrorMessage(err))
		return err
	}
	return writeJSON(deps, profile)
}

func writeJSON(deps *Dependencies, v any) error {
	enc := json.NewEncoder(deps.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
