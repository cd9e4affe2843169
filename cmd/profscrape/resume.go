package main

import (
	"fmt"
	"os"

	"github.com/fwojciec/profscrape"
)

// Run executes the resume command.
func (c *ResumeCmd) Run(deps *Dependencies) error {
	f, err := os.Open(c.File)
	if err != nil {
		return fmt.Errorf("failed to open %q: %w", c.File, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat %q: %w", c.File, err)
	}

	parsed, err := deps.Resumes.ParseResume(deps.Ctx, f, info.Size())
	if err != nil {
		fmt.Fprintf(deps.Stderr, "Error: %s\n", profscrape.ErrorMessage(err))
		return err
	}
	return writeJSON(deps, parsed)
}
