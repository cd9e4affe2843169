package main

import (
	"context"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/fwojciec/profscrape"
	"github.com/fwojciec/profscrape/sqlite"
)

// DefaultSampleID is served in demo mode for ids without a sample profile.
const DefaultSampleID = "john-doe"

// Run executes the demo seed command.
func (c *DemoSeedCmd) Run(deps *Dependencies) error {
	ids, err := seed(deps.Ctx, deps.Profiles)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "Error: %s\n", profscrape.ErrorMessage(err))
		return err
	}
	for _, id := range ids {
		fmt.Fprintf(deps.Stdout, "Stored %s\n", id)
	}
	return nil
}

// Run executes the demo list command.
func (c *DemoListCmd) Run(deps *Dependencies) error {
	profiles, err := deps.Profiles.ListProfiles(deps.Ctx, c.Limit, c.Offset)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "Error: %s\n", profscrape.ErrorMessage(err))
		return err
	}

	if len(profiles) == 0 {
		fmt.Fprintln(deps.Stdout, "No sample profiles. Run 'profscrape demo seed' to add the built-in ones.")
		return nil
	}

	w := tabwriter.NewWriter(deps.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tACCESS\tUPDATED")
	for _, p := range profiles {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", p.ID, p.Name, p.AccessMode, p.UpdatedAt.Format(time.DateTime))
	}
	return w.Flush()
}

// seed stores every built-in sample profile and returns their ids.
func seed(ctx context.Context, profiles *sqlite.ProfileRepository) ([]string, error) {
	samples := SampleProfiles()
	ids := make([]string, 0, len(samples))
	for _, sample := range samples {
		if err := profiles.SaveProfile(ctx, sample.ID, sample.Profile); err != nil {
			return ids, err
		}
		ids = append(ids, sample.ID)
	}
	return ids, nil
}

// seedIfEmpty seeds the catalogue unless it already holds a profile.
func seedIfEmpty(ctx context.Context, profiles *sqlite.ProfileRepository) error {
	ids, err := profiles.ListProfileIDs(ctx)
	if err != nil {
		return err
	}
	if len(ids) > 0 {
		return nil
	}
	_, err = seed(ctx, profiles)
	return err
}
