package main_test

import (
	"bytes"
	"context"
	"testing"

	main "github.com/fwojciec/profscrape/cmd/profscrape"
	"github.com/fwojciec/profscrape/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openProfiles(t *testing.T) *sqlite.ProfileRepository {
	t.Helper()
	db := sqlite.NewDB(sqlite.MemoryPath)
	require.NoError(t, db.Open())
	t.Cleanup(func() { _ = db.Close() })
	return sqlite.NewProfileRepository(db)
}

func TestDemoSeedCmd_Run(t *testing.T) {
	t.Parallel()

	profiles := openProfiles(t)
	stdout := &bytes.Buffer{}
	deps := &main.Dependencies{
		Ctx:      context.Background(),
		Stdout:   stdout,
		Stderr:   &bytes.Buffer{},
		Profiles: profiles,
	}

	require.NoError(t, (&main.DemoSeedCmd{}).Run(deps))

	ids, err := profiles.ListProfileIDs(context.Background())
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"john-doe", "jane-smith"}, ids)

	john, err := profiles.FindProfileByID(context.Background(), main.DefaultSampleID)
	require.NoError(t, err)
	require.NotNil(t, john.Name)
	assert.Equal(t, "John Doe", *john.Name)
	require.NotNil(t, john.Followers)
	assert.Equal(t, 1200, *john.Followers)

	// Seeding twice replaces rather than duplicates.
	require.NoError(t, (&main.DemoSeedCmd{}).Run(deps))
	ids, err = profiles.ListProfileIDs(context.Background())
	require.NoError(t, err)
	assert.Len(t, ids, 2)
}

func TestDemoListCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("lists stored profiles", func(t *testing.T) {
		t.Parallel()

		profiles := openProfiles(t)
		for _, sample := range main.SampleProfiles() {
			require.NoError(t, profiles.SaveProfile(context.Background(), sample.ID, sample.Profile))
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   stdout,
			Stderr:   &bytes.Buffer{},
			Profiles: profiles,
		}

		require.NoError(t, (&main.DemoListCmd{}).Run(deps))

		output := stdout.String()
		assert.Contains(t, output, "ID")
		assert.Contains(t, output, "john-doe")
		assert.Contains(t, output, "John Doe")
		assert.Contains(t, output, "jane-smith")
		assert.Contains(t, output, "full")
	})

	t.Run("respects the limit", func(t *testing.T) {
		t.Parallel()

		profiles := openProfiles(t)
		for _, sample := range main.SampleProfiles() {
			require.NoError(t, profiles.SaveProfile(context.Background(), sample.ID, sample.Profile))
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   stdout,
			Stderr:   &bytes.Buffer{},
			Profiles: profiles,
		}

		require.NoError(t, (&main.DemoListCmd{Limit: 1}).Run(deps))

		lines := bytes.Count(stdout.Bytes(), []byte("\n"))
		assert.Equal(t, 2, lines, "header plus one profile")
	})

	t.Run("shows a hint when the catalogue is empty", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   stdout,
			Stderr:   &bytes.Buffer{},
			Profiles: openProfiles(t),
		}

		require.NoError(t, (&main.DemoListCmd{}).Run(deps))
		assert.Contains(t, stdout.String(), "demo seed")
	})
}

func TestSampleProfiles_ReturnsFreshCopies(t *testing.T) {
	t.Parallel()

	first := main.SampleProfiles()
	first[0].Profile.Skills[0] = "changed"

	second := main.SampleProfiles()
	assert.Equal(t, "JavaScript", second[0].Profile.Skills[0])
}
