package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fwojciec/profscrape"
)

// Compile-time interface verification.
var _ profscrape.ProfileRepository = (*ProfileRepository)(nil)

// ProfileRepository stores sample profiles as JSON documents keyed by
// profile id.
type ProfileRepository struct {
	db  *DB
	now func() time.Time
}

// NewProfileRepository creates a new ProfileRepository.
func NewProfileRepository(db *DB) *ProfileRepository {
	return &ProfileRepository{db: db, now: time.Now}
}

// StoredProfile is a catalogue entry as listed by ListProfiles.
type StoredProfile struct {
	ID         string
	Name       string
	AccessMode profscrape.AccessMode
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// SaveProfile inserts or replaces the profile stored under id.
func (r *ProfileRepository) SaveProfile(ctx context.Context, id string, profile *profscrape.Profile) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return profscrape.Errorf(profscrape.EINVALID, "profile id required")
	}
	if profile == nil {
		return profscrape.Errorf(profscrape.EINVALID, "profile required")
	}

	data, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to encode profile: %w", err)
	}

	var name string
	if profile.Name != nil {
		name = *profile.Name
	}
	now := r.now().UTC().Format(time.RFC3339)

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO profiles (id, name, access_mode, data, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			access_mode = excluded.access_mode,
			data = excluded.data,
			updated_at = excluded.updated_at
	`, id, name, string(profile.AccessMode), string(data), now, now)
	return err
}

// FindProfileByID returns the profile stored under id.
func (r *ProfileRepository) FindProfileByID(ctx context.Context, id string) (*profscrape.Profile, error) {
	var data string
	err := r.db.QueryRowContext(ctx, `SELECT data FROM profiles WHERE id = ?`, id).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, profscrape.Errorf(profscrape.ENOTFOUND, "profile %q not found", id)
	}
	if err != nil {
		return nil, err
	}

	var profile profscrape.Profile
	if err := json.Unmarshal([]byte(data), &profile); err != nil {
		return nil, fmt.Errorf("failed to decode profile %q: %w", id, err)
	}
	return &profile, nil
}

// ListProfileIDs returns the stored ids in ascending order.
func (r *ProfileRepository) ListProfileIDs(ctx context.Context) ([]string, error) {
	profiles, err := r.ListProfiles(ctx, 0, 0)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(profiles))
	for _, p := range profiles {
		ids = append(ids, p.ID)
	}
	return ids, nil
}

// ListProfiles returns catalogue entries ordered by id. A zero limit
// returns all entries.
func (r *ProfileRepository) ListProfiles(ctx context.Context, limit, offset int) ([]*StoredProfile, error) {
	var query strings.Builder
	query.WriteString(`SELECT id, name, access_mode, created_at, updated_at FROM profiles ORDER BY id`)
	var args []any
	appendPagination(&query, &args, limit, offset)

	rows, err := r.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	profiles := make([]*StoredProfile, 0)
	for rows.Next() {
		var p StoredProfile
		var mode, createdAt, updatedAt string
		if err := rows.Scan(&p.ID, &p.Name, &mode, &createdAt, &updatedAt); err != nil {
			return nil, err
		}
		p.AccessMode = profscrape.AccessMode(mode)
		if p.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
			return nil, err
		}
		if p.UpdatedAt, err = parseRFC3339(updatedAt, "updated_at"); err != nil {
			return nil, err
		}
		profiles = append(profiles, &p)
	}
	return profiles, rows.Err()
}

// DeleteProfile removes the profile stored under id.
func (r *ProfileRepository) DeleteProfile(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM profiles WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return profscrape.Errorf(profscrape.ENOTFOUND, "profile %q not found", id)
	}
	return nil
}
