package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"swipe-lab/domain"
	errs "swipe-lab/errors"
)

type ProfileStore struct {
	db  *sql.DB
	log *slog.Logger
}

func NewProfileStore(db *sql.DB, log *slog.Logger) *ProfileStore {
	return &ProfileStore{db: db, log: log}
}

func (s *ProfileStore) GetProfile(ctx context.Context, userID string) (domain.Profile, error) {
	var (
		p            domain.Profile
		gender       string
		genderFilter string
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT user_id, username, name, age, city, description, preference,
		       photo_id, gender, gender_filter, version, updated_at
		FROM profiles WHERE user_id = $1`, userID,
	).Scan(&p.ID, &p.Username, &p.Name, &p.Age, &p.City, &p.Bio, &p.Seeking,
		&p.PhotoRef, &gender, &genderFilter, &p.Version, &p.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Profile{}, fmt.Errorf("%w: %s", errs.ErrProfileNotFound, userID)
	}
	if err != nil {
		return domain.Profile{}, fmt.Errorf("failed to load profile %s: %w", userID, err)
	}
	p.Gender = domain.Gender(gender)
	p.GenderFilter = domain.GenderFilter(genderFilter)
	p.UpdatedAt = p.UpdatedAt.UTC()
	return p, nil
}

// UpsertProfile inserts or replaces the profile, the version is bumped by the database.
func (s *ProfileStore) UpsertProfile(ctx context.Context, p domain.Profile) (domain.Profile, error) {
	saved := p
	saved.UpdatedAt = time.Now().UTC()
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO profiles (user_id, username, name, age, city, description, preference,
		                      photo_id, gender, gender_filter, version, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, 1, $11)
		ON CONFLICT (user_id) DO UPDATE SET
			username = EXCLUDED.username,
			name = EXCLUDED.name,
			age = EXCLUDED.age,
			city = EXCLUDED.city,
			description = EXCLUDED.description,
			preference = EXCLUDED.preference,
			photo_id = EXCLUDED.photo_id,
			gender = EXCLUDED.gender,
			gender_filter = EXCLUDED.gender_filter,
			version = profiles.version + 1,
			updated_at = EXCLUDED.updated_at
		RETURNING version`,
		p.ID, p.Username, p.Name, p.Age, p.City, p.Bio, p.Seeking,
		p.PhotoRef, string(p.Gender), string(p.GenderFilter), saved.UpdatedAt,
	).Scan(&saved.Version)
	if err != nil {
		return domain.Profile{}, fmt.Errorf("failed to upsert profile %s: %w", p.ID, err)
	}
	s.log.Debug("Profile saved", "user_id", saved.ID, "version", saved.Version)
	return saved, nil
}
