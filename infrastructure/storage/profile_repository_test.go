package storage

import (
	"context"
	"testing"

	"swipe-lab/domain"
	errs "swipe-lab/errors"

	"github.com/stretchr/testify/require"
)

func TestProfileRepository_UpsertBumpsVersion(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	db, cleanup := SetupTestDB(t)
	defer cleanup()
	repo := NewProfileRepository(db, testLogger())

	_, err := repo.GetProfile(ctx, "1")
	req.ErrorIs(err, errs.ErrProfileNotFound)

	p := domain.Profile{
		ID: "1", Name: "Sam", Age: 25, City: "Oslo", PhotoRef: "user_photos/1.png",
		Gender: domain.Male, GenderFilter: domain.FilterAll, Version: 99,
	}
	saved, err := repo.UpsertProfile(ctx, p)
	req.NoError(err)
	req.Equal(uint64(1), saved.Version)
	req.False(saved.UpdatedAt.IsZero())

	p.City = "Bergen"
	saved, err = repo.UpsertProfile(ctx, p)
	req.NoError(err)
	req.Equal(uint64(2), saved.Version)

	got, err := repo.GetProfile(ctx, "1")
	req.NoError(err)
	req.Equal("Bergen", got.City)
	req.Equal(uint64(2), got.Version)

	all, err := repo.ListProfiles(ctx, 10)
	req.NoError(err)
	req.Len(all, 1)
}
