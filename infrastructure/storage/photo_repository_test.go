package storage

import (
	"context"
	"strings"
	"testing"

	errs "swipe-lab/errors"

	"github.com/stretchr/testify/require"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00")

func TestPhotoRepository_PutAndFetch(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	db, cleanup := SetupTestDB(t)
	defer cleanup()
	repo := NewPhotoRepository(db, testLogger())

	ref, err := repo.Put(ctx, pngHeader)
	req.NoError(err)
	req.True(strings.HasPrefix(ref, "user_photos/"))
	req.True(strings.HasSuffix(ref, ".png"))

	data, err := repo.Fetch(ctx, ref)
	req.NoError(err)
	req.Equal(pngHeader, data)

	_, err = repo.Fetch(ctx, "user_photos/missing.jpg")
	req.ErrorIs(err, errs.ErrPhotoNotFound)

	_, err = repo.Put(ctx, []byte("just some text"))
	req.ErrorIs(err, errs.ErrNotAnImage)
}
