package s3

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPhotoStore_ObjectKey(t *testing.T) {
	req := require.New(t)
	store := NewPhotoStoreFromClient(nil, "profile-photos", nil)

	req.Equal("user_photos/a.jpg", store.ObjectKey("user_photos/a.jpg"))
	req.Equal("user_photos/a.jpg", store.ObjectKey("/user_photos/a.jpg"))
	req.Equal("user_photos/a.jpg", store.ObjectKey("http://minio:9000/profile-photos/user_photos/a.jpg"))
	req.Equal("other/user_photos/a.jpg", store.ObjectKey("https://cdn.example.com/other/user_photos/a.jpg"))
}
