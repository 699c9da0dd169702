package mimetypes

import (
	"fmt"
	"mime"
	"strings"

	"swipe-lab/errors"

	"github.com/gabriel-vasile/mimetype"
)

type MIME string

const (
	Unknown   MIME = "unknown"
	ImagePNG  MIME = "image/png"
	ImageJPEG MIME = "image/jpeg"
	ImageGIF  MIME = "image/gif"
	ImageWEBP MIME = "image/webp"
)

func IsImage(m MIME) bool {
	return strings.HasPrefix(string(m), "image/")
}

// DetectPhoto sniffs the content and refuses anything that is not an image.
func DetectPhoto(data []byte) (MIME, string, error) {
	if len(data) == 0 {
		return Unknown, "", fmt.Errorf("%w: empty content", errors.ErrNotAnImage)
	}
	detected := mimetype.Detect(data)
	mt, _, err := mime.ParseMediaType(detected.String())
	if err != nil {
		return Unknown, "", fmt.Errorf("%w: %v", errors.ErrNotAnImage, err)
	}
	m := MIME(mt)
	if !IsImage(m) {
		return m, "", fmt.Errorf("%w: detected %s", errors.ErrNotAnImage, m)
	}
	return m, detected.Extension(), nil
}
