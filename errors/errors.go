package errors

import "fmt"

var (
	ErrWorkerPanic = fmt.Errorf("worker panic")
	ErrEmptyWords  = fmt.Errorf("no words have been found")

	ErrInvalidProfile      = fmt.Errorf("invalid profile")
	ErrInvalidUserID       = fmt.Errorf("invalid user id")
	ErrInvalidGender       = fmt.Errorf("invalid gender")
	ErrInvalidGenderFilter = fmt.Errorf("invalid gender filter")
	ErrProfileNotFound     = fmt.Errorf("profile not found")
	ErrPhotoNotFound       = fmt.Errorf("photo not found")
	ErrNotAnImage          = fmt.Errorf("photo is not an image")
	ErrSwipeNotFound       = fmt.Errorf("swipe decision not found")
	ErrSelfSwipe           = fmt.Errorf("cannot swipe on own profile")

	// Distribution messages
	ErrMalformedMessage  = fmt.Errorf("malformed distribution message")
	ErrRenderFailed      = fmt.Errorf("profile render failed")
	ErrSupersededMessage = fmt.Errorf("distribution message superseded by a newer profile version")

	// Transport
	ErrDeliveryNotFound = fmt.Errorf("delivery is no longer in flight")
	ErrTransportBusy    = fmt.Errorf("channel transaction kept conflicting")
	ErrInvalidChannel   = fmt.Errorf("invalid channel name")

	// Storage
	ErrTxnConflict    = fmt.Errorf("transaction kept conflicting")
	ErrUnknownBackend = fmt.Errorf("unknown backend")
)
