// Package domain contains the core concepts of the swipe engine.
// No storage, transport or runtime logic should be added here.
package domain

import (
	"fmt"
	"strings"
	"time"

	"swipe-lab/errors"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Profile is the live dating card of a user. Exactly one exists per ID,
// Version is assigned by the profile store and grows on every upsert.
type Profile struct {
	ID           string       `validate:"required,max=64,printascii,excludesall=: "`
	Username     string       `validate:"omitempty,max=64"`
	Name         string       `validate:"required,max=64"`
	Age          int          `validate:"required,min=18,max=120"`
	City         string       `validate:"required,max=128"`
	Bio          string       `validate:"max=1024"`
	Seeking      string       `validate:"max=512"`
	PhotoRef     string       `validate:"required"`
	Gender       Gender       `validate:"required,oneof=male female"`
	GenderFilter GenderFilter `validate:"required,oneof=male female all"`
	Version      uint64
	UpdatedAt    time.Time
}

func (p Profile) Validate() error {
	if err := validate.Struct(p); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrInvalidProfile, err)
	}
	return nil
}

// userIDRules mirrors the ID tag of Profile. IDs are joined into ':'-delimited
// storage keys and channel names, so separators and control characters are refused.
const userIDRules = "required,max=64,printascii,excludesall=: "

// ValidateUserID checks an id received outside of a Profile.
func ValidateUserID(id string) error {
	if err := validate.Var(id, userIDRules); err != nil {
		return fmt.Errorf("%w: %q", errors.ErrInvalidUserID, id)
	}
	return nil
}

// SameCity is the only locality rule of the engine: trimmed, case-insensitive equality.
func SameCity(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

// Mention is how the user is designated in a notification sent to someone else.
func (p Profile) Mention() string {
	if p.Username != "" {
		return "@" + strings.TrimPrefix(p.Username, "@")
	}
	return p.Name
}

// Caption is the text shown under the profile photo.
func (p Profile) Caption() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s, %d\n", p.Name, p.Age)
	b.WriteString(p.City)
	if p.Bio != "" {
		b.WriteString(" - ")
		b.WriteString(p.Bio)
	}
	if p.Seeking != "" {
		b.WriteString("\nLooking for: ")
		b.WriteString(p.Seeking)
	}
	return b.String()
}
