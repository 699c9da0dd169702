package domain

import (
	"fmt"
	"strings"

	"swipe-lab/errors"
)

type Gender string

const (
	Male   Gender = "male"
	Female Gender = "female"
)

// GenderFilter selects which audience a viewer wants to browse.
type GenderFilter string

const (
	FilterMale   GenderFilter = "male"
	FilterFemale GenderFilter = "female"
	FilterAll    GenderFilter = "all"
)

func ParseGender(s string) (Gender, error) {
	switch g := Gender(strings.ToLower(strings.TrimSpace(s))); g {
	case Male, Female:
		return g, nil
	default:
		return "", fmt.Errorf("%w: %q", errors.ErrInvalidGender, s)
	}
}

func ParseGenderFilter(s string) (GenderFilter, error) {
	switch f := GenderFilter(strings.ToLower(strings.TrimSpace(s))); f {
	case FilterMale, FilterFemale, FilterAll:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", errors.ErrInvalidGenderFilter, s)
	}
}

// Admits reports whether a viewer using this filter wants to see someone of gender g.
func (f GenderFilter) Admits(g Gender) bool {
	return f == FilterAll || string(f) == string(g)
}
