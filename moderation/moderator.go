// Package moderation masks blacklisted words in the free text of a profile.
package moderation

import (
	"log/slog"
	"unicode"

	"swipe-lab/domain"

	goahocorasick "github.com/anknown/ahocorasick"
)

type Moderator struct {
	matcher      *goahocorasick.Machine
	censoredChar rune
	log          *slog.Logger
}

// textMapping is the searchable form of a text plus, for every kept rune,
// its index in the original.
type textMapping struct {
	normalized []rune
	origIdx    []int
}

// NewModerator builds the Aho-Corasick automaton over the normalized dictionary.
func NewModerator(censoredWords []string, censoredChar rune, log *slog.Logger) (*Moderator, error) {
	patterns := make([][]rune, 0, len(censoredWords))
	for _, word := range censoredWords {
		if p := normalize(word).normalized; len(p) > 0 {
			patterns = append(patterns, p)
		}
	}

	m := new(goahocorasick.Machine)
	if err := m.Build(patterns); err != nil {
		return nil, err
	}
	return &Moderator{matcher: m, censoredChar: censoredChar, log: log}, nil
}

// Censor replaces every character of a forbidden word, noise inside the word included,
// and leaves the rest of the text untouched.
func (m *Moderator) Censor(original string) (string, []string) {
	mapping := normalize(original)
	if len(mapping.normalized) == 0 {
		return original, nil
	}
	hits := m.matcher.MultiPatternSearch(mapping.normalized, false)
	if len(hits) == 0 {
		return original, nil
	}

	out := []rune(original)
	words := make([]string, 0, len(hits))
	for _, hit := range hits {
		words = append(words, string(hit.Word))
		start, end := hit.Pos, hit.Pos+len(hit.Word)
		if start < 0 || end > len(mapping.origIdx) {
			continue
		}
		for i := mapping.origIdx[start]; i <= mapping.origIdx[end-1]; i++ {
			out[i] = m.censoredChar
		}
	}
	return string(out), words
}

// Profile masks the texts other users read: bio and what the user is looking for.
func (m *Moderator) Profile(p domain.Profile) domain.Profile {
	var bioWords, seekingWords []string
	p.Bio, bioWords = m.Censor(p.Bio)
	p.Seeking, seekingWords = m.Censor(p.Seeking)
	if total := len(bioWords) + len(seekingWords); total > 0 {
		m.log.Info("Profile text censored", "user_id", p.ID, "matches", total)
	}
	return p
}

func normalize(input string) textMapping {
	runes := []rune(input)
	mapping := textMapping{
		normalized: make([]rune, 0, len(runes)),
		origIdx:    make([]int, 0, len(runes)),
	}
	for i, r := range runes {
		clean := unleet(r)
		if isNoise(clean) {
			continue
		}
		mapping.normalized = append(mapping.normalized, unicode.ToLower(clean))
		mapping.origIdx = append(mapping.origIdx, i)
	}
	return mapping
}

// unleet maps common leet speak characters back to letters.
func unleet(r rune) rune {
	switch r {
	case '4', '@':
		return 'a'
	case '3', '€':
		return 'e'
	case '1', '!', '|':
		return 'i'
	case '0':
		return 'o'
	case '5', '$':
		return 's'
	case '7':
		return 't'
	default:
		return r
	}
}

func isNoise(r rune) bool {
	return unicode.IsPunct(r) || unicode.IsSpace(r) || unicode.IsSymbol(r)
}
