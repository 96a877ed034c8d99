package shared

import "strings"

const (
	minBioLength = 10
	maxBioLength = 160
)

// Bio is a short free-text description.
//
// Invariants:
//   - Between 10 and 160 characters after trimming
//   - Only letters, numbers, whitespace, dots, underscores and hyphens
type Bio struct {
	value string
}

// NewBio validates raw and returns the trimmed Bio.
func NewBio(raw string) (Bio, error) {
	return defaultParser.Bio(raw)
}

// BioFromBytes is NewBio for byte input.
func BioFromBytes(raw []byte) (Bio, error) {
	return defaultParser.Bio(string(raw))
}

// MustBio panics if raw is invalid. Use only in tests or for constants.
func MustBio(raw string) Bio {
	b, err := NewBio(raw)
	if err != nil {
		panic(err)
	}
	return b
}

// Bio parses raw with the parser's rules.
func (p *Parser) Bio(raw string) (Bio, error) {
	trimmed := trim(raw)
	if err := bounds(FieldBio, trimmed, minBioLength, maxBioLength); err != nil {
		return Bio{}, err
	}
	if !p.matchers().MatchBioChars(trimmed) {
		return Bio{}, &ValidationError{Field: FieldBio, Kind: KindInvalidCharacters}
	}
	return Bio{value: trimmed}, nil
}

func (b Bio) String() string { return b.value }

func (b Bio) IsZero() bool { return b.value == "" }

func (b Bio) Compare(other Bio) int { return strings.Compare(b.value, other.value) }
