package shared

import "strings"

const maxEmailLength = 255

// Email is a trimmed address with a local part, an @ and a dotted domain.
//
// Invariants:
//   - Non-empty after trimming
//   - At most 255 characters
//   - No whitespace; exactly one @ separating non-empty parts; a dot after the @
type Email struct {
	value string
}

// NewEmail validates raw and returns the trimmed Email.
func NewEmail(raw string) (Email, error) {
	return defaultParser.Email(raw)
}

// EmailFromBytes is NewEmail for byte input.
func EmailFromBytes(raw []byte) (Email, error) {
	return defaultParser.Email(string(raw))
}

// MustEmail panics if raw is invalid. Use only in tests or for constants.
func MustEmail(raw string) Email {
	e, err := NewEmail(raw)
	if err != nil {
		panic(err)
	}
	return e
}

// Email parses raw with the parser's rules.
func (p *Parser) Email(raw string) (Email, error) {
	trimmed := trim(raw)
	if err := bounds(FieldEmail, trimmed, 0, maxEmailLength); err != nil {
		return Email{}, err
	}
	if !p.matchers().MatchEmailShape(trimmed) {
		return Email{}, &ValidationError{Field: FieldEmail, Kind: KindInvalidFormat}
	}
	return Email{value: trimmed}, nil
}

func (e Email) String() string {
	return e.value
}

// IsZero reports whether e was never constructed.
func (e Email) IsZero() bool {
	return e.value == ""
}

// Compare orders emails by their stored text.
func (e Email) Compare(other Email) int {
	return strings.Compare(e.value, other.value)
}
