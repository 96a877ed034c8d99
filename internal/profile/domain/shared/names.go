package shared

import "strings"

const (
	minNameLength      = 2
	maxFirstNameLength = 15
	maxLastNameLength  = 25
)

// FirstName is a given name made of letters, whitespace and hyphens.
//
// Invariants:
//   - Between 2 and 15 characters after trimming
//   - Starts and ends with a letter or number
//   - Only letters, whitespace and hyphens
type FirstName struct {
	value string
}

// LastName is a family name with the same alphabet as FirstName.
//
// Invariants:
//   - Between 2 and 25 characters after trimming
//   - Starts and ends with a letter or number
//   - Only letters, whitespace and hyphens
type LastName struct {
	value string
}

// NewFirstName validates raw and returns the trimmed FirstName.
func NewFirstName(raw string) (FirstName, error) {
	return defaultParser.FirstName(raw)
}

// FirstNameFromBytes is NewFirstName for byte input.
func FirstNameFromBytes(raw []byte) (FirstName, error) {
	return defaultParser.FirstName(string(raw))
}

// MustFirstName panics if raw is invalid. Use only in tests or for constants.
func MustFirstName(raw string) FirstName {
	n, err := NewFirstName(raw)
	if err != nil {
		panic(err)
	}
	return n
}

// NewLastName validates raw and returns the trimmed LastName.
func NewLastName(raw string) (LastName, error) {
	return defaultParser.LastName(raw)
}

// LastNameFromBytes is NewLastName for byte input.
func LastNameFromBytes(raw []byte) (LastName, error) {
	return defaultParser.LastName(string(raw))
}

// MustLastName panics if raw is invalid. Use only in tests or for constants.
func MustLastName(raw string) LastName {
	n, err := NewLastName(raw)
	if err != nil {
		panic(err)
	}
	return n
}

// FirstName parses raw with the parser's rules.
func (p *Parser) FirstName(raw string) (FirstName, error) {
	v, err := p.name(FieldFirstName, raw, maxFirstNameLength)
	if err != nil {
		return FirstName{}, err
	}
	return FirstName{value: v}, nil
}

// LastName parses raw with the parser's rules.
func (p *Parser) LastName(raw string) (LastName, error) {
	v, err := p.name(FieldLastName, raw, maxLastNameLength)
	if err != nil {
		return LastName{}, err
	}
	return LastName{value: v}, nil
}

// name runs the shared name pipeline. The edge check comes before the
// character class so "& name" reports edges and "Dani&lo" reports characters.
func (p *Parser) name(field Field, raw string, maxLen int) (string, error) {
	trimmed := trim(raw)
	if err := bounds(field, trimmed, minNameLength, maxLen); err != nil {
		return "", err
	}
	if !alphanumericEdges(trimmed) {
		return "", &ValidationError{Field: field, Kind: KindInvalidEdgeCharacters}
	}
	if !p.matchers().MatchNameChars(trimmed) {
		return "", &ValidationError{Field: field, Kind: KindInvalidCharacters}
	}
	return trimmed, nil
}

func (n FirstName) String() string { return n.value }

func (n FirstName) IsZero() bool { return n.value == "" }

func (n FirstName) Compare(other FirstName) int { return strings.Compare(n.value, other.value) }

func (n LastName) String() string { return n.value }

func (n LastName) IsZero() bool { return n.value == "" }

func (n LastName) Compare(other LastName) int { return strings.Compare(n.value, other.value) }
