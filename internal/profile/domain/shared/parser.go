// Package shared holds the value objects of the Profile context.
//
// Every constructor trims its input, then checks emptiness, length (short
// before long), structure, and finally the character class. The first rule
// that fails is reported as a *ValidationError. Lengths count runes.
//
// Domain Purity: no I/O, no context.Context and no clocks in this package.
package shared

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"profiles/pkg/platform/validation"
)

// Parser builds value objects against one set of compiled rules.
// A Parser is immutable and safe for concurrent use.
type Parser struct {
	rules *validation.Rules
}

// NewParser returns a Parser bound to rules. A nil rules uses validation.Default().
func NewParser(rules *validation.Rules) *Parser {
	if rules == nil {
		rules = validation.Default()
	}
	return &Parser{rules: rules}
}

var defaultParser = &Parser{}

func (p *Parser) matchers() *validation.Rules {
	if p == nil || p.rules == nil {
		return validation.Default()
	}
	return p.rules
}

// bounds checks the trimmed value against emptiness and [min, max] runes.
// A zero min skips the lower bound.
func bounds(field Field, trimmed string, minLen, maxLen int) error {
	if trimmed == "" {
		return &ValidationError{Field: field, Kind: KindEmpty}
	}
	n := utf8.RuneCountInString(trimmed)
	if minLen > 0 && n < minLen {
		return &ValidationError{Field: field, Kind: KindTooShort, Limit: minLen}
	}
	if n > maxLen {
		return &ValidationError{Field: field, Kind: KindTooLong, Limit: maxLen}
	}
	return nil
}

func alphanumeric(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r)
}

// alphanumericEdges reports whether s starts and ends with a letter or number.
func alphanumericEdges(s string) bool {
	first, _ := utf8.DecodeRuneInString(s)
	last, _ := utf8.DecodeLastRuneInString(s)
	return alphanumeric(first) && alphanumeric(last)
}

func trim(s string) string {
	return strings.TrimSpace(s)
}
