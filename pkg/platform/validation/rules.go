// Package validation holds the compiled text rules shared by value objects
// and request validation.
//
// The matchers are compiled once and reused. Callers that want an isolated
// set (tests, alternative wiring) build one with Compile; everything else
// shares the process-wide set returned by Default.
package validation

import (
	"regexp"
	"sync"
)

// whitespace is the Unicode White_Space set as a character-class body.
// RE2's \s only covers ASCII, so NBSP, em space and friends are listed via \p{Z}.
const whitespace = `\t\n\v\f\r\x{85}\p{Z}`

const (
	nameCharsPattern  = `^[\p{L}` + whitespace + `-]+$`
	bioCharsPattern   = `^[\p{L}\p{N}` + whitespace + `._-]+$`
	emailShapePattern = `^[^@` + whitespace + `]+@[^@` + whitespace + `]+\.[^@` + whitespace + `]+$`
)

// Rules is an immutable set of compiled matchers. Safe for concurrent use.
type Rules struct {
	nameChars  *regexp.Regexp
	bioChars   *regexp.Regexp
	emailShape *regexp.Regexp
}

// Compile builds a new rule set.
func Compile() *Rules {
	return &Rules{
		nameChars:  regexp.MustCompile(nameCharsPattern),
		bioChars:   regexp.MustCompile(bioCharsPattern),
		emailShape: regexp.MustCompile(emailShapePattern),
	}
}

var defaultRules = sync.OnceValue(Compile)

// Default returns the process-wide rule set, compiling it on first use.
func Default() *Rules {
	return defaultRules()
}

// MatchNameChars reports whether s consists only of letters, whitespace and
// hyphens.
func (r *Rules) MatchNameChars(s string) bool {
	return r.nameChars.MatchString(s)
}

// MatchBioChars reports whether s consists only of letters, digits,
// whitespace, dots, underscores and hyphens.
func (r *Rules) MatchBioChars(s string) bool {
	return r.bioChars.MatchString(s)
}

// MatchEmailShape is a loose local@domain.tld check, not RFC 5322.
func (r *Rules) MatchEmailShape(s string) bool {
	return r.emailShape.MatchString(s)
}
