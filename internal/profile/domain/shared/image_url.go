package shared

import "strings"

const maxImageURLLength = 2048

var (
	imageURLSchemes    = []string{"http://", "https://"}
	imageURLExtensions = []string{".jpg", ".jpeg", ".png", ".gif"}
)

// ImageURL points at a profile picture.
//
// Invariants:
//   - Non-empty, at most 2048 characters after trimming
//   - Starts with http:// or https://
//   - Ends with .jpg, .jpeg, .png or .gif (case-sensitive)
//
// The URL is not otherwise parsed: a query string after the extension is rejected.
type ImageURL struct {
	value string
}

// NewImageURL validates raw and returns the trimmed ImageURL.
func NewImageURL(raw string) (ImageURL, error) {
	return defaultParser.ImageURL(raw)
}

// ImageURLFromBytes is NewImageURL for byte input.
func ImageURLFromBytes(raw []byte) (ImageURL, error) {
	return defaultParser.ImageURL(string(raw))
}

// MustImageURL panics if raw is invalid. Use only in tests or for constants.
func MustImageURL(raw string) ImageURL {
	u, err := NewImageURL(raw)
	if err != nil {
		panic(err)
	}
	return u
}

// ImageURL parses raw. It needs no compiled matchers but hangs off Parser
// so callers build every value object the same way.
func (p *Parser) ImageURL(raw string) (ImageURL, error) {
	trimmed := trim(raw)
	if err := bounds(FieldImageURL, trimmed, 0, maxImageURLLength); err != nil {
		return ImageURL{}, err
	}
	if !hasAnyPrefix(trimmed, imageURLSchemes) {
		return ImageURL{}, &ValidationError{Field: FieldImageURL, Kind: KindInvalidScheme}
	}
	if !hasAnySuffix(trimmed, imageURLExtensions) {
		return ImageURL{}, &ValidationError{Field: FieldImageURL, Kind: KindInvalidExtension}
	}
	return ImageURL{value: trimmed}, nil
}

func (u ImageURL) String() string { return u.value }

func (u ImageURL) IsZero() bool { return u.value == "" }

func (u ImageURL) Compare(other ImageURL) int { return strings.Compare(u.value, other.value) }

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}

func hasAnySuffix(s string, suffixes []string) bool {
	for _, x := range suffixes {
		if strings.HasSuffix(s, x) {
			return true
		}
	}
	return false
}
