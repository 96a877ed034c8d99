package domain

import (
	"bytes"

	"github.com/google/uuid"

	dErrors "profiles/pkg/domain-errors"
)

// ProfileID identifies a profile aggregate.
//
// Invariants:
//   - Always a syntactically valid UUID (any version, the nil UUID included)
//   - Ordering and equality follow the 16 UUID bytes
//
// Construct through ParseProfileID at trust boundaries; NewProfileID mints
// time-ordered (v7) identifiers for locally created profiles.
type ProfileID uuid.UUID

// NewProfileID returns a fresh time-ordered identifier.
func NewProfileID() ProfileID {
	return ProfileID(uuid.Must(uuid.NewV7()))
}

// ProfileIDFromUUID wraps an already parsed UUID.
func ProfileIDFromUUID(u uuid.UUID) ProfileID {
	return ProfileID(u)
}

// ParseProfileID parses the textual form of a UUID.
//
// Errors: CodeInvalidInput wrapping the parser's reason; no other errors are
// expected.
func ParseProfileID(s string) (ProfileID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return ProfileID{}, dErrors.Wrap(err, dErrors.CodeInvalidInput, "invalid id")
	}
	return ProfileID(u), nil
}

// MustProfileID parses s and panics on failure. Tests and constants only.
func MustProfileID(s string) ProfileID {
	id, err := ParseProfileID(s)
	if err != nil {
		panic(err)
	}
	return id
}

// UUID returns the wrapped UUID.
func (id ProfileID) UUID() uuid.UUID {
	return uuid.UUID(id)
}

// String returns the canonical lowercase hyphenated form.
func (id ProfileID) String() string {
	return uuid.UUID(id).String()
}

// IsNil reports whether id is the nil UUID.
func (id ProfileID) IsNil() bool {
	return uuid.UUID(id) == uuid.Nil
}

// Compare orders identifiers by their bytes; v7 IDs therefore sort by
// creation time.
func (id ProfileID) Compare(other ProfileID) int {
	return bytes.Compare(id[:], other[:])
}
