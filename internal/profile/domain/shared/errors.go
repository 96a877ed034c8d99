package shared

import (
	"errors"
	"fmt"
)

// Field names the value object a ValidationError belongs to.
type Field string

const (
	FieldEmail     Field = "email"
	FieldFirstName Field = "first_name"
	FieldLastName  Field = "last_name"
	FieldBio       Field = "bio"
	FieldImageURL  Field = "profile_image_url"
)

// Kind identifies the rule a value failed.
type Kind int

const (
	KindEmpty Kind = iota + 1
	KindTooShort
	KindTooLong
	KindInvalidEdgeCharacters
	KindInvalidCharacters
	KindInvalidFormat
	KindInvalidScheme
	KindInvalidExtension
	// KindInvalidURL is reserved for a stricter URL parse; no constructor
	// reports it yet.
	KindInvalidURL
)

func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindTooShort:
		return "too_short"
	case KindTooLong:
		return "too_long"
	case KindInvalidEdgeCharacters:
		return "invalid_edge_characters"
	case KindInvalidCharacters:
		return "invalid_characters"
	case KindInvalidFormat:
		return "invalid_format"
	case KindInvalidScheme:
		return "invalid_scheme"
	case KindInvalidExtension:
		return "invalid_extension"
	case KindInvalidURL:
		return "invalid_url"
	default:
		return "unknown"
	}
}

// ValidationError reports which rule rejected a value. Limit carries the
// bound for TooShort and TooLong and is zero otherwise.
type ValidationError struct {
	Field Field
	Kind  Kind
	Limit int
}

func (e *ValidationError) Error() string {
	subject := e.Field.label()
	switch e.Kind {
	case KindEmpty:
		return fmt.Sprintf("%s cannot be empty", subject)
	case KindTooShort:
		return fmt.Sprintf("%s is too short (minimum %d characters)", subject, e.Limit)
	case KindTooLong:
		return fmt.Sprintf("%s is too long (maximum %d characters)", subject, e.Limit)
	case KindInvalidEdgeCharacters:
		return fmt.Sprintf("%s cannot start or end with a special character", subject)
	case KindInvalidCharacters:
		return fmt.Sprintf("%s contains invalid characters (%s)", subject, e.Field.allowed())
	case KindInvalidFormat:
		return "invalid email format (e.g., user@example.com)"
	case KindInvalidScheme:
		return "URL must start with http:// or https://"
	case KindInvalidExtension:
		return "URL must end with a valid image extension (.jpg, .jpeg, .png, .gif)"
	case KindInvalidURL:
		return "invalid URL format"
	default:
		return fmt.Sprintf("%s is invalid", subject)
	}
}

// Is matches another *ValidationError on Field and Kind, treating a zero
// Field in target as a wildcard, so errors.Is(err, ErrTooShort) works for
// every field.
func (e *ValidationError) Is(target error) bool {
	t, ok := target.(*ValidationError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && (t.Field == "" || t.Field == e.Field)
}

// Field-agnostic targets for errors.Is.
var (
	ErrEmpty                 = &ValidationError{Kind: KindEmpty}
	ErrTooShort              = &ValidationError{Kind: KindTooShort}
	ErrTooLong               = &ValidationError{Kind: KindTooLong}
	ErrInvalidEdgeCharacters = &ValidationError{Kind: KindInvalidEdgeCharacters}
	ErrInvalidCharacters     = &ValidationError{Kind: KindInvalidCharacters}
	ErrInvalidFormat         = &ValidationError{Kind: KindInvalidFormat}
	ErrInvalidScheme         = &ValidationError{Kind: KindInvalidScheme}
	ErrInvalidExtension      = &ValidationError{Kind: KindInvalidExtension}
	ErrInvalidURL            = &ValidationError{Kind: KindInvalidURL}
)

// KindOf extracts the Kind from err, or 0 when err is not a ValidationError.
func KindOf(err error) Kind {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Kind
	}
	return 0
}

func (f Field) label() string {
	switch f {
	case FieldEmail:
		return "email"
	case FieldFirstName:
		return "first name"
	case FieldLastName:
		return "last name"
	case FieldBio:
		return "bio"
	case FieldImageURL:
		return "URL"
	default:
		return "value"
	}
}

func (f Field) allowed() string {
	if f == FieldBio {
		return "only letters, numbers, whitespace, dots, underscores and hyphens are allowed"
	}
	return "only letters, whitespace and hyphens are allowed"
}
