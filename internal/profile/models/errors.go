package models

import (
	"errors"
	"fmt"

	dErrors "profiles/pkg/domain-errors"
)

// ProfileErrorKind is the closed set of create-profile failures.
type ProfileErrorKind int

const (
	ProfileAlreadyExists ProfileErrorKind = iota + 1
	ProfileInvalidData
	ProfileNotFound
	ProfileUnknown
)

func (k ProfileErrorKind) String() string {
	switch k {
	case ProfileAlreadyExists:
		return "already_exists"
	case ProfileInvalidData:
		return "invalid_data"
	case ProfileNotFound:
		return "not_found"
	default:
		return "unknown"
	}
}

// ProfileError is returned by the profile use cases. Detail is the
// human-readable payload; Err keeps the lower-tier error for errors.As.
type ProfileError struct {
	Kind   ProfileErrorKind
	Detail string
	Err    error
}

func (e *ProfileError) Error() string {
	switch e.Kind {
	case ProfileAlreadyExists:
		return fmt.Sprintf("Profile with id %s already exists", e.Detail)
	case ProfileInvalidData:
		return fmt.Sprintf("Invalid profile data: %s", e.Detail)
	case ProfileNotFound:
		return fmt.Sprintf("Profile not found with id: %s", e.Detail)
	default:
		return fmt.Sprintf("Unknown error: %s", e.Detail)
	}
}

func (e *ProfileError) Unwrap() error {
	return e.Err
}

// Is matches any *ProfileError of the same kind, so the Err* values below
// work as errors.Is targets.
func (e *ProfileError) Is(target error) bool {
	t, ok := target.(*ProfileError)
	return ok && t.Kind == e.Kind
}

// Code maps the kind to a transport-neutral error code.
func (e *ProfileError) Code() dErrors.Code {
	switch e.Kind {
	case ProfileAlreadyExists:
		return dErrors.CodeConflict
	case ProfileInvalidData:
		return dErrors.CodeValidation
	case ProfileNotFound:
		return dErrors.CodeNotFound
	default:
		return dErrors.CodeInternal
	}
}

var (
	ErrProfileAlreadyExists = &ProfileError{Kind: ProfileAlreadyExists}
	ErrProfileInvalidData   = &ProfileError{Kind: ProfileInvalidData}
	ErrProfileNotFound      = &ProfileError{Kind: ProfileNotFound}
	ErrProfileUnknown       = &ProfileError{Kind: ProfileUnknown}
)

func NewAlreadyExists(profileID string) *ProfileError {
	return &ProfileError{Kind: ProfileAlreadyExists, Detail: profileID}
}

// NewInvalidData flattens err into an InvalidData error carrying its text.
func NewInvalidData(err error) *ProfileError {
	return &ProfileError{Kind: ProfileInvalidData, Detail: err.Error(), Err: err}
}

func NewNotFound(profileID string) *ProfileError {
	return &ProfileError{Kind: ProfileNotFound, Detail: profileID}
}

func NewUnknown(err error) *ProfileError {
	return &ProfileError{Kind: ProfileUnknown, Detail: err.Error(), Err: err}
}

// KindOf returns the ProfileErrorKind in err's chain, or 0.
func KindOf(err error) ProfileErrorKind {
	var pe *ProfileError
	if errors.As(err, &pe) {
		return pe.Kind
	}
	return 0
}
