package ports

import (
	"errors"
	"fmt"
)

// RepositoryErrorKind classifies storage failures.
type RepositoryErrorKind int

const (
	RepositoryDatabase RepositoryErrorKind = iota + 1
	RepositoryNotFound
	RepositoryUnknown
)

// RepositoryError is the closed error set of Repository implementations.
// Err wraps the driver error or a sentinel so errors.Is keeps working.
type RepositoryError struct {
	Kind   RepositoryErrorKind
	Detail string
	Err    error
}

func (e *RepositoryError) Error() string {
	switch e.Kind {
	case RepositoryDatabase:
		return fmt.Sprintf("Database error: %s", e.Detail)
	case RepositoryNotFound:
		return fmt.Sprintf("Profile not found with id: %s", e.Detail)
	default:
		return fmt.Sprintf("Unknown error: %s", e.Detail)
	}
}

func (e *RepositoryError) Unwrap() error {
	return e.Err
}

// DatabaseError wraps a backend failure.
func DatabaseError(err error) *RepositoryError {
	return &RepositoryError{Kind: RepositoryDatabase, Detail: err.Error(), Err: err}
}

func NotFoundError(profileID string, err error) *RepositoryError {
	return &RepositoryError{Kind: RepositoryNotFound, Detail: profileID, Err: err}
}

// UnknownError wraps failures that are neither backend nor lookup errors,
// such as a stored row that no longer decodes into value objects.
func UnknownError(err error) *RepositoryError {
	return &RepositoryError{Kind: RepositoryUnknown, Detail: err.Error(), Err: err}
}

// RepositoryKindOf returns the kind in err's chain, or 0.
func RepositoryKindOf(err error) RepositoryErrorKind {
	var re *RepositoryError
	if errors.As(err, &re) {
		return re.Kind
	}
	return 0
}
