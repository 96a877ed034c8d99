package models

import (
	"net/mail"
	"strings"
	"unicode/utf8"

	dErrors "profiles/pkg/domain-errors"
	"profiles/pkg/platform/validation"
)

// CreateProfileRequest is the untrusted input of the create-profile use case.
type CreateProfileRequest struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Normalize trims and lowercases both fields. Safe to call more than once.
func (r *CreateProfileRequest) Normalize() {
	if r == nil {
		return
	}
	r.ID = strings.ToLower(strings.TrimSpace(r.ID))
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
}

// Follows validation order: Size -> Required -> Syntax.
// Lengths count characters. The email syntax check is coarser than the
// domain Email rules and runs independently of them.
func (r *CreateProfileRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request is required")
	}

	idLen := utf8.RuneCountInString(r.ID)
	emailLen := utf8.RuneCountInString(r.Email)

	if idLen > validation.MaxRequestIDLength {
		return dErrors.Newf(dErrors.CodeValidation, "id must be %d characters or less", validation.MaxRequestIDLength)
	}
	if emailLen > validation.MaxRequestEmailLength {
		return dErrors.Newf(dErrors.CodeValidation, "email must be %d characters or less", validation.MaxRequestEmailLength)
	}

	if r.ID == "" {
		return dErrors.New(dErrors.CodeValidation, "id is required")
	}
	if r.Email == "" {
		return dErrors.New(dErrors.CodeValidation, "email is required")
	}

	if idLen < validation.MinRequestIDLength {
		return dErrors.Newf(dErrors.CodeValidation, "id must be at least %d characters", validation.MinRequestIDLength)
	}
	if emailLen < validation.MinRequestEmailLength {
		return dErrors.Newf(dErrors.CodeValidation, "email must be at least %d characters", validation.MinRequestEmailLength)
	}

	if !isBareAddress(r.Email) {
		return dErrors.New(dErrors.CodeValidation, "email must be a valid address")
	}

	return nil
}

// isBareAddress accepts "local@domain" only, not "Name <local@domain>".
func isBareAddress(s string) bool {
	addr, err := mail.ParseAddress(s)
	if err != nil {
		return false
	}
	return addr.Name == "" && addr.Address == s
}
