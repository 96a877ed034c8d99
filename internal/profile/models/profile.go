package models

import (
	"profiles/internal/profile/domain/shared"
	id "profiles/pkg/domain"
)

// Profile is the aggregate root for a user profile.
//
// Invariants:
//   - ID and Email are always set
//   - Optional fields hold either a validated value object or nothing
//   - Immutable after construction; the aggregate performs no validation
//     of its own because every field is already a parsed value object
type Profile struct {
	id              id.ProfileID
	email           shared.Email
	firstName       shared.FirstName
	lastName        shared.LastName
	bio             shared.Bio
	profileImageURL shared.ImageURL
}

// ProfileOption sets an optional field during construction.
type ProfileOption func(*Profile)

// WithFirstName sets the optional first name.
func WithFirstName(v shared.FirstName) ProfileOption {
	return func(p *Profile) { p.firstName = v }
}

// WithLastName sets the optional last name.
func WithLastName(v shared.LastName) ProfileOption {
	return func(p *Profile) { p.lastName = v }
}

// WithBio sets the optional bio.
func WithBio(v shared.Bio) ProfileOption {
	return func(p *Profile) { p.bio = v }
}

// WithProfileImageURL sets the optional profile picture URL.
func WithProfileImageURL(v shared.ImageURL) ProfileOption {
	return func(p *Profile) { p.profileImageURL = v }
}

// NewProfile assembles a Profile from already-validated parts.
func NewProfile(profileID id.ProfileID, email shared.Email, opts ...ProfileOption) *Profile {
	p := &Profile{id: profileID, email: email}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Profile) ID() id.ProfileID {
	return p.id
}

func (p *Profile) Email() shared.Email {
	return p.email
}

// FirstName returns the first name and whether it is set.
func (p *Profile) FirstName() (shared.FirstName, bool) {
	return p.firstName, !p.firstName.IsZero()
}

// LastName returns the last name and whether it is set.
func (p *Profile) LastName() (shared.LastName, bool) {
	return p.lastName, !p.lastName.IsZero()
}

// Bio returns the bio and whether it is set.
func (p *Profile) Bio() (shared.Bio, bool) {
	return p.bio, !p.bio.IsZero()
}

// ProfileImageURL returns the picture URL and whether it is set.
func (p *Profile) ProfileImageURL() (shared.ImageURL, bool) {
	return p.profileImageURL, !p.profileImageURL.IsZero()
}

// HasOptionalFields reports whether any optional field is set.
func (p *Profile) HasOptionalFields() bool {
	return !p.firstName.IsZero() || !p.lastName.IsZero() || !p.bio.IsZero() || !p.profileImageURL.IsZero()
}

// Equal compares two profiles field by field.
func (p *Profile) Equal(other *Profile) bool {
	if p == nil || other == nil {
		return p == other
	}
	return *p == *other
}
