// Package profile holds the Profile repository implementations.
//
// Every store keeps the plain string form of each value object and parses it
// back on read. A stored value that no longer parses is reported as an
// Unknown repository error rather than silently dropped.
package profile

import (
	"database/sql"
	"fmt"

	"profiles/internal/profile/domain/shared"
	"profiles/internal/profile/models"
	"profiles/internal/profile/ports"
	id "profiles/pkg/domain"
)

// record is the storage shape of a Profile. Empty optional fields are absent.
type record struct {
	ID              string `json:"id"`
	Email           string `json:"email"`
	FirstName       string `json:"first_name,omitempty"`
	LastName        string `json:"last_name,omitempty"`
	Bio             string `json:"bio,omitempty"`
	ProfileImageURL string `json:"profile_image_url,omitempty"`
}

func toRecord(p *models.Profile) record {
	r := record{ID: p.ID().String(), Email: p.Email().String()}
	if v, ok := p.FirstName(); ok {
		r.FirstName = v.String()
	}
	if v, ok := p.LastName(); ok {
		r.LastName = v.String()
	}
	if v, ok := p.Bio(); ok {
		r.Bio = v.String()
	}
	if v, ok := p.ProfileImageURL(); ok {
		r.ProfileImageURL = v.String()
	}
	return r
}

func (r record) toProfile() (*models.Profile, error) {
	profileID, err := id.ParseProfileID(r.ID)
	if err != nil {
		return nil, fmt.Errorf("decode id: %w", err)
	}
	email, err := shared.NewEmail(r.Email)
	if err != nil {
		return nil, fmt.Errorf("decode email: %w", err)
	}

	var opts []models.ProfileOption
	if r.FirstName != "" {
		v, err := shared.NewFirstName(r.FirstName)
		if err != nil {
			return nil, fmt.Errorf("decode first name: %w", err)
		}
		opts = append(opts, models.WithFirstName(v))
	}
	if r.LastName != "" {
		v, err := shared.NewLastName(r.LastName)
		if err != nil {
			return nil, fmt.Errorf("decode last name: %w", err)
		}
		opts = append(opts, models.WithLastName(v))
	}
	if r.Bio != "" {
		v, err := shared.NewBio(r.Bio)
		if err != nil {
			return nil, fmt.Errorf("decode bio: %w", err)
		}
		opts = append(opts, models.WithBio(v))
	}
	if r.ProfileImageURL != "" {
		v, err := shared.NewImageURL(r.ProfileImageURL)
		if err != nil {
			return nil, fmt.Errorf("decode profile image url: %w", err)
		}
		opts = append(opts, models.WithProfileImageURL(v))
	}
	return models.NewProfile(profileID, email, opts...), nil
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

var (
	_ ports.Repository       = (*InMemoryStore)(nil)
	_ ports.ConditionalSaver = (*InMemoryStore)(nil)
	_ ports.Repository       = (*PostgresStore)(nil)
	_ ports.ConditionalSaver = (*PostgresStore)(nil)
	_ ports.Repository       = (*RedisStore)(nil)
	_ ports.ConditionalSaver = (*RedisStore)(nil)
)
