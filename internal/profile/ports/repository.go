package ports

import (
	"context"

	"profiles/internal/profile/models"
	id "profiles/pkg/domain"
)

// Repository persists Profile aggregates.
//
// Implementations return *RepositoryError for every failure.
type Repository interface {
	// Save stores p, replacing any profile with the same ID.
	Save(ctx context.Context, p *models.Profile) error

	// GetProfileByID returns (nil, nil) when no profile has the ID.
	GetProfileByID(ctx context.Context, profileID id.ProfileID) (*models.Profile, error)
}

// ConditionalSaver is implemented by repositories that can insert without
// overwriting. CreateIfAbsent fails with an error wrapping sentinel.ErrConflict
// when the ID is taken; the check and the write are atomic.
type ConditionalSaver interface {
	CreateIfAbsent(ctx context.Context, p *models.Profile) error
}
