package ports

import (
	"context"
	"time"

	"profiles/internal/profile/models"
)

// ProfileCreated is emitted after a profile is stored.
type ProfileCreated struct {
	ProfileID  string    `json:"profile_id"`
	Email      string    `json:"email"`
	OccurredAt time.Time `json:"occurred_at"`
}

// NewProfileCreated builds the event for p.
func NewProfileCreated(p *models.Profile, at time.Time) ProfileCreated {
	return ProfileCreated{
		ProfileID:  p.ID().String(),
		Email:      p.Email().String(),
		OccurredAt: at.UTC(),
	}
}

// EventPublisher delivers profile events. Delivery is best effort from
// the caller's point of view.
type EventPublisher interface {
	PublishProfileCreated(ctx context.Context, event ProfileCreated) error
}
