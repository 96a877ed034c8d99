package profile

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"profiles/internal/profile/models"
	"profiles/internal/profile/ports"
	id "profiles/pkg/domain"
	"profiles/pkg/platform/sentinel"
)

// uniqueViolation is the PostgreSQL SQLSTATE for a duplicate key.
const uniqueViolation = pq.ErrorCode("23505")

// PostgresStore persists profiles in the profiles table.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed profile store.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Save(ctx context.Context, p *models.Profile) error {
	r := toRecord(p)
	query := `
		INSERT INTO profiles (id, email, first_name, last_name, bio, profile_image_url)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE SET
			email = EXCLUDED.email,
			first_name = EXCLUDED.first_name,
			last_name = EXCLUDED.last_name,
			bio = EXCLUDED.bio,
			profile_image_url = EXCLUDED.profile_image_url,
			updated_at = now()
	`
	_, err := s.db.ExecContext(ctx, query, p.ID().UUID(), r.Email,
		nullable(r.FirstName), nullable(r.LastName), nullable(r.Bio), nullable(r.ProfileImageURL))
	if err != nil {
		return ports.DatabaseError(fmt.Errorf("save profile: %w", err))
	}
	return nil
}

// CreateIfAbsent relies on the primary key to reject a second insert.
func (s *PostgresStore) CreateIfAbsent(ctx context.Context, p *models.Profile) error {
	r := toRecord(p)
	query := `
		INSERT INTO profiles (id, email, first_name, last_name, bio, profile_image_url)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := s.db.ExecContext(ctx, query, p.ID().UUID(), r.Email,
		nullable(r.FirstName), nullable(r.LastName), nullable(r.Bio), nullable(r.ProfileImageURL))
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return ports.DatabaseError(fmt.Errorf("create profile %s: %w", p.ID(), sentinel.ErrConflict))
		}
		return ports.DatabaseError(fmt.Errorf("create profile: %w", err))
	}
	return nil
}

func (s *PostgresStore) GetProfileByID(ctx context.Context, profileID id.ProfileID) (*models.Profile, error) {
	var (
		rawID                              string
		email                              string
		firstName, lastName, bio, imageURL sql.NullString
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT id, email, first_name, last_name, bio, profile_image_url
		FROM profiles WHERE id = $1
	`, profileID.UUID()).Scan(&rawID, &email, &firstName, &lastName, &bio, &imageURL)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, ports.DatabaseError(fmt.Errorf("find profile by id: %w", err))
	}

	p, err := record{
		ID:              rawID,
		Email:           email,
		FirstName:       firstName.String,
		LastName:        lastName.String,
		Bio:             bio.String,
		ProfileImageURL: imageURL.String,
	}.toProfile()
	if err != nil {
		return nil, ports.UnknownError(err)
	}
	return p, nil
}
