package models_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"profiles/internal/profile/domain/shared"
	"profiles/internal/profile/models"
	dErrors "profiles/pkg/domain-errors"
)

func TestProfileErrorMessages(t *testing.T) {
	cause := errors.New("boom")
	tests := []struct {
		name string
		err  *models.ProfileError
		want string
		code dErrors.Code
	}{
		{"already exists", models.NewAlreadyExists("abc"), "Profile with id abc already exists", dErrors.CodeConflict},
		{"invalid data", models.NewInvalidData(cause), "Invalid profile data: boom", dErrors.CodeValidation},
		{"not found", models.NewNotFound("abc"), "Profile not found with id: abc", dErrors.CodeNotFound},
		{"unknown", models.NewUnknown(cause), "Unknown error: boom", dErrors.CodeInternal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
			assert.Equal(t, tt.code, tt.err.Code())
		})
	}
}

func TestProfileErrorKeepsSource(t *testing.T) {
	_, vErr := shared.NewBio("short")
	require.Error(t, vErr)

	err := fmt.Errorf("create: %w", models.NewInvalidData(vErr))

	assert.ErrorIs(t, err, models.ErrProfileInvalidData)
	assert.NotErrorIs(t, err, models.ErrProfileAlreadyExists)
	assert.Equal(t, models.ProfileInvalidData, models.KindOf(err))

	var ve *shared.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, shared.KindTooShort, ve.Kind)
	assert.Equal(t, "Invalid profile data: bio is too short (minimum 10 characters)", models.NewInvalidData(vErr).Error())
}

func TestKindOfForeignError(t *testing.T) {
	assert.Equal(t, models.ProfileErrorKind(0), models.KindOf(errors.New("x")))
	assert.Equal(t, "unknown", models.ProfileErrorKind(0).String())
	assert.Equal(t, "already_exists", models.ProfileAlreadyExists.String())
}
