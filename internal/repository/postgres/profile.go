package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"provalab/internal/domain"
	"provalab/internal/utils"
)

func (s *Storage) CreateProfile(ctx context.Context, userID uuid.UUID, fullName *string) (*domain.Profile, error) {
	const query = `
        INSERT INTO profiles (user_id, full_name)
        VALUES ($1, $2)
        RETURNING id, user_id, full_name, avatar_url, created_at, updated_at;
    `

	var profile domain.Profile
	err := s.pool.QueryRow(ctx, query, userID, fullName).Scan(
		&profile.ID, &profile.UserID, &profile.FullName, &profile.AvatarURL,
		&profile.CreatedAt, &profile.UpdatedAt,
	)

	return &profile, err
}

func (s *Storage) GetProfileByUserID(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	const query = `
        SELECT id, user_id, full_name, avatar_url, created_at, updated_at
        FROM profiles WHERE user_id = $1;
    `

	var profile domain.Profile
	err := s.pool.QueryRow(ctx, query, userID).Scan(
		&profile.ID, &profile.UserID, &profile.FullName, &profile.AvatarURL,
		&profile.CreatedAt, &profile.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, utils.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &profile, nil
}

// UpsertProfile creates the row lazily on first update. Nil request fields
// keep the stored value (COALESCE against the existing row).
func (s *Storage) UpsertProfile(ctx context.Context, userID uuid.UUID, req *domain.ProfileUpdateRequest) (*domain.Profile, error) {
	const query = `
        INSERT INTO profiles (user_id, full_name, avatar_url)
        VALUES ($1, $2, $3)
        ON CONFLICT (user_id) DO UPDATE
        SET full_name = COALESCE(EXCLUDED.full_name, profiles.full_name),
            avatar_url = COALESCE(EXCLUDED.avatar_url, profiles.avatar_url),
            updated_at = NOW()
        RETURNING id, user_id, full_name, avatar_url, created_at, updated_at;
    `

	var profile domain.Profile
	err := s.pool.QueryRow(ctx, query, userID, req.FullName, req.AvatarURL).Scan(
		&profile.ID, &profile.UserID, &profile.FullName, &profile.AvatarURL,
		&profile.CreatedAt, &profile.UpdatedAt,
	)

	return &profile, err
}
