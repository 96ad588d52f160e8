package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"provalab/internal/domain"
	"provalab/internal/utils"
)

const uniqueViolation = "23505"

func (s *Storage) CreateUser(ctx context.Context, email, passwordHash string) (*domain.User, error) {
	const query = `
        INSERT INTO users (email, password_hash)
        VALUES ($1, $2)
        RETURNING id, email, created_at;
    `

	var user domain.User
	err := s.pool.QueryRow(ctx, query, email, passwordHash).Scan(
		&user.ID, &user.Email, &user.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, utils.ErrDuplicateEmail
		}
		return nil, err
	}

	return &user, nil
}

// GetUserByEmail includes the password hash; it backs credential checks only.
func (s *Storage) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	const query = `
        SELECT id, email, password_hash, created_at
        FROM users WHERE email = $1;
    `

	var user domain.User
	err := s.pool.QueryRow(ctx, query, email).Scan(
		&user.ID, &user.Email, &user.PasswordHash, &user.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, utils.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

func (s *Storage) GetUserByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	const query = `
        SELECT id, email, created_at
        FROM users WHERE id = $1;
    `

	var user domain.User
	err := s.pool.QueryRow(ctx, query, id).Scan(
		&user.ID, &user.Email, &user.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, utils.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}
