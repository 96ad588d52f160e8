package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"provalab/internal/domain"
	"provalab/internal/utils"
)

const foreignKeyViolation = "23503"

// CreateAttempt appends to the ledger; rows are never updated afterwards.
// The creation timestamp comes from the database clock.
func (s *Storage) CreateAttempt(ctx context.Context, userID uuid.UUID, req *domain.CreateAttemptRequest) (*domain.Attempt, error) {
	const query = `
        INSERT INTO exercise_attempts (user_id, exercise_id, user_answer, is_correct, time_spent_seconds)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, user_id, exercise_id, user_answer, is_correct, time_spent_seconds, created_at;
    `

	var a domain.Attempt
	err := s.pool.QueryRow(ctx, query,
		userID, req.ExerciseID, req.UserAnswer, *req.IsCorrect, req.TimeSpentSeconds,
	).Scan(
		&a.ID, &a.UserID, &a.ExerciseID, &a.UserAnswer,
		&a.IsCorrect, &a.TimeSpentSeconds, &a.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation {
			return nil, utils.ErrNotFound
		}
		return nil, err
	}

	exercise, err := s.GetExerciseByID(ctx, a.ExerciseID)
	if err != nil {
		return nil, err
	}
	a.Exercise = exercise

	return &a, nil
}

// ListAttemptsForUser returns at most limit attempts, newest first, each
// joined with its exercise. Always scoped to the owning user.
func (s *Storage) ListAttemptsForUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Attempt, error) {
	const query = `
        SELECT a.id, a.user_id, a.exercise_id, a.user_answer, a.is_correct, a.time_spent_seconds, a.created_at,
               e.id, e.question, e.options, e.correct_answer, e.explanation, e.difficulty, e.subject, e.created_at
        FROM exercise_attempts a
        JOIN exercises e ON a.exercise_id = e.id
        WHERE a.user_id = $1
        ORDER BY a.created_at DESC
        LIMIT $2;
    `

	rows, err := s.pool.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	attempts := []domain.Attempt{}
	for rows.Next() {
		var a domain.Attempt
		var e domain.Exercise
		err := rows.Scan(
			&a.ID, &a.UserID, &a.ExerciseID, &a.UserAnswer,
			&a.IsCorrect, &a.TimeSpentSeconds, &a.CreatedAt,
			&e.ID, &e.Question, &e.Options, &e.CorrectAnswer,
			&e.Explanation, &e.Difficulty, &e.Subject, &e.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		a.Exercise = &e
		attempts = append(attempts, a)
	}

	return attempts, rows.Err()
}

// GetAttemptStats aggregates over the user's full history, not a capped window.
func (s *Storage) GetAttemptStats(ctx context.Context, userID uuid.UUID) (domain.Stats, error) {
	const query = `
        SELECT COUNT(*), COUNT(*) FILTER (WHERE is_correct)
        FROM exercise_attempts
        WHERE user_id = $1;
    `

	var total, correct int
	err := s.pool.QueryRow(ctx, query, userID).Scan(&total, &correct)
	if err != nil {
		return domain.Stats{}, err
	}

	return domain.NewStats(total, correct), nil
}
