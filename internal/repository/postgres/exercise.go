package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"provalab/internal/domain"
	"provalab/internal/utils"
)

// ListExercises returns the newest exercises first; empty subject or
// difficulty means "no filter".
func (s *Storage) ListExercises(ctx context.Context, subject, difficulty string, limit int) ([]domain.Exercise, error) {
	const query = `
        SELECT id, question, options, correct_answer, explanation, difficulty, subject, created_at
        FROM exercises
        WHERE ($1 = '' OR subject = $1)
          AND ($2 = '' OR difficulty = $2)
        ORDER BY created_at DESC
        LIMIT $3;
    `

	rows, err := s.pool.Query(ctx, query, subject, difficulty, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	exercises := []domain.Exercise{}
	for rows.Next() {
		var e domain.Exercise
		err := rows.Scan(
			&e.ID, &e.Question, &e.Options, &e.CorrectAnswer,
			&e.Explanation, &e.Difficulty, &e.Subject, &e.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		exercises = append(exercises, e)
	}

	return exercises, rows.Err()
}

func (s *Storage) GetExerciseByID(ctx context.Context, id uuid.UUID) (*domain.Exercise, error) {
	const query = `
        SELECT id, question, options, correct_answer, explanation, difficulty, subject, created_at
        FROM exercises WHERE id = $1;
    `

	var e domain.Exercise
	err := s.pool.QueryRow(ctx, query, id).Scan(
		&e.ID, &e.Question, &e.Options, &e.CorrectAnswer,
		&e.Explanation, &e.Difficulty, &e.Subject, &e.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, utils.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &e, nil
}

func (s *Storage) GetRandomExercise(ctx context.Context, subject, difficulty string) (*domain.Exercise, error) {
	const query = `
        SELECT id, question, options, correct_answer, explanation, difficulty, subject, created_at
        FROM exercises
        WHERE subject = $1 AND difficulty = $2
        ORDER BY random()
        LIMIT 1;
    `

	var e domain.Exercise
	err := s.pool.QueryRow(ctx, query, subject, difficulty).Scan(
		&e.ID, &e.Question, &e.Options, &e.CorrectAnswer,
		&e.Explanation, &e.Difficulty, &e.Subject, &e.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, utils.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &e, nil
}

func (s *Storage) CreateExercise(ctx context.Context, req *domain.CreateExerciseRequest) (*domain.Exercise, error) {
	const query = `
        INSERT INTO exercises (question, options, correct_answer, explanation, difficulty, subject)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, question, options, correct_answer, explanation, difficulty, subject, created_at;
    `

	var e domain.Exercise
	err := s.pool.QueryRow(ctx, query,
		req.Question, req.Options, req.CorrectAnswer, req.Explanation, req.Difficulty, req.Subject,
	).Scan(
		&e.ID, &e.Question, &e.Options, &e.CorrectAnswer,
		&e.Explanation, &e.Difficulty, &e.Subject, &e.CreatedAt,
	)

	return &e, err
}
