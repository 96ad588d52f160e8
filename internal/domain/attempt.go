package domain

import (
	"math"
	"time"

	"github.com/google/uuid"
)

type Attempt struct {
	ID               uuid.UUID `db:"id" json:"id"`
	UserID           uuid.UUID `db:"user_id" json:"user_id"`
	ExerciseID       uuid.UUID `db:"exercise_id" json:"exercise_id"`
	UserAnswer       string    `db:"user_answer" json:"user_answer"`
	IsCorrect        bool      `db:"is_correct" json:"is_correct"`
	TimeSpentSeconds *int      `db:"time_spent_seconds" json:"time_spent_seconds"`
	CreatedAt        time.Time `db:"created_at" json:"created_at"`
	Exercise         *Exercise `json:"exercise,omitempty"`
}

// IsCorrect is a pointer so that an explicit false still passes "required".
// Correctness is caller-supplied and never recomputed server-side.
type CreateAttemptRequest struct {
	ExerciseID       uuid.UUID `json:"exercise_id" validate:"required"`
	UserAnswer       string    `json:"user_answer" validate:"required"`
	IsCorrect        *bool     `json:"is_correct" validate:"required"`
	TimeSpentSeconds *int      `json:"time_spent_seconds"`
}

type Stats struct {
	Total    int `json:"total"`
	Correct  int `json:"correct"`
	Accuracy int `json:"accuracy"`
}

type ProgressResponse struct {
	Attempts []Attempt `json:"attempts"`
	Stats    Stats     `json:"stats"`
}

// NewStats derives the accuracy percentage, rounded half-up.
// Zero attempts yields zero accuracy rather than a division error.
func NewStats(total, correct int) Stats {
	accuracy := 0
	if total > 0 {
		accuracy = int(math.Round(float64(correct) / float64(total) * 100))
	}
	return Stats{Total: total, Correct: correct, Accuracy: accuracy}
}

// ComputeStats aggregates over the given window of attempts.
func ComputeStats(attempts []Attempt) Stats {
	correct := 0
	for _, a := range attempts {
		if a.IsCorrect {
			correct++
		}
	}
	return NewStats(len(attempts), correct)
}
