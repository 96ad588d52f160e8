package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

const (
	SubjectAlgebra      = "algebra"
	SubjectGeometry     = "geometry"
	SubjectCalculus     = "calculus"
	SubjectStatistics   = "statistics"
	SubjectTrigonometry = "trigonometry"
	SubjectArithmetic   = "arithmetic"
)

func ValidDifficulty(v string) bool {
	switch v {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

func ValidSubject(v string) bool {
	switch v {
	case SubjectAlgebra, SubjectGeometry, SubjectCalculus,
		SubjectStatistics, SubjectTrigonometry, SubjectArithmetic:
		return true
	}
	return false
}

type Exercise struct {
	ID            uuid.UUID `db:"id" json:"id"`
	Question      string    `db:"question" json:"question"`
	Options       []string  `db:"options" json:"options"`
	CorrectAnswer string    `db:"correct_answer" json:"correct_answer"`
	Explanation   *string   `db:"explanation" json:"explanation"`
	Difficulty    string    `db:"difficulty" json:"difficulty"`
	Subject       string    `db:"subject" json:"subject"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
}

type CreateExerciseRequest struct {
	Question      string   `json:"question" validate:"required"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer" validate:"required"`
	Explanation   *string  `json:"explanation"`
	Difficulty    string   `json:"difficulty" validate:"required,oneof=easy medium hard"`
	Subject       string   `json:"subject" validate:"required,oneof=algebra geometry calculus statistics trigonometry arithmetic"`
}
