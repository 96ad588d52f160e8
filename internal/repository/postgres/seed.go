package postgres

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"log"

	"provalab/internal/domain"
)

//go:embed exercise_bank.json
var exerciseBank []byte

// SeedExercises loads the embedded exercise bank on first boot. It is a
// no-op when the exercises table already has rows.
func (s *Storage) SeedExercises(ctx context.Context) error {
	var count int
	err := s.pool.QueryRow(ctx, "SELECT COUNT(*) FROM exercises").Scan(&count)
	if err != nil {
		return fmt.Errorf("failed to check exercises: %w", err)
	}

	if count > 0 {
		return nil
	}

	var exercises []domain.CreateExerciseRequest
	if err := json.Unmarshal(exerciseBank, &exercises); err != nil {
		return fmt.Errorf("failed to parse exercise bank: %w", err)
	}

	for i := range exercises {
		if _, err := s.CreateExercise(ctx, &exercises[i]); err != nil {
			return fmt.Errorf("failed to seed exercise %q: %w", exercises[i].Question, err)
		}
	}

	log.Printf("seeded %d exercises", len(exercises))

	return nil
}
