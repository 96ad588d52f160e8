package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewStats(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		correct  int
		accuracy int
	}{
		{"zero attempts", 0, 0, 0},
		{"two of three", 3, 2, 67},
		{"all correct", 4, 4, 100},
		{"none correct", 5, 0, 0},
		{"one of eight rounds half up", 8, 1, 13},
		{"two of six", 6, 2, 33},
		{"one of two", 2, 1, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stats := NewStats(tt.total, tt.correct)
			assert.Equal(t, tt.total, stats.Total)
			assert.Equal(t, tt.correct, stats.Correct)
			assert.Equal(t, tt.accuracy, stats.Accuracy)
		})
	}
}

func TestNewStats_AccuracyBounds(t *testing.T) {
	for total := 0; total <= 20; total++ {
		for correct := 0; correct <= total; correct++ {
			stats := NewStats(total, correct)
			assert.GreaterOrEqual(t, stats.Accuracy, 0)
			assert.LessOrEqual(t, stats.Accuracy, 100)
		}
	}
}

func TestComputeStats(t *testing.T) {
	attempts := []Attempt{
		{IsCorrect: true},
		{IsCorrect: false},
		{IsCorrect: true},
	}

	stats := ComputeStats(attempts)
	assert.Equal(t, Stats{Total: 3, Correct: 2, Accuracy: 67}, stats)
}

func TestComputeStats_Empty(t *testing.T) {
	assert.Equal(t, Stats{}, ComputeStats(nil))
	assert.Equal(t, Stats{}, ComputeStats([]Attempt{}))
}

// The progress endpoint aggregates over the latest 100 attempts while the
// stats endpoint covers full history; past 100 attempts the two views are
// allowed to disagree, and this pins that divergence down.
func TestComputeStats_CappedWindowDiverges(t *testing.T) {
	var history []Attempt
	for i := 0; i < 100; i++ {
		history = append(history, Attempt{IsCorrect: true})
	}
	for i := 0; i < 50; i++ {
		history = append(history, Attempt{IsCorrect: false})
	}

	capped := ComputeStats(history[:100])
	full := ComputeStats(history)

	assert.Equal(t, 100, capped.Accuracy)
	assert.Equal(t, 67, full.Accuracy)
	assert.NotEqual(t, capped.Accuracy, full.Accuracy)
}

func TestComputeStats_MatchesFullHistoryUnderCap(t *testing.T) {
	var history []Attempt
	for i := 0; i < 40; i++ {
		history = append(history, Attempt{IsCorrect: i%2 == 0})
	}

	assert.Equal(t, NewStats(40, 20), ComputeStats(history))
}
