package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidDifficulty(t *testing.T) {
	for _, v := range []string{"easy", "medium", "hard"} {
		assert.True(t, ValidDifficulty(v), v)
	}

	for _, v := range []string{"", "EASY", "impossible", "medium "} {
		assert.False(t, ValidDifficulty(v), v)
	}
}

func TestValidSubject(t *testing.T) {
	for _, v := range []string{"algebra", "geometry", "calculus", "statistics", "trigonometry", "arithmetic"} {
		assert.True(t, ValidSubject(v), v)
	}

	for _, v := range []string{"", "physics", "Algebra", "algebra "} {
		assert.False(t, ValidSubject(v), v)
	}
}
