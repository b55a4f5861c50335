package srs_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/studyflash/studyflash/internal/srs"
)

func TestParseDifficulty(t *testing.T) {
	for _, valid := range []string{"again", "hard", "good", "easy"} {
		d, err := srs.ParseDifficulty(valid)
		require.NoError(t, err)
		assert.Equal(t, valid, string(d))
	}

	for _, invalid := range []string{"", "AGAIN", "medium", "ok"} {
		_, err := srs.ParseDifficulty(invalid)
		assert.Error(t, err, "expected error for %q", invalid)
	}
}

func TestQualityMapping(t *testing.T) {
	assert.Equal(t, 0, srs.Again.Quality())
	assert.Equal(t, 2, srs.Hard.Quality())
	assert.Equal(t, 3, srs.Good.Quality())
	assert.Equal(t, 4, srs.Easy.Quality())
}

func TestSchedule_FirstGoodReview(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	state, next := srs.Schedule(srs.State{EaseFactor: 2.5, IntervalDays: 0, Repetitions: 0}, srs.Good.Quality(), now)

	assert.Equal(t, 1, state.Repetitions)
	assert.Equal(t, 1, state.IntervalDays)
	assert.Equal(t, now.AddDate(0, 0, 1), next)
}

func TestSchedule_SecondGoodReview(t *testing.T) {
	now := time.Now().UTC()
	state, next := srs.Schedule(srs.State{EaseFactor: 2.5, IntervalDays: 1, Repetitions: 1}, srs.Good.Quality(), now)

	assert.Equal(t, 2, state.Repetitions)
	assert.Equal(t, 6, state.IntervalDays)
	assert.Equal(t, now.AddDate(0, 0, 6), next)
}

func TestSchedule_ThirdGoodReviewMultipliesByUpdatedEase(t *testing.T) {
	now := time.Now().UTC()
	// good leaves the ease update at +0.1-(5-3)*(0.08+(5-3)*0.02) = -0.14
	state, _ := srs.Schedule(srs.State{EaseFactor: 2.5, IntervalDays: 6, Repetitions: 2}, srs.Good.Quality(), now)

	assert.Equal(t, 3, state.Repetitions)
	assert.InDelta(t, 2.36, state.EaseFactor, 1e-9)
	// round(6 * 2.36) = round(14.16) = 14
	assert.Equal(t, 14, state.IntervalDays)
}

func TestSchedule_EasyAppliesBonus(t *testing.T) {
	now := time.Now().UTC()
	// Concrete scenario: (2.5, 6, 2) reviewed easy.
	state, next := srs.Schedule(srs.State{EaseFactor: 2.5, IntervalDays: 6, Repetitions: 2}, srs.Easy.Quality(), now)

	assert.Equal(t, 3, state.Repetitions)
	assert.InDelta(t, 2.6, state.EaseFactor, 1e-9)
	// round(6 * 2.6) = 16, then round(16 * 1.3) = 21
	assert.Equal(t, 21, state.IntervalDays)
	assert.Equal(t, now.AddDate(0, 0, 21), next)
}

func TestSchedule_AgainResets(t *testing.T) {
	now := time.Now().UTC()
	state, next := srs.Schedule(srs.State{EaseFactor: 2.5, IntervalDays: 42, Repetitions: 9}, srs.Again.Quality(), now)

	assert.Equal(t, 0, state.Repetitions)
	assert.Equal(t, 1, state.IntervalDays)
	// again does not carry a direct ease penalty
	assert.InDelta(t, 2.5, state.EaseFactor, 1e-9)
	assert.Equal(t, now.AddDate(0, 0, 1), next)
}

func TestSchedule_HardResetsAndPenalizesEase(t *testing.T) {
	now := time.Now().UTC()
	state, _ := srs.Schedule(srs.State{EaseFactor: 2.5, IntervalDays: 42, Repetitions: 9}, srs.Hard.Quality(), now)

	assert.Equal(t, 0, state.Repetitions)
	assert.Equal(t, 1, state.IntervalDays)
	assert.InDelta(t, 2.35, state.EaseFactor, 1e-9)
}

func TestSchedule_EaseFloor(t *testing.T) {
	now := time.Now().UTC()

	// Hard from the floor stays at the floor.
	state, _ := srs.Schedule(srs.State{EaseFactor: 1.3, IntervalDays: 1, Repetitions: 1}, srs.Hard.Quality(), now)
	assert.Equal(t, srs.MinEaseFactor, state.EaseFactor)

	// Good also dips below 1.3 from a low starting ease (the SM-2 update
	// for quality 3 is -0.14) and must be clamped.
	state, _ = srs.Schedule(srs.State{EaseFactor: 1.35, IntervalDays: 6, Repetitions: 2}, srs.Good.Quality(), now)
	assert.Equal(t, srs.MinEaseFactor, state.EaseFactor)
}

func TestSchedule_EaseNeverBelowFloor(t *testing.T) {
	now := time.Now().UTC()
	for _, q := range []int{0, 2, 3, 4} {
		state := srs.State{EaseFactor: 1.3, IntervalDays: 1, Repetitions: 1}
		for i := 0; i < 20; i++ {
			state, _ = srs.Schedule(state, q, now)
			assert.GreaterOrEqual(t, state.EaseFactor, srs.MinEaseFactor, "quality %d iteration %d", q, i)
		}
	}
}

func TestSchedule_AgainThenHardFromFloor(t *testing.T) {
	now := time.Now().UTC()
	state := srs.State{EaseFactor: 1.3, IntervalDays: 1, Repetitions: 1}

	state, _ = srs.Schedule(state, srs.Again.Quality(), now)
	assert.GreaterOrEqual(t, state.EaseFactor, srs.MinEaseFactor)

	state, _ = srs.Schedule(state, srs.Hard.Quality(), now)
	assert.GreaterOrEqual(t, state.EaseFactor, srs.MinEaseFactor)
}

func TestSchedule_NextReviewMatchesInterval(t *testing.T) {
	now := time.Date(2026, 1, 15, 8, 30, 0, 0, time.UTC)
	tests := []struct {
		name    string
		state   srs.State
		quality int
	}{
		{"again", srs.State{EaseFactor: 2.5, IntervalDays: 10, Repetitions: 4}, 0},
		{"hard", srs.State{EaseFactor: 2.0, IntervalDays: 3, Repetitions: 2}, 2},
		{"good", srs.State{EaseFactor: 2.5, IntervalDays: 15, Repetitions: 3}, 3},
		{"easy", srs.State{EaseFactor: 2.2, IntervalDays: 20, Repetitions: 5}, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state, next := srs.Schedule(tt.state, tt.quality, now)
			assert.Equal(t, now.AddDate(0, 0, state.IntervalDays), next)
		})
	}
}

func TestDifficultyCorrect(t *testing.T) {
	assert.False(t, srs.Again.Correct())
	assert.False(t, srs.Hard.Correct())
	assert.True(t, srs.Good.Correct())
	assert.True(t, srs.Easy.Correct())
}
