package srs

import (
	"fmt"
	"math"
	"time"
)

// Difficulty is the qualitative outcome of a flashcard review.
type Difficulty string

const (
	Again Difficulty = "again"
	Hard  Difficulty = "hard"
	Good  Difficulty = "good"
	Easy  Difficulty = "easy"
)

// MinEaseFactor is the lower bound the ease factor can never cross.
const MinEaseFactor = 1.3

// ParseDifficulty validates a raw difficulty label.
func ParseDifficulty(s string) (Difficulty, error) {
	switch Difficulty(s) {
	case Again, Hard, Good, Easy:
		return Difficulty(s), nil
	}
	return "", fmt.Errorf("unknown difficulty %q", s)
}

// Quality maps a difficulty to its SM-2 quality score.
// The mapping is closed; callers must validate input first.
func (d Difficulty) Quality() int {
	switch d {
	case Again:
		return 0
	case Hard:
		return 2
	case Good:
		return 3
	case Easy:
		return 4
	}
	panic(fmt.Sprintf("srs: invalid difficulty %q", string(d)))
}

// Correct reports whether the outcome counts as a successful recall.
func (d Difficulty) Correct() bool {
	return d == Good || d == Easy
}

// State holds a flashcard's scheduling fields.
type State struct {
	EaseFactor   float64
	IntervalDays int
	Repetitions  int
}

// Schedule applies the SM-2 variant to a card state and returns the next
// state plus the review timestamp's due date.
//
// Failing outcomes (quality < 3) reset repetitions and the interval to one
// day. Only "hard" carries a direct ease penalty; "again" leaves the ease
// factor untouched here, which is intentional: the again path already
// restarts the interval ladder from scratch. Successful outcomes apply the
// standard SM-2 ease update and the 1 / 6 / round(interval * ease) ladder,
// with "easy" adding a further 1.3x interval bonus. The 1.3 ease floor is
// enforced after every branch.
//
// The due date adds calendar days rather than fixed 24h durations, so
// intervals stay aligned to local-day boundaries across DST changes.
func Schedule(s State, quality int, now time.Time) (State, time.Time) {
	next := s

	if quality < 3 {
		next.Repetitions = 0
		next.IntervalDays = 1
		if quality == 2 {
			next.EaseFactor -= 0.15
		}
	} else {
		q := float64(quality)
		next.EaseFactor += 0.1 - (5-q)*(0.08+(5-q)*0.02)
		next.Repetitions++
		switch next.Repetitions {
		case 1:
			next.IntervalDays = 1
		case 2:
			next.IntervalDays = 6
		default:
			next.IntervalDays = int(math.Round(float64(s.IntervalDays) * next.EaseFactor))
		}
		if quality == 4 {
			next.IntervalDays = int(math.Round(float64(next.IntervalDays) * 1.3))
		}
	}

	if next.EaseFactor < MinEaseFactor {
		next.EaseFactor = MinEaseFactor
	}

	return next, now.AddDate(0, 0, next.IntervalDays)
}
