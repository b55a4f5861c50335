package services_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/studyflash/studyflash/internal/models"
	"github.com/studyflash/studyflash/internal/repository"
	"github.com/studyflash/studyflash/internal/repository/sqlite"
	"github.com/studyflash/studyflash/internal/services"
	"github.com/studyflash/studyflash/internal/srs"
	"github.com/studyflash/studyflash/internal/testutil"
)

type reviewFlowFixture struct {
	svc        services.ReviewService
	flashcards repository.FlashcardRepository
	reviews    repository.ReviewRepository
	sessions   repository.SessionRepository
	userID     int64
	materialID int64
}

func newReviewFlowFixture(t *testing.T) *reviewFlowFixture {
	t.Helper()

	database := testutil.NewTestDB(t)
	t.Cleanup(func() { testutil.MustClose(t, database) })

	flashcards := sqlite.NewFlashcardRepository(database.DB)
	materials := sqlite.NewMaterialRepository(database.DB)
	reviews := sqlite.NewReviewRepository(database.DB)
	sessions := sqlite.NewSessionRepository(database.DB)
	users := sqlite.NewUserRepository(database.DB)

	ctx := context.Background()
	user, err := users.Insert(ctx, "alice")
	require.NoError(t, err)

	materialID, err := materials.Insert(ctx, models.Material{UserID: user.ID, Title: "Chemistry"})
	require.NoError(t, err)

	return &reviewFlowFixture{
		svc:        services.NewReviewService(flashcards, materials, reviews, sessions, sqlite.NewAtomic(database.DB)),
		flashcards: flashcards,
		reviews:    reviews,
		sessions:   sessions,
		userID:     user.ID,
		materialID: materialID,
	}
}

func (f *reviewFlowFixture) newCard(t *testing.T) int64 {
	t.Helper()
	id, err := f.flashcards.Insert(context.Background(), models.Flashcard{
		MaterialID: f.materialID,
		Question:   "q",
		Answer:     "a",
		EaseFactor: 2.5,
	})
	require.NoError(t, err)
	return id
}

func TestReviewFlow_SingleReviewPersistsEverything(t *testing.T) {
	f := newReviewFlowFixture(t)
	ctx := context.Background()
	cardID := f.newCard(t)

	result, err := f.svc.SubmitReview(ctx, f.userID, cardID, srs.Good)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Flashcard.Repetitions)
	assert.Equal(t, 1, result.Flashcard.IntervalDays)

	// One history row with the post-update snapshot.
	history, err := f.reviews.ListByFlashcard(ctx, cardID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "good", history[0].Difficulty)
	assert.Equal(t, result.Flashcard.EaseFactor, history[0].EaseFactor)
	assert.Equal(t, result.Flashcard.IntervalDays, history[0].IntervalDays)

	// One session row for today.
	sessions, err := f.sessions.ListByUser(ctx, f.userID)
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, models.SessionDay(time.Now().UTC()), sessions[0].Date)
	assert.Equal(t, 1, sessions[0].FlashcardsStudied)
	assert.Equal(t, 1, sessions[0].FlashcardsCorrect)

	// Card persisted with the returned state.
	card, err := f.flashcards.Get(ctx, cardID)
	require.NoError(t, err)
	require.NotNil(t, card.NextReview)
	assert.WithinDuration(t, result.NextReview, *card.NextReview, time.Second)
}

func TestReviewFlow_RepeatedReviewsFollowLadder(t *testing.T) {
	f := newReviewFlowFixture(t)
	ctx := context.Background()
	cardID := f.newCard(t)

	intervals := []int{1, 6}
	for _, want := range intervals {
		result, err := f.svc.SubmitReview(ctx, f.userID, cardID, srs.Good)
		require.NoError(t, err)
		assert.Equal(t, want, result.Flashcard.IntervalDays)
	}

	// Failing review resets the ladder.
	result, err := f.svc.SubmitReview(ctx, f.userID, cardID, srs.Again)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Flashcard.Repetitions)
	assert.Equal(t, 1, result.Flashcard.IntervalDays)

	history, err := f.reviews.ListByFlashcard(ctx, cardID)
	require.NoError(t, err)
	assert.Len(t, history, 3)

	sessions, err := f.sessions.ListByUser(ctx, f.userID)
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, 3, sessions[0].FlashcardsStudied)
	assert.Equal(t, 2, sessions[0].FlashcardsCorrect)
}

func TestReviewFlow_ConcurrentReviewsOfDifferentCards(t *testing.T) {
	f := newReviewFlowFixture(t)
	ctx := context.Background()

	const n = 8
	cardIDs := make([]int64, n)
	for i := range cardIDs {
		cardIDs[i] = f.newCard(t)
	}

	var wg sync.WaitGroup
	errs := make(chan error, n)
	for _, id := range cardIDs {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			_, err := f.svc.SubmitReview(ctx, f.userID, id, srs.Good)
			errs <- err
		}(id)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	// Every card got exactly one review and its own scheduling update.
	for _, id := range cardIDs {
		card, err := f.flashcards.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, 1, card.Repetitions, "card %d", id)
		assert.Equal(t, 1, card.IntervalDays, "card %d", id)

		history, err := f.reviews.ListByFlashcard(ctx, id)
		require.NoError(t, err)
		assert.Len(t, history, 1, "card %d", id)
	}

	sessions, err := f.sessions.ListByUser(ctx, f.userID)
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, n, sessions[0].FlashcardsStudied)
}

func TestReviewFlow_ConcurrentReviewsOfSameCardSerialize(t *testing.T) {
	f := newReviewFlowFixture(t)
	ctx := context.Background()
	cardID := f.newCard(t)

	const n = 4
	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.svc.SubmitReview(ctx, f.userID, cardID, srs.Good)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	// Serialized updates: each review saw the previous one's state, so the
	// repetition count equals the number of reviews.
	card, err := f.flashcards.Get(ctx, cardID)
	require.NoError(t, err)
	assert.Equal(t, n, card.Repetitions)

	history, err := f.reviews.ListByFlashcard(ctx, cardID)
	require.NoError(t, err)
	assert.Len(t, history, n)
}
