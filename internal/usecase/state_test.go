package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"NewsAnalyst/internal/domain"
)

func TestApplyReplacesOnlyPopulatedFields(t *testing.T) {
	t.Parallel()

	state := NewState("tech news", []string{"https://example.org/feed"})
	state.RawArticles = []domain.FeedItem{{Title: "old"}}

	state.Apply(Update{
		CleanedArticles: []domain.Article{{Title: "a"}},
		Errors:          []string{"fetch feed x: boom"},
	})

	require.Len(t, state.RawArticles, 1)
	assert.Equal(t, "old", state.RawArticles[0].Title)
	require.Len(t, state.CleanedArticles, 1)
	assert.Equal(t, []string{"fetch feed x: boom"}, state.Errors)
	assert.Empty(t, state.FinalReport)
}

func TestApplyEmptyNonNilSliceMarksFieldPopulated(t *testing.T) {
	t.Parallel()

	state := State{CleanedArticles: []domain.Article{{Title: "stale"}}}
	state.Apply(Update{CleanedArticles: []domain.Article{}})

	assert.NotNil(t, state.CleanedArticles)
	assert.Empty(t, state.CleanedArticles)
}

func TestApplyAccumulatesErrorsAcrossStages(t *testing.T) {
	t.Parallel()

	var state State
	state.Apply(Update{Errors: []string{"one"}})
	state.Apply(Update{Errors: []string{"two", "three"}})

	assert.Equal(t, []string{"one", "two", "three"}, state.Errors)
}

func TestStatsCountsEveryCollection(t *testing.T) {
	t.Parallel()

	state := State{
		RawArticles:     make([]domain.FeedItem, 4),
		CleanedArticles: make([]domain.Article, 3),
		TrustScores:     make([]domain.TrustScore, 3),
		FactSheets:      make([]domain.FactSheet, 2),
		Errors:          []string{"x"},
	}

	stats := state.Stats()
	assert.Equal(t, domain.RunStats{Gathered: 4, Cleaned: 3, Scored: 3, Extracted: 2, Errors: 1}, stats)
}
