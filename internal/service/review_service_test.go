package service

import (
	"context"
	"testing"

	"spice-palace/internal/model"
	"spice-palace/internal/repository"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reviewMenuFixture() repository.MenuRepository {
	return repository.NewMenuRepository([]model.MenuItem{
		{ID: "1", Name: "Samosa", Price: 8.99, Category: "Appetizer", Available: true},
	}, zerolog.Nop())
}

func TestReviewService_AddAndSummary(t *testing.T) {
	svc := NewReviewService(reviewMenuFixture(), zerolog.Nop())
	ctx := context.Background()

	require.NoError(t, svc.Add(ctx, "1", "table1", 5, "Crispy!"))
	require.NoError(t, svc.Add(ctx, "1", "table2", 4, ""))

	reviews, summary, err := svc.List(ctx, "1")
	require.NoError(t, err)
	require.Len(t, reviews, 2)
	assert.Equal(t, "table1", reviews[0].Author)
	assert.False(t, reviews[0].CreatedAt.IsZero())
	assert.InDelta(t, 4.5, summary.Average, 0.0001)
	assert.Equal(t, 2, summary.Count)
}

func TestReviewService_AddClampsRating(t *testing.T) {
	svc := NewReviewService(reviewMenuFixture(), zerolog.Nop())
	ctx := context.Background()

	require.NoError(t, svc.Add(ctx, "1", "table1", 9, "amazing"))
	require.NoError(t, svc.Add(ctx, "1", "table2", -3, "awful"))

	reviews, summary, err := svc.List(ctx, "1")
	require.NoError(t, err)
	require.Len(t, reviews, 2)
	assert.Equal(t, 5, reviews[0].Rating)
	assert.Equal(t, 1, reviews[1].Rating)
	assert.InDelta(t, 3.0, summary.Average, 0.0001)
}

func TestReviewService_SummaryWithoutReviewsIsZero(t *testing.T) {
	svc := NewReviewService(reviewMenuFixture(), zerolog.Nop())

	summary, err := svc.Summary(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, 0.0, summary.Average)
	assert.Equal(t, 0, summary.Count)
}

func TestReviewService_UnknownItem(t *testing.T) {
	svc := NewReviewService(reviewMenuFixture(), zerolog.Nop())
	ctx := context.Background()

	err := svc.Add(ctx, "999", "table1", 5, "")
	assert.Equal(t, model.ErrMenuItemNotFound, err)

	_, _, err = svc.List(ctx, "999")
	assert.Equal(t, model.ErrMenuItemNotFound, err)

	_, err = svc.Summary(ctx, "999")
	assert.Equal(t, model.ErrMenuItemNotFound, err)
}
