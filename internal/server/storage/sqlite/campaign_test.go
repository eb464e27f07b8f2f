package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/muslimguide/internal/models"
	"github.com/iudanet/muslimguide/internal/server/storage"
)

func TestCampaigns(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	campaigns := []models.Campaign{
		{ID: "c2", Title: "Eid Bazaar", Category: models.CampaignEvent, StartDate: "2025-04-01", StartTime: "10:00"},
		{ID: "c1", Title: "Iftar Talk", Category: models.CampaignEvent, StartDate: "2025-03-10", StartTime: "18:30"},
		{ID: "p1", Title: "10% off", Category: models.CampaignPromotion, Organizer: "Halal Corner"},
	}
	for i := range campaigns {
		require.NoError(t, s.CreateCampaign(ctx, &campaigns[i]))
	}

	err := s.CreateCampaign(ctx, &campaigns[0])
	assert.ErrorIs(t, err, storage.ErrCampaignAlreadyExists)

	events, err := s.ListCampaigns(ctx, models.CampaignEvent)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "c1", events[0].ID)
	assert.Equal(t, "c2", events[1].ID)

	promos, err := s.ListCampaigns(ctx, models.CampaignPromotion)
	require.NoError(t, err)
	require.Len(t, promos, 1)
	assert.Equal(t, "Halal Corner", promos[0].Organizer)
}

func TestCategoryClicks(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	clicks, err := s.IncrementCategoryClick(ctx, "mosque")
	require.NoError(t, err)
	assert.Equal(t, int64(1), clicks)

	clicks, err = s.IncrementCategoryClick(ctx, "mosque")
	require.NoError(t, err)
	assert.Equal(t, int64(2), clicks)

	_, err = s.IncrementCategoryClick(ctx, "education")
	require.NoError(t, err)

	all, err := s.GetCategoryClicks(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.CategoryClicks{
		{Category: "education", Clicks: 1},
		{Category: "mosque", Clicks: 2},
	}, all)
}
