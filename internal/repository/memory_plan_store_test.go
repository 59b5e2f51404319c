package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"TripAgent-App/internal/domain/model"
)

func newStoredPlan(id string) *model.TravelPlan {
	return &model.TravelPlan{
		PlanID:      id,
		GeneratedAt: time.Now(),
		Parsed:      &model.ParsedGoal{DurationDays: 2, DestinationFallback: "your destination", OriginFallback: "your origin"},
		TransportOptions: []*model.TransportOption{
			{ID: "opt-a", Mode: model.ModeFlight, PriceUSD: 500},
			{ID: "opt-b", Mode: model.ModeTrain, PriceUSD: 300},
		},
		SelectedTransport: &model.TransportOption{ID: "opt-a", Mode: model.ModeFlight, PriceUSD: 500},
		Itinerary: []*model.ItineraryItem{
			{ID: "item-1", Day: 1, StartTime: "09:00", EndTime: "10:30", Attraction: &model.Attraction{ID: "a1", CostEstimateUSD: 10}},
		},
		Totals: model.PlanTotals{EstimatedSpendUSD: 630, ActivityCount: 1},
	}
}

func TestMemoryPlanStore(t *testing.T) {
	ctx := context.Background()

	t.Run("保存したプランを取得できる", func(t *testing.T) {
		store := NewMemoryPlanStore()
		plan := newStoredPlan("plan_1")

		assert.NoError(t, store.Save(ctx, plan))

		fetched, err := store.Get(ctx, "plan_1")
		assert.NoError(t, err)
		assert.Equal(t, plan.PlanID, fetched.PlanID)
		assert.Equal(t, len(plan.Itinerary), len(fetched.Itinerary))
	})

	t.Run("ID未設定のプランは保存できない", func(t *testing.T) {
		store := NewMemoryPlanStore()
		err := store.Save(ctx, newStoredPlan(""))
		assert.Error(t, err)
	})

	t.Run("存在しないプランの取得はエラーになる", func(t *testing.T) {
		store := NewMemoryPlanStore()
		_, err := store.Get(ctx, "plan_unknown")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "見つかりません")
	})

	t.Run("取得したプランを書き換えてもストアに影響しない", func(t *testing.T) {
		store := NewMemoryPlanStore()
		assert.NoError(t, store.Save(ctx, newStoredPlan("plan_2")))

		fetched, err := store.Get(ctx, "plan_2")
		assert.NoError(t, err)
		fetched.SelectedTransport.ID = "tampered"
		fetched.Itinerary[0].Day = 99

		again, err := store.Get(ctx, "plan_2")
		assert.NoError(t, err)
		assert.Equal(t, "opt-a", again.SelectedTransport.ID, "ストア内のプランが書き換えられています")
		assert.Equal(t, 1, again.Itinerary[0].Day)
	})

	t.Run("上書き保存で新しい値に置き換わる", func(t *testing.T) {
		store := NewMemoryPlanStore()
		assert.NoError(t, store.Save(ctx, newStoredPlan("plan_3")))

		updated := newStoredPlan("plan_3")
		updated.SelectedTransport = &model.TransportOption{ID: "opt-b", Mode: model.ModeTrain, PriceUSD: 300}
		assert.NoError(t, store.Overwrite(ctx, "plan_3", updated))

		fetched, err := store.Get(ctx, "plan_3")
		assert.NoError(t, err)
		assert.Equal(t, "opt-b", fetched.SelectedTransport.ID)
	})

	t.Run("存在しないプランの上書きはエラーになる", func(t *testing.T) {
		store := NewMemoryPlanStore()
		err := store.Overwrite(ctx, "plan_unknown", newStoredPlan("plan_unknown"))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "見つかりません")
	})
}
