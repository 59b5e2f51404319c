package usecase

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"TripAgent-App/internal/domain/model"
	"TripAgent-App/internal/domain/service"
	repoimpl "TripAgent-App/internal/repository"
)

// newTestUseCase インメモリ構成でユースケースを組み立てる
func newTestUseCase() TravelPlanUseCase {
	knowledgeRepo := repoimpl.NewInMemoryKnowledgeRepository()
	sequencer := service.NewItinerarySequencerService(knowledgeRepo)
	return NewTravelPlanUseCase(
		service.NewGoalParserService(knowledgeRepo),
		service.NewTransportRankService(),
		sequencer,
		service.NewPlanEditService(sequencer),
		repoimpl.NewMemoryPlanStore(),
	)
}

func TestTravelPlanUseCase_GeneratePlan(t *testing.T) {
	ctx := context.Background()
	uc := newTestUseCase()

	t.Run("既知の都市ペアから完全なプランを生成する", func(t *testing.T) {
		plan, err := uc.GeneratePlan(ctx, "Plan a 2-day trip to Tokyo from New Delhi")
		if err != nil {
			t.Fatalf("❌ プラン生成に失敗: %v", err)
		}

		assert.True(t, strings.HasPrefix(plan.PlanID, "plan_"))
		assert.Equal(t, "Tokyo", plan.Parsed.DestinationCity.Name)
		assert.Equal(t, "New Delhi", plan.Parsed.OriginCity.Name)
		assert.GreaterOrEqual(t, len(plan.TransportOptions), 2, "候補が2件未満です")
		assert.Equal(t, plan.TransportOptions[0].ID, plan.SelectedTransport.ID, "先頭候補がデフォルト選択になっていません")
		assert.NotEmpty(t, plan.Itinerary)
		assert.Equal(t, len(plan.Itinerary), plan.Totals.ActivityCount)
		assert.Greater(t, plan.Totals.EstimatedSpendUSD, 0.0)

		days := make(map[int]bool)
		for _, item := range plan.Itinerary {
			days[item.Day] = true
		}
		assert.True(t, days[1] && days[2], "旅程が両日に割り当てられていません")
	})

	t.Run("意味のない入力でもプランを生成する", func(t *testing.T) {
		plan, err := uc.GeneratePlan(ctx, "asdkjhasd qwerty zzz")
		if err != nil {
			t.Fatalf("❌ フォールバック生成に失敗: %v", err)
		}

		assert.Equal(t, model.FallbackDestinationName, plan.Parsed.DestinationName())
		assert.GreaterOrEqual(t, len(plan.TransportOptions), 2)
		assert.NotEmpty(t, plan.Itinerary)
	})

	t.Run("生成したプランはGetPlanで取得できる", func(t *testing.T) {
		plan, err := uc.GeneratePlan(ctx, "2-day trip to Kyoto from Tokyo")
		assert.NoError(t, err)

		fetched, err := uc.GetPlan(ctx, plan.PlanID)
		assert.NoError(t, err)
		assert.Equal(t, plan.PlanID, fetched.PlanID)
		assert.Equal(t, len(plan.Itinerary), len(fetched.Itinerary))
	})

	t.Run("存在しないプランIDの取得はエラーになる", func(t *testing.T) {
		_, err := uc.GetPlan(ctx, "plan_unknown")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "見つかりません")
	})
}

func TestTravelPlanUseCase_SelectTransport(t *testing.T) {
	ctx := context.Background()
	uc := newTestUseCase()

	plan, err := uc.GeneratePlan(ctx, "2-day trip to Tokyo from New Delhi")
	assert.NoError(t, err)

	t.Run("切り替えた手段が保存される", func(t *testing.T) {
		alternative := plan.TransportOptions[1]

		updated, err := uc.SelectTransport(ctx, plan.PlanID, alternative.ID)
		assert.NoError(t, err)
		assert.Equal(t, alternative.ID, updated.SelectedTransport.ID)

		// ストアにも反映されている
		fetched, err := uc.GetPlan(ctx, plan.PlanID)
		assert.NoError(t, err)
		assert.Equal(t, alternative.ID, fetched.SelectedTransport.ID)
	})

	t.Run("未知の候補IDはno-opとして扱う", func(t *testing.T) {
		before, err := uc.GetPlan(ctx, plan.PlanID)
		assert.NoError(t, err)

		result, err := uc.SelectTransport(ctx, plan.PlanID, "opt-does-not-exist")
		assert.NoError(t, err, "未知のIDはエラーにしない")
		assert.Equal(t, before.SelectedTransport.ID, result.SelectedTransport.ID)
		assert.Equal(t, before.Totals, result.Totals)
	})
}

func TestTravelPlanUseCase_ItineraryEdits(t *testing.T) {
	ctx := context.Background()
	uc := newTestUseCase()

	plan, err := uc.GeneratePlan(ctx, "2-day trip to Tokyo from New Delhi")
	assert.NoError(t, err)

	t.Run("日の入れ替えが保存される", func(t *testing.T) {
		target := plan.ItemsOnDay(1)[0]

		updated, err := uc.SwapItineraryDay(ctx, plan.PlanID, target.ID)
		assert.NoError(t, err)

		found := false
		for _, item := range updated.ItemsOnDay(2) {
			if item.Attraction.ID == target.Attraction.ID {
				found = true
			}
		}
		assert.True(t, found, "対象スポットが2日目に移っていません")

		fetched, err := uc.GetPlan(ctx, plan.PlanID)
		assert.NoError(t, err)
		assert.Equal(t, len(updated.Itinerary), len(fetched.Itinerary))
	})

	t.Run("削除と除外記録が保存される", func(t *testing.T) {
		current, err := uc.GetPlan(ctx, plan.PlanID)
		assert.NoError(t, err)
		target := current.Itinerary[0]

		updated, err := uc.RemoveItineraryItem(ctx, plan.PlanID, target.ID)
		assert.NoError(t, err)
		assert.False(t, updated.HasAttraction(target.Attraction.ID))
		assert.True(t, updated.IsExcluded(target.Attraction.ID))

		fetched, err := uc.GetPlan(ctx, plan.PlanID)
		assert.NoError(t, err)
		assert.True(t, fetched.IsExcluded(target.Attraction.ID))
	})

	t.Run("未知のアイテムIDはno-opとして扱う", func(t *testing.T) {
		before, err := uc.GetPlan(ctx, plan.PlanID)
		assert.NoError(t, err)

		swapped, err := uc.SwapItineraryDay(ctx, plan.PlanID, "item-does-not-exist")
		assert.NoError(t, err)
		assert.Equal(t, len(before.Itinerary), len(swapped.Itinerary))

		removed, err := uc.RemoveItineraryItem(ctx, plan.PlanID, "item-does-not-exist")
		assert.NoError(t, err)
		assert.Equal(t, len(before.Itinerary), len(removed.Itinerary))
		assert.Equal(t, before.Totals, removed.Totals)
	})

	t.Run("存在しないプランへの編集はエラーになる", func(t *testing.T) {
		_, err := uc.SwapItineraryDay(ctx, "plan_unknown", "any-item")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "見つかりません")
	})
}
