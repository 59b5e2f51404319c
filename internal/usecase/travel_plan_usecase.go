package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"TripAgent-App/internal/domain/model"
	"TripAgent-App/internal/domain/repository"
	"TripAgent-App/internal/domain/service"
)

// TravelPlanUseCase プラン生成と編集のオーケストレーションを行う
// 編集は「ストアから取得 → 純粋関数で変換 → 上書き保存」の順で適用される
type TravelPlanUseCase interface {
	// GeneratePlan ゴール文から新しい旅行プランを生成して保存する
	GeneratePlan(ctx context.Context, goalText string) (*model.TravelPlan, error)

	// GetPlan 指定IDのプランを取得する
	GetPlan(ctx context.Context, planID string) (*model.TravelPlan, error)

	// SelectTransport 選択中の移動手段を切り替える
	SelectTransport(ctx context.Context, planID, optionID string) (*model.TravelPlan, error)

	// SwapItineraryDay 指定アイテムをもう一方の日へ移す
	SwapItineraryDay(ctx context.Context, planID, itemID string) (*model.TravelPlan, error)

	// RemoveItineraryItem 指定アイテムを削除し、可能なら代替スポットを補充する
	RemoveItineraryItem(ctx context.Context, planID, itemID string) (*model.TravelPlan, error)
}

// travelPlanUseCaseImpl はTravelPlanUseCaseの実装
type travelPlanUseCaseImpl struct {
	goalParser service.GoalParserService
	ranker     service.TransportRankService
	sequencer  service.ItinerarySequencerService
	editor     service.PlanEditService
	planStore  repository.PlanStore
}

// NewTravelPlanUseCase 新しいTravelPlanUseCaseインスタンスを作成
func NewTravelPlanUseCase(
	goalParser service.GoalParserService,
	ranker service.TransportRankService,
	sequencer service.ItinerarySequencerService,
	editor service.PlanEditService,
	planStore repository.PlanStore,
) TravelPlanUseCase {
	return &travelPlanUseCaseImpl{
		goalParser: goalParser,
		ranker:     ranker,
		sequencer:  sequencer,
		editor:     editor,
		planStore:  planStore,
	}
}

// GeneratePlan パース → 移動手段ランキング → 旅程構築 → 集計の順でプランを組み立てる
func (u *travelPlanUseCaseImpl) GeneratePlan(ctx context.Context, goalText string) (*model.TravelPlan, error) {
	log.Printf("🚀 プラン生成開始 (goal: %q)", goalText)

	// Step 1: ゴール文の解析（失敗してもフォールバックに劣化する）
	parsed := u.goalParser.Parse(goalText)
	log.Printf("📍 解析結果: %s → %s (%d日間)", parsed.OriginName(), parsed.DestinationName(), parsed.DurationDays)

	// Step 2: 移動手段候補の生成とランキング。先頭をデフォルト選択とする
	options := u.ranker.RankTransport(parsed)
	selected := options[0].Clone()

	// Step 3: 旅程の構築
	itinerary := u.sequencer.BuildItinerary(parsed, nil)

	// Step 4: 集計してプランを確定
	plan := &model.TravelPlan{
		PlanID:            fmt.Sprintf("plan_%s", uuid.New().String()),
		GeneratedAt:       time.Now(),
		Parsed:            parsed,
		TransportOptions:  options,
		SelectedTransport: selected,
		Itinerary:         itinerary,
		Totals:            u.editor.AggregateTotals(selected, itinerary, parsed.DurationDays),
	}

	if err := u.planStore.Save(ctx, plan); err != nil {
		return nil, fmt.Errorf("プランの保存に失敗: %w", err)
	}

	log.Printf("✅ プラン生成完了 (ID: %s, 候補%d件, アクティビティ%d件)",
		plan.PlanID, len(plan.TransportOptions), plan.Totals.ActivityCount)
	return plan, nil
}

// GetPlan 指定IDのプランをストアから取得する
func (u *travelPlanUseCaseImpl) GetPlan(ctx context.Context, planID string) (*model.TravelPlan, error) {
	plan, err := u.planStore.Get(ctx, planID)
	if err != nil {
		return nil, fmt.Errorf("プランの取得に失敗: %w", err)
	}
	return plan, nil
}

// SelectTransport 移動手段を切り替えて保存する。未知のIDはプランを変えずに返す
func (u *travelPlanUseCaseImpl) SelectTransport(ctx context.Context, planID, optionID string) (*model.TravelPlan, error) {
	return u.applyEdit(ctx, planID, func(plan *model.TravelPlan) (*model.TravelPlan, error) {
		return u.editor.SelectTransport(plan, optionID)
	})
}

// SwapItineraryDay アイテムの日を入れ替えて保存する。未知のIDはプランを変えずに返す
func (u *travelPlanUseCaseImpl) SwapItineraryDay(ctx context.Context, planID, itemID string) (*model.TravelPlan, error) {
	return u.applyEdit(ctx, planID, func(plan *model.TravelPlan) (*model.TravelPlan, error) {
		return u.editor.SwapItineraryDay(plan, itemID)
	})
}

// RemoveItineraryItem アイテムを削除して保存する。未知のIDはプランを変えずに返す
func (u *travelPlanUseCaseImpl) RemoveItineraryItem(ctx context.Context, planID, itemID string) (*model.TravelPlan, error) {
	return u.applyEdit(ctx, planID, func(plan *model.TravelPlan) (*model.TravelPlan, error) {
		return u.editor.RemoveItineraryItem(plan, itemID)
	})
}

// applyEdit 取得 → 変換 → 上書きの共通フロー
// UIの状態が古いだけの未知ID編集は失敗ではなくno-opとして扱う
func (u *travelPlanUseCaseImpl) applyEdit(
	ctx context.Context,
	planID string,
	edit func(*model.TravelPlan) (*model.TravelPlan, error),
) (*model.TravelPlan, error) {
	plan, err := u.planStore.Get(ctx, planID)
	if err != nil {
		return nil, fmt.Errorf("プランの取得に失敗: %w", err)
	}

	next, err := edit(plan)
	if err != nil {
		if errors.Is(err, service.ErrOptionNotFound) || errors.Is(err, service.ErrItemNotFound) {
			log.Printf("⚠️ 未知のIDによる編集をスキップ (plan: %s): %v", planID, err)
			return plan, nil
		}
		return nil, fmt.Errorf("プランの編集に失敗: %w", err)
	}

	if err := u.planStore.Overwrite(ctx, planID, next); err != nil {
		return nil, fmt.Errorf("プランの上書き保存に失敗: %w", err)
	}
	return next, nil
}
