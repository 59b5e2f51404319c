package service

import (
	"errors"
	"math"

	"TripAgent-App/internal/domain/model"
)

// ErrOptionNotFound 指定された移動手段候補がプランに存在しない
var ErrOptionNotFound = errors.New("指定された移動手段が見つかりません")

// ErrItemNotFound 指定された旅程アイテムがプランに存在しない
var ErrItemNotFound = errors.New("指定された旅程アイテムが見つかりません")

// PlanEditService 既存プランへの編集操作と集計を担うサービス
// すべての操作は入力プランを変更せず、整合性の取れた新しいプラン値を返す
// 未知のIDを渡された場合は入力プランをそのまま返し、センチネルエラーで通知する
type PlanEditService interface {
	// AggregateTotals 移動手段と旅程から合計金額・アクティビティ数を集計する純粋関数
	AggregateTotals(transport *model.TransportOption, itinerary []*model.ItineraryItem, durationDays int) model.PlanTotals

	// SelectTransport 選択中の移動手段を切り替える（旅程は変更しない）
	SelectTransport(plan *model.TravelPlan, optionID string) (*model.TravelPlan, error)

	// SwapItineraryDay 指定アイテムをもう一方の日へ移し、両日の時刻を再圧縮する
	SwapItineraryDay(plan *model.TravelPlan, itemID string) (*model.TravelPlan, error)

	// RemoveItineraryItem 指定アイテムを削除し、可能なら同じ日に代替スポットを補充する
	RemoveItineraryItem(plan *model.TravelPlan, itemID string) (*model.TravelPlan, error)
}

type planEditService struct {
	sequencer ItinerarySequencerService
}

// NewPlanEditService 新しいPlanEditServiceインスタンスを作成
func NewPlanEditService(sequencer ItinerarySequencerService) PlanEditService {
	return &planEditService{sequencer: sequencer}
}

// AggregateTotals 移動手段の価格 + 全スポットの費用 + 宿泊費（泊数分）を合計する
func (s *planEditService) AggregateTotals(transport *model.TransportOption, itinerary []*model.ItineraryItem, durationDays int) model.PlanTotals {
	spend := transport.PriceUSD
	for _, item := range itinerary {
		spend += item.Attraction.CostEstimateUSD
	}
	nights := durationDays - 1
	if nights < 0 {
		nights = 0
	}
	spend += model.LodgingPerNightUSD * float64(nights)

	return model.PlanTotals{
		EstimatedSpendUSD: math.Round(spend*100) / 100,
		ActivityCount:     len(itinerary),
	}
}

// SelectTransport 選択手段のみを差し替え、合計金額を再計算する
func (s *planEditService) SelectTransport(plan *model.TravelPlan, optionID string) (*model.TravelPlan, error) {
	option := plan.FindTransportOption(optionID)
	if option == nil {
		return plan, ErrOptionNotFound
	}

	next := plan.Clone()
	next.SelectedTransport = option.Clone()
	next.Totals = s.AggregateTotals(next.SelectedTransport, next.Itinerary, next.Parsed.DurationDays)
	return next, nil
}

// SwapItineraryDay アイテムを反対側の日の末尾へ移動し、移動元・移動先の両日を再圧縮する
func (s *planEditService) SwapItineraryDay(plan *model.TravelPlan, itemID string) (*model.TravelPlan, error) {
	target := plan.FindItineraryItem(itemID)
	if target == nil {
		return plan, ErrItemNotFound
	}
	if plan.Parsed.DurationDays < 2 {
		// 1日プランには移動先の日がないため何もしない
		return plan, nil
	}

	next := plan.Clone()
	moved := next.FindItineraryItem(itemID)

	sourceDay := moved.Day
	destDay := 3 - sourceDay // 2日プラン前提の入れ替え

	var sourceItems, destItems []*model.ItineraryItem
	for _, item := range next.ItemsOnDay(sourceDay) {
		if item.ID != itemID {
			sourceItems = append(sourceItems, item)
		}
	}
	destItems = append(next.ItemsOnDay(destDay), moved)

	recompactedSource := s.sequencer.RecompactDay(next.Parsed, sourceDay, sourceItems)
	recompactedDest := s.sequencer.RecompactDay(next.Parsed, destDay, destItems)

	next.Itinerary = mergeDays(sourceDay, recompactedSource, destDay, recompactedDest)
	next.Totals = s.AggregateTotals(next.SelectedTransport, next.Itinerary, next.Parsed.DurationDays)
	return next, nil
}

// RemoveItineraryItem アイテムを削除して除外リストに記録し、空いた枠の補充を試みる
// 補充候補はセッション中に削除済みのスポットを恒久的に避ける
func (s *planEditService) RemoveItineraryItem(plan *model.TravelPlan, itemID string) (*model.TravelPlan, error) {
	target := plan.FindItineraryItem(itemID)
	if target == nil {
		return plan, ErrItemNotFound
	}

	next := plan.Clone()
	day := target.Day

	var remaining []*model.ItineraryItem
	for _, item := range next.Itinerary {
		if item.ID != itemID {
			remaining = append(remaining, item)
		}
	}
	next.Itinerary = remaining
	next.ExcludedAttractionIDs = append(next.ExcludedAttractionIDs, target.Attraction.ID)

	dayItems := next.ItemsOnDay(day)

	// 補充候補の対象外: 旅程に残っているスポットと、このセッションで削除済みのスポット
	unavailable := make(map[string]struct{})
	for _, item := range next.Itinerary {
		unavailable[item.Attraction.ID] = struct{}{}
	}
	for _, id := range next.ExcludedAttractionIDs {
		unavailable[id] = struct{}{}
	}

	if candidate := s.sequencer.PickBackfill(next.Parsed, dayItems, unavailable); candidate != nil {
		dayItems = append(dayItems, &model.ItineraryItem{Day: day, Attraction: candidate})
	}

	recompacted := s.sequencer.RecompactDay(next.Parsed, day, dayItems)

	otherDay := 3 - day
	next.Itinerary = mergeDays(day, recompacted, otherDay, next.ItemsOnDay(otherDay))
	next.Totals = s.AggregateTotals(next.SelectedTransport, next.Itinerary, next.Parsed.DurationDays)
	return next, nil
}

// mergeDays 2日分のアイテム列を日番号の昇順で結合する
func mergeDays(dayA int, itemsA []*model.ItineraryItem, dayB int, itemsB []*model.ItineraryItem) []*model.ItineraryItem {
	if dayA > dayB {
		dayA, dayB = dayB, dayA
		itemsA, itemsB = itemsB, itemsA
	}
	merged := make([]*model.ItineraryItem, 0, len(itemsA)+len(itemsB))
	merged = append(merged, itemsA...)
	merged = append(merged, itemsB...)
	return merged
}
