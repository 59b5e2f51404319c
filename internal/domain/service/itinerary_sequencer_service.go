package service

import (
	"fmt"

	"TripAgent-App/internal/domain/helper"
	"TripAgent-App/internal/domain/model"
	"TripAgent-App/internal/domain/repository"
)

// ItinerarySequencerService 目的地のスポット選定と日別タイムスロット割り当てを行う
// 同一入力からは常に同一の旅程が得られる（アイテムIDも決定的に導出する）
type ItinerarySequencerService interface {
	// BuildItinerary 目的地・日数・除外IDから旅程全体を構築する
	BuildItinerary(parsed *model.ParsedGoal, excludedIDs map[string]struct{}) []*model.ItineraryItem

	// RecompactDay 1日分のアイテム列の開始・終了時刻と移動時間を並び順どおりに再計算する
	// ユーザー編集後の再圧縮ではアイテムを取りこぼさない（終了アンカー超過を許容する）
	RecompactDay(parsed *model.ParsedGoal, day int, items []*model.ItineraryItem) []*model.ItineraryItem

	// PickBackfill 削除で空いた日に追加できるスポットを1件選ぶ
	// カテゴリ多様性と終了アンカーを満たす候補がなければnilを返す
	PickBackfill(parsed *model.ParsedGoal, dayItems []*model.ItineraryItem, unavailable map[string]struct{}) *model.Attraction
}

type itinerarySequencerService struct {
	knowledgeRepo repository.KnowledgeRepository
}

// NewItinerarySequencerService 新しいItinerarySequencerServiceインスタンスを作成
func NewItinerarySequencerService(knowledgeRepo repository.KnowledgeRepository) ItinerarySequencerService {
	return &itinerarySequencerService{knowledgeRepo: knowledgeRepo}
}

// BuildItinerary スポットを選定し、各日の開始アンカーから順にタイムスロットを割り当てる
func (s *itinerarySequencerService) BuildItinerary(parsed *model.ParsedGoal, excludedIDs map[string]struct{}) []*model.ItineraryItem {
	pool := helper.FilterExcluded(s.attractionPool(parsed), excludedIDs)
	ordered := helper.OrderForDiversity(pool)

	durationDays := parsed.DurationDays
	if durationDays < 1 {
		durationDays = model.DefaultDurationDays
	}

	total := durationDays * model.MaxActivitiesPerDay
	if total > len(ordered) {
		total = len(ordered)
	}
	selected := ordered[:total]

	// 総数を日数で均等に分配する（端数は先の日に寄せる）
	perDay := (total + durationDays - 1) / durationDays

	citySlug := helper.CitySlug(parsed.DestinationName())
	var itinerary []*model.ItineraryItem
	var carryOver []*model.Attraction

	for day := 1; day <= durationDays; day++ {
		start := (day - 1) * perDay
		if start > total {
			start = total
		}
		end := day * perDay
		if end > total {
			end = total
		}

		candidates := append(append([]*model.Attraction(nil), carryOver...), selected[start:end]...)
		scheduled, overflow := scheduleDay(citySlug, day, candidates)
		itinerary = append(itinerary, scheduled...)
		carryOver = overflow
	}
	// 最終日に収まらなかった候補は切り捨てる

	return itinerary
}

// RecompactDay 並び順を保ったまま時刻・移動時間・IDを再導出する
func (s *itinerarySequencerService) RecompactDay(parsed *model.ParsedGoal, day int, items []*model.ItineraryItem) []*model.ItineraryItem {
	citySlug := helper.CitySlug(parsed.DestinationName())
	attractions := make([]*model.Attraction, len(items))
	for i, item := range items {
		attractions[i] = item.Attraction
	}
	return scheduleAll(citySlug, day, attractions)
}

// PickBackfill 空いた日の末尾に追加できる多様性互換のスポットを探す
func (s *itinerarySequencerService) PickBackfill(parsed *model.ParsedGoal, dayItems []*model.ItineraryItem, unavailable map[string]struct{}) *model.Attraction {
	pool := helper.FilterExcluded(s.attractionPool(parsed), unavailable)
	if len(pool) == 0 {
		return nil
	}

	// 末尾に追加するため、直前のアイテムとカテゴリが重ならない候補のみを許容する
	var lastCategory string
	if len(dayItems) > 0 {
		lastCategory = dayItems[len(dayItems)-1].Attraction.Category
	}

	for _, candidate := range pool {
		if candidate.Category == lastCategory && lastCategory != "" {
			continue
		}
		if s.fitsWithinDay(dayItems, candidate) {
			return candidate
		}
	}
	return nil
}

// fitsWithinDay 候補を末尾に追加しても終了アンカーを超えないかを判定する
func (s *itinerarySequencerService) fitsWithinDay(dayItems []*model.ItineraryItem, candidate *model.Attraction) bool {
	clock := model.DayStartMinutes
	var prev *model.Attraction
	for _, item := range dayItems {
		clock = visitEndMinutes(clock, prev, item.Attraction)
		prev = item.Attraction
	}
	return visitEndMinutes(clock, prev, candidate) <= model.DayEndMinutes
}

// attractionPool 目的地のスポット一覧を取得する（未知の都市は汎用セット）
func (s *itinerarySequencerService) attractionPool(parsed *model.ParsedGoal) []*model.Attraction {
	if parsed.DestinationCity != nil {
		if attractions := s.knowledgeRepo.AttractionsByCity(parsed.DestinationCity.Name); len(attractions) > 0 {
			return attractions
		}
	}
	return s.knowledgeRepo.FallbackAttractions()
}

// scheduleDay 開始アンカーから順にスロットを割り当て、終了アンカーを超える分は翌日に回す
func scheduleDay(citySlug string, day int, attractions []*model.Attraction) ([]*model.ItineraryItem, []*model.Attraction) {
	var scheduled []*model.ItineraryItem
	clock := model.DayStartMinutes
	var prev *model.Attraction

	for i, attraction := range attractions {
		transfer := 0
		if prev != nil {
			transfer = helper.TransferMinutes(prev.ToLatLng(), attraction.ToLatLng())
		}
		start := clock + transfer
		end := start + helper.HoursToMinutes(attraction.DurationHours)
		if end > model.DayEndMinutes {
			// この日はここで打ち切り。残りは翌日の候補として返す
			return scheduled, attractions[i:]
		}
		scheduled = append(scheduled, newItineraryItem(citySlug, day, len(scheduled), start, end, transfer, attraction))
		clock = end
		prev = attraction
	}
	return scheduled, nil
}

// scheduleAll scheduleDayと同じ時刻割り当てを、取りこぼしなしで行う
func scheduleAll(citySlug string, day int, attractions []*model.Attraction) []*model.ItineraryItem {
	var scheduled []*model.ItineraryItem
	clock := model.DayStartMinutes
	var prev *model.Attraction

	for i, attraction := range attractions {
		transfer := 0
		if prev != nil {
			transfer = helper.TransferMinutes(prev.ToLatLng(), attraction.ToLatLng())
		}
		start := clock + transfer
		end := start + helper.HoursToMinutes(attraction.DurationHours)
		scheduled = append(scheduled, newItineraryItem(citySlug, day, i, start, end, transfer, attraction))
		clock = end
		prev = attraction
	}
	return scheduled
}

// visitEndMinutes 現在時刻から次のスポット訪問を終えた時点の時刻を計算する
func visitEndMinutes(clock int, prev, next *model.Attraction) int {
	transfer := 0
	if prev != nil {
		transfer = helper.TransferMinutes(prev.ToLatLng(), next.ToLatLng())
	}
	return clock + transfer + helper.HoursToMinutes(next.DurationHours)
}

// newItineraryItem 都市・スポット・日・スロット位置から決定的なIDでアイテムを生成する
func newItineraryItem(citySlug string, day, slot, startMin, endMin, transfer int, attraction *model.Attraction) *model.ItineraryItem {
	a := *attraction
	return &model.ItineraryItem{
		ID:              fmt.Sprintf("%s-%s-d%d-s%d", citySlug, attraction.ID, day, slot),
		Day:             day,
		StartTime:       helper.MinutesToClock(startMin),
		EndTime:         helper.MinutesToClock(endMin),
		Attraction:      &a,
		TransferMinutes: transfer,
	}
}
