package model

import (
	"sort"
	"time"
)

// ParsedGoal 自由文の旅行ゴールから抽出した出発地・目的地・日数
// OriginCity/OriginFallbackはどちらか一方のみが設定される（目的地側も同様）
type ParsedGoal struct {
	OriginCity          *City  `json:"origin_city"`
	OriginFallback      string `json:"origin_fallback,omitempty"`
	DestinationCity     *City  `json:"destination_city"`
	DestinationFallback string `json:"destination_fallback,omitempty"`
	DurationDays        int    `json:"duration_days"`
}

// DestinationName 目的地の表示名を取得する（都市未特定ならフォールバック文字列）
func (g *ParsedGoal) DestinationName() string {
	if g.DestinationCity != nil {
		return g.DestinationCity.Name
	}
	return g.DestinationFallback
}

// OriginName 出発地の表示名を取得する（都市未特定ならフォールバック文字列）
func (g *ParsedGoal) OriginName() string {
	if g.OriginCity != nil {
		return g.OriginCity.Name
	}
	return g.OriginFallback
}

// Clone ParsedGoalの値コピーを返す
func (g *ParsedGoal) Clone() *ParsedGoal {
	if g == nil {
		return nil
	}
	c := *g
	if g.OriginCity != nil {
		oc := *g.OriginCity
		c.OriginCity = &oc
	}
	if g.DestinationCity != nil {
		dc := *g.DestinationCity
		c.DestinationCity = &dc
	}
	return &c
}

// ItineraryItem 1件のスポット訪問予定（時間枠と移動時間つき）
type ItineraryItem struct {
	ID              string      `json:"id"`
	Day             int         `json:"day"` // 1〜DurationDays
	StartTime       string      `json:"start_time"` // HH:MM
	EndTime         string      `json:"end_time"`   // HH:MM（同日内でEndTime > StartTime）
	Attraction      *Attraction `json:"attraction"`
	TransferMinutes int         `json:"transfer_minutes"` // 直前の地点からの移動時間
}

// Clone ItineraryItemの値コピーを返す
func (i *ItineraryItem) Clone() *ItineraryItem {
	if i == nil {
		return nil
	}
	c := *i
	if i.Attraction != nil {
		a := *i.Attraction
		c.Attraction = &a
	}
	return &c
}

// PlanTotals プラン全体の集計値
type PlanTotals struct {
	EstimatedSpendUSD float64 `json:"estimated_spend_usd"`
	ActivityCount     int     `json:"activity_count"`
}

// TravelPlan 旅行プラン全体。編集操作のたびに新しい値として再構築される
type TravelPlan struct {
	PlanID                string             `json:"plan_id"`
	GeneratedAt           time.Time          `json:"generated_at"`
	Parsed                *ParsedGoal        `json:"parsed"`
	TransportOptions      []*TransportOption `json:"transport_options"`
	SelectedTransport     *TransportOption   `json:"selected_transport"`
	Itinerary             []*ItineraryItem   `json:"itinerary"`
	Totals                PlanTotals         `json:"totals"`
	ExcludedAttractionIDs []string           `json:"excluded_attraction_ids,omitempty"`
}

// FindTransportOption 指定IDの移動手段候補を取得する（存在しなければnil）
func (p *TravelPlan) FindTransportOption(optionID string) *TransportOption {
	for _, o := range p.TransportOptions {
		if o.ID == optionID {
			return o
		}
	}
	return nil
}

// FindItineraryItem 指定IDの旅程アイテムを取得する（存在しなければnil）
func (p *TravelPlan) FindItineraryItem(itemID string) *ItineraryItem {
	for _, item := range p.Itinerary {
		if item.ID == itemID {
			return item
		}
	}
	return nil
}

// ItemsOnDay 指定日の旅程アイテムを開始時刻順で取得する
func (p *TravelPlan) ItemsOnDay(day int) []*ItineraryItem {
	var items []*ItineraryItem
	for _, item := range p.Itinerary {
		if item.Day == day {
			items = append(items, item)
		}
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].StartTime < items[j].StartTime
	})
	return items
}

// HasAttraction 指定スポットが旅程に含まれているかを判定
func (p *TravelPlan) HasAttraction(attractionID string) bool {
	for _, item := range p.Itinerary {
		if item.Attraction != nil && item.Attraction.ID == attractionID {
			return true
		}
	}
	return false
}

// IsExcluded 指定スポットがこのプランのセッション内で除外済みかを判定
func (p *TravelPlan) IsExcluded(attractionID string) bool {
	for _, id := range p.ExcludedAttractionIDs {
		if id == attractionID {
			return true
		}
	}
	return false
}

// Clone プラン全体のディープコピーを返す。編集操作は必ずコピーに対して行う
func (p *TravelPlan) Clone() *TravelPlan {
	if p == nil {
		return nil
	}
	c := *p
	c.Parsed = p.Parsed.Clone()
	c.TransportOptions = make([]*TransportOption, len(p.TransportOptions))
	for i, o := range p.TransportOptions {
		c.TransportOptions[i] = o.Clone()
	}
	c.SelectedTransport = p.SelectedTransport.Clone()
	c.Itinerary = make([]*ItineraryItem, len(p.Itinerary))
	for i, item := range p.Itinerary {
		c.Itinerary[i] = item.Clone()
	}
	if p.ExcludedAttractionIDs != nil {
		c.ExcludedAttractionIDs = append([]string(nil), p.ExcludedAttractionIDs...)
	}
	return &c
}

// GeneratePlanRequest プラン生成リクエスト
type GeneratePlanRequest struct {
	GoalText string `json:"goal_text" validate:"required"`
}

// SelectTransportRequest 移動手段変更リクエスト
type SelectTransportRequest struct {
	OptionID string `json:"option_id" validate:"required"`
}

// ItineraryEditRequest 旅程アイテムに対する編集リクエスト（日の入れ替え・削除）
type ItineraryEditRequest struct {
	ItemID string `json:"item_id" validate:"required"`
}
