package model

// Attraction 都市に属する観光スポットを表す不変の参照エンティティ
type Attraction struct {
	ID              string  `json:"id" db:"id"`
	CityName        string  `json:"city_name" db:"city_name"`
	Name            string  `json:"name" db:"name"`
	Description     string  `json:"description" db:"description"`
	Category        string  `json:"category" db:"category"`
	CostEstimateUSD float64 `json:"cost_estimate_usd" db:"cost_estimate_usd"`
	DurationHours   float64 `json:"duration_hours" db:"duration_hours"`
	BestFor         string  `json:"best_for" db:"best_for"`
	Lat             float64 `json:"lat" db:"lat"`
	Lng             float64 `json:"lng" db:"lng"`
}

// ToLatLng スポットの座標をLatLng型に変換
func (a *Attraction) ToLatLng() LatLng {
	return LatLng{Lat: a.Lat, Lng: a.Lng}
}

// HasCategory スポットが指定されたカテゴリかどうかを判定
func (a *Attraction) HasCategory(category string) bool {
	return a.Category == category
}
