package model

// TransportOption 出発地と目的地のペアに対して生成される移動手段の候補
type TransportOption struct {
	ID            string  `json:"id"`
	Mode          string  `json:"mode"`
	ModeLabel     string  `json:"mode_label"` // UI向けの表示名（Flightなど）
	Provider      string  `json:"provider"`
	PriceUSD      float64 `json:"price_usd"`
	DurationHours float64 `json:"duration_hours"`
	DepartureTime string  `json:"departure_time"` // HH:MM（現地時刻）
	ArrivalTime   string  `json:"arrival_time"`   // HH:MM（現地時刻）
	CarbonKg      float64 `json:"carbon_kg"`
}

// Clone TransportOptionの値コピーを返す
func (o *TransportOption) Clone() *TransportOption {
	if o == nil {
		return nil
	}
	c := *o
	return &c
}
