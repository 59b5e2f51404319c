package model

// LatLng 緯度経度を表す基本的な型（距離計算などで使用）
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// City ナレッジベースに登録された都市を表す不変の参照エンティティ
type City struct {
	Name            string  `json:"name" db:"name"`
	CountryOrRegion string  `json:"country_or_region" db:"country_or_region"`
	Lat             float64 `json:"lat" db:"lat"`
	Lng             float64 `json:"lng" db:"lng"`
}

// ToLatLng 都市の座標をLatLng型に変換
func (c *City) ToLatLng() LatLng {
	return LatLng{Lat: c.Lat, Lng: c.Lng}
}
