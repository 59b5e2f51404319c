package helper

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"

	"TripAgent-App/internal/domain/model"
)

// DistanceKm 2地点間のハーバサイン距離を計算する (km)
func DistanceKm(p1, p2 model.LatLng) float64 {
	a := orb.Point{p1.Lng, p1.Lat}
	b := orb.Point{p2.Lng, p2.Lat}
	return geo.DistanceHaversine(a, b) / 1000.0
}

// AttractionDistanceKm 2つのスポット間の距離を計算する (km)
func AttractionDistanceKm(a1, a2 *model.Attraction) float64 {
	return DistanceKm(a1.ToLatLng(), a2.ToLatLng())
}

// TransferMinutes 2地点間の移動時間を見積もる（分）
// 市内移動の想定速度で換算し、極端なスケジュールを避けるため上下限にクランプする
func TransferMinutes(from, to model.LatLng) int {
	distKm := DistanceKm(from, to)
	minutes := int(math.Round(distKm / model.TransferSpeedKmph * 60))
	if minutes < model.MinTransferMinutes {
		return model.MinTransferMinutes
	}
	if minutes > model.MaxTransferMinutes {
		return model.MaxTransferMinutes
	}
	return minutes
}
