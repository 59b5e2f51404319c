package service

import (
	"fmt"
	"math"
	"sort"

	"TripAgent-App/internal/domain/helper"
	"TripAgent-App/internal/domain/model"
)

// TransportRankService 出発地・目的地ペアに対する移動手段候補の生成とランキングを行う
type TransportRankService interface {
	// RankTransport ブレンドスコアの昇順で並んだ候補リストを返す（先頭がデフォルト選択）
	RankTransport(parsed *model.ParsedGoal) []*model.TransportOption
}

type transportRankService struct{}

// NewTransportRankService 新しいTransportRankServiceインスタンスを作成
func NewTransportRankService() TransportRankService {
	return &transportRankService{}
}

// RankTransport 距離に応じた候補を合成し、価格・所要時間・CO2のブレンドスコアで順位付けする
func (s *transportRankService) RankTransport(parsed *model.ParsedGoal) []*model.TransportOption {
	distKm := legDistanceKm(parsed)
	pairSlug := fmt.Sprintf("%s-%s",
		helper.CitySlug(parsed.OriginName()),
		helper.CitySlug(parsed.DestinationName()))

	var options []*model.TransportOption
	for _, mode := range model.GetAllModes() {
		if !modePlausible(mode, distKm) {
			continue
		}
		options = append(options, synthesizeOption(mode, pairSlug, distKm))
	}

	// 成立する手段が1つしかない超長距離区間では、同一手段の廉価な深夜便を追加して
	// 比較対象を確保する
	if len(options) == 1 {
		options = append(options, synthesizeRedEyeVariant(options[0], pairSlug))
	}

	rankByBlendedScore(options)
	return options
}

// legDistanceKm 区間距離を決定する。どちらかの都市が未特定なら固定の想定距離を使う
func legDistanceKm(parsed *model.ParsedGoal) float64 {
	if parsed.OriginCity == nil || parsed.DestinationCity == nil {
		return model.DefaultLegDistanceKm
	}
	return helper.DistanceKm(parsed.OriginCity.ToLatLng(), parsed.DestinationCity.ToLatLng())
}

// modePlausible 距離しきい値による移動手段の成立判定
func modePlausible(mode string, distKm float64) bool {
	switch mode {
	case model.ModeFlight:
		return distKm > model.FlightMinDistanceKm
	case model.ModeTrain:
		return distKm <= model.TrainMaxDistanceKm
	case model.ModeBus:
		return distKm <= model.BusMaxDistanceKm
	}
	return false
}

// synthesizeOption 距離と固定係数から移動手段候補を決定的に合成する
func synthesizeOption(mode, pairSlug string, distKm float64) *model.TransportOption {
	var speed, overhead, base, perKm, carbonPerKm float64
	switch mode {
	case model.ModeFlight:
		speed, overhead = model.FlightSpeedKmph, model.FlightOverheadHours
		base, perKm, carbonPerKm = model.FlightBaseUSD, model.FlightPerKmUSD, model.FlightCarbonPerKm
	case model.ModeTrain:
		speed, overhead = model.TrainSpeedKmph, model.TrainOverheadHours
		base, perKm, carbonPerKm = model.TrainBaseUSD, model.TrainPerKmUSD, model.TrainCarbonPerKm
	case model.ModeBus:
		speed, overhead = model.BusSpeedKmph, model.BusOverheadHours
		base, perKm, carbonPerKm = model.BusBaseUSD, model.BusPerKmUSD, model.BusCarbonPerKm
	}

	duration := math.Round((distKm/speed+overhead)*10) / 10
	price := math.Round(base + perKm*distKm)
	carbon := math.Round(carbonPerKm*distKm*10) / 10

	departure := model.ModeDepartureAnchorMap[mode]
	arrival := helper.MinutesToClock(helper.ClockToMinutes(departure) + helper.HoursToMinutes(duration))

	return &model.TransportOption{
		ID:            fmt.Sprintf("opt-%s-%s", pairSlug, mode),
		Mode:          mode,
		ModeLabel:     model.GetModeDisplayName(mode),
		Provider:      model.ModeProviderMap[mode],
		PriceUSD:      price,
		DurationHours: duration,
		DepartureTime: departure,
		ArrivalTime:   arrival,
		CarbonKg:      carbon,
	}
}

// synthesizeRedEyeVariant 既存候補の深夜便バリアントを合成する（やや安く、やや遅い）
func synthesizeRedEyeVariant(base *model.TransportOption, pairSlug string) *model.TransportOption {
	variant := base.Clone()
	variant.ID = fmt.Sprintf("opt-%s-%s-redeye", pairSlug, base.Mode)
	variant.Provider = base.Provider + " (Red-eye)"
	variant.PriceUSD = math.Round(base.PriceUSD * 0.8)
	variant.DurationHours = math.Round(base.DurationHours*1.15*10) / 10
	variant.DepartureTime = "23:30"
	variant.ArrivalTime = helper.MinutesToClock(
		helper.ClockToMinutes(variant.DepartureTime) + helper.HoursToMinutes(variant.DurationHours))
	return variant
}

// rankByBlendedScore 正規化した価格・所要時間・CO2の加重和で昇順ソートする
// 同点時はモードの優先順位（flight > train > bus）で決定的に並べる
func rankByBlendedScore(options []*model.TransportOption) {
	if len(options) == 0 {
		return
	}

	var maxPrice, maxDuration, maxCarbon float64
	for _, o := range options {
		maxPrice = math.Max(maxPrice, o.PriceUSD)
		maxDuration = math.Max(maxDuration, o.DurationHours)
		maxCarbon = math.Max(maxCarbon, o.CarbonKg)
	}

	score := func(o *model.TransportOption) float64 {
		var s float64
		if maxPrice > 0 {
			s += model.RankWeightPrice * (o.PriceUSD / maxPrice)
		}
		if maxDuration > 0 {
			s += model.RankWeightDuration * (o.DurationHours / maxDuration)
		}
		if maxCarbon > 0 {
			s += model.RankWeightCarbon * (o.CarbonKg / maxCarbon)
		}
		return s
	}

	sort.SliceStable(options, func(i, j int) bool {
		si, sj := score(options[i]), score(options[j])
		if si != sj {
			return si < sj
		}
		return model.ModePriorityMap[options[i].Mode] < model.ModePriorityMap[options[j].Mode]
	})
}
