package model

// TransportModeConstants アプリケーションで使用する移動手段の定数
const (
	ModeFlight = "flight"
	ModeTrain  = "train"
	ModeBus    = "bus"
)

// CategoryConstants スポットのカテゴリ定数
const (
	CategoryFood      = "food"
	CategoryCulture   = "culture"
	CategoryLandmark  = "landmark"
	CategoryNature    = "nature"
	CategoryNightlife = "nightlife"
	CategoryShopping  = "shopping"
)

// ModeNameMap 移動手段IDから表示名へのマッピング
var ModeNameMap = map[string]string{
	ModeFlight: "Flight",
	ModeTrain:  "High-speed Rail",
	ModeBus:    "Coach",
}

// ModePriorityMap スコア同点時の優先順位（小さいほど優先）
var ModePriorityMap = map[string]int{
	ModeFlight: 0,
	ModeTrain:  1,
	ModeBus:    2,
}

// ModeProviderMap 移動手段ごとの代表的な事業者名
var ModeProviderMap = map[string]string{
	ModeFlight: "Horizon Air",
	ModeTrain:  "Continental Rail",
	ModeBus:    "Metro Coach Lines",
}

// ModeDepartureAnchorMap 移動手段ごとの標準出発時刻（HH:MM）
var ModeDepartureAnchorMap = map[string]string{
	ModeFlight: "09:10",
	ModeTrain:  "07:45",
	ModeBus:    "06:30",
}

// GetModeDisplayName 移動手段IDから表示名を取得する
func GetModeDisplayName(mode string) string {
	if name, ok := ModeNameMap[mode]; ok {
		return name
	}
	return mode // デフォルトはそのまま返す
}

// GetAllModes 全移動手段の一覧を取得する
func GetAllModes() []string {
	return []string{
		ModeFlight,
		ModeTrain,
		ModeBus,
	}
}

// GetAllCategories 全カテゴリの一覧を取得する
func GetAllCategories() []string {
	return []string{
		CategoryFood,
		CategoryCulture,
		CategoryLandmark,
		CategoryNature,
		CategoryNightlife,
		CategoryShopping,
	}
}

// 移動手段ごとの係数（距離から価格・所要時間・CO2排出量を決定的に導出する）
const (
	FlightSpeedKmph     = 750.0
	TrainSpeedKmph      = 180.0
	BusSpeedKmph        = 70.0
	FlightOverheadHours = 2.5 // 空港での手続き・移動を含む固定オーバーヘッド
	TrainOverheadHours  = 0.5
	BusOverheadHours    = 0.25
	FlightBaseUSD       = 50.0
	TrainBaseUSD        = 15.0
	BusBaseUSD          = 5.0
	FlightPerKmUSD      = 0.11
	TrainPerKmUSD       = 0.07
	BusPerKmUSD         = 0.035
	FlightCarbonPerKm   = 0.150 // kg-CO2e/km
	TrainCarbonPerKm    = 0.035
	BusCarbonPerKm      = 0.060
)

// 移動手段の成立条件（ナレッジベースの経路ルールを距離しきい値で表現する）
const (
	BusMaxDistanceKm     = 1500.0
	TrainMaxDistanceKm   = 6000.0
	FlightMinDistanceKm  = 300.0
	DefaultLegDistanceKm = 1200.0 // 都市が未特定の場合に用いる想定距離
)

// 移動手段ランキングの重み（正規化した価格・所要時間・CO2の加重和）
const (
	RankWeightPrice    = 0.4
	RankWeightDuration = 0.4
	RankWeightCarbon   = 0.2
)

// 旅程構築のポリシー定数
const (
	DayStartMinutes     = 9 * 60  // 1日の開始時刻 09:00
	DayEndMinutes       = 21 * 60 // 1日の終了時刻 21:00
	TransferSpeedKmph   = 25.0    // 市内移動の想定速度
	MinTransferMinutes  = 15
	MaxTransferMinutes  = 90
	MaxActivitiesPerDay = 3
	LodgingPerNightUSD  = 120.0 // 1泊あたりの宿泊費（概算に含める）
	DefaultDurationDays = 2
	MaxDurationDays     = 2 // 現状は2日プランのみ対応
)

// パース失敗時のフォールバック文字列
const (
	FallbackOriginName      = "your origin"
	FallbackDestinationName = "your destination"
)
