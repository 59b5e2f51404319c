package repository

import "TripAgent-App/internal/domain/model"

// KnowledgeRepository 都市・スポット・経路ルールの静的な参照データへのアクセスを提供する
// 実装は起動時に一度だけロードされ、以降は読み取り専用として安全に共有できる
type KnowledgeRepository interface {
	// FindCity 都市名（エイリアス含む・大文字小文字を区別しない）から都市を検索する
	FindCity(name string) *model.City

	// Cities 登録されている全都市を取得する
	Cities() []*model.City

	// AttractionsByCity 指定都市のスポット一覧を取得する（未登録の都市は空）
	AttractionsByCity(cityName string) []*model.Attraction

	// FallbackAttractions 目的地が特定できない場合に使う汎用スポット一覧を取得する
	FallbackAttractions() []*model.Attraction
}
