package helper

import (
	"sort"
	"strings"

	"TripAgent-App/internal/domain/model"
)

// FilterExcluded 除外IDに含まれないスポットのみを抽出する
func FilterExcluded(attractions []*model.Attraction, excludedIDs map[string]struct{}) []*model.Attraction {
	var filtered []*model.Attraction
	for _, a := range attractions {
		if _, ok := excludedIDs[a.ID]; !ok {
			filtered = append(filtered, a)
		}
	}
	return filtered
}

// OrderForDiversity カテゴリが隣り合わないようにスポットを並べ替える
// カテゴリごとにグループ化し、ラウンドロビンで取り出す。入力順を保つため決定的
func OrderForDiversity(attractions []*model.Attraction) []*model.Attraction {
	if len(attractions) <= 2 {
		return append([]*model.Attraction(nil), attractions...)
	}

	grouped := make(map[string][]*model.Attraction)
	var categories []string
	for _, a := range attractions {
		if _, ok := grouped[a.Category]; !ok {
			categories = append(categories, a.Category)
		}
		grouped[a.Category] = append(grouped[a.Category], a)
	}

	ordered := make([]*model.Attraction, 0, len(attractions))
	for len(ordered) < len(attractions) {
		progressed := false
		for _, cat := range categories {
			if len(grouped[cat]) == 0 {
				continue
			}
			ordered = append(ordered, grouped[cat][0])
			grouped[cat] = grouped[cat][1:]
			progressed = true
		}
		if !progressed {
			break
		}
	}
	return ordered
}

// SortByDistanceFrom 基準座標からの距離でスポットスライスをソートする
func SortByDistanceFrom(origin model.LatLng, targets []*model.Attraction) {
	sort.SliceStable(targets, func(i, j int) bool {
		distI := DistanceKm(origin, targets[i].ToLatLng())
		distJ := DistanceKm(origin, targets[j].ToLatLng())
		return distI < distJ
	})
}

// RemoveAttraction スライスから特定のスポットを削除する
func RemoveAttraction(attractions []*model.Attraction, targetID string) []*model.Attraction {
	var result []*model.Attraction
	for _, a := range attractions {
		if a.ID != targetID {
			result = append(result, a)
		}
	}
	return result
}

// CitySlug 都市名をID用のスラッグに変換する（小文字・空白はハイフン）
func CitySlug(cityName string) string {
	slug := strings.ToLower(strings.TrimSpace(cityName))
	slug = strings.Join(strings.Fields(slug), "-")
	return slug
}
