package repository

import (
	"encoding/json"
	"fmt"
	"log"

	"TripAgent-App/internal/domain/model"
	"TripAgent-App/internal/domain/repository"
	"TripAgent-App/internal/infrastructure/database"
)

// LoadKnowledgeFromSupabase Supabase (PostgREST) から参照データを一括ロードし、
// 読み取り専用のインメモリスナップショットとして返す
func LoadKnowledgeFromSupabase(client *database.SupabaseClient) (repository.KnowledgeRepository, error) {
	var cities []*model.City
	data, _, err := client.GetClient().From("cities").Select("*", "exact", false).Execute()
	if err != nil {
		return nil, fmt.Errorf("都市データの取得失敗: %w", err)
	}
	if err := json.Unmarshal([]byte(data), &cities); err != nil {
		return nil, fmt.Errorf("都市データのJSONアンマーシャル失敗: %w", err)
	}

	var aliasRows []struct {
		Alias    string `json:"alias"`
		CityName string `json:"city_name"`
	}
	data, _, err = client.GetClient().From("city_aliases").Select("*", "exact", false).Execute()
	if err != nil {
		return nil, fmt.Errorf("都市エイリアスの取得失敗: %w", err)
	}
	if err := json.Unmarshal([]byte(data), &aliasRows); err != nil {
		return nil, fmt.Errorf("都市エイリアスのJSONアンマーシャル失敗: %w", err)
	}
	aliases := make(map[string]string, len(aliasRows))
	for _, row := range aliasRows {
		aliases[row.Alias] = row.CityName
	}

	var attractions []*model.Attraction
	data, _, err = client.GetClient().From("attractions").Select("*", "exact", false).Execute()
	if err != nil {
		return nil, fmt.Errorf("スポットデータの取得失敗: %w", err)
	}
	if err := json.Unmarshal([]byte(data), &attractions); err != nil {
		return nil, fmt.Errorf("スポットデータのJSONアンマーシャル失敗: %w", err)
	}

	log.Printf("✅ ナレッジベースをSupabaseからロード: 都市%d件 / スポット%d件", len(cities), len(attractions))
	return NewKnowledgeSnapshot(cities, aliases, attractions), nil
}
