package repository

import (
	"context"
	"fmt"
	"log"

	"TripAgent-App/internal/domain/model"
	"TripAgent-App/internal/domain/repository"
	"TripAgent-App/internal/infrastructure/database"
)

// LoadKnowledgeFromPostgres PostgreSQLから参照データを一括ロードし、
// 読み取り専用のインメモリスナップショットとして返す
// プランエンジンは純粋関数群なので、DBアクセスは起動時のこの1回に限られる
func LoadKnowledgeFromPostgres(ctx context.Context, client *database.PostgreSQLClient) (repository.KnowledgeRepository, error) {
	cities, err := loadCities(ctx, client)
	if err != nil {
		return nil, fmt.Errorf("都市データのロードに失敗: %w", err)
	}

	aliases, err := loadCityAliases(ctx, client)
	if err != nil {
		return nil, fmt.Errorf("都市エイリアスのロードに失敗: %w", err)
	}

	attractions, err := loadAttractions(ctx, client)
	if err != nil {
		return nil, fmt.Errorf("スポットデータのロードに失敗: %w", err)
	}

	log.Printf("✅ ナレッジベースをPostgreSQLからロード: 都市%d件 / スポット%d件", len(cities), len(attractions))
	return NewKnowledgeSnapshot(cities, aliases, attractions), nil
}

func loadCities(ctx context.Context, client *database.PostgreSQLClient) ([]*model.City, error) {
	rows, err := client.DB.QueryContext(ctx,
		`SELECT name, country_or_region, lat, lng FROM cities ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cities []*model.City
	for rows.Next() {
		var c model.City
		if err := rows.Scan(&c.Name, &c.CountryOrRegion, &c.Lat, &c.Lng); err != nil {
			return nil, err
		}
		cities = append(cities, &c)
	}
	return cities, rows.Err()
}

func loadCityAliases(ctx context.Context, client *database.PostgreSQLClient) (map[string]string, error) {
	rows, err := client.DB.QueryContext(ctx,
		`SELECT alias, city_name FROM city_aliases`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	aliases := make(map[string]string)
	for rows.Next() {
		var alias, cityName string
		if err := rows.Scan(&alias, &cityName); err != nil {
			return nil, err
		}
		aliases[alias] = cityName
	}
	return aliases, rows.Err()
}

func loadAttractions(ctx context.Context, client *database.PostgreSQLClient) ([]*model.Attraction, error) {
	rows, err := client.DB.QueryContext(ctx,
		`SELECT id, city_name, name, description, category, cost_estimate_usd, duration_hours, best_for, lat, lng
		 FROM attractions ORDER BY city_name, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var attractions []*model.Attraction
	for rows.Next() {
		var a model.Attraction
		if err := rows.Scan(&a.ID, &a.CityName, &a.Name, &a.Description, &a.Category,
			&a.CostEstimateUSD, &a.DurationHours, &a.BestFor, &a.Lat, &a.Lng); err != nil {
			return nil, err
		}
		attractions = append(attractions, &a)
	}
	return attractions, rows.Err()
}
