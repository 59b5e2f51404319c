package repository

import (
	"context"

	"TripAgent-App/internal/domain/model"
)

// PlanStore セッション中の旅行プランをIDで保持するストア
// 編集操作は「取得 → 純粋関数で変換 → 上書き」の順で直列に適用する
type PlanStore interface {
	// Save 新しいプランを保存する
	Save(ctx context.Context, plan *model.TravelPlan) error

	// Get 指定IDのプランを取得する
	Get(ctx context.Context, planID string) (*model.TravelPlan, error)

	// Overwrite 指定IDのプランを新しい値で上書きする
	Overwrite(ctx context.Context, planID string, plan *model.TravelPlan) error
}
