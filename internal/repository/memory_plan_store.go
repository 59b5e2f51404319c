package repository

import (
	"context"
	"fmt"
	"sync"

	"TripAgent-App/internal/domain/model"
	"TripAgent-App/internal/domain/repository"
)

// MemoryPlanStore プロセス内でプランを保持するデフォルトのプランストア
type MemoryPlanStore struct {
	mu    sync.RWMutex
	plans map[string]*model.TravelPlan
}

// NewMemoryPlanStore 新しいMemoryPlanStoreインスタンスを作成
func NewMemoryPlanStore() repository.PlanStore {
	return &MemoryPlanStore{plans: make(map[string]*model.TravelPlan)}
}

// Save 新しいプランを保存する
func (s *MemoryPlanStore) Save(ctx context.Context, plan *model.TravelPlan) error {
	if plan.PlanID == "" {
		return fmt.Errorf("プランIDが設定されていません")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.plans[plan.PlanID] = plan.Clone()
	return nil
}

// Get 指定IDのプランを取得する
func (s *MemoryPlanStore) Get(ctx context.Context, planID string) (*model.TravelPlan, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	plan, ok := s.plans[planID]
	if !ok {
		return nil, fmt.Errorf("プラン %s が見つかりません", planID)
	}
	return plan.Clone(), nil
}

// Overwrite 指定IDのプランを新しい値で上書きする
func (s *MemoryPlanStore) Overwrite(ctx context.Context, planID string, plan *model.TravelPlan) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.plans[planID]; !ok {
		return fmt.Errorf("プラン %s が見つかりません", planID)
	}
	s.plans[planID] = plan.Clone()
	return nil
}
