package repository

import (
	"context"
	"fmt"
	"log"
	"time"

	"cloud.google.com/go/firestore"

	"TripAgent-App/internal/domain/model"
	"TripAgent-App/internal/domain/repository"
)

const (
	planCollection = "travelPlans"
	planTTLHours   = 24 // 編集セッションの想定寿命
)

// FirestorePlanStore Firestoreを使用したプランストア
// セッション台帳として扱い、編集のたびにドキュメントを丸ごと上書きする
type FirestorePlanStore struct {
	client *firestore.Client
}

// NewFirestorePlanStore 新しいFirestorePlanStoreインスタンスを作成
func NewFirestorePlanStore(client *firestore.Client) repository.PlanStore {
	return &FirestorePlanStore{client: client}
}

// firestorePlanDoc Firestoreドキュメントの構造。expireAtはTTLポリシーで参照される
type firestorePlanDoc struct {
	Plan     *model.TravelPlan `firestore:"plan"`
	ExpireAt time.Time         `firestore:"expireAt"`
}

// Save 新しいプランをTTL付きで保存する
func (s *FirestorePlanStore) Save(ctx context.Context, plan *model.TravelPlan) error {
	if plan.PlanID == "" {
		return fmt.Errorf("プランIDが設定されていません")
	}

	doc := firestorePlanDoc{
		Plan:     plan,
		ExpireAt: time.Now().Add(planTTLHours * time.Hour),
	}
	if _, err := s.client.Collection(planCollection).Doc(plan.PlanID).Set(ctx, doc); err != nil {
		log.Printf("❌ Failed to save travel plan %s: %v", plan.PlanID, err)
		return fmt.Errorf("プランの保存に失敗しました: %w", err)
	}

	log.Printf("✅ Travel plan saved: %s (expires in %d hours)", plan.PlanID, planTTLHours)
	return nil
}

// Get 指定IDのプランを取得する
func (s *FirestorePlanStore) Get(ctx context.Context, planID string) (*model.TravelPlan, error) {
	snap, err := s.client.Collection(planCollection).Doc(planID).Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("プラン %s が見つかりません: %w", planID, err)
	}

	var doc firestorePlanDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, fmt.Errorf("プランデータの復元に失敗しました: %w", err)
	}
	return doc.Plan, nil
}

// Overwrite 指定IDのプランを上書きする。TTLは編集のたびに延長する
func (s *FirestorePlanStore) Overwrite(ctx context.Context, planID string, plan *model.TravelPlan) error {
	if _, err := s.client.Collection(planCollection).Doc(planID).Get(ctx); err != nil {
		return fmt.Errorf("プラン %s が見つかりません: %w", planID, err)
	}

	doc := firestorePlanDoc{
		Plan:     plan,
		ExpireAt: time.Now().Add(planTTLHours * time.Hour),
	}
	if _, err := s.client.Collection(planCollection).Doc(planID).Set(ctx, doc); err != nil {
		return fmt.Errorf("プランの上書き保存に失敗しました: %w", err)
	}

	log.Printf("✅ Travel plan overwritten: %s", planID)
	return nil
}
