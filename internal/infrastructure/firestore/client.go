package firestore

import (
	"context"
	"fmt"
	"log"
	"os"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/option"
)

// FirestoreClient Firestoreクライアントのラッパー
type FirestoreClient struct {
	client *firestore.Client
}

// NewFirestoreClient 新しいFirestoreクライアントを作成
// Cloud Run上ではデフォルト認証、ローカルでは認証ファイルを使用する
func NewFirestoreClient(ctx context.Context, projectID string) (*FirestoreClient, error) {
	isCloudRun := os.Getenv("K_SERVICE") != ""

	var client *firestore.Client
	var err error

	if isCloudRun {
		client, err = firestore.NewClient(ctx, projectID)
	} else {
		credentialsFile := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS")
		if credentialsFile != "" {
			if _, statErr := os.Stat(credentialsFile); statErr == nil {
				client, err = firestore.NewClient(ctx, projectID, option.WithCredentialsFile(credentialsFile))
			} else {
				log.Printf("⚠️ Credentials file not found: %s, falling back to default authentication", credentialsFile)
				client, err = firestore.NewClient(ctx, projectID)
			}
		} else {
			client, err = firestore.NewClient(ctx, projectID)
		}
	}

	if err != nil {
		return nil, fmt.Errorf("failed to create Firestore client: %w", err)
	}

	log.Printf("✅ Firestore client initialized for project: %s", projectID)
	return &FirestoreClient{client: client}, nil
}

// Close クライアントを閉じる
func (fc *FirestoreClient) Close() error {
	return fc.client.Close()
}

// GetClient Firestoreクライアントを取得
func (fc *FirestoreClient) GetClient() *firestore.Client {
	return fc.client
}
