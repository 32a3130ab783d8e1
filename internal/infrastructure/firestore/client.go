package firestore

import (
	"context"
	"fmt"
	"log"
	"os"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/option"

	"POI-Map-App/internal/config"
)

// FirestoreClient プレイス詳細ドキュメントを読むためのFirestoreクライアント
type FirestoreClient struct {
	client *firestore.Client
}

// NewFirestoreClient 認証情報ファイルがあればそれを使い、無ければデフォルト認証で接続する
func NewFirestoreClient(ctx context.Context, cfg config.FirestoreConfig) (*FirestoreClient, error) {
	if cfg.ProjectID == "" {
		return nil, fmt.Errorf("FIRESTORE_PROJECT_ID環境変数が設定されていません")
	}

	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		if _, err := os.Stat(cfg.CredentialsFile); err != nil {
			log.Printf("⚠️ Credentials file not found: %s, trying with default authentication", cfg.CredentialsFile)
		} else {
			log.Printf("📄 Using credentials file: %s", cfg.CredentialsFile)
			opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
		}
	}

	client, err := firestore.NewClient(ctx, cfg.ProjectID, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Firestore client: %w", err)
	}
	log.Printf("✅ Firestore client initialized for project: %s", cfg.ProjectID)

	return &FirestoreClient{client: client}, nil
}

func (fc *FirestoreClient) Close() error {
	return fc.client.Close()
}

func (fc *FirestoreClient) GetClient() *firestore.Client {
	return fc.client
}
