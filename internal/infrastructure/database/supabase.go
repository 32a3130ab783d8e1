package database

import (
	"fmt"

	"github.com/supabase-community/supabase-go"

	"POI-Map-App/internal/config"
)

// SupabaseClient Supabaseクライアントのラッパー
type SupabaseClient struct {
	Client *supabase.Client
	url    string
}

// NewSupabaseClient 新しいSupabaseクライアントを作成
func NewSupabaseClient(cfg config.SupabaseConfig) (*SupabaseClient, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("SUPABASE_URL環境変数が設定されていません")
	}
	if cfg.AnonKey == "" {
		return nil, fmt.Errorf("SUPABASE_ANON_KEY環境変数が設定されていません")
	}

	client, err := supabase.NewClient(cfg.URL, cfg.AnonKey, &supabase.ClientOptions{})
	if err != nil {
		return nil, fmt.Errorf("Supabaseクライアントの初期化に失敗: %w", err)
	}

	return &SupabaseClient{
		Client: client,
		url:    cfg.URL,
	}, nil
}

// GetClient Supabaseクライアントを取得
func (sc *SupabaseClient) GetClient() *supabase.Client {
	return sc.Client
}

// URL 接続先のプロジェクトURL
func (sc *SupabaseClient) URL() string {
	return sc.url
}
