package database

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"POI-Map-App/internal/config"
)

// PostgreSQLClient PostGIS直接接続クライアント
// コネクションプールはdatabase/sqlに任せ、ここでは追加のロックを持たない
type PostgreSQLClient struct {
	DB *sqlx.DB
}

// NewPostgreSQLClient 新しいPostgreSQLクライアントを作成
func NewPostgreSQLClient(cfg config.PostgresConfig) (*PostgreSQLClient, error) {
	if cfg.Host == "" && cfg.Database == "" {
		return nil, fmt.Errorf("PGHOST/PGDATABASE環境変数が設定されていません")
	}

	db, err := sqlx.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("PostgreSQL接続の初期化に失敗: %w", err)
	}

	return &PostgreSQLClient{
		DB: db,
	}, nil
}

// Close データベース接続を閉じる
func (pc *PostgreSQLClient) Close() error {
	if pc.DB != nil {
		return pc.DB.Close()
	}
	return nil
}

// HealthCheck データベース接続のヘルスチェック
func (pc *PostgreSQLClient) HealthCheck(ctx context.Context) error {
	if pc.DB == nil {
		return fmt.Errorf("PostgreSQLクライアントが初期化されていません")
	}
	return pc.DB.PingContext(ctx)
}
