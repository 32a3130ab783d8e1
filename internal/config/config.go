package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	defaultPort       = "3000"
	defaultPGPort     = "5432"
	defaultPGSSLMode  = "disable"
	defaultServiceTag = "POI-Map-App"
)

// StoreDriver 周辺検索に使う地理空間ストアの種類
type StoreDriver string

const (
	StoreNone     StoreDriver = "none"
	StorePostGIS  StoreDriver = "postgis"
	StoreSupabase StoreDriver = "supabase"
)

// PostgresConfig PostGIS接続パラメータ（libpqのPG*環境変数と同じ名前）
type PostgresConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Database string
	SSLMode  string
}

// DSN lib/pq向けのkey=value形式の接続文字列を作成
// 値はすべて引用符で囲み、空の項目は省略してlib/pqの既定値に任せる
func (c PostgresConfig) DSN() string {
	pairs := []struct{ key, value string }{
		{"host", c.Host},
		{"port", c.Port},
		{"user", c.User},
		{"password", c.Password},
		{"dbname", c.Database},
		{"sslmode", c.SSLMode},
	}

	parts := make([]string, 0, len(pairs))
	for _, p := range pairs {
		if p.value == "" {
			continue
		}
		parts = append(parts, p.key+"="+quoteDSNValue(p.value))
	}
	return strings.Join(parts, " ")
}

// quoteDSNValue libpqの規則に従いバックスラッシュと単一引用符をエスケープして囲む
func quoteDSNValue(v string) string {
	v = strings.ReplaceAll(v, `\`, `\\`)
	v = strings.ReplaceAll(v, `'`, `\'`)
	return "'" + v + "'"
}

// SupabaseConfig Supabaseプロジェクトの接続情報
type SupabaseConfig struct {
	URL     string
	AnonKey string
}

// FirestoreConfig プレイス詳細を保持するFirestoreの設定
type FirestoreConfig struct {
	ProjectID       string
	CredentialsFile string
}

// Config アプリケーション全体の設定
type Config struct {
	ServiceName string
	Port        string
	// GoogleMapsAPIKey ブラウザ側の地図ウィジェット読み込みに使うキー
	GoogleMapsAPIKey string
	Postgres         PostgresConfig
	Supabase         SupabaseConfig
	Firestore        FirestoreConfig
}

// Load .envファイル（任意）と環境変数から設定を読み込む
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env file not found, using system environment variables")
	}
	return FromEnv(os.Getenv)
}

// FromEnv 環境変数の取得関数から設定を組み立てる
func FromEnv(getenv func(string) string) *Config {
	orDefault := func(key, d string) string {
		if v := getenv(key); v != "" {
			return v
		}
		return d
	}

	return &Config{
		ServiceName:      defaultServiceTag,
		Port:             orDefault("PORT", defaultPort),
		GoogleMapsAPIKey: getenv("GOOGLE_MAPS_API_KEY"),
		Postgres: PostgresConfig{
			Host:     getenv("PGHOST"),
			Port:     orDefault("PGPORT", defaultPGPort),
			User:     getenv("PGUSER"),
			Password: getenv("PGPASSWORD"),
			Database: getenv("PGDATABASE"),
			SSLMode:  orDefault("PGSSLMODE", defaultPGSSLMode),
		},
		Supabase: SupabaseConfig{
			URL:     getenv("SUPABASE_URL"),
			AnonKey: getenv("SUPABASE_ANON_KEY"),
		},
		Firestore: FirestoreConfig{
			ProjectID:       getenv("FIRESTORE_PROJECT_ID"),
			CredentialsFile: getenv("GOOGLE_APPLICATION_CREDENTIALS"),
		},
	}
}

// StoreDriver 設定内容から使用するストアを決める
// Supabaseの両変数が揃っていれば優先し、次にPGHOSTかPGDATABASEがあればPostGIS
func (c *Config) StoreDriver() StoreDriver {
	if c.Supabase.URL != "" && c.Supabase.AnonKey != "" {
		return StoreSupabase
	}
	if c.Postgres.Host != "" || c.Postgres.Database != "" {
		return StorePostGIS
	}
	return StoreNone
}

// FirestoreEnabled Firestoreのプレイス詳細を使うかどうか
func (c *Config) FirestoreEnabled() bool {
	return c.Firestore.ProjectID != ""
}

// Addr HTTPサーバーの待ち受けアドレス
func (c *Config) Addr() string {
	return ":" + c.Port
}
