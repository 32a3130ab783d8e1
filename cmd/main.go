package main

import (
	"context"
	"log"
	"time"

	"POI-Map-App/internal/config"
	domainrepo "POI-Map-App/internal/domain/repository"
	"POI-Map-App/internal/domain/service"
	"POI-Map-App/internal/handler"
	"POI-Map-App/internal/infrastructure/database"
	"POI-Map-App/internal/infrastructure/firestore"
	"POI-Map-App/internal/infrastructure/metrics"
	"POI-Map-App/internal/repository"
)

const startupCheckTimeout = 5 * time.Second

func main() {
	cfg := config.Load()
	ctx := context.Background()

	liveRepo, closeStore := openPOIStore(ctx, cfg)
	defer closeStore()

	detailsRepo, closeDetails := openPlaceDetails(ctx, cfg)
	defer closeDetails()

	searchService := service.NewPOISearchService(liveRepo, repository.NewSamplePOIsRepository())
	detailService := service.NewPlaceDetailService(detailsRepo)
	recorder := metrics.NewRecorder()

	r := handler.NewRouter(handler.RouterDeps{
		POIs:             handler.NewPOIsHandler(searchService, recorder),
		Places:           handler.NewPlacesHandler(detailService, recorder),
		Health:           handler.NewHealthHandler(cfg.ServiceName, searchService),
		Metrics:          recorder,
		GoogleMapsAPIKey: cfg.GoogleMapsAPIKey,
	})

	log.Printf("🚀 %s server starting on %s (data source: %s)", cfg.ServiceName, cfg.Addr(), searchService.DataSource())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("❌ サーバーの起動に失敗: %v", err)
	}
}

// openPOIStore 設定されたストアに接続する。未設定や到達不能の場合はnil（サンプルデータで応答）
func openPOIStore(ctx context.Context, cfg *config.Config) (domainrepo.POIsRepository, func()) {
	noop := func() {}

	var (
		repo    domainrepo.POIsRepository
		closeFn = noop
	)
	switch cfg.StoreDriver() {
	case config.StoreSupabase:
		client, err := database.NewSupabaseClient(cfg.Supabase)
		if err != nil {
			log.Printf("⚠️  Supabaseクライアント初期化失敗、サンプルデータを使用します: %v", err)
			return nil, noop
		}
		repo = repository.NewSupabasePOIsRepository(client)
	case config.StorePostGIS:
		client, err := database.NewPostgreSQLClient(cfg.Postgres)
		if err != nil {
			log.Printf("⚠️  PostgreSQL接続失敗、サンプルデータを使用します: %v", err)
			return nil, noop
		}
		repo = repository.NewPostgresPOIsRepository(client)
		closeFn = func() {
			if err := client.Close(); err != nil {
				log.Printf("⚠️  PostgreSQL切断時のエラー: %v", err)
			}
		}
	default:
		log.Println("⚠️  地理空間ストアが設定されていません。サンプルデータを使用します")
		return nil, noop
	}

	checkCtx, cancel := context.WithTimeout(ctx, startupCheckTimeout)
	defer cancel()
	if err := repo.HealthCheck(checkCtx); err != nil {
		log.Printf("⚠️  %sヘルスチェック失敗、サンプルデータを使用します: %v", repo.Source(), err)
		closeFn()
		return nil, noop
	}

	log.Printf("✅ %s connection successful!", repo.Source())
	return repo, closeFn
}

// openPlaceDetails Firestoreが設定されていればそれを使い、なければ静的データを使う
func openPlaceDetails(ctx context.Context, cfg *config.Config) (domainrepo.PlaceDetailsRepository, func()) {
	if !cfg.FirestoreEnabled() {
		return repository.NewStaticPlaceDetailsRepository(), func() {}
	}

	client, err := firestore.NewFirestoreClient(ctx, cfg.Firestore)
	if err != nil {
		log.Printf("⚠️  Firestore初期化失敗、静的なプレイス詳細を使用します: %v", err)
		return repository.NewStaticPlaceDetailsRepository(), func() {}
	}

	log.Println("✅ Firestore connection successful!")
	return repository.NewFirestorePlaceDetailsRepository(client.GetClient()), func() {
		if err := client.Close(); err != nil {
			log.Printf("⚠️  Firestore切断時のエラー: %v", err)
		}
	}
}
