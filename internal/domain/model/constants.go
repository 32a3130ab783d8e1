package model

// 周辺検索の定数
const (
	// SearchRadiusMeters 周辺POI検索の固定半径（メートル）
	SearchRadiusMeters = 5000
)

// 地図表示の定数
const (
	// DefaultZoom 地図の初期ズームレベル
	DefaultZoom = 15
	// UserMarkerTitle ユーザー位置マーカーのタイトル
	UserMarkerTitle = "La tua posizione"
	// GeolocationFailedMessage 測位エラー時に情報ウィンドウへ表示する固定文言
	GeolocationFailedMessage = "Errore: Il servizio di geolocalizzazione è fallito."
	// GeolocationUnsupportedMessage 測位機能が無い場合のアラート文言
	GeolocationUnsupportedMessage = "Geolocalizzazione non supportata."
)

// DefaultCenter 地図の初期中心（ローマ市街）
var DefaultCenter = LatLng{Lat: 41.9028, Lng: 12.4964}

// DataSource 周辺検索に使われたデータソース
type DataSource string

const (
	DataSourcePostGIS  DataSource = "postgis"
	DataSourceSupabase DataSource = "supabase"
	DataSourceSample   DataSource = "sample"
)
