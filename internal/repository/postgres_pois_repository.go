package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"POI-Map-App/internal/domain/model"
	"POI-Map-App/internal/domain/repository"
	"POI-Map-App/internal/infrastructure/database"
)

// nearbyGeodesicQuery geography型同士のST_DWithinで測地線距離による半径内判定を行う
// ORDER BYは付けないため、結果はストアの返却順になる
const nearbyGeodesicQuery = `
	SELECT
		p.id, p.nome, p.google_place_id,
		ST_AsGeoJSON(p.location::geometry) AS location
	FROM pois p
	WHERE ST_DWithin(
		p.location::geography,
		ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography,
		$3
	)
`

type PostgresPOIsRepository struct {
	client *database.PostgreSQLClient
}

func NewPostgresPOIsRepository(client *database.PostgreSQLClient) repository.POIsRepository {
	return &PostgresPOIsRepository{
		client: client,
	}
}

// POIResult PostGISの検索結果を受け取るための構造体
type POIResult struct {
	ID            sql.NullInt64  `db:"id"`
	Name          string         `db:"nome"`
	GooglePlaceID sql.NullString `db:"google_place_id"`
	Location      string         `db:"location"`
}

// ToPOI POIResultをmodel.POIに変換
func (pr *POIResult) ToPOI() (*model.POI, error) {
	point, err := GeoJSONToPoint(pr.Location)
	if err != nil {
		return nil, err
	}

	poi := &model.POI{
		Name:          pr.Name,
		Latitude:      point.Lat(),
		Longitude:     point.Lon(),
		GooglePlaceID: pr.GooglePlaceID.String,
	}
	if pr.ID.Valid {
		id := pr.ID.Int64
		poi.ID = &id
	}
	return poi, nil
}

// buildNearbyQuery 検索条件からSQLと引数を組み立てる
func buildNearbyQuery(q model.NearbyQuery) (string, []interface{}, error) {
	if q.Metric != model.MetricGeodesic {
		return "", nil, fmt.Errorf("%w: %s", model.ErrUnsupportedMetric, q.Metric)
	}
	// ST_MakePointは(経度, 緯度)の順
	return nearbyGeodesicQuery, []interface{}{q.Center.Lon(), q.Center.Lat(), q.RadiusMeters}, nil
}

func (r *PostgresPOIsRepository) FindNearby(ctx context.Context, q model.NearbyQuery) ([]model.POI, error) {
	query, args, err := buildNearbyQuery(q)
	if err != nil {
		return nil, err
	}

	log.Printf("🔍 PostGIS周辺検索: lat=%f, lon=%f, radius=%.0fm", q.Center.Lat(), q.Center.Lon(), q.RadiusMeters)

	var results []POIResult
	if err := r.client.DB.SelectContext(ctx, &results, query, args...); err != nil {
		return nil, fmt.Errorf("周辺POI検索失敗: %w", err)
	}

	pois := make([]model.POI, 0, len(results))
	for i := range results {
		poi, err := results[i].ToPOI()
		if err != nil {
			return nil, err
		}
		pois = append(pois, *poi)
	}

	return pois, nil
}

func (r *PostgresPOIsRepository) HealthCheck(ctx context.Context) error {
	return r.client.HealthCheck(ctx)
}

func (r *PostgresPOIsRepository) Source() model.DataSource {
	return model.DataSourcePostGIS
}
