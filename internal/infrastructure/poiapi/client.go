package poiapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"POI-Map-App/internal/domain/model"
)

// Client POI-Map-AppのHTTP APIを呼び出す地図クライアント用の実装
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient 新しいクライアントを生成する
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// FetchNearby 指定位置の周辺POIを取得する
func (c *Client) FetchNearby(ctx context.Context, pos model.LatLng) ([]model.POI, error) {
	params := url.Values{}
	params.Set("lat", strconv.FormatFloat(pos.Lat, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(pos.Lng, 'f', -1, 64))
	reqURL := fmt.Sprintf("%s/api/pois/nearby?%s", c.baseURL, params.Encode())

	var pois []model.POI
	if err := c.getJSON(ctx, reqURL, &pois); err != nil {
		return nil, fmt.Errorf("周辺POIの取得に失敗: %w", err)
	}
	return pois, nil
}

// FetchPlaceDetails プレイス参照の詳細を取得する
func (c *Client) FetchPlaceDetails(ctx context.Context, placeID string) (*model.PlaceDetail, error) {
	reqURL := fmt.Sprintf("%s/api/places/details/%s", c.baseURL, url.PathEscape(placeID))

	var detail model.PlaceDetail
	if err := c.getJSON(ctx, reqURL, &detail); err != nil {
		return nil, fmt.Errorf("プレイス詳細の取得に失敗: %w", err)
	}
	return &detail, nil
}

// StatusError 2xx以外の応答
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP error! status: %d", e.StatusCode)
}

func (c *Client) getJSON(ctx context.Context, reqURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("リクエストの作成に失敗: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("APIリクエストに失敗: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{StatusCode: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("JSONのパースに失敗: %w", err)
	}
	return nil
}
