package openweather

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"task_backend/internal/feature/tasks/usecase"
	"task_backend/internal/platform/externalapi/openweather/dto"
)

// OpenWeather はOpenWeatherMap APIから現在の天気を取得するWeatherRepository実装です。
type OpenWeather struct {
	cfg    Config
	client *http.Client
}

// OpenWeatherがWeatherRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.WeatherRepository = (*OpenWeather)(nil)

// NewOpenWeather は指定された設定とHTTPクライアントでOpenWeatherの新しいインスタンスを生成します。
func NewOpenWeather(cfg Config, client *http.Client) *OpenWeather {
	return &OpenWeather{cfg: cfg, client: client}
}

// CurrentDescription は指定された都市の現在の天気の説明文を取得します。
// レスポンスのweather配列の先頭エントリのdescriptionを返し、
// エントリが存在しない場合は代替文字列を返します。
// トランスポートエラーとHTTPエラーは呼び出し元にそのまま伝播します。
func (o *OpenWeather) CurrentDescription(ctx context.Context, city string) (string, error) {
	q := url.Values{}
	// クエリパラメータを追加
	q.Set("q", city)
	q.Set("appid", o.cfg.APIKey)

	// URLを生成
	u := fmt.Sprintf("%s/data/2.5/weather?%s", o.cfg.BaseURL, q.Encode())

	// リクエストオブジェクトを作成
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return "", err
	}

	// リクエストを実行
	res, err := o.client.Do(req)
	if err != nil {
		return "", err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode >= 400 {
		// エラーボディのmessage（例: "city not found"）を可能なら含める
		var body dto.CurrentWeatherResponse
		if decErr := json.NewDecoder(res.Body).Decode(&body); decErr == nil && body.Message != "" {
			return "", fmt.Errorf("openweather http %d: %s", res.StatusCode, body.Message)
		}
		return "", fmt.Errorf("openweather http %d", res.StatusCode)
	}

	// JSONレスポンスをDTOにデコード
	var body dto.CurrentWeatherResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return "", err
	}

	// weather配列が空、またはdescriptionが欠落している場合は代替文字列を返す
	if len(body.Weather) == 0 || body.Weather[0].Description == "" {
		return usecase.WeatherUnavailable, nil
	}

	return body.Weather[0].Description, nil
}
