package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/shenikar/emergency_response_system/internal/config"
	"github.com/shenikar/emergency_response_system/internal/models"
)

// AccuWeatherProvider получает текущие условия и почасовой прогноз из
// AccuWeather API и нормализует их в models.WeatherObservation.
// Запрос трёхшаговый: ключ локации по координатам, текущие условия,
// 12-часовой прогноз для вероятности осадков.
type AccuWeatherProvider struct {
	cfg        *config.Config
	httpClient *http.Client
	logger     *logrus.Logger
}

// NewAccuWeatherProvider создает новый AccuWeatherProvider
func NewAccuWeatherProvider(cfg *config.Config, logger *logrus.Logger) *AccuWeatherProvider {
	return &AccuWeatherProvider{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		logger: logger,
	}
}

type locationResponse struct {
	Key string `json:"Key"`
}

type metricValue struct {
	Value float64 `json:"Value"`
	Unit  string  `json:"Unit"`
}

type imperialMetric struct {
	Metric metricValue `json:"Metric"`
}

type currentConditions struct {
	WeatherText          string         `json:"WeatherText"`
	Temperature          imperialMetric `json:"Temperature"`
	RealFeelTemperature  imperialMetric `json:"RealFeelTemperature"`
	RelativeHumidity     int            `json:"RelativeHumidity"`
	Pressure             imperialMetric `json:"Pressure"`
	Visibility           imperialMetric `json:"Visibility"`
	CloudCover           int            `json:"CloudCover"`
	PrecipitationSummary struct {
		PastHour imperialMetric `json:"PastHour"`
	} `json:"PrecipitationSummary"`
	Wind struct {
		Direction struct {
			Degrees int `json:"Degrees"`
		} `json:"Direction"`
		Speed imperialMetric `json:"Speed"`
	} `json:"Wind"`
	EpochTime int64 `json:"EpochTime"`
}

type hourlyForecast struct {
	PrecipitationProbability float64 `json:"PrecipitationProbability"` // %
}

// CurrentObservation возвращает нормализованное наблюдение для координат
func (p *AccuWeatherProvider) CurrentObservation(ctx context.Context, lat, lng float64) (*models.WeatherObservation, error) {
	if p.cfg.AccuWeatherAPIKey == "" {
		return nil, fmt.Errorf("accuweather api key is not configured")
	}

	locationKey, err := p.locationKey(ctx, lat, lng)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve location key: %w", err)
	}

	conditions, err := p.currentConditions(ctx, locationKey)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch current conditions: %w", err)
	}

	obs := &models.WeatherObservation{
		Temp:         conditions.Temperature.Metric.Value,
		FeelsLike:    conditions.RealFeelTemperature.Metric.Value,
		Humidity:     conditions.RelativeHumidity,
		Pressure:     conditions.Pressure.Metric.Value,
		WindSpeed:    conditions.Wind.Speed.Metric.Value,
		WindDeg:      conditions.Wind.Direction.Degrees,
		VisibilityKm: conditions.Visibility.Metric.Value,
		CloudCover:   conditions.CloudCover,
		Condition:    conditions.WeatherText,
		RainLastHour: conditions.PrecipitationSummary.PastHour.Metric.Value,
		ObservedAt:   time.Unix(conditions.EpochTime, 0).UTC(),
	}

	// Почасовой прогноз дополняет наблюдение вероятностью осадков. Его сбой
	// не фатален: без прогноза остаются фактические осадки за час.
	hours, err := p.hourlyForecast(ctx, locationKey)
	if err != nil {
		p.logger.WithFields(logrus.Fields{
			"service": "weather",
		}).WithError(err).Warn("Failed to fetch hourly forecast, rain chance unavailable")
		return obs, nil
	}

	var maxChance, sumChance float64
	for _, h := range hours {
		chance := h.PrecipitationProbability / 100
		if chance > maxChance {
			maxChance = chance
		}
		sumChance += chance
	}
	obs.RainChance = maxChance
	if len(hours) > 0 {
		obs.AvgRainChance = sumChance / float64(len(hours))
	}
	return obs, nil
}

// locationKey разрешает ключ локации AccuWeather по геокоординатам
func (p *AccuWeatherProvider) locationKey(ctx context.Context, lat, lng float64) (string, error) {
	endpoint := fmt.Sprintf("%s/locations/v1/cities/geoposition/search", p.cfg.AccuWeatherBaseURL)
	query := url.Values{}
	query.Set("apikey", p.cfg.AccuWeatherAPIKey)
	query.Set("q", fmt.Sprintf("%f,%f", lat, lng))

	var location locationResponse
	if err := p.getJSON(ctx, endpoint+"?"+query.Encode(), &location); err != nil {
		return "", err
	}
	if location.Key == "" {
		return "", fmt.Errorf("empty location key for coordinates %f,%f", lat, lng)
	}
	return location.Key, nil
}

func (p *AccuWeatherProvider) currentConditions(ctx context.Context, locationKey string) (*currentConditions, error) {
	endpoint := fmt.Sprintf("%s/currentconditions/v1/%s", p.cfg.AccuWeatherBaseURL, locationKey)
	query := url.Values{}
	query.Set("apikey", p.cfg.AccuWeatherAPIKey)
	query.Set("details", "true")

	// Текущие условия приходят массивом из одного элемента
	var conditions []currentConditions
	if err := p.getJSON(ctx, endpoint+"?"+query.Encode(), &conditions); err != nil {
		return nil, err
	}
	if len(conditions) == 0 {
		return nil, fmt.Errorf("empty current conditions response")
	}
	return &conditions[0], nil
}

func (p *AccuWeatherProvider) hourlyForecast(ctx context.Context, locationKey string) ([]hourlyForecast, error) {
	endpoint := fmt.Sprintf("%s/forecasts/v1/hourly/12hour/%s", p.cfg.AccuWeatherBaseURL, locationKey)
	query := url.Values{}
	query.Set("apikey", p.cfg.AccuWeatherAPIKey)
	query.Set("metric", "true")

	var hours []hourlyForecast
	if err := p.getJSON(ctx, endpoint+"?"+query.Encode(), &hours); err != nil {
		return nil, err
	}
	return hours, nil
}

func (p *AccuWeatherProvider) getJSON(ctx context.Context, rawURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("accuweather returned status %d", resp.StatusCode)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
