package models

import "time"

// WeatherObservation - нормализованные текущие условия плюс сводка почасового
// прогноза, независимо от поставщика данных
type WeatherObservation struct {
	Temp          float64   `json:"temp"`            // °C
	FeelsLike     float64   `json:"feels_like"`      // °C
	Humidity      int       `json:"humidity"`        // %
	Pressure      float64   `json:"pressure"`        // hPa
	WindSpeed     float64   `json:"wind_speed"`      // км/ч
	WindDeg       int       `json:"wind_deg"`        // градусы
	VisibilityKm  float64   `json:"visibility_km"`   // км
	CloudCover    int       `json:"cloud_cover"`     // %
	Condition     string    `json:"condition"`       // текстовое описание
	RainLastHour  float64   `json:"rain_last_hour"`  // мм
	RainChance    float64   `json:"rain_chance"`     // 0..1, max по прогнозу 12ч
	AvgRainChance float64   `json:"avg_rain_chance"` // 0..1, среднее по прогнозу 12ч
	ObservedAt    time.Time `json:"observed_at"`
}

// Приоритеты погодных предупреждений
const (
	AlertPriorityCritical = "critical"
	AlertPriorityHigh     = "high"
	AlertPriorityMedium   = "medium"
)

// WeatherAlert - погодное предупреждение, сгенерированное по порогам
type WeatherAlert struct {
	ID        int64     `json:"id"`
	Type      string    `json:"type"`
	Priority  string    `json:"priority"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}
