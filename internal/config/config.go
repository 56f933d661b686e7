package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config - структура для хранения конфигурации приложения.
// Передаётся явно в конструкторы сервисов, глобальных лукапов нет.
type Config struct {
	DatabaseURL string `env:"DATABASE_URL"`
	HTTPPort    string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// Redis Config
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// Notification Config
	AdminNotifyLimit int           `env:"ADMIN_NOTIFY_LIMIT" envDefault:"5"`
	NotifyTimeout    time.Duration `env:"NOTIFY_TIMEOUT" envDefault:"5s"`

	// OneSignal Config (платформенный пуш-путь)
	OneSignalAppID  string `env:"ONESIGNAL_APP_ID"`
	OneSignalAPIKey string `env:"ONESIGNAL_REST_API_KEY"`

	// Push Gateway Config (легаси веб-пуш путь)
	PushGatewayURL   string        `env:"PUSH_GATEWAY_URL"`
	PushGatewayToken string        `env:"PUSH_GATEWAY_TOKEN"`
	PushTimeout      time.Duration `env:"PUSH_TIMEOUT" envDefault:"5s"`

	// Weather Config
	AccuWeatherAPIKey  string        `env:"ACCUWEATHER_API_KEY"`
	AccuWeatherBaseURL string        `env:"ACCUWEATHER_BASE_URL" envDefault:"https://dataservice.accuweather.com"`
	WeatherCacheTTL    time.Duration `env:"WEATHER_CACHE_TTL" envDefault:"10m"`
	DefaultLatitude    float64       `env:"DEFAULT_LATITUDE" envDefault:"14.262585"`
	DefaultLongitude   float64       `env:"DEFAULT_LONGITUDE" envDefault:"121.398436"`
	DefaultCity        string        `env:"DEFAULT_CITY"`

	// App Version Config
	AppVersionSecret string `env:"APP_VERSION_UPDATE_SECRET"`

	// API Keys for authentication
	APIKeys []string `env:"API_KEYS"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		DatabaseURL:        os.Getenv("DATABASE_URL"),
		HTTPPort:           getEnv("HTTP_PORT", "8080"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		RedisAddr:          getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:          os.Getenv("REDIS_PASSWORD"),
		RedisDB:            getEnvAsInt("REDIS_DB", 0),
		AdminNotifyLimit:   getEnvAsInt("ADMIN_NOTIFY_LIMIT", 5),
		NotifyTimeout:      getEnvAsDuration("NOTIFY_TIMEOUT", 5*time.Second),
		OneSignalAppID:     os.Getenv("ONESIGNAL_APP_ID"),
		OneSignalAPIKey:    os.Getenv("ONESIGNAL_REST_API_KEY"),
		PushGatewayURL:     os.Getenv("PUSH_GATEWAY_URL"),
		PushGatewayToken:   os.Getenv("PUSH_GATEWAY_TOKEN"),
		PushTimeout:        getEnvAsDuration("PUSH_TIMEOUT", 5*time.Second),
		AccuWeatherAPIKey:  os.Getenv("ACCUWEATHER_API_KEY"),
		AccuWeatherBaseURL: getEnv("ACCUWEATHER_BASE_URL", "https://dataservice.accuweather.com"),
		WeatherCacheTTL:    getEnvAsDuration("WEATHER_CACHE_TTL", 10*time.Minute),
		DefaultLatitude:    getEnvAsFloat("DEFAULT_LATITUDE", 14.262585),
		DefaultLongitude:   getEnvAsFloat("DEFAULT_LONGITUDE", 121.398436),
		DefaultCity:        getEnv("DEFAULT_CITY", "LSPU Sta. Cruz Campus, Laguna, Philippines"),
		AppVersionSecret:   os.Getenv("APP_VERSION_UPDATE_SECRET"),
	}

	// Загрузка API ключей
	apiKeysStr := os.Getenv("API_KEYS")
	if apiKeysStr != "" {
		cfg.APIKeys = strings.Split(apiKeysStr, ",")
		for i, key := range cfg.APIKeys {
			cfg.APIKeys[i] = strings.TrimSpace(key)
		}
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	return cfg, nil
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt возвращает значение переменной окружения как int или значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsFloat возвращает значение переменной окружения как float64 или значение по умолчанию
func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}
