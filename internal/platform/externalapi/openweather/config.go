// Package openweather provides a client for the OpenWeatherMap current-weather API.
package openweather

import (
	"os"
	"time"
)

// DefaultBaseURL is the public OpenWeatherMap endpoint used when no
// override is configured.
const DefaultBaseURL = "https://api.openweathermap.org"

// Config holds configuration for the OpenWeatherMap API client.
type Config struct {
	APIKey  string        // API key for authentication
	BaseURL string        // Base URL for the API
	Timeout time.Duration // HTTP request timeout
}

// LoadConfig loads OpenWeatherMap configuration from environment variables.
func LoadConfig() Config {
	base := os.Getenv("OPENWEATHER_BASE_URL")
	if base == "" {
		base = DefaultBaseURL
	}
	return Config{
		APIKey:  os.Getenv("WEATHER_API_KEY"),
		BaseURL: base,
		Timeout: 10 * time.Second,
	}
}
