// Package dto defines data transfer objects for the OpenWeatherMap API responses.
package dto

// CurrentWeatherResponse represents the JSON response from the
// OpenWeatherMap current-weather endpoint. Only the fields this service
// consumes are mapped.
type CurrentWeatherResponse struct {
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
	} `json:"weather"`
	Name string `json:"name"`
	// Message carries the provider's error description on non-2xx responses
	// (e.g. "city not found").
	Message string `json:"message,omitempty"`
}
