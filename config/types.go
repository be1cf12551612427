package config

import "time"

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Port int `yaml:"port" validate:"gt=0"`
}

// FetchConfig controls outbound requests to the transit authority
type FetchConfig struct {
	TimeoutMS int `yaml:"timeoutMS" validate:"gt=0"`
}

// Timeout returns the fetch timeout as a duration.
func (f FetchConfig) Timeout() time.Duration {
	return time.Duration(f.TimeoutMS) * time.Millisecond
}

// CandidateConfig holds the ordered candidate URL lists per feed type.
// List order is significant: it defines fallback priority, and the
// resolver always serves the first working URL in list order.
type CandidateConfig struct {
	TripUpdates      []string `yaml:"tripUpdates" validate:"required,min=1,dive,url"`
	VehiclePositions []string `yaml:"vehiclePositions" validate:"required,min=1,dive,url"`
	ServiceAlerts    []string `yaml:"serviceAlerts" validate:"required,min=1,dive,url"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Server     ServerConfig    `yaml:"server"`
	Fetch      FetchConfig     `yaml:"fetch"`
	Candidates CandidateConfig `yaml:"candidates" validate:"required"`
}
