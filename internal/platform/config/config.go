package config

import (
	"fmt"
	"os"
	"time"
)

// Suite captures what the acceptance suite needs to reach the registration service.
type Suite struct {
	// BaseURL of the service under test. Empty means start the in-process fake.
	BaseURL  string
	Timeout  time.Duration
	LogLevel string
}

// MockServer captures the fake registration service's listener configuration.
type MockServer struct {
	Addr     string
	LogLevel string
	Latency  time.Duration
}

// DefaultTimeout bounds a single registration call.
var DefaultTimeout = 10 * time.Second

// HistoricBaseURL is the public deployment the feedback catalogue was recorded against.
const HistoricBaseURL = "https://wcg-apis.herokuapp.com"

// FromEnv builds a Suite config from environment variables so test setup stays lean.
func FromEnv() (Suite, error) {
	timeout := DefaultTimeout
	if raw := os.Getenv("REGISTRATION_TIMEOUT"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil || d <= 0 {
			return Suite{}, fmt.Errorf("invalid REGISTRATION_TIMEOUT %q", raw)
		}
		timeout = d
	}

	return Suite{
		BaseURL:  os.Getenv("REGISTRATION_BASE_URL"),
		Timeout:  timeout,
		LogLevel: envOr("LOG_LEVEL", "info"),
	}, nil
}

// MockFromEnv builds a MockServer config from environment variables.
// An unparseable MOCK_REGISTRATION_LATENCY means no added latency.
func MockFromEnv() MockServer {
	var latency time.Duration
	if raw := os.Getenv("MOCK_REGISTRATION_LATENCY"); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil && d > 0 {
			latency = d
		}
	}
	return MockServer{
		Addr:     envOr("MOCK_REGISTRATION_ADDR", ":8082"),
		LogLevel: envOr("LOG_LEVEL", "info"),
		Latency:  latency,
	}
}

// UsesFake reports whether the suite should run against the in-process service.
func (s Suite) UsesFake() bool {
	return s.BaseURL == ""
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
