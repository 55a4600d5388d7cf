package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	defaultListenAddr      = ":8080"
	defaultCacheDSN        = "sentagsite.db"
	defaultBackendTimeout  = "30s"
	defaultIntakeTTL       = "2h"
	defaultIntakeSecret    = "change-me-intake-secret"
	defaultSettingsTTL     = "24h"
	defaultLogPath         = "logs/sentagsite.log"
	defaultLogLevel        = "INFO"
	defaultTrackQueueDepth = 256
)

// BackendURLs identifies the remote serverless functions. The paths are
// deployment-specific, so every endpoint is configured separately.
type BackendURLs struct {
	SaveRequest  string
	UploadFile   string
	AdminAuth    string
	SiteSettings string
	Documents    string
	TrackClick   string
	TrackVisit   string
	ClickStats   string
	Requests     string
}

type Config struct {
	AppEnv     string
	ListenAddr string
	CacheDSN   string

	Backend        BackendURLs
	BackendTimeout time.Duration

	IntakeSessionSecret string
	IntakeSessionTTL    time.Duration

	SettingsCacheTTL time.Duration

	TrackQueueDepth int

	LogPath  string
	LogLevel string
}

func Load() (*Config, error) {
	cfg := &Config{}

	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = "dev"
	}
	cfg.AppEnv = strings.ToLower(appEnv)

	cfg.ListenAddr = getEnv("LISTEN_ADDR", defaultListenAddr)
	cfg.CacheDSN = getEnv("CACHE_DSN", defaultCacheDSN)

	cfg.Backend = BackendURLs{
		SaveRequest:  strings.TrimSpace(os.Getenv("BACKEND_SAVE_REQUEST_URL")),
		UploadFile:   strings.TrimSpace(os.Getenv("BACKEND_UPLOAD_FILE_URL")),
		AdminAuth:    strings.TrimSpace(os.Getenv("BACKEND_ADMIN_AUTH_URL")),
		SiteSettings: strings.TrimSpace(os.Getenv("BACKEND_SITE_SETTINGS_URL")),
		Documents:    strings.TrimSpace(os.Getenv("BACKEND_DOCUMENTS_URL")),
		TrackClick:   strings.TrimSpace(os.Getenv("BACKEND_TRACK_CLICK_URL")),
		TrackVisit:   strings.TrimSpace(os.Getenv("BACKEND_TRACK_VISIT_URL")),
		ClickStats:   strings.TrimSpace(os.Getenv("BACKEND_CLICK_STATS_URL")),
		Requests:     strings.TrimSpace(os.Getenv("BACKEND_REQUESTS_URL")),
	}

	var err error
	cfg.BackendTimeout, err = parseDurationEnv("BACKEND_TIMEOUT", defaultBackendTimeout)
	if err != nil {
		return nil, err
	}

	cfg.IntakeSessionSecret = strings.TrimSpace(getEnv("INTAKE_SESSION_SECRET", defaultIntakeSecret))
	cfg.IntakeSessionTTL, err = parseDurationEnv("INTAKE_SESSION_TTL", defaultIntakeTTL)
	if err != nil {
		return nil, err
	}

	cfg.SettingsCacheTTL, err = parseDurationEnv("SETTINGS_CACHE_TTL", defaultSettingsTTL)
	if err != nil {
		return nil, err
	}

	cfg.TrackQueueDepth = defaultTrackQueueDepth

	cfg.LogPath = getEnv("LOG_PATH", defaultLogPath)
	cfg.LogLevel = getEnv("LOG_LEVEL", defaultLogLevel)

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.BackendTimeout <= 0 {
		return fmt.Errorf("BACKEND_TIMEOUT must be > 0")
	}
	if cfg.IntakeSessionTTL <= 0 {
		return fmt.Errorf("INTAKE_SESSION_TTL must be > 0")
	}
	if cfg.SettingsCacheTTL <= 0 {
		return fmt.Errorf("SETTINGS_CACHE_TTL must be > 0")
	}

	required := map[string]string{
		"BACKEND_SAVE_REQUEST_URL":  cfg.Backend.SaveRequest,
		"BACKEND_UPLOAD_FILE_URL":   cfg.Backend.UploadFile,
		"BACKEND_ADMIN_AUTH_URL":    cfg.Backend.AdminAuth,
		"BACKEND_SITE_SETTINGS_URL": cfg.Backend.SiteSettings,
		"BACKEND_DOCUMENTS_URL":     cfg.Backend.Documents,
		"BACKEND_TRACK_CLICK_URL":   cfg.Backend.TrackClick,
		"BACKEND_TRACK_VISIT_URL":   cfg.Backend.TrackVisit,
		"BACKEND_CLICK_STATS_URL":   cfg.Backend.ClickStats,
		"BACKEND_REQUESTS_URL":      cfg.Backend.Requests,
	}
	for name, v := range required {
		if v == "" {
			return fmt.Errorf("%s is empty", name)
		}
	}

	if isProdLike(cfg.AppEnv) {
		if cfg.IntakeSessionSecret == "" || cfg.IntakeSessionSecret == defaultIntakeSecret {
			return fmt.Errorf("in prod/release INTAKE_SESSION_SECRET must be set and not default")
		}
	}

	return nil
}

func isProdLike(env string) bool {
	env = strings.ToLower(strings.TrimSpace(env))
	return env == "prod" || env == "production" || env == "release"
}

func parseDurationEnv(name, fallback string) (time.Duration, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return d, nil
}

func getEnv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
