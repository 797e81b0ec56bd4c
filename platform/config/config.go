// Package config provides application configuration loading.
// This is part of the platform layer and contains no business logic.
package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// =============================================================================
// Module-Specific Config Interfaces (Principle of Least Privilege)
// =============================================================================

// HTTPConfig provides settings for the HTTP server.
type HTTPConfig interface {
	GetHTTPAddr() string
	GetCORSAllowAll() bool
	GetCORSOrigins() []string
	GetCORSAllowCreds() bool
}

// DataConfig provides the locations of the three CSV sources and the unit
// seed file. Each source may be a local path or an http(s) URL.
type DataConfig interface {
	GetUnitCSVSource(phase string) string
	GetFirmCSVSource() string
	GetOverrideCSVSource() string
	GetUnitSeedFile() string
	GetFetchTimeout() time.Duration
}

// LocationsConfig provides the path of the static locations table file.
type LocationsConfig interface {
	GetLocationsFile() string
}

// PublicSiteConfig provides the public site base URL used in share links.
type PublicSiteConfig interface {
	GetSiteBaseURL() string
}

// GotenbergConfig provides settings for the Gotenberg HTML-to-PDF service.
type GotenbergConfig interface {
	GetGotenbergURL() string
	GetGotenbergUsername() string
	GetGotenbergPassword() string
	IsGotenbergEnabled() bool
}

// =============================================================================
// Main Config Struct
// =============================================================================

// Config holds all application configuration values.
type Config struct {
	Env               string
	HTTPAddr          string
	CORSAllowAll      bool
	CORSOrigins       []string
	CORSAllowCreds    bool
	DataDir           string
	UnitCSVSources    map[string]string
	FirmCSVSource     string
	OverrideCSVSource string
	UnitSeedFile      string
	FetchTimeout      time.Duration
	LocationsFile     string
	SiteBaseURL       string
	GotenbergURL      string
	GotenbergUsername string
	GotenbergPassword string
}

// =============================================================================
// Interface Implementations
// =============================================================================

// HTTPConfig implementation
func (c *Config) GetHTTPAddr() string      { return c.HTTPAddr }
func (c *Config) GetCORSAllowAll() bool    { return c.CORSAllowAll }
func (c *Config) GetCORSOrigins() []string { return c.CORSOrigins }
func (c *Config) GetCORSAllowCreds() bool  { return c.CORSAllowCreds }

// DataConfig implementation
func (c *Config) GetUnitCSVSource(phase string) string { return c.UnitCSVSources[phase] }
func (c *Config) GetFirmCSVSource() string             { return c.FirmCSVSource }
func (c *Config) GetOverrideCSVSource() string         { return c.OverrideCSVSource }
func (c *Config) GetUnitSeedFile() string              { return c.UnitSeedFile }
func (c *Config) GetFetchTimeout() time.Duration       { return c.FetchTimeout }

// LocationsConfig implementation
func (c *Config) GetLocationsFile() string { return c.LocationsFile }

// PublicSiteConfig implementation
func (c *Config) GetSiteBaseURL() string { return c.SiteBaseURL }

// GotenbergConfig implementation
func (c *Config) GetGotenbergURL() string      { return c.GotenbergURL }
func (c *Config) GetGotenbergUsername() string { return c.GotenbergUsername }
func (c *Config) GetGotenbergPassword() string { return c.GotenbergPassword }
func (c *Config) IsGotenbergEnabled() bool     { return c.GotenbergURL != "" }

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	_ = godotenv.Load()

	corsOrigins := splitCSV(getEnv("CORS_ORIGINS", "http://localhost:5173"))
	corsAllowAll := strings.EqualFold(getEnv("CORS_ALLOW_ALL", "false"), "true")
	if containsWildcard(corsOrigins) {
		corsAllowAll = true
	}

	dataDir := getEnv("DATA_DIR", "data")

	cfg := &Config{
		Env:            getEnv("APP_ENV", "development"),
		HTTPAddr:       getEnv("HTTP_ADDR", ":8080"),
		CORSAllowAll:   corsAllowAll,
		CORSOrigins:    corsOrigins,
		CORSAllowCreds: strings.EqualFold(getEnv("CORS_ALLOW_CREDENTIALS", "true"), "true"),
		DataDir:        dataDir,
		UnitCSVSources: map[string]string{
			"1": getEnv("UNITS_CSV_ETAP1", dataDir+"/etap1.csv"),
			"2": getEnv("UNITS_CSV_ETAP2", dataDir+"/etap2.csv"),
			"3": getEnv("UNITS_CSV_ETAP3", dataDir+"/etap3.csv"),
			"4": getEnv("UNITS_CSV_ETAP4", dataDir+"/etap4.csv"),
			"5": getEnv("UNITS_CSV_ETAP5", dataDir+"/etap5.csv"),
		},
		FirmCSVSource:     getEnv("FIRMS_CSV", dataDir+"/firms.csv"),
		OverrideCSVSource: getEnv("OVERRIDES_CSV", dataDir+"/areas.csv"),
		UnitSeedFile:      getEnv("UNIT_SEED_FILE", dataDir+"/units.json"),
		FetchTimeout:      mustDuration(getEnv("DATA_FETCH_TIMEOUT", "10s")),
		LocationsFile:     getEnv("LOCATIONS_FILE", "config/locations.yaml"),
		SiteBaseURL:       getEnv("SITE_BASE_URL", "http://localhost:5173"),
		GotenbergURL:      getEnv("GOTENBERG_URL", ""),
		GotenbergUsername: getEnv("GOTENBERG_USERNAME", ""),
		GotenbergPassword: getEnv("GOTENBERG_PASSWORD", ""),
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func containsWildcard(origins []string) bool {
	for _, o := range origins {
		if o == "*" {
			return true
		}
	}
	return false
}

func mustDuration(s string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return 10 * time.Second
	}
	return d
}
