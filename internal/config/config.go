// Package config loads application configuration from environment variables.
package config

import (
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/ericfisherdev/guestwifi/internal/domain/model"
)

// SourceKind selects where the password table is read from.
type SourceKind string

const (
	SourceCSV    SourceKind = "csv"
	SourceSQLite SourceKind = "sqlite"
	SourceURL    SourceKind = "url"
)

// Log output formats accepted by GUESTWIFI_LOG_FORMAT.
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Config holds the application configuration loaded from environment variables.
type Config struct {
	ListenAddr    string
	NetworkName   string
	Source        SourceKind
	CSVPath       string
	DBPath        string
	SourceURL     string
	Location      *time.Location
	ShowYesterday bool
	Security      model.WiFiSecurity
	Hidden        bool
	Notice        string
	LogLevel      slog.Level
	LogFormat     string
	FetchTimeout  time.Duration
}

// Network returns the guest network described by the configuration.
func (c *Config) Network() model.WiFiNetwork {
	return model.WiFiNetwork{
		Name:     c.NetworkName,
		Security: c.Security,
		Hidden:   c.Hidden,
	}
}

// Load reads configuration from environment variables and returns a validated Config.
// Every variable is optional. Defaults: GUESTWIFI_LISTEN_ADDR (127.0.0.1:8080),
// GUESTWIFI_NETWORK_NAME (Bloom Guest), GUESTWIFI_SOURCE (csv),
// GUESTWIFI_DB_PATH (guestwifi.db), GUESTWIFI_TIMEZONE (Local),
// GUESTWIFI_SECURITY (WPA), GUESTWIFI_LOG_LEVEL (info),
// GUESTWIFI_LOG_FORMAT (text), GUESTWIFI_FETCH_TIMEOUT (10s).
// GUESTWIFI_SOURCE_URL is required when GUESTWIFI_SOURCE is url.
func Load() (*Config, error) {
	listenAddr := "127.0.0.1:8080"
	if v, ok := os.LookupEnv("GUESTWIFI_LISTEN_ADDR"); ok {
		listenAddr = v
	}

	networkName := "Bloom Guest"
	if v, ok := os.LookupEnv("GUESTWIFI_NETWORK_NAME"); ok && strings.TrimSpace(v) != "" {
		networkName = strings.TrimSpace(v)
	}

	source := SourceCSV
	if v, ok := os.LookupEnv("GUESTWIFI_SOURCE"); ok && v != "" {
		source = SourceKind(strings.ToLower(strings.TrimSpace(v)))
		switch source {
		case SourceCSV, SourceSQLite, SourceURL:
		default:
			return nil, fmt.Errorf("GUESTWIFI_SOURCE must be one of csv, sqlite, url; got %q", v)
		}
	}

	dbPath := "guestwifi.db"
	if v, ok := os.LookupEnv("GUESTWIFI_DB_PATH"); ok {
		dbPath = v
	}

	sourceURL := strings.TrimSpace(os.Getenv("GUESTWIFI_SOURCE_URL"))
	if source == SourceURL {
		if sourceURL == "" {
			return nil, fmt.Errorf("GUESTWIFI_SOURCE_URL is required when GUESTWIFI_SOURCE is url")
		}
		u, err := url.Parse(sourceURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return nil, fmt.Errorf("GUESTWIFI_SOURCE_URL must be an absolute http(s) URL, got %q", sourceURL)
		}
	}

	location := time.Local
	if v, ok := os.LookupEnv("GUESTWIFI_TIMEZONE"); ok && v != "" {
		loc, err := time.LoadLocation(v)
		if err != nil {
			return nil, fmt.Errorf("GUESTWIFI_TIMEZONE has invalid time zone %q: %w", v, err)
		}
		location = loc
	}

	showYesterday, err := boolEnv("GUESTWIFI_SHOW_YESTERDAY")
	if err != nil {
		return nil, err
	}

	hidden, err := boolEnv("GUESTWIFI_HIDDEN")
	if err != nil {
		return nil, err
	}

	security := model.WiFiSecurityWPA
	if v, ok := os.LookupEnv("GUESTWIFI_SECURITY"); ok && v != "" {
		security = model.WiFiSecurity(v)
		if !security.Valid() {
			return nil, fmt.Errorf("GUESTWIFI_SECURITY must be one of WPA, WEP, nopass; got %q", v)
		}
	}

	logLevel := slog.LevelInfo
	if v, ok := os.LookupEnv("GUESTWIFI_LOG_LEVEL"); ok && v != "" {
		if err := logLevel.UnmarshalText([]byte(v)); err != nil {
			return nil, fmt.Errorf("GUESTWIFI_LOG_LEVEL has invalid level %q: %w", v, err)
		}
	}

	logFormat := LogFormatText
	if v, ok := os.LookupEnv("GUESTWIFI_LOG_FORMAT"); ok && v != "" {
		logFormat = strings.ToLower(v)
		if logFormat != LogFormatText && logFormat != LogFormatJSON {
			return nil, fmt.Errorf("GUESTWIFI_LOG_FORMAT must be text or json, got %q", v)
		}
	}

	fetchTimeout := 10 * time.Second
	if v, ok := os.LookupEnv("GUESTWIFI_FETCH_TIMEOUT"); ok {
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("GUESTWIFI_FETCH_TIMEOUT has invalid duration %q: %w", v, err)
		}
		if parsed <= 0 {
			return nil, fmt.Errorf("GUESTWIFI_FETCH_TIMEOUT must be positive, got %s", parsed)
		}
		fetchTimeout = parsed
	}

	return &Config{
		ListenAddr:    listenAddr,
		NetworkName:   networkName,
		Source:        source,
		CSVPath:       os.Getenv("GUESTWIFI_CSV_PATH"),
		DBPath:        dbPath,
		SourceURL:     sourceURL,
		Location:      location,
		ShowYesterday: showYesterday,
		Security:      security,
		Hidden:        hidden,
		Notice:        os.Getenv("GUESTWIFI_NOTICE"),
		LogLevel:      logLevel,
		LogFormat:     logFormat,
		FetchTimeout:  fetchTimeout,
	}, nil
}

// boolEnv parses an optional boolean variable; unset or empty means false.
func boolEnv(key string) (bool, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s has invalid boolean %q: %w", key, v, err)
	}
	return b, nil
}
