package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// AppConfig holds environment driven configuration values.
// Sensitive data should never have defaults inside code and must be provided via env files or the environment.
type AppConfig struct {
	// Remote service
	APIBaseURL         string
	HTTPTimeoutSec     int
	RateLimitPerMinute int
	// Credential persistence
	TokenPath string
	// Entity cache
	CacheTTLSec int
	// Logging configuration
	LogLevel      string
	LogPath       string
	LogMaxSizeMB  int
	LogMaxBackups int
	LogMaxAgeDays int
	LogCompress   bool
}

var cfg AppConfig
var loaded bool

// Load loads the application configuration. It should be called once during boot.
// Precedence: config file -> defaults -> environment variable overrides.
func Load() AppConfig {
	if loaded {
		return cfg
	}

	for _, path := range configFilePaths() {
		if err := loadJSONConfig(path, &cfg); err == nil {
			break
		}
	}

	applyDefaults(&cfg)
	applyEnvOverrides(&cfg)

	loaded = true
	return cfg
}

// Get returns the cached configuration, loading it if necessary.
func Get() AppConfig {
	if !loaded {
		return Load()
	}
	return cfg
}

// configFilePaths lists candidate config file locations, most specific first.
func configFilePaths() []string {
	paths := []string{}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".oliveplate", "config.json"))
	}
	paths = append(paths, filepath.Join("config", "config.json"))
	return paths
}

// loadJSONConfig reads a JSON file into cfg if present.
// A missing file is not an error; invalid JSON is.
func loadJSONConfig(path string, out *AppConfig) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	var raw map[string]any
	if err := json.NewDecoder(f).Decode(&raw); err != nil {
		return err
	}

	getString := func(key string) string {
		if v, ok := raw[key]; ok {
			if s, ok := v.(string); ok {
				return s
			}
		}
		return ""
	}
	getInt := func(key string) int {
		if v, ok := raw[key]; ok {
			switch t := v.(type) {
			case float64:
				return int(t)
			case int:
				return t
			}
		}
		return 0
	}
	getBool := func(key string) bool {
		if v, ok := raw[key]; ok {
			if b, ok := v.(bool); ok {
				return b
			}
		}
		return false
	}

	if v := getString("api_base_url"); v != "" {
		out.APIBaseURL = v
	}
	if v := getInt("http_timeout_sec"); v != 0 {
		out.HTTPTimeoutSec = v
	}
	if v := getInt("rate_limit_per_minute"); v != 0 {
		out.RateLimitPerMinute = v
	}
	if v := getString("token_path"); v != "" {
		out.TokenPath = v
	}
	if v := getInt("cache_ttl_sec"); v != 0 {
		out.CacheTTLSec = v
	}
	if v := getString("log_level"); v != "" {
		out.LogLevel = v
	}
	if v := getString("log_path"); v != "" {
		out.LogPath = v
	}
	if v := getInt("log_max_size_mb"); v != 0 {
		out.LogMaxSizeMB = v
	}
	if v := getInt("log_max_backups"); v != 0 {
		out.LogMaxBackups = v
	}
	if v := getInt("log_max_age_days"); v != 0 {
		out.LogMaxAgeDays = v
	}
	if getBool("log_compress") {
		out.LogCompress = true
	}
	return nil
}

func applyDefaults(c *AppConfig) {
	if c.APIBaseURL == "" {
		c.APIBaseURL = "http://localhost:10000"
	}
	if c.HTTPTimeoutSec == 0 {
		c.HTTPTimeoutSec = 15
	}
	if c.RateLimitPerMinute == 0 {
		c.RateLimitPerMinute = 120
	}
	if c.TokenPath == "" {
		if home, err := os.UserHomeDir(); err == nil {
			c.TokenPath = filepath.Join(home, ".oliveplate", "token")
		} else {
			c.TokenPath = filepath.Join("config", "token")
		}
	}
	if c.CacheTTLSec == 0 {
		c.CacheTTLSec = 300
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.LogMaxSizeMB == 0 {
		c.LogMaxSizeMB = 100
	}
	if c.LogMaxBackups == 0 {
		c.LogMaxBackups = 3
	}
	if c.LogMaxAgeDays == 0 {
		c.LogMaxAgeDays = 7
	}
}

func applyEnvOverrides(c *AppConfig) {
	if v := getEnv("OLIVEPLATE_API_URL", ""); v != "" {
		c.APIBaseURL = v
	}
	if v := getEnv("OLIVEPLATE_HTTP_TIMEOUT_SEC", ""); v != "" {
		c.HTTPTimeoutSec = mustParseInt(v)
	}
	if v := getEnv("OLIVEPLATE_RATE_LIMIT_PER_MINUTE", ""); v != "" {
		c.RateLimitPerMinute = mustParseInt(v)
	}
	if v := getEnv("OLIVEPLATE_TOKEN_PATH", ""); v != "" {
		c.TokenPath = v
	}
	if v := getEnv("OLIVEPLATE_CACHE_TTL_SEC", ""); v != "" {
		c.CacheTTLSec = mustParseInt(v)
	}
	if v := getEnv("LOG_LEVEL", ""); v != "" {
		c.LogLevel = v
	}
	if v := getEnv("LOG_PATH", ""); v != "" {
		c.LogPath = v
	}
	if v := getEnv("LOG_MAX_SIZE_MB", ""); v != "" {
		c.LogMaxSizeMB = mustParseInt(v)
	}
	if v := getEnv("LOG_MAX_BACKUPS", ""); v != "" {
		c.LogMaxBackups = mustParseInt(v)
	}
	if v := getEnv("LOG_MAX_AGE_DAYS", ""); v != "" {
		c.LogMaxAgeDays = mustParseInt(v)
	}
	if v := getEnv("LOG_COMPRESS", ""); v != "" {
		c.LogCompress = strings.EqualFold(v, "true") || v == "1"
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func mustParseInt(val string) int {
	i, err := strconv.Atoi(val)
	if err != nil {
		return 0
	}
	return i
}
