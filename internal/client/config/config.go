package config

import "time"

// Config holds runtime settings for the back-office CLI.
//
// Fields:
//   - IdentityEndpoint: base URL of the identity service (login, users, passwords).
//   - CustomerEndpoint: base URL of the customer-record service.
//   - StorageDSN: SQLite database holding the persisted session and preferences.
//   - RequestTimeout: per-request limit for both remote services.
//   - OnlineCheckInterval: how often the client probes identity-service reachability.
//   - LogLevel / LogFormat: slog level (debug, info, warn, error) and handler (text, json).
//   - MetricsAddr: when set, Prometheus metrics are served on this address.
//   - Operator: recorded as the acting user on block, delete and restore.
type Config struct {
	IdentityEndpoint    string
	CustomerEndpoint    string
	StorageDSN          string
	RequestTimeout      time.Duration
	OnlineCheckInterval time.Duration
	LogLevel            string
	LogFormat           string
	MetricsAddr         string
	Operator            string
}

// LoadDefaults populates c with values suited to a local development stack.
func (c *Config) LoadDefaults() {
	c.IdentityEndpoint = "http://localhost:8182"
	c.CustomerEndpoint = "http://localhost:8081"
	c.StorageDSN = "backoffice.db"
	c.RequestTimeout = 10 * time.Second
	c.OnlineCheckInterval = 3 * time.Second
	c.LogLevel = "info"
	c.LogFormat = "text"
	c.MetricsAddr = ""
	c.Operator = "admin"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// a config file (if given) and command-line flags. Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseFile(cfg)
	parseFlags(cfg)
	return cfg
}
