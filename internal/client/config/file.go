package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/diegorighi/yukam-front/internal/flagx"
	"github.com/diegorighi/yukam-front/internal/timex"
)

// FileConfig is the on-disk shape of the configuration, shared by the JSON
// and TOML loaders. Durations accept "3s" style strings (and integer
// nanoseconds in JSON).
type FileConfig struct {
	IdentityEndpoint    string         `json:"identity_endpoint" toml:"identity_endpoint"`
	CustomerEndpoint    string         `json:"customer_endpoint" toml:"customer_endpoint"`
	StorageDSN          string         `json:"storage_dsn" toml:"storage_dsn"`
	RequestTimeout      timex.Duration `json:"request_timeout" toml:"request_timeout"`
	OnlineCheckInterval timex.Duration `json:"online_check_interval" toml:"online_check_interval"`
	LogLevel            string         `json:"log_level" toml:"log_level"`
	LogFormat           string         `json:"log_format" toml:"log_format"`
	MetricsAddr         string         `json:"metrics_addr" toml:"metrics_addr"`
	Operator            string         `json:"operator" toml:"operator"`
}

// parseFile overlays cfg with the file named by -c or -config. The format
// follows the extension: ".toml" is read as TOML, anything else as JSON.
// Keys missing from the file keep their current value. Read or decode
// errors panic, like flag errors.
func parseFile(cfg *Config) {
	path := flagx.ConfigFileFlag()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	fc, err := decodeFile(path, data)
	if err != nil {
		panic(err)
	}
	fc.apply(cfg)
}

func decodeFile(path string, data []byte) (*FileConfig, error) {
	var fc FileConfig

	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if err := toml.Unmarshal(data, &fc); err != nil {
			return nil, fmt.Errorf("parse toml config %s: %w", path, err)
		}
		return &fc, nil
	}

	if err := json.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("parse json config %s: %w", path, err)
	}
	return &fc, nil
}

func (fc *FileConfig) apply(cfg *Config) {
	setString(&cfg.IdentityEndpoint, fc.IdentityEndpoint)
	setString(&cfg.CustomerEndpoint, fc.CustomerEndpoint)
	setString(&cfg.StorageDSN, fc.StorageDSN)
	setString(&cfg.LogLevel, fc.LogLevel)
	setString(&cfg.LogFormat, fc.LogFormat)
	setString(&cfg.MetricsAddr, fc.MetricsAddr)
	setString(&cfg.Operator, fc.Operator)

	if fc.RequestTimeout.Duration > 0 {
		cfg.RequestTimeout = fc.RequestTimeout.Duration
	}
	if fc.OnlineCheckInterval.Duration > 0 {
		cfg.OnlineCheckInterval = fc.OnlineCheckInterval.Duration
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
