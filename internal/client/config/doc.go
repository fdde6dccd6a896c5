// Package config loads runtime configuration for the back-office CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional config file given with -c or -config. Files ending in
//     ".toml" are read as TOML, everything else as JSON.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Both file formats share the same keys:
//
//	{
//	  "identity_endpoint": "http://localhost:8182",
//	  "customer_endpoint": "http://localhost:8081",
//	  "storage_dsn": "backoffice.db",
//	  "request_timeout": "10s",
//	  "online_check_interval": "3s",
//	  "log_level": "info",
//	  "log_format": "text",
//	  "metrics_addr": ":9090",
//	  "operator": "admin"
//	}
//
// Environment variables are not read.
package config
