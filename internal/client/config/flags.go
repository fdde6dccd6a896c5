package config

import (
	"flag"
	"os"
	"time"

	"github.com/diegorighi/yukam-front/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   identity service base URL
//	-r string   customer-record service base URL
//	-d string   SQLite storage DSN
//	-t int      request timeout (in seconds)
//	-i int      online check interval (in seconds)
//	-l string   log level
//	-f string   log format (text, json)
//	-m string   address to serve Prometheus metrics on (empty disables)
//	-o string   operator name recorded on block, delete and restore
//
// os.Args is filtered with flagx.FilterArgs first, so the -c/-config flag
// read by parseFile does not get in the way.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-r", "-d", "-t", "-i", "-l", "-f", "-m", "-o"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.IdentityEndpoint, "a", cfg.IdentityEndpoint, "identity service base URL")
	fs.StringVar(&cfg.CustomerEndpoint, "r", cfg.CustomerEndpoint, "customer-record service base URL")
	fs.StringVar(&cfg.StorageDSN, "d", cfg.StorageDSN, "SQLite storage DSN")
	requestTimeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	onlineCheckInterval := fs.Int("i", int(cfg.OnlineCheckInterval.Seconds()), "online check interval (in seconds)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug, info, warn, error)")
	fs.StringVar(&cfg.LogFormat, "f", cfg.LogFormat, "log format (text, json)")
	fs.StringVar(&cfg.MetricsAddr, "m", cfg.MetricsAddr, "metrics listen address")
	fs.StringVar(&cfg.Operator, "o", cfg.Operator, "operator name for audit fields")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*requestTimeout) * time.Second
	cfg.OnlineCheckInterval = time.Duration(*onlineCheckInterval) * time.Second
}
