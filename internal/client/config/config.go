package config

import "time"

// Config holds runtime settings for the Quark CLI.
//
// Fields:
//   - ServerBaseURL: root of the paper-service API, including the /api prefix.
//   - RequestTimeout: overall per-request timeout applied by the HTTP client.
//   - DownloadDir: where downloaded papers are saved.
//   - SessionDBPath: sqlite file persisting the login session between runs.
type Config struct {
	ServerBaseURL  string
	RequestTimeout time.Duration
	DownloadDir    string
	SessionDBPath  string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://localhost:5000/api"
	c.RequestTimeout = 30 * time.Second
	c.DownloadDir = "downloads"
	c.SessionDBPath = "quark-session.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if a config file was given) and command-line flags. Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)
	parseFlags(cfg)
	return cfg
}
