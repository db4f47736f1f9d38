// Package config handles configuration for the time keeper CLI,
// including defaults, JSON overlay, and command-line flags.
package config

// Config holds runtime settings for the time keeper.
//
// Fields:
//   - DatabaseDSN: path (or DSN) of the local SQLite attendance database.
//   - ExportPath: default file the hours report is written to.
type Config struct {
	DatabaseDSN string
	ExportPath  string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabaseDSN = "timekeeper.db"
	c.ExportPath = "time_report.txt"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
