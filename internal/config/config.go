package config

import "time"

// Backend names accepted by the -b flag / "backend" JSON key.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// Config holds runtime settings for shelfwatch.
//
// Fields:
//   - DataFile: path of the plain-text item file (file backend).
//   - Backend: storage backend, "file" or "sqlite".
//   - SQLiteDSN: database path for the sqlite backend.
//   - AlertHour: local hour (0-23) the daily expiry sweep anchors at.
//   - SweepEvery: period between scheduled sweeps after the anchor.
type Config struct {
	DataFile   string
	Backend    string
	SQLiteDSN  string
	AlertHour  int
	SweepEvery time.Duration
}

// LoadDefaults populates c with the stock single-user setup: the item file
// under ./data, a daily sweep anchored at 08:00.
func (c *Config) LoadDefaults() {
	c.DataFile = "data/items.txt"
	c.Backend = BackendFile
	c.SQLiteDSN = "data/items.db"
	c.AlertHour = 8
	c.SweepEvery = 24 * time.Hour
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
