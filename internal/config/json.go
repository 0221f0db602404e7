package config

import (
	"encoding/json"
	"os"

	"github.com/meheralimeer/shelfwatch/internal/flagx"
	"github.com/meheralimeer/shelfwatch/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify the sweep period either as a string
// like "24h" or as integer nanoseconds. Pointer fields distinguish "absent"
// from zero values; absent keys leave the defaults untouched.
type JsonConfig struct {
	DataFile   string          `json:"data_file"`
	Backend    string          `json:"backend"`
	SQLiteDSN  string          `json:"sqlite_dsn"`
	AlertHour  *int            `json:"alert_hour"`
	SweepEvery *timex.Duration `json:"sweep_every"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// Lookup order for the JSON file path:
//  1. Command-line flags (-c or -config) via flagx.JsonConfigFlags().
//  2. If empty, no JSON is loaded and the function returns.
//
// Panics on read or unmarshal errors (caller should recover if desired).
// Intended usage is: defaults -> parseJson -> parseFlags, where later stages
// override earlier ones.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DataFile != "" {
		cfg.DataFile = jc.DataFile
	}
	if jc.Backend != "" {
		cfg.Backend = jc.Backend
	}
	if jc.SQLiteDSN != "" {
		cfg.SQLiteDSN = jc.SQLiteDSN
	}
	if jc.AlertHour != nil {
		cfg.AlertHour = *jc.AlertHour
	}
	if jc.SweepEvery != nil {
		cfg.SweepEvery = jc.SweepEvery.Duration
	}
}
