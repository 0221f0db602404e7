// Package config loads runtime configuration for shelfwatch.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-f string     path of the item data file (file backend)
//	-b string     storage backend: file | sqlite
//	-d string     sqlite database path
//	-H int        local hour (0-23) the daily expiry sweep anchors at
//	-i duration   period between scheduled sweeps
//
// # JSON schema
//
// The JSON loader uses timex.Duration for the sweep period, so values can be
// either strings like "24h" or integer nanoseconds:
//
//	{
//	  "data_file": "data/items.txt",
//	  "backend": "file",
//	  "sqlite_dsn": "data/items.db",
//	  "alert_hour": 8,
//	  "sweep_every": "24h"
//	}
//
// The defaults reproduce the stock behavior: data/items.txt, a daily sweep
// anchored at 08:00 local time.
package config
