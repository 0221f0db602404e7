package config

import (
	"flag"
	"os"

	"github.com/meheralimeer/shelfwatch/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-f string     path of the item data file (file backend)
//	-b string     storage backend: file | sqlite
//	-d string     sqlite database path
//	-H int        local hour (0-23) the daily sweep anchors at
//	-i duration   period between scheduled sweeps (e.g. 24h)
//
// Note: The function filters os.Args to only include the flags it knows
// about, using flagx.FilterArgs, to avoid interference with the config-file
// flags handled elsewhere.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-f", "-b", "-d", "-H", "-i"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DataFile, "f", cfg.DataFile, "path of the item data file")
	fs.StringVar(&cfg.Backend, "b", cfg.Backend, "storage backend: file | sqlite")
	fs.StringVar(&cfg.SQLiteDSN, "d", cfg.SQLiteDSN, "sqlite database path")
	fs.IntVar(&cfg.AlertHour, "H", cfg.AlertHour, "local hour the daily expiry sweep anchors at")
	fs.DurationVar(&cfg.SweepEvery, "i", cfg.SweepEvery, "period between scheduled sweeps")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
