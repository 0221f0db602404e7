// Package cli implements the interactive shell: a table-style listing with
// add/edit/delete/search/sort over the item store, plus delivery of expiry
// alerts raised by the background monitor.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/meheralimeer/shelfwatch/internal/config"
	"github.com/meheralimeer/shelfwatch/internal/filex"
	"github.com/meheralimeer/shelfwatch/internal/logging"
	"github.com/meheralimeer/shelfwatch/internal/monitor"
	"github.com/meheralimeer/shelfwatch/internal/store"
)

type App struct {
	config      *config.Config
	store       store.Store
	mon         *monitor.Monitor
	log         logging.Logger
	reader      *bufio.Reader
	out         io.Writer
	interactive bool
	closeFn     func() error
}

func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {

	var (
		st      store.Store
		closeFn func() error
	)

	switch cfg.Backend {
	case config.BackendFile:
		if err := filex.EnsureParentDir(cfg.DataFile); err != nil {
			return nil, err
		}
		st = store.NewFileStore(cfg.DataFile)

	case config.BackendSQLite:
		if err := filex.EnsureParentDir(cfg.SQLiteDSN); err != nil {
			return nil, err
		}
		s, err := store.OpenSQLite(ctx, cfg.SQLiteDSN)
		if err != nil {
			log.Error(ctx, "error initializing database", "error", err)
			return nil, err
		}
		st = s
		closeFn = s.Close

	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}

	interactive := term.IsTerminal(int(os.Stdin.Fd()))

	notifier := newTerminalNotifier(os.Stdout, interactive)
	mon := monitor.New(st, notifier, log, cfg.AlertHour, cfg.SweepEvery)

	return &App{
		config:      cfg,
		store:       st,
		mon:         mon,
		log:         log,
		reader:      bufio.NewReader(os.Stdin),
		out:         os.Stdout,
		interactive: interactive,
		closeFn:     closeFn,
	}, nil
}

// Run starts the expiry monitor in the background and drives the shell until
// EOF or an exit command. The monitor is torn down with the shell.
func (a *App) Run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go a.mon.Start(ctx)

	// The REPL shares a.reader with the command prompts so piped input is
	// consumed in order instead of being buffered away from the prompts.
	runREPL(ctx, a, a.reader, a.interactive)

	if a.closeFn != nil {
		if err := a.closeFn(); err != nil {
			a.log.Error(ctx, "error closing store", "error", err)
		}
	}
}

// printError surfaces a store failure to the user; the shell keeps running.
func (a *App) printError(err error) {
	fmt.Fprintf(a.out, "Error: %v\n", err)
}
