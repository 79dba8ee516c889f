// Package cli implements the terminal views of the dashboard: the public
// entry screen (login/signup) and the protected dashboard screen (data
// table, account menu). Navigation between the two is reconciled with
// session state by the guard on every mount.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"
	"sync/atomic"

	"github.com/dkoval85/dashterm/internal/client/config"
	"github.com/dkoval85/dashterm/internal/client/repositories/kv"
	"github.com/dkoval85/dashterm/internal/client/repositories/records"
	"github.com/dkoval85/dashterm/internal/client/services"
	"github.com/dkoval85/dashterm/internal/client/storage"
	"github.com/dkoval85/dashterm/internal/client/stores"
	"github.com/dkoval85/dashterm/internal/logging"
)

// printlnFn and printfFn are test seams for user-facing output.
var printlnFn = fmt.Println
var printfFn = fmt.Printf

// App wires the stores, services and views together and runs the REPL.
type App struct {
	config   *config.Config
	identity services.IdentityService
	records  services.RecordsService
	log      logging.Logger
	reader   *bufio.Reader
	db       *sql.DB

	view        View
	sidebarOpen bool
	listOpts    services.ListOptions

	// authInFlight latches the auth forms: one in-flight register/login at
	// a time, resubmission during the simulated delay is rejected.
	authInFlight atomic.Bool
}

func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	db, err := storage.InitDatabase(ctx, cfg.DatabaseDSN)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	kvRepo := kv.NewSQLiteRepository(db)
	accounts := stores.NewKVAccountStore(kvRepo, log)
	sessions := stores.NewKVSessionStore(kvRepo, log)

	return &App{
		config:      cfg,
		identity:    services.NewIdentity(accounts, sessions, log, cfg.AuthLatency),
		records:     services.NewRecords(records.NewSQLiteRepository(db), log),
		log:         log,
		reader:      bufio.NewReader(os.Stdin),
		db:          db,
		view:        ViewEntry,
		sidebarOpen: true,
	}, nil
}

// Close releases the underlying database handle.
func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}

// Run drives the REPL until EOF or an explicit exit.
func (a *App) Run(ctx context.Context) {
	a.runLoop(ctx, bufio.NewScanner(os.Stdin))
}

// runLoop mounts the current view, reads one command, dispatches it, and
// repeats. Mounting before every command keeps the visible view consistent
// with session state: a command that changed the session (login, logout,
// delete) lands on the right screen on the next prompt.
func (a *App) runLoop(ctx context.Context, scanner *bufio.Scanner) {
	printlnFn("Welcome to Dashboard (type 'help' for commands)")

	for {
		a.mount(ctx)

		printfFn("%s %s> ", a.view, a.status(ctx))
		if !scanner.Scan() {
			return
		}

		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		if cmd == "exit" || cmd == "quit" {
			printlnFn("Bye!")
			return
		}

		if a.view == ViewEntry {
			a.execEntry(ctx, cmd)
		} else {
			a.execDashboard(ctx, cmd, args)
		}
	}
}

// mount applies the session guard to the current view, following redirects
// until the view is stable. Mounting the dashboard first re-validates the
// cached session claim, so an account deleted underneath us bounces back to
// the entry screen instead of showing a dashboard for nobody.
func (a *App) mount(ctx context.Context) {
	for {
		if a.view == ViewDashboard {
			a.identity.ValidateSession(ctx)
		}

		_, active := a.identity.CurrentSession(ctx)
		next := EvaluateGuard(a.view, active)
		if next == a.view {
			return
		}

		a.log.Debug(ctx, "redirecting", "from", string(a.view), "to", string(next))
		a.view = next
	}
}

func (a *App) status(ctx context.Context) string {
	id, active := a.identity.CurrentSession(ctx)
	if !active {
		return ""
	}
	return fmt.Sprintf("(%s) ", id.Email)
}
