package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/idilsaglam/tasks/internal/config"
	"github.com/idilsaglam/tasks/internal/log"
	"github.com/idilsaglam/tasks/internal/store"
	"github.com/idilsaglam/tasks/internal/store/filestore"
	"github.com/idilsaglam/tasks/internal/store/sqlitestore"
	"github.com/idilsaglam/tasks/internal/tracker"
	"github.com/idilsaglam/tasks/internal/ui"
)

// app is the state shared by every command of one process: configuration,
// the open store and the tracker over the loaded registry.
type app struct {
	cfgFile    string
	cfg        config.Config
	configured bool

	store      store.Store
	tracker    *tracker.Tracker
	logCleanup func()
}

// configure resolves configuration once per process. Later commands (shell
// lines) may not change it.
func (a *app) configure(cmd *cobra.Command) error {
	if a.configured {
		var changed string
		cmd.Root().PersistentFlags().VisitAll(func(f *pflag.Flag) {
			if changed == "" && f.Changed {
				changed = f.Name
			}
		})
		if changed != "" {
			return fmt.Errorf("flag --%s cannot be changed inside the shell", changed)
		}
		return nil
	}
	cfg, err := config.Load(a.cfgFile, cmd.Flags())
	if err != nil {
		return failure(err)
	}
	a.cfg = cfg
	a.configured = true

	if cfg.Debug || log.Enabled() {
		cleanup, err := log.Init(cfg.LogFile)
		if err != nil {
			return failure(err)
		}
		a.logCleanup = cleanup
	}
	ui.SetTheme(cfg.Theme)
	if cfg.NoColor {
		ui.DisableColor()
	}
	log.Info(log.CatConfig, "Configuration loaded", "store", cfg.Store, "data", cfg.DataPath(), "theme", cfg.Theme)
	return nil
}

// open loads the registry from the configured store on first use.
func (a *app) open() error {
	if a.tracker != nil {
		return nil
	}
	s, err := openStore(a.cfg)
	if err != nil {
		return failure(fmt.Errorf("open store: %w", err))
	}
	snap, err := s.Load()
	if err != nil {
		_ = s.Close()
		return failure(fmt.Errorf("load: %w", err))
	}
	reg, err := snap.Registry()
	if err != nil {
		_ = s.Close()
		return failure(fmt.Errorf("load: %w", err))
	}
	a.store = s
	a.tracker = tracker.New(reg)
	return nil
}

// Execute runs cmd and saves the registry when it changed.
func (a *app) Execute(cmd tracker.Command) (tracker.Result, error) {
	if err := a.open(); err != nil {
		return tracker.Result{}, err
	}
	res, err := a.tracker.Execute(cmd)
	if err != nil {
		return res, err
	}
	if reason := res.Err(); reason != nil {
		if errors.Is(reason, tracker.ErrAlreadyCompleted) {
			log.Info(log.CatCommand, "Command not applied", "command", cmd.Name(), "reason", reason)
		} else {
			log.Warn(log.CatCommand, "Command not applied", "command", cmd.Name(), "reason", reason)
		}
	}
	if res.Changed {
		if err := a.store.Save(store.FromRegistry(a.tracker.Registry())); err != nil {
			log.ErrorErr(log.CatStore, "Save failed", err, "store", a.cfg.Store)
			return res, failure(fmt.Errorf("save: %w", err))
		}
	}
	return res, nil
}

// run executes cmd and prints the result to the command's output.
func (a *app) run(c *cobra.Command, cmd tracker.Command) error {
	res, err := a.Execute(cmd)
	if err != nil {
		return err
	}
	return renderOrFail(c, res)
}

func (a *app) close() {
	if a.store != nil {
		if err := a.store.Close(); err != nil {
			log.ErrorErr(log.CatStore, "Close failed", err)
		}
	}
	if a.logCleanup != nil {
		a.logCleanup()
	}
}

func openStore(cfg config.Config) (store.Store, error) {
	path := cfg.DataPath()
	switch cfg.Store {
	case config.StoreMemory:
		return store.NewMemory(), nil
	case config.StoreJSON:
		return filestore.New(path, filestore.JSON)
	case config.StoreYAML:
		return filestore.New(path, filestore.YAML)
	case config.StoreSQLite:
		return sqlitestore.Open(path)
	default:
		return nil, fmt.Errorf("unknown store %q", cfg.Store)
	}
}
