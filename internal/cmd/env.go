package cmd

import (
	"fmt"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"

	"github.com/Iron-Ham/taskdeck/internal/config"
	"github.com/Iron-Ham/taskdeck/internal/event"
	"github.com/Iron-Ham/taskdeck/internal/lifecycle"
	"github.com/Iron-Ham/taskdeck/internal/logging"
	"github.com/Iron-Ham/taskdeck/internal/poll"
	"github.com/Iron-Ham/taskdeck/internal/remote"
	"github.com/Iron-Ham/taskdeck/internal/snapshot"
)

// env bundles the wired components every command works against.
type env struct {
	cfg    *config.Config
	logger *logging.Logger
	client *remote.Client
	bus    *event.Bus
	store  *snapshot.Store
	sync   *poll.Synchronizer
	tails  *poll.TailRegistry
	coord  *lifecycle.Coordinator
}

// newEnv loads configuration and wires the client-side components.
// watchConfig controls whether config file changes are republished on
// the bus, which only the long-running watch command cares about.
func newEnv(watchConfig bool) (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	logger := logging.NopLogger()
	if cfg.Logging.Enabled {
		logger, err = logging.NewLogger(cfg.Paths.ResolveDataDir(), cfg.Logging.Level, logging.RotationConfig{
			MaxSizeMB:  cfg.Logging.MaxSizeMB,
			MaxBackups: cfg.Logging.MaxBackups,
		})
		if err != nil {
			return nil, fmt.Errorf("opening log file: %w", err)
		}
	}

	client := remote.NewClient(cfg.Server.BaseURL).WithTimeout(cfg.Server.Timeout())
	bus := event.NewBus()
	store := snapshot.NewStore(bus)

	e := &env{
		cfg:    cfg,
		logger: logger,
		client: client,
		bus:    bus,
		store:  store,
		sync:   poll.NewSynchronizer(client, store, logger, cfg.Poll.ListInterval()),
		tails:  poll.NewTailRegistry(client, bus, logger, cfg.Poll.TailInterval()),
		coord:  lifecycle.NewCoordinator(client, bus, logger),
	}

	if watchConfig {
		viper.OnConfigChange(func(fsnotify.Event) {
			reloaded, err := config.Load()
			if err != nil {
				e.logger.Warn("config reload rejected", "error", err)
				return
			}
			e.sync.SetInterval(reloaded.Poll.ListInterval())
			e.tails.SetInterval(reloaded.Poll.TailInterval())
			e.bus.Publish(event.NewConfigReloadedEvent())
		})
		viper.WatchConfig()
	}

	return e, nil
}

// close releases the env. Active tails are stopped first so their
// final events still reach subscribers before the logger goes away.
func (e *env) close() {
	e.tails.Close()
	e.sync.Stop()
	_ = e.logger.Close()
}
