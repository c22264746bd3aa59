package tui

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Iron-Ham/taskdeck/internal/config"
	"github.com/Iron-Ham/taskdeck/internal/event"
	"github.com/Iron-Ham/taskdeck/internal/lifecycle"
	"github.com/Iron-Ham/taskdeck/internal/logging"
	"github.com/Iron-Ham/taskdeck/internal/poll"
	"github.com/Iron-Ham/taskdeck/internal/snapshot"
)

// App wraps the bubbletea program and owns the lifetime of the polling
// machinery while the UI is on screen. Closing the UI stops every
// active tail and the list synchronizer before Run returns.
type App struct {
	ctx    context.Context
	cancel context.CancelFunc
	cfg    *config.Config
	bus    *event.Bus
	store  *snapshot.Store
	sync   *poll.Synchronizer
	tails  *poll.TailRegistry
	coord  *lifecycle.Coordinator
	logger *logging.Logger

	program *tea.Program
}

// NewApp creates the watch application around already-wired components.
func NewApp(ctx context.Context, cfg *config.Config, bus *event.Bus, store *snapshot.Store, sync *poll.Synchronizer, tails *poll.TailRegistry, coord *lifecycle.Coordinator, logger *logging.Logger) *App {
	if ctx == nil {
		ctx = context.Background()
	}
	if logger == nil {
		logger = logging.NopLogger()
	}
	ctx, cancel := context.WithCancel(ctx)
	return &App{
		ctx:    ctx,
		cancel: cancel,
		cfg:    cfg,
		bus:    bus,
		store:  store,
		sync:   sync,
		tails:  tails,
		coord:  coord,
		logger: logger.WithComponent("tui"),
	}
}

// Run starts background polling, shows the UI, and blocks until the
// user quits or a signal arrives. All polling loops are stopped before
// it returns.
func (a *App) Run() error {
	model := NewModel(a.ctx, a.cfg, a.store, a.sync, a.tails, a.coord, a.logger)
	a.program = tea.NewProgram(model, tea.WithAltScreen())

	subID := a.bus.SubscribeAll(func(e event.Event) {
		if msg := eventToMsg(e); msg != nil {
			a.program.Send(msg)
		}
	})
	defer a.bus.Unsubscribe(subID)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-sigCh:
			a.program.Send(tea.Quit())
		case <-a.ctx.Done():
		}
	}()

	a.sync.Start(a.ctx)
	a.logger.Info("watch started", "base_url", a.cfg.Server.BaseURL)

	_, err := a.program.Run()

	a.shutdown()
	return err
}

// shutdown cancels in-flight fetches and stops every loop. Safe to call
// more than once.
func (a *App) shutdown() {
	a.cancel()
	a.tails.Close()
	a.sync.Stop()
	a.logger.Info("watch stopped")
}
