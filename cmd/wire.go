package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/bnema/thinkday/internal/adapters/codec/jsonstate"
	contenttoml "github.com/bnema/thinkday/internal/adapters/content/toml"
	dashboardadapter "github.com/bnema/thinkday/internal/adapters/render/dashboard"
	insightsadapter "github.com/bnema/thinkday/internal/adapters/render/insights"
	fileslot "github.com/bnema/thinkday/internal/adapters/slot/file"
	sqliteslot "github.com/bnema/thinkday/internal/adapters/slot/sqlite"
	"github.com/bnema/thinkday/internal/application"
	"github.com/bnema/thinkday/internal/config"
	"github.com/bnema/thinkday/internal/domain"
	"github.com/bnema/thinkday/internal/logging"
	"github.com/bnema/thinkday/internal/ports"
	"go.uber.org/zap"
)

const sqliteFileName = "thinkday.db"

type app struct {
	service           *application.Service
	config            config.Config
	logger            *zap.Logger
	insightsRenderer  func(domain.Session, application.Insights) (string, error)
	dashboardRenderer func(application.Dashboard) (string, error)
	wizardRenderer    func(application.WizardStatus) (string, error)
	now               func() time.Time
	detach            func()
	closeSlot         func() error
}

// wireApp loads the persisted state and attaches persistence to the store, so
// every dispatch made by a command is saved before the command returns.
func wireApp(ctx context.Context, stderr io.Writer) (*app, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	cfg, err := config.Load(homeDir)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger, err := logging.New(logging.Options{Level: cfg.Log.Level, Format: cfg.Log.Format, Output: stderr})
	if err != nil {
		return nil, fmt.Errorf("wire logger: %w", err)
	}

	slot, closeSlot, err := newStateSlot(cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("wire state slot: %w", err)
	}

	settings, err := contenttoml.Load(cfg.Content.Path)
	if err != nil {
		_ = closeSlot()
		return nil, fmt.Errorf("load content: %w", err)
	}

	codec := jsonstate.Codec{}
	persistence := application.NewPersistence(slot, codec, writerNotifier{w: stderr}, logger)

	initial, ok := persistence.Load(ctx)
	if !ok {
		initial = domain.NewAppState(settings)
	}

	store := application.NewStore(initial, logger)
	detach := persistence.Attach(ctx, store)

	return &app{
		service:           application.NewService(store, codec, ports.SystemClock{}, ports.TimeOrderedIDs{}, logger),
		config:            cfg,
		logger:            logger,
		insightsRenderer:  insightsadapter.Render,
		dashboardRenderer: dashboardadapter.Render,
		wizardRenderer:    dashboardadapter.RenderWizard,
		now:               time.Now,
		detach:            detach,
		closeSlot:         closeSlot,
	}, nil
}

func newStateSlot(cfg config.StorageConfig) (ports.StateSlot, func() error, error) {
	switch cfg.Backend {
	case config.BackendSQLite:
		slot, err := sqliteslot.Open(filepath.Join(cfg.Dir, sqliteFileName), cfg.Slot)
		if err != nil {
			return nil, nil, err
		}
		return slot, slot.Close, nil
	default:
		slot, err := fileslot.NewSlot(cfg.Dir, cfg.Slot)
		if err != nil {
			return nil, nil, err
		}
		return slot, func() error { return nil }, nil
	}
}

func (a *app) close() error {
	if a == nil || a.detach == nil {
		return nil
	}
	a.detach()
	_ = a.logger.Sync()
	return a.closeSlot()
}

// writerNotifier prints storage warnings without failing the command.
type writerNotifier struct {
	w io.Writer
}

func (n writerNotifier) Warn(title, description string) {
	_, _ = fmt.Fprintf(n.w, "warning: %s: %s\n", title, description)
}
