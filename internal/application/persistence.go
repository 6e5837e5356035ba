package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/thinkday/internal/domain"
	"github.com/bnema/thinkday/internal/ports"
	"go.uber.org/zap"
)

const (
	loadWarningTitle       = "Error loading data"
	loadWarningDescription = "Starting with a fresh session."
	saveWarningTitle       = "Error saving data"
	saveWarningDescription = "Your progress may not be saved."
)

// Persistence stores the whole AppState in one storage slot. Failures are
// logged and reported through the notifier; they are never fatal.
type Persistence struct {
	slot     ports.StateSlot
	codec    ports.StateCodec
	notifier ports.Notifier
	logger   *zap.Logger
}

func NewPersistence(slot ports.StateSlot, codec ports.StateCodec, notifier ports.Notifier, logger *zap.Logger) *Persistence {
	if notifier == nil {
		notifier = ports.NopNotifier{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Persistence{slot: slot, codec: codec, notifier: notifier, logger: logger}
}

// Load returns the stored state. ok is false when the slot is empty or its
// content cannot be read or decoded, in which case the caller keeps its
// default state.
func (p *Persistence) Load(ctx context.Context) (domain.AppState, bool) {
	data, err := p.slot.Read(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrSlotEmpty) {
			return domain.AppState{}, false
		}
		p.logger.Warn("failed to load saved state", zap.Error(err))
		p.notifier.Warn(loadWarningTitle, loadWarningDescription)
		return domain.AppState{}, false
	}

	state, err := p.codec.Decode(data)
	if err != nil {
		p.logger.Warn("failed to decode saved state", zap.Error(err))
		p.notifier.Warn(loadWarningTitle, loadWarningDescription)
		return domain.AppState{}, false
	}

	return state, true
}

// Save overwrites the slot with state. The returned error has already been
// logged and reported.
func (p *Persistence) Save(ctx context.Context, state domain.AppState) error {
	err := p.save(ctx, state)
	if err != nil {
		p.logger.Warn("failed to save state", zap.Error(err))
		p.notifier.Warn(saveWarningTitle, saveWarningDescription)
	}
	return err
}

func (p *Persistence) save(ctx context.Context, state domain.AppState) error {
	data, err := p.codec.Encode(state)
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}
	if err := p.slot.Write(ctx, data); err != nil {
		return fmt.Errorf("write state slot: %w", err)
	}
	return nil
}

// Attach saves every state the store produces and returns the unsubscribe
// function.
func (p *Persistence) Attach(ctx context.Context, store *Store) func() {
	return store.Subscribe(func(state domain.AppState) {
		_ = p.Save(ctx, state)
	})
}
