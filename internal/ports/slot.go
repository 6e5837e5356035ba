package ports

import (
	"context"

	"github.com/bnema/thinkday/internal/domain"
)

// StateSlot is a single named entry in durable local storage.
// Read returns domain.ErrSlotEmpty when nothing has been written yet.
type StateSlot interface {
	Read(ctx context.Context) ([]byte, error)
	Write(ctx context.Context, data []byte) error
}

type StateCodec interface {
	Encode(state domain.AppState) ([]byte, error)
	Decode(data []byte) (domain.AppState, error)
}
