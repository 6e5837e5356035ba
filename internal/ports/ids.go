package ports

import (
	"github.com/bnema/thinkday/internal/domain"
	"github.com/google/uuid"
)

type IDGenerator interface {
	NewSessionID() domain.SessionID
}

// TimeOrderedIDs issues UUIDv7 session ids, which sort by creation time.
type TimeOrderedIDs struct{}

func (TimeOrderedIDs) NewSessionID() domain.SessionID {
	id, err := uuid.NewV7()
	if err != nil {
		return domain.SessionID(uuid.NewString())
	}
	return domain.SessionID(id.String())
}
