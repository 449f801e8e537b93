package memory

import (
	"errors"

	"github.com/carewell-lab/saheli/pkg/domain/interfaces"
)

// ErrNotFound is returned when a requested record does not exist
var ErrNotFound = errors.New("not found")

// Memory is the in-memory repository backend, the default for development
// and for the console demo. The caller owns nothing beyond the usual
// context; all access is mutex-guarded.
type Memory struct {
	interaction *interactionRepository
}

var _ interfaces.Repository = &Memory{}

func New() *Memory {
	return &Memory{
		interaction: newInteractionRepository(),
	}
}

func (m *Memory) Interaction() interfaces.InteractionRepository {
	return m.interaction
}

func (m *Memory) Close() error {
	return nil
}
