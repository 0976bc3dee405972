package bridge

import (
	"sync/atomic"

	"github.com/AnshRaj112/tgprofile-forwarder/internal/models"
)

// Bridge is the capability the host platform hands to a mini-app.
type Bridge interface {
	// Ready tells the host the client can receive data.
	Ready()
	// InitDataUnsafe returns the raw launch payload, or nil when the host sent none.
	InitDataUnsafe() *models.InitDataUnsafe
}

// Static is a Bridge backed by an already-parsed launch payload.
type Static struct {
	data  *models.InitDataUnsafe
	ready atomic.Int32
}

// NewStatic wraps data. A nil data yields a bridge with no init data.
func NewStatic(data *models.InitDataUnsafe) *Static {
	return &Static{data: data}
}

// FromRaw parses raw launch data and wraps the result.
func FromRaw(raw string) (*Static, error) {
	data, err := ParseInitData(raw)
	if err != nil {
		return nil, err
	}
	return NewStatic(data), nil
}

// Ready is a no-op on a nil *Static.
func (s *Static) Ready() {
	if s == nil {
		return
	}
	s.ready.Add(1)
}

// InitDataUnsafe returns nil on a nil *Static.
func (s *Static) InitDataUnsafe() *models.InitDataUnsafe {
	if s == nil {
		return nil
	}
	return s.data
}

// ReadyCount reports how many times Ready was signalled.
func (s *Static) ReadyCount() int {
	if s == nil {
		return 0
	}
	return int(s.ready.Load())
}
