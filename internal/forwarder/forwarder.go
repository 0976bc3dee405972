package forwarder

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/AnshRaj112/tgprofile-forwarder/internal/bridge"
	"github.com/AnshRaj112/tgprofile-forwarder/internal/display"
	"github.com/AnshRaj112/tgprofile-forwarder/internal/transport"
)

const (
	DefaultRegionID   = "info"
	DefaultSubmitPath = "/submit"
	ContentTypeJSON   = "application/json"
)

// ErrMissingHostContext is returned when there is no bridge or the bridge carries no user.
var ErrMissingHostContext = errors.New("missing host context")

// ProfileForwarder shows the launching user's profile and forwards it once to the submit endpoint.
type ProfileForwarder struct {
	surface    display.Surface
	dispatcher transport.Dispatcher
	regionID   string
	submitPath string
}

type Option func(*ProfileForwarder)

// WithRegion sets the display region written on activation.
func WithRegion(id string) Option {
	return func(f *ProfileForwarder) { f.regionID = id }
}

// WithSubmitPath sets the path the profile is posted to.
func WithSubmitPath(path string) Option {
	return func(f *ProfileForwarder) { f.submitPath = path }
}

func New(surface display.Surface, dispatcher transport.Dispatcher, opts ...Option) *ProfileForwarder {
	f := &ProfileForwarder{
		surface:    surface,
		dispatcher: dispatcher,
		regionID:   DefaultRegionID,
		submitPath: DefaultSubmitPath,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Activate signals readiness, reads the user once, renders it and dispatches it.
// The display is written before the dispatch is issued and the dispatch is not awaited.
// When the user record is absent nothing is rendered or sent.
func (f *ProfileForwarder) Activate(b bridge.Bridge) error {
	if b == nil {
		return fmt.Errorf("%w: no host bridge", ErrMissingHostContext)
	}
	b.Ready()

	data := b.InitDataUnsafe()
	if data == nil || data.User == nil {
		return fmt.Errorf("%w: no user in init data", ErrMissingHostContext)
	}
	user := *data.User

	body, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}

	// Rendering and sending are independent; a failed render still sends.
	renderErr := f.surface.SetContent(f.regionID, display.RenderProfile(&user))
	f.dispatcher.Dispatch(f.submitPath, ContentTypeJSON, body)

	if renderErr != nil {
		return fmt.Errorf("render profile: %w", renderErr)
	}
	return nil
}
