package handlers

import (
	"embed"
	"errors"
	"html/template"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/AnshRaj112/tgprofile-forwarder/internal/bridge"
	"github.com/AnshRaj112/tgprofile-forwarder/internal/display"
	"github.com/AnshRaj112/tgprofile-forwarder/internal/forwarder"
	"github.com/AnshRaj112/tgprofile-forwarder/internal/transport"
)

const (
	// InitDataParam is the launch parameter the platform appends to the mini-app URL.
	InitDataParam = "tgWebAppData"
	// InitDataHeader lets a client relay init data without putting it in the URL.
	InitDataHeader = "X-Telegram-Init-Data"
	// ActivationIDHeader identifies one activation in responses and logs.
	ActivationIDHeader = "X-Activation-ID"
)

//go:embed templates/miniapp.html
var templatesFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templatesFS, "templates/miniapp.html"))

type pageData struct {
	Title    string
	RegionID string
	Info     template.HTML
}

// MiniAppHandler hosts activations of the profile forwarder.
type MiniAppHandler struct {
	dispatcher transport.Dispatcher
	logger     *zap.Logger
}

func NewMiniAppHandler(dispatcher transport.Dispatcher, logger *zap.Logger) *MiniAppHandler {
	return &MiniAppHandler{dispatcher: dispatcher, logger: logger}
}

// Page runs one activation against the caller's init data and returns the filled page.
func (h *MiniAppHandler) Page(w http.ResponseWriter, r *http.Request) {
	activationID := uuid.New().String()
	w.Header().Set(ActivationIDHeader, activationID)
	log := h.logger.With(zap.String("activation_id", activationID))

	raw := r.URL.Query().Get(InitDataParam)
	if raw == "" {
		raw = r.Header.Get(InitDataHeader)
	}

	b, err := bridge.FromRaw(raw)
	if err != nil {
		log.Warn("rejecting init data", zap.Error(err))
		writeError(w, http.StatusBadRequest, "Invalid init data")
		return
	}

	doc := display.NewDocument(forwarder.DefaultRegionID)
	fwd := forwarder.New(doc, h.dispatcher)
	if err := fwd.Activate(b); err != nil {
		if errors.Is(err, forwarder.ErrMissingHostContext) {
			log.Warn("activation without host context", zap.Error(err))
			writeError(w, http.StatusBadRequest, "No user in init data")
			return
		}
		log.Error("activation failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Activation failed")
		return
	}

	user := b.InitDataUnsafe().User
	log.Info("profile activated", zap.Int64("user_id", user.ID))

	info, _ := doc.Content(forwarder.DefaultRegionID)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTemplate.Execute(w, pageData{
		Title:    "Your Profile",
		RegionID: forwarder.DefaultRegionID,
		Info:     template.HTML(info),
	}); err != nil {
		log.Error("render page", zap.Error(err))
	}
}
