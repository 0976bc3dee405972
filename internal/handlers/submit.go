package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/AnshRaj112/tgprofile-forwarder/internal/models"
)

// SubmitResponse acknowledges a forwarded profile.
type SubmitResponse struct {
	Status   string              `json:"status"`
	Received *models.UserProfile `json:"received"`
}

// SubmitHandler is a development acceptor for forwarded profiles. It only echoes.
type SubmitHandler struct {
	logger *zap.Logger
}

func NewSubmitHandler(logger *zap.Logger) *SubmitHandler {
	return &SubmitHandler{logger: logger}
}

func (h *SubmitHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var profile models.UserProfile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	h.logger.Debug("profile received", zap.Int64("user_id", profile.ID))
	writeJSON(w, http.StatusOK, SubmitResponse{Status: "ok", Received: &profile})
}
