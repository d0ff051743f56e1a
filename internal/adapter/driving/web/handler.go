// Package web implements the HTML GUI driving adapter using templ components.
package web

import (
	"log/slog"
	"net/http"

	"github.com/ericfisherdev/guestwifi/internal/adapter/driving/web/templates"
	"github.com/ericfisherdev/guestwifi/internal/adapter/driving/web/templates/pages"
	"github.com/ericfisherdev/guestwifi/internal/application"
)

// Handler is the web GUI driving adapter that serves HTML via templ components.
type Handler struct {
	passwordSvc *application.PasswordService
	noticeHTML  string
	logger      *slog.Logger
}

// NewHandler creates a Handler. notice is operator markdown shown under the
// password; it is rendered and sanitized once here.
func NewHandler(
	passwordSvc *application.PasswordService,
	notice string,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		passwordSvc: passwordSvc,
		noticeHTML:  RenderNotice(notice),
		logger:      logger,
	}
}

// WiFiPage renders today's password page with the full HTML layout.
func (h *Handler) WiFiPage(w http.ResponseWriter, r *http.Request) {
	result := h.passwordSvc.CurrentPassword(r.Context())
	page := toWiFiPageViewModel(result, h.passwordSvc.Network(), h.noticeHTML)

	component := pages.WiFi(page)
	layout := templates.Layout(page.NetworkName+" WiFi", component)

	w.Header().Set("Cache-Control", "no-store")
	if err := layout.Render(r.Context(), w); err != nil {
		h.logger.Error("failed to render wifi page", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}
