package export

import (
	"bytes"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/pocket/internal/export"
	"github.com/MrJamesThe3rd/pocket/internal/http/render"
	"github.com/MrJamesThe3rd/pocket/internal/session"
)

type Handler struct {
	svc      *export.Service
	sessions session.Resolver
}

func NewHandler(svc *export.Service, sessions session.Resolver) *Handler {
	return &Handler{svc: svc, sessions: sessions}
}

// Routes registers onto the transactions router, next to the ledger routes.
func (h *Handler) Routes(r chi.Router) {
	r.With(session.Require(h.sessions)).Get("/export", h.download)
}

func (h *Handler) download(w http.ResponseWriter, r *http.Request) {
	sessionID, _ := session.FromContext(r.Context())

	// Buffered so a storage failure can still produce a JSON error.
	var buf bytes.Buffer

	n, err := h.svc.WriteCSV(r.Context(), sessionID, &buf)
	if err != nil {
		slog.Error("failed to export transactions", "error", err)
		render.Error(w, http.StatusInternalServerError, "Internal server error")

		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="transactions.csv"`)
	w.Header().Set("X-Transaction-Count", strconv.Itoa(n))
	w.WriteHeader(http.StatusOK)

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("failed to write export", "error", err)
	}
}
