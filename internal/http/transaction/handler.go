package transaction

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"reflect"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/pocket/internal/http/render"
	"github.com/MrJamesThe3rd/pocket/internal/importer"
	"github.com/MrJamesThe3rd/pocket/internal/session"
	"github.com/MrJamesThe3rd/pocket/internal/transaction"
	"github.com/MrJamesThe3rd/pocket/internal/validation"
)

const maxImportSize = 10 << 20

type Handler struct {
	svc       *transaction.Service
	importSvc *importer.Service
	sessions  session.Resolver
}

func NewHandler(svc *transaction.Service, importSvc *importer.Service, sessions session.Resolver) *Handler {
	return &Handler{
		svc:       svc,
		importSvc: importSvc,
		sessions:  sessions,
	}
}

func (h *Handler) Routes(r chi.Router) {
	// Creation issues a session when the caller has none.
	r.With(middleware.AllowContentType("application/json")).Post("/", h.create)
	r.Post("/import", h.importCSV)

	r.Group(func(r chi.Router) {
		r.Use(session.Require(h.sessions))
		r.Get("/", h.list)
		r.Get("/summary", h.summary)
		r.Get("/{id}", h.get)
	})
}

type createTransactionRequest struct {
	Title  *string `json:"title" validate:"required,notblank"`
	Amount *int64  `json:"amount" validate:"required,gte=0"`
	Type   *string `json:"type" validate:"required,oneof=credit debit"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeValidationError(w, 0, decodeIssues(err))
		return
	}

	if issues := validation.Struct(req); len(issues) > 0 {
		writeValidationError(w, 0, issues)
		return
	}

	sessionID, ok := h.resolveOrIssue(w, r)
	if !ok {
		return
	}

	_, err := h.svc.Create(r.Context(), transaction.CreateParams{
		SessionID: sessionID,
		Title:     *req.Title,
		Amount:    *req.Amount,
		Type:      transaction.Type(*req.Type),
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	sessionID, _ := session.FromContext(r.Context())

	txs, err := h.svc.List(r.Context(), sessionID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	render.JSON(w, http.StatusOK, listResponse{Transactions: toResponseList(txs)})
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	sessionID, _ := session.FromContext(r.Context())

	// A malformed id cannot match any row, so it gets the same answer as a miss.
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, transaction.ErrNotFound)
		return
	}

	tx, err := h.svc.Get(r.Context(), sessionID, id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	render.JSON(w, http.StatusOK, getResponse{Transaction: toResponse(tx)})
}

func (h *Handler) summary(w http.ResponseWriter, r *http.Request) {
	sessionID, _ := session.FromContext(r.Context())

	sum, err := h.svc.Summarize(r.Context(), sessionID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	render.JSON(w, http.StatusOK, toSummaryResponse(sum))
}

func (h *Handler) importCSV(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxImportSize); err != nil {
		render.Error(w, http.StatusBadRequest, "failed to parse form: "+err.Error())
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		render.Error(w, http.StatusBadRequest, "file field is required")
		return
	}
	defer file.Close()

	params, err := h.importSvc.Import(importer.Format(r.FormValue("format")), file)
	if err != nil {
		var vErr *transaction.ValidationError
		if errors.As(err, &vErr) {
			writeValidationError(w, vErr.Row, vErr.Issues)
			return
		}

		render.Error(w, http.StatusBadRequest, err.Error())

		return
	}

	sessionID, ok := h.resolveOrIssue(w, r)
	if !ok {
		return
	}

	txs, err := h.svc.ImportBatch(r.Context(), sessionID, params)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	render.JSON(w, http.StatusCreated, importResponse{
		Imported:     len(txs),
		Transactions: toResponseList(txs),
	})
}

func (h *Handler) resolveOrIssue(w http.ResponseWriter, r *http.Request) (string, bool) {
	sessionID, issued, err := session.ResolveOrIssue(h.sessions, w, r)
	if err != nil {
		slog.Error("failed to issue session", "error", err)
		render.Error(w, http.StatusInternalServerError, "Internal server error")

		return "", false
	}

	if issued {
		slog.Info("issued session", "request_id", middleware.GetReqID(r.Context()))
	}

	return sessionID, true
}

func writeServiceError(w http.ResponseWriter, err error) {
	var vErr *transaction.ValidationError

	switch {
	case errors.As(err, &vErr):
		writeValidationError(w, vErr.Row, vErr.Issues)
	case errors.Is(err, transaction.ErrNotFound):
		render.Error(w, http.StatusNotFound, "Transaction not found")
	default:
		slog.Error("transaction request failed", "error", err)
		render.Error(w, http.StatusInternalServerError, "Internal server error")
	}
}

func writeValidationError(w http.ResponseWriter, row int, issues []validation.Issue) {
	render.JSON(w, http.StatusBadRequest, validationErrorResponse{
		Error:  "Validation error",
		Row:    row,
		Issues: issues,
	})
}

func decodeIssues(err error) []validation.Issue {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return []validation.Issue{{Field: typeErr.Field, Message: "must be " + describe(typeErr.Type)}}
	}

	if errors.Is(err, io.EOF) {
		return []validation.Issue{{Message: "request body is required"}}
	}

	return []validation.Issue{{Message: "malformed JSON body"}}
}

func describe(t reflect.Type) string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return "a whole number"
	case reflect.String:
		return "a string"
	}

	return "of type " + t.String()
}
