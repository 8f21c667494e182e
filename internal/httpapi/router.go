// Package httpapi exposes one till register over HTTP.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/sheikh-saqib/till-float-management/internal/models"
	"github.com/sheikh-saqib/till-float-management/internal/parser"
	"github.com/sheikh-saqib/till-float-management/internal/report"
	"github.com/sheikh-saqib/till-float-management/internal/till"
)

// Register is what the handlers need from a till session.
type Register interface {
	PostTransaction(ctx context.Context, tx models.Transaction) (models.ProcessingResult, error)
	Snapshot() till.State
	SessionID() string
	JournalEntries(ctx context.Context) ([]models.JournalEntry, error)
}

// Handler is the thin HTTP layer; all till logic stays in the register.
type Handler struct {
	register Register
	gatherer prometheus.Gatherer
	log      zerolog.Logger
}

func NewHandler(register Register, gatherer prometheus.Gatherer, log zerolog.Logger) *Handler {
	return &Handler{
		register: register,
		gatherer: gatherer,
		log:      log.With().Str("component", "httpapi").Logger(),
	}
}

// NewRouter wires all endpoints.
func NewRouter(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/health", h.handleHealth)
	r.Post("/transactions", h.handlePostTransaction)
	r.Get("/till", h.handleTill)
	r.Get("/journal", h.handleJournal)
	if h.gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(h.gatherer, promhttp.HandlerOpts{}))
	}
	return r
}

type transactionRequest struct {
	Line  string        `json:"line"`
	Items []models.Item `json:"items"`
	Paid  []int         `json:"paid"`
}

type transactionResponse struct {
	models.ProcessingResult
	Breakdown string `json:"breakdown"`
}

type tillResponse struct {
	SessionID     string         `json:"session_id"`
	Balance       int            `json:"balance"`
	DrawerValue   int            `json:"drawer_value"`
	Denominations map[string]int `json:"denominations"`
	ItemsSold     map[string]int `json:"items_sold"`
}

type journalEntryResponse struct {
	ID           string `json:"id"`
	Sequence     int    `json:"sequence"`
	Summary      string `json:"summary"`
	BalanceAfter int    `json:"balance_after"`
	CreatedAt    string `json:"created_at"`
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) handlePostTransaction(w http.ResponseWriter, r *http.Request) {
	var req transactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	tx, err := req.transaction()
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.register.PostTransaction(r.Context(), tx)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to post transaction")
		writeError(w, http.StatusInternalServerError, "failed to process transaction")
		return
	}

	writeJSON(w, http.StatusCreated, transactionResponse{
		ProcessingResult: result,
		Breakdown:        report.Breakdown(result),
	})
}

func (req transactionRequest) transaction() (models.Transaction, error) {
	if req.Line != "" {
		return parser.ParseLine(req.Line)
	}
	if len(req.Items) == 0 || len(req.Paid) == 0 {
		return models.Transaction{}, errors.New("either line or items and paid are required")
	}
	return models.Transaction{Items: req.Items, Paid: req.Paid}, nil
}

func (h *Handler) handleTill(w http.ResponseWriter, r *http.Request) {
	state := h.register.Snapshot()

	denominations := make(map[string]int)
	for d, n := range state.Inventory.Counts() {
		denominations[d.String()] = n
	}

	writeJSON(w, http.StatusOK, tillResponse{
		SessionID:     h.register.SessionID(),
		Balance:       state.Balance,
		DrawerValue:   state.DrawerValue(),
		Denominations: denominations,
		ItemsSold:     state.Stock.Snapshot(),
	})
}

func (h *Handler) handleJournal(w http.ResponseWriter, r *http.Request) {
	entries, err := h.register.JournalEntries(r.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to read journal")
		writeError(w, http.StatusInternalServerError, "failed to read journal")
		return
	}

	resp := make([]journalEntryResponse, 0, len(entries))
	for _, e := range entries {
		resp = append(resp, journalEntryResponse{
			ID:           e.ID,
			Sequence:     e.Sequence,
			Summary:      report.Line(e.Result()),
			BalanceAfter: e.BalanceAfter,
			CreatedAt:    e.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
