// Package rest is the HTTP harness over the teller machine. It captures
// intents from JSON requests, forwards them to the core and renders the
// outcome notifications; the machine itself stays I/O-free.
package rest

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"

	"github.com/DanielPopoola/atm-teller/internal/domain"
	"github.com/DanielPopoola/atm-teller/internal/journal"
	"github.com/DanielPopoola/atm-teller/internal/machine"
	"github.com/DanielPopoola/atm-teller/internal/registry"
)

type Handlers struct {
	// The core is single-threaded by contract; the listener is not. All
	// intent handling is serialized here, at the boundary that introduces
	// the concurrency.
	mu sync.Mutex

	machine *machine.Machine
	cards   *registry.Registry
	journal *journal.Journal
	logger  *slog.Logger
}

func NewHandlers(m *machine.Machine, cards *registry.Registry, j *journal.Journal, logger *slog.Logger) *Handlers {
	return &Handlers{
		machine: m,
		cards:   cards,
		journal: j,
		logger:  logger,
	}
}

// Routes registers the intent and query surface on a fresh mux.
func (h *Handlers) Routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /session/card", h.insertCard)
	mux.HandleFunc("DELETE /session/card", h.removeCard)
	mux.HandleFunc("POST /session/operation", h.selectOperation)
	mux.HandleFunc("POST /session/transaction", h.confirmTransaction)
	mux.HandleFunc("GET /session", h.session)

	mux.HandleFunc("GET /inventory", h.inventory)
	mux.HandleFunc("POST /inventory/restock", h.restock)
	mux.HandleFunc("GET /journal", h.journalEntries)

	return mux
}

type insertCardRequest struct {
	CardNumber string `json:"card_number"`
}

func (h *Handlers) insertCard(w http.ResponseWriter, r *http.Request) {
	var req insertCardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, domain.NewInvalidOperationError("malformed request body"))
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	card, err := h.cards.Card(req.CardNumber)
	if err != nil {
		WriteError(w, err)
		return
	}

	result, err := h.machine.InsertCard(card)
	if err != nil {
		WriteError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *Handlers) removeCard(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()

	result, err := h.machine.RemoveCard()
	if err != nil {
		WriteError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

type selectOperationRequest struct {
	Operation string `json:"operation"`
	PIN       string `json:"pin"`
}

func (h *Handlers) selectOperation(w http.ResponseWriter, r *http.Request) {
	var req selectOperationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, domain.NewInvalidOperationError("malformed request body"))
		return
	}

	op := domain.Operation("")
	if req.Operation != "" {
		parsed, err := domain.ParseOperation(req.Operation)
		if err != nil {
			WriteError(w, err)
			return
		}
		op = parsed
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	result, err := h.machine.SelectOperation(op, req.PIN)
	if err != nil {
		WriteError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

type confirmTransactionRequest struct {
	Amount int64 `json:"amount"`
}

func (h *Handlers) confirmTransaction(w http.ResponseWriter, r *http.Request) {
	var req confirmTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, domain.NewInvalidOperationError("malformed request body"))
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	result, err := h.machine.ConfirmTransaction(req.Amount)
	if err != nil {
		WriteError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

type sessionResponse struct {
	State      machine.State `json:"state"`
	Balance    *int64        `json:"balance,omitempty"`
	HasBalance bool          `json:"has_balance"`
}

func (h *Handlers) session(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()

	resp := sessionResponse{State: h.machine.State()}
	if balance, ok := h.machine.Balance(); ok {
		resp.Balance = &balance
		resp.HasBalance = true
	}
	writeJSON(w, http.StatusOK, resp)
}

type inventoryResponse struct {
	Counts domain.Bundle `json:"counts"`
	Total  int64         `json:"total"`
}

func (h *Handlers) inventory(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()

	inv := h.machine.Inventory()
	writeJSON(w, http.StatusOK, inventoryResponse{
		Counts: inv.Counts(),
		Total:  inv.TotalValue(),
	})
}

type restockRequest struct {
	Counts domain.Bundle `json:"counts"`
}

func (h *Handlers) restock(w http.ResponseWriter, r *http.Request) {
	var req restockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, domain.NewInvalidOperationError("malformed request body"))
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	inv := h.machine.Inventory()
	if err := inv.Restock(req.Counts); err != nil {
		WriteError(w, err)
		return
	}

	h.logger.Info("inventory restocked", "added", req.Counts.Value(), "total", inv.TotalValue())
	writeJSON(w, http.StatusOK, inventoryResponse{
		Counts: inv.Counts(),
		Total:  inv.TotalValue(),
	})
}

func (h *Handlers) journalEntries(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()

	writeJSON(w, http.StatusOK, h.journal.Entries())
}
