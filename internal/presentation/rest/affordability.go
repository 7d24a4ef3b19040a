package rest

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/mleon1997/habitalibre-backend-sub000/internal/application/dto"
	"github.com/mleon1997/habitalibre-backend-sub000/internal/application/usecase"
)

const maxBodyBytes = 1 << 20 // raw applicant records are small

// AffordabilityHandler exposes the affordability use cases over plain HTTP
// for callers that do not speak gRPC (the web form and the conversational
// collector post here).
type AffordabilityHandler struct {
	evaluate *usecase.EvaluateAffordabilityUseCase
	affinity *usecase.BankAffinityUseCase
	logger   *slog.Logger
}

// NewAffordabilityHandler creates the HTTP handler.
func NewAffordabilityHandler(
	evaluate *usecase.EvaluateAffordabilityUseCase,
	affinity *usecase.BankAffinityUseCase,
	logger *slog.Logger,
) *AffordabilityHandler {
	return &AffordabilityHandler{
		evaluate: evaluate,
		affinity: affinity,
		logger:   logger,
	}
}

// RegisterRoutes attaches the evaluation routes to the given mux.
func (h *AffordabilityHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /v1/evaluations", h.handleEvaluate)
	mux.HandleFunc("POST /v1/bank-affinity", h.handleBankAffinity)
}

func (h *AffordabilityHandler) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	payload, ok := h.decodePayload(w, r)
	if !ok {
		return
	}

	result, err := h.evaluate.Execute(r.Context(), dto.EvaluateRequest{Payload: payload})
	if err != nil {
		h.logger.Error("evaluate request failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "evaluation failed"})
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *AffordabilityHandler) handleBankAffinity(w http.ResponseWriter, r *http.Request) {
	payload, ok := h.decodePayload(w, r)
	if !ok {
		return
	}

	result, err := h.affinity.Execute(r.Context(), dto.EvaluateRequest{Payload: payload})
	if err != nil {
		h.logger.Error("bank affinity request failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "evaluation failed"})
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// decodePayload reads the request body as one JSON object. The engine's
// normalizer owns field aliasing and defaulting, so no schema is enforced
// here beyond "a JSON object".
func (h *AffordabilityHandler) decodePayload(w http.ResponseWriter, r *http.Request) (map[string]any, bool) {
	var payload map[string]any
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(body).Decode(&payload); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "body must be a JSON object"})
		return nil, false
	}
	return payload, true
}
