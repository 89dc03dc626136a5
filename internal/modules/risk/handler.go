package risk

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// Handler exposes risk HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/risks", func(r chi.Router) {
		r.Get("/", h.listRisks)
		r.Post("/", h.createRisk)
		r.Post("/update-status", h.updateStatus)
		r.Get("/{id}", h.getRisk)
		r.Delete("/{id}", h.deleteRisk)
	})
}

func (h *Handler) listRisks(w http.ResponseWriter, r *http.Request) {
	risks, err := h.service.ListRisks(r.Context())
	if err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": "failed to list risks"})
		return
	}
	respond(w, http.StatusOK, risks)
}

func (h *Handler) createRisk(w http.ResponseWriter, r *http.Request) {
	var req CreateRiskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	res, err := h.service.CreateRisk(r.Context(), req)
	if err != nil {
		if errors.Is(err, ErrInvalidInput) || errors.Is(err, ErrInvalidSeverity) || errors.Is(err, ErrInvalidStatus) {
			respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
		respond(w, http.StatusInternalServerError, map[string]string{"error": "failed to create risk"})
		return
	}
	respond(w, http.StatusCreated, res)
}

func (h *Handler) updateStatus(w http.ResponseWriter, r *http.Request) {
	var req UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	rk, err := h.service.UpdateStatus(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrRiskNotFound):
			respond(w, http.StatusNotFound, map[string]string{"error": "risk not found"})
		case errors.Is(err, ErrInvalidStatus):
			respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		default:
			respond(w, http.StatusInternalServerError, map[string]string{"error": "failed to update risk status"})
		}
		return
	}
	respond(w, http.StatusOK, map[string]interface{}{
		"risk":    rk,
		"message": "Risk status updated successfully",
	})
}

func (h *Handler) getRisk(w http.ResponseWriter, r *http.Request) {
	id, ok := riskID(w, r)
	if !ok {
		return
	}
	rk, err := h.service.GetRisk(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrRiskNotFound) {
			respond(w, http.StatusNotFound, map[string]string{"error": "risk not found"})
			return
		}
		respond(w, http.StatusInternalServerError, map[string]string{"error": "failed to load risk"})
		return
	}
	respond(w, http.StatusOK, rk)
}

func (h *Handler) deleteRisk(w http.ResponseWriter, r *http.Request) {
	id, ok := riskID(w, r)
	if !ok {
		return
	}
	if err := h.service.DeleteRisk(r.Context(), id); err != nil {
		if errors.Is(err, ErrRiskNotFound) {
			respond(w, http.StatusNotFound, map[string]string{"error": "risk not found"})
			return
		}
		respond(w, http.StatusInternalServerError, map[string]string{"error": "failed to delete risk"})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func riskID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": "invalid risk id"})
		return 0, false
	}
	return id, true
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
