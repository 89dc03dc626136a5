package inventory

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// Handler exposes part and stock HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/parts", func(r chi.Router) {
		r.Get("/", h.listParts)
		r.Post("/", h.createPart)
		r.Get("/{id}", h.getPart)
	})
	r.Post("/inventory/update-stock", h.updateStock)
}

func (h *Handler) listParts(w http.ResponseWriter, r *http.Request) {
	parts, err := h.service.ListParts(r.Context())
	if err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": "failed to list parts"})
		return
	}
	respond(w, http.StatusOK, parts)
}

func (h *Handler) createPart(w http.ResponseWriter, r *http.Request) {
	var req CreatePartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	p, err := h.service.CreatePart(r.Context(), req)
	if err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusCreated, p)
}

func (h *Handler) getPart(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": "invalid part id"})
		return
	}
	p, err := h.service.GetPart(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrPartNotFound) {
			respond(w, http.StatusNotFound, map[string]string{"error": "part not found"})
			return
		}
		respond(w, http.StatusInternalServerError, map[string]string{"error": "failed to load part"})
		return
	}
	respond(w, http.StatusOK, p)
}

func (h *Handler) updateStock(w http.ResponseWriter, r *http.Request) {
	var req AdjustStockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	res, err := h.service.AdjustStock(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond(w, http.StatusBadRequest, map[string]string{"error": "partId and a non-zero change are required"})
		case errors.Is(err, ErrInsufficientStock):
			respond(w, http.StatusBadRequest, map[string]string{"error": "insufficient stock for this adjustment"})
		case errors.Is(err, ErrPartNotFound):
			respond(w, http.StatusNotFound, map[string]string{"error": "part not found"})
		default:
			respond(w, http.StatusInternalServerError, map[string]string{"error": "failed to update stock"})
		}
		return
	}
	respond(w, http.StatusOK, res)
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
