package order

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/Yohannesabesheger/eep-app/internal/modules/auth"
	"github.com/go-chi/chi/v5"
)

// Handler exposes order HTTP endpoints. Mutating routes require an
// authenticated user; the ordering identity always comes from the token.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/orders", func(r chi.Router) {
		r.Use(auth.Middleware)
		r.Get("/", h.listOrders)
		r.Get("/{id}", h.getOrder)
		r.Post("/", h.createOrder)
		r.Post("/cancel", h.cancelOrder)
		r.Post("/complete", h.completeOrder)
	})
}

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	var req CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		respond(w, http.StatusUnauthorized, map[string]string{"error": "not authenticated"})
		return
	}
	req.OrderedBy = userID

	res, err := h.service.CreateOrder(r.Context(), req)
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusCreated, res)
}

func (h *Handler) cancelOrder(w http.ResponseWriter, r *http.Request) {
	orderID, ok := decodeOrderID(w, r)
	if !ok {
		return
	}
	res, err := h.service.CancelOrder(r.Context(), orderID)
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, res)
}

func (h *Handler) completeOrder(w http.ResponseWriter, r *http.Request) {
	orderID, ok := decodeOrderID(w, r)
	if !ok {
		return
	}
	res, err := h.service.CompleteOrder(r.Context(), orderID)
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, res)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": "invalid order id"})
		return
	}
	o, err := h.service.GetOrder(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, o)
}

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.service.ListOrders(r.Context())
	if err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": "failed to list orders"})
		return
	}
	respond(w, http.StatusOK, orders)
}

// ── helpers ──────────────────────────────────────────────────────────────────

func decodeOrderID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	var body struct {
		OrderID int64 `json:"orderId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return 0, false
	}
	if body.OrderID == 0 {
		respond(w, http.StatusBadRequest, map[string]string{"error": "orderId is required"})
		return 0, false
	}
	return body.OrderID, true
}

func respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidQuantity), errors.Is(err, ErrInvalidPriority):
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
	case errors.Is(err, ErrInsufficientStock):
		respond(w, http.StatusBadRequest, map[string]string{"error": "not enough stock available"})
	case errors.Is(err, ErrUserInactive):
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
	case errors.Is(err, ErrPartNotFound), errors.Is(err, ErrUserNotFound), errors.Is(err, ErrOrderNotFound):
		respond(w, http.StatusNotFound, map[string]string{"error": err.Error()})
	case errors.Is(err, ErrInvalidTransition):
		respond(w, http.StatusConflict, map[string]string{"error": err.Error()})
	default:
		respond(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
	}
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
