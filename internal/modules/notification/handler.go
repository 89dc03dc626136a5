package notification

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Handler exposes notification HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/notifications", func(r chi.Router) {
		r.Get("/", h.listNotifications)
		r.Post("/resolve", h.resolveNotification)
	})
}

func (h *Handler) listNotifications(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.List(r.Context())
	if err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": "failed to list notifications"})
		return
	}
	respond(w, http.StatusOK, list)
}

func (h *Handler) resolveNotification(w http.ResponseWriter, r *http.Request) {
	var body struct {
		NotificationID int64 `json:"notificationId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	if body.NotificationID == 0 {
		respond(w, http.StatusBadRequest, map[string]string{"error": "notificationId is required"})
		return
	}
	if err := h.service.Resolve(r.Context(), body.NotificationID); err != nil {
		if errors.Is(err, ErrNotificationNotFound) {
			respond(w, http.StatusNotFound, map[string]string{"error": "notification not found"})
			return
		}
		respond(w, http.StatusInternalServerError, map[string]string{"error": "failed to resolve notification"})
		return
	}
	respond(w, http.StatusOK, map[string]interface{}{
		"message":        "Notification marked as resolved",
		"notificationId": body.NotificationID,
	})
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
