package order

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRespondError_StatusMapping(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{ErrInvalidQuantity, http.StatusBadRequest},
		{ErrInvalidPriority, http.StatusBadRequest},
		{ErrInsufficientStock, http.StatusBadRequest},
		{ErrUserInactive, http.StatusBadRequest},
		{ErrPartNotFound, http.StatusNotFound},
		{ErrUserNotFound, http.StatusNotFound},
		{ErrOrderNotFound, http.StatusNotFound},
		{ErrInvalidTransition, http.StatusConflict},
		{assert.AnError, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		rec := httptest.NewRecorder()
		respondError(rec, tt.err)
		assert.Equal(t, tt.want, rec.Code, "error %v", tt.err)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	}
}

func TestRespondError_DoesNotLeakInternalDetail(t *testing.T) {
	rec := httptest.NewRecorder()
	respondError(rec, assert.AnError)
	assert.NotContains(t, rec.Body.String(), assert.AnError.Error())
	assert.Contains(t, rec.Body.String(), "internal server error")
}
