package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	"github.com/m04kA/SMC-BarberBooking/pkg/types"
)

func TestDecodeJSON(t *testing.T) {
	var dst struct {
		Phone string `json:"phone"`
	}

	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"phone":"+79990000001"}`))
	require.NoError(t, DecodeJSON(r, &dst))
	assert.Equal(t, "+79990000001", dst.Phone)

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"phone":"1","extra":true}`))
	assert.Error(t, DecodeJSON(r, &dst))

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{`))
	assert.Error(t, DecodeJSON(r, &dst))
}

func TestRespondScheduleConflict(t *testing.T) {
	conflict := &domain.ConflictError{
		Date:  time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		Times: []types.TimeString{"14:00", "15:30"},
	}

	w := httptest.NewRecorder()
	RespondScheduleConflict(w, "конфликт", fmt.Errorf("wrapped: %w", conflict))

	assert.Equal(t, http.StatusConflict, w.Code)
	var body ConflictResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, "конфликт", body.Error)
	assert.Equal(t, "2025-03-10", body.Date)
	assert.Equal(t, []string{"14:00", "15:30"}, body.Times)

	w = httptest.NewRecorder()
	RespondScheduleConflict(w, "конфликт", domain.ErrConflict)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.JSONEq(t, `{"error":"конфликт"}`, w.Body.String())
}

func TestRespondJSON_NoBody(t *testing.T) {
	w := httptest.NewRecorder()
	RespondJSON(w, http.StatusNoContent, nil)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}
