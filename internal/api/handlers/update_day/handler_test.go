package update_day

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberBooking/internal/api/handlers"
	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	"github.com/m04kA/SMC-BarberBooking/internal/service/overrides/models"
	"github.com/m04kA/SMC-BarberBooking/pkg/logger"
	"github.com/m04kA/SMC-BarberBooking/pkg/types"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) SetDayBlocked(ctx context.Context, date time.Time, blocked bool) error {
	return m.Called(ctx, date, blocked).Error(0)
}

func (m *mockService) ToggleBlockedTime(ctx context.Context, date time.Time, slot types.TimeString) (*models.ToggleBlockedTimeResponse, error) {
	args := m.Called(ctx, date, slot)
	resp, _ := args.Get(0).(*models.ToggleBlockedTimeResponse)
	return resp, args.Error(1)
}

func (m *mockService) GetDay(ctx context.Context, date time.Time) (*models.DayOverrideResponse, error) {
	args := m.Called(ctx, date)
	resp, _ := args.Get(0).(*models.DayOverrideResponse)
	return resp, args.Error(1)
}

var date = time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

func router(h *Handler) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/admin/days/{date}/blocked", h.HandleBlocked).Methods(http.MethodPut)
	r.HandleFunc("/api/v1/admin/days/{date}/blocked-times", h.HandleToggleTime).Methods(http.MethodPost)
	return r
}

func TestHandler_HandleBlocked(t *testing.T) {
	svc := &mockService{}
	svc.On("SetDayBlocked", mock.Anything, date, true).Return(nil)
	svc.On("GetDay", mock.Anything, date).Return(&models.DayOverrideResponse{Date: "2025-03-10", Blocked: true}, nil)

	w := httptest.NewRecorder()
	router(NewHandler(svc, logger.NewNop())).ServeHTTP(w,
		httptest.NewRequest(http.MethodPut, "/api/v1/admin/days/2025-03-10/blocked", strings.NewReader(`{"blocked":true}`)))

	require.Equal(t, http.StatusOK, w.Code)
	var body models.DayOverrideResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.True(t, body.Blocked)
}

func TestHandler_HandleBlockedConflict(t *testing.T) {
	svc := &mockService{}
	conflict := &domain.ConflictError{Date: date, Times: []types.TimeString{types.MustTimeString("12:00")}}
	svc.On("SetDayBlocked", mock.Anything, date, true).Return(conflict)

	w := httptest.NewRecorder()
	router(NewHandler(svc, logger.NewNop())).ServeHTTP(w,
		httptest.NewRequest(http.MethodPut, "/api/v1/admin/days/2025-03-10/blocked", strings.NewReader(`{"blocked":true}`)))

	require.Equal(t, http.StatusConflict, w.Code)
	var body handlers.ConflictResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, []string{"12:00"}, body.Times)
	svc.AssertNotCalled(t, "GetDay", mock.Anything, mock.Anything)
}

func TestHandler_HandleBlockedRequiresFlag(t *testing.T) {
	svc := &mockService{}

	w := httptest.NewRecorder()
	router(NewHandler(svc, logger.NewNop())).ServeHTTP(w,
		httptest.NewRequest(http.MethodPut, "/api/v1/admin/days/2025-03-10/blocked", strings.NewReader(`{}`)))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "SetDayBlocked", mock.Anything, mock.Anything, mock.Anything)
}

func TestHandler_HandleToggleTime(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setup      func(svc *mockService)
		wantStatus int
	}{
		{
			name: "toggled",
			body: `{"time":"14:30"}`,
			setup: func(svc *mockService) {
				svc.On("ToggleBlockedTime", mock.Anything, date, types.MustTimeString("14:30")).
					Return(&models.ToggleBlockedTimeResponse{Date: "2025-03-10", Time: "14:30", Blocked: true}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "invalid time",
			body:       `{"time":"25:00"}`,
			setup:      func(svc *mockService) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "booked slot",
			body: `{"time":"14:30"}`,
			setup: func(svc *mockService) {
				svc.On("ToggleBlockedTime", mock.Anything, date, types.MustTimeString("14:30")).
					Return(nil, &domain.ConflictError{Date: date, Times: []types.TimeString{types.MustTimeString("14:30")}})
			},
			wantStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockService{}
			tt.setup(svc)

			w := httptest.NewRecorder()
			router(NewHandler(svc, logger.NewNop())).ServeHTTP(w,
				httptest.NewRequest(http.MethodPost, "/api/v1/admin/days/2025-03-10/blocked-times", strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantStatus, w.Code)
			svc.AssertExpectations(t)
		})
	}
}
