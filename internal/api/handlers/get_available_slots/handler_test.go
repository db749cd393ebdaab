package get_available_slots

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	getAvailableSlots "github.com/m04kA/SMC-BarberBooking/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-BarberBooking/pkg/logger"
	"github.com/m04kA/SMC-BarberBooking/pkg/types"
)

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Execute(ctx context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*getAvailableSlots.Response)
	return resp, args.Error(1)
}

func TestHandler_Success(t *testing.T) {
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, mock.MatchedBy(func(req *getAvailableSlots.Request) bool {
		return req.Date.Equal(date) && req.Phone != nil && *req.Phone == "+79990000001"
	})).Return(&getAvailableSlots.Response{
		Date:              date,
		Slots:             []types.TimeString{"12:00", "12:30"},
		HasActiveBookings: true,
	}, nil)

	h := NewHandler(uc, logger.NewNop())
	w := httptest.NewRecorder()
	h.Handle(w, httptest.NewRequest(http.MethodGet, "/api/v1/available-slots?date=2025-03-10&phone=%2B79990000001", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var body AvailableSlotsResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, "2025-03-10", body.Date)
	assert.Equal(t, []string{"12:00", "12:30"}, body.Slots)
	assert.True(t, body.HasActiveBookings)
	uc.AssertExpectations(t)
}

func TestHandler_Errors(t *testing.T) {
	tests := []struct {
		name       string
		url        string
		ucErr      error
		wantStatus int
	}{
		{name: "missing date", url: "/api/v1/available-slots", wantStatus: http.StatusBadRequest},
		{name: "bad date", url: "/api/v1/available-slots?date=10.03.2025", wantStatus: http.StatusBadRequest},
		{name: "bad phone", url: "/api/v1/available-slots?date=2025-03-10&phone=x", ucErr: getAvailableSlots.ErrInvalidPhone, wantStatus: http.StatusBadRequest},
		{name: "internal", url: "/api/v1/available-slots?date=2025-03-10", ucErr: errors.New("db down"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{}
			if tt.ucErr != nil {
				uc.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.ucErr)
			}

			w := httptest.NewRecorder()
			NewHandler(uc, logger.NewNop()).Handle(w, httptest.NewRequest(http.MethodGet, tt.url, nil))

			assert.Equal(t, tt.wantStatus, w.Code)
			uc.AssertExpectations(t)
		})
	}
}
