package create_booking

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberBooking/internal/api/handlers"
	createBooking "github.com/m04kA/SMC-BarberBooking/internal/usecase/create_booking"
	"github.com/m04kA/SMC-BarberBooking/pkg/logger"
)

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Execute(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*createBooking.Response)
	return resp, args.Error(1)
}

const validBody = `{"phone":"+79990000001","date":"2025-03-10","time":"14:00","service":"Стрижка","customerName":"Иван"}`

func TestHandler_Created(t *testing.T) {
	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, mock.MatchedBy(func(req *createBooking.Request) bool {
		return req.Phone == "+79990000001" && req.Time == "14:00" &&
			req.Date.Equal(time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC))
	})).Return(&createBooking.Response{
		ID:                     "id-1",
		Code:                   "abcd1234",
		BookingDate:            time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		StartTime:              "14:00",
		Phone:                  "+79990000001",
		Status:                 "active",
		HasOtherActiveBookings: true,
	}, nil)

	w := httptest.NewRecorder()
	NewHandler(uc, logger.NewNop()).Handle(w, httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(validBody)))

	require.Equal(t, http.StatusCreated, w.Code)
	var body BookingResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, "abcd1234", body.Code)
	assert.Equal(t, "2025-03-10", body.Date)
	assert.Equal(t, "14:00", body.Time)
	assert.True(t, body.HasOtherActiveBookings)
}

func TestHandler_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		ucErr      error
		wantStatus int
		wantMsg    string
	}{
		{name: "invalid phone", ucErr: createBooking.ErrInvalidPhone, wantStatus: http.StatusBadRequest, wantMsg: msgInvalidPhone},
		{name: "invalid input", ucErr: createBooking.ErrInvalidInput, wantStatus: http.StatusBadRequest, wantMsg: msgInvalidInput},
		{name: "throttled", ucErr: createBooking.ErrTooManyRequests, wantStatus: http.StatusTooManyRequests, wantMsg: msgTooManyRequests},
		{name: "blocked", ucErr: createBooking.ErrPhoneBlocked, wantStatus: http.StatusForbidden, wantMsg: msgPhoneBlocked},
		{name: "same day", ucErr: createBooking.ErrDuplicateSameDay, wantStatus: http.StatusConflict, wantMsg: msgDuplicateSameDay},
		{name: "slot", ucErr: createBooking.ErrSlotUnavailable, wantStatus: http.StatusConflict, wantMsg: msgSlotUnavailable},
		{name: "internal", ucErr: errors.New("boom"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{}
			uc.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.ucErr)

			w := httptest.NewRecorder()
			NewHandler(uc, logger.NewNop()).Handle(w, httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(validBody)))

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantMsg != "" {
				var body handlers.ErrorResponse
				require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
				assert.Equal(t, tt.wantMsg, body.Error)
			}
		})
	}
}

func TestHandler_BadRequestBeforeUseCase(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantMsg string
	}{
		{name: "broken json", body: `{`, wantMsg: msgInvalidRequestBody},
		{name: "bad date", body: `{"phone":"+79990000001","date":"10.03.2025","time":"14:00"}`, wantMsg: msgInvalidDate},
		{name: "bad time", body: `{"phone":"+79990000001","date":"2025-03-10","time":"2pm"}`, wantMsg: msgInvalidTime},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{}

			w := httptest.NewRecorder()
			NewHandler(uc, logger.NewNop()).Handle(w, httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(tt.body)))

			assert.Equal(t, http.StatusBadRequest, w.Code)
			var body handlers.ErrorResponse
			require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
			assert.Equal(t, tt.wantMsg, body.Error)
			uc.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
		})
	}
}
