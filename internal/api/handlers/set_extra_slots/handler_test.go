package set_extra_slots

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

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	setExtraSlots "github.com/m04kA/SMC-BarberBooking/internal/usecase/set_extra_slots"
	"github.com/m04kA/SMC-BarberBooking/pkg/logger"
	"github.com/m04kA/SMC-BarberBooking/pkg/types"
)

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Execute(ctx context.Context, req *setExtraSlots.Request) (*setExtraSlots.Response, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*setExtraSlots.Response)
	return resp, args.Error(1)
}

var date = time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

func serve(uc *mockUseCase, body string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/admin/days/{date}/extra-slots", NewHandler(uc, logger.NewNop()).Handle)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/api/v1/admin/days/2025-03-10/extra-slots", strings.NewReader(body)))
	return w
}

func TestHandler_SameWeekdayScope(t *testing.T) {
	until := time.Date(2025, 3, 24, 0, 0, 0, 0, time.UTC)
	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, &setExtraSlots.Request{
		Date:  date,
		Value: 2,
		Scope: domain.SameWeekdayUntil(until),
	}).Return(&setExtraSlots.Response{Value: 2, Dates: []time.Time{date, date.AddDate(0, 0, 7), until}}, nil)

	w := serve(uc, `{"value":2,"scope":"same_weekday_until","until":"2025-03-24"}`)

	require.Equal(t, http.StatusOK, w.Code)
	var body SetExtraSlotsResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, []string{"2025-03-10", "2025-03-17", "2025-03-24"}, body.Dates)
	uc.AssertExpectations(t)
}

func TestHandler_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		ucErr      error
		wantStatus int
	}{
		{name: "unknown scope", body: `{"value":1,"scope":"weekly"}`, wantStatus: http.StatusBadRequest},
		{name: "until missing", body: `{"value":1,"scope":"every_day_until"}`, wantStatus: http.StatusBadRequest},
		{name: "out of range", body: `{"value":11}`, ucErr: setExtraSlots.ErrInvalidInput, wantStatus: http.StatusBadRequest},
		{
			name:       "decrease conflicts",
			body:       `{"value":-1}`,
			ucErr:      &domain.ConflictError{Date: date, Times: []types.TimeString{types.MustTimeString("19:30")}},
			wantStatus: http.StatusConflict,
		},
		{name: "internal", body: `{"value":1}`, ucErr: setExtraSlots.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{}
			if tt.ucErr != nil {
				uc.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.ucErr)
			}

			w := serve(uc, tt.body)

			assert.Equal(t, tt.wantStatus, w.Code)
			uc.AssertExpectations(t)
		})
	}
}
