package get_date_bookings

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-BarberBooking/internal/service/bookings/models"
	"github.com/m04kA/SMC-BarberBooking/pkg/logger"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) ListActiveByDate(ctx context.Context, date time.Time) (*models.BookingListResponse, error) {
	args := m.Called(ctx, date)
	resp, _ := args.Get(0).(*models.BookingListResponse)
	return resp, args.Error(1)
}

func (m *mockService) ListByDate(ctx context.Context, date time.Time) (*models.BookingListResponse, error) {
	args := m.Called(ctx, date)
	resp, _ := args.Get(0).(*models.BookingListResponse)
	return resp, args.Error(1)
}

func serve(h *Handler, target string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/admin/days/{date}/bookings", h.Handle)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func TestHandler_Handle(t *testing.T) {
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	empty := &models.BookingListResponse{Bookings: []*models.BookingResponse{}}

	t.Run("active only by default", func(t *testing.T) {
		svc := &mockService{}
		svc.On("ListActiveByDate", mock.Anything, date).Return(empty, nil)

		w := serve(NewHandler(svc, logger.NewNop()), "/api/v1/admin/days/2025-03-10/bookings")

		assert.Equal(t, http.StatusOK, w.Code)
		svc.AssertExpectations(t)
		svc.AssertNotCalled(t, "ListByDate", mock.Anything, mock.Anything)
	})

	t.Run("include cancelled", func(t *testing.T) {
		svc := &mockService{}
		svc.On("ListByDate", mock.Anything, date).Return(empty, nil)

		w := serve(NewHandler(svc, logger.NewNop()), "/api/v1/admin/days/2025-03-10/bookings?includeCancelled=true")

		assert.Equal(t, http.StatusOK, w.Code)
		svc.AssertExpectations(t)
	})

	t.Run("invalid date", func(t *testing.T) {
		svc := &mockService{}

		w := serve(NewHandler(svc, logger.NewNop()), "/api/v1/admin/days/10.03.2025/bookings")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		svc.AssertNotCalled(t, "ListActiveByDate", mock.Anything, mock.Anything)
	})

	t.Run("invalid flag", func(t *testing.T) {
		w := serve(NewHandler(&mockService{}, logger.NewNop()), "/api/v1/admin/days/2025-03-10/bookings?includeCancelled=maybe")

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
