package cancel_booking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quickcourt/QC-BookingService/internal/api/middleware"
	"github.com/quickcourt/QC-BookingService/internal/domain"
	"github.com/quickcourt/QC-BookingService/internal/service/bookings"
)

type fakeService struct {
	err      error
	calledID int64
	callerID int64
}

func (f *fakeService) Cancel(_ context.Context, id int64, userID int64) error {
	f.calledID = id
	f.callerID = userID
	return f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func doRequest(t *testing.T, svc *fakeService, path string, authenticated bool) *httptest.ResponseRecorder {
	t.Helper()

	handler := NewHandler(svc, nopLogger{})
	router := mux.NewRouter()
	router.HandleFunc("/bookings/{bookingId}", handler.Handle).Methods(http.MethodDelete)

	req := httptest.NewRequest(http.MethodDelete, path, nil)
	if authenticated {
		req = req.WithContext(middleware.WithUser(req.Context(), 42, domain.RoleCustomer))
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandle_Success(t *testing.T) {
	svc := &fakeService{}

	rec := doRequest(t, svc, "/bookings/7", true)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(7), svc.calledID)
	assert.Equal(t, int64(42), svc.callerID)
}

func TestHandle_Unauthenticated(t *testing.T) {
	rec := doRequest(t, &fakeService{}, "/bookings/7", false)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandle_InvalidID(t *testing.T) {
	rec := doRequest(t, &fakeService{}, "/bookings/abc", true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"not found", bookings.ErrBookingNotFound, http.StatusNotFound},
		{"not owner", bookings.ErrAccessDenied, http.StatusForbidden},
		{"already finished", bookings.ErrCannotCancel, http.StatusBadRequest},
		{"internal", bookings.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, &fakeService{err: tt.err}, "/bookings/7", true)
			assert.Equal(t, tt.wantStatus, rec.Code)

			var body map[string]interface{}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, false, body["success"])
			assert.NotEmpty(t, body["message"])
		})
	}
}
