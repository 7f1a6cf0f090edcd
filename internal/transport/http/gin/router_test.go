package httpgin

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kirinyoku/holidaze/internal/availability"
	"github.com/kirinyoku/holidaze/internal/service"
	"github.com/kirinyoku/holidaze/internal/service/bookings"
	"github.com/kirinyoku/holidaze/internal/service/manager"
	"github.com/kirinyoku/holidaze/internal/service/profiles"
	"github.com/kirinyoku/holidaze/internal/service/venues"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestRouter builds the router over services without a store. Only requests
// rejected before reaching postgres can be served.
func newTestRouter(middlewares ...gin.HandlerFunc) *gin.Engine {
	logger := discardLogger()
	svcs := service.NewServices(nil, nil, nil, nil, logger, service.Config{})
	return NewRouter(svcs, nil, logger, middlewares...)
}

func do(r http.Handler, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))

	return out
}

var asKari = map[string]string{headerProfile: "kari"}

func TestHealthz(t *testing.T) {
	w := do(newTestRouter(), http.MethodGet, "/healthz", "", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestRequestIDIsEchoed(t *testing.T) {
	w := do(newTestRouter(), http.MethodGet, "/healthz", "", map[string]string{"X-Request-ID": "req-1"})
	assert.Equal(t, "req-1", w.Header().Get("X-Request-ID"))
}

func TestVenueNotFound(t *testing.T) {
	r := newTestRouter()

	tests := []struct {
		method, path, body string
	}{
		{http.MethodGet, "/venues/not-a-uuid", ""},
		{http.MethodGet, "/venues/not-a-uuid?_bookings=true", ""},
		{http.MethodGet, "/venues/not-a-uuid/unavailable", ""},
		{http.MethodPost, "/venues/not-a-uuid/check", `{"guests":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			w := do(r, tt.method, tt.path, tt.body, nil)
			assert.Equal(t, http.StatusNotFound, w.Code)
			assert.Equal(t, "venue not found", decode[ErrorResponse](t, w).Error)
		})
	}
}

func TestCheckRejectsMalformedDate(t *testing.T) {
	w := do(newTestRouter(), http.MethodPost, "/venues/x/check", `{"dateFrom":"15/06/2025"}`, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decode[ErrorResponse](t, w).Error, "dateFrom")
}

func TestBookingsRequireProfile(t *testing.T) {
	r := newTestRouter()

	w := do(r, http.MethodPost, "/bookings", `{"venueId":"x"}`, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = do(r, http.MethodDelete, "/bookings/x", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = do(r, http.MethodGet, "/manager/venues", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateBookingRejectedBeforeStore(t *testing.T) {
	r := newTestRouter()

	w := do(r, http.MethodPost, "/bookings", `{}`, asKari)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(r, http.MethodPost, "/bookings", `{"venueId":"nope","guests":1}`, asKari)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(r, http.MethodPost, "/bookings",
		`{"venueId":"0b4e3e38-9c2b-4c4b-8d41-3f0e7c1a2b3c","dateFrom":"2099-06-12","dateTo":"2099-06-10","guests":1}`,
		asKari,
	)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "end date is before start date", decode[ErrorResponse](t, w).Error)
}

func TestCancelBookingMalformedID(t *testing.T) {
	w := do(newTestRouter(), http.MethodDelete, "/bookings/nope", "", asKari)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestProfileRoutesAreSelfOnly(t *testing.T) {
	r := newTestRouter()

	w := do(r, http.MethodPut, "/profiles/ola/avatar", `{"url":"https://img.example.com/a.png"}`, asKari)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = do(r, http.MethodGet, "/profiles/ola/bookings", "", asKari)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = do(r, http.MethodPut, "/profiles/kari/avatar", `{"url":"not-a-url"}`, asKari)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "avatar must be a valid URL", decode[ErrorResponse](t, w).Error)
}

func TestRegisterProfileValidation(t *testing.T) {
	w := do(newTestRouter(), http.MethodPut, "/profiles/kari%20n", `{"email":"kari@stud.noroff.no"}`, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestManagerCreateVenueValidation(t *testing.T) {
	w := do(newTestRouter(), http.MethodPost, "/manager/venues",
		`{"name":"Cabin","description":"","price":0,"maxGuests":2,
		  "location":{"address":"a","city":"b","zip":"c","country":"d","continent":"e"}}`,
		asKari,
	)

	require.Equal(t, http.StatusBadRequest, w.Code)

	resp := decode[ValidationErrorResponse](t, w)
	assert.Equal(t, []string{"description", "price"}, resp.Fields)
	assert.Equal(t, []string{"Please enter a description", "Please enter a valid price"}, resp.Errors)
}

func TestManagerVenueMalformedID(t *testing.T) {
	r := newTestRouter()

	w := do(r, http.MethodDelete, "/manager/venues/nope", "", asKari)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(r, http.MethodGet, "/manager/venues/nope/bookings", "", asKari)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRespondErr(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		body   string
	}{
		{
			name:   "overlap",
			err:    fmt.Errorf("op: %w", &availability.Error{Kind: availability.KindDateRangeOverlap, Reason: "Selected dates overlap with existing bookings."}),
			status: http.StatusConflict,
			body:   `{"error":"Selected dates overlap with existing bookings.","kind":"DateRangeOverlap"}`,
		},
		{
			name:   "too many guests",
			err:    &availability.Error{Kind: availability.KindGuestCountExceeded, Reason: "Max 4 guests allowed."},
			status: http.StatusUnprocessableEntity,
			body:   `{"error":"Max 4 guests allowed.","kind":"GuestCountExceeded"}`,
		},
		{
			name:   "not owner",
			err:    fmt.Errorf("op: %w", manager.ErrNotVenueOwner),
			status: http.StatusForbidden,
			body:   `{"error":"venue belongs to another manager"}`,
		},
		{
			name:   "venue",
			err:    fmt.Errorf("op: %w", venues.ErrVenueNotFound),
			status: http.StatusNotFound,
			body:   `{"error":"venue not found"}`,
		},
		{
			name:   "profile",
			err:    fmt.Errorf("op: %w", profiles.ErrProfileNotFound),
			status: http.StatusNotFound,
			body:   `{"error":"profile not found"}`,
		},
		{
			name:   "unknown",
			err:    errors.New("connection refused"),
			status: http.StatusInternalServerError,
			body:   `{"error":"internal error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			respondErr(c, tt.err)

			assert.Equal(t, tt.status, w.Code)
			assert.JSONEq(t, tt.body, w.Body.String())
		})
	}
}

func TestRespondErrRateLimited(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	respondErr(c, fmt.Errorf("op: %w", bookings.RateLimitedError{RetryAfter: 1500 * time.Millisecond}))

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "2", w.Header().Get("Retry-After"))
}

func TestParseDate(t *testing.T) {
	got, err := parseDate("dateFrom", "")
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = parseDate("dateFrom", "2025-06-15")
	require.NoError(t, err)
	assert.Equal(t, "2025-06-15", got.Format(time.DateOnly))

	got, err = parseDate("dateFrom", "2025-06-15T10:00:00Z")
	require.NoError(t, err)
	assert.Equal(t, 10, got.Hour())

	_, err = parseDate("dateTo", "tomorrow")
	assert.ErrorContains(t, err, "dateTo")
}
