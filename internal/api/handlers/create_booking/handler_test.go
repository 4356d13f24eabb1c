package create_booking

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	createBooking "github.com/bettersystemsai/BSA-BookingService/internal/usecase/create_booking"
)

// --- Фейки ---

type fakeUseCase struct {
	resp *createBooking.Response
	err  error

	gotReq *createBooking.Request
}

func (f *fakeUseCase) Execute(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	f.gotReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func doRequest(t *testing.T, h *Handler, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	data, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/book", bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	h.Handle(w, req)
	return w
}

func TestHandle_Success(t *testing.T) {
	uc := &fakeUseCase{
		resp: &createBooking.Response{
			ID:          42,
			Date:        time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC),
			StartTime:   "09:00",
			DisplayTime: "9:00 AM",
			Status:      "confirmed",
			Name:        "Jane Doe",
			Email:       "jane@example.com",
			CreatedAt:   time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC),
		},
	}
	h := NewHandler(uc, nopLogger{})

	w := doRequest(t, h, map[string]string{
		"date":  "2025-01-06",
		"time":  "9:00",
		"name":  "Jane Doe",
		"email": "jane@example.com",
	})

	require.Equal(t, http.StatusCreated, w.Code)

	var resp BookResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	require.NotNil(t, resp.Booking)
	assert.Equal(t, int64(42), resp.Booking.ID)
	assert.Equal(t, "2025-01-06", resp.Booking.Date)
	assert.Equal(t, "09:00", resp.Booking.Time)
	assert.Equal(t, "9:00 AM", resp.Booking.DisplayTime)

	// "9:00" нормализуется перед передачей в use case
	require.NotNil(t, uc.gotReq)
	assert.Equal(t, "09:00", uc.gotReq.StartTime.String())
}

func TestHandle_InvalidJSON(t *testing.T) {
	h := NewHandler(&fakeUseCase{}, nopLogger{})

	req := httptest.NewRequest(http.MethodPost, "/api/book", bytes.NewReader([]byte("{not json")))
	w := httptest.NewRecorder()
	h.Handle(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandle_InvalidDateFormat(t *testing.T) {
	uc := &fakeUseCase{}
	h := NewHandler(uc, nopLogger{})

	w := doRequest(t, h, map[string]string{
		"date":  "06.01.2025",
		"time":  "09:00",
		"name":  "Jane Doe",
		"email": "jane@example.com",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	// До use case запрос не доходит
	assert.Nil(t, uc.gotReq)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "missing field", err: createBooking.ErrMissingRequiredField, wantStatus: http.StatusBadRequest},
		{name: "date not bookable", err: createBooking.ErrInvalidDate, wantStatus: http.StatusBadRequest},
		{name: "invalid slot", err: createBooking.ErrInvalidSlot, wantStatus: http.StatusBadRequest},
		{name: "invalid input", err: createBooking.ErrInvalidInput, wantStatus: http.StatusBadRequest},
		{name: "slot unavailable", err: createBooking.ErrSlotUnavailable, wantStatus: http.StatusConflict},
		{name: "internal error", err: createBooking.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&fakeUseCase{err: tt.err}, nopLogger{})

			w := doRequest(t, h, map[string]string{
				"date":  "2025-01-06",
				"time":  "09:00",
				"name":  "Jane Doe",
				"email": "jane@example.com",
			})

			assert.Equal(t, tt.wantStatus, w.Code)

			var resp BookResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.False(t, resp.Success)
		})
	}
}

func TestHandle_MissingFieldsPassThrough(t *testing.T) {
	// Пустые date/time не валятся на парсинге: use case сам диагностирует
	// отсутствие обязательных полей
	uc := &fakeUseCase{err: createBooking.ErrMissingRequiredField}
	h := NewHandler(uc, nopLogger{})

	w := doRequest(t, h, map[string]string{
		"name":  "Jane Doe",
		"email": "jane@example.com",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	require.NotNil(t, uc.gotReq)
	assert.True(t, uc.gotReq.Date.IsZero())
	assert.True(t, uc.gotReq.StartTime.IsZero())
}
