package bookings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bettersystemsai/BSA-BookingService/internal/domain"
	bookingRepo "github.com/bettersystemsai/BSA-BookingService/internal/infra/storage/booking"
	"github.com/bettersystemsai/BSA-BookingService/pkg/types"
)

// --- Фейки ---

type fakeBookingRepo struct {
	bookings map[int64]*domain.Booking
	byDate   []*domain.Booking
	times    []types.TimeString
	err      error
}

func (f *fakeBookingRepo) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	b, ok := f.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return b, nil
}

func (f *fakeBookingRepo) GetByDate(ctx context.Context, date time.Time) ([]*domain.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.byDate, nil
}

func (f *fakeBookingRepo) FindBookedTimes(ctx context.Context, date time.Time) ([]types.TimeString, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.times, nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func testBooking(id int64) *domain.Booking {
	return &domain.Booking{
		ID:          id,
		BookingDate: time.Date(2025, 1, 6, 0, 0, 0, 0, domain.BusinessLocation),
		StartTime:   "13:30",
		Status:      domain.StatusConfirmed,
		Name:        "Jane Doe",
		Email:       "jane@example.com",
	}
}

func TestGetByID(t *testing.T) {
	repo := &fakeBookingRepo{bookings: map[int64]*domain.Booking{7: testBooking(7)}}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.GetByID(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, int64(7), resp.ID)
	assert.Equal(t, "2025-01-06", resp.Date)
	assert.Equal(t, "13:30", resp.StartTime)
	assert.Equal(t, "1:30 PM", resp.DisplayTime)
	assert.Equal(t, "confirmed", resp.Status)
}

func TestGetByID_NotFound(t *testing.T) {
	svc := NewService(&fakeBookingRepo{bookings: map[int64]*domain.Booking{}}, nopLogger{})

	_, err := svc.GetByID(context.Background(), 99)

	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGetByID_InvalidID(t *testing.T) {
	svc := NewService(&fakeBookingRepo{}, nopLogger{})

	_, err := svc.GetByID(context.Background(), 0)

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetByDate(t *testing.T) {
	repo := &fakeBookingRepo{byDate: []*domain.Booking{testBooking(1), testBooking(2)}}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.GetByDate(context.Background(), time.Date(2025, 1, 6, 0, 0, 0, 0, domain.BusinessLocation))

	require.NoError(t, err)
	assert.Equal(t, 2, resp.Total)
	require.Len(t, resp.Bookings, 2)
	assert.Equal(t, int64(1), resp.Bookings[0].ID)
}

func TestGetBookedTimes(t *testing.T) {
	repo := &fakeBookingRepo{times: []types.TimeString{"09:00", "13:30"}}
	svc := NewService(repo, nopLogger{})

	times, err := svc.GetBookedTimes(context.Background(), time.Date(2025, 1, 6, 0, 0, 0, 0, domain.BusinessLocation))

	require.NoError(t, err)
	assert.Equal(t, []string{"09:00", "13:30"}, times)
}

func TestGetBookedTimes_RepositoryError(t *testing.T) {
	repo := &fakeBookingRepo{err: errors.New("connection refused")}
	svc := NewService(repo, nopLogger{})

	_, err := svc.GetBookedTimes(context.Background(), time.Date(2025, 1, 6, 0, 0, 0, 0, domain.BusinessLocation))

	assert.ErrorIs(t, err, ErrInternal)
}
