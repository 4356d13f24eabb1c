package get_availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bettersystemsai/BSA-BookingService/internal/domain"
	"github.com/bettersystemsai/BSA-BookingService/pkg/types"
)

// --- Фейки ---

type fakeBookingRepo struct {
	bookedTimes []types.TimeString
	err         error

	gotDate time.Time
}

func (f *fakeBookingRepo) FindBookedTimes(ctx context.Context, date time.Time) ([]types.TimeString, error) {
	f.gotDate = date
	if f.err != nil {
		return nil, f.err
	}
	return f.bookedTimes, nil
}

type fixedTimeProvider struct {
	now time.Time
}

func (f *fixedTimeProvider) Now() time.Time {
	return f.now
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newTestUseCase(repo *fakeBookingRepo, now time.Time) *UseCase {
	uc := NewUseCase(repo, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: now}
	return uc
}

// Среда, 1 января 2025: окно бронирования 2025-01-04 .. 2025-03-02
var testNow = time.Date(2025, 1, 1, 10, 0, 0, 0, domain.BusinessLocation)

func TestExecute_AllSlotsAvailable(t *testing.T) {
	repo := &fakeBookingRepo{}
	uc := newTestUseCase(repo, testNow)

	date := time.Date(2025, 1, 6, 0, 0, 0, 0, domain.BusinessLocation)
	resp, err := uc.Execute(context.Background(), &Request{Date: date})

	require.NoError(t, err)
	require.Len(t, resp.Slots, domain.CatalogSize)
	assert.Equal(t, date, resp.Date)
	assert.True(t, domain.SameDay(repo.gotDate, date))

	for _, slot := range resp.Slots {
		assert.True(t, slot.Available, "slot %s must be available", slot.Time)
	}
}

func TestExecute_BookedSlotsMarkedUnavailable(t *testing.T) {
	repo := &fakeBookingRepo{
		bookedTimes: []types.TimeString{"09:30", "13:00"},
	}
	uc := newTestUseCase(repo, testNow)

	date := time.Date(2025, 1, 6, 0, 0, 0, 0, domain.BusinessLocation)
	resp, err := uc.Execute(context.Background(), &Request{Date: date})

	require.NoError(t, err)
	require.Len(t, resp.Slots, domain.CatalogSize)

	// Полный каталог возвращается всегда, занятые слоты лишь помечаются
	available := make(map[types.TimeString]bool, len(resp.Slots))
	for _, slot := range resp.Slots {
		available[slot.Time] = slot.Available
	}
	assert.False(t, available["09:30"])
	assert.False(t, available["13:00"])
	assert.True(t, available["09:00"])
	assert.True(t, available["16:00"])
}

func TestExecute_PreservesCatalogOrder(t *testing.T) {
	repo := &fakeBookingRepo{
		bookedTimes: []types.TimeString{"16:00", "09:00"},
	}
	uc := newTestUseCase(repo, testNow)

	date := time.Date(2025, 1, 6, 0, 0, 0, 0, domain.BusinessLocation)
	resp, err := uc.Execute(context.Background(), &Request{Date: date})

	require.NoError(t, err)
	for i := 1; i < len(resp.Slots); i++ {
		assert.True(t, resp.Slots[i-1].Time.IsBefore(resp.Slots[i].Time))
	}
}

func TestExecute_DateValidation(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
	}{
		{
			name: "date before the window",
			date: time.Date(2025, 1, 2, 0, 0, 0, 0, domain.BusinessLocation),
		},
		{
			name: "date after the window",
			date: time.Date(2025, 3, 10, 0, 0, 0, 0, domain.BusinessLocation),
		},
		{
			name: "Sunday inside the window",
			date: time.Date(2025, 1, 5, 0, 0, 0, 0, domain.BusinessLocation),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeBookingRepo{}
			uc := newTestUseCase(repo, testNow)

			_, err := uc.Execute(context.Background(), &Request{Date: tt.date})

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidDate)
			// Репозиторий не должен вызываться для недоступной даты
			assert.True(t, repo.gotDate.IsZero())
		})
	}
}

func TestExecute_MissingDate(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, testNow)

	_, err := uc.Execute(context.Background(), &Request{})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_RepositoryError(t *testing.T) {
	repo := &fakeBookingRepo{err: errors.New("connection refused")}
	uc := newTestUseCase(repo, testNow)

	date := time.Date(2025, 1, 6, 0, 0, 0, 0, domain.BusinessLocation)
	_, err := uc.Execute(context.Background(), &Request{Date: date})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInternal)
}
