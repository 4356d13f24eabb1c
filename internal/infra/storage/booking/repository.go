package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/bettersystemsai/BSA-BookingService/internal/domain"
	"github.com/bettersystemsai/BSA-BookingService/pkg/psqlbuilder"
	"github.com/bettersystemsai/BSA-BookingService/pkg/types"
)

// Repository репозиторий бронирований discovery-звонков
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create атомарно создает бронирование с семантикой "insert if absent"
//
// Уникальность пары (booking_date, start_time) обеспечивает сам Postgres
// через уникальный индекс: проверка занятости и запись - одна и та же
// атомарная операция, окно гонки между "прочитал" и "записал" отсутствует.
// Из двух конкурентных вставок на один слот ровно одна вернет строку,
// вторая получит ErrSlotTaken
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"booking_date",
			"start_time",
			"status",
			"name",
			"email",
			"company",
			"interest",
			"notes",
		).
		Values(
			booking.BookingDate,
			booking.StartTime,
			booking.Status,
			booking.Name,
			booking.Email,
			booking.Company,
			booking.Interest,
			booking.Notes,
		).
		Suffix("ON CONFLICT (booking_date, start_time) DO NOTHING RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
	)

	// DO NOTHING при конфликте не возвращает строк - слот уже занят
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSlotTaken
	}
	if isUniqueViolation(err) {
		return nil, ErrSlotTaken
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time

	return booking, nil
}

// FindBookedTimes возвращает времена начала всех подтвержденных бронирований
// на указанную дату, по возрастанию времени
func (r *Repository) FindBookedTimes(ctx context.Context, date time.Time) ([]types.TimeString, error) {
	query, args, err := psqlbuilder.Select("start_time").
		From("bookings").
		Where(squirrel.Eq{"booking_date": date}).
		Where(squirrel.Eq{"status": domain.StatusConfirmed}).
		OrderBy("start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: FindBookedTimes - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: FindBookedTimes - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	times := make([]types.TimeString, 0)
	for rows.Next() {
		var t types.TimeString
		if err := rows.Scan(&t); err != nil {
			return nil, fmt.Errorf("%w: FindBookedTimes - scan start_time: %v", ErrScanRow, err)
		}
		times = append(times, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: FindBookedTimes - rows error: %v", ErrScanRow, err)
	}

	return times, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	query, args, err := selectBookingColumns().
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var booking domain.Booking
	var createdAt sql.NullTime

	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&booking.BookingDate,
		&booking.StartTime,
		&booking.Status,
		&booking.Name,
		&booking.Email,
		&booking.Company,
		&booking.Interest,
		&booking.Notes,
		&createdAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	booking.CreatedAt = createdAt.Time

	return &booking, nil
}

// GetByDate получает все бронирования на указанную дату по возрастанию времени
func (r *Repository) GetByDate(ctx context.Context, date time.Time) ([]*domain.Booking, error) {
	query, args, err := selectBookingColumns().
		Where(squirrel.Eq{"booking_date": date}).
		OrderBy("start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

func selectBookingColumns() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"id",
		"booking_date",
		"start_time",
		"status",
		"name",
		"email",
		"company",
		"interest",
		"notes",
		"created_at",
	).From("bookings")
}

func scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		var booking domain.Booking
		var createdAt sql.NullTime

		err := rows.Scan(
			&booking.ID,
			&booking.BookingDate,
			&booking.StartTime,
			&booking.Status,
			&booking.Name,
			&booking.Email,
			&booking.Company,
			&booking.Interest,
			&booking.Notes,
			&createdAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}

		booking.CreatedAt = createdAt.Time
		bookings = append(bookings, &booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

// isUniqueViolation распознает нарушение уникального ограничения Postgres
// Страховка на случай, если вставка пойдет мимо ON CONFLICT (например, при
// добавлении еще одного уникального индекса)
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation"
}
