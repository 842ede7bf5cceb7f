package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/quickcourt/QC-BookingService/internal/domain"
	"github.com/quickcourt/QC-BookingService/pkg/dbmetrics"
	"github.com/quickcourt/QC-BookingService/pkg/psqlbuilder"
)

// Коды ошибок PostgreSQL, означающие нарушение ограничения эксклюзивности
// корта: gist exclusion constraint по (court_id, booking_date, [start, end))
const (
	pgExclusionViolation = "23P01"
	pgUniqueViolation    = "23505"
)

var bookingColumns = []string{
	"id",
	"centre_id",
	"sport_id",
	"court_id",
	"user_id",
	"booking_date",
	"start_time",
	"end_time",
	"created_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет новое бронирование.
// Инвариант "на одном корте в один день интервалы не пересекаются" двойной:
// use case проверяет пересечения в сериализуемой транзакции, а таблица несёт
// exclusion constraint — его нарушение транслируется в ErrSlotAlreadyBooked,
// так что гонка двух конкурентных вставок не может оставить пересечение.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"centre_id",
			"sport_id",
			"court_id",
			"user_id",
			"booking_date",
			"start_time",
			"end_time",
		).
		Values(
			booking.CentreID,
			booking.SportID,
			booking.CourtID,
			booking.UserID,
			booking.BookingDate,
			booking.StartTime,
			booking.EndTime,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&booking.ID, &createdAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			code := string(pqErr.Code)
			if code == pgExclusionViolation || code == pgUniqueViolation {
				return nil, ErrSlotAlreadyBooked
			}
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time

	return booking, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var booking domain.Booking
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&booking.CentreID,
		&booking.SportID,
		&booking.CourtID,
		&booking.UserID,
		&booking.BookingDate,
		&booking.StartTime,
		&booking.EndTime,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	booking.CreatedAt = createdAt.Time

	return &booking, nil
}

// GetDetailedByID получает бронирование по ID вместе с названиями
// центра, вида спорта, корта и данными клиента
func (r *Repository) GetDetailedByID(ctx context.Context, id int64) (*domain.BookingDetails, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := detailedSelect().
		Where(squirrel.Eq{"b.id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetDetailedByID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetDetailedByID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	bookings, err := scanDetailedBookings(rows)
	if err != nil {
		return nil, err
	}
	if len(bookings) == 0 {
		return nil, ErrBookingNotFound
	}

	return bookings[0], nil
}

// GetByCourtAndDate получает все бронирования корта на конкретную дату,
// упорядоченные по времени начала.
// Внутри транзакции выборка выполняется с FOR UPDATE: день корта блокируется
// на время проверки пересечений и вставки нового бронирования.
func (r *Repository) GetByCourtAndDate(ctx context.Context, courtID int64, date time.Time) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"court_id": courtID}).
		Where(squirrel.Eq{"booking_date": date}).
		OrderBy("start_time ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCourtAndDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCourtAndDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// GetDetailedByUserID получает историю бронирований пользователя
// вместе с названиями центра, вида спорта и корта
func (r *Repository) GetDetailedByUserID(ctx context.Context, userID int64) ([]*domain.BookingDetails, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := detailedSelect().
		Where(squirrel.Eq{"b.user_id": userID}).
		OrderBy("b.booking_date DESC", "b.start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetDetailedByUserID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetDetailedByUserID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanDetailedBookings(rows)
}

// GetAllDetailed получает бронирования всех пользователей с фильтрацией
// по центру и периоду. Используется менеджерским обзором.
func (r *Repository) GetAllDetailed(ctx context.Context, filter domain.BookingsFilter) ([]*domain.BookingDetails, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := detailedSelect()

	if filter.CentreID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"b.centre_id": *filter.CentreID})
	}
	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"b.booking_date": *filter.StartDate})
	}
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"b.booking_date": *filter.EndDate})
	}

	query, args, err := selectBuilder.
		OrderBy("b.booking_date DESC", "b.start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetAllDetailed - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetAllDetailed - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanDetailedBookings(rows)
}

// Delete физически удаляет бронирование.
// Отмена в системе безвозвратна, soft-delete не используется.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

func detailedSelect() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"b.id",
		"b.centre_id",
		"b.sport_id",
		"b.court_id",
		"b.user_id",
		"b.booking_date",
		"b.start_time",
		"b.end_time",
		"b.created_at",
		"c.name",
		"c.location",
		"s.name",
		"ct.name",
		"u.name",
		"u.email",
	).
		From("bookings b").
		Join("centres c ON c.id = b.centre_id").
		Join("sports s ON s.id = b.sport_id").
		Join("courts ct ON ct.id = b.court_id").
		Join("users u ON u.id = b.user_id")
}

// scanBookings сканирует результаты запроса в слайс бронирований
func scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		var booking domain.Booking
		var createdAt sql.NullTime

		err := rows.Scan(
			&booking.ID,
			&booking.CentreID,
			&booking.SportID,
			&booking.CourtID,
			&booking.UserID,
			&booking.BookingDate,
			&booking.StartTime,
			&booking.EndTime,
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

func scanDetailedBookings(rows *sql.Rows) ([]*domain.BookingDetails, error) {
	bookings := make([]*domain.BookingDetails, 0)

	for rows.Next() {
		var details domain.BookingDetails
		var createdAt sql.NullTime

		err := rows.Scan(
			&details.ID,
			&details.CentreID,
			&details.SportID,
			&details.CourtID,
			&details.UserID,
			&details.BookingDate,
			&details.StartTime,
			&details.EndTime,
			&createdAt,
			&details.CentreName,
			&details.CentreLocation,
			&details.SportName,
			&details.CourtName,
			&details.UserName,
			&details.UserEmail,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanDetailedBookings - scan row: %v", ErrScanRow, err)
		}

		details.CreatedAt = createdAt.Time
		bookings = append(bookings, &details)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanDetailedBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
