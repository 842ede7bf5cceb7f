package centre

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/quickcourt/QC-BookingService/internal/domain"
	"github.com/quickcourt/QC-BookingService/pkg/dbmetrics"
	"github.com/quickcourt/QC-BookingService/pkg/psqlbuilder"
)

// Repository репозиторий каталога площадок: центры, виды спорта, корты
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория каталога
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// CreateCentre сохраняет новый спортивный центр
func (r *Repository) CreateCentre(ctx context.Context, centre *domain.Centre) (*domain.Centre, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("centres").
		Columns("name", "location").
		Values(centre.Name, centre.Location).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreateCentre - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&centre.ID); err != nil {
		return nil, fmt.Errorf("%w: CreateCentre - execute insert: %v", ErrExecQuery, err)
	}

	return centre, nil
}

// CreateSport добавляет вид спорта в центр
func (r *Repository) CreateSport(ctx context.Context, sport *domain.Sport) (*domain.Sport, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("sports").
		Columns("name", "centre_id").
		Values(sport.Name, sport.CentreID).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreateSport - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&sport.ID); err != nil {
		return nil, fmt.Errorf("%w: CreateSport - execute insert: %v", ErrExecQuery, err)
	}

	return sport, nil
}

// CreateCourt добавляет корт к виду спорта
func (r *Repository) CreateCourt(ctx context.Context, court *domain.Court) (*domain.Court, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("courts").
		Columns("name", "sport_id").
		Values(court.Name, court.SportID).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreateCourt - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&court.ID); err != nil {
		return nil, fmt.Errorf("%w: CreateCourt - execute insert: %v", ErrExecQuery, err)
	}

	return court, nil
}

// GetCentreByID получает центр по ID
func (r *Repository) GetCentreByID(ctx context.Context, id int64) (*domain.Centre, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "location").
		From("centres").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetCentreByID - build select query: %v", ErrBuildQuery, err)
	}

	var centre domain.Centre
	err = executor.QueryRowContext(ctx, query, args...).Scan(&centre.ID, &centre.Name, &centre.Location)
	if err == sql.ErrNoRows {
		return nil, ErrCentreNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetCentreByID - scan centre: %v", ErrScanRow, err)
	}

	return &centre, nil
}

// GetSportInCentre получает вид спорта по ID с проверкой принадлежности центру.
// Несовпадение centre_id неотличимо от отсутствия записи: оба дают ErrSportNotFound.
func (r *Repository) GetSportInCentre(ctx context.Context, sportID, centreID int64) (*domain.Sport, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "centre_id").
		From("sports").
		Where(squirrel.Eq{"id": sportID}).
		Where(squirrel.Eq{"centre_id": centreID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetSportInCentre - build select query: %v", ErrBuildQuery, err)
	}

	var sport domain.Sport
	err = executor.QueryRowContext(ctx, query, args...).Scan(&sport.ID, &sport.Name, &sport.CentreID)
	if err == sql.ErrNoRows {
		return nil, ErrSportNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetSportInCentre - scan sport: %v", ErrScanRow, err)
	}

	return &sport, nil
}

// GetSportByID получает вид спорта по ID
func (r *Repository) GetSportByID(ctx context.Context, sportID int64) (*domain.Sport, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "centre_id").
		From("sports").
		Where(squirrel.Eq{"id": sportID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetSportByID - build select query: %v", ErrBuildQuery, err)
	}

	var sport domain.Sport
	err = executor.QueryRowContext(ctx, query, args...).Scan(&sport.ID, &sport.Name, &sport.CentreID)
	if err == sql.ErrNoRows {
		return nil, ErrSportNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetSportByID - scan sport: %v", ErrScanRow, err)
	}

	return &sport, nil
}

// GetCourtInSport получает корт по ID с проверкой принадлежности виду спорта
func (r *Repository) GetCourtInSport(ctx context.Context, courtID, sportID int64) (*domain.Court, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "sport_id").
		From("courts").
		Where(squirrel.Eq{"id": courtID}).
		Where(squirrel.Eq{"sport_id": sportID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetCourtInSport - build select query: %v", ErrBuildQuery, err)
	}

	var court domain.Court
	err = executor.QueryRowContext(ctx, query, args...).Scan(&court.ID, &court.Name, &court.SportID)
	if err == sql.ErrNoRows {
		return nil, ErrCourtNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetCourtInSport - scan court: %v", ErrScanRow, err)
	}

	return &court, nil
}

// ListCentres получает все центры, упорядоченные по названию
func (r *Repository) ListCentres(ctx context.Context) ([]*domain.Centre, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "location").
		From("centres").
		OrderBy("name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListCentres - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListCentres - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	centres := make([]*domain.Centre, 0)
	for rows.Next() {
		var centre domain.Centre
		if err := rows.Scan(&centre.ID, &centre.Name, &centre.Location); err != nil {
			return nil, fmt.Errorf("%w: ListCentres - scan row: %v", ErrScanRow, err)
		}
		centres = append(centres, &centre)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListCentres - rows error: %v", ErrScanRow, err)
	}

	return centres, nil
}

// ListSportsByCentre получает все виды спорта центра
func (r *Repository) ListSportsByCentre(ctx context.Context, centreID int64) ([]*domain.Sport, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "centre_id").
		From("sports").
		Where(squirrel.Eq{"centre_id": centreID}).
		OrderBy("name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListSportsByCentre - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListSportsByCentre - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	sports := make([]*domain.Sport, 0)
	for rows.Next() {
		var sport domain.Sport
		if err := rows.Scan(&sport.ID, &sport.Name, &sport.CentreID); err != nil {
			return nil, fmt.Errorf("%w: ListSportsByCentre - scan row: %v", ErrScanRow, err)
		}
		sports = append(sports, &sport)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListSportsByCentre - rows error: %v", ErrScanRow, err)
	}

	return sports, nil
}

// ListCourtsBySport получает все корты вида спорта
func (r *Repository) ListCourtsBySport(ctx context.Context, sportID int64) ([]*domain.Court, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "sport_id").
		From("courts").
		Where(squirrel.Eq{"sport_id": sportID}).
		OrderBy("name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListCourtsBySport - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListCourtsBySport - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	courts := make([]*domain.Court, 0)
	for rows.Next() {
		var court domain.Court
		if err := rows.Scan(&court.ID, &court.Name, &court.SportID); err != nil {
			return nil, fmt.Errorf("%w: ListCourtsBySport - scan row: %v", ErrScanRow, err)
		}
		courts = append(courts, &court)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListCourtsBySport - rows error: %v", ErrScanRow, err)
	}

	return courts, nil
}
