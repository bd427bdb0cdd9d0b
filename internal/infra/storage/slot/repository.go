package slot

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/supasport/booking-service/internal/domain"
	"github.com/supasport/booking-service/pkg/dbmetrics"
	"github.com/supasport/booking-service/pkg/psqlbuilder"
	"github.com/supasport/booking-service/pkg/types"
)

// fetchLimit верхняя граница количества слотов на день
const fetchLimit = 1000

// Repository репозиторий для работы со слотами (horarios_disponiveis)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория слотов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByVenueAndDate получает все персистентные слоты площадки на дату,
// отсортированные по времени начала. Слоты без строки в БД считаются
// доступными и здесь не возвращаются.
func (r *Repository) GetByVenueAndDate(ctx context.Context, venueID int64, date time.Time) ([]*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"estabelecimento_id",
		"data",
		"horario",
		"status",
	).
		From("horarios_disponiveis").
		Where(squirrel.Eq{"estabelecimento_id": venueID}).
		Where(squirrel.Eq{"data": date.Format(domain.DateFormat)}).
		OrderBy("horario ASC").
		Limit(fetchLimit).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByVenueAndDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByVenueAndDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	slots := make([]*domain.Slot, 0)

	for rows.Next() {
		var s domain.Slot
		if err := rows.Scan(&s.ID, &s.VenueID, &s.Date, &s.StartTime, &s.Status); err != nil {
			return nil, fmt.Errorf("%w: GetByVenueAndDate - scan row: %v", ErrScanRow, err)
		}
		s.Status = s.Status.Canonical()
		slots = append(slots, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByVenueAndDate - rows error: %v", ErrScanRow, err)
	}

	return slots, nil
}

// GetByID получает слот по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"estabelecimento_id",
		"data",
		"horario",
		"status",
	).
		From("horarios_disponiveis").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.Slot
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&s.ID, &s.VenueID, &s.Date, &s.StartTime, &s.Status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSlotNotFound
		}
		return nil, fmt.Errorf("%w: GetByID - scan row: %v", ErrScanRow, err)
	}
	s.Status = s.Status.Canonical()

	return &s, nil
}

// CreateReserved создает строку слота сразу в статусе "reservado".
// Используется для слотов, которые бронируются впервые и ещё не имеют
// строки в БД.
func (r *Repository) CreateReserved(ctx context.Context, venueID int64, date time.Time, startTime types.TimeString) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("horarios_disponiveis").
		Columns(
			"estabelecimento_id",
			"data",
			"horario",
			"status",
		).
		Values(
			venueID,
			date.Format(domain.DateFormat),
			startTime.String(),
			domain.SlotStatusReserved,
		).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CreateReserved - build insert query: %v", ErrBuildQuery, err)
	}

	var id int64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("%w: CreateReserved - execute insert: %v", ErrExecQuery, err)
	}

	return id, nil
}

// Reserve переводит существующий слот в статус "reservado".
// Переход выполняется только из доступного статуса: если строка уже
// зарезервирована (в том числе конкурентным запросом между reconcile и
// commit), запрос не затронет ни одной строки и вернётся
// ErrSlotAlreadyReserved.
func (r *Repository) Reserve(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("horarios_disponiveis").
		Set("status", domain.SlotStatusReserved).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"status": []string{
			string(domain.SlotStatusAvailable),
			string(domain.SlotStatusFree),
		}}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Reserve - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Reserve - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Reserve - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrSlotAlreadyReserved
	}

	return nil
}
