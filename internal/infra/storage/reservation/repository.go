package reservation

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/supasport/booking-service/internal/domain"
	"github.com/supasport/booking-service/pkg/dbmetrics"
	"github.com/supasport/booking-service/pkg/psqlbuilder"
)

// Repository репозиторий для работы с бронированиями (reservas)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает бронирование, ссылающееся на уже зарезервированный слот.
// Вызывается строго после перевода слота в статус "reservado".
func (r *Repository) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("reservas").
		Columns(
			"usuario_id",
			"estabelecimento_id",
			"horario_id",
			"data_reserva",
		).
		Values(
			res.UserID,
			res.VenueID,
			res.SlotID,
			squirrel.Expr("NOW()"),
		).
		Suffix("RETURNING id, data_reserva").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&res.ID,
		&createdAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	res.CreatedAt = createdAt.Time

	return res, nil
}

// GetByUserID получает историю бронирований пользователя, сначала новые
func (r *Repository) GetByUserID(ctx context.Context, userID int64) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"usuario_id",
		"estabelecimento_id",
		"horario_id",
		"data_reserva",
	).
		From("reservas").
		Where(squirrel.Eq{"usuario_id": userID}).
		OrderBy("data_reserva DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	reservations := make([]*domain.Reservation, 0)

	for rows.Next() {
		var res domain.Reservation
		var createdAt sql.NullTime

		if err := rows.Scan(&res.ID, &res.UserID, &res.VenueID, &res.SlotID, &createdAt); err != nil {
			return nil, fmt.Errorf("%w: GetByUserID - scan row: %v", ErrScanRow, err)
		}

		res.CreatedAt = createdAt.Time
		reservations = append(reservations, &res)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - rows error: %v", ErrScanRow, err)
	}

	return reservations, nil
}

// ExistsByVenueID возвращает true, если у площадки есть хотя бы одно
// бронирование. Используется как защита при удалении площадки.
func (r *Repository) ExistsByVenueID(ctx context.Context, venueID int64) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From("reservas").
		Where(squirrel.Eq{"estabelecimento_id": venueID}).
		Limit(1).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: ExistsByVenueID - build select query: %v", ErrBuildQuery, err)
	}

	var one int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: ExistsByVenueID - execute query: %v", ErrExecQuery, err)
	}

	return true, nil
}
