package venue

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"strings"

	"github.com/Masterminds/squirrel"

	"github.com/supasport/booking-service/internal/domain"
	"github.com/supasport/booking-service/pkg/dbmetrics"
	"github.com/supasport/booking-service/pkg/psqlbuilder"
)

var venueColumns = []string{
	"id",
	"usuario_id",
	"nome",
	"tipo",
	"cidade",
	"cep",
	"horario_abertura",
	"horario_fechamento",
	"tempo_reserva",
	"valor_reserva",
	"key_pix",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с площадками (estabelecimentos)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория площадок
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает площадку вместе со связанными днями работы и
// инфраструктурой
func (r *Repository) Create(ctx context.Context, v *domain.Venue) (*domain.Venue, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("estabelecimentos").
		Columns(
			"usuario_id",
			"nome",
			"tipo",
			"cidade",
			"cep",
			"horario_abertura",
			"horario_fechamento",
			"tempo_reserva",
			"valor_reserva",
			"key_pix",
			"dias_funcionamento",
		).
		Values(
			v.OwnerID,
			v.Name,
			v.SportType,
			v.City,
			v.PostalCode,
			v.OpeningTime,
			v.ClosingTime,
			v.SlotDurationMinutes,
			v.PricePerSlot,
			v.PixKey,
			joinWeekdays(v.OperatingDays),
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&v.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	v.CreatedAt = createdAt.Time
	v.UpdatedAt = updatedAt.Time

	if err := r.replaceOperatingDays(ctx, executor, v.ID, v.OperatingDays); err != nil {
		return nil, err
	}
	if err := r.replaceAmenities(ctx, executor, v.ID, v.Amenities); err != nil {
		return nil, err
	}

	return v, nil
}

// GetByID получает площадку по ID вместе с днями работы и инфраструктурой
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Venue, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(venueColumns...).
		From("estabelecimentos").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	v, err := r.scanVenue(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrVenueNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan venue: %v", ErrScanRow, err)
	}

	if err := r.loadRelations(ctx, executor, v); err != nil {
		return nil, err
	}

	return v, nil
}

// List получает площадки с фильтрацией по подстроке имени (без учета
// регистра) и лимитом
func (r *Repository) List(ctx context.Context, filter domain.VenueFilter) ([]*domain.Venue, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	limit := filter.Limit
	if limit == 0 {
		limit = domain.DefaultVenueListLimit
	}
	if limit > domain.MaxVenueListLimit {
		limit = domain.MaxVenueListLimit
	}

	selectBuilder := psqlbuilder.Select(venueColumns...).
		From("estabelecimentos").
		OrderBy("nome ASC").
		Limit(limit)

	if filter.NameQuery != "" {
		selectBuilder = selectBuilder.Where(squirrel.ILike{"nome": "%" + filter.NameQuery + "%"})
	}
	if filter.City != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"cidade": *filter.City})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	venues := make([]*domain.Venue, 0)

	for rows.Next() {
		v, err := r.scanVenue(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		venues = append(venues, v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	for _, v := range venues {
		if err := r.loadRelations(ctx, executor, v); err != nil {
			return nil, err
		}
	}

	return venues, nil
}

// Update обновляет площадку и заменяет связанные дни работы и
// инфраструктуру
func (r *Repository) Update(ctx context.Context, id int64, v *domain.Venue) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("estabelecimentos").
		Set("nome", v.Name).
		Set("tipo", v.SportType).
		Set("cidade", v.City).
		Set("cep", v.PostalCode).
		Set("horario_abertura", v.OpeningTime).
		Set("horario_fechamento", v.ClosingTime).
		Set("tempo_reserva", v.SlotDurationMinutes).
		Set("valor_reserva", v.PricePerSlot).
		Set("key_pix", v.PixKey).
		Set("dias_funcionamento", joinWeekdays(v.OperatingDays)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrVenueNotFound
	}

	if err := r.replaceOperatingDays(ctx, executor, id, v.OperatingDays); err != nil {
		return err
	}
	return r.replaceAmenities(ctx, executor, id, v.Amenities)
}

// Delete удаляет площадку вместе со связанными строками
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	for _, table := range []string{"estabelecimento_dias_funcionamento", "estabelecimento_infraestrutura"} {
		query, args, err := psqlbuilder.Delete(table).
			Where(squirrel.Eq{"estabelecimento_id": id}).
			ToSql()
		if err != nil {
			return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
		}
		if _, err := executor.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: Delete - execute delete from %s: %v", ErrExecQuery, table, err)
		}
	}

	query, args, err := psqlbuilder.Delete("estabelecimentos").
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
		return ErrVenueNotFound
	}

	return nil
}

// scanVenue сканирует одну строку estabelecimentos
func (r *Repository) scanVenue(row interface{ Scan(...interface{}) error }) (*domain.Venue, error) {
	var v domain.Venue
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&v.ID,
		&v.OwnerID,
		&v.Name,
		&v.SportType,
		&v.City,
		&v.PostalCode,
		&v.OpeningTime,
		&v.ClosingTime,
		&v.SlotDurationMinutes,
		&v.PricePerSlot,
		&v.PixKey,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	v.CreatedAt = createdAt.Time
	v.UpdatedAt = updatedAt.Time

	return &v, nil
}

// loadRelations загружает дни работы и инфраструктуру площадки
func (r *Repository) loadRelations(ctx context.Context, executor DBExecutor, v *domain.Venue) error {
	days, err := r.loadOperatingDays(ctx, executor, v.ID)
	if err != nil {
		return err
	}
	v.OperatingDays = days

	amenities, err := r.loadAmenities(ctx, executor, v.ID)
	if err != nil {
		return err
	}
	v.Amenities = amenities

	return nil
}

func (r *Repository) loadOperatingDays(ctx context.Context, executor DBExecutor, venueID int64) ([]domain.Weekday, error) {
	query, args, err := psqlbuilder.Select("ds.abreviacao").
		From("estabelecimento_dias_funcionamento edf").
		Join("dias_semana ds ON ds.id = edf.dia_semana_id").
		Where(squirrel.Eq{"edf.estabelecimento_id": venueID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: loadOperatingDays - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: loadOperatingDays - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	days := make([]domain.Weekday, 0)
	for rows.Next() {
		var abbrev string
		if err := rows.Scan(&abbrev); err != nil {
			return nil, fmt.Errorf("%w: loadOperatingDays - scan row: %v", ErrScanRow, err)
		}
		days = append(days, domain.Weekday(abbrev))
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: loadOperatingDays - rows error: %v", ErrScanRow, err)
	}

	// Порядок дней в выдаче канонический (воскресенье первым), независимо
	// от порядка вставки
	sort.Slice(days, func(i, j int) bool {
		return days[i].Index() < days[j].Index()
	})

	return days, nil
}

func (r *Repository) loadAmenities(ctx context.Context, executor DBExecutor, venueID int64) (domain.AmenitySet, error) {
	query, args, err := psqlbuilder.Select("ti.nome", "ei.disponivel").
		From("estabelecimento_infraestrutura ei").
		Join("tipos_infraestrutura ti ON ti.id = ei.infraestrutura_id").
		Where(squirrel.Eq{"ei.estabelecimento_id": venueID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: loadAmenities - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: loadAmenities - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	amenities := make(domain.AmenitySet)
	for rows.Next() {
		var name string
		var available bool
		if err := rows.Scan(&name, &available); err != nil {
			return nil, fmt.Errorf("%w: loadAmenities - scan row: %v", ErrScanRow, err)
		}
		amenities[domain.Amenity(name)] = available
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: loadAmenities - rows error: %v", ErrScanRow, err)
	}

	return amenities, nil
}

func (r *Repository) replaceOperatingDays(ctx context.Context, executor DBExecutor, venueID int64, days []domain.Weekday) error {
	query, args, err := psqlbuilder.Delete("estabelecimento_dias_funcionamento").
		Where(squirrel.Eq{"estabelecimento_id": venueID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: replaceOperatingDays - build delete query: %v", ErrBuildQuery, err)
	}
	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: replaceOperatingDays - execute delete: %v", ErrExecQuery, err)
	}

	for _, day := range days {
		query, args, err := psqlbuilder.Insert("estabelecimento_dias_funcionamento").
			Columns("estabelecimento_id", "dia_semana_id").
			Values(
				venueID,
				squirrel.Expr("(SELECT id FROM dias_semana WHERE abreviacao = ?)", string(day)),
			).
			ToSql()
		if err != nil {
			return fmt.Errorf("%w: replaceOperatingDays - build insert query: %v", ErrBuildQuery, err)
		}
		if _, err := executor.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: replaceOperatingDays - execute insert for %s: %v", ErrExecQuery, day, err)
		}
	}

	return nil
}

func (r *Repository) replaceAmenities(ctx context.Context, executor DBExecutor, venueID int64, amenities domain.AmenitySet) error {
	query, args, err := psqlbuilder.Delete("estabelecimento_infraestrutura").
		Where(squirrel.Eq{"estabelecimento_id": venueID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: replaceAmenities - build delete query: %v", ErrBuildQuery, err)
	}
	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: replaceAmenities - execute delete: %v", ErrExecQuery, err)
	}

	for name, available := range amenities {
		query, args, err := psqlbuilder.Insert("estabelecimento_infraestrutura").
			Columns("estabelecimento_id", "infraestrutura_id", "disponivel").
			Values(
				venueID,
				squirrel.Expr("(SELECT id FROM tipos_infraestrutura WHERE nome = ?)", string(name)),
				available,
			).
			ToSql()
		if err != nil {
			return fmt.Errorf("%w: replaceAmenities - build insert query: %v", ErrBuildQuery, err)
		}
		if _, err := executor.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: replaceAmenities - execute insert for %s: %v", ErrExecQuery, name, err)
		}
	}

	return nil
}

// joinWeekdays формирует денормализованное текстовое поле
// dias_funcionamento ("dom,seg,ter"), сохраняемое вместе со строками связи
func joinWeekdays(days []domain.Weekday) string {
	parts := make([]string, len(days))
	for i, d := range days {
		parts[i] = string(d)
	}
	return strings.Join(parts, ",")
}
