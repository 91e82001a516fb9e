package reservation

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/BeachClub-ReservationService/internal/domain"
	"github.com/m04kA/BeachClub-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/BeachClub-ReservationService/pkg/psqlbuilder"
)

const tableName = "reservations"

var columns = []string{
	"id",
	"cabin_id",
	"customer_name",
	"customer_email",
	"customer_phone",
	"check_in",
	"check_out",
	"status",
	"total_price_cents",
	"notes",
	"cancellation_reason",
	"checked_in_at",
	"checked_out_at",
	"cancelled_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями кабин
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
// Если в контексте передана активная транзакция, использует её
func (r *Repository) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(tableName).
		Columns(
			"cabin_id",
			"customer_name",
			"customer_email",
			"customer_phone",
			"check_in",
			"check_out",
			"status",
			"total_price_cents",
			"notes",
		).
		Values(
			res.CabinID,
			res.CustomerName,
			res.CustomerEmail,
			res.CustomerPhone,
			res.CheckIn,
			res.CheckOut,
			res.Status,
			res.TotalPriceCents,
			res.Notes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&res.ID, &res.CreatedAt, &res.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	return res, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From(tableName).
		Where(squirrel.Eq{"id": id})

	// Внутри транзакции блокируем строку до смены статуса
	if dbmetrics.CanLockRows(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	res, err := scanReservation(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan reservation: %w", ErrScanRow, err)
	}

	return res, nil
}

// List получает бронирования с фильтрацией
//
// Примеры использования:
//
// 1. Активные бронирования кабины на день (для расчета доступности):
//
//	filter := domain.ReservationFilter{CabinID: &cabinID, From: &dayStart, To: &dayEnd, OnlyActive: true}
//
// 2. Все подтвержденные бронирования:
//
//	status := domain.StatusConfirmed
//	filter := domain.ReservationFilter{Status: &status}
//
// Внутри транзакции с фильтром по кабине строки блокируются (FOR UPDATE),
// чтобы параллельное бронирование той же кабины ждало завершения текущего
func (r *Repository) List(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).From(tableName)

	if filter.CabinID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"cabin_id": *filter.CabinID})
	}

	// Пересечение с периодом [From, To): бронирование заканчивается после From и начинается до To
	if filter.From != nil {
		selectBuilder = selectBuilder.Where(squirrel.Gt{"check_out": *filter.From})
	}
	if filter.To != nil {
		selectBuilder = selectBuilder.Where(squirrel.Lt{"check_in": *filter.To})
	}

	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	} else if filter.OnlyActive {
		active := make([]string, len(domain.ActiveStatuses))
		for i, s := range domain.ActiveStatuses {
			active[i] = string(s)
		}
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": active})
	}

	selectBuilder = selectBuilder.OrderBy("check_in ASC", "id ASC")

	if filter.Limit > 0 {
		selectBuilder = selectBuilder.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		selectBuilder = selectBuilder.Offset(filter.Offset)
	}

	if dbmetrics.CanLockRows(ctx) && filter.CabinID != nil {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	reservations := make([]*domain.Reservation, 0)
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		reservations = append(reservations, res)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return reservations, nil
}

// UpdateStatus переводит бронирование из статуса from в статус to
// Обновление условное: если статус уже изменился, возвращает ErrStatusConflict
// Для CHECKED_IN, COMPLETED и CANCELLED проставляется соответствующая отметка времени
func (r *Repository) UpdateStatus(ctx context.Context, id int64, from, to domain.ReservationStatus) error {
	return r.update(ctx, "UpdateStatus", id, from, to, nil)
}

// Cancel отменяет бронирование с указанием причины
func (r *Repository) Cancel(ctx context.Context, id int64, from domain.ReservationStatus, reason string) error {
	return r.update(ctx, "Cancel", id, from, domain.StatusCancelled, &reason)
}

func (r *Repository) update(
	ctx context.Context,
	op string,
	id int64,
	from, to domain.ReservationStatus,
	reason *string,
) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update(tableName).
		Set("status", to).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "status": from})

	switch to {
	case domain.StatusCheckedIn:
		updateBuilder = updateBuilder.Set("checked_in_at", squirrel.Expr("NOW()"))
	case domain.StatusCompleted:
		updateBuilder = updateBuilder.Set("checked_out_at", squirrel.Expr("NOW()"))
	case domain.StatusCancelled:
		updateBuilder = updateBuilder.Set("cancelled_at", squirrel.Expr("NOW()"))
		if reason != nil && *reason != "" {
			updateBuilder = updateBuilder.Set("cancellation_reason", *reason)
		}
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: %s - build update query: %v", ErrBuildQuery, op, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute update: %w", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}

	if rowsAffected == 0 {
		return ErrStatusConflict
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanReservation(row rowScanner) (*domain.Reservation, error) {
	var res domain.Reservation

	err := row.Scan(
		&res.ID,
		&res.CabinID,
		&res.CustomerName,
		&res.CustomerEmail,
		&res.CustomerPhone,
		&res.CheckIn,
		&res.CheckOut,
		&res.Status,
		&res.TotalPriceCents,
		&res.Notes,
		&res.CancellationReason,
		&res.CheckedInAt,
		&res.CheckedOutAt,
		&res.CancelledAt,
		&res.CreatedAt,
		&res.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &res, nil
}
