package closeddate

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/BeachClub-ReservationService/internal/domain"
	"github.com/m04kA/BeachClub-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/BeachClub-ReservationService/pkg/psqlbuilder"
)

const (
	tableName       = "closed_dates"
	uniqueViolation = "23505"
)

// Repository репозиторий закрытых дней
// Даты хранятся как 12:00 UTC (domain.NormalizeClosedDate), сравнение идет на равенство
type Repository struct {
	db dbmetrics.DBExecutor
}

func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create закрывает день для бронирований
func (r *Repository) Create(ctx context.Context, cd *domain.ClosedDate) (*domain.ClosedDate, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	cd.Date = domain.NormalizeClosedDate(cd.Date)

	query, args, err := psqlbuilder.Insert(tableName).
		Columns("date", "reason").
		Values(cd.Date, cd.Reason).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&cd.ID, &cd.CreatedAt); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, ErrDuplicateDate
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return cd, nil
}

// IsClosed проверяет, закрыт ли календарный день date
func (r *Repository) IsClosed(ctx context.Context, date time.Time) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		Prefix("SELECT EXISTS (").
		From(tableName).
		Where(squirrel.Eq{"date": domain.NormalizeClosedDate(date)}).
		Suffix(")").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: IsClosed - build select query: %v", ErrBuildQuery, err)
	}

	var closed bool
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&closed); err != nil {
		return false, fmt.Errorf("%w: IsClosed - scan: %v", ErrScanRow, err)
	}

	return closed, nil
}

// List получает закрытые дни, начиная с from (nil - все)
func (r *Repository) List(ctx context.Context, from *time.Time) ([]*domain.ClosedDate, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("id", "date", "reason", "created_at").
		From(tableName).
		OrderBy("date ASC")

	if from != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"date": domain.NormalizeClosedDate(*from)})
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

	dates := make([]*domain.ClosedDate, 0)
	for rows.Next() {
		var cd domain.ClosedDate
		if err := rows.Scan(&cd.ID, &cd.Date, &cd.Reason, &cd.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		cd.Date = cd.Date.UTC()
		dates = append(dates, &cd)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return dates, nil
}

// Delete открывает день обратно
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(tableName).
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
		return ErrClosedDateNotFound
	}

	return nil
}
