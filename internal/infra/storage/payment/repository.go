package payment

import (
	"context"
	"database/sql"
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
	tableName = "payments"

	// uniqueViolation код ошибки PostgreSQL для нарушения уникальности
	uniqueViolation = "23505"
)

var columns = []string{
	"id",
	"reservation_id",
	"amount_cents",
	"currency",
	"installments",
	"conversation_id",
	"gateway_transaction_id",
	"status",
	"failure_reason",
	"webhook_received",
	"authorized_at",
	"captured_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий платежей
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория платежей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает платеж в статусе PENDING
// Уникальный индекс по reservation_id гарантирует не более одного платежа на бронирование
func (r *Repository) Create(ctx context.Context, p *domain.Payment) (*domain.Payment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(tableName).
		Columns(
			"reservation_id",
			"amount_cents",
			"currency",
			"installments",
			"conversation_id",
			"status",
		).
		Values(
			p.ReservationID,
			p.AmountCents,
			p.Currency,
			p.Installments,
			p.ConversationID,
			p.Status,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, ErrPaymentExists
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return p, nil
}

// GetByReservationID получает платеж бронирования
func (r *Repository) GetByReservationID(ctx context.Context, reservationID int64) (*domain.Payment, error) {
	return r.getOne(ctx, "GetByReservationID", squirrel.Eq{"reservation_id": reservationID})
}

// GetByGatewayTransactionID получает платеж по идентификатору транзакции шлюза
// Внутри транзакции строка блокируется (FOR UPDATE), чтобы параллельные вебхуки обрабатывались по очереди
func (r *Repository) GetByGatewayTransactionID(ctx context.Context, transactionID string) (*domain.Payment, error) {
	return r.getOne(ctx, "GetByGatewayTransactionID", squirrel.Eq{"gateway_transaction_id": transactionID})
}

func (r *Repository) getOne(ctx context.Context, op string, where squirrel.Sqlizer) (*domain.Payment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From(tableName).
		Where(where)

	if dbmetrics.CanLockRows(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	var p domain.Payment
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&p.ID,
		&p.ReservationID,
		&p.AmountCents,
		&p.Currency,
		&p.Installments,
		&p.ConversationID,
		&p.GatewayTransactionID,
		&p.Status,
		&p.FailureReason,
		&p.WebhookReceived,
		&p.AuthorizedAt,
		&p.CapturedAt,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPaymentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan payment: %v", ErrScanRow, op, err)
	}

	return &p, nil
}

// MarkAuthorized фиксирует успешную авторизацию в шлюзе
func (r *Repository) MarkAuthorized(ctx context.Context, id int64, transactionID string, at time.Time) error {
	return r.update(ctx, "MarkAuthorized", id, map[string]interface{}{
		"status":                 domain.PaymentAuthorized,
		"gateway_transaction_id": transactionID,
		"authorized_at":          at,
	})
}

// MarkDeclined фиксирует отказ шлюза с причиной
func (r *Repository) MarkDeclined(ctx context.Context, id int64, transactionID *string, reason string) error {
	return r.update(ctx, "MarkDeclined", id, map[string]interface{}{
		"status":                 domain.PaymentDeclined,
		"gateway_transaction_id": transactionID,
		"failure_reason":         reason,
	})
}

// ApplyWebhook применяет асинхронное уведомление шлюза и выставляет webhook_received
// Условие webhook_received = FALSE делает повторное применение невозможным
// Возвращает false, если уведомление уже было применено ранее
func (r *Repository) ApplyWebhook(ctx context.Context, id int64, status domain.PaymentStatus, at time.Time) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update(tableName).
		Set("status", status).
		Set("webhook_received", true).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "webhook_received": false})

	if status == domain.PaymentCaptured {
		updateBuilder = updateBuilder.Set("captured_at", at)
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: ApplyWebhook - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("%w: ApplyWebhook - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: ApplyWebhook - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected == 1, nil
}

func (r *Repository) update(ctx context.Context, op string, id int64, values map[string]interface{}) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(tableName).
		SetMap(values).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %s - build update query: %v", ErrBuildQuery, op, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute update: %v", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}

	if rowsAffected == 0 {
		return ErrPaymentNotFound
	}

	return nil
}
