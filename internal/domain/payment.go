package domain

import "time"

// PaymentStatus статус платежа в платежном шлюзе
type PaymentStatus string

const (
	PaymentPending    PaymentStatus = "PENDING"
	PaymentAuthorized PaymentStatus = "AUTHORIZED"
	PaymentCaptured   PaymentStatus = "CAPTURED"
	PaymentDeclined   PaymentStatus = "DECLINED"
	PaymentCancelled  PaymentStatus = "CANCELLED"
	PaymentRefunded   PaymentStatus = "REFUNDED"
)

// Payment платеж по бронированию (связь 1:1)
type Payment struct {
	ID            int64
	ReservationID int64
	AmountCents   int64
	Currency      string
	Installments  int

	// ConversationID наш идентификатор операции, передается шлюзу как ключ идемпотентности
	ConversationID       string
	GatewayTransactionID *string

	Status          PaymentStatus
	FailureReason   *string
	WebhookReceived bool

	AuthorizedAt *time.Time
	CapturedAt   *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsFinal возвращает true, если платеж больше не изменится
func (p *Payment) IsFinal() bool {
	return p.Status == PaymentDeclined || p.Status == PaymentCancelled || p.Status == PaymentRefunded
}

// IsValid проверяет, что статус известен
func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentPending, PaymentAuthorized, PaymentCaptured, PaymentDeclined, PaymentCancelled, PaymentRefunded:
		return true
	}
	return false
}
