package process_webhook

import "github.com/m04kA/BeachClub-ReservationService/internal/domain"

// Итог обработки уведомления (лейбл метрики)
const (
	OutcomeApplied          = "applied"
	OutcomeDuplicate        = "duplicate"
	OutcomeInvalidSignature = "invalid_signature"
	OutcomeInvalidEvent     = "invalid_event"
	OutcomeUnknownPayment   = "unknown_payment"
	OutcomeError            = "error"
)

// Request сырое уведомление шлюза; подпись проверяется по телу без повторной сериализации
type Request struct {
	Body      []byte
	Signature string
}

// Result итог обработки
type Result struct {
	EventType          string
	TransactionID      string
	Outcome            string
	PaymentStatus      domain.PaymentStatus
	ReservationID      int64
	ReservationStatus  domain.ReservationStatus
	ReservationChanged bool
}
