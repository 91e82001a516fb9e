package gateway

import "time"

// Статусы синхронного ответа шлюза
const (
	StatusSuccess = "success"
	StatusFailure = "failure"
)

// Типы асинхронных уведомлений шлюза
const (
	EventPaymentCaptured  = "PAYMENT_CAPTURED"
	EventPaymentCancelled = "PAYMENT_CANCELLED"
	EventPaymentRefunded  = "PAYMENT_REFUNDED"
)

// SignatureHeader заголовок с HMAC-подписью тела запроса
const SignatureHeader = "X-Gateway-Signature"

// Buyer данные плательщика
type Buyer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// AuthorizeRequest запрос авторизации платежа
// CardToken - токен карты, выданный платежной формой шлюза; данные карты сервис не получает
type AuthorizeRequest struct {
	ConversationID string `json:"conversationId"`
	Reference      string `json:"reference"`
	AmountMinor    int64  `json:"amount"`
	Currency       string `json:"currency"`
	Installments   int    `json:"installments"`
	CardToken      string `json:"cardToken"`
	Buyer          Buyer  `json:"buyer"`
}

// AuthorizeResponse ответ шлюза на авторизацию
type AuthorizeResponse struct {
	Status         string `json:"status"`
	TransactionID  string `json:"transactionId"`
	ConversationID string `json:"conversationId"`
	ErrorCode      string `json:"errorCode,omitempty"`
	ErrorMessage   string `json:"errorMessage,omitempty"`
}

// IsSuccess возвращает true, если платеж авторизован
func (r *AuthorizeResponse) IsSuccess() bool {
	return r.Status == StatusSuccess
}

// WebhookEvent асинхронное уведомление шлюза о смене статуса платежа
type WebhookEvent struct {
	EventType      string    `json:"eventType"`
	TransactionID  string    `json:"transactionId"`
	ConversationID string    `json:"conversationId"`
	OccurredAt     time.Time `json:"occurredAt"`
}

// ErrorResponse модель ошибки от шлюза
type ErrorResponse struct {
	Code    string `json:"errorCode"`
	Message string `json:"errorMessage"`
}
