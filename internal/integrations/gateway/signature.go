package gateway

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
)

// Sign вычисляет hex(HMAC-SHA256(secret, body))
func Sign(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifySignature сравнивает подпись из заголовка с ожидаемой за постоянное время
func VerifySignature(secret string, body []byte, signature string) error {
	if secret == "" || signature == "" {
		return ErrInvalidSignature
	}

	got, err := hex.DecodeString(strings.TrimSpace(signature))
	if err != nil {
		return ErrInvalidSignature
	}

	want, _ := hex.DecodeString(Sign(secret, body))
	if !hmac.Equal(got, want) {
		return ErrInvalidSignature
	}

	return nil
}

// ParseWebhook проверяет подпись и разбирает тело уведомления
func ParseWebhook(secret string, body []byte, signature string) (*WebhookEvent, error) {
	if err := VerifySignature(secret, body, signature); err != nil {
		return nil, err
	}

	var event WebhookEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEvent, err)
	}

	if event.TransactionID == "" {
		return nil, fmt.Errorf("%w: missing transactionId", ErrInvalidEvent)
	}

	switch event.EventType {
	case EventPaymentCaptured, EventPaymentCancelled, EventPaymentRefunded:
	default:
		return nil, fmt.Errorf("%w: unknown eventType %q", ErrInvalidEvent, event.EventType)
	}

	return &event, nil
}
