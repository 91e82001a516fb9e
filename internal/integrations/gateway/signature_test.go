package gateway

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifySignature(t *testing.T) {
	body := []byte(`{"eventType":"PAYMENT_CAPTURED","transactionId":"txn-1"}`)
	sig := Sign("whsec", body)

	assert.NoError(t, VerifySignature("whsec", body, sig))
	assert.NoError(t, VerifySignature("whsec", body, " "+sig+" "))
	assert.ErrorIs(t, VerifySignature("other", body, sig), ErrInvalidSignature)
	assert.ErrorIs(t, VerifySignature("whsec", append(body, ' '), sig), ErrInvalidSignature)
	assert.ErrorIs(t, VerifySignature("whsec", body, "zz"), ErrInvalidSignature)
	assert.ErrorIs(t, VerifySignature("whsec", body, ""), ErrInvalidSignature)
	assert.ErrorIs(t, VerifySignature("", body, sig), ErrInvalidSignature)
}

func TestParseWebhook(t *testing.T) {
	body := []byte(`{"eventType":"PAYMENT_REFUNDED","transactionId":"txn-9","conversationId":"c-9","occurredAt":"2025-07-01T10:00:00Z"}`)

	event, err := ParseWebhook("whsec", body, Sign("whsec", body))
	require.NoError(t, err)
	assert.Equal(t, EventPaymentRefunded, event.EventType)
	assert.Equal(t, "txn-9", event.TransactionID)
	assert.Equal(t, 2025, event.OccurredAt.Year())
}

func TestParseWebhook_Invalid(t *testing.T) {
	cases := map[string][]byte{
		"not json":       []byte(`{`),
		"no transaction": []byte(`{"eventType":"PAYMENT_CAPTURED"}`),
		"unknown event":  []byte(`{"eventType":"PAYMENT_EXPLODED","transactionId":"t"}`),
	}

	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseWebhook("whsec", body, Sign("whsec", body))
			assert.ErrorIs(t, err, ErrInvalidEvent)
		})
	}

	_, err := ParseWebhook("whsec", []byte(`{}`), "deadbeef")
	assert.ErrorIs(t, err, ErrInvalidSignature)
}
