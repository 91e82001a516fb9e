package payment_webhook

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BeachClub-ReservationService/internal/api/middleware"
	"github.com/m04kA/BeachClub-ReservationService/internal/usecase/process_webhook"
)

type fakeUseCase struct {
	got    *process_webhook.Request
	result *process_webhook.Result
	err    error
	panic  bool
}

func (f *fakeUseCase) Execute(_ context.Context, req *process_webhook.Request) (*process_webhook.Result, error) {
	f.got = req
	if f.panic {
		panic("nil map write")
	}
	return f.result, f.err
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func TestHandle_AlwaysRespondsOK(t *testing.T) {
	tests := []struct {
		name   string
		result *process_webhook.Result
		err    error
	}{
		{name: "applied", result: &process_webhook.Result{Outcome: process_webhook.OutcomeApplied}},
		{name: "invalid signature", result: &process_webhook.Result{Outcome: process_webhook.OutcomeInvalidSignature}, err: process_webhook.ErrInvalidSignature},
		{name: "unknown payment", result: &process_webhook.Result{Outcome: process_webhook.OutcomeUnknownPayment}, err: process_webhook.ErrPaymentNotFound},
		{name: "internal error without result", err: errors.New("db down")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &fakeUseCase{result: tt.result, err: tt.err}
			body := `{"eventType":"PAYMENT_CAPTURED","transactionId":"txn-1"}`

			req := httptest.NewRequest(http.MethodPost, "/api/v1/payments/webhook", strings.NewReader(body))
			req.Header.Set(SignatureHeader, "abc123")
			rec := httptest.NewRecorder()

			NewHandler(uc, nopLogger{}).Handle(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
			var resp map[string]interface{}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, true, resp["success"])

			require.NotNil(t, uc.got)
			assert.Equal(t, body, string(uc.got.Body))
			assert.Equal(t, "abc123", uc.got.Signature)
		})
	}
}

func TestHandle_PanicIsNotAcknowledged(t *testing.T) {
	h := middleware.Recovery(nopLogger{})(http.HandlerFunc(NewHandler(&fakeUseCase{panic: true}, nopLogger{}).Handle))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/payments/webhook", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	// Шлюз должен получить 5xx и повторить уведомление
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, false, resp["success"])
}
