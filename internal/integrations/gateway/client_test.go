package gateway

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type recordingObserver struct {
	operations []string
}

func (o *recordingObserver) ObserveGatewayRequest(operation string, seconds float64) {
	o.operations = append(o.operations, operation)
}

func newTestRequest() *AuthorizeRequest {
	return &AuthorizeRequest{
		ConversationID: "conv-1",
		Reference:      "reservation-10",
		AmountMinor:    150000,
		Currency:       "TRY",
		Installments:   3,
		CardToken:      "tok_visa",
		Buyer:          Buyer{Name: "Ayşe", Email: "ayse@example.com", Phone: "+905551112233"},
	}
}

func TestAuthorize_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/payments/authorize", r.URL.Path)
		assert.Equal(t, "Bearer api-key", r.Header.Get("Authorization"))
		assert.Equal(t, "conv-1", r.Header.Get("Idempotency-Key"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.NoError(t, VerifySignature("secret", body, r.Header.Get(SignatureHeader)))

		var req AuthorizeRequest
		require.NoError(t, json.Unmarshal(body, &req))
		assert.Equal(t, int64(150000), req.AmountMinor)
		assert.Equal(t, "tok_visa", req.CardToken)

		_ = json.NewEncoder(w).Encode(AuthorizeResponse{
			Status:         StatusSuccess,
			TransactionID:  "txn-123",
			ConversationID: req.ConversationID,
		})
	}))
	defer srv.Close()

	observer := &recordingObserver{}
	client := NewClient(srv.URL, "api-key", "secret", time.Second, nopLogger{}, observer)

	resp, err := client.Authorize(context.Background(), newTestRequest())
	require.NoError(t, err)
	assert.True(t, resp.IsSuccess())
	assert.Equal(t, "txn-123", resp.TransactionID)
	assert.Equal(t, []string{"authorize"}, observer.operations)
}

func TestAuthorize_DeclineIsNotAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(AuthorizeResponse{
			Status:       StatusFailure,
			ErrorCode:    "10051",
			ErrorMessage: "insufficient funds",
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "k", "s", time.Second, nopLogger{}, nil)

	resp, err := client.Authorize(context.Background(), newTestRequest())
	require.NoError(t, err)
	assert.False(t, resp.IsSuccess())
	assert.Equal(t, "insufficient funds", resp.ErrorMessage)
}

func TestAuthorize_Errors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		wantErr error
	}{
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
			},
			wantErr: ErrUnavailable,
		},
		{
			name: "client error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusUnprocessableEntity)
				_ = json.NewEncoder(w).Encode(ErrorResponse{Code: "E1", Message: "bad token"})
			},
			wantErr: ErrInvalidResponse,
		},
		{
			name: "garbage body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte("not json"))
			},
			wantErr: ErrInvalidResponse,
		},
		{
			name: "success without transaction id",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_ = json.NewEncoder(w).Encode(AuthorizeResponse{Status: StatusSuccess})
			},
			wantErr: ErrInvalidResponse,
		},
		{
			name: "unknown status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_ = json.NewEncoder(w).Encode(AuthorizeResponse{Status: "maybe"})
			},
			wantErr: ErrInvalidResponse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			client := NewClient(srv.URL, "k", "s", time.Second, nopLogger{}, nil)
			_, err := client.Authorize(context.Background(), newTestRequest())
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAuthorize_GatewayDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	client := NewClient(url, "k", "s", time.Second, nopLogger{}, nil)
	_, err := client.Authorize(context.Background(), newTestRequest())
	assert.ErrorIs(t, err, ErrUnavailable)
}
