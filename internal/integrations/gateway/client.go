package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Observer получатель метрик запросов к шлюзу
type Observer interface {
	ObserveGatewayRequest(operation string, seconds float64)
}

// Client клиент платежного шлюза
type Client struct {
	baseURL    string
	apiKey     string
	secretKey  string
	httpClient *http.Client
	log        Logger
	observer   Observer
}

// NewClient создает новый экземпляр клиента шлюза; observer может быть nil
func NewClient(baseURL, apiKey, secretKey string, timeout time.Duration, log Logger, observer Observer) *Client {
	return &Client{
		baseURL:   baseURL,
		apiKey:    apiKey,
		secretKey: secretKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log:      log,
		observer: observer,
	}
}

// Authorize синхронно авторизует платеж по токену карты
// Отказ банка возвращается как ответ со статусом failure, а не как ошибка
func (c *Client) Authorize(ctx context.Context, req *AuthorizeRequest) (*AuthorizeResponse, error) {
	start := time.Now()
	defer func() {
		if c.observer != nil {
			c.observer.ObserveGatewayRequest("authorize", time.Since(start).Seconds())
		}
	}()

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	url := fmt.Sprintf("%s/v1/payments/authorize", c.baseURL)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	httpReq.Header.Set("Idempotency-Key", req.ConversationID)
	httpReq.Header.Set(SignatureHeader, Sign(c.secretKey, body))

	c.log.Info("Gateway authorize: conversation_id=%s, reference=%s, amount=%d %s, installments=%d",
		req.ConversationID, req.Reference, req.AmountMinor, req.Currency, req.Installments)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		// Продолжаем обработку
	case resp.StatusCode >= http.StatusInternalServerError:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: status code %d: %s", ErrUnavailable, resp.StatusCode, string(body))
	default:
		var errResp ErrorResponse
		_ = json.NewDecoder(resp.Body).Decode(&errResp)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s %s",
			ErrInvalidResponse, resp.StatusCode, errResp.Code, errResp.Message)
	}

	var result AuthorizeResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	if result.Status != StatusSuccess && result.Status != StatusFailure {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidResponse, result.Status)
	}

	if result.IsSuccess() && result.TransactionID == "" {
		return nil, fmt.Errorf("%w: missing transaction id", ErrInvalidResponse)
	}

	return &result, nil
}
