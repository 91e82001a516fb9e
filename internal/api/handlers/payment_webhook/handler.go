package payment_webhook

import (
	"io"
	"net/http"

	"github.com/m04kA/BeachClub-ReservationService/internal/api/handlers"
	"github.com/m04kA/BeachClub-ReservationService/internal/usecase/process_webhook"
)

// SignatureHeader заголовок с hex HMAC-SHA256 подписью тела
const SignatureHeader = "X-Gateway-Signature"

const maxBodySize = 64 << 10

type Handler struct {
	useCase WebhookUseCase
	logger  Logger
}

func NewHandler(useCase WebhookUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/payments/webhook
// Отвечает 200 {success:true} на любой исход обработки; ошибки только логируются.
// Паника не превращается в 200: ее обрабатывает middleware.Recovery
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
	if err != nil {
		h.logger.Warn("POST /payments/webhook - Failed to read body: %v", err)
		handlers.RespondJSON(w, http.StatusOK, nil)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &process_webhook.Request{
		Body:      body,
		Signature: r.Header.Get(SignatureHeader),
	})
	if err != nil {
		h.logger.Warn("POST /payments/webhook - Event ignored: outcome=%s, error=%v", outcomeOf(result), err)
		handlers.RespondJSON(w, http.StatusOK, nil)
		return
	}

	h.logger.Info("POST /payments/webhook - Event processed: event=%s, transaction_id=%s, outcome=%s",
		result.EventType, result.TransactionID, result.Outcome)
	handlers.RespondJSON(w, http.StatusOK, nil)
}

func outcomeOf(result *process_webhook.Result) string {
	if result == nil {
		return process_webhook.OutcomeError
	}
	return result.Outcome
}
