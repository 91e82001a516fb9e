package process_webhook

import (
	"github.com/m04kA/BeachClub-ReservationService/internal/domain"
	"github.com/m04kA/BeachClub-ReservationService/internal/integrations/gateway"
)

// paymentStatusFor статус платежа, соответствующий событию шлюза
func paymentStatusFor(eventType string) (domain.PaymentStatus, bool) {
	switch eventType {
	case gateway.EventPaymentCaptured:
		return domain.PaymentCaptured, true
	case gateway.EventPaymentCancelled:
		return domain.PaymentCancelled, true
	case gateway.EventPaymentRefunded:
		return domain.PaymentRefunded, true
	}
	return "", false
}

// reservationActionFor действие над бронированием для события
// CAPTURED подтверждает ожидающее бронирование, CANCELLED и REFUNDED отменяют незавершенное
func reservationActionFor(eventType string, res *domain.Reservation) (domain.ReservationAction, bool) {
	switch eventType {
	case gateway.EventPaymentCaptured:
		if res.Status == domain.StatusPending {
			return domain.ActionConfirm, true
		}
	case gateway.EventPaymentCancelled, gateway.EventPaymentRefunded:
		if !res.IsTerminal() {
			return domain.ActionCancel, true
		}
	}
	return "", false
}

func cancellationReason(eventType string) string {
	if eventType == gateway.EventPaymentRefunded {
		return "payment refunded by gateway"
	}
	return "payment cancelled by gateway"
}
