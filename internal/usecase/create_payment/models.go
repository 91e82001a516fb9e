package create_payment

import "github.com/m04kA/BeachClub-ReservationService/internal/domain"

// Request модель запроса на оплату бронирования
// CardToken - токен карты от платежной формы шлюза; номер карты сервис не принимает
type Request struct {
	ReservationID int64
	CardToken     string
	Installments  int
}

// Response результат авторизации
type Response struct {
	Payment           *domain.Payment
	ReservationStatus domain.ReservationStatus
}

// DeclineReason текст отказа шлюза, сохраняемый в платеже
type DeclineReason struct {
	Code    string
	Message string
}

func (d DeclineReason) String() string {
	if d.Code == "" {
		return d.Message
	}
	return d.Code + ": " + d.Message
}
