package create_payment

import (
	"fmt"
	"strings"

	"github.com/m04kA/BeachClub-ReservationService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ReservationID <= 0 {
		return fmt.Errorf("%w: reservationID must be positive", ErrInvalidInput)
	}

	if strings.TrimSpace(req.CardToken) == "" {
		return fmt.Errorf("%w: cardToken is required", ErrInvalidInput)
	}

	if req.Installments < domain.MinInstallments || req.Installments > domain.MaxInstallments {
		return fmt.Errorf("%w: installments must be between %d and %d",
			ErrInvalidInput, domain.MinInstallments, domain.MaxInstallments)
	}

	return nil
}
