package get_availability

import (
	"time"

	"github.com/m04kA/BeachClub-ReservationService/internal/domain"
)

// Request модель запроса доступности кабины
type Request struct {
	CabinID int64     // ID кабины
	Date    time.Time // Календарная дата (учитываются только год, месяц и день)
}

// Response сетка слотов кабины на день
type Response struct {
	CabinID int64
	Date    time.Time     // Полночь запрошенного дня в часовом поясе клуба
	Closed  bool          // Клуб закрыт в этот день
	Slots   []domain.Slot // Все слоты рабочего дня в хронологическом порядке
}
