package domain

import "time"

// Cabin кабина (бунгало) пляжного клуба, сдаваемая почасово
type Cabin struct {
	ID               int64
	Name             string
	Description      *string
	Capacity         int
	HourlyPriceCents int64
	IsActive         bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// PriceFor стоимость аренды на указанную длительность (поминутно от часовой ставки)
func (c *Cabin) PriceFor(d time.Duration) int64 {
	return c.HourlyPriceCents * int64(d/time.Minute) / 60
}
