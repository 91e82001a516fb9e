package models

import (
	"time"

	"github.com/m04kA/BeachClub-ReservationService/internal/domain"
)

// Request модели

// CreateCabinRequest данные новой кабины
type CreateCabinRequest struct {
	Name             string  `json:"name" validate:"required"`
	Description      *string `json:"description,omitempty"`
	Capacity         int     `json:"capacity" validate:"gt=0"`
	HourlyPriceCents int64   `json:"hourlyPriceCents" validate:"gt=0"`
	IsActive         *bool   `json:"isActive,omitempty"` // По умолчанию true
}

// UpdateCabinRequest частичное обновление кабины (nil - поле не меняется)
type UpdateCabinRequest struct {
	Name             *string `json:"name,omitempty"`
	Description      *string `json:"description,omitempty"`
	Capacity         *int    `json:"capacity,omitempty"`
	HourlyPriceCents *int64  `json:"hourlyPriceCents,omitempty"`
	IsActive         *bool   `json:"isActive,omitempty"`
}

// Response модели

// CabinResponse ответ с данными кабины
type CabinResponse struct {
	ID               int64     `json:"id"`
	Name             string    `json:"name"`
	Description      *string   `json:"description,omitempty"`
	Capacity         int       `json:"capacity"`
	HourlyPriceCents int64     `json:"hourlyPriceCents"`
	IsActive         bool      `json:"isActive"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// CabinListResponse ответ со списком кабин
type CabinListResponse struct {
	Cabins []CabinResponse `json:"cabins"`
}

// Методы конвертации

// ToDomain конвертирует request в domain модель
func (r *CreateCabinRequest) ToDomain() *domain.Cabin {
	isActive := true
	if r.IsActive != nil {
		isActive = *r.IsActive
	}

	return &domain.Cabin{
		Name:             r.Name,
		Description:      r.Description,
		Capacity:         r.Capacity,
		HourlyPriceCents: r.HourlyPriceCents,
		IsActive:         isActive,
	}
}

// ApplyTo переносит заданные поля на существующую кабину
func (r *UpdateCabinRequest) ApplyTo(c *domain.Cabin) {
	if r.Name != nil {
		c.Name = *r.Name
	}
	if r.Description != nil {
		c.Description = r.Description
	}
	if r.Capacity != nil {
		c.Capacity = *r.Capacity
	}
	if r.HourlyPriceCents != nil {
		c.HourlyPriceCents = *r.HourlyPriceCents
	}
	if r.IsActive != nil {
		c.IsActive = *r.IsActive
	}
}

// FromDomainCabin конвертирует domain модель в DTO
func FromDomainCabin(c *domain.Cabin) *CabinResponse {
	if c == nil {
		return nil
	}

	return &CabinResponse{
		ID:               c.ID,
		Name:             c.Name,
		Description:      c.Description,
		Capacity:         c.Capacity,
		HourlyPriceCents: c.HourlyPriceCents,
		IsActive:         c.IsActive,
		CreatedAt:        c.CreatedAt,
		UpdatedAt:        c.UpdatedAt,
	}
}

// FromDomainCabinList конвертирует список domain моделей в DTO
func FromDomainCabinList(cabins []*domain.Cabin) *CabinListResponse {
	resp := &CabinListResponse{
		Cabins: make([]CabinResponse, 0, len(cabins)),
	}

	for _, c := range cabins {
		if dto := FromDomainCabin(c); dto != nil {
			resp.Cabins = append(resp.Cabins, *dto)
		}
	}

	return resp
}
