package models

import (
	"time"

	"github.com/supasport/booking-service/internal/domain"
	"github.com/supasport/booking-service/pkg/types"
)

// Request модели

// CreateVenueRequest запрос на регистрацию площадки
type CreateVenueRequest struct {
	OwnerID             int64           `json:"ownerId"`
	Name                string          `json:"name"`
	SportType           string          `json:"sportType"`
	City                string          `json:"city"`
	PostalCode          string          `json:"postalCode"`
	OpeningTime         string          `json:"openingTime"` // "08:00"
	ClosingTime         string          `json:"closingTime"` // "22:00"
	SlotDurationMinutes int             `json:"slotDurationMinutes"`
	PricePerSlot        float64         `json:"pricePerSlot"`
	PixKey              *string         `json:"pixKey,omitempty"`
	OperatingDays       []string        `json:"operatingDays"` // ["dom","seg",...]
	Amenities           map[string]bool `json:"amenities"`
}

// UpdateVenueRequest запрос на обновление площадки
type UpdateVenueRequest struct {
	UserID int64 `json:"userId"`
	CreateVenueRequest
}

// ListVenuesRequest запрос на поиск площадок
type ListVenuesRequest struct {
	NameQuery string
	City      *string
	Limit     uint64
}

// Response модели

// VenueResponse ответ с данными площадки
type VenueResponse struct {
	ID                  int64           `json:"id"`
	OwnerID             int64           `json:"ownerId"`
	Name                string          `json:"name"`
	SportType           string          `json:"sportType"`
	City                string          `json:"city"`
	PostalCode          string          `json:"postalCode"`
	OpeningTime         string          `json:"openingTime"`
	ClosingTime         string          `json:"closingTime"`
	SlotDurationMinutes int             `json:"slotDurationMinutes"`
	PricePerSlot        float64         `json:"pricePerSlot"`
	AcceptsPix          bool            `json:"acceptsPix"`
	OperatingDays       []string        `json:"operatingDays"`
	Amenities           map[string]bool `json:"amenities"`
	DayImageURL         *string         `json:"dayImageUrl,omitempty"`
	NightImageURL       *string         `json:"nightImageUrl,omitempty"`
	CreatedAt           string          `json:"createdAt"`
	UpdatedAt           string          `json:"updatedAt"`
}

// VenueListResponse ответ со списком площадок
type VenueListResponse struct {
	Venues []*VenueResponse `json:"venues"`
}

// UploadImageResponse ответ на загрузку изображения
type UploadImageResponse struct {
	URL string `json:"url"`
}

// Converters

// ToDomainVenue конвертирует запрос в доменную модель
func (r *CreateVenueRequest) ToDomainVenue() (*domain.Venue, error) {
	opening, err := types.NewTimeStringFromString(r.OpeningTime)
	if err != nil {
		return nil, err
	}
	closing, err := types.NewTimeStringFromString(r.ClosingTime)
	if err != nil {
		return nil, err
	}

	days := make([]domain.Weekday, len(r.OperatingDays))
	for i, d := range r.OperatingDays {
		days[i] = domain.Weekday(d)
	}

	amenities := make(domain.AmenitySet, len(r.Amenities))
	for name, available := range r.Amenities {
		amenities[domain.Amenity(name)] = available
	}

	return &domain.Venue{
		OwnerID:             r.OwnerID,
		Name:                r.Name,
		SportType:           r.SportType,
		City:                r.City,
		PostalCode:          r.PostalCode,
		OpeningTime:         opening,
		ClosingTime:         closing,
		SlotDurationMinutes: r.SlotDurationMinutes,
		PricePerSlot:        r.PricePerSlot,
		PixKey:              r.PixKey,
		OperatingDays:       days,
		Amenities:           amenities,
	}, nil
}

// FromDomainVenue конвертирует доменную модель в ответ
func FromDomainVenue(v *domain.Venue) *VenueResponse {
	days := make([]string, len(v.OperatingDays))
	for i, d := range v.OperatingDays {
		days[i] = string(d)
	}

	amenities := make(map[string]bool, len(v.Amenities))
	for name, available := range v.Amenities {
		amenities[string(name)] = available
	}

	return &VenueResponse{
		ID:                  v.ID,
		OwnerID:             v.OwnerID,
		Name:                v.Name,
		SportType:           v.SportType,
		City:                v.City,
		PostalCode:          v.PostalCode,
		OpeningTime:         v.OpeningTime.String(),
		ClosingTime:         v.ClosingTime.String(),
		SlotDurationMinutes: v.SlotDuration(),
		PricePerSlot:        v.PricePerSlot,
		AcceptsPix:          v.AcceptsPix(),
		OperatingDays:       days,
		Amenities:           amenities,
		DayImageURL:         v.DayImageURL,
		NightImageURL:       v.NightImageURL,
		CreatedAt:           v.CreatedAt.Format(time.RFC3339),
		UpdatedAt:           v.UpdatedAt.Format(time.RFC3339),
	}
}

// FromDomainVenueList конвертирует список доменных моделей в ответ
func FromDomainVenueList(venues []*domain.Venue) *VenueListResponse {
	out := make([]*VenueResponse, len(venues))
	for i, v := range venues {
		out[i] = FromDomainVenue(v)
	}
	return &VenueListResponse{Venues: out}
}
