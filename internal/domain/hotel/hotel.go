package hotel

import (
	"strconv"
	"strings"

	"github.com/hotel-desk/service-booking/internal/domain"
)

// Hotel is a property that owns rooms and receives bookings.
type Hotel struct {
	ID          int64  `json:"id" bson:"id"`
	Name        string `json:"name" bson:"name"`
	City        string `json:"city" bson:"city"`
	Address     string `json:"address" bson:"address"`
	Description string `json:"description" bson:"description"`
}

// NewHotel validates and trims the fields of a new hotel. Name, city and address are required.
func NewHotel(id int64, name, city, address, description string) (Hotel, error) {
	name = strings.TrimSpace(name)
	city = strings.TrimSpace(city)
	address = strings.TrimSpace(address)

	if name == "" {
		return Hotel{}, domain.NewValidationErrorf(domain.ErrEmptyField, "hotel name is required")
	}
	if city == "" {
		return Hotel{}, domain.NewValidationErrorf(domain.ErrEmptyField, "hotel city is required")
	}
	if address == "" {
		return Hotel{}, domain.NewValidationErrorf(domain.ErrEmptyField, "hotel address is required")
	}

	return Hotel{
		ID:          id,
		Name:        name,
		City:        city,
		Address:     address,
		Description: strings.TrimSpace(description),
	}, nil
}

// EntityID implements domain.Entity.
func (h Hotel) EntityID() int64 { return h.ID }

// Matches reports whether the lower-cased keyword occurs in the hotel's text fields.
func (h Hotel) Matches(keyword string) bool {
	text := strings.ToLower(strings.Join([]string{h.Name, h.City, h.Address, h.Description}, " "))
	return strings.Contains(text, keyword)
}

// NotFound builds the error returned when a hotel id does not resolve.
func NotFound(id int64) error {
	return domain.NewNotFoundError("Hotel", strconv.FormatInt(id, 10))
}

// Repository persists the hotel collection.
type Repository = domain.Repository[Hotel]
