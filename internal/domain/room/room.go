package room

import (
	"strconv"
	"strings"

	"github.com/hotel-desk/service-booking/internal/domain"
)

// Room is a bookable unit of a hotel. A room belongs to one hotel for its lifetime.
type Room struct {
	ID            int64   `json:"id" bson:"id"`
	HotelID       int64   `json:"hotel_id" bson:"hotel_id"`
	Number        string  `json:"number" bson:"number"`
	Capacity      int     `json:"capacity" bson:"capacity"`
	PricePerNight float64 `json:"price_per_night" bson:"price_per_night"`
}

// NewRoom validates a new room. The number is a display label and need not be unique.
func NewRoom(id, hotelID int64, number string, capacity int, pricePerNight float64) (Room, error) {
	number = strings.TrimSpace(number)
	if number == "" {
		return Room{}, domain.NewValidationErrorf(domain.ErrEmptyField, "room number is required")
	}
	if capacity <= 0 {
		return Room{}, domain.NewValidationErrorf(domain.ErrInvalidCapacity, "room capacity must be positive, got %d", capacity)
	}
	if pricePerNight <= 0 {
		return Room{}, domain.NewValidationErrorf(domain.ErrInvalidPrice, "room price per night must be positive, got %.2f", pricePerNight)
	}

	return Room{
		ID:            id,
		HotelID:       hotelID,
		Number:        number,
		Capacity:      capacity,
		PricePerNight: pricePerNight,
	}, nil
}

// EntityID implements domain.Entity.
func (r Room) EntityID() int64 { return r.ID }

// BelongsTo reports whether the room is part of the given hotel.
func (r Room) BelongsTo(hotelID int64) bool {
	return r.HotelID == hotelID
}

// NotFound builds the error returned when a room id does not resolve.
func NotFound(id int64) error {
	return domain.NewNotFoundError("Room", strconv.FormatInt(id, 10))
}

// TotalCapacity sums the capacity of rooms.
func TotalCapacity(rooms []Room) int {
	total := 0
	for _, r := range rooms {
		total += r.Capacity
	}
	return total
}

// Repository persists the room collection.
type Repository = domain.Repository[Room]
