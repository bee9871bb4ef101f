package repository

import (
	"time"

	"github.com/hotel-desk/service-booking/internal/domain/booking"
	"github.com/hotel-desk/service-booking/internal/domain/calendar"
	"github.com/hotel-desk/service-booking/internal/domain/client"
	"github.com/hotel-desk/service-booking/internal/domain/hotel"
	"github.com/hotel-desk/service-booking/internal/domain/room"
)

// Every table carries a position column so that GetAll returns records in the
// order SaveAll received them.

// HotelModel is the GORM model for the hotels table.
type HotelModel struct {
	ID          int64  `gorm:"primaryKey;autoIncrement:false"`
	Position    int    `gorm:"not null;index"`
	Name        string `gorm:"not null;size:200"`
	City        string `gorm:"not null;size:100"`
	Address     string `gorm:"not null;size:300"`
	Description string `gorm:"type:text"`
}

// TableName returns the table name for the GORM model.
func (HotelModel) TableName() string { return "hotels" }

// RoomModel is the GORM model for the rooms table.
type RoomModel struct {
	ID            int64   `gorm:"primaryKey;autoIncrement:false"`
	Position      int     `gorm:"not null;index"`
	HotelID       int64   `gorm:"not null;index"`
	Number        string  `gorm:"not null;size:20"`
	Capacity      int     `gorm:"not null"`
	PricePerNight float64 `gorm:"not null;type:double precision"`
}

// TableName returns the table name for the GORM model.
func (RoomModel) TableName() string { return "rooms" }

// ClientModel is the GORM model for the clients table.
type ClientModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement:false"`
	Position  int    `gorm:"not null;index"`
	FirstName string `gorm:"not null;size:100"`
	LastName  string `gorm:"not null;size:100"`
	Phone     string `gorm:"size:50"`
	Email     string `gorm:"size:200"`
}

// TableName returns the table name for the GORM model.
func (ClientModel) TableName() string { return "clients" }

// BookingModel is the GORM model for the bookings table.
type BookingModel struct {
	ID          int64     `gorm:"primaryKey;autoIncrement:false"`
	Position    int       `gorm:"not null;index"`
	HotelID     int64     `gorm:"not null;index"`
	RoomID      int64     `gorm:"not null;index"`
	ClientID    int64     `gorm:"not null;index"`
	CheckIn     time.Time `gorm:"not null;type:date"`
	CheckOut    time.Time `gorm:"not null;type:date"`
	Status      string    `gorm:"not null;size:20;index"`
	RequestText string    `gorm:"type:text"`
}

// TableName returns the table name for the GORM model.
func (BookingModel) TableName() string { return "bookings" }

// AllModels lists the models for auto-migration.
func AllModels() []any {
	return []any{&HotelModel{}, &RoomModel{}, &ClientModel{}, &BookingModel{}}
}

// --- Conversion Helpers ---

func toHotelModel(h hotel.Hotel, position int) HotelModel {
	return HotelModel{
		ID:          h.ID,
		Position:    position,
		Name:        h.Name,
		City:        h.City,
		Address:     h.Address,
		Description: h.Description,
	}
}

func toDomainHotel(m HotelModel) (hotel.Hotel, error) {
	return hotel.Hotel{
		ID:          m.ID,
		Name:        m.Name,
		City:        m.City,
		Address:     m.Address,
		Description: m.Description,
	}, nil
}

func toRoomModel(r room.Room, position int) RoomModel {
	return RoomModel{
		ID:            r.ID,
		Position:      position,
		HotelID:       r.HotelID,
		Number:        r.Number,
		Capacity:      r.Capacity,
		PricePerNight: r.PricePerNight,
	}
}

func toDomainRoom(m RoomModel) (room.Room, error) {
	return room.Room{
		ID:            m.ID,
		HotelID:       m.HotelID,
		Number:        m.Number,
		Capacity:      m.Capacity,
		PricePerNight: m.PricePerNight,
	}, nil
}

func toClientModel(c client.Client, position int) ClientModel {
	return ClientModel{
		ID:        c.ID,
		Position:  position,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Phone:     c.Phone,
		Email:     c.Email,
	}
}

func toDomainClient(m ClientModel) (client.Client, error) {
	return client.Client{
		ID:        m.ID,
		FirstName: m.FirstName,
		LastName:  m.LastName,
		Phone:     m.Phone,
		Email:     m.Email,
	}, nil
}

func toBookingModel(b booking.Booking, position int) BookingModel {
	return BookingModel{
		ID:          b.ID,
		Position:    position,
		HotelID:     b.HotelID,
		RoomID:      b.RoomID,
		ClientID:    b.ClientID,
		CheckIn:     b.CheckIn.Time(),
		CheckOut:    b.CheckOut.Time(),
		Status:      string(b.Status),
		RequestText: b.RequestText,
	}
}

func toDomainBooking(m BookingModel) (booking.Booking, error) {
	status, err := booking.ParseBookingStatus(m.Status)
	if err != nil {
		return booking.Booking{}, err
	}
	return booking.Booking{
		ID:          m.ID,
		HotelID:     m.HotelID,
		RoomID:      m.RoomID,
		ClientID:    m.ClientID,
		CheckIn:     calendar.Of(m.CheckIn),
		CheckOut:    calendar.Of(m.CheckOut),
		Status:      status,
		RequestText: m.RequestText,
	}, nil
}
