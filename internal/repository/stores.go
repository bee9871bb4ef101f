package repository

import (
	"path/filepath"

	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"

	"github.com/hotel-desk/service-booking/internal/domain/booking"
	"github.com/hotel-desk/service-booking/internal/domain/client"
	"github.com/hotel-desk/service-booking/internal/domain/hotel"
	"github.com/hotel-desk/service-booking/internal/domain/room"
)

// Stores groups the four entity repositories of one storage backend.
type Stores struct {
	Hotels   hotel.Repository
	Rooms    room.Repository
	Clients  client.Repository
	Bookings booking.BookingRepository
}

// NewMemoryStores returns empty in-memory repositories.
func NewMemoryStores() Stores {
	return Stores{
		Hotels:   NewMemoryRepository[hotel.Hotel](),
		Rooms:    NewMemoryRepository[room.Room](),
		Clients:  NewMemoryRepository[client.Client](),
		Bookings: NewMemoryRepository[booking.Booking](),
	}
}

// NewFileStores returns repositories backed by hotels.json, rooms.json,
// clients.json and bookings.json under dir.
func NewFileStores(dir string) Stores {
	file := func(name string) *FileStorage {
		return NewFileStorage(filepath.Join(dir, name+".json"))
	}
	return Stores{
		Hotels:   NewFileRepository[hotel.Hotel](file("hotels")),
		Rooms:    NewFileRepository[room.Room](file("rooms")),
		Clients:  NewFileRepository[client.Client](file("clients")),
		Bookings: NewFileRepository[booking.Booking](file("bookings")),
	}
}

// NewGormStores returns PostgreSQL repositories.
func NewGormStores(db *gorm.DB) Stores {
	return Stores{
		Hotels:   NewGormHotelRepository(db),
		Rooms:    NewGormRoomRepository(db),
		Clients:  NewGormClientRepository(db),
		Bookings: NewGormBookingRepository(db),
	}
}

// NewMongoStores returns MongoDB snapshot repositories.
func NewMongoStores(db *mongo.Database) Stores {
	return Stores{
		Hotels:   NewMongoRepository[hotel.Hotel](db, "hotels"),
		Rooms:    NewMongoRepository[room.Room](db, "rooms"),
		Clients:  NewMongoRepository[client.Client](db, "clients"),
		Bookings: NewMongoRepository[booking.Booking](db, "bookings"),
	}
}
