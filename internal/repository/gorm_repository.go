package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/hotel-desk/service-booking/internal/domain"
	"github.com/hotel-desk/service-booking/internal/domain/booking"
	"github.com/hotel-desk/service-booking/internal/domain/client"
	"github.com/hotel-desk/service-booking/internal/domain/hotel"
	"github.com/hotel-desk/service-booking/internal/domain/room"
)

const gormBatchSize = 500

// GormRepository is the GORM-based implementation of the whole-collection
// repository. T is the domain record and M its table model.
type GormRepository[T domain.Entity, M any] struct {
	db       *gorm.DB
	name     string
	toModel  func(item T, position int) M
	toDomain func(m M) (T, error)
}

// NewGormHotelRepository creates the hotels repository.
func NewGormHotelRepository(db *gorm.DB) *GormRepository[hotel.Hotel, HotelModel] {
	return &GormRepository[hotel.Hotel, HotelModel]{db: db, name: "hotels", toModel: toHotelModel, toDomain: toDomainHotel}
}

// NewGormRoomRepository creates the rooms repository.
func NewGormRoomRepository(db *gorm.DB) *GormRepository[room.Room, RoomModel] {
	return &GormRepository[room.Room, RoomModel]{db: db, name: "rooms", toModel: toRoomModel, toDomain: toDomainRoom}
}

// NewGormClientRepository creates the clients repository.
func NewGormClientRepository(db *gorm.DB) *GormRepository[client.Client, ClientModel] {
	return &GormRepository[client.Client, ClientModel]{db: db, name: "clients", toModel: toClientModel, toDomain: toDomainClient}
}

// NewGormBookingRepository creates the bookings repository.
func NewGormBookingRepository(db *gorm.DB) *GormRepository[booking.Booking, BookingModel] {
	return &GormRepository[booking.Booking, BookingModel]{db: db, name: "bookings", toModel: toBookingModel, toDomain: toDomainBooking}
}

// GetAll loads every row ordered by position.
func (r *GormRepository[T, M]) GetAll(ctx context.Context) ([]T, error) {
	var models []M
	if err := r.db.WithContext(ctx).Order("position ASC").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", r.name, err)
	}

	items := make([]T, 0, len(models))
	for _, m := range models {
		item, err := r.toDomain(m)
		if err != nil {
			return nil, fmt.Errorf("failed to convert %s row: %w", r.name, err)
		}
		items = append(items, item)
	}
	return items, nil
}

// GetByID retrieves a record by id.
func (r *GormRepository[T, M]) GetByID(ctx context.Context, id int64) (T, bool, error) {
	var zero T
	var model M
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return zero, false, nil
		}
		return zero, false, fmt.Errorf("failed to find %s by ID: %w", r.name, err)
	}

	item, err := r.toDomain(model)
	if err != nil {
		return zero, false, fmt.Errorf("failed to convert %s row: %w", r.name, err)
	}
	return item, true, nil
}

// SaveAll replaces the table contents in one transaction.
func (r *GormRepository[T, M]) SaveAll(ctx context.Context, items []T) error {
	models := make([]M, len(items))
	for i, item := range items {
		models[i] = r.toModel(item, i)
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(new(M)).Error; err != nil {
			return fmt.Errorf("failed to clear %s: %w", r.name, err)
		}
		if len(models) == 0 {
			return nil
		}
		if err := tx.CreateInBatches(models, gormBatchSize).Error; err != nil {
			return fmt.Errorf("failed to insert %s: %w", r.name, err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to save %s: %w", r.name, err)
	}
	return nil
}
