package application

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/hotel-desk/service-booking/internal/domain"
	hotelDomain "github.com/hotel-desk/service-booking/internal/domain/hotel"
	roomDomain "github.com/hotel-desk/service-booking/internal/domain/room"
)

// CreateRoomRequest is the request DTO for adding a room to a hotel.
type CreateRoomRequest struct {
	Number        string  `json:"number" binding:"required"`
	Capacity      int     `json:"capacity"`
	PricePerNight float64 `json:"price_per_night"`
}

// RoomService implements use cases for the rooms of a hotel.
type RoomService struct {
	mu     sync.Mutex
	repo   roomDomain.Repository
	hotels hotelDomain.Repository
	logger *zap.Logger
}

// NewRoomService creates a new RoomService.
func NewRoomService(repo roomDomain.Repository, hotels hotelDomain.Repository, logger *zap.Logger) *RoomService {
	return &RoomService{repo: repo, hotels: hotels, logger: logger}
}

// AddRoom adds a room to an existing hotel under the next free room id.
func (s *RoomService) AddRoom(ctx context.Context, hotelID int64, req CreateRoomRequest) (roomDomain.Room, error) {
	if err := s.ensureHotel(ctx, hotelID); err != nil {
		return roomDomain.Room{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rooms, save, err := domain.LoadForUpdate(ctx, s.repo)
	if err != nil {
		return roomDomain.Room{}, fmt.Errorf("failed to load rooms: %w", err)
	}

	r, err := roomDomain.NewRoom(domain.NextID(rooms), hotelID, req.Number, req.Capacity, req.PricePerNight)
	if err != nil {
		return roomDomain.Room{}, err
	}

	if err := save(ctx, append(rooms, r)); err != nil {
		return roomDomain.Room{}, fmt.Errorf("failed to save room: %w", err)
	}

	s.logger.Info("room added",
		zap.Int64("room_id", r.ID),
		zap.Int64("hotel_id", hotelID),
		zap.String("number", r.Number),
	)
	return r, nil
}

// DeleteRoom removes a room. Bookings that reference it are left in place.
func (s *RoomService) DeleteRoom(ctx context.Context, roomID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rooms, save, err := domain.LoadForUpdate(ctx, s.repo)
	if err != nil {
		return fmt.Errorf("failed to load rooms: %w", err)
	}

	kept, removed := domain.RemoveByID(rooms, roomID)
	if !removed {
		return roomDomain.NotFound(roomID)
	}
	if err := save(ctx, kept); err != nil {
		return fmt.Errorf("failed to save rooms: %w", err)
	}

	s.logger.Info("room deleted", zap.Int64("room_id", roomID))
	return nil
}

// GetRoom returns a room by id.
func (s *RoomService) GetRoom(ctx context.Context, roomID int64) (roomDomain.Room, error) {
	r, ok, err := s.repo.GetByID(ctx, roomID)
	if err != nil {
		return roomDomain.Room{}, fmt.Errorf("failed to load room: %w", err)
	}
	if !ok {
		return roomDomain.Room{}, roomDomain.NotFound(roomID)
	}
	return r, nil
}

// ListRooms returns the rooms of a hotel in storage order.
func (s *RoomService) ListRooms(ctx context.Context, hotelID int64) ([]roomDomain.Room, error) {
	if err := s.ensureHotel(ctx, hotelID); err != nil {
		return nil, err
	}

	rooms, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}

	result := make([]roomDomain.Room, 0)
	for _, r := range rooms {
		if r.BelongsTo(hotelID) {
			result = append(result, r)
		}
	}
	return result, nil
}

func (s *RoomService) ensureHotel(ctx context.Context, hotelID int64) error {
	_, ok, err := s.hotels.GetByID(ctx, hotelID)
	if err != nil {
		return fmt.Errorf("failed to load hotel: %w", err)
	}
	if !ok {
		return hotelDomain.NotFound(hotelID)
	}
	return nil
}
