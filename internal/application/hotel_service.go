package application

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/hotel-desk/service-booking/internal/domain"
	hotelDomain "github.com/hotel-desk/service-booking/internal/domain/hotel"
)

// CreateHotelRequest is the request DTO for registering a hotel.
type CreateHotelRequest struct {
	Name        string `json:"name" binding:"required"`
	City        string `json:"city" binding:"required"`
	Address     string `json:"address" binding:"required"`
	Description string `json:"description"`
}

// HotelService implements use cases for the hotel catalog.
type HotelService struct {
	mu     sync.Mutex
	repo   hotelDomain.Repository
	logger *zap.Logger
}

// NewHotelService creates a new HotelService.
func NewHotelService(repo hotelDomain.Repository, logger *zap.Logger) *HotelService {
	return &HotelService{repo: repo, logger: logger}
}

// AddHotel validates and stores a new hotel under the next free id.
func (s *HotelService) AddHotel(ctx context.Context, req CreateHotelRequest) (hotelDomain.Hotel, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	hotels, save, err := domain.LoadForUpdate(ctx, s.repo)
	if err != nil {
		return hotelDomain.Hotel{}, fmt.Errorf("failed to load hotels: %w", err)
	}

	h, err := hotelDomain.NewHotel(domain.NextID(hotels), req.Name, req.City, req.Address, req.Description)
	if err != nil {
		return hotelDomain.Hotel{}, err
	}

	if err := save(ctx, append(hotels, h)); err != nil {
		return hotelDomain.Hotel{}, fmt.Errorf("failed to save hotel: %w", err)
	}

	s.logger.Info("hotel added", zap.Int64("hotel_id", h.ID), zap.String("name", h.Name))
	return h, nil
}

// DeleteHotel removes a hotel. Rooms and bookings that reference it are left in place.
func (s *HotelService) DeleteHotel(ctx context.Context, hotelID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	hotels, save, err := domain.LoadForUpdate(ctx, s.repo)
	if err != nil {
		return fmt.Errorf("failed to load hotels: %w", err)
	}

	kept, removed := domain.RemoveByID(hotels, hotelID)
	if !removed {
		return hotelDomain.NotFound(hotelID)
	}
	if err := save(ctx, kept); err != nil {
		return fmt.Errorf("failed to save hotels: %w", err)
	}

	s.logger.Info("hotel deleted", zap.Int64("hotel_id", hotelID))
	return nil
}

// GetHotel returns a hotel by id.
func (s *HotelService) GetHotel(ctx context.Context, hotelID int64) (hotelDomain.Hotel, error) {
	h, ok, err := s.repo.GetByID(ctx, hotelID)
	if err != nil {
		return hotelDomain.Hotel{}, fmt.Errorf("failed to load hotel: %w", err)
	}
	if !ok {
		return hotelDomain.Hotel{}, hotelDomain.NotFound(hotelID)
	}
	return h, nil
}

// ListHotels returns every hotel in storage order.
func (s *HotelService) ListHotels(ctx context.Context) ([]hotelDomain.Hotel, error) {
	hotels, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list hotels: %w", err)
	}
	return hotels, nil
}

// SearchHotels returns hotels whose name, city, address or description contains
// keyword, ignoring case. A blank keyword returns every hotel.
func (s *HotelService) SearchHotels(ctx context.Context, keyword string) ([]hotelDomain.Hotel, error) {
	hotels, err := s.ListHotels(ctx)
	if err != nil {
		return nil, err
	}

	key := strings.ToLower(strings.TrimSpace(keyword))
	if key == "" {
		return hotels, nil
	}

	result := make([]hotelDomain.Hotel, 0)
	for _, h := range hotels {
		if h.Matches(key) {
			result = append(result, h)
		}
	}
	return result, nil
}
