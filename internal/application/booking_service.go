package application

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/hotel-desk/service-booking/internal/domain"
	bookingDomain "github.com/hotel-desk/service-booking/internal/domain/booking"
	"github.com/hotel-desk/service-booking/internal/domain/calendar"
	clientDomain "github.com/hotel-desk/service-booking/internal/domain/client"
	hotelDomain "github.com/hotel-desk/service-booking/internal/domain/hotel"
	roomDomain "github.com/hotel-desk/service-booking/internal/domain/room"
	"github.com/hotel-desk/service-booking/internal/messaging"
)

// CreateBookingRequest holds the data needed to file a booking request.
type CreateBookingRequest struct {
	HotelID     int64         `json:"hotel_id" binding:"required"`
	RoomID      int64         `json:"room_id" binding:"required"`
	ClientID    int64         `json:"client_id" binding:"required"`
	CheckIn     calendar.Date `json:"check_in"`
	CheckOut    calendar.Date `json:"check_out"`
	RequestText string        `json:"request_text"`
}

// OccupancyDTO reports a number of places and the rooms that provide them.
type OccupancyDTO struct {
	TotalPlaces int               `json:"total_places"`
	Rooms       []roomDomain.Room `json:"rooms"`
}

// PriceDTO is the price breakdown of a booking.
type PriceDTO struct {
	BookingID     int64   `json:"booking_id"`
	Nights        int     `json:"nights"`
	PricePerNight float64 `json:"price_per_night"`
	Total         float64 `json:"total"`
}

// BookingService is the application service orchestrating booking use cases.
// Hotels, rooms and clients are only read; the booking collection is written
// under mu.
type BookingService struct {
	mu        sync.Mutex
	repo      bookingDomain.BookingRepository
	hotels    hotelDomain.Repository
	rooms     roomDomain.Repository
	clients   clientDomain.Repository
	pricing   bookingDomain.PricingStrategy
	publisher messaging.Publisher
	logger    *zap.Logger
}

// NewBookingService creates a new BookingService.
func NewBookingService(
	repo bookingDomain.BookingRepository,
	hotels hotelDomain.Repository,
	rooms roomDomain.Repository,
	clients clientDomain.Repository,
	pricing bookingDomain.PricingStrategy,
	publisher messaging.Publisher,
	logger *zap.Logger,
) *BookingService {
	return &BookingService{
		repo:      repo,
		hotels:    hotels,
		rooms:     rooms,
		clients:   clients,
		pricing:   pricing,
		publisher: publisher,
		logger:    logger,
	}
}

// AddRequest files a pending booking. The stay is validated first, then the
// hotel, room and client are resolved in that order, then the room is checked
// to belong to the hotel. Room capacity and overlapping bookings are not checked.
func (s *BookingService) AddRequest(ctx context.Context, req CreateBookingRequest) (bookingDomain.Booking, error) {
	if err := bookingDomain.ValidateStay(req.CheckIn, req.CheckOut); err != nil {
		return bookingDomain.Booking{}, err
	}
	if _, err := s.getHotel(ctx, req.HotelID); err != nil {
		return bookingDomain.Booking{}, err
	}
	rm, err := s.getRoom(ctx, req.RoomID)
	if err != nil {
		return bookingDomain.Booking{}, err
	}
	if _, err := s.getClient(ctx, req.ClientID); err != nil {
		return bookingDomain.Booking{}, err
	}
	if !rm.BelongsTo(req.HotelID) {
		return bookingDomain.Booking{}, domain.NewValidationErrorf(domain.ErrRoomHotelMismatch,
			"room %d does not belong to hotel %d", rm.ID, req.HotelID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	bookings, save, err := domain.LoadForUpdate(ctx, s.repo)
	if err != nil {
		return bookingDomain.Booking{}, fmt.Errorf("failed to load bookings: %w", err)
	}

	bk, err := bookingDomain.NewBooking(domain.NextID(bookings), req.HotelID, rm.ID, req.ClientID,
		req.CheckIn, req.CheckOut, req.RequestText)
	if err != nil {
		return bookingDomain.Booking{}, err
	}

	if err := save(ctx, append(bookings, bk)); err != nil {
		return bookingDomain.Booking{}, fmt.Errorf("failed to save booking: %w", err)
	}

	s.logger.Info("booking requested",
		zap.Int64("booking_id", bk.ID),
		zap.Int64("hotel_id", bk.HotelID),
		zap.Int64("room_id", bk.RoomID),
		zap.String("stay", bk.Stay().String()),
	)
	s.publishEvent(ctx, messaging.BookingRequested, bk)
	return bk, nil
}

// DeleteRequest removes a booking in any status.
func (s *BookingService) DeleteRequest(ctx context.Context, bookingID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	bookings, save, err := domain.LoadForUpdate(ctx, s.repo)
	if err != nil {
		return fmt.Errorf("failed to load bookings: %w", err)
	}

	bk, ok := domain.FindByID(bookings, bookingID)
	if !ok {
		return bookingDomain.NotFound(bookingID)
	}
	kept, _ := domain.RemoveByID(bookings, bookingID)
	if err := save(ctx, kept); err != nil {
		return fmt.Errorf("failed to save bookings: %w", err)
	}

	s.logger.Info("booking deleted", zap.Int64("booking_id", bookingID))
	s.publishEvent(ctx, messaging.BookingDeleted, bk)
	return nil
}

// UpdateRequestText replaces the free-text request of a booking.
func (s *BookingService) UpdateRequestText(ctx context.Context, bookingID int64, text string) (bookingDomain.Booking, error) {
	bk, err := s.mutate(ctx, bookingID, func(b *bookingDomain.Booking) error {
		b.UpdateText(text)
		return nil
	})
	if err != nil {
		return bookingDomain.Booking{}, err
	}

	s.logger.Info("booking text updated", zap.Int64("booking_id", bookingID))
	s.publishEvent(ctx, messaging.BookingTextUpdated, bk)
	return bk, nil
}

// ConfirmBooking turns a request into a confirmed booking. Confirming twice is
// accepted; a cancelled booking cannot be confirmed.
func (s *BookingService) ConfirmBooking(ctx context.Context, bookingID int64) (bookingDomain.Booking, error) {
	bk, err := s.mutate(ctx, bookingID, (*bookingDomain.Booking).Confirm)
	if err != nil {
		return bookingDomain.Booking{}, err
	}

	s.logger.Info("booking confirmed", zap.Int64("booking_id", bookingID))
	s.publishEvent(ctx, messaging.BookingConfirmed, bk)
	return bk, nil
}

// CancelBooking cancels a booking in any status.
func (s *BookingService) CancelBooking(ctx context.Context, bookingID int64) (bookingDomain.Booking, error) {
	bk, err := s.mutate(ctx, bookingID, (*bookingDomain.Booking).Cancel)
	if err != nil {
		return bookingDomain.Booking{}, err
	}

	s.logger.Info("booking cancelled", zap.Int64("booking_id", bookingID))
	s.publishEvent(ctx, messaging.BookingCancelled, bk)
	return bk, nil
}

// GetBooking retrieves a single booking by ID.
func (s *BookingService) GetBooking(ctx context.Context, bookingID int64) (bookingDomain.Booking, error) {
	bk, ok, err := s.repo.GetByID(ctx, bookingID)
	if err != nil {
		return bookingDomain.Booking{}, fmt.Errorf("failed to load booking: %w", err)
	}
	if !ok {
		return bookingDomain.Booking{}, bookingDomain.NotFound(bookingID)
	}
	return bk, nil
}

// GetRequestsInPeriod returns the pending bookings of a hotel whose stay
// overlaps [start, end), in storage order.
func (s *BookingService) GetRequestsInPeriod(ctx context.Context, hotelID int64, start, end calendar.Date) ([]bookingDomain.Booking, error) {
	return s.bookingsInPeriod(ctx, hotelID, bookingDomain.StatusPending, calendar.NewPeriod(start, end))
}

// GetReservedPlaces sums room capacity over the confirmed bookings of a hotel
// that overlap [start, end). Capacity is counted once per booking; rooms are
// listed once, in order of first appearance.
func (s *BookingService) GetReservedPlaces(ctx context.Context, hotelID int64, start, end calendar.Date) (OccupancyDTO, error) {
	confirmed, err := s.bookingsInPeriod(ctx, hotelID, bookingDomain.StatusConfirmed, calendar.NewPeriod(start, end))
	if err != nil {
		return OccupancyDTO{}, err
	}

	result := OccupancyDTO{Rooms: make([]roomDomain.Room, 0)}
	seen := make(map[int64]struct{}, len(confirmed))
	for _, bk := range confirmed {
		rm, err := s.getRoom(ctx, bk.RoomID)
		if err != nil {
			return OccupancyDTO{}, err
		}
		result.TotalPlaces += rm.Capacity
		if _, dup := seen[rm.ID]; !dup {
			seen[rm.ID] = struct{}{}
			result.Rooms = append(result.Rooms, rm)
		}
	}
	return result, nil
}

// GetFreePlaces returns the rooms of a hotel with no confirmed booking
// overlapping [start, end), in storage order, and their total capacity.
func (s *BookingService) GetFreePlaces(ctx context.Context, hotelID int64, start, end calendar.Date) (OccupancyDTO, error) {
	reserved, err := s.GetReservedPlaces(ctx, hotelID, start, end)
	if err != nil {
		return OccupancyDTO{}, err
	}
	reservedIDs := make(map[int64]struct{}, len(reserved.Rooms))
	for _, rm := range reserved.Rooms {
		reservedIDs[rm.ID] = struct{}{}
	}

	rooms, err := s.rooms.GetAll(ctx)
	if err != nil {
		return OccupancyDTO{}, fmt.Errorf("failed to load rooms: %w", err)
	}

	free := make([]roomDomain.Room, 0)
	for _, rm := range rooms {
		if _, taken := reservedIDs[rm.ID]; rm.BelongsTo(hotelID) && !taken {
			free = append(free, rm)
		}
	}
	return OccupancyDTO{TotalPlaces: roomDomain.TotalCapacity(free), Rooms: free}, nil
}

// CalculateBookingPrice prices a booking at the current rate of its room.
func (s *BookingService) CalculateBookingPrice(ctx context.Context, bookingID int64) (PriceDTO, error) {
	bk, err := s.GetBooking(ctx, bookingID)
	if err != nil {
		return PriceDTO{}, err
	}
	rm, err := s.getRoom(ctx, bk.RoomID)
	if err != nil {
		return PriceDTO{}, err
	}

	nights := bk.DurationDays()
	total, err := s.pricing.Calculate(bookingDomain.PricingParams{
		Nights:        nights,
		PricePerNight: rm.PricePerNight,
	})
	if err != nil {
		return PriceDTO{}, err
	}

	return PriceDTO{
		BookingID:     bk.ID,
		Nights:        nights,
		PricePerNight: rm.PricePerNight,
		Total:         total,
	}, nil
}

// GetClientsWithBookings returns the clients holding at least one confirmed
// booking at a hotel, ordered by client id. Clients that no longer resolve are
// skipped.
func (s *BookingService) GetClientsWithBookings(ctx context.Context, hotelID int64) ([]clientDomain.Client, error) {
	if _, err := s.getHotel(ctx, hotelID); err != nil {
		return nil, err
	}

	bookings, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load bookings: %w", err)
	}

	clientIDs := make([]int64, 0)
	seen := make(map[int64]struct{})
	for _, bk := range bookings {
		if bk.HotelID != hotelID || !bk.IsConfirmed() {
			continue
		}
		if _, dup := seen[bk.ClientID]; !dup {
			seen[bk.ClientID] = struct{}{}
			clientIDs = append(clientIDs, bk.ClientID)
		}
	}
	slices.Sort(clientIDs)

	result := make([]clientDomain.Client, 0, len(clientIDs))
	for _, id := range clientIDs {
		c, ok, err := s.clients.GetByID(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("failed to load client: %w", err)
		}
		if !ok {
			s.logger.Warn("skipping unresolved client of confirmed booking",
				zap.Int64("hotel_id", hotelID),
				zap.Int64("client_id", id),
			)
			continue
		}
		result = append(result, c)
	}
	return result, nil
}

// --- Admin methods ---

// BookingStatsDTO holds booking statistics for the admin dashboard.
type BookingStatsDTO struct {
	TotalBookings int64            `json:"total_bookings"`
	ByStatus      map[string]int64 `json:"by_status"`
}

// Page size limits for listings.
const (
	DefaultPageLimit = 20
	MaxPageLimit     = 100
)

// NormalizePage clamps page to at least 1 and limit to 1..MaxPageLimit,
// using DefaultPageLimit when limit is not positive.
func NormalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultPageLimit
	}
	return page, min(limit, MaxPageLimit)
}

// ListAllBookings returns one page of all bookings in storage order, optionally
// restricted to a status, and the number of matching bookings.
func (s *BookingService) ListAllBookings(ctx context.Context, status string, page, limit int) ([]bookingDomain.Booking, int64, error) {
	bookings, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list bookings: %w", err)
	}

	if status != "" {
		st, err := bookingDomain.ParseBookingStatus(status)
		if err != nil {
			return nil, 0, domain.NewValidationError(err.Error())
		}
		matching := make([]bookingDomain.Booking, 0, len(bookings))
		for _, bk := range bookings {
			if bk.Status == st {
				matching = append(matching, bk)
			}
		}
		bookings = matching
	}

	page, limit = NormalizePage(page, limit)
	total := int64(len(bookings))
	from := min((page-1)*limit, len(bookings))
	to := min(from+limit, len(bookings))
	return bookings[from:to], total, nil
}

// GetBookingStats returns aggregate booking statistics (admin).
func (s *BookingService) GetBookingStats(ctx context.Context) (*BookingStatsDTO, error) {
	bookings, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get booking stats: %w", err)
	}

	counts := bookingDomain.CountByStatus(bookings)
	for _, st := range bookingDomain.AllStatuses() {
		if _, ok := counts[string(st)]; !ok {
			counts[string(st)] = 0
		}
	}

	return &BookingStatsDTO{
		TotalBookings: int64(len(bookings)),
		ByStatus:      counts,
	}, nil
}

// --- Helpers ---

// mutate applies fn to one stored booking and persists the collection.
func (s *BookingService) mutate(ctx context.Context, bookingID int64, fn func(*bookingDomain.Booking) error) (bookingDomain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	bookings, save, err := domain.LoadForUpdate(ctx, s.repo)
	if err != nil {
		return bookingDomain.Booking{}, fmt.Errorf("failed to load bookings: %w", err)
	}

	bk, ok := domain.FindByID(bookings, bookingID)
	if !ok {
		return bookingDomain.Booking{}, bookingDomain.NotFound(bookingID)
	}
	if err := fn(&bk); err != nil {
		return bookingDomain.Booking{}, err
	}

	domain.ReplaceByID(bookings, bk)
	if err := save(ctx, bookings); err != nil {
		return bookingDomain.Booking{}, fmt.Errorf("failed to save booking: %w", err)
	}
	return bk, nil
}

func (s *BookingService) bookingsInPeriod(ctx context.Context, hotelID int64, status bookingDomain.BookingStatus, window calendar.Period) ([]bookingDomain.Booking, error) {
	if _, err := s.getHotel(ctx, hotelID); err != nil {
		return nil, err
	}
	bookings, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load bookings: %w", err)
	}
	return bookingDomain.Filter(bookings, hotelID, status, window), nil
}

func (s *BookingService) getHotel(ctx context.Context, id int64) (hotelDomain.Hotel, error) {
	h, ok, err := s.hotels.GetByID(ctx, id)
	if err != nil {
		return hotelDomain.Hotel{}, fmt.Errorf("failed to load hotel: %w", err)
	}
	if !ok {
		return hotelDomain.Hotel{}, hotelDomain.NotFound(id)
	}
	return h, nil
}

func (s *BookingService) getRoom(ctx context.Context, id int64) (roomDomain.Room, error) {
	rm, ok, err := s.rooms.GetByID(ctx, id)
	if err != nil {
		return roomDomain.Room{}, fmt.Errorf("failed to load room: %w", err)
	}
	if !ok {
		return roomDomain.Room{}, roomDomain.NotFound(id)
	}
	return rm, nil
}

func (s *BookingService) getClient(ctx context.Context, id int64) (clientDomain.Client, error) {
	c, ok, err := s.clients.GetByID(ctx, id)
	if err != nil {
		return clientDomain.Client{}, fmt.Errorf("failed to load client: %w", err)
	}
	if !ok {
		return clientDomain.Client{}, clientDomain.NotFound(id)
	}
	return c, nil
}

func (s *BookingService) publishEvent(ctx context.Context, eventType string, bk bookingDomain.Booking) {
	evt := messaging.BookingEvent{
		BookingID:   bk.ID,
		HotelID:     bk.HotelID,
		RoomID:      bk.RoomID,
		ClientID:    bk.ClientID,
		CheckIn:     bk.CheckIn.String(),
		CheckOut:    bk.CheckOut.String(),
		Status:      bk.Status.String(),
		RequestText: bk.RequestText,
		OccurredAt:  time.Now().UTC(),
	}

	cloudEvent, err := messaging.NewCloudEvent(messaging.ServiceName, eventType, evt)
	if err != nil {
		s.logger.Error("failed to create cloud event",
			zap.String("event_type", eventType),
			zap.Error(err),
		)
		return
	}

	key := strconv.FormatInt(bk.ID, 10)
	if err := s.publisher.PublishEvent(ctx, messaging.TopicBookingEvents, key, cloudEvent); err != nil {
		s.logger.Error("failed to publish event",
			zap.String("topic", messaging.TopicBookingEvents),
			zap.String("event_type", eventType),
			zap.Error(err),
		)
	}
}
