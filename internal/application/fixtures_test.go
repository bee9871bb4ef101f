package application

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/hotel-desk/service-booking/internal/domain/booking"
	"github.com/hotel-desk/service-booking/internal/domain/calendar"
	"github.com/hotel-desk/service-booking/internal/domain/client"
	"github.com/hotel-desk/service-booking/internal/messaging"
	"github.com/hotel-desk/service-booking/internal/repository"
)

// recordingPublisher keeps every published envelope in memory.
type recordingPublisher struct {
	mu     sync.Mutex
	events []messaging.CloudEvent
	err    error
}

func (p *recordingPublisher) PublishEvent(_ context.Context, _, _ string, ce messaging.CloudEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, ce)
	return nil
}

func (p *recordingPublisher) Close() error { return nil }

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	types := make([]string, len(p.events))
	for i, ce := range p.events {
		types[i] = ce.Type
	}
	return types
}

// testEnv wires every service over one set of in-memory repositories.
type testEnv struct {
	stores    repository.Stores
	publisher *recordingPublisher
	hotels    *HotelService
	rooms     *RoomService
	clients   *ClientService
	bookings  *BookingService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	logger := zap.NewNop()
	stores := repository.NewMemoryStores()
	pub := &recordingPublisher{}

	return &testEnv{
		stores:    stores,
		publisher: pub,
		hotels:    NewHotelService(stores.Hotels, logger),
		rooms:     NewRoomService(stores.Rooms, stores.Hotels, logger),
		clients:   NewClientService(stores.Clients, logger),
		bookings: NewBookingService(stores.Bookings, stores.Hotels, stores.Rooms, stores.Clients,
			booking.NewNightlyPricingStrategy(), pub, logger),
	}
}

// scenario is one hotel with a 2-place room at 100 and a 3-place room at 150, plus one client.
type scenario struct {
	hotelID  int64
	room1ID  int64
	room2ID  int64
	clientID int64
}

func (e *testEnv) seed(t *testing.T) scenario {
	t.Helper()
	ctx := context.Background()

	h, err := e.hotels.AddHotel(ctx, CreateHotelRequest{Name: "Hotel", City: "Kyiv", Address: "Main st. 1"})
	require.NoError(t, err)
	r1, err := e.rooms.AddRoom(ctx, h.ID, CreateRoomRequest{Number: "101", Capacity: 2, PricePerNight: 100})
	require.NoError(t, err)
	r2, err := e.rooms.AddRoom(ctx, h.ID, CreateRoomRequest{Number: "102", Capacity: 3, PricePerNight: 150})
	require.NoError(t, err)
	c, err := e.clients.AddClient(ctx, CreateClientRequest{FirstName: "Ivan", LastName: "Petrenko"})
	require.NoError(t, err)

	return scenario{hotelID: h.ID, room1ID: r1.ID, room2ID: r2.ID, clientID: c.ID}
}

func (e *testEnv) request(t *testing.T, s scenario, roomID int64, in, out string) booking.Booking {
	t.Helper()
	bk, err := e.bookings.AddRequest(context.Background(), CreateBookingRequest{
		HotelID:  s.hotelID,
		RoomID:   roomID,
		ClientID: s.clientID,
		CheckIn:  calendar.MustParse(in),
		CheckOut: calendar.MustParse(out),
	})
	require.NoError(t, err)
	return bk
}

func firstNames(clients []client.Client) []string {
	names := make([]string, len(clients))
	for i, c := range clients {
		names[i] = c.FirstName
	}
	return names
}

var errBrokerDown = errors.New("broker down")
