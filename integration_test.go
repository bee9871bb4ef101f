//go:build integration

package main_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hotel-desk/service-booking/internal/application"
	"github.com/hotel-desk/service-booking/internal/domain/calendar"
	"github.com/hotel-desk/service-booking/internal/messaging"
)

// TestConfirmCommand_ConfirmsBooking verifies that a confirm command published
// to hotel.booking.commands confirms a pending booking stored in PostgreSQL and
// that the resulting booking.confirmed event reaches hotel.booking.events.
func TestConfirmCommand_ConfirmsBooking(t *testing.T) {
	infra := setupContainers(t)
	defer infra.Cleanup()

	stack := setupBookingStack(t, infra.DB, infra.KafkaBrokers)
	defer stack.CleanupProducer()
	defer func() { _ = stack.Consumer.Close() }()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Seed the catalog and a pending booking through the services.
	h, err := stack.Hotels.AddHotel(ctx, application.CreateHotelRequest{Name: "Dnipro", City: "Kyiv", Address: "Naberezhna 1"})
	require.NoError(t, err)
	r, err := stack.Rooms.AddRoom(ctx, h.ID, application.CreateRoomRequest{Number: "201", Capacity: 2, PricePerNight: 120})
	require.NoError(t, err)
	c, err := stack.Clients.AddClient(ctx, application.CreateClientRequest{FirstName: "Olena", LastName: "Koval"})
	require.NoError(t, err)
	bk, err := stack.Bookings.AddRequest(ctx, application.CreateBookingRequest{
		HotelID:  h.ID,
		RoomID:   r.ID,
		ClientID: c.ID,
		CheckIn:  calendar.MustParse("2025-06-01"),
		CheckOut: calendar.MustParse("2025-06-03"),
	})
	require.NoError(t, err)
	waitForBookingStatus(t, infra.DB, bk.ID, "pending", 5*time.Second)

	// Start the consumer.
	go func() { _ = stack.Consumer.Start(ctx) }()
	time.Sleep(3 * time.Second) // Wait for consumer group join.

	publishTestCommand(t, infra.KafkaBrokers, messaging.CommandConfirmBooking,
		messaging.BookingCommand{BookingID: bk.ID, RequestedBy: "front-desk"})

	model := waitForBookingStatus(t, infra.DB, bk.ID, "confirmed", 15*time.Second)
	assert.Equal(t, r.ID, model.RoomID)

	ce := consumeOneEvent(t, infra.KafkaBrokers, messaging.TopicBookingEvents,
		messaging.BookingConfirmed, 15*time.Second)

	var confirmed messaging.BookingEvent
	require.NoError(t, ce.ParseData(&confirmed))
	assert.Equal(t, bk.ID, confirmed.BookingID)
	assert.Equal(t, "confirmed", confirmed.Status)
	assert.Equal(t, "2025-06-01", confirmed.CheckIn)

	reserved, err := stack.Bookings.GetReservedPlaces(ctx, h.ID,
		calendar.MustParse("2025-06-02"), calendar.MustParse("2025-06-10"))
	require.NoError(t, err)
	assert.Equal(t, 2, reserved.TotalPlaces)
}
