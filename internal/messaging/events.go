package messaging

import "time"

// ServiceName is the CloudEvent source of everything this service publishes.
const ServiceName = "service-booking"

// Topics.
const (
	TopicBookingEvents   = "hotel.booking.events"
	TopicBookingCommands = "hotel.booking.commands"
)

// Booking event types published on TopicBookingEvents.
const (
	BookingRequested   = "booking.requested"
	BookingTextUpdated = "booking.text_updated"
	BookingConfirmed   = "booking.confirmed"
	BookingCancelled   = "booking.cancelled"
	BookingDeleted     = "booking.deleted"
)

// Command types consumed from TopicBookingCommands.
const (
	CommandConfirmBooking = "booking.command.confirm"
	CommandCancelBooking  = "booking.command.cancel"
)

// BookingEvent is the payload of every booking event.
type BookingEvent struct {
	BookingID   int64     `json:"booking_id"`
	HotelID     int64     `json:"hotel_id"`
	RoomID      int64     `json:"room_id"`
	ClientID    int64     `json:"client_id"`
	CheckIn     string    `json:"check_in"`
	CheckOut    string    `json:"check_out"`
	Status      string    `json:"status"`
	RequestText string    `json:"request_text,omitempty"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// BookingCommand is the payload of a confirm or cancel command.
type BookingCommand struct {
	BookingID   int64  `json:"booking_id"`
	RequestedBy string `json:"requested_by,omitempty"`
}
