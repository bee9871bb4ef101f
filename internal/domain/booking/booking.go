package booking

import (
	"strconv"
	"strings"

	"github.com/hotel-desk/service-booking/internal/domain"
	"github.com/hotel-desk/service-booking/internal/domain/calendar"
)

// Booking is a room reservation. "Request" and "booking" name the same record:
// a request is a booking that is still pending.
type Booking struct {
	ID          int64         `json:"id" bson:"id"`
	HotelID     int64         `json:"hotel_id" bson:"hotel_id"`
	RoomID      int64         `json:"room_id" bson:"room_id"`
	ClientID    int64         `json:"client_id" bson:"client_id"`
	CheckIn     calendar.Date `json:"check_in" bson:"check_in"`
	CheckOut    calendar.Date `json:"check_out" bson:"check_out"`
	Status      BookingStatus `json:"status" bson:"status"`
	RequestText string        `json:"request_text" bson:"request_text"`
}

// ValidateStay checks that both dates are set and check-out is strictly after check-in.
func ValidateStay(checkIn, checkOut calendar.Date) error {
	if checkIn.IsZero() {
		return domain.NewValidationErrorf(domain.ErrEmptyField, "check_in is required")
	}
	if checkOut.IsZero() {
		return domain.NewValidationErrorf(domain.ErrEmptyField, "check_out is required")
	}
	if !checkIn.Before(checkOut) {
		return domain.NewValidationErrorf(domain.ErrInvalidInterval,
			"check-out %s must be after check-in %s", checkOut, checkIn)
	}
	return nil
}

// NewBooking creates a pending booking. Existence of the referenced hotel, room
// and client is checked by the caller.
func NewBooking(id, hotelID, roomID, clientID int64, checkIn, checkOut calendar.Date, text string) (Booking, error) {
	if err := ValidateStay(checkIn, checkOut); err != nil {
		return Booking{}, err
	}
	return Booking{
		ID:          id,
		HotelID:     hotelID,
		RoomID:      roomID,
		ClientID:    clientID,
		CheckIn:     checkIn,
		CheckOut:    checkOut,
		Status:      StatusPending,
		RequestText: strings.TrimSpace(text),
	}, nil
}

// EntityID implements domain.Entity.
func (b Booking) EntityID() int64 { return b.ID }

// Stay returns the half-open period [CheckIn, CheckOut).
func (b Booking) Stay() calendar.Period {
	return calendar.NewPeriod(b.CheckIn, b.CheckOut)
}

// DurationDays returns the number of nights of the stay.
func (b Booking) DurationDays() int {
	return b.Stay().Nights()
}

// OverlapsPeriod reports whether the stay intersects the half-open window.
func (b Booking) OverlapsPeriod(window calendar.Period) bool {
	return b.Stay().Overlaps(window)
}

// IsPending reports whether the booking is still an unanswered request.
func (b Booking) IsPending() bool { return b.Status == StatusPending }

// IsConfirmed reports whether the booking holds its room.
func (b Booking) IsConfirmed() bool { return b.Status == StatusConfirmed }

// --- Behavior ---

// Confirm moves the booking to confirmed. Confirming a confirmed booking is a no-op;
// a cancelled booking cannot be confirmed.
func (b *Booking) Confirm() error {
	if !b.Status.CanTransitionTo(StatusConfirmed) {
		return domain.NewInvalidStateError(string(b.Status), string(StatusConfirmed))
	}
	b.Status = StatusConfirmed
	return nil
}

// Cancel moves the booking to cancelled from any state.
func (b *Booking) Cancel() error {
	if !b.Status.CanTransitionTo(StatusCancelled) {
		return domain.NewInvalidStateError(string(b.Status), string(StatusCancelled))
	}
	b.Status = StatusCancelled
	return nil
}

// UpdateText replaces the request text with its trimmed form.
func (b *Booking) UpdateText(text string) {
	b.RequestText = strings.TrimSpace(text)
}

// NotFound builds the error returned when a booking id does not resolve.
func NotFound(id int64) error {
	return domain.NewNotFoundError("Booking", strconv.FormatInt(id, 10))
}
