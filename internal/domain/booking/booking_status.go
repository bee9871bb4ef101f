package booking

import "fmt"

// BookingStatus represents the current state of a booking in its lifecycle.
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

// validTransitions defines the state machine for booking status transitions.
// Confirming twice is allowed, and cancellation is accepted from every state.
var validTransitions = map[BookingStatus][]BookingStatus{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusConfirmed, StatusCancelled},
	StatusCancelled: {StatusCancelled},
}

// IsValid returns true if the status is a recognized booking status.
func (s BookingStatus) IsValid() bool {
	_, exists := validTransitions[s]
	return exists
}

// CanTransitionTo returns true if a transition from this status to the target is allowed.
func (s BookingStatus) CanTransitionTo(target BookingStatus) bool {
	allowed, exists := validTransitions[s]
	if !exists {
		return false
	}
	for _, t := range allowed {
		if t == target {
			return true
		}
	}
	return false
}

// String returns the string representation of the status.
func (s BookingStatus) String() string {
	return string(s)
}

// MarshalText implements encoding.TextMarshaler.
func (s BookingStatus) MarshalText() ([]byte, error) {
	return []byte(s), nil
}

// UnmarshalText rejects tokens other than pending, confirmed and cancelled.
func (s *BookingStatus) UnmarshalText(data []byte) error {
	status, err := ParseBookingStatus(string(data))
	if err != nil {
		return err
	}
	*s = status
	return nil
}

// ParseBookingStatus converts a string to a BookingStatus, returning an error if invalid.
func ParseBookingStatus(s string) (BookingStatus, error) {
	status := BookingStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid booking status: %s", s)
	}
	return status, nil
}

// AllStatuses lists every status in lifecycle order.
func AllStatuses() []BookingStatus {
	return []BookingStatus{StatusPending, StatusConfirmed, StatusCancelled}
}
