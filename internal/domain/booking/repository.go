package booking

import (
	"github.com/hotel-desk/service-booking/internal/domain"
	"github.com/hotel-desk/service-booking/internal/domain/calendar"
)

// BookingRepository defines the persistence contract for the booking collection.
type BookingRepository = domain.Repository[Booking]

// Filter selects the bookings of hotelID with the given status whose stay
// overlaps window, preserving the order of bookings.
func Filter(bookings []Booking, hotelID int64, status BookingStatus, window calendar.Period) []Booking {
	result := make([]Booking, 0)
	for _, b := range bookings {
		if b.HotelID == hotelID && b.Status == status && b.OverlapsPeriod(window) {
			result = append(result, b)
		}
	}
	return result
}

// CountByStatus returns booking counts grouped by status.
func CountByStatus(bookings []Booking) map[string]int64 {
	counts := make(map[string]int64, len(validTransitions))
	for _, b := range bookings {
		counts[string(b.Status)]++
	}
	return counts
}
