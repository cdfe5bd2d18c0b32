// Package pricing computes booking totals.
package pricing

import (
	"github.com/astralvoyages/spacebooking/internal/domain"
	"github.com/astralvoyages/spacebooking/internal/duration"
)

// roundTripFactor doubles the per-day accommodation cost to cover the
// return leg. It is a fixed pricing constant, not configuration.
const roundTripFactor = 2

// Total prices a trip: the destination base fee plus accommodation cost for
// every travel day, both ways, for every passenger. Zero-valued prices
// contribute nothing, so a partially filled record still yields a usable
// total. No currency rounding happens here.
func Total(dest domain.Destination, acc domain.Accommodation, passengerCount int) float64 {
	days := duration.Days(dest.TravelDuration)
	return dest.Price + float64(days)*roundTripFactor*acc.PricePerDay*float64(passengerCount)
}

// TotalFor recomputes the cached total for a booking from its current
// destination, accommodation and passenger list.
func TotalFor(b domain.Booking) float64 {
	return Total(b.Destination, b.Accommodation, len(b.Passengers))
}
