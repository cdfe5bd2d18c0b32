package pricing

import (
	"testing"

	"github.com/astralvoyages/spacebooking/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestTotal(t *testing.T) {
	dest := domain.Destination{Price: 1000, TravelDuration: "3 days"}
	acc := domain.Accommodation{PricePerDay: 500}

	// 1000 + 3 days * 2 * 500 * 2 passengers
	assert.Equal(t, 7000.0, Total(dest, acc, 2))
}

func TestTotal_ZeroValueDefaults(t *testing.T) {
	// Missing prices contribute nothing rather than failing.
	assert.Equal(t, 0.0, Total(domain.Destination{TravelDuration: "3 days"}, domain.Accommodation{}, 2))
	assert.Equal(t, 1000.0, Total(domain.Destination{Price: 1000, TravelDuration: "3 days"}, domain.Accommodation{}, 2))
}

func TestTotal_UnknownDuration(t *testing.T) {
	// Unknown duration counts as zero days, leaving only the base fee.
	dest := domain.Destination{Price: 1000, TravelDuration: "unknown"}
	acc := domain.Accommodation{PricePerDay: 500}

	assert.Equal(t, 1000.0, Total(dest, acc, 2))
}

func TestTotalFor(t *testing.T) {
	b := domain.Booking{
		Destination:   domain.Destination{Price: 1000, TravelDuration: "3 days"},
		Accommodation: domain.Accommodation{PricePerDay: 500},
		Passengers:    []domain.Passenger{{FirstName: "Ada"}, {FirstName: "Grace"}},
	}

	assert.Equal(t, 7000.0, TotalFor(b))
}
