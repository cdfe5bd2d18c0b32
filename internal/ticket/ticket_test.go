package ticket

import (
	"bytes"
	"testing"

	"github.com/astralvoyages/spacebooking/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestGenerate(t *testing.T) {
	b := domain.Booking{
		BookingID:     "bk-1",
		Status:        domain.BookingStatusConfirmed,
		Destination:   domain.Destination{Name: "Mars", TravelDuration: "7-9 months", Price: 1200000},
		Accommodation: domain.Accommodations["deluxe"],
		Passengers: []domain.Passenger{
			{FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com", Phone: "+15551234567"},
			{FirstName: "Grace", LastName: "Hopper", Email: "grace@example.com", Phone: "+15559876543", SpecialRequirements: "vegetarian meals"},
		},
		DepartureDate:   "2027-06-01",
		BookingDate:     "2026-09-01",
		TotalPrice:      1632000,
		SpecialRequests: "adjacent cabins",
	}

	pdf, filename, err := Generate(b)

	assert.NoError(t, err)
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF")))
	assert.Equal(t, "space-ticket-bk-1.pdf", filename)
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "June 1, 2027", FormatDate("2027-06-01"))
	assert.Equal(t, "Invalid date", FormatDate("not-a-date"))
	assert.Equal(t, "Invalid date", FormatDate(""))
}

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "$500", FormatCurrency(500))
	assert.Equal(t, "$7,000", FormatCurrency(7000))
	assert.Equal(t, "$1,632,000", FormatCurrency(1632000))
	assert.Equal(t, "$0", FormatCurrency(0))
}
