// Package ticket renders a booking as a printable PDF e-ticket. It is the
// only place that formats dates and currency; the rest of the system passes
// plain data around.
package ticket

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/astralvoyages/spacebooking/internal/domain"
	"github.com/phpdave11/gofpdf"
)

// Generate returns the PDF bytes and a download filename for a booking.
func Generate(b domain.Booking) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Space Voyage Ticket", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "SPACE VOYAGE TICKET")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Booking ID     : %s", b.BookingID),
		fmt.Sprintf("Status         : %s", strings.ToUpper(string(b.Status))),
		fmt.Sprintf("Destination    : %s", b.Destination.Name),
		fmt.Sprintf("Travel duration: %s", b.Destination.TravelDuration),
		fmt.Sprintf("Departure      : %s", FormatDate(b.DepartureDate)),
		fmt.Sprintf("Booked on      : %s", FormatDate(b.BookingDate)),
		fmt.Sprintf("Accommodation  : %s (%s/day)", b.Accommodation.Name, FormatCurrency(b.Accommodation.PricePerDay)),
		fmt.Sprintf("Total price    : %s", FormatCurrency(b.TotalPrice)),
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, "Passengers")
	pdf.Ln(9)
	pdf.SetFont("Helvetica", "", 12)
	for i, p := range b.Passengers {
		pdf.Cell(0, 7, fmt.Sprintf("%d. %s %s  %s  %s", i+1, p.FirstName, p.LastName, p.Email, p.Phone))
		pdf.Ln(7)
		if p.SpecialRequirements != "" {
			pdf.Cell(0, 7, fmt.Sprintf("   Requirements: %s", p.SpecialRequirements))
			pdf.Ln(7)
		}
	}

	if b.SpecialRequests != "" {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "I", 10)
		pdf.MultiCell(0, 6, "Special requests: "+b.SpecialRequests, "", "", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("space-ticket-%s.pdf", b.BookingID)
	return buf.Bytes(), filename, nil
}

// FormatDate renders an ISO date for display. Unparsable input degrades to
// the "Invalid date" sentinel instead of failing.
func FormatDate(date string) string {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		return "Invalid date"
	}
	return d.Format("January 2, 2006")
}

// FormatCurrency renders an amount in whole credits with thousands
// separators.
func FormatCurrency(amount float64) string {
	n := int64(amount + 0.5)
	s := fmt.Sprintf("%d", n)
	if len(s) > 3 {
		var parts []string
		for len(s) > 3 {
			parts = append([]string{s[len(s)-3:]}, parts...)
			s = s[:len(s)-3]
		}
		parts = append([]string{s}, parts...)
		s = strings.Join(parts, ",")
	}
	return "$" + s
}
