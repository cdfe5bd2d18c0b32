package domain

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// Passenger holds one traveler's identity and contact details.
type Passenger struct {
	FirstName           string `json:"firstName"`
	LastName            string `json:"lastName"`
	Email               string `json:"email"`
	Phone               string `json:"phone"`
	SpecialRequirements string `json:"specialRequirements,omitempty"`
}

// Booking matches the stored spaceBookings record schema field for field.
// DepartureDate and BookingDate are ISO date strings (2006-01-02).
type Booking struct {
	BookingID       string        `json:"bookingId"`
	UserID          string        `json:"userId"`
	Destination     Destination   `json:"destination"`
	Accommodation   Accommodation `json:"accommodation"`
	Passengers      []Passenger   `json:"passengers"`
	DepartureDate   string        `json:"departureDate"`
	BookingDate     string        `json:"bookingDate"`
	Status          BookingStatus `json:"status"`
	TotalPrice      float64       `json:"totalPrice"`
	PassengerType   string        `json:"passengerType,omitempty"`
	SpecialRequests string        `json:"specialRequests,omitempty"`
}

// User is the currentUser session record. Absent record means logged out.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}
