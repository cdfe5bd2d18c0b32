package booking

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/astralvoyages/spacebooking/internal/domain"
	"github.com/astralvoyages/spacebooking/internal/kafka"
	"github.com/astralvoyages/spacebooking/internal/pricing"
	"github.com/astralvoyages/spacebooking/internal/repository"
	"github.com/astralvoyages/spacebooking/internal/validate"
	"github.com/google/uuid"
)

// ErrBookingNotFound is returned when no record matches the requested id.
// The store is left untouched in that case.
var ErrBookingNotFound = errors.New("booking not found")

// ValidationError carries a human-readable reason for rejecting an edit or
// intake. The mutation is never applied when one is returned.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

type BookingUseCase interface {
	ListForUser(ctx context.Context, userID string) ([]domain.Booking, error)
	Get(ctx context.Context, bookingID string) (*domain.Booking, error)
	CreateBooking(ctx context.Context, input CreateBookingInput) (*domain.Booking, error)
	EditBooking(ctx context.Context, input EditBookingInput) (*domain.Booking, error)
	CancelBooking(ctx context.Context, bookingID string) (*domain.Booking, error)
}

// Catalog resolves destinations for the intake flow.
type Catalog interface {
	DestinationByName(ctx context.Context, name string) (*domain.Destination, error)
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

// BookingService applies edits and cancellations to the stored booking
// collection. Every mutation is a full read-modify-write of the collection;
// the store has no transactions, so two racing writers follow
// last-writer-wins, same as the single-user environment this models.
type BookingService struct {
	bookings           repository.BookingRepository
	catalog            Catalog
	producer           Producer
	bookingTopic       string
	notificationsTopic string
}

type PassengerInput struct {
	FirstName           string `json:"firstName"`
	LastName            string `json:"lastName"`
	Email               string `json:"email"`
	Phone               string `json:"phone"`
	SpecialRequirements string `json:"specialRequirements"`
}

type CreateBookingInput struct {
	UserID          string           `json:"userId"`
	DestinationName string           `json:"destination"`
	AccommodationID string           `json:"accommodation"`
	DepartureDate   string           `json:"departureDate"`
	Passengers      []PassengerInput `json:"passengers"`
	PassengerType   string           `json:"passengerType"`
	SpecialRequests string           `json:"specialRequests"`
}

type EditBookingInput struct {
	BookingID       string           `json:"-"`
	DepartureDate   string           `json:"departureDate"`
	AccommodationID string           `json:"accommodation"`
	Passengers      []PassengerInput `json:"passengers"`
	SpecialRequests string           `json:"specialRequests"`
}

type BookingServiceOption func(*BookingService)

func WithNotificationsTopic(topic string) BookingServiceOption {
	return func(s *BookingService) {
		s.notificationsTopic = topic
	}
}

func NewBookingService(
	bookings repository.BookingRepository,
	catalog Catalog,
	producer Producer,
	bookingTopic string,
	opts ...BookingServiceOption,
) *BookingService {
	service := &BookingService{
		bookings:     bookings,
		catalog:      catalog,
		producer:     producer,
		bookingTopic: bookingTopic,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

func (s *BookingService) ListForUser(ctx context.Context, userID string) ([]domain.Booking, error) {
	return s.bookings.LoadForUser(ctx, userID)
}

func (s *BookingService) Get(ctx context.Context, bookingID string) (*domain.Booking, error) {
	all, err := s.bookings.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range all {
		if all[i].BookingID == bookingID {
			return &all[i], nil
		}
	}
	return nil, ErrBookingNotFound
}

// CreateBooking appends a new pending booking to the collection, the way the
// site's booking page does.
func (s *BookingService) CreateBooking(ctx context.Context, input CreateBookingInput) (*domain.Booking, error) {
	if input.UserID == "" {
		return nil, &ValidationError{Field: "userId", Message: "user is required"}
	}
	if len(input.Passengers) == 0 {
		return nil, &ValidationError{Field: "passengers", Message: "at least one passenger is required"}
	}
	if err := validateDeparture(input.DepartureDate); err != nil {
		return nil, err
	}
	if err := validatePassengers(input.Passengers); err != nil {
		return nil, err
	}
	accommodation, ok := domain.AccommodationByID(input.AccommodationID)
	if !ok {
		return nil, &ValidationError{Field: "accommodation", Message: "unknown accommodation type"}
	}
	destination, err := s.catalog.DestinationByName(ctx, input.DestinationName)
	if err != nil {
		return nil, &ValidationError{Field: "destination", Message: "unknown destination"}
	}

	booking := domain.Booking{
		BookingID:       uuid.NewString(),
		UserID:          input.UserID,
		Destination:     *destination,
		Accommodation:   accommodation,
		Passengers:      make([]domain.Passenger, len(input.Passengers)),
		DepartureDate:   input.DepartureDate,
		BookingDate:     time.Now().Format("2006-01-02"),
		Status:          domain.BookingStatusPending,
		PassengerType:   input.PassengerType,
		SpecialRequests: input.SpecialRequests,
	}
	for i, p := range input.Passengers {
		booking.Passengers[i] = domain.Passenger{
			FirstName:           p.FirstName,
			LastName:            p.LastName,
			Email:               p.Email,
			Phone:               p.Phone,
			SpecialRequirements: p.SpecialRequirements,
		}
	}
	booking.TotalPrice = pricing.TotalFor(booking)

	all, err := s.bookings.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	all = append(all, booking)
	if err := s.bookings.SaveAll(ctx, all); err != nil {
		return nil, err
	}

	s.publish(ctx, "booking_created", booking)
	return &booking, nil
}

// EditBooking rewrites one record's departure date, accommodation, passenger
// contact fields and special requests, then recomputes the cached total.
// Validation is all-or-nothing: any failing field rejects the whole edit
// before anything is written.
func (s *BookingService) EditBooking(ctx context.Context, input EditBookingInput) (*domain.Booking, error) {
	all, err := s.bookings.LoadAll(ctx)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range all {
		if all[i].BookingID == input.BookingID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, ErrBookingNotFound
	}

	if err := validateDeparture(input.DepartureDate); err != nil {
		return nil, err
	}
	accommodation, ok := domain.AccommodationByID(input.AccommodationID)
	if !ok {
		return nil, &ValidationError{Field: "accommodation", Message: "unknown accommodation type"}
	}
	if len(input.Passengers) != len(all[idx].Passengers) {
		return nil, &ValidationError{Field: "passengers", Message: "passenger count cannot change"}
	}
	if err := validatePassengers(input.Passengers); err != nil {
		return nil, err
	}

	updated := all[idx]
	updated.Passengers = make([]domain.Passenger, len(all[idx].Passengers))
	copy(updated.Passengers, all[idx].Passengers)
	for i, p := range input.Passengers {
		updated.Passengers[i].FirstName = p.FirstName
		updated.Passengers[i].LastName = p.LastName
		updated.Passengers[i].Email = p.Email
		updated.Passengers[i].Phone = p.Phone
		updated.Passengers[i].SpecialRequirements = p.SpecialRequirements
	}
	updated.Accommodation = accommodation
	updated.DepartureDate = input.DepartureDate
	updated.SpecialRequests = input.SpecialRequests
	updated.TotalPrice = pricing.TotalFor(updated)

	all[idx] = updated
	if err := s.bookings.SaveAll(ctx, all); err != nil {
		return nil, err
	}

	s.publish(ctx, "booking_updated", updated)
	return &updated, nil
}

// CancelBooking marks the record cancelled regardless of its prior status.
// Cancelled is terminal and the call is idempotent at the state level; a
// repeat cancel still writes the collection back. Ownership is not checked
// here: the caller gates on a logged-in session, matching the original
// page's advisory login check.
func (s *BookingService) CancelBooking(ctx context.Context, bookingID string) (*domain.Booking, error) {
	all, err := s.bookings.LoadAll(ctx)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range all {
		if all[i].BookingID == bookingID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, ErrBookingNotFound
	}

	all[idx].Status = domain.BookingStatusCancelled
	if err := s.bookings.SaveAll(ctx, all); err != nil {
		return nil, err
	}

	s.publish(ctx, "booking_cancelled", all[idx])
	return &all[idx], nil
}

func validateDeparture(date string) error {
	if date == "" {
		return &ValidationError{Field: "departureDate", Message: "please select a departure date"}
	}
	if !validate.IsFutureOrTodayDate(date) {
		return &ValidationError{Field: "departureDate", Message: "departure date must be today or in the future"}
	}
	return nil
}

func validatePassengers(passengers []PassengerInput) error {
	for i, p := range passengers {
		field := func(name string) string { return fmt.Sprintf("passenger-%d-%s", i, name) }
		if !validate.IsValidName(p.FirstName) {
			return &ValidationError{Field: field("firstName"), Message: "name must be 2-50 letters"}
		}
		if !validate.IsValidName(p.LastName) {
			return &ValidationError{Field: field("lastName"), Message: "name must be 2-50 letters"}
		}
		if !validate.IsValidEmail(p.Email) {
			return &ValidationError{Field: field("email"), Message: "invalid email address"}
		}
		if !validate.IsValidPhone(p.Phone) {
			return &ValidationError{Field: field("phone"), Message: "invalid phone number"}
		}
	}
	return nil
}

// publish is best effort: a broker failure never fails the mutation.
func (s *BookingService) publish(ctx context.Context, eventType string, b domain.Booking) {
	if s.producer == nil || s.bookingTopic == "" {
		return
	}
	event := kafka.BookingEvent{
		Type:        eventType,
		BookingID:   b.BookingID,
		UserID:      b.UserID,
		Destination: b.Destination.Name,
		Status:      string(b.Status),
		TotalPrice:  b.TotalPrice,
	}
	if err := s.producer.Publish(ctx, s.bookingTopic, b.BookingID, event); err != nil {
		log.Printf("WARNING: failed to publish %s event for booking %s: %v", eventType, b.BookingID, err)
		return
	}
	if s.notificationsTopic != "" {
		if err := s.producer.Publish(ctx, s.notificationsTopic, b.BookingID, event); err != nil {
			log.Printf("WARNING: failed to publish %s notification for booking %s: %v", eventType, b.BookingID, err)
		}
	}
}

var _ BookingUseCase = (*BookingService)(nil)
