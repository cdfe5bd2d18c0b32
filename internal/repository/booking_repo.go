package repository

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"github.com/astralvoyages/spacebooking/internal/domain"
	"github.com/astralvoyages/spacebooking/internal/storage"
)

type BookingRepository interface {
	LoadAll(ctx context.Context) ([]domain.Booking, error)
	LoadForUser(ctx context.Context, userID string) ([]domain.Booking, error)
	SaveAll(ctx context.Context, bookings []domain.Booking) error
	CurrentUser(ctx context.Context) (*domain.User, error)
	SetCurrentUser(ctx context.Context, user *domain.User) error
	ClearCurrentUser(ctx context.Context) error
}

// KVBookingRepository reads and writes the booking collection as one JSON
// document in the store. Every load re-reads the store, so other writers
// (other instances, the worker) are always visible; nothing is cached.
type KVBookingRepository struct {
	store storage.Store
}

func NewBookingRepository(store storage.Store) BookingRepository {
	return &KVBookingRepository{store: store}
}

// LoadAll returns the full collection. A missing record or one that fails
// to decode degrades to an empty collection rather than an error.
func (r *KVBookingRepository) LoadAll(ctx context.Context) ([]domain.Booking, error) {
	data, err := r.store.Get(ctx, storage.KeySpaceBookings)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return []domain.Booking{}, nil
		}
		return nil, err
	}

	var bookings []domain.Booking
	if err := json.Unmarshal(data, &bookings); err != nil {
		log.Printf("malformed bookings record, treating as empty: %v", err)
		return []domain.Booking{}, nil
	}
	if bookings == nil {
		bookings = []domain.Booking{}
	}
	return bookings, nil
}

// LoadForUser filters LoadAll by exact userId, keeping stored order.
func (r *KVBookingRepository) LoadForUser(ctx context.Context, userID string) ([]domain.Booking, error) {
	all, err := r.LoadAll(ctx)
	if err != nil {
		return nil, err
	}

	mine := make([]domain.Booking, 0)
	for _, b := range all {
		if b.UserID == userID {
			mine = append(mine, b)
		}
	}
	return mine, nil
}

func (r *KVBookingRepository) SaveAll(ctx context.Context, bookings []domain.Booking) error {
	data, err := json.Marshal(bookings)
	if err != nil {
		return err
	}
	return r.store.Set(ctx, storage.KeySpaceBookings, data)
}

// CurrentUser returns the session user, or nil when logged out. A stored
// JSON null or an unreadable record both count as logged out.
func (r *KVBookingRepository) CurrentUser(ctx context.Context) (*domain.User, error) {
	data, err := r.store.Get(ctx, storage.KeyCurrentUser)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	var user *domain.User
	if err := json.Unmarshal(data, &user); err != nil {
		log.Printf("malformed current user record, treating as logged out: %v", err)
		return nil, nil
	}
	return user, nil
}

func (r *KVBookingRepository) SetCurrentUser(ctx context.Context, user *domain.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return r.store.Set(ctx, storage.KeyCurrentUser, data)
}

func (r *KVBookingRepository) ClearCurrentUser(ctx context.Context) error {
	return r.store.Remove(ctx, storage.KeyCurrentUser)
}

var _ BookingRepository = (*KVBookingRepository)(nil)
