package catalog

import (
	"context"
	"testing"

	"github.com/astralvoyages/spacebooking/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockCache struct {
	mock.Mock
}

func (m *MockCache) GetDestinations(ctx context.Context) ([]domain.Destination, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Destination), args.Error(1)
}

func (m *MockCache) SetDestinations(ctx context.Context, destinations []domain.Destination) error {
	args := m.Called(ctx, destinations)
	return args.Error(0)
}

var testDestinations = []domain.Destination{
	{Name: "Mars", Price: 1200000, TravelDuration: "7-9 months"},
	{Name: "Europa", Price: 2800000, TravelDuration: "5-6 years"},
}

func TestDestinations_CacheMiss(t *testing.T) {
	cache := &MockCache{}
	cache.On("GetDestinations", mock.Anything).Return(nil, nil).Once()
	cache.On("SetDestinations", mock.Anything, testDestinations).Return(nil).Once()
	service := NewCatalogService(testDestinations, cache)

	destinations, err := service.Destinations(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, testDestinations, destinations)
	cache.AssertExpectations(t)
}

func TestDestinations_CacheHit(t *testing.T) {
	cached := []domain.Destination{{Name: "Titan", Price: 3500000}}
	cache := &MockCache{}
	cache.On("GetDestinations", mock.Anything).Return(cached, nil).Once()
	service := NewCatalogService(testDestinations, cache)

	destinations, err := service.Destinations(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, cached, destinations)
	cache.AssertNotCalled(t, "SetDestinations", mock.Anything, mock.Anything)
}

func TestDestinations_NoCache(t *testing.T) {
	service := NewCatalogService(testDestinations, nil)

	destinations, err := service.Destinations(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, testDestinations, destinations)
}

func TestDestinationByName(t *testing.T) {
	service := NewCatalogService(testDestinations, nil)

	dest, err := service.DestinationByName(context.Background(), "Europa")
	assert.NoError(t, err)
	assert.Equal(t, 2800000.0, dest.Price)

	_, err = service.DestinationByName(context.Background(), "Atlantis")
	assert.ErrorIs(t, err, ErrDestinationNotFound)
}

func TestAccommodations_SortedByPrice(t *testing.T) {
	service := NewCatalogService(nil, nil)

	accommodations, err := service.Accommodations(context.Background())

	assert.NoError(t, err)
	assert.Len(t, accommodations, 3)
	assert.Equal(t, "standard", accommodations[0].ID)
	assert.Equal(t, "deluxe", accommodations[1].ID)
	assert.Equal(t, "luxury", accommodations[2].ID)
}
