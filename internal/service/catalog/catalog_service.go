package catalog

import (
	"context"
	"errors"
	"sort"

	"github.com/astralvoyages/spacebooking/internal/domain"
)

var ErrDestinationNotFound = errors.New("destination not found")

type CatalogUseCase interface {
	Destinations(ctx context.Context) ([]domain.Destination, error)
	DestinationByName(ctx context.Context, name string) (*domain.Destination, error)
	Accommodations(ctx context.Context) ([]domain.Accommodation, error)
}

// Cache holds the destination list; nil means no caching.
type Cache interface {
	GetDestinations(ctx context.Context) ([]domain.Destination, error)
	SetDestinations(ctx context.Context, destinations []domain.Destination) error
}

// CatalogService serves the fixed destination and accommodation catalogs.
// Destinations come from configuration; the list is cached best effort.
type CatalogService struct {
	destinations []domain.Destination
	cache        Cache
}

func NewCatalogService(destinations []domain.Destination, cache Cache) *CatalogService {
	return &CatalogService{destinations: destinations, cache: cache}
}

func (s *CatalogService) Destinations(ctx context.Context) ([]domain.Destination, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetDestinations(ctx); err == nil && cached != nil {
			return cached, nil
		}
	}

	destinations := make([]domain.Destination, len(s.destinations))
	copy(destinations, s.destinations)
	if s.cache != nil {
		_ = s.cache.SetDestinations(ctx, destinations)
	}
	return destinations, nil
}

func (s *CatalogService) DestinationByName(ctx context.Context, name string) (*domain.Destination, error) {
	destinations, err := s.Destinations(ctx)
	if err != nil {
		return nil, err
	}
	for i := range destinations {
		if destinations[i].Name == name {
			return &destinations[i], nil
		}
	}
	return nil, ErrDestinationNotFound
}

func (s *CatalogService) Accommodations(ctx context.Context) ([]domain.Accommodation, error) {
	accommodations := make([]domain.Accommodation, 0, len(domain.Accommodations))
	for _, a := range domain.Accommodations {
		accommodations = append(accommodations, a)
	}
	sort.Slice(accommodations, func(i, j int) bool {
		return accommodations[i].PricePerDay < accommodations[j].PricePerDay
	})
	return accommodations, nil
}

var _ CatalogUseCase = (*CatalogService)(nil)
