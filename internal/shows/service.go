package shows

import (
	"context"
	"fmt"
	"time"

	"beeos/pkg/cache"

	"github.com/google/uuid"
)

// Service interface defines the contract for showtime lookups
type Service interface {
	GetShowtime(ctx context.Context, id uuid.UUID) (*Showtime, error)
	ListShowtimes(ctx context.Context, query ShowtimeListQuery) ([]Showtime, int64, error)
	ListFilms(ctx context.Context) ([]Film, error)
	GetStudioSeats(ctx context.Context, studioID uuid.UUID) ([]Seat, error)
}

type service struct {
	repo     Repository
	cache    cache.Service
	cacheTTL time.Duration
}

// NewService creates a new shows service instance. cache may be nil, lookups
// then go straight to the database.
func NewService(repo Repository, cacheSvc cache.Service, cacheTTL time.Duration) Service {
	return &service{
		repo:     repo,
		cache:    cacheSvc,
		cacheTTL: cacheTTL,
	}
}

// GetShowtime returns a showtime with film and studio preloaded. Showtimes are
// immutable within a checkout, so a short cache window is safe.
func (s *service) GetShowtime(ctx context.Context, id uuid.UUID) (*Showtime, error) {
	if s.cache == nil {
		return s.repo.GetShowtimeByID(ctx, id)
	}

	var showtime Showtime
	key := fmt.Sprintf("showtime:%s", id)
	err := s.cache.GetOrSet(ctx, key, s.cacheTTL, func() (interface{}, error) {
		return s.repo.GetShowtimeByID(ctx, id)
	}, &showtime)
	if err != nil {
		return nil, err
	}
	return &showtime, nil
}

func (s *service) ListShowtimes(ctx context.Context, query ShowtimeListQuery) ([]Showtime, int64, error) {
	return s.repo.ListShowtimes(ctx, query)
}

func (s *service) ListFilms(ctx context.Context) ([]Film, error) {
	return s.repo.ListFilms(ctx)
}

func (s *service) GetStudioSeats(ctx context.Context, studioID uuid.UUID) ([]Seat, error) {
	return s.repo.GetSeatsByStudio(ctx, studioID)
}
