package shows

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrShowtimeNotFound = errors.New("showtime not found")

type Repository interface {
	GetShowtimeByID(ctx context.Context, id uuid.UUID) (*Showtime, error)
	ListShowtimes(ctx context.Context, query ShowtimeListQuery) ([]Showtime, int64, error)
	ListFilms(ctx context.Context) ([]Film, error)
	GetSeatsByStudio(ctx context.Context, studioID uuid.UUID) ([]Seat, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetShowtimeByID(ctx context.Context, id uuid.UUID) (*Showtime, error) {
	var showtime Showtime
	err := r.db.WithContext(ctx).
		Preload("Film").
		Preload("Studio").
		Where("id = ?", id).
		First(&showtime).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrShowtimeNotFound
		}
		return nil, err
	}
	return &showtime, nil
}

func (r *repository) ListShowtimes(ctx context.Context, query ShowtimeListQuery) ([]Showtime, int64, error) {
	var showtimes []Showtime
	var totalCount int64

	// Set defaults
	if query.Page <= 0 {
		query.Page = 1
	}
	if query.Limit <= 0 {
		query.Limit = 10
	}

	baseQuery := r.db.WithContext(ctx).Model(&Showtime{})

	if query.FilmID != "" {
		if filmID, err := uuid.Parse(query.FilmID); err == nil {
			baseQuery = baseQuery.Where("film_id = ?", filmID)
		}
	}

	if query.Date != "" {
		if date, err := time.Parse("2006-01-02", query.Date); err == nil {
			baseQuery = baseQuery.Where("starts_at >= ? AND starts_at < ?", date, date.AddDate(0, 0, 1))
		}
	}

	if query.UpcomingOnly {
		baseQuery = baseQuery.Where("starts_at > ?", time.Now())
	}

	if err := baseQuery.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}

	offset := (query.Page - 1) * query.Limit
	err := baseQuery.
		Preload("Film").
		Preload("Studio").
		Order("starts_at ASC").
		Offset(offset).
		Limit(query.Limit).
		Find(&showtimes).Error

	return showtimes, totalCount, err
}

func (r *repository) ListFilms(ctx context.Context) ([]Film, error) {
	var films []Film
	err := r.db.WithContext(ctx).Order("title ASC").Find(&films).Error
	return films, err
}

func (r *repository) GetSeatsByStudio(ctx context.Context, studioID uuid.UUID) ([]Seat, error) {
	var seats []Seat
	err := r.db.WithContext(ctx).
		Where("studio_id = ?", studioID).
		Order("row_line ASC, column_no ASC").
		Find(&seats).Error
	return seats, err
}

// ShowtimeListQuery holds list filters
type ShowtimeListQuery struct {
	FilmID       string `form:"film_id"`
	Date         string `form:"date"`
	UpcomingOnly bool   `form:"upcoming"`
	Page         int    `form:"page"`
	Limit        int    `form:"limit"`
}
