package shows

import (
	"errors"
	"net/http"

	"beeos/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

// ListShowtimes handles GET /api/v1/showtimes
func (c *Controller) ListShowtimes(ctx *gin.Context) {
	var query ShowtimeListQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		response.Error(ctx, http.StatusBadRequest, "Invalid query parameters", err.Error())
		return
	}

	showtimes, totalCount, err := c.service.ListShowtimes(ctx.Request.Context(), query)
	if err != nil {
		response.Error(ctx, http.StatusInternalServerError, "Failed to list showtimes", err.Error())
		return
	}

	response.Success(ctx, http.StatusOK, "Showtimes retrieved successfully", gin.H{
		"showtimes":   showtimes,
		"total_count": totalCount,
		"page":        query.Page,
		"limit":       query.Limit,
	})
}

// GetShowtime handles GET /api/v1/showtimes/:id
func (c *Controller) GetShowtime(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.Error(ctx, http.StatusBadRequest, "Invalid showtime ID", nil)
		return
	}

	showtime, err := c.service.GetShowtime(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrShowtimeNotFound) {
			response.Error(ctx, http.StatusNotFound, "Showtime not found", nil)
			return
		}
		response.Error(ctx, http.StatusInternalServerError, "Failed to get showtime", err.Error())
		return
	}

	response.Success(ctx, http.StatusOK, "Showtime retrieved successfully", showtime)
}

// ListFilms handles GET /api/v1/films
func (c *Controller) ListFilms(ctx *gin.Context) {
	films, err := c.service.ListFilms(ctx.Request.Context())
	if err != nil {
		response.Error(ctx, http.StatusInternalServerError, "Failed to list films", err.Error())
		return
	}

	response.Success(ctx, http.StatusOK, "Films retrieved successfully", films)
}

// GetStudioSeats handles GET /api/v1/studios/:id/seats
func (c *Controller) GetStudioSeats(ctx *gin.Context) {
	studioID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.Error(ctx, http.StatusBadRequest, "Invalid studio ID", nil)
		return
	}

	seats, err := c.service.GetStudioSeats(ctx.Request.Context(), studioID)
	if err != nil {
		response.Error(ctx, http.StatusInternalServerError, "Failed to get seats", err.Error())
		return
	}

	response.Success(ctx, http.StatusOK, "Seats retrieved successfully", seats)
}
