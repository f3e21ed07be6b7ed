package shows

import (
	"github.com/gin-gonic/gin"
)

// SetupShowRoutes wires the public browsing endpoints. Anyone can view
// showtimes; seat selection and checkout require authentication.
func SetupShowRoutes(router *gin.RouterGroup, controller *Controller) {
	films := router.Group("/films")
	{
		films.GET("", controller.ListFilms) // GET /api/v1/films
	}

	showtimes := router.Group("/showtimes")
	{
		showtimes.GET("", controller.ListShowtimes)    // GET /api/v1/showtimes
		showtimes.GET("/:id", controller.GetShowtime) // GET /api/v1/showtimes/:id
	}

	studios := router.Group("/studios")
	{
		studios.GET("/:id/seats", controller.GetStudioSeats) // GET /api/v1/studios/:id/seats
	}
}
