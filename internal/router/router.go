package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	ListBuses(c *ginext.Context)
	CreateBooking(c *ginext.Context)
	ListBookings(c *ginext.Context)
	CancelBooking(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Buses
		api.GET("/buses", h.ListBuses)

		// Bookings
		api.POST("/bookings", h.CreateBooking)
		api.GET("/bookings", h.ListBookings)
		api.DELETE("/bookings", h.CancelBooking)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	router.GET("/", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{
			"message": "Welcome to the bus booking API",
			"endpoints": ginext.H{
				"GET /api/buses":       "view all buses",
				"POST /api/bookings":   "book a ticket",
				"GET /api/bookings":    "view all bookings",
				"DELETE /api/bookings": "cancel a booking by passenger name",
			},
		})
	})

	return router
}
