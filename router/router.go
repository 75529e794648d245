package router

import (
	"travel-webapp/handlers"
	"travel-webapp/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func SetupRoutes(app *fiber.App, h *handlers.Handler) {
	api := app.Group("/", logger.New(), recover.New())
	api.Get("/healthz", h.Health)

	//Hotels
	hotels := api.Group("/hotels")
	hotels.Get("/", h.GetHotels)
	// "featured" must be registered ahead of the ":id" wildcard
	hotels.Get("/featured", h.GetFeaturedHotels)
	hotels.Get("/:id", h.GetHotel)
	hotels.Post("/search", h.SearchHotels)

	//Flights
	flights := api.Group("/flights")
	flights.Get("/", h.GetFlights)
	flights.Get("/:id", h.GetFlight)
	flights.Post("/search", h.SearchFlights)

	//Transport
	transport := api.Group("/transport")
	transport.Get("/", h.GetTransport)
	transport.Get("/:id", h.GetTransportById)
	transport.Post("/search", h.SearchTransport)

	//Bookings
	bookings := api.Group("/bookings")
	bookings.Get("/", h.GetBookings)
	bookings.Get("/:id", h.GetBooking)
	bookings.Post("/", h.CreateBooking)

	//Auth
	auth := api.Group("/auth")
	auth.Post("/signin", h.SignIn)
	auth.Post("/signup", h.SignUp)
	auth.Get("/me", middleware.Authorize(), h.Me)

	//Support
	api.Post("/support/contact", h.ContactSupport)

	//Unified search
	api.Post("/search", h.UnifiedSearch)
}
