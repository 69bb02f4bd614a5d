package handlers

import (
	"serviceboard/middleware"
	"serviceboard/services/booking"
	"serviceboard/services/catalog"
	"serviceboard/utils"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Guard validates the credential cookie on protected routes.
	Guard gin.HandlerFunc

	// Liveness and observability
	RootHandler    gin.HandlerFunc
	HealthHandler  gin.HandlerFunc
	MetricsHandler gin.HandlerFunc

	// Credential endpoints
	IssueTokenHandler gin.HandlerFunc
	LogoutHandler     gin.HandlerFunc

	// Service endpoints
	ListServicesHandler         gin.HandlerFunc
	GetServiceHandler           gin.HandlerFunc
	CreateServiceHandler        gin.HandlerFunc
	ListProviderServicesHandler gin.HandlerFunc
	DeleteServiceHandler        gin.HandlerFunc
	UpdateServiceHandler        gin.HandlerFunc

	// Booking endpoints
	CreateBookingHandler        gin.HandlerFunc
	ListUserBookingsHandler     gin.HandlerFunc
	ListProviderBookingsHandler gin.HandlerFunc
	UpdateBookingStatusHandler  gin.HandlerFunc
}

// Deps are the collaborators the handlers are built from.
type Deps struct {
	Catalog    catalog.CatalogService
	Bookings   booking.BookingService
	Tokens     *utils.JWTManager
	Revoker    utils.TokenRevoker
	Health     *utils.HealthMonitor
	Gatherer   prometheus.Gatherer
	CookieName string
	Production bool
}

// NewHandlerBundle wires every endpoint handler from deps.
func NewHandlerBundle(deps Deps) *HandlerBundle {
	exposeDetails := !deps.Production
	authHandler := NewAuthHandler(deps.Tokens, deps.Revoker, deps.CookieName, deps.Production)
	serviceHandler := NewServiceHandler(deps.Catalog, exposeDetails)
	bookingHandler := NewBookingHandler(deps.Bookings, exposeDetails)

	return &HandlerBundle{
		Guard: middleware.JWTCookieAuthMiddleware(deps.CookieName, deps.Tokens, deps.Revoker),

		RootHandler:    RootHandler,
		HealthHandler:  HealthHandler(deps.Health),
		MetricsHandler: MetricsHandler(deps.Gatherer),

		IssueTokenHandler: authHandler.IssueTokenHandler,
		LogoutHandler:     authHandler.LogoutHandler,

		ListServicesHandler:         serviceHandler.ListServicesHandler,
		GetServiceHandler:           serviceHandler.GetServiceHandler,
		CreateServiceHandler:        serviceHandler.CreateServiceHandler,
		ListProviderServicesHandler: serviceHandler.ListProviderServicesHandler,
		DeleteServiceHandler:        serviceHandler.DeleteServiceHandler,
		UpdateServiceHandler:        serviceHandler.UpdateServiceHandler,

		CreateBookingHandler:        bookingHandler.CreateBookingHandler,
		ListUserBookingsHandler:     bookingHandler.ListUserBookingsHandler,
		ListProviderBookingsHandler: bookingHandler.ListProviderBookingsHandler,
		UpdateBookingStatusHandler:  bookingHandler.UpdateStatusHandler,
	}
}
