package routes

import (
	"fmt"
	"net/http"

	"serviceboard/handlers"
	"serviceboard/middleware"

	"github.com/gin-gonic/gin"
)

// AuthMode selects the guard attached to a route.
type AuthMode int

const (
	// Public routes run without a credential.
	Public AuthMode = iota
	// Protected routes require a valid credential cookie.
	Protected
	// Scoped routes additionally require the credential email to equal a path parameter.
	Scoped
)

// Route is one row of the route table.
type Route struct {
	Method     string
	Path       string
	Auth       AuthMode
	ScopeParam string
	Handler    gin.HandlerFunc
}

// Table lists every endpoint the server exposes.
func Table(hb *handlers.HandlerBundle) []Route {
	return []Route{
		{Method: http.MethodGet, Path: "/", Handler: hb.RootHandler},
		{Method: http.MethodGet, Path: "/health", Handler: hb.HealthHandler},
		{Method: http.MethodGet, Path: "/metrics", Handler: hb.MetricsHandler},

		{Method: http.MethodPost, Path: "/jwt", Handler: hb.IssueTokenHandler},
		{Method: http.MethodGet, Path: "/logout", Handler: hb.LogoutHandler},

		{Method: http.MethodGet, Path: "/services", Handler: hb.ListServicesHandler},
		{Method: http.MethodPost, Path: "/services", Handler: hb.CreateServiceHandler},
		{Method: http.MethodGet, Path: "/services/user/:email", Auth: Scoped, ScopeParam: "email", Handler: hb.ListProviderServicesHandler},
		{Method: http.MethodGet, Path: "/service/:id", Auth: Protected, Handler: hb.GetServiceHandler},
		{Method: http.MethodPut, Path: "/service/:id", Auth: Protected, Handler: hb.UpdateServiceHandler},
		{Method: http.MethodDelete, Path: "/service/:id", Auth: Protected, Handler: hb.DeleteServiceHandler},

		{Method: http.MethodPost, Path: "/bookings", Handler: hb.CreateBookingHandler},
		{Method: http.MethodGet, Path: "/bookings/:email", Handler: hb.ListUserBookingsHandler},
		{Method: http.MethodGet, Path: "/bookings/provider/:email", Handler: hb.ListProviderBookingsHandler},
		{Method: http.MethodPatch, Path: "/bookings/status/:id", Auth: Protected, Handler: hb.UpdateBookingStatusHandler},
	}
}

// chain builds the handler chain for a route from its auth flag.
func chain(rt Route, guard gin.HandlerFunc) ([]gin.HandlerFunc, error) {
	if rt.Handler == nil {
		return nil, fmt.Errorf("route %s %s has no handler", rt.Method, rt.Path)
	}
	switch rt.Auth {
	case Public:
		return []gin.HandlerFunc{rt.Handler}, nil
	case Protected:
		if guard == nil {
			return nil, fmt.Errorf("route %s %s requires a guard", rt.Method, rt.Path)
		}
		return []gin.HandlerFunc{guard, rt.Handler}, nil
	case Scoped:
		if guard == nil || rt.ScopeParam == "" {
			return nil, fmt.Errorf("route %s %s requires a guard and scope param", rt.Method, rt.Path)
		}
		return []gin.HandlerFunc{guard, middleware.RequireEmailParam(rt.ScopeParam), rt.Handler}, nil
	default:
		return nil, fmt.Errorf("route %s %s has unknown auth mode %d", rt.Method, rt.Path, rt.Auth)
	}
}

// RegisterRoutes attaches every route in the table to r.
func RegisterRoutes(r gin.IRoutes, hb *handlers.HandlerBundle) error {
	for _, rt := range Table(hb) {
		handlersChain, err := chain(rt, hb.Guard)
		if err != nil {
			return err
		}
		r.Handle(rt.Method, rt.Path, handlersChain...)
	}
	return nil
}
