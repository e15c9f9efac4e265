// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"net/http"
	"strings"

	"addressbook/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	HealthHandler  *handler.HealthHandler
	AddressHandler *handler.AddressHandler
	UserHandler    *handler.UserHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	healthHandler  *handler.HealthHandler
	addressHandler *handler.AddressHandler
	userHandler    *handler.UserHandler
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		healthHandler:  params.HealthHandler,
		addressHandler: params.AddressHandler,
		userHandler:    params.UserHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
// Every route except the root answers with and without a trailing slash.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/", r.healthHandler.HealthCheck)

	addresses := e.Group("/addresses")
	{
		route(addresses, http.MethodPost, "", r.addressHandler.CreateAddress)
		route(addresses, http.MethodGet, "", r.addressHandler.ListAddresses)
		route(addresses, http.MethodGet, "/within_range", r.addressHandler.FindAddressesWithinRange)
		route(addresses, http.MethodGet, "/:id", r.addressHandler.GetAddress)
		route(addresses, http.MethodPatch, "/:id", r.addressHandler.UpdateAddress)
		route(addresses, http.MethodDelete, "/:id", r.addressHandler.DeleteAddress)

		// Users living at an address
		route(addresses, http.MethodPost, "/:id/users", r.userHandler.CreateUser)
		route(addresses, http.MethodGet, "/:id/users", r.userHandler.ListAddressUsers)
		route(addresses, http.MethodDelete, "/:id/users/:uid", r.userHandler.DeleteAddressUser)
	}

	users := e.Group("/users")
	{
		route(users, http.MethodPatch, "/:id", r.userHandler.UpdateUser)
	}
}

func route(g *echo.Group, method, path string, h echo.HandlerFunc) {
	path = strings.TrimSuffix(path, "/")
	g.Add(method, path, h)
	g.Add(method, path+"/", h)
}
