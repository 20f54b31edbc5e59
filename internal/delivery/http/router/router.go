// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"cotiza/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ProposalHandler     *handler.ProposalHandler
	SolicitudHandler    *handler.SolicitudHandler
	NotificationHandler *handler.NotificationHandler
	CityHandler         *handler.CityHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	proposalHandler     *handler.ProposalHandler
	solicitudHandler    *handler.SolicitudHandler
	notificationHandler *handler.NotificationHandler
	cityHandler         *handler.CityHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		proposalHandler:     params.ProposalHandler,
		solicitudHandler:    params.SolicitudHandler,
		notificationHandler: params.NotificationHandler,
		cityHandler:         params.CityHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	proposalGroup := api.Group("/proposals")
	{
		proposalGroup.POST("", r.proposalHandler.Create)
		proposalGroup.GET("/:id", r.proposalHandler.Get)
		proposalGroup.PUT("/:id/accept", r.proposalHandler.Accept)
		proposalGroup.PUT("/:id/reject", r.proposalHandler.Reject)
		proposalGroup.PATCH("/:id/status", r.proposalHandler.OverrideStatus)
		proposalGroup.GET("/company/:companyId", r.proposalHandler.ListByCompany)
		proposalGroup.GET("/solicitud/:solicitudId", r.proposalHandler.ListBySolicitud)
		proposalGroup.GET("/status/:status", r.proposalHandler.ListByStatus)
	}

	solicitudGroup := api.Group("/solicitudes")
	{
		solicitudGroup.POST("", r.solicitudHandler.Create)
		solicitudGroup.GET("/:id", r.solicitudHandler.Get)
	}

	notificationGroup := api.Group("/notifications")
	{
		notificationGroup.GET("/user/:usuarioId", r.notificationHandler.ListByUser)
		notificationGroup.GET("/user/:usuarioId/unread-count", r.notificationHandler.UnreadCount)
		notificationGroup.PUT("/user/:usuarioId/read-all", r.notificationHandler.MarkAllRead)
		notificationGroup.PUT("/:id/read", r.notificationHandler.MarkRead)
	}

	api.GET("/cities", r.cityHandler.ListActive)
}
