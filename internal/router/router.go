package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"

	"github.com/JAL-Virtual/jal-bookings-events-sub000/internal/middleware"
)

type Handler interface {
	CreateEvent(c *ginext.Context)
	GetEvent(c *ginext.Context)
	ListEvents(c *ginext.Context)
	UpdateEvent(c *ginext.Context)
	DeleteEvent(c *ginext.Context)
	CreateSlot(c *ginext.Context)
	UpdateSlot(c *ginext.Context)
	DeleteSlot(c *ginext.Context)
	ListEventSlots(c *ginext.Context)
	CreateBooking(c *ginext.Context)
	CancelBooking(c *ginext.Context)
	ListBookings(c *ginext.Context)
	ListAuditLogs(c *ginext.Context)
}

func InitRouter(mode string, h Handler, a middleware.Authorizer, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Public reads
		api.GET("/events", h.ListEvents)
		api.GET("/events/:id", h.GetEvent)
		api.GET("/events/:id/slots", h.ListEventSlots)

		// Bookings: creation and cancellation are pilot-facing; listing by
		// event is admin-checked inside the handler.
		api.POST("/bookings", h.CreateBooking)
		api.DELETE("/bookings", h.CancelBooking)
		api.GET("/bookings", h.ListBookings)

		// Event/slot management: admin or staff key
		management := api.Group("", middleware.RequireManagement(a))
		{
			management.POST("/events", h.CreateEvent)
			management.PUT("/events/:id", h.UpdateEvent)
			management.DELETE("/events/:id", h.DeleteEvent)
			management.POST("/slots", h.CreateSlot)
			management.PUT("/slots/:id", h.UpdateSlot)
			management.DELETE("/slots/:id", h.DeleteSlot)
		}

		// Audit trail: admin key only
		admin := api.Group("", middleware.RequireAdmin(a))
		{
			admin.GET("/audit-logs", h.ListAuditLogs)
		}
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
