package routes

import (
	"daily-delivery-api/handlers"
	"daily-delivery-api/middleware"
	"daily-delivery-api/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB, log *zap.Logger) {
	customers := handlers.NewCustomerHandler(services.NewCustomerService(db, log))
	orders := handlers.NewOrderHandler(services.NewOrderService(db, log))
	payments := handlers.NewPaymentHandler(services.NewPaymentService(db, log))
	portal := handlers.NewPortalHandler(services.NewPortalService(db, log))

	// ── Staff management surface ───────────────────────────────────
	staff := r.Group("/api")
	staff.Use(middleware.StaffKeyRequired())
	{
		staff.POST("/customers", customers.Create)
		staff.GET("/customers", customers.List)
		staff.GET("/customers/:id", customers.Get)
		staff.PUT("/customers/:id", customers.Update)
		staff.DELETE("/customers/:id", customers.Delete)
		staff.POST("/customers/:id/access-key", customers.RegenerateAccessKey)

		staff.POST("/orders", orders.Create)
		staff.GET("/orders", orders.List)
		staff.GET("/orders/:id", orders.Get)
		staff.PUT("/orders/:id", orders.Update)
		staff.DELETE("/orders/:id", orders.Delete)

		staff.POST("/payments", payments.Create)
		staff.GET("/payments", payments.List)
		staff.GET("/payments/:id", payments.Get)
		staff.DELETE("/payments/:id", payments.Delete)
	}

	// ── Customer self-service (access-key gated in the service) ────
	r.GET("/api/portal/overview", portal.Overview)
}
