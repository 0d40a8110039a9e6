package routes

import (
	"pizza-store/handlers"
	"pizza-store/middleware"
	"pizza-store/models"
	"pizza-store/store"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, gw *store.Gateway) {
	handlers.Use(gw)

	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		public.POST("/auth/register", handlers.Register)
		public.POST("/auth/login", handlers.Login)
		public.GET("/menu", handlers.GetMenu)
		public.GET("/stores", handlers.ListStores)
	}

	// ── Authenticated routes ───────────────────────────────────────
	auth := r.Group("/api")
	auth.Use(middleware.AuthRequired())
	{
		auth.GET("/profile", handlers.GetProfile)
		auth.PUT("/profile", handlers.UpdateProfile)
		auth.POST("/orders", handlers.PlaceOrder)
		auth.GET("/orders", handlers.GetOrders)
		auth.GET("/orders/:id", handlers.GetOrderDetail)
	}

	// ── Driver & manager routes ────────────────────────────────────
	driver := r.Group("/api")
	driver.Use(middleware.AuthRequired(), middleware.RoleAtLeast(models.RoleDriver, gw.RoleOf))
	{
		driver.PUT("/orders/:id/status", handlers.UpdateOrderStatus)
	}

	// ── Manager routes ─────────────────────────────────────────────
	manager := r.Group("/api")
	manager.Use(middleware.AuthRequired(), middleware.RoleAtLeast(models.RoleManager, gw.RoleOf))
	{
		manager.POST("/menu", handlers.AddMenuItem)
		manager.PUT("/menu/:name", handlers.UpdateMenuItem)
		manager.PUT("/users/:login", handlers.UpdateUser)
	}
}
