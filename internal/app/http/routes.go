package routes

import (
	authapi "inventory-app/internal/api/auth"
	buyersapi "inventory-app/internal/api/buyers"
	"inventory-app/internal/api/catalog"
	"inventory-app/internal/api/dashboard"
	deliveriesapi "inventory-app/internal/api/deliveries"
	ordersapi "inventory-app/internal/api/orders"
	suppliersapi "inventory-app/internal/api/suppliers"
	usersapi "inventory-app/internal/api/users"
	"inventory-app/internal/app/http/middleware"
	"inventory-app/internal/domain/access"
	"inventory-app/internal/domain/users"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	// Built once; every reader shares the same immutable table.
	table := access.NewTable()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	public := r.Group("/")
	public.Use(middleware.SanitizeInputMiddleware())

	public.POST("/register", authapi.Register)
	public.POST("/login", authapi.Login)

	public.GET("/auth/google", authapi.GoogleStart)
	public.GET("/auth/google/callback", authapi.GoogleCallback)

	// Authenticated
	auth := r.Group("/")
	auth.Use(middleware.AuthMiddleware())

	auth.GET("/me", usersapi.Me(table))
	auth.POST("/change-password", authapi.ChangePassword)

	auth.GET("/dashboard", dashboard.Dashboard)

	// Shared catalog data: seasons and drops carry no role gate.
	auth.GET("/seasons", catalog.ListSeasons)
	auth.POST("/seasons", catalog.CreateSeason)
	auth.PUT("/seasons/:id", catalog.UpdateSeason)
	auth.DELETE("/seasons/:id", catalog.DeleteSeason)

	auth.GET("/drops", catalog.ListDrops)
	auth.POST("/drops", catalog.CreateDrop)
	auth.PUT("/drops/:id", catalog.UpdateDrop)
	auth.DELETE("/drops/:id", catalog.DeleteDrop)

	auth.GET("/products", middleware.RequireRoles(users.RoleBuyer, users.RoleSupplier), catalog.ListProducts)
	auth.POST("/products", middleware.RequireRoles(users.RoleSupplier), catalog.CreateProduct)
	auth.PUT("/products/:id", middleware.RequireRoles(users.RoleSupplier), catalog.UpdateProduct)
	auth.DELETE("/products/:id", middleware.RequireRoles(users.RoleSupplier), catalog.DeleteProduct)

	supplierOnly := auth.Group("/suppliers")
	supplierOnly.Use(middleware.RequireRoles(users.RoleSupplier))
	supplierOnly.GET("", suppliersapi.ListSuppliers)
	supplierOnly.POST("", suppliersapi.CreateSupplier)
	supplierOnly.PUT("/:id", suppliersapi.UpdateSupplier)
	supplierOnly.DELETE("/:id", suppliersapi.DeleteSupplier)

	auth.POST("/buyers", middleware.RequireRoles(users.RoleBuyer), buyersapi.CreateBuyer)
	// List/edit/delete intentionally mirror the legacy gating (supplier role),
	// pending product-owner clarification.
	auth.GET("/buyers", middleware.RequireRoles(users.RoleSupplier), buyersapi.ListBuyers)
	auth.PUT("/buyers/:id", middleware.RequireRoles(users.RoleSupplier), buyersapi.UpdateBuyer)
	auth.DELETE("/buyers/:id", middleware.RequireRoles(users.RoleSupplier), buyersapi.DeleteBuyer)

	auth.GET("/orders", ordersapi.ListOrders)
	auth.POST("/orders", middleware.RequireRoles(users.RoleBuyer), ordersapi.CreateOrder)
	auth.PUT("/orders/:id", middleware.RequireRoles(users.RoleBuyer), ordersapi.UpdateOrder)
	auth.DELETE("/orders/:id", middleware.RequireRoles(users.RoleBuyer), ordersapi.DeleteOrder)
	// Status updates do their own precheck so refusals stay silent redirects.
	auth.POST("/orders/:id/status", ordersapi.UpdateOrderStatus)

	auth.GET("/deliveries", deliveriesapi.ListDeliveries)
	auth.POST("/deliveries", middleware.RequireRoles(users.RoleSupplier), deliveriesapi.CreateDelivery)
	auth.PUT("/deliveries/:id", middleware.RequireRoles(users.RoleSupplier), deliveriesapi.UpdateDelivery)
	auth.DELETE("/deliveries/:id", middleware.RequireRoles(users.RoleSupplier), deliveriesapi.DeleteDelivery)
}
