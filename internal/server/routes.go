package server

import (
	"github.com/labstack/echo/v4"

	"schoolsite/internal/config"
	"schoolsite/internal/handler"
	"schoolsite/internal/middleware"
)

// Handlers bundles every route handler for wiring in main.
type Handlers struct {
	Auth         *handler.AuthHandler
	Merch        *handler.MerchHandler
	Order        *handler.OrderHandler
	Teacher      *handler.TeacherHandler
	Review       *handler.ReviewHandler
	School       *handler.SchoolHandler
	Document     *handler.DocumentHandler
	Category     *handler.CategoryHandler
	AdminProduct *handler.AdminProductHandler
	ProductImage *handler.ProductImageHandler
	AdminOrder   *handler.AdminOrderHandler
}

func registerRoutes(e *echo.Echo, cfg config.Config, h Handlers) {
	authRequired := middleware.AuthJWT(cfg)
	adminOnly := middleware.AdminRoleGuard()
	optionalAuth := middleware.OptionalAuth(cfg)

	api := e.Group("/api")

	api.POST("/auth/login", h.Auth.Login)

	// public storefront
	v1 := api.Group("/v1")
	merchThrottle := middleware.Throttle(middleware.ThrottleConfig{
		Scope: "merch", PerMinute: cfg.Throttle.MerchPerMinute,
	})
	v1.GET("/merch", h.Merch.List, merchThrottle)
	v1.GET("/merch/categories", h.Merch.Categories, merchThrottle)
	v1.GET("/merch/:id", h.Merch.Detail, merchThrottle)
	v1.POST("/orders", h.Order.Create, middleware.Throttle(middleware.ThrottleConfig{
		Scope: "orders", PerMinute: cfg.Throttle.OrdersPerMinute,
	}))

	// teachers: reads are public, inactive rows only show up for admins
	api.GET("/teachers", h.Teacher.List, optionalAuth)
	api.GET("/teachers/:id", h.Teacher.Detail, optionalAuth)
	api.POST("/teachers", h.Teacher.Create, authRequired, adminOnly)
	api.PUT("/teachers/:id", h.Teacher.Update, authRequired, adminOnly)
	api.PUT("/teachers/:id/photo", h.Teacher.SetPhoto, authRequired, adminOnly)
	api.DELETE("/teachers/:id", h.Teacher.Delete, authRequired, adminOnly)

	api.GET("/reviews", h.Review.List)
	api.POST("/reviews", h.Review.Create, middleware.Throttle(middleware.ThrottleConfig{
		Scope: "reviews", PerMinute: cfg.Throttle.ReviewsPerMinute,
	}))

	api.GET("/school", h.School.Get)
	api.PUT("/school", h.School.Update, authRequired, adminOnly)

	api.GET("/documents", h.Document.List, optionalAuth)
	api.GET("/documents/:id", h.Document.Detail, optionalAuth)
	api.GET("/documents/:id/download", h.Document.Download, optionalAuth)
	api.POST("/documents", h.Document.Create, authRequired, adminOnly)
	api.DELETE("/documents/:id", h.Document.Delete, authRequired, adminOnly)

	api.GET("/categories", h.Category.List)
	api.POST("/categories", h.Category.Create, authRequired, adminOnly)
	api.PUT("/categories/:id", h.Category.Update, authRequired, adminOnly)
	api.DELETE("/categories/:id", h.Category.Delete, authRequired, adminOnly)

	// catalog resources: reads are open, writes admin-only
	api.GET("/products", h.AdminProduct.List)
	api.GET("/products/:id", h.AdminProduct.Detail)
	api.GET("/product-images", h.ProductImage.List)
	api.GET("/product-images/:id", h.ProductImage.Detail)

	// back-office writes and orders
	admin := api.Group("", authRequired, adminOnly)
	admin.POST("/products", h.AdminProduct.Create)
	admin.PUT("/products/:id", h.AdminProduct.Update)
	admin.DELETE("/products/:id", h.AdminProduct.Delete)
	admin.POST("/products/:id/images", h.ProductImage.Upload)
	admin.PUT("/products/:id/images/order", h.ProductImage.Reorder)
	admin.DELETE("/product-images/:id", h.ProductImage.Delete)
	admin.GET("/orders", h.AdminOrder.List)
	admin.GET("/orders/:id", h.AdminOrder.Detail)
	admin.PUT("/orders/:id/note", h.AdminOrder.UpdateNote)
}
