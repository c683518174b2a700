// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"bazaar/internal/delivery/http/middleware"
	"bazaar/internal/delivery/http/router/handler"
	"bazaar/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccountHandler *handler.AccountHandler
	CatalogHandler *handler.CatalogHandler
	OrderHandler   *handler.OrderHandler
	ContactHandler *handler.ContactHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler *handler.AccountHandler
	catalogHandler *handler.CatalogHandler
	orderHandler   *handler.OrderHandler
	contactHandler *handler.ContactHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler: params.AccountHandler,
		catalogHandler: params.CatalogHandler,
		orderHandler:   params.OrderHandler,
		contactHandler: params.ContactHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api/v1")

	// Public account routes
	userGroup := api.Group("/user")
	{
		userGroup.POST("/register", r.accountHandler.Register)
		userGroup.POST("/register/confirm", r.accountHandler.Confirm)
		userGroup.POST("/login", r.accountHandler.Login)
	}

	// Account routes that require authentication
	userGroup.GET("/details", r.accountHandler.GetDetails, r.authMiddleware.Authenticate)
	userGroup.POST("/details", r.accountHandler.UpdateDetails, r.authMiddleware.Authenticate)

	// Contact routes require authentication and the buyer role
	contactGroup := userGroup.Group("/contact")
	contactGroup.Use(r.authMiddleware.Authenticate)
	contactGroup.Use(r.authMiddleware.RequireRole(entity.RoleBuyer))
	{
		contactGroup.GET("", r.contactHandler.ListContacts)
		contactGroup.POST("", r.contactHandler.CreateContact)
		contactGroup.PUT("/:id", r.contactHandler.UpdateContact)
		contactGroup.DELETE("/:id", r.contactHandler.DeleteContact)
	}

	// Public catalog routes
	api.GET("/shops", r.catalogHandler.ListShops)
	api.GET("/categories", r.catalogHandler.ListCategories)
	api.GET("/products", r.catalogHandler.ListProducts)
	api.GET("/products/search", r.catalogHandler.SearchListings)

	// Partner routes require authentication and the shop role
	partnerGroup := api.Group("/partner")
	partnerGroup.Use(r.authMiddleware.Authenticate)
	partnerGroup.Use(r.authMiddleware.RequireRole(entity.RoleShop))
	{
		partnerGroup.POST("/update", r.catalogHandler.UpdateFeed)
		partnerGroup.GET("/state", r.catalogHandler.GetState)
		partnerGroup.POST("/state", r.catalogHandler.SetState)
		partnerGroup.GET("/orders", r.orderHandler.ListPartnerOrders)
	}

	// Basket and order routes require authentication and the buyer role
	basketGroup := api.Group("/basket")
	basketGroup.Use(r.authMiddleware.Authenticate)
	basketGroup.Use(r.authMiddleware.RequireRole(entity.RoleBuyer))
	{
		basketGroup.GET("", r.orderHandler.GetBasket)
		basketGroup.POST("", r.orderHandler.AddItems)
		basketGroup.PUT("", r.orderHandler.UpdateItems)
		basketGroup.DELETE("", r.orderHandler.RemoveItems)
	}

	orderGroup := api.Group("/order")
	orderGroup.Use(r.authMiddleware.Authenticate)
	orderGroup.Use(r.authMiddleware.RequireRole(entity.RoleBuyer))
	{
		orderGroup.GET("", r.orderHandler.ListOrders)
		orderGroup.POST("", r.orderHandler.PlaceOrder)
	}
}
