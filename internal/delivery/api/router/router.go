// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"drinkpos/internal/delivery/api/middleware"
	"drinkpos/internal/delivery/api/router/handler"
	"drinkpos/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler         *handler.UserHandler
	CatalogHandler      *handler.CatalogHandler
	CheckoutHandler     *handler.CheckoutHandler
	OrderHandler        *handler.OrderHandler
	ReportHandler       *handler.ReportHandler
	ShiftHandler        *handler.ShiftHandler
	CheckInHandler      *handler.CheckInHandler
	UploadHandler       *handler.UploadHandler
	NotificationHandler *handler.NotificationHandler
	DeviceHandler       *handler.DeviceHandler
	LiveHandler         *handler.LiveHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler         *handler.UserHandler
	catalogHandler      *handler.CatalogHandler
	checkoutHandler     *handler.CheckoutHandler
	orderHandler        *handler.OrderHandler
	reportHandler       *handler.ReportHandler
	shiftHandler        *handler.ShiftHandler
	checkInHandler      *handler.CheckInHandler
	uploadHandler       *handler.UploadHandler
	notificationHandler *handler.NotificationHandler
	deviceHandler       *handler.DeviceHandler
	liveHandler         *handler.LiveHandler
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:         params.UserHandler,
		catalogHandler:      params.CatalogHandler,
		checkoutHandler:     params.CheckoutHandler,
		orderHandler:        params.OrderHandler,
		reportHandler:       params.ReportHandler,
		shiftHandler:        params.ShiftHandler,
		checkInHandler:      params.CheckInHandler,
		uploadHandler:       params.UploadHandler,
		notificationHandler: params.NotificationHandler,
		deviceHandler:       params.DeviceHandler,
		liveHandler:         params.LiveHandler,
		authMiddleware:      params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	adminOnly := r.authMiddleware.RequireRole(entity.RoleAdmin)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.userHandler.Register)
		authGroup.POST("/login", r.userHandler.Login)
		authGroup.POST("/logout", r.userHandler.Logout, r.authMiddleware.Authenticate)
	}

	// API v1 routes
	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate) // All API v1 routes require authentication

	meGroup := apiV1.Group("/me")
	{
		meGroup.GET("", r.userHandler.GetProfile)
		meGroup.PATCH("", r.userHandler.UpdateProfile)
		meGroup.GET("/shifts", r.shiftHandler.MyShifts)
	}

	// Menu routes; changes need the admin role
	menuGroup := apiV1.Group("/menu")
	{
		menuGroup.GET("", r.catalogHandler.ListItems)
		menuGroup.GET("/:id", r.catalogHandler.GetItem)
		menuGroup.GET("/:id/availability", r.catalogHandler.GetAvailability)
		menuGroup.POST("", r.catalogHandler.CreateItem, adminOnly)
		menuGroup.PATCH("/:id", r.catalogHandler.UpdateItem, adminOnly)
		menuGroup.DELETE("/:id", r.catalogHandler.DeleteItem, adminOnly)
		menuGroup.PUT("/:id/stock", r.catalogHandler.SetStock, adminOnly)
	}

	// Ordering session of the calling staff member
	posGroup := apiV1.Group("/pos")
	{
		posGroup.GET("/session", r.checkoutHandler.GetSession)
		posGroup.POST("/cart/items", r.checkoutHandler.AddItem)
		posGroup.PATCH("/cart/items/:itemId", r.checkoutHandler.ChangeQuantity)
		posGroup.DELETE("/cart/items/:itemId", r.checkoutHandler.RemoveItem)
		posGroup.DELETE("/cart", r.checkoutHandler.ClearCart)
		posGroup.POST("/stage", r.checkoutHandler.Stage)
		posGroup.POST("/payment-method", r.checkoutHandler.SelectPaymentMethod)
		posGroup.POST("/cancel", r.checkoutHandler.Cancel)
		posGroup.POST("/confirm", r.checkoutHandler.Confirm)
		posGroup.GET("/transfer-qr", r.checkoutHandler.TransferQR)
	}

	ordersGroup := apiV1.Group("/orders")
	{
		ordersGroup.GET("", r.orderHandler.ListOrders)
		ordersGroup.GET("/:id", r.orderHandler.GetOrder)
		ordersGroup.DELETE("/:id", r.orderHandler.DeleteOrder, adminOnly)
	}
	apiV1.GET("/deleted-orders", r.orderHandler.ListDeletedOrders, adminOnly)

	// Reporting routes (require admin role)
	apiV1.GET("/reports/revenue", r.reportHandler.Revenue, adminOnly)
	apiV1.GET("/dashboard", r.reportHandler.Dashboard, adminOnly)

	// Staff management routes (require admin role)
	usersGroup := apiV1.Group("/users")
	usersGroup.Use(adminOnly)
	{
		usersGroup.GET("", r.userHandler.ListUsers)
		usersGroup.POST("", r.userHandler.CreateUser)
		usersGroup.GET("/:id", r.userHandler.GetUser)
		usersGroup.POST("/:id/approve", r.userHandler.ApproveUser)
		usersGroup.POST("/:id/lock", r.userHandler.LockUser)
		usersGroup.POST("/:id/unlock", r.userHandler.UnlockUser)
		usersGroup.DELETE("/:id", r.userHandler.DeleteUser)
	}

	shiftsGroup := apiV1.Group("/shifts")
	shiftsGroup.Use(adminOnly)
	{
		shiftsGroup.GET("", r.shiftHandler.ListShifts)
		shiftsGroup.POST("", r.shiftHandler.CreateShift)
		shiftsGroup.DELETE("/:id", r.shiftHandler.DeleteShift)
	}

	checkInsGroup := apiV1.Group("/checkins")
	{
		checkInsGroup.POST("", r.checkInHandler.CheckIn)
		checkInsGroup.GET("", r.checkInHandler.ListCheckIns)
	}

	apiV1.POST("/uploads", r.uploadHandler.Upload)

	notificationsGroup := apiV1.Group("/notifications")
	{
		notificationsGroup.GET("", r.notificationHandler.ListNotifications)
		notificationsGroup.GET("/unread-count", r.notificationHandler.UnreadCount)
		notificationsGroup.POST("/:id/read", r.notificationHandler.MarkRead)
		notificationsGroup.POST("/read-all", r.notificationHandler.MarkAllRead)
		notificationsGroup.POST("", r.notificationHandler.Send, adminOnly)
	}

	// Device management routes
	devicesGroup := apiV1.Group("/devices")
	{
		devicesGroup.POST("", r.deviceHandler.RegisterDevice)
		devicesGroup.GET("", r.deviceHandler.GetUserDevices)
		devicesGroup.PUT("/:id/token", r.deviceHandler.UpdateFCMToken)
		devicesGroup.DELETE("/:id", r.deviceHandler.DeactivateDevice)
	}

	// Live query streams (server-sent events)
	liveGroup := e.Group("/live")
	liveGroup.Use(r.authMiddleware.Authenticate)
	{
		liveGroup.GET("/menu", r.liveHandler.Menu)
		liveGroup.GET("/notifications", r.liveHandler.Notifications)
		liveGroup.GET("/me", r.liveHandler.Me)
		liveGroup.GET("/orders", r.liveHandler.Orders, adminOnly)
		liveGroup.GET("/deleted-orders", r.liveHandler.DeletedOrders, adminOnly)
		liveGroup.GET("/users", r.liveHandler.Users, adminOnly)
	}
}
