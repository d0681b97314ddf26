package main

import (
	"context"
	"log"
	"net/http"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/guestpost-hub/guestposthub/internal/admin"
	"github.com/guestpost-hub/guestposthub/internal/auth"
	"github.com/guestpost-hub/guestposthub/internal/config"
	"github.com/guestpost-hub/guestposthub/internal/marketplace"
	mware "github.com/guestpost-hub/guestposthub/internal/middleware"
	"github.com/guestpost-hub/guestposthub/internal/store"
	"github.com/guestpost-hub/guestposthub/internal/user"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	ctx := context.Background()
	st, err := store.Open(ctx, store.Options{
		Driver:      cfg.StoreDriver,
		PostgresURL: cfg.DatabaseURL,
		RedisURL:    cfg.RedisURL,
		RedisPrefix: cfg.RedisPrefix,
	})
	if err != nil {
		log.Fatalf("store error: %v", err)
	}
	log.Printf("store ready (driver=%s)", cfg.StoreDriver)

	session := auth.NewSession(st)
	if err := session.Bootstrap(ctx); err != nil {
		log.Fatalf("admin bootstrap failed: %v", err)
	}

	e := echo.New()
	e.HideBanner = true

	// Basic middleware
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())

	// Health and root routes
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"status": "ok", "service": "guestposthub"})
	})
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
	})
	e.GET("/ready", func(c echo.Context) error {
		if err := st.Ping(c.Request().Context()); err != nil {
			return c.JSON(http.StatusServiceUnavailable, echo.Map{"status": "not_ready", "error": "store unreachable"})
		}
		return c.JSON(http.StatusOK, echo.Map{"status": "ready"})
	})

	authHandler := auth.NewHandler(session)
	market := marketplace.NewHandler(st)
	adminHandler := admin.NewHandler(st)

	// Public routes
	// Auth routes with per-IP rate limiting to protect signup/login from abuse
	authGroup := e.Group("/auth")
	authGroup.Use(middleware.RateLimiter(middleware.NewRateLimiterMemoryStore(20)))
	authGroup.POST("/register", authHandler.Register)
	authGroup.POST("/login", authHandler.Login)

	e.GET("/marketplace/services", market.ListServices)
	e.GET("/marketplace/services/:id", market.GetService)
	e.GET("/marketplace/overview", market.Overview)

	// Protected routes
	api := e.Group("")
	api.Use(mware.Session(session))

	api.GET("/auth/me", authHandler.Me)
	api.POST("/auth/logout", authHandler.Logout)

	api.POST("/marketplace/services", market.CreateService, mware.RequireRoles(user.RoleSeller))
	api.PATCH("/marketplace/services/:id", market.UpdateService, mware.RequireRoles(user.RoleSeller))
	api.DELETE("/marketplace/services/:id", market.DeleteService, mware.RequireRoles(user.RoleSeller))
	api.GET("/marketplace/services/me", market.MyServices, mware.RequireRoles(user.RoleSeller))

	api.POST("/marketplace/orders", market.CreateOrder, mware.RequireRoles(user.RoleBuyer))
	api.GET("/marketplace/orders/me", market.MyOrders)
	api.POST("/marketplace/orders/:id/accept", market.AcceptOrder, mware.RequireRoles(user.RoleSeller))
	api.POST("/marketplace/orders/:id/complete", market.CompleteOrder, mware.RequireRoles(user.RoleSeller))
	api.POST("/marketplace/orders/:id/cancel", market.CancelOrder, mware.RequireRoles(user.RoleSeller))

	// Admin routes
	adminGroup := e.Group("/admin")
	adminGroup.Use(mware.Session(session))
	adminGroup.Use(mware.AdminGuard)

	adminGroup.GET("/users", adminHandler.ListUsers)
	adminGroup.POST("/users/:id/approve", adminHandler.ApproveUser)
	adminGroup.POST("/users/:id/revoke", adminHandler.RevokeUser)
	adminGroup.DELETE("/users/:id", adminHandler.DeleteUser)

	adminGroup.GET("/services", adminHandler.ListServices)
	adminGroup.POST("/services/:id/approve", adminHandler.ApproveService)
	adminGroup.POST("/services/:id/reject", adminHandler.RejectService)
	adminGroup.DELETE("/services/:id", adminHandler.DeleteService)

	adminGroup.GET("/orders", adminHandler.ListOrders)
	adminGroup.GET("/stats", adminHandler.Stats)

	// Start server
	if err := e.Start(cfg.Addr()); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
