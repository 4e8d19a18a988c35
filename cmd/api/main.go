package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/nexuslabs/marketplace-api/internal/config"
	"github.com/nexuslabs/marketplace-api/internal/handler"
	"github.com/nexuslabs/marketplace-api/internal/middleware"
	"github.com/nexuslabs/marketplace-api/internal/model"
	"github.com/nexuslabs/marketplace-api/internal/service"
	"github.com/nexuslabs/marketplace-api/internal/store"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg, err := config.Load()
	if err != nil {
		log.Error("load config", "error", err)
		os.Exit(1)
	}

	// Entity store: process-memory only, rebuilt from the seed on every start.
	st := store.New()
	if cfg.Seed.DemoData {
		st.Seed(cfg.Seed.AdminEmail, cfg.Seed.AdminName)
		log.Info("seeded demo data", "admin", cfg.Seed.AdminEmail)
	} else {
		st.CreateUser(&model.User{
			Email: cfg.Seed.AdminEmail,
			Role:  model.RoleAdmin,
			Name:  cfg.Seed.AdminName,
		})
	}

	// Services
	authSvc := service.NewAuthService(st, cfg.JWT.Secret, cfg.JWT.Expiration)
	shopSvc := service.NewShopService(st)
	orderSvc := service.NewOrderService(st)
	productSvc := service.NewProductService(st)
	projections := service.NewProjectionService(st)

	// Handlers
	authH := handler.NewAuthHandler(authSvc, shopSvc)
	adminH := handler.NewAdminHandler(shopSvc, projections)
	shopH := handler.NewShopHandler(shopSvc, projections)
	orderH := handler.NewOrderHandler(orderSvc, projections)
	productH := handler.NewProductHandler(productSvc, projections)
	healthH := handler.NewHealthHandler()

	// Router
	router := gin.Default()
	router.GET("/healthz", healthH.Healthz)

	v1 := router.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		auth.POST("/login", authH.Login)
		auth.POST("/register", authH.Register)
		auth.POST("/password", middleware.AuthMiddleware(cfg.JWT.Secret), authH.ChangePassword)

		admin := v1.Group("/admin", middleware.AuthMiddleware(cfg.JWT.Secret), middleware.AdminOnly())
		admin.GET("/shops", adminH.ListShops)
		admin.GET("/shops/pending", adminH.ListPendingShops)
		admin.POST("/shops/:id/decision", adminH.Decide)
		admin.POST("/shops/:id/toggle-online", adminH.ToggleOnline)
		admin.GET("/orders", adminH.ListOrders)
		admin.GET("/stats", adminH.Stats)

		shop := v1.Group("/shop", middleware.AuthMiddleware(cfg.JWT.Secret), middleware.ShopOnly())
		shop.GET("/profile", shopH.GetProfile)
		shop.PUT("/profile", shopH.UpdateProfile)
		shop.POST("/online-toggle", shopH.ToggleOnline)
		shop.GET("/stats", shopH.Stats)

		shop.GET("/orders", orderH.List)
		shop.POST("/orders", orderH.Create)
		shop.POST("/orders/:id/advance", orderH.Advance)
		shop.DELETE("/orders/:id", orderH.Decline)

		shop.GET("/products", productH.List)
		shop.POST("/products", productH.Create)
		shop.PUT("/products/:id", productH.Update)
		shop.POST("/products/:id/enabled", productH.SetEnabled)
		shop.DELETE("/products/:id", productH.Delete)
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Info("starting HTTP server", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown", "error", err)
	}
	log.Info("server stopped")
}
