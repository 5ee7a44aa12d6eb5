package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"billtracker/internal/config"
	"billtracker/internal/database"
	"billtracker/internal/handlers"
	"billtracker/internal/logger"
	"billtracker/internal/middleware"
	"billtracker/internal/repository"
	"billtracker/internal/services"
)

func main() {
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	dbManager, err := database.NewManager(cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	if err := dbManager.Migrate(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Repositories own the queries; services own the domain rules.
	db := dbManager.DB()
	expenseRepo := repository.NewExpenseRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	trackingRepo := repository.NewTrackingRepository(db)

	expenseService := services.NewExpenseService(expenseRepo, categoryRepo)
	trackingService := services.NewTrackingService(trackingRepo, expenseRepo)
	categoryService := services.NewCategoryService(categoryRepo)

	expenseHandler := handlers.NewExpenseHandler(expenseService)
	trackingHandler := handlers.NewTrackingHandler(trackingService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.CORS())

	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	router.GET("/api/categories", categoryHandler.List)
	router.GET("/api/budget", expenseHandler.GetBudget)

	expense := router.Group("/api/expense")
	expense.GET("/forecast", expenseHandler.GetForecast)
	expense.GET("/budget", expenseHandler.GetBudget)
	expense.GET("/:id", expenseHandler.GetExpense)
	expense.PUT("/:id", expenseHandler.UpdateExpense)
	expense.POST("", expenseHandler.CreateExpense)
	expense.DELETE("/:id", expenseHandler.DeleteBill)

	// The UI reaches bill listings under two prefixes. GET and DELETE live
	// in separate method trees, so :mode and :id do not collide.
	router.GET("/api/expenses/:mode", expenseHandler.GetBills)
	router.DELETE("/api/expenses/:id", expenseHandler.DeleteBill)
	router.GET("/bills/:mode", expenseHandler.GetBills)
	router.DELETE("/bills/:id", expenseHandler.DeleteBill)

	tracking := router.Group("/api/tracking")
	tracking.POST("", trackingHandler.CreateTracking)
	tracking.GET("/:month", trackingHandler.GetTrackingByMonth)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Infof("Starting billtracker server on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case sig := <-quit:
		log.Infof("Shutdown signal received: %s", sig)
	}

	// Stop accepting new connections and let in-flight requests finish
	// before releasing the pool.
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	if err := dbManager.Close(); err != nil {
		log.Warnf("closing database pool: %v", err)
	}

	log.Info("Shutdown complete")
	return nil
}
