package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/jonboulle/clockwork"

	"github.com/smartcity/erbil-dashboard/internal/catalog"
	"github.com/smartcity/erbil-dashboard/internal/config"
	"github.com/smartcity/erbil-dashboard/internal/delivery/http"
	"github.com/smartcity/erbil-dashboard/internal/observability"
	"github.com/smartcity/erbil-dashboard/internal/repository/postgres"
	"github.com/smartcity/erbil-dashboard/internal/service"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Database connection
	repo := connectRepository(cfg.DatabaseURL)

	// Dependency Injection: Services
	metrics := observability.NewMetrics()
	mapSvc := service.NewMapService(catalog.MustDefault(), repo, clockwork.NewRealClock(), metrics)
	animation := service.NewAnimationLoader(cfg.AnimationURL, metrics)

	// Fiber App
	app := http.NewApp(cfg)

	// Routes
	http.SetupRoutes(app, mapSvc, animation)

	// Graceful shutdown
	go func() {
		log.Printf("Server starting on :%s (%s)", cfg.Port, cfg.Env)
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.ShutdownWithTimeout(cfg.ShutdownTimeout); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}
	mapSvc.WaitBackground()
	if closer, ok := repo.(interface{ Close() }); ok {
		closer.Close()
	}
	log.Println("Server exited gracefully")
}

// connectRepository falls back to the in-memory repository when
// PostgreSQL is unconfigured or unreachable
func connectRepository(databaseURL string) service.RenderLogRepository {
	if databaseURL == "" {
		log.Println("DATABASE_URL not set, render logs kept in memory")
		return postgres.NewMockRepository()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, databaseURL)
	if err == nil {
		err = pool.Ping(ctx)
	}
	if err != nil {
		log.Printf("Warning: Could not connect to database: %v", err)
		log.Println("Running with in-memory render logs")
		if pool != nil {
			pool.Close()
		}
		return postgres.NewMockRepository()
	}

	repo := postgres.NewPostgresRepository(pool)
	if err := repo.EnsureSchema(ctx); err != nil {
		log.Printf("Warning: %v", err)
	}
	log.Println("Connected to PostgreSQL")
	return repo
}
