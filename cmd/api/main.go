// cmd/api/main.go
// Main entry point for the application
// This file bootstraps all components and starts the server

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/fairwaylink/fairwaylink-backend/internal/auth"
	"github.com/fairwaylink/fairwaylink-backend/internal/common/database"
	"github.com/fairwaylink/fairwaylink-backend/internal/common/utils"
	"github.com/fairwaylink/fairwaylink-backend/internal/config"
	"github.com/fairwaylink/fairwaylink-backend/internal/engagement"
	"github.com/fairwaylink/fairwaylink-backend/internal/matching"
	"github.com/fairwaylink/fairwaylink-backend/internal/ratelimit"
)

func main() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.Println("Starting FairwayLink API")

	// 1. Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found (%v), using environment variables", err)
	}

	// 2. Load and validate configuration
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal("Configuration validation failed: ", err)
	}

	// 3. Connect to PostgreSQL
	db, err := database.NewPostgresDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL: ", err)
	}
	defer db.Close()
	log.Println("Connected to PostgreSQL")

	if err := runMigrations(db); err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}
	log.Println("Database migrations completed")

	// 4. Pick the rate-limit counter store: shared Redis when configured,
	// otherwise a process-local store for single-instance deployments
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var counterStore ratelimit.Store
	if cfg.RedisURL != "" {
		redisClient, err := database.NewRedisClient(cfg.RedisURL)
		if err != nil {
			log.Fatal("Failed to connect to Redis: ", err)
		}
		defer redisClient.Close()
		counterStore = ratelimit.NewRedisStore(redisClient)
		log.Println("Connected to Redis, using shared counter store")
	} else {
		memoryStore := ratelimit.NewMemoryStore()
		counterStore = memoryStore
		go ratelimit.NewSweeper(memoryStore, cfg.CounterSweepInterval).Start(ctx)
		log.Println("Redis not configured, using in-memory counter store")
	}

	// 5. Rate limiting and quota
	limiter := ratelimit.New(counterStore, map[string]ratelimit.Config{
		engagement.ActionSwipeBurst: {
			Window:        cfg.SwipeBurstWindow,
			MaxAttempts:   cfg.SwipeBurstMax,
			BlockDuration: cfg.SwipeBurstBlockDuration,
		},
	})
	quota := ratelimit.NewDailyQuota(counterStore, cfg.FreeDailyLikes)

	// 6. Matching (discovery feed)
	matchingRepo := matching.NewPostgresRepository(db)
	matchingService := matching.NewService(matchingRepo, matching.Options{
		MaxCandidatePool: cfg.MaxCandidatePool,
		FreeMaxRadius:    cfg.FreeMaxRadius,
		PremiumMaxRadius: cfg.PremiumMaxRadius,
		PageSize:         cfg.DiscoveryPageSize,
	})
	matchingHandler := matching.NewHandler(matchingService)

	// 7. Engagement (swipes and matches)
	hub := engagement.NewHub()
	go hub.Run()

	engagementRepo := engagement.NewPostgresRepository(db)
	engagementService := engagement.NewService(
		engagementRepo,
		quota,
		matchingRepo,
		engagement.NewSafetyService(limiter),
		hub,
	)
	engagementHandler := engagement.NewHandler(engagementService)
	adminHandler := engagement.NewAdminHandler(engagement.NewAdminService(engagementRepo))

	// 8. Router
	authMiddleware := auth.NewMiddleware(cfg.JWTSecret)

	router := mux.NewRouter()
	router.Use(requestIDMiddleware)

	router.Handle("/metrics", promhttp.Handler()).Methods("GET")
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		if err := db.PingContext(r.Context()); err != nil {
			utils.RespondWithError(w, http.StatusServiceUnavailable, "database unreachable")
			return
		}
		utils.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods("GET")

	matching.RegisterRoutes(router, matchingHandler, authMiddleware)
	engagement.RegisterRoutes(router, engagementHandler, hub, adminHandler, authMiddleware)

	// 9. Start server with graceful shutdown
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Listening on port %s (%s)", cfg.Port, cfg.Environment)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed: ", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Forced shutdown: %v", err)
	}
	log.Println("Server stopped")
}

// requestIDMiddleware tags every request so log lines can be correlated
func requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", requestID)
		next.ServeHTTP(w, r)
	})
}
