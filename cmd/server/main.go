package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand/v2"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	"waste-route-service/internal/adapters/binjson"
	"waste-route-service/internal/adapters/distance"
	"waste-route-service/internal/adapters/mockdata"
	"waste-route-service/internal/adapters/repositories"
	"waste-route-service/internal/api"
	"waste-route-service/internal/config"
	"waste-route-service/internal/domain"
	"waste-route-service/internal/scheduler"
	"waste-route-service/internal/services"

	"github.com/joho/godotenv"
)

// main is the application composition root.
// It wires the in-memory store and haversine calculator behind ports and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	rng := rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), rand.Uint64()))

	initial, err := loadInitialBins(cfg, rng)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("bins loaded count=%d depot=%g,%g", len(initial), cfg.Depot.Lat, cfg.Depot.Lng)

	repo := repositories.NewMemoryBinRepository(initial)
	calc := distance.HaversineCalculator{}

	dashboard := services.NewDashboard(repo, calc, cfg.Depot, cfg.Vehicle, cfg.DefaultMode)
	bins := services.NewBinService(repo, repositories.NewMemoryReportLog(), rng, time.Now)

	if cfg.RefreshSchedule != "" {
		job := scheduler.NewRefreshJob(cfg.RefreshSchedule, bins)
		if err := job.Start(); err != nil {
			log.Fatal(err)
		}
		defer job.Stop()
	}

	router := api.NewRouter(dashboard, bins)

	log.Printf("Server listening addr=:%s mode=%s", cfg.Port, cfg.DefaultMode)
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown failed: %v", err)
	}
}

// loadInitialBins reads SEED_PATH when set and otherwise scatters mock bins around the depot.
func loadInitialBins(cfg *config.Config, rng *rand.Rand) ([]domain.BinRecord, error) {
	if cfg.SeedPath != "" {
		bins, err := binjson.ReadFile(cfg.SeedPath)
		if err != nil {
			return nil, fmt.Errorf("load initial bins: %w", err)
		}
		return bins, nil
	}

	gen := mockdata.Generator{
		Center: cfg.Depot,
		Count:  cfg.MockBinCount,
		Spread: cfg.MockSpread,
		Rand:   rng,
	}
	return gen.Generate(), nil
}
