package main

import (
	"context"
	"log"
	"net"
	"os/signal"
	"syscall"
	"time"

	"lolatlas/api/cache"
	"lolatlas/api/dto"
	"lolatlas/api/modules"
	"lolatlas/api/routes"
	buildservice "lolatlas/api/services/build"
	"lolatlas/fetcher/setup"
	"lolatlas/pkg/builder"
	"lolatlas/pkg/config"

	"github.com/go-co-op/gocron/v2"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// Time given to each dataset load.
const bootstrapTimeout = 2 * time.Minute

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading the configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	loader, details, closeLoader := setup.NewDefaultLoader(cfg, nil)
	defer closeLoader()

	championMemCache := cache.NewMemCache[*dto.ChampionDetail]()
	defer championMemCache.Close()
	buildMemCache := cache.NewMemCache[*buildservice.Session]()
	defer buildMemCache.Close()

	deps := &modules.ModuleDependencies{
		State:            builder.NewAppState(),
		Fetcher:          loader,
		CDN:              loader.CDN(),
		ChampionMemCache: championMemCache,
		BuildMemCache:    buildMemCache,
		Builder:          cfg.Builder,
	}
	// Details stored by the scheduler, read before going to Data Dragon.
	if details != nil {
		deps.Details = details
	}

	// Create a module with all necessary handlers.
	module := modules.NewModule(deps)

	// Readiness through the standard gRPC health service.
	healthServer := health.NewServer()
	grpcServer := grpc.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthServer)

	listener, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		log.Fatalf("Failed to listen on %s: %v", cfg.Server.GRPCAddr, err)
	}
	go func() {
		if err := grpcServer.Serve(listener); err != nil {
			log.Printf("gRPC health server stopped: %v", err)
		}
	}()
	defer grpcServer.GracefulStop()

	// The API answers with a status message until the dataset is applied.
	s, err := gocron.NewScheduler(gocron.WithLocation(time.UTC))
	if err != nil {
		log.Fatalf("Failed to create scheduler: %v", err)
	}
	if err := module.ScheduleDatasetLoads(s, loader, healthServer, cfg.Server.DatasetRetry, bootstrapTimeout); err != nil {
		log.Fatalf("Failed to schedule the dataset loads: %v", err)
	}
	s.Start()
	defer func() {
		if err := s.Shutdown(); err != nil {
			log.Printf("Error shutting down scheduler: %v", err)
		}
	}()

	// Create a new router with the routes setup.
	router := routes.NewRouter(module.Router)
	router.SetupRoutes(module.Handlers()...)

	// Start the server.
	go func() {
		if err := router.Run(cfg.Server.HTTPAddr); err != nil {
			log.Printf("HTTP server stopped: %v", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down")
}
