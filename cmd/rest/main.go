package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"lead-generator-be/internal/bootstrap"
	"lead-generator-be/internal/config"
	"lead-generator-be/internal/pkg/logger"
	"lead-generator-be/internal/server"
	"lead-generator-be/internal/tracer"
	"lead-generator-be/pkg/leads/store"
)

func main() {
	// 1. Load Configuration
	cfg := config.Load()

	// 2. Tracing
	shutdownTracer := tracer.InitTracer(cfg.Otel)
	defer shutdownTracer(context.Background())

	// 3. Logger
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.IsProduction())
	defer sysLogger.Sync()

	// 4. Load and score the lead dataset once
	snapshot, err := store.Load(cfg.Leads.SourcePath, store.Options{DateLayout: cfg.Leads.DateLayout})
	if err != nil {
		log.Fatalf("Unable to load leads: %v", err)
	}
	sysLogger.Info("MAIN", "Lead dataset loaded", map[string]interface{}{
		"source": snapshot.Source(),
		"rows":   snapshot.Len(),
	})

	// 5. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(cfg, snapshot, sysLogger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 6. Start Background Services
	go container.Hub.Run(ctx)
	if err := container.ConsumerService.Consume(ctx); err != nil {
		log.Printf("Background Consumer Error: %v", err)
	}

	// 7. Initialize Server
	srv := server.New(cfg, container)
	go func() {
		<-ctx.Done()
		if err := srv.Shutdown(); err != nil {
			log.Printf("Server shutdown error: %v", err)
		}
	}()

	// 8. Run Server
	if err := srv.Run(); err != nil {
		log.Fatal(err)
	}
}
