package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"versioned-task-api/internal/access"
	"versioned-task-api/internal/config"
	"versioned-task-api/internal/domain"
	router "versioned-task-api/internal/http"
	"versioned-task-api/internal/http/handlers"
	"versioned-task-api/internal/service"
	"versioned-task-api/internal/store/memory"
)

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	gate, err := access.New(cfg.APIKey)
	if err != nil {
		log.Fatalf("access gate initiation failed: %v", err)
	}

	v1, err := newVersion(cfg)
	if err != nil {
		log.Fatalf("v1 service initiation failed: %v", err)
	}
	v2, err := newVersion(cfg)
	if err != nil {
		log.Fatalf("v2 service initiation failed: %v", err)
	}

	logger := log.New(os.Stderr, "", log.LstdFlags)

	server := &http.Server{
		Addr:    cfg.HTTPPort,
		Handler: router.New(v1, v2, gate, logger),
	}

	go func() {
		log.Printf("listening on %s", cfg.HTTPPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server failed: %s\n", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(stop)

	<-stop
	log.Printf("shut down signal received...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("shutdown failed: %v", err)
	}

	log.Printf("shut down gracefully")
}

// newVersion builds the handler of one API version over its own store.
func newVersion(cfg config.Config) (*handlers.TaskHandler, error) {
	opts := []memory.Option{memory.WithIDPolicy(cfg.IDPolicy)}
	if cfg.Seed {
		desc := "Create Lab Act 2"
		opts = append(opts, memory.WithSeed(domain.TaskFields{Title: "Lab Activity", Description: &desc}))
	}

	svc, err := service.New(memory.New(opts...))
	if err != nil {
		return nil, err
	}

	return handlers.New(svc), nil
}
