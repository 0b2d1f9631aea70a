package main

import (
	"context"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"experience-booking/internal/server"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Create a new server instance
	srv := server.NewServer(logger)

	// Create a listener on the desired address
	listener, err := net.Listen("tcp", srv.Addr)
	if err != nil {
		logger.Fatal("Error creating listener", zap.Error(err))
	}

	// Channel to receive errors from the server
	errChan := make(chan error, 1)

	// Start the server in a goroutine
	go func() {
		logger.Info("Server started", zap.String("addr", srv.Addr))
		if err := srv.Serve(listener); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	// Set up channel to receive OS signals
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	// Wait for an interrupt or server error
	select {
	case err := <-errChan:
		logger.Fatal("Server error", zap.Error(err))
	case sig := <-stop:
		// Received an interrupt signal, shut down gracefully
		logger.Info("Received signal, initiating graceful shutdown", zap.String("signal", sig.String()))

		// Create a deadline to wait for the server to shut down
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			logger.Fatal("Could not gracefully shut down the server", zap.Error(err))
		}

		logger.Info("Server gracefully stopped")
	}
}
