// caltrack-stub serves a local stand-in for the remote calorie-tracker
// API, so the client can be developed and demoed without the real backend.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"caltrack/internal/config"
	"caltrack/internal/logger"
	"caltrack/internal/stub"
)

func main() {
	log, err := logger.New(false)
	if err != nil {
		os.Exit(1)
	}
	defer log.Sync()

	cfg, _ := config.Load()

	db, err := stub.Connect(cfg.StubDBPath)
	if err != nil {
		log.Fatal("opening database", zap.String("path", cfg.StubDBPath), zap.Error(err))
	}

	jwtSvc := stub.NewJWT(cfg.JWTSecret)
	r := stub.NewRouter(db, jwtSvc, log, stub.Options{
		CORSAllowedOrigins:   cfg.CORSAllowedOrigins,
		CORSAllowCredentials: cfg.CORSAllowCredentials,
	})

	srv := &http.Server{
		Addr:              cfg.StubAddr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info("listening", zap.String("addr", cfg.StubAddr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("serving", zap.Error(err))
		}
	}()

	// graceful shutdown
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	<-ch

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}
