package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pastelaria/api-gateway/internal/gateway"
	"pastelaria/config"

	"github.com/rs/cors"
)

func newHandler(cfg config.Config) http.Handler {
	gw := gateway.NewGateway(gateway.Config{
		StorefrontURL: cfg.StorefrontSvcURL,
		AdminURL:      cfg.AdminSvcURL,
	}, &http.Client{Timeout: 15 * time.Second})

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{"X-Session-ID"},
	})
	return c.Handler(gw.SetupRoutes())
}

func main() {
	cfg := config.Load(":8080")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	server := &http.Server{Addr: cfg.HTTPAddr, Handler: newHandler(cfg)}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		server.Shutdown(shutdownCtx)
	}()

	log.Printf("[api-gateway] starting on %s", cfg.HTTPAddr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
