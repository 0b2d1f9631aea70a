package server

import (
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	"experience-booking/internal/booking"
	"experience-booking/internal/catalog"
	"experience-booking/internal/promo"

	// Environment variables
	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

// Config carries the tunables read from the environment.
type Config struct {
	Port        int
	PingMessage string
	RateLimit   float64 // requests per second per client IP
	RateBurst   int
}

func ConfigFromEnv() Config {
	return Config{
		Port:        envInt("PORT", 8080),
		PingMessage: envString("PING_MESSAGE", "ping"),
		RateLimit:   envFloat("RATE_LIMIT_RPS", 10),
		RateBurst:   envInt("RATE_LIMIT_BURST", 20),
	}
}

// Server translates HTTP requests onto the stores injected at startup.
type Server struct {
	catalog  catalog.Store
	promo    promo.Validator
	bookings booking.Store

	logger      *zap.Logger
	pingMessage string
	limiter     *visitorLimiter
}

func New(cfg Config, logger *zap.Logger, catalogStore catalog.Store, promoValidator promo.Validator, bookingStore booking.Store) *Server {
	return &Server{
		catalog:     catalogStore,
		promo:       promoValidator,
		bookings:    bookingStore,
		logger:      logger,
		pingMessage: cfg.PingMessage,
		limiter:     newVisitorLimiter(cfg.RateLimit, cfg.RateBurst),
	}
}

// NewServer wires the seed-backed stores into an http.Server ready to listen.
func NewServer(logger *zap.Logger) *http.Server {
	cfg := ConfigFromEnv()
	s := New(cfg, logger, catalog.New(), promo.New(), booking.New())

	return &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.RegisterRoutes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

func envFloat(key string, fallback float64) float64 {
	v, err := strconv.ParseFloat(os.Getenv(key), 64)
	if err != nil {
		return fallback
	}
	return v
}
