package server

import (
	"encoding/json"
	"net"
	"net/http"
	"regexp"
	"strings"
	"sync"

	"experience-booking/internal/models"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// RegisterRoutes sets up the router with all endpoints.
func (s *Server) RegisterRoutes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))
	r.Use(s.limiter.middleware) // Apply rate limiting middleware

	r.Get("/api/ping", s.pingHandler)

	// Endpoints for the experience catalog
	r.Get("/api/experiences", s.ListExperiencesHandler)
	r.Get("/api/experiences/{id}", s.GetExperienceHandler)

	// Endpoints for bookings
	r.Post("/api/bookings", s.CreateBookingHandler)
	r.Get("/api/bookings/{id}", s.GetBookingHandler)

	// Promo validation
	r.Post("/api/promo/validate", s.ValidatePromoHandler)

	return r
}

func (s *Server) pingHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": s.pingMessage})
}

// ListExperiencesHandler returns the full catalog.
func (s *Server) ListExperiencesHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.catalog.List())
}

// GetExperienceHandler returns a single experience by id.
func (s *Server) GetExperienceHandler(w http.ResponseWriter, r *http.Request) {
	exp, err := s.catalog.Get(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "Experience not found"})
		return
	}
	writeJSON(w, http.StatusOK, exp)
}

// CreateBookingHandler validates a booking request, recomputes the price
// server-side, and stores the booking.
func (s *Server) CreateBookingHandler(w http.ResponseWriter, r *http.Request) {
	var req models.BookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.logger.Warn("invalid booking payload", zap.Error(err))
		writeBookingFailure(w, "Invalid request payload")
		return
	}

	if msg := validateBooking(&req); msg != "" {
		writeBookingFailure(w, msg)
		return
	}

	exp, err := s.catalog.Get(req.ExperienceID)
	if err != nil {
		writeBookingFailure(w, "Experience not found")
		return
	}

	// The client-submitted total is advisory only; the stored price is
	// recomputed from the catalog record and the server-side promo lookup.
	discount := 0
	if req.PromoCode != "" {
		if v := s.promo.Validate(req.PromoCode); v.Valid {
			discount = v.Discount
		}
	}
	total := exp.Price*req.Quantity - discount
	if total < 0 {
		total = 0
	}
	req.TotalPrice = total

	record, err := s.bookings.Create(req)
	if err != nil {
		s.logger.Error("creating booking", zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	s.logger.Info("booking created",
		zap.String("bookingId", record.BookingID),
		zap.String("experienceId", record.ExperienceID),
		zap.Int("totalPrice", record.TotalPrice))

	writeJSON(w, http.StatusCreated, models.BookingResponse{
		Success:   true,
		BookingID: record.BookingID,
		Message:   "Booking confirmed successfully",
	})
}

// GetBookingHandler returns a stored booking record by id.
func (s *Server) GetBookingHandler(w http.ResponseWriter, r *http.Request) {
	record, err := s.bookings.Get(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "Booking not found"})
		return
	}
	writeJSON(w, http.StatusOK, record)
}

// ValidatePromoHandler checks a promo code. The response is always 200;
// a bad code is reported through the valid flag, never as an HTTP error.
func (s *Server) ValidatePromoHandler(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Code string `json:"code"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusOK, models.PromoValidation{})
		return
	}
	writeJSON(w, http.StatusOK, s.promo.Validate(body.Code))
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// validateBooking normalizes the request in place and returns a failure
// message, or the empty string when the request is acceptable.
func validateBooking(req *models.BookingRequest) string {
	if req.ExperienceID == "" || req.Date == "" || req.Time == "" {
		return "Missing required fields"
	}
	if req.FullName == "" || req.Email == "" {
		return "Name and email are required"
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if !emailPattern.MatchString(req.Email) {
		return "Invalid email address"
	}
	if req.Quantity < 1 {
		return "Quantity must be at least 1"
	}
	return ""
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeBookingFailure(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusBadRequest, models.BookingResponse{
		Success:   false,
		BookingID: "",
		Message:   message,
	})
}

type visitorLimiter struct {
	mu       sync.Mutex
	visitors map[string]*rate.Limiter
	limit    rate.Limit
	burst    int
}

func newVisitorLimiter(rps float64, burst int) *visitorLimiter {
	return &visitorLimiter{
		visitors: make(map[string]*rate.Limiter),
		limit:    rate.Limit(rps),
		burst:    burst,
	}
}

func (l *visitorLimiter) get(ip string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	limiter, exists := l.visitors[ip]
	if !exists {
		limiter = rate.NewLimiter(l.limit, l.burst)
		l.visitors[ip] = limiter
	}
	return limiter
}

func (l *visitorLimiter) middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			ip = r.RemoteAddr
		}

		if !l.get(ip).Allow() {
			http.Error(w, "Too Many Requests", http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}
