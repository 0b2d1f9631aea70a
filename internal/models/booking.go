package models

import "time"

// BookingRequest is the payload submitted at checkout. TotalPrice is
// client-computed and advisory only; the server recomputes the final
// price from the catalog record before storing.
type BookingRequest struct {
	ExperienceID string `json:"experienceId"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	FullName     string `json:"fullName"`
	Email        string `json:"email"`
	Quantity     int    `json:"quantity"`
	PromoCode    string `json:"promoCode,omitempty"`
	TotalPrice   int    `json:"totalPrice"`
}

// BookingRecord is what the server stores for the life of the process.
type BookingRecord struct {
	BookingRequest
	BookingID string    `json:"bookingId"`
	CreatedAt time.Time `json:"createdAt"`
}

type BookingResponse struct {
	Success   bool   `json:"success"`
	BookingID string `json:"bookingId"`
	Message   string `json:"message"`
}
