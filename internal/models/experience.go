package models

// Experience is a bookable activity offering. Records are immutable
// after the catalog loads.
type Experience struct {
	ID              string          `json:"id"`
	Title           string          `json:"title"`
	Location        string          `json:"location"`
	Description     string          `json:"description"`
	LongDescription string          `json:"longDescription"`
	Image           string          `json:"image"`
	Price           int             `json:"price"`
	Duration        string          `json:"duration"`
	MinAge          int             `json:"minAge,omitempty"`
	MaxAge          int             `json:"maxAge,omitempty"`
	Availability    []AvailableSlot `json:"availability"`
}

// AvailableSlot pairs a calendar date with its bookable times of day.
type AvailableSlot struct {
	Date  string   `json:"date"`
	Times []string `json:"times"`
}
