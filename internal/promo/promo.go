package promo

import (
	"strings"

	"experience-booking/internal/models"
)

// Validator checks raw promo code input against the active allow-list.
type Validator interface {
	Validate(rawCode string) models.PromoValidation
}

type memoryValidator struct {
	codes []models.PromoCode
}

// New returns a validator backed by the seed promo list.
func New() Validator {
	return &memoryValidator{codes: seedCodes}
}

var seedCodes = []models.PromoCode{
	{Code: "SAVE10", Discount: 100, Active: true},
	{Code: "FLAT100", Discount: 100, Active: true},
	{Code: "WELCOME50", Discount: 50, Active: true},
	{Code: "TRAVEL20", Discount: 200, Active: true},
}

// Validate trims and upper-cases the input before matching. Discounts
// are flat amounts, never percentages. No side effects.
func (v *memoryValidator) Validate(rawCode string) models.PromoValidation {
	normalized := strings.ToUpper(strings.TrimSpace(rawCode))
	if normalized == "" {
		return models.PromoValidation{}
	}

	for _, p := range v.codes {
		if p.Active && p.Code == normalized {
			return models.PromoValidation{Valid: true, Discount: p.Discount, Code: p.Code}
		}
	}
	return models.PromoValidation{Code: normalized}
}
