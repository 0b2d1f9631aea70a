package models

// PromoCode is a flat-amount discount token. Discounts are in the same
// minor-currency unit as Experience.Price, not percentages.
type PromoCode struct {
	Code     string `json:"code"`
	Discount int    `json:"discount"`
	Active   bool   `json:"active"`
}

type PromoValidation struct {
	Valid    bool   `json:"valid"`
	Discount int    `json:"discount"`
	Code     string `json:"code"`
}
