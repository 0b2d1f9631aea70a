package workflow

import (
	"context"
	"errors"
	"strings"

	"experience-booking/internal/models"
)

// State identifies the step a visitor is on.
type State int

const (
	StateBrowse State = iota
	StateDetails
	StateCheckout
	StateResult
)

var (
	// ErrNoDraft means the checkout or submit step ran without a
	// persisted draft; the caller should send the visitor back to
	// browsing.
	ErrNoDraft = errors.New("no draft booking in session")

	// ErrNoResult means the result step ran without a persisted
	// result; the caller should send the visitor back to browsing.
	ErrNoResult = errors.New("no booking result in session")

	ErrSelectionIncomplete = errors.New("please select a date and time")
	ErrPromoCodeMissing    = errors.New("please enter a promo code")
	ErrInvalidPromo        = errors.New("invalid promo code")
	ErrContactRequired     = errors.New("please fill in all required fields")
	ErrTermsRequired       = errors.New("please agree to the terms and safety policy")
)

// Flow walks one visitor through browse, details, checkout, and result.
// In-step selection state lives on the Flow; cross-step state goes
// through the session store.
type Flow struct {
	api      *Client
	sessions *SessionStore
	token    string

	state      State
	experience models.Experience
	date       string
	timeOfDay  string
	quantity   int
	promoCode  string
	discount   int
}

func NewFlow(api *Client, sessions *SessionStore) *Flow {
	return &Flow{
		api:      api,
		sessions: sessions,
		token:    sessions.NewSession(),
		state:    StateBrowse,
		quantity: 1,
	}
}

func (f *Flow) State() State  { return f.state }
func (f *Flow) Token() string { return f.token }

// Browse loads the catalog.
func (f *Flow) Browse(ctx context.Context) ([]models.Experience, error) {
	experiences, err := f.api.ListExperiences(ctx)
	if err != nil {
		return nil, err
	}
	f.state = StateBrowse
	return experiences, nil
}

// SelectExperience loads one experience and resets the selection: the
// date defaults to the first availability entry, quantity to 1, and no
// time is selected.
func (f *Flow) SelectExperience(ctx context.Context, id string) (models.Experience, error) {
	exp, err := f.api.GetExperience(ctx, id)
	if err != nil {
		return models.Experience{}, err
	}

	f.experience = exp
	f.quantity = 1
	f.date = ""
	f.timeOfDay = ""
	if len(exp.Availability) > 0 {
		f.date = exp.Availability[0].Date
	}
	f.state = StateDetails
	return exp, nil
}

// SelectDate picks a date and clears any selected time; a time never
// carries across dates.
func (f *Flow) SelectDate(date string) {
	f.date = date
	f.timeOfDay = ""
}

func (f *Flow) SelectTime(timeOfDay string) {
	f.timeOfDay = timeOfDay
}

func (f *Flow) IncrementQuantity() {
	f.quantity++
}

// DecrementQuantity lowers the quantity, flooring at 1.
func (f *Flow) DecrementQuantity() {
	if f.quantity > 1 {
		f.quantity--
	}
}

func (f *Flow) Quantity() int { return f.quantity }
func (f *Flow) Date() string  { return f.date }
func (f *Flow) Time() string  { return f.timeOfDay }

func (f *Flow) Subtotal() int {
	return f.experience.Price * f.quantity
}

// Tax is shown for information only; it is never added to or subtracted
// from the charged total.
func (f *Flow) Tax() int {
	return f.Subtotal() * 5 / 100
}

// ProceedToCheckout persists the current selection as the session draft,
// replacing any earlier draft.
func (f *Flow) ProceedToCheckout() error {
	if f.date == "" || f.timeOfDay == "" {
		return ErrSelectionIncomplete
	}

	f.sessions.PutDraft(f.token, Draft{
		ExperienceID: f.experience.ID,
		Date:         f.date,
		Time:         f.timeOfDay,
		Quantity:     f.quantity,
		TotalPrice:   f.experience.Price * f.quantity,
	})
	f.promoCode = ""
	f.discount = 0
	f.state = StateCheckout
	return nil
}

// Checkout loads the persisted draft. ErrNoDraft resets the flow to
// browsing.
func (f *Flow) Checkout() (Draft, error) {
	draft, ok := f.sessions.Draft(f.token)
	if !ok {
		f.state = StateBrowse
		return Draft{}, ErrNoDraft
	}
	f.state = StateCheckout
	return draft, nil
}

func (f *Flow) Discount() int { return f.discount }

// ApplyPromo validates a promo code against the server. Reapplying
// overwrites the prior discount; an invalid code resets it to zero.
func (f *Flow) ApplyPromo(ctx context.Context, code string) (int, error) {
	if strings.TrimSpace(code) == "" {
		return f.discount, ErrPromoCodeMissing
	}

	validation, err := f.api.ValidatePromo(ctx, code)
	if err != nil {
		f.discount = 0
		f.promoCode = ""
		return 0, err
	}
	if !validation.Valid {
		f.discount = 0
		f.promoCode = ""
		return 0, ErrInvalidPromo
	}

	f.discount = validation.Discount
	f.promoCode = code
	return f.discount, nil
}

// Submit sends the booking. On success the draft is consumed and the
// result is persisted for the result step; on failure the draft stays
// and the visitor remains at checkout.
func (f *Flow) Submit(ctx context.Context, fullName, email string, agreeToTerms bool) error {
	if fullName == "" || email == "" {
		return ErrContactRequired
	}
	if !agreeToTerms {
		return ErrTermsRequired
	}

	draft, ok := f.sessions.Draft(f.token)
	if !ok {
		return ErrNoDraft
	}

	finalPrice := draft.TotalPrice - f.discount
	if finalPrice < 0 {
		finalPrice = 0
	}

	resp, err := f.api.CreateBooking(ctx, models.BookingRequest{
		ExperienceID: draft.ExperienceID,
		Date:         draft.Date,
		Time:         draft.Time,
		FullName:     fullName,
		Email:        email,
		Quantity:     draft.Quantity,
		PromoCode:    f.promoCode,
		TotalPrice:   finalPrice,
	})
	if err != nil {
		return err
	}
	if !resp.Success {
		return errors.New(resp.Message)
	}

	f.sessions.ClearDraft(f.token)
	f.sessions.PutResult(f.token, resp)
	f.state = StateResult
	return nil
}

// Result returns the submission outcome exactly once; a second call
// reports ErrNoResult and resets the flow to browsing.
func (f *Flow) Result() (models.BookingResponse, error) {
	result, ok := f.sessions.TakeResult(f.token)
	if !ok {
		f.state = StateBrowse
		return models.BookingResponse{}, ErrNoResult
	}
	return result, nil
}
