package workflow

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"experience-booking/internal/models"
)

// ErrExperienceNotFound is returned when the requested experience id is
// unknown to the server.
var ErrExperienceNotFound = errors.New("experience not found")

// Client calls the storefront HTTP API. Requests are fire-and-forget:
// no retries and no client-side timeout.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
	}
}

func (c *Client) ListExperiences(ctx context.Context) ([]models.Experience, error) {
	var experiences []models.Experience
	if err := c.get(ctx, "/api/experiences", &experiences); err != nil {
		return nil, err
	}
	return experiences, nil
}

func (c *Client) GetExperience(ctx context.Context, id string) (models.Experience, error) {
	resp, err := c.do(ctx, "GET", "/api/experiences/"+id, nil)
	if err != nil {
		return models.Experience{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return models.Experience{}, ErrExperienceNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return models.Experience{}, fmt.Errorf("fetching experience %s: unexpected status %d", id, resp.StatusCode)
	}

	var exp models.Experience
	if err := json.NewDecoder(resp.Body).Decode(&exp); err != nil {
		return models.Experience{}, err
	}
	return exp, nil
}

func (c *Client) ValidatePromo(ctx context.Context, code string) (models.PromoValidation, error) {
	resp, err := c.do(ctx, "POST", "/api/promo/validate", map[string]string{"code": code})
	if err != nil {
		return models.PromoValidation{}, err
	}
	defer resp.Body.Close()

	var validation models.PromoValidation
	if err := json.NewDecoder(resp.Body).Decode(&validation); err != nil {
		return models.PromoValidation{}, err
	}
	return validation, nil
}

// CreateBooking submits a booking. Validation failures come back as a
// decoded response with Success false, not as an error.
func (c *Client) CreateBooking(ctx context.Context, req models.BookingRequest) (models.BookingResponse, error) {
	resp, err := c.do(ctx, "POST", "/api/bookings", req)
	if err != nil {
		return models.BookingResponse{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusBadRequest {
		return models.BookingResponse{}, fmt.Errorf("creating booking: unexpected status %d", resp.StatusCode)
	}

	var response models.BookingResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return models.BookingResponse{}, err
	}
	return response, nil
}

func (c *Client) GetBooking(ctx context.Context, id string) (models.BookingRecord, error) {
	resp, err := c.do(ctx, "GET", "/api/bookings/"+id, nil)
	if err != nil {
		return models.BookingRecord{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return models.BookingRecord{}, errors.New("booking not found")
	}
	if resp.StatusCode != http.StatusOK {
		return models.BookingRecord{}, fmt.Errorf("fetching booking %s: unexpected status %d", id, resp.StatusCode)
	}

	var record models.BookingRecord
	if err := json.NewDecoder(resp.Body).Decode(&record); err != nil {
		return models.BookingRecord{}, err
	}
	return record, nil
}

func (c *Client) Ping(ctx context.Context) (string, error) {
	var body struct {
		Message string `json:"message"`
	}
	if err := c.get(ctx, "/api/ping", &body); err != nil {
		return "", err
	}
	return body.Message, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	resp, err := c.do(ctx, "GET", path, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GET %s: unexpected status %d", path, resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) do(ctx context.Context, method, path string, body any) (*http.Response, error) {
	var buf *bytes.Buffer
	if body != nil {
		buf = new(bytes.Buffer)
		if err := json.NewEncoder(buf).Encode(body); err != nil {
			return nil, err
		}
	}

	var req *http.Request
	var err error
	if buf != nil {
		req, err = http.NewRequestWithContext(ctx, method, c.baseURL+path, buf)
	} else {
		req, err = http.NewRequestWithContext(ctx, method, c.baseURL+path, nil)
	}
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.http.Do(req)
}
