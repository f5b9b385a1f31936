// Package flights is the client for the Tequila flight-search API: free-text
// location lookup and cheapest-fare search over a rolling six-month window.
package flights

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/moffd234/FlightPriceTracker/internal/config"
	"github.com/moffd234/FlightPriceTracker/internal/domain"
)

// searchWindowDays is how far ahead of today fare searches look. Recomputed
// at call time, so the horizon rolls forward with the clock.
const searchWindowDays = 180

// tequilaDate is Tequila's dd/mm/yyyy query date layout.
const tequilaDate = "02/01/2006"

type Client struct {
	// BaseURL without a trailing slash. Tests point it at a local server.
	BaseURL string

	apiKey string
	origin string
	http   *http.Client

	// now is stubbed in tests to pin the search window.
	now func() time.Time
}

func New(cfg *config.Config) *Client {
	return &Client{
		BaseURL: "https://api.tequila.kiwi.com",
		apiKey:  cfg.TequilaKey,
		origin:  cfg.OriginCode,
		http:    &http.Client{Timeout: 10 * time.Second},
		now:     time.Now,
	}
}

type rawLocation struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

// Fare is one priced itinerary as Tequila returns it, before formatting.
type Fare struct {
	Price          float64 `json:"price"`
	FlyFrom        string  `json:"flyFrom"`
	CityTo         string  `json:"cityTo"`
	LocalDeparture string  `json:"local_departure"`
}

// ResolveLocation looks up a free-text place name and returns the provider's
// first match. Zero matches is domain.ErrLocationNotFound.
func (c *Client) ResolveLocation(ctx context.Context, term string) (domain.LocationMatch, error) {
	q := url.Values{}
	q.Set("term", term)
	q.Set("locale", "en-US")
	q.Set("location_types", "city")

	var resp struct {
		Locations []rawLocation `json:"locations"`
	}
	if err := c.get(ctx, "/locations/query", q, &resp); err != nil {
		return domain.LocationMatch{}, err
	}

	if len(resp.Locations) == 0 {
		return domain.LocationMatch{}, fmt.Errorf("%w: no matches for %q", domain.ErrLocationNotFound, term)
	}
	return FormatLocation(resp.Locations[0]), nil
}

// CheapestFare searches one-way fares from the configured origin to the given
// IATA code over the next six months, cheapest first, and returns the single
// best result formatted for display. A window with no fares returns
// (nil, nil); that is a valid negative result, not an error.
func (c *Client) CheapestFare(ctx context.Context, code string) (*domain.FareQuote, error) {
	raw, err := c.searchFares(ctx, code)
	if err != nil {
		return nil, err
	}
	return FormatFare(raw), nil
}

func (c *Client) searchFares(ctx context.Context, code string) (*Fare, error) {
	from := c.now()
	to := from.AddDate(0, 0, searchWindowDays)

	q := url.Values{}
	q.Set("fly_from", c.origin)
	q.Set("fly_to", code)
	q.Set("date_from", from.Format(tequilaDate))
	q.Set("date_to", to.Format(tequilaDate))
	q.Set("ret_from_diff_city", "false")
	q.Set("ret_to_diff_city", "false")
	q.Set("adults", "1")
	q.Set("curr", "USD")
	q.Set("locale", "en")
	q.Set("vehicle_type", "aircraft")
	q.Set("limit", strconv.Itoa(5))
	q.Set("sort", "price")

	var resp struct {
		Data []Fare `json:"data"`
	}
	if err := c.get(ctx, "/v2/search", q, &resp); err != nil {
		return nil, err
	}

	if len(resp.Data) == 0 {
		return nil, nil
	}
	return &resp.Data[0], nil
}

func (c *Client) get(ctx context.Context, path string, q url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+path+"?"+q.Encode(), nil)
	if err != nil {
		return fmt.Errorf("build request for %s: %w", path, err)
	}
	req.Header.Set("apikey", c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("call %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: GET %s returned HTTP %d", domain.ErrFareProvider, path, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}
