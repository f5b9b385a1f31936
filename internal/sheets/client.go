// Package sheets is the client for the Sheety spreadsheet API backing the
// tracker's state: the "prices" table of tracked destinations and the "users"
// table of subscribers.
package sheets

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/moffd234/FlightPriceTracker/internal/config"
	"github.com/moffd234/FlightPriceTracker/internal/domain"
)

// firstDataRow is the sheet row the first record lands on; row 1 is the
// header. Sheety addresses rows by this absolute position.
const firstDataRow = 2

type Client struct {
	// BaseURL is the sheet endpoint without a trailing slash. Tests point it
	// at a local server.
	BaseURL string

	apiKey string
	http   *http.Client
}

func New(cfg *config.Config) *Client {
	return &Client{
		BaseURL: fmt.Sprintf("https://api.sheety.co/%s/flightDeals", cfg.SheetName),
		apiKey:  cfg.SheetyKey,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

type destinationRow struct {
	City        string  `json:"city"`
	IATACode    string  `json:"iataCode"`
	LowestPrice float64 `json:"lowestPrice"`
}

type subscriberRow struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

// Destinations fetches every row of the prices table, in sheet order. Each
// record carries the absolute sheet row it was read from, which UpdateDestinationCode
// takes as the update key.
func (c *Client) Destinations(ctx context.Context) ([]domain.Destination, error) {
	var resp struct {
		Prices []destinationRow `json:"prices"`
	}
	if err := c.get(ctx, "prices", &resp); err != nil {
		return nil, err
	}

	dests := make([]domain.Destination, 0, len(resp.Prices))
	for i, row := range resp.Prices {
		dests = append(dests, domain.Destination{
			City:        row.City,
			IATACode:    row.IATACode,
			LowestPrice: row.LowestPrice,
			Row:         firstDataRow + i,
		})
	}
	return dests, nil
}

// Subscribers fetches every row of the users table, in sheet order.
func (c *Client) Subscribers(ctx context.Context) ([]domain.Subscriber, error) {
	var resp struct {
		Users []subscriberRow `json:"users"`
	}
	if err := c.get(ctx, "users", &resp); err != nil {
		return nil, err
	}

	subs := make([]domain.Subscriber, 0, len(resp.Users))
	for _, row := range resp.Users {
		subs = append(subs, domain.Subscriber{
			FirstName: row.FirstName,
			LastName:  row.LastName,
			Email:     row.Email,
		})
	}
	return subs, nil
}

// UpdateDestinationCode writes a resolved IATA code into the prices row at
// the given absolute sheet position. Sheety keys the update body by the
// singular item name.
func (c *Client) UpdateDestinationCode(ctx context.Context, row int, code string) error {
	body := map[string]any{
		"price": map[string]string{"iataCode": code},
	}
	return c.send(ctx, http.MethodPut, fmt.Sprintf("prices/%d", row), body)
}

// AddSubscriber appends a new row to the users table.
func (c *Client) AddSubscriber(ctx context.Context, sub domain.Subscriber) error {
	body := map[string]any{
		"user": subscriberRow{
			FirstName: sub.FirstName,
			LastName:  sub.LastName,
			Email:     sub.Email,
		},
	}
	return c.send(ctx, http.MethodPost, "users", body)
}

func (c *Client) get(ctx context.Context, table string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/"+table, nil)
	if err != nil {
		return fmt.Errorf("build request for %s: %w", table, err)
	}
	c.setHeaders(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("read %s: %w", table, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: GET %s returned HTTP %d", domain.ErrRemoteStore, table, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", table, err)
	}
	return nil
}

func (c *Client) send(ctx context.Context, method, path string, body any) error {
	b, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal %s body: %w", path, err)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+"/"+path, bytes.NewReader(b))
	if err != nil {
		return fmt.Errorf("build request for %s: %w", path, err)
	}
	c.setHeaders(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: %s %s returned HTTP %d", domain.ErrRemoteStore, method, path, resp.StatusCode)
	}
	return nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
}
