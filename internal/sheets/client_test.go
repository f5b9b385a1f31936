package sheets_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/moffd234/FlightPriceTracker/internal/config"
	"github.com/moffd234/FlightPriceTracker/internal/domain"
	"github.com/moffd234/FlightPriceTracker/internal/sheets"
)

func newClient(t *testing.T, handler http.HandlerFunc) *sheets.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := sheets.New(&config.Config{SheetyKey: "test-key", SheetName: "myproject"})
	c.BaseURL = srv.URL
	return c
}

// TestDestinations_rowKeys verifies that rows come back in sheet order with
// positional keys starting at the first data row (2).
func TestDestinations_rowKeys(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/prices", r.URL.Path)
		require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"prices":[
			{"city":"tokyo","iataCode":"TYO","lowestPrice":500},
			{"city":"paris","iataCode":"","lowestPrice":250}
		]}`))
	})

	dests, err := c.Destinations(context.Background())

	require.NoError(t, err)
	require.Equal(t, []domain.Destination{
		{City: "tokyo", IATACode: "TYO", LowestPrice: 500, Row: 2},
		{City: "paris", IATACode: "", LowestPrice: 250, Row: 3},
	}, dests)
}

// TestSubscribers verifies decoding of the users table.
func TestSubscribers(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/users", r.URL.Path)
		_, _ = w.Write([]byte(`{"users":[{"firstName":"Ana","lastName":"Gomez","email":"a@x.com"}]}`))
	})

	subs, err := c.Subscribers(context.Background())

	require.NoError(t, err)
	require.Equal(t, []domain.Subscriber{{FirstName: "Ana", LastName: "Gomez", Email: "a@x.com"}}, subs)
}

// TestUpdateDestinationCode verifies the PUT wire shape: row-addressed path
// and a body keyed by the singular item name.
func TestUpdateDestinationCode(t *testing.T) {
	var gotBody map[string]map[string]string
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/prices/2", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusOK)
	})

	err := c.UpdateDestinationCode(context.Background(), 2, "TYO")

	require.NoError(t, err)
	require.Equal(t, map[string]map[string]string{"price": {"iataCode": "TYO"}}, gotBody)
}

// TestAddSubscriber verifies the POST wire shape for appending a user row.
func TestAddSubscriber(t *testing.T) {
	var gotBody map[string]map[string]string
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/users", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusCreated)
	})

	err := c.AddSubscriber(context.Background(), domain.Subscriber{
		FirstName: "Ana", LastName: "Gomez", Email: "a@x.com",
	})

	require.NoError(t, err)
	require.Equal(t, map[string]map[string]string{
		"user": {"firstName": "Ana", "lastName": "Gomez", "email": "a@x.com"},
	}, gotBody)
}

// TestNonSuccessStatus verifies that any non-2xx response surfaces as
// domain.ErrRemoteStore, for reads and writes alike.
func TestNonSuccessStatus(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})

	_, err := c.Destinations(context.Background())
	require.ErrorIs(t, err, domain.ErrRemoteStore)

	err = c.UpdateDestinationCode(context.Background(), 2, "TYO")
	require.ErrorIs(t, err, domain.ErrRemoteStore)

	err = c.AddSubscriber(context.Background(), domain.Subscriber{Email: "a@x.com"})
	require.ErrorIs(t, err, domain.ErrRemoteStore)
}
