// Package tracker drives the two workflows: resolving location codes for
// tracked cities, and the read → compare → notify price check.
package tracker

import (
	"context"
	"fmt"
	"log"

	"github.com/moffd234/FlightPriceTracker/internal/domain"
)

// Store is the slice of the spreadsheet client the workflows need.
type Store interface {
	Destinations(ctx context.Context) ([]domain.Destination, error)
	Subscribers(ctx context.Context) ([]domain.Subscriber, error)
	UpdateDestinationCode(ctx context.Context, row int, code string) error
	AddSubscriber(ctx context.Context, sub domain.Subscriber) error
}

// FareFinder is the slice of the flight-search client the workflows need.
type FareFinder interface {
	ResolveLocation(ctx context.Context, term string) (domain.LocationMatch, error)
	CheapestFare(ctx context.Context, code string) (*domain.FareQuote, error)
}

// DealNotifier sends one alert to one subscriber.
type DealNotifier interface {
	SendDeal(sub domain.Subscriber, city string, fare domain.FareQuote) error
}

// TextNotifier texts the configured alert number about one fare.
type TextNotifier interface {
	SendAlert(fare domain.FareQuote) error
}

type Tracker struct {
	store    Store
	flights  FareFinder
	notifier DealNotifier

	// SMS is the optional text-alert channel. CheckPrices does not use it;
	// it is set when Twilio is configured so callers can opt in.
	SMS TextNotifier
}

func New(store Store, flights FareFinder, notifier DealNotifier) *Tracker {
	return &Tracker{
		store:    store,
		flights:  flights,
		notifier: notifier,
	}
}

// ResolveCodes looks up the IATA code for every tracked city and writes it
// back to that city's sheet row. One update per row, in sheet order; the
// first provider match wins.
func (t *Tracker) ResolveCodes(ctx context.Context) error {
	dests, err := t.store.Destinations(ctx)
	if err != nil {
		return fmt.Errorf("load destinations: %w", err)
	}

	for _, dest := range dests {
		loc, err := t.flights.ResolveLocation(ctx, dest.City)
		if err != nil {
			return fmt.Errorf("resolve %q: %w", dest.City, err)
		}
		if err := t.store.UpdateDestinationCode(ctx, dest.Row, loc.Code); err != nil {
			return fmt.Errorf("write code for %q: %w", dest.City, err)
		}
		log.Printf("resolved %s -> %s (row %d)", dest.City, loc.Code, dest.Row)
	}
	return nil
}

// CheckPrices runs one pass over every tracked destination: fetch the
// cheapest current fare, compare it against the row's threshold, and email
// every subscriber when the fare is strictly cheaper. Destinations with no
// available fare are skipped. Nothing is written back to the store.
func (t *Tracker) CheckPrices(ctx context.Context) error {
	dests, err := t.store.Destinations(ctx)
	if err != nil {
		return fmt.Errorf("load destinations: %w", err)
	}
	subs, err := t.store.Subscribers(ctx)
	if err != nil {
		return fmt.Errorf("load subscribers: %w", err)
	}

	for _, dest := range dests {
		fare, err := t.flights.CheapestFare(ctx, dest.IATACode)
		if err != nil {
			return fmt.Errorf("search fares for %s: %w", dest.IATACode, err)
		}
		if fare == nil {
			log.Printf("no fares found for %s, skipping", dest.IATACode)
			continue
		}

		log.Printf("best price for %s = %.2f (threshold %.2f)", dest.IATACode, fare.Price, dest.LowestPrice)
		if fare.Price >= dest.LowestPrice {
			continue
		}

		for _, sub := range subs {
			if err := t.notifier.SendDeal(sub, dest.City, *fare); err != nil {
				return fmt.Errorf("notify %s about %s: %w", sub.Email, dest.City, err)
			}
			log.Printf("alerted %s: %s at %.2f", sub.Email, dest.City, fare.Price)
		}
	}
	return nil
}
