package flights

import (
	"log"
	"strings"
	"time"

	"github.com/moffd234/FlightPriceTracker/internal/domain"
)

// displayDate is the MM/DD/YY layout used in notification text.
const displayDate = "01/02/06"

// FormatLocation normalizes a raw location match: type is always "city" and
// the place name is lower-cased.
func FormatLocation(raw rawLocation) domain.LocationMatch {
	return domain.LocationMatch{
		Type: "city",
		Name: strings.ToLower(raw.Name),
		Code: raw.Code,
	}
}

// FormatFare converts a raw search result into the quote shape the rest of
// the tracker uses, rendering the departure timestamp as MM/DD/YY. A nil fare
// (no flights in the window) passes through as nil.
func FormatFare(raw *Fare) *domain.FareQuote {
	if raw == nil {
		log.Println("no fare data to format")
		return nil
	}

	quote := &domain.FareQuote{
		Price:      raw.Price,
		FromCity:   raw.FlyFrom,
		ToCity:     raw.CityTo,
		DepartDate: raw.LocalDeparture,
	}

	if t, err := time.Parse(time.RFC3339, raw.LocalDeparture); err == nil {
		quote.LocalDeparture = t.Format(displayDate)
	} else {
		log.Printf("unparseable departure %q: %v", raw.LocalDeparture, err)
		quote.LocalDeparture = raw.LocalDeparture
	}
	return quote
}
