package notify

import (
	"fmt"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"

	"github.com/moffd234/FlightPriceTracker/internal/config"
	"github.com/moffd234/FlightPriceTracker/internal/domain"
)

// SMSSender texts deal alerts to a single configured number via Twilio.
// It is wired up but not part of the default check-prices path; callers opt
// in explicitly.
type SMSSender struct {
	api  *twilio.RestClient
	from string
	to   string
}

func NewSMSSender(cfg *config.Config) *SMSSender {
	return &SMSSender{
		api: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: cfg.TwilioSID,
			Password: cfg.TwilioToken,
		}),
		from: cfg.TwilioFrom,
		to:   cfg.AlertNumber,
	}
}

// SendAlert texts the alert number about one qualifying fare.
func (s *SMSSender) SendAlert(fare domain.FareQuote) error {
	params := &twilioApi.CreateMessageParams{}
	params.SetFrom(s.from)
	params.SetTo(s.to)
	params.SetBody(fmt.Sprintf(
		"Low price alert! Only $%s to fly from %s to %s on %s",
		formatPrice(fare.Price), fare.FromCity, fare.ToCity, fare.LocalDeparture,
	))

	if _, err := s.api.Api.CreateMessage(params); err != nil {
		return fmt.Errorf("%w: sms to %s: %v", domain.ErrDelivery, s.to, err)
	}
	return nil
}
