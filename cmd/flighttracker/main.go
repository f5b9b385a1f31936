package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/moffd234/FlightPriceTracker/internal/config"
	"github.com/moffd234/FlightPriceTracker/internal/flights"
	"github.com/moffd234/FlightPriceTracker/internal/notify"
	"github.com/moffd234/FlightPriceTracker/internal/sheets"
	"github.com/moffd234/FlightPriceTracker/internal/tracker"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	store := sheets.New(&cfg)
	search := flights.New(&cfg)
	mailer := notify.NewEmailSender(&cfg)

	t := tracker.New(store, search, mailer)
	if cfg.SMSConfigured() {
		t.SMS = notify.NewSMSSender(&cfg)
	}

	mode := "check"
	if len(os.Args) > 1 {
		mode = os.Args[1]
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	switch mode {
	case "check":
		if err := t.CheckPrices(ctx); err != nil {
			log.Fatalf("check prices: %v", err)
		}
	case "resolve":
		if err := t.ResolveCodes(ctx); err != nil {
			log.Fatalf("resolve codes: %v", err)
		}
	case "signup":
		if err := t.Signup(ctx, os.Stdin, os.Stdout); err != nil {
			log.Fatalf("signup: %v", err)
		}
	default:
		log.Fatalf("unknown command %q (want check, resolve, or signup)", mode)
	}
}
