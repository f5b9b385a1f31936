package domain

import "errors"

// ErrRemoteStore is returned when the spreadsheet store answers a request
// with a non-2xx status. The current workflow pass aborts.
var ErrRemoteStore = errors.New("remote store error")

// ErrFareProvider is returned when the flight-search API answers with a
// non-2xx status.
var ErrFareProvider = errors.New("fare provider error")

// ErrLocationNotFound is returned when a location query matches nothing.
var ErrLocationNotFound = errors.New("location not found")

// ErrDelivery is returned when an email or SMS send fails. There is no
// retry; the scheduler picks up again on the next cycle.
var ErrDelivery = errors.New("delivery failed")
