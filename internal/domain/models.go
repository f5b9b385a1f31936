package domain

// Destination is one tracked city from the "prices" sheet.
// Row is the sheet row the record was read from (first data row is 2) and is
// the key used when writing the resolved IATA code back.
type Destination struct {
	City        string
	IATACode    string
	LowestPrice float64
	Row         int
}

// Subscriber is one row from the "users" sheet.
type Subscriber struct {
	FirstName string
	LastName  string
	Email     string
}

// FullName joins first and last name for use in message templates.
func (s Subscriber) FullName() string {
	return s.FirstName + " " + s.LastName
}

// FareQuote is the cheapest priced itinerary found for one destination,
// normalized for display. It lives only for the duration of one check.
type FareQuote struct {
	Price          float64
	FromCity       string
	ToCity         string
	DepartDate     string // provider timestamp, as received
	LocalDeparture string // MM/DD/YY
}

// LocationMatch is the provider's canonical code for a free-text place name.
type LocationMatch struct {
	Type string
	Name string
	Code string
}
