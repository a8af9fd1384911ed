package shared

// Instrument represents a tradable instrument listed by the brokerage.
type Instrument struct {
	// Ticker is the short human readable instrument symbol, eg. TSLA.
	Ticker string
	// FIGI is the opaque provider assigned identifier used in data queries.
	FIGI string
	// ISIN is the international securities identification number.
	ISIN string
	// Currency is the instrument's trade currency.
	Currency string
	// Lot is the instrument's lot size.
	Lot int64
	// MinPriceIncrement is the instrument's minimum price increment.
	MinPriceIncrement float64
	// Name is the instrument's display name.
	Name string
	// Type is the instrument type, eg. Stock.
	Type string
}
