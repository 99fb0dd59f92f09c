package consts

// Currency is an ISO 4217 currency code accepted by Netaxept.
type Currency string

const (
	CurrencyNOK Currency = "NOK"
	CurrencyDKK Currency = "DKK"
	CurrencySEK Currency = "SEK"
	CurrencyEUR Currency = "EUR"
	CurrencyUSD Currency = "USD"
	CurrencyGBP Currency = "GBP"
)
