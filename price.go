package go_netaxept

import (
	"strings"

	"github.com/shopspring/decimal"
	"github.com/stremovskyy/go-netaxept/consts"
)

// Price is an amount together with its ISO 4217 currency code.
//
// Netaxept itself never sees the decimal form: the amount crosses the wire
// as a minor-unit integer, see StrippedDecimalInteger.
type Price struct {
	amount   decimal.Decimal
	currency consts.Currency
}

func NewPrice(amount decimal.Decimal, currency consts.Currency) *Price {
	return &Price{amount: amount, currency: currency}
}

// NewPriceFromString parses amount as a decimal string, e.g. "9.99".
//
// Use punctuation (.) instead of comma (,) on decimals.
func NewPriceFromString(amount string, currency consts.Currency) (*Price, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(amount))
	if err != nil {
		return nil, err
	}
	return &Price{amount: d, currency: currency}, nil
}

func (p *Price) Amount() decimal.Decimal {
	if p == nil {
		return decimal.Zero
	}
	return p.amount
}

func (p *Price) Currency() consts.Currency {
	if p == nil {
		return ""
	}
	return p.currency
}

// StrippedDecimalInteger returns the amount formatted to exactly two
// fractional digits with the decimal separator removed: 13.37 becomes
// 1337, 9.9 becomes 990, 9 becomes 900.
//
// Zero yields 0. Negative amounts are not rejected and yield a negative
// integer; the gateway reports invalid amounts itself.
func (p *Price) StrippedDecimalInteger() int64 {
	if p == nil {
		return 0
	}
	return p.amount.Round(2).Shift(2).IntPart()
}
