package go_netaxept

import (
	"encoding/json"
	"net/url"
	"strconv"

	"github.com/stremovskyy/go-netaxept/consts"
	"github.com/stremovskyy/go-netaxept/internal/utils"
)

// Request aggregates the order metadata for a Register call.
//
// Setters are fluent and never reject over-long input: bounded fields are
// truncated to the limits in consts, matching how the gateway treats the
// order description. Use Values for the wire representation.
type Request struct {
	orderNumber       string
	customerFirstName string
	customerLastName  string
	customerEmail     string
	customerAddress1  string
	customerAddress2  string
	customerPostcode  string
	customerTown      string
	customerCountry   string
	orderDescription  string
	redirectURL       string
	language          string
	transactionID     string

	price *Price
	// Derived from price on SetPrice; never mutated independently.
	amount       string
	currencyCode string

	paymentMethodActionList string
	transactionReconRef     string
	recurringType           string
	recurringFrequency      string
	recurringExpiryDate     string
	terminalSinglePage      bool
}

func NewRequest() *Request {
	return &Request{language: consts.DefaultLanguage}
}

// PaymentMethodAction restricts or configures a payment method in the
// hosted terminal. The list is JSON-encoded into a single form field.
type PaymentMethodAction struct {
	PaymentMethod string `json:"PaymentMethod,omitempty"`
	Action        string `json:"Action,omitempty"`
	Fee           string `json:"Fee,omitempty"`
}

// SetOrderNumber sets the merchant-defined transaction identifier.
func (r *Request) SetOrderNumber(orderNumber string) *Request {
	r.orderNumber = orderNumber
	return r
}

func (r *Request) OrderNumber() string { return r.orderNumber }

// SetTransactionID sets the transaction id, max 32 bytes. When omitted,
// Netaxept generates one during Register.
func (r *Request) SetTransactionID(transactionID string) *Request {
	r.transactionID = utils.Truncate(transactionID, consts.MaxTransactionIDLength)
	return r
}

func (r *Request) TransactionID() string { return r.transactionID }

// SetPrice stores the price and derives the wire-level amount and currency
// fields from it. The derived fields always track the price; there is no
// way to set them independently.
func (r *Request) SetPrice(price *Price) error {
	if price == nil {
		ve := &ValidationError{}
		ve.Add("price", "is nil")
		return ve
	}
	r.price = price
	r.amount = strconv.FormatInt(price.StrippedDecimalInteger(), 10)
	r.currencyCode = string(price.Currency())
	return nil
}

func (r *Request) Price() *Price { return r.price }

// Amount returns the derived minor-unit amount as a string, empty until a
// price is set.
func (r *Request) Amount() string { return r.amount }

func (r *Request) CurrencyCode() string { return r.currencyCode }

func (r *Request) SetCustomerFirstName(firstName string) *Request {
	r.customerFirstName = utils.Truncate(firstName, consts.MaxCustomerNameLength)
	return r
}

func (r *Request) CustomerFirstName() string { return r.customerFirstName }

func (r *Request) SetCustomerLastName(lastName string) *Request {
	r.customerLastName = utils.Truncate(lastName, consts.MaxCustomerNameLength)
	return r
}

func (r *Request) CustomerLastName() string { return r.customerLastName }

func (r *Request) SetCustomerEmail(email string) *Request {
	r.customerEmail = utils.Truncate(email, consts.MaxCustomerEmailLength)
	return r
}

func (r *Request) CustomerEmail() string { return r.customerEmail }

func (r *Request) SetCustomerAddress1(address string) *Request {
	r.customerAddress1 = utils.Truncate(address, consts.MaxCustomerAddressLength)
	return r
}

func (r *Request) CustomerAddress1() string { return r.customerAddress1 }

func (r *Request) SetCustomerAddress2(address string) *Request {
	r.customerAddress2 = utils.Truncate(address, consts.MaxCustomerAddressLength)
	return r
}

func (r *Request) CustomerAddress2() string { return r.customerAddress2 }

func (r *Request) SetCustomerPostcode(postcode string) *Request {
	r.customerPostcode = utils.Truncate(postcode, consts.MaxCustomerPostcodeLength)
	return r
}

func (r *Request) CustomerPostcode() string { return r.customerPostcode }

func (r *Request) SetCustomerTown(town string) *Request {
	r.customerTown = utils.Truncate(town, consts.MaxCustomerTownLength)
	return r
}

func (r *Request) CustomerTown() string { return r.customerTown }

func (r *Request) SetCustomerCountry(country string) *Request {
	r.customerCountry = country
	return r
}

func (r *Request) CustomerCountry() string { return r.customerCountry }

// SetOrderDescription sets the free-format description shown in the hosted
// payment window. Max 1500 bytes, truncated on overflow.
func (r *Request) SetOrderDescription(description string) *Request {
	r.orderDescription = utils.Truncate(description, consts.MaxOrderDescriptionLength)
	return r
}

func (r *Request) OrderDescription() string { return r.orderDescription }

// SetRedirectURL sets where the customer is sent after the terminal phase.
// Max 256 bytes. May contain GET parameters.
func (r *Request) SetRedirectURL(redirectURL string) *Request {
	r.redirectURL = utils.Truncate(redirectURL, consts.MaxRedirectURLLength)
	return r
}

func (r *Request) RedirectURL() string { return r.redirectURL }

// SetLanguage sets the terminal language as a locale string, e.g. "nb_NO".
func (r *Request) SetLanguage(language string) *Request {
	r.language = language
	return r
}

func (r *Request) Language() string { return r.language }

// SetPaymentMethodActionList configures the payment methods offered by the
// hosted terminal.
func (r *Request) SetPaymentMethodActionList(actions []PaymentMethodAction) *Request {
	b, err := json.Marshal(actions)
	if err != nil {
		return r
	}
	r.paymentMethodActionList = string(b)
	return r
}

func (r *Request) PaymentMethodActionList() []PaymentMethodAction {
	if r.paymentMethodActionList == "" {
		return nil
	}
	var actions []PaymentMethodAction
	if err := json.Unmarshal([]byte(r.paymentMethodActionList), &actions); err != nil {
		return nil
	}
	return actions
}

// SetReferenceNumber sets the transaction reconciliation reference.
func (r *Request) SetReferenceNumber(referenceNumber string) *Request {
	r.transactionReconRef = referenceNumber
	return r
}

func (r *Request) ReferenceNumber() string { return r.transactionReconRef }

// SetRecurringType indicates which kind of recurring transaction to
// create. Valid values are "S" and "R".
func (r *Request) SetRecurringType(recurringType string) *Request {
	r.recurringType = recurringType
	return r
}

func (r *Request) RecurringType() string { return r.recurringType }

// SetRecurringFrequency sets the minimum number of days between
// withdrawals, 0-365.
func (r *Request) SetRecurringFrequency(frequency string) *Request {
	r.recurringFrequency = frequency
	return r
}

func (r *Request) RecurringFrequency() string { return r.recurringFrequency }

// SetRecurringExpiryDate sets the end date of the recurring agreement, in
// YYYYMMDD format.
func (r *Request) SetRecurringExpiryDate(date string) *Request {
	r.recurringExpiryDate = date
	return r
}

func (r *Request) RecurringExpiryDate() string { return r.recurringExpiryDate }

func (r *Request) SetTerminalSinglePage(singlePage bool) *Request {
	r.terminalSinglePage = singlePage
	return r
}

func (r *Request) TerminalSinglePage() bool { return r.terminalSinglePage }

// Values returns the flat form representation of the request.
//
// Fields that were never set are omitted; language is always present
// because the gateway expects one.
func (r *Request) Values() url.Values {
	v := url.Values{}
	if r == nil {
		return v
	}
	setIfPresent := func(key, value string) {
		if value != "" {
			v.Set(key, value)
		}
	}
	setIfPresent("orderNumber", r.orderNumber)
	setIfPresent("customerFirstName", r.customerFirstName)
	setIfPresent("customerLastName", r.customerLastName)
	setIfPresent("customerEmail", r.customerEmail)
	setIfPresent("customerAddress1", r.customerAddress1)
	setIfPresent("customerAddress2", r.customerAddress2)
	setIfPresent("customerPostcode", r.customerPostcode)
	setIfPresent("customerTown", r.customerTown)
	setIfPresent("customerCountry", r.customerCountry)
	setIfPresent("orderDescription", r.orderDescription)
	setIfPresent("redirectUrl", r.redirectURL)
	setIfPresent("amount", r.amount)
	setIfPresent("currencyCode", r.currencyCode)
	setIfPresent("language", r.language)
	setIfPresent("transactionId", r.transactionID)
	setIfPresent("paymentMethodActionList", r.paymentMethodActionList)
	setIfPresent("transactionReconRef", r.transactionReconRef)
	setIfPresent("recurringType", r.recurringType)
	setIfPresent("recurringFrequency", r.recurringFrequency)
	setIfPresent("recurringExpiryDate", r.recurringExpiryDate)
	if r.terminalSinglePage {
		v.Set("terminalSinglePage", "true")
	}
	return v
}
