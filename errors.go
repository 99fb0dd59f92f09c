package go_netaxept

import (
	"errors"
	"fmt"
)

// ValidationError indicates that local input is missing required fields or
// contains invalid data. It is raised before any network traffic happens.
type ValidationError struct {
	Fields []FieldError
}

type FieldError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e == nil || len(e.Fields) == 0 {
		return "validation error"
	}
	if len(e.Fields) == 1 {
		fe := e.Fields[0]
		if fe.Field == "" {
			return fmt.Sprintf("validation error: %s", fe.Message)
		}
		return fmt.Sprintf("validation error: %s: %s", fe.Field, fe.Message)
	}
	return fmt.Sprintf("validation error: %d fields", len(e.Fields))
}

func (e *ValidationError) Add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

func (e *ValidationError) HasErrors() bool {
	return e != nil && len(e.Fields) > 0
}

// IsValidationError checks whether err is a *ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// APIError represents a non-2xx response from Netaxept. Gateway faults
// arrive with status 200 and are classified separately, see GatewayError
// and DeclineError.
type APIError struct {
	StatusCode int
	Body       []byte
}

func (e *APIError) Error() string {
	if e == nil {
		return "netaxept api error"
	}
	if len(e.Body) == 0 {
		return fmt.Sprintf("netaxept api error: status %d", e.StatusCode)
	}
	b := e.Body
	if len(b) > 1024 {
		b = b[:1024]
	}
	return fmt.Sprintf("netaxept api error: status %d: %s", e.StatusCode, string(b))
}

// Kind identifies the outer category of a classified gateway fault.
//
// The set is closed: unknown fault types degrade to KindGeneric rather
// than producing a classification failure.
type Kind int

const (
	KindGeneric Kind = iota
	KindAuthentication
	KindMerchantTranslation
	KindNotSupported
	KindSecurity
	KindUniqueTransactionID
	KindValidation
	KindQuery
)

var kindNames = map[Kind]string{
	KindGeneric:             "generic",
	KindAuthentication:      "authentication",
	KindMerchantTranslation: "merchant translation",
	KindNotSupported:        "not supported",
	KindSecurity:            "security",
	KindUniqueTransactionID: "unique transaction id",
	KindValidation:          "validation",
	KindQuery:               "query",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// GatewayError is a classified protocol-level fault from the gateway.
type GatewayError struct {
	Kind    Kind
	Message string
}

func (e *GatewayError) Error() string {
	if e == nil {
		return "netaxept gateway error"
	}
	return fmt.Sprintf("netaxept %s error: %s", e.Kind, e.Message)
}

// IsGatewayError reports whether err is a classified protocol-level fault,
// returning it for kind matching.
func IsGatewayError(err error) (*GatewayError, bool) {
	var ge *GatewayError
	if errors.As(err, &ge) {
		return ge, true
	}
	return nil, false
}

// DeclineReason identifies the specific reason a transaction was declined
// by the issuer or the processing network ("BBSException" faults).
type DeclineReason int

const (
	DeclineUnknown DeclineReason = iota
	DeclineInvalidCardNumber
	DeclineTransactionNotFound
	DeclineInvalidKID
	DeclineOriginalTransactionRejected
	DeclineTransactionAlreadyReversed
	DeclineInternalFailure
	DeclineNoTransaction
	DeclineTransactionAlreadyProcessed
	DeclineGeneric
	DeclineDeniedBy3DSecure
	DeclineMerchantTimeout
	DeclineContactIssuer
	DeclineInvalidMerchant
	DeclineIssuerRefused
	DeclineInvalidTransaction
	DeclineInvalidAmount
	DeclineTryAgain
	DeclineCardExpired
	DeclineNoCheckingAccount
	DeclineNoCardRecord
	DeclineTransactionNotPermitted
	DeclineLateResponseTryAgain
	DeclineTemporarilyUnavailable
	DeclineInvalidSecurityCode
)

var declineReasonNames = map[DeclineReason]string{
	DeclineUnknown:                     "unknown decline reason",
	DeclineInvalidCardNumber:           "invalid card number",
	DeclineTransactionNotFound:         "transaction not found",
	DeclineInvalidKID:                  "invalid KID",
	DeclineOriginalTransactionRejected: "original transaction rejected",
	DeclineTransactionAlreadyReversed:  "transaction already reversed",
	DeclineInternalFailure:             "internal failure",
	DeclineNoTransaction:               "no transaction",
	DeclineTransactionAlreadyProcessed: "transaction already processed",
	DeclineGeneric:                     "generic decline",
	DeclineDeniedBy3DSecure:            "denied by 3-D Secure authentication",
	DeclineMerchantTimeout:             "transaction reached merchant timeout",
	DeclineContactIssuer:               "issuer refused: contact issuer",
	DeclineInvalidMerchant:             "issuer refused: invalid merchant",
	DeclineIssuerRefused:               "issuer refused",
	DeclineInvalidTransaction:          "invalid transaction",
	DeclineInvalidAmount:               "invalid amount",
	DeclineTryAgain:                    "issuer refused: try again",
	DeclineCardExpired:                 "card expired",
	DeclineNoCheckingAccount:           "issuer refused: no checking account",
	DeclineNoCardRecord:                "issuer refused: no card record",
	DeclineTransactionNotPermitted:     "issuer refused: transaction not permitted",
	DeclineLateResponseTryAgain:        "issuer refused: late response, try again",
	DeclineTemporarilyUnavailable:      "issuer refused: temporarily unavailable",
	DeclineInvalidSecurityCode:         "issuer refused: invalid security code",
}

func (r DeclineReason) String() string {
	if name, ok := declineReasonNames[r]; ok {
		return name
	}
	return fmt.Sprintf("decline reason(%d)", int(r))
}

// DeclineError is a classified transaction decline. Besides the reason it
// carries whatever detail the gateway included in the fault's Result
// block; absent sub-fields stay empty.
type DeclineError struct {
	Reason  DeclineReason
	Message string
	Code    string

	IssuerID       string
	ResponseCode   string
	ResponseText   string
	ResponseSource string
	TransactionID  string
	MerchantID     string
	MessageID      string
}

func (e *DeclineError) Error() string {
	if e == nil {
		return "netaxept decline"
	}
	if e.Code == "" {
		return fmt.Sprintf("netaxept decline (%s): %s", e.Reason, e.Message)
	}
	return fmt.Sprintf("netaxept decline (%s, code %s): %s", e.Reason, e.Code, e.Message)
}

// IsDeclineError reports whether err is a classified decline, returning it
// for reason matching.
func IsDeclineError(err error) (*DeclineError, bool) {
	var de *DeclineError
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}
