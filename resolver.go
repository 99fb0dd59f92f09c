package go_netaxept

import (
	"encoding/xml"
	"fmt"
)

// Fault payload, as documented at
// https://shop.nets.eu/web/partners/exceptions:
//
//	<Exception><Error type="...">
//	  <Message>...</Message>
//	  [<Result>...</Result>]
//	</Error></Exception>
type faultEnvelope struct {
	XMLName xml.Name   `xml:"Exception"`
	Error   faultError `xml:"Error"`
}

type faultError struct {
	Type    string       `xml:"type,attr"`
	Message string       `xml:"Message"`
	Result  *faultResult `xml:"Result"`
}

type faultResult struct {
	IssuerID       string `xml:"IssuerId"`
	ResponseCode   string `xml:"ResponseCode"`
	ResponseText   string `xml:"ResponseText"`
	ResponseSource string `xml:"ResponseSource"`
	TransactionID  string `xml:"TransactionId"`
	MerchantID     string `xml:"MerchantId"`
	MessageID      string `xml:"MessageId"`
}

// Outer fault type dispatch. Case-sensitive, exact match; anything not
// listed here (including "GenericError") resolves to KindGeneric.
var faultKinds = map[string]Kind{
	"AuthenticationException":      KindAuthentication,
	"MerchantTranslationException": KindMerchantTranslation,
	"NotSupportedException":        KindNotSupported,
	"SecurityException":            KindSecurity,
	"UniqueTransactionIdException": KindUniqueTransactionID,
	"ValidationException":          KindValidation,
	"QueryException":               KindQuery,
}

// Response code to decline reason, from
// https://shop.nets.eu/web/partners/response-codes.
//
// The reference material lists codes 14, 25, 30, 86 and 96 twice: once
// with a specific reason and again inside the broader issuer-refused
// groups. The later entries were unreachable there, so only the specific
// mapping is kept here; the duplication is very likely accidental but the
// tie-break is part of the classification contract.
var declineReasons = map[string]DeclineReason{
	"14": DeclineInvalidCardNumber,
	"25": DeclineTransactionNotFound,
	"30": DeclineInvalidKID,
	"84": DeclineOriginalTransactionRejected,
	"86": DeclineTransactionAlreadyReversed,
	"96": DeclineInternalFailure,
	"97": DeclineNoTransaction,
	"98": DeclineTransactionAlreadyProcessed,
	"99": DeclineGeneric,
	"MZ": DeclineDeniedBy3DSecure,
	"T1": DeclineMerchantTimeout,

	"01": DeclineContactIssuer,
	"02": DeclineContactIssuer,
	"41": DeclineContactIssuer,
	"43": DeclineContactIssuer,
	"51": DeclineContactIssuer,
	"59": DeclineContactIssuer,
	"61": DeclineContactIssuer,
	"62": DeclineContactIssuer,
	"93": DeclineContactIssuer,

	"03": DeclineInvalidMerchant,

	"04": DeclineIssuerRefused,
	"05": DeclineIssuerRefused,
	"06": DeclineIssuerRefused,
	"07": DeclineIssuerRefused,
	"08": DeclineIssuerRefused,
	"09": DeclineIssuerRefused,
	"10": DeclineIssuerRefused,
	"15": DeclineIssuerRefused,
	"34": DeclineIssuerRefused,
	"35": DeclineIssuerRefused,
	"36": DeclineIssuerRefused,
	"37": DeclineIssuerRefused,
	"60": DeclineIssuerRefused,
	"78": DeclineIssuerRefused,
	"79": DeclineIssuerRefused,
	"80": DeclineIssuerRefused,
	"C9": DeclineIssuerRefused,
	"N0": DeclineIssuerRefused,
	"P1": DeclineIssuerRefused,
	"P9": DeclineIssuerRefused,
	"T3": DeclineIssuerRefused,
	"T8": DeclineIssuerRefused,

	"12": DeclineInvalidTransaction,
	"39": DeclineInvalidTransaction,
	"77": DeclineInvalidTransaction,

	"13": DeclineInvalidAmount,
	"19": DeclineTryAgain,

	"33": DeclineCardExpired,
	"54": DeclineCardExpired,

	"52": DeclineNoCheckingAccount,
	"56": DeclineNoCardRecord,
	"57": DeclineTransactionNotPermitted,
	"68": DeclineLateResponseTryAgain,

	"91": DeclineTemporarilyUnavailable,
	"92": DeclineTemporarilyUnavailable,
	"95": DeclineTemporarilyUnavailable,

	"N7": DeclineInvalidSecurityCode,
}

// ResolveFault classifies a raw fault payload into a typed error.
//
// It always returns a non-nil error: either the classified
// *GatewayError/*DeclineError, or a parse error when the payload is not
// the documented fault schema at all. Callers decide whether a payload is
// a fault in the first place; see Transaction.
func ResolveFault(raw []byte) error {
	var env faultEnvelope
	if err := xml.Unmarshal(raw, &env); err != nil {
		return fmt.Errorf("parse fault payload: %w", err)
	}

	if env.Error.Type == "BBSException" {
		return resolveDecline(env.Error)
	}

	kind, ok := faultKinds[env.Error.Type]
	if !ok {
		// Unknown and future fault types degrade to generic.
		kind = KindGeneric
	}
	return &GatewayError{Kind: kind, Message: env.Error.Message}
}

func resolveDecline(fault faultError) *DeclineError {
	result := fault.Result
	if result == nil {
		result = &faultResult{}
	}

	reason, ok := declineReasons[result.ResponseCode]
	if !ok {
		reason = DeclineUnknown
	}

	return &DeclineError{
		Reason:         reason,
		Message:        fmt.Sprintf("%s: %s", fault.Message, result.ResponseText),
		Code:           result.ResponseCode,
		IssuerID:       result.IssuerID,
		ResponseCode:   result.ResponseCode,
		ResponseText:   result.ResponseText,
		ResponseSource: result.ResponseSource,
		TransactionID:  result.TransactionID,
		MerchantID:     result.MerchantID,
		MessageID:      result.MessageID,
	}
}
