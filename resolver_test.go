package go_netaxept

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func faultXML(faultType string, message string, result string) []byte {
	return []byte(fmt.Sprintf(
		`<?xml version="1.0"?><Exception><Error type="%s"><Message>%s</Message>%s</Error></Exception>`,
		faultType, message, result,
	))
}

func bbsFaultXML(responseCode string) []byte {
	result := fmt.Sprintf(
		`<Result><IssuerId>3</IssuerId><ResponseCode>%s</ResponseCode><ResponseText>refused</ResponseText><ResponseSource>Netaxept</ResponseSource><TransactionId>tx-1</TransactionId><MerchantId>M1</MerchantId><MessageId>msg-1</MessageId></Result>`,
		responseCode,
	)
	return faultXML("BBSException", "Unable to process", result)
}

func TestResolveFaultOuterTypes(t *testing.T) {
	cases := []struct {
		faultType string
		want      Kind
	}{
		{"AuthenticationException", KindAuthentication},
		{"MerchantTranslationException", KindMerchantTranslation},
		{"NotSupportedException", KindNotSupported},
		{"SecurityException", KindSecurity},
		{"UniqueTransactionIdException", KindUniqueTransactionID},
		{"ValidationException", KindValidation},
		{"QueryException", KindQuery},
		{"GenericError", KindGeneric},
	}

	for _, tc := range cases {
		t.Run(tc.faultType, func(t *testing.T) {
			err := ResolveFault(faultXML(tc.faultType, "something broke", ""))
			require.Error(t, err)

			ge, ok := IsGatewayError(err)
			require.True(t, ok, "expected *GatewayError, got %T (%v)", err, err)
			assert.Equal(t, tc.want, ge.Kind)
			assert.Equal(t, "something broke", ge.Message)
		})
	}
}

func TestResolveFaultAuthenticationIgnoresResult(t *testing.T) {
	// A present Result block must not turn a protocol fault into a decline.
	raw := faultXML("AuthenticationException", "bad creds",
		`<Result><ResponseCode>14</ResponseCode></Result>`)
	err := ResolveFault(raw)

	ge, ok := IsGatewayError(err)
	require.True(t, ok)
	assert.Equal(t, KindAuthentication, ge.Kind)
	assert.Equal(t, "bad creds", ge.Message)

	_, isDecline := IsDeclineError(err)
	assert.False(t, isDecline)
}

func TestResolveFaultUnknownTypeDegradesToGeneric(t *testing.T) {
	err := ResolveFault(faultXML("UnrecognizedFutureType", "odd message", ""))

	ge, ok := IsGatewayError(err)
	require.True(t, ok)
	assert.Equal(t, KindGeneric, ge.Kind)
	assert.Equal(t, "odd message", ge.Message)
}

func TestResolveFaultDeclineTable(t *testing.T) {
	cases := []struct {
		codes []string
		want  DeclineReason
	}{
		{[]string{"14"}, DeclineInvalidCardNumber},
		{[]string{"25"}, DeclineTransactionNotFound},
		{[]string{"30"}, DeclineInvalidKID},
		{[]string{"84"}, DeclineOriginalTransactionRejected},
		{[]string{"86"}, DeclineTransactionAlreadyReversed},
		{[]string{"96"}, DeclineInternalFailure},
		{[]string{"97"}, DeclineNoTransaction},
		{[]string{"98"}, DeclineTransactionAlreadyProcessed},
		{[]string{"99"}, DeclineGeneric},
		{[]string{"MZ"}, DeclineDeniedBy3DSecure},
		{[]string{"T1"}, DeclineMerchantTimeout},
		{[]string{"01", "02", "41", "43", "51", "59", "61", "62", "93"}, DeclineContactIssuer},
		{[]string{"03"}, DeclineInvalidMerchant},
		{[]string{"04", "05", "06", "07", "08", "09", "10", "15", "34", "35", "36", "37", "60", "78", "79", "80", "C9", "N0", "P1", "P9", "T3", "T8"}, DeclineIssuerRefused},
		{[]string{"12", "39", "77"}, DeclineInvalidTransaction},
		{[]string{"13"}, DeclineInvalidAmount},
		{[]string{"19"}, DeclineTryAgain},
		{[]string{"33", "54"}, DeclineCardExpired},
		{[]string{"52"}, DeclineNoCheckingAccount},
		{[]string{"56"}, DeclineNoCardRecord},
		{[]string{"57"}, DeclineTransactionNotPermitted},
		{[]string{"68"}, DeclineLateResponseTryAgain},
		{[]string{"91", "92", "95"}, DeclineTemporarilyUnavailable},
		{[]string{"N7"}, DeclineInvalidSecurityCode},
		{[]string{"ZZ", "00", ""}, DeclineUnknown},
	}

	for _, tc := range cases {
		for _, code := range tc.codes {
			name := code
			if name == "" {
				name = "empty"
			}
			t.Run(name, func(t *testing.T) {
				err := ResolveFault(bbsFaultXML(code))
				require.Error(t, err)

				de, ok := IsDeclineError(err)
				require.True(t, ok, "expected *DeclineError, got %T (%v)", err, err)
				assert.Equal(t, tc.want, de.Reason)
				assert.Equal(t, code, de.Code)
			})
		}
	}
}

// Codes listed twice in the gateway's response-code documentation must
// resolve to the specific reason, not the broad issuer-refused group.
func TestResolveFaultAmbiguousCodesSpecificWins(t *testing.T) {
	cases := map[string]DeclineReason{
		"14": DeclineInvalidCardNumber,
		"25": DeclineTransactionNotFound,
		"30": DeclineInvalidKID,
		"86": DeclineTransactionAlreadyReversed,
		"96": DeclineInternalFailure,
	}

	for code, want := range cases {
		de, ok := IsDeclineError(ResolveFault(bbsFaultXML(code)))
		require.True(t, ok)
		assert.Equal(t, want, de.Reason, "code %s", code)
		assert.NotEqual(t, DeclineIssuerRefused, de.Reason, "code %s", code)
	}
}

func TestResolveFaultDeclineDetail(t *testing.T) {
	err := ResolveFault(bbsFaultXML("14"))

	de, ok := IsDeclineError(err)
	require.True(t, ok)
	assert.Equal(t, "Unable to process: refused", de.Message)
	assert.Equal(t, "3", de.IssuerID)
	assert.Equal(t, "14", de.ResponseCode)
	assert.Equal(t, "refused", de.ResponseText)
	assert.Equal(t, "Netaxept", de.ResponseSource)
	assert.Equal(t, "tx-1", de.TransactionID)
	assert.Equal(t, "M1", de.MerchantID)
	assert.Equal(t, "msg-1", de.MessageID)
}

func TestResolveFaultMissingResultFields(t *testing.T) {
	// Sparse Result: classification still succeeds, absent sub-fields
	// stay empty.
	raw := faultXML("BBSException", "Unable to process",
		`<Result><ResponseCode>33</ResponseCode></Result>`)
	err := ResolveFault(raw)

	de, ok := IsDeclineError(err)
	require.True(t, ok)
	assert.Equal(t, DeclineCardExpired, de.Reason)
	assert.Empty(t, de.IssuerID)
	assert.Empty(t, de.ResponseText)
	assert.Empty(t, de.TransactionID)
}

func TestResolveFaultNoResultAtAll(t *testing.T) {
	err := ResolveFault(faultXML("BBSException", "Unable to process", ""))

	de, ok := IsDeclineError(err)
	require.True(t, ok)
	assert.Equal(t, DeclineUnknown, de.Reason)
	assert.Empty(t, de.ResponseCode)
}

func TestResolveFaultMalformedPayload(t *testing.T) {
	err := ResolveFault([]byte("not xml at all <"))
	require.Error(t, err)

	_, isGateway := IsGatewayError(err)
	_, isDecline := IsDeclineError(err)
	assert.False(t, isGateway)
	assert.False(t, isDecline)
}

func TestResolveFaultAlwaysFails(t *testing.T) {
	payloads := [][]byte{
		faultXML("GenericError", "", ""),
		bbsFaultXML("99"),
		[]byte("<Exception></Exception>"),
	}
	for _, p := range payloads {
		assert.Error(t, ResolveFault(p))
	}
}
