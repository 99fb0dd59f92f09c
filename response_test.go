package go_netaxept

import (
	"encoding/xml"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueryResponseAuthorized(t *testing.T) {
	cases := map[string]bool{
		"true":  true,
		"TRUE":  true,
		"True":  true,
		"false": false,
		"FALSE": false,
		"":      false,
		"yes":   false,
	}
	for value, want := range cases {
		q := &QueryResponse{Summary: Summary{Authorized: value}}
		assert.Equal(t, want, q.Authorized(), "value %q", value)
	}
}

func TestQueryResponseCapturedAmount(t *testing.T) {
	q := &QueryResponse{Summary: Summary{AmountCaptured: "1337"}}
	amount, err := q.CapturedAmount()
	require.NoError(t, err)
	assert.Equal(t, int64(1337), amount)

	// Absent field counts as zero.
	empty := &QueryResponse{}
	amount, err = empty.CapturedAmount()
	require.NoError(t, err)
	assert.Equal(t, int64(0), amount)

	garbage := &QueryResponse{Summary: Summary{AmountCaptured: "lots"}}
	_, err = garbage.CapturedAmount()
	assert.Error(t, err)
}

func TestQueryResponseUnmarshal(t *testing.T) {
	raw := []byte(`<PaymentInfo>
		<MerchantId>M1</MerchantId>
		<TransactionId>ABC123</TransactionId>
		<QueryFinished>2026-01-02T15:04:05</QueryFinished>
		<OrderInformation><Amount>1337</Amount><Currency>NOK</Currency><OrderNumber>1337</OrderNumber></OrderInformation>
		<Summary><AmountCaptured>1337</AmountCaptured><Authorized>true</Authorized><AuthorizationId>064392</AuthorizationId></Summary>
	</PaymentInfo>`)

	var q QueryResponse
	require.NoError(t, xml.Unmarshal(raw, &q))
	assert.Equal(t, "ABC123", q.TransactionID)
	assert.Equal(t, "NOK", q.OrderInformation.Currency)
	assert.Equal(t, "064392", q.Summary.AuthorizationID)
	assert.True(t, q.Authorized())
}

func TestIsFault(t *testing.T) {
	assert.True(t, isFault([]byte(`<?xml version="1.0"?><Exception><Error type="GenericError"/></Exception>`)))
	assert.True(t, isFault([]byte(`<Exception></Exception>`)))
	assert.False(t, isFault([]byte(`<Register><TransactionId>1</TransactionId></Register>`)))
	assert.False(t, isFault([]byte(`<PaymentInfo/>`)))
	assert.False(t, isFault(nil))
	assert.False(t, isFault([]byte("plain text")))
}
