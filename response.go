package go_netaxept

import (
	"bytes"
	"encoding/xml"
	"strconv"
	"strings"
)

// RegisterResponse is the success payload of the Register endpoint.
type RegisterResponse struct {
	TransactionID string `xml:"TransactionId"`
}

// ProcessResponse is the success payload of the Process endpoint.
type ProcessResponse struct {
	Operation       string `xml:"Operation"`
	ResponseCode    string `xml:"ResponseCode"`
	AuthorizationID string `xml:"AuthorizationId"`
	TransactionID   string `xml:"TransactionId"`
	MerchantID      string `xml:"MerchantId"`
	ExecutionTime   string `xml:"ExecutionTime"`
}

// QueryResponse is the payment information returned by the Query endpoint.
type QueryResponse struct {
	MerchantID       string           `xml:"MerchantId"`
	TransactionID    string           `xml:"TransactionId"`
	QueryFinished    string           `xml:"QueryFinished"`
	OrderInformation OrderInformation `xml:"OrderInformation"`
	Summary          Summary          `xml:"Summary"`
}

type OrderInformation struct {
	Amount           string `xml:"Amount"`
	Currency         string `xml:"Currency"`
	OrderNumber      string `xml:"OrderNumber"`
	OrderDescription string `xml:"OrderDescription"`
}

// Summary carries the transaction state totals. Amounts are minor-unit
// integers serialized as strings; booleans are serialized as "true"/"false"
// with unreliable casing.
type Summary struct {
	AmountCaptured  string `xml:"AmountCaptured"`
	AmountCredited  string `xml:"AmountCredited"`
	Annulled        string `xml:"Annulled"`
	Authorized      string `xml:"Authorized"`
	AuthorizationID string `xml:"AuthorizationId"`
}

// Authorized reads the Summary/Authorized flag case-insensitively.
func (q *QueryResponse) Authorized() bool {
	if q == nil {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(q.Summary.Authorized), "true")
}

// CapturedAmount reads Summary/AmountCaptured as a minor-unit integer.
// An absent or empty field counts as zero.
func (q *QueryResponse) CapturedAmount() (int64, error) {
	if q == nil {
		return 0, nil
	}
	s := strings.TrimSpace(q.Summary.AmountCaptured)
	if s == "" {
		return 0, nil
	}
	return strconv.ParseInt(s, 10, 64)
}

// isFault reports whether the payload's root element is the fault
// envelope. Netaxept answers faults with HTTP 200, so the body is the only
// way to tell.
func isFault(raw []byte) bool {
	dec := xml.NewDecoder(bytes.NewReader(raw))
	for {
		tok, err := dec.Token()
		if err != nil {
			return false
		}
		if start, ok := tok.(xml.StartElement); ok {
			return start.Name.Local == "Exception"
		}
	}
}
