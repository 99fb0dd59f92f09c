package go_netaxept

import "github.com/stremovskyy/go-netaxept/log"

// Netaxept is the main SDK interface.
type Netaxept interface {
	NewTransaction(merchant *Merchant, request *Request) (*Transaction, error)
	ResumeTransaction(merchant *Merchant, transactionID string) (*Transaction, error)

	SetLogLevel(level log.Level)
}

var _ Netaxept = (*Client)(nil)
