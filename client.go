package go_netaxept

import (
	"errors"
	"fmt"
	"net/url"
	"path"

	"github.com/stremovskyy/go-netaxept/internal/httpclient"
	"github.com/stremovskyy/go-netaxept/log"
	"github.com/stremovskyy/recorder"
)

// Client is the main Netaxept SDK client.
//
// It talks the Register/Process/Query wire protocol: form-encoded
// requests, XML responses, gateway faults classified into the typed error
// taxonomy in errors.go.
type Client struct {
	cfg  config
	http *httpclient.Client
}

func NewClient(opts ...Option) (Netaxept, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	c := &Client{cfg: cfg}
	c.http = httpclient.New(cfg.httpClient, cfg.logger, cfg.retryAttempts, cfg.retryWait, cfg.recorder, cfg.logBodies)
	return c, nil
}

// NewDefaultClient is a convenience wrapper around NewClient() with default configuration.
func NewDefaultClient() (Netaxept, error) {
	return NewClient()
}

// NewClientWithRecorder attaches a recorder to the client.
func NewClientWithRecorder(rec recorder.Recorder, opts ...Option) (Netaxept, error) {
	opts = append([]Option{WithRecorder(rec)}, opts...)
	return NewClient(opts...)
}

// NewTransaction starts a transaction for the given merchant and request.
// The request may still be filled in before Register is called.
func (c *Client) NewTransaction(merchant *Merchant, request *Request) (*Transaction, error) {
	if c == nil {
		return nil, errors.New("client is nil")
	}
	if merchant == nil {
		ve := &ValidationError{}
		ve.Add("merchant", "is nil")
		return nil, ve
	}
	return &Transaction{c: c, merchant: merchant, request: request}, nil
}

// ResumeTransaction continues an already registered transaction by id,
// e.g. for capture or query after the customer returns from the terminal.
func (c *Client) ResumeTransaction(merchant *Merchant, transactionID string) (*Transaction, error) {
	if c == nil {
		return nil, errors.New("client is nil")
	}
	ve := &ValidationError{}
	if merchant == nil {
		ve.Add("merchant", "is nil")
	}
	if transactionID == "" {
		ve.Add("transactionId", "is required")
	}
	if ve.HasErrors() {
		return nil, ve
	}
	return &Transaction{c: c, merchant: merchant, transactionID: transactionID}, nil
}

// SetLogLevel updates SDK log level when current logger supports it.
func (c *Client) SetLogLevel(level log.Level) {
	if c == nil || c.cfg.logger == nil {
		return
	}
	if l, ok := c.cfg.logger.(interface{ SetLevel(log.Level) }); ok {
		l.SetLevel(level)
	}
}

func joinURL(base string, p string) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("invalid base url %q: %w", base, err)
	}
	u.Path = path.Join(u.Path, p)
	return u.String(), nil
}

func wrapAPIError(err error) error {
	if err == nil {
		return nil
	}
	var hs *httpclient.HTTPStatusError
	if errors.As(err, &hs) {
		return &APIError{StatusCode: hs.StatusCode, Body: hs.Body}
	}
	return err
}
