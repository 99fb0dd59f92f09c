package go_netaxept

import (
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/stremovskyy/go-netaxept/consts"
)

// Transaction drives one payment through the gateway: Register assigns
// the transaction id, the customer pays in the hosted terminal, then
// Authorize/Capture/Query operate on that id.
//
// A Transaction is not safe for concurrent use; the model is one blocking
// call in, one response out. Its Merchant and Request are read, never
// mutated.
type Transaction struct {
	c        *Client
	merchant *Merchant
	request  *Request

	transactionID string
	mobile        bool
}

func (t *Transaction) Merchant() *Merchant { return t.merchant }
func (t *Transaction) Request() *Request   { return t.request }

// TransactionID returns the gateway-assigned id, empty before Register.
func (t *Transaction) TransactionID() string { return t.transactionID }

// SetMobile switches TerminalURL to the mobile terminal UI.
func (t *Transaction) SetMobile(mobile bool) *Transaction {
	t.mobile = mobile
	return t
}

func (t *Transaction) Mobile() bool { return t.mobile }

// Register sends the request to the Register endpoint and stores the
// transaction id from the response. The id is the input to every later
// operation and does not change afterwards.
func (t *Transaction) Register(ctx context.Context, runOpts ...RunOption) (string, error) {
	if t == nil || t.c == nil {
		return "", errors.New("transaction is not initialized")
	}
	if t.request == nil {
		ve := &ValidationError{}
		ve.Add("request", "is nil")
		return "", ve
	}

	var out RegisterResponse
	done, err := t.perform(ctx, http.MethodPost, consts.RegisterPath, t.request.Values(), &out, runOpts)
	if err != nil {
		return "", err
	}
	if !done {
		return "", nil
	}
	t.transactionID = out.TransactionID
	return t.transactionID, nil
}

// Authorize runs the AUTH operation.
func (t *Transaction) Authorize(ctx context.Context, runOpts ...RunOption) (*ProcessResponse, error) {
	return t.Process(ctx, consts.OperationAuth, runOpts...)
}

// Capture runs the CAPTURE operation, moving authorized funds to the
// merchant.
func (t *Transaction) Capture(ctx context.Context, runOpts ...RunOption) (*ProcessResponse, error) {
	return t.Process(ctx, consts.OperationCapture, runOpts...)
}

// Sale runs the SALE operation (authorize and capture in one step).
func (t *Transaction) Sale(ctx context.Context, runOpts ...RunOption) (*ProcessResponse, error) {
	return t.Process(ctx, consts.OperationSale, runOpts...)
}

// Credit refunds a captured amount back to the customer.
func (t *Transaction) Credit(ctx context.Context, runOpts ...RunOption) (*ProcessResponse, error) {
	return t.Process(ctx, consts.OperationCredit, runOpts...)
}

// Annul releases an authorization that will not be captured.
func (t *Transaction) Annul(ctx context.Context, runOpts ...RunOption) (*ProcessResponse, error) {
	return t.Process(ctx, consts.OperationAnnul, runOpts...)
}

// Process runs an arbitrary operation against the Process endpoint.
func (t *Transaction) Process(ctx context.Context, operation consts.Operation, runOpts ...RunOption) (*ProcessResponse, error) {
	if t == nil || t.c == nil {
		return nil, errors.New("transaction is not initialized")
	}
	if err := t.requireTransactionID(); err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("transactionId", t.transactionID)
	params.Set("operation", string(operation))

	var out ProcessResponse
	done, err := t.perform(ctx, http.MethodPost, consts.ProcessPath, params, &out, runOpts)
	if err != nil {
		return nil, err
	}
	if !done {
		return nil, nil
	}
	return &out, nil
}

// Query fetches the current payment information for the transaction.
//
// Faults are classified here like everywhere else: a fault payload never
// comes back disguised as a summary.
func (t *Transaction) Query(ctx context.Context, runOpts ...RunOption) (*QueryResponse, error) {
	if t == nil || t.c == nil {
		return nil, errors.New("transaction is not initialized")
	}
	if err := t.requireTransactionID(); err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("transactionId", t.transactionID)

	var out QueryResponse
	done, err := t.perform(ctx, http.MethodGet, consts.QueryPath, params, &out, runOpts)
	if err != nil {
		return nil, err
	}
	if !done {
		return nil, nil
	}
	return &out, nil
}

// IsAuthorized reports whether the transaction is authorized. Pass an
// existing query result to avoid a fresh Query call.
func (t *Transaction) IsAuthorized(ctx context.Context, query *QueryResponse) (bool, error) {
	if query == nil {
		var err error
		query, err = t.Query(ctx)
		if err != nil {
			return false, err
		}
	}
	return query.Authorized(), nil
}

// CapturedAmount returns the captured minor-unit amount. Pass an existing
// query result to avoid a fresh Query call.
func (t *Transaction) CapturedAmount(ctx context.Context, query *QueryResponse) (int64, error) {
	if query == nil {
		var err error
		query, err = t.Query(ctx)
		if err != nil {
			return 0, err
		}
	}
	return query.CapturedAmount()
}

// TerminalURL builds the hosted terminal URL the customer is sent to
// after Register. No I/O.
func (t *Transaction) TerminalURL() string {
	if t == nil || t.c == nil {
		return ""
	}
	terminalPath := consts.TerminalPath
	if t.mobile {
		terminalPath = consts.TerminalMobilePath
	}
	q := url.Values{}
	if t.merchant != nil {
		q.Set("merchantId", t.merchant.ID)
	}
	q.Set("transactionId", t.transactionID)
	return fmt.Sprintf("%s%s?%s", t.c.cfg.resolvedTerminalBaseURL(), terminalPath, q.Encode())
}

func (t *Transaction) requireTransactionID() error {
	if t.transactionID != "" {
		return nil
	}
	ve := &ValidationError{}
	ve.Add("transactionId", "is required; call Register first")
	return ve
}

// perform issues one call: merchant auth fields merged with the operation
// params, fault payloads handed to the resolver, success payloads decoded
// into out. Returns done=false when the call was skipped by DryRun.
func (t *Transaction) perform(ctx context.Context, method string, endpointPath string, params url.Values, out any, runOpts []RunOption) (bool, error) {
	full, err := joinURL(t.c.cfg.resolvedBaseURL(), endpointPath)
	if err != nil {
		return false, err
	}

	form := t.merchant.Values()
	for key, values := range params {
		for _, value := range values {
			form.Set(key, value)
		}
	}

	if shouldDryRun(runOpts, method, full, form) {
		return false, nil
	}

	_, raw, err := t.c.http.DoForm(ctx, method, full, form)
	if err != nil {
		return false, wrapAPIError(err)
	}

	if isFault(raw) {
		return false, ResolveFault(raw)
	}

	if out != nil {
		if err := xml.Unmarshal(raw, out); err != nil {
			return false, fmt.Errorf("decode xml response: %w", err)
		}
	}
	return true, nil
}
