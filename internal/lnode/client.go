package lnode

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/pokerleague/lnpayments/internal/apperrors"
	"github.com/pokerleague/lnpayments/internal/logger"
	"go.uber.org/zap"
)

// The node operator speaks a small JSON REST API:
//
//	POST /v1/invoices                    create an invoice
//	GET  /v1/invoices/{paymentHash}      invoice settlement status
//	POST /v1/payments                    pay a bolt11 invoice
//	GET  /v1/payments/status?invoice=    outbound payment status
//	GET  /v1/status                      node liveness and balance
type InvoiceStatus string

const (
	InvoiceSettled InvoiceStatus = "SETTLED"
	InvoicePending InvoiceStatus = "PENDING"
	InvoiceExpired InvoiceStatus = "EXPIRED"
)

type PaymentStatus string

const (
	PaymentSucceeded PaymentStatus = "SUCCEEDED"
	PaymentInFlight  PaymentStatus = "IN_FLIGHT"
	PaymentFailed    PaymentStatus = "FAILED"
	PaymentNotFound  PaymentStatus = "NOT_FOUND"
)

type ClientInterface interface {
	CreateInvoice(ctx context.Context, amountSats int64, memo string) (*Invoice, error)
	PayInvoice(ctx context.Context, bolt11 string) (*PaymentResult, error)
	CheckInvoice(ctx context.Context, paymentHash string) (InvoiceStatus, error)
	CheckPayment(ctx context.Context, bolt11 string) (PaymentStatus, error)
	GetNodeStatus(ctx context.Context) (*NodeStatus, error)
}

type Invoice struct {
	PaymentHash    string    `json:"paymentHash"`
	PaymentRequest string    `json:"paymentRequest"`
	AmountSats     int64     `json:"amountSats"`
	ExpiresAt      time.Time `json:"expiresAt"`
}

type PaymentResult struct {
	Preimage string `json:"preimage"`
	FeeSats  int64  `json:"feeSats"`
}

type NodeStatus struct {
	Alive        bool   `json:"alive"`
	Alias        string `json:"alias"`
	SpendableSat int64  `json:"spendableSats"`
}

type errorBody struct {
	Error string `json:"error"`
}

type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	payClient  *http.Client
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		// Pay calls are bounded by the caller's context: a client-level
		// timeout here would race the reconciliation deadline.
		payClient: &http.Client{},
	}
}

// do returns the HTTP status plus any message from the node's error body.
// Transport and decode problems come back as the error; non-200 statuses do
// not, so each caller can map them to its own outcome.
func (c *Client) do(client *http.Client, req *http.Request, out interface{}) (int, string, error) {
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("X-Api-Key", c.apiKey)
	}

	resp, err := client.Do(req)
	if err != nil {
		return 0, "", err
	}
	defer func(body io.ReadCloser) {
		if err := body.Close(); err != nil {
			logger.Log.Error("failed to close node response body", zap.Error(err))
		}
	}(resp.Body)

	if resp.StatusCode == http.StatusOK && out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return resp.StatusCode, "", err
		}
		return resp.StatusCode, "", nil
	}

	var eb errorBody
	_ = json.NewDecoder(resp.Body).Decode(&eb)
	return resp.StatusCode, eb.Error, nil
}

func (c *Client) CreateInvoice(ctx context.Context, amountSats int64, memo string) (*Invoice, error) {
	payload, err := json.Marshal(map[string]interface{}{
		"amountSats": amountSats,
		"memo":       memo,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/invoices", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}

	var invoice Invoice
	status, msg, err := c.do(c.httpClient, req, &invoice)
	if err != nil {
		logger.Log.Warn("create invoice failed", zap.Int("status", status), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", apperrors.ErrNodeUnavailable, err)
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d %s", apperrors.ErrNodeUnavailable, status, msg)
	}

	return &invoice, nil
}

// PayInvoice distinguishes three outcomes: an explicit rejection by the node
// (ErrPaymentFailed, safe to refund), a transport timeout after the request
// may have been submitted (ErrAmbiguousPaymentOutcome, must be reconciled via
// CheckPayment before any refund), and a node that could not be reached at
// all (ErrNodeUnavailable).
func (c *Client) PayInvoice(ctx context.Context, bolt11 string) (*PaymentResult, error) {
	payload, err := json.Marshal(map[string]string{"invoice": bolt11})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/payments", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}

	var result PaymentResult
	status, msg, err := c.do(c.payClient, req, &result)
	if err != nil {
		if isTimeout(err) {
			logger.Log.Warn("pay invoice timed out, outcome unknown", zap.Error(err))
			return nil, apperrors.ErrAmbiguousPaymentOutcome
		}
		return nil, fmt.Errorf("%w: %v", apperrors.ErrNodeUnavailable, err)
	}

	switch status {
	case http.StatusOK:
		return &result, nil
	case http.StatusBadRequest, http.StatusPaymentRequired, http.StatusUnprocessableEntity:
		// The node looked at the invoice and said no.
		return nil, fmt.Errorf("%w: %s", apperrors.ErrPaymentFailed, msg)
	default:
		// The node accepted the request but errored out; the payment
		// may still be in flight.
		return nil, apperrors.ErrAmbiguousPaymentOutcome
	}
}

func (c *Client) CheckInvoice(ctx context.Context, paymentHash string) (InvoiceStatus, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/v1/invoices/"+paymentHash, nil)
	if err != nil {
		return "", err
	}

	var body struct {
		Status InvoiceStatus `json:"status"`
	}
	status, msg, err := c.do(c.httpClient, req, &body)
	if err != nil {
		return "", fmt.Errorf("%w: %v", apperrors.ErrNodeUnavailable, err)
	}
	if status != http.StatusOK {
		return "", fmt.Errorf("%w: status %d %s", apperrors.ErrNodeUnavailable, status, msg)
	}

	return body.Status, nil
}

func (c *Client) CheckPayment(ctx context.Context, bolt11 string) (PaymentStatus, error) {
	u := c.baseURL + "/v1/payments/status?invoice=" + url.QueryEscape(bolt11)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return "", err
	}

	var body struct {
		Status PaymentStatus `json:"status"`
	}
	status, msg, err := c.do(c.httpClient, req, &body)
	if err != nil {
		return "", fmt.Errorf("%w: %v", apperrors.ErrNodeUnavailable, err)
	}
	if status == http.StatusNotFound {
		return PaymentNotFound, nil
	}
	if status != http.StatusOK {
		return "", fmt.Errorf("%w: status %d %s", apperrors.ErrNodeUnavailable, status, msg)
	}

	return body.Status, nil
}

func (c *Client) GetNodeStatus(ctx context.Context) (*NodeStatus, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/v1/status", nil)
	if err != nil {
		return nil, err
	}

	var ns NodeStatus
	status, msg, err := c.do(c.httpClient, req, &ns)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrNodeUnavailable, err)
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d %s", apperrors.ErrNodeUnavailable, status, msg)
	}

	return &ns, nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var urlErr *url.Error
	return errors.As(err, &urlErr) && urlErr.Timeout()
}
