package chargingapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// API is the typed surface of the external charging service. It performs no
// retries of its own; waiting out a pending bill run is the caller's job.
// RequestReissue is a one-shot trigger and is NOT idempotent.
type API interface {
	RequestReissue(ctx context.Context, billRunExternalID, billExternalID string) ([]InvoiceHeader, error)
	ViewInvoice(ctx context.Context, billRunExternalID, invoiceExternalID string) (*Invoice, error)
	ViewBillRunStatus(ctx context.Context, billRunExternalID string) (string, error)
}

// Client talks to the charging service over HTTP.
type Client struct {
	baseURL    string
	authToken  string
	httpClient *http.Client
}

var _ API = (*Client)(nil)

func NewClient(baseURL, authToken string) *Client {
	return &Client{
		baseURL:   baseURL,
		authToken: authToken,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// RequestReissue triggers the two-invoice reissue of one bill. On success
// the charging service returns the headers of the new cancelling and
// reissuing invoices, in no guaranteed order.
func (c *Client) RequestReissue(ctx context.Context, billRunExternalID, billExternalID string) ([]InvoiceHeader, error) {
	path := fmt.Sprintf("/v3/wrls/bill-runs/%s/invoices/%s/rebill", billRunExternalID, billExternalID)

	body, err := c.do(ctx, http.MethodPatch, path)
	if err != nil {
		apiErr := err.(*Error)
		apiErr.Op = "request reissue"
		apiErr.BillRunExternalID = billRunExternalID
		apiErr.BillExternalID = billExternalID
		return nil, apiErr
	}

	var parsed reissueResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, &Error{
			Op:                "request reissue",
			BillRunExternalID: billRunExternalID,
			BillExternalID:    billExternalID,
			ResponseBody:      body,
			Err:               fmt.Errorf("decode response: %w", err),
		}
	}

	return parsed.Invoices, nil
}

// ViewInvoice fetches the full detail (licences and transactions) of one
// generated invoice.
func (c *Client) ViewInvoice(ctx context.Context, billRunExternalID, invoiceExternalID string) (*Invoice, error) {
	path := fmt.Sprintf("/v3/wrls/bill-runs/%s/invoices/%s", billRunExternalID, invoiceExternalID)

	body, err := c.do(ctx, http.MethodGet, path)
	if err != nil {
		apiErr := err.(*Error)
		apiErr.Op = "view invoice"
		apiErr.BillRunExternalID = billRunExternalID
		apiErr.InvoiceExternalID = invoiceExternalID
		return nil, apiErr
	}

	var parsed viewInvoiceResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, &Error{
			Op:                "view invoice",
			BillRunExternalID: billRunExternalID,
			InvoiceExternalID: invoiceExternalID,
			ResponseBody:      body,
			Err:               fmt.Errorf("decode response: %w", err),
		}
	}

	return &parsed.Invoice, nil
}

// ViewBillRunStatus fetches the processing status of the external bill run.
func (c *Client) ViewBillRunStatus(ctx context.Context, billRunExternalID string) (string, error) {
	path := fmt.Sprintf("/v3/wrls/bill-runs/%s/status", billRunExternalID)

	body, err := c.do(ctx, http.MethodGet, path)
	if err != nil {
		apiErr := err.(*Error)
		apiErr.Op = "view bill run status"
		apiErr.BillRunExternalID = billRunExternalID
		return "", apiErr
	}

	var parsed statusResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", &Error{
			Op:                "view bill run status",
			BillRunExternalID: billRunExternalID,
			ResponseBody:      body,
			Err:               fmt.Errorf("decode response: %w", err),
		}
	}

	return parsed.Status, nil
}

// do performs one round trip and returns the response body on any 2xx
// status. Failures come back as a partially filled *Error; the caller adds
// the operation name and external ids.
func (c *Client) do(ctx context.Context, method, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, nil)
	if err != nil {
		return nil, &Error{Err: err}
	}
	req.Header.Set("Authorization", "Bearer "+c.authToken)
	req.Header.Set("Accept", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &Error{Err: err}
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, &Error{StatusCode: res.StatusCode, Err: err}
	}

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		return nil, &Error{StatusCode: res.StatusCode, ResponseBody: body}
	}

	return body, nil
}
