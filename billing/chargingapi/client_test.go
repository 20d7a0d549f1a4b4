package chargingapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, wantMethod, wantPath string, status int, body string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, wantMethod, r.Method)
		assert.Equal(t, wantPath, r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))

		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
}

func TestRequestReissue(t *testing.T) {
	server := newTestServer(t,
		http.MethodPatch, "/v3/wrls/bill-runs/run-1/invoices/inv-1/rebill",
		http.StatusOK,
		`{"invoices":[{"id":"new-inv-c","rebilledType":"C"},{"id":"new-inv-r","rebilledType":"R"}]}`,
	)
	defer server.Close()

	client := NewClient(server.URL, "test-token")
	invoices, err := client.RequestReissue(context.Background(), "run-1", "inv-1")

	require.NoError(t, err)
	require.Len(t, invoices, 2)
	assert.Equal(t, "new-inv-c", invoices[0].ID)
	assert.Equal(t, RebilledTypeCancelling, invoices[0].RebilledType)
	assert.Equal(t, "new-inv-r", invoices[1].ID)
	assert.Equal(t, RebilledTypeReissuing, invoices[1].RebilledType)
}

func TestRequestReissue_ConflictCarriesResponse(t *testing.T) {
	server := newTestServer(t,
		http.MethodPatch, "/v3/wrls/bill-runs/run-1/invoices/inv-1/rebill",
		http.StatusConflict,
		`{"message":"invoice is already being rebilled"}`,
	)
	defer server.Close()

	client := NewClient(server.URL, "test-token")
	invoices, err := client.RequestReissue(context.Background(), "run-1", "inv-1")

	require.Error(t, err)
	assert.Nil(t, invoices)

	var apiErr *Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "request reissue", apiErr.Op)
	assert.Equal(t, "run-1", apiErr.BillRunExternalID)
	assert.Equal(t, "inv-1", apiErr.BillExternalID)
	assert.Equal(t, http.StatusConflict, apiErr.StatusCode)
	assert.Contains(t, string(apiErr.ResponseBody), "already being rebilled")
}

func TestViewInvoice(t *testing.T) {
	server := newTestServer(t,
		http.MethodGet, "/v3/wrls/bill-runs/run-1/invoices/inv-2",
		http.StatusOK,
		`{"invoice":{
			"id":"inv-2",
			"billRunId":"run-1",
			"rebilledInvoiceId":"inv-1",
			"rebilledType":"C",
			"netTotal":-500,
			"debitLineValue":0,
			"creditLineValue":500,
			"licences":[{
				"id":"lic-1",
				"licenceNumber":"01/123",
				"transactions":[{
					"id":"trx-1",
					"chargeValue":500,
					"credit":true,
					"rebilledTransactionId":"src-trx-1"
				}]
			}]
		}}`,
	)
	defer server.Close()

	client := NewClient(server.URL, "test-token")
	invoice, err := client.ViewInvoice(context.Background(), "run-1", "inv-2")

	require.NoError(t, err)
	assert.Equal(t, "inv-2", invoice.ID)
	assert.Equal(t, RebilledTypeCancelling, invoice.RebilledType)
	assert.Equal(t, int64(-500), invoice.NetTotal)
	assert.Equal(t, int64(500), invoice.CreditLineValue)
	require.Len(t, invoice.Licences, 1)
	assert.Equal(t, "01/123", invoice.Licences[0].LicenceNumber)
	require.Len(t, invoice.Licences[0].Transactions, 1)
	assert.Equal(t, "src-trx-1", invoice.Licences[0].Transactions[0].RebilledTransactionID)
	assert.True(t, invoice.Licences[0].Transactions[0].Credit)
}

func TestViewInvoice_NotFound(t *testing.T) {
	server := newTestServer(t,
		http.MethodGet, "/v3/wrls/bill-runs/run-1/invoices/missing",
		http.StatusNotFound,
		`{"message":"invoice not found"}`,
	)
	defer server.Close()

	client := NewClient(server.URL, "test-token")
	invoice, err := client.ViewInvoice(context.Background(), "run-1", "missing")

	require.Error(t, err)
	assert.Nil(t, invoice)

	var apiErr *Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "view invoice", apiErr.Op)
	assert.Equal(t, "missing", apiErr.InvoiceExternalID)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
}

func TestViewBillRunStatus(t *testing.T) {
	server := newTestServer(t,
		http.MethodGet, "/v3/wrls/bill-runs/run-1/status",
		http.StatusOK,
		`{"status":"pending"}`,
	)
	defer server.Close()

	client := NewClient(server.URL, "test-token")
	status, err := client.ViewBillRunStatus(context.Background(), "run-1")

	require.NoError(t, err)
	assert.Equal(t, StatusPending, status)
}

func TestClient_MalformedResponse(t *testing.T) {
	server := newTestServer(t,
		http.MethodGet, "/v3/wrls/bill-runs/run-1/status",
		http.StatusOK,
		`not json`,
	)
	defer server.Close()

	client := NewClient(server.URL, "test-token")
	_, err := client.ViewBillRunStatus(context.Background(), "run-1")

	require.Error(t, err)
	var apiErr *Error
	require.True(t, errors.As(err, &apiErr))
	assert.Contains(t, apiErr.Error(), "decode response")
	assert.Equal(t, "not json", string(apiErr.ResponseBody))
}

func TestClient_ServerUnreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewClient(server.URL, "test-token")
	_, err := client.ViewBillRunStatus(context.Background(), "run-1")

	require.Error(t, err)
	var apiErr *Error
	assert.True(t, errors.As(err, &apiErr))
}
