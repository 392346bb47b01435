package tccapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL + "/")
}

func TestBearerHeaderOnlyWhenTokenPresent(t *testing.T) {
	var seen []string
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		seen = append(seen, r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`[]`))
	})

	_, err := client.ListBranches(context.Background())
	require.NoError(t, err)
	_, err = client.As("tok-1").ListBranches(context.Background())
	require.NoError(t, err)

	require.Len(t, seen, 2)
	assert.Equal(t, "", seen[0])
	assert.Equal(t, "Bearer tok-1", seen[1])
	assert.Equal(t, "", client.Token(), "As must not mutate the shared client")
}

func TestLoginKeepsRawPayload(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/users/login", r.URL.Path)
		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"username":"alice","password":"pw"}`, string(body))
		_, _ = w.Write([]byte(`{"access_token":"abc","extra":{"n":1}}`))
	})

	result, err := client.Login(context.Background(), "alice", "pw")
	require.NoError(t, err)
	assert.Equal(t, "abc", result.AccessToken)
	assert.JSONEq(t, `{"access_token":"abc","extra":{"n":1}}`, string(result.Raw))
}

func TestNon2xxBecomesAPIError(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"Invalid username or password"}`))
	})

	_, err := client.Login(context.Background(), "alice", "bad")
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.Equal(t, "Invalid username or password", apiErr.Message)
	assert.Contains(t, string(apiErr.Body), "Invalid username")
}

func TestAPIErrorWithoutJSONBody(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	_, err := client.ListTrucks(context.Background())
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "", apiErr.Message)
	assert.Equal(t, "tcc api 500", apiErr.Error())
}

func TestDecodeNormalizesEnumsAndAmounts(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/trucks/t1":
			_, _ = w.Write([]byte(`{"id":"t1","truck_number":"TR-1","capacity_cubic_meters":500,"status":"in_transit","current_branch_id":null}`))
		case "/invoices":
			_, _ = w.Write([]byte(`[{"id":"i1","consignment_id":"c1","amount":100},{"id":"i2","consignment_id":"c2","amount":"50.5"}]`))
		case "/users/me":
			_, _ = w.Write([]byte(`{"id":"u1","username":"alice","role":"manager","branch_id":"b1"}`))
		default:
			http.NotFound(w, r)
		}
	})
	ctx := context.Background()

	truck, err := client.GetTruck(ctx, "t1")
	require.NoError(t, err)
	assert.Equal(t, TruckInTransit, truck.Status)
	assert.Nil(t, truck.CurrentBranchID)

	invoices, err := client.ListInvoices(ctx)
	require.NoError(t, err)
	require.Len(t, invoices, 2)
	assert.True(t, invoices[1].Amount.Equal(decimal.RequireFromString("50.5")))

	me, err := client.GetCurrentUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, RoleManager, me.Role)
	require.NotNil(t, me.BranchID)
	assert.Equal(t, "b1", *me.BranchID)
}

func TestQueryParameters(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/trucks/usage":
			assert.Equal(t, "7", r.URL.Query().Get("days"))
			_, _ = w.Write([]byte(`[{"truck_id":"t1","truck_number":"TR-1","dispatch_count":3}]`))
		case "/consignments/stats":
			assert.Equal(t, "Main St 1", r.URL.Query().Get("destination"))
			_, _ = w.Write([]byte(`{"destination":"Main St 1","total_consignments":2,"total_volume":30.5,"total_revenue":120}`))
		default:
			http.NotFound(w, r)
		}
	})
	ctx := context.Background()

	usage, err := client.GetTruckUsage(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, []TruckUsage{{TruckID: "t1", TruckNumber: "TR-1", DispatchCount: 3}}, usage)

	stats, err := client.GetConsignmentStats(ctx, "Main St 1")
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalConsignments)
	assert.Equal(t, "120", stats.TotalRevenue.String())
}

func TestPartialUpdateBodies(t *testing.T) {
	var bodies []map[string]any
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		bodies = append(bodies, body)
		_, _ = w.Write([]byte(`{}`))
	})
	ctx := context.Background()

	_, err := client.UpdateTruck(ctx, "t1", TruckUpdate{Status: TruckIdle})
	require.NoError(t, err)
	_, err = client.UpdateConsignment(ctx, "c1", ConsignmentUpdate{Status: ConsignmentDelivered})
	require.NoError(t, err)

	role := RoleStaff
	_, err = client.UpdateUser(ctx, "u1", UserUpdate{Role: &role})
	require.NoError(t, err)
	_, err = client.UpdateUser(ctx, "u1", UserUpdate{ClearBranch: true})
	require.NoError(t, err)

	require.Len(t, bodies, 4)
	assert.Equal(t, map[string]any{"status": "IDLE"}, bodies[0])
	assert.Equal(t, map[string]any{"status": "DELIVERED"}, bodies[1])
	assert.Equal(t, map[string]any{"role": "STAFF"}, bodies[2])
	assert.Equal(t, map[string]any{"branch_id": nil}, bodies[3])
}

func TestDeleteUserAcceptsEmptyBody(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/users/u%201", r.URL.EscapedPath())
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, client.As("tok").DeleteUser(context.Background(), "u 1"))
}

func TestTransportErrorIsReturned(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	client := New(srv.URL, WithTimeout(time.Second))
	srv.Close()

	_, err := client.ListDispatches(context.Background())
	require.Error(t, err)
	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr))
}

func TestCanceledContextStopsRequest(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.ListUsers(ctx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}
