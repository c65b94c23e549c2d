package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tbeaudouin05/stripe-mirror/api/app"
	"github.com/tbeaudouin05/stripe-mirror/api/gateway"
	"github.com/tbeaudouin05/stripe-mirror/api/gateway/sim"
	"github.com/tbeaudouin05/stripe-mirror/api/store"
)

func newTestServer(t *testing.T) (*httptest.Server, app.Service, *sim.Backend) {
	t.Helper()
	backend := sim.New(sim.WithSeed(3))
	svc := app.NewService(backend, store.New())
	srv := httptest.NewServer(New(svc))
	t.Cleanup(srv.Close)
	return srv, svc, backend
}

func getJSON(t *testing.T, url string, out any) int {
	t.Helper()
	res, err := http.Get(url)
	require.NoError(t, err)
	defer res.Body.Close()
	if out != nil {
		require.NoError(t, json.NewDecoder(res.Body).Decode(out))
	}
	return res.StatusCode
}

func Test_Healthz(t *testing.T) {
	srv, _, _ := newTestServer(t)

	var body map[string]any
	code := getJSON(t, srv.URL+"/healthz", &body)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, true, body["connected"])
}

func Test_SyncThenStats(t *testing.T) {
	srv, _, backend := newTestServer(t)
	_, err := backend.CreateCustomer(gateway.CreateCustomerParams{Email: "a@x.co"})
	require.NoError(t, err)

	res, err := http.Post(srv.URL+"/v1/sync", "application/json", nil)
	require.NoError(t, err)
	res.Body.Close()
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var stats struct {
		Counts   map[string]int `json:"counts"`
		LastSync int64          `json:"last_sync"`
	}
	code := getJSON(t, srv.URL+"/v1/stats", &stats)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, 1, stats.Counts["customer"])
	assert.NotZero(t, stats.LastSync)
}

func Test_FetchResource(t *testing.T) {
	srv, svc, _ := newTestServer(t)
	created, err := svc.CreateCustomer(gateway.CreateCustomerParams{Email: "b@x.co"})
	require.NoError(t, err)

	var body map[string]any
	code := getJSON(t, srv.URL+"/v1/resources/customer/"+created.ID, &body)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, created.ID, body["id"])

	code = getJSON(t, srv.URL+"/v1/resources/customer/cus_missing", nil)
	assert.Equal(t, http.StatusNotFound, code)

	code = getJSON(t, srv.URL+"/v1/resources/charge/ch_1", nil)
	assert.Equal(t, http.StatusBadRequest, code)
}

func Test_ClearEmptiesState(t *testing.T) {
	srv, svc, _ := newTestServer(t)
	_, err := svc.CreateCustomer(gateway.CreateCustomerParams{})
	require.NoError(t, err)
	require.Equal(t, 1, svc.Store().Customers.Len())

	res, err := http.Post(srv.URL+"/v1/clear", "application/json", nil)
	require.NoError(t, err)
	res.Body.Close()
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, 0, svc.Store().Customers.Len())
}

func Test_SearchEndpoint(t *testing.T) {
	srv, _, backend := newTestServer(t)
	_, err := backend.CreateCustomer(gateway.CreateCustomerParams{Email: "c@x.co"})
	require.NoError(t, err)

	var body struct {
		Data []map[string]any `json:"data"`
	}
	code := getJSON(t, srv.URL+"/v1/search?kind=customer&query=email", &body)
	assert.Equal(t, http.StatusOK, code)
	assert.Len(t, body.Data, 1)

	code = getJSON(t, srv.URL+"/v1/search?kind=refund&query=x", nil)
	assert.Equal(t, http.StatusBadRequest, code)
}

func Test_StateSnapshot(t *testing.T) {
	srv, svc, _ := newTestServer(t)
	_, err := svc.CreateCoupon(gateway.CreateCouponParams{ID: "TEN", PercentOff: 10})
	require.NoError(t, err)

	var snap struct {
		Coupons    map[string]map[string]any `json:"coupons"`
		APIVersion string                    `json:"api_version"`
	}
	code := getJSON(t, srv.URL+"/v1/state", &snap)
	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, snap.Coupons, "TEN")
	assert.Equal(t, store.DefaultAPIVersion, snap.APIVersion)
}

func Test_MetricsExposed(t *testing.T) {
	srv, _, _ := newTestServer(t)
	res, err := http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer res.Body.Close()
	assert.Equal(t, http.StatusOK, res.StatusCode)
}
