package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"pastelaria/config"
	"pastelaria/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func localConfig(t *testing.T) config.Config {
	t.Helper()
	return config.Config{
		StorageMode:   config.StorageModeLocal,
		LocalDataFile: filepath.Join(t.TempDir(), "pastelaria.json"),
		CheckoutMode:  config.CheckoutModeFull,
	}
}

func do(t *testing.T, router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("X-Session-ID", "session-1")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func TestLocalModeCheckoutFlow(t *testing.T) {
	cfg := localConfig(t)

	store, err := storage.NewAdapter(cfg, nil)
	require.NoError(t, err)
	sessions, closeSessions, err := newSessionStore(cfg, store)
	require.NoError(t, err)
	defer closeSessions()

	router := buildRouter(cfg, store, sessions, nil)

	rr := do(t, router, http.MethodGet, "/api/menu?category=bebidas", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Suco Natural 500ml")

	rr = do(t, router, http.MethodPost, "/api/cart/items", `{"name":"X","price":10,"quantity":2}`)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = do(t, router, http.MethodPost, "/api/checkout",
		`{"name":"Ana","neighborhood":"Centro","address":"Rua A, 10","phone":"5519988887777","payment_method":"Pix"}`)
	require.Equal(t, http.StatusCreated, rr.Code)

	var result struct {
		Order struct {
			ID          int64   `json:"id"`
			TotalAmount float64 `json:"total_amount"`
			Status      string  `json:"status"`
		} `json:"order"`
		OrderSaved bool `json:"order_saved"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result))
	assert.True(t, result.OrderSaved)
	assert.Equal(t, 25.0, result.Order.TotalAmount)
	assert.Equal(t, "pending", result.Order.Status)

	rr = do(t, router, http.MethodGet, "/api/cart", "")
	assert.JSONEq(t, `{"items":[],"total":0,"count":0}`, rr.Body.String())

	rr = do(t, router, http.MethodGet, "/api/checkout/customer", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"name":"Ana"`)

	rr = do(t, router, http.MethodGet, "/api/orders/1/qrcode", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "image/png", rr.Header().Get("Content-Type"))
}

func TestLocalModeSessionsShareRepositoryFile(t *testing.T) {
	cfg := localConfig(t)

	store, err := storage.NewAdapter(cfg, nil)
	require.NoError(t, err)
	sessions, closeSessions, err := newSessionStore(cfg, store)
	require.NoError(t, err)
	defer closeSessions()

	local, ok := sessions.(*storage.LocalSessionStore)
	require.True(t, ok)
	assert.Same(t, store.(*storage.LocalRepository).KV, local.KV)
}

func TestNewSessionStore_LocalModeRejectsOtherAdapters(t *testing.T) {
	cfg := localConfig(t)

	_, _, err := newSessionStore(cfg, storage.NewPostgresRepository(nil))

	assert.Error(t, err)
}
