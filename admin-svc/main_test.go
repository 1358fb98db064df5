package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"pastelaria/config"
	"pastelaria/domain"
	"pastelaria/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func do(t *testing.T, router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func TestLocalModeBackOffice(t *testing.T) {
	ctx := context.Background()
	cfg := config.Config{
		StorageMode:       config.StorageModeLocal,
		LocalDataFile:     filepath.Join(t.TempDir(), "pastelaria.json"),
		Timezone:          "America/Sao_Paulo",
		PollInterval:      time.Minute,
		AlertDedupeWindow: 10 * time.Second,
	}

	store, err := storage.NewAdapter(cfg, nil)
	require.NoError(t, err)
	require.NoError(t, prepareStorage(ctx, cfg, nil, store))

	feed := storage.NewMemoryAlertFeed(cfg.AlertDedupeWindow)
	app := buildBackOffice(cfg, store, nil, feed, nil, storage.LogNotifier{})

	rr := do(t, app.router, http.MethodGet, "/api/admin/settings", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"site_title":"Pastelaria Itoman"`)

	rr = do(t, app.router, http.MethodPut, "/api/admin/settings/delivery_fee", `{"value":"7,50"}`)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = do(t, app.router, http.MethodPost, "/api/admin/menu", `{"name":"Pastel de Palmito","price":"13,90","category":"pasteis"}`)
	require.Equal(t, http.StatusCreated, rr.Code)
	assert.Contains(t, rr.Body.String(), `"price":13.9`)

	_, err = app.watcher.Poll(ctx)
	require.NoError(t, err)

	order, err := store.CreateOrder(ctx, domain.Order{
		CustomerName:  "Ana",
		CustomerPhone: "5519988887777",
		Items:         []domain.OrderItem{{Name: "Pastel de Palmito", Price: 13.9, Quantity: 1}},
		TotalAmount:   13.9,
		Status:        domain.StatusPending,
	})
	require.NoError(t, err)
	require.Equal(t, int64(1), order.ID)

	alerted, err := app.watcher.Poll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, alerted)

	rr = do(t, app.router, http.MethodGet, "/api/admin/alerts", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Novo pedido")

	rr = do(t, app.router, http.MethodPatch, "/api/admin/orders/1/status", `{"status":"delivering"}`)
	assert.Equal(t, http.StatusPreconditionRequired, rr.Code)

	rr = do(t, app.router, http.MethodPatch, "/api/admin/orders/1/status", `{"status":"confirmed"}`)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"kind":"confirmation"`)

	rr = do(t, app.router, http.MethodPatch, "/api/admin/orders/1/status", `{"status":"delivered"}`)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"total_revenue":13.9`)

	rr = do(t, app.router, http.MethodPatch, "/api/admin/orders/1/status", `{"status":"cancelled"}`)
	assert.Equal(t, http.StatusConflict, rr.Code)
}
