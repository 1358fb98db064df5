package storage

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"testing"
	"time"

	"pastelaria/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupPostgres(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewPostgresRepository(db), mock
}

var orderRowColumns = []string{
	"id", "customer_name", "customer_phone", "customer_address", "customer_neighborhood",
	"customer_reference", "customer_observations", "items", "total_amount", "delivery_fee",
	"payment_method", "status", "whatsapp_message", "created_at", "updated_at",
}

func orderRow(id int64, status string, total float64, created time.Time) []driver.Value {
	return []driver.Value{
		id, "Ana", "5519999999999", "Rua A, 10", "Centro", "", "",
		[]byte(`[{"name":"Pastel de Carne","price":8,"quantity":2}]`),
		total, 5.0, "Pix", status, "", created, created,
	}
}

func TestPostgresRepository_GetMenuItems(t *testing.T) {
	repo, mock := setupPostgres(t)
	now := time.Now()

	mock.ExpectQuery("SELECT (.+) FROM menu_items ORDER BY category, name").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "price", "category", "description", "created_at", "updated_at"}).
			AddRow(1, "Coca-Cola", 5.0, "bebidas", "Lata 350ml", now, now).
			AddRow(2, "Pastel de Carne", 8.0, "pasteis", "", now, now))

	items, err := repo.GetMenuItems(context.Background())

	assert.NoError(t, err)
	assert.Len(t, items, 2)
	assert.Equal(t, "Coca-Cola", items[0].Name)
	assert.Equal(t, 8.0, items[1].Price)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_AddMenuItem(t *testing.T) {
	repo, mock := setupPostgres(t)
	now := time.Now()

	mock.ExpectQuery("INSERT INTO menu_items").
		WithArgs("Pastel de Queijo", 7.5, "pasteis", "Mussarela").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(9, now, now))

	item, err := repo.AddMenuItem(context.Background(), domain.MenuItem{
		Name: "Pastel de Queijo", Price: 7.5, Category: "pasteis", Description: "Mussarela",
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(9), item.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_UpdateMenuItemNotFound(t *testing.T) {
	repo, mock := setupPostgres(t)

	mock.ExpectQuery("UPDATE menu_items SET").
		WillReturnError(sql.ErrNoRows)

	item, err := repo.UpdateMenuItem(context.Background(), 42, domain.MenuItem{Name: "X", Price: 1, Category: "pasteis"})

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Nil(t, item)
}

func TestPostgresRepository_DeleteMenuItem(t *testing.T) {
	repo, mock := setupPostgres(t)

	mock.ExpectExec("DELETE FROM menu_items WHERE id = \\$1").
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, repo.DeleteMenuItem(context.Background(), 3))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_GetSetting(t *testing.T) {
	tests := []struct {
		name      string
		rows      *sqlmock.Rows
		wantValue string
		wantFound bool
	}{
		{
			name:      "present",
			rows:      sqlmock.NewRows([]string{"value"}).AddRow("7.50"),
			wantValue: "7.50",
			wantFound: true,
		},
		{
			name:      "absent",
			rows:      sqlmock.NewRows([]string{"value"}),
			wantFound: false,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			repo, mock := setupPostgres(t)
			mock.ExpectQuery("SELECT value FROM settings WHERE key = \\$1").
				WithArgs(domain.SettingDeliveryFee).
				WillReturnRows(testCase.rows)

			value, found, err := repo.GetSetting(context.Background(), domain.SettingDeliveryFee)

			assert.NoError(t, err)
			assert.Equal(t, testCase.wantFound, found)
			assert.Equal(t, testCase.wantValue, value)
		})
	}
}

func TestPostgresRepository_SaveSettingUpserts(t *testing.T) {
	repo, mock := setupPostgres(t)

	mock.ExpectQuery("INSERT INTO settings (.+) ON CONFLICT \\(key\\) DO UPDATE").
		WithArgs(domain.SettingSiteTitle, "Itoman").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow("Itoman"))

	saved, err := repo.SaveSetting(context.Background(), domain.SettingSiteTitle, "Itoman")

	assert.NoError(t, err)
	assert.Equal(t, "Itoman", saved)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_GetAllSettings(t *testing.T) {
	t.Run("rows", func(t *testing.T) {
		repo, mock := setupPostgres(t)
		mock.ExpectQuery("SELECT key, value FROM settings").
			WillReturnRows(sqlmock.NewRows([]string{"key", "value"}).
				AddRow(domain.SettingSiteTitle, "Itoman").
				AddRow(domain.SettingDeliveryFee, "6.00"))

		settings, err := repo.GetAllSettings(context.Background())

		require.NoError(t, err)
		assert.Equal(t, map[string]string{domain.SettingSiteTitle: "Itoman", domain.SettingDeliveryFee: "6.00"}, settings)
	})

	t.Run("bad row is an error", func(t *testing.T) {
		repo, mock := setupPostgres(t)
		mock.ExpectQuery("SELECT key, value FROM settings").
			WillReturnRows(sqlmock.NewRows([]string{"key", "value"}).
				AddRow(domain.SettingSiteTitle, "Itoman").
				AddRow(domain.SettingDeliveryFee, nil))

		settings, err := repo.GetAllSettings(context.Background())

		assert.Nil(t, settings)
		assert.ErrorContains(t, err, "scan setting")
	})
}

func TestPostgresRepository_EnsureDefaultSettings(t *testing.T) {
	repo, mock := setupPostgres(t)

	mock.ExpectExec("INSERT INTO settings (.+) ON CONFLICT \\(key\\) DO NOTHING").
		WithArgs(
			domain.SettingWhatsAppNumber, domain.DefaultSettings[domain.SettingWhatsAppNumber],
			domain.SettingDeliveryFee, domain.DefaultSettings[domain.SettingDeliveryFee],
			domain.SettingSiteTitle, domain.DefaultSettings[domain.SettingSiteTitle],
		).
		WillReturnResult(sqlmock.NewResult(0, 3))

	assert.NoError(t, repo.EnsureDefaultSettings(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_CreateOrder(t *testing.T) {
	repo, mock := setupPostgres(t)
	now := time.Now()

	mock.ExpectQuery("INSERT INTO orders").
		WithArgs("Ana", "5519999999999", "Rua A, 10", "Centro", "", "",
			`[{"name":"Pastel de Carne","price":8,"quantity":2}]`, 21.0, 5.0, "Pix", "pending", "msg").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(12, now, now))

	order, err := repo.CreateOrder(context.Background(), domain.Order{
		CustomerName:         "Ana",
		CustomerPhone:        "5519999999999",
		CustomerAddress:      "Rua A, 10",
		CustomerNeighborhood: "Centro",
		Items:                []domain.OrderItem{{Name: "Pastel de Carne", Price: 8, Quantity: 2}},
		TotalAmount:          21,
		DeliveryFee:          5,
		PaymentMethod:        "Pix",
		WhatsAppMessage:      "msg",
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(12), order.ID)
	assert.Equal(t, domain.StatusPending, order.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_GetOrder(t *testing.T) {
	repo, mock := setupPostgres(t)
	now := time.Now()

	mock.ExpectQuery("SELECT (.+) FROM orders WHERE id = \\$1").
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows(orderRowColumns).AddRow(orderRow(5, "confirmed", 21, now)...))

	order, err := repo.GetOrder(context.Background(), 5)

	assert.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, order.Status)
	assert.Len(t, order.Items, 1)
	assert.Equal(t, 2, order.Items[0].Quantity)
}

func TestPostgresRepository_GetOrdersFiltersByStatus(t *testing.T) {
	repo, mock := setupPostgres(t)
	now := time.Now()

	mock.ExpectQuery("SELECT (.+) FROM orders WHERE status = \\$1 ORDER BY created_at DESC LIMIT 10 OFFSET 20").
		WithArgs("pending").
		WillReturnRows(sqlmock.NewRows(orderRowColumns).
			AddRow(orderRow(3, "pending", 13, now)...).
			AddRow(orderRow(2, "pending", 8, now.Add(-time.Minute))...))

	orders, err := repo.GetOrders(context.Background(), 10, 20, domain.StatusPending)

	assert.NoError(t, err)
	assert.Len(t, orders, 2)
	assert.Equal(t, int64(3), orders[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_GetOrdersDefaultsLimit(t *testing.T) {
	repo, mock := setupPostgres(t)

	mock.ExpectQuery("SELECT (.+) FROM orders ORDER BY created_at DESC LIMIT 50 OFFSET 0").
		WillReturnRows(sqlmock.NewRows(orderRowColumns))

	orders, err := repo.GetOrders(context.Background(), 0, -1, "")

	assert.NoError(t, err)
	assert.Empty(t, orders)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_UpdateOrderStatus(t *testing.T) {
	t.Run("updated", func(t *testing.T) {
		repo, mock := setupPostgres(t)
		now := time.Now()

		mock.ExpectQuery("UPDATE orders SET status = \\$1").
			WithArgs("delivered", int64(4)).
			WillReturnRows(sqlmock.NewRows(orderRowColumns).AddRow(orderRow(4, "delivered", 21, now)...))

		order, err := repo.UpdateOrderStatus(context.Background(), 4, domain.StatusDelivered)

		assert.NoError(t, err)
		assert.Equal(t, domain.StatusDelivered, order.Status)
	})

	t.Run("missing order", func(t *testing.T) {
		repo, mock := setupPostgres(t)

		mock.ExpectQuery("UPDATE orders SET status").
			WillReturnRows(sqlmock.NewRows(orderRowColumns))

		order, err := repo.UpdateOrderStatus(context.Background(), 99, domain.StatusDelivered)

		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.Nil(t, order)
	})
}
