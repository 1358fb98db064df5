package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"pastelaria/domain"

	sq "github.com/Masterminds/squirrel"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const (
	menuColumns = "id, name, price, category, COALESCE(description, ''), created_at, updated_at"

	orderColumns = `id, customer_name, COALESCE(customer_phone, ''), COALESCE(customer_address, ''),
		COALESCE(customer_neighborhood, ''), COALESCE(customer_reference, ''), COALESCE(customer_observations, ''),
		items, total_amount, delivery_fee, COALESCE(payment_method, ''), status, COALESCE(whatsapp_message, ''),
		created_at, updated_at`
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanMenuItem(row rowScanner) (*domain.MenuItem, error) {
	var item domain.MenuItem
	if err := row.Scan(&item.ID, &item.Name, &item.Price, &item.Category, &item.Description, &item.CreatedAt, &item.UpdatedAt); err != nil {
		return nil, err
	}
	return &item, nil
}

func scanOrder(row rowScanner) (*domain.Order, error) {
	var (
		order  domain.Order
		items  []byte
		status string
	)
	err := row.Scan(&order.ID, &order.CustomerName, &order.CustomerPhone, &order.CustomerAddress,
		&order.CustomerNeighborhood, &order.CustomerReference, &order.CustomerObservations,
		&items, &order.TotalAmount, &order.DeliveryFee, &order.PaymentMethod, &status, &order.WhatsAppMessage,
		&order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		return nil, err
	}
	order.Status = domain.Status(status)
	if err := json.Unmarshal(items, &order.Items); err != nil {
		return nil, fmt.Errorf("decode items of order %d: %w", order.ID, err)
	}
	return &order, nil
}

func (r *PostgresRepository) GetMenuItems(ctx context.Context) ([]domain.MenuItem, error) {
	query, args, err := psql.Select(menuColumns).From("menu_items").OrderBy("category", "name").ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list menu items: %w", err)
	}
	defer rows.Close()

	items := []domain.MenuItem{}
	for rows.Next() {
		item, err := scanMenuItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan menu item: %w", err)
		}
		items = append(items, *item)
	}
	return items, rows.Err()
}

func (r *PostgresRepository) AddMenuItem(ctx context.Context, item domain.MenuItem) (*domain.MenuItem, error) {
	query, args, err := psql.Insert("menu_items").
		Columns("name", "price", "category", "description").
		Values(item.Name, item.Price, item.Category, item.Description).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, err
	}

	if err := r.DB.QueryRowContext(ctx, query, args...).Scan(&item.ID, &item.CreatedAt, &item.UpdatedAt); err != nil {
		return nil, fmt.Errorf("insert menu item: %w", err)
	}
	return &item, nil
}

func (r *PostgresRepository) UpdateMenuItem(ctx context.Context, id int64, fields domain.MenuItem) (*domain.MenuItem, error) {
	query, args, err := psql.Update("menu_items").
		Set("name", fields.Name).
		Set("price", fields.Price).
		Set("category", fields.Category).
		Set("description", fields.Description).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + menuColumns).
		ToSql()
	if err != nil {
		return nil, err
	}

	item, err := scanMenuItem(r.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update menu item %d: %w", id, err)
	}
	return item, nil
}

func (r *PostgresRepository) DeleteMenuItem(ctx context.Context, id int64) error {
	query, args, err := psql.Delete("menu_items").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return err
	}
	if _, err := r.DB.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete menu item %d: %w", id, err)
	}
	return nil
}

func (r *PostgresRepository) GetSetting(ctx context.Context, key string) (string, bool, error) {
	query, args, err := psql.Select("value").From("settings").Where(sq.Eq{"key": key}).ToSql()
	if err != nil {
		return "", false, err
	}

	var value string
	err = r.DB.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get setting %s: %w", key, err)
	}
	return value, true, nil
}

func (r *PostgresRepository) SaveSetting(ctx context.Context, key, value string) (string, error) {
	query, args, err := psql.Insert("settings").
		Columns("key", "value").
		Values(key, value).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW() RETURNING value").
		ToSql()
	if err != nil {
		return "", err
	}

	var saved string
	if err := r.DB.QueryRowContext(ctx, query, args...).Scan(&saved); err != nil {
		return "", fmt.Errorf("save setting %s: %w", key, err)
	}
	return saved, nil
}

func (r *PostgresRepository) GetAllSettings(ctx context.Context) (map[string]string, error) {
	query, args, err := psql.Select("key", "value").From("settings").ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list settings: %w", err)
	}
	defer rows.Close()

	settings := map[string]string{}
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("scan setting: %w", err)
		}
		settings[key] = value
	}
	return settings, rows.Err()
}

// EnsureDefaultSettings inserts missing defaults and never overwrites.
func (r *PostgresRepository) EnsureDefaultSettings(ctx context.Context) error {
	insert := psql.Insert("settings").Columns("key", "value")
	for _, key := range []string{domain.SettingWhatsAppNumber, domain.SettingDeliveryFee, domain.SettingSiteTitle} {
		insert = insert.Values(key, domain.DefaultSettings[key])
	}
	query, args, err := insert.Suffix("ON CONFLICT (key) DO NOTHING").ToSql()
	if err != nil {
		return err
	}
	if _, err := r.DB.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert default settings: %w", err)
	}
	return nil
}

func (r *PostgresRepository) CreateOrder(ctx context.Context, order domain.Order) (*domain.Order, error) {
	items, err := json.Marshal(order.Items)
	if err != nil {
		return nil, fmt.Errorf("encode order items: %w", err)
	}
	if order.Status == "" {
		order.Status = domain.StatusPending
	}

	query, args, err := psql.Insert("orders").
		Columns("customer_name", "customer_phone", "customer_address", "customer_neighborhood",
			"customer_reference", "customer_observations", "items", "total_amount", "delivery_fee",
			"payment_method", "status", "whatsapp_message").
		Values(order.CustomerName, order.CustomerPhone, order.CustomerAddress, order.CustomerNeighborhood,
			order.CustomerReference, order.CustomerObservations, string(items), order.TotalAmount, order.DeliveryFee,
			order.PaymentMethod, string(order.Status), order.WhatsAppMessage).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, err
	}

	if err := r.DB.QueryRowContext(ctx, query, args...).Scan(&order.ID, &order.CreatedAt, &order.UpdatedAt); err != nil {
		return nil, fmt.Errorf("insert order: %w", err)
	}
	return &order, nil
}

func (r *PostgresRepository) GetOrder(ctx context.Context, id int64) (*domain.Order, error) {
	query, args, err := psql.Select(orderColumns).From("orders").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, err
	}

	order, err := scanOrder(r.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get order %d: %w", id, err)
	}
	return order, nil
}

func (r *PostgresRepository) queryOrders(ctx context.Context, builder sq.SelectBuilder) ([]domain.Order, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	orders := []domain.Order{}
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		orders = append(orders, *order)
	}
	return orders, rows.Err()
}

func (r *PostgresRepository) GetOrders(ctx context.Context, limit, offset int, status domain.Status) ([]domain.Order, error) {
	if limit <= 0 {
		limit = DefaultOrdersLimit
	}
	if offset < 0 {
		offset = 0
	}

	builder := psql.Select(orderColumns).From("orders")
	if status != "" {
		builder = builder.Where(sq.Eq{"status": string(status)})
	}
	builder = builder.OrderBy("created_at DESC").Limit(uint64(limit)).Offset(uint64(offset))

	return r.queryOrders(ctx, builder)
}

func (r *PostgresRepository) GetOrdersBetween(ctx context.Context, from, to time.Time) ([]domain.Order, error) {
	builder := psql.Select(orderColumns).From("orders").
		Where(sq.GtOrEq{"created_at": from}).
		Where(sq.Lt{"created_at": to}).
		OrderBy("created_at DESC")

	return r.queryOrders(ctx, builder)
}

func (r *PostgresRepository) UpdateOrderStatus(ctx context.Context, id int64, status domain.Status) (*domain.Order, error) {
	query, args, err := psql.Update("orders").
		Set("status", string(status)).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + orderColumns).
		ToSql()
	if err != nil {
		return nil, err
	}

	order, err := scanOrder(r.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update order %d status: %w", id, err)
	}
	return order, nil
}
