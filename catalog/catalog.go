package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"

	"pastelaria/domain"
)

// Store is the slice of the storage adapter the catalog needs.
type Store interface {
	GetMenuItems(ctx context.Context) ([]domain.MenuItem, error)
	AddMenuItem(ctx context.Context, item domain.MenuItem) (*domain.MenuItem, error)
	UpdateMenuItem(ctx context.Context, id int64, fields domain.MenuItem) (*domain.MenuItem, error)
	DeleteMenuItem(ctx context.Context, id int64) error
}

type Filter struct {
	Text     string
	Category string
}

// Price is what an operator typed ("12,90") or a plain JSON number.
type Price struct {
	Text  string
	Value *float64
}

func (p *Price) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		return json.Unmarshal(data, &p.Text)
	}
	var value float64
	if err := json.Unmarshal(data, &value); err != nil {
		return &domain.ValidationError{Field: "price", Message: "price must be text or a number"}
	}
	p.Value = &value
	return nil
}

func (p Price) Parse() (float64, error) {
	if p.Value != nil {
		if *p.Value < 0 {
			return 0, &domain.ValidationError{Field: "price", Message: "price must not be negative"}
		}
		return domain.RoundCents(*p.Value), nil
	}
	return domain.ParsePrice(p.Text)
}

type Input struct {
	Name        string `json:"name"`
	Price       Price  `json:"price"`
	Category    string `json:"category"`
	Description string `json:"description"`
}

type CategoryInfo struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

type Catalog struct {
	store Store
}

func New(store Store) *Catalog {
	return &Catalog{store: store}
}

func (f Filter) matches(item domain.MenuItem) bool {
	if f.Category != "" && item.Category != f.Category {
		return false
	}
	text := strings.ToLower(strings.TrimSpace(f.Text))
	if text == "" {
		return true
	}
	return strings.Contains(strings.ToLower(item.Name), text) ||
		strings.Contains(strings.ToLower(item.Description), text)
}

func (c *Catalog) List(ctx context.Context, filter Filter) ([]domain.MenuItem, error) {
	items, err := c.store.GetMenuItems(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]domain.MenuItem, 0, len(items))
	for _, item := range items {
		if filter.matches(item) {
			matched = append(matched, item)
		}
	}
	return matched, nil
}

// Get looks an item up by id in the current menu.
func (c *Catalog) Get(ctx context.Context, id int64) (*domain.MenuItem, error) {
	items, err := c.store.GetMenuItems(ctx)
	if err != nil {
		return nil, err
	}
	for _, item := range items {
		if item.ID == id {
			found := item
			return &found, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (in Input) validate() (domain.MenuItem, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return domain.MenuItem{}, &domain.ValidationError{Field: "name", Message: "name is required"}
	}
	price, err := in.Price.Parse()
	if err != nil {
		return domain.MenuItem{}, err
	}
	category := strings.TrimSpace(in.Category)
	if category == "" {
		category = domain.CategoryPasteis
	}
	return domain.MenuItem{
		Name:        name,
		Price:       price,
		Category:    category,
		Description: strings.TrimSpace(in.Description),
	}, nil
}

func (c *Catalog) Add(ctx context.Context, in Input) (*domain.MenuItem, error) {
	item, err := in.validate()
	if err != nil {
		return nil, err
	}
	return c.store.AddMenuItem(ctx, item)
}

func (c *Catalog) Update(ctx context.Context, id int64, in Input) (*domain.MenuItem, error) {
	fields, err := in.validate()
	if err != nil {
		return nil, err
	}
	return c.store.UpdateMenuItem(ctx, id, fields)
}

func (c *Catalog) Remove(ctx context.Context, id int64) error {
	return c.store.DeleteMenuItem(ctx, id)
}

func (c *Catalog) Categories() []CategoryInfo {
	infos := make([]CategoryInfo, 0, len(domain.Categories))
	for _, key := range domain.Categories {
		infos = append(infos, CategoryInfo{Key: key, Label: domain.CategoryLabel(key)})
	}
	return infos
}
