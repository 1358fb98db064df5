package service

import (
	"context"
	"log"

	"pastelaria/catalog"
	"pastelaria/domain"
)

type MenuService struct {
	catalog *catalog.Catalog
}

func NewMenuService(c *catalog.Catalog) *MenuService {
	return &MenuService{catalog: c}
}

func (s *MenuService) List(ctx context.Context, filter catalog.Filter) ([]domain.MenuItem, error) {
	return s.catalog.List(ctx, filter)
}

func (s *MenuService) Add(ctx context.Context, in catalog.Input) (*domain.MenuItem, error) {
	item, err := s.catalog.Add(ctx, in)
	if err != nil {
		return nil, err
	}
	log.Printf("[admin-svc] menu item %d added: %s", item.ID, item.Name)
	return item, nil
}

func (s *MenuService) Update(ctx context.Context, id int64, in catalog.Input) (*domain.MenuItem, error) {
	return s.catalog.Update(ctx, id, in)
}

func (s *MenuService) Remove(ctx context.Context, id int64) error {
	if err := s.catalog.Remove(ctx, id); err != nil {
		return err
	}
	log.Printf("[admin-svc] menu item %d removed", id)
	return nil
}
