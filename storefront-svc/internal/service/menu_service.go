package service

import (
	"context"
	"log"

	"pastelaria/catalog"
	"pastelaria/domain"
)

type MenuService struct {
	menu     MenuReader
	settings SettingsReader
}

func NewMenuService(menu MenuReader, settings SettingsReader) *MenuService {
	return &MenuService{menu: menu, settings: settings}
}

func (s *MenuService) List(ctx context.Context, filter catalog.Filter) ([]domain.MenuItem, error) {
	return s.menu.List(ctx, filter)
}

func (s *MenuService) Categories() []catalog.CategoryInfo {
	return s.menu.Categories()
}

// Settings never fails: a read error yields the defaults.
func (s *MenuService) Settings(ctx context.Context) map[string]string {
	return loadSettings(ctx, s.settings)
}

func loadSettings(ctx context.Context, reader SettingsReader) map[string]string {
	settings, err := reader.GetAllSettings(ctx)
	if err != nil {
		log.Printf("[storefront-svc] WARNING: settings unavailable, using defaults: %v", err)
		return domain.MergeDefaults(nil)
	}
	return domain.MergeDefaults(settings)
}
