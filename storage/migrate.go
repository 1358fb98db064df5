package storage

import (
	"context"
	"fmt"
	"log"

	"pastelaria/domain"
)

type MigrationReport struct {
	ItemsInserted int  `json:"items_inserted"`
	ItemsSkipped  int  `json:"items_skipped"`
	SettingsSaved int  `json:"settings_saved"`
	AlreadyDone   bool `json:"already_done"`
}

// MigrateFromLocal copies the local catalog and settings into target once.
// Items whose name already exists in target are skipped. Settings are upserted,
// so local values replace the seeded defaults. The marker is only written after
// every step succeeded.
func MigrateFromLocal(ctx context.Context, local *LocalRepository, target Adapter) (MigrationReport, error) {
	var report MigrationReport

	done, err := local.Migrated()
	if err != nil {
		return report, fmt.Errorf("read migration marker: %w", err)
	}
	if done {
		report.AlreadyDone = true
		return report, nil
	}

	var localItems []domain.MenuItem
	if _, err := local.KV.Get(KeyMenuItems, &localItems); err != nil {
		return report, fmt.Errorf("read local menu: %w", err)
	}

	existing, err := target.GetMenuItems(ctx)
	if err != nil {
		return report, fmt.Errorf("read target menu: %w", err)
	}
	names := make(map[string]bool, len(existing))
	for _, item := range existing {
		names[item.Name] = true
	}

	for _, item := range localItems {
		if names[item.Name] {
			report.ItemsSkipped++
			continue
		}
		if item.Category == "" {
			item.Category = domain.CategoryPasteis
		}
		if _, err := target.AddMenuItem(ctx, item); err != nil {
			return report, fmt.Errorf("migrate item %q: %w", item.Name, err)
		}
		names[item.Name] = true
		report.ItemsInserted++
	}

	settings, err := local.GetAllSettings(ctx)
	if err != nil {
		return report, fmt.Errorf("read local settings: %w", err)
	}
	for key, value := range settings {
		if _, err := target.SaveSetting(ctx, key, value); err != nil {
			return report, fmt.Errorf("migrate setting %s: %w", key, err)
		}
		report.SettingsSaved++
	}

	if err := local.MarkMigrated(); err != nil {
		return report, fmt.Errorf("write migration marker: %w", err)
	}

	log.Printf("[storage] local data migrated: %d items inserted, %d skipped, %d settings",
		report.ItemsInserted, report.ItemsSkipped, report.SettingsSaved)
	return report, nil
}
