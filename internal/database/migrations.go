package database

import (
	"fmt"

	"gorm.io/gorm"
)

// AddIndexes adds the created_at indexes every list query sorts on.
func AddIndexes(db *gorm.DB) error {
	indexes := []struct {
		table   string
		name    string
		columns string
	}{
		{"members", "idx_members_created_at_id", "created_at, id"},
		{"expected_tasks", "idx_expected_tasks_created_at_id", "created_at, id"},
		{"tasks", "idx_tasks_created_at_id", "created_at, id"},
	}

	migrator := db.Migrator()
	for _, idx := range indexes {
		if migrator.HasIndex(idx.table, idx.name) {
			continue
		}

		sql := fmt.Sprintf("CREATE INDEX %s ON %s (%s)", idx.name, idx.table, idx.columns)
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}
	}

	return nil
}
