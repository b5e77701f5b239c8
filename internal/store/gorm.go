package store

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormClient reads and writes the tables directly over SQL.
type GormClient struct {
	db *gorm.DB
}

// NewGormClient wraps an open GORM connection.
func NewGormClient(db *gorm.DB) *GormClient {
	return &GormClient{db: db}
}

func (c *GormClient) List(ctx context.Context, table string, dest any) error {
	return c.db.WithContext(ctx).
		Table(table).
		Order("created_at DESC").
		Order("id DESC").
		Find(dest).Error
}

func (c *GormClient) Insert(ctx context.Context, table string, row any) error {
	return c.db.WithContext(ctx).Table(table).Create(row).Error
}

func (c *GormClient) Delete(ctx context.Context, table string, id uint64) error {
	return c.db.WithContext(ctx).
		Exec("DELETE FROM ? WHERE id = ?", clause.Table{Name: table}, id).Error
}

func (c *GormClient) Ping(ctx context.Context) error {
	sqlDB, err := c.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
