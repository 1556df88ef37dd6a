package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/AK-1225/SPONproject/config"
	"github.com/AK-1225/SPONproject/internal/model"
)

// InitDB 按配置打开数据库并迁移表结构
func InitDB(cfg *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Database.Driver {
	case "postgres":
		dialector = postgres.Open(cfg.Database.DSN)
	case "sqlite", "":
		dialector = sqlite.Open(cfg.Database.DSN)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate 全量 AutoMigrate；测试用 :memory: sqlite 也走这里
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Athlete{},
		&model.Post{},
		&model.Photo{},
		&model.Story{},
		&model.BestShot{},
		&model.Support{},
		&model.SupportTotal{},
		&model.Follow{},
		&model.Fan{},
		&model.Block{},
		&model.EngagementFlag{},
		&model.CollectionItem{},
		&model.Comment{},
		&model.BoardPost{},
		&model.Notification{},
	)
}
