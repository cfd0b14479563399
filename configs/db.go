package configs

import (
	"fmt"
	"time"

	"github.com/Subhashreel/orders/entity"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

func ConnectionDB(cfg *Config) error {
	database, err := Open(cfg.DBDriver, cfg.DBSource)
	if err != nil {
		return err
	}
	db = database
	return nil
}

// Open connects to sqlite or postgres. sqlite is pinned to a single
// connection so writers queue instead of failing with "database is locked".
func Open(driver, source string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case "sqlite":
		dialector = sqlite.Open(source)
	case "postgres":
		dialector = postgres.Open(source)
	default:
		return nil, fmt.Errorf("unsupported db driver %q", driver)
	}

	database, err := gorm.Open(dialector, &gorm.Config{
		Logger:  newGormLogger(),
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", driver, err)
	}

	if driver == "sqlite" {
		sqlDB, err := database.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
		if err := database.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
			return nil, fmt.Errorf("enable foreign keys: %w", err)
		}
	}
	return database, nil
}

// SetupDatabase migrates the schema.
func SetupDatabase(database *gorm.DB) error {
	return database.AutoMigrate(
		&entity.Staff{},
		&entity.Restaurant{},
		&entity.MenuItem{},
		&entity.Order{},
		&entity.OrderItem{},
		&entity.OrderStatusHistory{},
	)
}
