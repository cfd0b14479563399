package services

import (
	"errors"
	"testing"
	"time"

	"github.com/Subhashreel/orders/configs"
	"github.com/Subhashreel/orders/entity"
	"github.com/Subhashreel/orders/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Monday, so weekday discounts apply.
var testNow = time.Date(2024, time.January, 8, 12, 30, 0, 0, time.UTC)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := configs.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := configs.SetupDatabase(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func newTestOrderService(db *gorm.DB, now time.Time) *OrderService {
	svc := NewOrderService(
		db,
		repository.NewOrderRepository(db),
		repository.NewRestaurantRepository(db),
		repository.NewMenuRepository(db),
	)
	svc.Clock = func() time.Time { return now }
	svc.Location = time.UTC
	return svc
}

func seedRestaurant(t *testing.T, db *gorm.DB, r entity.Restaurant) entity.Restaurant {
	t.Helper()
	if r.Name == "" {
		r.Name = "Test Kitchen"
	}
	if r.LocationType == "" {
		r.LocationType = entity.LocationUrban
	}
	if r.BasePreparationTime == 0 {
		r.BasePreparationTime = 20
	}
	if r.PeakHourThreshold == 0 {
		r.PeakHourThreshold = 10
	}
	if err := db.Create(&r).Error; err != nil {
		t.Fatalf("seed restaurant: %v", err)
	}
	return r
}

func seedMenuItem(t *testing.T, db *gorm.DB, restID uint, name, price, complexity string) entity.MenuItem {
	t.Helper()
	m := entity.MenuItem{
		RestaurantID:          restID,
		Name:                  name,
		Category:              entity.CategoryMain,
		BasePrice:             dec(price),
		PreparationComplexity: dec(complexity),
	}
	if err := db.Create(&m).Error; err != nil {
		t.Fatalf("seed menu item: %v", err)
	}
	return m
}

func seedOrders(t *testing.T, db *gorm.DB, restID uint, n int, at time.Time) {
	t.Helper()
	for i := 0; i < n; i++ {
		o := entity.Order{
			RestaurantID:  restID,
			CustomerName:  "Walk-in",
			CustomerPhone: "00000000",
			Status:        entity.StatusPending,
			CreatedAt:     at.UTC(),
		}
		if err := db.Create(&o).Error; err != nil {
			t.Fatalf("seed order: %v", err)
		}
	}
}

func countRows(t *testing.T, db *gorm.DB, model any) int64 {
	t.Helper()
	var n int64
	if err := db.Model(model).Count(&n).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	return n
}

var errDiskFull = errors.New("disk full")

// failInserts makes every insert into table fail while *on is true.
func failInserts(t *testing.T, db *gorm.DB, table string) *bool {
	t.Helper()
	on := new(bool)
	err := db.Callback().Create().Before("gorm:create").Register("test:fail_"+table, func(tx *gorm.DB) {
		if *on && tx.Statement.Table == table {
			tx.AddError(errDiskFull)
		}
	})
	if err != nil {
		t.Fatalf("register callback: %v", err)
	}
	return on
}
