package configs

import (
	"testing"

	"github.com/Subhashreel/orders/entity"

	"golang.org/x/crypto/bcrypt"
)

func TestOpenAndMigrate(t *testing.T) {
	database, err := Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := SetupDatabase(database); err != nil {
		t.Fatalf("SetupDatabase: %v", err)
	}
	for _, table := range []string{"restaurants", "menu_items", "orders", "order_items", "order_status_history", "staff"} {
		if !database.Migrator().HasTable(table) {
			t.Errorf("missing table %s", table)
		}
	}
}

func TestOpenUnsupportedDriver(t *testing.T) {
	if _, err := Open("oracle", "x"); err == nil {
		t.Fatal("expected error")
	}
}

func TestStatusColumnRejectsUnknownValues(t *testing.T) {
	database, err := Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := SetupDatabase(database); err != nil {
		t.Fatalf("SetupDatabase: %v", err)
	}
	r := entity.Restaurant{Name: "Campus Cafe", LocationType: entity.LocationCollege, BasePreparationTime: 15, PeakHourThreshold: 5}
	if err := database.Create(&r).Error; err != nil {
		t.Fatalf("create restaurant: %v", err)
	}
	o := entity.Order{RestaurantID: r.ID, CustomerName: "A", CustomerPhone: "12345678", Status: "lost"}
	if err := database.Create(&o).Error; err == nil {
		t.Fatal("expected check constraint violation")
	}
}

func TestSeedAdmin(t *testing.T) {
	database, err := Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := SetupDatabase(database); err != nil {
		t.Fatalf("SetupDatabase: %v", err)
	}

	cfg := defaultConfig()
	if err := SeedAdmin(database, cfg); err != nil {
		t.Fatalf("SeedAdmin without credentials: %v", err)
	}

	cfg.AdminEmail = " Boss@Example.com "
	cfg.AdminPassword = "s3cret-pass"
	for i := 0; i < 2; i++ {
		if err := SeedAdmin(database, cfg); err != nil {
			t.Fatalf("SeedAdmin: %v", err)
		}
	}

	var staff []entity.Staff
	if err := database.Find(&staff).Error; err != nil {
		t.Fatalf("find staff: %v", err)
	}
	if len(staff) != 1 {
		t.Fatalf("expected exactly one admin, got %d", len(staff))
	}
	if staff[0].Email != "boss@example.com" || staff[0].Role != entity.RoleAdmin {
		t.Errorf("unexpected admin: %+v", staff[0])
	}
	if bcrypt.CompareHashAndPassword([]byte(staff[0].Password), []byte("s3cret-pass")) != nil {
		t.Error("password was not hashed with bcrypt")
	}
}
