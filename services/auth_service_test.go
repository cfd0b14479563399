package services

import (
	"testing"
	"time"

	"github.com/Subhashreel/orders/entity"
	"github.com/Subhashreel/orders/pkg/apperr"
	"github.com/Subhashreel/orders/repository"
	"github.com/Subhashreel/orders/utils"

	"golang.org/x/crypto/bcrypt"
)

func TestLogin(t *testing.T) {
	db := newTestDB(t)
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret-pass"), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	staff := entity.Staff{Email: "chef@example.com", Password: string(hash), Name: "Chef", Role: entity.RoleStaff}
	if err := db.Create(&staff).Error; err != nil {
		t.Fatal(err)
	}

	svc := NewAuthService(repository.NewStaffRepository(db), "test-secret", time.Hour)
	svc.Clock = func() time.Time { return time.Now() }

	res, err := svc.Login(&LoginReq{Email: " Chef@Example.com ", Password: "s3cret-pass"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	claims, err := utils.ParseToken(res.Token, "test-secret")
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if claims.StaffID != staff.ID || claims.Role != entity.RoleStaff || res.Role != entity.RoleStaff {
		t.Errorf("claims = %+v, res = %+v", claims, res)
	}

	for _, req := range []LoginReq{
		{Email: "chef@example.com", Password: "wrong"},
		{Email: "nobody@example.com", Password: "s3cret-pass"},
	} {
		if _, err := svc.Login(&req); !apperr.Is(err, apperr.KindUnauthorized) {
			t.Errorf("Login(%s) err = %v, want unauthorized", req.Email, err)
		}
	}
}
