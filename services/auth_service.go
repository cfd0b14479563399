package services

import (
	"strings"
	"time"

	"github.com/Subhashreel/orders/pkg/apperr"
	"github.com/Subhashreel/orders/repository"
	"github.com/Subhashreel/orders/utils"

	"golang.org/x/crypto/bcrypt"
)

// AuthService issues tokens to restaurant staff.
type AuthService struct {
	staffRepo *repository.StaffRepository
	jwtSecret string
	jwtTTL    time.Duration
	Clock     func() time.Time
}

func NewAuthService(repo *repository.StaffRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{
		staffRepo: repo,
		jwtSecret: secret,
		jwtTTL:    ttl,
		Clock:     time.Now,
	}
}

type LoginReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginRes struct {
	Token     string    `json:"token"`
	Role      string    `json:"role"`
	ExpiresAt time.Time `json:"expiresAt"`
}

func (s *AuthService) Login(req *LoginReq) (*LoginRes, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	staff, err := s.staffRepo.FindByEmail(email)
	if err != nil {
		return nil, apperr.Unauthorized("invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(staff.Password), []byte(req.Password)); err != nil {
		return nil, apperr.Unauthorized("invalid credentials")
	}

	now := s.Clock()
	token, err := utils.GenerateToken(staff.ID, staff.Role, s.jwtSecret, s.jwtTTL, now)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return &LoginRes{Token: token, Role: staff.Role, ExpiresAt: now.Add(s.jwtTTL).UTC()}, nil
}
