package controllers

import (
	"github.com/Subhashreel/orders/pkg/resp"
	"github.com/Subhashreel/orders/services"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	Service *services.AuthService
}

func NewAuthController(s *services.AuthService) *AuthController {
	return &AuthController{Service: s}
}

// POST /api/auth/login
func (ac *AuthController) Login(c *gin.Context) {
	var req services.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	out, err := ac.Service.Login(&req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, out)
}
