package controllers

import (
	"github.com/Subhashreel/orders/pkg/resp"
	"github.com/Subhashreel/orders/services"

	"github.com/gin-gonic/gin"
)

type MenuController struct {
	Service *services.MenuService
}

func NewMenuController(s *services.MenuService) *MenuController {
	return &MenuController{Service: s}
}

// POST /api/menu
func (mc *MenuController) Upsert(c *gin.Context) {
	var req services.UpsertMenuItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	item, created, err := mc.Service.Upsert(&req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	if created {
		resp.Created(c, mapToMenuItemResponse(item))
		return
	}
	resp.OK(c, mapToMenuItemResponse(item))
}

// GET /api/menu/restaurant/:restaurantId
func (mc *MenuController) ListByRestaurant(c *gin.Context) {
	restID, ok := paramID(c, "restaurantId")
	if !ok {
		return
	}
	items, err := mc.Service.ListByRestaurant(restID)
	if err != nil {
		resp.Error(c, err)
		return
	}
	out := make([]MenuItemResponse, 0, len(items))
	for i := range items {
		out = append(out, mapToMenuItemResponse(&items[i]))
	}
	resp.OK(c, out)
}

// DELETE /api/menu/:itemId
func (mc *MenuController) Delete(c *gin.Context) {
	id, ok := paramID(c, "itemId")
	if !ok {
		return
	}
	if err := mc.Service.Delete(id); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"id": id})
}
