package controllers

import (
	"github.com/Subhashreel/orders/entity"
	"github.com/Subhashreel/orders/pkg/resp"
	"github.com/Subhashreel/orders/services"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	Service *services.OrderService
}

func NewOrderController(s *services.OrderService) *OrderController {
	return &OrderController{Service: s}
}

// ===== Create Order =====

// POST /api/orders
func (oc *OrderController) Create(c *gin.Context) {
	var req services.CreateOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	out, err := oc.Service.Create(c.Request.Context(), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, out)
}

// ===== Status =====

type UpdateStatusReq struct {
	Status entity.OrderStatus `json:"status" binding:"required,oneof=pending confirmed preparing ready delivered cancelled"`
}

// PUT /api/orders/:orderId/status
func (oc *OrderController) UpdateStatus(c *gin.Context) {
	id, ok := paramID(c, "orderId")
	if !ok {
		return
	}
	var req UpdateStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	change, err := oc.Service.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, change)
}

// ===== Read =====

// GET /api/orders/:orderId
func (oc *OrderController) Detail(c *gin.Context) {
	id, ok := paramID(c, "orderId")
	if !ok {
		return
	}
	d, err := oc.Service.Detail(id)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, OrderDetailResponse{Order: d.Order, Items: d.Items, StatusHistory: d.StatusHistory})
}

// GET /api/orders/restaurant/:restaurantId?status=&date=YYYY-MM-DD
func (oc *OrderController) ListForRestaurant(c *gin.Context) {
	restID, ok := paramID(c, "restaurantId")
	if !ok {
		return
	}
	orders, err := oc.Service.ListForRestaurant(restID, c.Query("status"), c.Query("date"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	if orders == nil {
		orders = []entity.Order{}
	}
	resp.OK(c, orders)
}
