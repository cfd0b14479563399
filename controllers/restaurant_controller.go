// controllers/restaurant_controller.go
package controllers

import (
	"github.com/Subhashreel/orders/pkg/resp"
	"github.com/Subhashreel/orders/services"

	"github.com/gin-gonic/gin"
)

type RestaurantController struct {
	Service *services.RestaurantService
}

func NewRestaurantController(s *services.RestaurantService) *RestaurantController {
	return &RestaurantController{Service: s}
}

// POST /api/restaurants
func (ctl *RestaurantController) Upsert(c *gin.Context) {
	var req services.UpsertRestaurantReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	rest, created, err := ctl.Service.Upsert(&req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	if created {
		resp.Created(c, mapToRestaurantResponse(rest))
		return
	}
	resp.OK(c, mapToRestaurantResponse(rest))
}

// GET /api/restaurants
func (ctl *RestaurantController) List(c *gin.Context) {
	rests, err := ctl.Service.List()
	if err != nil {
		resp.Error(c, err)
		return
	}
	out := make([]RestaurantResponse, 0, len(rests))
	for i := range rests {
		out = append(out, mapToRestaurantResponse(&rests[i]))
	}
	resp.OK(c, out)
}

// GET /api/restaurants/:id
func (ctl *RestaurantController) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	r, err := ctl.Service.Get(id)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, mapToRestaurantResponse(r))
}

// DELETE /api/restaurants/:id
func (ctl *RestaurantController) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := ctl.Service.Delete(id); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"id": id})
}
