package controllers

import (
	"strconv"

	"github.com/ColdCodePlay/FoodFusion/pkg/resp"
	"github.com/ColdCodePlay/FoodFusion/services"

	"github.com/gin-gonic/gin"
)

type RestaurantController struct{ Svc *services.CatalogService }

func NewRestaurantController(s *services.CatalogService) *RestaurantController {
	return &RestaurantController{Svc: s}
}

// GET /api/restaurants
func (h *RestaurantController) List(c *gin.Context) {
	rows, err := h.Svc.Restaurants()
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, rows)
}

// GET /api/restaurants/:id
func (h *RestaurantController) Detail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid restaurant id")
		return
	}
	r, err := h.Svc.Restaurant(uint(id))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, r)
}

// GET /api/restaurants/:id/categories
func (h *RestaurantController) Categories(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid restaurant id")
		return
	}
	rows, err := h.Svc.Categories(uint(id))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, rows)
}

// GET /api/restaurants/:id/menu
func (h *RestaurantController) Menu(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid restaurant id")
		return
	}
	rows, err := h.Svc.Menu(uint(id))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, rows)
}
