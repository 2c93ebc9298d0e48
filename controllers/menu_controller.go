package controllers

import (
	"strconv"

	"github.com/ColdCodePlay/FoodFusion/pkg/resp"
	"github.com/ColdCodePlay/FoodFusion/services"

	"github.com/gin-gonic/gin"
)

type MenuController struct{ Svc *services.CatalogService }

func NewMenuController(s *services.CatalogService) *MenuController {
	return &MenuController{Svc: s}
}

// GET /api/menu-items/:id
func (h *MenuController) Detail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid menu item id")
		return
	}
	mi, err := h.Svc.MenuItem(uint(id))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, mi)
}

// GET /api/categories/:id/menu-items
func (h *MenuController) ByCategory(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid category id")
		return
	}
	rows, err := h.Svc.MenuByCategory(uint(id))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, rows)
}
