package controllers

import (
	"strconv"

	"github.com/ColdCodePlay/FoodFusion/entity"
	"github.com/ColdCodePlay/FoodFusion/pkg/resp"
	"github.com/ColdCodePlay/FoodFusion/services"
	"github.com/ColdCodePlay/FoodFusion/utils"

	"github.com/gin-gonic/gin"
)

type CartController struct{ Svc *services.CartService }

func NewCartController(s *services.CartService) *CartController { return &CartController{Svc: s} }

// cartPayload renders the joined cart with its preview quote; an absent cart
// shows as an empty item list, not an error.
func cartPayload(cart *entity.Cart) gin.H {
	if cart == nil {
		return gin.H{"items": []entity.CartItem{}}
	}
	return gin.H{
		"cart":  cart,
		"quote": services.QuoteCart(cart.Items, cart.Restaurant.DeliveryFee),
	}
}

// GET /api/cart
func (h *CartController) Get(c *gin.Context) {
	cart, err := h.Svc.Get(utils.CurrentUserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, cartPayload(cart))
}

// POST /api/cart/items
func (h *CartController) Add(c *gin.Context) {
	var req services.AddToCartIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	cart, err := h.Svc.Add(utils.CurrentUserID(c), &req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, cartPayload(cart))
}

// PATCH /api/cart/items/:id
func (h *CartController) UpdateQuantity(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid cart item id")
		return
	}
	var req struct {
		// pointer so 0 binds; 0 and below remove the line
		Quantity *int `json:"quantity" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	cart, err := h.Svc.UpdateQuantity(utils.CurrentUserID(c), uint(id), *req.Quantity)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, cartPayload(cart))
}

// DELETE /api/cart/items/:id
func (h *CartController) Remove(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid cart item id")
		return
	}
	cart, err := h.Svc.Remove(utils.CurrentUserID(c), uint(id))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, cartPayload(cart))
}

// DELETE /api/cart
func (h *CartController) Clear(c *gin.Context) {
	if err := h.Svc.Clear(utils.CurrentUserID(c)); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"cleared": true})
}
