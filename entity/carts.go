package entity

import (
	"gorm.io/gorm"
)

// GuestUserID scopes anonymous carts. Every unauthenticated session shares
// this single identity; real session binding would come from the outer system.
const GuestUserID = "guest"

// Cart is bound to exactly one restaurant. Adding an item from another
// restaurant deletes the cart (and its items) before a new one is created.
type Cart struct {
	gorm.Model
	UserID string `gorm:"index;default:guest" json:"userId"`

	RestaurantID uint       `json:"restaurantId"`
	Restaurant   Restaurant `json:"restaurant"`

	Items []CartItem `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"items"`
}
