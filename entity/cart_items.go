package entity

import (
	"gorm.io/gorm"
)

// CartItem merges on (cartId, menuItemId, size, extras): adding a matching
// selection increments Quantity instead of inserting a new row. Quantity is
// never stored below 1; dropping under 1 deletes the row.
type CartItem struct {
	gorm.Model
	CartID uint `json:"cartId"`
	Cart   Cart `json:"-"`

	MenuItemID uint     `json:"menuItemId"`
	MenuItem   MenuItem `json:"menuItem"`

	Quantity     int    `gorm:"default:1" json:"quantity"`
	Size         string `gorm:"default:regular" json:"size"`
	Extras       string `json:"extras"` // comma-joined, free form
	Instructions string `json:"instructions"`
}
