package entity

import (
	"gorm.io/gorm"
)

// OrderItem captures name and price at checkout time. It references the menu
// item for navigation only; the snapshot fields are authoritative.
type OrderItem struct {
	gorm.Model
	OrderID uint  `json:"orderId"`
	Order   Order `json:"-"`

	MenuItemID uint     `json:"menuItemId"`
	MenuItem   MenuItem `json:"-"`

	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Quantity int    `json:"quantity"`
	Size     string `json:"size"`
	Extras   string `json:"extras"`
}
