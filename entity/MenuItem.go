package entity

import (
	"gorm.io/gorm"
)

// MenuItem is read-only to the ordering core; carts and orders reference it,
// orders additionally snapshot name/price so later menu edits never rewrite
// history.
type MenuItem struct {
	gorm.Model
	RestaurantID uint       `json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	CategoryID uint         `json:"categoryId"`
	Category   MenuCategory `gorm:"foreignKey:CategoryID" json:"-"`

	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Price        int64   `json:"price"` // whole currency units
	Image        string  `json:"image"`
	Rating       float64 `json:"rating"`
	NumRatings   int     `json:"numRatings"`
	IsVeg        bool    `gorm:"default:true" json:"isVeg"`
	IsBestseller bool    `json:"isBestseller"`
}
