package entity

import (
	"gorm.io/gorm"
)

type MenuCategory struct {
	gorm.Model
	RestaurantID uint       `json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`
	Name         string     `json:"name"`

	MenuItems []MenuItem `gorm:"foreignKey:CategoryID" json:"-"`
}
