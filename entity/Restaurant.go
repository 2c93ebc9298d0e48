package entity

import (
	"gorm.io/gorm"
)

type Restaurant struct {
	gorm.Model
	Name         string  `json:"name"`
	Image        string  `json:"image"`
	Cuisines     string  `json:"cuisines"`
	Rating       float64 `json:"rating"`
	DeliveryTime string  `json:"deliveryTime"`
	PriceRange   string  `json:"priceRange"`
	Distance     string  `json:"distance"`
	// "Free" or a currency-prefixed amount, e.g. "₹30"
	DeliveryFee string `json:"deliveryFee"`
	Promoted    bool   `json:"promoted"`
	Offer       string `json:"offer"`

	MenuCategories []MenuCategory `json:"-"`
	MenuItems      []MenuItem     `json:"-"`
	Orders         []Order        `json:"-"`
}
