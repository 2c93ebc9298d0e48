package entity

import (
	"gorm.io/gorm"
)

// Order is immutable once placed. Status is persisted only as the initial
// "placed" label; the delivery progression shown to users is derived from
// CreatedAt, never written back.
type Order struct {
	gorm.Model
	UserID string `gorm:"index" json:"userId"`

	RestaurantID uint       `json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	Total           int64  `json:"total"`
	DeliveryAddress string `json:"deliveryAddress"`
	PaymentMethod   string `json:"paymentMethod"`
	Status          string `gorm:"default:placed" json:"status"`

	Items []OrderItem `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
}
