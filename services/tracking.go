package services

import (
	"time"
)

// Virtual tracking statuses, in progression order.
const (
	StatusOrderReceived  = "Order Received"
	StatusPreparing      = "Preparing Your Food"
	StatusOutForDelivery = "Out for Delivery"
	StatusDelivered      = "Delivered"
)

const estimatedDeliveryAfter = 45 * time.Minute

// Tracking is a derived view: a pure function of (now, createdAt) with no
// persisted transitions. Delivered is terminal; the status never regresses
// because elapsed time only grows.
type Tracking struct {
	Status                string    `json:"status"`
	UpdatedAt             time.Time `json:"updatedAt"`
	EstimatedDeliveryTime time.Time `json:"estimatedDeliveryTime"`
}

// TrackingStatus maps elapsed time since order creation onto a delivery
// progress label.
func TrackingStatus(createdAt, now time.Time) string {
	elapsed := now.Sub(createdAt)
	switch {
	case elapsed < 5*time.Minute:
		return StatusOrderReceived
	case elapsed < 15*time.Minute:
		return StatusPreparing
	case elapsed < 30*time.Minute:
		return StatusOutForDelivery
	default:
		return StatusDelivered
	}
}

// TrackOrder builds the full tracking view for an order created at createdAt.
func TrackOrder(createdAt, now time.Time) Tracking {
	return Tracking{
		Status:                TrackingStatus(createdAt, now),
		UpdatedAt:             now,
		EstimatedDeliveryTime: createdAt.Add(estimatedDeliveryAfter),
	}
}
