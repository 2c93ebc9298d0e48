package services

import (
	"math"
	"strconv"
	"strings"

	"github.com/ColdCodePlay/FoodFusion/entity"
)

// Delivery-fee sentinel on the restaurant record.
const freeDeliveryFee = "Free"

const (
	serviceFeeRate = 0.05 // charged at checkout only
	taxRate        = 0.10
)

// Quote is the price breakdown shared by the cart preview and checkout.
// ServiceFee stays zero in the preview.
type Quote struct {
	Subtotal    int64 `json:"subtotal"`
	DeliveryFee int64 `json:"deliveryFee"`
	ServiceFee  int64 `json:"serviceFee"`
	Tax         int64 `json:"tax"`
	Total       int64 `json:"total"`
}

// ParseDeliveryFee turns the restaurant's fee descriptor ("Free" or a
// currency-prefixed amount like "₹30") into whole units.
func ParseDeliveryFee(desc string) int64 {
	if desc == "" || desc == freeDeliveryFee {
		return 0
	}
	n, err := strconv.ParseInt(strings.TrimPrefix(desc, "₹"), 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// QuoteCart prices the cart preview: subtotal + delivery fee + tax.
func QuoteCart(items []entity.CartItem, feeDesc string) Quote {
	return quote(items, feeDesc, false)
}

// QuoteCheckout prices an order at checkout, adding the service fee.
func QuoteCheckout(items []entity.CartItem, feeDesc string) Quote {
	return quote(items, feeDesc, true)
}

func quote(items []entity.CartItem, feeDesc string, withServiceFee bool) Quote {
	var subtotal int64
	for _, it := range items {
		subtotal += it.MenuItem.Price * int64(it.Quantity)
	}

	q := Quote{
		Subtotal:    subtotal,
		DeliveryFee: ParseDeliveryFee(feeDesc),
		Tax:         roundHalfUp(float64(subtotal) * taxRate),
	}
	if withServiceFee {
		q.ServiceFee = roundHalfUp(float64(subtotal) * serviceFeeRate)
	}
	// Each fee is rounded independently before summing.
	q.Total = q.Subtotal + q.DeliveryFee + q.ServiceFee + q.Tax
	return q
}

func roundHalfUp(v float64) int64 {
	return int64(math.Floor(v + 0.5))
}
