package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ColdCodePlay/FoodFusion/entity"
	"github.com/ColdCodePlay/FoodFusion/repository"
)

// OrderService turns carts into immutable orders and serves history and the
// time-derived tracking view.
type OrderService struct {
	Store repository.Store

	// now is swapped in tests to pin the tracking clock.
	now func() time.Time
}

func NewOrderService(store repository.Store) *OrderService {
	return &OrderService{Store: store, now: time.Now}
}

type CheckoutIn struct {
	DeliveryAddress string `json:"deliveryAddress" binding:"required"`
	PaymentMethod   string `json:"paymentMethod" binding:"required"`
}

// DisplayCode derives the human-readable order code from the numeric id,
// e.g. 7 -> "ORD00000007".
func DisplayCode(id uint) string {
	return fmt.Sprintf("ORD%08d", id)
}

// OrderWithCode is the checkout response shape.
type OrderWithCode struct {
	entity.Order
	Items []entity.OrderItem `json:"items"`
	Code  string             `json:"orderId"`
}

// OrderSummary is one history row: order + restaurant + display code.
type OrderSummary struct {
	entity.Order
	Restaurant *entity.Restaurant `json:"restaurant"`
	Code       string             `json:"orderId"`
}

// OrderDetail adds the captured items and the virtual tracking view.
type OrderDetail struct {
	entity.Order
	Restaurant *entity.Restaurant `json:"restaurant"`
	Items      []entity.OrderItem `json:"items"`
	Tracking   Tracking           `json:"tracking"`
	Code       string             `json:"orderId"`
}

// Checkout snapshots the user's cart into an order. The order and its items
// are written in one transaction; the cart is cleared only after that commit,
// so a failed clear leaves a re-checkout hazard, never a broken order.
func (s *OrderService) Checkout(userID string, in *CheckoutIn) (*OrderWithCode, error) {
	if strings.TrimSpace(in.DeliveryAddress) == "" {
		return nil, fmt.Errorf("%w: deliveryAddress is required", ErrValidation)
	}
	if strings.TrimSpace(in.PaymentMethod) == "" {
		return nil, fmt.Errorf("%w: paymentMethod is required", ErrValidation)
	}

	cart, err := s.Store.GetCartByUser(userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrEmptyCart
	}
	if err != nil {
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, ErrEmptyCart
	}

	// Capture name and price now; later menu edits must not rewrite history.
	items := make([]entity.OrderItem, 0, len(cart.Items))
	for _, it := range cart.Items {
		items = append(items, entity.OrderItem{
			MenuItemID: it.MenuItemID,
			Name:       it.MenuItem.Name,
			Price:      it.MenuItem.Price,
			Quantity:   it.Quantity,
			Size:       it.Size,
			Extras:     it.Extras,
		})
	}

	q := QuoteCheckout(cart.Items, cart.Restaurant.DeliveryFee)

	order := entity.Order{
		UserID:          userID,
		RestaurantID:    cart.RestaurantID,
		Total:           q.Total,
		DeliveryAddress: in.DeliveryAddress,
		PaymentMethod:   in.PaymentMethod,
		Status:          "placed",
	}
	if err := s.Store.CreateOrder(&order, items); err != nil {
		return nil, err
	}

	// The order is committed; a leftover cart only risks a duplicate checkout
	// attempt, so the clear failure is not surfaced.
	_ = s.Store.DeleteCartByUser(userID)

	return &OrderWithCode{Order: order, Items: items, Code: DisplayCode(order.ID)}, nil
}

// ListForUser returns the caller's orders newest first. Guests have no
// history; order listing requires a real identity.
func (s *OrderService) ListForUser(userID string) ([]OrderSummary, error) {
	if userID == "" || userID == entity.GuestUserID {
		return nil, ErrUnauthorized
	}
	orders, err := s.Store.ListOrdersByUser(userID)
	if err != nil {
		return nil, err
	}
	out := make([]OrderSummary, 0, len(orders))
	for _, o := range orders {
		r := o.Restaurant
		out = append(out, OrderSummary{Order: o, Restaurant: &r, Code: DisplayCode(o.ID)})
	}
	return out, nil
}

// Track returns the order with its captured items and the virtual tracking
// status derived from elapsed time. Only the owning user may view it.
func (s *OrderService) Track(orderID uint, callerID string) (*OrderDetail, error) {
	o, err := s.Store.GetOrder(orderID)
	if err != nil {
		return nil, storeErr(err)
	}
	if o.UserID != callerID {
		return nil, ErrForbidden
	}

	r := o.Restaurant
	return &OrderDetail{
		Order:      *o,
		Restaurant: &r,
		Items:      o.Items,
		Tracking:   TrackOrder(o.CreatedAt, s.now()),
		Code:       DisplayCode(o.ID),
	}, nil
}
