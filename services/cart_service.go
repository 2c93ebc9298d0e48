package services

import (
	"errors"
	"fmt"

	"github.com/ColdCodePlay/FoodFusion/entity"
	"github.com/ColdCodePlay/FoodFusion/repository"
)

// CartService owns the per-user, single-restaurant cart. Mutations return the
// re-read joined cart so callers always observe a consistent snapshot.
type CartService struct {
	Store repository.Store
}

func NewCartService(store repository.Store) *CartService {
	return &CartService{Store: store}
}

type AddToCartIn struct {
	RestaurantID uint   `json:"restaurantId" binding:"required"`
	MenuItemID   uint   `json:"menuItemId" binding:"required"`
	Quantity     int    `json:"quantity" binding:"min=1"`
	Size         string `json:"size"`
	Extras       string `json:"extras"`
	Instructions string `json:"instructions"`
}

// Get returns the user's cart with restaurant and menu details, or nil when
// no cart exists. Absence is not an error.
func (s *CartService) Get(userID string) (*entity.Cart, error) {
	c, err := s.Store.GetCartByUser(userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Add validates the target restaurant and menu item, makes sure a cart bound
// to that restaurant exists (dropping any cart from another restaurant), then
// merges the line on (cart, menuItem, size, extras).
func (s *CartService) Add(userID string, in *AddToCartIn) (*entity.Cart, error) {
	if in.Quantity < 1 {
		in.Quantity = 1
	}
	if in.Size == "" {
		in.Size = "regular"
	}

	// Validate before touching any state.
	if _, err := s.Store.GetRestaurant(in.RestaurantID); err != nil {
		return nil, storeErr(err)
	}
	mi, err := s.Store.GetMenuItem(in.MenuItemID)
	if err != nil {
		return nil, storeErr(err)
	}
	if mi.RestaurantID != in.RestaurantID {
		return nil, fmt.Errorf("%w: menu item not in this restaurant", ErrValidation)
	}

	cart, err := s.startOrReuseCart(userID, in.RestaurantID)
	if err != nil {
		return nil, err
	}

	item := entity.CartItem{
		CartID:       cart.ID,
		MenuItemID:   in.MenuItemID,
		Quantity:     in.Quantity,
		Size:         in.Size,
		Extras:       in.Extras,
		Instructions: in.Instructions,
	}
	if err := s.Store.AddCartItem(&item); err != nil {
		return nil, err
	}
	return s.Get(userID)
}

// startOrReuseCart keeps the existing cart when it already belongs to
// restaurantID; a cart for another restaurant is deleted with its items first.
func (s *CartService) startOrReuseCart(userID string, restaurantID uint) (*entity.Cart, error) {
	existing, err := s.Store.GetCartByUser(userID)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		if existing.RestaurantID == restaurantID {
			return existing, nil
		}
		if err := s.Store.DeleteCartByUser(userID); err != nil {
			return nil, err
		}
	}

	cart := entity.Cart{UserID: userID, RestaurantID: restaurantID}
	if err := s.Store.CreateCart(&cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

// UpdateQuantity sets the line's quantity; anything below 1 removes the line
// instead of storing zero.
func (s *CartService) UpdateQuantity(userID string, itemID uint, quantity int) (*entity.Cart, error) {
	if err := s.Store.UpdateCartItemQuantity(itemID, quantity); err != nil {
		return nil, storeErr(err)
	}
	return s.Get(userID)
}

// Remove deletes the line unconditionally; removing an absent line is fine.
func (s *CartService) Remove(userID string, itemID uint) (*entity.Cart, error) {
	if err := s.Store.RemoveCartItem(itemID); err != nil {
		return nil, err
	}
	return s.Get(userID)
}

// Clear drops the user's cart and its items. No-op when there is none.
func (s *CartService) Clear(userID string) error {
	return s.Store.DeleteCartByUser(userID)
}
