package repository

import (
	"errors"

	"github.com/ColdCodePlay/FoodFusion/entity"
)

// ErrNotFound is returned by every backend when a referenced row is absent.
// Services translate it into the public error taxonomy.
var ErrNotFound = errors.New("record not found")

// Store is the capability set the ordering core needs from persistence.
// Two backends satisfy it: GormStore (SQLite) and MemStore (maps, used by
// tests). Merge and multi-row writes are atomic inside the backend so the
// services never see partial state.
type Store interface {
	// Users
	CreateUser(u *entity.User) error
	GetUser(id uint) (*entity.User, error)
	GetUserByUsername(username string) (*entity.User, error)

	// Restaurants
	CreateRestaurant(r *entity.Restaurant) error
	ListRestaurants() ([]entity.Restaurant, error)
	GetRestaurant(id uint) (*entity.Restaurant, error)

	// Menu categories
	CreateMenuCategory(mc *entity.MenuCategory) error
	ListMenuCategories(restaurantID uint) ([]entity.MenuCategory, error)

	// Menu items
	CreateMenuItem(mi *entity.MenuItem) error
	GetMenuItem(id uint) (*entity.MenuItem, error)
	ListMenuItems(restaurantID uint) ([]entity.MenuItem, error)
	ListMenuItemsByCategory(categoryID uint) ([]entity.MenuItem, error)

	// Carts. GetCartByUser returns the most recently created cart joined with
	// its restaurant and each item's menu item; ErrNotFound when absent.
	GetCartByUser(userID string) (*entity.Cart, error)
	CreateCart(c *entity.Cart) error
	DeleteCartByUser(userID string) error

	// Cart items. AddCartItem merges on (cartId, menuItemId, size, extras),
	// incrementing quantity when the tuple already exists; the find-or-insert
	// is serialized per backend. UpdateCartItemQuantity deletes the row when
	// quantity < 1. RemoveCartItem is idempotent.
	AddCartItem(item *entity.CartItem) error
	UpdateCartItemQuantity(id uint, quantity int) error
	RemoveCartItem(id uint) error

	// Orders. CreateOrder persists the order and all its items atomically.
	// ListOrdersByUser returns newest first with the restaurant joined.
	CreateOrder(o *entity.Order, items []entity.OrderItem) error
	GetOrder(id uint) (*entity.Order, error)
	ListOrdersByUser(userID string) ([]entity.Order, error)
}
