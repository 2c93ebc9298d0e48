package repository

import (
	"sort"
	"sync"
	"time"

	"github.com/ColdCodePlay/FoodFusion/entity"
)

// MemStore keeps everything in maps with sequential ids. It backs the service
// tests and works as a throwaway dev backend; the mutex gives it the same
// per-mutation atomicity the transactional backend has.
type MemStore struct {
	mu sync.Mutex

	users          map[uint]entity.User
	restaurants    map[uint]entity.Restaurant
	menuCategories map[uint]entity.MenuCategory
	menuItems      map[uint]entity.MenuItem
	carts          map[uint]entity.Cart
	cartItems      map[uint]entity.CartItem
	orders         map[uint]entity.Order
	orderItems     map[uint]entity.OrderItem

	nextUser         uint
	nextRestaurant   uint
	nextMenuCategory uint
	nextMenuItem     uint
	nextCart         uint
	nextCartItem     uint
	nextOrder        uint
	nextOrderItem    uint
}

func NewMemStore() *MemStore {
	return &MemStore{
		users:          make(map[uint]entity.User),
		restaurants:    make(map[uint]entity.Restaurant),
		menuCategories: make(map[uint]entity.MenuCategory),
		menuItems:      make(map[uint]entity.MenuItem),
		carts:          make(map[uint]entity.Cart),
		cartItems:      make(map[uint]entity.CartItem),
		orders:         make(map[uint]entity.Order),
		orderItems:     make(map[uint]entity.OrderItem),

		nextUser:         1,
		nextRestaurant:   1,
		nextMenuCategory: 1,
		nextMenuItem:     1,
		nextCart:         1,
		nextCartItem:     1,
		nextOrder:        1,
		nextOrderItem:    1,
	}
}

var _ Store = (*MemStore)(nil)

// ----- Users -----

func (s *MemStore) CreateUser(u *entity.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u.ID = s.nextUser
	s.nextUser++
	u.CreatedAt = time.Now()
	s.users[u.ID] = *u
	return nil
}

func (s *MemStore) GetUser(id uint) (*entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &u, nil
}

func (s *MemStore) GetUserByUsername(username string) (*entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Username == username {
			u := u
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

// ----- Restaurants -----

func (s *MemStore) CreateRestaurant(r *entity.Restaurant) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	r.ID = s.nextRestaurant
	s.nextRestaurant++
	s.restaurants[r.ID] = *r
	return nil
}

func (s *MemStore) ListRestaurants() ([]entity.Restaurant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rows := make([]entity.Restaurant, 0, len(s.restaurants))
	for _, r := range s.restaurants {
		rows = append(rows, r)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].ID < rows[j].ID })
	return rows, nil
}

func (s *MemStore) GetRestaurant(id uint) (*entity.Restaurant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.restaurants[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &r, nil
}

// ----- Menu categories -----

func (s *MemStore) CreateMenuCategory(mc *entity.MenuCategory) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	mc.ID = s.nextMenuCategory
	s.nextMenuCategory++
	s.menuCategories[mc.ID] = *mc
	return nil
}

func (s *MemStore) ListMenuCategories(restaurantID uint) ([]entity.MenuCategory, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var rows []entity.MenuCategory
	for _, mc := range s.menuCategories {
		if mc.RestaurantID == restaurantID {
			rows = append(rows, mc)
		}
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].ID < rows[j].ID })
	return rows, nil
}

// ----- Menu items -----

func (s *MemStore) CreateMenuItem(mi *entity.MenuItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	mi.ID = s.nextMenuItem
	s.nextMenuItem++
	s.menuItems[mi.ID] = *mi
	return nil
}

func (s *MemStore) GetMenuItem(id uint) (*entity.MenuItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	mi, ok := s.menuItems[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &mi, nil
}

func (s *MemStore) ListMenuItems(restaurantID uint) ([]entity.MenuItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var rows []entity.MenuItem
	for _, mi := range s.menuItems {
		if mi.RestaurantID == restaurantID {
			rows = append(rows, mi)
		}
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].ID < rows[j].ID })
	return rows, nil
}

func (s *MemStore) ListMenuItemsByCategory(categoryID uint) ([]entity.MenuItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var rows []entity.MenuItem
	for _, mi := range s.menuItems {
		if mi.CategoryID == categoryID {
			rows = append(rows, mi)
		}
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].ID < rows[j].ID })
	return rows, nil
}

// ----- Carts -----

func (s *MemStore) GetCartByUser(userID string) (*entity.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var found *entity.Cart
	for _, c := range s.carts {
		if c.UserID != userID {
			continue
		}
		c := c
		if found == nil || c.CreatedAt.After(found.CreatedAt) ||
			(c.CreatedAt.Equal(found.CreatedAt) && c.ID > found.ID) {
			found = &c
		}
	}
	if found == nil {
		return nil, ErrNotFound
	}

	cart := *found
	for _, it := range s.cartItems {
		if it.CartID != cart.ID {
			continue
		}
		it.MenuItem = s.menuItems[it.MenuItemID]
		cart.Items = append(cart.Items, it)
	}
	sort.Slice(cart.Items, func(i, j int) bool { return cart.Items[i].ID < cart.Items[j].ID })
	cart.Restaurant = s.restaurants[cart.RestaurantID]
	return &cart, nil
}

func (s *MemStore) CreateCart(c *entity.Cart) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.ID = s.nextCart
	s.nextCart++
	c.CreatedAt = time.Now()
	stored := *c
	stored.Items = nil
	s.carts[c.ID] = stored
	return nil
}

func (s *MemStore) DeleteCartByUser(userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, c := range s.carts {
		if c.UserID != userID {
			continue
		}
		for itemID, it := range s.cartItems {
			if it.CartID == c.ID {
				delete(s.cartItems, itemID)
			}
		}
		delete(s.carts, id)
	}
	return nil
}

// ----- Cart items -----

func (s *MemStore) AddCartItem(item *entity.CartItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, exist := range s.cartItems {
		if exist.CartID == item.CartID &&
			exist.MenuItemID == item.MenuItemID &&
			exist.Size == item.Size &&
			exist.Extras == item.Extras {
			exist.Quantity += item.Quantity
			s.cartItems[id] = exist
			*item = exist
			return nil
		}
	}

	item.ID = s.nextCartItem
	s.nextCartItem++
	stored := *item
	stored.MenuItem = entity.MenuItem{}
	s.cartItems[item.ID] = stored
	return nil
}

func (s *MemStore) UpdateCartItemQuantity(id uint, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if quantity < 1 {
		delete(s.cartItems, id)
		return nil
	}
	it, ok := s.cartItems[id]
	if !ok {
		return ErrNotFound
	}
	it.Quantity = quantity
	s.cartItems[id] = it
	return nil
}

func (s *MemStore) RemoveCartItem(id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.cartItems, id)
	return nil
}

// ----- Orders -----

func (s *MemStore) CreateOrder(o *entity.Order, items []entity.OrderItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	o.ID = s.nextOrder
	s.nextOrder++
	o.CreatedAt = time.Now()
	if o.Status == "" {
		o.Status = "placed"
	}
	stored := *o
	stored.Items = nil
	s.orders[o.ID] = stored

	for i := range items {
		items[i].ID = s.nextOrderItem
		s.nextOrderItem++
		items[i].OrderID = o.ID
		s.orderItems[items[i].ID] = items[i]
	}
	return nil
}

func (s *MemStore) GetOrder(id uint) (*entity.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[id]
	if !ok {
		return nil, ErrNotFound
	}
	for _, it := range s.orderItems {
		if it.OrderID == o.ID {
			o.Items = append(o.Items, it)
		}
	}
	sort.Slice(o.Items, func(i, j int) bool { return o.Items[i].ID < o.Items[j].ID })
	o.Restaurant = s.restaurants[o.RestaurantID]
	return &o, nil
}

func (s *MemStore) ListOrdersByUser(userID string) ([]entity.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var rows []entity.Order
	for _, o := range s.orders {
		if o.UserID != userID {
			continue
		}
		o.Restaurant = s.restaurants[o.RestaurantID]
		rows = append(rows, o)
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].CreatedAt.Equal(rows[j].CreatedAt) {
			return rows[i].ID > rows[j].ID
		}
		return rows[i].CreatedAt.After(rows[j].CreatedAt)
	})
	return rows, nil
}
