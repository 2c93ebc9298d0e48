package repository

import (
	"errors"

	"github.com/ColdCodePlay/FoodFusion/entity"

	"gorm.io/gorm"
)

// GormStore is the relational backend.
type GormStore struct{ DB *gorm.DB }

func NewGormStore(db *gorm.DB) *GormStore { return &GormStore{DB: db} }

var _ Store = (*GormStore)(nil)

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// ----- Users -----

func (s *GormStore) CreateUser(u *entity.User) error {
	return s.DB.Create(u).Error
}

func (s *GormStore) GetUser(id uint) (*entity.User, error) {
	var u entity.User
	if err := s.DB.First(&u, id).Error; err != nil {
		return nil, translate(err)
	}
	return &u, nil
}

func (s *GormStore) GetUserByUsername(username string) (*entity.User, error) {
	var u entity.User
	if err := s.DB.Where("username = ?", username).First(&u).Error; err != nil {
		return nil, translate(err)
	}
	return &u, nil
}

// ----- Restaurants -----

func (s *GormStore) CreateRestaurant(r *entity.Restaurant) error {
	return s.DB.Create(r).Error
}

func (s *GormStore) ListRestaurants() ([]entity.Restaurant, error) {
	var rows []entity.Restaurant
	if err := s.DB.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *GormStore) GetRestaurant(id uint) (*entity.Restaurant, error) {
	var r entity.Restaurant
	if err := s.DB.First(&r, id).Error; err != nil {
		return nil, translate(err)
	}
	return &r, nil
}

// ----- Menu categories -----

func (s *GormStore) CreateMenuCategory(mc *entity.MenuCategory) error {
	return s.DB.Create(mc).Error
}

func (s *GormStore) ListMenuCategories(restaurantID uint) ([]entity.MenuCategory, error) {
	var rows []entity.MenuCategory
	if err := s.DB.Where("restaurant_id = ?", restaurantID).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// ----- Menu items -----

func (s *GormStore) CreateMenuItem(mi *entity.MenuItem) error {
	return s.DB.Create(mi).Error
}

func (s *GormStore) GetMenuItem(id uint) (*entity.MenuItem, error) {
	var mi entity.MenuItem
	if err := s.DB.First(&mi, id).Error; err != nil {
		return nil, translate(err)
	}
	return &mi, nil
}

func (s *GormStore) ListMenuItems(restaurantID uint) ([]entity.MenuItem, error) {
	var rows []entity.MenuItem
	if err := s.DB.Where("restaurant_id = ?", restaurantID).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *GormStore) ListMenuItemsByCategory(categoryID uint) ([]entity.MenuItem, error) {
	var rows []entity.MenuItem
	if err := s.DB.Where("category_id = ?", categoryID).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// ----- Carts -----

func (s *GormStore) GetCartByUser(userID string) (*entity.Cart, error) {
	var c entity.Cart
	err := s.DB.Where("user_id = ?", userID).
		Order("created_at DESC, id DESC"). // most recent cart wins
		Preload("Items").
		Preload("Items.MenuItem").
		Preload("Restaurant").
		First(&c).Error
	if err != nil {
		return nil, translate(err)
	}
	return &c, nil
}

func (s *GormStore) CreateCart(c *entity.Cart) error {
	return s.DB.Create(c).Error
}

func (s *GormStore) DeleteCartByUser(userID string) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var ids []uint
		if err := tx.Model(&entity.Cart{}).Where("user_id = ?", userID).
			Pluck("id", &ids).Error; err != nil {
			return err
		}
		if len(ids) == 0 {
			return nil
		}
		if err := tx.Where("cart_id IN ?", ids).Delete(&entity.CartItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.Cart{}, ids).Error
	})
}

// ----- Cart items -----

func (s *GormStore) AddCartItem(item *entity.CartItem) error {
	// Find-or-increment runs in one transaction so two concurrent adds of the
	// same (cart, menuItem, size, extras) tuple cannot both insert.
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var exist entity.CartItem
		err := tx.Where("cart_id = ? AND menu_item_id = ? AND size = ? AND extras = ?",
			item.CartID, item.MenuItemID, item.Size, item.Extras).
			First(&exist).Error
		if err == nil {
			exist.Quantity += item.Quantity
			return tx.Save(&exist).Error
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return tx.Create(item).Error
	})
}

func (s *GormStore) UpdateCartItemQuantity(id uint, quantity int) error {
	if quantity < 1 {
		return s.RemoveCartItem(id)
	}
	res := s.DB.Model(&entity.CartItem{}).Where("id = ?", id).
		Update("quantity", quantity)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormStore) RemoveCartItem(id uint) error {
	return s.DB.Delete(&entity.CartItem{}, id).Error
}

// ----- Orders -----

func (s *GormStore) CreateOrder(o *entity.Order, items []entity.OrderItem) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(o).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].OrderID = o.ID
			if err := tx.Create(&items[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *GormStore) GetOrder(id uint) (*entity.Order, error) {
	var o entity.Order
	err := s.DB.Preload("Items").Preload("Restaurant").First(&o, id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &o, nil
}

func (s *GormStore) ListOrdersByUser(userID string) ([]entity.Order, error) {
	var rows []entity.Order
	err := s.DB.Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Preload("Restaurant").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
