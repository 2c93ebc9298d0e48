package services

import (
	"github.com/ColdCodePlay/FoodFusion/entity"
	"github.com/ColdCodePlay/FoodFusion/repository"
)

// CatalogService serves read-only restaurant/menu lookups.
type CatalogService struct {
	Store repository.Store
}

func NewCatalogService(store repository.Store) *CatalogService {
	return &CatalogService{Store: store}
}

func (s *CatalogService) Restaurants() ([]entity.Restaurant, error) {
	return s.Store.ListRestaurants()
}

func (s *CatalogService) Restaurant(id uint) (*entity.Restaurant, error) {
	r, err := s.Store.GetRestaurant(id)
	if err != nil {
		return nil, storeErr(err)
	}
	return r, nil
}

func (s *CatalogService) Categories(restaurantID uint) ([]entity.MenuCategory, error) {
	return s.Store.ListMenuCategories(restaurantID)
}

func (s *CatalogService) Menu(restaurantID uint) ([]entity.MenuItem, error) {
	return s.Store.ListMenuItems(restaurantID)
}

func (s *CatalogService) MenuByCategory(categoryID uint) ([]entity.MenuItem, error) {
	return s.Store.ListMenuItemsByCategory(categoryID)
}

func (s *CatalogService) MenuItem(id uint) (*entity.MenuItem, error) {
	mi, err := s.Store.GetMenuItem(id)
	if err != nil {
		return nil, storeErr(err)
	}
	return mi, nil
}
