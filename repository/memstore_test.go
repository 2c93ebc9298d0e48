package repository

import (
	"sync"
	"testing"

	"github.com/ColdCodePlay/FoodFusion/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemStoreMergeIsSerialized(t *testing.T) {
	s := NewMemStore()

	r := entity.Restaurant{Name: "Spice Junction", DeliveryFee: "₹20"}
	require.NoError(t, s.CreateRestaurant(&r))
	mi := entity.MenuItem{RestaurantID: r.ID, Name: "Dal Makhani", Price: 199}
	require.NoError(t, s.CreateMenuItem(&mi))
	cart := entity.Cart{UserID: "guest", RestaurantID: r.ID}
	require.NoError(t, s.CreateCart(&cart))

	// Concurrent adds of the same tuple must end as one line with the
	// summed quantity, never two lines.
	const adds = 20
	var wg sync.WaitGroup
	for i := 0; i < adds; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			item := entity.CartItem{CartID: cart.ID, MenuItemID: mi.ID, Quantity: 1, Size: "regular"}
			assert.NoError(t, s.AddCartItem(&item))
		}()
	}
	wg.Wait()

	got, err := s.GetCartByUser("guest")
	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	assert.Equal(t, adds, got.Items[0].Quantity)
}

func TestMemStoreMostRecentCartWins(t *testing.T) {
	s := NewMemStore()

	r := entity.Restaurant{Name: "Urban Cafe", DeliveryFee: "₹25"}
	require.NoError(t, s.CreateRestaurant(&r))

	first := entity.Cart{UserID: "guest", RestaurantID: r.ID}
	require.NoError(t, s.CreateCart(&first))
	second := entity.Cart{UserID: "guest", RestaurantID: r.ID}
	require.NoError(t, s.CreateCart(&second))

	got, err := s.GetCartByUser("guest")
	require.NoError(t, err)
	assert.Equal(t, second.ID, got.ID)
}

func TestMemStoreDeleteCartCascades(t *testing.T) {
	s := NewMemStore()

	r := entity.Restaurant{Name: "Pizza Paradise", DeliveryFee: "₹35"}
	require.NoError(t, s.CreateRestaurant(&r))
	mi := entity.MenuItem{RestaurantID: r.ID, Name: "Margherita", Price: 299}
	require.NoError(t, s.CreateMenuItem(&mi))
	cart := entity.Cart{UserID: "guest", RestaurantID: r.ID}
	require.NoError(t, s.CreateCart(&cart))
	item := entity.CartItem{CartID: cart.ID, MenuItemID: mi.ID, Quantity: 1, Size: "regular"}
	require.NoError(t, s.AddCartItem(&item))

	require.NoError(t, s.DeleteCartByUser("guest"))

	_, err := s.GetCartByUser("guest")
	assert.ErrorIs(t, err, ErrNotFound)

	// A fresh cart must not resurrect the old line.
	fresh := entity.Cart{UserID: "guest", RestaurantID: r.ID}
	require.NoError(t, s.CreateCart(&fresh))
	got, err := s.GetCartByUser("guest")
	require.NoError(t, err)
	assert.Empty(t, got.Items)
}

func TestMemStoreCreateOrderAtomicShape(t *testing.T) {
	s := NewMemStore()

	r := entity.Restaurant{Name: "Golden Dragon", DeliveryFee: "₹40"}
	require.NoError(t, s.CreateRestaurant(&r))

	order := entity.Order{UserID: "7", RestaurantID: r.ID, Total: 500,
		DeliveryAddress: "a", PaymentMethod: "card"}
	items := []entity.OrderItem{
		{Name: "Kung Pao Chicken", Price: 349, Quantity: 1, Size: "regular"},
		{Name: "Hot and Sour Soup", Price: 179, Quantity: 1, Size: "regular"},
	}
	require.NoError(t, s.CreateOrder(&order, items))
	require.NotZero(t, order.ID)
	assert.Equal(t, "placed", order.Status)

	got, err := s.GetOrder(order.ID)
	require.NoError(t, err)
	require.Len(t, got.Items, 2)
	for _, it := range got.Items {
		assert.Equal(t, order.ID, it.OrderID)
	}
	assert.Equal(t, "Golden Dragon", got.Restaurant.Name)
}
