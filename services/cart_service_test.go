package services

import (
	"testing"

	"github.com/ColdCodePlay/FoodFusion/entity"
	"github.com/ColdCodePlay/FoodFusion/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type storefrontFixture struct {
	store *repository.MemStore

	restA entity.Restaurant // delivery fee ₹30
	restB entity.Restaurant // delivery fee Free

	wrap  entity.MenuItem // restA, 150
	fries entity.MenuItem // restA, 90
	ramen entity.MenuItem // restB, 200
}

func newStorefront(t *testing.T) *storefrontFixture {
	t.Helper()
	f := &storefrontFixture{store: repository.NewMemStore()}

	f.restA = entity.Restaurant{Name: "Spice Junction", DeliveryFee: "₹30"}
	require.NoError(t, f.store.CreateRestaurant(&f.restA))
	f.restB = entity.Restaurant{Name: "Golden Dragon", DeliveryFee: "Free"}
	require.NoError(t, f.store.CreateRestaurant(&f.restB))

	f.wrap = entity.MenuItem{RestaurantID: f.restA.ID, Name: "Paneer Wrap", Price: 150}
	require.NoError(t, f.store.CreateMenuItem(&f.wrap))
	f.fries = entity.MenuItem{RestaurantID: f.restA.ID, Name: "Masala Fries", Price: 90}
	require.NoError(t, f.store.CreateMenuItem(&f.fries))
	f.ramen = entity.MenuItem{RestaurantID: f.restB.ID, Name: "Dragon Ramen", Price: 200}
	require.NoError(t, f.store.CreateMenuItem(&f.ramen))

	return f
}

func addIn(f *storefrontFixture, mi entity.MenuItem, qty int, size, extras string) *AddToCartIn {
	return &AddToCartIn{
		RestaurantID: mi.RestaurantID,
		MenuItemID:   mi.ID,
		Quantity:     qty,
		Size:         size,
		Extras:       extras,
	}
}

func TestAddMergesMatchingLines(t *testing.T) {
	f := newStorefront(t)
	svc := NewCartService(f.store)

	for _, qty := range []int{1, 2, 3} {
		_, err := svc.Add("guest", addIn(f, f.wrap, qty, "large", "extra cheese"))
		require.NoError(t, err)
	}

	cart, err := svc.Get("guest")
	require.NoError(t, err)
	require.NotNil(t, cart)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 6, cart.Items[0].Quantity)
	assert.Equal(t, "Paneer Wrap", cart.Items[0].MenuItem.Name)
}

func TestAddDistinctTupleCreatesNewLine(t *testing.T) {
	f := newStorefront(t)
	svc := NewCartService(f.store)

	_, err := svc.Add("guest", addIn(f, f.wrap, 1, "large", "extra cheese"))
	require.NoError(t, err)
	_, err = svc.Add(entity.GuestUserID, addIn(f, f.wrap, 1, "large", ""))
	require.NoError(t, err)
	cart, err := svc.Add("guest", addIn(f, f.fries, 1, "large", "extra cheese"))
	require.NoError(t, err)

	assert.Len(t, cart.Items, 3)
}

func TestAddEmptySizeMergesWithRegular(t *testing.T) {
	f := newStorefront(t)
	svc := NewCartService(f.store)

	_, err := svc.Add("guest", addIn(f, f.wrap, 1, "", ""))
	require.NoError(t, err)
	cart, err := svc.Add("guest", addIn(f, f.wrap, 1, "regular", ""))
	require.NoError(t, err)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)
	assert.Equal(t, "regular", cart.Items[0].Size)
}

func TestSwitchingRestaurantReplacesCart(t *testing.T) {
	f := newStorefront(t)
	svc := NewCartService(f.store)

	_, err := svc.Add("guest", addIn(f, f.wrap, 2, "regular", ""))
	require.NoError(t, err)
	_, err = svc.Add("guest", addIn(f, f.fries, 1, "regular", ""))
	require.NoError(t, err)

	cart, err := svc.Add("guest", addIn(f, f.ramen, 1, "regular", ""))
	require.NoError(t, err)

	assert.Equal(t, f.restB.ID, cart.RestaurantID)
	require.Len(t, cart.Items, 1, "no lines carry over from the old restaurant")
	assert.Equal(t, f.ramen.ID, cart.Items[0].MenuItemID)
}

func TestUpdateQuantityFloorRemovesLine(t *testing.T) {
	for _, qty := range []int{0, -1} {
		f := newStorefront(t)
		svc := NewCartService(f.store)

		cart, err := svc.Add("guest", addIn(f, f.wrap, 2, "regular", ""))
		require.NoError(t, err)
		itemID := cart.Items[0].ID

		cart, err = svc.UpdateQuantity("guest", itemID, qty)
		require.NoError(t, err)
		assert.Empty(t, cart.Items, "quantity %d must delete the line", qty)

		cart, err = svc.Get("guest")
		require.NoError(t, err)
		assert.Empty(t, cart.Items)
	}
}

func TestUpdateQuantitySetsValue(t *testing.T) {
	f := newStorefront(t)
	svc := NewCartService(f.store)

	cart, err := svc.Add("guest", addIn(f, f.wrap, 2, "regular", ""))
	require.NoError(t, err)

	cart, err = svc.UpdateQuantity("guest", cart.Items[0].ID, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, cart.Items[0].Quantity)
}

func TestUpdateQuantityUnknownLine(t *testing.T) {
	f := newStorefront(t)
	svc := NewCartService(f.store)

	_, err := svc.UpdateQuantity("guest", 999, 2)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRemoveIsIdempotent(t *testing.T) {
	f := newStorefront(t)
	svc := NewCartService(f.store)

	cart, err := svc.Add("guest", addIn(f, f.wrap, 1, "regular", ""))
	require.NoError(t, err)
	itemID := cart.Items[0].ID

	cart, err = svc.Remove("guest", itemID)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)

	_, err = svc.Remove("guest", itemID)
	assert.NoError(t, err, "removing an absent line is not an error")
}

func TestGetAbsentCart(t *testing.T) {
	f := newStorefront(t)
	svc := NewCartService(f.store)

	cart, err := svc.Get("guest")
	assert.NoError(t, err)
	assert.Nil(t, cart)
}

func TestAddUnknownRestaurant(t *testing.T) {
	f := newStorefront(t)
	svc := NewCartService(f.store)

	_, err := svc.Add("guest", &AddToCartIn{RestaurantID: 999, MenuItemID: f.wrap.ID, Quantity: 1})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAddUnknownMenuItem(t *testing.T) {
	f := newStorefront(t)
	svc := NewCartService(f.store)

	_, err := svc.Add("guest", &AddToCartIn{RestaurantID: f.restA.ID, MenuItemID: 999, Quantity: 1})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAddMenuItemFromOtherRestaurant(t *testing.T) {
	f := newStorefront(t)
	svc := NewCartService(f.store)

	_, err := svc.Add("guest", &AddToCartIn{RestaurantID: f.restA.ID, MenuItemID: f.ramen.ID, Quantity: 1})
	assert.ErrorIs(t, err, ErrValidation)

	// Validation failed before any mutation: no cart was created.
	cart, err := svc.Get("guest")
	require.NoError(t, err)
	assert.Nil(t, cart)
}

func TestClearWithoutCart(t *testing.T) {
	f := newStorefront(t)
	svc := NewCartService(f.store)

	assert.NoError(t, svc.Clear("guest"))
}

func TestCartsAreScopedPerUser(t *testing.T) {
	f := newStorefront(t)
	svc := NewCartService(f.store)

	_, err := svc.Add("7", addIn(f, f.wrap, 1, "regular", ""))
	require.NoError(t, err)
	_, err = svc.Add("guest", addIn(f, f.ramen, 1, "regular", ""))
	require.NoError(t, err)

	cart, err := svc.Get("7")
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, f.wrap.ID, cart.Items[0].MenuItemID)
	assert.Equal(t, f.restA.ID, cart.RestaurantID)
}
