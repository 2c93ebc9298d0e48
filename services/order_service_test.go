package services

import (
	"testing"
	"time"

	"github.com/ColdCodePlay/FoodFusion/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisplayCode(t *testing.T) {
	assert.Equal(t, "ORD00000007", DisplayCode(7))
	assert.Equal(t, "ORD00012345", DisplayCode(12345))
}

func TestCheckoutSnapshotsCart(t *testing.T) {
	f := newStorefront(t)
	carts := NewCartService(f.store)
	orders := NewOrderService(f.store)

	_, err := carts.Add("7", addIn(f, f.wrap, 2, "large", "extra cheese"))
	require.NoError(t, err)
	_, err = carts.Add("7", addIn(f, f.fries, 1, "regular", ""))
	require.NoError(t, err)

	placed, err := orders.Checkout("7", &CheckoutIn{
		DeliveryAddress: "221B Baker Street",
		PaymentMethod:   "Cash on Delivery",
	})
	require.NoError(t, err)

	require.Len(t, placed.Items, 2)
	assert.Equal(t, "Paneer Wrap", placed.Items[0].Name)
	assert.Equal(t, int64(150), placed.Items[0].Price)
	assert.Equal(t, 2, placed.Items[0].Quantity)
	assert.Equal(t, "large", placed.Items[0].Size)
	assert.Equal(t, "extra cheese", placed.Items[0].Extras)
	assert.Equal(t, "Masala Fries", placed.Items[1].Name)

	// subtotal 390, delivery 30, service 20, tax 39
	assert.Equal(t, int64(479), placed.Total)
	assert.Equal(t, "placed", placed.Status)
	assert.Equal(t, DisplayCode(placed.ID), placed.Code)

	// The persisted order carries exactly the same items.
	stored, err := f.store.GetOrder(placed.ID)
	require.NoError(t, err)
	assert.Len(t, stored.Items, 2)

	// The cart is gone immediately after checkout.
	cart, err := carts.Get("7")
	require.NoError(t, err)
	assert.Nil(t, cart)
}

func TestCheckoutEmptyCart(t *testing.T) {
	f := newStorefront(t)
	orders := NewOrderService(f.store)

	_, err := orders.Checkout("7", &CheckoutIn{
		DeliveryAddress: "somewhere",
		PaymentMethod:   "card",
	})
	assert.ErrorIs(t, err, ErrEmptyCart)

	rows, err := f.store.ListOrdersByUser("7")
	require.NoError(t, err)
	assert.Empty(t, rows, "no order may exist after a rejected checkout")
}

func TestCheckoutValidatesBeforeMutating(t *testing.T) {
	f := newStorefront(t)
	carts := NewCartService(f.store)
	orders := NewOrderService(f.store)

	_, err := carts.Add("7", addIn(f, f.wrap, 1, "regular", ""))
	require.NoError(t, err)

	_, err = orders.Checkout("7", &CheckoutIn{DeliveryAddress: "  ", PaymentMethod: "card"})
	assert.ErrorIs(t, err, ErrValidation)

	cart, err := carts.Get("7")
	require.NoError(t, err)
	require.NotNil(t, cart, "cart survives a rejected checkout")
	assert.Len(t, cart.Items, 1)
}

func TestListForUserRequiresIdentity(t *testing.T) {
	f := newStorefront(t)
	orders := NewOrderService(f.store)

	_, err := orders.ListForUser(entity.GuestUserID)
	assert.ErrorIs(t, err, ErrUnauthorized)
	_, err = orders.ListForUser("")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestListForUserNewestFirst(t *testing.T) {
	f := newStorefront(t)
	carts := NewCartService(f.store)
	orders := NewOrderService(f.store)

	for i := 0; i < 2; i++ {
		_, err := carts.Add("7", addIn(f, f.wrap, 1, "regular", ""))
		require.NoError(t, err)
		_, err = orders.Checkout("7", &CheckoutIn{DeliveryAddress: "a", PaymentMethod: "card"})
		require.NoError(t, err)
	}

	rows, err := orders.ListForUser("7")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Greater(t, rows[0].ID, rows[1].ID)
	assert.Equal(t, DisplayCode(rows[0].ID), rows[0].Code)
	require.NotNil(t, rows[0].Restaurant)
	assert.Equal(t, "Spice Junction", rows[0].Restaurant.Name)
}

func TestTrackAuthorization(t *testing.T) {
	f := newStorefront(t)
	carts := NewCartService(f.store)
	orders := NewOrderService(f.store)

	_, err := carts.Add("7", addIn(f, f.wrap, 1, "regular", ""))
	require.NoError(t, err)
	placed, err := orders.Checkout("7", &CheckoutIn{DeliveryAddress: "a", PaymentMethod: "card"})
	require.NoError(t, err)

	_, err = orders.Track(placed.ID, "8")
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = orders.Track(999, "7")
	assert.ErrorIs(t, err, ErrNotFound)

	detail, err := orders.Track(placed.ID, "7")
	require.NoError(t, err)
	assert.Equal(t, placed.Code, detail.Code)
	assert.Len(t, detail.Items, 1)
}

func TestTrackVirtualStatusProgression(t *testing.T) {
	f := newStorefront(t)
	carts := NewCartService(f.store)
	orders := NewOrderService(f.store)

	_, err := carts.Add("7", addIn(f, f.wrap, 1, "regular", ""))
	require.NoError(t, err)
	placed, err := orders.Checkout("7", &CheckoutIn{DeliveryAddress: "a", PaymentMethod: "card"})
	require.NoError(t, err)

	created := placed.CreatedAt
	cases := []struct {
		elapsed time.Duration
		want    string
	}{
		{0, StatusOrderReceived},
		{6 * time.Minute, StatusPreparing},
		{16 * time.Minute, StatusOutForDelivery},
		{31 * time.Minute, StatusDelivered},
	}
	for _, tc := range cases {
		orders.now = func() time.Time { return created.Add(tc.elapsed) }
		detail, err := orders.Track(placed.ID, "7")
		require.NoError(t, err)
		assert.Equal(t, tc.want, detail.Tracking.Status, "elapsed %v", tc.elapsed)
		assert.Equal(t, created.Add(45*time.Minute), detail.Tracking.EstimatedDeliveryTime)
		assert.Equal(t, created.Add(tc.elapsed), detail.Tracking.UpdatedAt)
	}
}
