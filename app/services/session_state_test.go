package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/electro05/storefront/app/models"
	"github.com/electro05/storefront/pkg/session"
)

func testState() *State {
	return NewState(session.New())
}

func TestCartMergeOnReAdd(t *testing.T) {
	st := testState()

	st.AddToCart(models.CartItem{ProductID: 1, Name: "TV", Price: 4999, Quantity: 1})
	st.AddToCart(models.CartItem{ProductID: 1, Name: "TV", Price: 4999, Quantity: 2})
	st.AddToCart(models.CartItem{ProductID: 2, Name: "Phone", Price: 1999, Quantity: 1})

	cart := st.Cart()
	require.Len(t, cart.Items, 2, "re-adding merges into the existing line")
	assert.Equal(t, 3, cart.Items[0].Quantity)
	assert.Equal(t, 4, cart.Count())
}

func TestCartQuantityPinAndRemove(t *testing.T) {
	st := testState()
	st.AddToCart(models.CartItem{ProductID: 1, Quantity: 2})

	st.SetCartQuantity(1, 5)
	assert.Equal(t, 5, st.Cart().Items[0].Quantity)

	st.SetCartQuantity(1, 0)
	assert.Empty(t, st.Cart().Items, "zero quantity drops the line")

	st.AddToCart(models.CartItem{ProductID: 3, Quantity: 1})
	st.RemoveFromCart(3)
	assert.Empty(t, st.Cart().Items)
}

func TestClearCart(t *testing.T) {
	st := testState()
	st.AddToCart(models.CartItem{ProductID: 1, Quantity: 2})
	st.ClearCart()
	assert.Zero(t, st.Cart().Count())
}

func TestWishlistToggle(t *testing.T) {
	st := testState()

	assert.True(t, st.ToggleWishlist(7), "first toggle saves")
	assert.True(t, st.InWishlist(7))

	assert.False(t, st.ToggleWishlist(7), "second toggle removes")
	assert.False(t, st.InWishlist(7))
	assert.Empty(t, st.Wishlist())
}

func TestWishlistKeepsInsertionOrder(t *testing.T) {
	st := testState()
	st.ToggleWishlist(3)
	st.ToggleWishlist(1)
	st.ToggleWishlist(2)
	assert.Equal(t, []int{3, 1, 2}, st.Wishlist())
}

func TestAuthLifecycle(t *testing.T) {
	st := testState()
	assert.Empty(t, st.Token())

	st.Login("tok-123", models.User{ID: 1, Name: "Yassine", Role: models.RoleCustomer})
	assert.Equal(t, "tok-123", st.Token())
	user, ok := st.User()
	require.True(t, ok)
	assert.Equal(t, "Yassine", user.Name)

	// Logout wipes everything, cart included.
	st.AddToCart(models.CartItem{ProductID: 1, Quantity: 1})
	st.Logout()
	assert.Empty(t, st.Token())
	assert.Zero(t, st.Cart().Count())
}

func TestPreferenceDefaults(t *testing.T) {
	st := testState()
	assert.Equal(t, "light", st.Theme())
	assert.Equal(t, "fr", st.Language())

	st.SetTheme("dark")
	st.SetLanguage("ar")
	assert.Equal(t, "dark", st.Theme())
	assert.Equal(t, "ar", st.Language())
}

func TestPromoUnlockIsOneWay(t *testing.T) {
	st := testState()
	assert.False(t, st.PromoUnlocked())

	st.UnlockPromos()
	assert.True(t, st.PromoUnlocked())
}
