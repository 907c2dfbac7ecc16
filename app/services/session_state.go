package services

import (
	"github.com/electro05/storefront/app/models"
	"github.com/electro05/storefront/pkg/collection"
	"github.com/electro05/storefront/pkg/session"
)

// Session keys. Each concern has exactly one key and one mutation
// entry point below; nothing else writes these.
const (
	keyCart          = "cart"
	keyWishlist      = "wishlist"
	keyAuthToken     = "auth_token"
	keyAuthUser      = "auth_user"
	keyTheme         = "theme"
	keyLanguage      = "language"
	keyPromoUnlocked = "promo_unlocked"
)

// State wraps a visitor session with typed accessors for the
// storefront's client-side state.
type State struct {
	sess *session.Session
}

// NewState wraps an existing session handle.
func NewState(sess *session.Session) *State {
	return &State{sess: sess}
}

// Session exposes the underlying handle so handlers can Save it.
func (st *State) Session() *session.Session { return st.sess }

// ─── Cart ─────────────────────────────────────────────────────────────────────

// Cart returns the current cart, empty when none is stored.
func (st *State) Cart() models.Cart {
	var cart models.Cart
	st.sess.GetJSON(keyCart, &cart)
	return cart
}

// AddToCart adds qty units of a product. Re-adding an existing product
// merges into its quantity.
func (st *State) AddToCart(item models.CartItem) {
	cart := st.Cart()
	for i := range cart.Items {
		if cart.Items[i].ProductID == item.ProductID {
			cart.Items[i].Quantity += item.Quantity
			st.sess.Set(keyCart, cart)
			return
		}
	}
	cart.Items = append(cart.Items, item)
	st.sess.Set(keyCart, cart)
}

// SetCartQuantity pins a line to an exact quantity; zero or below
// removes the line.
func (st *State) SetCartQuantity(productID, qty int) {
	cart := st.Cart()
	for i := range cart.Items {
		if cart.Items[i].ProductID != productID {
			continue
		}
		if qty <= 0 {
			cart.Items = append(cart.Items[:i], cart.Items[i+1:]...)
		} else {
			cart.Items[i].Quantity = qty
		}
		break
	}
	st.sess.Set(keyCart, cart)
}

// RemoveFromCart drops a product line entirely.
func (st *State) RemoveFromCart(productID int) {
	st.SetCartQuantity(productID, 0)
}

// ClearCart empties the cart.
func (st *State) ClearCart() {
	st.sess.Set(keyCart, models.Cart{})
}

// ─── Wishlist ─────────────────────────────────────────────────────────────────

// Wishlist returns the saved product ids in insertion order.
func (st *State) Wishlist() []int {
	var ids []int
	st.sess.GetJSON(keyWishlist, &ids)
	return ids
}

// ToggleWishlist adds the product when absent, removes it when
// present, and reports the new membership.
func (st *State) ToggleWishlist(productID int) bool {
	ids := st.Wishlist()
	for i, id := range ids {
		if id == productID {
			st.sess.Set(keyWishlist, append(ids[:i], ids[i+1:]...))
			return false
		}
	}
	st.sess.Set(keyWishlist, append(ids, productID))
	return true
}

// InWishlist reports membership.
func (st *State) InWishlist(productID int) bool {
	return collection.Contains(st.Wishlist(), func(id int) bool {
		return id == productID
	})
}

// ─── Auth ─────────────────────────────────────────────────────────────────────

// Login stores the API-issued token and the user record.
func (st *State) Login(token string, user models.User) {
	st.sess.Set(keyAuthToken, token)
	st.sess.Set(keyAuthUser, user)
}

// Logout wipes the whole session, not just the auth keys: cart and
// preferences are per-visit state and follow the visitor out.
func (st *State) Logout() {
	st.sess.Invalidate()
}

// Token returns the stored bearer token, empty when anonymous.
func (st *State) Token() string {
	token, _ := st.sess.GetString(keyAuthToken)
	return token
}

// User returns the stored user record.
func (st *State) User() (models.User, bool) {
	var user models.User
	ok := st.sess.GetJSON(keyAuthUser, &user)
	return user, ok
}

// SetUser refreshes the stored user after a profile update.
func (st *State) SetUser(user models.User) {
	st.sess.Set(keyAuthUser, user)
}

// ─── Preferences ──────────────────────────────────────────────────────────────

// Theme returns the stored theme, defaulting to light.
func (st *State) Theme() string {
	if theme, ok := st.sess.GetString(keyTheme); ok {
		return theme
	}
	return "light"
}

// SetTheme stores the theme preference.
func (st *State) SetTheme(theme string) {
	st.sess.Set(keyTheme, theme)
}

// Language returns the stored language, defaulting to French.
func (st *State) Language() string {
	if lang, ok := st.sess.GetString(keyLanguage); ok {
		return lang
	}
	return "fr"
}

// SetLanguage stores the language preference.
func (st *State) SetLanguage(lang string) {
	st.sess.Set(keyLanguage, lang)
}

// ─── Promo gate ───────────────────────────────────────────────────────────────

// PromoUnlocked reports whether this session has revealed the promos.
func (st *State) PromoUnlocked() bool {
	return st.sess.GetBool(keyPromoUnlocked)
}

// UnlockPromos flips the one-way promo flag. There is intentionally no
// way to lock a session again.
func (st *State) UnlockPromos() {
	st.sess.Set(keyPromoUnlocked, true)
}
