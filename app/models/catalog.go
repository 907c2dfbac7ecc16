// Package models holds the client-side mirrors of the records the
// remote storefront API owns. They carry no lifecycle of their own:
// the storefront reads them, reshapes them for display, and proposes
// mutations the API validates and persists.
package models

// Product mirrors a catalogue product. Promo is a discount percent;
// a product is promotion-eligible iff Promo > 0.
type Product struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Image       string    `json:"image"`
	Promo       int       `json:"promo"`
	IsFeatured  bool      `json:"is_featured"`
	CategoryID  int       `json:"category_id"`
	Category    *Category `json:"category,omitempty"`
}

// PromoEligible reports whether the product carries an active discount.
func (p Product) PromoEligible() bool {
	return p.Promo > 0
}

// InRootCategory reports whether the product belongs to the given root
// category, either directly or through its category's parent.
func (p Product) InRootCategory(rootID int) bool {
	if p.Category == nil {
		return p.CategoryID == rootID
	}
	if p.Category.ID == rootID {
		return true
	}
	return p.Category.ParentID != nil && *p.Category.ParentID == rootID
}

// Category is a node in the two-level category tree. Root categories
// have a nil ParentID; subcategories reference exactly one root.
// Children is derived client-side and may be absent in API payloads.
type Category struct {
	ID          int        `json:"id"`
	Name        string     `json:"name"`
	Slug        string     `json:"slug"`
	ParentID    *int       `json:"parent_id"`
	Parent      *Category  `json:"parent,omitempty"`
	Description string     `json:"description,omitempty"`
	Image       string     `json:"image,omitempty"`
	Children    []Category `json:"children,omitempty"`
}

// IsRoot reports whether the category has no parent.
func (c Category) IsRoot() bool {
	return c.ParentID == nil
}

// Brand is a partner brand shown in the marquee strip. Name is the
// unique key; de-duplication compares it trimmed and lowercased.
type Brand struct {
	Name string `json:"name"`
	Logo string `json:"logo"`
}

// Location is a physical store, consumed only by the map display.
type Location struct {
	Name string  `json:"name"`
	City string  `json:"city"`
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
}
