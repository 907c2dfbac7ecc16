package services

import (
	"math/rand"
	"strings"
	"time"

	"github.com/electro05/storefront/app/models"
	"github.com/electro05/storefront/config"
	"github.com/electro05/storefront/pkg/metrics"
)

// PromoGate implements the promotions reveal. Each visitor starts
// locked and sees only the featured teaser subset; submitting the
// unlock code switches the session to the full promo catalog. The
// transition is one-way per session, the unlocked flag itself lives in
// the session store.
type PromoGate struct {
	rng *rand.Rand
}

// NewPromoGate creates a gate with a time-seeded shuffle source.
func NewPromoGate() *PromoGate {
	return NewPromoGateWithRand(rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewPromoGateWithRand creates a gate with an injected source so tests
// can get deterministic shuffles.
func NewPromoGateWithRand(rng *rand.Rand) *PromoGate {
	return &PromoGate{rng: rng}
}

// TryUnlock checks a submitted code against the configured unlock
// token. Comparison is case-insensitive on the submission side and
// surrounding whitespace is ignored. A wrong code changes nothing.
func (g *PromoGate) TryUnlock(code string) bool {
	ok := strings.ToUpper(strings.TrimSpace(code)) == config.PromoUnlockCode()
	if ok {
		metrics.PromoUnlocks.WithLabelValues("accepted").Inc()
	} else {
		metrics.PromoUnlocks.WithLabelValues("rejected").Inc()
	}
	return ok
}

// Visible filters products to the set the visitor may see. Locked
// sessions get the featured promo teasers only; unlocked sessions get
// every promo product. categoryID > 0 additionally narrows to a root
// category (a product matches on its own category or on its parent).
// The result is shuffled.
func (g *PromoGate) Visible(products []models.Product, unlocked bool, categoryID int) []models.Product {
	visible := make([]models.Product, 0, len(products))
	for _, p := range products {
		if !p.PromoEligible() {
			continue
		}
		if !unlocked && !p.IsFeatured {
			continue
		}
		if categoryID > 0 && !p.InRootCategory(categoryID) {
			continue
		}
		visible = append(visible, p)
	}

	g.rng.Shuffle(len(visible), func(i, j int) {
		visible[i], visible[j] = visible[j], visible[i]
	})
	return visible
}

// PromoCategories returns the unique root categories of the promo set
// in first-seen order, for the category filter chips.
func PromoCategories(products []models.Product) []models.Category {
	seen := make(map[int]bool)
	var roots []models.Category

	for _, p := range products {
		if !p.PromoEligible() || p.Category == nil {
			continue
		}
		// Narrowing happens at root level; lift subcategories to their
		// parent when the payload carries it.
		root := *p.Category
		if root.ParentID != nil && p.Category.Parent != nil {
			root = *p.Category.Parent
		}
		if seen[root.ID] {
			continue
		}
		seen[root.ID] = true
		roots = append(roots, root)
	}
	return roots
}
