package services

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/electro05/storefront/app/models"
)

func testRotator(interval, transition time.Duration) *HeroRotator {
	r := NewHeroRotatorWithRand(rand.New(rand.NewSource(3)))
	r.interval = interval
	r.transition = transition
	return r
}

func heroProducts(n int) []models.Product {
	products := make([]models.Product, 0, n)
	for i := 1; i <= n; i++ {
		products = append(products, models.Product{ID: i, Promo: 10})
	}
	return products
}

func TestNoTickerUnderTwoSlides(t *testing.T) {
	r := testRotator(time.Millisecond, 0)
	defer r.Stop()

	r.SetProducts(nil)
	assert.False(t, r.rotating())

	r.SetProducts(heroProducts(1))
	assert.False(t, r.rotating(), "a single slide has nothing to rotate to")

	frame, ok := r.Current()
	require.True(t, ok)
	assert.Equal(t, 1, frame.Count)
}

func TestNonPromoProductsExcluded(t *testing.T) {
	r := testRotator(time.Hour, 0)
	defer r.Stop()

	r.SetProducts([]models.Product{
		{ID: 1, Promo: 10},
		{ID: 2, Promo: 0},
		{ID: 3, Promo: 5},
	})

	frame, ok := r.Current()
	require.True(t, ok)
	assert.Equal(t, 2, frame.Count)
}

func TestRotationCyclesAllSlides(t *testing.T) {
	r := testRotator(5*time.Millisecond, time.Millisecond)
	defer r.Stop()

	ch, unsubscribe := r.Subscribe()
	defer unsubscribe()

	r.SetProducts(heroProducts(3))

	seen := map[int]bool{}
	deadline := time.After(2 * time.Second)
	for len(seen) < 3 {
		select {
		case frame := <-ch:
			if !frame.Transition {
				seen[frame.Index] = true
			}
		case <-deadline:
			t.Fatalf("only saw indices %v before timeout", seen)
		}
	}
}

func TestTransitionFramePrecedesAdvance(t *testing.T) {
	r := testRotator(5*time.Millisecond, time.Millisecond)
	defer r.Stop()

	ch, unsubscribe := r.Subscribe()
	defer unsubscribe()

	r.SetProducts(heroProducts(2))

	// The initial frame from SetProducts is not a transition.
	first := <-ch
	assert.False(t, first.Transition)

	deadline := time.After(2 * time.Second)
	for {
		select {
		case frame := <-ch:
			if frame.Transition {
				// Fade announced on the old slide; the next steady
				// frame must be the advanced one.
				assert.Equal(t, first.Index, frame.Index)
				return
			}
		case <-deadline:
			t.Fatal("never saw a transition frame")
		}
	}
}

func TestSetProductsRestartsSingleTicker(t *testing.T) {
	r := testRotator(time.Hour, 0)
	defer r.Stop()

	r.SetProducts(heroProducts(3))
	require.True(t, r.rotating())

	// Swapping the deck must not leak the previous ticker.
	r.SetProducts(heroProducts(4))
	assert.True(t, r.rotating())

	frame, ok := r.Current()
	require.True(t, ok)
	assert.Equal(t, 0, frame.Index, "deck swap resets to the first slide")
	assert.Equal(t, 4, frame.Count)

	// Shrinking below two slides stops rotation entirely.
	r.SetProducts(heroProducts(1))
	assert.False(t, r.rotating())
}

func TestStopIsIdempotent(t *testing.T) {
	r := testRotator(time.Hour, 0)
	r.SetProducts(heroProducts(2))
	require.True(t, r.rotating())

	r.Stop()
	assert.False(t, r.rotating())
	r.Stop()
}

func TestSelectJumpsWithoutFade(t *testing.T) {
	r := testRotator(time.Hour, 0)
	defer r.Stop()

	ch, unsubscribe := r.Subscribe()
	defer unsubscribe()

	r.SetProducts(heroProducts(3))
	<-ch // initial frame

	r.Select(2)
	frame := <-ch
	assert.Equal(t, 2, frame.Index)
	assert.False(t, frame.Transition)

	// Out-of-range selections are ignored.
	r.Select(99)
	current, _ := r.Current()
	assert.Equal(t, 2, current.Index)
}
