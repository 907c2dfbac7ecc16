package services

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/electro05/storefront/app/models"
	"github.com/electro05/storefront/pkg/collection"
)

const (
	// One slide every 4.5 seconds, with a 400ms fade before the swap.
	heroRotateInterval  = 4500 * time.Millisecond
	heroTransitionDelay = 400 * time.Millisecond
)

// HeroFrame is one state of the hero carousel, pushed to subscribers
// and streamed over the websocket feed.
type HeroFrame struct {
	Product    models.Product `json:"product"`
	Index      int            `json:"index"`
	Count      int            `json:"count"`
	Transition bool           `json:"transition"`
}

// HeroRotator cycles the home hero through the promo products. The
// rotation runs server-side so every subscriber sees the same slide.
//
// At most one ticker goroutine exists at any time: SetProducts and
// Stop cancel the previous loop before starting a new one.
type HeroRotator struct {
	mu         sync.Mutex
	rng        *rand.Rand
	interval   time.Duration
	transition time.Duration

	products []models.Product
	index    int
	fading   bool

	cancel context.CancelFunc
	subs   map[chan HeroFrame]struct{}

	// OnFrame, when set, is invoked for every published frame. The
	// websocket hub hooks in here.
	OnFrame func(HeroFrame)
}

// NewHeroRotator creates a stopped rotator with a time-seeded shuffle
// source. Call SetProducts to load slides and start rotating.
func NewHeroRotator() *HeroRotator {
	return NewHeroRotatorWithRand(rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewHeroRotatorWithRand injects the shuffle source for deterministic
// tests.
func NewHeroRotatorWithRand(rng *rand.Rand) *HeroRotator {
	return &HeroRotator{
		rng:        rng,
		interval:   heroRotateInterval,
		transition: heroTransitionDelay,
		subs:       make(map[chan HeroFrame]struct{}),
	}
}

// SetProducts replaces the slide deck. Only promo products qualify;
// they are shuffled once, the index resets to the first slide, and the
// rotation restarts. Fewer than two slides means nothing to rotate, so
// no ticker is started.
func (r *HeroRotator) SetProducts(products []models.Product) {
	slides := collection.Filter(products, models.Product.PromoEligible)

	r.mu.Lock()
	r.rng.Shuffle(len(slides), func(i, j int) {
		slides[i], slides[j] = slides[j], slides[i]
	})
	r.products = slides
	r.index = 0
	r.fading = false
	r.restartLocked()
	frame, ok := r.frameLocked()
	r.mu.Unlock()

	if ok {
		r.publish(frame)
	}
}

// Select jumps straight to slide i without a fade. Out-of-range
// indices are ignored.
func (r *HeroRotator) Select(i int) {
	r.mu.Lock()
	if i < 0 || i >= len(r.products) {
		r.mu.Unlock()
		return
	}
	r.index = i
	r.fading = false
	frame, _ := r.frameLocked()
	r.mu.Unlock()

	r.publish(frame)
}

// Stop tears down the rotation goroutine. Safe to call when already
// stopped.
func (r *HeroRotator) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
}

// Current returns the frame subscribers would see right now. ok is
// false when there are no slides.
func (r *HeroRotator) Current() (HeroFrame, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.frameLocked()
}

// Subscribe registers a frame channel. The returned func unsubscribes;
// call it when the consumer goes away.
func (r *HeroRotator) Subscribe() (<-chan HeroFrame, func()) {
	ch := make(chan HeroFrame, 8)
	r.mu.Lock()
	r.subs[ch] = struct{}{}
	r.mu.Unlock()

	return ch, func() {
		r.mu.Lock()
		delete(r.subs, ch)
		r.mu.Unlock()
	}
}

// rotating reports whether a ticker loop is live (tests).
func (r *HeroRotator) rotating() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cancel != nil
}

// restartLocked cancels any running loop and starts a fresh one when
// there are at least two slides. Callers hold r.mu.
func (r *HeroRotator) restartLocked() {
	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
	if len(r.products) < 2 {
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	r.cancel = cancel
	go r.loop(ctx)
}

func (r *HeroRotator) loop(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			// Fade out first, then swap the slide.
			r.mu.Lock()
			r.fading = true
			frame, ok := r.frameLocked()
			r.mu.Unlock()
			if ok {
				r.publish(frame)
			}

			select {
			case <-ctx.Done():
				return
			case <-time.After(r.transition):
			}

			r.mu.Lock()
			if len(r.products) > 0 {
				r.index = (r.index + 1) % len(r.products)
			}
			r.fading = false
			frame, ok = r.frameLocked()
			r.mu.Unlock()
			if ok {
				r.publish(frame)
			}
		}
	}
}

// frameLocked builds the current frame. Callers hold r.mu.
func (r *HeroRotator) frameLocked() (HeroFrame, bool) {
	if len(r.products) == 0 {
		return HeroFrame{}, false
	}
	return HeroFrame{
		Product:    r.products[r.index],
		Index:      r.index,
		Count:      len(r.products),
		Transition: r.fading,
	}, true
}

func (r *HeroRotator) publish(frame HeroFrame) {
	r.mu.Lock()
	onFrame := r.OnFrame
	subs := make([]chan HeroFrame, 0, len(r.subs))
	for ch := range r.subs {
		subs = append(subs, ch)
	}
	r.mu.Unlock()

	for _, ch := range subs {
		select {
		case ch <- frame:
		default:
			// Slow subscriber: skip the frame rather than block rotation.
		}
	}
	if onFrame != nil {
		onFrame(frame)
	}
}
