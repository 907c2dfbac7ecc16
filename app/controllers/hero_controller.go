package controllers

import (
	"net/http"

	"github.com/electro05/storefront/app/services"
	"github.com/electro05/storefront/pkg/bind"
	"github.com/electro05/storefront/pkg/response"
	"github.com/electro05/storefront/pkg/ws"
)

// HeroController exposes the server-driven hero carousel: a snapshot
// endpoint, a manual slide selector, and the websocket feed.
type HeroController struct {
	rotator *services.HeroRotator
	hub     *ws.Hub
}

func NewHeroController(rotator *services.HeroRotator, hub *ws.Hub) *HeroController {
	return &HeroController{rotator: rotator, hub: hub}
}

// Current returns the slide every subscriber is seeing right now.
func (c *HeroController) Current(w http.ResponseWriter, r *http.Request) {
	frame, ok := c.rotator.Current()
	if !ok {
		response.Success(w, map[string]interface{}{"active": false})
		return
	}
	response.Success(w, map[string]interface{}{"active": true, "frame": frame})
}

// Select jumps the carousel to a chosen slide, skipping the fade.
func (c *HeroController) Select(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Index int `json:"index" validate:"gte=0"`
	}
	if errs, err := bind.JSON(r, &input); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	c.rotator.Select(input.Index)
	frame, _ := c.rotator.Current()
	response.Success(w, frame)
}

// Feed upgrades the connection and streams hero frames.
func (c *HeroController) Feed(w http.ResponseWriter, r *http.Request) {
	ws.Upgrade(w, r, c.hub)
}
