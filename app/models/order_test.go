package models_test

import (
	"testing"

	"github.com/electro05/storefront/app/models"
)

func TestFormatOrderRef(t *testing.T) {
	if got := models.FormatOrderRef(5); got != "#ECO-000005" {
		t.Errorf("FormatOrderRef(5) = %q", got)
	}
	if got := models.FormatOrderRef(1234567); got != "#ECO-1234567" {
		t.Errorf("FormatOrderRef(1234567) = %q", got)
	}
}

func TestParseOrderRef(t *testing.T) {
	cases := []struct {
		in   string
		want int
		ok   bool
	}{
		{"42", 42, true},
		{"#ECO-000042", 42, true},
		{"eco 0005", 5, true},
		{"  #ECO-000123  ", 123, true},
		{"", 0, false},
		{"#ECO-", 0, false},
		{"abc", 0, false},
	}
	for _, c := range cases {
		got, ok := models.ParseOrderRef(c.in)
		if ok != c.ok || got != c.want {
			t.Errorf("ParseOrderRef(%q) = (%d, %v), want (%d, %v)", c.in, got, ok, c.want, c.ok)
		}
	}
}

func TestParseFormatRoundTrip(t *testing.T) {
	for _, id := range []int{1, 42, 999999} {
		got, ok := models.ParseOrderRef(models.FormatOrderRef(id))
		if !ok || got != id {
			t.Errorf("round trip for %d gave (%d, %v)", id, got, ok)
		}
	}
}

func TestCartTotals(t *testing.T) {
	cart := models.Cart{Items: []models.CartItem{
		{ProductID: 1, Price: 199.5, Quantity: 2},
		{ProductID: 2, Price: 50, Quantity: 1},
	}}
	if got := cart.Total(); got != 449 {
		t.Errorf("Total() = %v", got)
	}
	if got := cart.Count(); got != 3 {
		t.Errorf("Count() = %d", got)
	}
}

func TestProductInRootCategory(t *testing.T) {
	root := 7
	sub := models.Category{ID: 12, ParentID: &root}

	p := models.Product{CategoryID: 12, Category: &sub}
	if !p.InRootCategory(7) {
		t.Error("expected match through parent")
	}
	if !p.InRootCategory(12) {
		t.Error("expected match on own category")
	}
	if p.InRootCategory(8) {
		t.Error("expected no match for unrelated root")
	}
}
