package validate_test

import (
	"testing"

	"github.com/electro05/storefront/app/models"
	"github.com/electro05/storefront/pkg/validate"
)

func TestContactInputValid(t *testing.T) {
	errs := validate.Struct(models.ContactInput{
		Name:    "Yassine",
		Email:   "yassine@example.com",
		Subject: "Commande",
		Message: "Bonjour, j'ai une question sur ma commande.",
	})
	if validate.HasErrors(errs) {
		t.Errorf("expected no errors, got: %v", errs)
	}
}

func TestContactInputRejections(t *testing.T) {
	errs := validate.Struct(models.ContactInput{
		Name:    "Ab",
		Email:   "not-an-email",
		Subject: "OK",
		Message: "trop court",
	})
	for _, field := range []string{"name", "email", "subject", "message"} {
		if _, ok := errs[field]; !ok {
			t.Errorf("expected %s to fail validation", field)
		}
	}
}

func TestRequiredFails(t *testing.T) {
	errs := validate.Struct(models.ContactInput{})
	if !validate.HasErrors(errs) {
		t.Error("expected required errors")
	}
	if _, ok := errs["name"]; !ok {
		t.Error("expected name to be required")
	}
	if _, ok := errs["email"]; !ok {
		t.Error("expected email to be required")
	}
}

func TestConfirmedRule(t *testing.T) {
	input := models.PasswordInput{
		CurrentPassword:         "old-password",
		NewPassword:             "brand-new-pass",
		NewPasswordConfirmation: "different",
	}
	if errs := validate.Struct(input); !validate.HasErrors(errs) {
		t.Error("expected confirmation mismatch to fail")
	}

	input.NewPasswordConfirmation = "brand-new-pass"
	if errs := validate.Struct(input); validate.HasErrors(errs) {
		t.Errorf("expected matching confirmation to pass: %v", errs)
	}
}

func TestNullableSkipsRules(t *testing.T) {
	// Phone is nullable with min=6: empty passes, short non-empty fails.
	in := models.ProfileInput{Name: "Yassine"}
	if errs := validate.Struct(in); validate.HasErrors(errs) {
		t.Errorf("expected empty nullable fields to pass: %v", errs)
	}
	in.Phone = "061"
	if errs := validate.Struct(in); !validate.HasErrors(errs) {
		t.Error("expected short phone to fail")
	}
}

func TestInRule(t *testing.T) {
	if errs := validate.Struct(models.PreferenceInput{Theme: "purple"}); !validate.HasErrors(errs) {
		t.Error("expected unknown theme to fail")
	}
	if errs := validate.Struct(models.PreferenceInput{Theme: "dark", Language: "ar"}); validate.HasErrors(errs) {
		t.Errorf("expected dark/ar to pass: %v", errs)
	}
}

func TestNumericBounds(t *testing.T) {
	if errs := validate.Struct(models.CartItemInput{ProductID: 3, Quantity: 0}); !validate.HasErrors(errs) {
		t.Error("expected quantity 0 to fail")
	}
	if errs := validate.Struct(models.CartItemInput{ProductID: 3, Quantity: 2}); validate.HasErrors(errs) {
		t.Errorf("expected quantity 2 to pass: %v", errs)
	}
}

func TestMergeLocalWins(t *testing.T) {
	local := map[string]string{"email": "format invalide"}
	server := map[string]string{"email": "already taken", "name": "server says no"}

	merged := validate.Merge(local, server)
	if merged["email"] != "format invalide" {
		t.Errorf("expected local message to win, got %q", merged["email"])
	}
	if merged["name"] != "server says no" {
		t.Errorf("expected server-only field to carry over, got %q", merged["name"])
	}
}
