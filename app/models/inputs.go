package models

// Form inputs validated locally before any network call is made.
// Validation rules live in the struct tags (pkg/validate); the same
// field→message map shape is used for server-reported 422 errors, so
// both sources merge into one display mechanism.

// ContactInput is the contact/support form payload.
type ContactInput struct {
	Name    string `json:"name"    validate:"required,min=3"`
	Email   string `json:"email"   validate:"required,email"`
	Subject string `json:"subject" validate:"required,min=3"`
	Message string `json:"message" validate:"required,min=10"`
}

// ProfileInput is the account profile edit payload. Email is absent:
// it is immutable post-registration.
type ProfileInput struct {
	Name    string `json:"name"    validate:"required,min=3"`
	Phone   string `json:"phone"   validate:"nullable,min=6"`
	City    string `json:"city"    validate:"nullable,min=2"`
	Address string `json:"address" validate:"nullable,min=5"`
}

// PasswordInput is the password-change payload. The confirmation must
// be bit-identical to the new password before anything is sent; the
// server repeats the check.
type PasswordInput struct {
	CurrentPassword         string `json:"current_password"          validate:"required"`
	NewPassword             string `json:"new_password"              validate:"required,min=8"`
	NewPasswordConfirmation string `json:"new_password_confirmation" validate:"confirmed"`
}

// LoginInput carries the sign-in form. Credentials pass straight
// through to the remote API, which issues the token.
type LoginInput struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UnlockInput carries a submitted promotion unlock code.
type UnlockInput struct {
	Code string `json:"code" validate:"required"`
}

// CartItemInput adds or updates one cart line.
type CartItemInput struct {
	ProductID int `json:"product_id" validate:"required,gte=1"`
	Quantity  int `json:"quantity"   validate:"required,gte=1"`
}

// PreferenceInput sets a session display preference.
type PreferenceInput struct {
	Theme    string `json:"theme"    validate:"nullable,in=light,dark"`
	Language string `json:"language" validate:"nullable,in=fr,en,ar"`
}

// CategoryInput is the admin category create/update payload. The image
// travels separately as a multipart file part.
type CategoryInput struct {
	Name        string `json:"name"        validate:"required,min=2"`
	Slug        string `json:"slug"        validate:"required,min=2"`
	ParentID    *int   `json:"parent_id"   validate:"nullable"`
	Description string `json:"description" validate:"nullable"`
}
