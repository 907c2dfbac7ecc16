package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/electro05/storefront/app/models"
	"github.com/electro05/storefront/pkg/http"
)

// ContactService forwards contact form submissions to the remote API.
type ContactService struct{}

func NewContactService() *ContactService {
	return &ContactService{}
}

// Send submits the message and returns the confirmation text. The
// contact endpoint answers {success, message, errors} rather than the
// data envelope.
func (s *ContactService) Send(ctx context.Context, input models.ContactInput) (string, error) {
	start := time.Now()

	resp, err := http.Post(apiURL("/contact")).
		Body(input).
		Timeout(apiTimeout).
		WithContext(ctx).
		Send()
	observe("contact", start, err)
	if err != nil {
		return "", fmt.Errorf("services: send contact message: %w", err)
	}

	var body struct {
		Success bool                   `json:"success"`
		Message string                 `json:"message"`
		Errors  map[string]interface{} `json:"errors"`
	}
	if err := json.Unmarshal(resp.Raw, &body); err != nil {
		return "", fmt.Errorf("services: decode contact response: %w", err)
	}

	if !resp.OK() || !body.Success {
		if len(body.Errors) > 0 {
			verrs := make(ValidationErrors, len(body.Errors))
			for field, v := range body.Errors {
				verrs[field] = firstMessage(v)
			}
			return "", verrs
		}
		msg := body.Message
		if msg == "" {
			msg = "l'envoi du message a échoué"
		}
		return "", &APIError{StatusCode: resp.StatusCode, Message: msg}
	}

	if body.Message == "" {
		body.Message = "Message envoyé avec succès."
	}
	return body.Message, nil
}
