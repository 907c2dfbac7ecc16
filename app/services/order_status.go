package services

import "github.com/electro05/storefront/app/models"

// StepState is the rendering state of one fulfilment step on the
// tracking timeline.
type StepState string

const (
	StepCompleted StepState = "completed"
	StepCurrent   StepState = "current"
	StepUpcoming  StepState = "upcoming"
)

// statusOrder is the linear fulfilment path. Cancelled is not on it.
var statusOrder = []string{
	models.StatusPending,
	models.StatusProcessing,
	models.StatusShipped,
	models.StatusCompleted,
}

// TrackingStep is one entry of the tracking timeline.
type TrackingStep struct {
	Status string    `json:"status"`
	Label  string    `json:"label"`
	Day    string    `json:"day"`
	State  StepState `json:"state"`
}

// stepDefs are the four display steps in path order.
var stepDefs = []struct {
	status string
	label  string
	day    string
}{
	{models.StatusPending, "Commande confirmée", "Jour 1"},
	{models.StatusProcessing, "En cours de préparation", "Jour 2"},
	{models.StatusShipped, "Expédiée / En route", "Jour 3"},
	{models.StatusCompleted, "Livrée", "Jour 3-4"},
}

// statusMessages is the "last known step" line per order status.
var statusMessages = map[string]string{
	models.StatusCompleted:  "Colis livré en mains propres.",
	models.StatusShipped:    "Colis chargé dans le camion de livraison.",
	models.StatusProcessing: "Colis scanné au centre de tri national.",
	models.StatusPending:    "Commande validée, en attente de traitement.",
	models.StatusCancelled:  "Commande annulée.",
}

// StatusPosition returns the index of a status on the fulfilment path,
// or -1 for cancelled and unknown statuses.
func StatusPosition(status string) int {
	for i, s := range statusOrder {
		if s == status {
			return i
		}
	}
	return -1
}

// StepStateFor computes the timeline state of one step given the
// order's current status. A cancelled (or unknown) status places every
// step upcoming.
func StepStateFor(step, current string) StepState {
	stepIdx := StatusPosition(step)
	currentIdx := StatusPosition(current)

	switch {
	case stepIdx < currentIdx:
		return StepCompleted
	case stepIdx == currentIdx && currentIdx >= 0:
		return StepCurrent
	default:
		return StepUpcoming
	}
}

// TrackingSteps builds the full four-step timeline for an order status.
func TrackingSteps(current string) []TrackingStep {
	steps := make([]TrackingStep, 0, len(stepDefs))
	for _, def := range stepDefs {
		steps = append(steps, TrackingStep{
			Status: def.status,
			Label:  def.label,
			Day:    def.day,
			State:  StepStateFor(def.status, current),
		})
	}
	return steps
}

// StatusMessage returns the human status line for the tracking card.
func StatusMessage(status string) string {
	if msg, ok := statusMessages[status]; ok {
		return msg
	}
	return statusMessages[models.StatusPending]
}
