package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/electro05/storefront/app/models"
)

func TestStatusPosition(t *testing.T) {
	assert.Equal(t, 0, StatusPosition(models.StatusPending))
	assert.Equal(t, 1, StatusPosition(models.StatusProcessing))
	assert.Equal(t, 2, StatusPosition(models.StatusShipped))
	assert.Equal(t, 3, StatusPosition(models.StatusCompleted))
	assert.Equal(t, -1, StatusPosition(models.StatusCancelled))
	assert.Equal(t, -1, StatusPosition("garbage"))
}

func TestStepStateFor(t *testing.T) {
	cases := []struct {
		step, current string
		want          StepState
	}{
		{models.StatusProcessing, models.StatusShipped, StepCompleted},
		{models.StatusShipped, models.StatusShipped, StepCurrent},
		{models.StatusCompleted, models.StatusPending, StepUpcoming},
		{models.StatusPending, models.StatusPending, StepCurrent},
		{models.StatusPending, models.StatusCompleted, StepCompleted},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, StepStateFor(c.step, c.current),
			"step %s with order %s", c.step, c.current)
	}
}

func TestCancelledLeavesAllStepsUpcoming(t *testing.T) {
	for _, step := range []string{
		models.StatusPending, models.StatusProcessing,
		models.StatusShipped, models.StatusCompleted,
	} {
		assert.Equal(t, StepUpcoming, StepStateFor(step, models.StatusCancelled))
	}
}

func TestTrackingSteps(t *testing.T) {
	steps := TrackingSteps(models.StatusShipped)
	require.Len(t, steps, 4)

	assert.Equal(t, "Commande confirmée", steps[0].Label)
	assert.Equal(t, StepCompleted, steps[0].State)
	assert.Equal(t, StepCompleted, steps[1].State)
	assert.Equal(t, StepCurrent, steps[2].State)
	assert.Equal(t, "Expédiée / En route", steps[2].Label)
	assert.Equal(t, StepUpcoming, steps[3].State)
}

func TestStatusMessage(t *testing.T) {
	assert.Equal(t, "Colis livré en mains propres.", StatusMessage(models.StatusCompleted))
	assert.Equal(t, "Commande validée, en attente de traitement.", StatusMessage("unknown"))
}
