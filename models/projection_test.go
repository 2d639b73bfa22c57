package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"webdev-order-api/models"
)

func TestStatusLabel(t *testing.T) {
	assert.Equal(t, "Draft", models.StatusLabel(models.StatusDraft))
	assert.Equal(t, "In Review", models.StatusLabel(models.StatusInReview))
	assert.Equal(t, "Needs Info", models.StatusLabel(models.StatusNeedsInfo))
	assert.Equal(t, "Cancelled", models.StatusLabel(models.StatusCancelled))

	// Unknown values pass through unchanged.
	assert.Equal(t, "limbo", models.StatusLabel("limbo"))
}

func TestProjectApplication(t *testing.T) {
	app := models.Application{
		ApplicationID: 7,
		Title:         "Shop rebuild",
		Status:        models.StatusEstimated,
		Priority:      models.PriorityHigh,
	}

	view := models.ProjectApplication(app)
	assert.Equal(t, "Estimated", view.StatusLabel)
	assert.Equal(t, "High", view.PriorityLabel)

	// Projection decorates a copy; the source value stays untouched.
	assert.Equal(t, models.StatusEstimated, app.Status)

	views := models.ProjectApplications([]models.Application{app, app})
	assert.Len(t, views, 2)
}
