package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"webdev-order-api/models"
	"webdev-order-api/services"
)

var allStatuses = []string{
	models.StatusDraft,
	models.StatusSubmitted,
	models.StatusInReview,
	models.StatusNeedsInfo,
	models.StatusEstimated,
	models.StatusApproved,
	models.StatusInProgress,
	models.StatusCompleted,
	models.StatusCancelled,
}

// expectedEdges mirrors the fixed transition graph.
var expectedEdges = map[string][]string{
	models.StatusDraft:      {models.StatusSubmitted},
	models.StatusSubmitted:  {models.StatusInReview, models.StatusCancelled},
	models.StatusInReview:   {models.StatusNeedsInfo, models.StatusEstimated, models.StatusCancelled},
	models.StatusNeedsInfo:  {models.StatusSubmitted, models.StatusCancelled},
	models.StatusEstimated:  {models.StatusApproved, models.StatusNeedsInfo, models.StatusCancelled},
	models.StatusApproved:   {models.StatusInProgress, models.StatusCancelled},
	models.StatusInProgress: {models.StatusCompleted, models.StatusCancelled},
	models.StatusCompleted:  {},
	models.StatusCancelled:  {},
}

func TestIsValidStatus(t *testing.T) {
	for _, status := range allStatuses {
		assert.True(t, services.IsValidStatus(status), status)
	}

	assert.False(t, services.IsValidStatus(""))
	assert.False(t, services.IsValidStatus("Draft"))
	assert.False(t, services.IsValidStatus("SUBMITTED"))
	assert.False(t, services.IsValidStatus("rejected"))
}

func TestIsValidTransition_FullMatrix(t *testing.T) {
	for _, from := range allStatuses {
		legal := map[string]bool{}
		for _, to := range expectedEdges[from] {
			legal[to] = true
		}
		for _, to := range allStatuses {
			if from == to {
				// Self-transitions are handled as no-ops by the executor,
				// never as graph edges.
				assert.False(t, services.IsValidTransition(from, to), "%s -> %s", from, to)
				continue
			}
			assert.Equal(t, legal[to], services.IsValidTransition(from, to), "%s -> %s", from, to)
		}
	}
}

func TestAvailableTransitions(t *testing.T) {
	for _, from := range allStatuses {
		assert.ElementsMatch(t, expectedEdges[from], services.AvailableTransitions(from), from)
	}

	// Terminal states have no outgoing edges.
	assert.Empty(t, services.AvailableTransitions(models.StatusCompleted))
	assert.Empty(t, services.AvailableTransitions(models.StatusCancelled))

	// Unknown statuses yield nothing.
	assert.Empty(t, services.AvailableTransitions("bogus"))
}

func TestAvailableTransitions_ReturnsCopy(t *testing.T) {
	edges := services.AvailableTransitions(models.StatusSubmitted)
	require.NotEmpty(t, edges)
	edges[0] = "mutated"

	assert.ElementsMatch(t,
		[]string{models.StatusInReview, models.StatusCancelled},
		services.AvailableTransitions(models.StatusSubmitted))
}

func TestIsResettable(t *testing.T) {
	resettable := map[string]bool{
		models.StatusSubmitted: true,
		models.StatusInReview:  true,
		models.StatusApproved:  true,
	}
	for _, status := range allStatuses {
		assert.Equal(t, resettable[status], services.IsResettable(status), status)
	}
}

func TestCanActorTransition(t *testing.T) {
	owner := models.User{UserID: 10, RoleID: models.RoleClient}
	stranger := models.User{UserID: 11, RoleID: models.RoleClient}
	manager := models.User{UserID: 20, RoleID: models.RoleManager}
	admin := models.User{UserID: 30, RoleID: models.RoleAdmin}

	app := &models.Application{ApplicationID: 1, UserID: owner.UserID}

	// Clients submit their own drafts and resubmit after needs_info.
	assert.True(t, services.CanActorTransition(owner, app, models.StatusDraft, models.StatusSubmitted))
	assert.True(t, services.CanActorTransition(owner, app, models.StatusNeedsInfo, models.StatusSubmitted))

	// Clients cancel their own applications in early statuses only.
	assert.True(t, services.CanActorTransition(owner, app, models.StatusSubmitted, models.StatusCancelled))
	assert.True(t, services.CanActorTransition(owner, app, models.StatusInReview, models.StatusCancelled))
	assert.True(t, services.CanActorTransition(owner, app, models.StatusNeedsInfo, models.StatusCancelled))
	assert.False(t, services.CanActorTransition(owner, app, models.StatusInProgress, models.StatusCancelled))
	assert.False(t, services.CanActorTransition(owner, app, models.StatusApproved, models.StatusCancelled))

	// Clients never drive staff transitions.
	assert.False(t, services.CanActorTransition(owner, app, models.StatusSubmitted, models.StatusInReview))
	assert.False(t, services.CanActorTransition(owner, app, models.StatusInReview, models.StatusEstimated))

	// Clients never touch applications they do not own.
	assert.False(t, services.CanActorTransition(stranger, app, models.StatusDraft, models.StatusSubmitted))
	assert.False(t, services.CanActorTransition(stranger, app, models.StatusSubmitted, models.StatusCancelled))

	// Staff drive everything.
	assert.True(t, services.CanActorTransition(manager, app, models.StatusSubmitted, models.StatusInReview))
	assert.True(t, services.CanActorTransition(manager, app, models.StatusInProgress, models.StatusCompleted))
	assert.True(t, services.CanActorTransition(admin, app, models.StatusEstimated, models.StatusApproved))
}
