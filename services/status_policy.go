package services

import (
	"webdev-order-api/models"
)

// statusTransitions is the fixed forward graph of legal status edges.
// Terminal statuses (completed, cancelled) have no outgoing edges. The
// admin-only reset back to draft is a separate path, not part of this graph.
var statusTransitions = map[string][]string{
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

// resettableStatuses are the only statuses an admin may reset back to draft.
var resettableStatuses = map[string]bool{
	models.StatusSubmitted: true,
	models.StatusInReview:  true,
	models.StatusApproved:  true,
}

// clientCancellableStatuses are the early statuses in which the owning
// client may still cancel their own application.
var clientCancellableStatuses = map[string]bool{
	models.StatusSubmitted: true,
	models.StatusInReview:  true,
	models.StatusNeedsInfo: true,
}

// IsValidStatus reports whether s is a member of the closed status set.
// Matching is exact and case-sensitive.
func IsValidStatus(s string) bool {
	_, ok := statusTransitions[s]
	return ok
}

// IsValidTransition reports whether (from, to) is a legal edge of the
// forward graph. A self-transition is not an edge; callers treat it as a
// no-op before consulting the graph.
func IsValidTransition(from, to string) bool {
	for _, next := range statusTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// AvailableTransitions returns the legal outgoing edges of from. Terminal
// and unknown statuses yield an empty slice.
func AvailableTransitions(from string) []string {
	edges := statusTransitions[from]
	out := make([]string, len(edges))
	copy(out, edges)
	return out
}

// IsResettable reports whether an admin may reset an application in the
// given status back to draft.
func IsResettable(status string) bool {
	return resettableStatuses[status]
}

// CanActorTransition applies the role gate for a legal forward edge.
// Clients may only submit (or resubmit) and cancel their own applications in
// early statuses; managers and admins drive everything else.
func CanActorTransition(actor models.User, app *models.Application, from, to string) bool {
	if actor.IsStaff() {
		return true
	}
	if app.UserID != actor.UserID {
		return false
	}
	if to == models.StatusSubmitted {
		return from == models.StatusDraft || from == models.StatusNeedsInfo
	}
	if to == models.StatusCancelled {
		return clientCancellableStatuses[from]
	}
	return false
}
