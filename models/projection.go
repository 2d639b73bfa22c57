package models

var statusLabels = map[string]string{
	StatusDraft:      "Draft",
	StatusSubmitted:  "Submitted",
	StatusInReview:   "In Review",
	StatusNeedsInfo:  "Needs Info",
	StatusEstimated:  "Estimated",
	StatusApproved:   "Approved",
	StatusInProgress: "In Progress",
	StatusCompleted:  "Completed",
	StatusCancelled:  "Cancelled",
}

var priorityLabels = map[string]string{
	PriorityLow:    "Low",
	PriorityMedium: "Medium",
	PriorityHigh:   "High",
	PriorityUrgent: "Urgent",
}

// StatusLabel returns the display label for a status value. Unknown values
// are returned as-is so corrupt data stays visible instead of vanishing.
func StatusLabel(status string) string {
	if label, ok := statusLabels[status]; ok {
		return label
	}
	return status
}

// PriorityLabel returns the display label for a priority value.
func PriorityLabel(priority string) string {
	if label, ok := priorityLabels[priority]; ok {
		return label
	}
	return priority
}

// ApplicationView is an Application decorated with display labels. It is
// produced by projection only; no model state is derived lazily.
type ApplicationView struct {
	Application
	StatusLabel   string `json:"status_label"`
	PriorityLabel string `json:"priority_label"`
}

// ProjectApplication returns a display-decorated copy of the application.
func ProjectApplication(app Application) ApplicationView {
	return ApplicationView{
		Application:   app,
		StatusLabel:   StatusLabel(app.Status),
		PriorityLabel: PriorityLabel(app.Priority),
	}
}

// ProjectApplications projects a slice of applications for list responses.
func ProjectApplications(apps []Application) []ApplicationView {
	views := make([]ApplicationView, 0, len(apps))
	for _, app := range apps {
		views = append(views, ProjectApplication(app))
	}
	return views
}
