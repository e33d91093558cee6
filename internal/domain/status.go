package domain

// ClaimStatus is the lifecycle state of a guarantee claim.
type ClaimStatus string

const (
	ClaimPending     ClaimStatus = "pending"
	ClaimUnderReview ClaimStatus = "under_review"
	ClaimApproved    ClaimStatus = "approved"
	ClaimRejected    ClaimStatus = "rejected"
	ClaimResolved    ClaimStatus = "resolved"
)

// AllClaimStatuses lists every known claim status. Badge mapping tests range
// over it, so new statuses must be added here.
var AllClaimStatuses = []ClaimStatus{
	ClaimPending,
	ClaimUnderReview,
	ClaimApproved,
	ClaimRejected,
	ClaimResolved,
}

// ProjectStatus is the kanban bucket a project sits in.
type ProjectStatus string

const (
	StatusPlanning   ProjectStatus = "planning"
	StatusScheduled  ProjectStatus = "scheduled"
	StatusInProgress ProjectStatus = "in_progress"
	StatusOnHold     ProjectStatus = "on_hold"
	StatusCompleted  ProjectStatus = "completed"
)

// ProjectStatuses is the fixed column order of the board.
var ProjectStatuses = []ProjectStatus{
	StatusPlanning,
	StatusScheduled,
	StatusInProgress,
	StatusOnHold,
	StatusCompleted,
}

func (s ProjectStatus) Valid() bool {
	for _, known := range ProjectStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// Title is the column heading for s.
func (s ProjectStatus) Title() string {
	switch s {
	case StatusPlanning:
		return "Planning"
	case StatusScheduled:
		return "Scheduled"
	case StatusInProgress:
		return "In Progress"
	case StatusOnHold:
		return "On Hold"
	case StatusCompleted:
		return "Completed"
	}
	return string(s)
}
