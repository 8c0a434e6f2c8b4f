package types

// Closed status sets per entity. Every write path converts caller input
// through the Parse* functions, which fall back to the entity default
// instead of rejecting unknown values.

type ClientStatus string

const (
	ClientActive   ClientStatus = "active"
	ClientCold     ClientStatus = "cold"
	ClientArchived ClientStatus = "archived"
)

func ParseClientStatus(s string) ClientStatus {
	switch ClientStatus(s) {
	case ClientActive, ClientCold, ClientArchived:
		return ClientStatus(s)
	default:
		return ClientActive
	}
}

type ProjectStatus string

const (
	ProjectDiscussion ProjectStatus = "discussion"
	ProjectInProgress ProjectStatus = "in_progress"
	ProjectPaused     ProjectStatus = "paused"
	ProjectCompleted  ProjectStatus = "completed"
)

func ParseProjectStatus(s string) ProjectStatus {
	switch ProjectStatus(s) {
	case ProjectDiscussion, ProjectInProgress, ProjectPaused, ProjectCompleted:
		return ProjectStatus(s)
	default:
		return ProjectDiscussion
	}
}

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPartial PaymentStatus = "partial"
	PaymentPaid    PaymentStatus = "paid"
)

func ParsePaymentStatus(s string) PaymentStatus {
	switch PaymentStatus(s) {
	case PaymentPending, PaymentPartial, PaymentPaid:
		return PaymentStatus(s)
	default:
		return PaymentPending
	}
}
