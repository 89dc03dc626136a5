package risk

import "time"

// Severity grades how serious a risk is.
type Severity string

const (
	SeverityLow    Severity = "Low"
	SeverityMedium Severity = "Medium"
	SeverityHigh   Severity = "High"
)

// RiskStatus tracks the handling state of a risk.
type RiskStatus string

const (
	StatusOpen         RiskStatus = "Open"
	StatusAcknowledged RiskStatus = "Acknowledged"
	StatusResolved     RiskStatus = "Resolved"
)

// Risk is an operational risk, optionally tied to a specific part.
type Risk struct {
	RiskID         int64      `json:"risk_id"`
	PartID         *int64     `json:"part_id"`
	RiskType       string     `json:"risk_type"`
	Description    string     `json:"description,omitempty"`
	Severity       Severity   `json:"severity"`
	Likelihood     int        `json:"likelihood"`
	Impact         string     `json:"impact,omitempty"`
	MitigationPlan string     `json:"mitigation_plan,omitempty"`
	Status         RiskStatus `json:"status"`
	CreatedAt      time.Time  `json:"created_at"`

	// Populated on reads that join parts.
	PartName string `json:"part_name,omitempty"`
}

// CreateRiskRequest is the payload for registering a risk.
type CreateRiskRequest struct {
	PartID         *int64 `json:"part_id"`
	RiskType       string `json:"risk_type"`
	Description    string `json:"description"`
	Severity       string `json:"severity"`
	Likelihood     int    `json:"likelihood"`
	Impact         string `json:"impact"`
	MitigationPlan string `json:"mitigation_plan"`
	Status         string `json:"status"`
}

// CreateRiskResult is the outcome of registering a risk.
type CreateRiskResult struct {
	Risk                *Risk `json:"risk"`
	NotificationCreated bool  `json:"notificationCreated"`
}

// UpdateStatusRequest is the payload for changing a risk's status.
type UpdateStatusRequest struct {
	RiskID int64  `json:"riskId"`
	Status string `json:"status"`
}
