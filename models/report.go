package models

import (
	"time"
)

// Report targets.
const (
	ReportTargetUser  = "user"
	ReportTargetSkill = "skill"
)

// Resolution outcomes. Resolving a report removes it from the active set
// either way; the outcome only feeds the audit log.
const (
	ReportOutcomeApprove = "approve"
	ReportOutcomeReject  = "reject"
)

type Report struct {
	ID         string    `json:"id"`
	TargetType string    `json:"type"` // user, skill
	TargetID   string    `json:"targetId"`
	Reason     string    `json:"reason"`
	CreatedAt  time.Time `json:"createdAt"`
}

func IsValidReportTarget(targetType string) bool {
	return targetType == ReportTargetUser || targetType == ReportTargetSkill
}

func IsValidReportOutcome(outcome string) bool {
	return outcome == ReportOutcomeApprove || outcome == ReportOutcomeReject
}
