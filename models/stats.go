package models

import (
	"time"
)

const (
	HealthStatusHealthy  = "healthy"
	HealthStatusWarning  = "warning"
	HealthStatusCritical = "critical"
)

type SystemHealth struct {
	Status      string    `json:"status"` // healthy, warning, critical
	LastChecked time.Time `json:"lastChecked"`
	Issues      int       `json:"issues"`
}

// Stats is the derived aggregate over the four collections. It is owned
// and maintained by the moderation engine; nothing else writes it.
type Stats struct {
	TotalUsers     int          `json:"totalUsers"`
	ActiveUsers    int          `json:"activeUsers"`
	TotalSkills    int          `json:"totalSkills"`
	PendingSkills  int          `json:"pendingSkills"`
	ActiveReports  int          `json:"activeReports"`
	UnreadMessages int          `json:"newMessages"`
	SystemHealth   SystemHealth `json:"systemHealth"`
}
