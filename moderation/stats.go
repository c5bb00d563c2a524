package moderation

import (
	"time"

	"github.com/skill-swap/admin-go/models"
)

// Fields of the aggregate record that the engine adjusts by signed
// deltas. The aggregator does not validate deltas; computing correct
// ones is entirely the engine's job, which keeps this piece trivial.
type statField string

const (
	statTotalUsers     statField = "totalUsers"
	statActiveUsers    statField = "activeUsers"
	statTotalSkills    statField = "totalSkills"
	statPendingSkills  statField = "pendingSkills"
	statActiveReports  statField = "activeReports"
	statUnreadMessages statField = "newMessages"
)

type aggregator struct {
	totalUsers     int
	activeUsers    int
	totalSkills    int
	pendingSkills  int
	activeReports  int
	unreadMessages int
}

func (a *aggregator) adjust(field statField, delta int) {
	switch field {
	case statTotalUsers:
		a.totalUsers += delta
	case statActiveUsers:
		a.activeUsers += delta
	case statTotalSkills:
		a.totalSkills += delta
	case statPendingSkills:
		a.pendingSkills += delta
	case statActiveReports:
		a.activeReports += delta
	case statUnreadMessages:
		a.unreadMessages += delta
	}
}

// snapshot materializes the Stats record, deriving the coarse health
// indicator from the backlog the admin still has to work through.
func (a *aggregator) snapshot(now time.Time) models.Stats {
	issues := a.activeReports + a.pendingSkills

	status := models.HealthStatusHealthy
	switch {
	case issues >= 10:
		status = models.HealthStatusCritical
	case issues > 0:
		status = models.HealthStatusWarning
	}

	return models.Stats{
		TotalUsers:     a.totalUsers,
		ActiveUsers:    a.activeUsers,
		TotalSkills:    a.totalSkills,
		PendingSkills:  a.pendingSkills,
		ActiveReports:  a.activeReports,
		UnreadMessages: a.unreadMessages,
		SystemHealth: models.SystemHealth{
			Status:      status,
			LastChecked: now,
			Issues:      issues,
		},
	}
}
