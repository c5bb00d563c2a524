package moderation

import (
	"testing"
	"time"

	"github.com/skill-swap/admin-go/models"
)

func TestAggregatorAdjust(t *testing.T) {
	var a aggregator

	a.adjust(statTotalUsers, 3)
	a.adjust(statActiveUsers, 2)
	a.adjust(statTotalSkills, 5)
	a.adjust(statPendingSkills, 1)
	a.adjust(statActiveReports, 4)
	a.adjust(statUnreadMessages, 2)
	a.adjust(statTotalUsers, -1)
	a.adjust(statUnreadMessages, -2)

	s := a.snapshot(time.Now())
	if s.TotalUsers != 2 {
		t.Errorf("totalUsers = %d, want 2", s.TotalUsers)
	}
	if s.ActiveUsers != 2 {
		t.Errorf("activeUsers = %d, want 2", s.ActiveUsers)
	}
	if s.TotalSkills != 5 {
		t.Errorf("totalSkills = %d, want 5", s.TotalSkills)
	}
	if s.PendingSkills != 1 {
		t.Errorf("pendingSkills = %d, want 1", s.PendingSkills)
	}
	if s.ActiveReports != 4 {
		t.Errorf("activeReports = %d, want 4", s.ActiveReports)
	}
	if s.UnreadMessages != 0 {
		t.Errorf("newMessages = %d, want 0", s.UnreadMessages)
	}
}

func TestAggregatorHealth(t *testing.T) {
	tests := []struct {
		name       string
		reports    int
		pending    int
		wantStatus string
		wantIssues int
	}{
		{"empty backlog is healthy", 0, 0, models.HealthStatusHealthy, 0},
		{"one open report is a warning", 1, 0, models.HealthStatusWarning, 1},
		{"pending skills count as backlog", 0, 3, models.HealthStatusWarning, 3},
		{"nine issues still a warning", 5, 4, models.HealthStatusWarning, 9},
		{"ten issues is critical", 6, 4, models.HealthStatusCritical, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a aggregator
			a.adjust(statActiveReports, tt.reports)
			a.adjust(statPendingSkills, tt.pending)

			now := time.Now()
			s := a.snapshot(now)
			if s.SystemHealth.Status != tt.wantStatus {
				t.Errorf("status = %s, want %s", s.SystemHealth.Status, tt.wantStatus)
			}
			if s.SystemHealth.Issues != tt.wantIssues {
				t.Errorf("issues = %d, want %d", s.SystemHealth.Issues, tt.wantIssues)
			}
			if !s.SystemHealth.LastChecked.Equal(now) {
				t.Errorf("lastChecked = %v, want %v", s.SystemHealth.LastChecked, now)
			}
		})
	}
}
