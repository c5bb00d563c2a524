package moderation

import (
	"time"

	"github.com/google/uuid"
	"github.com/skill-swap/admin-go/models"
)

// FileReport is the public-side entry point for reporting a user or a
// skill. Unlike CreateReport it verifies the target exists and bumps
// the target's report counter in the same step as the insert.
func (e *Engine) FileReport(targetType, targetID, reason string) (models.Report, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	switch targetType {
	case models.ReportTargetUser:
		u, ok := e.users.Get(targetID)
		if !ok {
			return models.Report{}, ErrNotFound
		}
		u.ReportCount++
		e.users.Update(u)
	case models.ReportTargetSkill:
		s, ok := e.skills.Get(targetID)
		if !ok {
			return models.Report{}, ErrNotFound
		}
		s.ReportCount++
		e.skills.Update(s)
	default:
		return models.Report{}, ErrNotFound
	}

	r := models.Report{
		ID:         uuid.New().String(),
		TargetType: targetType,
		TargetID:   targetID,
		Reason:     reason,
		CreatedAt:  time.Now(),
	}
	e.reports.Put(r)
	e.stats.adjust(statActiveReports, 1)
	return r, nil
}
