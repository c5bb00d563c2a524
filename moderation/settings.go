package moderation

import (
	"fmt"

	"github.com/skill-swap/admin-go/models"
)

func (e *Engine) Settings() models.SystemSettings {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.settings
}

func (e *Engine) UpdateSettings(s models.SystemSettings) (models.SystemSettings, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if s.MaxSkillsPerUser < 1 {
		return models.SystemSettings{}, fmt.Errorf("maxSkillsPerUser must be at least 1, got %d", s.MaxSkillsPerUser)
	}

	e.settings = s
	return e.settings, nil
}
