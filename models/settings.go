package models

type SystemSettings struct {
	MaintenanceMode       bool `json:"maintenanceMode"`
	AllowNewRegistrations bool `json:"allowNewRegistrations"`
	SkillApprovalRequired bool `json:"skillApprovalRequired"`
	MaxSkillsPerUser      int  `json:"maxSkillsPerUser"`
}

func DefaultSystemSettings() SystemSettings {
	return SystemSettings{
		MaintenanceMode:       false,
		AllowNewRegistrations: true,
		SkillApprovalRequired: true,
		MaxSkillsPerUser:      10,
	}
}
