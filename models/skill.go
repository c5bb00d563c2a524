package models

import (
	"time"
)

const (
	SkillStatusPending  = "pending"
	SkillStatusActive   = "active"
	SkillStatusRejected = "rejected"
)

type Skill struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Author       string    `json:"author"`
	Category     string    `json:"category"`
	Status       string    `json:"status"` // pending, active, rejected
	ReportCount  int       `json:"reportCount"`
	CreatedAt    time.Time `json:"createdAt"`
	LastModified time.Time `json:"lastModified"`
}

func IsValidSkillStatus(status string) bool {
	switch status {
	case SkillStatusPending, SkillStatusActive, SkillStatusRejected:
		return true
	}
	return false
}
