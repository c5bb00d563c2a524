package models

import (
	"time"
)

// User statuses. There is no terminal status; a user leaves the system
// only through deletion.
const (
	UserStatusPending   = "pending"
	UserStatusActive    = "active"
	UserStatusSuspended = "suspended"
)

type User struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Status      string    `json:"status"` // pending, active, suspended
	JoinedDate  time.Time `json:"joinedDate"`
	LastActive  time.Time `json:"lastActive"`
	SkillsCount int       `json:"skillsCount"`
	ReportCount int       `json:"reportCount"`
}

func IsValidUserStatus(status string) bool {
	switch status {
	case UserStatusPending, UserStatusActive, UserStatusSuspended:
		return true
	}
	return false
}
