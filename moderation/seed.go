package moderation

import (
	"log"
	"time"

	"github.com/skill-swap/admin-go/models"
)

// SeedDemoData loads the demo marketplace state through the engine's
// create operations, so the counters line up with the collections from
// the first request onward.
func SeedDemoData(e *Engine) {
	date := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}

	users := []models.User{
		{ID: "u-1", Name: "Alex Johnson", Email: "alex@example.com", Status: models.UserStatusActive,
			JoinedDate: date(2023, time.January, 15), LastActive: date(2025, time.May, 1), SkillsCount: 3},
		{ID: "u-2", Name: "Sarah Miller", Email: "sarah@example.com", Status: models.UserStatusPending,
			JoinedDate: date(2025, time.April, 28), LastActive: date(2025, time.April, 28), SkillsCount: 1},
		{ID: "u-3", Name: "John Smith", Email: "john@example.com", Status: models.UserStatusSuspended,
			JoinedDate: date(2024, time.December, 10), LastActive: date(2025, time.March, 15), SkillsCount: 5, ReportCount: 2},
		{ID: "u-4", Name: "Emma Wilson", Email: "emma@example.com", Status: models.UserStatusActive,
			JoinedDate: date(2024, time.November, 20), LastActive: date(2025, time.May, 1), SkillsCount: 4},
	}
	for _, u := range users {
		if _, err := e.CreateUser(u); err != nil {
			log.Printf("seed: user %s: %v", u.ID, err)
		}
	}

	skills := []models.Skill{
		{ID: "s-1", Title: "JavaScript Fundamentals", Author: "Alex Johnson", Category: "Programming",
			Status: models.SkillStatusActive, CreatedAt: date(2025, time.April, 15)},
		{ID: "s-2", Title: "Advanced Python", Author: "Sarah Miller", Category: "Programming",
			Status: models.SkillStatusPending, CreatedAt: date(2025, time.May, 1)},
		{ID: "s-3", Title: "Digital Marketing Basics", Author: "John Smith", Category: "Marketing",
			Status: models.SkillStatusRejected, ReportCount: 2,
			CreatedAt: date(2025, time.April, 20), LastModified: date(2025, time.April, 25)},
		{ID: "s-4", Title: "Web Design Principles", Author: "Emma Wilson", Category: "Design",
			Status: models.SkillStatusPending, CreatedAt: date(2025, time.May, 1)},
	}
	for _, s := range skills {
		if _, err := e.CreateSkill(s); err != nil {
			log.Printf("seed: skill %s: %v", s.ID, err)
		}
	}

	reports := []models.Report{
		{ID: "r-1", TargetType: models.ReportTargetUser, TargetID: "u-3",
			Reason: "Inappropriate behavior in comments"},
		{ID: "r-2", TargetType: models.ReportTargetSkill, TargetID: "s-3",
			Reason: "Misleading content and false information"},
		{ID: "r-3", TargetType: models.ReportTargetUser, TargetID: "u-2",
			Reason: "Spam messages"},
	}
	for _, r := range reports {
		if _, err := e.CreateReport(r); err != nil {
			log.Printf("seed: report %s: %v", r.ID, err)
		}
	}

	messages := []models.Message{
		{ID: "m-1", Name: "Olivia Brown", Email: "olivia@example.com",
			Message: "How do I change the category of a skill I already published?",
			CreatedAt: date(2025, time.April, 30)},
		{ID: "m-2", Name: "Daniel Lee", Email: "daniel@example.com",
			Message: "I was charged twice for the same exchange, please help.",
			CreatedAt: date(2025, time.May, 1)},
	}
	for _, m := range messages {
		e.CreateMessage(m)
	}

	log.Printf("seed: loaded demo data (%d users, %d skills, %d reports, %d messages)",
		len(users), len(skills), len(reports), len(messages))
}
