// Package moderation implements the admin moderation engine: the single
// owner of the user, skill, report and message collections and of the
// derived Stats record. Every mutation applies its store change and its
// Stats delta inside one critical section, so readers never observe a
// store and the counters disagreeing.
package moderation

import (
	"fmt"
	"log"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/skill-swap/admin-go/models"
	"github.com/skill-swap/admin-go/store"
)

type Engine struct {
	mu       sync.Mutex
	users    *store.UserStore
	skills   *store.SkillStore
	reports  *store.ReportStore
	messages *store.MessageStore
	stats    aggregator
	settings models.SystemSettings
}

func NewEngine() *Engine {
	return &Engine{
		users:    store.NewUserStore(),
		skills:   store.NewSkillStore(),
		reports:  store.NewReportStore(),
		messages: store.NewMessageStore(),
		settings: models.DefaultSystemSettings(),
	}
}

// --- creation (the marketplace side of the boundary) ---

func (e *Engine) CreateUser(u models.User) (models.User, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if u.Status == "" {
		u.Status = models.UserStatusPending
	}
	if !models.IsValidUserStatus(u.Status) {
		return models.User{}, fmt.Errorf("unknown user status: %s", u.Status)
	}
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	now := time.Now()
	if u.JoinedDate.IsZero() {
		u.JoinedDate = now
	}
	if u.LastActive.IsZero() {
		u.LastActive = now
	}

	e.users.Put(u)
	e.stats.adjust(statTotalUsers, 1)
	if u.Status == models.UserStatusActive {
		e.stats.adjust(statActiveUsers, 1)
	}
	return u, nil
}

func (e *Engine) CreateSkill(s models.Skill) (models.Skill, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if s.Status == "" {
		s.Status = models.SkillStatusPending
	}
	if !models.IsValidSkillStatus(s.Status) {
		return models.Skill{}, fmt.Errorf("unknown skill status: %s", s.Status)
	}
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now()
	}
	if s.LastModified.IsZero() {
		s.LastModified = s.CreatedAt
	}

	e.skills.Put(s)
	e.stats.adjust(statTotalSkills, 1)
	if s.Status == models.SkillStatusPending {
		e.stats.adjust(statPendingSkills, 1)
	}
	return s, nil
}

func (e *Engine) CreateReport(r models.Report) (models.Report, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !models.IsValidReportTarget(r.TargetType) {
		return models.Report{}, fmt.Errorf("unknown report target type: %s", r.TargetType)
	}
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now()
	}

	e.reports.Put(r)
	e.stats.adjust(statActiveReports, 1)
	return r, nil
}

// CreateMessage inserts a contact message. Messages always enter the
// system unread.
func (e *Engine) CreateMessage(m models.Message) models.Message {
	e.mu.Lock()
	defer e.mu.Unlock()

	m.Status = models.MessageStatusNew
	m.Reply = nil
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now()
	}

	e.messages.Put(m)
	e.stats.adjust(statUnreadMessages, 1)
	return m
}

// --- users ---

// SetUserStatus moves a user between pending, active and suspended.
// Every direction is allowed; only deletion is terminal. Stats is not
// touched: activeUsers counts at creation/deletion time only.
func (e *Engine) SetUserStatus(id, status string) (models.User, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	u, ok := e.users.Get(id)
	if !ok {
		return models.User{}, ErrNotFound
	}
	if u.Status == status {
		return u, nil
	}
	if !models.IsValidUserStatus(status) {
		return models.User{}, ErrInvalidTransition
	}

	u.Status = status
	e.users.Update(u)
	return u, nil
}

func (e *Engine) DeleteUser(id string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	u, ok := e.users.Delete(id)
	if !ok {
		return ErrNotFound
	}

	e.stats.adjust(statTotalUsers, -1)
	if u.Status == models.UserStatusActive {
		e.stats.adjust(statActiveUsers, -1)
	}
	log.Printf("moderation: deleted user %s (%s)", u.ID, u.Email)
	return nil
}

// --- skills ---

var skillTransitions = map[string][]string{
	models.SkillStatusPending:  {models.SkillStatusActive, models.SkillStatusRejected},
	models.SkillStatusActive:   {models.SkillStatusRejected},
	models.SkillStatusRejected: {models.SkillStatusActive}, // re-approval is allowed
}

func skillTransitionAllowed(from, to string) bool {
	for _, s := range skillTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// SetSkillStatus applies a moderation decision to a skill, stamping
// lastModified. Leaving or entering pending moves the pendingSkills
// counter; active<->rejected does not.
func (e *Engine) SetSkillStatus(id, status string) (models.Skill, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	s, ok := e.skills.Get(id)
	if !ok {
		return models.Skill{}, ErrNotFound
	}
	if s.Status == status {
		return s, nil
	}
	if !skillTransitionAllowed(s.Status, status) {
		return models.Skill{}, ErrInvalidTransition
	}

	if s.Status == models.SkillStatusPending {
		e.stats.adjust(statPendingSkills, -1)
	}
	if status == models.SkillStatusPending {
		e.stats.adjust(statPendingSkills, 1)
	}

	s.Status = status
	s.LastModified = time.Now()
	e.skills.Update(s)
	return s, nil
}

func (e *Engine) DeleteSkill(id string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	s, ok := e.skills.Delete(id)
	if !ok {
		return ErrNotFound
	}

	e.stats.adjust(statTotalSkills, -1)
	if s.Status == models.SkillStatusPending {
		e.stats.adjust(statPendingSkills, -1)
	}
	log.Printf("moderation: deleted skill %s (%q)", s.ID, s.Title)
	return nil
}

// --- reports ---

// ResolveReport removes a report from the active set. The outcome does
// not change anything beyond the audit log; either way the report stops
// counting as active. Resolving twice reports NotFound, since the first
// resolution already removed it.
func (e *Engine) ResolveReport(id, outcome string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !models.IsValidReportOutcome(outcome) {
		return fmt.Errorf("unknown report outcome: %s", outcome)
	}

	r, ok := e.reports.Delete(id)
	if !ok {
		return ErrNotFound
	}

	e.stats.adjust(statActiveReports, -1)
	log.Printf("moderation: resolved report %s (%s %s) outcome=%s", r.ID, r.TargetType, r.TargetID, outcome)
	return nil
}

// --- messages ---

// MarkMessage sets a message to read or archived. Archived is terminal.
// The unread counter drops exactly once, when the message leaves new.
func (e *Engine) MarkMessage(id, status string) (models.Message, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	m, ok := e.messages.Get(id)
	if !ok {
		return models.Message{}, ErrNotFound
	}
	if m.Status == status {
		return copyMessage(m), nil
	}
	if status != models.MessageStatusRead && status != models.MessageStatusArchived {
		return models.Message{}, ErrInvalidTransition
	}
	if m.Status == models.MessageStatusArchived {
		return models.Message{}, ErrInvalidTransition
	}

	if m.Status == models.MessageStatusNew {
		e.stats.adjust(statUnreadMessages, -1)
	}
	m.Status = status
	e.messages.Update(m)
	return copyMessage(m), nil
}

// ReplyToMessage attaches the one allowed reply. A reply implies the
// message has been seen, so a new message becomes read in the same step.
func (e *Engine) ReplyToMessage(id, adminName, content string) (models.Message, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	m, ok := e.messages.Get(id)
	if !ok {
		return models.Message{}, ErrNotFound
	}
	if m.Reply != nil {
		return models.Message{}, ErrAlreadyReplied
	}

	m.Reply = &models.Reply{
		ID:        uuid.New().String(),
		MessageID: m.ID,
		AdminName: adminName,
		Content:   content,
		CreatedAt: time.Now(),
	}
	if m.Status == models.MessageStatusNew {
		m.Status = models.MessageStatusRead
		e.stats.adjust(statUnreadMessages, -1)
	}
	e.messages.Update(m)
	return copyMessage(m), nil
}

func (e *Engine) DeleteMessage(id string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	m, ok := e.messages.Delete(id)
	if !ok {
		return ErrNotFound
	}

	if m.Status == models.MessageStatusNew {
		e.stats.adjust(statUnreadMessages, -1)
	}
	log.Printf("moderation: deleted message %s from %s", m.ID, m.Email)
	return nil
}

// --- reads ---

func (e *Engine) Stats() models.Stats {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.stats.snapshot(time.Now())
}

func (e *Engine) GetUser(id string) (models.User, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	u, ok := e.users.Get(id)
	if !ok {
		return models.User{}, ErrNotFound
	}
	return u, nil
}

func (e *Engine) GetSkill(id string) (models.Skill, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	s, ok := e.skills.Get(id)
	if !ok {
		return models.Skill{}, ErrNotFound
	}
	return s, nil
}

func (e *Engine) GetMessage(id string) (models.Message, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	m, ok := e.messages.Get(id)
	if !ok {
		return models.Message{}, ErrNotFound
	}
	return copyMessage(m), nil
}

func (e *Engine) ListUsers() []models.User {
	e.mu.Lock()
	defer e.mu.Unlock()

	users := e.users.All()
	sort.Slice(users, func(i, j int) bool {
		if users[i].JoinedDate.Equal(users[j].JoinedDate) {
			return users[i].ID < users[j].ID
		}
		return users[i].JoinedDate.Before(users[j].JoinedDate)
	})
	return users
}

func (e *Engine) ListSkills() []models.Skill {
	e.mu.Lock()
	defer e.mu.Unlock()

	skills := e.skills.All()
	sort.Slice(skills, func(i, j int) bool {
		if skills[i].CreatedAt.Equal(skills[j].CreatedAt) {
			return skills[i].ID < skills[j].ID
		}
		return skills[i].CreatedAt.Before(skills[j].CreatedAt)
	})
	return skills
}

func (e *Engine) ListReports() []models.Report {
	e.mu.Lock()
	defer e.mu.Unlock()

	reports := e.reports.All()
	sort.Slice(reports, func(i, j int) bool {
		if reports[i].CreatedAt.Equal(reports[j].CreatedAt) {
			return reports[i].ID < reports[j].ID
		}
		return reports[i].CreatedAt.Before(reports[j].CreatedAt)
	})
	return reports
}

// ListMessages returns messages newest first, the order the inbox
// displays them in.
func (e *Engine) ListMessages() []models.Message {
	e.mu.Lock()
	defer e.mu.Unlock()

	messages := e.messages.All()
	sort.Slice(messages, func(i, j int) bool {
		if messages[i].CreatedAt.Equal(messages[j].CreatedAt) {
			return messages[i].ID > messages[j].ID
		}
		return messages[i].CreatedAt.After(messages[j].CreatedAt)
	})
	for i := range messages {
		messages[i] = copyMessage(messages[i])
	}
	return messages
}

// copyMessage detaches the reply pointer so callers cannot mutate the
// stored reply through a returned record.
func copyMessage(m models.Message) models.Message {
	if m.Reply != nil {
		r := *m.Reply
		m.Reply = &r
	}
	return m
}
