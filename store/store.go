// Package store holds the four entity collections the moderation engine
// owns. The stores do no locking of their own; the engine serializes all
// access. Every operation that references a key reports whether the key
// was present, so callers never mistake a miss for a mutation.
package store

import (
	"github.com/skill-swap/admin-go/models"
)

type UserStore struct {
	users map[string]models.User
}

func NewUserStore() *UserStore {
	return &UserStore{users: make(map[string]models.User)}
}

func (s *UserStore) Get(id string) (models.User, bool) {
	u, ok := s.users[id]
	return u, ok
}

func (s *UserStore) Put(u models.User) {
	s.users[u.ID] = u
}

// Update overwrites an existing record. A missing key is reported back
// instead of being inserted.
func (s *UserStore) Update(u models.User) bool {
	if _, ok := s.users[u.ID]; !ok {
		return false
	}
	s.users[u.ID] = u
	return true
}

func (s *UserStore) Delete(id string) (models.User, bool) {
	u, ok := s.users[id]
	if !ok {
		return models.User{}, false
	}
	delete(s.users, id)
	return u, true
}

func (s *UserStore) All() []models.User {
	out := make([]models.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, u)
	}
	return out
}

func (s *UserStore) Len() int {
	return len(s.users)
}

type SkillStore struct {
	skills map[string]models.Skill
}

func NewSkillStore() *SkillStore {
	return &SkillStore{skills: make(map[string]models.Skill)}
}

func (s *SkillStore) Get(id string) (models.Skill, bool) {
	sk, ok := s.skills[id]
	return sk, ok
}

func (s *SkillStore) Put(sk models.Skill) {
	s.skills[sk.ID] = sk
}

func (s *SkillStore) Update(sk models.Skill) bool {
	if _, ok := s.skills[sk.ID]; !ok {
		return false
	}
	s.skills[sk.ID] = sk
	return true
}

func (s *SkillStore) Delete(id string) (models.Skill, bool) {
	sk, ok := s.skills[id]
	if !ok {
		return models.Skill{}, false
	}
	delete(s.skills, id)
	return sk, true
}

func (s *SkillStore) All() []models.Skill {
	out := make([]models.Skill, 0, len(s.skills))
	for _, sk := range s.skills {
		out = append(out, sk)
	}
	return out
}

func (s *SkillStore) Len() int {
	return len(s.skills)
}

// ReportStore holds the active (unresolved) reports only; resolution
// removes the record.
type ReportStore struct {
	reports map[string]models.Report
}

func NewReportStore() *ReportStore {
	return &ReportStore{reports: make(map[string]models.Report)}
}

func (s *ReportStore) Get(id string) (models.Report, bool) {
	r, ok := s.reports[id]
	return r, ok
}

func (s *ReportStore) Put(r models.Report) {
	s.reports[r.ID] = r
}

func (s *ReportStore) Delete(id string) (models.Report, bool) {
	r, ok := s.reports[id]
	if !ok {
		return models.Report{}, false
	}
	delete(s.reports, id)
	return r, true
}

func (s *ReportStore) All() []models.Report {
	out := make([]models.Report, 0, len(s.reports))
	for _, r := range s.reports {
		out = append(out, r)
	}
	return out
}

func (s *ReportStore) Len() int {
	return len(s.reports)
}

type MessageStore struct {
	messages map[string]models.Message
}

func NewMessageStore() *MessageStore {
	return &MessageStore{messages: make(map[string]models.Message)}
}

func (s *MessageStore) Get(id string) (models.Message, bool) {
	m, ok := s.messages[id]
	return m, ok
}

func (s *MessageStore) Put(m models.Message) {
	s.messages[m.ID] = m
}

func (s *MessageStore) Update(m models.Message) bool {
	if _, ok := s.messages[m.ID]; !ok {
		return false
	}
	s.messages[m.ID] = m
	return true
}

func (s *MessageStore) Delete(id string) (models.Message, bool) {
	m, ok := s.messages[id]
	if !ok {
		return models.Message{}, false
	}
	delete(s.messages, id)
	return m, true
}

func (s *MessageStore) All() []models.Message {
	out := make([]models.Message, 0, len(s.messages))
	for _, m := range s.messages {
		out = append(out, m)
	}
	return out
}

func (s *MessageStore) Len() int {
	return len(s.messages)
}
