package store

import (
	"testing"

	"github.com/skill-swap/admin-go/models"
)

func TestUserStoreCRUD(t *testing.T) {
	s := NewUserStore()

	if _, ok := s.Get("u-1"); ok {
		t.Fatal("Get on empty store reported a hit")
	}

	s.Put(models.User{ID: "u-1", Name: "Alex", Status: models.UserStatusPending})
	if s.Len() != 1 {
		t.Fatalf("Len = %d, want 1", s.Len())
	}

	u, ok := s.Get("u-1")
	if !ok || u.Name != "Alex" {
		t.Fatalf("Get = %+v, %v", u, ok)
	}

	u.Status = models.UserStatusActive
	if !s.Update(u) {
		t.Fatal("Update of existing user reported a miss")
	}
	u, _ = s.Get("u-1")
	if u.Status != models.UserStatusActive {
		t.Errorf("status = %s, want active", u.Status)
	}

	deleted, ok := s.Delete("u-1")
	if !ok || deleted.ID != "u-1" {
		t.Fatalf("Delete = %+v, %v", deleted, ok)
	}
	if s.Len() != 0 {
		t.Errorf("Len after delete = %d, want 0", s.Len())
	}
}

// Misses must be reported, not swallowed: the engine depends on knowing
// whether a count change actually happened.
func TestStoresSignalMisses(t *testing.T) {
	users := NewUserStore()
	if users.Update(models.User{ID: "ghost"}) {
		t.Error("UserStore.Update inserted a missing key")
	}
	if _, ok := users.Delete("ghost"); ok {
		t.Error("UserStore.Delete reported success for a missing key")
	}

	skills := NewSkillStore()
	if skills.Update(models.Skill{ID: "ghost"}) {
		t.Error("SkillStore.Update inserted a missing key")
	}
	if _, ok := skills.Delete("ghost"); ok {
		t.Error("SkillStore.Delete reported success for a missing key")
	}

	reports := NewReportStore()
	if _, ok := reports.Delete("ghost"); ok {
		t.Error("ReportStore.Delete reported success for a missing key")
	}

	messages := NewMessageStore()
	if messages.Update(models.Message{ID: "ghost"}) {
		t.Error("MessageStore.Update inserted a missing key")
	}
	if _, ok := messages.Delete("ghost"); ok {
		t.Error("MessageStore.Delete reported success for a missing key")
	}
}

func TestSkillStoreAll(t *testing.T) {
	s := NewSkillStore()
	s.Put(models.Skill{ID: "s-1", Title: "Go"})
	s.Put(models.Skill{ID: "s-2", Title: "Piano"})

	all := s.All()
	if len(all) != 2 {
		t.Fatalf("All returned %d skills, want 2", len(all))
	}
	seen := map[string]bool{}
	for _, sk := range all {
		seen[sk.ID] = true
	}
	if !seen["s-1"] || !seen["s-2"] {
		t.Errorf("All missing entries: %v", seen)
	}
}

func TestMessageStoreKeepsReplyPointer(t *testing.T) {
	s := NewMessageStore()
	s.Put(models.Message{ID: "m-1", Status: models.MessageStatusNew})

	m, _ := s.Get("m-1")
	m.Status = models.MessageStatusRead
	m.Reply = &models.Reply{ID: "rp-1", MessageID: "m-1", AdminName: "Admin", Content: "hi"}
	if !s.Update(m) {
		t.Fatal("Update reported a miss")
	}

	got, _ := s.Get("m-1")
	if got.Reply == nil || got.Reply.ID != "rp-1" {
		t.Errorf("reply not stored: %+v", got.Reply)
	}
}
