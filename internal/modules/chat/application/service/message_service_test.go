package service

import (
	"testing"
	"time"

	chatEntity "LiveDesk/internal/modules/chat/domain/entity"
)

func TestHistoryAppliesCap(t *testing.T) {
	msgRepo := &fakeMessageRepo{}
	convRepo := newFakeConversationRepo()
	svc := NewMessageService(msgRepo, convRepo)

	if _, err := svc.History("room-1", "team-1"); err != nil {
		t.Fatalf("History: %v", err)
	}
	if msgRepo.lastLimit != 200 {
		t.Fatalf("history limit = %d, want 200", msgRepo.lastLimit)
	}
	if msgRepo.lastTeam != "team-1" {
		t.Fatalf("team filter = %q, want team-1", msgRepo.lastTeam)
	}
}

func TestPublicHistorySkipsTeamFilter(t *testing.T) {
	msgRepo := &fakeMessageRepo{
		messages: []chatEntity.Message{
			{Id: "M1", RoomId: "room-1", TeamId: "team-1", Content: "hi", Sender: "visitor-abc", CreatedAt: time.Now()},
			{Id: "M2", RoomId: "room-2", TeamId: "team-1", Content: "other", Sender: "visitor-def", CreatedAt: time.Now()},
		},
	}
	svc := NewMessageService(msgRepo, newFakeConversationRepo())

	items, err := svc.PublicHistory("room-1")
	if err != nil {
		t.Fatalf("PublicHistory: %v", err)
	}
	if msgRepo.lastTeam != "" {
		t.Fatalf("team filter = %q, want empty", msgRepo.lastTeam)
	}
	if len(items) != 1 || items[0].Id != "M1" {
		t.Fatalf("items = %+v", items)
	}

	if _, err := svc.PublicHistory(""); err == nil {
		t.Fatal("empty roomId accepted")
	}
}

func TestListRoomsAppliesCap(t *testing.T) {
	convRepo := newFakeConversationRepo()
	svc := NewMessageService(&fakeMessageRepo{}, convRepo)

	if _, err := svc.ListRooms("team-1"); err != nil {
		t.Fatalf("ListRooms: %v", err)
	}
	if convRepo.lastLimit != 50 {
		t.Fatalf("rooms limit = %d, want 50", convRepo.lastLimit)
	}

	if _, err := svc.ListRooms(""); err == nil {
		t.Fatal("empty teamId accepted")
	}
}
