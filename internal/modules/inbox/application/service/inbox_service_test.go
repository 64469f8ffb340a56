package service

import (
	"sync"
	"testing"

	chatEntity "LiveDesk/internal/modules/chat/domain/entity"
	inboxEntity "LiveDesk/internal/modules/inbox/domain/entity"
	"LiveDesk/pkg/xerr"

	"gorm.io/gorm"
)

type fakeInboxRepo struct {
	mu      sync.Mutex
	inboxes map[string]*inboxEntity.Inbox
}

func newFakeInboxRepo() *fakeInboxRepo {
	return &fakeInboxRepo{inboxes: make(map[string]*inboxEntity.Inbox)}
}

func (r *fakeInboxRepo) ListByTeam(teamID string) ([]inboxEntity.Inbox, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []inboxEntity.Inbox
	for _, in := range r.inboxes {
		if in.TeamId == teamID {
			out = append(out, *in)
		}
	}
	return out, nil
}

func (r *fakeInboxRepo) GetByID(teamID string, id string) (*inboxEntity.Inbox, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	in, ok := r.inboxes[id]
	if !ok || in.TeamId != teamID {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *in
	return &cp, nil
}

func (r *fakeInboxRepo) Create(inbox *inboxEntity.Inbox) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *inbox
	r.inboxes[inbox.Id] = &cp
	return nil
}

func (r *fakeInboxRepo) Rename(teamID string, id string, name string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	in, ok := r.inboxes[id]
	if !ok || in.TeamId != teamID {
		return 0, nil
	}
	in.Name = name
	return 1, nil
}

func (r *fakeInboxRepo) Delete(teamID string, id string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	in, ok := r.inboxes[id]
	if !ok || in.TeamId != teamID {
		return 0, nil
	}
	delete(r.inboxes, id)
	return 1, nil
}

type detachRecorder struct {
	mu       sync.Mutex
	detached []string
}

func (d *detachRecorder) UpsertOnMessage(conv *chatEntity.Conversation, fromCustomer bool) error {
	return nil
}
func (d *detachRecorder) GetByRoomID(roomID string) (*chatEntity.Conversation, error) {
	return nil, gorm.ErrRecordNotFound
}
func (d *detachRecorder) GetByIDOrRoom(teamID string, key string) (*chatEntity.Conversation, error) {
	return nil, gorm.ErrRecordNotFound
}
func (d *detachRecorder) ListByTeam(teamID string, limit int) ([]chatEntity.Conversation, error) {
	return nil, nil
}
func (d *detachRecorder) UpdateFields(teamID string, conversationID string, fields map[string]interface{}) (int64, error) {
	return 0, nil
}
func (d *detachRecorder) DetachFromInbox(teamID string, inboxID string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.detached = append(d.detached, teamID+"/"+inboxID)
	return nil
}

func TestListProvisionsDefaultInbox(t *testing.T) {
	repo := newFakeInboxRepo()
	svc := NewInboxService(repo, &detachRecorder{})

	items, err := svc.ListForTeam("team-1")
	if err != nil {
		t.Fatalf("ListForTeam: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("items = %d, want 1", len(items))
	}
	if items[0].Name != "Main inbox" || !items[0].IsDefault {
		t.Fatalf("default inbox = %+v", items[0])
	}

	// Second read does not create another one.
	again, err := svc.ListForTeam("team-1")
	if err != nil {
		t.Fatalf("ListForTeam: %v", err)
	}
	if len(again) != 1 {
		t.Fatalf("items after re-read = %d, want 1", len(again))
	}
}

func TestDeleteDetachesConversations(t *testing.T) {
	repo := newFakeInboxRepo()
	detach := &detachRecorder{}
	svc := NewInboxService(repo, detach)

	item, err := svc.Create("team-1", "Sales")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := svc.Delete("team-1", item.Id); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if len(detach.detached) != 1 || detach.detached[0] != "team-1/"+item.Id {
		t.Fatalf("detach calls = %v", detach.detached)
	}
	if _, err := repo.GetByID("team-1", item.Id); err == nil {
		t.Fatal("inbox still present")
	}
}

func TestDeleteUnknownInbox(t *testing.T) {
	svc := NewInboxService(newFakeInboxRepo(), &detachRecorder{})

	err := svc.Delete("team-1", "missing")
	if err == nil {
		t.Fatal("delete of unknown inbox succeeded")
	}
	if ce, ok := err.(*xerr.CodeError); !ok || ce.Code != xerr.NotFound {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRenameValidation(t *testing.T) {
	repo := newFakeInboxRepo()
	svc := NewInboxService(repo, &detachRecorder{})

	item, _ := svc.Create("team-1", "Sales")
	if _, err := svc.Rename("team-1", item.Id, "  "); err == nil {
		t.Fatal("blank name accepted")
	}

	renamed, err := svc.Rename("team-1", item.Id, "Support")
	if err != nil {
		t.Fatalf("Rename: %v", err)
	}
	if renamed.Name != "Support" {
		t.Fatalf("name = %q", renamed.Name)
	}

	if _, err := svc.Rename("team-2", item.Id, "Steal"); err == nil {
		t.Fatal("cross-tenant rename succeeded")
	}
}
