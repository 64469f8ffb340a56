package service

import (
	"sync"
	"testing"

	etiquetteRequest "LiveDesk/internal/modules/etiquette/application/dto/request"
	etiquetteEntity "LiveDesk/internal/modules/etiquette/domain/entity"
	"LiveDesk/pkg/xerr"

	"gorm.io/gorm"
)

type fakeRepo struct {
	mu         sync.Mutex
	etiquettes map[string]*etiquetteEntity.Etiquette
	links      []etiquetteEntity.ConversationEtiquette
	deletedOps []string
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{etiquettes: make(map[string]*etiquetteEntity.Etiquette)}
}

func (r *fakeRepo) ListByTeam(teamID string) ([]etiquetteEntity.Etiquette, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []etiquetteEntity.Etiquette
	for _, e := range r.etiquettes {
		if e.TeamId == teamID {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (r *fakeRepo) GetByID(teamID string, id string) (*etiquetteEntity.Etiquette, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.etiquettes[id]
	if !ok || e.TeamId != teamID {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *e
	return &cp, nil
}

func (r *fakeRepo) GetBySlug(teamID string, slug string) (*etiquetteEntity.Etiquette, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.etiquettes {
		if e.TeamId == teamID && e.Slug == slug {
			cp := *e
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeRepo) Create(e *etiquetteEntity.Etiquette) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *e
	r.etiquettes[e.Id] = &cp
	return nil
}

func (r *fakeRepo) Update(teamID string, id string, fields map[string]interface{}) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.etiquettes[id]
	if !ok || e.TeamId != teamID {
		return 0, nil
	}
	if v, ok := fields["name"]; ok {
		e.Name = v.(string)
	}
	if v, ok := fields["slug"]; ok {
		e.Slug = v.(string)
	}
	if v, ok := fields["color"]; ok {
		e.Color = v.(string)
	}
	return 1, nil
}

func (r *fakeRepo) Delete(teamID string, id string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.etiquettes[id]
	if !ok || e.TeamId != teamID {
		return 0, nil
	}
	delete(r.etiquettes, id)
	r.deletedOps = append(r.deletedOps, "etiquette")
	return 1, nil
}

func (r *fakeRepo) CreateLink(link *etiquetteEntity.ConversationEtiquette) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.links = append(r.links, *link)
	return nil
}

func (r *fakeRepo) DeleteLink(conversationID string, etiquetteID string) (int64, error) {
	return 0, nil
}

func (r *fakeRepo) DeleteLinksByEtiquette(etiquetteID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.links[:0]
	for _, l := range r.links {
		if l.EtiquetteId != etiquetteID {
			kept = append(kept, l)
		}
	}
	r.links = kept
	r.deletedOps = append(r.deletedOps, "links")
	return nil
}

func TestNormalizeSlug(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"VIP Customer", "vip-customer"},
		{"  Billing / Refunds  ", "billing-refunds"},
		{"already-a-slug", "already-a-slug"},
		{"--a--b--", "a-b"},
		{"!!!", ""},
		{"Héllo", "h-llo"},
	}
	for _, tc := range cases {
		if got := NormalizeSlug(tc.in); got != tc.want {
			t.Fatalf("NormalizeSlug(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestCreateDerivesSlugFromName(t *testing.T) {
	repo := newFakeRepo()
	svc := NewEtiquetteService(repo)

	item, err := svc.Create("team-1", etiquetteRequest.CreateEtiquetteRequest{Name: "Urgent Billing"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if item.Slug != "urgent-billing" {
		t.Fatalf("slug = %q, want urgent-billing", item.Slug)
	}
	if item.Color == "" {
		t.Fatal("default color missing")
	}
}

func TestCreateRejectsDuplicateSlug(t *testing.T) {
	repo := newFakeRepo()
	svc := NewEtiquetteService(repo)

	if _, err := svc.Create("team-1", etiquetteRequest.CreateEtiquetteRequest{Name: "VIP"}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	_, err := svc.Create("team-1", etiquetteRequest.CreateEtiquetteRequest{Name: "vip!"})
	if err == nil {
		t.Fatal("duplicate slug accepted")
	}

	// The same slug in another team is fine.
	if _, err := svc.Create("team-2", etiquetteRequest.CreateEtiquetteRequest{Name: "VIP"}); err != nil {
		t.Fatalf("cross-team create: %v", err)
	}
}

func TestUpdateSlugCollision(t *testing.T) {
	repo := newFakeRepo()
	svc := NewEtiquetteService(repo)

	a, _ := svc.Create("team-1", etiquetteRequest.CreateEtiquetteRequest{Name: "VIP"})
	b, _ := svc.Create("team-1", etiquetteRequest.CreateEtiquetteRequest{Name: "Billing"})

	slug := "vip"
	if _, err := svc.Update("team-1", b.Id, etiquetteRequest.UpdateEtiquetteRequest{Slug: &slug}); err == nil {
		t.Fatal("slug collision accepted")
	}

	// Re-setting an etiquette's own slug is not a collision.
	if _, err := svc.Update("team-1", a.Id, etiquetteRequest.UpdateEtiquetteRequest{Slug: &slug}); err != nil {
		t.Fatalf("self-update: %v", err)
	}

	fresh := "fresh"
	_, err := svc.Update("team-1", "missing", etiquetteRequest.UpdateEtiquetteRequest{Slug: &fresh})
	if err == nil {
		t.Fatal("update of unknown etiquette succeeded")
	}
	if ce, ok := err.(*xerr.CodeError); !ok || ce.Code != xerr.NotFound {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDeleteRemovesLinksFirst(t *testing.T) {
	repo := newFakeRepo()
	svc := NewEtiquetteService(repo)

	item, _ := svc.Create("team-1", etiquetteRequest.CreateEtiquetteRequest{Name: "VIP"})
	_ = repo.CreateLink(&etiquetteEntity.ConversationEtiquette{ConversationId: "C1", EtiquetteId: item.Id})

	if err := svc.Delete("team-1", item.Id); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if len(repo.links) != 0 {
		t.Fatalf("links = %d, want 0", len(repo.links))
	}
	if len(repo.deletedOps) != 2 || repo.deletedOps[0] != "links" {
		t.Fatalf("delete order = %v, want links before etiquette", repo.deletedOps)
	}

	if err := svc.Delete("team-1", item.Id); err == nil {
		t.Fatal("second delete succeeded")
	}
}
