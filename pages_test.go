package clubsite

import (
	"context"
	"encoding/json"
	"testing"
)

func setupPagesRepo(t *testing.T) *PagesRepo {
	t.Helper()
	return NewPagesRepo(setupTestStorage(t), newDocLocks())
}

func TestPagesDefaultShape(t *testing.T) {
	repo := setupPagesRepo(t)

	data, err := repo.Load(context.Background())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	for name, page := range map[string]*PageData{
		"home": data.Home, "about": data.About, "impact": data.Impact, "programs": data.Programs,
	} {
		if page == nil {
			t.Errorf("default %s page missing", name)
		}
	}
}

func TestGetPageUnknown(t *testing.T) {
	repo := setupPagesRepo(t)

	if _, err := repo.GetPage(context.Background(), "contact"); err != ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestReplaceSectionPreservesOthers(t *testing.T) {
	repo := setupPagesRepo(t)
	ctx := context.Background()

	// Update A touches the hero, update B the mission. B must not disturb A.
	if _, err := repo.ReplaceSection(ctx, adminSession, "home", "hero",
		json.RawMessage(`{"title":"Welcome","subtitle":"Learn AI with us"}`)); err != nil {
		t.Fatalf("ReplaceSection hero failed: %v", err)
	}
	if _, err := repo.ReplaceSection(ctx, adminSession, "home", "mission",
		json.RawMessage(`{"content":"Teach every student"}`)); err != nil {
		t.Fatalf("ReplaceSection mission failed: %v", err)
	}

	page, err := repo.GetPage(ctx, "home")
	if err != nil {
		t.Fatalf("GetPage failed: %v", err)
	}
	if page.Hero == nil || page.Hero.Title != "Welcome" {
		t.Errorf("Hero = %+v, want title Welcome", page.Hero)
	}
	if page.Mission == nil || page.Mission.Content != "Teach every student" {
		t.Errorf("Mission = %+v, want content set", page.Mission)
	}
}

func TestReplaceSectionUnknownSection(t *testing.T) {
	repo := setupPagesRepo(t)

	_, err := repo.ReplaceSection(context.Background(), adminSession, "home", "sidebar",
		json.RawMessage(`{}`))
	if err != ErrUnknownSection {
		t.Errorf("expected ErrUnknownSection, got %v", err)
	}
}

func TestReplacePage(t *testing.T) {
	repo := setupPagesRepo(t)
	ctx := context.Background()

	_, err := repo.ReplacePage(ctx, adminSession, "about", PageData{
		Hero: &Hero{Title: "About Us"},
		Team: &Team{Officers: []TeamMember{{Name: "Ada", Role: "President"}}},
	})
	if err != nil {
		t.Fatalf("ReplacePage failed: %v", err)
	}

	page, err := repo.GetPage(ctx, "about")
	if err != nil {
		t.Fatalf("GetPage failed: %v", err)
	}
	if page.Hero.Title != "About Us" {
		t.Errorf("Hero.Title = %q, want %q", page.Hero.Title, "About Us")
	}
	if len(page.Team.Officers) != 1 || page.Team.Officers[0].Name != "Ada" {
		t.Errorf("Team = %+v, want one officer Ada", page.Team)
	}
}

func TestReplacePageUnknownPage(t *testing.T) {
	repo := setupPagesRepo(t)

	if _, err := repo.ReplacePage(context.Background(), adminSession, "blog", PageData{}); err != ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestPagesMutationsRejectInvalidSession(t *testing.T) {
	repo := setupPagesRepo(t)
	ctx := context.Background()

	anon := Session{}
	if _, err := repo.ReplacePage(ctx, anon, "home", PageData{}); err != ErrUnauthorized {
		t.Errorf("ReplacePage: expected ErrUnauthorized, got %v", err)
	}
	if _, err := repo.ReplaceSection(ctx, anon, "home", "hero", json.RawMessage(`{}`)); err != ErrUnauthorized {
		t.Errorf("ReplaceSection: expected ErrUnauthorized, got %v", err)
	}
}
