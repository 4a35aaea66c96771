package storage

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"gorm.io/gorm/logger"

	"github.com/aTrapDeer/portfolio-backend/internal/content"
)

func openTestStore(t *testing.T, path string) *Store {
	t.Helper()
	store, err := Open(Options{Driver: DriverSQLite, DSN: path, LogLevel: logger.Silent})
	if err != nil {
		t.Fatalf("Failed to open test store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	return openTestStore(t, filepath.Join(t.TempDir(), "portfolio.db"))
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	_, err := Open(Options{Driver: "oracle", DSN: "x"})
	if err == nil {
		t.Fatal("Expected error for unsupported driver")
	}
}

func TestUsers(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	missing, err := store.GetUser(ctx, 1)
	if err != nil || missing != nil {
		t.Fatalf("Expected (nil, nil) for missing user, got (%v, %v)", missing, err)
	}

	user, err := store.CreateUser(ctx, content.NewUser{Username: "andrew", Password: "$2a$10$hash"})
	if err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	if user.ID == 0 {
		t.Error("Expected an assigned ID")
	}

	byID, err := store.GetUser(ctx, user.ID)
	if err != nil || byID == nil || byID.Username != "andrew" {
		t.Errorf("GetUser returned (%v, %v)", byID, err)
	}
	byName, err := store.GetUserByUsername(ctx, "andrew")
	if err != nil || byName == nil || byName.ID != user.ID {
		t.Errorf("GetUserByUsername returned (%v, %v)", byName, err)
	}
	none, err := store.GetUserByUsername(ctx, "nobody")
	if err != nil || none != nil {
		t.Errorf("Expected (nil, nil) for unknown username, got (%v, %v)", none, err)
	}

	_, err = store.CreateUser(ctx, content.NewUser{Username: "andrew", Password: "other"})
	if !errors.Is(err, ErrUniqueViolation) {
		t.Fatalf("Expected ErrUniqueViolation, got %v", err)
	}
	var storageErr *StorageError
	if !errors.As(err, &storageErr) {
		t.Errorf("Expected *StorageError, got %T", err)
	}
}

func TestContactMessages(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	seen := map[uint]bool{}
	var last time.Time
	for i := 0; i < 5; i++ {
		msg, err := store.CreateContactMessage(ctx, content.NewContactMessage{
			Name: "Jane", Email: "jane@x.com", Subject: "Hi", Message: "Hello there",
		})
		if err != nil {
			t.Fatalf("CreateContactMessage failed: %v", err)
		}
		if msg.ID == 0 || seen[msg.ID] {
			t.Errorf("Expected a fresh ID, got %d", msg.ID)
		}
		seen[msg.ID] = true
		if msg.CreatedAt.IsZero() {
			t.Error("Expected createdAt to be set")
		}
		if msg.CreatedAt.Before(last) {
			t.Errorf("createdAt went backwards: %v after %v", msg.CreatedAt, last)
		}
		last = msg.CreatedAt
	}

	n, err := store.CountContactMessages(ctx)
	if err != nil || n != 5 {
		t.Errorf("Expected 5 messages, got %d (%v)", n, err)
	}
}

func TestGetContactMessages_OldestFirst(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	stamps := []time.Time{base.Add(2 * time.Hour), base, base.Add(time.Hour), base}
	for i, ts := range stamps {
		store.now = func() time.Time { return ts }
		_, err := store.CreateContactMessage(ctx, content.NewContactMessage{
			Name: "Jane", Email: "jane@x.com", Subject: "Hi", Message: string(rune('a' + i)),
		})
		if err != nil {
			t.Fatalf("CreateContactMessage failed: %v", err)
		}
	}

	messages, err := store.GetContactMessages(ctx)
	if err != nil {
		t.Fatalf("GetContactMessages failed: %v", err)
	}
	want := []string{"b", "d", "c", "a"}
	if len(messages) != len(want) {
		t.Fatalf("Expected %d messages, got %d", len(want), len(messages))
	}
	for i, m := range messages {
		if m.Message != want[i] {
			t.Errorf("Position %d: expected message '%s', got '%s'", i, want[i], m.Message)
		}
	}
}

func TestGetProjects_Ordering(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	inputs := []struct {
		title    string
		order    int
		featured bool
	}{
		{"c", 2, true},
		{"a", 1, false},
		{"d", 2, false},
		{"z", 0, true},
		{"e", 2, true},
	}
	for _, in := range inputs {
		_, err := store.CreateProject(ctx, content.NewProject{
			Title: in.title, Description: "desc", Technologies: []string{"Go"},
			IsFeatured: in.featured, Order: in.order,
		})
		if err != nil {
			t.Fatalf("CreateProject failed: %v", err)
		}
	}

	projects, err := store.GetProjects(ctx)
	if err != nil {
		t.Fatalf("GetProjects failed: %v", err)
	}
	got := ""
	for i, p := range projects {
		got += p.Title
		if i > 0 {
			prev := projects[i-1]
			if p.Order < prev.Order || (p.Order == prev.Order && p.ID < prev.ID) {
				t.Errorf("Projects out of order at %d: %+v before %+v", i, prev, p)
			}
		}
	}
	if got != "zacde" {
		t.Errorf("Expected order 'zacde', got '%s'", got)
	}

	featured, err := store.GetFeaturedProjects(ctx)
	if err != nil {
		t.Fatalf("GetFeaturedProjects failed: %v", err)
	}
	// featured must be the isFeatured subsequence of the full list
	var want []uint
	for _, p := range projects {
		if p.IsFeatured {
			want = append(want, p.ID)
		}
	}
	if len(featured) != len(want) {
		t.Fatalf("Expected %d featured projects, got %d", len(want), len(featured))
	}
	for i, p := range featured {
		if !p.IsFeatured || p.ID != want[i] {
			t.Errorf("Featured position %d: expected ID %d, got %+v", i, want[i], p)
		}
	}
}

func TestCreateProject_Defaults(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	created, err := store.CreateProject(ctx, content.NewProject{Title: "Bare", Description: "No extras"})
	if err != nil {
		t.Fatalf("CreateProject failed: %v", err)
	}
	if created.IsFeatured || created.Order != 0 {
		t.Errorf("Expected defaults isFeatured=false order=0, got %+v", created)
	}

	projects, err := store.GetProjects(ctx)
	if err != nil || len(projects) != 1 {
		t.Fatalf("Expected 1 project, got %d (%v)", len(projects), err)
	}
	p := projects[0]
	if p.Technologies == nil || len(p.Technologies) != 0 {
		t.Errorf("Expected empty non-nil technologies, got %#v", p.Technologies)
	}
	if p.ImageURL != nil || p.GithubURL != nil || p.LiveURL != nil {
		t.Errorf("Expected nil URLs, got %+v", p)
	}
}

func TestExperiences(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	_, err := store.CreateExperience(ctx, content.NewExperience{
		Title: "Lead", Company: "Acme", StartDate: "2022", Description: "Leading",
		Responsibilities: []string{"Hiring", "Roadmap"}, Order: 2,
	})
	if err != nil {
		t.Fatalf("CreateExperience failed: %v", err)
	}
	_, err = store.CreateExperience(ctx, content.NewExperience{
		Title: "Dev", Company: "Acme", StartDate: "2019", EndDate: content.Text("2022"),
		Description: "Coding", Responsibilities: []string{"Shipping"}, Order: 1,
	})
	if err != nil {
		t.Fatalf("CreateExperience failed: %v", err)
	}

	experiences, err := store.GetExperiences(ctx)
	if err != nil {
		t.Fatalf("GetExperiences failed: %v", err)
	}
	if len(experiences) != 2 || experiences[0].Title != "Dev" || experiences[1].Title != "Lead" {
		t.Fatalf("Unexpected experiences: %+v", experiences)
	}
	if experiences[1].EndDate != nil {
		t.Error("Expected ongoing experience to have nil endDate")
	}
	if len(experiences[1].Responsibilities) != 2 || experiences[1].Responsibilities[1] != "Roadmap" {
		t.Errorf("Responsibilities not preserved in order: %v", experiences[1].Responsibilities)
	}
}

func TestGetSkillsByCategory(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	if _, err := store.Seed(ctx); err != nil {
		t.Fatalf("Seed failed: %v", err)
	}
	_, err := store.CreateSkill(ctx, content.NewSkill{
		Name: "Go", Category: content.CategoryBackend, Percentage: content.Percent(0), Order: 1,
	})
	if err != nil {
		t.Fatalf("CreateSkill failed: %v", err)
	}

	all, err := store.GetSkills(ctx)
	if err != nil {
		t.Fatalf("GetSkills failed: %v", err)
	}
	for i := 1; i < len(all); i++ {
		if all[i].Order < all[i-1].Order {
			t.Errorf("Skills out of order at %d", i)
		}
	}

	for _, category := range content.Categories {
		var want []uint
		for _, s := range all {
			if s.Category == category {
				want = append(want, s.ID)
			}
		}
		got, err := store.GetSkillsByCategory(ctx, string(category))
		if err != nil {
			t.Fatalf("GetSkillsByCategory(%s) failed: %v", category, err)
		}
		if len(got) != len(want) {
			t.Fatalf("%s: expected %d skills, got %d", category, len(want), len(got))
		}
		for i := range got {
			if got[i].ID != want[i] {
				t.Errorf("%s position %d: expected ID %d, got %d", category, i, want[i], got[i].ID)
			}
		}
	}

	for _, category := range []string{"unknown-category", "Frontend"} {
		got, err := store.GetSkillsByCategory(ctx, category)
		if err != nil {
			t.Fatalf("GetSkillsByCategory(%s) failed: %v", category, err)
		}
		if got == nil || len(got) != 0 {
			t.Errorf("%s: expected empty non-nil list, got %#v", category, got)
		}
	}
}

func TestClosedStoreReturnsStorageError(t *testing.T) {
	store := setupTestStore(t)
	store.Close()

	_, err := store.GetProjects(context.Background())
	var storageErr *StorageError
	if !errors.As(err, &storageErr) {
		t.Fatalf("Expected *StorageError, got %v", err)
	}
	if storageErr.Op != "get projects" {
		t.Errorf("Expected op 'get projects', got '%s'", storageErr.Op)
	}
}
