package scoring

import (
	"os"
	"path/filepath"
	"testing"

	"placement_portal_backend/internal/leads/domain"
)

func TestLoadCatalogEmbeddedDefault(t *testing.T) {
	catalog, err := LoadCatalog("")
	if err != nil {
		t.Fatalf("LoadCatalog(\"\") failed: %v", err)
	}

	for _, grade := range []Grade{GradeA, GradeB, GradeC, GradeD, GradeF} {
		if len(catalog.GradeRecommendations[grade]) == 0 {
			t.Errorf("embedded catalog has no recommendations for grade %s", grade)
		}
	}
	if catalog.FollowUpTemplatePrefix != "follow_up_day" {
		t.Errorf("unexpected follow-up prefix %q", catalog.FollowUpTemplatePrefix)
	}
	if catalog.ActionScripts[ActionCallNow] == "" {
		t.Error("embedded catalog has no CALL_NOW script")
	}
}

func TestLoadCatalogMissingFile(t *testing.T) {
	if _, err := LoadCatalog(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for a missing catalog file")
	}
}

func TestLoadCatalogRejectsIncompleteGrades(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	partial := []byte("grade_recommendations:\n  A:\n    - \"Call now\"\nfollow_up_template_prefix: \"follow_up_day\"\n")
	if err := os.WriteFile(path, partial, 0o600); err != nil {
		t.Fatalf("write temp catalog: %v", err)
	}

	if _, err := LoadCatalog(path); err == nil {
		t.Fatal("expected error for a catalog missing grade buckets")
	}
}

func TestRecommendationsOrder(t *testing.T) {
	catalog, err := LoadCatalog("")
	if err != nil {
		t.Fatalf("LoadCatalog failed: %v", err)
	}

	lead := domain.Lead{IsVeteran: true, CurrentlyHomeless: true}
	recs := catalog.recommendationsFor(GradeA, lead)

	generic := len(catalog.GradeRecommendations[GradeA])
	if len(recs) != generic+2 {
		t.Fatalf("expected %d recommendations, got %d: %v", generic+2, len(recs), recs)
	}
	for i, want := range catalog.GradeRecommendations[GradeA] {
		if recs[i] != want {
			t.Errorf("recommendation %d = %q, want grade bucket item %q", i, recs[i], want)
		}
	}
	if recs[generic] != catalog.ProfileRecommendations.Veteran {
		t.Errorf("expected veteran addition after grade items, got %q", recs[generic])
	}
	if recs[generic+1] != catalog.ProfileRecommendations.CurrentlyHomeless {
		t.Errorf("expected homeless addition last, got %q", recs[generic+1])
	}
}

func TestRecommendationsNoProfileAdditions(t *testing.T) {
	catalog, err := LoadCatalog("")
	if err != nil {
		t.Fatalf("LoadCatalog failed: %v", err)
	}

	recs := catalog.recommendationsFor(GradeC, domain.Lead{})
	if len(recs) != len(catalog.GradeRecommendations[GradeC]) {
		t.Fatalf("expected only grade bucket items, got %v", recs)
	}
}
