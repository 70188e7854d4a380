package court

import (
	"encoding/json"
	"strings"
	"testing"
)

// Ground-truth fields that must never appear in a pre-submission payload.
var forbiddenKeys = []string{
	"is_culprit",
	"correct_accusation",
	"correct_articles",
	"is_strong",
	"is_error",
	"explanation",
}

func assertNoGroundTruth(t *testing.T, payload interface{}) {
	t.Helper()
	raw, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	body := string(raw)
	for _, key := range forbiddenKeys {
		if strings.Contains(body, `"`+key+`"`) {
			t.Errorf("sanitized payload leaks ground-truth key %q", key)
		}
	}
	// Defense score contributions are ground truth too; the sanitized
	// defense shape has no score field at all.
	if strings.Contains(body, `"available_defenses"`) && strings.Contains(body, `"score"`) {
		t.Error("sanitized pleading payload leaks defense scores")
	}
}

func TestListScenariosStripGroundTruth(t *testing.T) {
	c := NewCatalog()

	assertNoGroundTruth(t, c.ListAccusation(""))
	assertNoGroundTruth(t, c.ListPleading(""))
	assertNoGroundTruth(t, c.ListProcedural(""))
}

func TestGetScenarioStripsGroundTruth(t *testing.T) {
	c := NewCatalog()

	for _, s := range c.ListAccusation("") {
		got, ok := c.GetAccusation(s.ID)
		if !ok {
			t.Fatalf("GetAccusation(%q) not found", s.ID)
		}
		assertNoGroundTruth(t, got)
	}
	for _, s := range c.ListPleading("") {
		got, ok := c.GetPleading(s.ID)
		if !ok {
			t.Fatalf("GetPleading(%q) not found", s.ID)
		}
		assertNoGroundTruth(t, got)
	}
	for _, s := range c.ListProcedural("") {
		got, ok := c.GetProcedural(s.ID)
		if !ok {
			t.Fatalf("GetProcedural(%q) not found", s.ID)
		}
		assertNoGroundTruth(t, got)
	}
}

func TestListScenariosDifficultyFilter(t *testing.T) {
	c := NewCatalog()

	filtered := c.ListAccusation("beginner")
	if len(filtered) == 0 {
		t.Fatal("expected at least one beginner accusation scenario")
	}
	for _, s := range filtered {
		if s.Difficulty != "beginner" {
			t.Errorf("scenario %s has difficulty %q, want beginner", s.ID, s.Difficulty)
		}
	}

	if got := c.ListPleading("nonexistent"); len(got) != 0 {
		t.Errorf("unknown difficulty returned %d scenarios, want 0", len(got))
	}
}

func TestGetScenarioNotFound(t *testing.T) {
	c := NewCatalog()

	if _, ok := c.GetAccusation("no_such_id"); ok {
		t.Error("GetAccusation should report missing scenario")
	}
	if _, ok := c.GetPleading("no_such_id"); ok {
		t.Error("GetPleading should report missing scenario")
	}
	if _, ok := c.GetProcedural("no_such_id"); ok {
		t.Error("GetProcedural should report missing scenario")
	}
}

func TestSeededScenariosAreScorable(t *testing.T) {
	c := NewCatalog()

	for _, s := range c.pleading {
		maxPossible := 0
		for _, d := range s.AvailableDefenses {
			if d.IsStrong {
				maxPossible += d.Score
			}
		}
		if maxPossible == 0 {
			t.Errorf("pleading scenario %s has no strong defenses", s.ID)
		}
	}

	for _, s := range c.procedural {
		trueErrors := 0
		for _, e := range s.Errors {
			if e.IsError {
				trueErrors++
			}
		}
		if trueErrors == 0 {
			t.Errorf("procedural scenario %s has no true errors", s.ID)
		}
	}

	for _, s := range c.accusation {
		culprits := 0
		for _, sp := range s.Suspects {
			if sp.IsCulprit {
				culprits++
			}
		}
		if culprits == 0 {
			t.Errorf("accusation scenario %s has no culprit", s.ID)
		}
	}
}
