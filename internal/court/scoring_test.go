package court

import (
	"math"
	"testing"

	"github.com/legal-suite/backend/internal/models"
)

func accusationFixture() *models.AccusationScenario {
	return &models.AccusationScenario{
		ID:         "acc_test",
		Title:      "Test Theft",
		Difficulty: models.DifficultyBeginner,
		Points:     100,
		TimeLimit:  15,
		Evidence: []models.EvidenceItem{
			{ID: "e1", Relevance: "high"},
			{ID: "e2", Relevance: "high"},
			{ID: "e3", Relevance: "medium"},
			{ID: "e4", Relevance: "none"},
		},
		Suspects: []models.Suspect{
			{ID: "s1", IsCulprit: true},
			{ID: "s2", IsCulprit: false},
			{ID: "s3", IsCulprit: false},
		},
		CorrectAccusation: "aggravated theft with breaking",
		CorrectArticles:   []string{"Article 321", "Article 325"},
	}
}

func TestScoreAccusationPerfect(t *testing.T) {
	s := accusationFixture()
	result := ScoreAccusation(s, models.AccusationSubmission{
		ScenarioID:       s.ID,
		SelectedCulprits: []string{"s1"},
		SelectedEvidence: []string{"e1", "e2"},
		Accusation:       "aggravated theft with breaking",
		SelectedArticles: []string{"Article 321", "Article 325"},
		TimeTaken:        0,
	})

	want := int(math.Round(float64(s.Points) * 1.1))
	if result.Score != want {
		t.Errorf("perfect submission score = %d, want %d", result.Score, want)
	}
	if !result.Passed {
		t.Error("perfect submission should pass")
	}
}

func TestScoreAccusationEmpty(t *testing.T) {
	s := accusationFixture()
	result := ScoreAccusation(s, models.AccusationSubmission{ScenarioID: s.ID, TimeTaken: 0})

	if result.Score != 0 {
		t.Errorf("empty submission score = %d, want 0", result.Score)
	}
	if result.Passed {
		t.Error("empty submission should not pass")
	}
}

func TestScoreAccusationPartialCulprits(t *testing.T) {
	s := accusationFixture()
	// Right culprit plus a wrong one: half credit on the 30% component.
	// No time bonus at a slow time.
	result := ScoreAccusation(s, models.AccusationSubmission{
		ScenarioID:       s.ID,
		SelectedCulprits: []string{"s1", "s2"},
		TimeTaken:        s.TimeLimit * 60,
	})

	if result.Score != 15 {
		t.Errorf("partial culprit score = %d, want 15", result.Score)
	}
	if result.Passed {
		t.Error("partial culprit submission alone should not pass")
	}
}

func TestScoreAccusationEvidencePartial(t *testing.T) {
	s := accusationFixture()
	// One relevant of three selected: 25 * 1/3 rounds to 8.
	result := ScoreAccusation(s, models.AccusationSubmission{
		ScenarioID:       s.ID,
		SelectedEvidence: []string{"e3"},
		TimeTaken:        s.TimeLimit * 60,
	})

	if result.Score != 8 {
		t.Errorf("partial evidence score = %d, want 8", result.Score)
	}
}

func TestScoreAccusationTextVariants(t *testing.T) {
	s := accusationFixture()
	slow := s.TimeLimit * 60

	// Shares a token with the correct accusation, case-insensitively.
	result := ScoreAccusation(s, models.AccusationSubmission{
		ScenarioID: s.ID,
		Accusation: "simple THEFT",
		TimeTaken:  slow,
	})
	if result.Score != 25 {
		t.Errorf("token-match accusation score = %d, want 25", result.Score)
	}

	// Non-empty, no shared token: 10% of max.
	result = ScoreAccusation(s, models.AccusationSubmission{
		ScenarioID: s.ID,
		Accusation: "completely unrelated charge",
		TimeTaken:  slow,
	})
	if result.Score != 10 {
		t.Errorf("no-token accusation score = %d, want 10", result.Score)
	}
}

func TestScoreAccusationArticlesPartial(t *testing.T) {
	s := accusationFixture()
	// One of two articles matched: 20 * 1/2 = 10.
	result := ScoreAccusation(s, models.AccusationSubmission{
		ScenarioID:       s.ID,
		SelectedArticles: []string{"Article 321", "Article 999"},
		TimeTaken:        s.TimeLimit * 60,
	})

	if result.Score != 10 {
		t.Errorf("partial article score = %d, want 10", result.Score)
	}
}

func TestScoreAccusationBounds(t *testing.T) {
	s := accusationFixture()
	submissions := []models.AccusationSubmission{
		{},
		{SelectedCulprits: []string{"s2", "s3"}, SelectedEvidence: []string{"e4"}, Accusation: "x", SelectedArticles: []string{"bogus"}},
		{SelectedCulprits: []string{"s1"}, SelectedEvidence: []string{"e1", "e2", "e3"}, Accusation: "theft", SelectedArticles: []string{"Article 321"}},
	}
	upper := int(math.Round(float64(s.Points) * 1.1))
	for i, sub := range submissions {
		result := ScoreAccusation(s, sub)
		if result.Score < 0 || result.Score > upper {
			t.Errorf("submission %d: score %d outside [0, %d]", i, result.Score, upper)
		}
	}
}

func pleadingFixture() *models.PleadingScenario {
	return &models.PleadingScenario{
		ID:         "plead_test",
		Title:      "Test Defense",
		Difficulty: models.DifficultyBeginner,
		Points:     100,
		TimeLimit:  10,
		AvailableDefenses: []models.Defense{
			{ID: "d1", Score: 25, IsStrong: true},
			{ID: "d2", Score: 30, IsStrong: true},
			{ID: "d3", Score: 25, IsStrong: true},
			{ID: "d4", Score: 5, IsStrong: false},
			{ID: "d5", Score: 5, IsStrong: false},
		},
		WinningThreshold: 70,
	}
}

func TestScorePleadingAllStrong(t *testing.T) {
	s := pleadingFixture()
	result := ScorePleading(s, models.PleadingSubmission{
		ScenarioID:       s.ID,
		SelectedDefenses: []string{"d1", "d2", "d3"},
		TimeTaken:        s.TimeLimit * 60,
	})

	if result.Score != 100 {
		t.Errorf("all-strong score = %d, want 100", result.Score)
	}
	if !result.Passed {
		t.Error("100% of strong defenses should pass any threshold <= 100")
	}
}

func TestScorePleadingPartial(t *testing.T) {
	s := pleadingFixture()
	// 30 of 80 possible: 37.5% → floor(100 * 37.5 / 100) = 37.
	result := ScorePleading(s, models.PleadingSubmission{
		ScenarioID:       s.ID,
		SelectedDefenses: []string{"d2"},
		TimeTaken:        s.TimeLimit * 60,
	})

	if result.Score != 37 {
		t.Errorf("partial pleading score = %d, want 37", result.Score)
	}
	if result.Passed {
		t.Error("37.5% should not pass a 70% threshold")
	}
}

func TestScorePleadingWeakOnly(t *testing.T) {
	s := pleadingFixture()
	// 10 of 80 possible: 12.5% → floor = 12, below threshold.
	result := ScorePleading(s, models.PleadingSubmission{
		ScenarioID:       s.ID,
		SelectedDefenses: []string{"d4", "d5"},
		TimeTaken:        s.TimeLimit * 60,
	})

	if result.Score != 12 {
		t.Errorf("weak-only score = %d, want 12", result.Score)
	}
	if result.Passed {
		t.Error("weak-only selection should not pass")
	}
}

func TestScorePleadingEverythingSelectedStaysBounded(t *testing.T) {
	s := pleadingFixture()
	// Selecting weak defenses on top of all strong ones pushes the raw
	// total past max_possible; the score must not exceed the bonus ceiling.
	result := ScorePleading(s, models.PleadingSubmission{
		ScenarioID:       s.ID,
		SelectedDefenses: []string{"d1", "d2", "d3", "d4", "d5"},
		TimeTaken:        0,
	})

	upper := int(math.Round(float64(s.Points) * 1.1))
	if result.Score > upper {
		t.Errorf("over-selection score = %d, exceeds ceiling %d", result.Score, upper)
	}
	if !result.Passed {
		t.Error("over-selection still exceeds the winning threshold")
	}
}

func TestScorePleadingNoStrongDefenses(t *testing.T) {
	s := &models.PleadingScenario{
		ID:     "plead_broken",
		Points: 100,
		AvailableDefenses: []models.Defense{
			{ID: "d1", Score: 10, IsStrong: false},
		},
		WinningThreshold: 50,
		TimeLimit:        10,
	}
	result := ScorePleading(s, models.PleadingSubmission{ScenarioID: s.ID, SelectedDefenses: []string{"d1"}})

	if result.Score != 0 || result.Passed {
		t.Errorf("scenario without strong defenses: score = %d, passed = %v, want 0 and false", result.Score, result.Passed)
	}
}

func proceduralFixture() *models.ProceduralScenario {
	return &models.ProceduralScenario{
		ID:         "proc_test",
		Title:      "Test Proceedings",
		Difficulty: models.DifficultyBeginner,
		Points:     100,
		TimeLimit:  8,
		Errors: []models.ProceedingError{
			{ID: "e1", IsError: true},
			{ID: "e2", IsError: false},
			{ID: "e3", IsError: true},
			{ID: "e4", IsError: false},
		},
	}
}

func TestScoreProceduralPerfect(t *testing.T) {
	s := proceduralFixture()
	result := ScoreProcedural(s, models.ProceduralSubmission{
		ScenarioID:     s.ID,
		SelectedErrors: []string{"e1", "e3"},
		TimeTaken:      s.TimeLimit * 60,
	})

	if result.Score != s.Points {
		t.Errorf("perfect score = %d, want %d", result.Score, s.Points)
	}
	if !result.Passed {
		t.Error("perfect submission should pass")
	}
}

func TestScoreProceduralOneCorrectOneFalse(t *testing.T) {
	s := proceduralFixture()
	// Two true errors: points_per_correct = 50, penalty = 25.
	// One correct, one false positive → round(50 - 25) = 25.
	result := ScoreProcedural(s, models.ProceduralSubmission{
		ScenarioID:     s.ID,
		SelectedErrors: []string{"e1", "e2"},
		TimeTaken:      s.TimeLimit * 60,
	})

	if result.Score != 25 {
		t.Errorf("one correct one false score = %d, want 25", result.Score)
	}
	if result.Passed {
		t.Error("25 of 100 should not pass the 60% threshold")
	}
}

func TestScoreProceduralAllFalsePositives(t *testing.T) {
	s := proceduralFixture()
	result := ScoreProcedural(s, models.ProceduralSubmission{
		ScenarioID:     s.ID,
		SelectedErrors: []string{"e2", "e4"},
		TimeTaken:      0,
	})

	if result.Score != 0 {
		t.Errorf("all-false-positive score = %d, want 0 (penalties clamp at zero, no bonus)", result.Score)
	}
	if result.Passed {
		t.Error("all-false-positive submission should not pass")
	}
}

func TestScoreProceduralTimeBonus(t *testing.T) {
	s := proceduralFixture()
	// Under half the budget: 8 minutes * 30 = 240 second cutoff.
	result := ScoreProcedural(s, models.ProceduralSubmission{
		ScenarioID:     s.ID,
		SelectedErrors: []string{"e1", "e3"},
		TimeTaken:      239,
	})

	if result.Score != 110 {
		t.Errorf("fast perfect score = %d, want 110", result.Score)
	}

	// At the cutoff exactly, no bonus.
	result = ScoreProcedural(s, models.ProceduralSubmission{
		ScenarioID:     s.ID,
		SelectedErrors: []string{"e1", "e3"},
		TimeTaken:      240,
	})
	if result.Score != 100 {
		t.Errorf("at-cutoff score = %d, want 100", result.Score)
	}
}

func TestScoreProceduralNoTrueErrors(t *testing.T) {
	s := &models.ProceduralScenario{
		ID:     "proc_broken",
		Points: 100,
		Errors: []models.ProceedingError{
			{ID: "e1", IsError: false},
		},
		TimeLimit: 8,
	}
	result := ScoreProcedural(s, models.ProceduralSubmission{ScenarioID: s.ID, SelectedErrors: []string{"e1"}})

	if result.Score != 0 || result.Passed {
		t.Errorf("scenario without true errors: score = %d, passed = %v, want 0 and false", result.Score, result.Passed)
	}
}

func TestSharesToken(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"aggravated theft", "theft with breaking", true},
		{"Theft", "theft", true},
		{"fraud", "theft with breaking", false},
		{"", "theft", false},
	}
	for _, tt := range tests {
		if got := sharesToken(tt.a, tt.b); got != tt.want {
			t.Errorf("sharesToken(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}
