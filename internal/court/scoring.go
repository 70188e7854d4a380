package court

import (
	"fmt"
	"log"
	"math"
	"strings"

	"github.com/legal-suite/backend/internal/models"
)

// The three scorers below are pure functions of (scenario, submission).
// They never touch storage; persistence is the service's job.

type componentOutcome struct {
	credit  float64 // fraction of the component's weight earned, 0..1
	status  string  // success, partial, error
	message string
}

type scoreComponent struct {
	weight float64 // fraction of the scenario's max score
	eval   func() componentOutcome
}

// runComponents evaluates each weighted component against maxScore and
// collects one feedback line per component. The total is kept as a float
// so rounding happens once, on the caller's final sum.
func runComponents(maxScore int, comps []scoreComponent) (float64, []models.GameFeedback) {
	var total float64
	feedback := make([]models.GameFeedback, 0, len(comps))
	for _, c := range comps {
		out := c.eval()
		total += c.weight * out.credit * float64(maxScore)
		feedback = append(feedback, models.GameFeedback{Type: out.status, Message: out.message})
	}
	return total, feedback
}

// timeBonus awards 10% of max score for finishing under half the time
// budget. time_limit is in minutes and time_taken in seconds, hence the
// 30x factor. No bonus when the base score is zero.
func timeBonus(maxScore, baseScore, timeTaken, timeLimit int) int {
	if baseScore <= 0 {
		return 0
	}
	if timeTaken < timeLimit*30 {
		return int(math.Round(float64(maxScore) * 0.10))
	}
	return 0
}

func ScoreAccusation(s *models.AccusationScenario, sub models.AccusationSubmission) models.GameResult {
	maxScore := s.Points

	culprits := make(map[string]bool)
	for _, sp := range s.Suspects {
		if sp.IsCulprit {
			culprits[sp.ID] = true
		}
	}
	relevant := make(map[string]bool)
	high := make(map[string]bool)
	for _, ev := range s.Evidence {
		switch ev.Relevance {
		case "high":
			high[ev.ID] = true
			relevant[ev.ID] = true
		case "medium":
			relevant[ev.ID] = true
		}
	}

	comps := []scoreComponent{
		{weight: 0.30, eval: func() componentOutcome {
			selected := toSet(sub.SelectedCulprits)
			switch {
			case setsEqual(selected, culprits):
				return componentOutcome{1, "success", "You identified the culprits exactly."}
			case intersectCount(selected, culprits) > 0:
				return componentOutcome{0.5, "partial", "You identified some culprits, but the accusation list is not exact."}
			default:
				return componentOutcome{0, "error", "None of the accused suspects is the actual culprit."}
			}
		}},
		{weight: 0.25, eval: func() componentOutcome {
			selected := toSet(sub.SelectedEvidence)
			if containsAll(selected, high) && containedIn(selected, relevant) {
				return componentOutcome{1, "success", "You built the case on the strongest evidence."}
			}
			if matched := intersectCount(selected, relevant); matched > 0 {
				credit := float64(matched) / float64(len(relevant))
				return componentOutcome{credit, "partial",
					fmt.Sprintf("You selected %d of %d relevant evidence items.", matched, len(relevant))}
			}
			return componentOutcome{0, "error", "The selected evidence does not support the case."}
		}},
		{weight: 0.25, eval: func() componentOutcome {
			text := strings.TrimSpace(sub.Accusation)
			if text == "" {
				return componentOutcome{0, "error", "No accusation was written."}
			}
			if sharesToken(text, s.CorrectAccusation) {
				return componentOutcome{1, "success", "The accusation names the right charge."}
			}
			return componentOutcome{0.4, "partial", "The accusation misses the correct charge."}
		}},
		{weight: 0.20, eval: func() componentOutcome {
			selected := toSet(sub.SelectedArticles)
			truth := toSet(s.CorrectArticles)
			if setsEqual(selected, truth) {
				return componentOutcome{1, "success", "All cited articles are correct."}
			}
			if matched := intersectCount(selected, truth); matched > 0 {
				credit := float64(matched) / float64(len(truth))
				return componentOutcome{credit, "partial",
					fmt.Sprintf("You cited %d of %d correct articles.", matched, len(truth))}
			}
			return componentOutcome{0, "error", "None of the cited articles applies."}
		}},
	}

	total, feedback := runComponents(maxScore, comps)
	base := int(math.Round(total))
	bonus := timeBonus(maxScore, base, sub.TimeTaken, s.TimeLimit)
	if bonus > 0 {
		feedback = append(feedback, models.GameFeedback{Type: "info", Message: "Time bonus awarded for a fast submission."})
	}
	final := base + bonus

	relevantIDs := make([]string, 0, len(relevant))
	for _, ev := range s.Evidence {
		if relevant[ev.ID] {
			relevantIDs = append(relevantIDs, ev.ID)
		}
	}
	culpritIDs := make([]string, 0, len(culprits))
	for _, sp := range s.Suspects {
		if sp.IsCulprit {
			culpritIDs = append(culpritIDs, sp.ID)
		}
	}

	return models.GameResult{
		Score:    final,
		MaxScore: maxScore,
		Passed:   float64(final) >= 0.5*float64(maxScore),
		Feedback: feedback,
		CorrectAnswers: models.AccusationAnswers{
			Culprits:          culpritIDs,
			RelevantEvidence:  relevantIDs,
			CorrectAccusation: s.CorrectAccusation,
			CorrectArticles:   append([]string(nil), s.CorrectArticles...),
		},
	}
}

func ScorePleading(s *models.PleadingScenario, sub models.PleadingSubmission) models.GameResult {
	maxScore := s.Points

	defenses := make(map[string]models.Defense, len(s.AvailableDefenses))
	maxPossible := 0
	strongDefenses := []models.Defense{}
	for _, d := range s.AvailableDefenses {
		defenses[d.ID] = d
		if d.IsStrong {
			maxPossible += d.Score
			strongDefenses = append(strongDefenses, d)
		}
	}

	answers := models.PleadingAnswers{StrongDefenses: strongDefenses}

	if maxPossible == 0 {
		log.Printf("[court] pleading scenario %s has no strong defenses, scoring zero", s.ID)
		return models.GameResult{
			Score:    0,
			MaxScore: maxScore,
			Passed:   false,
			Feedback: []models.GameFeedback{{Type: "error", Message: "This scenario has no scorable defenses."}},
			CorrectAnswers: answers,
		}
	}

	total, strongCount, weakCount := 0, 0, 0
	for _, id := range sub.SelectedDefenses {
		d, ok := defenses[id]
		if !ok {
			continue
		}
		total += d.Score
		if d.IsStrong {
			strongCount++
		} else {
			weakCount++
		}
	}

	percentage := float64(total) / float64(maxPossible) * 100
	scorePct := percentage
	if scorePct > 100 {
		scorePct = 100
	}
	base := int(math.Floor(float64(maxScore) * scorePct / 100))
	bonus := timeBonus(maxScore, base, sub.TimeTaken, s.TimeLimit)
	final := base + bonus

	var tier models.GameFeedback
	switch {
	case percentage >= 80:
		tier = models.GameFeedback{Type: "success", Message: "Excellent pleading. The court is persuaded."}
	case percentage >= 60:
		tier = models.GameFeedback{Type: "success", Message: "Very good pleading with solid arguments."}
	case percentage >= 40:
		tier = models.GameFeedback{Type: "partial", Message: "Acceptable pleading, but key defenses are missing."}
	default:
		tier = models.GameFeedback{Type: "error", Message: "Weak pleading. The strongest defenses were not raised."}
	}

	feedback := []models.GameFeedback{
		tier,
		{Type: "info", Message: fmt.Sprintf("You raised %d strong and %d weak defenses.", strongCount, weakCount)},
	}
	if bonus > 0 {
		feedback = append(feedback, models.GameFeedback{Type: "info", Message: "Time bonus awarded for a fast submission."})
	}

	return models.GameResult{
		Score:          final,
		MaxScore:       maxScore,
		Passed:         percentage >= float64(s.WinningThreshold),
		Feedback:       feedback,
		CorrectAnswers: answers,
	}
}

func ScoreProcedural(s *models.ProceduralScenario, sub models.ProceduralSubmission) models.GameResult {
	maxScore := s.Points

	actual := make(map[string]bool)
	nonErrors := make(map[string]bool)
	trueErrors := []models.ProceedingError{}
	for _, e := range s.Errors {
		if e.IsError {
			actual[e.ID] = true
			trueErrors = append(trueErrors, e)
		} else {
			nonErrors[e.ID] = true
		}
	}

	answers := models.ProceduralAnswers{Errors: trueErrors}

	if len(actual) == 0 {
		log.Printf("[court] procedural scenario %s has no true errors, scoring zero", s.ID)
		return models.GameResult{
			Score:    0,
			MaxScore: maxScore,
			Passed:   false,
			Feedback: []models.GameFeedback{{Type: "error", Message: "This scenario has no scorable errors."}},
			CorrectAnswers: answers,
		}
	}

	selected := toSet(sub.SelectedErrors)
	correct := intersectCount(selected, actual)
	falsePositives := intersectCount(selected, nonErrors)

	pointsPerCorrect := float64(maxScore) / float64(len(actual))
	penaltyPerFalse := pointsPerCorrect / 2

	base := int(math.Round(float64(correct)*pointsPerCorrect - float64(falsePositives)*penaltyPerFalse))
	if base < 0 {
		base = 0
	}
	bonus := timeBonus(maxScore, base, sub.TimeTaken, s.TimeLimit)
	final := base + bonus

	var feedback []models.GameFeedback
	switch {
	case correct == len(actual) && falsePositives == 0:
		feedback = append(feedback, models.GameFeedback{Type: "success", Message: "You spotted every procedural error."})
	case correct > 0:
		feedback = append(feedback, models.GameFeedback{Type: "partial",
			Message: fmt.Sprintf("You spotted %d of %d procedural errors.", correct, len(actual))})
	default:
		feedback = append(feedback, models.GameFeedback{Type: "error", Message: "You did not spot any of the procedural errors."})
	}
	if falsePositives > 0 {
		feedback = append(feedback, models.GameFeedback{Type: "error",
			Message: fmt.Sprintf("%d flagged steps were actually sound procedure.", falsePositives)})
	}
	if missed := len(actual) - correct; missed > 0 {
		feedback = append(feedback, models.GameFeedback{Type: "info",
			Message: fmt.Sprintf("%d errors went unnoticed. Review the explanations below.", missed)})
	}
	if bonus > 0 {
		feedback = append(feedback, models.GameFeedback{Type: "info", Message: "Time bonus awarded for a fast submission."})
	}

	return models.GameResult{
		Score:          final,
		MaxScore:       maxScore,
		Passed:         float64(final) >= 0.6*float64(maxScore),
		Feedback:       feedback,
		CorrectAnswers: answers,
	}
}

// ── set helpers ───────────────────────────────────────────

func toSet(ids []string) map[string]bool {
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}

func setsEqual(a, b map[string]bool) bool {
	if len(a) != len(b) {
		return false
	}
	for k := range a {
		if !b[k] {
			return false
		}
	}
	return true
}

func intersectCount(a, b map[string]bool) int {
	n := 0
	for k := range a {
		if b[k] {
			n++
		}
	}
	return n
}

func containsAll(set, subset map[string]bool) bool {
	for k := range subset {
		if !set[k] {
			return false
		}
	}
	return true
}

func containedIn(set, super map[string]bool) bool {
	for k := range set {
		if !super[k] {
			return false
		}
	}
	return true
}

// sharesToken reports whether the two texts share at least one
// whitespace-delimited token, case-insensitively.
func sharesToken(a, b string) bool {
	tokens := make(map[string]bool)
	for _, t := range strings.Fields(strings.ToLower(a)) {
		tokens[t] = true
	}
	for _, t := range strings.Fields(strings.ToLower(b)) {
		if tokens[t] {
			return true
		}
	}
	return false
}
