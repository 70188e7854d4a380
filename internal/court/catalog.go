package court

import "github.com/legal-suite/backend/internal/models"

// Catalog serves the fixed scenario set. Handlers only ever receive the
// sanitized shapes; the full scenarios with ground truth stay inside
// this package for the scorers.
type Catalog struct {
	accusation []models.AccusationScenario
	pleading   []models.PleadingScenario
	procedural []models.ProceduralScenario
}

func NewCatalog() *Catalog {
	return &Catalog{
		accusation: accusationScenarios,
		pleading:   pleadingScenarios,
		procedural: proceduralScenarios,
	}
}

func (c *Catalog) ListAccusation(difficulty string) []models.SafeAccusationScenario {
	out := []models.SafeAccusationScenario{}
	for i := range c.accusation {
		s := &c.accusation[i]
		if difficulty != "" && s.Difficulty != difficulty {
			continue
		}
		out = append(out, sanitizeAccusation(s))
	}
	return out
}

func (c *Catalog) GetAccusation(id string) (models.SafeAccusationScenario, bool) {
	s, ok := c.accusationByID(id)
	if !ok {
		return models.SafeAccusationScenario{}, false
	}
	return sanitizeAccusation(s), true
}

func (c *Catalog) ListPleading(difficulty string) []models.SafePleadingScenario {
	out := []models.SafePleadingScenario{}
	for i := range c.pleading {
		s := &c.pleading[i]
		if difficulty != "" && s.Difficulty != difficulty {
			continue
		}
		out = append(out, sanitizePleading(s))
	}
	return out
}

func (c *Catalog) GetPleading(id string) (models.SafePleadingScenario, bool) {
	s, ok := c.pleadingByID(id)
	if !ok {
		return models.SafePleadingScenario{}, false
	}
	return sanitizePleading(s), true
}

func (c *Catalog) ListProcedural(difficulty string) []models.SafeProceduralScenario {
	out := []models.SafeProceduralScenario{}
	for i := range c.procedural {
		s := &c.procedural[i]
		if difficulty != "" && s.Difficulty != difficulty {
			continue
		}
		out = append(out, sanitizeProcedural(s))
	}
	return out
}

func (c *Catalog) GetProcedural(id string) (models.SafeProceduralScenario, bool) {
	s, ok := c.proceduralByID(id)
	if !ok {
		return models.SafeProceduralScenario{}, false
	}
	return sanitizeProcedural(s), true
}

// Full-scenario lookups for the scorers only.

func (c *Catalog) accusationByID(id string) (*models.AccusationScenario, bool) {
	for i := range c.accusation {
		if c.accusation[i].ID == id {
			return &c.accusation[i], true
		}
	}
	return nil, false
}

func (c *Catalog) pleadingByID(id string) (*models.PleadingScenario, bool) {
	for i := range c.pleading {
		if c.pleading[i].ID == id {
			return &c.pleading[i], true
		}
	}
	return nil, false
}

func (c *Catalog) proceduralByID(id string) (*models.ProceduralScenario, bool) {
	for i := range c.procedural {
		if c.procedural[i].ID == id {
			return &c.procedural[i], true
		}
	}
	return nil, false
}

func sanitizeAccusation(s *models.AccusationScenario) models.SafeAccusationScenario {
	suspects := make([]models.SafeSuspect, 0, len(s.Suspects))
	for _, sp := range s.Suspects {
		suspects = append(suspects, models.SafeSuspect{ID: sp.ID, Name: sp.Name, Description: sp.Description})
	}
	return models.SafeAccusationScenario{
		ID:          s.ID,
		Title:       s.Title,
		CaseSummary: s.CaseSummary,
		CrimeType:   s.CrimeType,
		Difficulty:  s.Difficulty,
		Points:      s.Points,
		TimeLimit:   s.TimeLimit,
		Evidence:    append([]models.EvidenceItem{}, s.Evidence...),
		Suspects:    suspects,
	}
}

func sanitizePleading(s *models.PleadingScenario) models.SafePleadingScenario {
	defenses := make([]models.SafeDefense, 0, len(s.AvailableDefenses))
	for _, d := range s.AvailableDefenses {
		defenses = append(defenses, models.SafeDefense{ID: d.ID, Text: d.Text})
	}
	return models.SafePleadingScenario{
		ID:                s.ID,
		Title:             s.Title,
		CaseType:          s.CaseType,
		Difficulty:        s.Difficulty,
		Situation:         s.Situation,
		YourRole:          s.YourRole,
		OpponentArguments: append([]string{}, s.OpponentArguments...),
		AvailableDefenses: defenses,
		Points:            s.Points,
		TimeLimit:         s.TimeLimit,
	}
}

func sanitizeProcedural(s *models.ProceduralScenario) models.SafeProceduralScenario {
	errs := make([]models.SafeProceedingError, 0, len(s.Errors))
	for _, e := range s.Errors {
		errs = append(errs, models.SafeProceedingError{ID: e.ID, Description: e.Description})
	}
	return models.SafeProceduralScenario{
		ID:               s.ID,
		Title:            s.Title,
		Difficulty:       s.Difficulty,
		CaseDescription:  s.CaseDescription,
		CourtProceedings: append([]string{}, s.CourtProceedings...),
		Errors:           errs,
		Points:           s.Points,
		TimeLimit:        s.TimeLimit,
	}
}
