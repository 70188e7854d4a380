package court

import (
	"errors"
	"log"

	"github.com/legal-suite/backend/internal/models"
)

// ErrScenarioNotFound is returned when a submission names an unknown scenario.
var ErrScenarioNotFound = errors.New("scenario not found")

// Service scores submissions and persists the outcome. Persistence
// failures are logged but never fail the scoring response; the
// leaderboard and profile catch up on the next successful write.
type Service struct {
	catalog *Catalog
	store   *Store
}

func NewService(catalog *Catalog, store *Store) *Service {
	return &Service{catalog: catalog, store: store}
}

func (s *Service) SubmitAccusation(userID, userName string, sub models.AccusationSubmission) (*models.GameResult, error) {
	scenario, ok := s.catalog.accusationByID(sub.ScenarioID)
	if !ok {
		return nil, ErrScenarioNotFound
	}
	result := ScoreAccusation(scenario, sub)
	s.persist(userID, userName, models.GameAccusation, scenario.ID, scenario.Title, sub.TimeTaken, &result)
	return &result, nil
}

func (s *Service) SubmitPleading(userID, userName string, sub models.PleadingSubmission) (*models.GameResult, error) {
	scenario, ok := s.catalog.pleadingByID(sub.ScenarioID)
	if !ok {
		return nil, ErrScenarioNotFound
	}
	result := ScorePleading(scenario, sub)
	s.persist(userID, userName, models.GamePleading, scenario.ID, scenario.Title, sub.TimeTaken, &result)
	return &result, nil
}

func (s *Service) SubmitProcedural(userID, userName string, sub models.ProceduralSubmission) (*models.GameResult, error) {
	scenario, ok := s.catalog.proceduralByID(sub.ScenarioID)
	if !ok {
		return nil, ErrScenarioNotFound
	}
	result := ScoreProcedural(scenario, sub)
	s.persist(userID, userName, models.GameProcedural, scenario.ID, scenario.Title, sub.TimeTaken, &result)
	return &result, nil
}

func (s *Service) persist(userID, userName string, gameType models.GameType, scenarioID, scenarioTitle string, timeTaken int, result *models.GameResult) {
	attempt := models.GameAttempt{
		UserID:        userID,
		UserName:      userName,
		GameType:      gameType,
		ScenarioID:    scenarioID,
		ScenarioTitle: scenarioTitle,
		Score:         result.Score,
		MaxScore:      result.MaxScore,
		TimeTaken:     timeTaken,
		Passed:        result.Passed,
	}
	if err := s.store.RecordAttempt(&attempt); err != nil {
		log.Printf("WARN: failed to record %s attempt for user %s: %v", gameType, userID, err)
	}
	if err := s.store.ApplyResult(userID, userName, result.Score, result.Passed); err != nil {
		log.Printf("WARN: failed to update game profile for user %s: %v", userID, err)
	}
}

func (s *Service) GetProfile(userID, userName string) (*models.GameProfileResponse, error) {
	profile, err := s.store.GetProfile(userID, userName)
	if err != nil {
		return nil, err
	}

	recent, err := s.store.GetRecentAttempts(userID, 5)
	if err != nil {
		log.Printf("WARN: failed to load recent attempts for user %s: %v", userID, err)
		recent = []models.GameAttempt{}
	}

	rank, totalPlayers, err := s.store.GetGlobalRank(userID)
	if err != nil {
		log.Printf("WARN: failed to compute global rank for user %s: %v", userID, err)
	}

	return &models.GameProfileResponse{
		GameProfile:    *profile,
		RecentAttempts: recent,
		GlobalRank:     rank,
		TotalPlayers:   totalPlayers,
	}, nil
}

func (s *Service) GetLeaderboard(gameType string, limit int) (*models.LeaderboardResponse, error) {
	board, err := s.store.GetLeaderboard(gameType, limit)
	if err != nil {
		return nil, err
	}
	return &models.LeaderboardResponse{Leaderboard: board}, nil
}
