package court

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/legal-suite/backend/internal/models"
)

type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// RecordAttempt appends an immutable attempt record.
func (s *Store) RecordAttempt(a *models.GameAttempt) error {
	a.ID = uuid.NewString()
	a.CreatedAt = time.Now()
	_, err := s.db.Exec(
		`INSERT INTO game_attempts (id, user_id, user_name, game_type, scenario_id, scenario_title,
		     score, max_score, time_taken, passed, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		a.ID, a.UserID, a.UserName, a.GameType, a.ScenarioID, a.ScenarioTitle,
		a.Score, a.MaxScore, a.TimeTaken, a.Passed, a.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("record attempt: %w", err)
	}
	return nil
}

// ApplyResult upserts the player's profile with an atomic XP increment,
// then recomputes level and rank inside the same transaction. Concurrent
// attempts by the same user serialize on the row lock.
func (s *Store) ApplyResult(userID, userName string, scoreDelta int, passed bool) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("apply result: %w", err)
	}
	defer tx.Rollback()

	wonInc := 0
	if passed {
		wonInc = 1
	}

	var totalXP int
	err = tx.QueryRow(
		`INSERT INTO game_profiles (user_id, user_name, total_xp, level, rank, games_played, games_won, last_played)
		 VALUES ($1, $2, $3, 1, $4, 1, $5, NOW())
		 ON CONFLICT (user_id) DO UPDATE SET
		     user_name    = EXCLUDED.user_name,
		     total_xp     = game_profiles.total_xp + EXCLUDED.total_xp,
		     games_played = game_profiles.games_played + 1,
		     games_won    = game_profiles.games_won + $5,
		     last_played  = NOW()
		 RETURNING total_xp`,
		userID, userName, scoreDelta, Ranks[0], wonInc,
	).Scan(&totalXP)
	if err != nil {
		return fmt.Errorf("upsert profile: %w", err)
	}

	level := LevelForXP(totalXP)
	_, err = tx.Exec(
		`UPDATE game_profiles SET level = $2, rank = $3 WHERE user_id = $1`,
		userID, level, RankForLevel(level),
	)
	if err != nil {
		return fmt.Errorf("update level: %w", err)
	}

	return tx.Commit()
}

// GetProfile returns the player's profile, or a synthesized zero-state
// profile when the user has never played.
func (s *Store) GetProfile(userID, userName string) (*models.GameProfile, error) {
	var p models.GameProfile
	err := s.db.QueryRow(
		`SELECT user_id, user_name, total_xp, level, rank, games_played, games_won, last_played
		 FROM game_profiles WHERE user_id = $1`,
		userID,
	).Scan(&p.UserID, &p.UserName, &p.TotalXP, &p.Level, &p.Rank, &p.GamesPlayed, &p.GamesWon, &p.LastPlayed)

	if err == sql.ErrNoRows {
		return &models.GameProfile{
			UserID:   userID,
			UserName: userName,
			TotalXP:  0,
			Level:    1,
			Rank:     Ranks[0],
		}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return &p, nil
}

func (s *Store) GetRecentAttempts(userID string, limit int) ([]models.GameAttempt, error) {
	rows, err := s.db.Query(
		`SELECT id, user_id, user_name, game_type, scenario_id, scenario_title,
		        score, max_score, time_taken, passed, created_at
		 FROM game_attempts WHERE user_id = $1
		 ORDER BY created_at DESC LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("get recent attempts: %w", err)
	}
	defer rows.Close()

	attempts := []models.GameAttempt{}
	for rows.Next() {
		var a models.GameAttempt
		if err := rows.Scan(&a.ID, &a.UserID, &a.UserName, &a.GameType, &a.ScenarioID, &a.ScenarioTitle,
			&a.Score, &a.MaxScore, &a.TimeTaken, &a.Passed, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan attempt: %w", err)
		}
		attempts = append(attempts, a)
	}
	return attempts, rows.Err()
}

// GetGlobalRank returns the player's 1-based XP rank and the total
// number of players with a profile.
func (s *Store) GetGlobalRank(userID string) (rank, totalPlayers int, err error) {
	err = s.db.QueryRow(
		`SELECT
		    1 + COUNT(*) FILTER (WHERE total_xp > COALESCE(
		        (SELECT total_xp FROM game_profiles WHERE user_id = $1), 0)),
		    COUNT(*)
		 FROM game_profiles`,
		userID,
	).Scan(&rank, &totalPlayers)
	if err != nil {
		return 0, 0, fmt.Errorf("get global rank: %w", err)
	}
	return rank, totalPlayers, nil
}

// GetLeaderboard aggregates the attempt history, optionally filtered by
// game type. Recomputed on every read.
func (s *Store) GetLeaderboard(gameType string, limit int) ([]models.LeaderboardRow, error) {
	query := `SELECT user_id, user_name, SUM(score) AS total_score, COUNT(*) AS games_played,
	                 SUM(CASE WHEN passed THEN 1 ELSE 0 END) AS games_won,
	                 MAX(score) AS best_score
	          FROM game_attempts`
	args := []interface{}{}
	if gameType != "" {
		query += ` WHERE game_type = $1`
		args = append(args, gameType)
	}
	query += fmt.Sprintf(` GROUP BY user_id, user_name ORDER BY total_score DESC LIMIT $%d`, len(args)+1)
	args = append(args, limit)

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("get leaderboard: %w", err)
	}
	defer rows.Close()

	board := []models.LeaderboardRow{}
	for rows.Next() {
		var r models.LeaderboardRow
		if err := rows.Scan(&r.UserID, &r.UserName, &r.TotalScore, &r.GamesPlayed, &r.GamesWon, &r.BestScore); err != nil {
			return nil, fmt.Errorf("scan leaderboard row: %w", err)
		}
		r.Rank = len(board) + 1
		if r.GamesPlayed > 0 {
			r.WinRate = float64(r.GamesWon) / float64(r.GamesPlayed) * 100
		}
		board = append(board, r)
	}
	return board, rows.Err()
}
