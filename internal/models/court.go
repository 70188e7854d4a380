package models

import "time"

// ── Game Types & Difficulties ─────────────────────────────

type GameType string

const (
	GameAccusation GameType = "accusation"
	GamePleading   GameType = "pleading"
	GameProcedural GameType = "procedural_error"
)

const (
	DifficultyBeginner     = "beginner"
	DifficultyIntermediate = "intermediate"
	DifficultyAdvanced     = "advanced"
)

// ── Scenario Shapes (full, ground truth included) ─────────
//
// These structs are never serialized to a client before scoring; handlers
// only ever see the Safe* counterparts below. Answer structs returned
// after scoring are the one sanctioned place ground truth leaves the server.

type EvidenceItem struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Description string `json:"description"`
	Relevance   string `json:"relevance"` // high, medium, none
}

type Suspect struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	IsCulprit   bool   `json:"is_culprit"`
}

type AccusationScenario struct {
	ID                string
	Title             string
	CaseSummary       string
	CrimeType         string
	Difficulty        string
	Points            int
	TimeLimit         int // minutes
	Evidence          []EvidenceItem
	Suspects          []Suspect
	CorrectAccusation string
	CorrectArticles   []string
}

type Defense struct {
	ID       string `json:"id"`
	Text     string `json:"text"`
	Score    int    `json:"score"`
	IsStrong bool   `json:"is_strong"`
}

type PleadingScenario struct {
	ID                string
	Title             string
	CaseType          string
	Difficulty        string
	Situation         string
	YourRole          string
	OpponentArguments []string
	AvailableDefenses []Defense
	WinningThreshold  int // percentage of the strong-defense score needed to win
	Points            int
	TimeLimit         int
}

type ProceedingError struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	IsError     bool   `json:"is_error"`
	Explanation string `json:"explanation"`
}

type ProceduralScenario struct {
	ID               string
	Title            string
	Difficulty       string
	CaseDescription  string
	CourtProceedings []string
	Errors           []ProceedingError
	Points           int
	TimeLimit        int
}

// ── Sanitized Scenario Shapes (what clients see pre-submission) ──

type SafeSuspect struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type SafeAccusationScenario struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	CaseSummary string         `json:"case_summary"`
	CrimeType   string         `json:"crime_type"`
	Difficulty  string         `json:"difficulty"`
	Points      int            `json:"points"`
	TimeLimit   int            `json:"time_limit"`
	Evidence    []EvidenceItem `json:"evidence_list"`
	Suspects    []SafeSuspect  `json:"suspects"`
}

type SafeDefense struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

type SafePleadingScenario struct {
	ID                string        `json:"id"`
	Title             string        `json:"title"`
	CaseType          string        `json:"case_type"`
	Difficulty        string        `json:"difficulty"`
	Situation         string        `json:"situation"`
	YourRole          string        `json:"your_role"`
	OpponentArguments []string      `json:"opponent_arguments"`
	AvailableDefenses []SafeDefense `json:"available_defenses"`
	Points            int           `json:"points"`
	TimeLimit         int           `json:"time_limit"`
}

type SafeProceedingError struct {
	ID          string `json:"id"`
	Description string `json:"description"`
}

type SafeProceduralScenario struct {
	ID               string                `json:"id"`
	Title            string                `json:"title"`
	Difficulty       string                `json:"difficulty"`
	CaseDescription  string                `json:"case_description"`
	CourtProceedings []string              `json:"court_proceedings"`
	Errors           []SafeProceedingError `json:"errors"`
	Points           int                   `json:"points"`
	TimeLimit        int                   `json:"time_limit"`
}

// ── Submissions ───────────────────────────────────────────

type AccusationSubmission struct {
	ScenarioID       string   `json:"scenario_id"`
	SelectedCulprits []string `json:"selected_culprits"`
	SelectedEvidence []string `json:"selected_evidence"`
	Accusation       string   `json:"accusation"`
	SelectedArticles []string `json:"selected_articles"`
	TimeTaken        int      `json:"time_taken"` // seconds
}

type PleadingSubmission struct {
	ScenarioID       string   `json:"scenario_id"`
	SelectedDefenses []string `json:"selected_defenses"`
	TimeTaken        int      `json:"time_taken"`
}

type ProceduralSubmission struct {
	ScenarioID     string   `json:"scenario_id"`
	SelectedErrors []string `json:"selected_errors"`
	TimeTaken      int      `json:"time_taken"`
}

// ── Scoring Results ───────────────────────────────────────

type GameFeedback struct {
	Type    string `json:"type"` // success, partial, error, info
	Message string `json:"message"`
}

type GameResult struct {
	Score          int            `json:"score"`
	MaxScore       int            `json:"max_score"`
	Passed         bool           `json:"passed"`
	Feedback       []GameFeedback `json:"feedback"`
	CorrectAnswers interface{}    `json:"correct_answers"`
}

// AccusationAnswers is the ground truth revealed after an accusation
// submission is scored.
type AccusationAnswers struct {
	Culprits          []string `json:"culprits"`
	RelevantEvidence  []string `json:"relevant_evidence"`
	CorrectAccusation string   `json:"correct_accusation"`
	CorrectArticles   []string `json:"correct_articles"`
}

type PleadingAnswers struct {
	StrongDefenses []Defense `json:"strong_defenses"`
}

type ProceduralAnswers struct {
	Errors []ProceedingError `json:"errors"`
}

// ── Progression ───────────────────────────────────────────

type GameAttempt struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	UserName      string    `json:"user_name"`
	GameType      GameType  `json:"game_type"`
	ScenarioID    string    `json:"scenario_id"`
	ScenarioTitle string    `json:"scenario_title"`
	Score         int       `json:"score"`
	MaxScore      int       `json:"max_score"`
	TimeTaken     int       `json:"time_taken"`
	Passed        bool      `json:"passed"`
	CreatedAt     time.Time `json:"created_at"`
}

type GameProfile struct {
	UserID      string     `json:"user_id"`
	UserName    string     `json:"user_name"`
	TotalXP     int        `json:"total_xp"`
	Level       int        `json:"level"`
	Rank        string     `json:"rank"`
	GamesPlayed int        `json:"games_played"`
	GamesWon    int        `json:"games_won"`
	LastPlayed  *time.Time `json:"last_played,omitempty"`
}

type GameProfileResponse struct {
	GameProfile
	RecentAttempts []GameAttempt `json:"recent_attempts"`
	GlobalRank     int           `json:"global_rank"`
	TotalPlayers   int           `json:"total_players"`
}

// LeaderboardRow is a derived aggregate over game_attempts; Rank is the
// 1-based position in the sorted board, not the player's title rank.
type LeaderboardRow struct {
	Rank        int     `json:"rank"`
	UserID      string  `json:"user_id"`
	UserName    string  `json:"user_name"`
	TotalScore  int     `json:"total_score"`
	GamesPlayed int     `json:"games_played"`
	GamesWon    int     `json:"games_won"`
	WinRate     float64 `json:"win_rate"`
	BestScore   int     `json:"best_score"`
}

type LeaderboardResponse struct {
	Leaderboard []LeaderboardRow `json:"leaderboard"`
}
