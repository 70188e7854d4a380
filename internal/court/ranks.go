package court

// XPPerLevel is how much XP each level requires.
const XPPerLevel = 500

// Ranks is the ordered ladder of player titles, indexed by level.
// Players past the last entry keep the final title.
var Ranks = []string{
	"Trainee",
	"Junior Advocate",
	"Advocate",
	"Senior Advocate",
	"Legal Counsel",
	"Chief Counsel",
	"Judge",
	"Chief Justice",
}

// LevelForXP derives the level from accumulated XP.
func LevelForXP(totalXP int) int {
	return 1 + totalXP/XPPerLevel
}

// RankForLevel maps a level onto the rank ladder, saturating at the top.
func RankForLevel(level int) string {
	idx := level - 1
	if idx < 0 {
		idx = 0
	}
	if idx >= len(Ranks) {
		idx = len(Ranks) - 1
	}
	return Ranks[idx]
}
