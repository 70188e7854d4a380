package court

import "testing"

func TestLevelForXP(t *testing.T) {
	tests := []struct {
		xp   int
		want int
	}{
		{0, 1},
		{499, 1},
		{500, 2},
		{999, 2},
		{1000, 3},
		{4999, 10},
	}

	for _, tt := range tests {
		if got := LevelForXP(tt.xp); got != tt.want {
			t.Errorf("LevelForXP(%d) = %d, want %d", tt.xp, got, tt.want)
		}
	}
}

func TestRankForLevel(t *testing.T) {
	if got := RankForLevel(1); got != Ranks[0] {
		t.Errorf("RankForLevel(1) = %q, want %q", got, Ranks[0])
	}
	if got := RankForLevel(3); got != Ranks[2] {
		t.Errorf("RankForLevel(3) = %q, want %q", got, Ranks[2])
	}

	// Levels past the ladder saturate at the final title.
	last := Ranks[len(Ranks)-1]
	for _, level := range []int{len(Ranks), len(Ranks) + 1, 100} {
		if got := RankForLevel(level); got != last {
			t.Errorf("RankForLevel(%d) = %q, want %q", level, got, last)
		}
	}
}

func TestProgressionAccumulation(t *testing.T) {
	// Scores applied in any order must land on the same level: the
	// level is a pure function of the XP sum.
	scores := []int{120, 85, 300, 45, 150}
	total := 0
	for _, s := range scores {
		total += s
	}

	want := 1 + total/XPPerLevel
	if got := LevelForXP(total); got != want {
		t.Errorf("LevelForXP(%d) = %d, want %d", total, got, want)
	}

	reversedTotal := 0
	for i := len(scores) - 1; i >= 0; i-- {
		reversedTotal += scores[i]
	}
	if LevelForXP(reversedTotal) != LevelForXP(total) {
		t.Error("accumulation order changed the derived level")
	}
}
