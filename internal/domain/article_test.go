package domain

import "testing"

func TestLevelForScoreBoundaries(t *testing.T) {
	t.Parallel()

	cases := []struct {
		score int
		want  SpamLevel
	}{
		{0, LevelLegitimate},
		{19, LevelLegitimate},
		{20, LevelSuspicious},
		{39, LevelSuspicious},
		{40, LevelLikelySpam},
		{69, LevelLikelySpam},
		{70, LevelSpam},
		{100, LevelSpam},
	}

	for _, tc := range cases {
		if got := LevelForScore(tc.score); got != tc.want {
			t.Errorf("LevelForScore(%d) = %s, want %s", tc.score, got, tc.want)
		}
	}
}
