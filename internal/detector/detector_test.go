package detector

import (
	"reflect"
	"strings"
	"testing"

	"newsguard/internal/config"
	"newsguard/internal/domain"
	"newsguard/internal/trust"
)

const neutralBody = "The Senate on Thursday passed a budget bill that funds the government " +
	"through the end of the fiscal year, according to congressional aides. The measure now " +
	"heads to the House, where leaders are planning a vote next week. Lawmakers from both " +
	"parties described the agreement as a compromise reached after months of negotiation " +
	"over spending levels and domestic programs."

func newDefaultDetector() *Detector {
	return New(config.ScoringConfig{}, trust.Default())
}

func TestScoreSensationalArticle(t *testing.T) {
	t.Parallel()

	d := newDefaultDetector()
	result := d.Score(
		"BREAKING!!! You WON'T BELIEVE this",
		"This shocking viral trick has doctors worried. Click here to see what happened next.",
		"",
		"Manual Entry",
	)

	if result.SpamScore < 40 {
		t.Fatalf("expected spam score >= 40, got %d", result.SpamScore)
	}
	if result.SpamLevel != domain.LevelLikelySpam && result.SpamLevel != domain.LevelSpam {
		t.Fatalf("expected likely_spam or spam, got %s", result.SpamLevel)
	}
	if result.SpamLevel != domain.LevelForScore(result.SpamScore) {
		t.Fatalf("level %s inconsistent with score %d", result.SpamLevel, result.SpamScore)
	}

	for _, key := range []string{"clickbait", "excessive_caps", "excessive_punctuation", "short_content", "missing_attribution"} {
		if _, ok := result.Details[key]; !ok {
			t.Errorf("expected detail %q to be present", key)
		}
	}
}

func TestScoreNeutralAttributedArticle(t *testing.T) {
	t.Parallel()

	d := newDefaultDetector()
	result := d.Score("Senate Passes Budget Bill", neutralBody, "", "Reuters")

	if result.SpamScore >= 20 {
		t.Fatalf("expected spam score < 20, got %d (details %v)", result.SpamScore, result.Details)
	}
	if result.SpamLevel != domain.LevelLegitimate {
		t.Fatalf("expected legitimate, got %s", result.SpamLevel)
	}
	if result.Credibility < 90 {
		t.Fatalf("expected credibility near maximum for a trusted source, got %d", result.Credibility)
	}
}

func TestScoreBoundsOnExtremeInput(t *testing.T) {
	t.Parallel()

	d := newDefaultDetector()
	inputs := []struct{ title, content, url string }{
		{"!!!???!!!???", "!!!??? " + strings.Repeat("!? ", 50), ""},
		{strings.Repeat("SPAM ", 40), strings.Repeat("BUY NOW CLICK HERE GUARANTEED ", 40), "http://1.2.3.4"},
		{"x", "y", "not a url at all ::::"},
	}

	for _, in := range inputs {
		result := d.Score(in.title, in.content, in.url, "")
		if result.SpamScore < 0 || result.SpamScore > 100 {
			t.Fatalf("spam score out of range: %d", result.SpamScore)
		}
		if result.Credibility < 0 || result.Credibility > 100 {
			t.Fatalf("credibility out of range: %d", result.Credibility)
		}
		if result.SpamLevel != domain.LevelForScore(result.SpamScore) {
			t.Fatalf("level %s inconsistent with score %d", result.SpamLevel, result.SpamScore)
		}
	}
}

func TestScoreIsDeterministic(t *testing.T) {
	t.Parallel()

	d := newDefaultDetector()
	first := d.Score("Shocking viral claim", "short and unattributed body", "http://example.xyz", "Manual Entry")
	second := d.Score("Shocking viral claim", "short and unattributed body", "http://example.xyz", "Manual Entry")

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("scoring not deterministic: %+v vs %+v", first, second)
	}
}

func TestPerCategoryCap(t *testing.T) {
	t.Parallel()

	// Four clickbait matches; everything else kept quiet via length,
	// attribution and calm casing.
	title := "A calm report"
	content := "click here shocking viral story with doctors hate this inside, " +
		"according to the desk editor. " + strings.Repeat("filler ", 45)

	table := trust.NewTable(nil)
	capped := New(config.ScoringConfig{PerCategoryCap: 20}, table).Score(title, content, "", "")
	uncapped := New(config.ScoringConfig{PerCategoryCap: 100}, table).Score(title, content, "", "")

	if capped.SpamScore >= uncapped.SpamScore {
		t.Fatalf("expected cap to lower the score: capped %d, uncapped %d", capped.SpamScore, uncapped.SpamScore)
	}
	// clickbait capped at 20 plus the overlapping "click here" spam match.
	if capped.SpamScore != 35 {
		t.Fatalf("expected capped score 35, got %d (details %v)", capped.SpamScore, capped.Details)
	}
}

func TestCredibilityDivergesFromScoreForTrustedSource(t *testing.T) {
	t.Parallel()

	d := newDefaultDetector()
	trusted := d.Score("SHOCKING EXCLUSIVE REPORT!!!", "tiny body", "", "BBC News")
	unknown := d.Score("SHOCKING EXCLUSIVE REPORT!!!", "tiny body", "", "Random Blog")

	if trusted.SpamScore != unknown.SpamScore {
		t.Fatalf("source must not affect the spam score: %d vs %d", trusted.SpamScore, unknown.SpamScore)
	}
	if trusted.Credibility <= unknown.Credibility {
		t.Fatalf("expected trust bonus to lift credibility: trusted %d, unknown %d",
			trusted.Credibility, unknown.Credibility)
	}
}

func TestWordCountIsInformational(t *testing.T) {
	t.Parallel()

	d := newDefaultDetector()
	result := d.Score("A calm report", neutralBody, "", "")

	count, ok := result.Details["word_count"].(int)
	if !ok || count == 0 {
		t.Fatalf("expected word_count detail, got %v", result.Details["word_count"])
	}
	if result.SpamScore != 0 {
		t.Fatalf("word count alone must not add points, got score %d", result.SpamScore)
	}
}
