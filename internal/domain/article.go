package domain

import "time"

// SpamLevel classifies how likely an article is spam or misinformation.
type SpamLevel string

const (
	LevelLegitimate SpamLevel = "legitimate"
	LevelSuspicious SpamLevel = "suspicious"
	LevelLikelySpam SpamLevel = "likely_spam"
	LevelSpam       SpamLevel = "spam"
)

// LevelForScore buckets a spam score into its classification band.
func LevelForScore(score int) SpamLevel {
	switch {
	case score < 20:
		return LevelLegitimate
	case score < 40:
		return LevelSuspicious
	case score < 70:
		return LevelLikelySpam
	default:
		return LevelSpam
	}
}

// Details maps a detector category to its evidence: a list of matched
// indicator strings, a boolean detected flag, or a raw word count.
type Details map[string]any

// Analysis is the scoring result for a single article.
type Analysis struct {
	SpamScore   int       `json:"spam_score"`
	SpamLevel   SpamLevel `json:"spam_level"`
	Credibility int       `json:"credibility"`
	Details     Details   `json:"details"`
}

// Article is an analyzed news article as stored in the repository.
// Records are immutable after creation; re-analysis produces a new record.
type Article struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	Source      string    `json:"source"`
	URL         string    `json:"url"`
	Category    string    `json:"category"`
	Timestamp   time.Time `json:"timestamp"`
	SpamScore   int       `json:"spam_score"`
	SpamLevel   SpamLevel `json:"spam_level"`
	Credibility int       `json:"credibility"`
	Details     Details   `json:"details"`
}

// Headline is a raw article stub produced by the scrape connector
// before scoring. Scraped pages rarely expose full bodies, so the
// headline doubles as content downstream.
type Headline struct {
	Title    string
	URL      string
	Source   string
	Category string
}

// Stats is a derived snapshot of stored articles partitioned by level.
type Stats struct {
	Legitimate    int `json:"legitimate"`
	Suspicious    int `json:"suspicious"`
	LikelySpam    int `json:"likely_spam"`
	Spam          int `json:"spam"`
	TotalAnalyzed int `json:"-"`
}
