package detector

import (
	"newsguard/internal/config"
	"newsguard/internal/domain"
	"newsguard/internal/trust"
)

// Detector combines extracted signals and source trust into a scoring
// result. Scoring is deterministic and never fails on text input;
// rejecting empty titles or bodies is the caller's validation concern.
type Detector struct {
	cfg   config.ScoringConfig
	trust *trust.Table
}

// New wires scoring weights and the source credibility table. Zero
// weights fall back to the defaults so partial configs stay usable.
func New(cfg config.ScoringConfig, table *trust.Table) *Detector {
	if table == nil {
		table = trust.Default()
	}
	return &Detector{cfg: withDefaults(cfg), trust: table}
}

// Score runs one full scoring pass. The spam score, level and
// credibility are produced together so no inconsistent triple can ever
// be observed.
func (d *Detector) Score(title, content, rawURL, source string) domain.Analysis {
	sig := ExtractSignals(title, content, rawURL, d.cfg.ShortContentThreshold)

	// word_count is carried through for transparency only; it never
	// contributes points directly.
	details := domain.Details{"word_count": sig.WordCount}

	score := 0
	for _, category := range phraseCategories {
		phrases := sig.Phrases[category]
		if len(phrases) == 0 {
			continue
		}
		points := len(phrases) * d.cfg.ClickbaitWeight
		if points > d.cfg.PerCategoryCap {
			points = d.cfg.PerCategoryCap
		}
		score += points
		details[category] = phrases
	}

	if sig.ExcessivePunctuation {
		score += d.cfg.PunctuationWeight
		details["excessive_punctuation"] = true
	}
	if sig.ExcessiveCaps {
		score += d.cfg.CapsWeight
		details["excessive_caps"] = true
	}
	if len(sig.SuspiciousURL) > 0 {
		score += d.cfg.SuspiciousURLWeight
		details["suspicious_url"] = sig.SuspiciousURL
	}
	if sig.ShortContent {
		score += d.cfg.ShortContentWeight
		details["short_content"] = true
	}
	if sig.MissingAttribution {
		score += d.cfg.MissingAttributionWeight
		details["missing_attribution"] = true
	}

	score = clamp(score)
	return domain.Analysis{
		SpamScore:   score,
		SpamLevel:   domain.LevelForScore(score),
		Credibility: d.credibility(score, source),
		Details:     details,
	}
}

// credibility may diverge from the inverse of the spam score: a trusted
// source publishing spam-shaped content keeps part of its bonus, which
// is an intended signal.
func (d *Detector) credibility(score int, source string) int {
	return clamp(d.cfg.BaseCredibility - spamPenalty(score) + d.trust.Bonus(source))
}

// spamPenalty grows gently up to the likely_spam boundary and linearly
// past it.
func spamPenalty(score int) int {
	if score <= 40 {
		return score / 2
	}
	return 20 + (score - 40)
}

func clamp(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func withDefaults(cfg config.ScoringConfig) config.ScoringConfig {
	def := config.DefaultScoring()
	if cfg.ClickbaitWeight <= 0 {
		cfg.ClickbaitWeight = def.ClickbaitWeight
	}
	if cfg.PunctuationWeight <= 0 {
		cfg.PunctuationWeight = def.PunctuationWeight
	}
	if cfg.CapsWeight <= 0 {
		cfg.CapsWeight = def.CapsWeight
	}
	if cfg.ShortContentWeight <= 0 {
		cfg.ShortContentWeight = def.ShortContentWeight
	}
	if cfg.SuspiciousURLWeight <= 0 {
		cfg.SuspiciousURLWeight = def.SuspiciousURLWeight
	}
	if cfg.MissingAttributionWeight <= 0 {
		cfg.MissingAttributionWeight = def.MissingAttributionWeight
	}
	if cfg.PerCategoryCap <= 0 {
		cfg.PerCategoryCap = def.PerCategoryCap
	}
	if cfg.ShortContentThreshold <= 0 {
		cfg.ShortContentThreshold = def.ShortContentThreshold
	}
	if cfg.BaseCredibility <= 0 {
		cfg.BaseCredibility = def.BaseCredibility
	}
	return cfg
}
