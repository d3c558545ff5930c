package detector

import (
	"net/url"
	"regexp"
	"sort"
	"strings"
	"unicode"
)

// Signals is the low-level feature bundle extracted from one article.
type Signals struct {
	WordCount            int
	Phrases              map[string][]string
	ExcessivePunctuation bool
	ExcessiveCaps        bool
	SuspiciousURL        []string
	ShortContent         bool
	MissingAttribution   bool
}

const capsTokenRatioThreshold = 0.3

var (
	punctuationRunExpr = regexp.MustCompile(`[!?]{3,}`)
	listiclePattern    = regexp.MustCompile(`\d+\s*(ways|reasons|things|secrets|tips|tricks)`)
	ipHostExpr         = regexp.MustCompile(`^\d{1,3}(\.\d{1,3}){3}$`)
)

// ExtractSignals derives all textual signals in one pass. It is pure and
// total: any text input yields a well-formed bundle, and empty or
// whitespace-only content produces a zero word count with every boolean
// flag false. shortBelow is the minimum informative word count.
func ExtractSignals(title, content, rawURL string, shortBelow int) Signals {
	sig := Signals{
		WordCount: len(strings.Fields(content)),
		Phrases:   matchPhrases(title, content),
	}

	if rawURL != "" {
		sig.SuspiciousURL = suspiciousURLPatterns(rawURL)
	}

	if sig.WordCount > 0 {
		sig.ExcessivePunctuation = excessivePunctuation(title, content)
		sig.ExcessiveCaps = excessiveCaps(title)
		sig.ShortContent = sig.WordCount < shortBelow
		sig.MissingAttribution = missingAttribution(content)
	}

	return sig
}

// matchPhrases scans the combined text against every lexicon category,
// ordering matches by their first occurrence in the text.
func matchPhrases(title, content string) map[string][]string {
	combined := strings.ToLower(title + " " + content)

	matches := make(map[string][]string, len(phraseCategories))
	for _, category := range phraseCategories {
		type hit struct {
			phrase string
			pos    int
		}
		var hits []hit
		for _, phrase := range phraseLexicons[category] {
			if pos := strings.Index(combined, phrase); pos >= 0 {
				hits = append(hits, hit{phrase: phrase, pos: pos})
			}
		}
		if category == CategoryClickbait {
			if m := listiclePattern.FindStringIndex(combined); m != nil {
				hits = append(hits, hit{phrase: combined[m[0]:m[1]], pos: m[0]})
			}
		}
		if len(hits) == 0 {
			continue
		}
		sort.SliceStable(hits, func(i, j int) bool { return hits[i].pos < hits[j].pos })
		phrases := make([]string, len(hits))
		for i, h := range hits {
			phrases[i] = h.phrase
		}
		matches[category] = phrases
	}

	return matches
}

func excessivePunctuation(title, content string) bool {
	if punctuationRunExpr.MatchString(title) || punctuationRunExpr.MatchString(content) {
		return true
	}
	return strings.Count(title, "!") > 2 || strings.Count(title, "?") > 1
}

// excessiveCaps flags titles where shouting tokens dominate. A token
// counts as shouting when it has at least two letters and all of them
// are upper case.
func excessiveCaps(title string) bool {
	tokens := strings.Fields(title)
	if len(tokens) == 0 {
		return false
	}

	caps := 0
	for _, token := range tokens {
		letters, upper := 0, 0
		for _, r := range token {
			if unicode.IsLetter(r) {
				letters++
				if unicode.IsUpper(r) {
					upper++
				}
			}
		}
		if letters > 1 && letters == upper {
			caps++
		}
	}

	return float64(caps)/float64(len(tokens)) > capsTokenRatioThreshold
}

// suspiciousURLPatterns returns a description per matched heuristic so
// the evidence stays itemizable. A malformed URL is itself a signal.
func suspiciousURLPatterns(rawURL string) []string {
	if !strings.Contains(rawURL, "://") {
		rawURL = "http://" + rawURL
	}

	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Hostname() == "" {
		return []string{"unparseable url"}
	}

	host := strings.ToLower(strings.TrimPrefix(parsed.Hostname(), "www."))

	var patterns []string
	isIP := ipHostExpr.MatchString(host)
	if isIP {
		patterns = append(patterns, "raw ip host")
	}
	for _, tld := range suspiciousTLDs {
		if strings.HasSuffix(host, tld) {
			patterns = append(patterns, "suspicious tld "+tld)
			break
		}
	}
	if !isIP && strings.Count(host, ".") >= 3 {
		patterns = append(patterns, "deep subdomain chain")
	}
	for _, target := range lookalikeTargets {
		if strings.Contains(host, target+"-") || strings.Contains(host, "-"+target) {
			patterns = append(patterns, "lookalike of "+target)
			break
		}
	}

	return patterns
}

func missingAttribution(content string) bool {
	lowered := strings.ToLower(content)
	for _, marker := range attributionMarkers {
		if strings.Contains(lowered, marker) {
			return false
		}
	}
	return true
}
