package detector

// Indicator lexicons. Phrases are matched as lowercase substrings of the
// combined title and body text; each category contributes to the spam
// score independently, capped per category.

// CategoryClickbait and friends name the detector categories surfaced in
// the evidence map.
const (
	CategoryClickbait = "clickbait"
	CategoryFakeNews  = "fake_news"
	CategorySpam      = "spam"
)

// phraseCategories fixes the evaluation order of the lexicons.
var phraseCategories = []string{CategoryClickbait, CategoryFakeNews, CategorySpam}

var phraseLexicons = map[string][]string{
	CategoryClickbait: {
		"click here",
		"you won't believe",
		"shocking",
		"doctors hate this",
		"viral",
		"trending now",
		"breaking",
		"exclusive",
		"unbelievable",
		"this will",
		"what happened next",
	},
	CategoryFakeNews: {
		"fake news",
		"hoax",
		"conspiracy",
		"illuminati",
		"coverup",
		"deep state",
		"secret government",
		"wake up sheeple",
		"mainstream media lies",
	},
	CategorySpam: {
		"buy now",
		"click here",
		"limited time",
		"act now",
		"guaranteed",
		"risk-free",
		"make money fast",
		"earn $",
		"work from home",
		"promotional",
	},
}

// attributionMarkers are lexical hints that a body carries author or
// source attribution. The check is best-effort.
var attributionMarkers = []string{
	"according to",
	"reported by",
	"reporting by",
	"reported",
	"said",
	"told",
	"correspondent",
	"editor",
	"spokesperson",
	"associated press",
	"reuters",
	"sources say",
}

// suspiciousTLDs are top-level domains disproportionately used by
// low-credibility mirror and clickfarm sites.
var suspiciousTLDs = []string{".xyz", ".click", ".buzz", ".top", ".loan", ".win", ".work", ".info"}

// lookalikeTargets are well-known outlet domain stems; a hyphenated host
// embedding one of them is a common impersonation pattern.
var lookalikeTargets = []string{"bbc", "reuters", "nytimes", "guardian", "cnn", "foxnews", "washingtonpost", "apnews"}
