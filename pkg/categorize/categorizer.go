// Package categorize assigns each article one topic label from a fixed
// taxonomy using keyword scoring over normalized tokens. Classification is
// deterministic: scores are normalized by token count, ties are broken by the
// documented priority order, and articles below the minimum score are labeled
// uncategorized.
package categorize

import (
	"strings"

	"github.com/umputun/newsproof/pkg/domain"
	"github.com/umputun/newsproof/pkg/normalize"
)

// taxonomy maps each category to its keyword list. Keywords are run through
// the normalizer at construction so they live in the same token space as
// normalized article text.
var taxonomy = map[domain.Category][]string{
	domain.CategoryPolitics: {
		"government", "election", "president", "minister", "parliament",
		"democracy", "vote", "policy", "campaign", "politician", "political",
		"democrat", "republican", "congress", "senate",
	},
	domain.CategoryBusiness: {
		"economy", "market", "stock", "investment", "company", "corporate",
		"finance", "trade", "industry", "economic", "bank", "inflation",
		"recession", "profit", "revenue",
	},
	domain.CategoryTechnology: {
		"software", "hardware", "app", "computer", "internet", "cyber",
		"digital", "robot", "innovation", "tech", "smartphone", "gadget",
		"data", "algorithm", "startup",
	},
	domain.CategoryHealth: {
		"disease", "medicine", "doctor", "hospital", "patient", "medical",
		"treatment", "healthcare", "virus", "pandemic", "vaccine", "drug",
		"cancer", "surgery", "diet",
	},
	domain.CategoryScience: {
		"research", "discovery", "experiment", "scientist", "study",
		"physics", "chemistry", "biology", "space", "planet", "astronomy",
		"laboratory", "theory", "molecular", "scientific",
	},
	domain.CategorySports: {
		"match", "game", "player", "team", "tournament", "championship",
		"coach", "athlete", "win", "score", "olympic", "ball", "league",
		"soccer", "football", "basketball",
	},
	domain.CategoryEntertainment: {
		"movie", "film", "music", "celebrity", "actor", "actress", "star",
		"television", "show", "concert", "festival", "theater",
		"performance", "hollywood",
	},
	domain.CategoryWorld: {
		"international", "foreign", "global", "country", "nation", "world",
		"diplomatic", "embassy", "crisis", "conflict", "war", "peace",
		"treaty", "border", "immigration",
	},
	domain.CategoryEnvironment: {
		"climate", "environment", "green", "sustainable", "renewable",
		"pollution", "carbon", "emission", "conservation", "wildlife",
		"ecosystem", "forest", "ocean", "biodiversity",
	},
}

// Priority is the fixed tie-break ranking: when two categories score equally,
// the one listed earlier wins. The order reflects how contested the topics
// are in practice for news fact-checking, politics first.
var Priority = []domain.Category{
	domain.CategoryPolitics,
	domain.CategoryWorld,
	domain.CategoryBusiness,
	domain.CategoryTechnology,
	domain.CategoryHealth,
	domain.CategoryScience,
	domain.CategoryEnvironment,
	domain.CategoryEntertainment,
	domain.CategorySports,
}

// default minimum normalized score, below it an article stays uncategorized
const defaultMinScore = 0.01

// Categorizer assigns topic labels to articles
type Categorizer struct {
	keywords map[domain.Category]map[string]struct{}
	minScore float64
}

// New creates a categorizer. The normalizer must be the same one applied to
// article text so keyword tokens match. A non-positive minScore selects the
// default threshold.
func New(n *normalize.Normalizer, minScore float64) *Categorizer {
	if minScore <= 0 {
		minScore = defaultMinScore
	}

	keywords := make(map[domain.Category]map[string]struct{}, len(taxonomy))
	for cat, words := range taxonomy {
		set := make(map[string]struct{}, len(words))
		for _, w := range words {
			if norm := n.Normalize(w); norm != "" {
				set[norm] = struct{}{}
			}
		}
		keywords[cat] = set
	}

	return &Categorizer{keywords: keywords, minScore: minScore}
}

// Categorize returns the topic label for an article based on its normalized
// title and text. The title counts double, matching how headlines carry the
// topic signal. Returns CategoryUncategorized when nothing scores above the
// minimum, never an empty category.
func (c *Categorizer) Categorize(normalizedTitle, normalizedText string) domain.Category {
	tokens := strings.Fields(normalizedText)
	titleTokens := strings.Fields(normalizedTitle)

	// title tokens are counted twice
	weighted := make([]string, 0, len(tokens)+2*len(titleTokens))
	weighted = append(weighted, titleTokens...)
	weighted = append(weighted, titleTokens...)
	weighted = append(weighted, tokens...)

	if len(weighted) == 0 {
		return domain.CategoryUncategorized
	}

	scores := make(map[domain.Category]float64, len(c.keywords))
	for _, tok := range weighted {
		for cat, set := range c.keywords {
			if _, ok := set[tok]; ok {
				scores[cat]++
			}
		}
	}

	best := domain.CategoryUncategorized
	bestScore := 0.0
	for _, cat := range Priority { // iterate in priority order so ties resolve deterministically
		score := scores[cat] / float64(len(weighted))
		if score > bestScore {
			best = cat
			bestScore = score
		}
	}

	if bestScore < c.minScore {
		return domain.CategoryUncategorized
	}
	return best
}
