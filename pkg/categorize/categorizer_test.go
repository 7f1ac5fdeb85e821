package categorize

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/umputun/newsproof/pkg/domain"
	"github.com/umputun/newsproof/pkg/normalize"
)

func TestCategorizer_Categorize(t *testing.T) {
	n := normalize.New()
	c := New(n, 0)

	tests := []struct {
		name     string
		title    string
		text     string
		expected domain.Category
	}{
		{
			name:     "politics",
			title:    "Government announces election date",
			text:     "The president confirmed the parliament vote will take place in May.",
			expected: domain.CategoryPolitics,
		},
		{
			name:     "health",
			title:    "New vaccine approved",
			text:     "The hospital began offering the treatment to patients this week, doctors said.",
			expected: domain.CategoryHealth,
		},
		{
			name:     "technology",
			title:    "Startup ships new smartphone app",
			text:     "The software uses a novel algorithm to compress data on the device.",
			expected: domain.CategoryTechnology,
		},
		{
			name:     "sports",
			title:    "Team wins championship match",
			text:     "The coach praised the players after the tournament final.",
			expected: domain.CategorySports,
		},
		{
			name:     "no topic signal",
			title:    "Quiet afternoon",
			text:     "Nothing notable happened anywhere today.",
			expected: domain.CategoryUncategorized,
		},
		{
			name:     "empty text",
			title:    "",
			text:     "",
			expected: domain.CategoryUncategorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			title := n.Normalize(tt.title)
			text := n.Normalize(tt.text)
			assert.Equal(t, tt.expected, c.Categorize(title, text))
		})
	}
}

func TestCategorizer_TieBreak(t *testing.T) {
	n := normalize.New()
	c := New(n, 0)

	// one politics keyword and one sports keyword, equal counts: the
	// priority order puts politics first
	text := n.Normalize("the election and the tournament")
	assert.Equal(t, domain.CategoryPolitics, c.Categorize("", text))
}

func TestCategorizer_TitleWeighting(t *testing.T) {
	n := normalize.New()
	c := New(n, 0)

	// body mentions sports once, title mentions politics once; the doubled
	// title outweighs the body
	title := n.Normalize("election coverage")
	text := n.Normalize("fans watched the tournament unfold")
	assert.Equal(t, domain.CategoryPolitics, c.Categorize(title, text))
}

func TestCategorizer_Deterministic(t *testing.T) {
	n := normalize.New()
	c := New(n, 0)

	title := n.Normalize("Markets rally as inflation cools")
	text := n.Normalize("Stocks surged after the bank reported strong revenue and profit growth.")

	first := c.Categorize(title, text)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, c.Categorize(title, text))
	}
	assert.Equal(t, domain.CategoryBusiness, first)
}

func TestCategorizer_MinScore(t *testing.T) {
	n := normalize.New()

	// a single weak keyword in a long text falls under a high threshold
	title := ""
	text := n.Normalize("vote counted among thousands of unrelated ordinary words repeated endlessly through paragraphs describing weather gardens recipes furniture holidays photographs journeys mountains rivers")

	strict := New(n, 0.5)
	assert.Equal(t, domain.CategoryUncategorized, strict.Categorize(title, text))

	lenient := New(n, 0.001)
	assert.Equal(t, domain.CategoryPolitics, lenient.Categorize(title, text))
}
