package extract

import "github.com/py2k5/resume-analyzer/pkg/taxonomy"

// CategoryCount is the number of terms found in one category.
type CategoryCount struct {
	Category string
	Count    int
}

// Counts encodes to a JSON object keyed by category, in bucket order.
type Counts []CategoryCount

func (c Counts) MarshalJSON() ([]byte, error) {
	return marshalOrdered(len(c), func(i int) (string, any) {
		return c[i].Category, c[i].Count
	})
}

// Get returns the count for category, zero when absent.
func (c Counts) Get(category string) int {
	for _, cc := range c {
		if cc.Category == category {
			return cc.Count
		}
	}
	return 0
}

// Summary is a read-only digest of a Categorized result.
type Summary struct {
	Total      int
	Categories []string
	Counts     Counts
	Top        []string
}

// Summarize computes totals and the top-terms list. The list walks categories
// in the taxonomy's ranking order, takes at most TopPerCategory terms from
// each, stops once TopLimit terms are collected and is cut to TopLimit.
func Summarize(t *taxonomy.Taxonomy, c Categorized) Summary {
	counts := make(Counts, len(c))
	for i, b := range c {
		counts[i] = CategoryCount{Category: b.Category, Count: len(b.Terms)}
	}
	return Summary{
		Total:      c.Total(),
		Categories: c.Names(),
		Counts:     counts,
		Top:        TopTerms(c, t.Ranking, t.TopPerCategory, t.TopLimit),
	}
}

// TopTerms is the ranking walk behind Summarize.
func TopTerms(c Categorized, ranking []string, perCategory, limit int) []string {
	top := make([]string, 0, limit)
	for _, category := range ranking {
		terms := c.Get(category)
		if len(terms) == 0 {
			continue
		}
		if len(terms) > perCategory {
			terms = terms[:perCategory]
		}
		top = append(top, terms...)
		if len(top) >= limit {
			break
		}
	}
	if len(top) > limit {
		top = top[:limit]
	}
	return top
}
