package extract

import (
	"bytes"
	"encoding/json"
	"sort"
	"strings"

	"github.com/py2k5/resume-analyzer/pkg/taxonomy"
)

// Bucket holds the found terms of one category.
type Bucket struct {
	Category string
	Terms    []string
}

// Categorized is the ordered list of non-empty buckets. It encodes to a JSON
// object whose keys keep the bucket order.
type Categorized []Bucket

// Get returns the terms of category, or nil.
func (c Categorized) Get(category string) []string {
	for _, b := range c {
		if b.Category == category {
			return b.Terms
		}
	}
	return nil
}

// Names lists the bucket categories in order.
func (c Categorized) Names() []string {
	out := make([]string, len(c))
	for i, b := range c {
		out[i] = b.Category
	}
	return out
}

// Total counts terms across buckets.
func (c Categorized) Total() int {
	n := 0
	for _, b := range c {
		n += len(b.Terms)
	}
	return n
}

func (c Categorized) MarshalJSON() ([]byte, error) {
	return marshalOrdered(len(c), func(i int) (string, any) {
		terms := c[i].Terms
		if terms == nil {
			terms = []string{}
		}
		return c[i].Category, terms
	})
}

// Categorize places every term in the first category, in classification
// order, that contains it; terms no category claims go to the fallback.
// Empty buckets are dropped. Within a bucket terms follow vocabulary order,
// so the result does not depend on the order strategies reported them.
func Categorize(t *taxonomy.Taxonomy, found []string) Categorized {
	terms := append([]string(nil), found...)
	sort.SliceStable(terms, func(i, j int) bool {
		pi, pj := t.Position(terms[i]), t.Position(terms[j])
		switch {
		case pi >= 0 && pj >= 0:
			return pi < pj
		case pi >= 0:
			return true
		case pj >= 0:
			return false
		default:
			return strings.ToLower(terms[i]) < strings.ToLower(terms[j])
		}
	})

	buckets := make([][]string, len(t.Categories)+1)
	fallback := len(t.Categories)
	for _, term := range terms {
		slot := fallback
		for i, c := range t.Categories {
			if c.Contains(term) {
				slot = i
				break
			}
		}
		buckets[slot] = append(buckets[slot], term)
	}

	names := t.CategoryNames()
	out := make(Categorized, 0, len(buckets))
	for i, b := range buckets {
		if len(b) == 0 {
			continue
		}
		out = append(out, Bucket{Category: names[i], Terms: b})
	}
	return out
}

// marshalOrdered writes a JSON object with n entries produced by entry, in
// index order.
func marshalOrdered(n int, entry func(i int) (string, any)) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i := 0; i < n; i++ {
		key, value := entry(i)
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(value)
		if err != nil {
			return nil, err
		}
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
