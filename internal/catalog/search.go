package catalog

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/KirkDiggler/sim-catalog/internal/entities/items"
)

type searchHit struct {
	item     *items.Item
	contains bool
	// position of the substring hit, or the edit distance for fuzzy hits
	score int
}

// SearchItems finds items by name, ignoring case. Names containing the query
// rank first by where the query starts; the rest rank by edit distance to the
// closest word of the name and must be within a third of the query length.
// Ties break by id. A limit of 0 or less returns every hit.
func (c *Catalog) SearchItems(query string, limit int) []*items.Item {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	maxDistance := max(1, len([]rune(q))/3)

	var hits []searchHit
	for _, id := range c.itemIDs {
		item := c.items[id]
		name := strings.ToLower(item.Name)

		if pos := strings.Index(name, q); pos >= 0 {
			hits = append(hits, searchHit{item: item, contains: true, score: pos})
			continue
		}

		best := levenshtein.ComputeDistance(q, name)
		for _, word := range strings.Fields(name) {
			best = min(best, levenshtein.ComputeDistance(q, word))
		}
		if best <= maxDistance {
			hits = append(hits, searchHit{item: item, score: best})
		}
	}

	sort.SliceStable(hits, func(i, j int) bool {
		a, b := hits[i], hits[j]
		if a.contains != b.contains {
			return a.contains
		}
		if a.score != b.score {
			return a.score < b.score
		}
		return a.item.ID < b.item.ID
	})

	if limit > 0 && len(hits) > limit {
		hits = hits[:limit]
	}
	result := make([]*items.Item, len(hits))
	for i, hit := range hits {
		result[i] = hit.item
	}
	return result
}
