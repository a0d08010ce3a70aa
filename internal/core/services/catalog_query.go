package services

import (
	"sort"

	"portfolio-gallery-service/internal/core/domain"
)

const maxRelatedProjects = 3

// RelatedProjects returns up to three records related to target. Curated
// ids are resolved in authored order, unknown ids dropped. Without curation
// it falls back to other records of the same category in catalog order.
// target itself is never part of the result.
func RelatedProjects[T domain.Record](target T, all []T) []T {
	t := target.Record()
	out := make([]T, 0, maxRelatedProjects)

	if len(t.RelatedProjects) > 0 {
		byID := make(map[int]T, len(all))
		for _, r := range all {
			byID[r.Record().ID] = r
		}
		for _, id := range t.RelatedProjects {
			if id == t.ID {
				continue
			}
			if r, ok := byID[id]; ok {
				out = append(out, r)
			}
			if len(out) == maxRelatedProjects {
				break
			}
		}
		return out
	}

	for _, r := range all {
		a := r.Record()
		if a.ID == t.ID || a.Category != t.Category {
			continue
		}
		out = append(out, r)
		if len(out) == maxRelatedProjects {
			break
		}
	}
	return out
}

// YearHistogram counts records per start year.
func YearHistogram[T domain.Record](all []T) map[string]int {
	hist := make(map[string]int)
	for _, r := range all {
		hist[r.Record().StartYear()]++
	}
	return hist
}

// YearBucket is one entry of the timeline.
type YearBucket struct {
	Year  string `json:"year"`
	Count int    `json:"count"`
}

// YearBuckets is YearHistogram sorted newest first.
func YearBuckets[T domain.Record](all []T) []YearBucket {
	hist := YearHistogram(all)
	out := make([]YearBucket, 0, len(hist))
	for year, n := range hist {
		out = append(out, YearBucket{Year: year, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Year > out[j].Year })
	return out
}

// UniqueCategories returns the distinct categories present, in order of
// first appearance.
func UniqueCategories[T domain.Record](all []T) []domain.Category {
	seen := make(map[domain.Category]struct{})
	out := []domain.Category{}
	for _, r := range all {
		c := r.Record().Category
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}
