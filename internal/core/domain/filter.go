package domain

// FilterSelection is the gallery's current narrowing. At most one axis is
// ever active: choosing a category clears the year and choosing a year
// resets the category to All. An empty Year means no year is selected.
type FilterSelection struct {
	Category Category `json:"category"`
	Year     string   `json:"year,omitempty"`
}

func NewFilterSelection() FilterSelection {
	return FilterSelection{Category: CategoryAll}
}

func (f *FilterSelection) SelectCategory(c Category) {
	f.Category = c
	if c != CategoryAll {
		f.Year = ""
	}
}

func (f *FilterSelection) SelectYear(year string) {
	f.Year = year
	if year != "" {
		f.Category = CategoryAll
	}
}

func (f FilterSelection) Matches(r Record) bool {
	a := r.Record()
	if f.Category != "" && f.Category != CategoryAll && a.Category != f.Category {
		return false
	}
	if f.Year != "" && StartYear(a.Year) != f.Year {
		return false
	}
	return true
}

// Apply keeps the records matching f, preserving order.
func (f FilterSelection) Apply(items []*ValidatedArtwork) []*ValidatedArtwork {
	out := make([]*ValidatedArtwork, 0, len(items))
	for _, it := range items {
		if f.Matches(it) {
			out = append(out, it)
		}
	}
	return out
}
