package extract

import (
	"sort"

	"github.com/jpsouza/lattes"
)

var _ lattes.ExtractorRegistry = (*Registry)(nil)

// Registry maps production categories to specific extractors and resolves
// every lookup, falling back to a generic extractor when no specific one is
// registered. Adding support for a new record category means registering a
// new extractor here; the router and batch orchestrator stay untouched.
type Registry struct {
	fallback   lattes.Extractor
	extractors map[lattes.Category]lattes.Extractor
}

// NewRegistry creates a Registry with the given fallback extractor. The
// fallback serves every category without a registered specific extractor.
func NewRegistry(fallback lattes.Extractor) *Registry {
	return &Registry{
		fallback:   fallback,
		extractors: make(map[lattes.Category]lattes.Extractor),
	}
}

// NewDefaultRegistry creates a Registry with all specific extractors
// registered and the generic extractor as fallback.
func NewDefaultRegistry() *Registry {
	r := NewRegistry(NewGeneric())
	r.Register(lattes.CategoryArticle, NewArticle())
	r.Register(lattes.CategoryBookChapter, NewChapter())
	r.Register(lattes.CategoryBook, NewBook())
	r.Register(lattes.CategoryEventPaper, NewEvent())
	r.Register(lattes.CategoryNewsText, NewNews())
	r.Register(lattes.CategorySupervision, NewSupervision())
	return r
}

// Get returns the extractor registered for a category, or the generic
// fallback. Unknown categories never fail.
func (r *Registry) Get(category lattes.Category) lattes.Extractor {
	if e, ok := r.extractors[category]; ok {
		return e
	}
	return r.fallback
}

// GetForLabel resolves a section title or fixture filename to a category
// and returns the extractor for it.
func (r *Registry) GetForLabel(label string) lattes.Extractor {
	return r.Get(lattes.CategoryFromLabel(label))
}

// Register adds an extractor for a category, replacing any previous one.
func (r *Registry) Register(category lattes.Category, e lattes.Extractor) {
	r.extractors[category] = e
}

// List returns all categories with a registered specific extractor, in
// stable sorted order.
func (r *Registry) List() []lattes.Category {
	categories := make([]lattes.Category, 0, len(r.extractors))
	for c := range r.extractors {
		categories = append(categories, c)
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i] < categories[j] })
	return categories
}
