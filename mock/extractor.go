package mock

import "github.com/jpsouza/lattes"

var _ lattes.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of lattes.Extractor.
type Extractor struct {
	CategoryFn func() lattes.Category
	ExtractFn  func(block lattes.ItemBlock) *lattes.Record
}

func (e *Extractor) Category() lattes.Category {
	return e.CategoryFn()
}

func (e *Extractor) Extract(block lattes.ItemBlock) *lattes.Record {
	return e.ExtractFn(block)
}

var _ lattes.ExtractorRegistry = (*ExtractorRegistry)(nil)

// ExtractorRegistry is a mock implementation of lattes.ExtractorRegistry.
type ExtractorRegistry struct {
	GetFn         func(category lattes.Category) lattes.Extractor
	GetForLabelFn func(label string) lattes.Extractor
	RegisterFn    func(category lattes.Category, e lattes.Extractor)
	ListFn        func() []lattes.Category
}

func (r *ExtractorRegistry) Get(category lattes.Category) lattes.Extractor {
	return r.GetFn(category)
}

func (r *ExtractorRegistry) GetForLabel(label string) lattes.Extractor {
	return r.GetForLabelFn(label)
}

func (r *ExtractorRegistry) Register(category lattes.Category, e lattes.Extractor) {
	r.RegisterFn(category, e)
}

func (r *ExtractorRegistry) List() []lattes.Category {
	return r.ListFn()
}
