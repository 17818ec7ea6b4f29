package lattes

import "strings"

// Category identifies a production record category. The set is closed:
// routing resolves every label to one of these values, with CategoryOther
// as the catch-all for sections without a registered specific extractor.
type Category string

// Supported production categories.
const (
	CategoryUnknown     Category = ""
	CategoryArticle     Category = "journal_article"
	CategoryBookChapter Category = "book_chapter"
	CategoryBook        Category = "book"
	CategoryEventPaper  Category = "event_paper"
	CategoryNewsText    Category = "news_text"
	CategorySupervision Category = "supervision"
	CategoryOther       Category = "other"
)

// categoryPatterns maps normalized label fragments to categories. Labels are
// matched in order, so more specific fragments come first. Keys must be in
// NormalizeLabel form (lowercase, accents stripped).
var categoryPatterns = []struct {
	fragment string
	category Category
}{
	{"artigos completos publicados em periodicos", CategoryArticle},
	{"artigos aceitos para publicacao", CategoryArticle},
	{"capitulos de livros publicados", CategoryBookChapter},
	{"livros publicados", CategoryBook},
	{"livros organizados ou edicoes", CategoryBook},
	{"trabalhos completos publicados em anais", CategoryEventPaper},
	{"resumos expandidos publicados em anais", CategoryEventPaper},
	{"resumos publicados em anais", CategoryEventPaper},
	{"apresentacoes de trabalho", CategoryEventPaper},
	{"textos em jornais de noticias", CategoryNewsText},
	{"textos em jornais ou revistas", CategoryNewsText},
	{"orientacoes e supervisoes", CategorySupervision},
	{"orientacoes em andamento", CategorySupervision},
	{"orientacoes concluidas", CategorySupervision},
}

// CategoryFromLabel resolves a section title or fixture filename to a
// Category. The label is normalized (lowercase, accents stripped, collapsed
// whitespace) before matching, so both "Capítulos de livros publicados" and
// "capitulos_de_livros_publicados.html" resolve to CategoryBookChapter.
// Unrecognized labels resolve to CategoryOther, never an error.
func CategoryFromLabel(label string) Category {
	normalized := NormalizeLabel(label)
	if normalized == "" {
		return CategoryOther
	}
	for _, p := range categoryPatterns {
		if strings.Contains(normalized, p.fragment) {
			return p.category
		}
	}
	return CategoryOther
}

// Valid reports whether c is a member of the closed category set.
func (c Category) Valid() bool {
	switch c {
	case CategoryArticle, CategoryBookChapter, CategoryBook,
		CategoryEventPaper, CategoryNewsText, CategorySupervision, CategoryOther:
		return true
	}
	return false
}
