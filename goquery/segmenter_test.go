package goquery_test

import (
	"testing"

	"github.com/jpsouza/lattes"
	"github.com/jpsouza/lattes/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ lattes.Segmenter = (*goquery.Segmenter)(nil)

const profileHTML = `<html><body>
<h2 class="nome">João da Silva</h2>
<span>http://lattes.cnpq.br/1234567890123456</span>
<span>Última atualização do currículo em 15/03/2024</span>

<div class="title-wrapper">
  <h1>Identificação</h1>
  <div class="data-cell">
    <div class="layout-cell-1"><b>1.</b></div>
    <div class="layout-cell-11"><span class="transform">dados pessoais</span></div>
  </div>
</div>

<div class="title-wrapper">
  <h1>Produções</h1>
  <div class="data-cell">
    <div class="cita-artigos"><b>Artigos completos publicados em periódicos</b></div>
    <div class="layout-cell-1"><b>1.</b></div>
    <div class="layout-cell-11">
      <span class="transform">SILVA, J. . Primeiro artigo. Revista A, v. 1, p. 1-10, 2024.</span>
      <a class="icone-doi" href="https://doi.org/10.1000/ra.2024.001"></a>
      <span data-tipo-ordenacao="ano">2024</span>
    </div>
    <div class="layout-cell-1"><b>2.</b></div>
    <div class="layout-cell-11">
      <span class="transform">SILVA, J. . Segundo artigo. Revista B, v. 2, p. 11-20, 2023.</span>
    </div>
    <div class="cita-artigos"><b>Trabalhos completos publicados em anais de congressos</b></div>
    <div class="layout-cell-1"><b>1.</b></div>
    <div class="layout-cell-11">
      <span class="transform">SILVA, J. . Trabalho em evento. In: Congresso X, 2024, Campinas.</span>
    </div>
  </div>
</div>

<div class="title-wrapper">
  <h1>Orientações e supervisões concluídas</h1>
  <div class="data-cell">
    <div class="layout-cell-1"><b>1.</b></div>
    <div class="layout-cell-11">
      <span class="transform">Maria Oliveira. Estudo de caso. 2023. Dissertação (Mestrado) - Universidade Estadual de Campinas.</span>
    </div>
  </div>
</div>
</body></html>`

func TestSegmenter_Segment(t *testing.T) {
	t.Parallel()

	t.Run("segments a full profile export", func(t *testing.T) {
		t.Parallel()

		profile, err := goquery.NewSegmenter().Segment(profileHTML)
		require.NoError(t, err)

		assert.Equal(t, "1234567890123456", profile.Subject.LattesID)
		assert.Equal(t, "João da Silva", profile.Subject.FullName)
		assert.Equal(t, "joao-da-silva", profile.Subject.Slug)
		assert.Equal(t, "15/03/2024", profile.Subject.LastUpdate)

		require.Len(t, profile.Sections, 3)

		articles := profile.Sections[0]
		assert.Equal(t, "Artigos completos publicados em periódicos", articles.Label)
		assert.Equal(t, lattes.CategoryArticle, articles.Category)
		assert.Equal(t, 2, articles.DeclaredCount)
		require.Len(t, articles.Items, 2)
		assert.Equal(t, 1, articles.Items[0].Ordinal)
		assert.Equal(t, lattes.CategoryArticle, articles.Items[0].Category)
		assert.Equal(t, "10.1000/ra.2024.001", articles.Items[0].DOI)
		assert.Equal(t, 2024, articles.Items[0].SortYear)
		assert.Equal(t, 2, articles.Items[1].Ordinal)
		assert.Empty(t, articles.Items[1].DOI)
		assert.Zero(t, articles.Items[1].SortYear)

		events := profile.Sections[1]
		assert.Equal(t, lattes.CategoryEventPaper, events.Category)
		require.Len(t, events.Items, 1)
		assert.Equal(t, "SILVA, J. . Trabalho em evento. In: Congresso X, 2024, Campinas.", events.Items[0].Text)

		supervisions := profile.Sections[2]
		assert.Equal(t, lattes.CategorySupervision, supervisions.Category)
		assert.Equal(t, 1, supervisions.DeclaredCount)
	})

	t.Run("skips non-production headings", func(t *testing.T) {
		t.Parallel()

		profile, err := goquery.NewSegmenter().Segment(profileHTML)
		require.NoError(t, err)

		for _, sec := range profile.Sections {
			assert.NotContains(t, sec.Label, "Identificação")
		}
	})

	t.Run("handles artigo-completo era markup", func(t *testing.T) {
		t.Parallel()

		markup := `<html><body>
<span>http://lattes.cnpq.br/9999888877776666</span>
<div class="title-wrapper">
  <h1>Artigos completos publicados em periódicos</h1>
  <div class="data-cell">
    <div class="artigo-completo">
      <div class="layout-cell-1"><b>1.</b></div>
      <div class="layout-cell-11">
        <span class="transform">SILVA, J. . Artigo antigo. Revista C, v. 3, p. 5-6, 2019.</span>
      </div>
    </div>
  </div>
</div>
</body></html>`

		profile, err := goquery.NewSegmenter().Segment(markup)
		require.NoError(t, err)

		require.Len(t, profile.Sections, 1)
		require.Len(t, profile.Sections[0].Items, 1)
		assert.Equal(t, 1, profile.Sections[0].Items[0].Ordinal)
		assert.Contains(t, profile.Sections[0].Items[0].Text, "Artigo antigo")
	})

	t.Run("skips malformed cells but keeps declared count", func(t *testing.T) {
		t.Parallel()

		markup := `<html><body>
<span>http://lattes.cnpq.br/1111222233334444</span>
<div class="title-wrapper">
  <h1>Livros publicados</h1>
  <div class="data-cell">
    <div class="layout-cell-1"><b>1.</b></div>
    <div class="layout-cell-11"><span class="transform">SILVA, J. . Livro bom. 1. ed. 2024.</span></div>
    <div class="layout-cell-1"><b>2.</b></div>
    <div class="layout-cell-11">sem span de texto</div>
  </div>
</div>
</body></html>`

		profile, err := goquery.NewSegmenter().Segment(markup)
		require.NoError(t, err)

		require.Len(t, profile.Sections, 1)
		assert.Equal(t, 2, profile.Sections[0].DeclaredCount)
		assert.Len(t, profile.Sections[0].Items, 1)
	})

	t.Run("ignores scholarship banner in place of name", func(t *testing.T) {
		t.Parallel()

		markup := `<html><body>
<h2 class="nome">Bolsista de Produtividade em Pesquisa</h2>
<span>http://lattes.cnpq.br/5555666677778888</span>
</body></html>`

		profile, err := goquery.NewSegmenter().Segment(markup)
		require.NoError(t, err)

		assert.Equal(t, "5555666677778888", profile.Subject.LattesID)
		assert.Empty(t, profile.Subject.FullName)
		assert.Empty(t, profile.Subject.Slug)
	})

	t.Run("unrecognizable input is unprocessable", func(t *testing.T) {
		t.Parallel()

		_, err := goquery.NewSegmenter().Segment("<html><body><p>nada aqui</p></body></html>")
		require.Error(t, err)
		assert.Equal(t, lattes.EUNPROCESSABLE, lattes.ErrorCode(err))
	})
}

func TestSegmenter_SegmentSection(t *testing.T) {
	t.Parallel()

	t.Run("routes single-section fixture by filename", func(t *testing.T) {
		t.Parallel()

		markup := `<html><body>
<div class="layout-cell-1"><b>1.</b></div>
<div class="layout-cell-11">
  <span class="transform">SILVA, J. . Capítulo. In: SOUZA, M. (Org.). Livro. São Paulo: Editora, 2024.</span>
</div>
</body></html>`

		block, err := goquery.NewSegmenter().SegmentSection("capitulos_de_livros_publicados.html", markup)
		require.NoError(t, err)

		assert.Equal(t, lattes.CategoryBookChapter, block.Category)
		assert.Equal(t, 1, block.DeclaredCount)
		require.Len(t, block.Items, 1)
		assert.Equal(t, lattes.CategoryBookChapter, block.Items[0].Category)
	})

	t.Run("empty fixture yields zero items", func(t *testing.T) {
		t.Parallel()

		block, err := goquery.NewSegmenter().SegmentSection("artigos.html", "<html><body></body></html>")
		require.NoError(t, err)
		assert.Zero(t, block.DeclaredCount)
		assert.Empty(t, block.Items)
	})
}
