package extract_test

import (
	"testing"

	"github.com/jpsouza/lattes"
	"github.com/jpsouza/lattes/extract"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ lattes.Extractor = (*extract.News)(nil)

func TestNews_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts venue and date tail", func(t *testing.T) {
		t.Parallel()

		block := lattes.ItemBlock{
			Ordinal: 1,
			Text:    "SILVA, J. . Nanotecnologia no campo. Folha Regional, Campinas, 12 mar. 2024.",
		}

		rec := extract.NewNews().Extract(block)

		assert.Equal(t, lattes.CategoryNewsText, rec.Category)
		assert.Equal(t, "SILVA, J.", rec.Authors)
		assert.Equal(t, "Nanotecnologia no campo", rec.Title)
		assert.Equal(t, "Folha Regional", rec.Venue)
		assert.Equal(t, "mar", rec.Month)
		require.NotNil(t, rec.Year)
		assert.Equal(t, 2024, *rec.Year)
	})

	t.Run("falls back to year heuristic without a date tail", func(t *testing.T) {
		t.Parallel()

		block := lattes.ItemBlock{
			Ordinal: 2,
			Text:    "SILVA, J. . Entrevista sobre agrotóxicos. Revista Semanal, 2023.",
		}

		rec := extract.NewNews().Extract(block)

		assert.Equal(t, "Entrevista sobre agrotóxicos", rec.Title)
		assert.Equal(t, "Revista Semanal", rec.Venue)
		require.NotNil(t, rec.Year)
		assert.Equal(t, 2023, *rec.Year)
		assert.Empty(t, rec.Month)
	})

	t.Run("missing sentinel yields raw-only record", func(t *testing.T) {
		t.Parallel()

		block := lattes.ItemBlock{Ordinal: 3, Text: "nota sem estrutura"}
		rec := extract.NewNews().Extract(block)

		assert.Empty(t, rec.Authors)
		assert.Empty(t, rec.Title)
		assert.Empty(t, rec.Venue)
		assert.Equal(t, "nota sem estrutura", rec.Raw)
	})
}
