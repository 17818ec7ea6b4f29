package lattes_test

import (
	"testing"

	"github.com/jpsouza/lattes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDocument() *lattes.Document {
	return &lattes.Document{
		SchemaVersion: lattes.SchemaVersion,
		Subject: lattes.Subject{
			LattesID: "8657413561406750",
			FullName: "Fulana de Tal",
			Slug:     "fulana-de-tal",
		},
		Sections: []lattes.Section{
			{
				Label:         "Artigos completos publicados em periódicos",
				Category:      lattes.CategoryArticle,
				DeclaredCount: 2,
				Records: []*lattes.Record{
					{Ordinal: 1, Raw: "primeiro item", Category: lattes.CategoryArticle, Fingerprint: lattes.Fingerprint("primeiro item")},
					{Ordinal: 2, Raw: "segundo item", Category: lattes.CategoryArticle, Fingerprint: lattes.Fingerprint("segundo item")},
				},
			},
		},
	}
}

func TestDocument_Validate(t *testing.T) {
	t.Parallel()

	t.Run("accepts a well-formed document", func(t *testing.T) {
		t.Parallel()
		require.NoError(t, validDocument().Validate())
	})

	t.Run("rejects missing subject ID", func(t *testing.T) {
		t.Parallel()

		doc := validDocument()
		doc.Subject.LattesID = ""
		err := doc.Validate()
		require.Error(t, err)
		assert.Equal(t, lattes.EINVALID, lattes.ErrorCode(err))
	})

	t.Run("rejects missing schema version", func(t *testing.T) {
		t.Parallel()

		doc := validDocument()
		doc.SchemaVersion = ""
		require.Error(t, doc.Validate())
	})

	t.Run("rejects empty raw text", func(t *testing.T) {
		t.Parallel()

		doc := validDocument()
		doc.Sections[0].Records[0].Raw = ""
		require.Error(t, doc.Validate())
	})

	t.Run("rejects non-increasing ordinals", func(t *testing.T) {
		t.Parallel()

		doc := validDocument()
		doc.Sections[0].Records[1].Ordinal = 1
		err := doc.Validate()
		require.Error(t, err)
		assert.Contains(t, lattes.ErrorMessage(err), "strictly increasing")
	})

	t.Run("accepts empty sections", func(t *testing.T) {
		t.Parallel()

		doc := validDocument()
		doc.Sections = append(doc.Sections, lattes.Section{
			Label:    "Orientações e supervisões concluídas",
			Category: lattes.CategorySupervision,
			Records:  []*lattes.Record{},
		})
		require.NoError(t, doc.Validate())
	})
}

func TestRecord_Validate(t *testing.T) {
	t.Parallel()

	t.Run("requires positive ordinal", func(t *testing.T) {
		t.Parallel()

		rec := &lattes.Record{Ordinal: 0, Raw: "texto"}
		require.Error(t, rec.Validate())
	})

	t.Run("requires raw text", func(t *testing.T) {
		t.Parallel()

		rec := &lattes.Record{Ordinal: 1}
		require.Error(t, rec.Validate())
	})

	t.Run("rejects malformed fingerprint", func(t *testing.T) {
		t.Parallel()

		rec := &lattes.Record{Ordinal: 1, Raw: "texto", Fingerprint: "abc123"}
		require.Error(t, rec.Validate())
	})
}

func TestDocument_TotalRecords(t *testing.T) {
	t.Parallel()

	doc := validDocument()
	assert.Equal(t, 2, doc.TotalRecords())
	doc.Sections = nil
	assert.Equal(t, 0, doc.TotalRecords())
}
