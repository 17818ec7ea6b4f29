package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/jpsouza/lattes"
	"github.com/jpsouza/lattes/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	_ lattes.DocumentStore = (*fs.Store)(nil)
	_ lattes.ReportWriter  = (*fs.Store)(nil)
)

func testDocument() *lattes.Document {
	return &lattes.Document{
		SchemaVersion: lattes.SchemaVersion,
		Subject: lattes.Subject{
			LattesID: "1234567890123456",
			FullName: "João da Silva",
			Slug:     "joao-da-silva",
		},
		Sections: []lattes.Section{
			{
				Label:         "Artigos completos publicados em periódicos",
				Category:      lattes.CategoryArticle,
				DeclaredCount: 1,
				Records: []*lattes.Record{
					{
						Ordinal:     1,
						Raw:         "SILVA, J. . Título. Revista, v. 1, p. 1-2, 2024.",
						Category:    lattes.CategoryArticle,
						Fingerprint: lattes.Fingerprint("SILVA, J. . Título. Revista, v. 1, p. 1-2, 2024."),
					},
				},
			},
		},
		Metadata: lattes.ParseMetadata{
			SourceFile:  "1234567890123456__joao-da-silva.full_profile.html",
			ExtractedAt: "2026-08-25T10:00:00Z",
			TotalItems:  1,
			Warnings:    []string{},
		},
	}
}

func TestStore_WriteDocument(t *testing.T) {
	t.Parallel()

	t.Run("stages document and commits atomically", func(t *testing.T) {
		t.Parallel()

		base := t.TempDir()
		store := fs.NewStore(base, "out")
		ctx := context.Background()

		require.NoError(t, store.WriteDocument(ctx, testDocument()))

		// Staged, not yet visible in the final location.
		finalPath := filepath.Join(base, "out", "researchers", "1234567890123456__joao-da-silva.json")
		_, err := os.Stat(finalPath)
		assert.True(t, os.IsNotExist(err))

		require.NoError(t, store.Commit())

		b, err := os.ReadFile(finalPath)
		require.NoError(t, err)
		assert.Contains(t, string(b), `"schemaVersion": "2.0.0"`)
		assert.Contains(t, string(b), `"lattesId": "1234567890123456"`)
	})

	t.Run("identical documents produce byte-identical files", func(t *testing.T) {
		t.Parallel()

		base := t.TempDir()
		ctx := context.Background()

		for _, name := range []string{"a", "b"} {
			store := fs.NewStore(base, name)
			require.NoError(t, store.WriteDocument(ctx, testDocument()))
			require.NoError(t, store.Commit())
		}

		rel := filepath.Join("researchers", "1234567890123456__joao-da-silva.json")
		first, err := os.ReadFile(filepath.Join(base, "a", rel))
		require.NoError(t, err)
		second, err := os.ReadFile(filepath.Join(base, "b", rel))
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("rejects invalid documents", func(t *testing.T) {
		t.Parallel()

		store := fs.NewStore(t.TempDir(), "out")
		doc := testDocument()
		doc.Subject.LattesID = ""

		err := store.WriteDocument(context.Background(), doc)
		require.Error(t, err)
		assert.Equal(t, lattes.EINVALID, lattes.ErrorCode(err))
	})

	t.Run("abort discards the staged run", func(t *testing.T) {
		t.Parallel()

		base := t.TempDir()
		store := fs.NewStore(base, "out")

		require.NoError(t, store.WriteDocument(context.Background(), testDocument()))
		require.NoError(t, store.Abort())

		_, err := os.Stat(filepath.Join(base, "out.tmp"))
		assert.True(t, os.IsNotExist(err))
		_, err = os.Stat(filepath.Join(base, "out"))
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("commit replaces a previous run", func(t *testing.T) {
		t.Parallel()

		base := t.TempDir()
		ctx := context.Background()

		first := fs.NewStore(base, "out")
		require.NoError(t, first.WriteDocument(ctx, testDocument()))
		require.NoError(t, first.Commit())

		second := fs.NewStore(base, "out")
		doc := testDocument()
		doc.Subject = lattes.Subject{LattesID: "9999888877776666"}
		require.NoError(t, second.WriteDocument(ctx, doc))
		require.NoError(t, second.Commit())

		entries, err := os.ReadDir(filepath.Join(base, "out", "researchers"))
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "9999888877776666.json", entries[0].Name())
	})
}

func TestStore_Reports(t *testing.T) {
	t.Parallel()

	summary := func() *lattes.Summary {
		return &lattes.Summary{
			GeneratedAt: "2026-08-25T10:00:00Z",
			InputDir:    "in",
			OutputDir:   "out",
			TotalFiles:  2,
			Succeeded:   1,
			Failed:      1,
			CategoryCounts: map[lattes.Category]int{
				lattes.CategoryArticle: 3,
			},
			Results: []lattes.FileResult{
				{File: "a.html", Stage: lattes.StageWritten, TotalItems: 3},
				{File: "b.html", Stage: lattes.StageSegmented, Error: "no subject identity or production sections found"},
			},
		}
	}

	t.Run("writes summary and errors reports", func(t *testing.T) {
		t.Parallel()

		base := t.TempDir()
		store := fs.NewStore(base, "out")
		ctx := context.Background()

		require.NoError(t, store.WriteSummary(ctx, summary()))
		require.NoError(t, store.WriteErrors(ctx, summary()))
		require.NoError(t, store.Commit())

		b, err := os.ReadFile(filepath.Join(base, "out", "summary.json"))
		require.NoError(t, err)
		assert.Contains(t, string(b), `"totalFiles": 2`)

		b, err = os.ReadFile(filepath.Join(base, "out", "errors.json"))
		require.NoError(t, err)
		assert.Contains(t, string(b), "b.html")
		assert.NotContains(t, string(b), "a.html")
	})

	t.Run("no errors report for a clean run", func(t *testing.T) {
		t.Parallel()

		base := t.TempDir()
		store := fs.NewStore(base, "out")
		clean := summary()
		clean.Failed = 0
		clean.Results = clean.Results[:1]

		ctx := context.Background()
		require.NoError(t, store.WriteSummary(ctx, clean))
		require.NoError(t, store.WriteErrors(ctx, clean))
		require.NoError(t, store.Commit())

		_, err := os.Stat(filepath.Join(base, "out", "errors.json"))
		assert.True(t, os.IsNotExist(err))
	})
}

func TestDocumentFilename(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "1234567890123456__joao.json",
		fs.DocumentFilename(lattes.Subject{LattesID: "1234567890123456", Slug: "joao"}))
	assert.Equal(t, "1234567890123456.json",
		fs.DocumentFilename(lattes.Subject{LattesID: "1234567890123456"}))
}
