package slog_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/jpsouza/lattes"
	"github.com/jpsouza/lattes/mock"
	latslog "github.com/jpsouza/lattes/slog"
	"github.com/stretchr/testify/assert"
)

func TestLoggingRegistry_GetForLabel(t *testing.T) {
	t.Parallel()

	t.Run("logs resolved category with duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		mockExtractor := &mock.Extractor{
			CategoryFn: func() lattes.Category { return lattes.CategoryArticle },
		}
		inner := &mock.ExtractorRegistry{
			GetForLabelFn: func(label string) lattes.Extractor {
				return mockExtractor
			},
		}

		registry := latslog.NewLoggingRegistry(inner, logger)
		extractor := registry.GetForLabel("Artigos completos publicados em periódicos")

		assert.Equal(t, mockExtractor, extractor)
		output := buf.String()
		assert.Contains(t, output, "category routing")
		assert.Contains(t, output, "category=journal_article")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs unknown category", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		mockExtractor := &mock.Extractor{
			CategoryFn: func() lattes.Category { return lattes.CategoryUnknown },
		}
		inner := &mock.ExtractorRegistry{
			GetForLabelFn: func(label string) lattes.Extractor {
				return mockExtractor
			},
		}

		registry := latslog.NewLoggingRegistry(inner, logger)
		registry.GetForLabel("Seção desconhecida")

		assert.Contains(t, buf.String(), "category=(unknown)")
	})
}

func TestLoggingRegistry_Get(t *testing.T) {
	t.Parallel()

	t.Run("delegates to inner registry", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		mockExtractor := &mock.Extractor{}
		inner := &mock.ExtractorRegistry{
			GetFn: func(category lattes.Category) lattes.Extractor {
				return mockExtractor
			},
		}

		registry := latslog.NewLoggingRegistry(inner, logger)
		extractor := registry.Get(lattes.CategoryBook)

		assert.Equal(t, mockExtractor, extractor)
		assert.Empty(t, buf.String())
	})
}

func TestLoggingRegistry_Register(t *testing.T) {
	t.Parallel()

	t.Run("delegates to inner registry", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		var registeredCategory lattes.Category
		var registeredExtractor lattes.Extractor
		mockExtractor := &mock.Extractor{}
		inner := &mock.ExtractorRegistry{
			RegisterFn: func(category lattes.Category, e lattes.Extractor) {
				registeredCategory = category
				registeredExtractor = e
			},
		}

		registry := latslog.NewLoggingRegistry(inner, logger)
		registry.Register(lattes.CategoryEventPaper, mockExtractor)

		assert.Equal(t, lattes.CategoryEventPaper, registeredCategory)
		assert.Equal(t, mockExtractor, registeredExtractor)
	})
}

func TestLoggingRegistry_List(t *testing.T) {
	t.Parallel()

	t.Run("delegates to inner registry", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.ExtractorRegistry{
			ListFn: func() []lattes.Category {
				return []lattes.Category{lattes.CategoryArticle, lattes.CategoryBook}
			},
		}

		registry := latslog.NewLoggingRegistry(inner, logger)
		categories := registry.List()

		assert.Equal(t, []lattes.Category{lattes.CategoryArticle, lattes.CategoryBook}, categories)
	})
}
