package mock

import (
	"context"

	"github.com/jpsouza/lattes"
)

var _ lattes.DocumentStore = (*DocumentStore)(nil)

// DocumentStore is a mock implementation of lattes.DocumentStore.
type DocumentStore struct {
	WriteDocumentFn func(ctx context.Context, doc *lattes.Document) error
	CommitFn        func() error
	AbortFn         func() error
}

func (s *DocumentStore) WriteDocument(ctx context.Context, doc *lattes.Document) error {
	return s.WriteDocumentFn(ctx, doc)
}

func (s *DocumentStore) Commit() error {
	return s.CommitFn()
}

func (s *DocumentStore) Abort() error {
	return s.AbortFn()
}

var _ lattes.ReportWriter = (*ReportWriter)(nil)

// ReportWriter is a mock implementation of lattes.ReportWriter.
type ReportWriter struct {
	WriteSummaryFn func(ctx context.Context, summary *lattes.Summary) error
	WriteErrorsFn  func(ctx context.Context, summary *lattes.Summary) error
}

func (w *ReportWriter) WriteSummary(ctx context.Context, summary *lattes.Summary) error {
	return w.WriteSummaryFn(ctx, summary)
}

func (w *ReportWriter) WriteErrors(ctx context.Context, summary *lattes.Summary) error {
	return w.WriteErrorsFn(ctx, summary)
}
