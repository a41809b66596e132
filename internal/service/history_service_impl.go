package service

import (
	"context"
	"time"

	"github.com/alexanderramin/chrono/internal/domain"
)

// HistorySource provides the completed-timer log.
type HistorySource interface {
	History() []domain.HistoryEntry
}

type historyService struct {
	source   HistorySource
	exporter FileExporter
	archiver HistoryArchiver
	observer UseCaseObserver
}

// NewHistoryService creates a HistoryService. Either target may be nil;
// Export skips it.
func NewHistoryService(source HistorySource, exporter FileExporter, archiver HistoryArchiver, observers ...UseCaseObserver) HistoryService {
	return &historyService{
		source:   source,
		exporter: exporter,
		archiver: archiver,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *historyService) Entries() []domain.HistoryEntry {
	return s.source.History()
}

// Export writes the file first, then archives. An archive failure is
// returned with the path of the file that was written.
func (s *historyService) Export(ctx context.Context) (res *ExportResult, err error) {
	startedAt := time.Now()
	fields := map[string]any{}
	defer func() { observe(ctx, s.observer, "export-history", startedAt, err, fields) }()

	entries := s.source.History()
	fields["entries"] = len(entries)

	res = &ExportResult{Entries: len(entries)}
	if s.exporter != nil {
		res.Path, err = s.exporter.Export(ctx, entries)
		fields["path"] = res.Path
		if err != nil {
			return res, err
		}
	}

	if s.archiver != nil {
		source := res.Path
		if source == "" {
			source = "session"
		}
		run, archErr := s.archiver.Archive(ctx, source, entries)
		if archErr != nil {
			return res, archErr
		}
		res.Run = &run
		fields["archived"] = run.Inserted
	}
	return res, nil
}
