// Package audit runs the page fetch, competitor search and completion steps of
// an SEO audit and assembles the result.
package audit

import (
	"context"
	"log/slog"
	"time"
)

// PageFetcher fetches a page and extracts its meta tags
type PageFetcher interface {
	FetchMetaTags(ctx context.Context, url string) (MetaTags, error)
}

// Searcher returns the organic result links for a keyword, in ranking order
type Searcher interface {
	OrganicLinks(ctx context.Context, keyword string, limit int) ([]string, error)
}

// Completer sends a chat completion and returns the first choice's content
type Completer interface {
	Complete(ctx context.Context, system, prompt string) (string, error)
}

// Observer receives audit outcomes. metrics.Recorder implements it.
type Observer interface {
	ObserveAudit(duration time.Duration, competitors int, err error)
	ObserveStepFailure(step, kind string)
}

type Service struct {
	fetcher   PageFetcher
	searcher  Searcher
	completer Completer
	observer  Observer
	logger    *slog.Logger
}

type Option func(*Service)

func WithObserver(o Observer) Option {
	return func(s *Service) { s.observer = o }
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Service) { s.logger = l }
}

// NewService creates a Service over the three collaborators
func NewService(fetcher PageFetcher, searcher Searcher, completer Completer, opts ...Option) *Service {
	s := &Service{
		fetcher:   fetcher,
		searcher:  searcher,
		completer: completer,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Audit runs the three steps in order. The first failing step aborts the audit
// and is returned as a *Failure; no partial result is produced.
func (s *Service) Audit(ctx context.Context, req AuditRequest) (*AuditResult, error) {
	start := time.Now()
	result, err := s.run(ctx, req)

	competitors := 0
	if result != nil {
		competitors = len(result.CompetitorComparison)
	}
	if s.observer != nil {
		s.observer.ObserveAudit(time.Since(start), competitors, err)
	}
	return result, err
}

func (s *Service) run(ctx context.Context, req AuditRequest) (*AuditResult, error) {
	log := s.logger.With("url", req.URL, "keyword", req.TargetKeyword)

	meta, err := s.fetcher.FetchMetaTags(ctx, req.URL)
	if err != nil {
		return nil, s.fail(log, StepFetch, err)
	}
	log.Debug("page fetched", "title", meta.Title)

	links, err := s.searcher.OrganicLinks(ctx, req.TargetKeyword, MaxCompetitors)
	if err != nil {
		return nil, s.fail(log, StepSearch, err)
	}
	if len(links) > MaxCompetitors {
		links = links[:MaxCompetitors]
	}
	log.Debug("competitors found", "count", len(links))

	suggestions, err := s.completer.Complete(ctx, SystemRole, BuildPrompt(meta, req.TargetKeyword, links))
	if err != nil {
		return nil, s.fail(log, StepCompletion, err)
	}

	competitors := make([]CompetitorEntry, 0, len(links))
	for _, link := range links {
		competitors = append(competitors, CompetitorEntry{URL: link})
	}

	// Both suggestion fields carry the same completion text.
	return &AuditResult{
		SEOScore:              Score,
		MetaTags:              meta,
		SpeedInsights:         map[string]any{},
		CompetitorComparison:  competitors,
		BrandVoiceSuggestions: suggestions,
		VisualSuggestions:     suggestions,
	}, nil
}

func (s *Service) fail(log *slog.Logger, step Step, err error) error {
	f := newFailure(step, err)
	log.Error("audit failed", "step", f.Step, "kind", f.Kind, "error", f.Err)
	if s.observer != nil {
		s.observer.ObserveStepFailure(string(f.Step), string(f.Kind))
	}
	return f
}
