package analyzer

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/helmcode/fmea-ai/pkg/fmea"
	"github.com/helmcode/fmea-ai/pkg/llm"
	"github.com/helmcode/fmea-ai/pkg/parser"
	"github.com/helmcode/fmea-ai/pkg/prompts"
)

// Analyzer orchestrates one FMEA run: prompt, model call, parsing, summary.
type Analyzer struct {
	llm    llm.LLM
	logger *slog.Logger
	now    func() time.Time
}

func New(l llm.LLM) *Analyzer {
	return &Analyzer{
		llm:    l,
		logger: slog.Default(),
		now:    time.Now,
	}
}

func NewFromEnv(providerOverride, modelOverride string, opts llm.Options) (*Analyzer, error) {
	client, err := llm.CreateFromEnv(providerOverride, modelOverride, opts)
	if err != nil {
		return nil, err
	}
	return New(client), nil
}

// WithLogger replaces the diagnostics logger. Skipped-entry warnings and run
// progress go through it.
func (a *Analyzer) WithLogger(logger *slog.Logger) *Analyzer {
	a.logger = logger
	return a
}

// WithClock fixes the analysis-date source. Used by tests.
func (a *Analyzer) WithClock(now func() time.Time) *Analyzer {
	a.now = now
	return a
}

// Run executes a complete analysis. The run is all-or-nothing: it returns a
// response with at least one validated entry, or an error. Individual model
// entries that fail validation are logged and skipped without failing the
// run, as long as at least one entry survives. Transport failures are
// propagated without retry.
func (a *Analyzer) Run(ctx context.Context, req fmea.AnalysisRequest) (*fmea.AnalysisResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("invalid analysis request: %w", err)
	}

	runID := uuid.New()
	logger := a.logger.With("run_id", runID, "system", req.SystemName)

	userPrompt, err := prompts.BuildUserPrompt(req)
	if err != nil {
		return nil, err
	}

	logger.Info("calling model", "model", a.llm.Model(), "components", len(req.Components))

	raw, err := a.llm.Chat(ctx, prompts.SystemPrompt, userPrompt)
	if err != nil {
		return nil, fmt.Errorf("LLM chat: %w", err)
	}

	logger.Info("received model response", "chars", len(raw))

	entries, diags, err := parser.ParseEntries(raw)
	if err != nil {
		return nil, err
	}
	if len(diags) > 0 {
		logger.Warn("some entries failed validation and were skipped", "skipped", len(diags))
		for _, d := range diags {
			logger.Warn("invalid entry", "index", d.Index, "reason", d.Err.Error())
		}
	}

	logger.Info("validated entries", "count", len(entries))

	return &fmea.AnalysisResponse{
		SystemName:   req.SystemName,
		AnalysisDate: a.now().Format("2006-01-02"),
		DOIReference: fmea.DefaultDOIReference,
		Scope:        req.Scope,
		Entries:      entries,
		Summary:      fmea.Summarize(entries),
	}, nil
}
